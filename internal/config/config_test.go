package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"page": "site/index.html",
		"content": "https://cdn.example.com/content.json",
		"out": "dist/index.html",
		"port": 9090,
		"timeout_seconds": 5,
		"sanitize": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "site/index.html", cfg.Page)
	assert.Equal(t, "https://cdn.example.com/content.json", cfg.Content)
	assert.Equal(t, "dist/index.html", cfg.Out)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.True(t, cfg.Sanitize)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_YAML(t *testing.T) {
	content := `page: site/index.html
site_dir: site
port: 9090
timeout_seconds: 3
verbose: true
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "site/index.html", cfg.Page)
	assert.Equal(t, "site", cfg.SiteDir)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.Timeout())
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Sanitize)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("port: [not, a, number]"), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CONTENT_BINDER_PAGE", "index.html")
	t.Setenv("CONTENT_BINDER_CONTENT", "copy.json")
	t.Setenv("CONTENT_BINDER_PORT", "3000")
	t.Setenv("CONTENT_BINDER_VERBOSE", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "index.html", cfg.Page)
	assert.Equal(t, "copy.json", cfg.Content)
	assert.Equal(t, 3000, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestFromEnv_InvalidValue(t *testing.T) {
	t.Setenv("CONTENT_BINDER_PORT", "not-a-number")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Port")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TimeoutSeconds")
}

func TestValidate_PageNotFound(t *testing.T) {
	cfg := &Config{Page: filepath.Join(t.TempDir(), "missing.html")}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "page file not found")
}

func TestValidate_SiteDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(file, []byte("<html></html>"), 0644))

	cfg := &Config{SiteDir: file}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestValidate_MissingContentIsNotAConfigError(t *testing.T) {
	cfg := &Config{Content: filepath.Join(t.TempDir(), "content.json")}
	assert.NoError(t, cfg.Validate())
}

func TestValidateForBind(t *testing.T) {
	cfg := &Config{}
	err := cfg.ValidateForBind()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'page' is required")

	page := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(page, []byte("<html></html>"), 0644))
	cfg.Page = page
	assert.NoError(t, cfg.ValidateForBind())
}

func TestValidateForServe(t *testing.T) {
	cfg := &Config{Port: DefaultPort}
	err := cfg.ValidateForServe()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'site_dir' is required")

	cfg.SiteDir = t.TempDir()
	assert.NoError(t, cfg.ValidateForServe())

	cfg.Port = 0
	assert.Error(t, cfg.ValidateForServe())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Page:           "default.html",
		Content:        "default.json",
		Port:           DefaultPort,
		TimeoutSeconds: 10,
		Verbose:        true,
	}

	partial := Config{
		Page:     "custom.html",
		Sanitize: true,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom.html", merged.Page)
	assert.True(t, merged.Sanitize)

	// Default values should fill in empty fields
	assert.Equal(t, "default.json", merged.Content)
	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, 10, merged.TimeoutSeconds)
	assert.True(t, merged.Verbose)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Page: "index.html", Port: 1234}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "index.html", merged.Page)
	assert.Equal(t, 1234, merged.Port)
	assert.Empty(t, merged.Content)
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, DefaultPort, d.Port)
	assert.Zero(t, d.Timeout())
}
