// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "CONTENT_BINDER_"

// DefaultPort is the preview server's default listen port.
const DefaultPort = 8080

// Config represents the CLI configuration. It can come from a JSON or YAML file,
// from CONTENT_BINDER_* environment variables, or from flags.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Page    string `json:"page,omitempty" yaml:"page,omitempty" env:"PAGE"`             // Host HTML page to bind
	Content string `json:"content,omitempty" yaml:"content,omitempty" env:"CONTENT"`    // Content document path or URL
	Out     string `json:"out,omitempty" yaml:"out,omitempty" env:"OUT"`                // Output path for the bound page
	SiteDir string `json:"site_dir,omitempty" yaml:"site_dir,omitempty" env:"SITE_DIR"` // Root directory for the preview server

	// Server
	Port int `json:"port,omitempty" yaml:"port,omitempty" env:"PORT" validate:"omitempty,min=1,max=65535"`

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" env:"TIMEOUT_SECONDS" validate:"gte=0"` // 0 = no timeout
	Sanitize       bool `json:"sanitize,omitempty" yaml:"sanitize,omitempty" env:"SANITIZE"`                                       // Sanitize markup-capable fields
	Verbose        bool `json:"verbose,omitempty" yaml:"verbose,omitempty" env:"VERBOSE"`                                          // Print a content summary
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{Port: DefaultPort}
}

// LoadConfig loads configuration from a JSON file, or a YAML file when the
// extension is .yaml or .yml.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// FromEnv loads configuration from CONTENT_BINDER_* environment variables.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those depend on the
// command; see ValidateForBind and ValidateForServe.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Page != "" {
		if _, err := os.Stat(c.Page); os.IsNotExist(err) {
			return fmt.Errorf("config error: page file not found: %s", c.Page)
		}
	}

	if c.SiteDir != "" {
		info, err := os.Stat(c.SiteDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: site directory not found: %s", c.SiteDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: site_dir is not a directory: %s", c.SiteDir)
		}
	}

	return nil
}

// ValidateForBind checks the fields the bind command needs.
func (c *Config) ValidateForBind() error {
	if c.Page == "" {
		return fmt.Errorf("config error: 'page' is required")
	}
	return c.Validate()
}

// ValidateForServe checks the fields the serve command needs.
func (c *Config) ValidateForServe() error {
	if c.SiteDir == "" {
		return fmt.Errorf("config error: 'site_dir' is required")
	}
	if c.Port == 0 {
		return fmt.Errorf("config error: 'port' is required")
	}
	return c.Validate()
}

// Timeout returns the content fetch timeout; zero means none.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer env over file over built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Page == "" {
		result.Page = defaults.Page
	}
	if result.Content == "" {
		result.Content = defaults.Content
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.SiteDir == "" {
		result.SiteDir = defaults.SiteDir
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so any layer can enable them
	result.Sanitize = result.Sanitize || defaults.Sanitize
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
