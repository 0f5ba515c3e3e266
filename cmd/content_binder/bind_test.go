package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html><html><head><title>Static</title></head><body>
<a class="brand" href="#">Static brand</a>
<div class="hero-text"><h1>Static hero</h1><p>Static description</p></div>
<footer><p>© static</p></footer></body></html>`

const testContent = `{
	"meta": {"title": "Bound title"},
	"navigation": {"brandName": "Acme"},
	"hero": {"title": "Line one\nLine two", "description": "Plain\ntext"},
	"footer": {"copyright": "© 2026 Acme"}
}`

func writeFixture(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBind_DefaultContentLocationToStdout(t *testing.T) {
	dir := t.TempDir()
	pagePath := writeFixture(t, dir, "index.html", testPage)
	writeFixture(t, dir, "content.json", testContent)

	stdout, stderr, err := execute(t, "bind", "--page", pagePath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "<title>Bound title</title>")
	assert.Contains(t, stdout, "Line one<br/>Line two")
	assert.Contains(t, stdout, "<p>Plain\ntext</p>")
	assert.Contains(t, stdout, "© 2026 Acme")
	assert.Contains(t, stdout, `<span class="brand-icon">`)
	assert.Empty(t, stderr)
}

func TestBind_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	pagePath := writeFixture(t, dir, "index.html", testPage)
	contentPath := writeFixture(t, dir, "copy.json", testContent)
	outPath := filepath.Join(dir, "dist", "index.html")

	stdout, _, err := execute(t, "bind", "--page", pagePath, "--content", contentPath, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bound page written to")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Bound title</title>")
}

func TestBind_MissingContentKeepsStaticPage(t *testing.T) {
	dir := t.TempDir()
	pagePath := writeFixture(t, dir, "index.html", testPage)

	stdout, stderr, err := execute(t, "bind", "--page", pagePath)
	require.NoError(t, err, "a content failure must not fail the page")

	assert.Contains(t, stdout, "<title>Static</title>")
	assert.Contains(t, stdout, "© static")
	assert.Equal(t, 1, strings.Count(stderr, "error loading content"))
}

func TestBind_RemoteContentNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	dir := t.TempDir()
	pagePath := writeFixture(t, dir, "index.html", testPage)

	stdout, stderr, err := execute(t, "bind", "--page", pagePath, "--content", server.URL+"/content.json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<title>Static</title>")
	assert.Equal(t, 1, strings.Count(stderr, "error loading content"))
	assert.Contains(t, stderr, "503")
}

func TestBind_Verbose(t *testing.T) {
	dir := t.TempDir()
	pagePath := writeFixture(t, dir, "index.html", testPage)
	writeFixture(t, dir, "content.json", testContent)

	_, stderr, err := execute(t, "bind", "--page", pagePath, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "CONTENT DOCUMENT")
	assert.Contains(t, stderr, "Bound title")
}

func TestBind_Sanitize(t *testing.T) {
	dir := t.TempDir()
	pagePath := writeFixture(t, dir, "index.html", testPage)
	writeFixture(t, dir, "content.json", `{"hero":{"title":"Hi<script>alert(1)</script>"}}`)

	stdout, _, err := execute(t, "bind", "--page", pagePath, "--sanitize")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "<script>")
	assert.Contains(t, stdout, "<h1>Hi</h1>")
}

func TestBind_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	pagePath := writeFixture(t, dir, "index.html", testPage)
	contentPath := writeFixture(t, dir, "copy.json", testContent)
	outPath := filepath.Join(dir, "out.html")
	cfgPath := writeFixture(t, dir, "config.json",
		`{"page": "`+filepath.ToSlash(pagePath)+`", "content": "`+filepath.ToSlash(contentPath)+`", "out": "`+filepath.ToSlash(outPath)+`"}`)

	_, _, err := execute(t, "bind", "--config", cfgPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Bound title")
}

func TestBind_EnvConfig(t *testing.T) {
	dir := t.TempDir()
	pagePath := writeFixture(t, dir, "index.html", testPage)
	writeFixture(t, dir, "content.json", testContent)
	t.Setenv("CONTENT_BINDER_PAGE", pagePath)

	stdout, _, err := execute(t, "bind")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bound title")
}

func TestBind_FlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	pagePath := writeFixture(t, dir, "index.html", testPage)
	writeFixture(t, dir, "content.json", testContent)
	other := writeFixture(t, dir, "other.json", `{"meta":{"title":"From flag"}}`)
	cfgPath := writeFixture(t, dir, "config.json", `{"page": "`+filepath.ToSlash(pagePath)+`"}`)

	stdout, _, err := execute(t, "bind", "--config", cfgPath, "--content", other)
	require.NoError(t, err)
	assert.Contains(t, stdout, "<title>From flag</title>")
}

func TestBind_MissingPage(t *testing.T) {
	_, _, err := execute(t, "bind")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'page' is required")
}

func TestBind_PageNotFound(t *testing.T) {
	_, _, err := execute(t, "bind", "--page", filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page file not found")
}

func TestServe_RequiresSite(t *testing.T) {
	_, _, err := execute(t, "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'site_dir' is required")
}

func TestRules(t *testing.T) {
	stdout, _, err := execute(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, stdout, "BINDING RULES")
	assert.Contains(t, stdout, "footer.copyright")
}
