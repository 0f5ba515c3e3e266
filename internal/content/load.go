// Package content retrieves and decodes the content document bound into pages.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/content-binder/internal/fetch"
	"github.com/jonathan/content-binder/internal/types"
)

// DefaultFileName is the content document's fixed name, resolved next to the page.
const DefaultFileName = "content.json"

// DefaultLocation returns the content document location for a page file.
func DefaultLocation(pagePath string) string {
	return filepath.Join(filepath.Dir(pagePath), DefaultFileName)
}

// Loader retrieves a content document from a URL or a file path.
type Loader struct {
	Location string
	Options  *fetch.Options
}

// NewLoader creates a Loader for location.
func NewLoader(location string, opts *fetch.Options) *Loader {
	return &Loader{Location: location, Options: opts}
}

// Load retrieves and decodes the document. Every failure is an *UnavailableError.
func (l *Loader) Load(ctx context.Context) (*types.ContentDocument, error) {
	if l.Location == "" {
		return nil, &UnavailableError{Location: "(empty)", Message: "no content location configured"}
	}

	var data []byte
	if fetch.IsURL(l.Location) {
		result, err := fetch.URL(ctx, l.Location, l.Options)
		if err != nil {
			return nil, &UnavailableError{Location: l.Location, Message: "failed to fetch", Cause: err}
		}
		data = result.Body
	} else {
		raw, err := os.ReadFile(l.Location)
		if err != nil {
			return nil, &UnavailableError{Location: l.Location, Message: "failed to read", Cause: err}
		}
		data = raw
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, &UnavailableError{Location: l.Location, Message: "malformed document", Cause: err}
	}
	return doc, nil
}

// Decode parses a content document. A top-level null is rejected: there is
// no document to bind from.
func Decode(data []byte) (*types.ContentDocument, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("document is null")
	}

	var doc types.ContentDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content JSON: %w", err)
	}
	return &doc, nil
}
