// Package page holds the host HTML document a binding pass mutates.
package page

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseError represents a failure to read or parse the host document.
type ParseError struct {
	Source string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse page %s: %v", e.Source, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Page is a parsed host document. Ready is closed once the document
// structure is available, whether or not parsing succeeded.
type Page struct {
	source string
	doc    *goquery.Document
	err    error
	ready  chan struct{}
}

// Parse reads and parses r synchronously; Ready is already closed on return.
func Parse(source string, r io.Reader) (*Page, error) {
	p := &Page{source: source, ready: make(chan struct{})}
	p.parse(r)
	close(p.ready)
	if p.err != nil {
		return nil, p.err
	}
	return p, nil
}

// ParseString parses an in-memory document.
func ParseString(html string) (*Page, error) {
	return Parse("(string)", strings.NewReader(html))
}

// Open parses r in the background. Callers gate work on Ready and then
// check Err. r must stay readable until Ready is closed.
func Open(source string, r io.Reader) *Page {
	p := &Page{source: source, ready: make(chan struct{})}
	go func() {
		defer close(p.ready)
		p.parse(r)
	}()
	return p
}

// LoadFile parses the page at path.
func LoadFile(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Source: path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	return Parse(path, f)
}

func (p *Page) parse(r io.Reader) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		p.err = &ParseError{Source: p.source, Cause: err}
		return
	}
	p.doc = doc
}

// Ready is closed when the document structure is available.
func (p *Page) Ready() <-chan struct{} {
	return p.ready
}

// Document returns the parsed document, or nil before Ready or on failure.
func (p *Page) Document() *goquery.Document {
	select {
	case <-p.ready:
		return p.doc
	default:
		return nil
	}
}

// Err returns the parse error, if any, once Ready is closed.
func (p *Page) Err() error {
	select {
	case <-p.ready:
		return p.err
	default:
		return nil
	}
}

// Source names where the page came from
func (p *Page) Source() string {
	return p.source
}

// HTML renders the whole document, doctype included.
func (p *Page) HTML() (string, error) {
	doc := p.Document()
	if doc == nil {
		return "", fmt.Errorf("page %s is not ready", p.source)
	}
	return doc.Html()
}

// WriteTo renders the document to w.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	html, err := p.HTML()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, html)
	return int64(n), err
}

// WriteFile renders the document to path, creating parent directories.
func (p *Page) WriteFile(path string) error {
	html, err := p.HTML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}
