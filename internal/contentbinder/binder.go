// Package contentbinder runs the one-shot binding pass for a page: retrieve
// the content document, then apply the binding rules to the page's tree.
package contentbinder

import (
	"context"

	"github.com/jonathan/content-binder/internal/binding"
	"github.com/jonathan/content-binder/internal/lifecycle"
	"github.com/jonathan/content-binder/internal/logger"
	"github.com/jonathan/content-binder/internal/page"
	"github.com/jonathan/content-binder/internal/types"
)

// DocumentSource supplies the content document for a pass.
type DocumentSource interface {
	Load(ctx context.Context) (*types.ContentDocument, error)
}

// ContentBinder binds one page. The pass runs at most once per binder.
type ContentBinder struct {
	page   *page.Page
	source DocumentSource
	binder *binding.Binder
	log    *logger.Logger
	gate   lifecycle.Gate
}

// Option configures a ContentBinder.
type Option func(*ContentBinder)

// WithLogger sets the logger that receives the pass failure.
func WithLogger(l *logger.Logger) Option {
	return func(c *ContentBinder) {
		if l != nil {
			c.log = l
		}
	}
}

// WithBinder replaces the default rule binder.
func WithBinder(b *binding.Binder) Option {
	return func(c *ContentBinder) {
		if b != nil {
			c.binder = b
		}
	}
}

// New creates a ContentBinder for p, reading content from source.
func New(p *page.Page, source DocumentSource, opts ...Option) *ContentBinder {
	c := &ContentBinder{
		page:   p,
		source: source,
		binder: binding.New(),
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run performs the pass now. Calls after the first are no-ops.
func (c *ContentBinder) Run(ctx context.Context) {
	c.gate.Run(nil, func() { c.pass(ctx) })
}

// RunWhenReady performs the pass immediately if the page structure is
// already available, otherwise once it becomes available.
func (c *ContentBinder) RunWhenReady(ctx context.Context) {
	c.gate.Run(c.page.Ready(), func() { c.pass(ctx) })
}

// Wait blocks until the pass has finished or ctx ends.
func (c *ContentBinder) Wait(ctx context.Context) error {
	return c.gate.Wait(ctx)
}

// State reports whether the pass has run.
func (c *ContentBinder) State() lifecycle.State {
	return c.gate.State()
}

// pass fails as a whole only when the document is unavailable; that failure
// is logged once and the page keeps its static content.
func (c *ContentBinder) pass(ctx context.Context) {
	doc := c.page.Document()
	if doc == nil {
		return
	}

	content, err := c.source.Load(ctx)
	if err != nil {
		c.log.Error().Err(err).Str("page", c.page.Source()).Msg("error loading content")
		return
	}

	c.binder.Apply(doc, content)
}
