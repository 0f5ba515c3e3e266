package binding

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/content-binder/internal/types"
)

// Card templates carry their title and description in these elements.
const (
	cardTitleSelector       = "h3"
	cardDescriptionSelector = "p"
)

// Binder applies a rule table to a document.
type Binder struct {
	rules  []Rule
	filter MarkupFilter
}

// Option configures a Binder.
type Option func(*Binder)

// WithRules replaces the default rule table.
func WithRules(rules []Rule) Option {
	return func(b *Binder) {
		b.rules = rules
	}
}

// WithMarkupFilter sets the filter applied to Markup and Fragments values.
func WithMarkupFilter(filter MarkupFilter) Option {
	return func(b *Binder) {
		if filter != nil {
			b.filter = filter
		}
	}
}

// WithSanitizer sanitizes markup values instead of trusting them.
func WithSanitizer() Option {
	return WithMarkupFilter(NewSanitizer())
}

// New creates a Binder with DefaultRules and trusted markup.
func New(opts ...Option) *Binder {
	b := &Binder{
		rules:  DefaultRules(),
		filter: TrustedMarkup,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Rules returns the binder's rule table.
func (b *Binder) Rules() []Rule {
	return b.rules
}

// Apply runs every rule against doc. It never fails: rules whose field or
// target node is missing are skipped without affecting the others.
func (b *Binder) Apply(doc *goquery.Document, content *types.ContentDocument) {
	if doc == nil || content == nil {
		return
	}
	for _, rule := range b.rules {
		b.applyRule(doc.Selection, rule, content)
	}
}

func (b *Binder) applyRule(root *goquery.Selection, rule Rule, content *types.ContentDocument) {
	switch rule.Kind {
	case Text, Markup, Attr:
		if rule.Value == nil {
			return
		}
		value, ok := rule.Value(content)
		if !ok {
			return
		}
		nodes := locate(root, rule)
		if nodes.Length() == 0 {
			return
		}
		switch rule.Kind {
		case Text:
			nodes.SetText(value)
		case Markup:
			nodes.SetHtml(b.filter(value))
		case Attr:
			nodes.SetAttr(rule.Attr, value)
		}

	case Fragments:
		if rule.Fragments == nil {
			return
		}
		fragments, ok := rule.Fragments(content)
		if !ok {
			return
		}
		nodes := locate(root, rule)
		if nodes.Length() == 0 {
			return
		}
		nodes.SetHtml(b.filter(strings.Join(fragments, "")))

	case Cards:
		if rule.Cards == nil {
			return
		}
		cards, ok := rule.Cards(content)
		if !ok {
			return
		}
		zip(locate(root, rule), len(cards), func(i int, node *goquery.Selection) {
			bindCard(node, cards[i])
		})
	}
}

// locate resolves a rule's target nodes, creating the target when the rule allows it.
func locate(root *goquery.Selection, rule Rule) *goquery.Selection {
	nodes := root.Find(rule.Selector)
	if nodes.Length() == 0 && rule.CreateIn != "" {
		parent := root.Find(rule.CreateIn).First()
		if parent.Length() == 0 {
			return nodes
		}
		parent.AppendHtml("<" + rule.Selector + "></" + rule.Selector + ">")
		nodes = root.Find(rule.Selector)
	}
	if rule.First {
		nodes = nodes.First()
	}
	return nodes
}

func bindCard(node *goquery.Selection, card types.Card) {
	if card.Title != "" {
		if title := node.Find(cardTitleSelector).First(); title.Length() > 0 {
			title.SetText(card.Title)
		}
	}
	if card.Description != "" {
		if desc := node.Find(cardDescriptionSelector).First(); desc.Length() > 0 {
			desc.SetText(card.Description)
		}
	}
}
