// Package binding maps a content document onto a pre-rendered HTML template.
//
// Each Rule pairs a path into the document with a locator for target nodes
// and an assignment kind. Rules are applied independently: a missing field,
// section, or node makes that rule a no-op and never affects its siblings.
package binding

import (
	"github.com/jonathan/content-binder/internal/types"
)

// Kind is how a rule assigns its value to the target nodes.
type Kind int

const (
	// Text replaces the node's children with an escaped text node.
	Text Kind = iota
	// Markup replaces the node's children with trusted markup.
	Markup
	// Attr replaces a single attribute value.
	Attr
	// Fragments replaces the node's children with markup built from an array.
	Fragments
	// Cards binds array entries to existing template nodes by position.
	Cards
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Markup:
		return "markup"
	case Attr:
		return "attr"
	case Fragments:
		return "fragments"
	case Cards:
		return "cards"
	default:
		return "unknown"
	}
}

// ValueFunc resolves a scalar field. ok is false when the field is absent.
type ValueFunc func(doc *types.ContentDocument) (value string, ok bool)

// FragmentsFunc resolves an array field into markup fragments.
type FragmentsFunc func(doc *types.ContentDocument) (fragments []string, ok bool)

// CardsFunc resolves an array of cards.
type CardsFunc func(doc *types.ContentDocument) (cards []types.Card, ok bool)

// Rule is a single statically declared binding.
type Rule struct {
	Name     string
	Selector string
	Kind     Kind

	// Attr names the attribute for Attr rules.
	Attr string

	// First restricts the locator to its first match.
	First bool

	// CreateIn is a parent selector under which a missing target is created.
	// Only valid when Selector is a bare tag name.
	CreateIn string

	Value     ValueFunc
	Fragments FragmentsFunc
	Cards     CardsFunc
}

// present maps the document's "empty means absent" convention onto ok.
func present(s string) (string, bool) {
	return s, s != ""
}
