package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// Decoding is tolerant below the top level: a value of the wrong type is
// treated as absent rather than failing the whole document, so one stray
// field never blocks its siblings from binding.

// errNotObject is returned when the document itself is not a JSON object.
var errNotObject = errors.New("content document must be a JSON object")

// objectFields splits a JSON object into its members. ok is false for any
// other JSON value.
func objectFields(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

// arrayItems splits a JSON array into its elements. ok is false for any
// other JSON value.
func arrayItems(raw json.RawMessage) ([]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

// textValue reads a scalar as display text. Numbers and true are rendered
// as text; falsy scalars (0, false, "") and objects, arrays, or null are
// absent.
func textValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 't':
		return "true"
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil || f == 0 {
			return ""
		}
		return formatNumber(f)
	default:
		return ""
	}
}

// formatNumber prints integers without an exponent up to 1e21 and falls
// back to the shortest representation beyond that.
func formatNumber(f float64) string {
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// flagValue reads any JSON value as a truth value: false, null, 0 and ""
// are false, everything else is true.
func flagValue(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case 'f', 'n':
		return false
	case '"':
		return textValue(raw) != ""
	case '{', '[', 't':
		return true
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		return err == nil && f != 0
	}
}

// decodeSection returns nil when raw is missing or not an object.
func decodeSection[T any, PT interface {
	*T
	json.Unmarshaler
}](raw json.RawMessage) *T {
	if _, ok := objectFields(raw); !ok {
		return nil
	}
	section := PT(new(T))
	if err := section.UnmarshalJSON(raw); err != nil {
		return nil
	}
	return (*T)(section)
}

// decodeCards keeps array positions: a non-object entry becomes an empty
// card so later entries still line up with their template nodes.
func decodeCards(raw json.RawMessage) []Card {
	items, ok := arrayItems(raw)
	if !ok {
		return nil
	}
	cards := make([]Card, len(items))
	for i, item := range items {
		_ = cards[i].UnmarshalJSON(item)
	}
	return cards
}

func decodeLinks(raw json.RawMessage) []NavLink {
	items, ok := arrayItems(raw)
	if !ok {
		return nil
	}
	links := make([]NavLink, len(items))
	for i, item := range items {
		_ = links[i].UnmarshalJSON(item)
	}
	return links
}

// UnmarshalJSON decodes the document tolerantly. Only a non-object top
// level is an error.
func (d *ContentDocument) UnmarshalJSON(data []byte) error {
	fields, ok := objectFields(data)
	if !ok {
		return errNotObject
	}
	*d = ContentDocument{
		Meta:        decodeSection[Meta](fields["meta"]),
		Navigation:  decodeSection[Navigation](fields["navigation"]),
		Hero:        decodeSection[Hero](fields["hero"]),
		WhyChooseUs: decodeSection[CardSection](fields["whyChooseUs"]),
		About:       decodeSection[About](fields["about"]),
		Services:    decodeSection[CardSection](fields["services"]),
		Footer:      decodeSection[Footer](fields["footer"]),
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler; a non-object leaves m empty.
func (m *Meta) UnmarshalJSON(data []byte) error {
	fields, _ := objectFields(data)
	*m = Meta{
		Title:     textValue(fields["title"]),
		BrandIcon: textValue(fields["brandIcon"]),
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A non-array links value is
// absent (nil); an array, even an empty one, is kept.
func (n *Navigation) UnmarshalJSON(data []byte) error {
	fields, _ := objectFields(data)
	*n = Navigation{
		BrandName: textValue(fields["brandName"]),
		Links:     decodeLinks(fields["links"]),
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *NavLink) UnmarshalJSON(data []byte) error {
	fields, _ := objectFields(data)
	*l = NavLink{
		Href:  textValue(fields["href"]),
		Text:  textValue(fields["text"]),
		IsCta: flagValue(fields["isCta"]),
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *Hero) UnmarshalJSON(data []byte) error {
	fields, _ := objectFields(data)
	*h = Hero{
		Title:       textValue(fields["title"]),
		Highlight:   textValue(fields["highlight"]),
		Description: textValue(fields["description"]),
		CtaText:     textValue(fields["ctaText"]),
		CtaLink:     textValue(fields["ctaLink"]),
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *CardSection) UnmarshalJSON(data []byte) error {
	fields, _ := objectFields(data)
	*s = CardSection{
		Title: textValue(fields["title"]),
		Cards: decodeCards(fields["cards"]),
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Card) UnmarshalJSON(data []byte) error {
	fields, _ := objectFields(data)
	*c = Card{
		Title:       textValue(fields["title"]),
		Description: textValue(fields["description"]),
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Mission and vision are nil
// unless they are objects.
func (a *About) UnmarshalJSON(data []byte) error {
	fields, _ := objectFields(data)
	*a = About{
		Title:       textValue(fields["title"]),
		Description: textValue(fields["description"]),
		Mission:     decodeSection[Card](fields["mission"]),
		Vision:      decodeSection[Card](fields["vision"]),
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Footer) UnmarshalJSON(data []byte) error {
	fields, _ := objectFields(data)
	*f = Footer{Copyright: textValue(fields["copyright"])}
	return nil
}
