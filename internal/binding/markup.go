package binding

import (
	"strings"

	"github.com/jonathan/content-binder/internal/types"
	"github.com/microcosm-cc/bluemonday"
)

// DefaultBrandIcon is shown when meta.brandIcon is absent.
const DefaultBrandIcon = "🛡️"

// lineBreak is the markup a "\n" in a line-break-capable field becomes.
const lineBreak = "<br />"

// MarkupFilter transforms markup before it is assigned to the tree.
type MarkupFilter func(markup string) string

// TrustedMarkup passes markup through unchanged. Content documents are
// treated as trusted input by default.
func TrustedMarkup(markup string) string {
	return markup
}

// NewSanitizer returns a filter that strips scripts, event handlers, and
// unsafe URLs while keeping the markup the rules themselves generate.
func NewSanitizer() MarkupFilter {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("span", "a")
	return policy.Sanitize
}

// WithLineBreaks converts "\n" separators to <br /> elements.
func WithLineBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", lineBreak)
}

// BrandMarkup composes the brand icon and label.
func BrandMarkup(icon, name string) string {
	if icon == "" {
		icon = DefaultBrandIcon
	}
	return `<span class="brand-icon">` + icon + `</span> ` + name
}

// NavLinkMarkup renders one navigation entry. An empty href omits the attribute.
func NavLinkMarkup(link types.NavLink) string {
	var sb strings.Builder
	sb.WriteString("<li><a")
	if link.Href != "" {
		sb.WriteString(` href="`)
		sb.WriteString(link.Href)
		sb.WriteString(`"`)
	}
	if link.IsCta {
		sb.WriteString(` class="cta"`)
	}
	sb.WriteString(">")
	sb.WriteString(link.Text)
	sb.WriteString("</a></li>")
	return sb.String()
}
