// Package types provides type definitions for the content document bound into host pages.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContentDocument is the JSON payload supplying page copy.
// Every section is optional; a nil section means "nothing to update here".
type ContentDocument struct {
	Meta        *Meta        `json:"meta,omitempty"`
	Navigation  *Navigation  `json:"navigation,omitempty"`
	Hero        *Hero        `json:"hero,omitempty"`
	WhyChooseUs *CardSection `json:"whyChooseUs,omitempty"`
	About       *About       `json:"about,omitempty"`
	Services    *CardSection `json:"services,omitempty"`
	Footer      *Footer      `json:"footer,omitempty"`
}

// Meta holds page-level metadata
type Meta struct {
	Title     string `json:"title,omitempty"`
	BrandIcon string `json:"brandIcon,omitempty"`
}

// Navigation holds the brand label and the nav link list.
// A nil Links slice means the field was absent; an empty one clears the list.
type Navigation struct {
	BrandName string    `json:"brandName,omitempty"`
	Links     []NavLink `json:"links,omitempty"`
}

// NavLink is a single navigation entry
type NavLink struct {
	Href  string `json:"href,omitempty"`
	Text  string `json:"text,omitempty"`
	IsCta bool   `json:"isCta,omitempty"`
}

// Hero holds the hero banner copy
type Hero struct {
	Title       string `json:"title,omitempty"` // may contain "\n" line separators
	Highlight   string `json:"highlight,omitempty"`
	Description string `json:"description,omitempty"`
	CtaText     string `json:"ctaText,omitempty"`
	CtaLink     string `json:"ctaLink,omitempty"`
}

// CardSection is a titled section with repeating cards (why-choose-us, services)
type CardSection struct {
	Title string `json:"title,omitempty"`
	Cards []Card `json:"cards,omitempty"`
}

// Card is a title/description pair bound into a pre-rendered card node
type Card struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// About holds the about section, including the mission and vision cards
type About struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Mission     *Card  `json:"mission,omitempty"`
	Vision      *Card  `json:"vision,omitempty"`
}

// Footer holds footer copy
type Footer struct {
	Copyright string `json:"copyright,omitempty"`
}

// SectionInfo summarizes one section for display
type SectionInfo struct {
	Name      string
	CardCount int // -1 when the section has no card list
}

// Sections returns the sections present in the document, in page order.
func (d *ContentDocument) Sections() []SectionInfo {
	if d == nil {
		return nil
	}

	var out []SectionInfo
	if d.Meta != nil {
		out = append(out, SectionInfo{Name: "meta", CardCount: -1})
	}
	if d.Navigation != nil {
		out = append(out, SectionInfo{Name: "navigation", CardCount: -1})
	}
	if d.Hero != nil {
		out = append(out, SectionInfo{Name: "hero", CardCount: -1})
	}
	if d.WhyChooseUs != nil {
		out = append(out, SectionInfo{Name: "whyChooseUs", CardCount: len(d.WhyChooseUs.Cards)})
	}
	if d.About != nil {
		count := 0
		if d.About.Mission != nil {
			count++
		}
		if d.About.Vision != nil {
			count++
		}
		out = append(out, SectionInfo{Name: "about", CardCount: count})
	}
	if d.Services != nil {
		out = append(out, SectionInfo{Name: "services", CardCount: len(d.Services.Cards)})
	}
	if d.Footer != nil {
		out = append(out, SectionInfo{Name: "footer", CardCount: -1})
	}
	return out
}
