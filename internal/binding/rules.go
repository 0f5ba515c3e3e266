package binding

import (
	"github.com/jonathan/content-binder/internal/types"
)

// DefaultRules returns the fixed rule table for the landing page template.
// Rules run in order against the live tree.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "meta.title",
			Selector: "title",
			Kind:     Text,
			First:    true,
			CreateIn: "head",
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.Meta == nil {
					return "", false
				}
				return present(doc.Meta.Title)
			},
		},
		{
			Name:     "navigation.brandName",
			Selector: ".brand",
			Kind:     Markup,
			First:    true,
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.Navigation == nil || doc.Navigation.BrandName == "" {
					return "", false
				}
				icon := ""
				if doc.Meta != nil {
					icon = doc.Meta.BrandIcon
				}
				return BrandMarkup(icon, doc.Navigation.BrandName), true
			},
		},
		{
			Name:     "navigation.links",
			Selector: ".nav-links",
			Kind:     Fragments,
			First:    true,
			Fragments: func(doc *types.ContentDocument) ([]string, bool) {
				if doc.Navigation == nil || doc.Navigation.Links == nil {
					return nil, false
				}
				fragments := make([]string, 0, len(doc.Navigation.Links))
				for _, link := range doc.Navigation.Links {
					fragments = append(fragments, NavLinkMarkup(link))
				}
				return fragments, true
			},
		},
		{
			Name:     "hero.title",
			Selector: ".hero-text h1",
			Kind:     Markup,
			First:    true,
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.Hero == nil || doc.Hero.Title == "" {
					return "", false
				}
				return WithLineBreaks(doc.Hero.Title), true
			},
		},
		{
			Name:     "hero.highlight",
			Selector: ".hero-text .highlight",
			Kind:     Text,
			First:    true,
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.Hero == nil {
					return "", false
				}
				return present(doc.Hero.Highlight)
			},
		},
		{
			Name:     "hero.description",
			Selector: ".hero-text p",
			Kind:     Text,
			First:    true,
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.Hero == nil {
					return "", false
				}
				return present(doc.Hero.Description)
			},
		},
		{
			Name:     "hero.ctaText",
			Selector: ".hero-cta",
			Kind:     Text,
			First:    true,
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.Hero == nil {
					return "", false
				}
				return present(doc.Hero.CtaText)
			},
		},
		{
			// The link only moves together with its label.
			Name:     "hero.ctaLink",
			Selector: ".hero-cta",
			Kind:     Attr,
			Attr:     "href",
			First:    true,
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.Hero == nil || doc.Hero.CtaText == "" {
					return "", false
				}
				return present(doc.Hero.CtaLink)
			},
		},
		{
			Name:     "whyChooseUs.title",
			Selector: "#why-choose-us .section-header h2",
			Kind:     Text,
			First:    true,
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.WhyChooseUs == nil {
					return "", false
				}
				return present(doc.WhyChooseUs.Title)
			},
		},
		{
			Name:     "whyChooseUs.cards",
			Selector: "#why-choose-us .card",
			Kind:     Cards,
			Cards: func(doc *types.ContentDocument) ([]types.Card, bool) {
				if doc.WhyChooseUs == nil || doc.WhyChooseUs.Cards == nil {
					return nil, false
				}
				return doc.WhyChooseUs.Cards, true
			},
		},
		{
			Name:     "about.title",
			Selector: ".about-content h2",
			Kind:     Text,
			First:    true,
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.About == nil {
					return "", false
				}
				return present(doc.About.Title)
			},
		},
		{
			Name:     "about.description",
			Selector: ".about-content p",
			Kind:     Text,
			First:    true,
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.About == nil {
					return "", false
				}
				return present(doc.About.Description)
			},
		},
		{
			Name:     "about.mission",
			Selector: ".about-cards .card:nth-child(1)",
			Kind:     Cards,
			First:    true,
			Cards: func(doc *types.ContentDocument) ([]types.Card, bool) {
				if doc.About == nil || doc.About.Mission == nil {
					return nil, false
				}
				return []types.Card{*doc.About.Mission}, true
			},
		},
		{
			Name:     "about.vision",
			Selector: ".about-cards .card:nth-child(2)",
			Kind:     Cards,
			First:    true,
			Cards: func(doc *types.ContentDocument) ([]types.Card, bool) {
				if doc.About == nil || doc.About.Vision == nil {
					return nil, false
				}
				return []types.Card{*doc.About.Vision}, true
			},
		},
		{
			Name:     "services.title",
			Selector: ".services-title",
			Kind:     Text,
			First:    true,
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.Services == nil {
					return "", false
				}
				return present(doc.Services.Title)
			},
		},
		{
			Name:     "services.cards",
			Selector: ".service-card",
			Kind:     Cards,
			Cards: func(doc *types.ContentDocument) ([]types.Card, bool) {
				if doc.Services == nil || doc.Services.Cards == nil {
					return nil, false
				}
				return doc.Services.Cards, true
			},
		},
		{
			Name:     "footer.copyright",
			Selector: "footer p",
			Kind:     Text,
			First:    true,
			Value: func(doc *types.ContentDocument) (string, bool) {
				if doc.Footer == nil {
					return "", false
				}
				return present(doc.Footer.Copyright)
			},
		},
	}
}
