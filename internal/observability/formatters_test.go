package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/content-binder/internal/binding"
	"github.com/jonathan/content-binder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintContentSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.ContentDocument{
		Meta:     &types.Meta{Title: "Acme Security"},
		Hero:     &types.Hero{Title: "Safe\nSound"},
		Services: &types.CardSection{Cards: []types.Card{{Title: "a"}, {Title: "b"}}},
	}

	p.PrintContentSummary(doc)
	output := buf.String()

	assert.Contains(t, output, "CONTENT DOCUMENT")
	assert.Contains(t, output, "meta")
	assert.Contains(t, output, "services")
	assert.Contains(t, output, "2 card(s)")
	assert.Contains(t, output, "Acme Security")
	assert.Contains(t, output, "Safe⏎Sound")
	assert.NotContains(t, output, "footer")
}

func TestPrintContentSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContentSummary(&types.ContentDocument{})

	assert.Contains(t, buf.String(), "No sections")
}

func TestPrintContentSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContentSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintContentSummary_TruncatesLongTitle(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContentSummary(&types.ContentDocument{Meta: &types.Meta{Title: strings.Repeat("x", 100)}})

	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", 60))
}

func TestPrintRules(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRules(binding.DefaultRules())
	output := buf.String()

	assert.Contains(t, output, "BINDING RULES (17)")
	assert.Contains(t, output, "hero.title")
	assert.Contains(t, output, "attr:href")
	assert.Contains(t, output, ".service-card")
}

func TestPrintRules_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRules(nil)

	assert.Empty(t, buf.String())
}
