// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/content-binder/internal/binding"
	"github.com/jonathan/content-binder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxTextLength is the longest field value shown before truncation
	maxTextLength = 40
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string) string {
	s = strings.ReplaceAll(s, "\n", "⏎")
	r := []rune(s)
	if len(r) > maxTextLength {
		return string(r[:maxTextLength-3]) + "..."
	}
	return s
}

// PrintContentSummary outputs which sections the content document provides.
func (p *Printer) PrintContentSummary(doc *types.ContentDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sections := doc.Sections()
	if len(sections) == 0 {
		sb.WriteString("No sections: page keeps its static content\n")
	}
	for _, s := range sections {
		if s.CardCount >= 0 {
			sb.WriteString(fmt.Sprintf("  • %-12s %d card(s)\n", s.Name, s.CardCount))
		} else {
			sb.WriteString(fmt.Sprintf("  • %s\n", s.Name))
		}
	}

	if doc.Meta != nil && doc.Meta.Title != "" {
		sb.WriteString(fmt.Sprintf("\nTitle:  %s\n", truncate(doc.Meta.Title)))
	}
	if doc.Hero != nil && doc.Hero.Title != "" {
		sb.WriteString(fmt.Sprintf("Hero:   %s\n", truncate(doc.Hero.Title)))
	}

	p.printBox("CONTENT DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRules outputs the binding rule table.
func (p *Printer) PrintRules(rules []binding.Rule) {
	if len(rules) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range rules {
		kind := r.Kind.String()
		if r.Kind == binding.Attr {
			kind += ":" + r.Attr
		}
		sb.WriteString(fmt.Sprintf("%-22s %-10s\n", r.Name, kind))
		sb.WriteString(fmt.Sprintf("  %s\n", r.Selector))
	}

	p.printBox(fmt.Sprintf("BINDING RULES (%d)", len(rules)), strings.TrimSuffix(sb.String(), "\n"))
}
