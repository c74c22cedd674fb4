// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of one record.
func (p *Printer) PrintResume(rec *types.ResumeRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", rec.Title))
	sb.WriteString(fmt.Sprintf("Template: %s\n", rec.Template))
	sb.WriteString(fmt.Sprintf("Updated:  %s\n", rec.UpdatedAt.Format("2006-01-02 15:04")))
	sb.WriteString("\n")

	if rec.Data.Email != "" {
		sb.WriteString(fmt.Sprintf("Email: %s\n", rec.Data.Email))
	}
	if rec.Data.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone: %s\n", rec.Data.Phone))
	}

	sb.WriteString(fmt.Sprintf("\nEducation: %d  Experience: %d  Skills: %d\n",
		len(rec.Data.Education), len(rec.Data.Experience), len(rec.Data.Skills)))
	sb.WriteString(fmt.Sprintf("Projects: %d  Certifications: %d  Languages: %d",
		len(rec.Data.Projects), len(rec.Data.Certifications), len(rec.Data.Languages)))

	p.printBox(fmt.Sprintf("RESUME %s", rec.ID), sb.String())
}

// PrintSuggestions outputs a ranked suggestion list with matched spans marked.
func (p *Printer) PrintSuggestions(input string, results []suggest.Suggestion) {
	var sb strings.Builder

	if len(results) == 0 {
		sb.WriteString("No matches found")
	}

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := results[i]
		sb.WriteString(fmt.Sprintf("%2d. %s", i+1, markHighlight(s)))
		if s.Score > 0 {
			sb.WriteString(fmt.Sprintf("  (score %d)", s.Score))
		}
		sb.WriteString("\n")
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(results)-maxItemsToShow))
	}

	title := "SUGGESTIONS"
	if input != "" {
		title = fmt.Sprintf("SUGGESTIONS for %q", input)
	}
	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// markHighlight brackets the matched span of a suggestion for terminal output.
func markHighlight(s suggest.Suggestion) string {
	h := s.Highlight
	if h == nil || h.Start < 0 || h.End > len(s.Text) || h.Start >= h.End {
		return s.Text
	}
	return s.Text[:h.Start] + "[" + s.Text[h.Start:h.End] + "]" + s.Text[h.End:]
}
