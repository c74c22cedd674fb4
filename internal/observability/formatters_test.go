package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestPrintResume_SummarizesRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := &types.ResumeRecord{
		ID:        "resume_1_abc",
		Title:     "Jane Doe",
		Template:  types.TemplateClassic,
		UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Data: types.ResumeData{
			Email:  "jane@example.com",
			Skills: []string{"Go", "PostgreSQL"},
		},
	}
	p.PrintResume(rec)

	out := buf.String()
	assert.Contains(t, out, "RESUME resume_1_abc")
	assert.Contains(t, out, "Title:    Jane Doe")
	assert.Contains(t, out, "Email: jane@example.com")
	assert.Contains(t, out, "Skills: 2")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintResume_NilIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSuggestions_MarksSpansAndTruncates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []suggest.Suggestion{
		{Text: "Harvard University", Score: 582, Highlight: &suggest.Span{Start: 0, End: 4}},
		{Text: "Python", Score: 50},
		{Text: "A"}, {Text: "B"}, {Text: "C"}, {Text: "D"}, {Text: "E"},
	}
	p.PrintSuggestions("harv", results)

	out := buf.String()
	assert.Contains(t, out, `SUGGESTIONS for "harv"`)
	assert.Contains(t, out, "[Harv]ard University")
	assert.Contains(t, out, "(score 582)")
	assert.Contains(t, out, "... and 2 more")
	// Score 0 entries carry no score column.
	assert.NotContains(t, out, "(score 0)")
}

func TestPrintSuggestions_EmptyResults(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestions("", nil)
	out := buf.String()
	assert.Contains(t, out, "SUGGESTIONS")
	assert.Contains(t, out, "No matches found")
}

func TestMarkHighlight_IgnoresInvalidSpans(t *testing.T) {
	assert.Equal(t, "Python", markHighlight(suggest.Suggestion{Text: "Python"}))
	assert.Equal(t, "Python", markHighlight(suggest.Suggestion{
		Text: "Python", Highlight: &suggest.Span{Start: 4, End: 2},
	}))
	assert.Equal(t, "Py[tho]n", markHighlight(suggest.Suggestion{
		Text: "Python", Highlight: &suggest.Span{Start: 2, End: 5},
	}))
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.printBox("TITLE", strings.Repeat("x", 120))
	assert.Contains(t, buf.String(), "...")
}
