package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func sampleRecord(template string) types.ResumeRecord {
	return types.ResumeRecord{
		ID:       "resume_1_abc",
		Title:    "Jane Doe",
		Template: template,
		Data: types.ResumeData{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: "Boston, MA",
			Summary:  "Backend engineer with a storage focus.",
			Skills:   []string{"Go", "PostgreSQL"},
			Education: []types.EducationEntry{
				{Degree: "Bachelor of Science", Major: "Computer Science", School: "MIT", Year: "2020"},
			},
			Experience: []types.ExperienceEntry{
				{Position: "Software Engineer", Company: "Initech", Duration: "2 years", Description: "Built the billing pipeline."},
			},
			Languages: []types.LanguageEntry{{Name: "English", Proficiency: "Native"}},
		},
	}
}

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestHTML_ClassicLayout(t *testing.T) {
	markup, err := HTML(sampleRecord(types.TemplateClassic))
	require.NoError(t, err)

	doc := parse(t, markup)
	assert.Equal(t, 1, doc.Find("div.template1-design").Length())
	assert.Equal(t, "Jane Doe", doc.Find("h1.resume-name").Text())
	assert.Equal(t, 2, doc.Find("ul.skill-list li").Length())

	titles := doc.Find("h2.section-title").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"Summary", "Education", "Experience", "Skills", "Languages"}, titles)
}

func TestHTML_ModernLayoutHasSidebar(t *testing.T) {
	markup, err := HTML(sampleRecord(types.TemplateModern))
	require.NoError(t, err)

	doc := parse(t, markup)
	assert.Equal(t, 1, doc.Find("div.resume-sidebar").Length())
	assert.Equal(t, 1, doc.Find("div.resume-main").Length())
	// Skills live in the sidebar in this layout.
	assert.Equal(t, 2, doc.Find("div.resume-sidebar ul.skill-list li").Length())
}

func TestHTML_MinimalLayoutJoinsSkills(t *testing.T) {
	markup, err := HTML(sampleRecord(types.TemplateMinimal))
	require.NoError(t, err)

	doc := parse(t, markup)
	assert.Equal(t, "Go, PostgreSQL", doc.Find("p.skill-line").Text())
	assert.Contains(t, doc.Find("p.contact-line").Text(), "jane@example.com")
}

func TestHTML_EmptyNameUsesPlaceholder(t *testing.T) {
	rec := types.ResumeRecord{Template: types.TemplateClassic}
	markup, err := HTML(rec)
	require.NoError(t, err)
	assert.Equal(t, "Your Name", parse(t, markup).Find("h1.resume-name").Text())
}

func TestHTML_EscapesUserContent(t *testing.T) {
	rec := sampleRecord(types.TemplateClassic)
	rec.Data.Summary = `<script>alert("x")</script>`
	markup, err := HTML(rec)
	require.NoError(t, err)
	assert.NotContains(t, markup, "<script>")
	// The literal text survives escaping.
	assert.Equal(t, rec.Data.Summary, parse(t, markup).Find(".resume-section p").First().Text())
}

func TestHTML_UnknownTemplate(t *testing.T) {
	_, err := HTML(types.ResumeRecord{Template: "template9"})
	require.Error(t, err)
	var renderErr *Error
	assert.ErrorAs(t, err, &renderErr)
}

func TestDocument_WrapsAndEscapesTitle(t *testing.T) {
	page := Document(`Jane <Doe>`, "<p>body</p>")
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>Jane &lt;Doe&gt;</title>")
	assert.Contains(t, page, "<p>body</p>")
}

func TestText_OneLinePerBlock(t *testing.T) {
	markup, err := HTML(sampleRecord(types.TemplateMinimal))
	require.NoError(t, err)

	text, err := Text(markup)
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	assert.Equal(t, "Jane Doe", lines[0])
	assert.Contains(t, lines, "Go, PostgreSQL")
	assert.NotContains(t, text, "<")
}

func TestText_SkipsContainerElements(t *testing.T) {
	text, err := Text(`<p><span>inner</span></p><p>outer</p>`)
	require.NoError(t, err)
	assert.Equal(t, "inner\nouter", text)
}
