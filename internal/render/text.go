package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text extracts a plain-text preview from rendered markup, one line per block
// element, for terminal display.
func Text(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &Error{Message: "failed to parse rendered markup", Cause: err}
	}

	var lines []string
	doc.Find("h1, h2, h3, p, li, span").Each(func(_ int, s *goquery.Selection) {
		// Skip containers whose text comes from child block elements.
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})
	return strings.Join(lines, "\n"), nil
}
