package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector lists elements that never carry candidate or query content.
const noiseSelector = "nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup"

// contentSelectors are tried in order to find the main content.
var contentSelectors = []string{
	".job-description",
	"#job-description",
	".resume",
	"#resume",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractMainText parses HTML and returns the text of its main content,
// falling back to the body element.
func ExtractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	// Block elements become line breaks so headings stay on their own line.
	main.Find("p, div, li, h1, h2, h3, h4, h5, h6, br, tr").Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})

	lines := strings.Split(main.Text(), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), nil
}
