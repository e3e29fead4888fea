package fetch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// commonNoise is removed from every page before text extraction.
const commonNoise = "nav, footer, script, style, noscript, svg, iframe, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

var (
	blockElements = map[string]bool{
		"p": true, "div": true, "section": true, "article": true, "main": true, "header": true,
		"ul": true, "ol": true, "dl": true, "dt": true, "dd": true,
		"table": true, "tr": true, "blockquote": true, "pre": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	}
	spaceRunRe = regexp.MustCompile(`\s+`)
)

// HTMLToText parses html and returns the text of the first element matching
// contentSelectors (or body), one line per block element. List items become
// "- " bullets and headings keep their own line so section detection still
// works on the result. Elements matching noiseSelectors are dropped.
func HTMLToText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(commonNoise).Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	var sb strings.Builder
	writeText(&sb, content)
	return cleanLines(sb.String()), nil
}

func writeText(sb *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		switch name := goquery.NodeName(node); {
		case name == "#text":
			sb.WriteString(spaceRunRe.ReplaceAllString(node.Text(), " "))
		case name == "br":
			sb.WriteString("\n")
		case name == "li":
			sb.WriteString("\n- ")
			writeText(sb, node)
			sb.WriteString("\n")
		case blockElements[name]:
			sb.WriteString("\n")
			writeText(sb, node)
			sb.WriteString("\n")
		default:
			writeText(sb, node)
		}
	})
}

// cleanLines trims every line, collapses inner whitespace and drops empty
// lines and bare bullets.
func cleanLines(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRunRe.ReplaceAllString(strings.TrimSpace(line), " ")
		if line == "" || line == "-" {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}

// DefaultTextSelectors returns standard selectors for general web content.
func DefaultTextSelectors() []string {
	return []string{
		"main",
		"article",
		".content",
		"#content",
		".main-content",
		"#main-content",
	}
}

// JobPostingSelectors returns selectors optimized for job board pages.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}
