package ingestion

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRunRe = regexp.MustCompile(`\s+`)
	excessBlankRe   = regexp.MustCompile(`\n\n\n+`)
	bulletGlyphRe   = regexp.MustCompile(`^[\x{2022}\x{00B7}\x{25AA}\x{25CF}\x{2023}\x{2043}]\s*`)
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// NFKC folds ligatures and full-width forms that PDF extraction leaves behind.
	content = norm.NFKC.String(content)

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = excessBlankRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]

	// Markdown headings lose their indentation.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Bullet glyphs become markdown bullets so section detection sees one style.
	if bulletGlyphRe.MatchString(trimmed) {
		trimmed = bulletGlyphRe.ReplaceAllString(trimmed, "- ")
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return indent + trimmed[:2] + whitespaceRunRe.ReplaceAllString(strings.TrimSpace(trimmed[2:]), " ")
	}

	return indent + whitespaceRunRe.ReplaceAllString(strings.TrimSpace(trimmed), " ")
}
