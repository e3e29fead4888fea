// Package observability provides formatted output utilities for verbose CLI mode
// and Prometheus metrics for the HTTP API.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-gap/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
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
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

func pad(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= boxWidth-4 {
		return s
	}
	return s + strings.Repeat(" ", boxWidth-4-n)
}

// writeList writes a labelled list capped at limit entries.
func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s (%d):\n", label, len(items))
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s\n", items[i])
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
}

// PrintExtractedKeywords outputs the categorized keywords found in a document.
func (p *Printer) PrintExtractedKeywords(title string, kw *types.ExtractedKeywords) {
	if kw == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total terms: %d\n\n", kw.Count())
	writeList(&sb, "Skills", kw.Skills, maxItemsToShow)
	writeList(&sb, "Knowledge", kw.Knowledge, maxItemsToShow)
	writeList(&sb, "Tools", kw.Tools, maxItemsToShow)
	writeList(&sb, "Requirements", kw.Requirements, 3)

	p.printBox(strings.ToUpper(title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs a skill match result with per-keyword match details.
func (p *Printer) PrintMatchResult(result *types.SkillMatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Match score: %d%%\n", result.MatchScore)
	fmt.Fprintf(&sb, "Matched %d of %d keywords\n\n", len(result.MatchedKeywords), len(result.Matches))

	count := min(len(result.MatchedKeywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := result.MatchedKeywords[i]
		to := ""
		if m.MatchedTo != nil {
			to = *m.MatchedTo
		}
		fmt.Fprintf(&sb, "  ✓ %s → %s (%s, %d)\n", m.Keyword, to, m.MatchType, m.Confidence)
	}
	if len(result.MatchedKeywords) > maxItemsToShow {
		fmt.Fprintf(&sb, "  ... and %d more\n", len(result.MatchedKeywords)-maxItemsToShow)
	}
	if len(result.MissingKeywords) > 0 {
		sb.WriteString("\n")
		writeList(&sb, "Missing", result.MissingKeywords, maxItemsToShow)
	}

	p.printBox("SKILL MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs category scores, missing keywords by severity and suggestions.
func (p *Printer) PrintGapAnalysis(analysis *types.GapAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall:    %3d%%\n", analysis.OverallMatchScore)
	fmt.Fprintf(&sb, "Skills:     %3d%%\n", analysis.SkillsMatchScore)
	fmt.Fprintf(&sb, "Knowledge:  %3d%%\n", analysis.KnowledgeMatchScore)
	fmt.Fprintf(&sb, "Tools:      %3d%%\n\n", analysis.ToolsMatchScore)

	missing := analysis.MissingKeywords
	writeList(&sb, "Critical", missing.Critical, maxItemsToShow)
	writeList(&sb, "Important", missing.Important, maxItemsToShow)
	writeList(&sb, "Nice-to-have", missing.NiceToHave, 3)
	writeList(&sb, "Emphasize", analysis.SkillsToEmphasize, maxItemsToShow)
	writeList(&sb, "De-emphasize", analysis.SkillsToDeemphasize, maxItemsToShow)

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
	p.PrintSuggestions(analysis.Suggestions)
}

// PrintSuggestions outputs the ranked resume suggestions.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		p.printBox("SUGGESTIONS", "✓ Resume already covers the job description")
		return
	}

	titleCaser := cases.Title(language.English)
	var sb strings.Builder
	for i, s := range suggestions {
		label := titleCaser.String(strings.ReplaceAll(string(s.Type), "_", " "))
		fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, strings.ToUpper(string(s.Priority)), label)
		fmt.Fprintf(&sb, "   %s\n", s.Description)
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the full summary for a gap report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *types.GapReport) {
	if report == nil {
		return
	}

	fmt.Fprintf(p.out, "Report %s\n", report.ID)
	if report.RequiredYears != nil || report.CandidateYears != nil {
		fmt.Fprintf(p.out, "Experience: required %s, candidate %s\n",
			formatYears(report.RequiredYears), formatYears(report.CandidateYears))
	}
	p.PrintGapAnalysis(&report.Analysis)

	pot := report.Potential
	p.printBox("IMPROVEMENT POTENTIAL", fmt.Sprintf(
		"Current:    %d%%\nPotential:  %d%%\n\nCritical +%d  Important +%d  Emphasize +%d",
		pot.CurrentScore, pot.PotentialScore, pot.CriticalBoost, pot.ImportantBoost, pot.EmphasizeBoost))
}

func formatYears(y *types.YearsOfExperience) string {
	if y == nil {
		return "n/a"
	}
	if y.Max == nil {
		return fmt.Sprintf("%d+", y.Min)
	}
	return fmt.Sprintf("%d-%d", y.Min, *y.Max)
}
