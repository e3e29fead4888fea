package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-gap/internal/types"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPrintExtractedKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	kw := types.NewExtractedKeywords()
	kw.Add("python", types.CategorySkill)
	kw.Add("distributed systems", types.CategoryKnowledge)
	kw.Add("kafka", types.CategoryUnclassified)
	kw.Add("5+ years", types.CategoryRequirement)

	p.PrintExtractedKeywords("job keywords", &kw)
	output := buf.String()

	assert.Contains(t, output, "JOB KEYWORDS")
	assert.Contains(t, output, "Total terms: 4")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "distributed systems")
	assert.Contains(t, output, "kafka")
	assert.Contains(t, output, "Requirements (1)")
}

func TestPrintExtractedKeywords_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractedKeywords("resume", nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matched := types.SkillMatch{Keyword: "golang", MatchedTo: strPtr("go"), MatchType: types.MatchSynonym, Confidence: 95}
	result := &types.SkillMatchResult{
		Matches: []types.SkillMatch{
			matched,
			{Keyword: "rust", MatchType: types.MatchNone},
		},
		MatchedKeywords: []types.SkillMatch{matched},
		MissingKeywords: []string{"rust"},
		MatchScore:      50,
	}

	p.PrintMatchResult(result)
	output := buf.String()

	assert.Contains(t, output, "SKILL MATCH")
	assert.Contains(t, output, "Match score: 50%")
	assert.Contains(t, output, "Matched 1 of 2 keywords")
	assert.Contains(t, output, "golang → go (synonym, 95)")
	assert.Contains(t, output, "Missing (1)")
}

func TestPrintGapAnalysis_ListsAreCapped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.GapAnalysis{
		OverallMatchScore: 42,
		MissingKeywords: types.MissingKeywords{
			Critical: []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"},
		},
	}

	p.PrintGapAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "GAP ANALYSIS")
	assert.Contains(t, output, "Overall:     42%")
	assert.Contains(t, output, "a5")
	assert.NotContains(t, output, "a6")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "Resume already covers the job description")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions([]types.Suggestion{
		{Type: types.SuggestionAddKeyword, Priority: types.PriorityCritical, Description: "Add kafka"},
		{Type: types.SuggestionReorderSkills, Priority: types.PriorityNiceToHave, Description: "Reorder skills"},
	})
	output := buf.String()

	assert.Contains(t, output, "1. [CRITICAL] Add Keyword")
	assert.Contains(t, output, "2. [NICE-TO-HAVE] Reorder Skills")
	assert.Contains(t, output, "Add kafka")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	maxYears := 7
	report := &types.GapReport{
		ID:             uuid.New(),
		RequiredYears:  &types.YearsOfExperience{Min: 5, Max: &maxYears},
		CandidateYears: &types.YearsOfExperience{Min: 3},
		Potential:      types.ImprovementPotential{CurrentScore: 40, PotentialScore: 70, CriticalBoost: 20},
	}

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, report.ID.String())
	assert.Contains(t, output, "required 5-7, candidate 3+")
	assert.Contains(t, output, "IMPROVEMENT POTENTIAL")
	assert.Contains(t, output, "Potential:  70%")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	assert.Len(t, lines, 5)
	assert.Contains(t, lines[3], "...")
	for _, line := range lines {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
}
