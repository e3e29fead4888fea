// Package gap compares a resume against a job description and turns the
// differences into scores and suggestions.
package gap

import (
	"math"
	"strings"

	"github.com/jonathan/resume-gap/internal/matching"
	"github.com/jonathan/resume-gap/internal/types"
)

// Fixed category weights for the overall score.
const (
	skillsWeight    = 0.40
	knowledgeWeight = 0.35
	toolsWeight     = 0.25
)

const (
	maxEmphasize   = 5
	maxDeemphasize = 5
)

// CategoryScores holds the per-category match scores (0-100).
type CategoryScores struct {
	Skills    int `json:"skills"`
	Knowledge int `json:"knowledge"`
	Tools     int `json:"tools"`
}

// CalculateWeightedMatchScore combines category scores with the fixed 40/35/25 weights.
func CalculateWeightedMatchScore(scores CategoryScores) int {
	weighted := float64(scores.Skills)*skillsWeight +
		float64(scores.Knowledge)*knowledgeWeight +
		float64(scores.Tools)*toolsWeight
	return int(math.Round(weighted))
}

// AnalyzeGap compares resume keywords with job-description keywords using
// the to-end section heuristic for severity.
func AnalyzeGap(resume, job types.ExtractedKeywords, jobText string) types.GapAnalysis {
	return AnalyzeGapWithMode(resume, job, jobText, matching.SectionToEnd)
}

// AnalyzeGapWithMode is AnalyzeGap with an explicit section mode.
func AnalyzeGapWithMode(resume, job types.ExtractedKeywords, jobText string, mode matching.SectionMode) types.GapAnalysis {
	skillsResult := matching.MatchSkills(job.Skills, resume.Skills)
	knowledgeResult := matching.MatchSkills(job.Knowledge, resume.Knowledge)
	toolsResult := matching.MatchSkills(job.Tools, resume.Tools)

	scores := CategoryScores{
		Skills:    skillsResult.MatchScore,
		Knowledge: knowledgeResult.MatchScore,
		Tools:     toolsResult.MatchScore,
	}

	missing := unique(skillsResult.MissingKeywords, knowledgeResult.MissingKeywords, toolsResult.MissingKeywords)

	analysis := types.GapAnalysis{
		OverallMatchScore:   CalculateWeightedMatchScore(scores),
		SkillsMatchScore:    scores.Skills,
		KnowledgeMatchScore: scores.Knowledge,
		ToolsMatchScore:     scores.Tools,
		MatchedKeywords: types.MatchedKeywords{
			Skills:    skillsResult.MatchedKeywords,
			Knowledge: knowledgeResult.MatchedKeywords,
			Tools:     toolsResult.MatchedKeywords,
		},
		MissingKeywords: matching.AnalyzeMissingKeywords(missing, jobText, mode),
	}

	emphasizable := nonExact(skillsResult.MatchedKeywords, toolsResult.MatchedKeywords)
	analysis.SkillsToEmphasize = skillsToEmphasize(emphasizable)
	analysis.SkillsToDeemphasize = skillsToDeemphasize(resume, job)
	analysis.Suggestions = generateSuggestions(analysis.MissingKeywords, emphasizable, job)
	return analysis
}

// nonExact returns matches made by any tier other than exact, in input order.
func nonExact(groups ...[]types.SkillMatch) []types.SkillMatch {
	var out []types.SkillMatch
	for _, group := range groups {
		for _, m := range group {
			if m.Matched() && m.MatchType != types.MatchExact {
				out = append(out, m)
			}
		}
	}
	return out
}

// skillsToEmphasize lists the resume-side terms of non-exact matches.
func skillsToEmphasize(matches []types.SkillMatch) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, m := range matches {
		if len(out) == maxEmphasize {
			break
		}
		key := strings.ToLower(*m.MatchedTo)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, *m.MatchedTo)
	}
	return out
}

// skillsToDeemphasize lists resume skills and tools that share no substring,
// in either direction, with any job-description skill, knowledge or tool term.
func skillsToDeemphasize(resume, job types.ExtractedKeywords) []string {
	var jobTerms []string
	for _, group := range [][]string{job.Skills, job.Knowledge, job.Tools} {
		for _, term := range group {
			if lower := strings.ToLower(strings.TrimSpace(term)); lower != "" {
				jobTerms = append(jobTerms, lower)
			}
		}
	}

	out := []string{}
	seen := make(map[string]bool)
	for _, group := range [][]string{resume.Skills, resume.Tools} {
		for _, term := range group {
			if len(out) == maxDeemphasize {
				return out
			}
			lower := strings.ToLower(strings.TrimSpace(term))
			if lower == "" || seen[lower] || overlapsAny(lower, jobTerms) {
				continue
			}
			seen[lower] = true
			out = append(out, term)
		}
	}
	return out
}

func overlapsAny(term string, others []string) bool {
	for _, other := range others {
		if strings.Contains(term, other) || strings.Contains(other, term) {
			return true
		}
	}
	return false
}

// unique concatenates lists, dropping exact duplicates.
func unique(lists ...[]string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, s := range list {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
