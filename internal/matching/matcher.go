// Package matching compares job-description keywords against resume keywords
// and buckets the unmatched ones by severity.
package matching

import (
	"math"
	"strings"

	"github.com/jonathan/resume-gap/internal/parsing"
	"github.com/jonathan/resume-gap/internal/types"
)

// resumeTerm is a resume keyword normalized once per MatchSkills call.
type resumeTerm struct {
	original     string
	normalized   string
	canonical    string
	hasCanonical bool
}

func prepareResumeTerms(keywords []string) []resumeTerm {
	terms := make([]resumeTerm, 0, len(keywords))
	for _, kw := range keywords {
		normalized := parsing.NormalizeSkill(kw)
		canonical, ok := parsing.CanonicalForm(normalized)
		terms = append(terms, resumeTerm{
			original:     kw,
			normalized:   normalized,
			canonical:    canonical,
			hasCanonical: ok,
		})
	}
	return terms
}

// MatchSkills finds the best resume counterpart for each job-description keyword.
//
// Tiers, in order: exact normalized match (100), shared synonym family (95),
// Levenshtein similarity (85), substring containment (70). A resume term only
// replaces the current best with a strictly higher confidence, so among equal
// non-exact matches the first resume term wins. An exact match stops the scan.
func MatchSkills(jdKeywords, resumeKeywords []string) types.SkillMatchResult {
	result := types.SkillMatchResult{
		Matches:         make([]types.SkillMatch, 0, len(jdKeywords)),
		MatchedKeywords: []types.SkillMatch{},
		MissingKeywords: []string{},
	}

	resume := prepareResumeTerms(resumeKeywords)
	for _, kw := range jdKeywords {
		match := bestMatch(kw, resume)
		result.Matches = append(result.Matches, match)
		if match.Matched() {
			result.MatchedKeywords = append(result.MatchedKeywords, match)
		} else {
			result.MissingKeywords = append(result.MissingKeywords, kw)
		}
	}

	result.MatchScore = percentage(len(result.MatchedKeywords), len(jdKeywords))
	return result
}

func bestMatch(keyword string, resume []resumeTerm) types.SkillMatch {
	best := types.SkillMatch{
		Keyword:    keyword,
		MatchType:  types.MatchNone,
		Confidence: types.ConfidenceNone,
	}

	normalized := parsing.NormalizeSkill(keyword)
	if normalized == "" {
		return best
	}
	canonical, hasCanonical := parsing.CanonicalForm(normalized)

	for _, term := range resume {
		if term.normalized == "" {
			continue
		}

		matchType, confidence := types.MatchNone, types.ConfidenceNone
		switch {
		case normalized == term.normalized:
			matchType, confidence = types.MatchExact, types.ConfidenceExact
		case hasCanonical && term.hasCanonical && canonical == term.canonical:
			matchType, confidence = types.MatchSynonym, types.ConfidenceSynonym
		case parsing.Similarity(normalized, term.normalized) >= parsing.SimilarityThreshold:
			matchType, confidence = types.MatchFuzzy, types.ConfidenceFuzzy
		case strings.Contains(normalized, term.normalized) || strings.Contains(term.normalized, normalized):
			matchType, confidence = types.MatchFuzzy, types.ConfidenceSubstring
		}

		if confidence > best.Confidence {
			matchedTo := term.original
			best.MatchedTo = &matchedTo
			best.MatchType = matchType
			best.Confidence = confidence
		}
		if matchType == types.MatchExact {
			break
		}
	}
	return best
}

// percentage returns round(part/total*100), or 0 when total is 0.
func percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
