package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// SimilarityThreshold is the minimum Levenshtein similarity for two terms to count as similar.
const SimilarityThreshold = 0.8

// Similarity returns 1 - editDistance/max(len(a), len(b)), measured in runes.
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1.0
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(distance)/float64(maxLen)
}

// AreSimilarSkills reports whether two skills are equal after normalization,
// one contains the other, or their Levenshtein similarity reaches SimilarityThreshold.
func AreSimilarSkills(a, b string) bool {
	na := NormalizeSkill(a)
	nb := NormalizeSkill(b)

	if na == nb {
		return true
	}
	// An empty side would be a substring of everything.
	if na == "" || nb == "" {
		return false
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	return Similarity(na, nb) >= SimilarityThreshold
}
