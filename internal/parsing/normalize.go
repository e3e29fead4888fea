// Package parsing provides normalization and similarity helpers for skill keywords.
package parsing

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonWordRe matches everything NormalizeSkill strips: any character that is
// neither an ASCII word character nor whitespace.
var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// synonymGroups maps a canonical skill name to the variants that share its meaning.
// Keys and variants are normalized with NormalizeSkill when the index is built.
var synonymGroups = map[string][]string{
	"leadership":              {"leading", "lead", "leader", "management", "managing", "team lead", "mentoring"},
	"communication":           {"communicating", "communicate", "verbal", "written", "interpersonal", "presentation"},
	"teamwork":                {"collaboration", "collaborating", "collaborative", "team player", "cooperation"},
	"problem solving":         {"problem-solving", "troubleshooting", "critical thinking", "analytical thinking"},
	"project management":      {"program management", "project planning", "project coordination"},
	"customer service":        {"customer support", "client service", "client support"},
	"javascript":              {"js", "ecmascript", "es6"},
	"typescript":              {"ts"},
	"golang":                  {"go", "go lang"},
	"kubernetes":              {"k8s"},
	"postgresql":              {"postgres", "psql"},
	"machine learning":        {"ml"},
	"artificial intelligence": {"ai"},
	"continuous integration":  {"ci/cd", "ci cd", "continuous delivery", "continuous deployment"},
	"amazon web services":     {"aws"},
	"google cloud platform":   {"gcp", "google cloud"},
	"node":                    {"nodejs", "node.js"},
	"react":                   {"reactjs", "react.js"},
	"microsoft excel":         {"excel", "spreadsheets"},
	"data analysis":           {"data analytics", "analyzing data", "analytics"},
}

// canonicalIndex maps every normalized variant (and canonical name) to its canonical name.
var canonicalIndex = buildCanonicalIndex(synonymGroups)

func buildCanonicalIndex(groups map[string][]string) map[string]string {
	canonicals := make([]string, 0, len(groups))
	for canonical := range groups {
		canonicals = append(canonicals, canonical)
	}
	// First registration wins, so iterate in a stable order.
	sort.Strings(canonicals)

	index := make(map[string]string)
	for _, canonical := range canonicals {
		key := NormalizeSkill(canonical)
		if _, exists := index[key]; !exists {
			index[key] = key
		}
		for _, variant := range groups[canonical] {
			v := NormalizeSkill(variant)
			if v == "" {
				continue
			}
			if _, exists := index[v]; !exists {
				index[v] = key
			}
		}
	}
	return index
}

// NormalizeSkill lowercases a skill, strips a trailing ".js", removes every
// character that is not a word character or whitespace, and trims the result.
// Diacritics are folded first so "Résumé" normalizes to "resume".
// The function is idempotent.
func NormalizeSkill(skill string) string {
	if skill == "" {
		return ""
	}

	normalized := strings.ToLower(foldDiacritics(skill))
	normalized = strings.TrimSuffix(normalized, ".js")
	normalized = nonWordRe.ReplaceAllString(normalized, "")
	return strings.TrimSpace(normalized)
}

// CanonicalForm returns the canonical name of the synonym family a normalized
// term belongs to. The boolean is false when the term has no synonym-table entry.
func CanonicalForm(normalized string) (string, bool) {
	canonical, ok := canonicalIndex[normalized]
	return canonical, ok
}

// foldDiacritics strips combining marks. A fresh transformer is built per call
// because chained transformers carry state.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
