// Package types provides type definitions for structured data used throughout the resume-gap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category is the bucket a candidate keyword is classified into.
type Category string

// Category values. CategoryUnclassified terms matched neither a requirement
// pattern, the taxonomy, nor a tool heuristic; they are still reported under
// ExtractedKeywords.Tools.
const (
	CategoryRequirement  Category = "requirement"
	CategorySkill        Category = "skill"
	CategoryKnowledge    Category = "knowledge"
	CategoryTool         Category = "tool"
	CategoryUnclassified Category = "unclassified"
)

// IsToolBucket reports whether terms of this category land in ExtractedKeywords.Tools.
func (c Category) IsToolBucket() bool {
	return c == CategoryTool || c == CategoryUnclassified
}

// CategorizedTerm is a single candidate keyword with the category it was assigned.
type CategorizedTerm struct {
	Term     string   `json:"term"`
	Category Category `json:"category"`
}

// ExtractedKeywords is the categorized output of keyword extraction.
// Each set is deduplicated and keeps first-seen order.
type ExtractedKeywords struct {
	Skills       []string          `json:"skills"`
	Knowledge    []string          `json:"knowledge"`
	Tools        []string          `json:"tools"`
	Requirements []string          `json:"requirements"`
	Raw          []string          `json:"raw"`
	Terms        []CategorizedTerm `json:"terms"`

	seen map[string]struct{}
}

// NewExtractedKeywords returns an ExtractedKeywords with empty, non-nil sets
// so the JSON form always carries arrays.
func NewExtractedKeywords() ExtractedKeywords {
	return ExtractedKeywords{
		Skills:       []string{},
		Knowledge:    []string{},
		Tools:        []string{},
		Requirements: []string{},
		Raw:          []string{},
		Terms:        []CategorizedTerm{},
		seen:         make(map[string]struct{}),
	}
}

// Add records term under category. Duplicate terms are ignored.
func (k *ExtractedKeywords) Add(term string, category Category) {
	if k.seen == nil {
		k.seen = make(map[string]struct{}, len(k.Terms))
		for _, existing := range k.Terms {
			k.seen[existing.Term] = struct{}{}
		}
	}
	if _, dup := k.seen[term]; dup {
		return
	}
	k.seen[term] = struct{}{}
	k.Terms = append(k.Terms, CategorizedTerm{Term: term, Category: category})

	switch {
	case category == CategoryRequirement:
		k.Requirements = append(k.Requirements, term)
	case category == CategorySkill:
		k.Skills = append(k.Skills, term)
	case category == CategoryKnowledge:
		k.Knowledge = append(k.Knowledge, term)
	case category.IsToolBucket():
		k.Tools = append(k.Tools, term)
	}
}

// Count returns the number of categorized terms.
func (k *ExtractedKeywords) Count() int {
	return len(k.Terms)
}

// YearsOfExperience is a years-of-experience requirement parsed from text.
// Max is nil for open-ended requirements such as "5+ years".
type YearsOfExperience struct {
	Min int  `json:"min"`
	Max *int `json:"max"`
}
