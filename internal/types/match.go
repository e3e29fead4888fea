//nolint:revive // types is a standard Go package name pattern
package types

// MatchType identifies which matching tier produced a SkillMatch.
type MatchType string

// MatchType values. MatchSemantic is reserved and is never produced by the
// current matching tiers.
const (
	MatchExact    MatchType = "exact"
	MatchFuzzy    MatchType = "fuzzy"
	MatchSynonym  MatchType = "synonym"
	MatchSemantic MatchType = "semantic"
	MatchNone     MatchType = "none"
)

// Fixed confidence values per tier.
const (
	ConfidenceExact     = 100
	ConfidenceSynonym   = 95
	ConfidenceFuzzy     = 85
	ConfidenceSubstring = 70
	ConfidenceNone      = 0
)

// SkillMatch is the verdict for a single job-description keyword.
// MatchedTo is non-nil if and only if MatchType is not MatchNone.
type SkillMatch struct {
	Keyword    string    `json:"keyword"`
	MatchedTo  *string   `json:"matched_to"`
	MatchType  MatchType `json:"match_type"`
	Confidence int       `json:"confidence"`
}

// Matched reports whether the keyword found a resume-side counterpart.
func (m SkillMatch) Matched() bool {
	return m.MatchType != MatchNone
}

// SkillMatchResult aggregates the matches for one category.
type SkillMatchResult struct {
	Matches         []SkillMatch `json:"matches"`
	MatchedKeywords []SkillMatch `json:"matched_keywords"`
	MissingKeywords []string     `json:"missing_keywords"`
	MatchScore      int          `json:"match_score"`
}
