//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the severity of a missing keyword or a suggestion.
type Priority string

// Priority values, most severe first.
const (
	PriorityCritical   Priority = "critical"
	PriorityImportant  Priority = "important"
	PriorityNiceToHave Priority = "nice-to-have"
)

// Rank orders priorities: critical < important < nice-to-have.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityImportant:
		return 1
	case PriorityNiceToHave:
		return 2
	default:
		return 3
	}
}

// SuggestionType identifies the kind of resume edit a suggestion proposes.
type SuggestionType string

// SuggestionType values.
const (
	SuggestionAddKeyword    SuggestionType = "add_keyword"
	SuggestionEmphasize     SuggestionType = "emphasize_skill"
	SuggestionReorderSkills SuggestionType = "reorder_skills"
	SuggestionReframeBullet SuggestionType = "reframe_bullet"
)

// Suggestion is a single actionable resume edit.
type Suggestion struct {
	Type        SuggestionType `json:"type"`
	Priority    Priority       `json:"priority"`
	Description string         `json:"description"`
	Keywords    []string       `json:"keywords,omitempty"`
	Section     string         `json:"section,omitempty"`
}

// MatchedKeywords holds the successful matches per category.
type MatchedKeywords struct {
	Skills    []SkillMatch `json:"skills"`
	Knowledge []SkillMatch `json:"knowledge"`
	Tools     []SkillMatch `json:"tools"`
}

// MissingKeywords holds unmatched job-description keywords bucketed by severity.
type MissingKeywords struct {
	Critical   []string `json:"critical"`
	Important  []string `json:"important"`
	NiceToHave []string `json:"nice_to_have"`
}

// Total returns the number of missing keywords across all buckets.
func (m MissingKeywords) Total() int {
	return len(m.Critical) + len(m.Important) + len(m.NiceToHave)
}

// GapAnalysis is the aggregate comparison of a resume against a job description.
type GapAnalysis struct {
	OverallMatchScore   int             `json:"overall_match_score"`
	SkillsMatchScore    int             `json:"skills_match_score"`
	KnowledgeMatchScore int             `json:"knowledge_match_score"`
	ToolsMatchScore     int             `json:"tools_match_score"`
	MatchedKeywords     MatchedKeywords `json:"matched_keywords"`
	MissingKeywords     MissingKeywords `json:"missing_keywords"`
	Suggestions         []Suggestion    `json:"suggestions"`
	SkillsToEmphasize   []string        `json:"skills_to_emphasize"`
	SkillsToDeemphasize []string        `json:"skills_to_deemphasize"`
}

// ImprovementPotential estimates the score reachable by acting on the suggestions.
type ImprovementPotential struct {
	CurrentScore   int `json:"current_score"`
	PotentialScore int `json:"potential_score"`
	CriticalBoost  int `json:"critical_boost"`
	ImportantBoost int `json:"important_boost"`
	EmphasizeBoost int `json:"emphasize_boost"`
}

// GapReport bundles a gap analysis with the keywords it was computed from.
type GapReport struct {
	ID             uuid.UUID            `json:"id"`
	CreatedAt      time.Time            `json:"created_at"`
	ResumeKeywords ExtractedKeywords    `json:"resume_keywords"`
	JobKeywords    ExtractedKeywords    `json:"job_keywords"`
	Analysis       GapAnalysis          `json:"analysis"`
	Potential      ImprovementPotential `json:"potential"`
	RequiredYears  *YearsOfExperience   `json:"required_years,omitempty"`
	CandidateYears *YearsOfExperience   `json:"candidate_years,omitempty"`
}
