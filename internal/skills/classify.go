package skills

import (
	"regexp"

	"github.com/jonathan/resume-gap/internal/types"
)

// requirementPatterns are tested in order; any match makes a term a requirement.
var requirementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+\s*\+?\s*(?:years?|yrs?)\b`),
	regexp.MustCompile(`(?i)\b(?:bachelor'?s?|master'?s?|ph\.?d|doctorate|degree|diploma|mba|bsc|msc)\b`),
	regexp.MustCompile(`(?i)\bexperience\s+(?:with|in)\b`),
	regexp.MustCompile(`\b\d+\s*(?:-|to)\s*\d+\b`),
	regexp.MustCompile(`(?i)\b(?:certifi(?:ed|cate|cates|cation|cations)|licensed?|licensure|accredited)\b`),
}

// toolPatterns recognise software, equipment, and a few domain acronyms.
var toolPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:software|platform|framework|library|sdk|api|database|cloud|suite|studio|system|tool|app|application)s?\b`),
	regexp.MustCompile(`(?i)\b(?:equipment|machine(?:ry)?|device|instrument|scanner|printer|forklift|vehicle|hardware)s?\b`),
	regexp.MustCompile(`(?i)\b(?:crm|erp|cad|cam|sql|pos|ehr|emr|hris|lms|cms|ide)\b`),
}

// IsRequirement reports whether term looks like a requirement: a years count,
// a degree, "experience with/in", a numeric range, or a certification.
func IsRequirement(term string) bool {
	for _, re := range requirementPatterns {
		if re.MatchString(term) {
			return true
		}
	}
	return false
}

// MatchesToolHeuristic reports whether term looks like software or equipment.
func MatchesToolHeuristic(term string) bool {
	for _, re := range toolPatterns {
		if re.MatchString(term) {
			return true
		}
	}
	return false
}

// Classifier assigns candidate keywords to categories using a taxonomy.
type Classifier struct {
	taxonomy *Taxonomy
}

// NewClassifier creates a Classifier backed by taxonomy.
func NewClassifier(taxonomy *Taxonomy) *Classifier {
	return &Classifier{taxonomy: taxonomy}
}

// Taxonomy returns the taxonomy the classifier looks terms up in.
func (c *Classifier) Taxonomy() *Taxonomy {
	return c.taxonomy
}

// Classify places term in exactly one category. Priority order is
// requirement, skill, knowledge, then tool. Terms that match nothing are
// CategoryUnclassified, which callers report alongside tools.
func (c *Classifier) Classify(term string) types.Category {
	if IsRequirement(term) {
		return types.CategoryRequirement
	}
	if c.taxonomy != nil {
		if c.taxonomy.FindMatchingSkill(term) != nil {
			return types.CategorySkill
		}
		if c.taxonomy.FindMatchingKnowledge(term) != nil {
			return types.CategoryKnowledge
		}
	}
	if MatchesToolHeuristic(term) {
		return types.CategoryTool
	}
	return types.CategoryUnclassified
}
