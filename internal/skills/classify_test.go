package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-gap/internal/types"
)

func TestClassify(t *testing.T) {
	taxonomy, err := Default()
	require.NoError(t, err)
	classifier := NewClassifier(taxonomy)

	tests := []struct {
		term string
		want types.Category
	}{
		{"5+ years", types.CategoryRequirement},
		{"3-5 years", types.CategoryRequirement},
		{"bachelor's degree", types.CategoryRequirement},
		{"experience with python", types.CategoryRequirement},
		{"aws certified", types.CategoryRequirement},
		{"python", types.CategorySkill},
		{"communication", types.CategorySkill},
		{"sql", types.CategorySkill},
		{"distributed systems", types.CategoryKnowledge},
		{"accounting", types.CategoryKnowledge},
		{"salesforce crm", types.CategoryTool},
		{"design software", types.CategoryTool},
		{"forklift", types.CategoryTool},
		{"kafka", types.CategoryUnclassified},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.term))
		})
	}
}

func TestClassify_WithoutTaxonomy(t *testing.T) {
	classifier := NewClassifier(nil)
	assert.Equal(t, types.CategoryUnclassified, classifier.Classify("python"))
	assert.Equal(t, types.CategoryTool, classifier.Classify("sql"))
	assert.Equal(t, types.CategoryRequirement, classifier.Classify("10 years"))
}

func TestIsRequirement(t *testing.T) {
	assert.True(t, IsRequirement("2 yrs"))
	assert.True(t, IsRequirement("phd"))
	assert.True(t, IsRequirement("licensed"))
	assert.False(t, IsRequirement("python"))
	assert.False(t, IsRequirement("years"))
}

func TestMatchesToolHeuristic(t *testing.T) {
	assert.True(t, MatchesToolHeuristic("erp"))
	assert.True(t, MatchesToolHeuristic("lab equipment"))
	assert.False(t, MatchesToolHeuristic("kafka"))
}
