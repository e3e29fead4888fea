package types

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_Rank(t *testing.T) {
	priorities := []Priority{PriorityNiceToHave, PriorityCritical, PriorityImportant}
	sort.Slice(priorities, func(i, j int) bool {
		return priorities[i].Rank() < priorities[j].Rank()
	})

	assert.Equal(t, []Priority{PriorityCritical, PriorityImportant, PriorityNiceToHave}, priorities)
	assert.Greater(t, Priority("unknown").Rank(), PriorityNiceToHave.Rank())
}

func TestSkillMatch_UnmatchedSerializesNullMatchedTo(t *testing.T) {
	m := SkillMatch{Keyword: "kafka", MatchType: MatchNone, Confidence: ConfidenceNone}
	assert.False(t, m.Matched())

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"matched_to":null`)
	assert.Contains(t, string(data), `"match_type":"none"`)
}

func TestSkillMatch_Matched(t *testing.T) {
	target := "python"
	m := SkillMatch{Keyword: "Python", MatchedTo: &target, MatchType: MatchExact, Confidence: ConfidenceExact}
	assert.True(t, m.Matched())
}

func TestMissingKeywords_Total(t *testing.T) {
	m := MissingKeywords{
		Critical:   []string{"kafka"},
		Important:  []string{"grpc", "redis"},
		NiceToHave: []string{"rust"},
	}
	assert.Equal(t, 4, m.Total())
	assert.Equal(t, 0, MissingKeywords{}.Total())
}
