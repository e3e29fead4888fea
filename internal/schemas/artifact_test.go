package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-gap/internal/extraction"
	"github.com/jonathan/resume-gap/internal/gap"
	"github.com/jonathan/resume-gap/internal/matching"
	"github.com/jonathan/resume-gap/internal/skills"
	"github.com/jonathan/resume-gap/internal/types"
	embedded "github.com/jonathan/resume-gap/schemas"
)

func newAnalyzer(t *testing.T) *extraction.Analyzer {
	t.Helper()
	taxonomy, err := skills.Default()
	require.NoError(t, err)
	return extraction.NewAnalyzer(nil, skills.NewClassifier(taxonomy), extraction.DefaultOptions())
}

func TestValidateValue_ExtractedKeywords(t *testing.T) {
	keywords := newAnalyzer(t).Extract("Senior engineer with 5+ years of Python, SQL and Kafka")

	assert.NoError(t, ValidateValue(embedded.ExtractedKeywords, keywords))
	assert.NoError(t, ValidateValue(embedded.ExtractedKeywords, types.NewExtractedKeywords()))
}

func TestValidateValue_SkillMatchResult(t *testing.T) {
	result := matching.MatchSkills([]string{"python", "rust"}, []string{"Python"})

	assert.NoError(t, ValidateValue(embedded.SkillMatchResult, result))
}

func TestValidateValue_GapReport(t *testing.T) {
	report := gap.BuildReport(
		newAnalyzer(t),
		"Backend developer with 3 years of Python, Docker and leadership.",
		"Requirements: 5+ years of Python and Kubernetes. Terraform preferred.",
		matching.SectionToEnd,
	)

	assert.NoError(t, ValidateValue(embedded.GapReport, report))
}

func TestValidateArtifact_Invalid(t *testing.T) {
	err := ValidateArtifact(embedded.SkillMatchResult, []byte(`{"matches": [], "match_score": 140}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateArtifact_UnknownSchema(t *testing.T) {
	err := ValidateArtifact("missing.schema.json", []byte(`{}`))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "missing.schema.json", loadErr.Path)
}

func TestValidateArtifact_MalformedDocument(t *testing.T) {
	err := ValidateArtifact(embedded.GapReport, []byte(`{ not json`))
	assert.Error(t, err)
}
