package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMissingKeywords_ToEnd(t *testing.T) {
	jd := "We need Go and Kubernetes. Kubernetes experience is key.\n" +
		"Requirements:\n- Terraform\n" +
		"Nice to have:\n- Rust"

	got := AnalyzeMissingKeywords([]string{"Kubernetes", "Terraform", "Rust", "Docker"}, jd, SectionToEnd)

	assert.Equal(t, []string{"Kubernetes", "Terraform"}, got.Critical)
	assert.Equal(t, []string{"Docker"}, got.Important)
	assert.Equal(t, []string{"Rust"}, got.NiceToHave)
}

func TestAnalyzeMissingKeywords_NiceToHaveWins(t *testing.T) {
	jd := "Requirements: Python.\nPreferred: Rust, Rust, Rust"

	got := AnalyzeMissingKeywords([]string{"rust"}, jd, SectionToEnd)

	assert.Equal(t, []string{"rust"}, got.NiceToHave)
	assert.Empty(t, got.Critical)
}

func TestAnalyzeMissingKeywords_SectionModes(t *testing.T) {
	jd := "Requirements:\n- Go\nAbout us:\nWe use Elixir internally"

	toEnd := AnalyzeMissingKeywords([]string{"Elixir", "Go"}, jd, SectionToEnd)
	assert.Equal(t, []string{"Elixir", "Go"}, toEnd.Critical)

	bounded := AnalyzeMissingKeywords([]string{"Elixir", "Go"}, jd, SectionBounded)
	assert.Equal(t, []string{"Go"}, bounded.Critical)
	assert.Equal(t, []string{"Elixir"}, bounded.Important)
}

func TestAnalyzeMissingKeywords_BoundedNiceSectionEnds(t *testing.T) {
	jd := "## Nice to have\n- Rust\n## Benefits\n- Dental plan with Kafka stickers"

	toEnd := AnalyzeMissingKeywords([]string{"Kafka"}, jd, SectionToEnd)
	assert.Equal(t, []string{"Kafka"}, toEnd.NiceToHave)

	bounded := AnalyzeMissingKeywords([]string{"Kafka"}, jd, SectionBounded)
	assert.Equal(t, []string{"Kafka"}, bounded.Important)
}

func TestAnalyzeMissingKeywords_EmptyInputs(t *testing.T) {
	got := AnalyzeMissingKeywords([]string{"Go", "  "}, "", SectionToEnd)
	assert.Equal(t, []string{"Go"}, got.Important)
	assert.Empty(t, got.Critical)
	assert.Empty(t, got.NiceToHave)

	got = AnalyzeMissingKeywords(nil, "Requirements: Go", SectionBounded)
	assert.Equal(t, 0, got.Total())
	assert.NotNil(t, got.Critical)
}

func TestParseSectionMode(t *testing.T) {
	mode, err := ParseSectionMode("")
	require.NoError(t, err)
	assert.Equal(t, SectionToEnd, mode)

	mode, err = ParseSectionMode(" Bounded ")
	require.NoError(t, err)
	assert.Equal(t, SectionBounded, mode)

	_, err = ParseSectionMode("paragraph")
	assert.Error(t, err)
}

func TestHeadingKind(t *testing.T) {
	tests := []struct {
		line      string
		wantKind  sectionKind
		isHeading bool
	}{
		{"requirements:", sectionRequirements, true},
		{"## nice to have", sectionNiceToHave, true},
		{"**preferred qualifications**", sectionNiceToHave, true},
		{"minimum qualifications", sectionRequirements, true},
		{"responsibilities", sectionOther, true},
		{"about us:", sectionOther, true},
		{"bonus: kafka, rust", sectionNiceToHave, true},
		{"- strong requirements gathering", sectionOther, false},
		{"you will write requirements docs, specs, and plans.", sectionOther, false},
		{"we ship software every day", sectionOther, false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			kind, ok := headingKind(tt.line)
			assert.Equal(t, tt.isHeading, ok)
			if ok {
				assert.Equal(t, tt.wantKind, kind)
			}
		})
	}
}
