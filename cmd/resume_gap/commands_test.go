package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-gap/internal/ingestion"
	"github.com/jonathan/resume-gap/internal/matching"
	"github.com/jonathan/resume-gap/internal/schemas"
	"github.com/jonathan/resume-gap/internal/types"
)

const (
	resumePath   = "testdata/resume.md"
	backendPath  = "testdata/backend.md"
	platformPath = "testdata/platform.txt"
)

const backendPostingHTML = `<html><body>
<nav>Careers home</nav>
<main>
<h1>Backend Engineer</h1>
<h3>Requirements:</h3>
<ul>
<li>5+ years experience with Python and Kafka</li>
<li>Kubernetes and Terraform</li>
</ul>
<h3>Nice to have:</h3>
<ul><li>Elixir</li></ul>
</main>
<form>Apply now</form>
</body></html>`

func TestExtractDocument_Stdout(t *testing.T) {
	a := newTestApp(t)
	var stdout bytes.Buffer

	err := extractDocument(context.Background(), a, backendPath, "", nil, &stdout, nil)
	require.NoError(t, err)

	var got types.ExtractedKeywords
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Contains(t, got.Skills, "python")
	assert.Contains(t, got.Tools, "kafka")
	assert.Contains(t, got.Requirements, "5+ years")
}

func TestExtractDocument_OutputFileAndSummary(t *testing.T) {
	a := newTestApp(t)
	out := filepath.Join(t.TempDir(), "nested", "keywords.json")
	var stdout, summary bytes.Buffer

	err := extractDocument(context.Background(), a, resumePath, out, nil, &stdout, &summary)
	require.NoError(t, err)

	assert.Empty(t, stdout.String())
	assert.Contains(t, summary.String(), "Total terms")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var got types.ExtractedKeywords
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Contains(t, got.Skills, "python")
}

func TestExtractDocument_Errors(t *testing.T) {
	a := newTestApp(t)

	err := extractDocument(context.Background(), a, filepath.Join(t.TempDir(), "missing.md"), "", nil, &bytes.Buffer{}, nil)
	assert.ErrorContains(t, err, "failed to ingest")

	unsupported := filepath.Join(t.TempDir(), "resume.odt")
	require.NoError(t, os.WriteFile(unsupported, []byte("Go"), 0644))
	err = extractDocument(context.Background(), a, unsupported, "", nil, &bytes.Buffer{}, nil)
	var formatErr *ingestion.UnsupportedFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestMatchKeywords(t *testing.T) {
	var stdout, summary bytes.Buffer

	err := matchKeywords([]string{"python", "kafka"}, []string{"python", "docker"}, "", &stdout, &summary)
	require.NoError(t, err)

	var got types.SkillMatchResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, 50, got.MatchScore)
	assert.Equal(t, []string{"kafka"}, got.MissingKeywords)
	assert.Contains(t, summary.String(), "SKILL MATCH")
}

func TestMatchKeywords_RequiresJobKeywords(t *testing.T) {
	err := matchKeywords(nil, []string{"python"}, "", &bytes.Buffer{}, nil)
	assert.EqualError(t, err, "at least one job keyword is required")
}

func TestAnalyzeGaps_SingleJob(t *testing.T) {
	a := newTestApp(t)
	var stdout, summary bytes.Buffer

	err := analyzeGaps(context.Background(), a, gapOptions{
		Resume:  resumePath,
		Jobs:    []string{backendPath},
		Mode:    matching.SectionToEnd,
		Summary: &summary,
	}, &stdout)
	require.NoError(t, err)

	var report types.GapReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Contains(t, report.Analysis.MissingKeywords.Critical, "kafka")
	assert.Contains(t, report.Analysis.MissingKeywords.NiceToHave, "elixir")
	require.NotNil(t, report.RequiredYears)
	assert.Equal(t, 5, report.RequiredYears.Min)

	assert.Contains(t, summary.String(), backendPath)
	assert.Contains(t, summary.String(), "GAP ANALYSIS")
}

func TestAnalyzeGaps_MultipleJobsToStdout(t *testing.T) {
	a := newTestApp(t)
	var stdout bytes.Buffer

	err := analyzeGaps(context.Background(), a, gapOptions{
		Resume: resumePath,
		Jobs:   []string{backendPath, platformPath},
		Mode:   matching.SectionToEnd,
	}, &stdout)
	require.NoError(t, err)

	var reports []types.GapReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.NotEqual(t, reports[0].ID, reports[1].ID)
	assert.Contains(t, reports[0].Analysis.MissingKeywords.Critical, "kafka")
	assert.NotContains(t, reports[1].Analysis.MissingKeywords.Critical, "kafka")
}

func TestAnalyzeGaps_OutputDirectory(t *testing.T) {
	a := newTestApp(t)
	dir := filepath.Join(t.TempDir(), "reports")
	var stdout bytes.Buffer

	err := analyzeGaps(context.Background(), a, gapOptions{
		Resume: resumePath,
		Jobs:   []string{backendPath, platformPath},
		OutDir: dir,
		Mode:   matching.SectionBounded,
	}, &stdout)
	require.NoError(t, err)

	for _, name := range []string{"backend.gap.json", "platform.gap.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		var report types.GapReport
		require.NoError(t, json.Unmarshal(data, &report), name)
	}
	assert.Equal(t, 2, strings.Count(stdout.String(), "Wrote "))
}

func TestAnalyzeGaps_Errors(t *testing.T) {
	a := newTestApp(t)

	err := analyzeGaps(context.Background(), a, gapOptions{Resume: resumePath}, &bytes.Buffer{})
	assert.EqualError(t, err, "at least one --job is required")

	err = analyzeGaps(context.Background(), a, gapOptions{
		Resume: resumePath,
		Jobs:   []string{"testdata/missing.md"},
	}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to ingest documents")

	err = analyzeGaps(context.Background(), a, gapOptions{
		Resume: resumePath,
		Jobs:   []string{backendPath},
		Mode:   matching.SectionToEnd,
		Save:   true,
	}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "database.url")
}

func TestReportFileName(t *testing.T) {
	used := make(map[string]int)

	assert.Equal(t, "job.gap.json", reportFileName("a/job.md", used))
	assert.Equal(t, "job-2.gap.json", reportFileName("b/job.txt", used))
	assert.Equal(t, "other.gap.json", reportFileName("other.pdf", used))
	assert.Equal(t, "jobs_lever_co_abc-123.gap.json", reportFileName("https://jobs.lever.co/acme/abc-123/", used))
	assert.Equal(t, "example_com.gap.json", reportFileName("https://example.com", used))
}

func TestAnalyzeGaps_JobURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(backendPostingHTML))
	}))
	defer server.Close()

	a := newTestApp(t)
	var stdout bytes.Buffer
	err := analyzeGaps(context.Background(), a, gapOptions{
		Resume: resumePath,
		Jobs:   []string{server.URL + "/jobs/backend"},
		Mode:   matching.SectionToEnd,
	}, &stdout)
	require.NoError(t, err)

	var report types.GapReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Contains(t, report.Analysis.MissingKeywords.Critical, "kafka")
	assert.Contains(t, report.Analysis.MissingKeywords.NiceToHave, "elixir")
}

func TestDescribeTaxonomy(t *testing.T) {
	a := newTestApp(t)
	var out bytes.Buffer

	describeTaxonomy(&out, "", a.taxonomy, []string{"Python", " "}, true)

	text := out.String()
	assert.Contains(t, text, "Taxonomy: embedded default")
	assert.Contains(t, text, "Skills:")
	assert.Contains(t, text, "Knowledge:")

	var lookup string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "python ") {
			lookup = line
		}
	}
	assert.Contains(t, lookup, string(types.CategorySkill))
}

func TestWriteJSON(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, writeJSON(&stdout, "", map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", stdout.String())

	path := filepath.Join(t.TempDir(), "out", "a.json")
	require.NoError(t, writeJSON(&stdout, path, []string{"x"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `["x"]`, string(data))
}

func TestNewApp(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RESUME_GAP_EXTRACTION_TAGGER", "none")

	a, err := newApp("")
	require.NoError(t, err)
	defer a.close()

	assert.Equal(t, "none", a.cfg.Extraction.Tagger)
	assert.NotNil(t, a.analyzer)
	assert.NotEmpty(t, a.taxonomy.Skills())
}

func TestNewApp_BadConfig(t *testing.T) {
	_, err := newApp(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCLI_MissingRequiredFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "extract without --in", args: []string{"extract"}},
		{name: "match without --job-keywords", args: []string{"match", "--resume-keywords", "go"}},
		{name: "gap without --job", args: []string{"gap", "--resume", resumePath}},
		{name: "gap without --resume", args: []string{"gap", "--job", backendPath}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), "required")
		})
	}
}

func TestValidateArtifact(t *testing.T) {
	a := newTestApp(t)
	out := filepath.Join(t.TempDir(), "keywords.json")
	require.NoError(t, extractDocument(context.Background(), a, backendPath, out, nil, &bytes.Buffer{}, nil))

	var stdout bytes.Buffer
	require.NoError(t, validateArtifact(&stdout, out, "keywords", ""))
	assert.Contains(t, stdout.String(), "is valid")

	var validationErr *schemas.ValidationError
	err := validateArtifact(&bytes.Buffer{}, out, "gap", "")
	assert.ErrorAs(t, err, &validationErr)

	assert.ErrorContains(t, validateArtifact(&bytes.Buffer{}, out, "resume", ""), "unknown kind")
	assert.EqualError(t, validateArtifact(&bytes.Buffer{}, out, "", ""), "either --kind or --schema must be provided")
}
