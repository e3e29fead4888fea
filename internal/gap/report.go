package gap

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-gap/internal/extraction"
	"github.com/jonathan/resume-gap/internal/matching"
	"github.com/jonathan/resume-gap/internal/parsing"
	"github.com/jonathan/resume-gap/internal/types"
)

// BuildReport extracts keywords from both texts, analyzes the gap and
// bundles everything into a GapReport with a fresh ID.
func BuildReport(analyzer *extraction.Analyzer, resumeText, jobText string, mode matching.SectionMode) types.GapReport {
	return BuildReportWithOptions(analyzer, resumeText, jobText, mode, analyzer.Options())
}

// BuildReportWithOptions is BuildReport with explicit extraction options.
func BuildReportWithOptions(analyzer *extraction.Analyzer, resumeText, jobText string, mode matching.SectionMode, opts extraction.Options) types.GapReport {
	resumeKeywords := analyzer.ExtractWithOptions(resumeText, opts)
	jobKeywords := analyzer.ExtractWithOptions(jobText, opts)
	analysis := AnalyzeGapWithMode(resumeKeywords, jobKeywords, jobText, mode)

	return types.GapReport{
		ID:             uuid.New(),
		CreatedAt:      time.Now().UTC(),
		ResumeKeywords: resumeKeywords,
		JobKeywords:    jobKeywords,
		Analysis:       analysis,
		Potential:      CalculateImprovementPotential(analysis),
		RequiredYears:  parsing.ExtractYearsOfExperience(jobText),
		CandidateYears: parsing.ExtractYearsOfExperience(resumeText),
	}
}
