package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-gap/internal/matching"
	"github.com/jonathan/resume-gap/internal/observability"
	"github.com/jonathan/resume-gap/internal/schemas"
	embedded "github.com/jonathan/resume-gap/schemas"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match job keywords against resume keywords",
	Long:  "Matches each job keyword against the resume keywords (exact, synonym, fuzzy or substring) and writes a SkillMatchResult JSON.",
	RunE:  runMatch,
}

var (
	matchJobKeywords    []string
	matchResumeKeywords []string
	matchOutput         string
	matchVerbose        bool
)

func init() {
	matchCmd.Flags().StringSliceVarP(&matchJobKeywords, "job-keywords", "j", nil, "Comma-separated job keywords (required)")
	matchCmd.Flags().StringSliceVarP(&matchResumeKeywords, "resume-keywords", "r", nil, "Comma-separated resume keywords")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a match summary to stderr")

	if err := matchCmd.MarkFlagRequired("job-keywords"); err != nil {
		panic(fmt.Sprintf("failed to mark job-keywords flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	var summary io.Writer
	if matchVerbose {
		summary = os.Stderr
	}
	return matchKeywords(matchJobKeywords, matchResumeKeywords, matchOutput, cmd.OutOrStdout(), summary)
}

func matchKeywords(jobKeywords, resumeKeywords []string, out string, stdout, summary io.Writer) error {
	if len(jobKeywords) == 0 {
		return errors.New("at least one job keyword is required")
	}

	result := matching.MatchSkills(jobKeywords, resumeKeywords)
	if err := schemas.ValidateValue(embedded.SkillMatchResult, result); err != nil {
		return fmt.Errorf("match result failed schema validation: %w", err)
	}
	if summary != nil {
		observability.NewPrinter(summary).PrintMatchResult(&result)
	}
	return writeJSON(stdout, out, result)
}
