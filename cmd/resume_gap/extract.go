package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-gap/internal/fetch"
	"github.com/jonathan/resume-gap/internal/ingestion"
	"github.com/jonathan/resume-gap/internal/observability"
	"github.com/jonathan/resume-gap/internal/schemas"
	embedded "github.com/jonathan/resume-gap/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract categorized keywords from a document",
	Long: "Reads a .txt, .md, .pdf, .docx or .html document, or a job posting URL, " +
		"and writes its categorized keywords (ExtractedKeywords JSON).",
	RunE: runExtract,
}

var (
	extractInput   string
	extractOutput  string
	extractBrowser bool
	extractVerbose bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "in", "i", "", "Path or URL of the input document (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	extractCmd.Flags().BoolVar(&extractBrowser, "browser", false, "Render URLs in headless Chrome when the page HTML has too little text")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a keyword summary to stderr")

	if err := extractCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	var summary io.Writer
	if extractVerbose {
		summary = os.Stderr
	}
	return extractDocument(cmd.Context(), a, extractInput, extractOutput, fetchOptions(a, extractBrowser), cmd.OutOrStdout(), summary)
}

// extractDocument ingests in, extracts its keywords and writes the validated
// result to out (or stdout). A non-nil summary receives a boxed overview.
func extractDocument(ctx context.Context, a *app, in, out string, fetchOpts *fetch.Options, stdout, summary io.Writer) error {
	doc, err := ingestion.Ingest(ctx, in, fetchOpts)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", in, err)
	}

	keywords := a.analyzer.Extract(doc.Text)
	a.logger.Debug("extracted keywords",
		zap.String("path", in),
		zap.String("hash", doc.Metadata.Hash),
		zap.Int("terms", keywords.Count()),
	)

	if err := schemas.ValidateValue(embedded.ExtractedKeywords, keywords); err != nil {
		return fmt.Errorf("extracted keywords failed schema validation: %w", err)
	}
	if summary != nil {
		observability.NewPrinter(summary).PrintExtractedKeywords("Keywords: "+in, &keywords)
	}
	return writeJSON(stdout, out, keywords)
}
