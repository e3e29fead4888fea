package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-gap/internal/db"
	"github.com/jonathan/resume-gap/internal/fetch"
	"github.com/jonathan/resume-gap/internal/gap"
	"github.com/jonathan/resume-gap/internal/ingestion"
	"github.com/jonathan/resume-gap/internal/matching"
	"github.com/jonathan/resume-gap/internal/observability"
	"github.com/jonathan/resume-gap/internal/schemas"
	"github.com/jonathan/resume-gap/internal/types"
	embedded "github.com/jonathan/resume-gap/schemas"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze the gap between a resume and one or more job descriptions",
	Long: "Extracts keywords from the resume and each job description, matches them per category, " +
		"and writes one GapReport JSON per job with missing keywords by severity and ranked suggestions.",
	RunE: runGap,
}

var (
	gapResume      string
	gapJobs        []string
	gapOutDir      string
	gapSectionMode string
	gapSave        bool
	gapBrowser     bool
	gapVerbose     bool
)

func init() {
	gapCmd.Flags().StringVarP(&gapResume, "resume", "r", "", "Path to resume document (required)")
	gapCmd.Flags().StringArrayVarP(&gapJobs, "job", "j", nil, "Path or URL of a job description; repeat for several (required)")
	gapCmd.Flags().StringVarP(&gapOutDir, "out", "o", "", "Output directory for <job>.gap.json files (default stdout)")
	gapCmd.Flags().StringVar(&gapSectionMode, "section-mode", "", "Severity section mode: to-end or bounded (default from config)")
	gapCmd.Flags().BoolVar(&gapSave, "save", false, "Persist reports to the configured database")
	gapCmd.Flags().BoolVar(&gapBrowser, "browser", false, "Render job URLs in headless Chrome when the page HTML has too little text")
	gapCmd.Flags().BoolVarP(&gapVerbose, "verbose", "v", false, "Print report summaries to stderr")

	if err := gapCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := gapCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(gapCmd)
}

// gapOptions are the inputs of one gap command run.
type gapOptions struct {
	Resume  string
	Jobs    []string
	OutDir  string
	Mode    matching.SectionMode
	Save    bool
	Fetch   *fetch.Options
	Summary io.Writer
}

func runGap(cmd *cobra.Command, _ []string) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	mode := a.cfg.Matching.Mode()
	if gapSectionMode != "" {
		if mode, err = matching.ParseSectionMode(gapSectionMode); err != nil {
			return err
		}
	}

	opts := gapOptions{
		Resume: gapResume,
		Jobs:   gapJobs,
		OutDir: gapOutDir,
		Mode:   mode,
		Save:   gapSave,
		Fetch:  fetchOptions(a, gapBrowser),
	}
	if gapVerbose {
		opts.Summary = os.Stderr
	}
	return analyzeGaps(cmd.Context(), a, opts, cmd.OutOrStdout())
}

// analyzeGaps builds one report per job description concurrently. Reports
// are written in the order the jobs were given.
func analyzeGaps(ctx context.Context, a *app, opts gapOptions, stdout io.Writer) error {
	if len(opts.Jobs) == 0 {
		return errors.New("at least one --job is required")
	}

	docs, err := ingestion.IngestSources(ctx, append([]string{opts.Resume}, opts.Jobs...), opts.Fetch)
	if err != nil {
		return fmt.Errorf("failed to ingest documents: %w", err)
	}
	resume, jobs := docs[0], docs[1:]

	reports := make([]types.GapReport, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report := gap.BuildReport(a.analyzer, resume.Text, job.Text, opts.Mode)
			if err := schemas.ValidateValue(embedded.GapReport, report); err != nil {
				return fmt.Errorf("%s: report failed schema validation: %w", job.Path, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, report := range reports {
		a.logger.Info("gap analysis complete",
			zap.String("job", jobs[i].Path),
			zap.String("report_id", report.ID.String()),
			zap.Int("overall_match_score", report.Analysis.OverallMatchScore),
			zap.Int("missing", report.Analysis.MissingKeywords.Total()),
		)
		if opts.Summary != nil {
			fmt.Fprintf(opts.Summary, "\n%s\n", jobs[i].Path)
			observability.NewPrinter(opts.Summary).PrintReport(&reports[i])
		}
	}

	if opts.Save {
		if err := saveReports(ctx, a, reports); err != nil {
			return err
		}
	}

	return writeReports(stdout, opts.OutDir, jobs, reports)
}

// writeReports writes <job>.gap.json files into dir, or all reports to stdout
// (one object for a single job, an array otherwise).
func writeReports(stdout io.Writer, dir string, jobs []*ingestion.Document, reports []types.GapReport) error {
	if dir == "" {
		if len(reports) == 1 {
			return writeJSON(stdout, "", reports[0])
		}
		return writeJSON(stdout, "", reports)
	}

	used := make(map[string]int)
	for i, report := range reports {
		name := reportFileName(jobs[i].Path, used)
		if err := writeJSON(stdout, filepath.Join(dir, name), report); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", filepath.Join(dir, name))
	}
	return nil
}

// reportFileName derives a unique output name from a job path or URL.
func reportFileName(jobPath string, used map[string]int) string {
	if fetch.IsURL(jobPath) {
		jobPath = urlBaseName(jobPath)
	}
	base := strings.TrimSuffix(filepath.Base(jobPath), filepath.Ext(jobPath))
	used[base]++
	if n := used[base]; n > 1 {
		base = fmt.Sprintf("%s-%d", base, n)
	}
	return base + ".gap.json"
}

// urlBaseName names a posting URL by its host and last path segment.
func urlBaseName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "job"
	}
	name := strings.ReplaceAll(u.Hostname(), ".", "_")
	if seg := path.Base(strings.TrimSuffix(u.Path, "/")); seg != "." && seg != "/" && seg != "" {
		name += "_" + seg
	}
	return name
}

func saveReports(ctx context.Context, a *app, reports []types.GapReport) error {
	if a.cfg.Database.URL == "" {
		return errors.New("--save requires database.url to be configured")
	}

	database, err := db.Connect(ctx, a.cfg.Database.URL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	for i := range reports {
		if err := database.SaveReport(ctx, &reports[i]); err != nil {
			return err
		}
	}
	a.logger.Info("reports saved", zap.Int("count", len(reports)))
	return nil
}
