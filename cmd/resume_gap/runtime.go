package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/resume-gap/internal/config"
	"github.com/jonathan/resume-gap/internal/extraction"
	"github.com/jonathan/resume-gap/internal/fetch"
	"github.com/jonathan/resume-gap/internal/logger"
	"github.com/jonathan/resume-gap/internal/skills"
)

// app bundles what every subcommand needs: configuration, a logger and the analyzer.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	taxonomy *skills.Taxonomy
	analyzer *extraction.Analyzer
}

// newApp loads configuration from path and builds the analyzer it describes.
func newApp(path string) (*app, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	taxonomy, err := skills.Load(cfg.Taxonomy.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}

	var tagger extraction.Tagger
	if cfg.Extraction.Tagger == "prose" {
		proseTagger, err := extraction.NewProseTagger()
		if err != nil {
			return nil, err
		}
		tagger = proseTagger
	}

	return &app{
		cfg:      cfg,
		logger:   log,
		taxonomy: taxonomy,
		analyzer: extraction.NewAnalyzer(tagger, skills.NewClassifier(taxonomy), cfg.Extraction.Options()),
	}, nil
}

// fetchOptions returns the options used for job posting URLs.
func fetchOptions(a *app, browser bool) *fetch.Options {
	opts := fetch.DefaultOptions()
	opts.Browser = browser
	opts.Logger = a.logger
	return opts
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err := w.Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
