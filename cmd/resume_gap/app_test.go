package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-gap/internal/config"
	"github.com/jonathan/resume-gap/internal/extraction"
	"github.com/jonathan/resume-gap/internal/logger"
	"github.com/jonathan/resume-gap/internal/skills"
)

// newTestApp builds an app on the default configuration with the heuristic
// tagger only, so results do not depend on the NLP model.
func newTestApp(t *testing.T) *app {
	t.Helper()

	cfg := config.Default()
	cfg.Extraction.Tagger = "none"

	taxonomy, err := skills.Default()
	require.NoError(t, err)

	return &app{
		cfg:      cfg,
		logger:   logger.NewNop(),
		taxonomy: taxonomy,
		analyzer: extraction.NewAnalyzer(nil, skills.NewClassifier(taxonomy), cfg.Extraction.Options()),
	}
}
