//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-gap/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.EnsureSchema(ctx))
	return db
}

func newStoredReport(score int) *types.GapReport {
	return &types.GapReport{
		ID:             uuid.New(),
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
		ResumeKeywords: types.NewExtractedKeywords(),
		JobKeywords:    types.NewExtractedKeywords(),
		Analysis: types.GapAnalysis{
			OverallMatchScore: score,
			MissingKeywords: types.MissingKeywords{
				Critical:   []string{"kafka"},
				Important:  []string{},
				NiceToHave: []string{},
			},
		},
	}
}

func TestIntegration_Reports_CRUD(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	report := newStoredReport(72)
	t.Cleanup(func() { _ = db.DeleteReport(ctx, report.ID) })

	t.Run("save and get", func(t *testing.T) {
		require.NoError(t, db.SaveReport(ctx, report))

		got, err := db.GetReport(ctx, report.ID)
		require.NoError(t, err)
		assert.Equal(t, report.ID, got.ID)
		assert.Equal(t, 72, got.Analysis.OverallMatchScore)
		assert.Equal(t, []string{"kafka"}, got.Analysis.MissingKeywords.Critical)
	})

	t.Run("save is an upsert", func(t *testing.T) {
		report.Analysis.OverallMatchScore = 80
		require.NoError(t, db.SaveReport(ctx, report))

		got, err := db.GetReport(ctx, report.ID)
		require.NoError(t, err)
		assert.Equal(t, 80, got.Analysis.OverallMatchScore)
	})

	t.Run("list includes report", func(t *testing.T) {
		summaries, err := db.ListReports(ctx, MaxListLimit)
		require.NoError(t, err)

		var found bool
		for _, s := range summaries {
			if s.ID == report.ID {
				found = true
				assert.Equal(t, 80, s.OverallMatchScore)
				assert.Equal(t, 1, s.CriticalCount)
			}
		}
		assert.True(t, found)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, db.DeleteReport(ctx, report.ID))

		_, err := db.GetReport(ctx, report.ID)
		assert.ErrorIs(t, err, ErrReportNotFound)
		assert.ErrorIs(t, db.DeleteReport(ctx, report.ID), ErrReportNotFound)
	})
}

func TestIntegration_EnsureSchema_Idempotent(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	assert.NoError(t, db.EnsureSchema(context.Background()))
}
