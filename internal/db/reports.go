package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-gap/internal/types"
)

const (
	// DefaultListLimit is used when ListReports is called with a non-positive limit.
	DefaultListLimit = 50
	// MaxListLimit caps a single page of ListReports.
	MaxListLimit = 500
)

// ErrReportNotFound is returned when no report has the requested ID.
var ErrReportNotFound = errors.New("report not found")

// ReportSummary is a lightweight view of a stored report for listing
type ReportSummary struct {
	ID                uuid.UUID `json:"id"`
	OverallMatchScore int       `json:"overall_match_score"`
	CriticalCount     int       `json:"critical_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// SummaryOf returns the listing view of report.
func SummaryOf(report *types.GapReport) ReportSummary {
	return ReportSummary{
		ID:                report.ID,
		OverallMatchScore: report.Analysis.OverallMatchScore,
		CriticalCount:     len(report.Analysis.MissingKeywords.Critical),
		CreatedAt:         report.CreatedAt,
	}
}

// normalizeLimit clamps limit into [1, MaxListLimit].
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}

// SaveReport stores report, replacing any report with the same ID.
func (db *DB) SaveReport(ctx context.Context, report *types.GapReport) error {
	if report == nil {
		return errors.New("report is required")
	}
	if report.ID == uuid.Nil {
		return errors.New("report id is required")
	}

	jsonBytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	summary := SummaryOf(report)
	_, err = db.pool.Exec(ctx,
		`INSERT INTO gap_reports (id, overall_score, critical_count, report, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET overall_score = $2, critical_count = $3, report = $4`,
		summary.ID, summary.OverallMatchScore, summary.CriticalCount, jsonBytes, summary.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport retrieves a report by ID. It returns ErrReportNotFound when absent.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*types.GapReport, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT report FROM gap_reports WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report types.GapReport
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", id, err)
	}
	return &report, nil
}

// ListReports retrieves the most recent report summaries
func (db *DB) ListReports(ctx context.Context, limit int) ([]ReportSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, overall_score, critical_count, created_at
		 FROM gap_reports ORDER BY created_at DESC LIMIT $1`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	summaries := []ReportSummary{}
	for rows.Next() {
		var s ReportSummary
		if err := rows.Scan(&s.ID, &s.OverallMatchScore, &s.CriticalCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return summaries, nil
}

// DeleteReport deletes a report. It returns ErrReportNotFound when nothing was deleted.
func (db *DB) DeleteReport(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM gap_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrReportNotFound
	}
	return nil
}
