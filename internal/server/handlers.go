package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-gap/internal/cache"
	"github.com/jonathan/resume-gap/internal/db"
	"github.com/jonathan/resume-gap/internal/extraction"
	"github.com/jonathan/resume-gap/internal/gap"
	"github.com/jonathan/resume-gap/internal/matching"
)

// ExtractRequest is the body of POST /extract. Empty text is valid and
// yields empty keyword sets.
type ExtractRequest struct {
	Text    string                      `json:"text"`
	Options *extraction.OptionOverrides `json:"options,omitempty"`
}

// MatchRequest is the body of POST /match.
type MatchRequest struct {
	JobKeywords    []string `json:"job_keywords" validate:"required,max=1000"`
	ResumeKeywords []string `json:"resume_keywords" validate:"max=1000"`
}

// GapRequest is the body of POST /gap. An empty resume is analyzed like any
// other and reports every job keyword as missing.
type GapRequest struct {
	Resume         string                      `json:"resume"`
	JobDescription string                      `json:"job_description" validate:"required"`
	Options        *extraction.OptionOverrides `json:"options,omitempty"`
	SectionMode    string                      `json:"section_mode,omitempty" validate:"omitempty,oneof=to-end bounded"`
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) *APIError {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return NewAPIError(CodeValidation, "invalid request body")
	}
	if err := s.validator.Struct(dst); err != nil {
		return NewAPIError(CodeValidation, extractValidationErrors(err))
	}
	return nil
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if apiErr := s.decodeAndValidate(w, r, &req); apiErr != nil {
		s.errorResponse(w, apiErr)
		return
	}

	opts := req.Options.Apply(s.analyzer.Options())
	s.jsonResponse(w, http.StatusOK, s.analyzer.ExtractWithOptions(req.Text, opts))
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if apiErr := s.decodeAndValidate(w, r, &req); apiErr != nil {
		s.errorResponse(w, apiErr)
		return
	}

	s.jsonResponse(w, http.StatusOK, matching.MatchSkills(req.JobKeywords, req.ResumeKeywords))
}

func (s *Server) handleGap(w http.ResponseWriter, r *http.Request) {
	var req GapRequest
	if apiErr := s.decodeAndValidate(w, r, &req); apiErr != nil {
		s.errorResponse(w, apiErr)
		return
	}

	ctx := r.Context()
	opts := req.Options.Apply(s.analyzer.Options())
	mode := s.sectionMode
	if req.SectionMode != "" {
		mode = matching.SectionMode(req.SectionMode)
	}
	key := cache.Key(req.Resume, req.JobDescription, opts, mode)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.metrics.ObserveStorageError("redis")
			s.logger.Warn("report cache lookup failed", zap.Error(err))
		}
		s.metrics.ObserveCache(ok)
		if ok {
			s.jsonResponse(w, http.StatusOK, cached)
			return
		}
	}

	report := gap.BuildReportWithOptions(s.analyzer, req.Resume, req.JobDescription, mode, opts)
	s.metrics.ObserveScore(report.Analysis.OverallMatchScore)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, &report); err != nil {
			s.metrics.ObserveStorageError("redis")
			s.logger.Warn("failed to cache report", zap.Error(err))
		}
	}
	if s.store != nil {
		if err := s.store.SaveReport(ctx, &report); err != nil {
			s.metrics.ObserveStorageError("postgres")
			s.logger.Warn("failed to persist report", zap.String("id", report.ID.String()), zap.Error(err))
		}
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// requireStore writes STORAGE_UNAVAILABLE and returns false when no store is configured.
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		s.errorResponse(w, NewAPIError(CodeStorageUnavailable, "report storage is not configured"))
		return false
	}
	return true
}

// reportID parses the {id} path value.
func reportID(r *http.Request) (uuid.UUID, *APIError) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, NewAPIError(CodeValidation, "invalid report ID")
	}
	return id, nil
}

// storeError maps a ReportStore failure to an APIError.
func (s *Server) storeError(err error) *APIError {
	if errors.Is(err, db.ErrReportNotFound) {
		return NewAPIError(CodeNotFound, "report not found")
	}
	s.metrics.ObserveStorageError("postgres")
	s.logger.Error("report store failure", zap.Error(err))
	return NewAPIError(CodeStorageUnavailable, UserMessage(CodeStorageUnavailable))
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.errorResponse(w, NewAPIError(CodeValidation, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	summaries, err := s.store.ListReports(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, s.storeError(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"reports": summaries,
		"count":   len(summaries),
	})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, apiErr := reportID(r)
	if apiErr != nil {
		s.errorResponse(w, apiErr)
		return
	}

	report, err := s.store.GetReport(r.Context(), id)
	if err != nil {
		s.errorResponse(w, s.storeError(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, apiErr := reportID(r)
	if apiErr != nil {
		s.errorResponse(w, apiErr)
		return
	}

	if err := s.store.DeleteReport(r.Context(), id); err != nil {
		s.errorResponse(w, s.storeError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
