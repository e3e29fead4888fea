// Package server provides the HTTP JSON API over the gap analysis pipeline.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-gap/internal/db"
)

// ErrorCode classifies API failures for clients.
type ErrorCode string

const (
	CodeNetwork            ErrorCode = "NETWORK_ERROR"
	CodeValidation         ErrorCode = "VALIDATION_ERROR"
	CodeRateLimited        ErrorCode = "RATE_LIMITED"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// APIError is the error body returned by every failing endpoint.
type APIError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// NewAPIError builds an APIError with the default status for code.
func NewAPIError(code ErrorCode, message string) *APIError {
	return &APIError{Code: code, Message: message, StatusCode: statusForCode(code)}
}

func statusForCode(code ErrorCode) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeNotFound:
		return http.StatusNotFound
	case CodeStorageUnavailable:
		return http.StatusServiceUnavailable
	case CodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage maps a code to text suitable for showing an end user.
func UserMessage(code ErrorCode) string {
	switch code {
	case CodeNetwork:
		return "Unable to reach the service. Please check your connection and try again."
	case CodeValidation:
		return "The request was invalid. Please check the input and try again."
	case CodeRateLimited:
		return "Too many requests. Please wait a moment and try again."
	case CodeNotFound:
		return "The requested report could not be found."
	case CodeStorageUnavailable:
		return "Report storage is not available right now."
	default:
		return "An unexpected error occurred. Please try again later."
	}
}

// IsRetryable reports whether a client should retry after err:
// any 5xx status, or a network error.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode >= 500 || apiErr.Code == CodeNetwork
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var apiErr *APIError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &apiErr):
		return apiErr.StatusCode
	case errors.Is(err, db.ErrReportNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
