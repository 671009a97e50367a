// Package errors provides the standardized failure taxonomy for the
// intent-to-action pipeline.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeMissingParameter   ErrorCode = "MISSING_PARAMETER"
	ErrCodeUnsupportedAction  ErrorCode = "UNSUPPORTED_ACTION"
	ErrCodeClassifierOutput   ErrorCode = "CLASSIFIER_OUTPUT_MALFORMED"
	ErrCodeClassifierTimeout  ErrorCode = "CLASSIFIER_API_TIMEOUT"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// AsStandard unwraps err into a *StandardError, or nil if it is not one.
func AsStandard(err error) *StandardError {
	var se *StandardError
	if errors.As(err, &se) {
		return se
	}
	return nil
}

// HasCode reports whether err is a StandardError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	se := AsStandard(err)
	return se != nil && se.Code == code
}

// NewCatalogUnavailableError creates a retryable catalog transport error.
func NewCatalogUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogUnavailable,
		Message:   "Catalog service request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a non-retryable zero-match error. The query that
// produced no matches is preserved in Details.
func NewNotFoundError(kind, query string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   fmt.Sprintf("No %s matched the query", kind),
		Details:   query,
		Retryable: false,
		Metadata:  map[string]interface{}{"kind": kind},
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingParameterError creates a non-retryable validation error for a
// required parameter absent from the intent.
func NewMissingParameterError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingParameter,
		Message:   "Required parameter missing from intent",
		Details:   name,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedActionError creates a non-retryable error for an action name
// outside the registry. The verbatim action name lands in Details so the
// sentinel and arbitrary unknown names stay distinguishable.
func NewUnsupportedActionError(action string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedAction,
		Message:   "Action is not supported",
		Details:   action,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewClassifierOutputError creates a non-retryable error for a classifier
// reply that could not be decoded into a directive.
func NewClassifierOutputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeClassifierOutput,
		Message:   "Classifier reply was not a valid directive",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewClassifierTimeoutError creates a retryable classifier transport error.
func NewClassifierTimeoutError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeClassifierTimeout,
		Message:   "Classifier call timed out or failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
