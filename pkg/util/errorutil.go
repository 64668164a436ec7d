package util

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors across the service.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationError reports every violated field rule of one submission.
func NewValidationError(violations []string) error {
	return NewDomainError("VALIDATION_FAILED", "validation failed", http.StatusBadRequest,
		map[string]any{"violations": violations})
}

// NewDuplicateUsername reports a registration conflict.
func NewDuplicateUsername(username string) error {
	return NewDomainError("DUPLICATE_USERNAME",
		fmt.Sprintf("username %q is already taken", username),
		http.StatusConflict, nil)
}

// NewStorageError wraps a backing-store failure with operation context. The
// write is never dropped silently.
func NewStorageError(operation string, err error) error {
	return &DomainError{
		Code:       "STORAGE_ERROR",
		Message:    fmt.Sprintf("storage failure during %s", operation),
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewEmptyInput reports an aggregate requested over zero records.
func NewEmptyInput(what string) error {
	return NewDomainError("EMPTY_INPUT",
		fmt.Sprintf("no survey records available for %s", what),
		http.StatusUnprocessableEntity, nil)
}

// NewInsufficientData reports a statistics precondition that was not met.
func NewInsufficientData(message string) error {
	return NewDomainError("INSUFFICIENT_DATA", message, http.StatusUnprocessableEntity, nil)
}

// NewRenderError surfaces a document-renderer failure with its full
// diagnostic; composition of a partial report is not attempted.
func NewRenderError(err error) error {
	return &DomainError{
		Code:       "RENDER_ERROR",
		Message:    "report rendering failed",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewNotFound(resource string, details map[string]any) error {
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NewNotFound("resource", nil).(*DomainError)
	}
	return NewInternalError(err).(*DomainError)
}
