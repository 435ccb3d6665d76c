package errors

import (
	"net/http"

	"arcade/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy of the error carrying the given details
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error with a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is reports whether target carries the same business error code, so that
// copies made by WithDetails / WithMessage still match the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Entity lookup errors
	ErrGameNotFound = NewBaseError(
		http.StatusNotFound,
		"GAME_NOT_FOUND",
		"Game not found",
		nil,
	)

	ErrMatchNotFound = NewBaseError(
		http.StatusNotFound,
		"MATCH_NOT_FOUND",
		"Match not found",
		nil,
	)

	ErrPlayerNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAYER_NOT_FOUND",
		"Player not found",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		nil,
	)

	// Authentication and authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		nil,
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		nil,
	)

	// Document store errors
	ErrDocumentDecode = NewBaseError(
		http.StatusInternalServerError,
		"DOCUMENT_DECODE_FAILED",
		"Stored document could not be read",
		nil,
	)

	// General errors
	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, please try again later",
		nil,
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		nil,
	)
)

// FieldError describes a single rejected input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError builds a VALIDATION_FAILED error listing every rejected field
func NewValidationError(fields []FieldError) *BaseError {
	return ErrValidationFailed.WithDetails(fields)
}

// StoreError represents a document store failure, implementing the AppError interface
type StoreError struct {
	err       error
	operation string
}

// NewStoreError wraps a document store failure for the given operation
func NewStoreError(err error, operation string) AppError {
	return &StoreError{
		err:       err,
		operation: operation,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrapf(e.err, "document store %s failed", e.operation).Error()
}

// Unwrap exposes the underlying store failure
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return "Document store is unavailable"
}

// Details returns the failed operation name
func (e *StoreError) Details() any {
	return e.operation
}
