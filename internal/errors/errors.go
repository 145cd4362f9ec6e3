// Package errors provides custom error types for the Wealthcast API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"net/http"

	"wealthcast/internal/projection"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// Parameter-validation failures additionally carry the engine's field-level
// error list so clients can route messages to the offending input.
type AppError struct {
	Code       string                  `json:"code"`
	Message    string                  `json:"message"`
	Fields     []projection.FieldError `json:"fields,omitempty"`
	StatusCode int                     `json:"-"`
	Internal   error                   `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithFields creates a new AppError carrying the engine's validation errors.
func WithFields(sentinel *AppError, fields []projection.FieldError) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Fields:     fields,
		StatusCode: sentinel.StatusCode,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Scenario errors.
var (
	ErrScenarioNotFound      = &AppError{Code: "SCENARIO_NOT_FOUND", Message: "Scenario not found", StatusCode: http.StatusNotFound}
	ErrScenarioAssetNotFound = &AppError{Code: "SCENARIO_ASSET_NOT_FOUND", Message: "Scenario asset not found", StatusCode: http.StatusNotFound}
	ErrSharedLinkNotFound    = &AppError{Code: "SHARED_LINK_NOT_FOUND", Message: "Shared scenario not found", StatusCode: http.StatusNotFound}
)

// Projection errors.
var (
	ErrInvalidAssetKind  = &AppError{Code: "INVALID_ASSET_KIND", Message: "Unsupported asset kind", StatusCode: http.StatusBadRequest}
	ErrInvalidParameters = &AppError{Code: "INVALID_PARAMETERS", Message: "One or more parameters are out of bounds", StatusCode: http.StatusUnprocessableEntity}
)
