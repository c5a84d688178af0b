package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of client error.
//
// Categories map directly to how the session and export layers react:
// authorization errors are terminal for a session (token discarded),
// network and malformed-response errors are not (token retained, session
// degrades), permission and export errors are user-actionable and never
// retried automatically.
type ErrorCode string

const (
	// ErrCodeUnauthorized indicates the backend rejected the bearer token
	// (invalid, expired, or missing).
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeInvalidCredentials indicates a failed email/password sign-in.
	ErrCodeInvalidCredentials ErrorCode = "invalid_credentials"
	// ErrCodeNetwork indicates the backend was unreachable or the call timed out.
	ErrCodeNetwork ErrorCode = "network"
	// ErrCodeMalformedResponse indicates an empty or non-JSON response body.
	// Treated like a network error for session purposes.
	ErrCodeMalformedResponse ErrorCode = "malformed_response"
	// ErrCodePermissionDenied indicates the user declined a storage or
	// media-library permission prompt.
	ErrCodePermissionDenied ErrorCode = "permission_denied"
	// ErrCodeGenerationFailed indicates QR rasterization failed or produced
	// an empty buffer.
	ErrCodeGenerationFailed ErrorCode = "generation_failed"
	// ErrCodeSnapshotUnavailable indicates a card snapshot returned no pixels.
	ErrCodeSnapshotUnavailable ErrorCode = "snapshot_unavailable"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeCanceled indicates the operation was canceled by its caller.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError is a structured client error with a code, message, optional cause
// and an optional next-step hint shown to the user. It supports error
// wrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type.
	Code ErrorCode
	// Message is a human-readable error message.
	Message string
	// Hint suggests an actionable next step (retry, open settings,
	// use an alternate export method). Optional.
	Hint string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithHint returns a copy of the error carrying a user-facing next step.
func (e *AppError) WithHint(hint string) *AppError {
	clone := *e
	clone.Hint = hint
	return &clone
}

// Unauthorized creates a new authorization error.
func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// InvalidCredentials creates a failed-sign-in error.
func InvalidCredentials(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidCredentials, Message: message}
}

// Network creates a new network error.
func Network(message string) *AppError {
	return &AppError{Code: ErrCodeNetwork, Message: message}
}

// Networkf creates a new network error with formatted message.
func Networkf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNetwork, Message: fmt.Sprintf(format, args...)}
}

// MalformedResponse creates a new malformed-response error.
func MalformedResponse(message string) *AppError {
	return &AppError{Code: ErrCodeMalformedResponse, Message: message}
}

// PermissionDenied creates a new permission error.
func PermissionDenied(message string) *AppError {
	return &AppError{Code: ErrCodePermissionDenied, Message: message}
}

// GenerationFailed creates a new QR-generation error.
func GenerationFailed(message string) *AppError {
	return &AppError{Code: ErrCodeGenerationFailed, Message: message}
}

// SnapshotUnavailable creates a new snapshot error.
func SnapshotUnavailable(message string) *AppError {
	return &AppError{Code: ErrCodeSnapshotUnavailable, Message: message}
}

// NotFound creates a new not-found error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// Validation creates a new validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Validationf creates a new validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Internal creates a new internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Canceled creates a new cancellation error.
func Canceled(message string) *AppError {
	return &AppError{Code: ErrCodeCanceled, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error carries a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsUnauthorized checks if an error is an authorization error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsInvalidCredentials checks if an error is a failed-sign-in error.
func IsInvalidCredentials(err error) bool {
	return isCode(err, ErrCodeInvalidCredentials)
}

// IsNetwork reports whether an error should be treated as a transient
// network failure by the session layer. Malformed responses count: an empty
// or non-JSON body is indistinguishable from a half-dead backend and must
// not cost the user their token.
func IsNetwork(err error) bool {
	return isCode(err, ErrCodeNetwork) || isCode(err, ErrCodeMalformedResponse)
}

// IsMalformedResponse checks if an error is a malformed-response error.
func IsMalformedResponse(err error) bool {
	return isCode(err, ErrCodeMalformedResponse)
}

// IsPermissionDenied checks if an error is a permission error.
func IsPermissionDenied(err error) bool {
	return isCode(err, ErrCodePermissionDenied)
}

// IsGenerationFailed checks if an error is a QR-generation error.
func IsGenerationFailed(err error) bool {
	return isCode(err, ErrCodeGenerationFailed)
}

// IsSnapshotUnavailable checks if an error is a snapshot error.
func IsSnapshotUnavailable(err error) bool {
	return isCode(err, ErrCodeSnapshotUnavailable)
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsCanceled checks if an error is a cancellation error.
func IsCanceled(err error) bool {
	return isCode(err, ErrCodeCanceled)
}

// GetCode returns the ErrorCode from an error, or empty string if it is not
// an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetHint returns the user-facing hint from an error, or empty string.
func GetHint(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Hint
	}
	return ""
}
