package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a downstream dependency failure. Domain rule
// violations use the sentinel errors in the domain package; this
// taxonomy exists so the REST layer can tell a broken provider (502)
// from a broken service (500) without inspecting error strings.
type ErrorCode string

const (
	ErrCodeClaimStore ErrorCode = "CLAIM_STORE_ERROR"
	ErrCodeDatabase   ErrorCode = "DATABASE_ERROR"
	ErrCodeMail       ErrorCode = "MAIL_ERROR"
	ErrCodeSearch     ErrorCode = "SEARCH_ERROR"
	ErrCodeMonitor    ErrorCode = "MONITOR_ERROR"
)

// AppError carries an error code, an HTTP status and the underlying
// cause. The cause stays server-side; only code and message may reach
// a response body.
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is / errors.As
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError without a cause
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusFor(code),
	}
}

// Wrap attaches a code and message to a downstream failure
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusFor(code),
		Cause:      cause,
	}
}

// AsAppError extracts an AppError from anywhere in the wrap chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// statusFor maps provider failures to 502 and everything else to 500
func statusFor(code ErrorCode) int {
	switch code {
	case ErrCodeClaimStore, ErrCodeMail, ErrCodeSearch, ErrCodeMonitor:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
