package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeUpstream        = "UPSTREAM_ERROR"
	CodeTimeout         = "TIMEOUT"
	CodeInternal        = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func Unauthenticated(message string) *AppError {
	return &AppError{
		Code:       CodeUnauthenticated,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Upstream marks a failed call to the remote bookings or identity service.
// The message is what the caller is allowed to see.
func Upstream(message string, err error) *AppError {
	return &AppError{
		Code:       CodeUpstream,
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// Timeout marks a request cut off by the server-side deadline.
func Timeout(message string) *AppError {
	return &AppError{
		Code:       CodeTimeout,
		Message:    message,
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

func IsUnauthenticated(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == CodeUnauthenticated
}
