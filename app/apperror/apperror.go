// Package apperror defines the error type carried to the central error page.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultMessage is shown when an error carries no message of its own.
const DefaultMessage = "Oh no something went wrong!"

// AppError is an error with an HTTP status code.
type AppError struct {
	Message    string
	StatusCode int
	// Err is the underlying cause. It is logged, never shown.
	Err error
}

// New returns an AppError with the given message and status.
func New(message string, statusCode int) *AppError {
	return &AppError{Message: message, StatusCode: statusCode}
}

// Wrap attaches a cause to a new AppError.
func Wrap(err error, message string, statusCode int) *AppError {
	return &AppError{Message: message, StatusCode: statusCode, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// BadRequest is a client error, such as a failed validation.
func BadRequest(message string) *AppError {
	return New(message, http.StatusBadRequest)
}

// NotFound is a missing resource or an unmatched route.
func NotFound(message string) *AppError {
	return New(message, http.StatusNotFound)
}

// Internal wraps an unexpected failure with the default message.
func Internal(err error) *AppError {
	return Wrap(err, DefaultMessage, http.StatusInternalServerError)
}

// From normalizes any error into an AppError. Errors that are not AppErrors
// become 500s with the default message; missing fields are defaulted.
func From(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		return Internal(err)
	}

	out := *appErr
	if out.StatusCode == 0 {
		out.StatusCode = http.StatusInternalServerError
	}
	if out.Message == "" {
		out.Message = DefaultMessage
	}
	return &out
}
