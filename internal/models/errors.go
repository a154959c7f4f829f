package models

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes returned in the error envelope.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidLanguage  = "INVALID_LANGUAGE"
	CodeValidation       = "VALIDATION_ERROR"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMITED"
	CodeInternal         = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Details any
	Err     error
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

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, id),
	}
}

// NewInvalidLanguageError reports a language code outside the supported set.
// The full list of valid codes is always attached.
func NewInvalidLanguageError(code string, valid []string) *AppError {
	return &AppError{
		Code:    CodeInvalidLanguage,
		Message: fmt.Sprintf("Invalid language: %s. Valid languages: %s", code, strings.Join(valid, ", ")),
		Details: map[string]any{"valid_languages": valid},
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewMethodNotAllowedError() *AppError {
	return &AppError{
		Code:    CodeMethodNotAllowed,
		Message: "Only GET requests are allowed",
	}
}

func NewRateLimitedError() *AppError {
	return &AppError{
		Code:    CodeRateLimited,
		Message: "Too many requests, please try again later.",
	}
}

// NewInternalError wraps an unexpected failure. The wrapped error is for logs only
// and must never be written to a response.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "An internal server error occurred",
		Err:     err,
	}
}

// IsNotFound reports whether err carries the NOT_FOUND code.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
