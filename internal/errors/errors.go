package errors

import (
	"fmt"
)

// AppError represents a structured application error.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an error with additional context, preserving the code of an
// inner AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	code := "INTERNAL_ERROR"
	if appErr, ok := err.(*AppError); ok {
		code = appErr.Code
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// ConfigInvalid reports a configuration problem.
func ConfigInvalid(message string) *AppError {
	return &AppError{Code: "CONFIG_INVALID", Message: message}
}
