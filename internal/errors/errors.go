package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an engine error
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller violated a calling
	// convention, e.g. a filter context passed anywhere but last
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeInternal indicates an internal engine error
	CodeInternal Code = "internal"
)

// Error is an engine error with a code and optional metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return &Error{
			Code:    engineErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(engineErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Code == code
	}
	return false
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	return Is(err, CodeInternal)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
