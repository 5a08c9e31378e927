// Package errors defines the coded errors returned at geograph's document
// and file boundary.
//
// Every failure that crosses a package boundary is an [*Error] carrying a
// [Code]. The graph codec reports malformed documents as INVALID_FORMAT, the
// io package reports unreadable or missing files as INVALID_PATH or
// FILE_NOT_FOUND, and the CLI reports bad arguments as INVALID_INPUT.
// Queries that find nothing are not errors: an unreachable node yields
// +Inf and an unknown id yields nil.
//
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    log.Error("malformed document", "code", errors.GetCode(err))
//	}
//
// [ExitCode] maps codes to process exit statuses for cmd/geograph.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"  // bad command-line argument or config value
	ErrCodeInvalidFormat Code = "INVALID_FORMAT" // malformed graph document
	ErrCodeInvalidPath   Code = "INVALID_PATH"   // unusable file path
	ErrCodeNotFound      Code = "NOT_FOUND"      // unknown node or component
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

// Process exit statuses returned by ExitCode.
const (
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
	ExitFormat   = 4
)

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error renders "CODE: message" or "CODE: message: cause".
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap returns an Error with a formatted message and cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost *Error without its code
// prefix, or err.Error() for other errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Format is shorthand for New(ErrCodeInvalidFormat, ...), used throughout
// document decoding.
func Format(format string, args ...any) *Error {
	return New(ErrCodeInvalidFormat, format, args...)
}

// ExitCode maps err to a process exit status: 0 for nil, ExitUsage for bad
// input or paths, ExitNotFound for missing files or nodes, ExitFormat for
// malformed documents and ExitFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidPath:
		return ExitUsage
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return ExitNotFound
	case ErrCodeInvalidFormat:
		return ExitFormat
	default:
		return ExitFailure
	}
}
