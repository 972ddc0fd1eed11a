package gitbooktext

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL   = "internal"    // unexpected internal error
	EINVALID    = "invalid"     // invalid input (e.g., malformed URL)
	ENETWORK    = "network"     // transport, status, or decode failure
	EIO         = "io"          // file read/write/directory-creation failure
	ENOTGITBOOK = "not_gitbook" // the target site is not a GitBook
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("gitbooktext error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf constructs an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
