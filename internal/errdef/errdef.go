// Package errdef defines the coded error values shared across the module.
// A Code classifies an error for callers that only care about the failure
// class, while the wrapped error keeps the full chain for %w formatting.
package errdef

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeUnknown    Code = "unknown"
	CodePattern    Code = "pattern"
	CodeClipboard  Code = "clipboard"
	CodeConfig     Code = "config"
	CodeFilesystem Code = "filesystem"
)

// Error carries a classification code alongside a human readable message
// and an optional cause.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Msg != "" {
			return e.Msg + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a coded error without a cause.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an existing error.
func Wrap(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf extracts the classification of err, or CodeUnknown when err does
// not carry one anywhere in its chain.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// Message returns the message of the outermost coded error, falling back to
// the plain error text.
func Message(err error) string {
	var coded *Error
	if errors.As(err, &coded) && coded.Msg != "" {
		return coded.Msg
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
