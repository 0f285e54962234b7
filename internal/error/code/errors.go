package code

import (
	"errors"
	"fmt"
)

// Error is the failure type returned by domain services. Message is what the
// client sees; Err keeps the underlying cause for logs.
type Error struct {
	Code    int
	Message string
	Err     error
}

// New returns an Error with the default message of c.
func New(c int) *Error {
	return &Error{Code: c, Message: GetMessage(c)}
}

// Newf returns an Error with a formatted message.
func Newf(c int, format string, args ...interface{}) *Error {
	return &Error{Code: c, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to the default message of c.
func Wrap(c int, err error) *Error {
	return &Error{Code: c, Message: GetMessage(c), Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error's code.
func (e *Error) Status() int {
	return GetStatus(e.Code)
}

// From converts any error into an *Error. Errors that are not already typed
// become ErrDatabase so store failures never leak their text to clients.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(ErrDatabase, err)
}

// Is reports whether err carries the given code.
func Is(err error, c int) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == c
}
