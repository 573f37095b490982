package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// RemoteError wraps a failure reported by an external store (database or
// bucket); the store's own message is kept verbatim for the caller.
type RemoteError struct {
	Op  string
	Err error
}

func NewRemoteError(op string, err error) error {
	return &RemoteError{Op: op, Err: err}
}

func (err RemoteError) Error() string {
	return err.Op + ": " + err.Err.Error()
}

func (err RemoteError) Unwrap() error { return err.Err }

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
