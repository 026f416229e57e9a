package keynet

import (
	"fmt"
)

// An IOError is a failure to read or write one of the key files.
type IOError struct {
	Op   string // "reading" or "writing"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q failed: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// A ValidationError reports key material of the wrong size or shape.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
