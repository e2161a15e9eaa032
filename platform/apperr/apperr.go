// Package apperr provides standardized domain error types for the tools.
// Library code returns these typed errors, and the CLI layer maps them to
// process exit codes.
package apperr

import "fmt"

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindNotFound indicates an input file was not found.
	KindNotFound
	// KindValidation indicates invalid input data or options.
	KindValidation
	// KindIO indicates a read or write failure.
	KindIO
	// KindInternal indicates an unexpected internal error.
	KindInternal
)

// Error is a domain error with a typed Kind for exit-code mapping.
type Error struct {
	Kind    Kind
	Message string
	Op      string // Operation that failed (optional)
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for this error kind.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindValidation:
		return 2
	case KindNotFound:
		return 3
	case KindIO:
		return 4
	default:
		return 1
	}
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// Convenience constructors for common error types.

// NotFound creates a not found error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// IO creates an input/output error.
func IO(message string) *Error {
	return New(KindIO, message)
}

// Internal creates an internal error.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// GetKind extracts the error kind from an error.
// Returns KindUnknown if the error is not an *Error.
func GetKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return GetKind(err) == kind
}

// ExitCodeFor returns the exit code for any error; non-domain errors map to 1.
func ExitCodeFor(err error) int {
	if e, ok := err.(*Error); ok {
		return e.ExitCode()
	}
	return 1
}
