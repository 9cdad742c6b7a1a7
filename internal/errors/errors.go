package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorDomain   = 3   // Indicates an input violated a mathematical precondition.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid
// command-line arguments or environment values. It indicates that the
// application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// DomainError signals that an input violates a documented precondition of a
// combinatorial operation (negative size, draw larger than the pool,
// multiplicities not summing to the declared total). It is raised at the
// boundary of the offending function and never silently clamped.
type DomainError struct {
	// Op is the name of the operation that rejected the input.
	Op string
	// Message explains which precondition was violated.
	Message string
}

// Error returns a formatted message identifying the operation and the
// violated precondition.
func (e DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NewDomainError creates a new DomainError for the given operation with a
// formatted message.
//
// Parameters:
//   - op: The name of the rejecting operation (e.g., "factorial").
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new DomainError instance.
func NewDomainError(op, format string, a ...any) error {
	return DomainError{Op: op, Message: fmt.Sprintf(format, a...)}
}

// OverflowError signals that an arbitrary-precision result does not fit into
// the fixed-width integer representation requested by the caller. The engine
// itself computes with big integers; this error only occurs at conversion
// boundaries (e.g., the enumeration budget check).
type OverflowError struct {
	// Op is the name of the conversion that overflowed.
	Op string
	// Value is the decimal representation of the value that did not fit.
	Value string
}

// Error returns a formatted message describing the overflow.
func (e OverflowError) Error() string {
	return fmt.Sprintf("%s: value %s overflows the requested integer width", e.Op, e.Value)
}

// IsDomain reports whether the error (or any error it wraps) is a DomainError.
func IsDomain(err error) bool {
	var domainErr DomainError
	return errors.As(err, &domainErr)
}

// IsOverflow reports whether the error (or any error it wraps) is an OverflowError.
func IsOverflow(err error) bool {
	var overflowErr OverflowError
	return errors.As(err, &overflowErr)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the application exit code reported to the OS.
// Context errors are distinguished so that a timeout and an interrupt produce
// different codes.
func ExitCodeFor(err error) int {
	var configErr ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case IsDomain(err):
		return ExitErrorDomain
	case errors.As(err, &configErr), IsOverflow(err):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
