// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// domain precondition, overflow) and for carrying the offending operation.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Typed errors are plain values checked with errors.As via the Is* helpers.
package apperrors
