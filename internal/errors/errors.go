// Package errors provides sentinel errors and error types for the engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidUCI indicates text that is not a long-algebraic move.
	ErrInvalidUCI = errors.New("invalid UCI move")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move was offered after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrGameNotFound indicates an unknown game identifier.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvariant indicates a broken internal invariant (a programming defect).
	ErrInvariant = errors.New("invariant violation")
)

// FormatError reports malformed external text handed to the FEN or UCI
// adapters. It never escapes into the engine's internal types.
type FormatError struct {
	Format string // "FEN" or "UCI"
	Input  string // The offending text
	Field  string // Which part was wrong (if known)
	Err    error  // The underlying error
}

// Error returns a formatted error message including all available context.
func (e *FormatError) Error() string {
	var parts []string
	if e.Format != "" {
		parts = append(parts, e.Format)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, fmt.Sprintf("%q", e.Input))

	context := strings.Join(parts, " ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFENError creates a FormatError for a FEN field.
func NewFENError(input, field, format string, args ...interface{}) *FormatError {
	return &FormatError{
		Format: "FEN",
		Input:  input,
		Field:  field,
		Err:    fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidFEN),
	}
}

// NewUCIError creates a FormatError for a UCI move string.
func NewUCIError(input, format string, args ...interface{}) *FormatError {
	return &FormatError{
		Format: "UCI",
		Input:  input,
		Err:    fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidUCI),
	}
}

// IllegalMoveError reports an externally supplied move that is not among
// the legal moves of the position it was offered in.
type IllegalMoveError struct {
	Move string // The move as given
	FEN  string // The position it was offered in (if known)
}

// Error returns a formatted error message.
func (e *IllegalMoveError) Error() string {
	if e.FEN != "" {
		return fmt.Sprintf("move %q in position %q: %v", e.Move, e.FEN, ErrIllegalMove)
	}
	return fmt.Sprintf("move %q: %v", e.Move, ErrIllegalMove)
}

// Unwrap returns ErrIllegalMove so callers can use errors.Is.
func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// InvariantViolation signals a programming defect such as a position that
// lost its king. It is raised with panic, never returned.
type InvariantViolation struct {
	Msg string
}

// Error returns the violation message.
func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvariant, e.Msg)
}

// Unwrap returns ErrInvariant.
func (e *InvariantViolation) Unwrap() error {
	return ErrInvariant
}

// Invariantf panics with an InvariantViolation built from the format.
func Invariantf(format string, args ...interface{}) {
	panic(&InvariantViolation{Msg: fmt.Sprintf(format, args...)})
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
