// Package errors provides sentinel errors and error types for the rules engine.
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
	// ErrInvalidSquare indicates a malformed square coordinate.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameAlreadyOver indicates a move or command submitted after the game ended.
	ErrGameAlreadyOver = errors.New("game already over")

	// ErrInvalidPosition indicates a starting position that cannot be played from.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInternal indicates a broken engine invariant, such as a missing king.
	ErrInternal = errors.New("internal error")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an archive lookup for an unknown game ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrArchive indicates a failure reading or writing the game archive.
	ErrArchive = errors.New("archive failure")
)

// MoveError wraps errors with move context, including ply number,
// squares and the rejection reason. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	PlyNum int    // Ply number where the error occurred (0 if not applicable)
	From   string // Source square (if known)
	To     string // Destination square (if known)
	Reason string // Human readable rejection reason
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// SquareError reports a malformed coordinate together with the offending input.
type SquareError struct {
	Input string
}

// Error returns the offending input quoted.
func (e *SquareError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidSquare, e.Input)
}

// Unwrap returns ErrInvalidSquare.
func (e *SquareError) Unwrap() error {
	return ErrInvalidSquare
}

// Is reports whether err is the sentinel for this error kind.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As re-exported so callers need a single errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
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
