// Package errors provides sentinel errors and error types for the pawns game.
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
	// ErrInvalidNotation indicates input that is not a move such as "e2e4".
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrNoPawn indicates the mover has no pawn on the source square.
	ErrNoPawn = errors.New("no pawn at source square")

	// ErrIllegalMove indicates a move that violates the pawn rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed pawn FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move with the context needed to explain it
// to the player. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying sentinel
	Colour string // Colour of the side that tried to move
	Move   string // The move text, e.g. "e2e5"
	Square string // The square the rejection refers to (if applicable)
	Reason string // Short explanation, e.g. "destination occupied"
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	if e.Square != "" {
		parts = append(parts, "at "+e.Square)
	}

	context := strings.Join(parts, " ")
	msg := "illegal move"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	if context == "" {
		return msg
	}
	return context + ": " + msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
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
