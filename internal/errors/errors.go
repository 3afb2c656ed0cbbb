// Package errors provides the standardized error types for the library.
// It defines a single structured Error used across all public APIs, with a
// condition kind, operation context, and error wrapping support.
package errors

import (
	"fmt"
)

// Kind classifies an Error into one of the library's failure conditions.
type Kind int

const (
	// KindInvalidArgument indicates a wrong shape, type, or missing required
	// input at the call that received it.
	KindInvalidArgument Kind = iota
	// KindShapeMismatch indicates paired sequences of unequal length.
	KindShapeMismatch
	// KindEmptySequence indicates First/Last/aggregate over zero elements.
	KindEmptySequence
	// KindDuplicateKey indicates a label appearing more than once where a
	// unique lookup is required.
	KindDuplicateKey
	// KindMissingColumn indicates a lookup against a nonexistent column name.
	KindMissingColumn
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindShapeMismatch:
		return "shape mismatch"
	case KindEmptySequence:
		return "empty sequence"
	case KindDuplicateKey:
		return "duplicate key"
	case KindMissingColumn:
		return "missing column"
	default:
		return "unknown"
	}
}

// Error represents a standardized library error.
type Error struct {
	Kind    Kind   // Failure condition classification
	Op      string // Operation name (e.g., "First", "Reindex", "OrderBy")
	Column  string // Column name if applicable
	Message string // Human-readable error description
	Cause   error  // Underlying error cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: %s failed on column '%s': %s", e.Kind, e.Op, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s failed: %s", e.Kind, e.Op, e.Message)
}

// Unwrap returns the underlying cause for error wrapping support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same Kind, so callers can test conditions with
// errors.Is against the exported sentinels below.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinel values for errors.Is checks, one per condition kind.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Op: "any"}
	ErrShapeMismatch   = &Error{Kind: KindShapeMismatch, Op: "any"}
	ErrEmptySequence   = &Error{Kind: KindEmptySequence, Op: "any"}
	ErrDuplicateKey    = &Error{Kind: KindDuplicateKey, Op: "any"}
	ErrMissingColumn   = &Error{Kind: KindMissingColumn, Op: "any"}
)

// NewInvalidArgumentError creates an error for invalid operation inputs.
func NewInvalidArgumentError(op, message string) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Message: message}
}

// NewShapeMismatchError creates an error for paired sequences of unequal length.
func NewShapeMismatchError(op string, left, right int) *Error {
	return &Error{
		Kind:    KindShapeMismatch,
		Op:      op,
		Message: fmt.Sprintf("paired sequences must have equal length, got %d and %d", left, right),
	}
}

// NewEmptySequenceError creates an error for terminal operations on an empty sequence.
func NewEmptySequenceError(op string) *Error {
	return &Error{Kind: KindEmptySequence, Op: op, Message: "no elements in sequence"}
}

// NewDuplicateKeyError creates an error for a repeated lookup label.
func NewDuplicateKeyError(op string, label any) *Error {
	return &Error{
		Kind:    KindDuplicateKey,
		Op:      op,
		Message: fmt.Sprintf("label %v appears more than once in the source index", label),
	}
}

// NewMissingColumnError creates an error for operations on non-existent columns.
func NewMissingColumnError(op, column string) *Error {
	return &Error{
		Kind:    KindMissingColumn,
		Op:      op,
		Column:  column,
		Message: "column does not exist",
	}
}
