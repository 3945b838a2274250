package ndarray

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidShape   = errors.New("invalid shape")
	ErrShapeMismatch  = errors.New("shape mismatch")
	ErrRankMismatch   = errors.New("rank mismatch")
	ErrOutOfRange     = errors.New("index out of range")
	ErrTypeMismatch   = errors.New("data type mismatch")
	ErrDivisionByZero = errors.New("integer division by zero")
)

// IndexError reports an index component outside its dimension.
type IndexError struct {
	Dim   int // Dimension the index applies to (-1 for linear indexing)
	Index int // Offending index
	Size  int // Size of the dimension
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Dim < 0 {
		return fmt.Sprintf("%s: linear index %d (size %d)", ErrOutOfRange, e.Index, e.Size)
	}
	return fmt.Sprintf("%s: index %d for dimension %d (size %d)", ErrOutOfRange, e.Index, e.Dim, e.Size)
}

// Unwrap allows errors.Is(err, ErrOutOfRange).
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}
