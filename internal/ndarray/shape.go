package ndarray

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one dimension, that no
// dimension is negative, and that the element count fits in an int.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: shape must have at least one dimension", ErrInvalidShape)
	}
	n := 1
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
		if dim != 0 && n > math.MaxInt/dim {
			return fmt.Errorf("%w: %v overflows element count", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides returns the element strides of the shape for the given order.
// Row-major: stride[i] = product of all dimensions after i.
// Column-major: stride[i] = product of all dimensions before i.
func (s Shape) Strides(order Order) []int {
	strides := make([]int, len(s))
	acc := 1
	if order == ColumnMajor {
		for i := range s {
			strides[i] = acc
			acc *= s[i]
		}
		return strides
	}
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= s[i]
	}
	return strides
}

// checkCompatible verifies that two operand shapes match for elementwise ops.
// Every failure matches ErrShapeMismatch; a rank difference also matches
// ErrRankMismatch.
func checkCompatible(dst, src Shape) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %w: %v (%d dimensions) vs %v (%d dimensions)",
			ErrShapeMismatch, ErrRankMismatch, dst, len(dst), src, len(src))
	}
	if !dst.Equal(src) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, dst, src)
	}
	return nil
}
