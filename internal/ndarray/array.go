package ndarray

import (
	"fmt"
	"slices"
)

// Array is a generic n-dimensional array with a flat buffer.
//
// Type Parameters:
//   - T: Element type (must satisfy the Element constraint)
//
// An Array is not safe for concurrent mutation; distinct arrays may be used
// from different goroutines freely.
type Array[T Element] struct {
	data  []T
	shape Shape
	order Order
}

// New creates an array that takes ownership of data. The caller must not
// use data after the call.
//
// Example:
//
//	a, err := ndarray.New([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2}, ndarray.RowMajor)
func New[T Element](data []T, shape Shape, order Order) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}
	if data == nil {
		data = []T{}
	}
	return &Array[T]{
		data:  data,
		shape: shape.Clone(),
		order: orderOf(order != ColumnMajor),
	}, nil
}

// FromSlice creates an array from a copy of data.
func FromSlice[T Element](data []T, shape Shape, order Order) (*Array[T], error) {
	return New(slices.Clone(data), shape, order)
}

// Zeros creates an array filled with zeros.
func Zeros[T Element](shape Shape, order Order) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return New(make([]T, shape.NumElements()), shape, order)
}

// Full creates an array filled with value.
func Full[T Element](shape Shape, value T, order Order) (*Array[T], error) {
	a, err := Zeros[T](shape, order)
	if err != nil {
		return nil, err
	}
	a.Fill(value)
	return a, nil
}

// Shape returns a copy of the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// NDim returns the number of dimensions.
func (a *Array[T]) NDim() int {
	return len(a.shape)
}

// Len returns the number of elements in the buffer.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// DType returns the data type tag of T.
func (a *Array[T]) DType() DType {
	return dtypeOf[T]()
}

// Order returns the array's index order.
func (a *Array[T]) Order() Order {
	return a.order
}

// RowMajor reports whether the array uses C order.
func (a *Array[T]) RowMajor() bool {
	return a.order == RowMajor
}

// Values returns a copy of the flat buffer in storage order.
func (a *Array[T]) Values() []T {
	return slices.Clone(a.data)
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		data:  slices.Clone(a.data),
		shape: a.shape.Clone(),
		order: a.order,
	}
}

// Equal reports whether a and other have the same shape, order and elements.
// Floating-point NaN elements never compare equal.
func (a *Array[T]) Equal(other *Array[T]) bool {
	return a.order == other.order &&
		a.shape.Equal(other.shape) &&
		slices.Equal(a.data, other.data)
}

// String returns a human-readable description of the array.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]%v(%s)", a.DType(), []int(a.shape), a.order)
}
