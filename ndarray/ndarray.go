// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides a generic n-dimensional array backed by one flat
// buffer, with row-major (C) or column-major (Fortran) indexing and NumPy
// .npy persistence.
//
// Example:
//
//	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3}, ndarray.RowMajor)
//	if err != nil {
//	    return err
//	}
//	v, _ := a.At(1, 2) // 6
//	_ = a.Reshape(ndarray.Shape{3, 2})
//	err = a.Save("a.npy")
package ndarray

import (
	"io"

	"github.com/born-ml/exdir/internal/ndarray"
)

// Element is the closed set of element types an Array can hold:
// int8-64, uint8-64, float32, float64, complex64, complex128 and Char.
type Element = ndarray.Element

// Real is the set of non-complex element types.
type Real = ndarray.Real

// Complex is the set of complex element types.
type Complex = ndarray.Complex

// Char is the raw character element kind.
type Char = ndarray.Char

// DType is the data type tag of an element type.
type DType = ndarray.DType

// Shape represents the dimensions of an array.
type Shape = ndarray.Shape

// Order selects how a multi-index resolves to a linear offset.
type Order = ndarray.Order

// Memory orders.
const (
	RowMajor    Order = ndarray.RowMajor
	ColumnMajor Order = ndarray.ColumnMajor
)

// Array is a generic n-dimensional array.
type Array[T Element] = ndarray.Array[T]

// IndexError reports an index component outside its dimension.
type IndexError = ndarray.IndexError

// Errors returned by array operations.
var (
	ErrInvalidShape   = ndarray.ErrInvalidShape
	ErrShapeMismatch  = ndarray.ErrShapeMismatch
	ErrRankMismatch   = ndarray.ErrRankMismatch
	ErrOutOfRange     = ndarray.ErrOutOfRange
	ErrTypeMismatch   = ndarray.ErrTypeMismatch
	ErrDivisionByZero = ndarray.ErrDivisionByZero
)

// New creates an array that takes ownership of data.
func New[T Element](data []T, shape Shape, order Order) (*Array[T], error) {
	return ndarray.New(data, shape, order)
}

// FromSlice creates an array from a copy of data.
func FromSlice[T Element](data []T, shape Shape, order Order) (*Array[T], error) {
	return ndarray.FromSlice(data, shape, order)
}

// Zeros creates an array filled with zeros.
func Zeros[T Element](shape Shape, order Order) (*Array[T], error) {
	return ndarray.Zeros[T](shape, order)
}

// Full creates an array filled with value.
func Full[T Element](shape Shape, value T, order Order) (*Array[T], error) {
	return ndarray.Full(shape, value, order)
}

// DTypeOf returns the DType tag of element type T.
func DTypeOf[T Element]() DType {
	return ndarray.DTypeOf[T]()
}

// Convert returns a copy of a with every element converted to U.
//
// Example:
//
//	ints, _ := ndarray.FromSlice([]int32{1, 2, 3}, ndarray.Shape{3}, ndarray.RowMajor)
//	floats := ndarray.Convert[float64](ints)
func Convert[U, T Element](a *Array[T]) *Array[U] {
	return ndarray.Convert[U](a)
}

// Add adds src into dst element by element, converting src elements to T.
func Add[T, U Element](dst *Array[T], src *Array[U]) error {
	return ndarray.Add(dst, src)
}

// Sub subtracts src from dst element by element, converting src elements to T.
func Sub[T, U Element](dst *Array[T], src *Array[U]) error {
	return ndarray.Sub(dst, src)
}

// Mul multiplies dst by src element by element, converting src elements to T.
func Mul[T, U Element](dst *Array[T], src *Array[U]) error {
	return ndarray.Mul(dst, src)
}

// Div divides dst by src element by element, converting src elements to T.
func Div[T, U Element](dst *Array[T], src *Array[U]) error {
	return ndarray.Div(dst, src)
}

// Load reads an array of element type T from the npy file at path.
func Load[T Element](path string) (*Array[T], error) {
	return ndarray.Load[T](path)
}

// Decode reads one npy array of element type T from r.
func Decode[T Element](r io.Reader) (*Array[T], error) {
	return ndarray.Decode[T](r)
}
