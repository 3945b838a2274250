package ndarray

import "fmt"

// Reshape changes how the buffer is indexed without moving data.
// The new shape must have the same number of elements; otherwise the array
// is left unchanged and ErrShapeMismatch is returned.
//
// Example:
//
//	a, _ := ndarray.Zeros[int32](ndarray.Shape{4, 4}, ndarray.RowMajor)
//	err := a.Reshape(ndarray.Shape{4, 2, 2}) // ok
//	err = a.Reshape(ndarray.Shape{3, 3})     // ErrShapeMismatch, still [4 2 2]
func (a *Array[T]) Reshape(newShape Shape) error {
	if err := newShape.Validate(); err != nil {
		return err
	}
	if newShape.NumElements() != len(a.data) {
		return fmt.Errorf("%w: cannot reshape %v (%d elements) to %v (%d elements)",
			ErrShapeMismatch, a.shape, len(a.data), newShape, newShape.NumElements())
	}
	a.shape = newShape.Clone()
	return nil
}

// Reallocate resizes the buffer to fit newShape.
//
// WARNING: this is lossy. When the array shrinks, trailing elements are
// discarded. When it grows, new elements are zero. Elements keep their linear
// offset, not their multi-index.
func (a *Array[T]) Reallocate(newShape Shape) error {
	if err := newShape.Validate(); err != nil {
		return err
	}
	n := newShape.NumElements()
	if n != len(a.data) {
		data := make([]T, n)
		copy(data, a.data)
		a.data = data
	}
	a.shape = newShape.Clone()
	return nil
}

// Fill sets every element to value.
func (a *Array[T]) Fill(value T) {
	a.each(func(d []T) {
		for i := range d {
			d[i] = value
		}
	})
}
