package ndarray

import "fmt"

// LinearIndex resolves a multi-index to an offset into the flat buffer.
//
// The number of indices must equal the number of dimensions (ErrRankMismatch)
// and every component must lie in [0, shape[d]) (ErrOutOfRange). Dimensions
// are checked in the order the offset is accumulated: last to first for
// row-major arrays, first to last for column-major arrays.
func (a *Array[T]) LinearIndex(indices ...int) (int, error) {
	n := len(a.shape)
	if len(indices) != n {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrRankMismatch, n, len(indices))
	}

	offset := 0
	coeff := 1
	for k := 0; k < n; k++ {
		d := k
		if a.order == RowMajor {
			d = n - 1 - k
		}
		idx := indices[d]
		if idx < 0 || idx >= a.shape[d] {
			return 0, &IndexError{Dim: d, Index: idx, Size: a.shape[d]}
		}
		offset += idx * coeff
		coeff *= a.shape[d]
	}
	return offset, nil
}

// At returns the element at the given indices.
//
// Example:
//
//	a, _ := ndarray.Zeros[float32](ndarray.Shape{3, 4}, ndarray.RowMajor)
//	v, err := a.At(1, 2) // Row 1, column 2
func (a *Array[T]) At(indices ...int) (T, error) {
	offset, err := a.LinearIndex(indices...)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[offset], nil
}

// Set sets the element at the given indices.
func (a *Array[T]) Set(value T, indices ...int) error {
	offset, err := a.LinearIndex(indices...)
	if err != nil {
		return err
	}
	a.data[offset] = value
	return nil
}

// Get returns the element at linear offset i of the flat buffer.
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, &IndexError{Dim: -1, Index: i, Size: len(a.data)}
	}
	return a.data[i], nil
}

// SetLinear sets the element at linear offset i of the flat buffer.
func (a *Array[T]) SetLinear(i int, value T) error {
	if i < 0 || i >= len(a.data) {
		return &IndexError{Dim: -1, Index: i, Size: len(a.data)}
	}
	a.data[i] = value
	return nil
}
