package ndarray

import "slices"

// Convert returns a new array of element type U with the same shape and order
// as a. Every element goes through Go's native conversion to U; overflow and
// precision loss are not reported. Complex to real keeps the real part, real
// to complex sets a zero imaginary part.
//
// Example:
//
//	ints, _ := ndarray.FromSlice([]int32{1, 2, 3}, ndarray.Shape{3}, ndarray.RowMajor)
//	floats := ndarray.Convert[float64](ints)
func Convert[U, T Element](a *Array[T]) *Array[U] {
	var data []U
	if same, ok := any(a.data).([]U); ok {
		data = slices.Clone(same)
	} else {
		data = castData[U](a.data)
	}
	return &Array[U]{
		data:  data,
		shape: a.shape.Clone(),
		order: a.order,
	}
}

// castData converts src element-wise to U. When U and T are the same type the
// input slice is returned as is.
func castData[U, T Element](src []T) []U {
	if same, ok := any(src).([]U); ok {
		return same
	}
	switch s := any(src).(type) {
	case []int8:
		return fromReal[U](s)
	case []int16:
		return fromReal[U](s)
	case []int32:
		return fromReal[U](s)
	case []int64:
		return fromReal[U](s)
	case []uint8:
		return fromReal[U](s)
	case []uint16:
		return fromReal[U](s)
	case []uint32:
		return fromReal[U](s)
	case []uint64:
		return fromReal[U](s)
	case []Char:
		return fromReal[U](s)
	case []float32:
		return fromReal[U](s)
	case []float64:
		return fromReal[U](s)
	case []complex64:
		return fromComplex[U](s)
	case []complex128:
		return fromComplex[U](s)
	}
	panic("unreachable: Element has no other types")
}

func fromReal[U Element, S Real](src []S) []U {
	dst := make([]U, len(src))
	switch d := any(dst).(type) {
	case []int8:
		castReal(d, src)
	case []int16:
		castReal(d, src)
	case []int32:
		castReal(d, src)
	case []int64:
		castReal(d, src)
	case []uint8:
		castReal(d, src)
	case []uint16:
		castReal(d, src)
	case []uint32:
		castReal(d, src)
	case []uint64:
		castReal(d, src)
	case []Char:
		castReal(d, src)
	case []float32:
		castReal(d, src)
	case []float64:
		castReal(d, src)
	case []complex64:
		for i, v := range src {
			d[i] = complex(float32(v), 0)
		}
	case []complex128:
		for i, v := range src {
			d[i] = complex(float64(v), 0)
		}
	}
	return dst
}

func fromComplex[U Element, S Complex](src []S) []U {
	dst := make([]U, len(src))
	switch d := any(dst).(type) {
	case []int8:
		realPart(d, src)
	case []int16:
		realPart(d, src)
	case []int32:
		realPart(d, src)
	case []int64:
		realPart(d, src)
	case []uint8:
		realPart(d, src)
	case []uint16:
		realPart(d, src)
	case []uint32:
		realPart(d, src)
	case []uint64:
		realPart(d, src)
	case []Char:
		realPart(d, src)
	case []float32:
		realPart(d, src)
	case []float64:
		realPart(d, src)
	case []complex64:
		for i, v := range src {
			d[i] = complex64(v)
		}
	case []complex128:
		for i, v := range src {
			d[i] = complex128(v)
		}
	}
	return dst
}

func castReal[D, S Real](dst []D, src []S) {
	for i, v := range src {
		dst[i] = D(v)
	}
}

func realPart[D Real, S Complex](dst []D, src []S) {
	for i, v := range src {
		dst[i] = D(real(complex128(v)))
	}
}
