package ndarray

import "github.com/born-ml/exdir/internal/npy"

// Char is the raw character element kind (descriptor "b1").
type Char uint8

// Integer is the set of integer element types, including Char.
type Integer interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | Char
}

// Float is the set of floating-point element types.
type Float interface {
	float32 | float64
}

// Real is the set of non-complex element types.
type Real interface {
	Integer | Float
}

// Complex is the set of complex element types.
type Complex interface {
	complex64 | complex128
}

// Element is the closed set of element types an Array can hold. The union
// lists exact types only, so every instantiation maps to exactly one
// npy.DType in dtypeOf.
type Element interface {
	Real | Complex
}

// DType is the codec data type enumeration.
type DType = npy.DType

// dtypeOf returns the DType tag of T.
func dtypeOf[T Element]() DType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return npy.Int8
	case int16:
		return npy.Int16
	case int32:
		return npy.Int32
	case int64:
		return npy.Int64
	case uint8:
		return npy.Uint8
	case uint16:
		return npy.Uint16
	case uint32:
		return npy.Uint32
	case uint64:
		return npy.Uint64
	case float32:
		return npy.Float32
	case float64:
		return npy.Float64
	case complex64:
		return npy.Complex64
	case complex128:
		return npy.Complex128
	case Char:
		return npy.Char
	}
	panic("unreachable: Element has no other types")
}

// DTypeOf returns the DType tag of element type T.
func DTypeOf[T Element]() DType {
	return dtypeOf[T]()
}
