package ndarray

import (
	"fmt"

	"github.com/born-ml/exdir/internal/parallel"
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

func (op binaryOp) String() string {
	switch op {
	case opAdd:
		return "add"
	case opSub:
		return "subtract"
	case opMul:
		return "multiply"
	default:
		return "divide"
	}
}

// Add adds src into dst element by element: dst[i] += T(src[i]).
//
// Both arrays must have the same shape (ErrShapeMismatch, which a rank
// difference also reports as ErrRankMismatch).
// Elements are combined by linear offset regardless of either array's Order.
// When U differs from T, each src element is first converted to T with Go's
// native conversion, then combined with T's arithmetic.
//
// Example:
//
//	doubles, _ := ndarray.Full(ndarray.Shape{4}, 3.5, ndarray.RowMajor)
//	ints, _ := ndarray.Full(ndarray.Shape{4}, int32(2), ndarray.RowMajor)
//	err := ndarray.Add(doubles, ints) // doubles = [5.5 5.5 5.5 5.5]
func Add[T, U Element](dst *Array[T], src *Array[U]) error {
	return apply(dst, src, opAdd)
}

// Sub subtracts src from dst element by element. See Add for the rules.
func Sub[T, U Element](dst *Array[T], src *Array[U]) error {
	return apply(dst, src, opSub)
}

// Mul multiplies dst by src element by element. See Add for the rules.
func Mul[T, U Element](dst *Array[T], src *Array[U]) error {
	return apply(dst, src, opMul)
}

// Div divides dst by src element by element. See Add for the rules.
// For integer element types a zero divisor fails with ErrDivisionByZero
// before any element is modified.
func Div[T, U Element](dst *Array[T], src *Array[U]) error {
	return apply(dst, src, opDiv)
}

// Add adds other into a element by element.
func (a *Array[T]) Add(other *Array[T]) error { return Add(a, other) }

// Sub subtracts other from a element by element.
func (a *Array[T]) Sub(other *Array[T]) error { return Sub(a, other) }

// Mul multiplies a by other element by element.
func (a *Array[T]) Mul(other *Array[T]) error { return Mul(a, other) }

// Div divides a by other element by element.
func (a *Array[T]) Div(other *Array[T]) error { return Div(a, other) }

func apply[T, U Element](dst *Array[T], src *Array[U], op binaryOp) error {
	if err := checkCompatible(dst.shape, src.shape); err != nil {
		return fmt.Errorf("cannot %s: %w", op, err)
	}

	operand := castData[T](src.data)
	if op == opDiv && dst.DType().IsInteger() {
		for i, v := range operand {
			if v == 0 {
				return fmt.Errorf("cannot %s: %w at offset %d", op, ErrDivisionByZero, i)
			}
		}
	}

	data := dst.data
	parallel.Range(len(data), parallel.DefaultConfig(), func(lo, hi int) {
		d, o := data[lo:hi], operand[lo:hi]
		switch op {
		case opAdd:
			for i := range d {
				d[i] += o[i]
			}
		case opSub:
			for i := range d {
				d[i] -= o[i]
			}
		case opMul:
			for i := range d {
				d[i] *= o[i]
			}
		case opDiv:
			for i := range d {
				d[i] /= o[i]
			}
		}
	})
	return nil
}

// AddScalar adds c to every element.
func (a *Array[T]) AddScalar(c T) {
	a.each(func(d []T) {
		for i := range d {
			d[i] += c
		}
	})
}

// SubScalar subtracts c from every element.
func (a *Array[T]) SubScalar(c T) {
	a.each(func(d []T) {
		for i := range d {
			d[i] -= c
		}
	})
}

// MulScalar multiplies every element by c.
func (a *Array[T]) MulScalar(c T) {
	a.each(func(d []T) {
		for i := range d {
			d[i] *= c
		}
	})
}

// DivScalar divides every element by c. For integer element types a zero c
// fails with ErrDivisionByZero and leaves the array unchanged.
func (a *Array[T]) DivScalar(c T) error {
	if c == 0 && a.DType().IsInteger() {
		return fmt.Errorf("cannot divide: %w", ErrDivisionByZero)
	}
	a.each(func(d []T) {
		for i := range d {
			d[i] /= c
		}
	})
	return nil
}

// each runs f over disjoint chunks of the buffer, in parallel for large arrays.
func (a *Array[T]) each(f func(d []T)) {
	parallel.Range(len(a.data), parallel.DefaultConfig(), func(lo, hi int) {
		f(a.data[lo:hi])
	})
}
