package npy

import (
	"fmt"
	"math"
)

// Blob is an array in codec form: element type, shape, order flag and the
// raw element bytes in host byte order.
type Blob struct {
	DType    DType
	Shape    []int
	RowMajor bool
	Data     []byte
}

// Header returns the header that describes b when written on this host.
func (b *Blob) Header() Header {
	return Header{
		ByteOrder:    HostOrder(),
		DType:        b.DType,
		FortranOrder: !b.RowMajor,
		Shape:        b.Shape,
	}
}

// Validate checks that the data length matches shape and data type.
func (b *Blob) Validate() error {
	if !b.DType.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedType, int(b.DType))
	}
	size, err := dataSize(b.Shape, b.DType)
	if err != nil {
		return err
	}
	if size != len(b.Data) {
		return fmt.Errorf("%w: shape %v of %s needs %d bytes, got %d",
			ErrDataSize, b.Shape, b.DType, size, len(b.Data))
	}
	return nil
}

// dataSize returns product(shape) * dt.Size(), rejecting negative dimensions
// and overflow.
func dataSize(shape []int, dt DType) (int, error) {
	n := dt.Size()
	for i, d := range shape {
		if d < 0 {
			return 0, formatErrorf("shape", "negative dimension %d at index %d", d, i)
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, formatErrorf("shape", "shape %v overflows", shape)
		}
		n *= d
	}
	return n, nil
}
