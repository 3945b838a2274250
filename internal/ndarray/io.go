package ndarray

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/born-ml/exdir/internal/npy"
)

// Load reads an array of element type T from the npy file at path.
//
// The file's data type must be T's DType (ErrTypeMismatch otherwise) and the
// file must describe at least one dimension (ErrInvalidShape). The buffer read
// by the codec becomes the array's storage without a further copy.
func Load[T Element](path string) (*Array[T], error) {
	blob, err := npy.Read(path)
	if err != nil {
		return nil, err
	}
	a, err := fromBlob[T](blob)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Decode reads one npy array of element type T from r.
func Decode[T Element](r io.Reader) (*Array[T], error) {
	blob, err := npy.Decode(r)
	if err != nil {
		return nil, err
	}
	return fromBlob[T](blob)
}

// Save writes the array to path in npy format. An existing file is replaced.
func (a *Array[T]) Save(path string) error {
	return npy.Write(path, a.blob())
}

// Encode writes the array to w in npy format.
func (a *Array[T]) Encode(w io.Writer) error {
	return npy.Encode(w, a.blob())
}

// blob returns a codec view of the array. Data aliases the array buffer.
func (a *Array[T]) blob() *npy.Blob {
	return &npy.Blob{
		DType:    dtypeOf[T](),
		Shape:    a.shape.Clone(),
		RowMajor: a.order == RowMajor,
		Data:     bytesOf(a.data),
	}
}

func fromBlob[T Element](blob *npy.Blob) (*Array[T], error) {
	if want := dtypeOf[T](); blob.DType != want {
		return nil, fmt.Errorf("%w: file holds %s, requested %s", ErrTypeMismatch, blob.DType, want)
	}
	data, err := takeElements[T](&blob.Data)
	if err != nil {
		return nil, err
	}
	return New(data, Shape(blob.Shape), orderOf(blob.RowMajor))
}

// bytesOf returns the bytes backing s.
func bytesOf[T Element](s []T) []byte {
	if len(s) == 0 {
		return []byte{}
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}

// takeElements moves the bytes in *src into a []T and leaves *src nil, so
// the returned slice is the buffer's only owner. Misaligned buffers are
// copied instead.
func takeElements[T Element](src *[]byte) ([]T, error) {
	data := *src
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of element size %d",
			npy.ErrDataSize, len(data), size)
	}
	*src = nil

	n := len(data) / size
	if n == 0 {
		return []T{}, nil
	}
	if uintptr(unsafe.Pointer(&data[0]))%unsafe.Alignof(zero) == 0 {
		return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n), nil
	}
	out := make([]T, n)
	copy(bytesOf(out), data)
	return out, nil
}
