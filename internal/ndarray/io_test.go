package ndarray

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/exdir/internal/npy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ioShapes = []Shape{{6}, {2, 3}, {3, 2}, {1, 2, 3}, {0, 4}}

func roundTrip[T Element](t *testing.T, fill func(i int) T) {
	t.Helper()
	dir := t.TempDir()

	for _, shape := range ioShapes {
		for _, order := range []Order{RowMajor, ColumnMajor} {
			data := make([]T, shape.NumElements())
			for i := range data {
				data[i] = fill(i)
			}
			want, err := New(data, shape, order)
			require.NoError(t, err)

			path := filepath.Join(dir, "array.npy")
			require.NoError(t, want.Save(path))

			got, err := Load[T](path)
			require.NoError(t, err, "%s %v %s", DTypeOf[T](), shape, order)
			assert.True(t, want.Equal(got), "%s %v %s", DTypeOf[T](), shape, order)

			info, err := npy.ReadHeader(path)
			require.NoError(t, err)
			assert.Equal(t, DTypeOf[T](), info.DType)
			assert.Equal(t, order == ColumnMajor, info.FortranOrder)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Run("int8", func(t *testing.T) { roundTrip(t, func(i int) int8 { return int8(i - 3) }) })
	t.Run("int16", func(t *testing.T) { roundTrip(t, func(i int) int16 { return int16(-300 * i) }) })
	t.Run("int32", func(t *testing.T) { roundTrip(t, func(i int) int32 { return int32(1<<20 + i) }) })
	t.Run("int64", func(t *testing.T) { roundTrip(t, func(i int) int64 { return int64(-1<<40 + i) }) })
	t.Run("uint8", func(t *testing.T) { roundTrip(t, func(i int) uint8 { return uint8(250 + i) }) })
	t.Run("uint16", func(t *testing.T) { roundTrip(t, func(i int) uint16 { return uint16(60000 + i) }) })
	t.Run("uint32", func(t *testing.T) { roundTrip(t, func(i int) uint32 { return uint32(4e9) + uint32(i) }) })
	t.Run("uint64", func(t *testing.T) { roundTrip(t, func(i int) uint64 { return 1<<63 + uint64(i) }) })
	t.Run("float32", func(t *testing.T) { roundTrip(t, func(i int) float32 { return float32(i) / 3 }) })
	t.Run("float64", func(t *testing.T) { roundTrip(t, func(i int) float64 { return float64(i) * 1.1e-300 }) })
	t.Run("complex64", func(t *testing.T) {
		roundTrip(t, func(i int) complex64 { return complex(float32(i), -float32(i)/2) })
	})
	t.Run("complex128", func(t *testing.T) {
		roundTrip(t, func(i int) complex128 { return complex(float64(i)+0.5, 1e10) })
	})
	t.Run("char", func(t *testing.T) { roundTrip(t, func(i int) Char { return Char('a' + i) }) })
}

func TestLoadTypeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doubles.npy")
	a, err := Full(Shape{2, 2}, 1.0, RowMajor)
	require.NoError(t, err)
	require.NoError(t, a.Save(path))

	_, err = Load[float32](path)
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Load[uint8](path)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestLoadEmptyShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scalar.npy")
	blob := &npy.Blob{DType: npy.Float64, Shape: []int{}, RowMajor: true, Data: make([]byte, 8)}
	require.NoError(t, npy.Write(path, blob))

	_, err := Load[float64](path)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load[int32](filepath.Join(dir, "missing.npy"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.npy")
	require.NoError(t, os.WriteFile(bad, []byte("not an npy file"), 0o600))
	_, err = Load[int32](bad)
	require.ErrorIs(t, err, npy.ErrInvalidFormat)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "array.npy")

	first, err := Full(Shape{100}, int64(7), RowMajor)
	require.NoError(t, err)
	require.NoError(t, first.Save(path))

	second, err := FromSlice([]int64{1, 2}, Shape{2}, ColumnMajor)
	require.NoError(t, err)
	require.NoError(t, second.Save(path))

	got, err := Load[int64](path)
	require.NoError(t, err)
	assert.True(t, second.Equal(got))
}

func TestEncodeDecode(t *testing.T) {
	a, err := FromSlice([]complex64{1 + 2i, 3 + 4i, 5 + 6i, 7 + 8i}, Shape{2, 2}, ColumnMajor)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf))

	got, err := Decode[complex64](&buf)
	require.NoError(t, err)
	assert.True(t, a.Equal(got))
}

func TestTakeElementsMisaligned(t *testing.T) {
	buf := make([]byte, 17)
	copy(buf[1:], bytesOf([]float64{1.25}))

	src := buf[1:]
	got, err := takeElements[float64](&src)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.25}, got)
	assert.Nil(t, src)

	short := buf[:5]
	_, err = takeElements[float64](&short)
	require.ErrorIs(t, err, npy.ErrDataSize)
	assert.Len(t, short, 5)
}
