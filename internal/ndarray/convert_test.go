package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	a, err := FromSlice([]float64{1.5, -2.25, 300}, Shape{3, 1}, ColumnMajor)
	require.NoError(t, err)

	ints := Convert[int32](a)
	assert.Equal(t, []int32{1, -2, 300}, ints.Values())
	assert.Equal(t, Shape{3, 1}, ints.Shape())
	assert.Equal(t, ColumnMajor, ints.Order())

	f32 := Convert[float32](a)
	assert.Equal(t, []float32{1.5, -2.25, 300}, f32.Values())

	c := Convert[complex128](a)
	assert.Equal(t, []complex128{1.5, -2.25, 300}, c.Values())

	// Source is unchanged.
	assert.Equal(t, []float64{1.5, -2.25, 300}, a.Values())
}

func TestConvertFromComplex(t *testing.T) {
	a, err := FromSlice([]complex128{1.5 + 2i, -3 - 1i}, Shape{2}, RowMajor)
	require.NoError(t, err)

	assert.Equal(t, []float64{1.5, -3}, Convert[float64](a).Values())
	assert.Equal(t, []int16{1, -3}, Convert[int16](a).Values())
	assert.Equal(t, []complex64{1.5 + 2i, -3 - 1i}, Convert[complex64](a).Values())
}

func TestConvertSameTypeCopies(t *testing.T) {
	a, err := FromSlice([]uint8{1, 2, 3}, Shape{3}, RowMajor)
	require.NoError(t, err)

	b := Convert[uint8](a)
	require.True(t, a.Equal(b))

	require.NoError(t, b.SetLinear(0, 9))
	v, err := a.Get(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)
}

func TestConvertChar(t *testing.T) {
	a, err := FromSlice([]Char("hi"), Shape{2}, RowMajor)
	require.NoError(t, err)

	u := Convert[uint8](a)
	assert.Equal(t, []uint8{'h', 'i'}, u.Values())
	back := Convert[Char](u)
	assert.Equal(t, []Char("hi"), back.Values())
}
