package exdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/exdir/internal/ndarray"
	"github.com/born-ml/exdir/internal/npy"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCreateOpenDataset(t *testing.T) {
	f := newTestFile(t)
	g, err := f.CreateGroup("session")
	require.NoError(t, err)

	a, err := ndarray.FromSlice([]int32{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3}, ndarray.ColumnMajor)
	require.NoError(t, err)

	ds, err := CreateDataset(g, "counts", a)
	require.NoError(t, err)
	assert.True(t, ds.IsDataset())
	assert.Same(t, a, ds.Data)
	assert.FileExists(t, filepath.Join(ds.Path(), DataFilename))

	opened, err := OpenDataset[int32](g, "counts")
	require.NoError(t, err)
	assert.True(t, a.Equal(opened.Data))
	assert.Equal(t, "counts", opened.Name())

	info, err := opened.Info()
	require.NoError(t, err)
	assert.Equal(t, npy.Int32, info.DType)
	assert.Equal(t, []int{2, 3}, info.Shape)
	assert.True(t, info.FortranOrder)
}

func TestOpenDatasetErrors(t *testing.T) {
	f := newTestFile(t)
	a, err := ndarray.Zeros[float64](ndarray.Shape{3}, ndarray.RowMajor)
	require.NoError(t, err)
	_, err = CreateDataset(f.Group, "ds", a)
	require.NoError(t, err)

	_, err = OpenDataset[float32](f.Group, "ds")
	require.ErrorIs(t, err, ndarray.ErrTypeMismatch)

	_, err = OpenDataset[float64](f.Group, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = f.CreateGroup("g")
	require.NoError(t, err)
	_, err = OpenDataset[float64](f.Group, "g")
	require.ErrorIs(t, err, ErrNotDataset)

	require.NoError(t, os.Remove(filepath.Join(f.Path(), "ds", DataFilename)))
	_, err = OpenDataset[float64](f.Group, "ds")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = CreateDataset[float64](f.Group, "nil", nil)
	require.ErrorIs(t, err, ErrInvalidObject)
	assert.False(t, f.Contains("nil"))

	_, err = CreateDataset(f.Group, "ds", a)
	require.ErrorIs(t, err, ErrExists)
}

func TestDatasetWrite(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f, err := CreateFile(filepath.Join(t.TempDir(), "test.exdir"), WithLogger(zap.New(core)))
	require.NoError(t, err)

	a, err := ndarray.Full(ndarray.Shape{2, 2}, complex64(1+2i), ndarray.RowMajor)
	require.NoError(t, err)
	ds, err := CreateDataset(f.Group, "z", a)
	require.NoError(t, err)

	ds.Data.MulScalar(2)
	require.NoError(t, ds.Data.Reshape(ndarray.Shape{4}))
	ds.SetAttr("unit", "mV")
	ds.SetAttr("rate", 30000)
	require.NoError(t, ds.Write())

	opened, err := OpenDataset[complex64](f.Group, "z")
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{4}, opened.Data.Shape())
	assert.Equal(t, []complex64{2 + 4i, 2 + 4i, 2 + 4i, 2 + 4i}, opened.Data.Values())
	assert.Equal(t, map[string]any{"unit": "mV", "rate": 30000}, opened.Attrs())

	assert.Len(t, logs.FilterMessage("wrote dataset").All(), 2)

	ds.Data = nil
	require.ErrorIs(t, ds.Write(), ErrInvalidObject)
}

func TestDatasetRaws(t *testing.T) {
	f := newTestFile(t)
	a, err := ndarray.Zeros[uint8](ndarray.Shape{1}, ndarray.RowMajor)
	require.NoError(t, err)
	ds, err := CreateDataset(f.Group, "ds", a)
	require.NoError(t, err)

	_, err = ds.CreateRaw("b")
	require.NoError(t, err)
	_, err = ds.CreateRaw("a")
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(ds.Path(), "c"), 0o755))

	raws, err := ds.MemberRaws()
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"a", "b", "c"}, raws); diff != "" {
		t.Errorf("MemberRaws() mismatch (-want +got):\n%s", diff)
	}

	raw, err := ds.OpenRaw("c")
	require.NoError(t, err)
	assert.True(t, raw.IsRaw())

	_, err = ds.CreateRaw("a")
	require.ErrorIs(t, err, ErrExists)

	header, err := StatDataset(f.Group, "ds")
	require.NoError(t, err)
	assert.Equal(t, npy.Uint8, header.Info.DType)
	raws, err = header.MemberRaws()
	require.NoError(t, err)
	assert.Len(t, raws, 3)
}
