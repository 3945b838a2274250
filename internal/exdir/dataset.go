package exdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/born-ml/exdir/internal/ndarray"
	"github.com/born-ml/exdir/internal/npy"
	"go.uber.org/zap"
)

// Dataset is an object that stores exactly one array in data.npy.
//
// Type Parameters:
//   - T: Element type of the stored array
//
// Data is loaded once when the dataset is opened. Changes to Data reach
// the disk only through Write.
type Dataset[T ndarray.Element] struct {
	Object
	Data *ndarray.Array[T]
}

// CreateDataset creates the dataset name in g and writes data to it.
// The dataset keeps a reference to data; it does not copy it.
//
// Example:
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2}, ndarray.RowMajor)
//	ds, err := exdir.CreateDataset(group, "weights", a)
func CreateDataset[T ndarray.Element](g *Group, name string, data *ndarray.Array[T]) (*Dataset[T], error) {
	if data == nil {
		return nil, fmt.Errorf("%w: dataset %q has no data", ErrInvalidObject, name)
	}
	obj, err := createObject(g.path, name, TypeDataset, g.opts)
	if err != nil {
		return nil, err
	}

	d := &Dataset[T]{Object: obj, Data: data}
	if err := d.writeData(); err != nil {
		_ = os.RemoveAll(obj.path) // Best effort cleanup
		return nil, err
	}
	return d, nil
}

// OpenDataset opens the dataset name in g and loads its array. The stored
// element type must be T (ndarray.ErrTypeMismatch otherwise).
func OpenDataset[T ndarray.Element](g *Group, name string) (*Dataset[T], error) {
	obj, err := openDatasetObject(g, name)
	if err != nil {
		return nil, err
	}
	data, err := ndarray.Load[T](filepath.Join(obj.path, DataFilename))
	if err != nil {
		return nil, err
	}
	return &Dataset[T]{Object: obj, Data: data}, nil
}

// Write persists Data to data.npy and the attributes to attributes.yaml.
func (d *Dataset[T]) Write() error {
	if d.Data == nil {
		return fmt.Errorf("%w: dataset %s has no data", ErrInvalidObject, d.path)
	}
	if err := d.writeData(); err != nil {
		return err
	}
	return d.WriteAttrs()
}

func (d *Dataset[T]) writeData() error {
	if err := d.Data.Save(filepath.Join(d.path, DataFilename)); err != nil {
		return err
	}
	d.logger().Debug("wrote dataset",
		zap.String("path", d.path),
		zap.Stringer("dtype", d.Data.DType()),
		zap.Ints("shape", d.Data.Shape()))
	return nil
}

// Info reads the header of the stored data.npy.
func (d *Dataset[T]) Info() (*npy.Info, error) {
	return npy.ReadHeader(filepath.Join(d.path, DataFilename))
}

// CreateRaw creates a raw directory inside the dataset.
func (d *Dataset[T]) CreateRaw(name string) (*Raw, error) {
	return d.createRaw(name)
}

// OpenRaw opens the raw directory name inside the dataset.
func (d *Dataset[T]) OpenRaw(name string) (*Raw, error) {
	return d.openRaw(name)
}

// MemberRaws returns the names of the raw directories inside the dataset, sorted.
func (d *Dataset[T]) MemberRaws() ([]string, error) {
	return d.membersOf(TypeRaw)
}

// DatasetHeader describes a dataset without loading its array. It is what
// Walk reports for datasets, since their element type is not known upfront.
type DatasetHeader struct {
	Object
	Info *npy.Info
}

// StatDataset opens the dataset name in g and reads only its npy header.
func StatDataset(g *Group, name string) (*DatasetHeader, error) {
	obj, err := openDatasetObject(g, name)
	if err != nil {
		return nil, err
	}
	info, err := npy.ReadHeader(filepath.Join(obj.path, DataFilename))
	if err != nil {
		return nil, err
	}
	return &DatasetHeader{Object: obj, Info: info}, nil
}

// MemberRaws returns the names of the raw directories inside the dataset, sorted.
func (h *DatasetHeader) MemberRaws() ([]string, error) {
	return h.membersOf(TypeRaw)
}

func openDatasetObject(g *Group, name string) (Object, error) {
	if err := validateName(name); err != nil {
		return Object{}, err
	}
	path := filepath.Join(g.path, name)
	obj, err := openObject(path, g.opts)
	if err != nil {
		return Object{}, err
	}
	if !obj.IsDataset() {
		return Object{}, fmt.Errorf("%w: %s is a %s", ErrNotDataset, path, obj.typ)
	}

	data := filepath.Join(path, DataFilename)
	if _, err := os.Stat(data); errors.Is(err, fs.ErrNotExist) {
		return Object{}, fmt.Errorf("%w: %s", ErrNotFound, data)
	}
	return obj, nil
}
