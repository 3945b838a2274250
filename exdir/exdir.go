// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package exdir stores arrays in Exdir directory hierarchies.
//
// An Exdir file is a directory tree of groups, datasets and raw directories.
// Each object records its type in exdir.yaml and may carry attributes in
// attributes.yaml; datasets keep their array in data.npy.
//
// Example:
//
//	f, err := exdir.CreateFile("experiment.exdir")
//	if err != nil {
//	    return err
//	}
//	session, _ := f.CreateGroup("session1")
//	data, _ := ndarray.Zeros[float64](ndarray.Shape{100, 4}, ndarray.RowMajor)
//	ds, err := exdir.CreateDataset(session, "lfp", data)
//	ds.SetAttr("unit", "mV")
//	err = ds.Write()
package exdir

import (
	"github.com/born-ml/exdir/internal/exdir"
	"github.com/born-ml/exdir/internal/ndarray"
)

// File is the root group of an exdir hierarchy.
type File = exdir.File

// Group holds groups, datasets and raws.
type Group = exdir.Group

// Dataset stores exactly one array.
type Dataset[T ndarray.Element] = exdir.Dataset[T]

// DatasetHeader describes a dataset without loading its array.
type DatasetHeader = exdir.DatasetHeader

// Raw is a directory of arbitrary files.
type Raw = exdir.Raw

// Object is the part every exdir object shares.
type Object = exdir.Object

// Member is a named child of a group.
type Member = exdir.Member

// ObjectType is the kind of an object as recorded in exdir.yaml.
type ObjectType = exdir.ObjectType

// Object types.
const (
	TypeFile    ObjectType = exdir.TypeFile
	TypeGroup   ObjectType = exdir.TypeGroup
	TypeDataset ObjectType = exdir.TypeDataset
	TypeRaw     ObjectType = exdir.TypeRaw
)

// File names inside an object directory.
const (
	MetaFilename       = exdir.MetaFilename
	AttributesFilename = exdir.AttributesFilename
	DataFilename       = exdir.DataFilename
)

// Option configures a file and the objects opened through it.
type Option = exdir.Option

// WalkFunc is called for each object during traversal.
type WalkFunc = exdir.WalkFunc

// Errors returned by tree operations.
var (
	ErrExists        = exdir.ErrExists
	ErrNotFound      = exdir.ErrNotFound
	ErrNotFile       = exdir.ErrNotFile
	ErrNotGroup      = exdir.ErrNotGroup
	ErrNotDataset    = exdir.ErrNotDataset
	ErrNotRaw        = exdir.ErrNotRaw
	ErrInvalidObject = exdir.ErrInvalidObject
	ErrInvalidName   = exdir.ErrInvalidName
)

// WithLogger sets the logger used by the tree layer.
var WithLogger = exdir.WithLogger

// CreateFile creates a new exdir file at path.
func CreateFile(path string, opts ...Option) (*File, error) {
	return exdir.CreateFile(path, opts...)
}

// Open opens the existing exdir file at path.
func Open(path string, opts ...Option) (*File, error) {
	return exdir.Open(path, opts...)
}

// OpenObject opens the object at path whatever its type.
func OpenObject(path string, opts ...Option) (*Object, error) {
	return exdir.OpenObject(path, opts...)
}

// CreateDataset creates the dataset name in g and writes data to it.
func CreateDataset[T ndarray.Element](g *Group, name string, data *ndarray.Array[T]) (*Dataset[T], error) {
	return exdir.CreateDataset(g, name, data)
}

// OpenDataset opens the dataset name in g and loads its array.
func OpenDataset[T ndarray.Element](g *Group, name string) (*Dataset[T], error) {
	return exdir.OpenDataset[T](g, name)
}

// StatDataset reads only the npy header of the dataset name in g.
func StatDataset(g *Group, name string) (*DatasetHeader, error) {
	return exdir.StatDataset(g, name)
}

// Walk traverses the hierarchy below g depth first.
func Walk(g *Group, fn WalkFunc) error {
	return exdir.Walk(g, fn)
}
