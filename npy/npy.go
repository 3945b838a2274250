// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package npy reads and writes the NumPy .npy binary array format.
//
// The codec moves raw element bytes: a Blob carries the element type, the
// shape, the memory order flag and the data in host byte order.
//
// Example:
//
//	blob, err := npy.Read("weights.npy")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(blob.DType, blob.Shape)
package npy

import (
	"io"

	"github.com/born-ml/exdir/internal/npy"
)

// DType identifies an element type of the format.
type DType = npy.DType

// Data type constants.
const (
	Int8       DType = npy.Int8
	Int16      DType = npy.Int16
	Int32      DType = npy.Int32
	Int64      DType = npy.Int64
	Uint8      DType = npy.Uint8
	Uint16     DType = npy.Uint16
	Uint32     DType = npy.Uint32
	Uint64     DType = npy.Uint64
	Float32    DType = npy.Float32
	Float64    DType = npy.Float64
	Complex64  DType = npy.Complex64
	Complex128 DType = npy.Complex128
	Char       DType = npy.Char
)

// ByteOrder is the byte order marker of a descriptor.
type ByteOrder = npy.ByteOrder

// Byte order markers.
const (
	LittleEndian  ByteOrder = npy.LittleEndian
	BigEndian     ByteOrder = npy.BigEndian
	NativeOrder   ByteOrder = npy.NativeOrder
	NotApplicable ByteOrder = npy.NotApplicable
)

// Header is the parsed header dictionary.
type Header = npy.Header

// Info describes an npy file without its element data.
type Info = npy.Info

// Blob is an array in codec form.
type Blob = npy.Blob

// Mapped is a read-only memory mapping of an npy file.
type Mapped = npy.Mapped

// FormatError describes a malformed file.
type FormatError = npy.FormatError

// Errors returned by the codec.
var (
	ErrInvalidFormat   = npy.ErrInvalidFormat
	ErrUnsupportedType = npy.ErrUnsupportedType
	ErrDataSize        = npy.ErrDataSize
)

// Read reads the npy file at path.
func Read(path string) (*Blob, error) {
	return npy.Read(path)
}

// ReadHeader reads only the header of the npy file at path.
func ReadHeader(path string) (*Info, error) {
	return npy.ReadHeader(path)
}

// Write writes b to the file at path, replacing any existing file.
func Write(path string, b *Blob) error {
	return npy.Write(path, b)
}

// Decode reads one npy array from r.
func Decode(r io.Reader) (*Blob, error) {
	return npy.Decode(r)
}

// Encode writes b to w in npy format.
func Encode(w io.Writer, b *Blob) error {
	return npy.Encode(w, b)
}

// Map memory-maps the npy file at path. Call Close on the result.
func Map(path string) (*Mapped, error) {
	return npy.Map(path)
}

// ParseDescr maps a type descriptor without its byte order marker, such as
// "f8", to a DType.
func ParseDescr(descr string) (DType, error) {
	return npy.ParseDescr(descr)
}

// HostOrder returns the byte order of the running machine.
func HostOrder() ByteOrder {
	return npy.HostOrder()
}
