// Package npy reads and writes the NumPy .npy binary array format.
//
// The codec works on raw bytes only: a Blob carries the element type, the
// shape, the memory order flag and the element bytes. It has no knowledge of
// how arrays are represented in memory beyond that.
//
//	File Structure:
//	  [6 bytes: Magic "\x93NUMPY"]
//	  [1 byte:  Major version]
//	  [1 byte:  Minor version]
//	  [2 or 4 bytes: Header length (LE, 2 bytes for v1, 4 bytes for v2/v3)]
//	  [Header: ASCII dict literal, space padded, '\n' terminated]
//	  [Element data: raw bytes]
//
// The whole prefix (magic, version, length and header text) is padded to a
// multiple of 64 bytes. Version 1 is written whenever the header length fits
// in 16 bits, version 2 otherwise.
//
// Example usage:
//
//	blob := &npy.Blob{
//	    DType:    npy.Float64,
//	    Shape:    []int{2, 3},
//	    RowMajor: true,
//	    Data:     raw,
//	}
//	if err := npy.Write("data.npy", blob); err != nil {
//	    log.Fatal(err)
//	}
//
//	blob, err := npy.Read("data.npy")
//	if err != nil {
//	    log.Fatal(err)
//	}
package npy
