package npy

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"slices"
)

// readChunk is the allocation step used when reading a data section.
const readChunk = 16 * 1024 * 1024

// Info describes an npy file without its element data.
type Info struct {
	Header
	Major      int   // Format major version
	Minor      int   // Format minor version
	DataOffset int64 // Offset of the first element byte
	DataSize   int64 // Number of element bytes
}

// RowMajor reports whether the stored order flag is C order.
func (i *Info) RowMajor() bool {
	return !i.FortranOrder
}

// decodeInfo reads magic, version, length field and header text from r.
func decodeInfo(r io.Reader) (*Info, error) {
	magic := make([]byte, MagicSize)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, formatErrorf("magic", "failed to read magic bytes: %v", err)
	}
	if string(magic) != Magic {
		return nil, formatErrorf("magic", "got %q, expected %q", magic, Magic)
	}

	var version [2]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return nil, formatErrorf("version", "failed to read version: %v", err)
	}

	info := &Info{Major: int(version[0]), Minor: int(version[1])}

	var hlen int
	switch info.Major {
	case Version1:
		var field [2]byte
		if _, err := io.ReadFull(r, field[:]); err != nil {
			return nil, formatErrorf("header_len", "failed to read header length: %v", err)
		}
		hlen = int(binary.LittleEndian.Uint16(field[:]))
		info.DataOffset = MagicSize + 2 + 2
	case Version2, Version3:
		var field [4]byte
		if _, err := io.ReadFull(r, field[:]); err != nil {
			return nil, formatErrorf("header_len", "failed to read header length: %v", err)
		}
		hlen = int(binary.LittleEndian.Uint32(field[:]))
		info.DataOffset = MagicSize + 2 + 4
	default:
		return nil, formatErrorf("version", "unsupported format version %d.%d", info.Major, info.Minor)
	}

	if hlen > MaxHeaderSize {
		return nil, formatErrorf("header_len", "header length %d exceeds maximum %d", hlen, MaxHeaderSize)
	}

	text := make([]byte, hlen)
	if _, err := io.ReadFull(r, text); err != nil {
		return nil, formatErrorf("header", "failed to read header: %v", err)
	}

	h, err := ParseHeader(string(text))
	if err != nil {
		return nil, err
	}
	info.Header = h
	info.DataOffset += int64(hlen)

	size, err := dataSize(h.Shape, h.DType)
	if err != nil {
		return nil, err
	}
	info.DataSize = int64(size)
	return info, nil
}

// decodeData reads the element bytes described by info and normalizes them
// to host byte order.
func decodeData(r io.Reader, info *Info) (*Blob, error) {
	data, err := readData(r, info.DataSize)
	if err != nil {
		return nil, formatErrorf("data", "failed to read %d data bytes: %v", info.DataSize, err)
	}

	if info.ByteOrder.Resolve() != HostOrder() {
		if err := SwapBytes(data, info.DType.SwapWidth()); err != nil {
			return nil, err
		}
	}

	return &Blob{
		DType:    info.DType,
		Shape:    info.Shape,
		RowMajor: info.RowMajor(),
		Data:     data,
	}, nil
}

// readData reads exactly n bytes from r. The buffer grows in readChunk steps
// so a header that overstates the data size fails on the short read instead
// of allocating the claimed size up front.
func readData(r io.Reader, n int64) ([]byte, error) {
	data := make([]byte, 0, min(n, readChunk))
	for remaining := n; remaining > 0; {
		step := int(min(remaining, readChunk))
		start := len(data)
		data = slices.Grow(data, step)[:start+step]
		if _, err := io.ReadFull(r, data[start:]); err != nil {
			return nil, err
		}
		remaining -= int64(step)
	}
	return data, nil
}

// Decode reads one npy array from r. Decode does not know the stream length,
// so the data section is read incrementally.
func Decode(r io.Reader) (*Blob, error) {
	info, err := decodeInfo(r)
	if err != nil {
		return nil, err
	}
	return decodeData(r, info)
}

// ReadHeader reads only the header of the npy file at path.
func ReadHeader(path string) (*Info, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for array loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := decodeInfo(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}

// Read reads the npy file at path. The returned Blob owns a freshly allocated
// data buffer in host byte order. Either the whole array is returned or an error.
func Read(path string) (*Blob, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for array loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	r := bufio.NewReader(file)
	info, err := decodeInfo(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// Reject truncated files before allocating the data buffer.
	if avail := stat.Size() - info.DataOffset; info.DataSize > avail {
		return nil, fmt.Errorf("%s: %w", path,
			formatErrorf("data", "need %d data bytes, file has %d", info.DataSize, avail))
	}

	blob, err := decodeData(r, info)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return blob, nil
}
