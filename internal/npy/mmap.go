package npy

import (
	"bytes"
	"fmt"
	"os"
)

// Mapped is a read-only memory mapping of an npy file. It gives access to
// the element bytes of large arrays without reading them into the heap.
type Mapped struct {
	Info
	file   *os.File
	data   []byte // Whole file
	closed bool
}

// Map memory-maps the npy file at path and parses its header.
//
// Important: Always call Close() when done to unmap the file (use defer).
func Map(path string) (*Mapped, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for array loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if stat.Size() < MagicSize+4 {
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", path,
			formatErrorf("magic", "file too small: %d bytes", stat.Size()))
	}

	data, err := mmapFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}
	m := &Mapped{file: file, data: data}

	info, err := decodeInfo(bytes.NewReader(data))
	if err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if end := info.DataOffset + info.DataSize; end > stat.Size() {
		_ = m.Close()
		return nil, fmt.Errorf("%s: %w", path,
			formatErrorf("data", "need %d data bytes, file has %d", info.DataSize, stat.Size()-info.DataOffset))
	}
	m.Info = *info
	return m, nil
}

// Data returns the element bytes in the file's byte order (Info.ByteOrder).
// The slice is read-only and valid only until Close.
func (m *Mapped) Data() []byte {
	if m.closed {
		return nil
	}
	return m.data[m.DataOffset : m.DataOffset+m.DataSize]
}

// Blob copies the mapped array into a Blob in host byte order.
func (m *Mapped) Blob() (*Blob, error) {
	if m.closed {
		return nil, fmt.Errorf("mapping is closed")
	}
	return decodeData(bytes.NewReader(m.Data()), &m.Info)
}

// Close unmaps and closes the file.
func (m *Mapped) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	err := munmapFile(m.data)
	m.data = nil

	if closeErr := m.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
