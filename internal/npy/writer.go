package npy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Encode writes b to w in npy format. Element bytes are written verbatim in
// buffer order; the order flag is only recorded in the header.
func Encode(w io.Writer, b *Blob) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if _, err := w.Write(encodePrefix(b.Header())); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(b.Data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	return nil
}

// Write writes b to the file at path. The file is written to a temporary
// sibling first and renamed into place, so a failed write never leaves a
// truncated file behind.
func Write(path string, b *Blob) (err error) {
	if err := b.Validate(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close() // Best effort close on error
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	bw := bufio.NewWriter(tmp)
	if err := Encode(bw, b); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to rename %s: %w", path, err)
	}
	return nil
}
