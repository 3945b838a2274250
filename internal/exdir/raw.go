package exdir

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Raw is a directory of arbitrary files that exdir does not interpret.
type Raw struct {
	Object
}

func openRaw(path string, opts *options) (*Raw, error) {
	obj, err := openObject(path, opts)
	if err != nil {
		return nil, err
	}
	if !obj.IsRaw() {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotRaw, path, obj.typ)
	}
	return &Raw{Object: obj}, nil
}

// MemberFiles returns the names of the entries in the raw directory, sorted.
// The exdir.yaml and attributes.yaml metadata files are not listed.
func (r *Raw) MemberFiles() ([]string, error) {
	entries, err := os.ReadDir(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.path, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if isMetaFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Create creates or truncates the file name inside the raw directory.
// The caller must close the returned writer.
func (r *Raw) Create(name string) (io.WriteCloser, error) {
	path, err := r.filePath(name)
	if err != nil {
		return nil, err
	}
	//nolint:gosec // G304: name is validated to be a single path component
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}

// Open opens the file name inside the raw directory for reading.
func (r *Raw) Open(name string) (io.ReadCloser, error) {
	path, err := r.filePath(name)
	if err != nil {
		return nil, err
	}
	//nolint:gosec // G304: name is validated to be a single path component
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

func (r *Raw) filePath(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	if isMetaFile(name) {
		return "", fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	return filepath.Join(r.path, name), nil
}

func isMetaFile(name string) bool {
	return name == MetaFilename || name == AttributesFilename
}
