package exdir

import "fmt"

// File is the root group of an exdir hierarchy.
type File struct {
	*Group
}

// CreateFile creates a new exdir file at path. The parent directory must
// exist and path itself must not (ErrExists).
//
// Example:
//
//	f, err := exdir.CreateFile("experiment.exdir", exdir.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	session, err := f.CreateGroup("session1")
func CreateFile(path string, opts ...Option) (*File, error) {
	obj, err := createObjectAt(path, TypeFile, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	return &File{Group: &Group{Object: obj}}, nil
}

// Open opens the existing exdir file at path.
func Open(path string, opts ...Option) (*File, error) {
	obj, err := openObject(path, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	if !obj.IsFile() {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotFile, path, obj.typ)
	}
	return &File{Group: &Group{Object: obj}}, nil
}
