package exdir

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
)

// Object is the part every exdir object shares: its directory, its type
// and its attributes.
type Object struct {
	path  string
	typ   ObjectType
	attrs map[string]any
	opts  *options
}

// OpenObject opens the object at path whatever its type. A directory
// without exdir.yaml opens as a raw.
func OpenObject(path string, opts ...Option) (*Object, error) {
	obj, err := openObject(path, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

// openObject reads the metadata and attributes of the object at path.
func openObject(path string, opts *options) (Object, error) {
	st, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Object{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return Object{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !st.IsDir() {
		return Object{}, fmt.Errorf("%w: %s is not a directory", ErrInvalidObject, path)
	}

	typ, err := readMeta(path)
	if err != nil {
		return Object{}, err
	}
	attrs, err := readAttrs(path)
	if err != nil {
		return Object{}, err
	}
	return Object{path: filepath.Clean(path), typ: typ, attrs: attrs, opts: opts}, nil
}

// createObject makes the directory for a new object of type t named name
// under parent and writes its exdir.yaml.
func createObject(parent, name string, t ObjectType, opts *options) (Object, error) {
	if err := validateName(name); err != nil {
		return Object{}, err
	}
	return createObjectAt(filepath.Join(parent, name), t, opts)
}

func createObjectAt(path string, t ObjectType, opts *options) (Object, error) {
	if _, err := os.Lstat(path); err == nil {
		return Object{}, fmt.Errorf("%w: %s", ErrExists, path)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Object{}, fmt.Errorf("%w: %s", ErrExists, path)
		}
		return Object{}, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := writeMeta(path, t); err != nil {
		_ = os.RemoveAll(path) // Best effort cleanup
		return Object{}, err
	}

	opts.logger.Debug("created object",
		zap.String("path", path),
		zap.String("type", string(t)))

	return Object{path: filepath.Clean(path), typ: t, attrs: map[string]any{}, opts: opts}, nil
}

// Name returns the object name (last component of its path).
func (o *Object) Name() string {
	return filepath.Base(o.path)
}

// Path returns the object's directory.
func (o *Object) Path() string {
	return o.path
}

// Type returns the type recorded in exdir.yaml.
func (o *Object) Type() ObjectType {
	return o.typ
}

// IsFile reports whether the object is the root of an exdir file.
func (o *Object) IsFile() bool { return o.typ == TypeFile }

// IsGroup reports whether the object can hold other objects. Files are groups.
func (o *Object) IsGroup() bool { return o.typ == TypeGroup || o.typ == TypeFile }

// IsDataset reports whether the object is a dataset.
func (o *Object) IsDataset() bool { return o.typ == TypeDataset }

// IsRaw reports whether the object is a raw directory.
func (o *Object) IsRaw() bool { return o.typ == TypeRaw }

// Equal reports whether o and other refer to the same directory.
func (o *Object) Equal(other *Object) bool {
	return o.path == other.path
}

// HasAttrs reports whether the object has any attributes.
func (o *Object) HasAttrs() bool {
	return len(o.attrs) > 0
}

// Attrs returns a shallow copy of the object's attributes.
func (o *Object) Attrs() map[string]any {
	return maps.Clone(o.attrs)
}

// AttrNames returns the attribute names in sorted order.
func (o *Object) AttrNames() []string {
	return slices.Sorted(maps.Keys(o.attrs))
}

// Attr returns the attribute value stored under name.
func (o *Object) Attr(name string) (any, bool) {
	v, ok := o.attrs[name]
	return v, ok
}

// SetAttr sets an attribute in memory. Call WriteAttrs to persist it.
// The value must be representable in YAML.
func (o *Object) SetAttr(name string, value any) {
	if o.attrs == nil {
		o.attrs = map[string]any{}
	}
	o.attrs[name] = value
}

// DeleteAttr removes an attribute in memory. Call WriteAttrs to persist it.
func (o *Object) DeleteAttr(name string) {
	delete(o.attrs, name)
}

// WriteAttrs persists the in-memory attributes to attributes.yaml.
func (o *Object) WriteAttrs() error {
	return writeAttrs(o.path, o.attrs)
}

func (o *Object) logger() *zap.Logger {
	if o.opts == nil {
		return zap.NewNop()
	}
	return o.opts.logger
}

// scan lists the object directories directly below dir, sorted by name.
// Entries with unreadable or invalid metadata are logged and skipped.
func (o *Object) scan() ([]Member, error) {
	entries, err := os.ReadDir(o.path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", o.path, err)
	}

	members := make([]Member, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		child := filepath.Join(o.path, e.Name())
		typ, err := readMeta(child)
		if err != nil {
			o.logger().Warn("skipping directory", zap.String("path", child), zap.Error(err))
			continue
		}
		members = append(members, Member{Name: e.Name(), Type: typ})
	}
	return members, nil
}

// membersOf returns the sorted names of the child objects of type t.
func (o *Object) membersOf(t ObjectType) ([]string, error) {
	members, err := o.scan()
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, m := range members {
		if m.Type == t {
			names = append(names, m.Name)
		}
	}
	return names, nil
}

// createRaw creates a raw directory below the object.
func (o *Object) createRaw(name string) (*Raw, error) {
	obj, err := createObject(o.path, name, TypeRaw, o.opts)
	if err != nil {
		return nil, err
	}
	return &Raw{Object: obj}, nil
}

// openRaw opens the raw directory name below the object.
func (o *Object) openRaw(name string) (*Raw, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return openRaw(filepath.Join(o.path, name), o.opts)
}

// Member is a named child of a group.
type Member struct {
	Name string
	Type ObjectType
}
