package exdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Group is an object that holds groups, datasets and raws. The root of a
// file is also a group.
type Group struct {
	Object
}

func openGroup(path string, opts *options) (*Group, error) {
	obj, err := openObject(path, opts)
	if err != nil {
		return nil, err
	}
	if !obj.IsGroup() {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotGroup, path, obj.typ)
	}
	return &Group{Object: obj}, nil
}

// Members returns every child object, sorted by name.
func (g *Group) Members() ([]Member, error) {
	return g.scan()
}

// MemberGroups returns the names of the child groups, sorted.
func (g *Group) MemberGroups() ([]string, error) {
	return g.membersOf(TypeGroup)
}

// MemberDatasets returns the names of the child datasets, sorted.
func (g *Group) MemberDatasets() ([]string, error) {
	return g.membersOf(TypeDataset)
}

// MemberRaws returns the names of the child raws, sorted.
func (g *Group) MemberRaws() ([]string, error) {
	return g.membersOf(TypeRaw)
}

// Contains reports whether name is taken in the group. Any directory entry
// counts, including one that Members skips, so Contains agrees with the
// ErrExists check of CreateGroup and CreateRaw.
func (g *Group) Contains(name string) bool {
	if validateName(name) != nil {
		return false
	}
	_, err := os.Lstat(filepath.Join(g.path, name))
	return err == nil
}

// CreateGroup creates a child group. It fails with ErrExists if anything
// named name is already present.
func (g *Group) CreateGroup(name string) (*Group, error) {
	obj, err := createObject(g.path, name, TypeGroup, g.opts)
	if err != nil {
		return nil, err
	}
	return &Group{Object: obj}, nil
}

// RequireGroup opens the child group name, creating it if it does not exist.
func (g *Group) RequireGroup(name string) (*Group, error) {
	child, err := g.OpenGroup(name)
	if errors.Is(err, ErrNotFound) {
		return g.CreateGroup(name)
	}
	return child, err
}

// OpenGroup opens the child group name.
func (g *Group) OpenGroup(name string) (*Group, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return openGroup(filepath.Join(g.path, name), g.opts)
}

// CreateRaw creates a child raw directory.
func (g *Group) CreateRaw(name string) (*Raw, error) {
	return g.createRaw(name)
}

// OpenRaw opens the child raw name.
func (g *Group) OpenRaw(name string) (*Raw, error) {
	return g.openRaw(name)
}
