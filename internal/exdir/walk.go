package exdir

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// WalkFunc is called for each object during traversal.
// path is the object's directory.
// obj is *Group, *DatasetHeader or *Raw.
// err is any error encountered opening the object; obj is nil then.
// Return nil to continue, fs.SkipDir to skip the children of a group or
// dataset, or any other error to stop.
type WalkFunc func(path string, obj any, err error) error

// Walk traverses the hierarchy below g depth first, in name order. The
// callback is called for g itself first, then for every group, dataset and
// raw, including the raws stored inside datasets.
//
// Example:
//
//	err := exdir.Walk(f.Group, func(path string, obj any, err error) error {
//	    if err != nil {
//	        return err
//	    }
//	    if ds, ok := obj.(*exdir.DatasetHeader); ok {
//	        fmt.Println(path, ds.Info.DType, ds.Info.Shape)
//	    }
//	    return nil
//	})
func Walk(g *Group, fn WalkFunc) error {
	return walkGroup(g, fn)
}

func walkGroup(g *Group, fn WalkFunc) error {
	if skip, err := visit(fn, g.Path(), g, nil); skip || err != nil {
		return err
	}

	members, err := g.Members()
	if err != nil {
		return err
	}

	for _, m := range members {
		childPath := filepath.Join(g.Path(), m.Name)

		switch m.Type {
		case TypeGroup, TypeFile:
			child, err := g.OpenGroup(m.Name)
			if err != nil {
				if _, err := visit(fn, childPath, nil, err); err != nil {
					return err
				}
				continue
			}
			if err := walkGroup(child, fn); err != nil {
				return err
			}

		case TypeDataset:
			header, err := StatDataset(g, m.Name)
			if err != nil {
				if _, err := visit(fn, childPath, nil, err); err != nil {
					return err
				}
				continue
			}
			skip, err := visit(fn, childPath, header, nil)
			if err != nil {
				return err
			}
			if !skip {
				if err := walkRaws(&header.Object, fn); err != nil {
					return err
				}
			}

		case TypeRaw:
			raw, err := g.OpenRaw(m.Name)
			if _, err := visit(fn, childPath, raw, err); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkRaws(o *Object, fn WalkFunc) error {
	names, err := o.membersOf(TypeRaw)
	if err != nil {
		return err
	}
	for _, name := range names {
		raw, err := o.openRaw(name)
		if _, err := visit(fn, filepath.Join(o.Path(), name), raw, err); err != nil {
			return err
		}
	}
	return nil
}

// visit calls fn and separates fs.SkipDir from real errors.
func visit(fn WalkFunc, path string, obj any, err error) (skip bool, _ error) {
	if err != nil {
		obj = nil
	}
	if err := fn(path, obj, err); err != nil {
		if errors.Is(err, fs.SkipDir) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
