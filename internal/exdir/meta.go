package exdir

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File names inside an object directory.
const (
	MetaFilename       = "exdir.yaml"
	AttributesFilename = "attributes.yaml"
	DataFilename       = "data.npy"
)

// Version is the exdir.yaml format version written and accepted.
const Version = 1

// ObjectType is the kind of an object as recorded in exdir.yaml.
type ObjectType string

// Object types.
const (
	TypeFile    ObjectType = "file"
	TypeGroup   ObjectType = "group"
	TypeDataset ObjectType = "dataset"
	TypeRaw     ObjectType = "raw"
)

// Valid reports whether t is one of the known object types.
func (t ObjectType) Valid() bool {
	switch t {
	case TypeFile, TypeGroup, TypeDataset, TypeRaw:
		return true
	}
	return false
}

// metadata is the exdir.yaml document.
type metadata struct {
	Exdir struct {
		Version int        `yaml:"version"`
		Type    ObjectType `yaml:"type"`
	} `yaml:"exdir"`
}

// writeMeta writes exdir.yaml for an object of type t into dir.
func writeMeta(dir string, t ObjectType) error {
	var m metadata
	m.Exdir.Version = Version
	m.Exdir.Type = t
	return writeYAML(filepath.Join(dir, MetaFilename), &m)
}

// readMeta returns the object type recorded in dir. A directory without
// exdir.yaml is a raw.
func readMeta(dir string) (ObjectType, error) {
	name := filepath.Join(dir, MetaFilename)
	//nolint:gosec // G304: object paths come from the caller
	raw, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return TypeRaw, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}

	var m metadata
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidObject, name, err)
	}
	if m.Exdir.Type == "" {
		return "", fmt.Errorf("%w: %s has no exdir.type", ErrInvalidObject, name)
	}
	if !m.Exdir.Type.Valid() {
		return "", fmt.Errorf("%w: %s has unknown type %q", ErrInvalidObject, name, m.Exdir.Type)
	}
	if m.Exdir.Version != Version {
		return "", fmt.Errorf("%w: %s has unsupported version %d", ErrInvalidObject, name, m.Exdir.Version)
	}
	return m.Exdir.Type, nil
}

// readAttrs loads attributes.yaml from dir. A missing file yields an empty map.
func readAttrs(dir string) (map[string]any, error) {
	name := filepath.Join(dir, AttributesFilename)
	//nolint:gosec // G304: object paths come from the caller
	raw, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	attrs := map[string]any{}
	if err := yaml.Unmarshal(raw, &attrs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidObject, name, err)
	}
	if attrs == nil {
		attrs = map[string]any{}
	}
	return attrs, nil
}

// writeAttrs replaces attributes.yaml in dir. Empty attributes remove the file.
func writeAttrs(dir string, attrs map[string]any) error {
	name := filepath.Join(dir, AttributesFilename)
	if len(attrs) == 0 {
		if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
		return nil
	}
	return writeYAML(name, attrs)
}

func writeYAML(name string, v any) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil { //nolint:gosec // G306: metadata is world-readable like data.npy
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// validateName checks that name is a single, non-empty path component.
func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains a null byte", ErrInvalidName, name)
	}
	return nil
}
