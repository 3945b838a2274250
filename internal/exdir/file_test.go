package exdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFile(t *testing.T) *File {
	t.Helper()
	f, err := CreateFile(filepath.Join(t.TempDir(), "test.exdir"))
	require.NoError(t, err)
	return f
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.exdir")

	f, err := CreateFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test.exdir", f.Name())
	assert.Equal(t, path, f.Path())
	assert.True(t, f.IsFile())
	assert.True(t, f.IsGroup())
	assert.False(t, f.HasAttrs())

	raw, err := os.ReadFile(filepath.Join(path, MetaFilename))
	require.NoError(t, err)
	assert.Equal(t, "exdir:\n  version: 1\n  type: file\n", string(raw))

	_, err = CreateFile(path)
	require.ErrorIs(t, err, ErrExists)

	_, err = CreateFile(filepath.Join(t.TempDir(), "missing", "test.exdir"))
	require.Error(t, err)
}

func TestOpen(t *testing.T) {
	f := newTestFile(t)
	_, err := f.CreateGroup("g")
	require.NoError(t, err)

	reopened, err := Open(f.Path())
	require.NoError(t, err)
	assert.True(t, reopened.Equal(&f.Object))
	assert.Equal(t, TypeFile, reopened.Type())

	_, err = Open(filepath.Join(f.Path(), "g"))
	require.ErrorIs(t, err, ErrNotFile)

	_, err = Open(filepath.Join(f.Path(), "nope"))
	require.ErrorIs(t, err, ErrNotFound)

	// A plain directory is a raw, not a file.
	_, err = Open(t.TempDir())
	require.ErrorIs(t, err, ErrNotFile)

	_, err = Open(filepath.Join(f.Path(), MetaFilename))
	require.ErrorIs(t, err, ErrInvalidObject)
}

func TestOpenInvalidMeta(t *testing.T) {
	tests := []struct {
		name string
		meta string
	}{
		{"not yaml", "exdir: [unterminated"},
		{"missing type", "exdir:\n  version: 1\n"},
		{"unknown type", "exdir:\n  version: 1\n  type: table\n"},
		{"wrong version", "exdir:\n  version: 7\n  type: file\n"},
		{"no exdir key", "something: else\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, MetaFilename), []byte(tt.meta), 0o600))

			_, err := Open(dir)
			require.ErrorIs(t, err, ErrInvalidObject)
		})
	}
}

func TestOpenLegacyQuotedType(t *testing.T) {
	dir := t.TempDir()
	meta := "exdir:\n  version: 1\n  type: \"file\""
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetaFilename), []byte(meta), 0o600))

	f, err := Open(dir)
	require.NoError(t, err)
	assert.True(t, f.IsFile())
}
