package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/exdir/exdir"
	"github.com/born-ml/exdir/ndarray"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rc := NewRootCommand(strings.NewReader(""), &stdout, &stderr)
	rc.SetArgs(args)
	err := rc.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "exdir "+version+"\n", out)
}

func TestHelp(t *testing.T) {
	out, _, err := run(t, "tree", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "exdir tree <dir>")
}

func TestCreateAndMkgroup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.exdir")

	out, _, err := run(t, "create", path)
	require.NoError(t, err)
	assert.Equal(t, "created "+path+"\n", out)

	_, _, err = run(t, "create", path)
	require.ErrorIs(t, err, exdir.ErrExists)

	out, _, err = run(t, "mkgroup", path, "a/b/c")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(path, "a", "b", "c")+"\n", out)

	// Existing groups along the path are reused.
	_, _, err = run(t, "mkgroup", path, "/a/b/d/")
	require.NoError(t, err)

	f, err := exdir.Open(path)
	require.NoError(t, err)
	a, err := f.OpenGroup("a")
	require.NoError(t, err)
	b, err := a.OpenGroup("b")
	require.NoError(t, err)
	groups, err := b.MemberGroups()
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, groups)

	_, _, err = run(t, "mkgroup", path, "a/../x")
	require.ErrorIs(t, err, exdir.ErrInvalidName)
}

func TestVerboseLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.exdir")

	_, stderr, err := run(t, "create", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, stderr, err = run(t, "--verbose", "mkgroup", path, "g")
	require.NoError(t, err)
	assert.Contains(t, stderr, "created object")
}

func buildFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.exdir")
	f, err := exdir.CreateFile(path)
	require.NoError(t, err)

	g, err := f.CreateGroup("session")
	require.NoError(t, err)
	g.SetAttr("subject", "m1")
	require.NoError(t, g.WriteAttrs())

	data, err := ndarray.Zeros[float32](ndarray.Shape{256, 4}, ndarray.ColumnMajor)
	require.NoError(t, err)
	ds, err := exdir.CreateDataset(g, "lfp", data)
	require.NoError(t, err)
	_, err = ds.CreateRaw("notes")
	require.NoError(t, err)
	_, err = f.CreateRaw("video")
	require.NoError(t, err)
	return path
}

func TestTree(t *testing.T) {
	path := buildFixture(t)

	out, _, err := run(t, "tree", path)
	require.NoError(t, err)
	want := "test.exdir/\n" +
		"  session/\n" +
		"    lfp  float32 (256, 4) F  4.0 KiB\n" +
		"      notes  [raw]\n" +
		"  video  [raw]\n"
	assert.Equal(t, want, out)

	out, _, err = run(t, "tree", "--attrs", path)
	require.NoError(t, err)
	assert.Contains(t, out, "    @subject = m1\n")
}

func TestInspect(t *testing.T) {
	path := buildFixture(t)
	npyPath := filepath.Join(path, "session", "lfp", exdir.DataFilename)

	out, _, err := run(t, "inspect", "--checksum", npyPath)
	require.NoError(t, err)
	assert.Contains(t, out, "version:        1.0\n")
	assert.Contains(t, out, "f4\n")
	assert.Contains(t, out, "fortran_order:  true\n")
	assert.Contains(t, out, "shape:          (256, 4)\n")
	assert.Contains(t, out, "elements:       1,024\n")
	assert.Contains(t, out, "data size:      4.0 KiB (4,096 bytes)\n")
	// SHA-256 of 4096 zero bytes.
	assert.Contains(t, out, "sha256:         ad7facb2586fc6e966c004d7d1d16b024f5805ff7cb47c7a85dabd8b48892ca7\n")

	bad := filepath.Join(t.TempDir(), "bad.npy")
	require.NoError(t, os.WriteFile(bad, []byte("definitely not npy"), 0o600))
	_, _, err = run(t, "inspect", bad)
	require.Error(t, err)
}

func TestAttrs(t *testing.T) {
	path := buildFixture(t)
	session := filepath.Join(path, "session")

	out, _, err := run(t, "attrs", session)
	require.NoError(t, err)
	assert.Equal(t, "subject: m1\n", out)

	out, _, err = run(t, "attrs", session, "--set", "rate=30000", "--set", "gains=[1.5, 2]", "--delete", "subject")
	require.NoError(t, err)
	assert.Contains(t, out, "rate: 30000\n")
	assert.Contains(t, out, "- 1.5\n")
	assert.NotContains(t, out, "subject")

	obj, err := exdir.OpenObject(session)
	require.NoError(t, err)
	v, ok := obj.Attr("rate")
	require.True(t, ok)
	assert.Equal(t, 30000, v)

	_, _, err = run(t, "attrs", session, "--set", "novalue")
	require.Error(t, err)

	out, _, err = run(t, "attrs", filepath.Join(path, "video"))
	require.NoError(t, err)
	assert.Empty(t, out)
}
