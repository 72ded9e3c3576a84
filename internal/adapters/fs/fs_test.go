package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hassdeps/internal/adapters/fs"
)

func writeFiles(t *testing.T, afs afero.Fs, root string, files ...string) {
	t.Helper()
	for _, name := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, afs.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, afero.WriteFile(afs, path, []byte(name), 0o644))
	}
}

func TestGlob(t *testing.T) {
	afs := afero.NewMemMapFs()
	writeFiles(t, afs, "/repo",
		"card.js",
		"dist/my-card.js",
		"dist/my-card.js.map",
		"dist/my-card.png",
		"src/nested/my-card-editor.js",
		".github/my-card.js",
		"node_modules/.cache/my-card.js",
	)

	f := fs.New(afs)

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "wildcard at any depth",
			pattern: "*my-card*",
			want: []string{
				"/repo/dist/my-card.js",
				"/repo/dist/my-card.js.map",
				"/repo/dist/my-card.png",
				"/repo/src/nested/my-card-editor.js",
			},
		},
		{
			name:    "exact filename",
			pattern: "card.js",
			want:    []string{"/repo/card.js"},
		},
		{
			name:    "pattern with directory",
			pattern: "dist/*.js",
			want:    []string{"/repo/dist/my-card.js"},
		},
		{
			name:    "no match",
			pattern: "missing.js",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Glob("/repo", tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGlob_InvalidPattern(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afs.MkdirAll("/repo", 0o750))

	_, err := fs.New(afs).Glob("/repo", "[")
	require.Error(t, err)
}

func TestGlob_MissingRoot(t *testing.T) {
	_, err := fs.New(afero.NewMemMapFs()).Glob("/nope", "*.js")
	require.Error(t, err)
}

func TestCopyDir(t *testing.T) {
	afs := afero.NewMemMapFs()
	writeFiles(t, afs, "/src", "a.txt", "sub/b.txt", "sub/deeper/c.txt")

	f := fs.New(afs)
	require.NoError(t, f.CopyDir("/src", "/dst"))

	for _, name := range []string{"a.txt", "sub/b.txt", "sub/deeper/c.txt"} {
		data, err := afero.ReadFile(afs, filepath.Join("/dst", name))
		require.NoError(t, err)
		assert.Equal(t, name, string(data))
	}
}

func TestCopyDir_NotADirectory(t *testing.T) {
	afs := afero.NewMemMapFs()
	writeFiles(t, afs, "/", "file.txt")

	err := fs.New(afs).CopyDir("/file.txt", "/dst")
	require.Error(t, err)
}

func TestCopyDir_PreservesSymlinks(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.WriteFile(filepath.Join(src, "target.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.Symlink("target.txt", filepath.Join(src, "link.txt")))

	f := fs.New(afero.NewOsFs())
	require.NoError(t, f.CopyDir(src, dst))

	link, err := os.Readlink(filepath.Join(dst, "link.txt"))
	require.NoError(t, err)
	assert.Equal(t, "target.txt", link)

	data, err := os.ReadFile(filepath.Join(dst, "link.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestCopyFile_KeepsMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh"), 0o755))

	f := fs.New(afero.NewOsFs())
	dst := filepath.Join(dir, "nested", "run.sh")
	require.NoError(t, f.CopyFile(src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestReadDir_Sorted(t *testing.T) {
	afs := afero.NewMemMapFs()
	writeFiles(t, afs, "/cc", "zeta/x", "alpha/x", "mid/x")

	entries, err := fs.New(afs).ReadDir("/cc")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.True(t, slices.IsSorted(names))
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestTempDir(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afs.MkdirAll("/tmp", 0o750))
	f := fs.New(afs, fs.WithTempDir("/tmp"))

	dir, err := f.TempDir("hass-deps-widget-")
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(dir), "hass-deps-widget-")

	ok, err := f.IsDir(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, f.RemoveAll(dir))
	ok, err = f.Exists(dir)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteFile_CreatesParents(t *testing.T) {
	afs := afero.NewMemMapFs()
	f := fs.New(afs)

	require.NoError(t, f.WriteFile("/a/b/c.txt", []byte("x")))
	data, err := f.ReadFile("/a/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestWriteFileAtomic(t *testing.T) {
	afs := afero.NewMemMapFs()

	require.NoError(t, fs.WriteFileAtomic(afs, "/config/hass-deps.lock", []byte("first")))
	require.NoError(t, fs.WriteFileAtomic(afs, "/config/hass-deps.lock", []byte("second")))

	data, err := afero.ReadFile(afs, "/config/hass-deps.lock")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := afero.ReadDir(afs, "/config")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}
