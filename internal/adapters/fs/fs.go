package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileSystem implements ports.FileSystem on top of an afero.Fs.
type FileSystem struct {
	fs      afero.Fs
	walker  *Walker
	tempDir string
}

// Option configures a FileSystem.
type Option func(*FileSystem)

// WithTempDir places temporary directories under dir instead of the OS default.
func WithTempDir(dir string) Option {
	return func(f *FileSystem) {
		f.tempDir = dir
	}
}

// New creates a FileSystem over fs.
func New(fs afero.Fs, opts ...Option) *FileSystem {
	f := &FileSystem{
		fs:     fs,
		walker: NewWalker(fs),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Exists reports whether path exists.
func (f *FileSystem) Exists(path string) (bool, error) {
	return afero.Exists(f.fs, path)
}

// IsDir reports whether path exists and is a directory.
func (f *FileSystem) IsDir(path string) (bool, error) {
	return afero.DirExists(f.fs, path)
}

// MkdirAll creates path and any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	return f.fs.MkdirAll(path, domain.DirPerm)
}

// RemoveAll removes path and everything below it.
func (f *FileSystem) RemoveAll(path string) error {
	return f.fs.RemoveAll(path)
}

// ReadFile returns the contents of path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(f.fs, path)
}

// WriteFile writes data to path, creating parent directories as needed.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	if err := f.fs.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return err
	}
	return afero.WriteFile(f.fs, path, data, domain.FilePerm)
}

// ReadDir lists the entries of dir sorted by name.
func (f *FileSystem) ReadDir(dir string) ([]iofs.FileInfo, error) {
	return afero.ReadDir(f.fs, dir)
}

// TempDir creates a new temporary directory whose name starts with prefix.
func (f *FileSystem) TempDir(prefix string) (string, error) {
	return afero.TempDir(f.fs, f.tempDir, prefix)
}

// Glob recursively matches pattern below root, like a "root/**/pattern" glob.
// A pattern with separators matches the trailing path components of each file.
// Results are sorted. Hidden entries never match.
func (f *FileSystem) Glob(root, pattern string) ([]string, error) {
	pattern = filepath.Clean(filepath.FromSlash(pattern))
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid glob pattern"), "pattern", pattern)
	}
	depth := strings.Count(pattern, string(filepath.Separator)) + 1

	if ok, err := afero.DirExists(f.fs, root); err != nil || !ok {
		if err == nil {
			err = os.ErrNotExist
		}
		return nil, zerr.With(zerr.Wrap(err, "glob root is not a directory"), "root", root)
	}

	var matches []string
	for path := range f.walker.WalkFiles(root) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			continue
		}
		parts := strings.Split(rel, string(filepath.Separator))
		if len(parts) < depth {
			continue
		}
		tail := filepath.Join(parts[len(parts)-depth:]...)
		if ok, _ := filepath.Match(pattern, tail); ok {
			matches = append(matches, path)
		}
	}

	slices.Sort(matches)
	return matches, nil
}
