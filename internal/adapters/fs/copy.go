package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// CopyFile copies the file at src to dst, keeping its permission bits.
func (f *FileSystem) CopyFile(src, dst string) error {
	info, err := f.fs.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", src)
	}
	if err := f.fs.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination directory"), "path", filepath.Dir(dst))
	}
	return f.copyFile(src, dst, info.Mode().Perm())
}

func (f *FileSystem) copyFile(src, dst string, perm os.FileMode) error {
	in, err := f.fs.Open(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer func() { _ = in.Close() }()

	out, err := f.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", dst)
	}
	return out.Close()
}

// CopyDir recursively copies src to dst. Symbolic links are recreated when
// the underlying filesystem supports them and copied by content otherwise.
func (f *FileSystem) CopyDir(src, dst string) error {
	info, err := f.fs.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source directory"), "path", src)
	}
	if !info.IsDir() {
		return zerr.With(zerr.New("source is not a directory"), "path", src)
	}

	return afero.Walk(f.fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case info.IsDir():
			return f.fs.MkdirAll(target, info.Mode().Perm()|0o700)
		case info.Mode()&os.ModeSymlink != 0:
			return f.copySymlink(path, target)
		default:
			return f.copyFile(path, target, info.Mode().Perm())
		}
	})
}

func (f *FileSystem) copySymlink(src, dst string) error {
	linker, okLink := f.fs.(afero.Linker)
	reader, okRead := f.fs.(afero.LinkReader)
	if okLink && okRead {
		dest, err := reader.ReadlinkIfPossible(src)
		if err == nil {
			return linker.SymlinkIfPossible(dest, dst)
		}
	}

	info, err := f.fs.Stat(src)
	if err != nil {
		return nil //nolint:nilerr // dangling link, nothing to copy
	}
	if info.IsDir() {
		return f.CopyDir(src, dst)
	}
	return f.copyFile(src, dst, info.Mode().Perm())
}
