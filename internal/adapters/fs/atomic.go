package fs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/hassdeps/internal/core/domain"
)

// WriteFileAtomic writes data to path by writing a sibling temp file and renaming it.
func WriteFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := fs.Stat(tmpName); statErr == nil {
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := fs.Chmod(tmpName, os.FileMode(domain.FilePerm)); err != nil {
		return err
	}

	return fs.Rename(tmpName, path)
}
