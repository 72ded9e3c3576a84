// Package fs provides the afero-backed filesystem adapter.
package fs

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Walker yields the files below a root, skipping hidden entries.
type Walker struct {
	fs afero.Fs
}

// NewWalker creates a new Walker over fs.
func NewWalker(fs afero.Fs) *Walker {
	return &Walker{fs: fs}
}

// WalkFiles yields every regular file below root. Entries whose name starts
// with a dot are skipped, and hidden directories are not descended into.
// Walk errors end the iteration early.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if path != root && isHidden(info.Name()) {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
