// Package stamp stores the version marker written into every installed unit.
package stamp

import (
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/spf13/afero"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.PackageInfoStore with one JSON file per installed unit.
type Store struct {
	fs afero.Fs
}

// NewStore creates a new PackageInfoStore over fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Get retrieves the marker stored in dir.
func (s *Store) Get(dir string) (*domain.PackageInfo, error) {
	path := domain.PackageInfoPath(dir)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageInfoReadFailed.Error()), "path", path)
	}

	var info domain.PackageInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageInfoReadFailed.Error()), "path", path)
	}

	return &info, nil
}

// Put stamps dir with the marker.
func (s *Store) Put(dir string, info domain.PackageInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return zerr.Wrap(err, domain.ErrPackageInfoWriteFailed.Error())
	}

	if err := s.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageInfoWriteFailed.Error()), "path", dir)
	}

	path := domain.PackageInfoPath(dir)
	if err := afero.WriteFile(s.fs, path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageInfoWriteFailed.Error()), "path", path)
	}

	return nil
}
