// Package config reads and writes the declared-dependency and lock files.
package config

import (
	"bytes"
	"errors"
	iofs "io/fs"

	"github.com/spf13/afero"
	"go.trai.ch/hassdeps/internal/adapters/fs"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.DependencyStore with YAML files.
type Store struct {
	fs afero.Fs
}

// NewStore creates a new Store over fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// DependenciesExist reports whether hass-deps.yaml exists in root.
func (s *Store) DependenciesExist(root string) (bool, error) {
	ok, err := afero.Exists(s.fs, domain.DependenciesPath(root))
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", domain.DependenciesPath(root))
	}
	return ok, nil
}

// LoadDependencies reads hass-deps.yaml in root, keeping declaration order.
func (s *Store) LoadDependencies(root string) (*domain.Dependencies, error) {
	path := domain.DependenciesPath(root)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, domain.ErrDependenciesFileNotFound
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	deps, err := decodeDependencies(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return deps, nil
}

// WriteDependencies replaces hass-deps.yaml in root.
func (s *Store) WriteDependencies(root string, deps *domain.Dependencies) error {
	data, err := encode(encodeDependencies(deps))
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	return s.write(domain.DependenciesPath(root), data)
}

// LoadLockedDependencies reads hass-deps.lock in root.
// A missing lock file yields an empty collection.
func (s *Store) LoadLockedDependencies(root string) (*domain.LockedDependencies, error) {
	path := domain.LockPath(root)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.NewOrderedMap[domain.LockedDependency](), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	locks, err := decodeLocks(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return locks, nil
}

// WriteLockedDependencies replaces hass-deps.lock in root.
func (s *Store) WriteLockedDependencies(root string, locks *domain.LockedDependencies) error {
	data, err := encode(encodeLocks(locks))
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	return s.write(domain.LockPath(root), data)
}

func (s *Store) write(path string, data []byte) error {
	if err := fs.WriteFileAtomic(s.fs, path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	return nil
}

func encode(doc *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
