package ports

import "go.trai.ch/hassdeps/internal/core/domain"

// DependencyStore defines the interface for the declared-dependency and lock files.
//
//go:generate go run go.uber.org/mock/mockgen -source=dependency_store.go -destination=mocks/mock_dependency_store.go -package=mocks
type DependencyStore interface {
	// DependenciesExist reports whether the declared-dependency file exists in root.
	DependenciesExist(root string) (bool, error)

	// LoadDependencies reads the declared-dependency file in root.
	// Returns domain.ErrDependenciesFileNotFound if it does not exist.
	LoadDependencies(root string) (*domain.Dependencies, error)

	// WriteDependencies replaces the declared-dependency file in root.
	WriteDependencies(root string, deps *domain.Dependencies) error

	// LoadLockedDependencies reads the lock file in root.
	// A missing lock file yields an empty collection.
	LoadLockedDependencies(root string) (*domain.LockedDependencies, error)

	// WriteLockedDependencies replaces the lock file in root.
	WriteLockedDependencies(root string, locks *domain.LockedDependencies) error
}
