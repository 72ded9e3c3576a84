package ports

import "go.trai.ch/hassdeps/internal/core/domain"

// PackageInfoStore defines the interface for reading and stamping installed-unit markers.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PackageInfoStore interface {
	// Get retrieves the marker stored in dir.
	// Returns nil, nil if not found.
	Get(dir string) (*domain.PackageInfo, error)

	// Put stamps dir with the marker.
	Put(dir string, info domain.PackageInfo) error
}
