// Package ports defines the core interfaces for the application.
package ports

import "context"

// VCS defines the version control operations used to acquire sources.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCS interface {
	// Clone performs a full clone of source into dir.
	Clone(ctx context.Context, source, dir string) error

	// Checkout switches the working tree in dir to ref (tag, branch or commit).
	Checkout(ctx context.Context, dir, ref string) error

	// Describe returns a human-readable description of the current state of dir.
	Describe(ctx context.Context, dir string) (string, error)
}
