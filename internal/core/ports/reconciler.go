package ports

import (
	"context"

	"go.trai.ch/hassdeps/internal/core/domain"
)

// Reconciler brings a single dependency in line with its lock record.
//
//go:generate go run go.uber.org/mock/mockgen -source=reconciler.go -destination=mocks/mock_reconciler.go -package=mocks
type Reconciler interface {
	// Reconcile installs dep into root unless lock shows it is already installed.
	// A nil lock forces a fresh resolution at the latest reference. force skips the freshness check.
	Reconcile(
		ctx context.Context,
		root string,
		dep domain.Dependency,
		lock *domain.LockedDependency,
		force bool,
	) (domain.LockedDependency, error)
}
