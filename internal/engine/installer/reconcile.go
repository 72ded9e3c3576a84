package installer

import (
	"context"
	"fmt"

	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/hassdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reconcile brings dep in line with lock. Without force, a lock whose version
// matches every installed marker is returned unchanged and nothing is written.
func (i *Installer) Reconcile(
	ctx context.Context,
	root string,
	dep domain.Dependency,
	lock *domain.LockedDependency,
	force bool,
) (domain.LockedDependency, error) {
	// The name selects the destination directory, so it must be checked before anything is touched.
	if err := dep.Validate(); err != nil {
		return domain.LockedDependency{}, err
	}

	name := dep.Name()
	ctx, vertex := i.telemetry.Record(ctx, name)
	i.report(vertex, "Installing: "+name)

	if !force && lock != nil {
		installed, err := i.isInstalled(root, *lock)
		if err != nil {
			vertex.Complete(err)
			return domain.LockedDependency{}, err
		}
		if installed {
			i.report(vertex, fmt.Sprintf("%s@%s already installed", name, lock.Version))
			vertex.Cached()
			vertex.Complete(nil)
			return *lock, nil
		}
	}

	result, err := i.install(ctx, root, dep, lock)
	if err != nil {
		vertex.Complete(err)
		return domain.LockedDependency{}, err
	}

	i.report(vertex, fmt.Sprintf("Installed %s@%s", name, result.Version))
	vertex.Complete(nil)
	return result, nil
}

func (i *Installer) report(vertex ports.Vertex, msg string) {
	i.logger.Info(msg)
	vertex.Log(msg)
}

// isInstalled reports whether every unit recorded by lock carries a marker with lock's version.
func (i *Installer) isInstalled(root string, lock domain.LockedDependency) (bool, error) {
	if err := lock.Validate(); err != nil {
		return false, err
	}

	var units []string
	switch lock.Type {
	case domain.DependencyTypeLovelace:
		units = []string{domain.LovelaceDestinationPath(root, lock.Name())}
	case domain.DependencyTypeCore:
		for _, component := range lock.Components {
			units = append(units, domain.CoreDestinationPath(root, component))
		}
	}

	for _, unit := range units {
		info, err := i.stamps.Get(unit)
		if err != nil {
			// An unreadable marker is drift, not a fatal error.
			i.logger.Warn(fmt.Sprintf("ignoring unreadable marker in %s", unit))
			return false, nil
		}
		if info == nil || info.Version != lock.Version {
			return false, nil
		}
	}
	return true, nil
}

func (i *Installer) install(
	ctx context.Context,
	root string,
	dep domain.Dependency,
	lock *domain.LockedDependency,
) (domain.LockedDependency, error) {
	if lock != nil && lock.IsRelease && lock.Type == domain.DependencyTypeLovelace {
		return i.installLovelaceFromRelease(ctx, root, dep, lock.Version)
	}

	ref := ""
	if lock != nil {
		ref = lock.Version
	}

	var result domain.LockedDependency
	err := i.withCheckout(ctx, dep, ref, func(checkout string) error {
		isCore, err := i.resolveCore(dep, lock, checkout)
		if err != nil {
			return err
		}
		if isCore {
			result, err = i.installCore(ctx, root, dep, checkout)
		} else {
			result, err = i.installLovelace(ctx, root, dep, checkout)
		}
		return err
	})
	if err != nil {
		return domain.LockedDependency{}, err
	}
	return result, nil
}

// resolveCore trusts the lock's type when there is one and classifies the checkout otherwise.
func (i *Installer) resolveCore(dep domain.Dependency, lock *domain.LockedDependency, checkout string) (bool, error) {
	if lock == nil {
		return i.IsCoreDependency(dep, checkout)
	}
	switch lock.Type {
	case domain.DependencyTypeCore:
		return true, nil
	case domain.DependencyTypeLovelace:
		return false, nil
	default:
		return false, zerr.With(zerr.Wrap(domain.ErrUnknownDependencyType, "invalid lock type"), "type", lock.Type.String())
	}
}
