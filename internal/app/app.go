// Package app implements the application layer for hass-deps.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/hassdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// App orchestrates the hass-deps commands over a configuration directory.
type App struct {
	store      ports.DependencyStore
	reconciler ports.Reconciler
	stamps     ports.PackageInfoStore
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	store ports.DependencyStore,
	reconciler ports.Reconciler,
	stamps ports.PackageInfoStore,
	log ports.Logger,
) *App {
	return &App{
		store:      store,
		reconciler: reconciler,
		stamps:     stamps,
		logger:     log,
	}
}

// AddOptions configures Add.
type AddOptions struct {
	// Save writes the dependency and lock files after a successful install.
	Save bool
}

// InstallOptions configures Install.
type InstallOptions struct {
	// Force reinstalls every dependency and rewrites every lock record.
	Force bool
	// KeepGoing continues past failing dependencies and reports them together.
	KeepGoing bool
}

// Init creates an empty dependency file in configDir.
func (a *App) Init(_ context.Context, configDir string) error {
	exists, err := a.store.DependenciesExist(configDir)
	if err != nil {
		return err
	}
	if exists {
		return zerr.With(zerr.Wrap(domain.ErrAlreadyInitialized, "refusing to overwrite"), "path", domain.DependenciesPath(configDir))
	}

	if err := a.store.WriteDependencies(configDir, domain.NewOrderedMap[domain.Dependency]()); err != nil {
		return err
	}

	a.logger.Info("Created " + domain.DependenciesPath(configDir))
	return nil
}

// Add installs a new dependency at its latest version and records it.
func (a *App) Add(ctx context.Context, configDir string, dep domain.Dependency, opts AddOptions) (domain.LockedDependency, error) {
	deps, locks, err := a.load(configDir)
	if err != nil {
		return domain.LockedDependency{}, err
	}

	if deps.Has(dep.Source) {
		return domain.LockedDependency{}, zerr.With(
			zerr.Wrap(domain.ErrDependencyExists, "cannot add dependency"), "source", dep.Source)
	}

	lock, err := a.reconciler.Reconcile(ctx, configDir, dep, nil, false)
	if err != nil {
		return domain.LockedDependency{}, err
	}

	deps.Set(dep.Source, dep)
	locks.Set(dep.Source, lock)

	if !opts.Save {
		return lock, nil
	}
	if err := a.store.WriteDependencies(configDir, deps); err != nil {
		return domain.LockedDependency{}, err
	}
	if err := a.store.WriteLockedDependencies(configDir, locks); err != nil {
		return domain.LockedDependency{}, err
	}
	return lock, nil
}

// Install reconciles every declared dependency with its lock record, in
// declaration order. Lock records are only added for dependencies that had
// none, so pinned versions are kept; Force rewrites all of them.
func (a *App) Install(ctx context.Context, configDir string, opts InstallOptions) error {
	deps, locks, err := a.load(configDir)
	if err != nil {
		return err
	}

	changed := false
	var failures []error
	for source, dep := range deps.All() {
		var prev *domain.LockedDependency
		if lock, ok := locks.Get(source); ok {
			prev = &lock
		}

		lock, err := a.reconciler.Reconcile(ctx, configDir, dep, prev, opts.Force)
		if err != nil {
			if !opts.KeepGoing {
				return err
			}
			a.logger.Warn(fmt.Sprintf("Failed to install %s", dep.Name()))
			failures = append(failures, zerr.With(zerr.Wrap(err, "failed to install "+dep.Name()), "source", source))
			continue
		}

		if prev == nil || opts.Force {
			locks.Set(source, lock)
			changed = true
		}
	}

	if changed {
		if err := a.store.WriteLockedDependencies(configDir, locks); err != nil {
			return err
		}
	}

	if len(failures) > 0 {
		return errors.Join(append([]error{domain.ErrInstallFailed}, failures...)...)
	}
	return nil
}

// Upgrade reinstalls the named dependencies, or all of them when none are
// named, at their latest version and rewrites their lock records.
func (a *App) Upgrade(ctx context.Context, configDir string, sources []string) error {
	deps, locks, err := a.load(configDir)
	if err != nil {
		return err
	}

	for _, source := range sources {
		if !deps.Has(source) {
			return zerr.With(zerr.Wrap(domain.ErrDependencyNotDeclared, "cannot upgrade"), "source", source)
		}
	}
	if len(sources) == 0 {
		sources = deps.Keys()
	}

	for _, source := range sources {
		dep, _ := deps.Get(source)
		lock, err := a.reconciler.Reconcile(ctx, configDir, dep, nil, false)
		if err != nil {
			return err
		}
		locks.Set(source, lock)
	}

	return a.store.WriteLockedDependencies(configDir, locks)
}

// Status compares every lock record with the markers found on disk without
// changing anything.
func (a *App) Status(_ context.Context, configDir string) ([]domain.DependencyStatus, error) {
	deps, locks, err := a.load(configDir)
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.DependencyStatus, 0, deps.Len())
	for source, dep := range deps.All() {
		status := domain.DependencyStatus{
			Source: source,
			Name:   dep.Name(),
			State:  domain.StateUnlocked,
		}

		if lock, ok := locks.Get(source); ok {
			if err := lock.Validate(); err != nil {
				return nil, err
			}
			status.Type = lock.Type
			status.Version = lock.Version
			status.State = a.installState(configDir, lock)
		}

		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (a *App) installState(configDir string, lock domain.LockedDependency) domain.InstallState {
	var units []string
	if lock.Type == domain.DependencyTypeLovelace {
		units = append(units, domain.LovelaceDestinationPath(configDir, lock.Name()))
	} else {
		for _, component := range lock.Components {
			units = append(units, domain.CoreDestinationPath(configDir, component))
		}
	}

	state := domain.StateInstalled
	for _, unit := range units {
		info, err := a.stamps.Get(unit)
		switch {
		case err != nil:
			state = domain.StateDrifted
		case info == nil:
			return domain.StateMissing
		case info.Version != lock.Version:
			state = domain.StateDrifted
		}
	}
	return state
}

func (a *App) load(configDir string) (*domain.Dependencies, *domain.LockedDependencies, error) {
	deps, err := a.store.LoadDependencies(configDir)
	if err != nil {
		return nil, nil, err
	}
	locks, err := a.store.LoadLockedDependencies(configDir)
	if err != nil {
		return nil, nil, err
	}
	return deps, locks, nil
}
