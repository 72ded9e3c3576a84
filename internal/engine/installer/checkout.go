package installer

import (
	"context"

	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// withCheckout clones dep into a fresh temporary directory, checks out ref
// when it is not empty, and runs fn on the checkout. The directory is removed
// on every return path.
func (i *Installer) withCheckout(
	ctx context.Context,
	dep domain.Dependency,
	ref string,
	fn func(checkout string) error,
) (err error) {
	dir, err := i.fs.TempDir(domain.TempDirPrefix + dep.Name() + "-" + dep.SourceHash() + "-")
	if err != nil {
		return zerr.Wrap(err, "failed to create checkout directory")
	}
	defer func() {
		if rmErr := i.fs.RemoveAll(dir); rmErr != nil && err == nil {
			err = zerr.With(zerr.Wrap(rmErr, "failed to remove checkout directory"), "path", dir)
		}
	}()

	if err := i.vcs.Clone(ctx, dep.Source, dir); err != nil {
		return sourceUnavailable(err)
	}
	if ref != "" {
		if err := i.vcs.Checkout(ctx, dir, ref); err != nil {
			return sourceUnavailable(err)
		}
	}

	return fn(dir)
}
