package installer

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// installCore copies every selected component of the checkout's integration
// directory into root/custom_components, replacing previous copies wholesale.
func (i *Installer) installCore(
	ctx context.Context,
	root string,
	dep domain.Dependency,
	checkout string,
) (domain.LockedDependency, error) {
	src := integrationDir(dep, checkout)
	ok, err := i.fs.IsDir(src)
	if err != nil {
		return domain.LockedDependency{}, zerr.With(zerr.Wrap(err, "failed to stat integration directory"), "path", src)
	}
	if !ok {
		return domain.LockedDependency{}, zerr.With(
			zerr.Wrap(domain.ErrArtifactNotFound, "integration directory not found"), "source", dep.Source)
	}

	if err := i.fs.MkdirAll(domain.CustomComponentsPath(root)); err != nil {
		return domain.LockedDependency{}, zerr.Wrap(err, "failed to create custom_components")
	}

	version, err := i.vcs.Describe(ctx, checkout)
	if err != nil {
		return domain.LockedDependency{}, err
	}

	entries, err := i.fs.ReadDir(src)
	if err != nil {
		return domain.LockedDependency{}, zerr.With(zerr.Wrap(err, "failed to list integration directory"), "path", src)
	}

	components := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !entry.IsDir() || !dep.Includes(name) {
			continue
		}

		dst := domain.CoreDestinationPath(root, name)
		if err := i.replaceDir(filepath.Join(src, name), dst); err != nil {
			return domain.LockedDependency{}, err
		}
		if err := i.stamps.Put(dst, domain.PackageInfo{Version: version}); err != nil {
			return domain.LockedDependency{}, err
		}
		components = append(components, name)
	}

	return domain.LockedDependency{
		Source:     dep.Source,
		Version:    version,
		IsRelease:  false,
		Type:       domain.DependencyTypeCore,
		Components: components,
	}, nil
}

// replaceDir removes dst and copies src in its place.
func (i *Installer) replaceDir(src, dst string) error {
	if err := i.fs.RemoveAll(dst); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove previous install"), "path", dst)
	}
	if err := i.fs.CopyDir(src, dst); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to copy component"), "path", dst)
	}
	return nil
}
