package installer

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"

	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// installLovelace copies the located artifacts into the dependency's resource
// bundle. When the checkout yields nothing it falls back to the latest release.
func (i *Installer) installLovelace(
	ctx context.Context,
	root string,
	dep domain.Dependency,
	checkout string,
) (domain.LockedDependency, error) {
	artifacts, err := i.LocateLovelaceArtifacts(checkout, dep)
	if err != nil {
		return domain.LockedDependency{}, err
	}
	if len(artifacts) == 0 {
		return i.installLovelaceFromRelease(ctx, root, dep, "")
	}

	for _, artifact := range artifacts {
		ok, err := i.fs.Exists(artifact)
		if err != nil {
			return domain.LockedDependency{}, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", artifact)
		}
		if !ok {
			return domain.LockedDependency{}, zerr.With(
				zerr.Wrap(domain.ErrArtifactNotFound, "declared asset does not exist"), "path", artifact)
		}
	}

	dst, err := i.resetBundle(root, dep)
	if err != nil {
		return domain.LockedDependency{}, err
	}
	for _, artifact := range artifacts {
		if err := i.fs.CopyFile(artifact, filepath.Join(dst, filepath.Base(artifact))); err != nil {
			return domain.LockedDependency{}, zerr.With(zerr.Wrap(err, "failed to copy artifact"), "path", artifact)
		}
	}

	version, err := i.vcs.Describe(ctx, checkout)
	if err != nil {
		return domain.LockedDependency{}, err
	}
	if err := i.stamps.Put(dst, domain.PackageInfo{Version: version}); err != nil {
		return domain.LockedDependency{}, err
	}

	return domain.LockedDependency{
		Source:  dep.Source,
		Version: version,
		Type:    domain.DependencyTypeLovelace,
	}, nil
}

// installLovelaceFromRelease downloads the .js and .map assets of a GitHub
// release into the dependency's resource bundle. An empty tag selects the
// latest release.
func (i *Installer) installLovelaceFromRelease(
	ctx context.Context,
	root string,
	dep domain.Dependency,
	tag string,
) (domain.LockedDependency, error) {
	release, err := i.FetchRelease(ctx, dep, tag)
	if err != nil {
		return domain.LockedDependency{}, err
	}

	type download struct {
		name string
		data []byte
	}
	var downloads []download
	for _, asset := range release.Assets {
		if !isLovelaceArtifact(asset.Name) {
			continue
		}
		data, err := i.download(ctx, asset.BrowserDownloadURL)
		if err != nil {
			return domain.LockedDependency{}, err
		}
		downloads = append(downloads, download{name: assetBaseName(asset.BrowserDownloadURL), data: data})
	}
	if len(downloads) == 0 {
		return domain.LockedDependency{}, zerr.With(
			zerr.Wrap(domain.ErrArtifactNotFound, "release has no .js or .map assets"), "tag", release.TagName)
	}

	dst, err := i.resetBundle(root, dep)
	if err != nil {
		return domain.LockedDependency{}, err
	}
	for _, d := range downloads {
		if err := i.fs.WriteFile(filepath.Join(dst, d.name), d.data); err != nil {
			return domain.LockedDependency{}, zerr.With(zerr.Wrap(err, "failed to write artifact"), "name", d.name)
		}
	}

	if err := i.stamps.Put(dst, domain.PackageInfo{Version: release.TagName}); err != nil {
		return domain.LockedDependency{}, err
	}

	return domain.LockedDependency{
		Source:    dep.Source,
		Version:   release.TagName,
		IsRelease: true,
		Type:      domain.DependencyTypeLovelace,
	}, nil
}

// resetBundle replaces the dependency's resource bundle with an empty directory.
func (i *Installer) resetBundle(root string, dep domain.Dependency) (string, error) {
	dst := domain.LovelaceDestinationPath(root, dep.Name())
	if err := i.fs.RemoveAll(dst); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to remove previous install"), "path", dst)
	}
	if err := i.fs.MkdirAll(dst); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create resource bundle"), "path", dst)
	}
	return dst, nil
}

func (i *Installer) download(ctx context.Context, rawURL string) ([]byte, error) {
	status, data, err := i.http.GetBytes(ctx, rawURL)
	if err != nil {
		return nil, sourceUnavailable(err)
	}
	if status < 200 || status > 299 {
		return nil, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrSourceUnavailable, fmt.Sprintf("download failed with status %d", status)),
			"url", rawURL), "status_code", status)
	}
	return data, nil
}

func assetBaseName(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(rawURL)
}
