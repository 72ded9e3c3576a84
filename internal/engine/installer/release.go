package installer

import (
	"context"
	"fmt"
	"net/url"

	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// Release is the subset of a GitHub release used for installs.
type Release struct {
	TagName string         `json:"tag_name"`
	Assets  []ReleaseAsset `json:"assets"`
}

// ReleaseAsset is a downloadable file attached to a Release.
type ReleaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// FetchRelease looks up the release tagged tag, or the latest release when tag is empty.
// Only GitHub-hosted sources have releases.
func (i *Installer) FetchRelease(ctx context.Context, dep domain.Dependency, tag string) (*Release, error) {
	slug, ok := dep.GitHubSlug()
	if !ok {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrArtifactNotFound, "releases are only available for GitHub sources"), "source", dep.Source)
	}

	endpoint := fmt.Sprintf("%s/repos/%s/releases/latest", i.apiURL, slug)
	if tag != "" {
		endpoint = fmt.Sprintf("%s/repos/%s/releases/tags/%s", i.apiURL, slug, url.PathEscape(tag))
	}

	var release Release
	status, err := i.http.GetJSON(ctx, endpoint, &release)
	if err != nil {
		return nil, sourceUnavailable(err)
	}
	if status < 200 || status > 299 {
		return nil, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrSourceUnavailable, fmt.Sprintf("release lookup failed with status %d", status)),
			"url", endpoint), "status_code", status)
	}

	return &release, nil
}
