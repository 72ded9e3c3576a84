// Package installer reconciles declared dependencies with what is installed in
// a Home Assistant configuration directory.
package installer

import (
	"errors"
	"strings"

	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/hassdeps/internal/core/ports"
)

// Installer implements ports.Reconciler.
type Installer struct {
	vcs       ports.VCS
	http      ports.HTTPClient
	fs        ports.FileSystem
	stamps    ports.PackageInfoStore
	logger    ports.Logger
	telemetry ports.Telemetry
	apiURL    string
}

// New creates an Installer. apiURL is the GitHub REST API root used for
// release lookups; an empty value selects the public API.
func New(
	vcs ports.VCS,
	httpClient ports.HTTPClient,
	fs ports.FileSystem,
	stamps ports.PackageInfoStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
	apiURL string,
) *Installer {
	if apiURL == "" {
		apiURL = domain.DefaultGitHubAPIURL
	}
	return &Installer{
		vcs:       vcs,
		http:      httpClient,
		fs:        fs,
		stamps:    stamps,
		logger:    logger,
		telemetry: telemetry,
		apiURL:    strings.TrimSuffix(apiURL, "/"),
	}
}

// sourceUnavailable marks err as a source acquisition failure.
func sourceUnavailable(err error) error {
	if err == nil || errors.Is(err, domain.ErrSourceUnavailable) {
		return err
	}
	return errors.Join(domain.ErrSourceUnavailable, err)
}

// isLovelaceArtifact reports whether name is a file worth installing as a dashboard resource.
func isLovelaceArtifact(name string) bool {
	return strings.HasSuffix(name, ".js") || strings.HasSuffix(name, ".map")
}
