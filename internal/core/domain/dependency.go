package domain

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// GitHubHost is the only origin host for which release artifacts can be fetched.
const GitHubHost = "github.com"

// Dependency is a user-declared add-on, keyed by its Source locator.
//
// Include and Assets distinguish nil ("not set") from an empty list.
type Dependency struct {
	// Source is the clone URL or VCS origin of the add-on.
	Source string

	// RootIsCustomComponents treats the checkout root as the integration directory.
	RootIsCustomComponents bool

	// Include is an optional allow-list of component names to install.
	Include []string

	// Assets is an optional list of checkout-relative paths to install for Lovelace resources.
	Assets []string
}

// NewDependency creates a Dependency with default settings for the given source.
func NewDependency(source string) Dependency {
	return Dependency{Source: source}
}

// Name returns the base name of the source's URL path without its extension.
func (d Dependency) Name() string {
	return nameFromSource(d.Source)
}

// GitHubSlug returns the "owner/repo" slug when the source is hosted on GitHub.
func (d Dependency) GitHubSlug() (string, bool) {
	u, err := url.Parse(d.Source)
	if err != nil || u.Host != GitHubHost {
		return "", false
	}
	slug := strings.TrimPrefix(u.Path, "/")
	slug = strings.TrimSuffix(slug, "/")
	slug = strings.TrimSuffix(slug, ".git")
	if slug == "" {
		return "", false
	}
	return slug, true
}

// SourceHash returns a short stable digest of the source, suitable for directory names.
func (d Dependency) SourceHash() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(d.Source))
}

// Validate checks that the source yields a usable install name.
func (d Dependency) Validate() error {
	switch d.Name() {
	case "", ".", "..":
		return zerr.With(zerr.Wrap(ErrInvalidDependency, "source has no usable name"), "source", d.Source)
	}
	return nil
}

// IsAdvanced reports whether any field other than Source deviates from its default.
func (d Dependency) IsAdvanced() bool {
	return d.RootIsCustomComponents || d.Include != nil || d.Assets != nil
}

// Includes reports whether the named component passes the Include allow-list.
func (d Dependency) Includes(component string) bool {
	if d.Include == nil {
		return true
	}
	for _, name := range d.Include {
		if name == component {
			return true
		}
	}
	return false
}

func nameFromSource(source string) string {
	p := source
	if u, err := url.Parse(source); err == nil {
		p = u.Path
	}
	base := path.Base(strings.TrimSuffix(p, "/"))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
