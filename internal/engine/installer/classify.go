package installer

import (
	"path/filepath"

	"go.trai.ch/hassdeps/internal/core/domain"
)

// IsCoreDependency reports whether the checkout contains a core integration directory.
func (i *Installer) IsCoreDependency(dep domain.Dependency, checkout string) (bool, error) {
	return i.fs.IsDir(integrationDir(dep, checkout))
}

// integrationDir is custom_components in the checkout, or the checkout itself
// when the repository root holds the components.
func integrationDir(dep domain.Dependency, checkout string) string {
	if dep.RootIsCustomComponents {
		return checkout
	}
	return filepath.Join(checkout, domain.CustomComponentsDirName)
}
