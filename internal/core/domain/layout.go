package domain

import "path/filepath"

const (
	// DependenciesFileName is the name of the declared-dependency file.
	DependenciesFileName = "hass-deps.yaml"

	// LockFileName is the name of the lock file.
	LockFileName = "hass-deps.lock"

	// PackageInfoFileName is the name of the marker stamped into every installed unit.
	PackageInfoFileName = ".hass-deps"

	// CustomComponentsDirName is the integration directory, both in checkouts and in the config dir.
	CustomComponentsDirName = "custom_components"

	// WWWDirName is the Home Assistant static files directory.
	WWWDirName = "www"

	// CommunityDirName is the directory holding Lovelace resource bundles.
	CommunityDirName = "community"

	// HacsManifestFileName is the manifest consulted when locating Lovelace artifacts.
	HacsManifestFileName = "hacs.json"

	// TempDirPrefix prefixes every temporary checkout directory.
	TempDirPrefix = "hass-deps-"

	// DefaultConfigDir is the Home Assistant configuration directory used when none is given.
	DefaultConfigDir = "./"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DependenciesPath returns the path of the declared-dependency file in root.
func DependenciesPath(root string) string {
	return filepath.Join(root, DependenciesFileName)
}

// LockPath returns the path of the lock file in root.
func LockPath(root string) string {
	return filepath.Join(root, LockFileName)
}

// CustomComponentsPath returns the integration directory in root.
func CustomComponentsPath(root string) string {
	return filepath.Join(root, CustomComponentsDirName)
}

// CoreDestinationPath returns where a core component is installed.
// It joins root, custom_components and the component name.
func CoreDestinationPath(root, component string) string {
	return filepath.Join(root, CustomComponentsDirName, component)
}

// LovelaceDestinationPath returns where a Lovelace resource bundle is installed.
// It joins root, www, community and the dependency name.
func LovelaceDestinationPath(root, name string) string {
	return filepath.Join(root, WWWDirName, CommunityDirName, name)
}

// PackageInfoPath returns the marker path inside an installed unit.
func PackageInfoPath(unitDir string) string {
	return filepath.Join(unitDir, PackageInfoFileName)
}
