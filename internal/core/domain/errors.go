package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceUnavailable is returned when a clone, checkout or HTTP fetch fails.
	ErrSourceUnavailable = zerr.New("source unavailable")

	// ErrArtifactNotFound is returned when nothing installable could be produced for a dependency.
	ErrArtifactNotFound = zerr.New("artifact not found")

	// ErrIntegrityViolation is returned when a lock record breaks the type/components invariant.
	ErrIntegrityViolation = zerr.New("lock record integrity violation")

	// ErrUnknownDependencyType is returned for a type other than core or lovelace.
	ErrUnknownDependencyType = zerr.New("unknown dependency type, expected 'core' or 'lovelace'")

	// ErrInvalidDependency is returned when a dependency entry cannot be interpreted.
	ErrInvalidDependency = zerr.New("invalid dependency entry")

	// ErrDependencyExists is returned when adding a dependency that is already declared.
	ErrDependencyExists = zerr.New("dependency already declared")

	// ErrDependencyNotDeclared is returned when a command names a source missing from the dependency file.
	ErrDependencyNotDeclared = zerr.New("dependency not declared")

	// ErrDependenciesFileNotFound is returned when the dependency file does not exist.
	ErrDependenciesFileNotFound = zerr.New("'" + DependenciesFileName + "' not found. Try running 'hass-deps init' first")

	// ErrAlreadyInitialized is returned by init when the dependency file already exists.
	ErrAlreadyInitialized = zerr.New("'" + DependenciesFileName + "' already exists")

	// ErrConfigReadFailed is returned when a dependency or lock file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the dependency file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrLockParseFailed is returned when the lock file cannot be parsed.
	ErrLockParseFailed = zerr.New("failed to parse lock file")

	// ErrConfigWriteFailed is returned when a dependency or lock file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrPackageInfoReadFailed is returned when an installed marker cannot be read.
	ErrPackageInfoReadFailed = zerr.New("failed to read package info")

	// ErrPackageInfoWriteFailed is returned when an installed marker cannot be written.
	ErrPackageInfoWriteFailed = zerr.New("failed to write package info")

	// ErrManifestParseFailed is returned when hacs.json cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse hacs.json")

	// ErrInstallFailed is returned when one or more dependencies failed to install.
	ErrInstallFailed = zerr.New("one or more dependencies failed to install")

	// ErrSettingsInvalid is returned when process settings cannot be interpreted.
	ErrSettingsInvalid = zerr.New("invalid settings")
)
