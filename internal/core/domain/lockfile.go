package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// DependencyType classifies an installed dependency.
type DependencyType string

const (
	// DependencyTypeCore is an integration installed under custom_components.
	DependencyTypeCore DependencyType = "core"

	// DependencyTypeLovelace is a dashboard resource bundle installed under www/community.
	DependencyTypeLovelace DependencyType = "lovelace"
)

// String returns the serialized form of the type.
func (t DependencyType) String() string {
	return string(t)
}

// ParseDependencyType converts a serialized type into a DependencyType.
func ParseDependencyType(s string) (DependencyType, error) {
	switch DependencyType(s) {
	case DependencyTypeCore, DependencyTypeLovelace:
		return DependencyType(s), nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownDependencyType, "invalid dependency type"), "type", s)
	}
}

// LockedDependency records exactly what was installed for a Dependency.
type LockedDependency struct {
	// Source is the locator of the Dependency this record belongs to.
	Source string

	// Version is the VCS description or release tag that was installed.
	Version string

	// IsRelease reports whether the install came from release artifacts instead of a checkout.
	IsRelease bool

	// Type is the classification of the installed dependency.
	Type DependencyType

	// Components lists the installed component names. It is non-nil iff Type is core.
	Components []string
}

// Name returns the dependency name derived from the source.
func (l LockedDependency) Name() string {
	return nameFromSource(l.Source)
}

// Validate checks the invariant between Type and Components.
func (l LockedDependency) Validate() error {
	switch l.Type {
	case DependencyTypeCore:
		if l.Components == nil {
			return zerr.With(zerr.Wrap(ErrIntegrityViolation, "core dependency has no components"), "source", l.Source)
		}
	case DependencyTypeLovelace:
		if l.Components != nil {
			return zerr.With(zerr.Wrap(ErrIntegrityViolation, "lovelace dependency has components"), "source", l.Source)
		}
	default:
		return zerr.With(zerr.Wrap(ErrUnknownDependencyType, "invalid dependency type"), "type", string(l.Type))
	}
	return nil
}

// Equal reports whether two records describe the same installation.
// A nil and an empty Components list are not equal.
func (l LockedDependency) Equal(other LockedDependency) bool {
	if l.Source != other.Source || l.Version != other.Version ||
		l.IsRelease != other.IsRelease || l.Type != other.Type {
		return false
	}
	if (l.Components == nil) != (other.Components == nil) {
		return false
	}
	return slices.Equal(l.Components, other.Components)
}
