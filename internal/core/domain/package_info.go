package domain

// PackageInfo is the marker stamped into every installed unit.
type PackageInfo struct {
	Version string `json:"version"`
}
