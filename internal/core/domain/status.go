package domain

// InstallState describes how a declared dependency relates to what is on disk.
type InstallState string

const (
	// StateInstalled means every installed unit carries the locked version.
	StateInstalled InstallState = "installed"

	// StateDrifted means at least one installed unit carries a different version.
	StateDrifted InstallState = "drifted"

	// StateMissing means at least one installed unit has no marker.
	StateMissing InstallState = "missing"

	// StateUnlocked means the dependency has no lock record yet.
	StateUnlocked InstallState = "unlocked"
)

// DependencyStatus is one line of the status report.
type DependencyStatus struct {
	Source  string
	Name    string
	Type    DependencyType
	Version string
	State   InstallState
}
