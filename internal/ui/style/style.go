// Package style holds the colors and icons shared by all terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Blue   = lipgloss.Color("#18BCF2")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Circle  = "○"
)
