// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hassdeps/internal/adapters/config"
	_ "go.trai.ch/hassdeps/internal/adapters/fs"
	_ "go.trai.ch/hassdeps/internal/adapters/git"
	_ "go.trai.ch/hassdeps/internal/adapters/github"
	_ "go.trai.ch/hassdeps/internal/adapters/logger"
	_ "go.trai.ch/hassdeps/internal/adapters/settings"
	_ "go.trai.ch/hassdeps/internal/adapters/stamp"
	_ "go.trai.ch/hassdeps/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/hassdeps/internal/app"
	_ "go.trai.ch/hassdeps/internal/engine/installer"
)
