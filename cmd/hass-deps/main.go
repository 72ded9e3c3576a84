// Package main is the entry point for the hass-deps CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/hassdeps/cmd/hass-deps/commands"
	"go.trai.ch/hassdeps/internal/app"
	_ "go.trai.ch/hassdeps/internal/wiring"
)

// ComponentProvider resolves the application components and a cleanup func.
type ComponentProvider func(ctx context.Context) (*app.Components, func(), error)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr, graftProvider)
	cancel()
	os.Exit(code)
}

func graftProvider(ctx context.Context) (*app.Components, func(), error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, nil, err
	}
	return components, func() { _ = components.Telemetry.Close() }, nil
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}
	if cleanup != nil {
		defer cleanup()
	}

	// 2. Interface - CLI
	cli := commands.New(components)
	cli.SetArgs(args)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
