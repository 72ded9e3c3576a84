package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hassdeps/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/hassdeps/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/hassdeps/internal/adapters/settings"           //nolint:depguard // Wired in app layer
	"go.trai.ch/hassdeps/internal/adapters/stamp"              //nolint:depguard // Wired in app layer
	"go.trai.ch/hassdeps/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/hassdeps/internal/core/ports"
	"go.trai.ch/hassdeps/internal/engine/installer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			installer.NodeID,
			stamp.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			store, err := graft.Dep[ports.DependencyStore](ctx)
			if err != nil {
				return nil, err
			}

			reconciler, err := graft.Dep[ports.Reconciler](ctx)
			if err != nil {
				return nil, err
			}

			stamps, err := graft.Dep[ports.PackageInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, reconciler, stamps, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
			settings.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry, cfg), nil
}
