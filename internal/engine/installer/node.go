package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hassdeps/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hassdeps/internal/adapters/git"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hassdeps/internal/adapters/github"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hassdeps/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hassdeps/internal/adapters/settings"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hassdeps/internal/adapters/stamp"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hassdeps/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/hassdeps/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[ports.Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.NodeID,
			github.NodeID,
			fs.FileSystemNodeID,
			stamp.NodeID,
			logger.NodeID,
			progrock.NodeID,
			settings.NodeID,
		},
		Run: func(ctx context.Context) (ports.Reconciler, error) {
			vcs, err := graft.Dep[ports.VCS](ctx)
			if err != nil {
				return nil, err
			}

			httpClient, err := graft.Dep[ports.HTTPClient](ctx)
			if err != nil {
				return nil, err
			}

			fileSystem, err := graft.Dep[ports.FileSystem](ctx)
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

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(vcs, httpClient, fileSystem, stamps, log, telemetry, cfg.GitHubAPIURL), nil
		},
	})
}
