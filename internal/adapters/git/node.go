package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hassdeps/internal/adapters/settings"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/hassdeps/internal/core/ports"
)

// NodeID is the unique identifier for the git client Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.VCS]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.VCS, error) {
			cfg, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.GitBinary), nil
		},
	})
}
