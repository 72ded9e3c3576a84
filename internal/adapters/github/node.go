package github

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hassdeps/internal/adapters/settings"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/hassdeps/internal/core/ports"
)

// NodeID is the unique identifier for the HTTP client Graft node.
const NodeID graft.ID = "adapter.github"

func init() {
	graft.Register(graft.Node[ports.HTTPClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.HTTPClient, error) {
			cfg, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.GitHubAPIURL, cfg.HTTPTimeout, WithToken(cfg.GitHubToken)), nil
		},
	})
}
