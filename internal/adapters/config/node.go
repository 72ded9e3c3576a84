package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/hassdeps/internal/adapters/fs"
	"go.trai.ch/hassdeps/internal/core/ports"
)

// NodeID is the unique identifier for the dependency store Graft node.
const NodeID graft.ID = "adapter.dependency_store"

func init() {
	graft.Register(graft.Node[ports.DependencyStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.AferoNodeID},
		Run: func(ctx context.Context) (ports.DependencyStore, error) {
			base, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(base), nil
		},
	})
}
