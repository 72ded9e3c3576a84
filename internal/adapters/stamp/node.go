package stamp

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/hassdeps/internal/adapters/fs" //nolint:depguard // shares the afero node
	"go.trai.ch/hassdeps/internal/core/ports"
)

// NodeID is the unique identifier for the package info store Graft node.
const NodeID graft.ID = "adapter.package_info_store"

func init() {
	graft.Register(graft.Node[ports.PackageInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.AferoNodeID},
		Run: func(ctx context.Context) (ports.PackageInfoStore, error) {
			base, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(base), nil
		},
	})
}
