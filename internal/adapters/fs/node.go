package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/hassdeps/internal/core/ports"
)

const (
	// AferoNodeID is the unique identifier for the backing afero.Fs Graft node.
	AferoNodeID graft.ID = "adapter.fs.afero"
	// FileSystemNodeID is the unique identifier for the file system Graft node.
	FileSystemNodeID graft.ID = "adapter.fs"
)

func init() {
	graft.Register(graft.Node[afero.Fs]{
		ID:        AferoNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (afero.Fs, error) {
			return afero.NewOsFs(), nil
		},
	})

	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AferoNodeID},
		Run: func(ctx context.Context) (ports.FileSystem, error) {
			base, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return New(base), nil
		},
	})
}
