package platform

import (
	"context"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// New creates a Store for path without touching the disk.
// Call Load on it before use.
func New(path string, opts ...Option) *core.Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Path:       path,
			Logger:     o.logger,
			ReadOnly:   o.readOnly,
			Serializer: o.serializer,
			Perm:       o.perm,
		})
	}

	return core.NewStore(repo, core.Config{
		Logger:   o.logger,
		ReadOnly: o.readOnly,
	})
}

// Open creates a Store for path and loads it.
//
//	store, err := platform.Open(ctx, "/home/me/.notes.json", platform.WithLogger(logger))
func Open(ctx context.Context, path string, opts ...Option) (*core.Store, error) {
	store := New(path, opts...)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
