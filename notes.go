package notes

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/notes/internal/platform"
	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// Version is set at build time via ldflags.
var Version = "dev"

// --- Types ---

// Note is a public alias for the core note.
type Note = core.Note

// Store is a public alias for the core store.
type Store = core.Store

// --- Configuration ---

// Option defines a functional option for configuring the store.
type Option = platform.Option

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithReadOnly opens the store without ever writing to it.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithSerializer overrides the file format picked from the extension.
func WithSerializer(s fs.Serializer) Option {
	return platform.WithSerializer(s)
}

// WithPerm sets the permission of the store file.
func WithPerm(perm os.FileMode) Option {
	return platform.WithPerm(perm)
}

// --- Factory ---

// New creates a Store bound to path. It must be loaded before use.
func New(path string, opts ...Option) *Store {
	return platform.New(path, opts...)
}

// Open creates and loads the Store bound to path.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	return platform.Open(ctx, path, opts...)
}

// --- Paths ---

// DefaultPath returns the per-user store path under home.
func DefaultPath(home string) string {
	return platform.DefaultPath(home)
}

// ResolvePath picks the store path from an explicit value, $NOTES_FILE,
// a configured value, or the home directory, in that order.
func ResolvePath(explicit, configured string) (string, error) {
	return platform.ResolvePath(explicit, configured)
}
