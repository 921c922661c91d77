package platform

import (
	"log/slog"
	"os"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// options holds the internal configuration for opening a store.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	readOnly   bool
	serializer fs.Serializer
	perm       os.FileMode
}

// Option defines a functional option for configuring the store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		perm: fs.DefaultPerm,
	}
}

// WithLogger sets the logger for the store and its repository.
// Without it nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. The store file is never created or rewritten, even when corrupted.
// 2. Add, Delete, Reset and Save return core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithRepository injects a custom storage adapter (e.g. a mock).
// If provided, the file repository is skipped and the path is ignored.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithSerializer overrides the format picked from the file extension.
func WithSerializer(s fs.Serializer) Option {
	return func(o *options) {
		o.serializer = s
	}
}

// WithPerm sets the permission of the store file. Defaults to 0600.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}
