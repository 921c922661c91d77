package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/notes/pkg/core"
)

// DefaultPerm is the permission of a newly written store file.
const DefaultPerm os.FileMode = 0600

// Repository implements core.Repository on a single file.
// The file is opened fresh for every read and write.
type Repository struct {
	Path       string
	config     Config
	serializer Serializer
	logger     *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
	lastEvent     *core.Event
}

// Config holds the configuration for the file repository.
type Config struct {
	Path       string
	Logger     *slog.Logger
	ReadOnly   bool
	Serializer Serializer  // Defaults to SerializerFor(Path)
	Perm       os.FileMode // Defaults to DefaultPerm
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) *Repository {
	if config.Serializer == nil {
		config.Serializer = SerializerFor(config.Path)
	}
	if config.Perm == 0 {
		config.Perm = DefaultPerm
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Repository{
		Path:       config.Path,
		config:     config,
		serializer: config.Serializer,
		logger:     logger,
	}
}

// Initialize creates the store file holding the empty store when it is
// missing or zero-length. It does nothing in read-only mode.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.ReadOnly {
		return nil
	}

	info, err := os.Stat(r.Path)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
		r.logger.Debug("creating store", "path", r.Path)
		return r.Save(ctx, nil)
	case err != nil:
		return fmt.Errorf("failed to stat store: %w", err)
	case info.IsDir():
		return fmt.Errorf("store path is a directory: %s", r.Path)
	case info.Size() == 0:
		r.logger.Debug("initializing empty store file", "path", r.Path)
		return r.Save(ctx, nil)
	}

	return nil
}

// Load reads the whole file and decodes it.
// Decoding failures wrap core.ErrCorrupt.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if os.IsNotExist(err) && r.config.ReadOnly {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	notes, err := r.serializer.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w: %w", r.Path, core.ErrCorrupt, err)
	}
	return notes, nil
}

// Save encodes notes and atomically replaces the file contents.
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	data, err := r.serializer.Encode(notes)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	if err := writeFileAtomic(r.target(), data, r.config.Perm); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}

// target is the file a save replaces. A symlinked store path resolves to the
// file it points at so the link itself survives the rename.
func (r *Repository) target() string {
	resolved, err := filepath.EvalSymlinks(r.Path)
	if err != nil {
		return r.Path
	}
	return resolved
}

// Serializer returns the serializer used for the store file.
func (r *Repository) Serializer() Serializer {
	return r.serializer
}

var _ core.Repository = (*Repository)(nil)
