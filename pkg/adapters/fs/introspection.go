package fs

import (
	"fmt"

	"github.com/aretw0/introspection"

	"github.com/aretw0/notes/pkg/core"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string      `json:"path"`
	Serializer    string      `json:"serializer"`
	ReadOnly      bool        `json:"read_only"`
	Perm          string      `json:"perm"`
	WatcherActive bool        `json:"watcher_active"`
	LastEvent     *core.Event `json:"last_event,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last *core.Event
	if r.lastEvent != nil {
		e := *r.lastEvent
		last = &e
	}

	return RepositoryState{
		Path:          r.Path,
		Serializer:    fmt.Sprintf("%T", r.serializer),
		ReadOnly:      r.config.ReadOnly,
		Perm:          r.config.Perm.String(),
		WatcherActive: r.watcherActive,
		LastEvent:     last,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "file"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

func (r *Repository) recordEvent(e core.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastEvent = &e
}
