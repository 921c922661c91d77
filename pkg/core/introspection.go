package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Phase          Phase  `json:"phase"`
	Notes          int    `json:"notes"`
	NextID         uint64 `json:"next_id"`
	Dirty          bool   `json:"dirty"`
	ReadOnly       bool   `json:"read_only"`
	RepositoryType string `json:"repository_type"`
	Repository     any    `json:"repository,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	state := StoreState{
		Phase:          s.phase,
		Notes:          len(s.notes),
		NextID:         s.NextID(),
		Dirty:          s.dirty,
		ReadOnly:       s.readOnly,
		RepositoryType: "unknown",
	}

	if s.repo != nil {
		state.RepositoryType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			state.RepositoryType = comp.ComponentType()
		}
		if intro, ok := s.repo.(introspection.Introspectable); ok {
			state.Repository = intro.State()
		}
	}

	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
