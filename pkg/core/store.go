package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Config holds the configuration for a Store.
type Config struct {
	Logger   *slog.Logger
	ReadOnly bool
}

// Store owns the ordered note sequence of one user and its Repository binding.
//
// A Store lives for a single invocation:
//
//	Uninitialized -> Load -> {Add, Delete, List, Reset}* -> Save -> Close
//
// It is not safe for concurrent use.
type Store struct {
	repo     Repository
	logger   *slog.Logger
	readOnly bool

	notes []Note
	phase Phase
	dirty bool
}

// NewStore creates a new Store bound to repo. Call Load before anything else.
func NewStore(repo Repository, config Config) *Store {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		repo:     repo,
		logger:   logger,
		readOnly: config.ReadOnly,
		phase:    PhaseUninitialized,
	}
}

// Load initializes the backing storage and decodes the notes from it.
//
// Corrupted content is not fatal: the store is rewritten with the canonical
// empty representation and the invocation continues with zero notes.
// In read-only mode nothing is written and the store is simply empty.
func (s *Store) Load(ctx context.Context) error {
	if s.phase == PhaseClosed {
		return ErrClosed
	}

	if err := s.repo.Initialize(ctx); err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}

	notes, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrCorrupt) {
			return fmt.Errorf("loading store: %w", err)
		}

		s.logger.Warn("corrupted store, resetting", "error", err)
		notes = nil
		if !s.readOnly {
			if err := s.repo.Save(ctx, nil); err != nil {
				return fmt.Errorf("resetting corrupted store: %w", err)
			}
		}
	}

	s.notes = notes
	s.phase = PhaseLoaded
	s.dirty = false
	s.logger.Debug("store loaded", "notes", len(notes))
	return nil
}

// NextID returns the id the next added note will get: the id of the last note
// plus one, or 0 when the store is empty.
//
// The id is derived from the tail of the sequence, not from a counter.
// Deleting the last note therefore frees its id for the next Add.
func (s *Store) NextID() uint64 {
	if len(s.notes) == 0 {
		return 0
	}
	return s.notes[len(s.notes)-1].ID + 1
}

// Add appends a note with the given description and returns it.
func (s *Store) Add(description string) (Note, error) {
	if err := s.checkWritable(); err != nil {
		return Note{}, err
	}

	if n := len(s.notes); n > 0 && s.notes[n-1].ID == math.MaxUint64 {
		return Note{}, ErrIDExhausted
	}

	note := Note{
		ID:          s.NextID(),
		Description: description,
	}
	s.notes = append(s.notes, note)
	s.dirty = true

	s.logger.Info("note added", "id", note.ID)
	return note, nil
}

// Delete removes the note at the 1-based position and returns it.
//
// The argument is a position in the current sequence, not a note ID. The two
// only coincide while ids are dense; after a delete they drift apart.
func (s *Store) Delete(position int) (Note, error) {
	if err := s.checkWritable(); err != nil {
		return Note{}, err
	}

	idx := position - 1
	if idx < 0 || idx >= len(s.notes) {
		return Note{}, &OutOfRangeError{Position: position, Len: len(s.notes)}
	}

	removed := s.notes[idx]
	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	s.dirty = true

	s.logger.Info("note deleted", "position", position, "id", removed.ID)
	return removed, nil
}

// List returns a copy of the notes in display order.
func (s *Store) List() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of notes.
func (s *Store) Len() int {
	return len(s.notes)
}

// IsEmpty reports whether the store holds no notes.
func (s *Store) IsEmpty() bool {
	return len(s.notes) == 0
}

// Reset discards every note and immediately writes the empty store.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.checkWritable(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, nil); err != nil {
		return fmt.Errorf("resetting store: %w", err)
	}

	s.notes = nil
	s.dirty = false
	s.logger.Info("store reset")
	return nil
}

// Save overwrites the backing storage with the full note sequence.
func (s *Store) Save(ctx context.Context) error {
	if err := s.checkWritable(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, s.notes); err != nil {
		return fmt.Errorf("saving store: %w", err)
	}

	s.dirty = false
	s.logger.Debug("store saved", "notes", len(s.notes))
	return nil
}

// Close ends the store lifecycle. It does not save.
func (s *Store) Close() error {
	if s.dirty {
		s.logger.Debug("closing store with unsaved changes", "notes", len(s.notes))
	}
	s.phase = PhaseClosed
	return nil
}

// Dirty reports whether there are changes not yet saved.
func (s *Store) Dirty() bool {
	return s.dirty
}

// ReadOnly reports whether the store rejects writes.
func (s *Store) ReadOnly() bool {
	return s.readOnly
}

func (s *Store) checkWritable() error {
	switch s.phase {
	case PhaseUninitialized:
		return ErrNotLoaded
	case PhaseClosed:
		return ErrClosed
	}
	if s.readOnly {
		return ErrReadOnly
	}
	return nil
}

// Watch observes the backing storage if the repository supports it.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}
