package core

import "context"

// Repository defines the contract for the backing storage of a Store.
// Adhering to this interface keeps the Store independent of where and how the
// notes are encoded (a JSON file in the home directory, YAML, memory in tests).
type Repository interface {
	// Initialize ensures the backing storage exists. A missing or zero-length
	// store is created holding the canonical empty representation.
	Initialize(ctx context.Context) error

	// Load reads and decodes the full note sequence.
	// Undecodable content must be reported as an error wrapping ErrCorrupt.
	Load(ctx context.Context) ([]Note, error)

	// Save replaces the full contents of the backing storage with notes.
	// A nil or empty slice writes the canonical empty representation.
	Save(ctx context.Context, notes []Note) error
}

// Watchable is implemented by repositories that can report external changes
// to their backing storage.
type Watchable interface {
	// Watch emits an Event per change until ctx is done, then closes the channel.
	Watch(ctx context.Context) (<-chan Event, error)
}
