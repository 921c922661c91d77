package core

// Phase is the lifecycle stage of a Store within one invocation.
type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseLoaded        Phase = "loaded"
	PhaseClosed        Phase = "closed"
)

// EventType represents the kind of change observed on the backing file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of the backing file seen by a watcher.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
