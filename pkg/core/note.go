package core

import "fmt"

// Note is the central entity of the domain.
// It is a short piece of text identified by an ID assigned by the Store.
// It is agnostic to storage format (JSON, YAML).
type Note struct {
	ID          uint64 `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
}

// String renders the note the way the list view shows it.
func (n Note) String() string {
	return fmt.Sprintf("%d: %s", n.ID, n.Description)
}
