package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/notes/pkg/core"
)

// actions is the parsed intent of one invocation.
type actions struct {
	list     bool
	add      bool
	text     string
	delete   bool
	position int
	reset    bool
	match    string
	asJSON   bool
}

func (a actions) none() bool {
	return !a.list && !a.add && !a.delete && !a.reset
}

// parsePosition validates the --delete argument before the store is opened.
func parsePosition(arg string) (int, error) {
	n, err := strconv.ParseUint(arg, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("invalid note position %q: must be a non-negative integer", arg)
	}
	return int(n), nil
}

// runActions applies the intent in a fixed order (reset, delete, add, list)
// and saves once at the end. An out-of-range delete is reported on errOut and
// does not stop the invocation; any other failure returns before saving.
func runActions(ctx context.Context, store *core.Store, a actions, out, errOut io.Writer) error {
	if a.list && a.match != "" && !doublestar.ValidatePattern(textPattern(a.match)) {
		return fmt.Errorf("invalid --match pattern %q: %w", a.match, doublestar.ErrBadPattern)
	}

	if a.reset {
		if err := store.Reset(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "All notes deleted.")
	}

	if a.delete {
		removed, err := store.Delete(a.position)
		switch {
		case errors.Is(err, core.ErrOutOfRange):
			fmt.Fprintf(errOut, "Error: %v\n", err)
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "Deleted note %d: %s\n", removed.ID, removed.Description)
		}
	}

	if a.add {
		note, err := store.Add(a.text)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Added note %d\n", note.ID)
	}

	if a.list {
		if err := printList(out, store.List(), a.match, a.asJSON); err != nil {
			return err
		}
	}

	return store.Save(ctx)
}

// printList renders notes one per line as "<id>: <description>".
func printList(out io.Writer, notes []core.Note, match string, asJSON bool) error {
	filtered := notes
	if match != "" {
		filtered = nil
		for _, n := range notes {
			if matchText(match, n.Description) {
				filtered = append(filtered, n)
			}
		}
	}

	if asJSON {
		if filtered == nil {
			filtered = []core.Note{}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(filtered)
	}

	if len(notes) == 0 {
		fmt.Fprintln(out, "No notes.")
		return nil
	}
	if len(filtered) == 0 {
		fmt.Fprintf(out, "No notes match %q.\n", match)
		return nil
	}

	for _, n := range filtered {
		fmt.Fprintln(out, n.String())
	}
	return nil
}

// textSeparator stands in for "/" so globs treat note text as one segment.
const textSeparator = "\x00"

func textPattern(pattern string) string {
	return strings.ReplaceAll(pattern, "/", textSeparator)
}

// matchText reports whether a note description matches a --match glob.
// Descriptions are free text, so "*" also spans slashes.
func matchText(pattern, text string) bool {
	ok, _ := doublestar.Match(textPattern(pattern), strings.ReplaceAll(text, "/", textSeparator))
	return ok
}
