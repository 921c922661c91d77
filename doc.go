// Package notes is the composition root of a small personal note store.
//
// Notes live in a single file in the user's home directory, by default
// ~/.notes.json, holding one JSON object:
//
//	{"data": [{"id": 0, "description": "buy milk"}]}
//
// A Store is opened once per invocation, mutated in memory and saved back
// with a full rewrite of the file:
//
//	store, err := notes.Open(ctx, path, notes.WithLogger(logger))
//	note, err := store.Add("buy milk")
//	err = store.Save(ctx)
//
// Ids are derived from the last note (last id + 1, or 0), so deleting the
// last note makes its id available again. Delete takes a 1-based position
// in the list, not an id. A file that cannot be decoded is replaced with an
// empty store on Open instead of failing.
package notes
