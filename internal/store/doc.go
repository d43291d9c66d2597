// Package store persists signature collections and match sets as opaque
// binary blobs on disk.
//
// Each blob is a gob encoding of the in-memory value: collections are
// written as an ordered list of name/vector records so insertion order
// (and with it the tie-break behavior of the matcher) survives a round
// trip; match sets are written as their name-to-name entries.
//
// Saves are atomic from the caller's perspective: the blob is written to a
// temp file in the target directory and renamed over the target, under an
// advisory file lock shared with concurrent tearmatch processes. A failed
// load never damages anything: it returns a *PersistenceError and no
// value, leaving whatever the caller already holds in memory untouched.
package store
