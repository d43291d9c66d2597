package store

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"tearmatch/internal/match"
	"tearmatch/internal/signature"
)

// PersistenceError wraps a failed load or save with the operation and
// target path. Use errors.Is / errors.As on the wrapped cause, e.g.
// errors.Is(err, fs.ErrNotExist) to distinguish a missing blob from a
// corrupt one.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// sigRecord is the on-disk form of one collection entry. Records are
// written in insertion order.
type sigRecord struct {
	Name   string
	Vector []float64
}

// SaveCollection writes the collection to path, creating the target (and
// its directory) if absent and atomically replacing it otherwise.
func SaveCollection(path string, c *match.Collection) error {
	records := make([]sigRecord, 0, c.Len())
	for _, name := range c.Names() {
		sig, _ := c.Get(name)
		records = append(records, sigRecord{Name: name, Vector: sig})
	}
	return save(path, records)
}

// LoadCollection reads a collection previously written by SaveCollection.
// A missing or corrupt blob returns a nil collection and a
// *PersistenceError; the caller's in-memory state is unaffected.
func LoadCollection(path string) (*match.Collection, error) {
	var records []sigRecord
	if err := load(path, &records); err != nil {
		return nil, err
	}
	c := match.NewCollection()
	for _, r := range records {
		c.Insert(r.Name, signature.Signature(r.Vector))
	}
	return c, nil
}

// SaveMatches writes the match set to path with the same atomicity
// guarantees as SaveCollection.
func SaveMatches(path string, m *match.MatchSet) error {
	return save(path, m.All())
}

// LoadMatches reads a match set previously written by SaveMatches.
func LoadMatches(path string) (*match.MatchSet, error) {
	var pairs map[string]string
	if err := load(path, &pairs); err != nil {
		return nil, err
	}
	return match.NewMatchSetFrom(pairs), nil
}

// save gob-encodes v to a temp file next to path and renames it into
// place, holding the blob's advisory lock for the duration.
func save(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	defer lock.Unlock()

	tmp, err := os.CreateTemp(dir, ".tearmatch-*.tmp")
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if err := gob.NewEncoder(tmp).Encode(v); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// load gob-decodes the blob at path into v under a shared lock.
func load(path string, v any) error {
	lock := flock.New(path + ".lock")
	if err := lock.RLock(); err != nil {
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}
	defer lock.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}
	return nil
}
