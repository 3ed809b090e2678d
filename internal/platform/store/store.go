// Package store provides flat-file persistence for homogeneous record
// collections. Each collection owns a single JSON-array file: the whole
// array is read once when the collection is opened and rewritten after
// every mutation. The in-memory slice is the authoritative copy for the
// process lifetime.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned by domain repositories when a referenced
// record does not exist in the collection.
var ErrNotFound = errors.New("record not found")

// Collection is a file-backed list of records. Integer-keyed
// collections carry an id extractor so the sequential-id counter can be
// recomputed from the data itself; string-keyed collections pass nil.
type Collection[T any] struct {
	path    string
	log     zerolog.Logger
	idOf    func(T) int
	items   []T
	nextID  int
	existed bool
}

// Open loads the collection at path. A missing file yields an empty
// collection; an unreadable or corrupt file is logged and likewise
// yields an empty collection, never an error. idOf may be nil for
// collections without integer ids.
func Open[T any](path string, log zerolog.Logger, idOf func(T) int) *Collection[T] {
	c := &Collection[T]{path: path, log: log, idOf: idOf, nextID: 1}
	c.load()
	return c
}

func (c *Collection[T]) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn().Err(err).Str("path", c.path).Msg("collection unreadable, starting empty")
			c.existed = true
		}
		return
	}
	c.existed = true

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Warn().Err(err).Str("path", c.path).Msg("collection corrupt, starting empty")
		return
	}
	c.items = items
	c.recomputeNextID()
}

func (c *Collection[T]) recomputeNextID() {
	if c.idOf == nil {
		return
	}
	for _, item := range c.items {
		if id := c.idOf(item); id >= c.nextID {
			c.nextID = id + 1
		}
	}
}

// SeedIfMissing adopts seed as the collection contents when no backing
// file existed at open time, and writes it through. A file that existed
// but failed to load stays empty; the seed never masks corruption.
func (c *Collection[T]) SeedIfMissing(seed []T) error {
	if c.existed {
		return nil
	}
	c.items = append([]T(nil), seed...)
	c.recomputeNextID()
	return c.Save()
}

// All returns a copy of the collection in insertion order.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of records currently held.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// NextID returns the next sequential id and advances the counter. Ids
// are never reused: the counter starts at max(id)+1 on load and only
// moves forward, so deletions leave gaps rather than freeing ids.
func (c *Collection[T]) NextID() int {
	id := c.nextID
	c.nextID++
	return id
}

// Append adds a record and persists the whole collection.
func (c *Collection[T]) Append(item T) error {
	c.items = append(c.items, item)
	return c.Save()
}

// Replace swaps the collection contents and persists them. The id
// counter only ever advances, so replacing with a shorter list does not
// make earlier ids available again.
func (c *Collection[T]) Replace(items []T) error {
	c.items = items
	c.recomputeNextID()
	return c.Save()
}

// Save rewrites the backing file from the in-memory state. Indentation
// is cosmetic; the files are meant to be human-readable.
func (c *Collection[T]) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
