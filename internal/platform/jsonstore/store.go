// Package jsonstore persists entity collections as single JSON array files.
// Every mutation is load-modify-rewrite over the whole collection; there is
// no in-place or partial file update.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Collection binds one entity type to one JSON file. All operations on the
// same Collection are serialized by an internal mutex, so concurrent
// read-modify-write cycles cannot lose writes against each other.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection returns a collection stored at path. The file does not need
// to exist yet; a missing file reads as an empty collection.
func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Path reports the backing file location.
func (c *Collection[T]) Path() string {
	return c.path
}

// LoadAll parses the backing file as a JSON array of T. A missing file is
// not an error and yields an empty slice; malformed JSON is surfaced to the
// caller.
func (c *Collection[T]) LoadAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadAll()
}

// OverwriteAll replaces the entire file contents with the serialized items.
// The write goes to a temp file in the same directory followed by a rename,
// so readers never observe a truncated collection.
func (c *Collection[T]) OverwriteAll(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.overwriteAll(items)
}

// Append loads the collection, adds item at the end, and rewrites the file.
func (c *Collection[T]) Append(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.loadAll()
	if err != nil {
		return err
	}
	return c.overwriteAll(append(items, item))
}

// Update runs one load-modify-rewrite cycle under the collection lock.
// The callback returns the new items and whether a rewrite is needed; a
// false flag makes the whole cycle a read-only no-op. An error from the
// callback aborts the cycle without writing.
func (c *Collection[T]) Update(fn func(items []T) ([]T, bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.loadAll()
	if err != nil {
		return err
	}
	items, changed, err := fn(items)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return c.overwriteAll(items)
}

func (c *Collection[T]) loadAll() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	// An empty (e.g. freshly touched) file counts as an empty collection.
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	return items, nil
}

func (c *Collection[T]) overwriteAll(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
