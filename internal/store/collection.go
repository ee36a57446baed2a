package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Collection is a generic record collection with upsert/remove/list
// semantics. Records keep insertion order; order carries no meaning beyond
// stable listing. A mutation persists the whole collection; on a failed
// save the in-memory state keeps the change and the error surfaces to the
// caller, leaving the stored copy stale until the next successful write.
type Collection[T any] struct {
	mu    sync.Mutex
	slot  string
	blobs Blobs
	items []T

	id    func(T) string
	setID func(*T, string)
}

// NewCollection wires a collection to its blob slot. The id accessors keep
// the type generic without requiring records to share an interface.
func NewCollection[T any](blobs Blobs, slot string, id func(T) string, setID func(*T, string)) *Collection[T] {
	return &Collection[T]{
		slot:  slot,
		blobs: blobs,
		id:    id,
		setID: setID,
	}
}

// Load reads the slot into memory. An absent slot is an empty collection;
// a malformed payload is logged and treated the same rather than failing
// startup.
func (c *Collection[T]) Load(ctx context.Context) error {
	payload, ok, err := c.blobs.Load(ctx, c.slot)
	if err != nil {
		return fmt.Errorf("load collection %s: %w", c.slot, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	if !ok {
		return nil
	}
	var items []T
	if err := decodeSlot(payload, &items); err != nil {
		slog.WarnContext(ctx, "Discarding unreadable collection payload",
			"slot", c.slot, "error", err)
		return nil
	}
	c.items = items
	return nil
}

// List returns a snapshot copy in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the current number of records.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Upsert replaces the record matching item's id, or assigns a fresh id and
// appends when there is no match (or no id). Returns the stored record.
func (c *Collection[T]) Upsert(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.id(item)
	replaced := false
	if id != "" {
		for i := range c.items {
			if c.id(c.items[i]) == id {
				c.items[i] = item
				replaced = true
				break
			}
		}
	}
	if !replaced {
		if id == "" {
			c.setID(&item, uuid.NewString())
		}
		c.items = append(c.items, item)
	}

	if err := c.persistLocked(ctx); err != nil {
		return item, err
	}
	slog.InfoContext(ctx, "Record upserted",
		"slot", c.slot, "id", c.id(item), "replaced", replaced)
	return item, nil
}

// Remove deletes the record with the given id. A missing id is a no-op and
// does not rewrite the slot.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	removed := false
	for _, item := range c.items {
		if c.id(item) == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	if !removed {
		return nil
	}

	if err := c.persistLocked(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Record removed", "slot", c.slot, "id", id)
	return nil
}

func (c *Collection[T]) persistLocked(ctx context.Context) error {
	payload, err := encodeSlot(c.items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.slot, err)
	}
	if err := c.blobs.Save(ctx, c.slot, payload); err != nil {
		return fmt.Errorf("persist collection %s: %w", c.slot, err)
	}
	return nil
}
