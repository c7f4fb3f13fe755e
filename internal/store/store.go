// Package store implements the in-memory domain store for the front-office
// service. Every mutable collection in the system (patients, appointments,
// prescriptions, bills) is an ordered, append-only Collection. The only two
// mutation shapes are Append and UpdateStatus; records are never deleted and
// never reordered.
package store

import (
	"errors"
	"fmt"
	"sync"
)

// Collection names used in change events.
const (
	CollectionPatients      = "patients"
	CollectionAppointments  = "appointments"
	CollectionPrescriptions = "prescriptions"
	CollectionBills         = "bills"
)

var (
	// ErrNotFound is returned by strict status updates when no record
	// matches the given id. The permissive variant treats this as a no-op.
	ErrNotFound = errors.New("record not found")

	// ErrIllegalTransition is returned by strict status updates when the
	// requested transition is not in the collection's transition table.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Config describes how a Collection reads identity and status from its
// record type. Status accessors are optional; collections without them
// (patients) reject status updates in strict mode and no-op otherwise.
type Config[T any] struct {
	Name        string
	ID          func(T) string
	Status      func(T) string
	SetStatus   func(*T, string)
	Transitions map[string][]string
	Notifier    *Notifier
}

// Collection is a thread-safe ordered collection of records. Insertion
// order is preserved for the lifetime of the process. Snapshots are copies
// of the backing slice and must be treated as read-only by callers.
type Collection[T any] struct {
	mu  sync.RWMutex
	cfg Config[T]

	items []T
}

// NewCollection creates an empty collection.
func NewCollection[T any](cfg Config[T]) *Collection[T] {
	return &Collection[T]{cfg: cfg}
}

// Append inserts record at the end of the collection. There is no
// constraint checking and no duplicate-id rejection; Append never fails.
func (c *Collection[T]) Append(record T) {
	c.mu.Lock()
	c.items = append(c.items, record)
	c.mu.Unlock()

	c.notify(Event{
		Collection: c.cfg.Name,
		Action:     ActionAppend,
		RecordID:   c.cfg.ID(record),
	})
}

// Snapshot returns the records in insertion order. The returned slice is a
// copy; mutating it does not affect the collection.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the first record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.cfg.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// UpdateStatus replaces the status field of every record matching id,
// leaving all other fields unchanged. An unknown id is a silent no-op: the
// collection is left exactly as it was and no error is reported. When the
// collection has a transition table, records whose current status has no
// legal transition to the requested one are likewise silently skipped, so
// terminal states stay terminal in both modes. When duplicate ids exist
// (timestamp id mode), all eligible matching records are updated, not just
// the first.
func (c *Collection[T]) UpdateStatus(id, status string) {
	c.mu.Lock()
	updated := c.applyStatus(id, status)
	c.mu.Unlock()

	if updated {
		c.notify(Event{
			Collection: c.cfg.Name,
			Action:     ActionStatus,
			RecordID:   id,
			Status:     status,
		})
	}
}

// UpdateStatusStrict behaves like UpdateStatus but reports failures:
// ErrNotFound when no record matches id, and ErrIllegalTransition when the
// record's current status has no legal transition to the requested one.
func (c *Collection[T]) UpdateStatusStrict(id, status string) error {
	c.mu.Lock()
	current, found := "", false
	for _, item := range c.items {
		if c.cfg.ID(item) == id {
			if c.cfg.Status != nil {
				current = c.cfg.Status(item)
			}
			found = true
			break
		}
	}
	if !found {
		c.mu.Unlock()
		return fmt.Errorf("%s %q: %w", c.cfg.Name, id, ErrNotFound)
	}
	if !c.transitionAllowed(current, status) {
		c.mu.Unlock()
		return fmt.Errorf("%s %q: %s -> %s: %w", c.cfg.Name, id, current, status, ErrIllegalTransition)
	}
	c.applyStatus(id, status)
	c.mu.Unlock()

	c.notify(Event{
		Collection: c.cfg.Name,
		Action:     ActionStatus,
		RecordID:   id,
		Status:     status,
	})
	return nil
}

// applyStatus mutates in place under the caller's lock. Records whose
// current status cannot legally reach the requested one are skipped.
func (c *Collection[T]) applyStatus(id, status string) bool {
	if c.cfg.SetStatus == nil {
		return false
	}
	updated := false
	for i := range c.items {
		if c.cfg.ID(c.items[i]) != id {
			continue
		}
		if c.cfg.Transitions != nil && c.cfg.Status != nil {
			if !c.transitionAllowed(c.cfg.Status(c.items[i]), status) {
				continue
			}
		}
		c.cfg.SetStatus(&c.items[i], status)
		updated = true
	}
	return updated
}

func (c *Collection[T]) transitionAllowed(from, to string) bool {
	if c.cfg.Transitions == nil {
		return false
	}
	for _, allowed := range c.cfg.Transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (c *Collection[T]) notify(evt Event) {
	if c.cfg.Notifier != nil {
		c.cfg.Notifier.Publish(evt)
	}
}
