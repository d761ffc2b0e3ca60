package repositories

import (
	"fmt"
	"sync"
	"time"

	"dishooom_backend/internal/models"
)

// Record constrains collection element types to structs embedding
// models.Entity.
type Record[T any] interface {
	*T
	Meta() *models.Entity
}

// Collection is an in-memory, insertion-ordered store of records keyed by
// their integer Id. All operations take value copies in and hand value copies
// out, so callers never hold a reference into the collection's own state.
//
// A single RWMutex guards every operation, including the read-modify-write of
// Update and Delete, so id uniqueness and lost-update freedom hold even with
// concurrent callers.
type Collection[T any, PT Record[T]] struct {
	mu     sync.RWMutex
	byID   map[int]T
	order  []int
	lastID int
	now    func() time.Time
}

// NewCollection returns an empty collection.
func NewCollection[T any, PT Record[T]]() *Collection[T, PT] {
	return &Collection[T, PT]{
		byID: make(map[int]T),
		now:  time.Now,
	}
}

// Seed loads records verbatim, keeping their pre-existing Ids, and raises the
// id high-water mark so later creates never collide with seeded records.
func (c *Collection[T, PT]) Seed(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range records {
		rec := records[i]
		id := PT(&rec).Meta().ID
		if _, exists := c.byID[id]; exists {
			return fmt.Errorf("%w: %d", ErrDuplicateID, id)
		}
		c.byID[id] = rec
		c.order = append(c.order, id)
		if id > c.lastID {
			c.lastID = id
		}
	}
	return nil
}

// List returns a copy of all records in insertion order.
func (c *Collection[T, PT]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Find returns copies of all records matching the predicate, in insertion
// order.
func (c *Collection[T, PT]) Find(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for _, id := range c.order {
		if rec := c.byID[id]; match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Get returns a copy of the record with the given id.
func (c *Collection[T, PT]) Get(id int) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return rec, nil
}

// Create assigns the next free id, stamps createdAt and appends the record.
// Ids strictly increase and are never reused, even after deletes.
func (c *Collection[T, PT]) Create(rec T) T {
	return c.CreateWith(rec, nil)
}

// CreateWith is Create with an init hook that runs after the id has been
// allocated but before the record is stored. It exists for fields derived
// from the assigned id, such as invoice numbers.
func (c *Collection[T, PT]) CreateWith(rec T, init func(PT)) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	meta := PT(&rec).Meta()
	meta.ID = c.lastID
	meta.CreatedAt = c.now()
	meta.UpdatedAt = nil

	if init != nil {
		init(PT(&rec))
		meta.ID = c.lastID
	}

	c.byID[meta.ID] = rec
	c.order = append(c.order, meta.ID)
	return rec
}

// Update applies the mutation to the stored record under the write lock and
// stamps updatedAt. The record's Id cannot change: any Id written by the
// mutation is overwritten with the stored one.
func (c *Collection[T, PT]) Update(id int, apply func(PT)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	apply(PT(&rec))

	meta := PT(&rec).Meta()
	meta.ID = id
	now := c.now()
	meta.UpdatedAt = &now

	c.byID[id] = rec
	return rec, nil
}

// Delete removes the record and returns a copy of it. The freed id is not
// reused by later creates.
func (c *Collection[T, PT]) Delete(id int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	delete(c.byID, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return rec, nil
}

// Len returns the number of stored records.
func (c *Collection[T, PT]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
