package repositories

import "sync"

// Table is the unguarded content of a collection: rows keyed by id plus the
// order in which they were inserted. A Table is only reachable through a
// Collection's lock or a Tx, never shared bare.
type Table[T Record] struct {
	rows  map[string]T
	order []string
}

func newTable[T Record]() Table[T] {
	return Table[T]{rows: make(map[string]T)}
}

// Insert adds rec. It returns false and leaves the table untouched when a
// record with the same key is already present.
func (t *Table[T]) Insert(rec T) bool {
	k := rec.Key()
	if _, ok := t.rows[k]; ok {
		return false
	}
	t.rows[k] = rec
	t.order = append(t.order, k)
	return true
}

// Get returns the record stored under id.
func (t *Table[T]) Get(id string) (T, bool) {
	rec, ok := t.rows[id]
	return rec, ok
}

// Update applies fn to a copy of the record stored under id and writes the
// copy back. fn must not change the key.
func (t *Table[T]) Update(id string, fn func(*T)) (T, bool) {
	rec, ok := t.rows[id]
	if !ok {
		return rec, false
	}
	fn(&rec)
	t.rows[id] = rec
	return rec, true
}

// Remove deletes and returns the record stored under id.
func (t *Table[T]) Remove(id string) (T, bool) {
	rec, ok := t.rows[id]
	if !ok {
		return rec, false
	}
	delete(t.rows, id)
	for i, k := range t.order {
		if k == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return rec, true
}

// RemoveWhere deletes every record matching pred and returns them in
// insertion order.
func (t *Table[T]) RemoveWhere(pred func(T) bool) []T {
	var removed []T
	kept := t.order[:0]
	for _, k := range t.order {
		rec := t.rows[k]
		if pred(rec) {
			removed = append(removed, rec)
			delete(t.rows, k)
			continue
		}
		kept = append(kept, k)
	}
	t.order = kept
	return removed
}

// List returns all records in insertion order.
func (t *Table[T]) List() []T {
	out := make([]T, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.rows[k])
	}
	return out
}

// Find returns the records matching pred, in insertion order.
func (t *Table[T]) Find(pred func(T) bool) []T {
	out := make([]T, 0)
	for _, k := range t.order {
		if rec := t.rows[k]; pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// FindOne returns the first record (in insertion order) matching pred.
func (t *Table[T]) FindOne(pred func(T) bool) (T, bool) {
	for _, k := range t.order {
		if rec := t.rows[k]; pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of records held.
func (t *Table[T]) Len() int { return len(t.rows) }

// Collection is a Table guarded by its own lock. The single-call methods
// take the lock themselves; multi-collection work goes through Store.Update
// or Store.View.
type Collection[T Record] struct {
	mu sync.RWMutex
	t  Table[T]
}

// NewCollection returns an empty collection.
func NewCollection[T Record]() *Collection[T] {
	return &Collection[T]{t: newTable[T]()}
}

func (c *Collection[T]) Insert(rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t.Insert(rec)
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t.Get(id)
}

func (c *Collection[T]) Remove(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t.Remove(id)
}

func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t.List()
}

func (c *Collection[T]) Find(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t.Find(pred)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t.Len()
}
