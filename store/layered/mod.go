// Package layered implements an in-memory key/value store with nested,
// rollback-capable transactions.
//
// The store keeps the committed associations in a base mapping and every
// active transaction in its own layer, ordered from the outermost to the
// innermost. A read scans the layers from the innermost down to the base
// mapping and stops at the first entry found, so a transaction sees its own
// writes before anything else. A deletion inside a transaction is recorded as
// a tombstone entry, which is distinct from the key being absent from the
// layer, so that an outer value is properly masked even when it was never
// touched by the transaction.
package layered

// entry is a single record of a transaction layer, either a value or a
// tombstone.
type entry[V any] struct {
	value   V
	deleted bool
}

// layer holds the pending writes of one transaction.
type layer[V any] map[string]entry[V]

// Store is an in-memory key/value store with nested transactions. It is not
// safe for concurrent use; a caller sharing it across goroutines must
// serialize the accesses externally.
//
// - implements store.Transactional
type Store[V any] struct {
	base   map[string]V
	layers []layer[V]
}

// New creates a new empty store.
func New[V any]() *Store[V] {
	return &Store[V]{
		base: make(map[string]V),
	}
}

// Get implements store.Readable. It scans the transaction layers from the
// innermost to the outermost and returns the first entry found for the key,
// falling back to the committed state when no layer holds one. A tombstone
// stops the scan and reports the key as not set.
func (s *Store[V]) Get(key string) (V, bool) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		e, found := s.layers[i][key]
		if found {
			if e.deleted {
				var zero V
				return zero, false
			}

			return e.value, true
		}
	}

	value, found := s.base[key]

	return value, found
}

// Set implements store.Writable. It writes the value to the innermost
// transaction, or straight to the committed state when no transaction is
// active.
func (s *Store[V]) Set(key string, value V) {
	if len(s.layers) == 0 {
		s.base[key] = value
		return
	}

	s.layers[len(s.layers)-1][key] = entry[V]{value: value}
}

// Delete implements store.Writable. It flags the key as deleted in the
// innermost transaction, or removes it from the committed state when no
// transaction is active. Deleting a key that is not set is a no-op.
func (s *Store[V]) Delete(key string) {
	if len(s.layers) == 0 {
		delete(s.base, key)
		return
	}

	// Even if the key is only set in an outer scope, or not at all, it must
	// be flagged so that the outer value won't be returned.
	s.layers[len(s.layers)-1][key] = entry[V]{deleted: true}
}

// Begin implements store.Transactional. It pushes a new empty layer which
// becomes the innermost transaction. Nesting is unbounded.
func (s *Store[V]) Begin() bool {
	s.layers = append(s.layers, make(layer[V]))

	return true
}

// Commit implements store.Transactional. It pops the innermost layer and
// folds its entries into the layer below, with the popped entries taking
// precedence. When the popped layer is the last one, the entries are applied
// to the committed state and tombstones remove their key for good. It returns
// false when no transaction is active.
func (s *Store[V]) Commit() bool {
	n := len(s.layers)
	if n == 0 {
		return false
	}

	top := s.layers[n-1]
	s.layers = s.layers[:n-1]

	if n == 1 {
		for key, e := range top {
			if e.deleted {
				delete(s.base, key)
			} else {
				s.base[key] = e.value
			}
		}

		return true
	}

	parent := s.layers[n-2]
	for key, e := range top {
		parent[key] = e
	}

	return true
}

// Rollback implements store.Transactional. It pops and discards the innermost
// layer, reverting the state to what it was before the matching Begin. It
// returns false when no transaction is active.
func (s *Store[V]) Rollback() bool {
	if len(s.layers) == 0 {
		return false
	}

	s.layers = s.layers[:len(s.layers)-1]

	return true
}

// Depth implements store.Transactional. It returns the number of active
// transactions.
func (s *Store[V]) Depth() int {
	return len(s.layers)
}
