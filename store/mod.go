// Package store defines the primitives of a transactional key/value storage.
//
// The stores of this module address values of an arbitrary type through a
// type parameter, so that a caller can keep heterogeneous payloads behind a
// single instantiation without resorting to empty interfaces. A missing key
// is reported with a boolean, never with an error, as reading can never fail.
package store

// Readable is the interface for a readable store.
type Readable[V any] interface {
	// Get returns the value associated with the key, or false if the key is
	// not set.
	Get(key string) (V, bool)
}

// Writable is the interface for a writable store. Writes always succeed.
type Writable[V any] interface {
	Set(key string, value V)

	Delete(key string)
}

// Snapshot is a state of the store that can be read and written.
type Snapshot[V any] interface {
	Readable[V]
	Writable[V]
}

// Transactional is a snapshot that supports nested transactions. While a
// transaction is active, writes are buffered in the innermost transaction and
// only folded into the outer scope on commit.
type Transactional[V any] interface {
	Snapshot[V]

	// Begin opens a nested transaction. It always succeeds and returns true.
	Begin() bool

	// Commit folds the innermost transaction into the next-outer scope. It
	// returns false when no transaction is active.
	Commit() bool

	// Rollback discards the innermost transaction and every write it holds.
	// It returns false when no transaction is active.
	Rollback() bool

	// Depth returns the number of active transactions.
	Depth() int
}
