// Package metrics provides a decorator of a transactional store that reports
// the usage of the store as prometheus metrics.
//
// The collectors are package-level and shared by every decorated store, and
// they are appended to the global list of the module so that an embedding
// application can register them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stratakv/strata"
	"github.com/stratakv/strata/store"
)

// defines prometheus metrics
var (
	promOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strata_store_operations_total",
		Help: "total number of store operations",
	}, []string{"operation"})

	promRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "strata_store_rejected_total",
		Help: "total number of commit or rollback calls without an active transaction",
	})

	promDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "strata_store_transaction_depth",
		Help: "transaction nesting depth last observed on a decorated store",
	})
)

func init() {
	strata.PromCollectors = append(strata.PromCollectors,
		promOps, promRejected, promDepth)
}

// Store is a decorator of a transactional store that counts the operations
// performed. Every call is delegated unchanged.
//
// - implements store.Transactional
type Store[V any] struct {
	inner store.Transactional[V]
}

// NewStore decorates the given store.
func NewStore[V any](inner store.Transactional[V]) *Store[V] {
	return &Store[V]{
		inner: inner,
	}
}

// Get implements store.Readable.
func (s *Store[V]) Get(key string) (V, bool) {
	promOps.WithLabelValues("get").Inc()

	return s.inner.Get(key)
}

// Set implements store.Writable.
func (s *Store[V]) Set(key string, value V) {
	promOps.WithLabelValues("set").Inc()

	s.inner.Set(key, value)
}

// Delete implements store.Writable.
func (s *Store[V]) Delete(key string) {
	promOps.WithLabelValues("delete").Inc()

	s.inner.Delete(key)
}

// Begin implements store.Transactional.
func (s *Store[V]) Begin() bool {
	promOps.WithLabelValues("begin").Inc()

	ok := s.inner.Begin()
	promDepth.Set(float64(s.inner.Depth()))

	return ok
}

// Commit implements store.Transactional.
func (s *Store[V]) Commit() bool {
	promOps.WithLabelValues("commit").Inc()

	ok := s.inner.Commit()
	if !ok {
		promRejected.Inc()
	}

	promDepth.Set(float64(s.inner.Depth()))

	return ok
}

// Rollback implements store.Transactional.
func (s *Store[V]) Rollback() bool {
	promOps.WithLabelValues("rollback").Inc()

	ok := s.inner.Rollback()
	if !ok {
		promRejected.Inc()
	}

	promDepth.Set(float64(s.inner.Depth()))

	return ok
}

// Depth implements store.Transactional.
func (s *Store[V]) Depth() int {
	return s.inner.Depth()
}
