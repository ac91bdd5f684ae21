// Package triestore provides a concurrency-safe key-value store holding a current
// version of a cowtrie.Trie.
//
// Readers take a snapshot of the current version under a short lock and then read
// it without holding any lock, so they never wait for a writer that is building
// the next version. Writers are serialized; each computes the next version from
// the current one and publishes it atomically.
package triestore

import (
	"sync"

	"github.com/aglyzov/go-pds/cowtrie"
	"github.com/aglyzov/go-pds/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "triestore"))

// Store is a concurrency-safe holder of the current trie version.
type Store struct {
	rootMutex  sync.Mutex // guards root
	writeMutex sync.Mutex // serializes writers
	root       cowtrie.Trie
	metrics    Metrics
}

// Option configures a Store.
type Option func(s *Store)

// WithMetrics sets the metrics sink; the default discards everything.
func WithMetrics(m Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithInitial starts the store from an existing version.
func WithInitial(t cowtrie.Trie) Option {
	return func(s *Store) {
		s.root = t
	}
}

// New creates a store.
func New(opts ...Option) *Store {
	s := &Store{
		metrics: noopMetrics{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Snapshot returns the current version.
func (s *Store) Snapshot() cowtrie.Trie {
	s.rootMutex.Lock()
	defer s.rootMutex.Unlock()

	return s.root
}

// ValueGuard holds a value together with the version it was read from,
// keeping that version reachable while the guard is in use.
type ValueGuard[T any] struct {
	snapshot cowtrie.Trie
	value    T
}

// Value returns the guarded value.
func (g *ValueGuard[T]) Value() T {
	return g.value
}

// Snapshot returns the version the value was read from.
func (g *ValueGuard[T]) Snapshot() cowtrie.Trie {
	return g.snapshot
}

// Get looks key up in the current version. It reports false if there is no
// value of type T under key.
func Get[T any](s *Store, key string) (*ValueGuard[T], bool) {
	snapshot := s.Snapshot()

	val, ok := cowtrie.Get[T](snapshot, key)
	if !ok {
		return nil, false
	}

	return &ValueGuard[T]{snapshot: snapshot, value: val}, true
}

// Put stores val under key in a new current version.
func Put[T any](s *Store, key string, val T) {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	next := cowtrie.Put(s.Snapshot(), key, val)
	s.publish(next, "put", key)
}

// Remove deletes key in a new current version. Nothing is published if
// key has no value.
func (s *Store) Remove(key string) {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	cur := s.Snapshot()
	next := cowtrie.Remove(cur, key)

	if next == cur {
		return
	}

	s.publish(next, "remove", key)
}

// publish must be called with the write mutex held.
func (s *Store) publish(next cowtrie.Trie, op, key string) {
	s.rootMutex.Lock()
	s.root = next
	s.rootMutex.Unlock()

	s.metrics.VersionPublished(op)
	logger.Tracef("published new version after %s %q", op, key)
}
