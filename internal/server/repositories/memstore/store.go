// Package memstore implements the keyed storage primitive shared by the
// in-memory repositories: records live in a primary map under an internally
// generated sequential key, with a secondary index mapping the external
// identifier to the internal key. Every mutation updates both maps in the
// same critical section, and a detected divergence between them is reported
// as a recoverable inconsistency rather than a fatal error.
package memstore

import (
	"slices"
	"sync"

	"github.com/dpetrovs/heirvault/internal/common"
)

// Store is a generic keyed collection with an external-id secondary index.
type Store[T any] struct {
	mu    sync.Mutex
	seq   int64
	prim  map[int64]T
	index map[string]int64
	clone func(T) T

	inconsistencies int
}

// New constructs an empty store. clone is applied on the way in and out so
// callers never share mutable state with the store.
func New[T any](clone func(T) T) *Store[T] {
	return &Store[T]{
		prim:  make(map[int64]T),
		index: make(map[string]int64),
		clone: clone,
	}
}

// Insert stores a record under a fresh internal key and indexes it by the
// external id. It fails with common.ErrorAlreadyExists on an id collision.
func (s *Store[T]) Insert(extID string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[extID]; ok {
		return common.ErrorAlreadyExists
	}
	s.seq++
	s.prim[s.seq] = s.clone(v)
	s.index[extID] = s.seq
	return nil
}

// Get returns the record for the external id. An index entry pointing at a
// missing primary record is repaired in place and reported as
// common.ErrIndexInconsistent.
func (s *Store[T]) Get(extID string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	key, ok := s.index[extID]
	if !ok {
		return zero, common.ErrorNotFound
	}
	v, ok := s.prim[key]
	if !ok {
		delete(s.index, extID)
		s.inconsistencies++
		return zero, common.ErrIndexInconsistent
	}
	return s.clone(v), nil
}

// Update replaces the record for the external id.
func (s *Store[T]) Update(extID string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.index[extID]
	if !ok {
		return common.ErrorNotFound
	}
	if _, ok := s.prim[key]; !ok {
		delete(s.index, extID)
		s.inconsistencies++
		return common.ErrIndexInconsistent
	}
	s.prim[key] = s.clone(v)
	return nil
}

// Remove deletes the record and its index entry together. A dangling index
// entry is cleaned up and reported as common.ErrIndexInconsistent so
// callers can log and continue.
func (s *Store[T]) Remove(extID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.index[extID]
	if !ok {
		return common.ErrorNotFound
	}
	delete(s.index, extID)
	if _, ok := s.prim[key]; !ok {
		s.inconsistencies++
		return common.ErrIndexInconsistent
	}
	delete(s.prim, key)
	return nil
}

// All returns every record in internal-key order.
func (s *Store[T]) All() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]int64, 0, len(s.prim))
	for k := range s.prim {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	result := make([]T, 0, len(keys))
	for _, k := range keys {
		result = append(result, s.clone(s.prim[k]))
	}
	return result
}

// Len returns the number of primary records.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prim)
}

// Inconsistencies returns how many primary/index divergences were detected
// and repaired over the store's lifetime.
func (s *Store[T]) Inconsistencies() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inconsistencies
}

// CorruptIndex drops the primary record while leaving the index entry in
// place. Test hook for exercising inconsistency handling.
func (s *Store[T]) CorruptIndex(extID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key, ok := s.index[extID]; ok {
		delete(s.prim, key)
	}
}
