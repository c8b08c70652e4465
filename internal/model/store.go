// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model

import (
	"iter"
	"slices"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Store is the authoritative identifier-to-element mapping for one modeling
// session. It is an explicit value owned by the caller and passed into a
// Factory; there is no process-wide registry.
//
// The kernel is synchronous, but the store serializes access with a
// read-write mutex so a wrapper exposing it to multiple callers gets
// single-writer/multiple-reader safety. Enumeration snapshots the
// creation-order sequence at call time, so iterating while creating
// elements does not invalidate the iteration.
type Store struct {
	mu       sync.RWMutex
	elements map[ulid.ULID]Element
	order    []Element
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{elements: make(map[ulid.ULID]Element)}
}

// register adds a freshly created element. Called by the factory under a
// newly minted ULID, or with a caller-supplied ID during restore.
func (s *Store) register(e Element) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.elements[e.ID()]; exists {
		return oops.Code("INVALID_ARGUMENT").
			With("id", e.ID()).
			Wrapf(ErrInvalidArgument, "duplicate element id")
	}
	s.elements[e.ID()] = e
	s.order = append(s.order, e)
	return nil
}

// Get returns the element with the given ID, or ErrNotFound.
func (s *Store) Get(id ulid.ULID) (Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.elements[id]
	if !ok {
		return nil, oops.Code("NOT_FOUND").With("id", id).Wrapf(ErrNotFound, "get element")
	}
	return e, nil
}

// Len returns the number of stored elements.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// snapshot returns the elements in creation order as they exist now.
func (s *Store) snapshot() []Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// All returns a sequence over every stored element in creation order.
// The matching set is captured when All is called; elements created during
// iteration are not visited.
func (s *Store) All() iter.Seq[Element] {
	snap := s.snapshot()
	return func(yield func(Element) bool) {
		for _, e := range snap {
			if !yield(e) {
				return
			}
		}
	}
}
