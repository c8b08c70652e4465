// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model

import (
	"slices"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// elementRef is the constraint for collection children. It mirrors Element
// without the Presentations method: mentioning Presentation in the
// constraint would form an invalid type-declaration cycle
// (Collection -> Element -> Presentation -> Collection). Every Element
// satisfies elementRef.
type elementRef interface {
	ID() ulid.ULID
	Kind() Kind
	Name() string
	SetName(name string)
	base() *element
}

// Collection is an ordered collection with single-owner semantics, used for
// composite relationships: a class owns its attributes and operations, an
// operation its parameters, an association its member ends, a diagram its
// presentations.
//
// A child belongs to at most one collection for a given role at a time.
// Appending a child that currently belongs to another collection removes it
// from that collection first (ownership transfer, not duplication). The
// child's owner back-pointer and the collection's membership are kept
// mutually consistent; Validate checks that invariant.
type Collection[E elementRef] struct {
	owner Element
	items []E

	// slot returns the address of the child's owner back-pointer for this
	// collection role, so transfers update the child in place.
	slot func(E) **Collection[E]
}

func newCollection[E elementRef](owner Element, slot func(E) **Collection[E]) *Collection[E] {
	return &Collection[E]{owner: owner, slot: slot}
}

// Owner returns the element that owns this collection.
func (c *Collection[E]) Owner() Element { return c.owner }

// Len returns the number of children.
func (c *Collection[E]) Len() int { return len(c.items) }

// Items returns the children in insertion order.
func (c *Collection[E]) Items() []E { return slices.Clone(c.items) }

// Contains reports whether child is a member of this collection.
func (c *Collection[E]) Contains(child E) bool {
	return slices.ContainsFunc(c.items, func(e E) bool { return any(e) == any(child) })
}

// Append adds child to the end of the collection, transferring it from its
// current owner if it has one. Appending a child already in this collection
// is a no-op.
func (c *Collection[E]) Append(child E) error {
	var zero E
	if any(child) == any(zero) {
		return oops.Code("INVALID_ARGUMENT").With("owner", c.owner.ID()).Wrapf(ErrInvalidArgument, "append nil child")
	}
	cur := *c.slot(child)
	if cur == c {
		return nil
	}
	if cur != nil {
		cur.items = slices.DeleteFunc(cur.items, func(e E) bool { return any(e) == any(child) })
	}
	c.items = append(c.items, child)
	*c.slot(child) = c
	return nil
}

// Remove removes child from the collection and clears its owner back-pointer.
// Returns ErrNotFound if child is not a member.
func (c *Collection[E]) Remove(child E) error {
	var zero E
	if any(child) == any(zero) {
		return oops.Code("INVALID_ARGUMENT").With("owner", c.owner.ID()).Wrapf(ErrInvalidArgument, "remove nil child")
	}
	if !c.Contains(child) {
		return oops.Code("NOT_FOUND").
			With("owner", c.owner.ID()).
			With("child", child.ID()).
			Wrapf(ErrNotFound, "remove child not in collection")
	}
	c.items = slices.DeleteFunc(c.items, func(e E) bool { return any(e) == any(child) })
	*c.slot(child) = nil
	return nil
}

// Validate checks that every member's owner back-pointer refers to this
// collection and that no member appears twice.
func (c *Collection[E]) Validate() error {
	seen := make(map[elementRef]bool, len(c.items))
	for _, child := range c.items {
		if *c.slot(child) != c {
			return oops.Code("INVARIANT_VIOLATION").
				With("owner", c.owner.ID()).
				With("child", child.ID()).
				Wrapf(ErrInvariantViolation, "owner back-pointer does not match container")
		}
		if seen[child] {
			return oops.Code("INVARIANT_VIOLATION").
				With("owner", c.owner.ID()).
				With("child", child.ID()).
				Wrapf(ErrInvariantViolation, "duplicate membership")
		}
		seen[child] = true
	}
	return nil
}
