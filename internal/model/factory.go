// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model

import (
	"iter"

	"github.com/gobwas/glob"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Instrumentation receives kernel events for metrics. Implementations must
// be cheap; the kernel calls them synchronously.
type Instrumentation interface {
	// ElementCreated is called after an element is registered.
	ElementCreated(kind Kind)

	// PresentationDropped is called after a drop succeeds, with the kind
	// of the presented subject.
	PresentationDropped(subject Kind)

	// RecipeFailed is called when a relationship recipe rejects its
	// arguments, with the kind of relationship that was requested.
	RecipeFailed(kind Kind)
}

type nopInstrumentation struct{}

func (nopInstrumentation) ElementCreated(Kind) {}

func (nopInstrumentation) PresentationDropped(Kind) {}

func (nopInstrumentation) RecipeFailed(Kind) {}

// Option configures a Factory.
type Option func(*Factory)

// WithInstrumentation routes kernel events to instr.
func WithInstrumentation(instr Instrumentation) Option {
	return func(f *Factory) { f.instr = instr }
}

// WithDuplicateGeneralizations permits creating a second generalization
// between the same ordered classifier pair. Rejected by default.
func WithDuplicateGeneralizations() Option {
	return func(f *Factory) { f.allowDupGeneralizations = true }
}

// Factory creates typed elements, registers them in a Store, and answers
// queries over the stored elements.
type Factory struct {
	store *Store
	instr Instrumentation

	allowDupGeneralizations bool
}

// NewFactory creates a factory over the given store.
func NewFactory(store *Store, opts ...Option) *Factory {
	f := &Factory{store: store, instr: nopInstrumentation{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Store returns the factory's backing store.
func (f *Factory) Store() *Store { return f.store }

// Create mints a blank element of the given kind with a fresh identifier,
// registers it, and returns the handle. Unknown kinds are rejected with
// ErrInvalidArgument.
func (f *Factory) Create(kind Kind) (Element, error) {
	return f.CreateWithID(kind, ulid.Make())
}

// CreateWithID mints an element under a caller-supplied identifier. It
// exists for persistence collaborators restoring a previously enumerated
// graph; identifiers must be unique within the store.
func (f *Factory) CreateWithID(kind Kind, id ulid.ULID) (Element, error) {
	var e Element
	base := newElement(kind, id)
	switch kind {
	case KindPackage:
		e = &Package{element: base}
	case KindClass:
		e = newClass(base)
	case KindProperty:
		e = &Property{element: base}
	case KindOperation:
		e = newOperation(base)
	case KindParameter:
		e = &Parameter{element: base, direction: DirectionIn}
	case KindAssociation:
		e = newAssociation(base)
	case KindGeneralization:
		e = &Generalization{element: base}
	case KindDiagram:
		e = newDiagram(base)
	case KindPresentation:
		e = &Presentation{element: base}
	default:
		return nil, oops.Code("INVALID_ARGUMENT").
			With("kind", string(kind)).
			Wrapf(ErrInvalidArgument, "unknown element kind")
	}
	if err := f.store.register(e); err != nil {
		return nil, err
	}
	f.instr.ElementCreated(kind)
	return e, nil
}

// CreateClass creates and registers a Class.
func (f *Factory) CreateClass() *Class {
	e, _ := f.Create(KindClass)
	return e.(*Class)
}

// CreatePackage creates and registers a Package.
func (f *Factory) CreatePackage() *Package {
	e, _ := f.Create(KindPackage)
	return e.(*Package)
}

// CreateProperty creates and registers a Property.
func (f *Factory) CreateProperty() *Property {
	e, _ := f.Create(KindProperty)
	return e.(*Property)
}

// CreateOperation creates and registers an Operation.
func (f *Factory) CreateOperation() *Operation {
	e, _ := f.Create(KindOperation)
	return e.(*Operation)
}

// CreateParameter creates and registers a Parameter with direction "in".
func (f *Factory) CreateParameter() *Parameter {
	e, _ := f.Create(KindParameter)
	return e.(*Parameter)
}

// CreateDiagram creates and registers a Diagram.
func (f *Factory) CreateDiagram() *Diagram {
	e, _ := f.Create(KindDiagram)
	return e.(*Diagram)
}

// Get returns the element with the given ID, or ErrNotFound.
func (f *Factory) Get(id ulid.ULID) (Element, error) {
	return f.store.Get(id)
}

// Predicate is a test over stored elements.
type Predicate func(Element) bool

// ByKind matches elements of the given kind.
func ByKind(kind Kind) Predicate {
	return func(e Element) bool { return e.Kind() == kind }
}

// ByName matches elements with exactly the given name.
func ByName(name string) Predicate {
	return func(e Element) bool { return e.Name() == name }
}

// ByNamePattern matches element names against a glob pattern, e.g. "Order*".
func ByNamePattern(pattern string) (Predicate, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, oops.Code("INVALID_ARGUMENT").
			With("pattern", pattern).
			Wrapf(ErrInvalidArgument, "compile name pattern")
	}
	return func(e Element) bool { return g.Match(e.Name()) }, nil
}

// Select returns a lazy sequence of all stored elements satisfying pred,
// in creation order. The candidate set is captured when Select is called;
// the sequence is restartable.
func (f *Factory) Select(pred Predicate) iter.Seq[Element] {
	snap := f.store.snapshot()
	return func(yield func(Element) bool) {
		for _, e := range snap {
			if pred(e) && !yield(e) {
				return
			}
		}
	}
}

// One returns the single element satisfying pred. It fails with
// ErrNotFound when there is no match and ErrAmbiguous when there is more
// than one; assuming singularity must be explicit, never an arbitrary pick.
func (f *Factory) One(pred Predicate) (Element, error) {
	var found Element
	for e := range f.Select(pred) {
		if found != nil {
			return nil, oops.Code("AMBIGUOUS").
				With("first", found.ID()).
				With("second", e.ID()).
				Wrapf(ErrAmbiguous, "more than one element matches")
		}
		found = e
	}
	if found == nil {
		return nil, oops.Code("NOT_FOUND").Wrapf(ErrNotFound, "no element matches")
	}
	return found, nil
}

// Select returns a lazy sequence of all stored elements of type E, in
// creation order.
func Select[E Element](f *Factory) iter.Seq[E] {
	snap := f.store.snapshot()
	return func(yield func(E) bool) {
		for _, e := range snap {
			if v, ok := e.(E); ok && !yield(v) {
				return
			}
		}
	}
}

// One returns the single stored element of type E, with the same
// not-found and ambiguity behavior as Factory.One.
func One[E Element](f *Factory) (E, error) {
	var found E
	var zero E
	seen := false
	for v := range Select[E](f) {
		if seen {
			return zero, oops.Code("AMBIGUOUS").
				With("first", found.ID()).
				With("second", v.ID()).
				Wrapf(ErrAmbiguous, "more than one element of requested type")
		}
		found, seen = v, true
	}
	if !seen {
		return zero, oops.Code("NOT_FOUND").Wrapf(ErrNotFound, "no element of requested type")
	}
	return found, nil
}
