// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

// Package model implements the in-memory modeling kernel: typed elements
// with stable identity, ownership collections, relationship recipes, and
// diagram projection.
package model

import (
	"slices"

	"github.com/oklog/ulid/v2"
)

// Kind identifies the type of a model element. The set of kinds is closed;
// elements are created exclusively through a Factory.
type Kind string

// Element kinds.
const (
	KindPackage        Kind = "package"
	KindClass          Kind = "class"
	KindProperty       Kind = "property"
	KindOperation      Kind = "operation"
	KindParameter      Kind = "parameter"
	KindAssociation    Kind = "association"
	KindGeneralization Kind = "generalization"
	KindDiagram        Kind = "diagram"
	KindPresentation   Kind = "presentation"
)

// IsValid reports whether k names a known element kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindPackage, KindClass, KindProperty, KindOperation, KindParameter,
		KindAssociation, KindGeneralization, KindDiagram, KindPresentation:
		return true
	}
	return false
}

// Element is the common interface of all model elements.
//
// The interface carries an unexported method so the set of implementations
// stays closed to this package; callers obtain elements from a Factory and
// narrow them with type assertions or the typed Select helpers.
type Element interface {
	// ID returns the element's unique identifier, stable for its lifetime.
	ID() ulid.ULID

	// Kind returns the element's kind tag.
	Kind() Kind

	// Name returns the element's name. Names are mutable and not unique.
	Name() string

	// SetName sets the element's name.
	SetName(name string)

	// Presentations returns the element's current diagram presentations,
	// in the order they were dropped.
	Presentations() []*Presentation

	base() *element
}

// element is the state shared by all element kinds.
type element struct {
	id            ulid.ULID
	kind          Kind
	name          string
	presentations []*Presentation
}

func newElement(kind Kind, id ulid.ULID) element {
	return element{id: id, kind: kind}
}

func (e *element) ID() ulid.ULID { return e.id }

func (e *element) Kind() Kind { return e.kind }

func (e *element) Name() string { return e.name }

func (e *element) SetName(name string) { e.name = name }

func (e *element) Presentations() []*Presentation {
	return slices.Clone(e.presentations)
}

func (e *element) base() *element { return e }

func (e *element) addPresentation(p *Presentation) {
	e.presentations = append(e.presentations, p)
}

func (e *element) removePresentation(p *Presentation) {
	e.presentations = slices.DeleteFunc(e.presentations, func(q *Presentation) bool {
		return q == p
	})
}

// Package is a namespace element used to organize a model.
type Package struct {
	element
}
