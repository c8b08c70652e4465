// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model

import "github.com/samber/oops"

// Drop projects a model element onto a diagram at the given position and
// returns the created presentation.
//
// Plain elements always succeed: the presentation is owned by the diagram
// and recorded on the element's Presentations list. Relationship elements
// (Association, Generalization) require that both endpoints already have a
// presentation on the same diagram; the connector presentation records the
// two endpoint presentations it binds. If an endpoint has none,
// ErrPresentationMissing is returned and the diagram is left unchanged.
//
// Dropping the same element on the same diagram again creates a second,
// independent presentation.
func Drop(f *Factory, e Element, d *Diagram, x, y float64) (*Presentation, error) {
	if e == nil || d == nil {
		return nil, oops.Code("INVALID_ARGUMENT").
			Wrapf(ErrInvalidArgument, "drop requires an element and a diagram")
	}

	// Resolve connector endpoints before creating anything, so a failed
	// precondition leaves both the diagram and the store untouched.
	var head, tail *Presentation
	if rel, ok := e.(Relationship); ok {
		endpoints := rel.Endpoints()
		if len(endpoints) != 2 {
			return nil, oops.Code("INVARIANT_VIOLATION").
				With("relationship", e.ID()).
				With("endpoints", len(endpoints)).
				Wrapf(ErrInvariantViolation, "relationship does not have two endpoints")
		}
		var err error
		if head, err = presentationOn(endpoints[0], d); err != nil {
			return nil, err
		}
		if tail, err = presentationOn(endpoints[1], d); err != nil {
			return nil, err
		}
	}

	created, err := f.Create(KindPresentation)
	if err != nil {
		return nil, err
	}
	p := created.(*Presentation)
	p.position = Point{X: x, Y: y}
	if err := p.Bind(e); err != nil {
		return nil, err
	}
	if head != nil {
		if err := p.Connect(head, tail); err != nil {
			return nil, err
		}
	}
	if err := d.OwnedPresentations().Append(p); err != nil {
		return nil, err
	}
	f.instr.PresentationDropped(e.Kind())
	return p, nil
}

// presentationOn returns the first presentation of e owned by d.
func presentationOn(e Element, d *Diagram) (*Presentation, error) {
	for _, p := range e.base().presentations {
		if p.Diagram() == d {
			return p, nil
		}
	}
	return nil, oops.Code("PRESENTATION_MISSING").
		With("endpoint", e.ID()).
		With("diagram", d.ID()).
		Wrapf(ErrPresentationMissing, "endpoint %q has no presentation on the diagram", e.Name())
}
