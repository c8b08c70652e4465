// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model

import "github.com/samber/oops"

// Point is a diagram position. The kernel treats positions as opaque
// layout data; no geometric invariant is enforced.
type Point struct {
	X float64
	Y float64
}

// Diagram owns an ordered sequence of presentations.
type Diagram struct {
	element

	presentations *Collection[*Presentation]
}

func newDiagram(e element) *Diagram {
	d := &Diagram{element: e}
	d.presentations = newCollection(d, func(p *Presentation) **Collection[*Presentation] { return &p.owner })
	return d
}

// OwnedPresentations returns the diagram's presentation collection, in
// drop order.
func (d *Diagram) OwnedPresentations() *Collection[*Presentation] { return d.presentations }

// Presentation is a diagram-local visual occurrence of a model element.
// It is owned by exactly one diagram and holds a non-owning back-reference
// to its subject; the subject holds the inverse in Presentations. A subject
// may be presented on several diagrams, or several times on one.
//
// A presentation created for a relationship additionally records the two
// endpoint presentations it connects; a renderer consumes those to draw
// the connector.
type Presentation struct {
	element

	owner    *Collection[*Presentation]
	position Point
	subject  Element

	// connector endpoints, nil for shape presentations
	head *Presentation
	tail *Presentation
}

// Diagram returns the diagram that owns this presentation, or nil.
func (p *Presentation) Diagram() *Diagram {
	if p.owner == nil {
		return nil
	}
	d, _ := p.owner.Owner().(*Diagram)
	return d
}

// Subject returns the model element this presentation visualizes.
func (p *Presentation) Subject() Element { return p.subject }

// Position returns the presentation's position.
func (p *Presentation) Position() Point { return p.position }

// SetPosition moves the presentation.
func (p *Presentation) SetPosition(pos Point) { p.position = pos }

// Bind attaches the presentation to its subject and records the inverse
// reference on the subject. A presentation is bound once.
func (p *Presentation) Bind(subject Element) error {
	if subject == nil {
		return oops.Code("INVALID_ARGUMENT").
			With("presentation", p.ID()).
			Wrapf(ErrInvalidArgument, "nil subject")
	}
	if p.subject != nil {
		return oops.Code("INVALID_ARGUMENT").
			With("presentation", p.ID()).
			With("subject", p.subject.ID()).
			Wrapf(ErrInvalidArgument, "presentation already bound")
	}
	p.subject = subject
	subject.base().addPresentation(p)
	return nil
}

// Connect records the two endpoint presentations of a connector.
func (p *Presentation) Connect(head, tail *Presentation) error {
	if head == nil || tail == nil {
		return oops.Code("INVALID_ARGUMENT").
			With("presentation", p.ID()).
			Wrapf(ErrInvalidArgument, "connector requires two endpoint presentations")
	}
	p.head = head
	p.tail = tail
	return nil
}

// IsConnector reports whether this presentation connects two endpoint
// presentations.
func (p *Presentation) IsConnector() bool { return p.head != nil && p.tail != nil }

// Ends returns the connected endpoint presentations. For an association
// the head presents the type of member end 0 and the tail the type of
// member end 1; for a generalization the head presents the general and
// the tail the specific classifier. Both are nil for shape presentations.
func (p *Presentation) Ends() (head, tail *Presentation) {
	return p.head, p.tail
}
