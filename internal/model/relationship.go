// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model

import "github.com/samber/oops"

// Relationship is an element connecting other elements: an association
// between two classifiers, or a generalization between a general and a
// specific classifier.
type Relationship interface {
	Element

	// Endpoints returns the elements this relationship connects, in a
	// fixed order: the two member-end types for an association, general
	// then specific for a generalization.
	Endpoints() []Element
}

// Association is a relationship with exactly two member ends, each a
// property typed by one of the two related classifiers and owned by the
// association. The recipe CreateAssociation establishes both ends; the
// member-end sequence has length 2 from then on.
type Association struct {
	element

	memberEnds *Collection[*Property]
}

func newAssociation(e element) *Association {
	a := &Association{element: e}
	a.memberEnds = newCollection(a, func(p *Property) **Collection[*Property] { return &p.owner })
	return a
}

// MemberEnds returns the association's member-end collection. End 0 is
// typed by the first classifier passed to the recipe, end 1 by the second.
func (a *Association) MemberEnds() *Collection[*Property] { return a.memberEnds }

// Endpoints returns the classifiers the two member ends are typed by.
func (a *Association) Endpoints() []Element {
	ends := a.memberEnds.Items()
	out := make([]Element, 0, len(ends))
	for _, end := range ends {
		if t := end.Type(); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Generalization links a general (parent) classifier and a specific
// (child) classifier. The recipe CreateGeneralization also records the
// inverse references on both classifiers, so the relationship is
// discoverable from either endpoint.
type Generalization struct {
	element

	general  Classifier
	specific Classifier
}

// SetPair sets the general and specific classifiers and records the
// inverse references on both endpoints. A generalization's pair is set
// once; CreateGeneralization is the recipe for new relationships, SetPair
// serves persistence collaborators restoring an enumerated graph.
func (g *Generalization) SetPair(general, specific Classifier) error {
	if general == nil || specific == nil {
		return oops.Code("INVALID_ARGUMENT").
			With("generalization", g.ID()).
			Wrapf(ErrInvalidArgument, "generalization requires two classifiers")
	}
	if g.general != nil || g.specific != nil {
		return oops.Code("INVALID_ARGUMENT").
			With("generalization", g.ID()).
			Wrapf(ErrInvalidArgument, "generalization pair already set")
	}
	g.general = general
	g.specific = specific
	general.addSpecific(specific)
	specific.addGeneral(general)
	return nil
}

// General returns the parent classifier.
func (g *Generalization) General() Classifier { return g.general }

// Specific returns the child classifier.
func (g *Generalization) Specific() Classifier { return g.specific }

// Endpoints returns the general then the specific classifier.
func (g *Generalization) Endpoints() []Element {
	return []Element{g.general, g.specific}
}
