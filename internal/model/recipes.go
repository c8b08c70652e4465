// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model

import "github.com/samber/oops"

// Recipes are composite operations: each creates a relationship element and
// wires its bidirectional back-references in one step. All arguments are
// validated before anything is created or mutated, so a failed recipe
// leaves the store and both endpoints unchanged.

// CreateAssociation creates an Association between two classifiers. Two
// member ends are created and appended in argument order: end 0 is typed
// by a, end 1 by b. Ends are unnamed; naming is left to the caller.
//
// Returns ErrInvalidArgument if either argument is not a classifier.
func CreateAssociation(f *Factory, a, b Element) (*Association, error) {
	ca, err := requireClassifier(a, "a")
	if err != nil {
		f.instr.RecipeFailed(KindAssociation)
		return nil, err
	}
	cb, err := requireClassifier(b, "b")
	if err != nil {
		f.instr.RecipeFailed(KindAssociation)
		return nil, err
	}

	e, err := f.Create(KindAssociation)
	if err != nil {
		return nil, err
	}
	assoc := e.(*Association)

	for _, c := range []Classifier{ca, cb} {
		end := f.CreateProperty()
		end.SetType(c)
		if err := assoc.memberEnds.Append(end); err != nil {
			return nil, err
		}
	}
	return assoc, nil
}

// CreateGeneralization creates a Generalization between a general (parent)
// and a specific (child) classifier. As a single step it also inserts
// specific into general's Specific set and general into specific's General
// set, so the relationship is discoverable from either endpoint.
//
// Returns ErrInvalidArgument if either argument is not a classifier, if
// the pair would form a generalization cycle (including general == specific),
// or if an identical generalization already exists and the factory was not
// built with WithDuplicateGeneralizations.
func CreateGeneralization(f *Factory, general, specific Element) (*Generalization, error) {
	cg, err := requireClassifier(general, "general")
	if err != nil {
		f.instr.RecipeFailed(KindGeneralization)
		return nil, err
	}
	cs, err := requireClassifier(specific, "specific")
	if err != nil {
		f.instr.RecipeFailed(KindGeneralization)
		return nil, err
	}

	if cg == cs || inheritsFrom(cg, cs) {
		f.instr.RecipeFailed(KindGeneralization)
		return nil, oops.Code("INVALID_ARGUMENT").
			With("general", cg.ID()).
			With("specific", cs.ID()).
			Wrapf(ErrInvalidArgument, "generalization would form a cycle")
	}
	if !f.allowDupGeneralizations && containsClassifier(cs.General(), cg) {
		f.instr.RecipeFailed(KindGeneralization)
		return nil, oops.Code("INVALID_ARGUMENT").
			With("general", cg.ID()).
			With("specific", cs.ID()).
			Wrapf(ErrInvalidArgument, "generalization already exists between this pair")
	}

	e, err := f.Create(KindGeneralization)
	if err != nil {
		return nil, err
	}
	gen := e.(*Generalization)
	if err := gen.SetPair(cg, cs); err != nil {
		return nil, err
	}
	return gen, nil
}

func requireClassifier(e Element, role string) (Classifier, error) {
	if e == nil {
		return nil, oops.Code("INVALID_ARGUMENT").
			With("role", role).
			Wrapf(ErrInvalidArgument, "nil element")
	}
	c, ok := AsClassifier(e)
	if !ok {
		return nil, oops.Code("INVALID_ARGUMENT").
			With("role", role).
			With("id", e.ID()).
			With("kind", string(e.Kind())).
			Wrapf(ErrInvalidArgument, "element is not a classifier")
	}
	return c, nil
}

// inheritsFrom reports whether c transitively specializes ancestor.
func inheritsFrom(c, ancestor Classifier) bool {
	seen := make(map[Classifier]bool)
	var walk func(Classifier) bool
	walk = func(cur Classifier) bool {
		if seen[cur] {
			return false
		}
		seen[cur] = true
		for _, g := range cur.General() {
			if g == ancestor || walk(g) {
				return true
			}
		}
		return false
	}
	return walk(c)
}

func containsClassifier(cs []Classifier, c Classifier) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
