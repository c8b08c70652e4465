// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model

import "slices"

// Classifier is an element that can own attributes and operations and take
// part in associations and generalizations. Class is the classifier kind
// exercised by the kernel.
type Classifier interface {
	Element

	// OwnedAttributes returns the classifier's attribute collection.
	OwnedAttributes() *Collection[*Property]

	// OwnedOperations returns the classifier's operation collection.
	OwnedOperations() *Collection[*Operation]

	// General returns the classifiers this classifier specializes
	// (its parents), discoverable without walking Generalization elements.
	General() []Classifier

	// Specific returns the classifiers that specialize this classifier
	// (its children).
	Specific() []Classifier

	addGeneral(Classifier)
	addSpecific(Classifier)
}

// AsClassifier narrows e to a Classifier, reporting whether e is one.
func AsClassifier(e Element) (Classifier, bool) {
	c, ok := e.(Classifier)
	return c, ok
}

// Class is a classifier with owned attributes and operations.
type Class struct {
	element

	attributes *Collection[*Property]
	operations *Collection[*Operation]

	general  []Classifier
	specific []Classifier
}

func newClass(e element) *Class {
	c := &Class{element: e}
	c.attributes = newCollection(c, func(p *Property) **Collection[*Property] { return &p.owner })
	c.operations = newCollection(c, func(op *Operation) **Collection[*Operation] { return &op.owner })
	return c
}

// OwnedAttributes returns the class's attribute collection, in insertion order.
func (c *Class) OwnedAttributes() *Collection[*Property] { return c.attributes }

// OwnedOperations returns the class's operation collection, in insertion order.
func (c *Class) OwnedOperations() *Collection[*Operation] { return c.operations }

// General returns the class's parents.
func (c *Class) General() []Classifier { return slices.Clone(c.general) }

// Specific returns the class's children.
func (c *Class) Specific() []Classifier { return slices.Clone(c.specific) }

func (c *Class) addGeneral(g Classifier)  { c.general = append(c.general, g) }
func (c *Class) addSpecific(s Classifier) { c.specific = append(c.specific, s) }

// Property is a typed, named feature. It is owned either by a classifier
// (an attribute) or by an association (a member end). The type reference is
// either a primitive type name or a classifier back-reference; setting one
// clears the other.
type Property struct {
	element

	owner    *Collection[*Property]
	typeName string
	typeRef  Classifier
}

// Owner returns the element whose collection currently holds this property,
// or nil if unowned.
func (p *Property) Owner() Element {
	if p.owner == nil {
		return nil
	}
	return p.owner.Owner()
}

// TypeName returns the primitive type name, or "" when the property is
// typed by a classifier.
func (p *Property) TypeName() string { return p.typeName }

// Type returns the classifier this property is typed by, or nil when the
// property carries a primitive type name.
func (p *Property) Type() Classifier { return p.typeRef }

// SetTypeName types the property by a primitive type name.
func (p *Property) SetTypeName(name string) {
	p.typeName = name
	p.typeRef = nil
}

// SetType types the property by a classifier.
func (p *Property) SetType(c Classifier) {
	p.typeRef = c
	p.typeName = ""
}
