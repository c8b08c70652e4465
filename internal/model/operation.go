// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model

import "github.com/samber/oops"

// Direction tags a parameter's role in an operation signature.
type Direction string

// Parameter directions.
const (
	DirectionIn     Direction = "in"
	DirectionOut    Direction = "out"
	DirectionInOut  Direction = "inout"
	DirectionReturn Direction = "return"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionIn, DirectionOut, DirectionInOut, DirectionReturn:
		return true
	}
	return false
}

// Operation is a behavioral feature owned by a classifier. It owns an
// ordered sequence of parameters, at most one of which carries the return
// direction in a well-formed model.
type Operation struct {
	element

	owner      *Collection[*Operation]
	parameters *Collection[*Parameter]
}

func newOperation(e element) *Operation {
	op := &Operation{element: e}
	op.parameters = newCollection(op, func(p *Parameter) **Collection[*Parameter] { return &p.owner })
	return op
}

// Owner returns the classifier that owns this operation, or nil.
func (op *Operation) Owner() Element {
	if op.owner == nil {
		return nil
	}
	return op.owner.Owner()
}

// OwnedParameters returns the operation's parameter collection, in
// insertion order.
func (op *Operation) OwnedParameters() *Collection[*Parameter] { return op.parameters }

// ReturnParameter returns the operation's return parameter, or nil.
func (op *Operation) ReturnParameter() *Parameter {
	for _, p := range op.parameters.items {
		if p.direction == DirectionReturn {
			return p
		}
	}
	return nil
}

// SetReturnParameter makes p the operation's return parameter, replacing
// an existing one. The replaced parameter is removed from the operation.
func (op *Operation) SetReturnParameter(p *Parameter) error {
	if p == nil {
		return oops.Code("INVALID_ARGUMENT").
			With("operation", op.ID()).
			Wrapf(ErrInvalidArgument, "nil return parameter")
	}
	if prev := op.ReturnParameter(); prev != nil && prev != p {
		if err := op.parameters.Remove(prev); err != nil {
			return err
		}
	}
	p.direction = DirectionReturn
	return op.parameters.Append(p)
}

// Validate checks that at most one parameter carries the return direction
// and that the parameter collection is internally consistent.
func (op *Operation) Validate() error {
	if err := op.parameters.Validate(); err != nil {
		return err
	}
	returns := 0
	for _, p := range op.parameters.items {
		if p.direction == DirectionReturn {
			returns++
		}
	}
	if returns > 1 {
		return oops.Code("INVARIANT_VIOLATION").
			With("operation", op.ID()).
			With("return_parameters", returns).
			Wrapf(ErrInvariantViolation, "operation has more than one return parameter")
	}
	return nil
}

// Parameter is a typed, named, directed feature owned by an operation.
type Parameter struct {
	element

	owner     *Collection[*Parameter]
	direction Direction
	typeName  string
	typeRef   Classifier
}

// Owner returns the operation that owns this parameter, or nil.
func (p *Parameter) Owner() Element {
	if p.owner == nil {
		return nil
	}
	return p.owner.Owner()
}

// Direction returns the parameter's direction tag.
func (p *Parameter) Direction() Direction { return p.direction }

// SetDirection sets the parameter's direction tag.
func (p *Parameter) SetDirection(d Direction) error {
	if !d.IsValid() {
		return oops.Code("INVALID_ARGUMENT").
			With("parameter", p.ID()).
			With("direction", string(d)).
			Wrapf(ErrInvalidArgument, "unknown parameter direction")
	}
	p.direction = d
	return nil
}

// TypeName returns the primitive type name, or "" when typed by a classifier.
func (p *Parameter) TypeName() string { return p.typeName }

// Type returns the classifier this parameter is typed by, or nil.
func (p *Parameter) Type() Classifier { return p.typeRef }

// SetTypeName types the parameter by a primitive type name.
func (p *Parameter) SetTypeName(name string) {
	p.typeName = name
	p.typeRef = nil
}

// SetType types the parameter by a classifier.
func (p *Parameter) SetType(c Classifier) {
	p.typeRef = c
	p.typeName = ""
}
