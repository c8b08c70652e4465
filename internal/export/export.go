// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

// Package export is the kernel's boundary for persistence collaborators.
// It enumerates a factory's elements into a flat, versioned document with
// every identifier, kind, field value, and ownership/relationship
// reference needed to reconstruct the graph losslessly, and restores a
// factory from such a document.
package export

import (
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/umlkit/umlkit/internal/model"
)

// FormatVersion is the document format version written by Snapshot.
const FormatVersion = "1.0.0"

// versionConstraint accepts any document this reader can restore.
const versionConstraint = "^1"

// Document is a lossless enumeration of a model graph.
type Document struct {
	Version  string   `yaml:"version" json:"version" jsonschema:"required"`
	Elements []Record `yaml:"elements" json:"elements"`
}

// Position is a presentation position.
type Position struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Record describes one element. Reference fields hold element IDs; the
// populated fields depend on the element kind.
type Record struct {
	ID   string `yaml:"id" json:"id" jsonschema:"required"`
	Kind string `yaml:"kind" json:"kind" jsonschema:"required"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Property and Parameter typing: a primitive type name or a
	// classifier reference, never both.
	TypeName  string `yaml:"typeName,omitempty" json:"typeName,omitempty"`
	TypeRef   string `yaml:"typeRef,omitempty" json:"typeRef,omitempty"`
	Direction string `yaml:"direction,omitempty" json:"direction,omitempty"`

	// Ownership sequences, in insertion order.
	OwnedAttributes    []string `yaml:"ownedAttributes,omitempty" json:"ownedAttributes,omitempty"`
	OwnedOperations    []string `yaml:"ownedOperations,omitempty" json:"ownedOperations,omitempty"`
	OwnedParameters    []string `yaml:"ownedParameters,omitempty" json:"ownedParameters,omitempty"`
	MemberEnds         []string `yaml:"memberEnds,omitempty" json:"memberEnds,omitempty"`
	OwnedPresentations []string `yaml:"ownedPresentations,omitempty" json:"ownedPresentations,omitempty"`

	// Generalization endpoints.
	General  string `yaml:"general,omitempty" json:"general,omitempty"`
	Specific string `yaml:"specific,omitempty" json:"specific,omitempty"`

	// Presentation fields.
	Subject  string    `yaml:"subject,omitempty" json:"subject,omitempty"`
	Position *Position `yaml:"position,omitempty" json:"position,omitempty"`
	Head     string    `yaml:"head,omitempty" json:"head,omitempty"`
	Tail     string    `yaml:"tail,omitempty" json:"tail,omitempty"`
}

// Snapshot enumerates every element of the factory's store, in creation
// order, into a document.
func Snapshot(f *model.Factory) *Document {
	doc := &Document{Version: FormatVersion}
	for e := range f.Store().All() {
		doc.Elements = append(doc.Elements, recordFor(e))
	}
	return doc
}

func recordFor(e model.Element) Record {
	r := Record{
		ID:   e.ID().String(),
		Kind: string(e.Kind()),
		Name: e.Name(),
	}
	switch v := e.(type) {
	case *model.Class:
		for _, a := range v.OwnedAttributes().Items() {
			r.OwnedAttributes = append(r.OwnedAttributes, a.ID().String())
		}
		for _, op := range v.OwnedOperations().Items() {
			r.OwnedOperations = append(r.OwnedOperations, op.ID().String())
		}
	case *model.Property:
		r.TypeName = v.TypeName()
		if t := v.Type(); t != nil {
			r.TypeRef = t.ID().String()
		}
	case *model.Operation:
		for _, p := range v.OwnedParameters().Items() {
			r.OwnedParameters = append(r.OwnedParameters, p.ID().String())
		}
	case *model.Parameter:
		r.Direction = string(v.Direction())
		r.TypeName = v.TypeName()
		if t := v.Type(); t != nil {
			r.TypeRef = t.ID().String()
		}
	case *model.Association:
		for _, end := range v.MemberEnds().Items() {
			r.MemberEnds = append(r.MemberEnds, end.ID().String())
		}
	case *model.Generalization:
		if v.General() != nil {
			r.General = v.General().ID().String()
		}
		if v.Specific() != nil {
			r.Specific = v.Specific().ID().String()
		}
	case *model.Diagram:
		for _, p := range v.OwnedPresentations().Items() {
			r.OwnedPresentations = append(r.OwnedPresentations, p.ID().String())
		}
	case *model.Presentation:
		if s := v.Subject(); s != nil {
			r.Subject = s.ID().String()
		}
		pos := v.Position()
		r.Position = &Position{X: pos.X, Y: pos.Y}
		if head, tail := v.Ends(); head != nil {
			r.Head = head.ID().String()
			r.Tail = tail.ID().String()
		}
	}
	return r
}

// EncodeYAML writes the document as YAML.
func (d *Document) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return oops.Wrapf(err, "encode document")
	}
	return enc.Close()
}

// DecodeYAML reads a document from YAML.
func DecodeYAML(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, oops.Wrapf(err, "decode document")
	}
	return &doc, nil
}

// CheckVersion reports whether the document's format version can be
// restored by this reader.
func CheckVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return oops.With("version", version).Wrapf(err, "parse format version")
	}
	c, err := semver.NewConstraint(versionConstraint)
	if err != nil {
		return oops.Wrapf(err, "parse version constraint")
	}
	if !c.Check(v) {
		return oops.
			With("version", version).
			With("constraint", versionConstraint).
			Errorf("unsupported document format version")
	}
	return nil
}

// Restore rebuilds a factory from a document. Identifiers, kinds, field
// values, ownership order, and relationship references are reproduced
// exactly; Snapshot of the result yields an equal document.
func Restore(doc *Document, opts ...model.Option) (*model.Factory, error) {
	if err := CheckVersion(doc.Version); err != nil {
		return nil, err
	}
	f := model.NewFactory(model.NewStore(), opts...)

	// First pass: mint every element under its recorded identifier.
	elements := make(map[string]model.Element, len(doc.Elements))
	for _, r := range doc.Elements {
		id, err := ulid.Parse(r.ID)
		if err != nil {
			return nil, oops.With("id", r.ID).Wrapf(err, "parse element id")
		}
		e, err := f.CreateWithID(model.Kind(r.Kind), id)
		if err != nil {
			return nil, err
		}
		e.SetName(r.Name)
		elements[r.ID] = e
	}

	// Second pass: wire fields and references.
	for _, r := range doc.Elements {
		if err := wire(elements, r); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func wire(elements map[string]model.Element, r Record) error {
	e := elements[r.ID]
	switch v := e.(type) {
	case *model.Class:
		for _, id := range r.OwnedAttributes {
			attr, err := lookup[*model.Property](elements, id)
			if err != nil {
				return err
			}
			if err := v.OwnedAttributes().Append(attr); err != nil {
				return err
			}
		}
		for _, id := range r.OwnedOperations {
			op, err := lookup[*model.Operation](elements, id)
			if err != nil {
				return err
			}
			if err := v.OwnedOperations().Append(op); err != nil {
				return err
			}
		}
	case *model.Property:
		if r.TypeRef != "" {
			t, err := lookupClassifier(elements, r.TypeRef)
			if err != nil {
				return err
			}
			v.SetType(t)
		} else if r.TypeName != "" {
			v.SetTypeName(r.TypeName)
		}
	case *model.Operation:
		for _, id := range r.OwnedParameters {
			p, err := lookup[*model.Parameter](elements, id)
			if err != nil {
				return err
			}
			if err := v.OwnedParameters().Append(p); err != nil {
				return err
			}
		}
	case *model.Parameter:
		if r.Direction != "" {
			if err := v.SetDirection(model.Direction(r.Direction)); err != nil {
				return err
			}
		}
		if r.TypeRef != "" {
			t, err := lookupClassifier(elements, r.TypeRef)
			if err != nil {
				return err
			}
			v.SetType(t)
		} else if r.TypeName != "" {
			v.SetTypeName(r.TypeName)
		}
	case *model.Association:
		for _, id := range r.MemberEnds {
			end, err := lookup[*model.Property](elements, id)
			if err != nil {
				return err
			}
			if err := v.MemberEnds().Append(end); err != nil {
				return err
			}
		}
	case *model.Generalization:
		if r.General == "" && r.Specific == "" {
			return nil
		}
		general, err := lookupClassifier(elements, r.General)
		if err != nil {
			return err
		}
		specific, err := lookupClassifier(elements, r.Specific)
		if err != nil {
			return err
		}
		if err := v.SetPair(general, specific); err != nil {
			return err
		}
	case *model.Diagram:
		for _, id := range r.OwnedPresentations {
			p, err := lookup[*model.Presentation](elements, id)
			if err != nil {
				return err
			}
			if err := v.OwnedPresentations().Append(p); err != nil {
				return err
			}
		}
	case *model.Presentation:
		if r.Position != nil {
			v.SetPosition(model.Point{X: r.Position.X, Y: r.Position.Y})
		}
		if r.Subject == "" {
			return nil
		}
		subject, ok := elements[r.Subject]
		if !ok {
			return oops.Code("NOT_FOUND").
				With("id", r.Subject).
				Wrapf(model.ErrNotFound, "presentation subject")
		}
		if err := v.Bind(subject); err != nil {
			return err
		}
		if r.Head != "" || r.Tail != "" {
			head, err := lookup[*model.Presentation](elements, r.Head)
			if err != nil {
				return err
			}
			tail, err := lookup[*model.Presentation](elements, r.Tail)
			if err != nil {
				return err
			}
			if err := v.Connect(head, tail); err != nil {
				return err
			}
		}
	}
	return nil
}

func lookup[E model.Element](elements map[string]model.Element, id string) (E, error) {
	var zero E
	e, ok := elements[id]
	if !ok {
		return zero, oops.Code("NOT_FOUND").With("id", id).Wrapf(model.ErrNotFound, "referenced element")
	}
	v, ok := e.(E)
	if !ok {
		return zero, oops.Code("INVALID_ARGUMENT").
			With("id", id).
			With("kind", string(e.Kind())).
			Wrapf(model.ErrInvalidArgument, "referenced element has unexpected kind")
	}
	return v, nil
}

func lookupClassifier(elements map[string]model.Element, id string) (model.Classifier, error) {
	e, ok := elements[id]
	if !ok {
		return nil, oops.Code("NOT_FOUND").With("id", id).Wrapf(model.ErrNotFound, "referenced classifier")
	}
	c, ok := model.AsClassifier(e)
	if !ok {
		return nil, oops.Code("INVALID_ARGUMENT").
			With("id", id).
			With("kind", string(e.Kind())).
			Wrapf(model.ErrInvalidArgument, "referenced element is not a classifier")
	}
	return c, nil
}
