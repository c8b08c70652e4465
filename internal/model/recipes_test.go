// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlkit/umlkit/internal/model"
)

func TestCreateAssociation(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	user := f.CreateClass()
	user.SetName("User")
	order := f.CreateClass()
	order.SetName("Order")

	assoc, err := model.CreateAssociation(f, user, order)
	require.NoError(t, err)

	ends := assoc.MemberEnds().Items()
	require.Len(t, ends, 2)
	assert.Same(t, user, ends[0].Type())
	assert.Same(t, order, ends[1].Type())

	// Ends are owned by the association and unnamed by default.
	assert.Same(t, assoc, ends[0].Owner())
	assert.Same(t, assoc, ends[1].Owner())
	assert.Empty(t, ends[0].Name())
	assert.Empty(t, ends[1].Name())
}

func TestCreateAssociation_EndTypesSurviveRename(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	a := f.CreateClass()
	a.SetName("A")
	b := f.CreateClass()
	b.SetName("B")

	assoc, err := model.CreateAssociation(f, a, b)
	require.NoError(t, err)

	a.SetName("Renamed")
	b.SetName("AlsoRenamed")

	ends := assoc.MemberEnds().Items()
	require.Len(t, ends, 2)
	assert.Same(t, a, ends[0].Type())
	assert.Same(t, b, ends[1].Type())
}

func TestCreateAssociation_EndNaming(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	user := f.CreateClass()
	order := f.CreateClass()

	assoc, err := model.CreateAssociation(f, user, order)
	require.NoError(t, err)

	ends := assoc.MemberEnds().Items()
	ends[0].SetName("orders")
	ends[1].SetName("customer")

	ends = assoc.MemberEnds().Items()
	assert.Equal(t, "orders", ends[0].Name())
	assert.Equal(t, "customer", ends[1].Name())
}

func TestCreateAssociation_RejectsNonClassifiers(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	cls := f.CreateClass()
	pkg := f.CreatePackage()
	diagram := f.CreateDiagram()

	tests := []struct {
		name string
		a, b model.Element
	}{
		{"package as first argument", pkg, cls},
		{"diagram as second argument", cls, diagram},
		{"nil first argument", nil, cls},
		{"nil second argument", cls, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := f.Store().Len()
			_, err := model.CreateAssociation(f, tt.a, tt.b)
			assert.ErrorIs(t, err, model.ErrInvalidArgument)
			assert.Equal(t, before, f.Store().Len(), "failed recipe must not create elements")
		})
	}
}

func TestCreateGeneralization(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	user := f.CreateClass()
	user.SetName("User")
	admin := f.CreateClass()
	admin.SetName("Admin")

	gen, err := model.CreateGeneralization(f, user, admin)
	require.NoError(t, err)
	assert.Same(t, user, gen.General())
	assert.Same(t, admin, gen.Specific())

	// Discoverable from either endpoint.
	require.Len(t, user.Specific(), 1)
	assert.Same(t, admin, user.Specific()[0])
	require.Len(t, admin.General(), 1)
	assert.Same(t, user, admin.General()[0])
}

func TestCreateGeneralization_BidirectionalityIsStable(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	user := f.CreateClass()
	admin := f.CreateClass()
	other := f.CreateClass()
	another := f.CreateClass()

	_, err := model.CreateGeneralization(f, user, admin)
	require.NoError(t, err)

	// Unrelated generalizations must not disturb the first pair.
	_, err = model.CreateGeneralization(f, other, another)
	require.NoError(t, err)

	require.Len(t, user.Specific(), 1)
	assert.Same(t, admin, user.Specific()[0])
	require.Len(t, admin.General(), 1)
	assert.Same(t, user, admin.General()[0])
}

func TestCreateGeneralization_RejectsNonClassifiers(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	cls := f.CreateClass()
	pkg := f.CreatePackage()

	before := f.Store().Len()
	_, err := model.CreateGeneralization(f, pkg, cls)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	_, err = model.CreateGeneralization(f, cls, nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	// All-or-nothing: nothing created, no endpoint touched.
	assert.Equal(t, before, f.Store().Len())
	assert.Empty(t, cls.General())
	assert.Empty(t, cls.Specific())
}

func TestCreateGeneralization_RejectsCycles(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	a := f.CreateClass()
	b := f.CreateClass()
	c := f.CreateClass()

	_, err := model.CreateGeneralization(f, a, b)
	require.NoError(t, err)
	_, err = model.CreateGeneralization(f, b, c)
	require.NoError(t, err)

	tests := []struct {
		name              string
		general, specific model.Element
	}{
		{"self generalization", a, a},
		{"direct cycle", b, a},
		{"transitive cycle", c, a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := f.Store().Len()
			_, err := model.CreateGeneralization(f, tt.general, tt.specific)
			assert.ErrorIs(t, err, model.ErrInvalidArgument)
			assert.Equal(t, before, f.Store().Len())
		})
	}
}

func TestCreateGeneralization_DuplicatePolicy(t *testing.T) {
	t.Run("rejected by default", func(t *testing.T) {
		f := model.NewFactory(model.NewStore())
		parent := f.CreateClass()
		child := f.CreateClass()

		_, err := model.CreateGeneralization(f, parent, child)
		require.NoError(t, err)

		_, err = model.CreateGeneralization(f, parent, child)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
		assert.Len(t, parent.Specific(), 1)
	})

	t.Run("permitted behind the flag", func(t *testing.T) {
		f := model.NewFactory(model.NewStore(), model.WithDuplicateGeneralizations())
		parent := f.CreateClass()
		child := f.CreateClass()

		_, err := model.CreateGeneralization(f, parent, child)
		require.NoError(t, err)
		_, err = model.CreateGeneralization(f, parent, child)
		require.NoError(t, err)

		count := 0
		for range model.Select[*model.Generalization](f) {
			count++
		}
		assert.Equal(t, 2, count)
	})
}
