// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlkit/umlkit/internal/model"
)

func TestCollection_AppendPreservesInsertionOrder(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	cls := f.CreateClass()

	names := []string{"id", "username", "email"}
	for _, name := range names {
		attr := f.CreateProperty()
		attr.SetName(name)
		require.NoError(t, cls.OwnedAttributes().Append(attr))
	}

	items := cls.OwnedAttributes().Items()
	require.Len(t, items, 3)
	for i, name := range names {
		assert.Equal(t, name, items[i].Name())
	}
}

func TestCollection_AppendTransfersOwnership(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	first := f.CreateClass()
	second := f.CreateClass()

	attr := f.CreateProperty()
	require.NoError(t, first.OwnedAttributes().Append(attr))
	assert.Same(t, first, attr.Owner())

	// Re-assigning ownership removes the attribute from the prior owner.
	require.NoError(t, second.OwnedAttributes().Append(attr))
	assert.Same(t, second, attr.Owner())
	assert.Equal(t, 0, first.OwnedAttributes().Len())
	assert.Equal(t, 1, second.OwnedAttributes().Len())
	assert.False(t, first.OwnedAttributes().Contains(attr))
}

func TestCollection_AppendSameCollectionIsNoOp(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	cls := f.CreateClass()

	attr := f.CreateProperty()
	require.NoError(t, cls.OwnedAttributes().Append(attr))
	require.NoError(t, cls.OwnedAttributes().Append(attr))

	assert.Equal(t, 1, cls.OwnedAttributes().Len())
}

func TestCollection_AppendNil(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	cls := f.CreateClass()

	err := cls.OwnedAttributes().Append(nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestCollection_Remove(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	cls := f.CreateClass()

	attr := f.CreateProperty()
	require.NoError(t, cls.OwnedAttributes().Append(attr))

	require.NoError(t, cls.OwnedAttributes().Remove(attr))
	assert.Equal(t, 0, cls.OwnedAttributes().Len())
	assert.Nil(t, attr.Owner())
}

func TestCollection_RemoveNonMember(t *testing.T) {
	f := model.NewFactory(model.NewStore())
	cls := f.CreateClass()
	stray := f.CreateProperty()

	err := cls.OwnedAttributes().Remove(stray)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCollection_OwnershipRoundTrip(t *testing.T) {
	// After an arbitrary sequence of appends, transfers, and removes, each
	// child's owner matches the collection that lists it and every
	// collection validates cleanly.
	f := model.NewFactory(model.NewStore())
	a := f.CreateClass()
	b := f.CreateClass()

	attrs := make([]*model.Property, 5)
	for i := range attrs {
		attrs[i] = f.CreateProperty()
		require.NoError(t, a.OwnedAttributes().Append(attrs[i]))
	}

	require.NoError(t, b.OwnedAttributes().Append(attrs[1]))
	require.NoError(t, b.OwnedAttributes().Append(attrs[3]))
	require.NoError(t, a.OwnedAttributes().Remove(attrs[0]))
	require.NoError(t, a.OwnedAttributes().Append(attrs[3])) // transfer back

	require.NoError(t, a.OwnedAttributes().Validate())
	require.NoError(t, b.OwnedAttributes().Validate())

	for _, attr := range attrs {
		owner := attr.Owner()
		switch owner {
		case a:
			assert.True(t, a.OwnedAttributes().Contains(attr))
			assert.False(t, b.OwnedAttributes().Contains(attr))
		case b:
			assert.True(t, b.OwnedAttributes().Contains(attr))
			assert.False(t, a.OwnedAttributes().Contains(attr))
		case nil:
			assert.False(t, a.OwnedAttributes().Contains(attr))
			assert.False(t, b.OwnedAttributes().Contains(attr))
		default:
			t.Fatalf("unexpected owner %v", owner)
		}
	}

	assert.Equal(t, []*model.Property{attrs[2], attrs[4], attrs[3]}, a.OwnedAttributes().Items())
	assert.Equal(t, []*model.Property{attrs[1]}, b.OwnedAttributes().Items())
}
