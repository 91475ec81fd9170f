// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package lst

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkers(t *testing.T) {
	t.Run("add is idempotent per id", func(t *testing.T) {
		sr := NewSearchResult(uuid.New(), "found")
		m := EmptyMarkers.Add(sr)
		require.Len(t, m.Markers(), 1)
		assert.Same(t, m, m.Add(sr))
		assert.Empty(t, EmptyMarkers.Markers(), "shared empty set must stay empty")
	})

	t.Run("with short-circuits on identity", func(t *testing.T) {
		m := BuildMarkers(NewSearchResult(uuid.New(), ""))
		assert.Same(t, m, m.WithID(m.ID()))
		assert.Same(t, m, m.WithMarkers(m.Markers()))
		assert.NotSame(t, m, m.WithID(uuid.New()))
	})

	t.Run("find and remove", func(t *testing.T) {
		id := uuid.New()
		m := BuildMarkers(NewSearchResult(id, "x"))

		sr, ok := FindMarker[*SearchResult](m)
		require.True(t, ok)
		assert.Equal(t, "x", sr.Description())

		removed := m.RemoveByID(id)
		assert.Nil(t, removed.Markers())
		_, ok = FindMarker[*SearchResult](removed)
		assert.False(t, ok)
	})

	t.Run("nil id is replaced", func(t *testing.T) {
		assert.NotEqual(t, uuid.Nil, NewMarkers(uuid.Nil).ID())
	})
}

func TestCursor(t *testing.T) {
	root := RootCursor()
	m := BuildMarkers()
	withMarkers := root.Push(m)
	withString := withMarkers.Push("padding")

	assert.True(t, root.IsRoot())
	assert.Same(t, withMarkers, withString.Parent())
	assert.Equal(t, []any{"padding", m}, withString.Path())

	got, ok := FirstEnclosing[*Markers](withString)
	require.True(t, ok)
	assert.Same(t, m, got)

	_, ok = FirstEnclosing[int](withString)
	assert.False(t, ok)

	_, ok = root.ParentTree()
	assert.False(t, ok)

	// Push never mutates the parent frame.
	other := withMarkers.Push("other")
	assert.Equal(t, "padding", withString.Value())
	assert.Equal(t, "other", other.Value())
}
