// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package java_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/java/tree/treetest"
)

type renamer struct {
	*java.BaseVisitor[string]
	parents []lst.Tree
}

func newRenamer() *renamer {
	r := &renamer{}
	r.BaseVisitor = java.NewBaseVisitor[string](r)
	return r
}

func (r *renamer) VisitIdentifier(id *tree.Identifier, to string) tree.J {
	if parent, ok := r.Cursor().ParentTree(); ok {
		r.parents = append(r.parents, parent)
	}
	out := r.BaseVisitor.VisitIdentifier(id, to)
	return out.(*tree.Identifier).WithSimpleName(to)
}

// folder replaces every binary expression with a literal.
type folder struct {
	*java.BaseVisitor[int]
}

func newFolder() *folder {
	f := &folder{}
	f.BaseVisitor = java.NewBaseVisitor[int](f)
	return f
}

func (f *folder) VisitExpression(e tree.Expression, p int) tree.J {
	if _, ok := e.(*tree.Binary); ok {
		return treetest.Literal()
	}
	return f.BaseVisitor.VisitExpression(e, p)
}

type emptyRemover struct {
	*java.BaseVisitor[int]
}

func (r *emptyRemover) VisitStatement(s tree.Statement, p int) tree.J {
	if _, ok := s.(*tree.Empty); ok {
		return nil
	}
	return r.BaseVisitor.VisitStatement(s, p)
}

type misfit struct {
	*java.BaseVisitor[int]
}

func (m *misfit) VisitIdentifier(*tree.Identifier, int) tree.J { return treetest.Package() }

func TestBaseVisitor_IdentityOnEveryKind(t *testing.T) {
	v := java.NewBaseVisitor[int](nil)
	for _, sample := range treetest.All() {
		got := v.Visit(sample, 0)
		assert.Same(t, sample, got, "%T", sample)
		assert.True(t, v.Cursor().IsRoot(), "%T left the cursor pushed", sample)
	}
	assert.Nil(t, v.Visit(nil, 0))
}

func TestVisitor_RenameKeepsUntouchedParts(t *testing.T) {
	b := treetest.Binary()
	r := newRenamer()

	got, ok := r.Visit(b, "y").(*tree.Binary)
	require.True(t, ok)

	assert.NotSame(t, b, got)
	assert.Equal(t, "y", got.Left().(*tree.Identifier).SimpleName())
	assert.Equal(t, "y", got.Right().(*tree.Identifier).SimpleName())
	assert.Equal(t, b.ID(), got.ID())
	assert.Same(t, b.Prefix(), got.Prefix())
	assert.Same(t, b.Padding().Operator(), got.Padding().Operator())
	assert.Equal(t, "x", b.Left().(*tree.Identifier).SimpleName(), "input must not change")

	require.Len(t, r.parents, 2)
	for _, p := range r.parents {
		assert.Same(t, b, p)
	}
	assert.True(t, r.Cursor().IsRoot())
}

func TestVisitor_KindSubstitution(t *testing.T) {
	f := newFolder()

	t.Run("at the root", func(t *testing.T) {
		got := f.Visit(treetest.Binary(), 0)
		assert.IsType(t, &tree.Literal{}, got)
	})

	t.Run("inside an expression slot", func(t *testing.T) {
		a := tree.NewAssert(uuid.New(), tree.EmptySpace, lst.EmptyMarkers, treetest.Binary(), nil)
		got, ok := f.Visit(a, 0).(*tree.Assert)
		require.True(t, ok)
		assert.IsType(t, &tree.Literal{}, got.Condition())
		assert.Nil(t, got.Detail())
	})

	t.Run("untouched kinds pass through", func(t *testing.T) {
		id := treetest.Ident("a")
		assert.Same(t, id, f.Visit(id, 0))
	})
}

func TestVisitor_DeleteFromList(t *testing.T) {
	r := &emptyRemover{}
	r.BaseVisitor = java.NewBaseVisitor[int](r)

	block := treetest.Block()
	require.Len(t, block.Statements(), 1)

	got, ok := r.Visit(block, 0).(*tree.Block)
	require.True(t, ok)
	assert.Empty(t, got.Statements())
	assert.Len(t, block.Statements(), 1)
}

func TestVisitor_ReplacementMustFitSlot(t *testing.T) {
	m := &misfit{}
	m.BaseVisitor = java.NewBaseVisitor[int](m)

	assert.Panics(t, func() { m.Visit(treetest.Binary(), 0) })
}

func TestKindCounts(t *testing.T) {
	counts := java.KindCounts(treetest.Binary())
	assert.Equal(t, map[string]int{"Binary": 1, "Identifier": 2}, counts)
	assert.Equal(t, "Binary", java.KindName(treetest.Binary()))
}
