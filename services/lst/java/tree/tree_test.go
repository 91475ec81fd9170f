// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tree_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/java/tree/treetest"
	"github.com/AleutianAI/lstsync/services/lst/java/types"
)

func TestWithers(t *testing.T) {
	b := treetest.Binary()

	t.Run("unchanged values return the receiver", func(t *testing.T) {
		assert.Same(t, b, b.WithID(b.ID()))
		assert.Same(t, b, b.WithPrefix(b.Prefix()))
		assert.Same(t, b, b.WithMarkers(b.Markers()))
		assert.Same(t, b, b.WithLeft(b.Left()))
		assert.Same(t, b, b.WithOperator(b.Operator()))
		assert.Same(t, b, b.WithType(b.Type()))
	})

	t.Run("changed values copy", func(t *testing.T) {
		lit := treetest.Literal()
		out := b.WithLeft(lit)
		require.NotSame(t, b, out)
		assert.Same(t, lit, out.Left())
		assert.Same(t, b.Right(), out.Right())
		assert.NotSame(t, lit, b.Left(), "the original is untouched")
	})

	t.Run("padded wither keeps padding", func(t *testing.T) {
		out := b.WithOperator(tree.BinarySubtraction)
		assert.Equal(t, tree.BinarySubtraction, out.Operator())
		assert.Same(t, b.Padding().Operator().Before(), out.Padding().Operator().Before())
		assert.Same(t, b.Padding().Operator().Markers(), out.Padding().Operator().Markers())
		assert.Equal(t, tree.BinaryAddition, b.Operator())
	})

	t.Run("optional padded field created on demand", func(t *testing.T) {
		as := tree.NewAssert(uuid.New(), tree.EmptySpace, lst.EmptyMarkers, treetest.Ident("ok"), nil)
		assert.Nil(t, as.Detail())
		msg := treetest.Ident("msg")
		out := as.WithDetail(msg)
		assert.Same(t, msg, out.Detail())
		assert.Same(t, tree.EmptySpace, out.Padding().Detail().Before())
		assert.Nil(t, out.WithDetail(nil).Padding().Detail())
	})
}

func TestListWithers(t *testing.T) {
	a, b, c := treetest.Empty(), treetest.Empty(), treetest.Empty()
	block := tree.NewBlock(uuid.New(), tree.EmptySpace, lst.EmptyMarkers,
		tree.NewRightPadded(false, tree.EmptySpace, lst.EmptyMarkers),
		[]*tree.RightPadded[tree.Statement]{
			tree.NewRightPadded[tree.Statement](a, tree.SingleSpace, lst.EmptyMarkers),
			tree.NewRightPadded[tree.Statement](b, tree.SingleSpace, lst.EmptyMarkers),
		}, tree.EmptySpace)

	assert.Same(t, block, block.WithStatements([]tree.Statement{a, b}))

	out := block.WithStatements([]tree.Statement{b, c})
	padded := out.Padding().Statements()
	require.Len(t, padded, 2)
	assert.Same(t, block.Padding().Statements()[1], padded[0], "b keeps its padding")
	assert.Same(t, tree.EmptySpace, padded[1].After(), "c gets fresh padding")

	assert.Nil(t, block.WithStatements(nil).Statements())
	assert.Nil(t, block.WithStatements([]tree.Statement{}).Padding().Statements())
}

func TestSliceGetters_CopyBeforeModify(t *testing.T) {
	cd := treetest.ClassDeclaration()
	orig := cd.LeadingAnnotations()
	require.Len(t, orig, 1)

	edited := append([]*tree.Annotation(nil), orig...)
	edited[0] = treetest.Annotation()
	out := cd.WithLeadingAnnotations(edited)
	require.NotSame(t, cd, out)
	assert.Same(t, edited[0], out.LeadingAnnotations()[0])
	assert.Same(t, orig[0], cd.LeadingAnnotations()[0], "the original is untouched")

	assert.Same(t, cd, cd.WithLeadingAnnotations(cd.LeadingAnnotations()))
}

func TestPaddingNilSafety(t *testing.T) {
	var lp *tree.LeftPadded[tree.Expression]
	var rp *tree.RightPadded[bool]
	var c *tree.Container[tree.Expression]

	assert.Nil(t, lp.Before())
	assert.Nil(t, lp.Element())
	assert.False(t, rp.Element())
	assert.Nil(t, rp.After())
	assert.Nil(t, c.Elements())
	assert.Zero(t, c.Len())
}

func TestFormatSpace(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		whitespace string
		comments   []string
	}{
		{"empty", "", "", nil},
		{"whitespace only", "\n\t", "\n\t", nil},
		{"line comment", "  // note\n\t", "  ", []string{"// note"}},
		{"block then line", " /* a */ // b\n", " ", []string{"/* a */", "// b"}},
		{"unterminated block", "/* open", "", []string{"/* open*/"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tree.FormatSpace(tt.in)
			assert.Equal(t, tt.whitespace, s.Whitespace())
			var got []string
			for _, c := range s.Comments() {
				got = append(got, c.(*tree.TextComment).Source())
			}
			assert.Equal(t, tt.comments, got)
			if tt.name != "unterminated block" {
				assert.Equal(t, tt.in, s.String())
			}
		})
	}

	assert.Same(t, tree.EmptySpace, tree.FormatSpace(""))
	assert.True(t, (*tree.Space)(nil).IsEmpty())
}

func TestSpaceWithers(t *testing.T) {
	s := tree.FormatSpace(" // x\n")
	assert.Same(t, s, s.WithWhitespace(" "))
	assert.Same(t, s, s.WithComments(s.Comments()))

	bare := s.WithComments(nil)
	assert.Empty(t, bare.Comments())
	assert.Equal(t, " ", bare.String())

	tc := s.Comments()[0].(*tree.TextComment)
	assert.Same(t, tc, tc.WithText(tc.Text()))
	assert.Same(t, tc, tc.WithMultiline(false))
	assert.Equal(t, "/* x*/", tc.WithMultiline(true).Source())
}

func TestLocations(t *testing.T) {
	assert.Equal(t, "BINARY_PREFIX", tree.SpaceBinaryPrefix.String())
	assert.Equal(t, "BINARY_OPERATOR", tree.LeftPaddedBinaryOperator.String())
	assert.Equal(t, tree.SpaceBinaryOperator, tree.LeftPaddedBinaryOperator.BeforeLocation())
	assert.Equal(t, "Location(-1)", tree.SpaceLocation(-1).String())
}

func TestComputedTypes(t *testing.T) {
	mi := treetest.MethodInvocation()
	assert.Same(t, types.Void, mi.Type(), "a method invocation has its method's return type")

	for _, j := range treetest.All() {
		e, ok := j.(tree.Expression)
		if !ok {
			continue
		}
		assert.NotPanics(t, func() { _ = e.Type() }, "%T", j)
	}
}

type counter struct {
	tree.Visitor[*int]
}

func TestAccept(t *testing.T) {
	assert.Panics(t, func() {
		tree.Accept[*int](nil, counter{}, nil)
	})
}
