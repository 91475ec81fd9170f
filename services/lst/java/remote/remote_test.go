// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package remote

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/lstsync/services/lst/java"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/java/tree/treetest"
	"github.com/AleutianAI/lstsync/services/lst/java/types"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

// transmit sends after against before through an in-memory buffer and
// receives it on the peer, which holds peerBefore.
func transmit(t *testing.T, sender, receiver *rpc.Session, after, before, peerBefore tree.J) (tree.J, *rpc.Buffer) {
	t.Helper()
	ctx := context.Background()
	buf := rpc.NewBuffer()
	require.NoError(t, sender.Send(ctx, buf, after, before))
	got, err := receiver.Receive(ctx, buf, peerBefore)
	require.NoError(t, err)
	j, ok := got.(tree.J)
	require.True(t, ok, "received %T", got)
	return j, buf
}

func kindName(j tree.J) string { return fmt.Sprintf("%T", j)[len("*tree."):] }

func TestRoundTrip_EveryKind(t *testing.T) {
	for _, sample := range treetest.All() {
		sample := sample
		t.Run(kindName(sample), func(t *testing.T) {
			got, _ := transmit(t, NewSession(), NewSession(), sample, nil, nil)
			assert.Equal(t, sample, got)
		})
	}
}

// reformatter appends a newline to every space and a suffix to every
// identifier, so every node in a tree changes.
type reformatter struct {
	*java.BaseVisitor[string]
}

func newReformatter() *reformatter {
	r := &reformatter{}
	r.BaseVisitor = java.NewBaseVisitor[string](r)
	return r
}

func (r *reformatter) VisitSpace(s *tree.Space, _ tree.SpaceLocation, _ string) *tree.Space {
	return s.WithWhitespace(s.Whitespace() + "\n")
}

func (r *reformatter) VisitIdentifier(id *tree.Identifier, suffix string) tree.J {
	out := r.BaseVisitor.VisitIdentifier(id, suffix).(*tree.Identifier)
	return out.WithSimpleName(out.SimpleName() + suffix)
}

func TestSync_EveryKindPatched(t *testing.T) {
	for _, sample := range treetest.All() {
		sample := sample
		t.Run(kindName(sample), func(t *testing.T) {
			after := newReformatter().Visit(sample, "2")
			require.NotSame(t, sample, after)
			require.Equal(t, sample.ID(), after.ID())

			got, buf := transmit(t, NewSession(), NewSession(), after, sample, sample)
			assert.Equal(t, after, got)
			events := buf.Events()
			require.NotEmpty(t, events)
			assert.Equal(t, rpc.Change, events[0].State)
		})
	}
}

func TestRoundTrip_FramedJSON(t *testing.T) {
	ctx := context.Background()
	sender := NewSession(rpc.WithBatchSize(7))
	receiver := NewSession()

	for _, sample := range treetest.All() {
		var wire bytes.Buffer
		require.NoError(t, sender.Send(ctx, rpc.NewFrameWriter(&wire), sample, nil), kindName(sample))
		got, err := receiver.Receive(ctx, rpc.NewFrameReader(&wire), nil)
		require.NoError(t, err, kindName(sample))
		assert.Equal(t, sample, got, kindName(sample))
	}
}

func TestSend_ShallowCopyIsNoChange(t *testing.T) {
	b := treetest.Binary()
	cp := *b

	got, buf := transmit(t, NewSession(), NewSession(), b, &cp, &cp)

	events := buf.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, rpc.Change, events[0].State)
	for _, e := range events[1 : len(events)-1] {
		assert.Equal(t, rpc.NoChange, e.State)
	}
	assert.Equal(t, rpc.End, events[len(events)-1].State)
	assert.Same(t, &cp, got)
}

func TestSend_IdenticalTreeIsOneEvent(t *testing.T) {
	cu := treetest.CompilationUnit()
	got, buf := transmit(t, NewSession(), NewSession(), cu, cu, cu)

	states := make([]rpc.EventState, 0, 2)
	for _, e := range buf.Events() {
		states = append(states, e.State)
	}
	assert.Equal(t, []rpc.EventState{rpc.NoChange, rpc.End}, states)
	assert.Same(t, cu, got)
}

func binaryOf(left, right tree.Expression, op tree.BinaryOperator) *tree.Binary {
	return tree.NewBinary(uuid.New(), tree.EmptySpace, treetest.Markers(), left,
		tree.NewLeftPadded(tree.SingleSpace, op, treetest.Markers()), right, nil)
}

func TestSync_OperatorPatchKeepsOperands(t *testing.T) {
	sender, receiver := NewSession(), NewSession()
	a := treetest.Ident("a")
	b := tree.NewIdentifier(uuid.New(), tree.SingleSpace, treetest.Markers(), nil, "b", treetest.SharedClass, nil)
	sum := tree.NewBinary(uuid.New(), tree.EmptySpace, treetest.Markers(), a,
		tree.NewLeftPadded(tree.SingleSpace, tree.BinaryAddition, treetest.Markers()), b, types.Int)

	first, _ := transmit(t, sender, receiver, sum, nil, nil)
	require.Equal(t, sum, first)
	peer := first.(*tree.Binary)

	diff := sum.WithOperator(tree.BinarySubtraction)
	second, buf := transmit(t, sender, receiver, diff, sum, peer)

	got := second.(*tree.Binary)
	assert.Equal(t, tree.BinarySubtraction, got.Operator())
	assert.Same(t, peer.Left(), got.Left())
	assert.Same(t, peer.Right(), got.Right())
	assert.Same(t, peer.Prefix(), got.Prefix())
	assert.Same(t, peer.Padding().Operator().Before(), got.Padding().Operator().Before())

	var adds []rpc.DiffEvent
	for _, e := range buf.Events() {
		if e.State == rpc.Add {
			adds = append(adds, e)
		}
	}
	require.Len(t, adds, 1)
	assert.Equal(t, rpc.TagEnum, adds[0].ValueType)
	assert.Equal(t, "Subtraction", adds[0].Value)
}

func TestSync_KindSubstitution(t *testing.T) {
	sender, receiver := NewSession(), NewSession()
	sum := treetest.Binary()
	peer, _ := transmit(t, sender, receiver, sum, nil, nil)

	lit := treetest.Literal()
	after := sum.WithLeft(lit)
	got, buf := transmit(t, sender, receiver, after, sum, peer)

	assert.Equal(t, after, got)
	assert.Same(t, peer.(*tree.Binary).Right(), got.(*tree.Binary).Right())

	var tags []string
	for _, e := range buf.Events() {
		if e.State == rpc.Add && e.ValueType != "" && e.ValueType != rpc.TagPositions {
			tags = append(tags, e.ValueType)
		}
	}
	assert.Contains(t, tags, TagLiteral)
}

func TestSync_ListElementReplaced(t *testing.T) {
	sender, receiver := NewSession(), NewSession()
	first, second, third := treetest.Empty(), treetest.Return(), treetest.Empty()
	block := tree.NewBlock(uuid.New(), tree.EmptySpace, treetest.Markers(),
		tree.NewRightPadded(false, tree.EmptySpace, treetest.Markers()),
		[]*tree.RightPadded[tree.Statement]{
			tree.NewRightPadded[tree.Statement](first, tree.EmptySpace, treetest.Markers()),
			tree.NewRightPadded[tree.Statement](second, tree.EmptySpace, treetest.Markers()),
			tree.NewRightPadded[tree.Statement](third, tree.EmptySpace, treetest.Markers()),
		}, tree.SingleSpace)
	peer, _ := transmit(t, sender, receiver, block, nil, nil)

	replacement := treetest.Break()
	after := block.WithStatements([]tree.Statement{first, replacement, third})
	got, _ := transmit(t, sender, receiver, after, block, peer)

	before := peer.(*tree.Block).Statements()
	stmts := got.(*tree.Block).Statements()
	require.Len(t, stmts, 3)
	assert.Same(t, before[0], stmts[0])
	assert.Equal(t, replacement, stmts[1])
	assert.Same(t, before[2], stmts[2])
	assert.Same(t, peer.(*tree.Block).Padding().Statements()[2], got.(*tree.Block).Padding().Statements()[2])
}

func TestSync_SharedTypesSentOnce(t *testing.T) {
	sender, receiver := NewSession(), NewSession()
	sum := binaryOf(treetest.Ident("a"), treetest.Ident("b"), tree.BinaryAddition)

	got, buf := transmit(t, sender, receiver, sum, nil, nil)

	full, refs := 0, 0
	for _, e := range buf.Events() {
		doc, ok := e.Value.(rpc.Doc)
		if !ok {
			continue
		}
		switch {
		case doc[rpc.KeyClass] == TagTypeClass:
			full++
		case doc[rpc.KeyClass] == nil && doc[rpc.KeyRef] != nil:
			refs++
		}
	}
	assert.Equal(t, 1, full)
	assert.Equal(t, 1, refs)

	bin := got.(*tree.Binary)
	left := bin.Left().(*tree.Identifier)
	right := bin.Right().(*tree.Identifier)
	assert.Same(t, left.Type(), right.Type())

	class := left.Type().(*types.Class)
	assert.Same(t, class, class.Members()[0].Owner(), "cycle resolves to the same shell")
	assert.Same(t, class, class.Methods()[0].DeclaringType())
}

func TestReceive_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown type tag", func(t *testing.T) {
		buf := rpc.NewBuffer()
		require.NoError(t, buf.WriteBatch(ctx, &rpc.Batch{TreeID: uuid.New(), Events: []rpc.DiffEvent{
			{State: rpc.Add, ValueType: "org.openrewrite.java.tree.J$Nope"},
		}}))
		got, err := NewSession().Receive(ctx, buf, nil)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, rpc.IsDesync(err))
		assert.ErrorIs(t, err, rpc.ErrUnknownType)
	})

	t.Run("unknown reference", func(t *testing.T) {
		sender := NewSession()
		primed := rpc.NewBuffer()
		require.NoError(t, sender.Send(ctx, primed, treetest.Ident("a"), nil))

		buf := rpc.NewBuffer()
		require.NoError(t, sender.Send(ctx, buf, treetest.Ident("b"), nil))
		_, err := NewSession().Receive(ctx, buf, nil)
		assert.True(t, rpc.IsDesync(err))
		assert.ErrorIs(t, err, rpc.ErrUnknownReference)
	})

	t.Run("truncated stream", func(t *testing.T) {
		buf := rpc.NewBuffer()
		require.NoError(t, NewSession().Send(ctx, buf, treetest.Binary(), nil))
		batches := buf.Batches()
		last := batches[len(batches)-1]
		cut := rpc.NewBuffer()
		for _, b := range batches[:len(batches)-1] {
			require.NoError(t, cut.WriteBatch(ctx, b))
		}
		require.NoError(t, cut.WriteBatch(ctx, &rpc.Batch{TreeID: last.TreeID, Seq: last.Seq, Events: last.Events[:len(last.Events)/2]}))

		_, err := NewSession().Receive(ctx, cut, nil)
		assert.ErrorIs(t, err, rpc.ErrUnexpectedEnd)
	})
}

func TestFactory(t *testing.T) {
	f := NewFactory()
	tags := f.Tags()
	assert.Len(t, tags, len(kindTags))
	for _, tag := range kindTags {
		assert.Contains(t, tags, tag)
	}
	assert.Len(t, Kinds(), len(kindTags))

	for _, sample := range treetest.All() {
		tag, ok := TagOf(sample)
		assert.True(t, ok, kindName(sample))
		assert.Contains(t, tags, tag)
	}
}

func TestCodecs(t *testing.T) {
	enc := rpc.NewEncoder(TypeCodec{}, TreeCodec{})
	dec := rpc.NewDecoder(TypeCodec{}, TreeCodec{})

	space := tree.FormatSpace("  // note\n\t")
	require.Len(t, space.Comments(), 1)

	values := []any{
		space,
		tree.NewTrailingComma(uuid.New(), tree.SingleSpace),
		tree.NewSemicolon(uuid.New()),
		tree.NewOmitParentheses(uuid.New()),
		treetest.Checksum(),
		treetest.FileAttributes(),
		treetest.UnicodeEscapes()[0],
		types.NewArray(types.Int, nil),
		types.NewParameterized(treetest.SharedClass, []types.JavaType{types.String}),
		types.NewGenericTypeVariable("T", types.Covariant, []types.JavaType{treetest.SharedClass}),
		types.NewUnion([]types.JavaType{treetest.SharedClass, types.Long}),
		types.NewIntersection([]types.JavaType{treetest.SharedClass}),
		types.Unknown,
	}
	for _, v := range values {
		got := dec.Decode(enc.Encode(v))
		assert.Equal(t, v, got, "%T", v)
	}
	assert.Equal(t, enc.Shared(), dec.Shared())
}
