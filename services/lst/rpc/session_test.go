// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package rpc

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/lstsync/services/lst"
)

// leaf is a minimal tree dialect: a name, a counter and an optional child.
type leaf struct {
	id      uuid.UUID
	markers *lst.Markers
	name    string
	count   int32
	child   *leaf
}

func newLeaf(name string, child *leaf) *leaf {
	return &leaf{id: uuid.New(), markers: lst.EmptyMarkers, name: name, count: 1, child: child}
}

func (l *leaf) ID() uuid.UUID         { return l.id }
func (l *leaf) Markers() *lst.Markers { return l.markers }
func (l *leaf) Name() string          { return l.name }
func (l *leaf) Count() int32          { return l.count }
func (l *leaf) Child() *leaf          { return l.child }

func (l *leaf) withName(name string) *leaf {
	n := *l
	n.name = name
	return &n
}

const leafTag = "test.Leaf"

type leafSender struct{}

func (leafSender) SendTree(t lst.Tree, ctx *SenderContext) {
	l := t.(*leaf)
	SendValue(ctx, l, (*leaf).ID, UUID)
	SendNode(ctx, l, (*leaf).Markers, SendMarkers)
	SendValue(ctx, l, (*leaf).Name, Primitive)
	SendValue(ctx, l, (*leaf).Count, Primitive)
	SendNode(ctx, l, (*leaf).Child, func(c *leaf, ctx *SenderContext) { ctx.SendTree(c) })
}

type leafReceiver struct{}

func (leafReceiver) ReceiveTree(before lst.Tree, ctx *ReceiverContext) lst.Tree {
	b := &leaf{}
	if !lst.IsNil(before) {
		b = before.(*leaf)
	} else if ctx.Tag() != leafTag {
		Desync("leaf", ErrUnknownType, "%q", ctx.Tag())
	}
	out := *b
	out.id = ReceiveValue(ctx, b.ID(), UUID)
	out.markers = ReceiveNode(ctx, b.Markers(), ReceiveMarkers)
	out.name = ReceiveValue(ctx, b.name, Primitive)
	out.count = ReceiveValue(ctx, b.count, Primitive)
	out.child = ReceiveNode(ctx, b.child, func(c *leaf, ctx *ReceiverContext) *leaf {
		var in lst.Tree
		if c != nil {
			in = c
		}
		return ctx.ReceiveTree(in).(*leaf)
	})
	if out == *b {
		return b
	}
	return &out
}

func leafDialect() *Dialect {
	return &Dialect{
		Name: "leaf",
		TagOf: func(t lst.Tree) (string, bool) {
			_, ok := t.(*leaf)
			return leafTag, ok
		},
		NewSender:   func() TreeSender { return leafSender{} },
		NewReceiver: func() TreeReceiver { return leafReceiver{} },
	}
}

func states(events []DiffEvent) []EventState {
	out := make([]EventState, len(events))
	for i, e := range events {
		out[i] = e.State
	}
	return out
}

func TestSession_RoundTrip(t *testing.T) {
	ctx := context.Background()
	sender, receiver := NewSession(leafDialect()), NewSession(leafDialect())

	root := newLeaf("root", newLeaf("child", nil))
	buf := NewBuffer()
	require.NoError(t, sender.Send(ctx, buf, root, nil))
	got, err := receiver.Receive(ctx, buf, nil)
	require.NoError(t, err)
	require.Equal(t, root, got)

	t.Run("patch touches one field", func(t *testing.T) {
		renamed := root.withName("renamed")
		buf := NewBuffer()
		require.NoError(t, sender.Send(ctx, buf, renamed, root))
		assert.Equal(t,
			[]EventState{Change, NoChange, NoChange, Add, NoChange, NoChange, End},
			states(buf.Events()))

		patched, err := receiver.Receive(ctx, buf, got)
		require.NoError(t, err)
		assert.Equal(t, "renamed", patched.(*leaf).Name())
		assert.Same(t, got.(*leaf).Child(), patched.(*leaf).Child())
	})

	t.Run("unchanged tree", func(t *testing.T) {
		buf := NewBuffer()
		require.NoError(t, sender.Send(ctx, buf, root, root))
		assert.Equal(t, []EventState{NoChange, End}, states(buf.Events()))

		same, err := receiver.Receive(ctx, buf, got)
		require.NoError(t, err)
		assert.Same(t, got, same)
	})

	t.Run("child deleted", func(t *testing.T) {
		orphan := *root
		orphan.child = nil
		buf := NewBuffer()
		require.NoError(t, sender.Send(ctx, buf, &orphan, root))
		out, err := receiver.Receive(ctx, buf, got)
		require.NoError(t, err)
		assert.Nil(t, out.(*leaf).Child())
	})
}

func TestSession_FramedJSON(t *testing.T) {
	ctx := context.Background()
	sender := NewSession(leafDialect(), WithBatchSize(2))
	receiver := NewSession(leafDialect())

	root := newLeaf("a", newLeaf("b", newLeaf("c", nil)))
	var wire bytes.Buffer
	require.NoError(t, sender.Send(ctx, NewFrameWriter(&wire), root, nil))
	got, err := receiver.Receive(ctx, NewFrameReader(&wire), nil)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

type failingWriter struct{ err error }

func (f failingWriter) WriteBatch(context.Context, *Batch) error { return f.err }

func TestSession_Errors(t *testing.T) {
	ctx := context.Background()
	root := newLeaf("root", nil)

	t.Run("nil tree", func(t *testing.T) {
		err := NewSession(leafDialect()).Send(ctx, NewBuffer(), nil, nil)
		assert.ErrorIs(t, err, ErrNilTree)
	})

	t.Run("writer failure is not a protocol error", func(t *testing.T) {
		boom := errors.New("boom")
		err := NewSession(leafDialect()).Send(ctx, failingWriter{err: boom}, root, nil)
		assert.ErrorIs(t, err, boom)
		var pe *ProtocolError
		assert.False(t, errors.As(err, &pe))
	})

	t.Run("unsendable tree is an implementation gap", func(t *testing.T) {
		d := leafDialect()
		d.TagOf = func(lst.Tree) (string, bool) { return "", false }
		err := NewSession(d).Send(ctx, NewBuffer(), root, nil)
		assert.True(t, IsImplementationGap(err))
		assert.ErrorIs(t, err, ErrNotImplemented)
	})

	t.Run("missing end", func(t *testing.T) {
		buf := NewBuffer()
		require.NoError(t, NewSession(leafDialect()).Send(ctx, buf, root, nil))
		events := buf.Events()
		cut := NewBuffer()
		require.NoError(t, cut.WriteBatch(ctx, &Batch{TreeID: root.id, Events: events[:len(events)-1]}))

		got, err := NewSession(leafDialect()).Receive(ctx, cut, nil)
		assert.Nil(t, got)
		assert.True(t, IsDesync(err))
		assert.ErrorIs(t, err, ErrUnexpectedEnd)
	})

	t.Run("trailing events", func(t *testing.T) {
		buf := NewBuffer()
		require.NoError(t, NewSession(leafDialect()).Send(ctx, buf, root, nil))
		events := buf.Events()
		extra := append(append([]DiffEvent(nil), events[:len(events)-1]...), DiffEvent{State: NoChange}, DiffEvent{State: End})
		tampered := NewBuffer()
		require.NoError(t, tampered.WriteBatch(ctx, &Batch{TreeID: root.id, Events: extra}))

		_, err := NewSession(leafDialect()).Receive(ctx, tampered, nil)
		assert.ErrorIs(t, err, ErrDesync)
	})

	t.Run("batch out of sequence", func(t *testing.T) {
		buf := NewBuffer()
		require.NoError(t, buf.WriteBatch(ctx, &Batch{TreeID: root.id, Seq: 1, Events: []DiffEvent{{State: NoChange}}}))
		_, err := NewSession(leafDialect()).Receive(ctx, buf, nil)
		assert.ErrorIs(t, err, ErrDesync)
	})

	t.Run("change without a previous tree", func(t *testing.T) {
		buf := NewBuffer()
		require.NoError(t, buf.WriteBatch(ctx, &Batch{TreeID: root.id, Events: []DiffEvent{{State: Change}}}))
		_, err := NewSession(leafDialect()).Receive(ctx, buf, nil)
		assert.True(t, IsDesync(err))
	})

	t.Run("unknown tag", func(t *testing.T) {
		buf := NewBuffer()
		require.NoError(t, buf.WriteBatch(ctx, &Batch{TreeID: root.id, Events: []DiffEvent{{State: Add, ValueType: "test.Other"}}}))
		_, err := NewSession(leafDialect()).Receive(ctx, buf, nil)
		assert.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("other panics propagate", func(t *testing.T) {
		d := leafDialect()
		d.NewSender = func() TreeSender { return panicSender{} }
		assert.PanicsWithValue(t, "bug", func() {
			_ = NewSession(d).Send(ctx, NewBuffer(), root, nil)
		})
	})
}

type panicSender struct{}

func (panicSender) SendTree(lst.Tree, *SenderContext) { panic("bug") }

func TestSession_Fork(t *testing.T) {
	s := NewSession(leafDialect(), WithBatchSize(3))
	s.enc.refs["x"] = 1
	f := s.Fork()
	assert.Zero(t, f.enc.Shared())
	assert.Zero(t, f.dec.Shared())
	assert.Equal(t, 3, f.opts.batchSize)
	assert.Same(t, s.Dialect(), f.Dialect())
}

func TestSendList_Positions(t *testing.T) {
	a, b, c := newLeaf("a", nil), newLeaf("b", nil), newLeaf("c", nil)
	d := newLeaf("d", nil)

	buf := NewBuffer()
	q := newSendQueue(context.Background(), buf, uuid.New(), 0)
	ctx := &SenderContext{q: q, enc: NewEncoder(), dialect: leafDialect(), sender: leafSender{}}
	id := func(l *leaf) any { return l.id }
	sendList(ctx, []*leaf{c, d, a}, []*leaf{a, b, c}, id, func(after, before *leaf) {
		sendNode(ctx, after, before, func(l *leaf, c *SenderContext) { c.SendTree(l) })
	})
	q.flush()

	events := buf.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, Change, events[0].State)
	assert.Equal(t, []int{2, -1, 0}, events[0].Value)
	assert.Equal(t, NoChange, events[1].State)
	assert.Equal(t, Add, events[2].State)
	assert.Equal(t, leafTag, events[2].ValueType)
	assert.Equal(t, NoChange, events[len(events)-1].State)
}
