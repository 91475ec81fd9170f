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
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekReader(t *testing.T) {
	ctx := context.Background()
	buf := NewBuffer()
	require.NoError(t, NewSession(leafDialect()).Send(ctx, buf, newLeaf("a", nil), nil))

	p := NewPeekReader(onlyReader{buf})
	head, err := p.Peek(ctx)
	require.NoError(t, err)
	again, err := p.Peek(ctx)
	require.NoError(t, err)
	assert.Same(t, head, again)

	got, err := p.ReadBatch(ctx)
	require.NoError(t, err)
	assert.Same(t, head, got)

	_, err = p.ReadBatch(ctx)
	assert.ErrorIs(t, err, io.EOF)
	_, err = p.Peek(ctx)
	assert.ErrorIs(t, err, io.EOF)

	already := NewPeekReader(p)
	assert.Same(t, p, already)
}

func TestPeekReader_ReadsPastEOF(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(leafDialect())
	buf := NewBuffer()
	p := NewPeekReader(onlyReader{buf})

	_, err := p.Peek(ctx)
	require.ErrorIs(t, err, io.EOF)

	require.NoError(t, sess.Send(ctx, buf, newLeaf("late", nil), nil))
	head, err := p.Peek(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, head.Seq)

	m := NewMirror(NewSession(leafDialect()))
	got, err := m.Receive(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "late", got.(*leaf).Name())

	_, err = m.Receive(ctx, p)
	require.ErrorIs(t, err, io.EOF)

	l := newLeaf("later", nil)
	require.NoError(t, sess.Send(ctx, buf, l, nil))
	got, err = m.Receive(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, l.ID(), got.ID())
	assert.Equal(t, 2, m.Len())
}

func TestPeekReader_TransportErrorsAreSticky(t *testing.T) {
	ctx := context.Background()
	broken := errors.New("connection reset")
	r := &flakyReader{errs: []error{broken}, next: NewBuffer()}
	p := NewPeekReader(r)

	_, err := p.Peek(ctx)
	require.ErrorIs(t, err, broken)
	_, err = p.ReadBatch(ctx)
	assert.ErrorIs(t, err, broken)
	assert.Equal(t, 1, r.calls, "a failed reader is not read again")
}

// flakyReader returns errs in order, then reads from next.
type flakyReader struct {
	errs  []error
	next  BatchReader
	calls int
}

func (f *flakyReader) ReadBatch(ctx context.Context) (*Batch, error) {
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	return f.next.ReadBatch(ctx)
}

// onlyReader hides every method but ReadBatch.
type onlyReader struct{ r BatchReader }

func (o onlyReader) ReadBatch(ctx context.Context) (*Batch, error) { return o.r.ReadBatch(ctx) }

func TestMirror(t *testing.T) {
	ctx := context.Background()
	sender := NewSession(leafDialect(), WithBatchSize(2))
	buf := NewBuffer()

	first := newLeaf("first", newLeaf("child", nil))
	second := newLeaf("second", nil)
	renamed := first.withName("first, renamed")
	require.NoError(t, sender.Send(ctx, buf, first, nil))
	require.NoError(t, sender.Send(ctx, buf, second, nil))
	require.NoError(t, sender.Send(ctx, buf, renamed, first))

	m := NewMirror(NewSession(leafDialect()))
	r := NewPeekReader(onlyReader{buf})
	var versions int
	for {
		_, err := m.Receive(ctx, r)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		versions++
	}

	assert.Equal(t, 3, versions)
	assert.Equal(t, 2, m.Len())
	trees := m.Trees()
	require.Len(t, trees, 2)
	assert.Equal(t, renamed, trees[0])
	assert.Equal(t, second, trees[1])

	got, ok := m.Get(first.ID())
	require.True(t, ok)
	assert.Same(t, trees[0], got)
	_, ok = m.Get(newLeaf("x", nil).ID())
	assert.False(t, ok)
}

func TestMirror_Truncated(t *testing.T) {
	ctx := context.Background()
	buf := NewBuffer()
	require.NoError(t, NewSession(leafDialect(), WithBatchSize(1)).Send(ctx, buf, newLeaf("a", newLeaf("b", nil)), nil))
	cut := NewBuffer()
	batches := buf.Batches()
	for _, b := range batches[:len(batches)-1] {
		require.NoError(t, cut.WriteBatch(ctx, b))
	}

	m := NewMirror(NewSession(leafDialect()))
	_, err := m.Receive(ctx, NewPeekReader(cut))
	assert.ErrorIs(t, err, ErrUnexpectedEnd)
	assert.Zero(t, m.Len())
}

func TestTeeReader(t *testing.T) {
	ctx := context.Background()
	src := NewBuffer()
	require.NoError(t, NewSession(leafDialect(), WithBatchSize(1)).Send(ctx, src, newLeaf("a", nil), nil))

	copied := NewBuffer()
	got, err := NewSession(leafDialect()).Receive(ctx, TeeReader(src, copied), nil)
	require.NoError(t, err)
	assert.Equal(t, "a", got.(*leaf).Name())
	assert.Equal(t, src.Batches(), copied.Batches())

	src.Rewind()
	boom := errors.New("boom")
	_, err = TeeReader(src, failingWriter{err: boom}).ReadBatch(ctx)
	assert.ErrorIs(t, err, boom)
}
