// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package journal

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/remote"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/java/tree/treetest"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func batch(seq int, states ...rpc.EventState) *rpc.Batch {
	b := &rpc.Batch{TreeID: uuid.New(), Seq: seq}
	for _, st := range states {
		b.Events = append(b.Events, rpc.DiffEvent{State: st})
	}
	return b
}

func TestStore_AppendAndRead(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	first, second := batch(0, rpc.NoChange), batch(1, rpc.End)
	pos, err := s.Append(ctx, "a", first)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), pos)
	pos, err = s.Append(ctx, "a", second)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), pos)

	n, err := s.Len("a")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)

	r := s.Reader("a")
	peeked, err := r.Peek(ctx)
	require.NoError(t, err)
	got, err := r.ReadBatch(ctx)
	require.NoError(t, err)
	assert.Same(t, peeked, got)
	assert.Equal(t, first.TreeID, got.TreeID)
	assert.Equal(t, []rpc.DiffEvent{{State: rpc.NoChange}}, got.Events)

	got, err = r.ReadBatch(ctx)
	require.NoError(t, err)
	assert.True(t, got.Last())
	assert.Equal(t, uint64(2), r.Position())

	_, err = r.ReadBatch(ctx)
	assert.ErrorIs(t, err, io.EOF)

	// Appends after the reader hit the end become visible.
	_, err = s.Append(ctx, "a", batch(0, rpc.Delete))
	require.NoError(t, err)
	got, err = r.ReadBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, rpc.Delete, got.Events[0].State)
}

func TestStore_Streams(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	for _, name := range []string{"beta", "alpha", "alpha2"} {
		_, err := s.Append(ctx, name, batch(0, rpc.End))
		require.NoError(t, err)
	}
	names, err := s.Streams()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "alpha2", "beta"}, names)

	require.NoError(t, s.Drop("alpha"))
	names, err = s.Streams()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha2", "beta"}, names)

	n, err := s.Len("alpha2")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n, "dropping a stream leaves streams sharing its prefix")

	_, err = s.Reader("alpha").ReadBatch(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestStore_Meta(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	meta, err := s.Meta("a")
	require.NoError(t, err)
	assert.Nil(t, meta)

	_, err = s.Append(ctx, "a", batch(0, rpc.End))
	require.NoError(t, err)
	require.NoError(t, s.SetMeta("a", map[string]string{"source": "A.java"}))
	meta, err = s.Meta("a")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"source": "A.java"}, meta)

	require.NoError(t, s.Drop("a"))
	meta, err = s.Meta("a")
	require.NoError(t, err)
	assert.Nil(t, meta)
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	tests := []struct {
		name   string
		stream string
	}{
		{"empty", ""},
		{"nul", "a\x00b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Append(ctx, tt.stream, batch(0))
			assert.ErrorIs(t, err, ErrInvalidStream)
			_, err = s.Reader(tt.stream).ReadBatch(ctx)
			assert.ErrorIs(t, err, ErrInvalidStream)
		})
	}

	t.Run("canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.Append(canceled, "a", batch(0))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("closed", func(t *testing.T) {
		closed, err := OpenInMemory()
		require.NoError(t, err)
		require.NoError(t, closed.Close())
		require.NoError(t, closed.Close())
		_, err = closed.Append(ctx, "a", batch(0))
		assert.ErrorIs(t, err, ErrClosed)
	})
}

func TestOpen_Persistent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cfg := DefaultConfig(dir)
	cfg.GCInterval = 0
	s, err := Open(cfg)
	require.NoError(t, err)
	_, err = s.Append(ctx, "s", batch(0, rpc.End))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(cfg)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.Len("s")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	_, err = Open(Config{})
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	w := s.Writer("session")
	sender := remote.NewSession(rpc.WithBatchSize(5))

	sum := treetest.Binary()
	unit := treetest.CompilationUnit()
	patched := sum.WithOperator(tree.BinarySubtraction)

	require.NoError(t, sender.Send(ctx, w, sum, nil))
	require.NoError(t, sender.Send(ctx, w, unit, nil))
	require.NoError(t, sender.Send(ctx, w, patched, sum))

	var seen []lst.Tree
	trees, err := Replay(ctx, s, "session", remote.NewSession(), func(t lst.Tree) error {
		seen = append(seen, t)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, 3)
	require.Len(t, trees, 2)

	assert.Equal(t, patched, trees[0])
	assert.Equal(t, unit, trees[1])
	first, last := seen[0].(*tree.Binary), trees[0].(*tree.Binary)
	assert.Same(t, first.Left(), last.Left(), "the patch reuses the replayed operands")

	t.Run("callback error stops replay", func(t *testing.T) {
		stop := errors.New("stop")
		_, err := Replay(ctx, s, "session", remote.NewSession(), func(lst.Tree) error { return stop })
		assert.ErrorIs(t, err, stop)
	})

	t.Run("empty stream", func(t *testing.T) {
		trees, err := Replay(ctx, s, "nothing", remote.NewSession(), nil)
		require.NoError(t, err)
		assert.Empty(t, trees)
	})

	t.Run("truncated stream", func(t *testing.T) {
		full := s.Reader("session")
		short := s.Writer("short")
		b, err := full.ReadBatch(ctx)
		require.NoError(t, err)
		require.False(t, b.Last())
		require.NoError(t, short.WriteBatch(ctx, b))

		_, err = Replay(ctx, s, "short", remote.NewSession(), nil)
		assert.ErrorIs(t, err, rpc.ErrUnexpectedEnd)
	})
}
