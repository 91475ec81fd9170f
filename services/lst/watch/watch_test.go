// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package watch

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/parser"
	"github.com/AleutianAI/lstsync/services/lst/java/remote"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

func TestOpString(t *testing.T) {
	assert.Equal(t, "create", OpCreate.String())
	assert.Equal(t, "write", OpWrite.String())
	assert.Equal(t, "remove", OpRemove.String())
	assert.Equal(t, "rename", OpRename.String())
	assert.Equal(t, "unknown", Op(42).String())
}

func TestMatchExtension(t *testing.T) {
	exts := []string{".java"}
	assert.True(t, MatchExtension("src/A.java", exts))
	assert.True(t, MatchExtension("src/A.JAVA", exts))
	assert.False(t, MatchExtension("src/A.java.swp", exts))
	assert.False(t, MatchExtension("src/A", exts))
	assert.True(t, MatchExtension("anything", nil))
}

func TestDeduplicate(t *testing.T) {
	t0 := time.Now()
	got := deduplicate([]Change{
		{Path: "a", Op: OpCreate, Time: t0},
		{Path: "b", Op: OpWrite, Time: t0},
		{Path: "a", Op: OpWrite, Time: t0.Add(time.Second)},
		{Path: "b", Op: OpRemove, Time: t0.Add(time.Second)},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Path)
	assert.Equal(t, OpCreate, got[0].Op)
	assert.Equal(t, t0.Add(time.Second), got[0].Time)
	assert.Equal(t, "b", got[1].Path)
	assert.Equal(t, OpRemove, got[1].Op)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcher(t *testing.T) {
	root := t.TempDir()
	got := make(chan []Change, 10)
	opts := DefaultOptions()
	opts.Debounce = 50 * time.Millisecond

	w, err := New(root, func(_ context.Context, changes []Change) { got <- changes }, opts)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()
	assert.True(t, w.IsWatching())

	writeFile(t, filepath.Join(root, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(root, "A.java"), "class A {}\n")

	select {
	case changes := <-got:
		require.Len(t, changes, 1)
		assert.Equal(t, filepath.Join(root, "A.java"), changes[0].Path)
	case <-ctx.Done():
		t.Fatal("no changes delivered")
	}

	t.Run("new directories are watched", func(t *testing.T) {
		dir := filepath.Join(root, "pkg")
		require.NoError(t, os.Mkdir(dir, 0o755))
		// The directory is added asynchronously.
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			writeFile(t, filepath.Join(dir, "B.java"), "class B {}\n")
			select {
			case changes := <-got:
				for _, c := range changes {
					if c.Path == filepath.Join(dir, "B.java") {
						return
					}
				}
			case <-time.After(200 * time.Millisecond):
			}
		}
		t.Fatal("change in new directory not delivered")
	})

	w.Stop()
	assert.False(t, w.IsWatching())
}

func TestWatcher_MissingRoot(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing"), nil, DefaultOptions())
	require.NoError(t, err)
	assert.Error(t, w.Start(context.Background()))
	assert.False(t, w.IsWatching())
	w.Stop()
}

// receiveAll drains buf into a mirror.
func receiveAll(t *testing.T, m *rpc.Mirror, r rpc.PeekReader) int {
	t.Helper()
	n := 0
	for {
		_, err := m.Receive(context.Background(), r)
		if errors.Is(err, io.EOF) {
			return n
		}
		require.NoError(t, err)
		n++
	}
}

func className(t *testing.T, tr lst.Tree) string {
	t.Helper()
	cu, ok := tr.(*tree.CompilationUnit)
	require.True(t, ok)
	require.Len(t, cu.Classes(), 1)
	return cu.Classes()[0].Name().SimpleName()
}

func TestSyncer(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	a := filepath.Join(root, "src", "A.java")
	b := filepath.Join(root, "src", "B.java")
	writeFile(t, a, "class A { int x = 1; }\n")
	writeFile(t, b, "class B {}\n")
	writeFile(t, filepath.Join(root, "README.md"), "# readme\n")
	writeFile(t, filepath.Join(root, "build", "Gen.java"), "class Gen {}\n")

	buf := rpc.NewBuffer()
	s := NewSyncer(parser.New(), remote.NewSession(rpc.WithBatchSize(7)), buf, SyncerOptions{
		Extensions: []string{".java"},
		Ignore:     []string{"build"},
		Limiter:    rate.NewLimiter(rate.Inf, 1),
		Workers:    2,
	})

	sent, err := s.SyncDir(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, 2, s.Tracked())

	m := rpc.NewMirror(remote.NewSession())
	r := rpc.NewPeekReader(buf)
	assert.Equal(t, 2, receiveAll(t, m, r))
	trees := m.Trees()
	require.Len(t, trees, 2)
	assert.Equal(t, "A", className(t, trees[0]))
	assert.Equal(t, "B", className(t, trees[1]))
	firstID := trees[0].ID()

	t.Run("unchanged file is not sent", func(t *testing.T) {
		ok, err := s.Sync(ctx, a)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("changed file keeps its tree id", func(t *testing.T) {
		writeFile(t, a, "class A { int x = 2; }\n")
		require.NoError(t, s.HandleChanges(ctx, []Change{{Path: a, Op: OpWrite}}))
		assert.Equal(t, 1, receiveAll(t, m, r))
		assert.Equal(t, 2, m.Len())
		got, ok := m.Get(firstID)
		require.True(t, ok)
		assert.Equal(t, s.sent[a], got)
	})

	t.Run("parse failures are skipped", func(t *testing.T) {
		bad := filepath.Join(root, "src", "Bad.java")
		writeFile(t, bad, "package a;\n\nint x = 1;\n")
		require.NoError(t, s.HandleChanges(ctx, []Change{
			{Path: bad, Op: OpCreate},
			{Path: filepath.Join(root, "src", "Gone.java"), Op: OpWrite},
			{Path: filepath.Join(root, "README.md"), Op: OpWrite},
		}))
		assert.Equal(t, 0, receiveAll(t, m, r))
		assert.Equal(t, 2, s.Tracked())
	})

	t.Run("removed file is sent as new when it returns", func(t *testing.T) {
		require.NoError(t, s.HandleChanges(ctx, []Change{{Path: b, Op: OpRemove}}))
		assert.Equal(t, 1, s.Tracked())
		assert.False(t, s.Forget(b))

		ok, err := s.Sync(ctx, b)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, receiveAll(t, m, r))
		assert.Equal(t, 3, m.Len())
	})
}

func TestSyncer_TransmissionError(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	a := filepath.Join(root, "A.java")
	writeFile(t, a, "class A {}\n")

	boom := errors.New("boom")
	s := NewSyncer(parser.New(), remote.NewSession(), failingWriter{boom}, SyncerOptions{})
	err := s.HandleChanges(ctx, []Change{{Path: a, Op: OpCreate}})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, s.Tracked())
}

func TestSyncer_RateLimit(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "A.java")
	writeFile(t, a, "class A {}\n")

	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	require.True(t, limiter.Allow())
	s := NewSyncer(parser.New(), remote.NewSession(), rpc.NewBuffer(), SyncerOptions{Limiter: limiter})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := s.Sync(ctx, a)
	assert.Error(t, err)
	assert.Zero(t, s.Tracked())
}

type failingWriter struct{ err error }

func (f failingWriter) WriteBatch(context.Context, *rpc.Batch) error { return f.err }
