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
	"sync"

	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst"
)

// PeekReader lets a caller look at the next batch without consuming it.
type PeekReader interface {
	BatchReader
	Peek(ctx context.Context) (*Batch, error)
}

// NewPeekReader adds one batch of lookahead to r. It returns r itself if
// r already implements PeekReader.
func NewPeekReader(r BatchReader) PeekReader {
	if p, ok := r.(PeekReader); ok {
		return p
	}
	return &peekReader{r: r}
}

type peekReader struct {
	r    BatchReader
	head *Batch
	err  error
}

// Peek reads ahead once and holds the batch until ReadBatch takes it.
// Transport errors are sticky. io.EOF is not: a reader that runs dry may
// receive more batches later.
func (p *peekReader) Peek(ctx context.Context) (*Batch, error) {
	if p.head != nil || p.err != nil {
		return p.head, p.err
	}
	b, err := p.r.ReadBatch(ctx)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			p.err = err
		}
		return nil, err
	}
	p.head = b
	return b, nil
}

func (p *peekReader) ReadBatch(ctx context.Context) (*Batch, error) {
	b, err := p.Peek(ctx)
	if err != nil {
		return nil, err
	}
	p.head = nil
	return b, nil
}

// Mirror holds the latest received version of every tree arriving on
// one stream.
//
// Description:
//
//	A stream may carry many transmissions for many trees. Mirror peeks at
//	the head of each transmission to learn which tree it updates, then
//	receives it against the version it already holds for that id.
//
// Thread Safety:
//
//	Receive must be called from one goroutine. Trees and Get are safe to
//	call concurrently with Receive.
type Mirror struct {
	sess *Session

	mu     sync.RWMutex
	latest map[uuid.UUID]lst.Tree
	order  []uuid.UUID
}

// NewMirror creates an empty mirror that receives through sess.
func NewMirror(sess *Session) *Mirror {
	return &Mirror{sess: sess, latest: make(map[uuid.UUID]lst.Tree)}
}

// Receive reads the next transmission from r. It returns io.EOF, unwrapped,
// when r is exhausted at a transmission boundary.
func (m *Mirror) Receive(ctx context.Context, r PeekReader) (lst.Tree, error) {
	head, err := r.Peek(ctx)
	if err != nil {
		return nil, err
	}
	before, seen := m.Get(head.TreeID)
	t, err := m.sess.Receive(ctx, r, before)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if !seen {
		m.order = append(m.order, head.TreeID)
	}
	m.latest[head.TreeID] = t
	m.mu.Unlock()
	return t, nil
}

// Get returns the latest version of the tree with the given id.
func (m *Mirror) Get(id uuid.UUID) (lst.Tree, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.latest[id]
	return t, ok
}

// Trees returns the latest version of every tree, ordered by first
// appearance.
func (m *Mirror) Trees() []lst.Tree {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]lst.Tree, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.latest[id])
	}
	return out
}

// Len returns the number of distinct trees received.
func (m *Mirror) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}
