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
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// BatchWriter carries batches to the receiving side.
type BatchWriter interface {
	WriteBatch(ctx context.Context, b *Batch) error
}

// BatchReader yields batches in the order they were written. It returns
// io.EOF when no more batches will arrive.
type BatchReader interface {
	ReadBatch(ctx context.Context) (*Batch, error)
}

// DefaultBatchSize is the number of events per batch unless configured.
const DefaultBatchSize = 1000

// SendQueue accumulates the events of one transmission and writes them in
// batches of at most batchSize events.
type SendQueue struct {
	ctx       context.Context
	w         BatchWriter
	treeID    uuid.UUID
	batchSize int
	seq       int
	pending   []DiffEvent
	events    int
	states    [End + 1]int
}

func newSendQueue(ctx context.Context, w BatchWriter, treeID uuid.UUID, batchSize int) *SendQueue {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &SendQueue{ctx: ctx, w: w, treeID: treeID, batchSize: batchSize}
}

func (q *SendQueue) put(e DiffEvent) {
	q.pending = append(q.pending, e)
	q.events++
	q.states[e.State]++
	if len(q.pending) >= q.batchSize {
		q.flush()
	}
}

func (q *SendQueue) flush() {
	if len(q.pending) == 0 {
		return
	}
	b := &Batch{TreeID: q.treeID, Seq: q.seq, Events: q.pending}
	q.seq++
	q.pending = nil
	if err := q.w.WriteBatch(q.ctx, b); err != nil {
		panic(transportFailure{err: fmt.Errorf("write batch %d: %w", b.Seq, err)})
	}
}

// ReceiveQueue hands out the events of one transmission, pulling batches
// from its reader as needed.
type ReceiveQueue struct {
	ctx    context.Context
	r      BatchReader
	batch  *Batch
	pos    int
	seq    int
	treeID uuid.UUID
	events int
}

func newReceiveQueue(ctx context.Context, r BatchReader) *ReceiveQueue {
	return &ReceiveQueue{ctx: ctx, r: r}
}

func (q *ReceiveQueue) take(op string) DiffEvent {
	for q.batch == nil || q.pos >= len(q.batch.Events) {
		b, err := q.r.ReadBatch(q.ctx)
		if errors.Is(err, io.EOF) {
			Desync(op, ErrUnexpectedEnd, "after %d events", q.events)
		}
		if err != nil {
			panic(transportFailure{err: fmt.Errorf("read batch %d: %w", q.seq, err)})
		}
		if b.Seq != q.seq {
			Desync(op, ErrDesync, "batch %d arrived, expected %d", b.Seq, q.seq)
		}
		if q.seq == 0 {
			q.treeID = b.TreeID
		} else if b.TreeID != q.treeID {
			Desync(op, ErrDesync, "batch for tree %s inside transmission of %s", b.TreeID, q.treeID)
		}
		q.batch = b
		q.pos = 0
		q.seq++
	}
	e := q.batch.Events[q.pos]
	q.pos++
	q.events++
	return e
}

// Buffer is an in-memory BatchWriter and BatchReader. Batches are read in
// write order; reads past the end return io.EOF.
//
// Thread Safety: Safe for concurrent use.
type Buffer struct {
	mu      sync.Mutex
	batches []*Batch
	next    int
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer { return &Buffer{} }

func (b *Buffer) WriteBatch(_ context.Context, batch *Batch) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.batches = append(b.batches, batch)
	return nil
}

func (b *Buffer) ReadBatch(_ context.Context) (*Batch, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.next >= len(b.batches) {
		return nil, io.EOF
	}
	batch := b.batches[b.next]
	b.next++
	return batch, nil
}

// Batches returns every batch written so far.
func (b *Buffer) Batches() []*Batch {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Batch(nil), b.batches...)
}

// Events returns every event written so far, in order.
func (b *Buffer) Events() []DiffEvent {
	var out []DiffEvent
	for _, batch := range b.Batches() {
		out = append(out, batch.Events...)
	}
	return out
}

// Rewind makes the buffered batches readable again from the start.
func (b *Buffer) Rewind() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next = 0
}

// TeeReader returns a BatchReader that writes every batch it reads from r
// to w. A write error is returned in place of the batch.
func TeeReader(r BatchReader, w BatchWriter) BatchReader {
	return &teeReader{r: r, w: w}
}

type teeReader struct {
	r BatchReader
	w BatchWriter
}

func (t *teeReader) ReadBatch(ctx context.Context) (*Batch, error) {
	b, err := t.r.ReadBatch(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.w.WriteBatch(ctx, b); err != nil {
		return nil, fmt.Errorf("tee batch %d: %w", b.Seq, err)
	}
	return b, nil
}
