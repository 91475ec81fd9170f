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
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/lstsync/services/lst"
)

// Dialect plugs one tree language into the protocol.
type Dialect struct {
	// Name identifies the dialect in logs and errors.
	Name string
	// TagOf returns the wire type tag of a tree.
	TagOf func(t lst.Tree) (string, bool)
	// NewSender and NewReceiver create the per-transmission visitors.
	NewSender   func() TreeSender
	NewReceiver func() TreeReceiver
	// Codecs encode the dialect's object values.
	Codecs []ObjectCodec
}

// Option configures a Session.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	batchSize int
}

// WithLogger sets the session logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithBatchSize sets the number of events per batch.
func WithBatchSize(n int) Option {
	return func(o *options) { o.batchSize = n }
}

// Session is one end of a synchronized pair.
//
// Description:
//
//	A sending Session and the receiving Session it talks to each keep a
//	reference table for shared objects. Both tables grow in lockstep as
//	trees are transmitted, so later transmissions send shared objects as
//	references. A Session must therefore only ever exchange trees with
//	its one peer, in order.
//
//	Any error leaves the tables in an unknown state; discard the Session
//	(and its peer) after a failed Send or Receive.
//
// Thread Safety:
//
//	Not safe for concurrent use. Use Fork to get an independent Session
//	per concurrent stream.
type Session struct {
	dialect *Dialect
	enc     *Encoder
	dec     *Decoder
	opts    options
}

// NewSession creates a session for dialect d.
func NewSession(d *Dialect, opts ...Option) *Session {
	o := options{logger: slog.Default(), batchSize: DefaultBatchSize}
	for _, opt := range opts {
		opt(&o)
	}
	codecs := append([]ObjectCodec{MarkerCodec{}}, d.Codecs...)
	return &Session{
		dialect: d,
		enc:     NewEncoder(codecs...),
		dec:     NewDecoder(codecs...),
		opts:    o,
	}
}

// Fork returns a session with the same dialect and options and fresh,
// empty reference tables.
func (s *Session) Fork() *Session {
	return &Session{
		dialect: s.dialect,
		enc:     NewEncoder(s.enc.codecs...),
		dec:     NewDecoder(s.enc.codecs...),
		opts:    s.opts,
	}
}

// Dialect returns the session's dialect.
func (s *Session) Dialect() *Dialect { return s.dialect }

// Send transmits after to the peer, which already holds before.
//
// Description:
//
//	Enumerates every field of after, comparing against before, and writes
//	the resulting events to w in batches, closing with an END event. A nil
//	before sends the whole tree.
//
// Inputs:
//
//	ctx - Context for the writer and telemetry.
//	w - Destination of the batches.
//	after - Tree to transmit. Must not be nil.
//	before - The peer's current version, or nil.
//
// Outputs:
//
//	error - ErrNilTree, a *ProtocolError, or the writer's error.
func (s *Session) Send(ctx context.Context, w BatchWriter, after, before lst.Tree) (err error) {
	if lst.IsNil(after) {
		return ErrNilTree
	}
	ctx, span := startSessionSpan(ctx, "rpc.Send", s.dialect.Name)
	defer span.End()
	start := time.Now()

	q := newSendQueue(ctx, w, after.ID(), s.opts.batchSize)
	sc := &SenderContext{q: q, enc: s.enc, dialect: s.dialect, sender: s.dialect.NewSender()}

	completed := false
	defer func() {
		if err != nil {
			s.fail(ctx, span, "send", after.ID().String(), err)
			return
		}
		if !completed {
			return
		}
		recordSendMetrics(ctx, q, time.Since(start))
		span.SetAttributes(attribute.Int("rpc.events", q.events), attribute.Int("rpc.batches", q.seq))
		span.SetStatus(codes.Ok, "")
		s.opts.logger.Debug("tree sent",
			slog.String("dialect", s.dialect.Name),
			slog.String("tree_id", after.ID().String()),
			slog.Int("events", q.events),
			slog.Int("batches", q.seq),
			slog.Duration("duration", time.Since(start)),
		)
	}()
	defer recoverAbort(&err)

	if lst.IsNil(before) {
		before = nil
	}
	sendNode(sc, after, before, func(t lst.Tree, c *SenderContext) { c.SendTree(t) })
	q.put(DiffEvent{State: End})
	q.flush()
	completed = true
	return nil
}

// Receive reads one transmission from r and applies it to before.
//
// Outputs:
//
//	lst.Tree - The received tree; nil on error, never a partial tree.
//	error - A *ProtocolError or the reader's error.
func (s *Session) Receive(ctx context.Context, r BatchReader, before lst.Tree) (out lst.Tree, err error) {
	ctx, span := startSessionSpan(ctx, "rpc.Receive", s.dialect.Name)
	defer span.End()
	start := time.Now()

	q := newReceiveQueue(ctx, r)
	rc := &ReceiverContext{q: q, dec: s.dec, receiver: s.dialect.NewReceiver()}

	completed := false
	defer func() {
		if err != nil {
			out = nil
			s.fail(ctx, span, "receive", q.treeID.String(), err)
			return
		}
		if !completed {
			return
		}
		recordReceiveMetrics(ctx, q, time.Since(start))
		span.SetAttributes(attribute.Int("rpc.events", q.events), attribute.Int("rpc.batches", q.seq))
		span.SetStatus(codes.Ok, "")
		s.opts.logger.Debug("tree received",
			slog.String("dialect", s.dialect.Name),
			slog.String("tree_id", q.treeID.String()),
			slog.Int("events", q.events),
			slog.Int("batches", q.seq),
			slog.Duration("duration", time.Since(start)),
		)
	}()
	defer recoverAbort(&err)

	if lst.IsNil(before) {
		before = nil
	}
	const op = "Receive"
	out = receiveNode(rc, op, rc.next(op), before, func(t lst.Tree, c *ReceiverContext) lst.Tree {
		return c.ReceiveTree(t)
	})
	if e := q.take(op); e.State != End {
		Desync(op, ErrDesync, "%s event after the end of the tree", e.State)
	}
	if lst.IsNil(out) {
		return nil, ErrNilTree
	}
	completed = true
	return out, nil
}

func (s *Session) fail(ctx context.Context, span trace.Span, direction, treeID string, err error) {
	kind := "transport"
	var pe *ProtocolError
	if errors.As(err, &pe) {
		kind = pe.Kind.String()
	}
	recordError(ctx, kind)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.opts.logger.Error("tree transmission failed",
		slog.String("direction", direction),
		slog.String("dialect", s.dialect.Name),
		slog.String("tree_id", treeID),
		slog.String("error_kind", kind),
		slog.String("error", err.Error()),
	)
}
