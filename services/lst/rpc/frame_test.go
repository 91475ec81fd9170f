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
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestFrames(t *testing.T) {
	ctx := context.Background()
	var wire bytes.Buffer
	w := NewFrameWriter(&wire)

	batches := []*Batch{
		{TreeID: uuid.New(), Seq: 0, Events: []DiffEvent{{State: Add, ValueType: TagString, Value: "a"}}},
		{TreeID: uuid.New(), Seq: 1, Events: []DiffEvent{{State: End}}},
	}
	for _, b := range batches {
		require.NoError(t, w.WriteBatch(ctx, b))
	}
	assert.True(t, strings.HasPrefix(wire.String(), "Content-Length: "))

	r := NewFrameReader(&wire)
	for _, want := range batches {
		got, err := r.ReadBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := r.ReadBatch(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestFrames_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"truncated header", "Content-Length: 10\r\n"},
		{"truncated body", "Content-Length: 10\r\n\r\n{}"},
		{"missing length", "X-Other: 1\r\n\r\n{}"},
		{"bad length", "Content-Length: ten\r\n\r\n{}"},
		{"negative length", "Content-Length: -1\r\n\r\n{}"},
		{"bad header", "garbage\r\n\r\n"},
		{"bad body", "Content-Length: 2\r\n\r\n{]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrameReader(strings.NewReader(tt.in)).ReadBatch(context.Background())
			require.Error(t, err)
			assert.NotErrorIs(t, err, io.EOF)
		})
	}
}

func TestFrames_TraceContext(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		SpanID:     trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	var wire bytes.Buffer
	require.NoError(t, NewFrameWriter(&wire).WriteBatch(ctx, &Batch{Events: []DiffEvent{{State: End}}}))
	assert.Contains(t, wire.String(), "Traceparent: 00-0102030405060708090a0b0c0d0e0f10-0102030405060708-01")

	r := NewFrameReader(&wire)
	_, err := r.ReadBatch(context.Background())
	require.NoError(t, err)
	got := trace.SpanContextFromContext(r.TraceContext(context.Background()))
	assert.Equal(t, sc.TraceID(), got.TraceID())
	assert.Equal(t, sc.SpanID(), got.SpanID())
	assert.True(t, got.IsRemote())
}
