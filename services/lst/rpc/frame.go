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
	"bufio"
	"context"
	"fmt"
	"io"
	"net/textproto"
	"strconv"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// FrameWriter writes batches as Content-Length framed JSON, the framing of
// the Language Server Protocol base layer. The trace context of the
// writing context travels in Traceparent/Tracestate headers.
//
// Thread Safety:
//
//	Safe for concurrent use; frames are never interleaved.
type FrameWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewFrameWriter creates a frame writer on w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: w}
}

// WriteBatch writes one frame holding b.
func (f *FrameWriter) WriteBatch(ctx context.Context, b *Batch) error {
	data, err := MarshalBatch(b)
	if err != nil {
		return err
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	var header strings.Builder
	fmt.Fprintf(&header, "Content-Length: %d\r\n", len(data))
	for _, key := range carrier.Keys() {
		fmt.Fprintf(&header, "%s: %s\r\n", textproto.CanonicalMIMEHeaderKey(key), carrier.Get(key))
	}
	header.WriteString("\r\n")

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := io.WriteString(f.w, header.String()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := f.w.Write(data); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return nil
}

// FrameReader reads batches written by a FrameWriter.
//
// Thread Safety:
//
//	Not safe for concurrent use.
type FrameReader struct {
	r       *bufio.Reader
	headers map[string]string
}

// NewFrameReader creates a frame reader on r.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: bufio.NewReader(r)}
}

// ReadBatch reads the next frame. It returns io.EOF at a clean end of
// input and io.ErrUnexpectedEOF inside a frame.
func (f *FrameReader) ReadBatch(_ context.Context) (*Batch, error) {
	body, err := f.readFrame()
	if err != nil {
		return nil, err
	}
	return UnmarshalBatch(body)
}

// TraceContext returns ctx carrying the trace context of the last frame.
func (f *FrameReader) TraceContext(ctx context.Context) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(f.headers))
}

func (f *FrameReader) readFrame() ([]byte, error) {
	contentLength := -1
	headers := make(map[string]string)
	first := true

	for {
		line, err := f.r.ReadString('\n')
		if err != nil {
			if err == io.EOF && first && line == "" {
				return nil, io.EOF
			}
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		first = false
		line = strings.TrimSpace(line)

		// Empty line marks end of headers
		if line == "" {
			break
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("malformed header line %q", line)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if strings.EqualFold(name, "Content-Length") {
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length value %q: %w", value, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("negative Content-Length: %d", n)
			}
			contentLength = n
			continue
		}
		headers[strings.ToLower(name)] = value
	}

	if contentLength <= 0 {
		return nil, fmt.Errorf("missing or zero Content-Length header")
	}
	f.headers = headers

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(f.r, body); err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
