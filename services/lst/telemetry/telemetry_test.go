// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInit_Errors(t *testing.T) {
	//nolint:staticcheck // nil context is the case under test
	_, err := Init(nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrNilContext)

	cfg := DefaultConfig()
	cfg.TraceExporter = "zipkin"
	_, err = Init(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrUnknownExporter)

	cfg = DefaultConfig()
	cfg.MetricExporter = "otlp"
	_, err = Init(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrUnknownExporter)
}

func TestInit_PrometheusHandler(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Init(ctx, DefaultConfig())
	require.NoError(t, err)
	defer shutdown(ctx)

	counter, err := otel.Meter("lstsync.test").Int64Counter("lstsync_test_total",
		metric.WithDescription("test counter"))
	require.NoError(t, err)
	counter.Add(ctx, 3)

	handler := MetricsHandler()
	require.NotNil(t, handler)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lstsync_test_total")
}

func TestInit_NoExporters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MetricExporter = "none"
	shutdown, err := Init(context.Background(), cfg)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func withSpan(t *testing.T) (context.Context, func()) {
	t.Helper()
	_, err := Init(context.Background(), Config{TraceExporter: "none", MetricExporter: "none"})
	require.NoError(t, err)
	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	return ctx, func() {
		span.End()
		_ = tp.Shutdown(context.Background())
	}
}

func TestPropagation(t *testing.T) {
	ctx, done := withSpan(t)
	defer done()

	t.Run("http headers", func(t *testing.T) {
		header := http.Header{}
		InjectContext(ctx, header)
		require.NotEmpty(t, header.Get("traceparent"))

		got := ExtractContext(context.Background(), header)
		assert.Equal(t, TraceID(ctx), TraceID(got))
	})

	t.Run("string map", func(t *testing.T) {
		carrier := InjectToMap(ctx, nil)
		assert.Contains(t, MapCarrier(carrier).Keys(), "traceparent")

		got := ExtractFromMap(context.Background(), carrier)
		assert.Equal(t, TraceID(ctx), TraceID(got))
		assert.NotEmpty(t, SpanID(got))
	})

	t.Run("no span", func(t *testing.T) {
		assert.Empty(t, InjectToMap(context.Background(), nil))
		assert.Empty(t, TraceID(context.Background()))
		assert.Empty(t, SpanID(context.Background()))
	})
}

func TestLoggerWithTrace(t *testing.T) {
	ctx, done := withSpan(t)
	defer done()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	assert.Same(t, logger, LoggerWithTrace(context.Background(), logger))

	LoggerWithTrace(ctx, logger).Info("sent")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, TraceID(ctx), line["trace_id"])
	assert.Equal(t, SpanID(ctx), line["span_id"])
}

func TestStartSpan_RecordError(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "lstsync.test", "op")
	defer span.End()
	assert.NotNil(t, ctx)
	RecordError(span, nil)
	RecordError(nil, assert.AnError)
	RecordError(span, assert.AnError)
}

func TestInit_StdoutTraceOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.TraceExporter = "stdout"
	cfg.MetricExporter = "none"
	cfg.Output = &buf

	shutdown, err := Init(context.Background(), cfg)
	require.NoError(t, err)

	_, span := StartSpan(context.Background(), "lstsync/test", "stdout-span")
	span.End()
	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "stdout-span")
}
