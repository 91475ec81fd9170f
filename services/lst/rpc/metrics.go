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
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for tree synchronization.
var (
	tracer = otel.Tracer("lstsync.rpc")
	meter  = otel.Meter("lstsync.rpc")
)

var (
	eventsTotal     metric.Int64Counter
	batchesTotal    metric.Int64Counter
	sessionDuration metric.Float64Histogram
	errorsTotal     metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		eventsTotal, err = meter.Int64Counter(
			"lstsync_rpc_events_total",
			metric.WithDescription("Diff events sent or received, by state"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		batchesTotal, err = meter.Int64Counter(
			"lstsync_rpc_batches_total",
			metric.WithDescription("Event batches written or read"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		sessionDuration, err = meter.Float64Histogram(
			"lstsync_rpc_session_duration_seconds",
			metric.WithDescription("Duration of one tree transmission"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		errorsTotal, err = meter.Int64Counter(
			"lstsync_rpc_errors_total",
			metric.WithDescription("Failed transmissions, by error kind"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSendMetrics records a completed send, counting events per state.
func recordSendMetrics(ctx context.Context, q *SendQueue, duration time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}
	for state, n := range q.states {
		if n > 0 {
			eventsTotal.Add(ctx, int64(n), metric.WithAttributes(
				attribute.String("state", EventState(state).String()),
				attribute.String("direction", "send"),
			))
		}
	}
	batchesTotal.Add(ctx, int64(q.seq), metric.WithAttributes(attribute.String("direction", "send")))
	sessionDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("direction", "send")))
}

// recordReceiveMetrics records a completed receive.
func recordReceiveMetrics(ctx context.Context, q *ReceiveQueue, duration time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}
	eventsTotal.Add(ctx, int64(q.events), metric.WithAttributes(attribute.String("direction", "receive")))
	batchesTotal.Add(ctx, int64(q.seq), metric.WithAttributes(attribute.String("direction", "receive")))
	sessionDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("direction", "receive")))
}

func recordError(ctx context.Context, kind string) {
	if err := initMetrics(); err != nil {
		return
	}
	errorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func startSessionSpan(ctx context.Context, name, dialect string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attribute.String("lst.dialect", dialect)))
}
