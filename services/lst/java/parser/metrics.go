// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package parser

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("lstsync.parser")
	meter  = otel.Meter("lstsync.parser")
)

var (
	parseLatency metric.Float64Histogram
	parseTotal   metric.Int64Counter
	unknownTotal metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error
		parseLatency, err = meter.Float64Histogram(
			"lstsync_parse_duration_seconds",
			metric.WithDescription("Duration of Java parse operations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
		parseTotal, err = meter.Int64Counter(
			"lstsync_parse_total",
			metric.WithDescription("Total number of parse operations"),
		)
		if err != nil {
			metricsErr = err
			return
		}
		unknownTotal, err = meter.Int64Counter(
			"lstsync_parse_unknown_total",
			metric.WithDescription("Subtrees kept as source text"),
		)
		if err != nil {
			metricsErr = err
		}
	})
	return metricsErr
}

func recordParse(ctx context.Context, duration time.Duration, unknown int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	parseLatency.Record(ctx, duration.Seconds(), attrs)
	parseTotal.Add(ctx, 1, attrs)
	if unknown > 0 {
		unknownTotal.Add(ctx, int64(unknown))
	}
}

func startParseSpan(ctx context.Context, sourcePath string, size int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "parser.Parse",
		trace.WithAttributes(
			attribute.String("lst.source_path", sourcePath),
			attribute.Int("lst.content_size", size),
		),
	)
}
