// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/lstsync/pkg/logging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lstsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func env(vars map[string]string) lookupFunc {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
session:
  batch_size: 50
journal:
  in_memory: true
  path: ""
watch:
  debounce: 1s
  extensions: [".java", ".jav"]
telemetry:
  trace_exporter: stdout
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Session.BatchSize)
	assert.True(t, cfg.Journal.InMemory)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, []string{".java", ".jav"}, cfg.Watch.Extensions)
	assert.Equal(t, "stdout", cfg.Telemetry.TraceExporter)

	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Server, cfg.Server)
	assert.Equal(t, 20.0, cfg.Watch.RatePerSecond)
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "session:\n  batchsize: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnv(t *testing.T) {
	cfg := Default()
	err := loadEnv(&cfg, env(map[string]string{
		"LSTSYNC_BATCH_SIZE":        "7",
		"LSTSYNC_JOURNAL_IN_MEMORY": "true",
		"LSTSYNC_SERVER_ADDR":       ":9000",
		"LSTSYNC_WATCH_EXTENSIONS":  ".java,.kt",
		"LSTSYNC_TRACE_SAMPLE_RATE": "0.25",
		"LSTSYNC_LOG_LEVEL":         "debug",
		"LSTSYNC_LOG_DIR":           "",
	}))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Session.BatchSize)
	assert.True(t, cfg.Journal.InMemory)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, []string{".java", ".kt"}, cfg.Watch.Extensions)
	assert.Equal(t, 0.25, cfg.Telemetry.SampleRate)
	assert.Equal(t, logging.LevelDebug, cfg.Log.LoggingOptions("lstsync").Level)
	assert.Empty(t, cfg.Log.Dir)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnv_ReportsEveryBadValue(t *testing.T) {
	cfg := Default()
	err := loadEnv(&cfg, env(map[string]string{
		"LSTSYNC_BATCH_SIZE":     "many",
		"LSTSYNC_WATCH_DEBOUNCE": "soon",
		"LSTSYNC_LOG_JSON":       "yes please",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LSTSYNC_BATCH_SIZE")
	assert.Contains(t, err.Error(), "LSTSYNC_WATCH_DEBOUNCE")
	assert.Contains(t, err.Error(), "LSTSYNC_LOG_JSON")
	assert.Equal(t, Default().Session.BatchSize, cfg.Session.BatchSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"batch size", func(c *Config) { c.Session.BatchSize = 0 }, "Session.BatchSize"},
		{"trace exporter", func(c *Config) { c.Telemetry.TraceExporter = "prometheus" }, `Telemetry.TraceExporter: "prometheus" is not one of otlp, stdout, none`},
		{"metric exporter", func(c *Config) { c.Telemetry.MetricExporter = "otlp" }, "Telemetry.MetricExporter"},
		{"otlp needs endpoint", func(c *Config) {
			c.Telemetry.TraceExporter = "otlp"
			c.Telemetry.OTLPEndpoint = ""
		}, "Telemetry.OTLPEndpoint is required"},
		{"journal path", func(c *Config) { c.Journal.Path = "" }, "Journal.Path is required"},
		{"server addr", func(c *Config) { c.Server.Addr = "localhost" }, "Server.Addr"},
		{"extension", func(c *Config) { c.Watch.Extensions = []string{"java"} }, "Watch.Extensions[0]"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "Log.Level"},
		{"sample rate", func(c *Config) { c.Telemetry.SampleRate = 2 }, "Telemetry.SampleRate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("in-memory journal needs no path", func(t *testing.T) {
		cfg := Default()
		cfg.Journal.Path = ""
		cfg.Journal.InMemory = true
		assert.NoError(t, cfg.Validate())
	})
}

func TestJournalOptions(t *testing.T) {
	c := Default().Journal
	opts := c.JournalOptions(slog.Default())
	assert.Equal(t, c.Path, opts.Path)
	assert.Equal(t, c.GCInterval, opts.GCInterval)
	assert.Same(t, slog.Default(), opts.Logger)
}

func TestTelemetryOptions(t *testing.T) {
	opts := Default().Telemetry.TelemetryOptions("1.2.3")
	assert.Equal(t, "lstsync", opts.ServiceName)
	assert.Equal(t, "1.2.3", opts.ServiceVersion)
	assert.Equal(t, "prometheus", opts.MetricExporter)
	assert.Equal(t, 1.0, opts.SampleRate)
}
