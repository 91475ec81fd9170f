// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads lstsync settings from defaults, a YAML file and
// LSTSYNC_* environment variables, in increasing order of priority.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/lstsync/pkg/logging"
	"github.com/AleutianAI/lstsync/services/lst/journal"
	"github.com/AleutianAI/lstsync/services/lst/telemetry"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LSTSYNC_"

// Config is the complete lstsync configuration.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Session contains transmission settings.
	Session SessionConfig `yaml:"session"`

	// Parser contains Java front end settings.
	Parser ParserConfig `yaml:"parser"`

	// Journal contains batch journal settings.
	Journal JournalConfig `yaml:"journal"`

	// Server contains the sync endpoint settings.
	Server ServerConfig `yaml:"server"`

	// Watch contains file watching settings.
	Watch WatchConfig `yaml:"watch"`

	// Telemetry contains tracing and metrics settings.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log"`
}

// SessionConfig contains transmission settings.
type SessionConfig struct {
	BatchSize int `yaml:"batch_size" validate:"gte=1,lte=100000"`
}

// ParserConfig contains Java front end settings.
type ParserConfig struct {
	MaxFileSize int64 `yaml:"max_file_size" validate:"gt=0"`
	// Workers bounds concurrent parses and sends; 0 means one per CPU.
	Workers int `yaml:"workers" validate:"gte=0,lte=256"`
}

// JournalConfig contains batch journal settings.
type JournalConfig struct {
	Path           string        `yaml:"path" validate:"required_unless=InMemory true"`
	InMemory       bool          `yaml:"in_memory"`
	SyncWrites     bool          `yaml:"sync_writes"`
	GCInterval     time.Duration `yaml:"gc_interval" validate:"gte=0"`
	GCDiscardRatio float64       `yaml:"gc_discard_ratio" validate:"gt=0,lt=1"`
}

// ServerConfig contains the sync endpoint settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	MaxMessageBytes int64         `yaml:"max_message_bytes" validate:"gt=0"`
}

// WatchConfig contains file watching settings.
type WatchConfig struct {
	// Debounce is how long a file must stay quiet before it is re-sent.
	Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
	// RatePerSecond caps re-sends across all files.
	RatePerSecond float64  `yaml:"rate_per_second" validate:"gt=0"`
	Burst         int      `yaml:"burst" validate:"gte=1"`
	Extensions    []string `yaml:"extensions" validate:"required,min=1,dive,startswith=."`
}

// TelemetryConfig contains tracing and metrics settings.
type TelemetryConfig struct {
	ServiceName    string  `yaml:"service_name"`
	TraceExporter  string  `yaml:"trace_exporter" validate:"exporter=trace"`
	MetricExporter string  `yaml:"metric_exporter" validate:"exporter=metric"`
	OTLPEndpoint   string  `yaml:"otlp_endpoint" validate:"required_if=TraceExporter otlp"`
	SampleRate     float64 `yaml:"sample_rate" validate:"gte=0,lte=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	Dir   string `yaml:"dir"`
	JSON  bool   `yaml:"json"`
}

// Default returns the default configuration.
//
// Outputs:
//   - Config: Default configuration with sensible values.
func Default() Config {
	return Config{
		Session: SessionConfig{BatchSize: 1000},
		Parser:  ParserConfig{MaxFileSize: 10 * 1024 * 1024},
		Journal: JournalConfig{
			Path:           ".lstsync/journal",
			SyncWrites:     true,
			GCInterval:     5 * time.Minute,
			GCDiscardRatio: 0.5,
		},
		Server: ServerConfig{
			Addr:            "localhost:8089",
			ShutdownTimeout: 10 * time.Second,
			MaxMessageBytes: 16 * 1024 * 1024,
		},
		Watch: WatchConfig{
			Debounce:      200 * time.Millisecond,
			RatePerSecond: 20,
			Burst:         5,
			Extensions:    []string{".java"},
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "lstsync",
			TraceExporter:  "none",
			MetricExporter: "prometheus",
			OTLPEndpoint:   "localhost:4317",
			SampleRate:     1.0,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load loads configuration with priority: env > file > defaults.
//
// Description:
//
//	Starts from Default, overlays the YAML file at path when path is
//	non-empty, then applies LSTSYNC_* environment variables and validates
//	the result.
//
// Inputs:
//
//	path - YAML config file. Empty skips the file; a named file must exist.
//
// Outputs:
//
//	Config - Merged configuration.
//	error - Non-nil if the file or an environment value is invalid, or
//	        the merged configuration fails validation.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

type lookupFunc func(string) (string, bool)

// loadEnv applies LSTSYNC_* overrides. Every malformed value is reported.
func loadEnv(cfg *Config, lookup lookupFunc) error {
	e := envReader{lookup: lookup}

	e.int("BATCH_SIZE", &cfg.Session.BatchSize)
	e.int64("MAX_FILE_SIZE", &cfg.Parser.MaxFileSize)
	e.int("WORKERS", &cfg.Parser.Workers)

	e.string("JOURNAL_PATH", &cfg.Journal.Path)
	e.bool("JOURNAL_IN_MEMORY", &cfg.Journal.InMemory)
	e.bool("JOURNAL_SYNC_WRITES", &cfg.Journal.SyncWrites)
	e.duration("JOURNAL_GC_INTERVAL", &cfg.Journal.GCInterval)

	e.string("SERVER_ADDR", &cfg.Server.Addr)
	e.duration("SERVER_SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout)
	e.int64("SERVER_MAX_MESSAGE_BYTES", &cfg.Server.MaxMessageBytes)

	e.duration("WATCH_DEBOUNCE", &cfg.Watch.Debounce)
	e.float("WATCH_RATE", &cfg.Watch.RatePerSecond)
	e.int("WATCH_BURST", &cfg.Watch.Burst)
	if v, ok := lookup(EnvPrefix + "WATCH_EXTENSIONS"); ok && v != "" {
		cfg.Watch.Extensions = strings.Split(v, ",")
	}

	e.string("SERVICE_NAME", &cfg.Telemetry.ServiceName)
	e.string("TRACE_EXPORTER", &cfg.Telemetry.TraceExporter)
	e.string("METRIC_EXPORTER", &cfg.Telemetry.MetricExporter)
	e.string("OTLP_ENDPOINT", &cfg.Telemetry.OTLPEndpoint)
	e.float("TRACE_SAMPLE_RATE", &cfg.Telemetry.SampleRate)

	e.string("LOG_LEVEL", &cfg.Log.Level)
	e.string("LOG_DIR", &cfg.Log.Dir)
	e.bool("LOG_JSON", &cfg.Log.JSON)

	return errors.Join(e.errs...)
}

type envReader struct {
	lookup lookupFunc
	errs   []error
}

func (e *envReader) get(name string) (string, bool) {
	v, ok := e.lookup(EnvPrefix + name)
	return v, ok && v != ""
}

func (e *envReader) bad(name, v string, err error) {
	e.errs = append(e.errs, fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, v, err))
}

func (e *envReader) string(name string, dst *string) {
	if v, ok := e.get(name); ok {
		*dst = v
	}
}

func (e *envReader) bool(name string, dst *bool) {
	if v, ok := e.get(name); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			e.bad(name, v, err)
			return
		}
		*dst = b
	}
}

func (e *envReader) int(name string, dst *int) {
	if v, ok := e.get(name); ok {
		i, err := strconv.Atoi(v)
		if err != nil {
			e.bad(name, v, err)
			return
		}
		*dst = i
	}
}

func (e *envReader) int64(name string, dst *int64) {
	if v, ok := e.get(name); ok {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			e.bad(name, v, err)
			return
		}
		*dst = i
	}
}

func (e *envReader) float(name string, dst *float64) {
	if v, ok := e.get(name); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			e.bad(name, v, err)
			return
		}
		*dst = f
	}
}

func (e *envReader) duration(name string, dst *time.Duration) {
	if v, ok := e.get(name); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			e.bad(name, v, err)
			return
		}
		*dst = d
	}
}

// JournalOptions converts the journal settings for journal.Open.
func (c JournalConfig) JournalOptions(logger *slog.Logger) journal.Config {
	return journal.Config{
		Path:           c.Path,
		InMemory:       c.InMemory,
		SyncWrites:     c.SyncWrites,
		Logger:         logger,
		GCInterval:     c.GCInterval,
		GCDiscardRatio: c.GCDiscardRatio,
	}
}

// TelemetryOptions converts the telemetry settings for telemetry.Init.
func (c TelemetryConfig) TelemetryOptions(version string) telemetry.Config {
	return telemetry.Config{
		ServiceName:    c.ServiceName,
		ServiceVersion: version,
		TraceExporter:  c.TraceExporter,
		MetricExporter: c.MetricExporter,
		OTLPEndpoint:   c.OTLPEndpoint,
		OTLPInsecure:   true,
		SampleRate:     c.SampleRate,
	}
}

// LoggingOptions converts the log settings for pkg/logging. Unknown
// levels fall back to info; Validate rejects them earlier.
func (c LogConfig) LoggingOptions(service string) logging.Config {
	level, _ := logging.ParseLevel(c.Level)
	return logging.Config{Level: level, LogDir: c.Dir, Service: service, JSON: c.JSON}
}
