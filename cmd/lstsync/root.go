// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/lstsync/pkg/logging"
	"github.com/AleutianAI/lstsync/services/lst/config"
	"github.com/AleutianAI/lstsync/services/lst/telemetry"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	configPath string
	logLevel   string
	verbose    bool

	// Set by the root command's pre-run for every subcommand.
	cfg               config.Config
	logger            *logging.Logger
	telemetryShutdown func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "lstsync",
	Short: "Synchronize Java lossless semantic trees with a remote peer",
	Long: `lstsync parses Java sources into lossless semantic trees and
transmits them as diff event batches: to a file, into a journal, or
over a WebSocket to a sync server.

Settings come from defaults, the --config YAML file and LSTSYNC_*
environment variables, in increasing order of priority.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Shorthand for --log-level debug")
}

// setup loads the configuration and installs logging and telemetry.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if verbose {
		loaded.Log.Level = "debug"
	} else if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = loaded

	logOpts := cfg.Log.LoggingOptions(cfg.Telemetry.ServiceName)
	// Structured output when stderr is not a person.
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		logOpts.JSON = true
	}
	logger = logging.New(logOpts)
	logger.Install()

	telCfg := cfg.Telemetry.TelemetryOptions(version)
	telCfg.Output = os.Stderr
	shutdown, err := telemetry.Init(cmd.Context(), telCfg)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	telemetryShutdown = shutdown
	slog.Debug("lstsync starting",
		slog.String("command", cmd.Name()),
		slog.String("version", version))
	return nil
}

// teardown flushes telemetry and closes the log file. It runs after every
// command, including failed ones.
func teardown(ctx context.Context) error {
	var errs []error
	if telemetryShutdown != nil {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		errs = append(errs, telemetryShutdown(ctx))
		telemetryShutdown = nil
	}
	if logger != nil {
		errs = append(errs, logger.Close())
	}
	return errors.Join(errs...)
}
