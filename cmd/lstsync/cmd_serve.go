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
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/lstsync/services/lst/journal"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
	"github.com/AleutianAI/lstsync/services/lst/server"
	"github.com/AleutianAI/lstsync/services/lst/telemetry"
)

var (
	serveAddr    string
	serveJournal bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the WebSocket sync server",
	Long: `Accept sender sessions on /v1/lst/sync and keep the latest version
of every received tree per stream.

Endpoints:
  GET /v1/lst/sync?stream=NAME         WebSocket sync endpoint
  GET /v1/lst/streams                  Stream summaries
  GET /v1/lst/streams/NAME/trees       Latest trees in a stream
  GET /v1/lst/streams/NAME/trees/ID    One tree with node kind counts
  GET /health                          Liveness
  GET /metrics                         Prometheus metrics

With --journal, every received batch is also recorded in the batch
journal under the stream name, for "lstsync replay".`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().BoolVar(&serveJournal, "journal", false, "Record received batches in the journal")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	var store *journal.Store
	if serveJournal {
		var err error
		if store, err = openJournal(); err != nil {
			return err
		}
		defer store.Close()
	}

	srv := server.New(server.Options{
		ServiceName:     cfg.Telemetry.ServiceName,
		MaxMessageBytes: cfg.Server.MaxMessageBytes,
		Journal:         store,
		NewSession:      func() *rpc.Session { return newSession() },
		Metrics:         telemetry.MetricsHandler(),
		Logger:          slog.Default(),
	})
	return srv.Run(cmd.Context(), addr, cfg.Server.ShutdownTimeout)
}
