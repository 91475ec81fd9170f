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

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/AleutianAI/lstsync/services/lst/telemetry"
	"github.com/AleutianAI/lstsync/services/lst/watch"
)

var watchDest destinationFlags

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Send a source tree, then re-send files as they change",
	Long: `Send every Java file below dir, then watch it and re-send each file
that changes as a diff against the version last sent. Removed files are
forgotten; a file that comes back is sent as a new tree.

The whole watch runs as one sender session, so the destination must be a
journal stream or a sync server. Re-sends are rate limited by
watch.rate_per_second and watch.burst.

Examples:
  lstsync watch src --url ws://localhost:8089 --stream dev
  lstsync watch src --journal dev --reset`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchDest.journal, "journal", "", "Journal stream to append to")
	watchCmd.Flags().BoolVar(&watchDest.reset, "reset", false, "Replace an existing stream")
	watchCmd.Flags().StringVar(&watchDest.url, "url", "", "Sync server URL (ws:// or http://)")
	watchCmd.Flags().StringVar(&watchDest.stream, "stream", "", "Stream name on the sync server")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := args[0]
	if info, err := os.Stat(root); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}
	if watchDest.journal == "" && watchDest.url == "" {
		return errors.New("watch needs --journal or --url")
	}

	ctx, cancel := context.WithCancelCause(cmd.Context())
	defer cancel(nil)
	ctx, span := telemetry.StartSpan(ctx, cliTracer, "lstsync.watch")
	defer span.End()

	dest, err := watchDest.open(ctx, root)
	if err != nil {
		return err
	}
	defer dest.Close()

	logger := slog.Default().With(slog.String("destination", dest.name))
	syncer := watch.NewSyncer(newParser(), newSession(), dest, watch.SyncerOptions{
		Extensions: cfg.Watch.Extensions,
		Ignore:     skipDirs,
		Limiter:    rate.NewLimiter(rate.Limit(cfg.Watch.RatePerSecond), cfg.Watch.Burst),
		Workers:    workers(),
		Logger:     logger,
	})
	if _, err := syncer.SyncDir(ctx, root); err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	opts := watch.DefaultOptions()
	opts.Debounce = cfg.Watch.Debounce
	opts.Extensions = cfg.Watch.Extensions
	opts.Ignore = skipDirs
	opts.Logger = logger
	w, err := watch.New(root, func(ctx context.Context, changes []watch.Change) {
		if err := syncer.HandleChanges(ctx, changes); err != nil {
			// The session is unusable after a failed send.
			cancel(err)
		}
	}, opts)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	logger.Info("watching for changes",
		slog.String("root", root),
		slog.Int("files", syncer.Tracked()))

	<-ctx.Done()
	w.Stop()
	if err := context.Cause(ctx); err != nil && !errors.Is(err, context.Canceled) {
		telemetry.RecordError(span, err)
		return err
	}
	logger.Info("watch stopped")
	return nil
}
