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
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/lstsync/services/lst/rpc"
	"github.com/AleutianAI/lstsync/services/lst/telemetry"
	"github.com/AleutianAI/lstsync/services/lst/watch"
)

const cliTracer = "github.com/AleutianAI/lstsync/cmd/lstsync"

var (
	sendDest   destinationFlags
	sendOutDir string
)

var sendCmd = &cobra.Command{
	Use:   "send <path>...",
	Short: "Parse Java sources and transmit their trees",
	Long: `Parse the given files and directories and transmit every
compilation unit as one transmission through a single sender session.

Destinations:
  --out FILE      Content-Length framed batches (default: stdout)
  --journal NAME  A stream in the batch journal
  --url URL       A sync server's WebSocket endpoint
  --out-dir DIR   One frame file per source, each from its own session

Examples:
  lstsync send src/main/java > trees.lst
  lstsync send --journal nightly --reset src
  lstsync send --url ws://localhost:8089 --stream ci src`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVarP(&sendDest.out, "out", "o", "-", "Frame output file, - for stdout")
	sendCmd.Flags().StringVar(&sendDest.journal, "journal", "", "Journal stream to append to")
	sendCmd.Flags().BoolVar(&sendDest.reset, "reset", false, "Replace an existing journal stream")
	sendCmd.Flags().StringVar(&sendDest.url, "url", "", "Sync server URL (ws:// or http://)")
	sendCmd.Flags().StringVar(&sendDest.stream, "stream", "", "Stream name on the sync server")
	sendCmd.Flags().StringVar(&sendOutDir, "out-dir", "", "Write one frame file per source into this directory")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	ctx, span := telemetry.StartSpan(cmd.Context(), cliTracer, "lstsync.send")
	defer span.End()

	files, err := collectSources(args, cfg.Watch.Extensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no source files found")
	}
	span.SetAttributes(attribute.Int("lstsync.files", len(files)))

	if sendOutDir != "" {
		if cmd.Flags().Changed("out") || sendDest.journal != "" || sendDest.url != "" {
			return errors.New("--out-dir cannot be combined with another destination")
		}
		return sendForked(ctx, files, sendOutDir)
	}

	dest, err := sendDest.open(ctx, strings.Join(args, ","))
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	syncer := watch.NewSyncer(newParser(), newSession(), dest, watch.SyncerOptions{
		Workers: workers(),
		Logger:  slog.Default(),
	})
	sent, err := syncer.SyncFiles(ctx, files)
	err = errors.Join(err, dest.Close())
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	slog.Info("transmission complete",
		slog.String("destination", dest.name),
		slog.Int("files", len(files)),
		slog.Int("sent", sent))
	if sent < len(files) {
		return fmt.Errorf("%d of %d files could not be parsed", len(files)-sent, len(files))
	}
	return nil
}

// sendForked writes each file to its own frame file. Each file gets a
// fork of one session, so the outputs are independent streams.
func sendForked(ctx context.Context, files []string, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := newSession()
	p := newParser()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers())
	for _, path := range files {
		g.Go(func() error {
			result, err := p.ParseFile(gctx, path)
			if err != nil {
				return err
			}
			target := filepath.Join(dir, frameFileName(path))
			file, err := os.Create(target)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(file)
			err = base.Fork().Send(gctx, rpc.NewFrameWriter(w), result.CompilationUnit, nil)
			return errors.Join(err, w.Flush(), file.Close())
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("transmission complete",
		slog.String("destination", dir),
		slog.Int("files", len(files)))
	return nil
}

// frameFileName flattens a source path into a file name, for example
// "src/a/B.java" becomes "src_a_B.java.lst".
func frameFileName(path string) string {
	parts := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")
	keep := parts[:0]
	for _, part := range parts {
		if part != "" && part != "." && part != ".." {
			keep = append(keep, part)
		}
	}
	return strings.Join(keep, "_") + ".lst"
}
