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
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/lstsync/pkg/ux"
	"github.com/AleutianAI/lstsync/pkg/validation"
	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/journal"
	"github.com/AleutianAI/lstsync/services/lst/telemetry"
)

var (
	replayKinds      bool
	replayJSONOutput bool
	replayDrop       bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [stream]",
	Short: "Replay a journal stream, or list the recorded streams",
	Long: `Without arguments, list every stream in the batch journal.

With a stream name, receive every recorded transmission in order into a
fresh session and print the latest version of each tree. --drop deletes
the stream instead.

Examples:
  lstsync replay
  lstsync replay nightly --kinds
  lstsync replay nightly --drop`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&replayKinds, "kinds", false, "Include node kind counts")
	replayCmd.Flags().BoolVar(&replayJSONOutput, "json", false, "Output as JSON")
	replayCmd.Flags().BoolVar(&replayDrop, "drop", false, "Delete the stream")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	var stream string
	if len(args) > 0 {
		var err error
		if stream, err = validation.SanitizeStreamName(args[0]); err != nil {
			return err
		}
	}
	store, err := openJournal()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return listStreams(cmd, store)
	}
	if replayDrop {
		if err := store.Drop(stream); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Dropped stream %s\n", stream)
		return nil
	}

	n, err := store.Len(stream)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("journal stream %q is empty", stream)
	}

	// Continue the sender's trace when it recorded one.
	ctx := cmd.Context()
	if meta, err := store.Meta(stream); err == nil && meta != nil {
		ctx = telemetry.ExtractFromMap(ctx, meta)
	}
	ctx, span := telemetry.StartSpan(ctx, cliTracer, "lstsync.replay")
	defer span.End()

	versions := 0
	trees, err := journal.Replay(ctx, store, stream, newSession(), func(lst.Tree) error {
		versions++
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	slog.Info("replay complete",
		slog.String("stream", stream),
		slog.Uint64("batches", n),
		slog.Int("transmissions", versions),
		slog.Int("trees", len(trees)))
	return printTrees(cmd.OutOrStdout(), trees, replayKinds, replayJSONOutput)
}

// streamInfo describes one journal stream.
type streamInfo struct {
	Name    string            `json:"name"`
	Batches uint64            `json:"batches"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func listStreams(cmd *cobra.Command, store *journal.Store) error {
	names, err := store.Streams()
	if err != nil {
		return err
	}
	infos := make([]streamInfo, 0, len(names))
	for _, name := range names {
		n, err := store.Len(name)
		if err != nil {
			return err
		}
		meta, err := store.Meta(name)
		if err != nil {
			return err
		}
		infos = append(infos, streamInfo{Name: name, Batches: n, Meta: meta})
	}

	out := cmd.OutOrStdout()
	if replayJSONOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}
	p := ux.NewPrinter(out)
	if len(infos) == 0 {
		p.Note("No journal streams.")
		return nil
	}
	tbl := ux.NewTable("STREAM", "BATCHES", "STARTED", "SOURCE")
	for _, info := range infos {
		tbl.Row(info.Name, info.Batches, info.Meta["started"], info.Meta["source"])
	}
	return p.Table(tbl)
}
