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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/lstsync/pkg/ux"
	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
	"github.com/AleutianAI/lstsync/services/lst/server"
	"github.com/AleutianAI/lstsync/services/lst/telemetry"
)

var (
	receiveKinds      bool
	receiveJSONOutput bool
)

var receiveCmd = &cobra.Command{
	Use:   "receive [file]",
	Short: "Receive framed transmissions and summarize the trees",
	Long: `Read Content-Length framed batches written by "lstsync send" from
a file or stdin, apply every transmission, and print the latest version
of each tree.

Examples:
  lstsync send src | lstsync receive
  lstsync receive --kinds trees.lst`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReceive,
}

func init() {
	receiveCmd.Flags().BoolVar(&receiveKinds, "kinds", false, "Include node kind counts")
	receiveCmd.Flags().BoolVar(&receiveJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(receiveCmd)
}

func runReceive(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	ctx := cmd.Context()
	frames := rpc.NewFrameReader(in)
	mirror := rpc.NewMirror(newSession())
	r := rpc.NewPeekReader(frames)
	versions := 0
	for {
		_, err := mirror.Receive(ctx, r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("transmission %d: %w", versions+1, err)
		}
		versions++
	}
	if id := telemetry.TraceID(frames.TraceContext(ctx)); id != "" {
		slog.Debug("sender trace", slog.String("trace_id", id))
	}
	slog.Info("receive complete",
		slog.Int("transmissions", versions),
		slog.Int("trees", mirror.Len()))

	return printTrees(cmd.OutOrStdout(), mirror.Trees(), receiveKinds, receiveJSONOutput)
}

// printTrees writes one summary per tree.
func printTrees(w io.Writer, trees []lst.Tree, kinds, asJSON bool) error {
	sums := make([]server.TreeSummary, 0, len(trees))
	for _, t := range trees {
		sums = append(sums, server.Summarize(t, kinds))
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sums)
	}

	tbl := ux.NewTable("ID", "KIND", "SOURCE")
	if kinds {
		tbl = ux.NewTable("ID", "KIND", "SOURCE", "NODES", "TOP KINDS")
	}
	for _, s := range sums {
		if kinds {
			tbl.Row(s.ID, s.Kind, s.SourcePath, s.Nodes, topKinds(s.Kinds, 3))
		} else {
			tbl.Row(s.ID, s.Kind, s.SourcePath)
		}
	}
	return ux.NewPrinter(w).Table(tbl)
}

// topKinds formats the n most frequent kinds, such as "Identifier=12".
func topKinds(counts map[string]int, n int) string {
	names := make([]string, 0, len(counts))
	for k := range counts {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > n {
		names = names[:n]
	}
	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}
