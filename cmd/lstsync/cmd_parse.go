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
	"io"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/lstsync/pkg/ux"
	"github.com/AleutianAI/lstsync/services/lst/java"
)

var parseJSONOutput bool

var parseCmd = &cobra.Command{
	Use:   "parse <path>...",
	Short: "Parse Java sources and report node kind counts",
	Long: `Parse every Java file named or found below the given directories
and print the number of nodes of each kind.

Constructs the parser does not model are kept as Unknown nodes holding
their exact source text; their count is reported per file.

Examples:
  lstsync parse src/main/java
  lstsync parse --json Foo.java Bar.java`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(parseCmd)
}

// parseReport is the outcome of parsing a set of files.
type parseReport struct {
	Files  []fileReport   `json:"files"`
	Kinds  map[string]int `json:"kinds"`
	Failed int            `json:"failed"`
}

type fileReport struct {
	Path         string `json:"path"`
	Nodes        int    `json:"nodes,omitempty"`
	Unknown      int    `json:"unknown,omitempty"`
	SyntaxErrors bool   `json:"syntax_errors,omitempty"`
	Error        string `json:"error,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	files, err := collectSources(args, cfg.Watch.Extensions)
	if err != nil {
		return err
	}

	p := newParser()
	reports := make([]fileReport, len(files))
	kinds := make([]map[string]int, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers())
	for i, path := range files {
		g.Go(func() error {
			result, err := p.ParseFile(ctx, path)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				reports[i] = fileReport{Path: path, Error: err.Error()}
				return nil
			}
			counts := java.KindCounts(result.CompilationUnit)
			nodes := 0
			for _, n := range counts {
				nodes += n
			}
			kinds[i] = counts
			reports[i] = fileReport{
				Path:         path,
				Nodes:        nodes,
				Unknown:      result.Unknown,
				SyntaxErrors: result.SyntaxErrors,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	report := parseReport{Files: reports, Kinds: make(map[string]int)}
	for i, counts := range kinds {
		if reports[i].Error != "" {
			report.Failed++
		}
		for k, n := range counts {
			report.Kinds[k] += n
		}
	}

	out := cmd.OutOrStdout()
	if parseJSONOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else if err := printParseReport(out, report); err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", report.Failed, len(files))
	}
	return nil
}

func printParseReport(w io.Writer, r parseReport) error {
	p := ux.NewPrinter(w)
	files := ux.NewTable("FILE", "NODES", "UNKNOWN", "STATUS")
	for _, f := range r.Files {
		status, st := "ok", ux.StatusOK
		switch {
		case f.Error != "":
			status, st = f.Error, ux.StatusError
		case f.SyntaxErrors:
			status, st = "recovered from syntax errors", ux.StatusWarning
		}
		files.RowWithStatus(st, f.Path, f.Nodes, f.Unknown, status)
	}
	p.Title("Files", true)
	if err := p.Table(files); err != nil {
		return err
	}

	names := make([]string, 0, len(r.Kinds))
	for k := range r.Kinds {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if r.Kinds[names[i]] != r.Kinds[names[j]] {
			return r.Kinds[names[i]] > r.Kinds[names[j]]
		}
		return names[i] < names[j]
	})
	kinds := ux.NewTable("KIND", "COUNT")
	for _, k := range names {
		kinds.Row(k, r.Kinds[k])
	}
	p.Title("Kinds", false)
	return p.Table(kinds)
}
