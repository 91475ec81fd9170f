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
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sort"

	"github.com/AleutianAI/lstsync/services/lst/java/parser"
	"github.com/AleutianAI/lstsync/services/lst/java/remote"
	"github.com/AleutianAI/lstsync/services/lst/journal"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
	"github.com/AleutianAI/lstsync/services/lst/watch"
)

// skipDirs are never descended into when collecting sources.
var skipDirs = []string{".git", ".idea", ".gradle", "build", "target", "node_modules"}

// collectSources expands paths into the sorted list of source files they
// name. Directories are walked; files are taken as given whatever their
// extension.
func collectSources(paths []string, exts []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && slices.Contains(skipDirs, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if watch.MatchExtension(path, exts) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	sort.Strings(out)
	return out, nil
}

func newParser() *parser.Parser {
	return parser.New(
		parser.WithMaxFileSize(cfg.Parser.MaxFileSize),
		parser.WithLogger(slog.Default()),
	)
}

func newSession() *rpc.Session {
	return remote.NewSession(
		rpc.WithBatchSize(cfg.Session.BatchSize),
		rpc.WithLogger(slog.Default()),
	)
}

// workers returns the configured parse concurrency.
func workers() int {
	if cfg.Parser.Workers > 0 {
		return cfg.Parser.Workers
	}
	return runtime.NumCPU()
}

func openJournal() (*journal.Store, error) {
	store, err := journal.Open(cfg.Journal.JournalOptions(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return store, nil
}

// claimStream prepares stream for a new sender session. A stream with
// recorded batches is only reused when reset is set, since its
// references belong to the session that wrote it.
func claimStream(store *journal.Store, stream string, reset bool) error {
	n, err := store.Len(stream)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if !reset {
		return fmt.Errorf("journal stream %q already has %d batches; use --reset to replace it", stream, n)
	}
	return store.Drop(stream)
}
