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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/config"
	"github.com/AleutianAI/lstsync/services/lst/java/parser"
	"github.com/AleutianAI/lstsync/services/lst/journal"
	"github.com/AleutianAI/lstsync/services/lst/server"
)

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// sourceTree creates a small Java project and returns its root.
func sourceTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeSource(t, filepath.Join(root, "src", "demo", "Greeter.java"), `package demo;

public class Greeter {
    private final String greeting = "hello";

    public String greet(String name) {
        return greeting + " " + name;
    }
}
`)
	writeSource(t, filepath.Join(root, "src", "demo", "Color.java"), "package demo;\n\nenum Color { RED, GREEN }\n")
	writeSource(t, filepath.Join(root, "build", "Generated.java"), "class Generated {}\n")
	writeSource(t, filepath.Join(root, "README.md"), "# demo\n")
	return root
}

// execute runs the CLI with args and returns its standard output. Flags
// start from their defaults on every run.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	require.NoError(t, teardown(context.Background()))
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestCollectSources(t *testing.T) {
	root := sourceTree(t)
	files, err := collectSources([]string{root}, []string{".java"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "src", "demo", "Color.java"),
		filepath.Join(root, "src", "demo", "Greeter.java"),
	}, files)

	readme := filepath.Join(root, "README.md")
	files, err = collectSources([]string{readme, readme}, []string{".java"})
	require.NoError(t, err)
	assert.Equal(t, []string{readme}, files, "named files are taken as given, once")

	_, err = collectSources([]string{filepath.Join(root, "missing")}, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFrameFileName(t *testing.T) {
	assert.Equal(t, "src_a_B.java.lst", frameFileName("src/a/B.java"))
	assert.Equal(t, "a_B.java.lst", frameFileName("../../a/B.java"))
	assert.Equal(t, "tmp_B.java.lst", frameFileName("/tmp/B.java"))
}

func TestSyncURL(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		stream string
		reset  bool
		want   string
		err    bool
	}{
		{name: "default path", raw: "ws://localhost:8089", want: "ws://localhost:8089/v1/lst/sync"},
		{name: "http becomes ws", raw: "http://h:1/", stream: "dev", want: "ws://h:1/v1/lst/sync?stream=dev"},
		{name: "https becomes wss", raw: "https://h/custom", reset: true, want: "wss://h/custom?reset=true"},
		{name: "bad scheme", raw: "ftp://h", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := syncURL(tt.raw, tt.stream, tt.reset)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDestinationFlags_Validate(t *testing.T) {
	tests := []struct {
		name  string
		flags destinationFlags
		err   bool
	}{
		{"stdout", destinationFlags{out: "-"}, false},
		{"journal with stdout", destinationFlags{out: "-", journal: "s"}, false},
		{"journal with file", destinationFlags{out: "f.lst", journal: "s"}, true},
		{"journal with url", destinationFlags{journal: "s", url: "ws://h"}, true},
		{"bad journal", destinationFlags{journal: "a/b"}, true},
		{"bad stream", destinationFlags{url: "ws://h", stream: "a b"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.flags.validate()
			if tt.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDestinationFlags_ValidateTrimsNames(t *testing.T) {
	f, err := destinationFlags{journal: " dev "}.validate()
	require.NoError(t, err)
	assert.Equal(t, "dev", f.journal)

	f, err = destinationFlags{url: "ws://h", stream: "\tmain\n"}.validate()
	require.NoError(t, err)
	assert.Equal(t, "main", f.stream)
}

func TestClaimStream(t *testing.T) {
	store, err := journal.OpenInMemory()
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, claimStream(store, "s", false))
	result, err := parser.New().Parse(ctx, []byte("class A {}\n"), "A.java")
	require.NoError(t, err)
	cfg = config.Default()
	require.NoError(t, newSession().Send(ctx, store.Writer("s"), result.CompilationUnit, nil))

	assert.Error(t, claimStream(store, "s", false))
	require.NoError(t, claimStream(store, "s", true))
	n, err := store.Len("s")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTopKinds(t *testing.T) {
	counts := map[string]int{"Identifier": 5, "Literal": 2, "Block": 2, "Return": 1}
	assert.Equal(t, "Identifier=5 Block=2 Literal=2", topKinds(counts, 3))
	assert.Empty(t, topKinds(nil, 3))
}

func TestPrintTrees(t *testing.T) {
	result, err := parser.New().Parse(context.Background(), []byte("class A { int x; }\n"), "A.java")
	require.NoError(t, err)
	trees := []lst.Tree{result.CompilationUnit}

	var text bytes.Buffer
	require.NoError(t, printTrees(&text, trees, true, false))
	assert.Contains(t, text.String(), "TOP KINDS")
	assert.Contains(t, text.String(), "A.java")

	var js bytes.Buffer
	require.NoError(t, printTrees(&js, trees, false, true))
	var sums []server.TreeSummary
	require.NoError(t, json.Unmarshal(js.Bytes(), &sums))
	require.Len(t, sums, 1)
	assert.Equal(t, result.CompilationUnit.ID(), sums[0].ID)
}

func TestPrintParseReport_PlainWhenPiped(t *testing.T) {
	report := parseReport{
		Files: []fileReport{
			{Path: "A.java", Nodes: 7},
			{Path: "B.java", Error: "unsupported construct"},
		},
		Kinds:  map[string]int{"Identifier": 4, "Block": 1},
		Failed: 1,
	}
	var buf bytes.Buffer
	require.NoError(t, printParseReport(&buf, report))

	out := buf.String()
	assert.NotContains(t, out, "╭", "piped output has no box drawing")
	assert.NotContains(t, out, "\x1b[", "piped output has no color codes")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "FILE    NODES  UNKNOWN  STATUS", lines[0])
	assert.Equal(t, "B.java  0      0        unsupported construct", lines[2])
	assert.Empty(t, lines[3])
	assert.Equal(t, "Identifier  4", lines[5])
}

func TestCLI_SendReceive(t *testing.T) {
	t.Setenv("LSTSYNC_LOG_LEVEL", "warn")
	root := sourceTree(t)
	frames := filepath.Join(t.TempDir(), "trees.lst")

	_, err := execute(t, "send", "--out", frames, filepath.Join(root, "src"))
	require.NoError(t, err)
	info, err := os.Stat(frames)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	out, err := execute(t, "receive", "--json", "--kinds", frames)
	require.NoError(t, err)
	var sums []server.TreeSummary
	require.NoError(t, json.Unmarshal([]byte(out), &sums))
	require.Len(t, sums, 2)
	assert.Equal(t, filepath.Join(root, "src", "demo", "Color.java"), sums[0].SourcePath)
	assert.Equal(t, 2, sums[0].Kinds["EnumValue"])
	assert.Equal(t, filepath.Join(root, "src", "demo", "Greeter.java"), sums[1].SourcePath)
	assert.Equal(t, 1, sums[1].Kinds["Return"])
}

func TestCLI_SendOutDir(t *testing.T) {
	t.Setenv("LSTSYNC_LOG_LEVEL", "warn")
	root := sourceTree(t)
	dir := t.TempDir()

	_, err := execute(t, "send", "--out-dir", dir, filepath.Join(root, "src"))
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	for _, e := range entries {
		out, err := execute(t, "receive", "--json", filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		var sums []server.TreeSummary
		require.NoError(t, json.Unmarshal([]byte(out), &sums))
		assert.Len(t, sums, 1)
	}
}

func TestCLI_JournalReplay(t *testing.T) {
	t.Setenv("LSTSYNC_LOG_LEVEL", "warn")
	t.Setenv("LSTSYNC_JOURNAL_PATH", filepath.Join(t.TempDir(), "journal"))
	root := sourceTree(t)

	_, err := execute(t, "send", "--out", "-", "--journal", "nightly", filepath.Join(root, "src"))
	require.NoError(t, err)

	_, err = execute(t, "send", "--journal", "nightly", filepath.Join(root, "src"))
	require.Error(t, err, "a recorded stream is not reused without --reset")

	out, err := execute(t, "replay", "--json")
	require.NoError(t, err)
	var streams []streamInfo
	require.NoError(t, json.Unmarshal([]byte(out), &streams))
	require.Len(t, streams, 1)
	assert.Equal(t, "nightly", streams[0].Name)
	assert.NotZero(t, streams[0].Batches)
	assert.Equal(t, filepath.Join(root, "src"), streams[0].Meta["source"])

	out, err = execute(t, "replay", "--json", "nightly")
	require.NoError(t, err)
	var sums []server.TreeSummary
	require.NoError(t, json.Unmarshal([]byte(out), &sums))
	assert.Len(t, sums, 2)

	_, err = execute(t, "replay", "--drop", "nightly")
	require.NoError(t, err)
	_, err = execute(t, "replay", "nightly")
	assert.Error(t, err)
}

func TestCLI_Kinds(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "CompilationUnit")
	assert.Contains(t, out, "org.openrewrite.java.tree.J$CompilationUnit")
}

func TestCLI_Parse(t *testing.T) {
	t.Setenv("LSTSYNC_LOG_LEVEL", "warn")
	root := sourceTree(t)
	bad := filepath.Join(root, "src", "Bad.java")
	writeSource(t, bad, "package a;\n\nint x = 1;\n")

	out, err := execute(t, "parse", "--json", filepath.Join(root, "src"))
	require.Error(t, err)
	var report parseReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Files, 3)
	assert.Equal(t, 2, report.Kinds["ClassDeclaration"])
	assert.Equal(t, 2, report.Kinds["EnumValue"])
}
