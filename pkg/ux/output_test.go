// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	tbl := NewTable("FILE", "NODES", "STATUS")
	tbl.RowWithStatus(StatusOK, "A.java", 12, "ok")
	tbl.RowWithStatus(StatusError, "Broken.java", 0, "parse error")
	return tbl
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	require.False(t, p.Styled())

	p.Title("Files", true)
	require.NoError(t, p.Table(sampleTable()))
	p.Title("Kinds", false)
	p.Note("No journal streams.")

	want := "FILE         NODES  STATUS\n" +
		"A.java       12     ok\n" +
		"Broken.java  0      parse error\n" +
		"\n" +
		"No journal streams.\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_Styled(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterStyled(&buf, true)
	require.True(t, p.Styled())

	p.Title("Files", true)
	require.NoError(t, p.Table(sampleTable()))
	out := buf.String()

	assert.Contains(t, out, "Files")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╰")
	for _, cell := range []string{"FILE", "NODES", "STATUS", "A.java", "12", "Broken.java"} {
		assert.Contains(t, out, cell)
	}
	assert.Contains(t, out, "✓ ok")
	assert.Contains(t, out, "✗ parse error")
}

func TestTable_Len(t *testing.T) {
	tbl := NewTable("A")
	assert.Zero(t, tbl.Len())
	tbl.Row("x")
	assert.Equal(t, 1, tbl.Len())
}

func TestStatus_Icon(t *testing.T) {
	assert.Equal(t, "✓", StatusOK.Icon())
	assert.Equal(t, "⚠", StatusWarning.Icon())
	assert.Equal(t, "✗", StatusError.Icon())
	assert.Empty(t, StatusNone.Icon())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "a regular file is not a terminal")
}
