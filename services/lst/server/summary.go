// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package server

import (
	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
)

// TreeSummary describes a received tree.
type TreeSummary struct {
	ID         uuid.UUID      `json:"id"`
	Kind       string         `json:"kind"`
	SourcePath string         `json:"source_path,omitempty"`
	Checksum   string         `json:"checksum,omitempty"`
	Nodes      int            `json:"nodes,omitempty"`
	Kinds      map[string]int `json:"kinds,omitempty"`
}

// Summarize describes t. withKinds adds node kind counts, which walks the
// whole tree.
func Summarize(t lst.Tree, withKinds bool) TreeSummary {
	sum := TreeSummary{ID: t.ID()}
	j, ok := t.(tree.J)
	if !ok {
		return sum
	}
	sum.Kind = java.KindName(j)
	if cu, ok := j.(*tree.CompilationUnit); ok {
		sum.SourcePath = cu.SourcePath()
		if cs := cu.Checksum(); cs != nil {
			sum.Checksum = cs.String()
		}
	}
	if withKinds {
		sum.Kinds = java.KindCounts(j)
		for _, n := range sum.Kinds {
			sum.Nodes += n
		}
	}
	return sum
}
