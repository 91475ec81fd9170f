// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package treetest builds Java trees for tests: small helpers plus one
// fully populated sample of every node kind.
package treetest

import (
	"time"

	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/java/types"
)

// SharedClass is referenced from the type attribution of every sample, so
// a tree of samples reaches it many times. Its member and method point
// back at it.
var SharedClass = newSharedClass()

func newSharedClass() *types.Class {
	c := types.NewClass(int64(types.FlagPublic), "com.example.Sample", types.KindClass)
	field := types.NewVariable(int64(types.FlagPrivate), "count").UnsafeSet(c, types.Int, nil)
	method := types.NewMethod(int64(types.FlagPublic), "run").
		UnsafeSet(c, types.Void, []string{"n"}, []types.JavaType{types.Int}, nil, nil, nil)
	return c.UnsafeSet(nil, nil, nil, nil, nil, []*types.Variable{field}, []*types.Method{method})
}

// Ident returns an identifier typed as SharedClass.
func Ident(name string) *tree.Identifier {
	return tree.NewIdentifier(uuid.New(), tree.EmptySpace, Markers(), nil, name, SharedClass, nil)
}

// Space returns whitespace-only formatting.
func Space(whitespace string) *tree.Space {
	if whitespace == "" {
		return tree.EmptySpace
	}
	return tree.BuildSpace(whitespace, nil)
}

// Markers returns a marker set holding one search result.
func Markers() *lst.Markers {
	return lst.BuildMarkers(lst.NewSearchResult(uuid.New(), "sample"))
}

// MethodType returns the method type of SharedClass.
func MethodType() *types.Method { return SharedClass.Methods()[0] }

// VariableType returns the field type of SharedClass.
func VariableType() *types.Variable { return SharedClass.Members()[0] }

func Checksum() *tree.Checksum {
	return tree.NewChecksum("SHA-256", []byte{0xde, 0xad, 0xbe, 0xef})
}

func FileAttributes() *tree.FileAttributes {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 535_000_000, time.UTC)
	return tree.NewFileAttributes(ts, ts.Add(time.Hour), time.Time{}, true, true, false, 4096)
}

func UnicodeEscapes() []*tree.UnicodeEscape {
	return []*tree.UnicodeEscape{tree.NewUnicodeEscape(1, "00e9")}
}
