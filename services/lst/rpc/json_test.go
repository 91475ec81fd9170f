// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package rpc

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffEventJSON(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name  string
		event DiffEvent
	}{
		{"no change", DiffEvent{State: NoChange}},
		{"end", DiffEvent{State: End}},
		{"add node", DiffEvent{State: Add, ValueType: "org.openrewrite.java.tree.J$Empty"}},
		{"bool", DiffEvent{State: Add, ValueType: TagBool, Value: true}},
		{"int32", DiffEvent{State: Add, ValueType: TagInt32, Value: int32(-3)}},
		{"int64", DiffEvent{State: Add, ValueType: TagInt64, Value: int64(1) << 60}},
		{"float32", DiffEvent{State: Add, ValueType: TagFloat32, Value: float32(1.5)}},
		{"float64", DiffEvent{State: Add, ValueType: TagFloat64, Value: 2.25}},
		{"string", DiffEvent{State: Add, ValueType: TagString, Value: "x"}},
		{"empty string", DiffEvent{State: Add, ValueType: TagString, Value: ""}},
		{"uuid", DiffEvent{State: Add, ValueType: TagUUID, Value: id}},
		{"enum", DiffEvent{State: Add, ValueType: TagEnum, Value: "Addition"}},
		{"positions", DiffEvent{State: Change, ValueType: TagPositions, Value: []int{1, -1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalBatch(&Batch{TreeID: id, Seq: 3, Events: []DiffEvent{tt.event}})
			require.NoError(t, err)
			got, err := UnmarshalBatch(data)
			require.NoError(t, err)
			assert.Equal(t, id, got.TreeID)
			assert.Equal(t, 3, got.Seq)
			require.Len(t, got.Events, 1)
			assert.Equal(t, tt.event, got.Events[0])
		})
	}
}

func TestDiffEventJSON_Errors(t *testing.T) {
	for _, data := range []string{
		`{"events":[{"state":"SIDEWAYS"}]}`,
		`{"events":[{"state":"ADD","valueType":"test.Tree","value":1}]}`,
		`{"events":[{"state":"ADD","valueType":"int32","value":"x"}]}`,
		`{"events":[`,
	} {
		_, err := UnmarshalBatch([]byte(data))
		assert.Error(t, err, data)
	}
}

func TestEventNames(t *testing.T) {
	assert.Equal(t, "NO_CHANGE", NoChange.String())
	assert.Equal(t, "EventState(9)", EventState(9).String())
	assert.Equal(t, "OBJECT", Object.String())
	assert.Equal(t, "ADD int32 4", DiffEvent{State: Add, ValueType: TagInt32, Value: int32(4)}.String())

	s, err := ParseEventState("DELETE")
	require.NoError(t, err)
	assert.Equal(t, Delete, s)
	_, err = ParseEventState("delete")
	assert.ErrorIs(t, err, ErrDesync)
}
