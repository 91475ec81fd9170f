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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type wireEvent struct {
	State     string          `json:"state"`
	ValueType string          `json:"valueType,omitempty"`
	Value     json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the event with its state by name.
func (e DiffEvent) MarshalJSON() ([]byte, error) {
	w := wireEvent{State: e.State.String(), ValueType: e.ValueType}
	if e.Value != nil {
		raw, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal %s value: %w", e.ValueType, err)
		}
		w.Value = raw
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes an event, restoring the Go type of its value from
// the value tag: int32 stays int32, uuids become uuid.UUID, positions
// become []int and objects keep exact integers as json.Number.
func (e *DiffEvent) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	state, err := ParseEventState(w.State)
	if err != nil {
		return err
	}
	e.State = state
	e.ValueType = w.ValueType
	e.Value = nil
	if len(w.Value) == 0 || bytes.Equal(w.Value, []byte("null")) {
		return nil
	}

	var target any
	switch w.ValueType {
	case TagBool:
		target = new(bool)
	case TagInt32:
		target = new(int32)
	case TagInt64:
		target = new(int64)
	case TagFloat32:
		target = new(float32)
	case TagFloat64:
		target = new(float64)
	case TagString, TagEnum:
		target = new(string)
	case TagUUID:
		target = new(uuid.UUID)
	case TagPositions:
		target = new([]int)
	case TagObject:
		dec := json.NewDecoder(bytes.NewReader(w.Value))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("decode object value: %w", err)
		}
		e.Value = v
		return nil
	default:
		return fmt.Errorf("%w: value attached to %q event", ErrDesync, w.ValueType)
	}
	if err := json.Unmarshal(w.Value, target); err != nil {
		return fmt.Errorf("decode %s value: %w", w.ValueType, err)
	}
	e.Value = derefValue(target)
	return nil
}

func derefValue(p any) any {
	switch v := p.(type) {
	case *bool:
		return *v
	case *int32:
		return *v
	case *int64:
		return *v
	case *float32:
		return *v
	case *float64:
		return *v
	case *string:
		return *v
	case *uuid.UUID:
		return *v
	case *[]int:
		return *v
	}
	return nil
}

// MarshalBatch encodes a batch as JSON.
func MarshalBatch(b *Batch) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshal batch %d: %w", b.Seq, err)
	}
	return data, nil
}

// UnmarshalBatch decodes a batch written by MarshalBatch.
func UnmarshalBatch(data []byte) (*Batch, error) {
	var b Batch
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("unmarshal batch: %w", err)
	}
	return &b, nil
}
