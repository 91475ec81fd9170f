// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package rpc is the dialect-neutral half of remote tree synchronization:
// the diff event stream, the send and receive primitives every dialect's
// sender and receiver are written against, the object codecs with their
// per-session reference tables, and the transports that carry batches of
// events between processes.
//
// A transmission is a depth-first walk of the tree in which every field
// produces one event. A field identical to the peer's previous value
// produces NO_CHANGE, so sending an edited tree against its previous
// version costs one small event per untouched field and the full encoding
// only for what changed.
package rpc

import (
	"fmt"

	"github.com/google/uuid"
)

// ValueType says how a field's value is encoded.
type ValueType int

const (
	// UUID values are node and marker ids.
	UUID ValueType = iota
	// Primitive values are nil, bool, int32, int64, float32, float64 and string.
	Primitive
	// Enum values are string-based enumerations sent by constant name.
	Enum
	// Object values go through an ObjectCodec.
	Object
	// Tree values are nodes sent field by field.
	Tree
)

var valueTypeNames = [...]string{"UUID", "PRIMITIVE", "ENUM", "OBJECT", "TREE"}

func (v ValueType) String() string {
	if int(v) < 0 || int(v) >= len(valueTypeNames) {
		return fmt.Sprintf("ValueType(%d)", int(v))
	}
	return valueTypeNames[v]
}

// EventState is the kind of a DiffEvent.
type EventState int

const (
	// NoChange means the receiver keeps its previous value.
	NoChange EventState = iota
	// Add carries a value the receiver builds from scratch.
	Add
	// Delete means the value became nil.
	Delete
	// Change means the receiver patches its previous value with the events
	// that follow.
	Change
	// End closes a transmission.
	End
)

var eventStateNames = [...]string{"NO_CHANGE", "ADD", "DELETE", "CHANGE", "END"}

func (s EventState) String() string {
	if int(s) < 0 || int(s) >= len(eventStateNames) {
		return fmt.Sprintf("EventState(%d)", int(s))
	}
	return eventStateNames[s]
}

// ParseEventState is the inverse of EventState.String.
func ParseEventState(s string) (EventState, error) {
	for i, name := range eventStateNames {
		if name == s {
			return EventState(i), nil
		}
	}
	return 0, fmt.Errorf("%w: event state %q", ErrDesync, s)
}

// Value tags carried by DiffEvent.ValueType for non-tree values. Tree
// additions carry the dialect's kind tag instead.
const (
	TagBool      = "bool"
	TagInt32     = "int32"
	TagInt64     = "int64"
	TagFloat32   = "float32"
	TagFloat64   = "float64"
	TagString    = "string"
	TagUUID      = "uuid"
	TagEnum      = "enum"
	TagObject    = "object"
	TagPositions = "positions"
)

// DiffEvent is one step of a transmission.
//
// For ADD events ValueType identifies what Value holds: a primitive tag,
// TagUUID, TagEnum, TagObject (Value is an encoded Doc), TagPositions
// (Value is the before-index of each list element, -1 for new ones) or a
// node kind tag (Value is nil; the node's fields follow).
type DiffEvent struct {
	State     EventState
	ValueType string
	Value     any
}

func (e DiffEvent) String() string {
	switch {
	case e.ValueType == "" && e.Value == nil:
		return e.State.String()
	case e.Value == nil:
		return fmt.Sprintf("%s %s", e.State, e.ValueType)
	default:
		return fmt.Sprintf("%s %s %v", e.State, e.ValueType, e.Value)
	}
}

// Batch is a run of consecutive events of one transmission.
type Batch struct {
	TreeID uuid.UUID   `json:"treeId"`
	Seq    int         `json:"seq"`
	Events []DiffEvent `json:"events"`
}

// Last reports whether the batch closes its transmission.
func (b *Batch) Last() bool {
	return len(b.Events) > 0 && b.Events[len(b.Events)-1].State == End
}
