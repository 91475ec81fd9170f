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
	"reflect"

	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst"
)

// TreeSender sends the fields of a tree in its dialect's wire order.
type TreeSender interface {
	SendTree(t lst.Tree, ctx *SenderContext)
}

// SenderContext is the state of one outgoing transmission.
//
// Description:
//
//	The send primitives compare each field of the node being sent with the
//	same field of its previous version, which the context tracks as the
//	"before" value while a node's fields are enumerated.
//
// Thread Safety:
//
//	Not safe for concurrent use. One context serves one transmission.
type SenderContext struct {
	q       *SendQueue
	enc     *Encoder
	dialect *Dialect
	sender  TreeSender
	before  any
}

// Before returns the previous version of the node whose fields are being
// sent, or nil when the node is new to the receiver.
func (c *SenderContext) Before() any { return c.before }

// SendTree sends the fields of t through the dialect's sender.
func (c *SenderContext) SendTree(t lst.Tree) { c.sender.SendTree(t, c) }

func (c *SenderContext) put(e DiffEvent) { c.q.put(e) }

func (c *SenderContext) withBefore(before any, fn func()) {
	saved := c.before
	c.before = before
	defer func() { c.before = saved }()
	fn()
}

func parentBefore[T any](c *SenderContext) (T, bool) {
	b, ok := c.before.(T)
	if !ok || lst.IsNil(b) {
		var zero T
		return zero, false
	}
	return b, true
}

// SendValue sends a scalar, id, enum or object field.
//
// Description:
//
//	get reads the field from the node being sent and, when there is one,
//	from its previous version. An identical value sends NO_CHANGE, a nil
//	value DELETE, anything else ADD with the value encoded per vt.
//
// Inputs:
//
//	ctx - The transmission.
//	after - The node being sent.
//	get - Field accessor, typically a method expression such as
//	      (*tree.Literal).ValueSource.
//	vt - Encoding of the field. Tree is not valid here; use SendNode.
//
// Example:
//
//	rpc.SendValue(ctx, lit, (*tree.Literal).ValueSource, rpc.Primitive)
func SendValue[T, V any](ctx *SenderContext, after T, get func(T) V, vt ValueType) {
	var before V
	if b, ok := parentBefore[T](ctx); ok {
		before = get(b)
	}
	ctx.sendValue(get(after), before, vt)
}

// SendTypedValue sends a nullable type-attribution field. Types are
// objects shared by reference within a session.
func SendTypedValue[T, V any](ctx *SenderContext, after T, get func(T) V) {
	SendValue(ctx, after, get, Object)
}

func (c *SenderContext) sendValue(after, before any, vt ValueType) {
	switch {
	case lst.Same(after, before):
		c.put(DiffEvent{State: NoChange})
	case lst.IsNil(after):
		c.put(DiffEvent{State: Delete})
	default:
		tag, v := c.encodeValue(after, vt)
		c.put(DiffEvent{State: Add, ValueType: tag, Value: v})
	}
}

func (c *SenderContext) encodeValue(v any, vt ValueType) (string, any) {
	switch vt {
	case UUID:
		id, ok := v.(uuid.UUID)
		if !ok {
			NotImplemented("SendValue", "%T sent as %s", v, vt)
		}
		return TagUUID, id
	case Primitive:
		tag, ok := primitiveTag(v)
		if !ok {
			NotImplemented("SendValue", "%T is not a primitive", v)
		}
		return tag, v
	case Enum:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.String {
			NotImplemented("SendValue", "%T is not a string enum", v)
		}
		return TagEnum, rv.String()
	case Object:
		return TagObject, c.enc.Encode(v)
	default:
		NotImplemented("SendValue", "%s values are sent with SendNode", vt)
		return "", nil
	}
}

func primitiveTag(v any) (string, bool) {
	switch v.(type) {
	case bool:
		return TagBool, true
	case int32:
		return TagInt32, true
	case int64:
		return TagInt64, true
	case float32:
		return TagFloat32, true
	case float64:
		return TagFloat64, true
	case string:
		return TagString, true
	}
	return "", false
}

// SendNode sends a child node field: a tree, a padding wrapper, a Space
// or a Markers. send enumerates the child's own fields.
//
// A child with a new identity is sent as ADD followed by all its fields;
// a child that changed in place is sent as CHANGE followed by its fields
// compared against the previous child.
func SendNode[T, V any](ctx *SenderContext, after T, get func(T) V, send func(V, *SenderContext)) {
	var before V
	if b, ok := parentBefore[T](ctx); ok {
		before = get(b)
	}
	sendNode(ctx, get(after), before, send)
}

func sendNode[V any](ctx *SenderContext, after, before V, send func(V, *SenderContext)) {
	switch {
	case lst.Same(after, before):
		ctx.put(DiffEvent{State: NoChange})
	case lst.IsNil(after):
		ctx.put(DiffEvent{State: Delete})
	case lst.IsNil(before) || !sameIdentity(after, before):
		ctx.put(DiffEvent{State: Add, ValueType: ctx.tagOf(after)})
		ctx.withBefore(nil, func() { send(after, ctx) })
	default:
		ctx.put(DiffEvent{State: Change})
		ctx.withBefore(before, func() { send(after, ctx) })
	}
}

// sameIdentity reports whether after can be sent as an in-place change of
// before: same concrete type and, for trees, the same id.
func sameIdentity(after, before any) bool {
	if reflect.TypeOf(after) != reflect.TypeOf(before) {
		return false
	}
	at, ok := after.(lst.Tree)
	if !ok {
		return true
	}
	return at.ID() == before.(lst.Tree).ID()
}

func (c *SenderContext) tagOf(v any) string {
	t, ok := v.(lst.Tree)
	if !ok {
		return ""
	}
	tag, ok := c.dialect.TagOf(t)
	if !ok {
		NotImplemented("SendNode", "no %s type tag for %T", c.dialect.Name, v)
	}
	return tag
}

// SendNodes sends a list of child nodes.
//
// Description:
//
//	The list header carries, for every element of the new list, the index
//	of the element with the same id in the previous list, or -1. One
//	element event follows per new element, compared against the previous
//	element it was matched with.
//
// Inputs:
//
//	id - Identity key per element, usually the node id.
func SendNodes[T, V any](ctx *SenderContext, after T, get func(T) []V, send func(V, *SenderContext), id func(V) any) {
	var before []V
	if b, ok := parentBefore[T](ctx); ok {
		before = get(b)
	}
	sendList(ctx, get(after), before, id, func(a, b V) { sendNode(ctx, a, b, send) })
}

// SendValues sends a list of values, each encoded per vt.
func SendValues[T, V any](ctx *SenderContext, after T, get func(T) []V, id func(V) any, vt ValueType) {
	var before []V
	if b, ok := parentBefore[T](ctx); ok {
		before = get(b)
	}
	sendList(ctx, get(after), before, id, func(a, b V) { ctx.sendValue(a, b, vt) })
}

func sendList[V any](ctx *SenderContext, after, before []V, id func(V) any, each func(a, b V)) {
	switch {
	case lst.SameSlice(after, before):
		ctx.put(DiffEvent{State: NoChange})
		return
	case len(after) == 0:
		ctx.put(DiffEvent{State: Delete})
		return
	}

	index := make(map[any]int, len(before))
	for i, b := range before {
		index[id(b)] = i
	}
	positions := make([]int, len(after))
	for i, a := range after {
		if pos, ok := index[id(a)]; ok {
			positions[i] = pos
		} else {
			positions[i] = -1
		}
	}
	state := Change
	if before == nil {
		state = Add
	}
	ctx.put(DiffEvent{State: state, ValueType: TagPositions, Value: positions})
	for i, a := range after {
		var b V
		if pos := positions[i]; pos >= 0 {
			b = before[pos]
		}
		each(a, b)
	}
}

// SendMarkers sends a marker set: its id, then its markers as objects.
func SendMarkers(m *lst.Markers, ctx *SenderContext) {
	SendValue(ctx, m, (*lst.Markers).ID, UUID)
	SendValues(ctx, m, (*lst.Markers).Markers, MarkerID, Object)
}

// MarkerID is the list identity of a marker.
func MarkerID(m lst.Marker) any { return m.ID() }
