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

// TreeReceiver reads the fields of a tree in its dialect's wire order.
// A nil before means the tree is new and must be built by the dialect's
// factory from ReceiverContext.Tag.
type TreeReceiver interface {
	ReceiveTree(before lst.Tree, ctx *ReceiverContext) lst.Tree
}

// ReceiverContext is the state of one incoming transmission.
//
// Thread Safety:
//
//	Not safe for concurrent use. One context serves one transmission.
type ReceiverContext struct {
	q        *ReceiveQueue
	dec      *Decoder
	receiver TreeReceiver
	tag      string
}

// Tag returns the kind tag of the node being added, as announced by the
// ADD event that started it.
func (c *ReceiverContext) Tag() string { return c.tag }

// ReceiveTree reads a tree through the dialect's receiver.
func (c *ReceiverContext) ReceiveTree(before lst.Tree) lst.Tree {
	return c.receiver.ReceiveTree(before, c)
}

func (c *ReceiverContext) next(op string) DiffEvent {
	e := c.q.take(op)
	if e.State == End {
		Desync(op, ErrUnexpectedEnd, "transmission closed mid-tree")
	}
	return e
}

// ReceiveValue reads a field written by SendValue. before is returned for
// NO_CHANGE and the zero value for DELETE.
func ReceiveValue[V any](ctx *ReceiverContext, before V, vt ValueType) V {
	return receiveValue(ctx, "ReceiveValue", ctx.next("ReceiveValue"), before, vt)
}

func receiveValue[V any](ctx *ReceiverContext, op string, e DiffEvent, before V, vt ValueType) V {
	var zero V
	switch e.State {
	case NoChange:
		return before
	case Delete:
		return zero
	case Add:
		return coerce[V](op, ctx.decodeValue(op, e, vt))
	}
	Desync(op, ErrDesync, "%s event for a %s value", e.State, vt)
	return zero
}

func (c *ReceiverContext) decodeValue(op string, e DiffEvent, vt ValueType) any {
	switch vt {
	case Object:
		return c.dec.Decode(e.Value)
	case UUID:
		switch id := e.Value.(type) {
		case uuid.UUID:
			return id
		case string:
			parsed, err := uuid.Parse(id)
			if err != nil {
				Desync(op, ErrDesync, "bad uuid %q", id)
			}
			return parsed
		}
		Desync(op, ErrDesync, "%T sent as uuid", e.Value)
	case Tree:
		NotImplemented(op, "tree values are received with ReceiveNode")
	}
	return e.Value
}

func coerce[V any](op string, v any) V {
	var zero V
	if v == nil {
		return zero
	}
	if typed, ok := v.(V); ok {
		return typed
	}
	target := reflect.TypeOf((*V)(nil)).Elem()
	rv := reflect.ValueOf(v)
	if target.Kind() != reflect.Interface && rv.Kind() == target.Kind() && rv.Type().ConvertibleTo(target) {
		return rv.Convert(target).Interface().(V)
	}
	Desync(op, ErrDesync, "%T received where %s is expected", v, target)
	return zero
}

// ReceiveNode reads a child node written by SendNode. recv reads the
// child's fields; it is given the previous child for CHANGE and the zero
// value for ADD.
func ReceiveNode[V any](ctx *ReceiverContext, before V, recv func(V, *ReceiverContext) V) V {
	return receiveNode(ctx, "ReceiveNode", ctx.next("ReceiveNode"), before, recv)
}

func receiveNode[V any](ctx *ReceiverContext, op string, e DiffEvent, before V, recv func(V, *ReceiverContext) V) V {
	var zero V
	switch e.State {
	case NoChange:
		return before
	case Delete:
		return zero
	case Add:
		saved := ctx.tag
		ctx.tag = e.ValueType
		defer func() { ctx.tag = saved }()
		return recv(zero, ctx)
	case Change:
		if lst.IsNil(before) {
			Desync(op, ErrDesync, "change of a %T the receiver does not have", before)
		}
		return recv(before, ctx)
	}
	Desync(op, ErrDesync, "unexpected %s event", e.State)
	return zero
}

// ReceiveNodes reads a list written by SendNodes. It returns before itself
// when no element changed.
func ReceiveNodes[V any](ctx *ReceiverContext, before []V, recv func(V, *ReceiverContext) V) []V {
	const op = "ReceiveNodes"
	return receiveList(ctx, op, before, func(e DiffEvent, b V) V {
		return receiveNode(ctx, op, e, b, recv)
	})
}

// ReceiveValues reads a list written by SendValues.
func ReceiveValues[V any](ctx *ReceiverContext, before []V, vt ValueType) []V {
	const op = "ReceiveValues"
	return receiveList(ctx, op, before, func(e DiffEvent, b V) V {
		return receiveValue(ctx, op, e, b, vt)
	})
}

func receiveList[V any](ctx *ReceiverContext, op string, before []V, each func(DiffEvent, V) V) []V {
	e := ctx.next(op)
	switch e.State {
	case NoChange:
		return before
	case Delete:
		return nil
	case Add, Change:
	default:
		Desync(op, ErrDesync, "unexpected %s event for a list", e.State)
	}

	positions := positionsOf(op, e, len(before))
	out := make([]V, len(positions))
	changed := len(positions) != len(before)
	for i, pos := range positions {
		var b V
		if pos >= 0 {
			b = before[pos]
		}
		out[i] = each(ctx.next(op), b)
		if pos != i || !lst.Same(out[i], b) {
			changed = true
		}
	}
	if !changed {
		return before
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func positionsOf(op string, e DiffEvent, n int) []int {
	var positions []int
	switch v := e.Value.(type) {
	case []int:
		positions = v
	case []any:
		positions = make([]int, len(v))
		for i, p := range v {
			positions[i] = int(DocInt64(p))
		}
	default:
		Desync(op, ErrDesync, "list header carries %T", e.Value)
	}
	for _, p := range positions {
		if p < -1 || p >= n {
			Desync(op, ErrDesync, "list position %d outside previous list of %d", p, n)
		}
	}
	return positions
}

// ReceiveMarkers reads a marker set written by SendMarkers.
func ReceiveMarkers(before *lst.Markers, ctx *ReceiverContext) *lst.Markers {
	id := ReceiveValue(ctx, before.ID(), UUID)
	markers := ReceiveValues(ctx, before.Markers(), Object)
	if before == nil {
		if id == lst.EmptyMarkers.ID() && len(markers) == 0 {
			return lst.EmptyMarkers
		}
		return lst.NewMarkers(id, markers...)
	}
	return before.WithID(id).WithMarkers(markers)
}
