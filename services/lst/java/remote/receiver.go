// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package remote

import (
	"reflect"
	"sort"

	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

// Receiver applies incoming field events to Java trees.
//
// Description:
//
//	A tree the receiver already has is visited kind by kind, each field
//	replaced through its WithX method, so untouched children keep their
//	identity. A tree announced with ADD is built by the Factory.
//
// Thread Safety:
//
//	Not safe for concurrent use. Sessions create one Receiver per Receive.
type Receiver struct {
	*java.BaseVisitor[*rpc.ReceiverContext]
	factory *Factory
}

// NewReceiver creates a Receiver building new nodes with f.
func NewReceiver(f *Factory) *Receiver {
	r := &Receiver{factory: f}
	r.BaseVisitor = java.NewBaseVisitor[*rpc.ReceiverContext](r)
	return r
}

var _ rpc.TreeReceiver = (*Receiver)(nil)

// ReceiveTree reads a tree. A nil before builds the node announced by
// ctx.Tag().
func (r *Receiver) ReceiveTree(before lst.Tree, ctx *rpc.ReceiverContext) lst.Tree {
	if lst.IsNil(before) {
		return r.factory.Create(ctx)
	}
	j, ok := before.(tree.J)
	if !ok {
		rpc.NotImplemented("ReceiveTree", "%T is not a Java tree", before)
	}
	return r.Visit(j, ctx)
}

// Factory builds nodes from the constructor arguments on the wire.
type Factory struct {
	constructors map[string]func(ctx *rpc.ReceiverContext) tree.J
}

// NewFactory creates a factory covering every Java node kind.
func NewFactory() *Factory {
	return &Factory{constructors: constructors}
}

// Create builds the node whose kind tag the current ADD event announced.
func (f *Factory) Create(ctx *rpc.ReceiverContext) tree.J {
	build, ok := f.constructors[ctx.Tag()]
	if !ok {
		rpc.Desync("Factory.Create", rpc.ErrUnknownType, "no constructor for %q", ctx.Tag())
	}
	return build(ctx)
}

// Tags returns the kind tags the factory can build, sorted.
func (f *Factory) Tags() []string {
	tags := make([]string, 0, len(f.constructors))
	for tag := range f.constructors {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func receiveID(ctx *rpc.ReceiverContext) uuid.UUID {
	return rpc.ReceiveValue(ctx, uuid.Nil, rpc.UUID)
}

func receivePrefix(ctx *rpc.ReceiverContext) *tree.Space {
	return rpc.ReceiveNode[*tree.Space](ctx, nil, receiveSpace)
}

func receiveNewMarkers(ctx *rpc.ReceiverContext) *lst.Markers {
	return rpc.ReceiveNode[*lst.Markers](ctx, nil, rpc.ReceiveMarkers)
}

func receiveTree[E tree.J](before E, ctx *rpc.ReceiverContext) E {
	return receiveTreeAny(before, ctx)
}

func receiveTreeAny[E any](before E, ctx *rpc.ReceiverContext) E {
	var in lst.Tree
	if t, ok := any(before).(lst.Tree); ok && !lst.IsNil(t) {
		in = t
	}
	out := ctx.ReceiveTree(in)
	e, ok := out.(E)
	if !ok {
		rpc.Desync("receiveTree", rpc.ErrDesync, "%T received for a %s slot", out, reflect.TypeOf((*E)(nil)).Elem())
	}
	return e
}

func receiveSpace(before *tree.Space, ctx *rpc.ReceiverContext) *tree.Space {
	comments := rpc.ReceiveNodes(ctx, before.Comments(), receiveComment)
	whitespace := rpc.ReceiveValue(ctx, before.Whitespace(), rpc.Primitive)
	if before == nil {
		if whitespace == "" && len(comments) == 0 {
			return tree.EmptySpace
		}
		return tree.BuildSpace(whitespace, comments)
	}
	return before.WithComments(comments).WithWhitespace(whitespace)
}

var emptyComment = tree.NewTextComment(false, "", "", nil)

func receiveComment(before tree.Comment, ctx *rpc.ReceiverContext) tree.Comment {
	tc := emptyComment
	if before != nil {
		var ok bool
		if tc, ok = before.(*tree.TextComment); !ok {
			rpc.NotImplemented("receiveComment", "%T comments", before)
		}
	}
	return tc.
		WithMultiline(rpc.ReceiveValue(ctx, tc.Multiline(), rpc.Primitive)).
		WithText(rpc.ReceiveValue(ctx, tc.Text(), rpc.Primitive)).
		WithSuffix(rpc.ReceiveValue(ctx, tc.Suffix(), rpc.Primitive)).
		WithMarkers(rpc.ReceiveNode(ctx, tc.Markers(), rpc.ReceiveMarkers))
}

func receivePayload[E any](ctx *rpc.ReceiverContext, before E, vt rpc.ValueType) E {
	if vt == rpc.Tree {
		return rpc.ReceiveNode(ctx, before, receiveTreeAny[E])
	}
	return rpc.ReceiveValue(ctx, before, vt)
}

func receiveLeftPadded[E any](vt rpc.ValueType) func(*tree.LeftPadded[E], *rpc.ReceiverContext) *tree.LeftPadded[E] {
	return func(before *tree.LeftPadded[E], ctx *rpc.ReceiverContext) *tree.LeftPadded[E] {
		space := rpc.ReceiveNode(ctx, before.Before(), receiveSpace)
		element := receivePayload(ctx, before.Element(), vt)
		markers := rpc.ReceiveNode(ctx, before.Markers(), rpc.ReceiveMarkers)
		if before == nil {
			return tree.NewLeftPadded(space, element, markers)
		}
		return before.WithBefore(space).WithElement(element).WithMarkers(markers)
	}
}

func receiveRightPadded[E any](vt rpc.ValueType) func(*tree.RightPadded[E], *rpc.ReceiverContext) *tree.RightPadded[E] {
	return func(before *tree.RightPadded[E], ctx *rpc.ReceiverContext) *tree.RightPadded[E] {
		element := receivePayload(ctx, before.Element(), vt)
		after := rpc.ReceiveNode(ctx, before.After(), receiveSpace)
		markers := rpc.ReceiveNode(ctx, before.Markers(), rpc.ReceiveMarkers)
		if before == nil {
			return tree.NewRightPadded(element, after, markers)
		}
		return before.WithElement(element).WithAfter(after).WithMarkers(markers)
	}
}

func receiveContainer[E any](vt rpc.ValueType) func(*tree.Container[E], *rpc.ReceiverContext) *tree.Container[E] {
	element := receiveRightPadded[E](vt)
	return func(before *tree.Container[E], ctx *rpc.ReceiverContext) *tree.Container[E] {
		space := rpc.ReceiveNode(ctx, before.Before(), receiveSpace)
		elements := rpc.ReceiveNodes(ctx, before.PaddedElements(), element)
		markers := rpc.ReceiveNode(ctx, before.Markers(), rpc.ReceiveMarkers)
		if before == nil {
			return tree.NewContainer(space, elements, markers)
		}
		return before.WithBefore(space).WithPaddedElements(elements).WithMarkers(markers)
	}
}
