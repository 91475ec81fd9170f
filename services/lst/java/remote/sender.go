// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package remote synchronizes Java trees with a peer over the rpc
// protocol.
//
// The Sender walks a tree and emits one diff event per field in the wire
// order of each node kind. The Receiver reads those events back, applying
// them to the previous version of the tree, or building new nodes through
// the Factory. Both sides must use the same kind tags, field order and
// object codecs; Dialect bundles them for rpc.Session.
package remote

import (
	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

// Sender enumerates the fields of Java trees for a transmission.
//
// Thread Safety:
//
//	Not safe for concurrent use. Sessions create one Sender per Send.
type Sender struct {
	*java.BaseVisitor[*rpc.SenderContext]
}

// NewSender creates a Sender.
func NewSender() *Sender {
	s := &Sender{}
	s.BaseVisitor = java.NewBaseVisitor[*rpc.SenderContext](s)
	return s
}

var _ rpc.TreeSender = (*Sender)(nil)

// SendTree sends the fields of t, comparing against ctx.Before().
func (s *Sender) SendTree(t lst.Tree, ctx *rpc.SenderContext) {
	j, ok := t.(tree.J)
	if !ok {
		rpc.NotImplemented("SendTree", "%T is not a Java tree", t)
	}
	s.Visit(j, ctx)
}

func sendTree[E tree.J](t E, ctx *rpc.SenderContext) { ctx.SendTree(t) }

func sendTreeAny[E any](e E, ctx *rpc.SenderContext) {
	t, ok := any(e).(lst.Tree)
	if !ok {
		rpc.NotImplemented("sendTree", "%T payload sent as a tree", e)
	}
	ctx.SendTree(t)
}

func treeID[E tree.J](t E) any { return t.ID() }

func identity[E any](e E) any { return e }

// rightPaddedID keys padded list elements by the id of their element, so
// a re-wrapped element still matches its previous position.
func rightPaddedID[E any](rp *tree.RightPadded[E]) any {
	if t, ok := any(rp.Element()).(lst.Tree); ok && !lst.IsNil(t) {
		return t.ID()
	}
	return rp
}

func sendSpace(s *tree.Space, ctx *rpc.SenderContext) {
	rpc.SendNodes(ctx, s, (*tree.Space).Comments, sendComment, commentKey)
	rpc.SendValue(ctx, s, (*tree.Space).Whitespace, rpc.Primitive)
}

func commentKey(c tree.Comment) any {
	if tc, ok := c.(*tree.TextComment); ok {
		return tc.Text() + tc.Suffix()
	}
	return c
}

func sendComment(c tree.Comment, ctx *rpc.SenderContext) {
	tc, ok := c.(*tree.TextComment)
	if !ok {
		rpc.NotImplemented("sendComment", "%T comments", c)
	}
	rpc.SendValue(ctx, tc, (*tree.TextComment).Multiline, rpc.Primitive)
	rpc.SendValue(ctx, tc, (*tree.TextComment).Text, rpc.Primitive)
	rpc.SendValue(ctx, tc, (*tree.TextComment).Suffix, rpc.Primitive)
	rpc.SendNode(ctx, tc, (*tree.TextComment).Markers, rpc.SendMarkers)
}

// sendPayload sends the element of a padding wrapper encoded per vt.
func sendPayload[W, E any](ctx *rpc.SenderContext, w W, get func(W) E, vt rpc.ValueType) {
	if vt == rpc.Tree {
		rpc.SendNode(ctx, w, get, sendTreeAny[E])
		return
	}
	rpc.SendValue(ctx, w, get, vt)
}

// sendLeftPadded returns the sender of a LeftPadded whose element is
// encoded per vt. Wire order: before, element, markers.
func sendLeftPadded[E any](vt rpc.ValueType) func(*tree.LeftPadded[E], *rpc.SenderContext) {
	return func(lp *tree.LeftPadded[E], ctx *rpc.SenderContext) {
		rpc.SendNode(ctx, lp, (*tree.LeftPadded[E]).Before, sendSpace)
		sendPayload(ctx, lp, (*tree.LeftPadded[E]).Element, vt)
		rpc.SendNode(ctx, lp, (*tree.LeftPadded[E]).Markers, rpc.SendMarkers)
	}
}

// sendRightPadded returns the sender of a RightPadded. Wire order:
// element, after, markers.
func sendRightPadded[E any](vt rpc.ValueType) func(*tree.RightPadded[E], *rpc.SenderContext) {
	return func(rp *tree.RightPadded[E], ctx *rpc.SenderContext) {
		sendPayload(ctx, rp, (*tree.RightPadded[E]).Element, vt)
		rpc.SendNode(ctx, rp, (*tree.RightPadded[E]).After, sendSpace)
		rpc.SendNode(ctx, rp, (*tree.RightPadded[E]).Markers, rpc.SendMarkers)
	}
}

// sendContainer returns the sender of a Container. Wire order: before,
// padded elements, markers.
func sendContainer[E any](vt rpc.ValueType) func(*tree.Container[E], *rpc.SenderContext) {
	element := sendRightPadded[E](vt)
	return func(c *tree.Container[E], ctx *rpc.SenderContext) {
		rpc.SendNode(ctx, c, (*tree.Container[E]).Before, sendSpace)
		rpc.SendNodes(ctx, c, (*tree.Container[E]).PaddedElements, element, rightPaddedID[E])
		rpc.SendNode(ctx, c, (*tree.Container[E]).Markers, rpc.SendMarkers)
	}
}
