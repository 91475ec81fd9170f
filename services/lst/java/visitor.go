// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package java is the traversal and rewrite engine for the Java node model.
//
// A visitor is a struct embedding *BaseVisitor[P] whose methods override
// the ones it needs:
//
//	type renamer struct{ *java.BaseVisitor[string] }
//
//	func (r *renamer) VisitIdentifier(id *tree.Identifier, to string) tree.J {
//	    id = r.BaseVisitor.VisitIdentifier(id, to).(*tree.Identifier)
//	    return id.WithSimpleName(to)
//	}
//
//	r := &renamer{}
//	r.BaseVisitor = java.NewBaseVisitor[string](r)
//	out := r.Visit(cu, "x")
//
// Every default method returns its input unchanged when nothing beneath it
// changed, so an identity visitor returns the same pointer it was given.
package java

import (
	"fmt"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/java/types"
)

// Visitor is the full set of overridable traversal methods.
type Visitor[P any] interface {
	tree.Visitor[P]

	// Visit dispatches t to its kind method, maintaining the cursor.
	Visit(t tree.J, p P) tree.J
	PreVisit(t tree.J, p P) tree.J
	PostVisit(t tree.J, p P) tree.J

	// VisitExpression and VisitStatement run for every node that can act
	// as one. Returning a node of another kind stops the kind method.
	VisitExpression(e tree.Expression, p P) tree.J
	VisitStatement(s tree.Statement, p P) tree.J

	VisitSpace(s *tree.Space, loc tree.SpaceLocation, p P) *tree.Space
	VisitMarkers(m *lst.Markers, p P) *lst.Markers
	VisitMarker(m lst.Marker, p P) lst.Marker
	VisitType(t types.JavaType, p P) types.JavaType

	VisitLeftPadded(lp tree.LeftPaddedAny, loc tree.LeftPaddedLocation, p P) tree.LeftPaddedAny
	VisitRightPadded(rp tree.RightPaddedAny, loc tree.RightPaddedLocation, p P) tree.RightPaddedAny
	VisitContainer(c tree.ContainerAny, loc tree.ContainerLocation, p P) tree.ContainerAny

	Cursor() *lst.Cursor
}

var _ Visitor[any] = (*BaseVisitor[any])(nil)

// BaseVisitor is the default traversal. It rewrites nothing.
//
// Description:
//
//	Every method recurses into the children of its input and rebuilds the
//	node through its WithX methods, so unchanged subtrees are returned by
//	identity. Calls go through self, the outermost visitor, so overrides in
//	an embedding struct take effect at every depth.
//
// Thread Safety:
//
//	Not safe for concurrent use. The cursor is per-instance state; run
//	concurrent traversals on separate instances.
type BaseVisitor[P any] struct {
	self   Visitor[P]
	cursor *lst.Cursor
}

// NewBaseVisitor creates the default traversal dispatching through self.
// A nil self makes the base visitor dispatch to itself.
func NewBaseVisitor[P any](self Visitor[P]) *BaseVisitor[P] {
	v := &BaseVisitor[P]{cursor: lst.RootCursor()}
	if self == nil {
		v.self = v
	} else {
		v.self = self
	}
	return v
}

// Cursor returns the path from the node being visited to the root.
func (v *BaseVisitor[P]) Cursor() *lst.Cursor { return v.cursor }

// SetCursor replaces the cursor, for visitors started below the root.
func (v *BaseVisitor[P]) SetCursor(c *lst.Cursor) { v.cursor = c }

// Visit visits t and returns its replacement, which may be nil or a node
// of a different kind.
func (v *BaseVisitor[P]) Visit(t tree.J, p P) tree.J {
	if lst.IsNil(t) {
		return nil
	}
	parent := v.cursor
	v.cursor = parent.Push(t)
	defer func() { v.cursor = parent }()

	out := v.self.PreVisit(t, p)
	if lst.IsNil(out) {
		return nil
	}
	out = tree.Accept[P](out, v.self, p)
	if lst.IsNil(out) {
		return nil
	}
	return v.self.PostVisit(out, p)
}

func (v *BaseVisitor[P]) PreVisit(t tree.J, _ P) tree.J  { return t }
func (v *BaseVisitor[P]) PostVisit(t tree.J, _ P) tree.J { return t }

func (v *BaseVisitor[P]) VisitExpression(e tree.Expression, _ P) tree.J { return e }
func (v *BaseVisitor[P]) VisitStatement(s tree.Statement, _ P) tree.J   { return s }

func (v *BaseVisitor[P]) VisitSpace(s *tree.Space, _ tree.SpaceLocation, _ P) *tree.Space {
	return s
}

// VisitMarkers visits each marker in m.
func (v *BaseVisitor[P]) VisitMarkers(m *lst.Markers, p P) *lst.Markers {
	if m == nil {
		return nil
	}
	return m.WithMarkers(lst.MapList(m.Markers(), func(mk lst.Marker) lst.Marker {
		return v.self.VisitMarker(mk, p)
	}))
}

func (v *BaseVisitor[P]) VisitMarker(m lst.Marker, _ P) lst.Marker { return m }

func (v *BaseVisitor[P]) VisitType(t types.JavaType, _ P) types.JavaType { return t }

// VisitLeftPadded visits the space before the element and, for tree
// payloads, the element itself. The wrapper is pushed on the cursor.
func (v *BaseVisitor[P]) VisitLeftPadded(lp tree.LeftPaddedAny, loc tree.LeftPaddedLocation, p P) tree.LeftPaddedAny {
	if lst.IsNil(lp) {
		return nil
	}
	parent := v.cursor
	v.cursor = parent.Push(lp)
	defer func() { v.cursor = parent }()
	return lp.Rebuild(mapper[P]{v: v, p: p}, loc)
}

// VisitRightPadded visits the element and then the space after it.
func (v *BaseVisitor[P]) VisitRightPadded(rp tree.RightPaddedAny, loc tree.RightPaddedLocation, p P) tree.RightPaddedAny {
	if lst.IsNil(rp) {
		return nil
	}
	parent := v.cursor
	v.cursor = parent.Push(rp)
	defer func() { v.cursor = parent }()
	return rp.Rebuild(mapper[P]{v: v, p: p}, loc)
}

// VisitContainer visits the opening space and then every padded element.
func (v *BaseVisitor[P]) VisitContainer(c tree.ContainerAny, loc tree.ContainerLocation, p P) tree.ContainerAny {
	if lst.IsNil(c) {
		return nil
	}
	parent := v.cursor
	v.cursor = parent.Push(c)
	defer func() { v.cursor = parent }()
	return c.Rebuild(mapper[P]{v: v, p: p}, loc)
}

// mapper routes padding rebuilds back through the visitor's overridable
// methods.
type mapper[P any] struct {
	v *BaseVisitor[P]
	p P
}

func (m mapper[P]) MapTree(t tree.J) tree.J { return m.v.self.Visit(t, m.p) }

func (m mapper[P]) MapSpace(s *tree.Space, loc tree.SpaceLocation) *tree.Space {
	return m.v.self.VisitSpace(s, loc, m.p)
}

func (m mapper[P]) MapMarkers(mk *lst.Markers) *lst.Markers { return m.v.self.VisitMarkers(mk, m.p) }

func (m mapper[P]) MapRightPadded(rp tree.RightPaddedAny, loc tree.RightPaddedLocation) tree.RightPaddedAny {
	return m.v.self.VisitRightPadded(rp, loc, m.p)
}

// visitAndCast visits a child slot of static type T. A replacement that
// is not a T is a broken visitor and panics.
func visitAndCast[T tree.J, P any](v *BaseVisitor[P], t T, p P) T {
	var zero T
	if lst.IsNil(t) {
		return zero
	}
	out := v.self.Visit(t, p)
	if lst.IsNil(out) {
		return zero
	}
	typed, ok := out.(T)
	if !ok {
		panic(fmt.Sprintf("java: visitor replaced %T with %T, which does not fit the slot", t, out))
	}
	return typed
}

func visitType[T types.JavaType, P any](v *BaseVisitor[P], t T, p P) T {
	var zero T
	if lst.IsNil(t) {
		return zero
	}
	out := v.self.VisitType(t, p)
	if lst.IsNil(out) {
		return zero
	}
	typed, ok := out.(T)
	if !ok {
		panic(fmt.Sprintf("java: type visitor replaced %T with %T", t, out))
	}
	return typed
}

func visitLeftPadded[T, P any](v *BaseVisitor[P], lp *tree.LeftPadded[T], loc tree.LeftPaddedLocation, p P) *tree.LeftPadded[T] {
	if lp == nil {
		return nil
	}
	out := v.self.VisitLeftPadded(lp, loc, p)
	if lst.IsNil(out) {
		return nil
	}
	return out.(*tree.LeftPadded[T])
}

func visitRightPadded[T, P any](v *BaseVisitor[P], rp *tree.RightPadded[T], loc tree.RightPaddedLocation, p P) *tree.RightPadded[T] {
	if rp == nil {
		return nil
	}
	out := v.self.VisitRightPadded(rp, loc, p)
	if lst.IsNil(out) {
		return nil
	}
	return out.(*tree.RightPadded[T])
}

func visitContainer[T, P any](v *BaseVisitor[P], c *tree.Container[T], loc tree.ContainerLocation, p P) *tree.Container[T] {
	if c == nil {
		return nil
	}
	out := v.self.VisitContainer(c, loc, p)
	if lst.IsNil(out) {
		return nil
	}
	return out.(*tree.Container[T])
}

func visitLeftPaddedList[T, P any](v *BaseVisitor[P], lps []*tree.LeftPadded[T], loc tree.LeftPaddedLocation, p P) []*tree.LeftPadded[T] {
	return lst.MapList(lps, func(lp *tree.LeftPadded[T]) *tree.LeftPadded[T] {
		return visitLeftPadded(v, lp, loc, p)
	})
}

func visitRightPaddedList[T, P any](v *BaseVisitor[P], rps []*tree.RightPadded[T], loc tree.RightPaddedLocation, p P) []*tree.RightPadded[T] {
	return lst.MapList(rps, func(rp *tree.RightPadded[T]) *tree.RightPadded[T] {
		return visitRightPadded(v, rp, loc, p)
	})
}
