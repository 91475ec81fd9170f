// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package lst

// Root is the value held by the outermost cursor frame.
const Root = "root"

// Cursor is one frame of an immutable parent-linked traversal stack.
//
// Description:
//
//	Push never modifies the receiver, so a visitor can hand a frame to
//	another goroutine or keep it after the traversal moved on. Frames may
//	hold trees, padding wrappers, or any other value a visitor passes
//	through.
//
// Thread Safety: Immutable; safe to share.
type Cursor struct {
	parent *Cursor
	value  any
}

// RootCursor returns a fresh root frame.
func RootCursor() *Cursor {
	return &Cursor{value: Root}
}

// Push returns a child frame holding value.
func (c *Cursor) Push(value any) *Cursor {
	return &Cursor{parent: c, value: value}
}

// Parent returns the enclosing frame, or nil at the root.
func (c *Cursor) Parent() *Cursor {
	return c.parent
}

// Value returns the value held by this frame.
func (c *Cursor) Value() any {
	return c.value
}

// IsRoot reports whether c is the outermost frame.
func (c *Cursor) IsRoot() bool {
	return c.parent == nil
}

// Path returns the values from this frame up to (excluding) the root.
func (c *Cursor) Path() []any {
	var path []any
	for f := c; f != nil && f.parent != nil; f = f.parent {
		path = append(path, f.value)
	}
	return path
}

// ParentTree returns the nearest strict ancestor frame whose value is a
// Tree, skipping padding and other non-tree frames.
func (c *Cursor) ParentTree() (Tree, bool) {
	for f := c.parent; f != nil; f = f.parent {
		if t, ok := f.value.(Tree); ok {
			return t, true
		}
	}
	return nil, false
}

// FirstEnclosing returns the value of the nearest frame (starting at c)
// whose value has type T.
//
// Example:
//
//	if cls, ok := lst.FirstEnclosing[*tree.ClassDeclaration](v.Cursor()); ok {
//	    ...
//	}
func FirstEnclosing[T any](c *Cursor) (T, bool) {
	for f := c; f != nil; f = f.parent {
		if t, ok := f.value.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
