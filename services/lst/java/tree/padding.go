// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tree

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst"
)

// PaddingMapper rewrites the parts of a padding wrapper. The visitor
// engine implements it; Rebuild calls back into it so one hook serves every
// payload type.
type PaddingMapper interface {
	MapTree(t J) J
	MapSpace(s *Space, loc SpaceLocation) *Space
	MapMarkers(m *lst.Markers) *lst.Markers
	MapRightPadded(rp RightPaddedAny, loc RightPaddedLocation) RightPaddedAny
}

// LeftPaddedAny is a LeftPadded of any payload type.
type LeftPaddedAny interface {
	Before() *Space
	ElementAny() any
	Markers() *lst.Markers

	// Rebuild maps the wrapper's parts through m. It returns nil when a
	// tree payload was mapped to nil.
	Rebuild(m PaddingMapper, loc LeftPaddedLocation) LeftPaddedAny
}

// RightPaddedAny is a RightPadded of any payload type.
type RightPaddedAny interface {
	After() *Space
	ElementAny() any
	Markers() *lst.Markers
	Rebuild(m PaddingMapper, loc RightPaddedLocation) RightPaddedAny
}

// ContainerAny is a Container of any element type.
type ContainerAny interface {
	Before() *Space
	Len() int
	Markers() *lst.Markers
	Rebuild(m PaddingMapper, loc ContainerLocation) ContainerAny
}

// LeftPadded is an element preceded by formatting, such as the "= 1" of an
// initializer or the operator of a binary expression.
type LeftPadded[T any] struct {
	before  *Space
	element T
	markers *lst.Markers
}

func NewLeftPadded[T any](before *Space, element T, markers *lst.Markers) *LeftPadded[T] {
	return &LeftPadded[T]{before: before, element: element, markers: markers}
}

func (lp *LeftPadded[T]) Before() *Space {
	if lp == nil {
		return nil
	}
	return lp.before
}

// Element returns the payload, or the zero value for a nil wrapper.
func (lp *LeftPadded[T]) Element() T {
	if lp == nil {
		var zero T
		return zero
	}
	return lp.element
}

func (lp *LeftPadded[T]) ElementAny() any { return lp.Element() }

func (lp *LeftPadded[T]) Markers() *lst.Markers {
	if lp == nil {
		return nil
	}
	return lp.markers
}

func (lp *LeftPadded[T]) WithBefore(before *Space) *LeftPadded[T] {
	if lp.before == before {
		return lp
	}
	n := *lp
	n.before = before
	return &n
}

func (lp *LeftPadded[T]) WithElement(element T) *LeftPadded[T] {
	if lst.Same(lp.element, element) {
		return lp
	}
	n := *lp
	n.element = element
	return &n
}

func (lp *LeftPadded[T]) WithMarkers(markers *lst.Markers) *LeftPadded[T] {
	if lp.markers == markers {
		return lp
	}
	n := *lp
	n.markers = markers
	return &n
}

func (lp *LeftPadded[T]) Rebuild(m PaddingMapper, loc LeftPaddedLocation) LeftPaddedAny {
	el, ok := mapPayload(m, lp.element)
	if !ok {
		return nil
	}
	return lp.WithBefore(m.MapSpace(lp.before, loc.BeforeLocation())).
		WithElement(el).
		WithMarkers(m.MapMarkers(lp.markers))
}

// RightPadded is an element followed by formatting, such as a statement
// and the space before its semicolon.
type RightPadded[T any] struct {
	element T
	after   *Space
	markers *lst.Markers
}

func NewRightPadded[T any](element T, after *Space, markers *lst.Markers) *RightPadded[T] {
	return &RightPadded[T]{element: element, after: after, markers: markers}
}

// Element returns the payload, or the zero value for a nil wrapper.
func (rp *RightPadded[T]) Element() T {
	if rp == nil {
		var zero T
		return zero
	}
	return rp.element
}

func (rp *RightPadded[T]) ElementAny() any { return rp.Element() }

func (rp *RightPadded[T]) After() *Space {
	if rp == nil {
		return nil
	}
	return rp.after
}

func (rp *RightPadded[T]) Markers() *lst.Markers {
	if rp == nil {
		return nil
	}
	return rp.markers
}

func (rp *RightPadded[T]) WithElement(element T) *RightPadded[T] {
	if lst.Same(rp.element, element) {
		return rp
	}
	n := *rp
	n.element = element
	return &n
}

func (rp *RightPadded[T]) WithAfter(after *Space) *RightPadded[T] {
	if rp.after == after {
		return rp
	}
	n := *rp
	n.after = after
	return &n
}

func (rp *RightPadded[T]) WithMarkers(markers *lst.Markers) *RightPadded[T] {
	if rp.markers == markers {
		return rp
	}
	n := *rp
	n.markers = markers
	return &n
}

func (rp *RightPadded[T]) Rebuild(m PaddingMapper, loc RightPaddedLocation) RightPaddedAny {
	el, ok := mapPayload(m, rp.element)
	if !ok {
		return nil
	}
	return rp.WithElement(el).
		WithAfter(m.MapSpace(rp.after, loc.AfterLocation())).
		WithMarkers(m.MapMarkers(rp.markers))
}

// Container is a delimited list such as method arguments or type
// parameters: the space before the opening delimiter and the padded
// elements.
type Container[T any] struct {
	before   *Space
	elements []*RightPadded[T]
	markers  *lst.Markers
}

func NewContainer[T any](before *Space, elements []*RightPadded[T], markers *lst.Markers) *Container[T] {
	return &Container[T]{before: before, elements: nilIfEmpty(elements), markers: markers}
}

func (c *Container[T]) Before() *Space {
	if c == nil {
		return nil
	}
	return c.before
}

// PaddedElements returns the container's own slice; copy it before modifying.
func (c *Container[T]) PaddedElements() []*RightPadded[T] {
	if c == nil {
		return nil
	}
	return c.elements
}

// Elements returns the unwrapped elements.
func (c *Container[T]) Elements() []T {
	return rightPaddedElements(c.PaddedElements())
}

func (c *Container[T]) Len() int { return len(c.PaddedElements()) }

func (c *Container[T]) Markers() *lst.Markers {
	if c == nil {
		return nil
	}
	return c.markers
}

func (c *Container[T]) WithBefore(before *Space) *Container[T] {
	if c.before == before {
		return c
	}
	n := *c
	n.before = before
	return &n
}

func (c *Container[T]) WithPaddedElements(elements []*RightPadded[T]) *Container[T] {
	if lst.SameSlice(c.elements, elements) {
		return c
	}
	n := *c
	n.elements = nilIfEmpty(elements)
	return &n
}

func (c *Container[T]) WithMarkers(markers *lst.Markers) *Container[T] {
	if c.markers == markers {
		return c
	}
	n := *c
	n.markers = markers
	return &n
}

func (c *Container[T]) Rebuild(m PaddingMapper, loc ContainerLocation) ContainerAny {
	elemLoc := loc.ElementLocation()
	elements := lst.MapList(c.elements, func(rp *RightPadded[T]) *RightPadded[T] {
		out := m.MapRightPadded(rp, elemLoc)
		if lst.IsNil(out) {
			return nil
		}
		typed, ok := out.(*RightPadded[T])
		if !ok {
			panic(fmt.Sprintf("tree: %s element rewritten to %T, want %T", loc, out, rp))
		}
		return typed
	})
	return c.WithBefore(m.MapSpace(c.before, loc.BeforeLocation())).
		WithPaddedElements(elements).
		WithMarkers(m.MapMarkers(c.markers))
}

// mapPayload visits tree payloads and passes every other payload through.
// ok is false when a tree payload was removed.
func mapPayload[T any](m PaddingMapper, el T) (T, bool) {
	j, isTree := any(el).(J)
	if !isTree || lst.IsNil(j) {
		return el, true
	}
	out := m.MapTree(j)
	if lst.IsNil(out) {
		var zero T
		return zero, false
	}
	typed, ok := out.(T)
	if !ok {
		panic(fmt.Sprintf("tree: padded %T rewritten to %T", el, out))
	}
	return typed, true
}

func rightPaddedElements[T any](rps []*RightPadded[T]) []T {
	if len(rps) == 0 {
		return nil
	}
	out := make([]T, len(rps))
	for i, rp := range rps {
		out[i] = rp.Element()
	}
	return out
}

func withLeftElement[T any](lp *LeftPadded[T], element T) *LeftPadded[T] {
	if lst.IsNil(element) {
		return nil
	}
	if lp == nil {
		return NewLeftPadded(EmptySpace, element, lst.EmptyMarkers)
	}
	return lp.WithElement(element)
}

func withRightElement[T any](rp *RightPadded[T], element T) *RightPadded[T] {
	if lst.IsNil(element) {
		return nil
	}
	if rp == nil {
		return NewRightPadded(element, EmptySpace, lst.EmptyMarkers)
	}
	return rp.WithElement(element)
}

// withRightPaddedElements rewraps elements, keeping the padding of every
// element whose id was already present.
func withRightPaddedElements[T identified](before []*RightPadded[T], elements []T) []*RightPadded[T] {
	if len(elements) == 0 {
		return nil
	}
	if len(before) == len(elements) {
		same := true
		for i, el := range elements {
			if !lst.Same(before[i].element, el) {
				same = false
				break
			}
		}
		if same {
			return before
		}
	}
	byID := make(map[uuid.UUID]*RightPadded[T], len(before))
	for _, rp := range before {
		byID[rp.element.ID()] = rp
	}
	out := make([]*RightPadded[T], len(elements))
	for i, el := range elements {
		if rp, ok := byID[el.ID()]; ok {
			out[i] = rp.WithElement(el)
		} else {
			out[i] = NewRightPadded(el, EmptySpace, lst.EmptyMarkers)
		}
	}
	return out
}

func withContainerElements[T identified](c *Container[T], elements []T) *Container[T] {
	if c == nil {
		if len(elements) == 0 {
			return nil
		}
		return NewContainer(EmptySpace, withRightPaddedElements(nil, elements), lst.EmptyMarkers)
	}
	return c.WithPaddedElements(withRightPaddedElements(c.elements, elements))
}
