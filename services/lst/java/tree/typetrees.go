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
	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/types"
)

// Type expressions.

// AnnotatedType is a type expression preceded by type annotations.
type AnnotatedType struct {
	id             uuid.UUID
	prefix         *Space
	markers        *lst.Markers
	annotations    []*Annotation
	typeExpression TypeTree
}

// NewAnnotatedType creates an AnnotatedType.
func NewAnnotatedType(id uuid.UUID, prefix *Space, markers *lst.Markers, annotations []*Annotation, typeExpression TypeTree) *AnnotatedType {
	return &AnnotatedType{
		id:             id,
		prefix:         prefix,
		markers:        markers,
		annotations:    nilIfEmpty(annotations),
		typeExpression: typeExpression,
	}
}

func (at *AnnotatedType) ID() uuid.UUID { return at.id }

func (at *AnnotatedType) WithID(id uuid.UUID) *AnnotatedType {
	if at.id == id {
		return at
	}
	n := *at
	n.id = id
	return &n
}

func (at *AnnotatedType) Prefix() *Space { return at.prefix }

func (at *AnnotatedType) WithPrefix(prefix *Space) *AnnotatedType {
	if at.prefix == prefix {
		return at
	}
	n := *at
	n.prefix = prefix
	return &n
}

func (at *AnnotatedType) Markers() *lst.Markers { return at.markers }

func (at *AnnotatedType) WithMarkers(markers *lst.Markers) *AnnotatedType {
	if at.markers == markers {
		return at
	}
	n := *at
	n.markers = markers
	return &n
}

// Annotations returns the node's own slice; copy it before modifying.
func (at *AnnotatedType) Annotations() []*Annotation { return at.annotations }

func (at *AnnotatedType) WithAnnotations(annotations []*Annotation) *AnnotatedType {
	if lst.SameSlice(at.annotations, annotations) {
		return at
	}
	n := *at
	n.annotations = nilIfEmpty(annotations)
	return &n
}

func (at *AnnotatedType) TypeExpression() TypeTree { return at.typeExpression }

func (at *AnnotatedType) WithTypeExpression(typeExpression TypeTree) *AnnotatedType {
	if at.typeExpression == typeExpression {
		return at
	}
	n := *at
	n.typeExpression = typeExpression
	return &n
}

func (at *AnnotatedType) Type() types.JavaType { return typeOf(at.typeExpression) }

func (*AnnotatedType) isExpression() {}
func (*AnnotatedType) isNameTree() {}
func (*AnnotatedType) isTypeTree() {}

// ArrayType is an array type such as int[].
type ArrayType struct {
	id          uuid.UUID
	prefix      *Space
	markers     *lst.Markers
	elementType TypeTree
	annotations []*Annotation
	dimension   *LeftPadded[*Space]
	typ         types.JavaType
}

// NewArrayType creates an ArrayType.
func NewArrayType(id uuid.UUID, prefix *Space, markers *lst.Markers, elementType TypeTree, annotations []*Annotation, dimension *LeftPadded[*Space], typ types.JavaType) *ArrayType {
	return &ArrayType{
		id:          id,
		prefix:      prefix,
		markers:     markers,
		elementType: elementType,
		annotations: nilIfEmpty(annotations),
		dimension:   dimension,
		typ:         typ,
	}
}

func (at *ArrayType) ID() uuid.UUID { return at.id }

func (at *ArrayType) WithID(id uuid.UUID) *ArrayType {
	if at.id == id {
		return at
	}
	n := *at
	n.id = id
	return &n
}

func (at *ArrayType) Prefix() *Space { return at.prefix }

func (at *ArrayType) WithPrefix(prefix *Space) *ArrayType {
	if at.prefix == prefix {
		return at
	}
	n := *at
	n.prefix = prefix
	return &n
}

func (at *ArrayType) Markers() *lst.Markers { return at.markers }

func (at *ArrayType) WithMarkers(markers *lst.Markers) *ArrayType {
	if at.markers == markers {
		return at
	}
	n := *at
	n.markers = markers
	return &n
}

func (at *ArrayType) ElementType() TypeTree { return at.elementType }

func (at *ArrayType) WithElementType(elementType TypeTree) *ArrayType {
	if at.elementType == elementType {
		return at
	}
	n := *at
	n.elementType = elementType
	return &n
}

// Annotations returns the node's own slice; copy it before modifying.
func (at *ArrayType) Annotations() []*Annotation { return at.annotations }

func (at *ArrayType) WithAnnotations(annotations []*Annotation) *ArrayType {
	if lst.SameSlice(at.annotations, annotations) {
		return at
	}
	n := *at
	n.annotations = nilIfEmpty(annotations)
	return &n
}

func (at *ArrayType) Dimension() *Space { return at.dimension.Element() }

func (at *ArrayType) WithDimension(dimension *Space) *ArrayType {
	return at.Padding().WithDimension(withLeftElement(at.dimension, dimension))
}

func (at *ArrayType) Type() types.JavaType { return at.typ }

func (at *ArrayType) WithType(typ types.JavaType) *ArrayType {
	if at.typ == typ {
		return at
	}
	n := *at
	n.typ = typ
	return &n
}

func (*ArrayType) isExpression() {}
func (*ArrayType) isNameTree() {}
func (*ArrayType) isTypeTree() {}

// ArrayTypePadding exposes the padded fields of an ArrayType.
type ArrayTypePadding struct{ t *ArrayType }

// Padding returns the padded view of at.
func (at *ArrayType) Padding() ArrayTypePadding { return ArrayTypePadding{t: at} }

func (p ArrayTypePadding) Dimension() *LeftPadded[*Space] { return p.t.dimension }

func (p ArrayTypePadding) WithDimension(dimension *LeftPadded[*Space]) *ArrayType {
	if p.t.dimension == dimension {
		return p.t
	}
	n := *p.t
	n.dimension = dimension
	return &n
}

// IntersectionType is an intersection such as A & B in a cast or bound.
type IntersectionType struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	bounds  *Container[TypeTree]
}

// NewIntersectionType creates an IntersectionType.
func NewIntersectionType(id uuid.UUID, prefix *Space, markers *lst.Markers, bounds *Container[TypeTree]) *IntersectionType {
	return &IntersectionType{
		id:      id,
		prefix:  prefix,
		markers: markers,
		bounds:  bounds,
	}
}

func (it *IntersectionType) ID() uuid.UUID { return it.id }

func (it *IntersectionType) WithID(id uuid.UUID) *IntersectionType {
	if it.id == id {
		return it
	}
	n := *it
	n.id = id
	return &n
}

func (it *IntersectionType) Prefix() *Space { return it.prefix }

func (it *IntersectionType) WithPrefix(prefix *Space) *IntersectionType {
	if it.prefix == prefix {
		return it
	}
	n := *it
	n.prefix = prefix
	return &n
}

func (it *IntersectionType) Markers() *lst.Markers { return it.markers }

func (it *IntersectionType) WithMarkers(markers *lst.Markers) *IntersectionType {
	if it.markers == markers {
		return it
	}
	n := *it
	n.markers = markers
	return &n
}

func (it *IntersectionType) Bounds() []TypeTree { return it.bounds.Elements() }

func (it *IntersectionType) WithBounds(bounds []TypeTree) *IntersectionType {
	return it.Padding().WithBounds(withContainerElements(it.bounds, bounds))
}

func (*IntersectionType) Type() types.JavaType { return nil }

func (*IntersectionType) isExpression() {}
func (*IntersectionType) isNameTree() {}
func (*IntersectionType) isTypeTree() {}

// IntersectionTypePadding exposes the padded fields of an IntersectionType.
type IntersectionTypePadding struct{ t *IntersectionType }

// Padding returns the padded view of it.
func (it *IntersectionType) Padding() IntersectionTypePadding { return IntersectionTypePadding{t: it} }

func (p IntersectionTypePadding) Bounds() *Container[TypeTree] { return p.t.bounds }

func (p IntersectionTypePadding) WithBounds(bounds *Container[TypeTree]) *IntersectionType {
	if p.t.bounds == bounds {
		return p.t
	}
	n := *p.t
	n.bounds = bounds
	return &n
}

// MultiCatch is the A | B type of a multi-catch parameter.
type MultiCatch struct {
	id           uuid.UUID
	prefix       *Space
	markers      *lst.Markers
	alternatives []*RightPadded[NameTree]
}

// NewMultiCatch creates a MultiCatch.
func NewMultiCatch(id uuid.UUID, prefix *Space, markers *lst.Markers, alternatives []*RightPadded[NameTree]) *MultiCatch {
	return &MultiCatch{
		id:           id,
		prefix:       prefix,
		markers:      markers,
		alternatives: nilIfEmpty(alternatives),
	}
}

func (mc *MultiCatch) ID() uuid.UUID { return mc.id }

func (mc *MultiCatch) WithID(id uuid.UUID) *MultiCatch {
	if mc.id == id {
		return mc
	}
	n := *mc
	n.id = id
	return &n
}

func (mc *MultiCatch) Prefix() *Space { return mc.prefix }

func (mc *MultiCatch) WithPrefix(prefix *Space) *MultiCatch {
	if mc.prefix == prefix {
		return mc
	}
	n := *mc
	n.prefix = prefix
	return &n
}

func (mc *MultiCatch) Markers() *lst.Markers { return mc.markers }

func (mc *MultiCatch) WithMarkers(markers *lst.Markers) *MultiCatch {
	if mc.markers == markers {
		return mc
	}
	n := *mc
	n.markers = markers
	return &n
}

func (mc *MultiCatch) Alternatives() []NameTree { return rightPaddedElements(mc.alternatives) }

func (mc *MultiCatch) WithAlternatives(alternatives []NameTree) *MultiCatch {
	return mc.Padding().WithAlternatives(withRightPaddedElements(mc.alternatives, alternatives))
}

func (*MultiCatch) Type() types.JavaType { return nil }

func (*MultiCatch) isNameTree() {}
func (*MultiCatch) isTypeTree() {}

// MultiCatchPadding exposes the padded fields of a MultiCatch.
type MultiCatchPadding struct{ t *MultiCatch }

// Padding returns the padded view of mc.
func (mc *MultiCatch) Padding() MultiCatchPadding { return MultiCatchPadding{t: mc} }

// Alternatives returns the node's own slice; copy it before modifying.
func (p MultiCatchPadding) Alternatives() []*RightPadded[NameTree] { return p.t.alternatives }

func (p MultiCatchPadding) WithAlternatives(alternatives []*RightPadded[NameTree]) *MultiCatch {
	if lst.SameSlice(p.t.alternatives, alternatives) {
		return p.t
	}
	n := *p.t
	n.alternatives = nilIfEmpty(alternatives)
	return &n
}

// NullableType is a type marked nullable.
type NullableType struct {
	id          uuid.UUID
	prefix      *Space
	markers     *lst.Markers
	annotations []*Annotation
	typeTree    *RightPadded[TypeTree]
}

// NewNullableType creates a NullableType.
func NewNullableType(id uuid.UUID, prefix *Space, markers *lst.Markers, annotations []*Annotation, typeTree *RightPadded[TypeTree]) *NullableType {
	return &NullableType{
		id:          id,
		prefix:      prefix,
		markers:     markers,
		annotations: nilIfEmpty(annotations),
		typeTree:    typeTree,
	}
}

func (nt *NullableType) ID() uuid.UUID { return nt.id }

func (nt *NullableType) WithID(id uuid.UUID) *NullableType {
	if nt.id == id {
		return nt
	}
	n := *nt
	n.id = id
	return &n
}

func (nt *NullableType) Prefix() *Space { return nt.prefix }

func (nt *NullableType) WithPrefix(prefix *Space) *NullableType {
	if nt.prefix == prefix {
		return nt
	}
	n := *nt
	n.prefix = prefix
	return &n
}

func (nt *NullableType) Markers() *lst.Markers { return nt.markers }

func (nt *NullableType) WithMarkers(markers *lst.Markers) *NullableType {
	if nt.markers == markers {
		return nt
	}
	n := *nt
	n.markers = markers
	return &n
}

// Annotations returns the node's own slice; copy it before modifying.
func (nt *NullableType) Annotations() []*Annotation { return nt.annotations }

func (nt *NullableType) WithAnnotations(annotations []*Annotation) *NullableType {
	if lst.SameSlice(nt.annotations, annotations) {
		return nt
	}
	n := *nt
	n.annotations = nilIfEmpty(annotations)
	return &n
}

func (nt *NullableType) TypeTree() TypeTree { return nt.typeTree.Element() }

func (nt *NullableType) WithTypeTree(typeTree TypeTree) *NullableType {
	return nt.Padding().WithTypeTree(withRightElement(nt.typeTree, typeTree))
}

func (nt *NullableType) Type() types.JavaType { return typeOf(nt.typeTree.Element()) }

func (*NullableType) isExpression() {}
func (*NullableType) isNameTree() {}
func (*NullableType) isTypeTree() {}

// NullableTypePadding exposes the padded fields of a NullableType.
type NullableTypePadding struct{ t *NullableType }

// Padding returns the padded view of nt.
func (nt *NullableType) Padding() NullableTypePadding { return NullableTypePadding{t: nt} }

func (p NullableTypePadding) TypeTree() *RightPadded[TypeTree] { return p.t.typeTree }

func (p NullableTypePadding) WithTypeTree(typeTree *RightPadded[TypeTree]) *NullableType {
	if p.t.typeTree == typeTree {
		return p.t
	}
	n := *p.t
	n.typeTree = typeTree
	return &n
}

// ParameterizedType is a generic type application such as List<String>.
type ParameterizedType struct {
	id             uuid.UUID
	prefix         *Space
	markers        *lst.Markers
	clazz          NameTree
	typeParameters *Container[Expression]
	typ            types.JavaType
}

// NewParameterizedType creates a ParameterizedType.
func NewParameterizedType(id uuid.UUID, prefix *Space, markers *lst.Markers, clazz NameTree, typeParameters *Container[Expression], typ types.JavaType) *ParameterizedType {
	return &ParameterizedType{
		id:             id,
		prefix:         prefix,
		markers:        markers,
		clazz:          clazz,
		typeParameters: typeParameters,
		typ:            typ,
	}
}

func (pt *ParameterizedType) ID() uuid.UUID { return pt.id }

func (pt *ParameterizedType) WithID(id uuid.UUID) *ParameterizedType {
	if pt.id == id {
		return pt
	}
	n := *pt
	n.id = id
	return &n
}

func (pt *ParameterizedType) Prefix() *Space { return pt.prefix }

func (pt *ParameterizedType) WithPrefix(prefix *Space) *ParameterizedType {
	if pt.prefix == prefix {
		return pt
	}
	n := *pt
	n.prefix = prefix
	return &n
}

func (pt *ParameterizedType) Markers() *lst.Markers { return pt.markers }

func (pt *ParameterizedType) WithMarkers(markers *lst.Markers) *ParameterizedType {
	if pt.markers == markers {
		return pt
	}
	n := *pt
	n.markers = markers
	return &n
}

func (pt *ParameterizedType) Clazz() NameTree { return pt.clazz }

func (pt *ParameterizedType) WithClazz(clazz NameTree) *ParameterizedType {
	if pt.clazz == clazz {
		return pt
	}
	n := *pt
	n.clazz = clazz
	return &n
}

func (pt *ParameterizedType) TypeParameters() []Expression { return pt.typeParameters.Elements() }

func (pt *ParameterizedType) WithTypeParameters(typeParameters []Expression) *ParameterizedType {
	return pt.Padding().WithTypeParameters(withContainerElements(pt.typeParameters, typeParameters))
}

func (pt *ParameterizedType) Type() types.JavaType { return pt.typ }

func (pt *ParameterizedType) WithType(typ types.JavaType) *ParameterizedType {
	if pt.typ == typ {
		return pt
	}
	n := *pt
	n.typ = typ
	return &n
}

func (*ParameterizedType) isExpression() {}
func (*ParameterizedType) isNameTree() {}
func (*ParameterizedType) isTypeTree() {}

// ParameterizedTypePadding exposes the padded fields of a ParameterizedType.
type ParameterizedTypePadding struct{ t *ParameterizedType }

// Padding returns the padded view of pt.
func (pt *ParameterizedType) Padding() ParameterizedTypePadding { return ParameterizedTypePadding{t: pt} }

func (p ParameterizedTypePadding) TypeParameters() *Container[Expression] { return p.t.typeParameters }

func (p ParameterizedTypePadding) WithTypeParameters(typeParameters *Container[Expression]) *ParameterizedType {
	if p.t.typeParameters == typeParameters {
		return p.t
	}
	n := *p.t
	n.typeParameters = typeParameters
	return &n
}

// ParenthesizedTypeTree is a parenthesized type.
type ParenthesizedTypeTree struct {
	id                uuid.UUID
	prefix            *Space
	markers           *lst.Markers
	annotations       []*Annotation
	parenthesizedType *Parentheses
}

// NewParenthesizedTypeTree creates a ParenthesizedTypeTree.
func NewParenthesizedTypeTree(id uuid.UUID, prefix *Space, markers *lst.Markers, annotations []*Annotation, parenthesizedType *Parentheses) *ParenthesizedTypeTree {
	return &ParenthesizedTypeTree{
		id:                id,
		prefix:            prefix,
		markers:           markers,
		annotations:       nilIfEmpty(annotations),
		parenthesizedType: parenthesizedType,
	}
}

func (ptt *ParenthesizedTypeTree) ID() uuid.UUID { return ptt.id }

func (ptt *ParenthesizedTypeTree) WithID(id uuid.UUID) *ParenthesizedTypeTree {
	if ptt.id == id {
		return ptt
	}
	n := *ptt
	n.id = id
	return &n
}

func (ptt *ParenthesizedTypeTree) Prefix() *Space { return ptt.prefix }

func (ptt *ParenthesizedTypeTree) WithPrefix(prefix *Space) *ParenthesizedTypeTree {
	if ptt.prefix == prefix {
		return ptt
	}
	n := *ptt
	n.prefix = prefix
	return &n
}

func (ptt *ParenthesizedTypeTree) Markers() *lst.Markers { return ptt.markers }

func (ptt *ParenthesizedTypeTree) WithMarkers(markers *lst.Markers) *ParenthesizedTypeTree {
	if ptt.markers == markers {
		return ptt
	}
	n := *ptt
	n.markers = markers
	return &n
}

// Annotations returns the node's own slice; copy it before modifying.
func (ptt *ParenthesizedTypeTree) Annotations() []*Annotation { return ptt.annotations }

func (ptt *ParenthesizedTypeTree) WithAnnotations(annotations []*Annotation) *ParenthesizedTypeTree {
	if lst.SameSlice(ptt.annotations, annotations) {
		return ptt
	}
	n := *ptt
	n.annotations = nilIfEmpty(annotations)
	return &n
}

func (ptt *ParenthesizedTypeTree) ParenthesizedType() *Parentheses { return ptt.parenthesizedType }

func (ptt *ParenthesizedTypeTree) WithParenthesizedType(parenthesizedType *Parentheses) *ParenthesizedTypeTree {
	if ptt.parenthesizedType == parenthesizedType {
		return ptt
	}
	n := *ptt
	n.parenthesizedType = parenthesizedType
	return &n
}

func (ptt *ParenthesizedTypeTree) Type() types.JavaType { return typeOf(ptt.parenthesizedType) }

func (*ParenthesizedTypeTree) isExpression() {}
func (*ParenthesizedTypeTree) isNameTree() {}
func (*ParenthesizedTypeTree) isTypeTree() {}

// Primitive is a primitive type keyword such as int.
type Primitive struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	typ     types.JavaType
}

// NewPrimitive creates a Primitive.
func NewPrimitive(id uuid.UUID, prefix *Space, markers *lst.Markers, typ types.JavaType) *Primitive {
	return &Primitive{
		id:      id,
		prefix:  prefix,
		markers: markers,
		typ:     typ,
	}
}

func (prim *Primitive) ID() uuid.UUID { return prim.id }

func (prim *Primitive) WithID(id uuid.UUID) *Primitive {
	if prim.id == id {
		return prim
	}
	n := *prim
	n.id = id
	return &n
}

func (prim *Primitive) Prefix() *Space { return prim.prefix }

func (prim *Primitive) WithPrefix(prefix *Space) *Primitive {
	if prim.prefix == prefix {
		return prim
	}
	n := *prim
	n.prefix = prefix
	return &n
}

func (prim *Primitive) Markers() *lst.Markers { return prim.markers }

func (prim *Primitive) WithMarkers(markers *lst.Markers) *Primitive {
	if prim.markers == markers {
		return prim
	}
	n := *prim
	n.markers = markers
	return &n
}

func (prim *Primitive) Type() types.JavaType { return prim.typ }

func (prim *Primitive) WithType(typ types.JavaType) *Primitive {
	if prim.typ == typ {
		return prim
	}
	n := *prim
	n.typ = typ
	return &n
}

func (*Primitive) isExpression() {}
func (*Primitive) isNameTree() {}
func (*Primitive) isTypeTree() {}

// Wildcard is a ? type argument, optionally bounded.
type Wildcard struct {
	id          uuid.UUID
	prefix      *Space
	markers     *lst.Markers
	bound       *LeftPadded[WildcardBound]
	boundedType NameTree
}

// NewWildcard creates a Wildcard.
func NewWildcard(id uuid.UUID, prefix *Space, markers *lst.Markers, bound *LeftPadded[WildcardBound], boundedType NameTree) *Wildcard {
	return &Wildcard{
		id:          id,
		prefix:      prefix,
		markers:     markers,
		bound:       bound,
		boundedType: boundedType,
	}
}

func (w *Wildcard) ID() uuid.UUID { return w.id }

func (w *Wildcard) WithID(id uuid.UUID) *Wildcard {
	if w.id == id {
		return w
	}
	n := *w
	n.id = id
	return &n
}

func (w *Wildcard) Prefix() *Space { return w.prefix }

func (w *Wildcard) WithPrefix(prefix *Space) *Wildcard {
	if w.prefix == prefix {
		return w
	}
	n := *w
	n.prefix = prefix
	return &n
}

func (w *Wildcard) Markers() *lst.Markers { return w.markers }

func (w *Wildcard) WithMarkers(markers *lst.Markers) *Wildcard {
	if w.markers == markers {
		return w
	}
	n := *w
	n.markers = markers
	return &n
}

func (w *Wildcard) Bound() WildcardBound { return w.bound.Element() }

func (w *Wildcard) WithBound(bound WildcardBound) *Wildcard {
	return w.Padding().WithBound(withLeftElement(w.bound, bound))
}

func (w *Wildcard) BoundedType() NameTree { return w.boundedType }

func (w *Wildcard) WithBoundedType(boundedType NameTree) *Wildcard {
	if w.boundedType == boundedType {
		return w
	}
	n := *w
	n.boundedType = boundedType
	return &n
}

func (*Wildcard) Type() types.JavaType { return nil }

func (*Wildcard) isExpression() {}
func (*Wildcard) isNameTree() {}
func (*Wildcard) isTypeTree() {}

// WildcardPadding exposes the padded fields of a Wildcard.
type WildcardPadding struct{ t *Wildcard }

// Padding returns the padded view of w.
func (w *Wildcard) Padding() WildcardPadding { return WildcardPadding{t: w} }

func (p WildcardPadding) Bound() *LeftPadded[WildcardBound] { return p.t.bound }

func (p WildcardPadding) WithBound(bound *LeftPadded[WildcardBound]) *Wildcard {
	if p.t.bound == bound {
		return p.t
	}
	n := *p.t
	n.bound = bound
	return &n
}
