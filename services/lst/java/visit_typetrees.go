// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package java

import (
	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
)

func (v *BaseVisitor[P]) VisitAnnotatedType(at *tree.AnnotatedType, p P) tree.J {
	at = at.WithPrefix(v.self.VisitSpace(at.Prefix(), tree.SpaceAnnotatedTypePrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(at, p)
	if at, ok = tmp.(*tree.AnnotatedType); !ok {
		return tmp
	}
	at = at.WithMarkers(v.self.VisitMarkers(at.Markers(), p))
	at = at.WithAnnotations(lst.MapList(at.Annotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	at = at.WithTypeExpression(visitAndCast(v, at.TypeExpression(), p))
	return at
}

func (v *BaseVisitor[P]) VisitArrayType(at *tree.ArrayType, p P) tree.J {
	at = at.WithPrefix(v.self.VisitSpace(at.Prefix(), tree.SpaceArrayTypePrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(at, p)
	if at, ok = tmp.(*tree.ArrayType); !ok {
		return tmp
	}
	at = at.WithMarkers(v.self.VisitMarkers(at.Markers(), p))
	at = at.WithElementType(visitAndCast(v, at.ElementType(), p))
	at = at.WithAnnotations(lst.MapList(at.Annotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	at = at.Padding().WithDimension(visitLeftPadded(v, at.Padding().Dimension(), tree.LeftPaddedArrayTypeDimension, p))
	at = at.WithType(visitType(v, at.Type(), p))
	return at
}

func (v *BaseVisitor[P]) VisitIntersectionType(it *tree.IntersectionType, p P) tree.J {
	it = it.WithPrefix(v.self.VisitSpace(it.Prefix(), tree.SpaceIntersectionTypePrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(it, p)
	if it, ok = tmp.(*tree.IntersectionType); !ok {
		return tmp
	}
	it = it.WithMarkers(v.self.VisitMarkers(it.Markers(), p))
	it = it.Padding().WithBounds(visitContainer(v, it.Padding().Bounds(), tree.ContainerIntersectionTypeBounds, p))
	return it
}

func (v *BaseVisitor[P]) VisitMultiCatch(mc *tree.MultiCatch, p P) tree.J {
	mc = mc.WithPrefix(v.self.VisitSpace(mc.Prefix(), tree.SpaceMultiCatchPrefix, p))
	mc = mc.WithMarkers(v.self.VisitMarkers(mc.Markers(), p))
	mc = mc.Padding().WithAlternatives(visitRightPaddedList(v, mc.Padding().Alternatives(), tree.RightPaddedMultiCatchAlternatives, p))
	return mc
}

func (v *BaseVisitor[P]) VisitNullableType(nt *tree.NullableType, p P) tree.J {
	nt = nt.WithPrefix(v.self.VisitSpace(nt.Prefix(), tree.SpaceNullableTypePrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(nt, p)
	if nt, ok = tmp.(*tree.NullableType); !ok {
		return tmp
	}
	nt = nt.WithMarkers(v.self.VisitMarkers(nt.Markers(), p))
	nt = nt.WithAnnotations(lst.MapList(nt.Annotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	nt = nt.Padding().WithTypeTree(visitRightPadded(v, nt.Padding().TypeTree(), tree.RightPaddedNullableTypeTypeTree, p))
	return nt
}

func (v *BaseVisitor[P]) VisitParameterizedType(pt *tree.ParameterizedType, p P) tree.J {
	pt = pt.WithPrefix(v.self.VisitSpace(pt.Prefix(), tree.SpaceParameterizedTypePrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(pt, p)
	if pt, ok = tmp.(*tree.ParameterizedType); !ok {
		return tmp
	}
	pt = pt.WithMarkers(v.self.VisitMarkers(pt.Markers(), p))
	pt = pt.WithClazz(visitAndCast(v, pt.Clazz(), p))
	pt = pt.Padding().WithTypeParameters(visitContainer(v, pt.Padding().TypeParameters(), tree.ContainerParameterizedTypeTypeParameters, p))
	pt = pt.WithType(visitType(v, pt.Type(), p))
	return pt
}

func (v *BaseVisitor[P]) VisitParenthesizedTypeTree(ptt *tree.ParenthesizedTypeTree, p P) tree.J {
	ptt = ptt.WithPrefix(v.self.VisitSpace(ptt.Prefix(), tree.SpaceParenthesizedTypeTreePrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(ptt, p)
	if ptt, ok = tmp.(*tree.ParenthesizedTypeTree); !ok {
		return tmp
	}
	ptt = ptt.WithMarkers(v.self.VisitMarkers(ptt.Markers(), p))
	ptt = ptt.WithAnnotations(lst.MapList(ptt.Annotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	ptt = ptt.WithParenthesizedType(visitAndCast(v, ptt.ParenthesizedType(), p))
	return ptt
}

func (v *BaseVisitor[P]) VisitPrimitive(prim *tree.Primitive, p P) tree.J {
	prim = prim.WithPrefix(v.self.VisitSpace(prim.Prefix(), tree.SpacePrimitivePrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(prim, p)
	if prim, ok = tmp.(*tree.Primitive); !ok {
		return tmp
	}
	prim = prim.WithMarkers(v.self.VisitMarkers(prim.Markers(), p))
	prim = prim.WithType(visitType(v, prim.Type(), p))
	return prim
}

func (v *BaseVisitor[P]) VisitWildcard(w *tree.Wildcard, p P) tree.J {
	w = w.WithPrefix(v.self.VisitSpace(w.Prefix(), tree.SpaceWildcardPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(w, p)
	if w, ok = tmp.(*tree.Wildcard); !ok {
		return tmp
	}
	w = w.WithMarkers(v.self.VisitMarkers(w.Markers(), p))
	w = w.Padding().WithBound(visitLeftPadded(v, w.Padding().Bound(), tree.LeftPaddedWildcardBound, p))
	w = w.WithBoundedType(visitAndCast(v, w.BoundedType(), p))
	return w
}
