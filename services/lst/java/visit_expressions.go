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

func (v *BaseVisitor[P]) VisitArrayAccess(aa *tree.ArrayAccess, p P) tree.J {
	aa = aa.WithPrefix(v.self.VisitSpace(aa.Prefix(), tree.SpaceArrayAccessPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(aa, p)
	if aa, ok = tmp.(*tree.ArrayAccess); !ok {
		return tmp
	}
	aa = aa.WithMarkers(v.self.VisitMarkers(aa.Markers(), p))
	aa = aa.WithIndexed(visitAndCast(v, aa.Indexed(), p))
	aa = aa.WithDimension(visitAndCast(v, aa.Dimension(), p))
	aa = aa.WithType(visitType(v, aa.Type(), p))
	return aa
}

func (v *BaseVisitor[P]) VisitArrayDimension(ad *tree.ArrayDimension, p P) tree.J {
	ad = ad.WithPrefix(v.self.VisitSpace(ad.Prefix(), tree.SpaceArrayDimensionPrefix, p))
	ad = ad.WithMarkers(v.self.VisitMarkers(ad.Markers(), p))
	ad = ad.Padding().WithIndex(visitRightPadded(v, ad.Padding().Index(), tree.RightPaddedArrayDimensionIndex, p))
	return ad
}

func (v *BaseVisitor[P]) VisitAssignment(a *tree.Assignment, p P) tree.J {
	a = a.WithPrefix(v.self.VisitSpace(a.Prefix(), tree.SpaceAssignmentPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(a, p)
	if a, ok = tmp.(*tree.Assignment); !ok {
		return tmp
	}
	tmp = v.self.VisitExpression(a, p)
	if a, ok = tmp.(*tree.Assignment); !ok {
		return tmp
	}
	a = a.WithMarkers(v.self.VisitMarkers(a.Markers(), p))
	a = a.WithVariable(visitAndCast(v, a.Variable(), p))
	a = a.Padding().WithAssignment(visitLeftPadded(v, a.Padding().Assignment(), tree.LeftPaddedAssignmentAssignment, p))
	a = a.WithType(visitType(v, a.Type(), p))
	return a
}

func (v *BaseVisitor[P]) VisitAssignmentOperation(ao *tree.AssignmentOperation, p P) tree.J {
	ao = ao.WithPrefix(v.self.VisitSpace(ao.Prefix(), tree.SpaceAssignmentOperationPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(ao, p)
	if ao, ok = tmp.(*tree.AssignmentOperation); !ok {
		return tmp
	}
	tmp = v.self.VisitExpression(ao, p)
	if ao, ok = tmp.(*tree.AssignmentOperation); !ok {
		return tmp
	}
	ao = ao.WithMarkers(v.self.VisitMarkers(ao.Markers(), p))
	ao = ao.WithVariable(visitAndCast(v, ao.Variable(), p))
	ao = ao.Padding().WithOperator(visitLeftPadded(v, ao.Padding().Operator(), tree.LeftPaddedAssignmentOperationOperator, p))
	ao = ao.WithAssignment(visitAndCast(v, ao.Assignment(), p))
	ao = ao.WithType(visitType(v, ao.Type(), p))
	return ao
}

func (v *BaseVisitor[P]) VisitBinary(b *tree.Binary, p P) tree.J {
	b = b.WithPrefix(v.self.VisitSpace(b.Prefix(), tree.SpaceBinaryPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(b, p)
	if b, ok = tmp.(*tree.Binary); !ok {
		return tmp
	}
	b = b.WithMarkers(v.self.VisitMarkers(b.Markers(), p))
	b = b.WithLeft(visitAndCast(v, b.Left(), p))
	b = b.Padding().WithOperator(visitLeftPadded(v, b.Padding().Operator(), tree.LeftPaddedBinaryOperator, p))
	b = b.WithRight(visitAndCast(v, b.Right(), p))
	b = b.WithType(visitType(v, b.Type(), p))
	return b
}

func (v *BaseVisitor[P]) VisitControlParentheses(cp *tree.ControlParentheses, p P) tree.J {
	cp = cp.WithPrefix(v.self.VisitSpace(cp.Prefix(), tree.SpaceControlParenthesesPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(cp, p)
	if cp, ok = tmp.(*tree.ControlParentheses); !ok {
		return tmp
	}
	cp = cp.WithMarkers(v.self.VisitMarkers(cp.Markers(), p))
	cp = cp.Padding().WithTree(visitRightPadded(v, cp.Padding().Tree(), tree.RightPaddedControlParenthesesTree, p))
	return cp
}

func (v *BaseVisitor[P]) VisitDeconstructionPattern(dp *tree.DeconstructionPattern, p P) tree.J {
	dp = dp.WithPrefix(v.self.VisitSpace(dp.Prefix(), tree.SpaceDeconstructionPatternPrefix, p))
	dp = dp.WithMarkers(v.self.VisitMarkers(dp.Markers(), p))
	dp = dp.WithDeconstructor(visitAndCast(v, dp.Deconstructor(), p))
	dp = dp.Padding().WithNested(visitContainer(v, dp.Padding().Nested(), tree.ContainerDeconstructionPatternNested, p))
	dp = dp.WithType(visitType(v, dp.Type(), p))
	return dp
}

func (v *BaseVisitor[P]) VisitFieldAccess(fa *tree.FieldAccess, p P) tree.J {
	fa = fa.WithPrefix(v.self.VisitSpace(fa.Prefix(), tree.SpaceFieldAccessPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(fa, p)
	if fa, ok = tmp.(*tree.FieldAccess); !ok {
		return tmp
	}
	tmp = v.self.VisitExpression(fa, p)
	if fa, ok = tmp.(*tree.FieldAccess); !ok {
		return tmp
	}
	fa = fa.WithMarkers(v.self.VisitMarkers(fa.Markers(), p))
	fa = fa.WithTarget(visitAndCast(v, fa.Target(), p))
	fa = fa.Padding().WithName(visitLeftPadded(v, fa.Padding().Name(), tree.LeftPaddedFieldAccessName, p))
	fa = fa.WithType(visitType(v, fa.Type(), p))
	return fa
}

func (v *BaseVisitor[P]) VisitIdentifier(i *tree.Identifier, p P) tree.J {
	i = i.WithPrefix(v.self.VisitSpace(i.Prefix(), tree.SpaceIdentifierPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(i, p)
	if i, ok = tmp.(*tree.Identifier); !ok {
		return tmp
	}
	i = i.WithMarkers(v.self.VisitMarkers(i.Markers(), p))
	i = i.WithAnnotations(lst.MapList(i.Annotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	i = i.WithType(visitType(v, i.Type(), p))
	i = i.WithFieldType(visitType(v, i.FieldType(), p))
	return i
}

func (v *BaseVisitor[P]) VisitInstanceOf(io *tree.InstanceOf, p P) tree.J {
	io = io.WithPrefix(v.self.VisitSpace(io.Prefix(), tree.SpaceInstanceOfPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(io, p)
	if io, ok = tmp.(*tree.InstanceOf); !ok {
		return tmp
	}
	io = io.WithMarkers(v.self.VisitMarkers(io.Markers(), p))
	io = io.Padding().WithExpression(visitRightPadded(v, io.Padding().Expression(), tree.RightPaddedInstanceOfExpression, p))
	io = io.WithClazz(visitAndCast(v, io.Clazz(), p))
	io = io.WithPattern(visitAndCast(v, io.Pattern(), p))
	io = io.WithType(visitType(v, io.Type(), p))
	io = io.WithModifier(visitAndCast(v, io.Modifier(), p))
	return io
}

func (v *BaseVisitor[P]) VisitLambda(l *tree.Lambda, p P) tree.J {
	l = l.WithPrefix(v.self.VisitSpace(l.Prefix(), tree.SpaceLambdaPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(l, p)
	if l, ok = tmp.(*tree.Lambda); !ok {
		return tmp
	}
	tmp = v.self.VisitExpression(l, p)
	if l, ok = tmp.(*tree.Lambda); !ok {
		return tmp
	}
	l = l.WithMarkers(v.self.VisitMarkers(l.Markers(), p))
	l = l.WithParameters(visitAndCast(v, l.Parameters(), p))
	l = l.WithArrow(v.self.VisitSpace(l.Arrow(), tree.SpaceLambdaArrow, p))
	l = l.WithBody(visitAndCast(v, l.Body(), p))
	l = l.WithType(visitType(v, l.Type(), p))
	return l
}

func (v *BaseVisitor[P]) VisitLambdaParameters(lp *tree.LambdaParameters, p P) tree.J {
	lp = lp.WithPrefix(v.self.VisitSpace(lp.Prefix(), tree.SpaceLambdaParametersPrefix, p))
	lp = lp.WithMarkers(v.self.VisitMarkers(lp.Markers(), p))
	lp = lp.Padding().WithParameters(visitRightPaddedList(v, lp.Padding().Parameters(), tree.RightPaddedLambdaParametersParameters, p))
	return lp
}

func (v *BaseVisitor[P]) VisitLiteral(l *tree.Literal, p P) tree.J {
	l = l.WithPrefix(v.self.VisitSpace(l.Prefix(), tree.SpaceLiteralPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(l, p)
	if l, ok = tmp.(*tree.Literal); !ok {
		return tmp
	}
	l = l.WithMarkers(v.self.VisitMarkers(l.Markers(), p))
	l = l.WithType(visitType(v, l.Type(), p))
	return l
}

func (v *BaseVisitor[P]) VisitMemberReference(mr *tree.MemberReference, p P) tree.J {
	mr = mr.WithPrefix(v.self.VisitSpace(mr.Prefix(), tree.SpaceMemberReferencePrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(mr, p)
	if mr, ok = tmp.(*tree.MemberReference); !ok {
		return tmp
	}
	mr = mr.WithMarkers(v.self.VisitMarkers(mr.Markers(), p))
	mr = mr.Padding().WithContaining(visitRightPadded(v, mr.Padding().Containing(), tree.RightPaddedMemberReferenceContaining, p))
	mr = mr.Padding().WithTypeParameters(visitContainer(v, mr.Padding().TypeParameters(), tree.ContainerMemberReferenceTypeParameters, p))
	mr = mr.Padding().WithReference(visitLeftPadded(v, mr.Padding().Reference(), tree.LeftPaddedMemberReferenceReference, p))
	mr = mr.WithType(visitType(v, mr.Type(), p))
	mr = mr.WithMethodType(visitType(v, mr.MethodType(), p))
	mr = mr.WithVariableType(visitType(v, mr.VariableType(), p))
	return mr
}

func (v *BaseVisitor[P]) VisitMethodInvocation(mi *tree.MethodInvocation, p P) tree.J {
	mi = mi.WithPrefix(v.self.VisitSpace(mi.Prefix(), tree.SpaceMethodInvocationPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(mi, p)
	if mi, ok = tmp.(*tree.MethodInvocation); !ok {
		return tmp
	}
	tmp = v.self.VisitExpression(mi, p)
	if mi, ok = tmp.(*tree.MethodInvocation); !ok {
		return tmp
	}
	mi = mi.WithMarkers(v.self.VisitMarkers(mi.Markers(), p))
	mi = mi.Padding().WithSelect(visitRightPadded(v, mi.Padding().Select(), tree.RightPaddedMethodInvocationSelect, p))
	mi = mi.Padding().WithTypeParameters(visitContainer(v, mi.Padding().TypeParameters(), tree.ContainerMethodInvocationTypeParameters, p))
	mi = mi.WithName(visitAndCast(v, mi.Name(), p))
	mi = mi.Padding().WithArguments(visitContainer(v, mi.Padding().Arguments(), tree.ContainerMethodInvocationArguments, p))
	mi = mi.WithMethodType(visitType(v, mi.MethodType(), p))
	return mi
}

func (v *BaseVisitor[P]) VisitNewArray(na *tree.NewArray, p P) tree.J {
	na = na.WithPrefix(v.self.VisitSpace(na.Prefix(), tree.SpaceNewArrayPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(na, p)
	if na, ok = tmp.(*tree.NewArray); !ok {
		return tmp
	}
	na = na.WithMarkers(v.self.VisitMarkers(na.Markers(), p))
	na = na.WithTypeExpression(visitAndCast(v, na.TypeExpression(), p))
	na = na.WithDimensions(lst.MapList(na.Dimensions(), func(e *tree.ArrayDimension) *tree.ArrayDimension { return visitAndCast(v, e, p) }))
	na = na.Padding().WithInitializer(visitContainer(v, na.Padding().Initializer(), tree.ContainerNewArrayInitializer, p))
	na = na.WithType(visitType(v, na.Type(), p))
	return na
}

func (v *BaseVisitor[P]) VisitNewClass(nc *tree.NewClass, p P) tree.J {
	nc = nc.WithPrefix(v.self.VisitSpace(nc.Prefix(), tree.SpaceNewClassPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(nc, p)
	if nc, ok = tmp.(*tree.NewClass); !ok {
		return tmp
	}
	tmp = v.self.VisitExpression(nc, p)
	if nc, ok = tmp.(*tree.NewClass); !ok {
		return tmp
	}
	nc = nc.WithMarkers(v.self.VisitMarkers(nc.Markers(), p))
	nc = nc.Padding().WithEnclosing(visitRightPadded(v, nc.Padding().Enclosing(), tree.RightPaddedNewClassEnclosing, p))
	nc = nc.WithNew(v.self.VisitSpace(nc.New(), tree.SpaceNewClassNew, p))
	nc = nc.WithClazz(visitAndCast(v, nc.Clazz(), p))
	nc = nc.Padding().WithArguments(visitContainer(v, nc.Padding().Arguments(), tree.ContainerNewClassArguments, p))
	nc = nc.WithBody(visitAndCast(v, nc.Body(), p))
	nc = nc.WithConstructorType(visitType(v, nc.ConstructorType(), p))
	return nc
}

func (v *BaseVisitor[P]) VisitParentheses(pa *tree.Parentheses, p P) tree.J {
	pa = pa.WithPrefix(v.self.VisitSpace(pa.Prefix(), tree.SpaceParenthesesPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(pa, p)
	if pa, ok = tmp.(*tree.Parentheses); !ok {
		return tmp
	}
	pa = pa.WithMarkers(v.self.VisitMarkers(pa.Markers(), p))
	pa = pa.Padding().WithTree(visitRightPadded(v, pa.Padding().Tree(), tree.RightPaddedParenthesesTree, p))
	return pa
}

func (v *BaseVisitor[P]) VisitSwitchExpression(se *tree.SwitchExpression, p P) tree.J {
	se = se.WithPrefix(v.self.VisitSpace(se.Prefix(), tree.SpaceSwitchExpressionPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(se, p)
	if se, ok = tmp.(*tree.SwitchExpression); !ok {
		return tmp
	}
	se = se.WithMarkers(v.self.VisitMarkers(se.Markers(), p))
	se = se.WithSelector(visitAndCast(v, se.Selector(), p))
	se = se.WithCases(visitAndCast(v, se.Cases(), p))
	se = se.WithType(visitType(v, se.Type(), p))
	return se
}

func (v *BaseVisitor[P]) VisitTernary(tern *tree.Ternary, p P) tree.J {
	tern = tern.WithPrefix(v.self.VisitSpace(tern.Prefix(), tree.SpaceTernaryPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(tern, p)
	if tern, ok = tmp.(*tree.Ternary); !ok {
		return tmp
	}
	tmp = v.self.VisitExpression(tern, p)
	if tern, ok = tmp.(*tree.Ternary); !ok {
		return tmp
	}
	tern = tern.WithMarkers(v.self.VisitMarkers(tern.Markers(), p))
	tern = tern.WithCondition(visitAndCast(v, tern.Condition(), p))
	tern = tern.Padding().WithTruePart(visitLeftPadded(v, tern.Padding().TruePart(), tree.LeftPaddedTernaryTruePart, p))
	tern = tern.Padding().WithFalsePart(visitLeftPadded(v, tern.Padding().FalsePart(), tree.LeftPaddedTernaryFalsePart, p))
	tern = tern.WithType(visitType(v, tern.Type(), p))
	return tern
}

func (v *BaseVisitor[P]) VisitTypeCast(tc *tree.TypeCast, p P) tree.J {
	tc = tc.WithPrefix(v.self.VisitSpace(tc.Prefix(), tree.SpaceTypeCastPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(tc, p)
	if tc, ok = tmp.(*tree.TypeCast); !ok {
		return tmp
	}
	tc = tc.WithMarkers(v.self.VisitMarkers(tc.Markers(), p))
	tc = tc.WithClazz(visitAndCast(v, tc.Clazz(), p))
	tc = tc.WithExpression(visitAndCast(v, tc.Expression(), p))
	return tc
}

func (v *BaseVisitor[P]) VisitUnary(u *tree.Unary, p P) tree.J {
	u = u.WithPrefix(v.self.VisitSpace(u.Prefix(), tree.SpaceUnaryPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(u, p)
	if u, ok = tmp.(*tree.Unary); !ok {
		return tmp
	}
	tmp = v.self.VisitExpression(u, p)
	if u, ok = tmp.(*tree.Unary); !ok {
		return tmp
	}
	u = u.WithMarkers(v.self.VisitMarkers(u.Markers(), p))
	u = u.Padding().WithOperator(visitLeftPadded(v, u.Padding().Operator(), tree.LeftPaddedUnaryOperator, p))
	u = u.WithExpression(visitAndCast(v, u.Expression(), p))
	u = u.WithType(visitType(v, u.Type(), p))
	return u
}
