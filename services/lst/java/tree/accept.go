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

import "fmt"

// Visitor has one method per node kind. Accept dispatches to it.
//
// Implementations normally embed java.BaseVisitor, which supplies the
// default traversal for every kind, and override what they need.
type Visitor[P any] interface {
	VisitAnnotatedType(at *AnnotatedType, p P) J
	VisitAnnotation(a *Annotation, p P) J
	VisitArrayAccess(aa *ArrayAccess, p P) J
	VisitArrayDimension(ad *ArrayDimension, p P) J
	VisitArrayType(at *ArrayType, p P) J
	VisitAssert(a *Assert, p P) J
	VisitAssignment(a *Assignment, p P) J
	VisitAssignmentOperation(ao *AssignmentOperation, p P) J
	VisitBinary(b *Binary, p P) J
	VisitBlock(b *Block, p P) J
	VisitBreak(brk *Break, p P) J
	VisitCase(cs *Case, p P) J
	VisitClassDeclaration(cd *ClassDeclaration, p P) J
	VisitClassDeclarationKind(cdk *ClassDeclarationKind, p P) J
	VisitCompilationUnit(cu *CompilationUnit, p P) J
	VisitContinue(cont *Continue, p P) J
	VisitControlParentheses(cp *ControlParentheses, p P) J
	VisitDeconstructionPattern(dp *DeconstructionPattern, p P) J
	VisitDoWhileLoop(dwl *DoWhileLoop, p P) J
	VisitEmpty(e *Empty, p P) J
	VisitEnumValue(ev *EnumValue, p P) J
	VisitEnumValueSet(evs *EnumValueSet, p P) J
	VisitErroneous(e *Erroneous, p P) J
	VisitFieldAccess(fa *FieldAccess, p P) J
	VisitForEachLoop(fel *ForEachLoop, p P) J
	VisitForEachLoopControl(felc *ForEachLoopControl, p P) J
	VisitForLoop(fl *ForLoop, p P) J
	VisitForLoopControl(flc *ForLoopControl, p P) J
	VisitIdentifier(i *Identifier, p P) J
	VisitIf(iff *If, p P) J
	VisitIfElse(ie *IfElse, p P) J
	VisitImport(imp *Import, p P) J
	VisitInstanceOf(io *InstanceOf, p P) J
	VisitIntersectionType(it *IntersectionType, p P) J
	VisitLabel(l *Label, p P) J
	VisitLambda(l *Lambda, p P) J
	VisitLambdaParameters(lp *LambdaParameters, p P) J
	VisitLiteral(l *Literal, p P) J
	VisitMemberReference(mr *MemberReference, p P) J
	VisitMethodDeclaration(md *MethodDeclaration, p P) J
	VisitMethodInvocation(mi *MethodInvocation, p P) J
	VisitModifier(m *Modifier, p P) J
	VisitMultiCatch(mc *MultiCatch, p P) J
	VisitNamedVariable(nv *NamedVariable, p P) J
	VisitNewArray(na *NewArray, p P) J
	VisitNewClass(nc *NewClass, p P) J
	VisitNullableType(nt *NullableType, p P) J
	VisitPackage(pkg *Package, p P) J
	VisitParameterizedType(pt *ParameterizedType, p P) J
	VisitParentheses(pa *Parentheses, p P) J
	VisitParenthesizedTypeTree(ptt *ParenthesizedTypeTree, p P) J
	VisitPrimitive(prim *Primitive, p P) J
	VisitReturn(ret *Return, p P) J
	VisitSwitch(sw *Switch, p P) J
	VisitSwitchExpression(se *SwitchExpression, p P) J
	VisitSynchronized(sync *Synchronized, p P) J
	VisitTernary(tern *Ternary, p P) J
	VisitThrow(th *Throw, p P) J
	VisitTry(tr *Try, p P) J
	VisitTryCatch(tc *TryCatch, p P) J
	VisitTryResource(tr *TryResource, p P) J
	VisitTypeCast(tc *TypeCast, p P) J
	VisitTypeParameter(tp *TypeParameter, p P) J
	VisitTypeParameters(tp *TypeParameters, p P) J
	VisitUnary(u *Unary, p P) J
	VisitUnknown(u *Unknown, p P) J
	VisitUnknownSource(us *UnknownSource, p P) J
	VisitVariableDeclarations(vd *VariableDeclarations, p P) J
	VisitWhileLoop(wl *WhileLoop, p P) J
	VisitWildcard(w *Wildcard, p P) J
	VisitYield(y *Yield, p P) J
}

// Accept dispatches t to the method of v for its concrete kind.
func Accept[P any](t J, v Visitor[P], p P) J {
	switch n := t.(type) {
	case *AnnotatedType:
		return v.VisitAnnotatedType(n, p)
	case *Annotation:
		return v.VisitAnnotation(n, p)
	case *ArrayAccess:
		return v.VisitArrayAccess(n, p)
	case *ArrayDimension:
		return v.VisitArrayDimension(n, p)
	case *ArrayType:
		return v.VisitArrayType(n, p)
	case *Assert:
		return v.VisitAssert(n, p)
	case *Assignment:
		return v.VisitAssignment(n, p)
	case *AssignmentOperation:
		return v.VisitAssignmentOperation(n, p)
	case *Binary:
		return v.VisitBinary(n, p)
	case *Block:
		return v.VisitBlock(n, p)
	case *Break:
		return v.VisitBreak(n, p)
	case *Case:
		return v.VisitCase(n, p)
	case *ClassDeclaration:
		return v.VisitClassDeclaration(n, p)
	case *ClassDeclarationKind:
		return v.VisitClassDeclarationKind(n, p)
	case *CompilationUnit:
		return v.VisitCompilationUnit(n, p)
	case *Continue:
		return v.VisitContinue(n, p)
	case *ControlParentheses:
		return v.VisitControlParentheses(n, p)
	case *DeconstructionPattern:
		return v.VisitDeconstructionPattern(n, p)
	case *DoWhileLoop:
		return v.VisitDoWhileLoop(n, p)
	case *Empty:
		return v.VisitEmpty(n, p)
	case *EnumValue:
		return v.VisitEnumValue(n, p)
	case *EnumValueSet:
		return v.VisitEnumValueSet(n, p)
	case *Erroneous:
		return v.VisitErroneous(n, p)
	case *FieldAccess:
		return v.VisitFieldAccess(n, p)
	case *ForEachLoop:
		return v.VisitForEachLoop(n, p)
	case *ForEachLoopControl:
		return v.VisitForEachLoopControl(n, p)
	case *ForLoop:
		return v.VisitForLoop(n, p)
	case *ForLoopControl:
		return v.VisitForLoopControl(n, p)
	case *Identifier:
		return v.VisitIdentifier(n, p)
	case *If:
		return v.VisitIf(n, p)
	case *IfElse:
		return v.VisitIfElse(n, p)
	case *Import:
		return v.VisitImport(n, p)
	case *InstanceOf:
		return v.VisitInstanceOf(n, p)
	case *IntersectionType:
		return v.VisitIntersectionType(n, p)
	case *Label:
		return v.VisitLabel(n, p)
	case *Lambda:
		return v.VisitLambda(n, p)
	case *LambdaParameters:
		return v.VisitLambdaParameters(n, p)
	case *Literal:
		return v.VisitLiteral(n, p)
	case *MemberReference:
		return v.VisitMemberReference(n, p)
	case *MethodDeclaration:
		return v.VisitMethodDeclaration(n, p)
	case *MethodInvocation:
		return v.VisitMethodInvocation(n, p)
	case *Modifier:
		return v.VisitModifier(n, p)
	case *MultiCatch:
		return v.VisitMultiCatch(n, p)
	case *NamedVariable:
		return v.VisitNamedVariable(n, p)
	case *NewArray:
		return v.VisitNewArray(n, p)
	case *NewClass:
		return v.VisitNewClass(n, p)
	case *NullableType:
		return v.VisitNullableType(n, p)
	case *Package:
		return v.VisitPackage(n, p)
	case *ParameterizedType:
		return v.VisitParameterizedType(n, p)
	case *Parentheses:
		return v.VisitParentheses(n, p)
	case *ParenthesizedTypeTree:
		return v.VisitParenthesizedTypeTree(n, p)
	case *Primitive:
		return v.VisitPrimitive(n, p)
	case *Return:
		return v.VisitReturn(n, p)
	case *Switch:
		return v.VisitSwitch(n, p)
	case *SwitchExpression:
		return v.VisitSwitchExpression(n, p)
	case *Synchronized:
		return v.VisitSynchronized(n, p)
	case *Ternary:
		return v.VisitTernary(n, p)
	case *Throw:
		return v.VisitThrow(n, p)
	case *Try:
		return v.VisitTry(n, p)
	case *TryCatch:
		return v.VisitTryCatch(n, p)
	case *TryResource:
		return v.VisitTryResource(n, p)
	case *TypeCast:
		return v.VisitTypeCast(n, p)
	case *TypeParameter:
		return v.VisitTypeParameter(n, p)
	case *TypeParameters:
		return v.VisitTypeParameters(n, p)
	case *Unary:
		return v.VisitUnary(n, p)
	case *Unknown:
		return v.VisitUnknown(n, p)
	case *UnknownSource:
		return v.VisitUnknownSource(n, p)
	case *VariableDeclarations:
		return v.VisitVariableDeclarations(n, p)
	case *WhileLoop:
		return v.VisitWhileLoop(n, p)
	case *Wildcard:
		return v.VisitWildcard(n, p)
	case *Yield:
		return v.VisitYield(n, p)
	}
	panic(fmt.Sprintf("tree: %T is not a Java node kind", t))
}
