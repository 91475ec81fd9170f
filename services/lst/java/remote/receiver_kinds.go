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
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

func (r *Receiver) VisitAnnotatedType(at *tree.AnnotatedType, ctx *rpc.ReceiverContext) tree.J {
	at = at.WithID(rpc.ReceiveValue(ctx, at.ID(), rpc.UUID))
	at = at.WithPrefix(rpc.ReceiveNode(ctx, at.Prefix(), receiveSpace))
	at = at.WithMarkers(rpc.ReceiveNode(ctx, at.Markers(), rpc.ReceiveMarkers))
	at = at.WithAnnotations(rpc.ReceiveNodes(ctx, at.Annotations(), receiveTree[*tree.Annotation]))
	at = at.WithTypeExpression(rpc.ReceiveNode(ctx, at.TypeExpression(), receiveTree[tree.TypeTree]))
	return at
}

func (r *Receiver) VisitAnnotation(a *tree.Annotation, ctx *rpc.ReceiverContext) tree.J {
	a = a.WithID(rpc.ReceiveValue(ctx, a.ID(), rpc.UUID))
	a = a.WithPrefix(rpc.ReceiveNode(ctx, a.Prefix(), receiveSpace))
	a = a.WithMarkers(rpc.ReceiveNode(ctx, a.Markers(), rpc.ReceiveMarkers))
	a = a.WithAnnotationType(rpc.ReceiveNode(ctx, a.AnnotationType(), receiveTree[tree.NameTree]))
	a = a.Padding().WithArguments(rpc.ReceiveNode(ctx, a.Padding().Arguments(), receiveContainer[tree.Expression](rpc.Tree)))
	return a
}

func (r *Receiver) VisitArrayAccess(aa *tree.ArrayAccess, ctx *rpc.ReceiverContext) tree.J {
	aa = aa.WithID(rpc.ReceiveValue(ctx, aa.ID(), rpc.UUID))
	aa = aa.WithPrefix(rpc.ReceiveNode(ctx, aa.Prefix(), receiveSpace))
	aa = aa.WithMarkers(rpc.ReceiveNode(ctx, aa.Markers(), rpc.ReceiveMarkers))
	aa = aa.WithIndexed(rpc.ReceiveNode(ctx, aa.Indexed(), receiveTree[tree.Expression]))
	aa = aa.WithDimension(rpc.ReceiveNode(ctx, aa.Dimension(), receiveTree[*tree.ArrayDimension]))
	aa = aa.WithType(rpc.ReceiveValue(ctx, aa.Type(), rpc.Object))
	return aa
}

func (r *Receiver) VisitArrayDimension(ad *tree.ArrayDimension, ctx *rpc.ReceiverContext) tree.J {
	ad = ad.WithID(rpc.ReceiveValue(ctx, ad.ID(), rpc.UUID))
	ad = ad.WithPrefix(rpc.ReceiveNode(ctx, ad.Prefix(), receiveSpace))
	ad = ad.WithMarkers(rpc.ReceiveNode(ctx, ad.Markers(), rpc.ReceiveMarkers))
	ad = ad.Padding().WithIndex(rpc.ReceiveNode(ctx, ad.Padding().Index(), receiveRightPadded[tree.Expression](rpc.Tree)))
	return ad
}

func (r *Receiver) VisitArrayType(at *tree.ArrayType, ctx *rpc.ReceiverContext) tree.J {
	at = at.WithID(rpc.ReceiveValue(ctx, at.ID(), rpc.UUID))
	at = at.WithPrefix(rpc.ReceiveNode(ctx, at.Prefix(), receiveSpace))
	at = at.WithMarkers(rpc.ReceiveNode(ctx, at.Markers(), rpc.ReceiveMarkers))
	at = at.WithElementType(rpc.ReceiveNode(ctx, at.ElementType(), receiveTree[tree.TypeTree]))
	at = at.WithAnnotations(rpc.ReceiveNodes(ctx, at.Annotations(), receiveTree[*tree.Annotation]))
	at = at.Padding().WithDimension(rpc.ReceiveNode(ctx, at.Padding().Dimension(), receiveLeftPadded[*tree.Space](rpc.Object)))
	at = at.WithType(rpc.ReceiveValue(ctx, at.Type(), rpc.Object))
	return at
}

func (r *Receiver) VisitAssert(a *tree.Assert, ctx *rpc.ReceiverContext) tree.J {
	a = a.WithID(rpc.ReceiveValue(ctx, a.ID(), rpc.UUID))
	a = a.WithPrefix(rpc.ReceiveNode(ctx, a.Prefix(), receiveSpace))
	a = a.WithMarkers(rpc.ReceiveNode(ctx, a.Markers(), rpc.ReceiveMarkers))
	a = a.WithCondition(rpc.ReceiveNode(ctx, a.Condition(), receiveTree[tree.Expression]))
	a = a.Padding().WithDetail(rpc.ReceiveNode(ctx, a.Padding().Detail(), receiveLeftPadded[tree.Expression](rpc.Tree)))
	return a
}

func (r *Receiver) VisitAssignment(a *tree.Assignment, ctx *rpc.ReceiverContext) tree.J {
	a = a.WithID(rpc.ReceiveValue(ctx, a.ID(), rpc.UUID))
	a = a.WithPrefix(rpc.ReceiveNode(ctx, a.Prefix(), receiveSpace))
	a = a.WithMarkers(rpc.ReceiveNode(ctx, a.Markers(), rpc.ReceiveMarkers))
	a = a.WithVariable(rpc.ReceiveNode(ctx, a.Variable(), receiveTree[tree.Expression]))
	a = a.Padding().WithAssignment(rpc.ReceiveNode(ctx, a.Padding().Assignment(), receiveLeftPadded[tree.Expression](rpc.Tree)))
	a = a.WithType(rpc.ReceiveValue(ctx, a.Type(), rpc.Object))
	return a
}

func (r *Receiver) VisitAssignmentOperation(ao *tree.AssignmentOperation, ctx *rpc.ReceiverContext) tree.J {
	ao = ao.WithID(rpc.ReceiveValue(ctx, ao.ID(), rpc.UUID))
	ao = ao.WithPrefix(rpc.ReceiveNode(ctx, ao.Prefix(), receiveSpace))
	ao = ao.WithMarkers(rpc.ReceiveNode(ctx, ao.Markers(), rpc.ReceiveMarkers))
	ao = ao.WithVariable(rpc.ReceiveNode(ctx, ao.Variable(), receiveTree[tree.Expression]))
	ao = ao.Padding().WithOperator(rpc.ReceiveNode(ctx, ao.Padding().Operator(), receiveLeftPadded[tree.AssignmentOperator](rpc.Enum)))
	ao = ao.WithAssignment(rpc.ReceiveNode(ctx, ao.Assignment(), receiveTree[tree.Expression]))
	ao = ao.WithType(rpc.ReceiveValue(ctx, ao.Type(), rpc.Object))
	return ao
}

func (r *Receiver) VisitBinary(b *tree.Binary, ctx *rpc.ReceiverContext) tree.J {
	b = b.WithID(rpc.ReceiveValue(ctx, b.ID(), rpc.UUID))
	b = b.WithPrefix(rpc.ReceiveNode(ctx, b.Prefix(), receiveSpace))
	b = b.WithMarkers(rpc.ReceiveNode(ctx, b.Markers(), rpc.ReceiveMarkers))
	b = b.WithLeft(rpc.ReceiveNode(ctx, b.Left(), receiveTree[tree.Expression]))
	b = b.Padding().WithOperator(rpc.ReceiveNode(ctx, b.Padding().Operator(), receiveLeftPadded[tree.BinaryOperator](rpc.Enum)))
	b = b.WithRight(rpc.ReceiveNode(ctx, b.Right(), receiveTree[tree.Expression]))
	b = b.WithType(rpc.ReceiveValue(ctx, b.Type(), rpc.Object))
	return b
}

func (r *Receiver) VisitBlock(b *tree.Block, ctx *rpc.ReceiverContext) tree.J {
	b = b.WithID(rpc.ReceiveValue(ctx, b.ID(), rpc.UUID))
	b = b.WithPrefix(rpc.ReceiveNode(ctx, b.Prefix(), receiveSpace))
	b = b.WithMarkers(rpc.ReceiveNode(ctx, b.Markers(), rpc.ReceiveMarkers))
	b = b.Padding().WithStatic(rpc.ReceiveNode(ctx, b.Padding().Static(), receiveRightPadded[bool](rpc.Primitive)))
	b = b.Padding().WithStatements(rpc.ReceiveNodes(ctx, b.Padding().Statements(), receiveRightPadded[tree.Statement](rpc.Tree)))
	b = b.WithEnd(rpc.ReceiveNode(ctx, b.End(), receiveSpace))
	return b
}

func (r *Receiver) VisitBreak(brk *tree.Break, ctx *rpc.ReceiverContext) tree.J {
	brk = brk.WithID(rpc.ReceiveValue(ctx, brk.ID(), rpc.UUID))
	brk = brk.WithPrefix(rpc.ReceiveNode(ctx, brk.Prefix(), receiveSpace))
	brk = brk.WithMarkers(rpc.ReceiveNode(ctx, brk.Markers(), rpc.ReceiveMarkers))
	brk = brk.WithLabel(rpc.ReceiveNode(ctx, brk.Label(), receiveTree[*tree.Identifier]))
	return brk
}

func (r *Receiver) VisitCase(cs *tree.Case, ctx *rpc.ReceiverContext) tree.J {
	cs = cs.WithID(rpc.ReceiveValue(ctx, cs.ID(), rpc.UUID))
	cs = cs.WithPrefix(rpc.ReceiveNode(ctx, cs.Prefix(), receiveSpace))
	cs = cs.WithMarkers(rpc.ReceiveNode(ctx, cs.Markers(), rpc.ReceiveMarkers))
	cs = cs.WithCaseType(rpc.ReceiveValue(ctx, cs.CaseType(), rpc.Enum))
	cs = cs.Padding().WithCaseLabels(rpc.ReceiveNode(ctx, cs.Padding().CaseLabels(), receiveContainer[tree.J](rpc.Tree)))
	cs = cs.Padding().WithStatements(rpc.ReceiveNode(ctx, cs.Padding().Statements(), receiveContainer[tree.Statement](rpc.Tree)))
	cs = cs.Padding().WithBody(rpc.ReceiveNode(ctx, cs.Padding().Body(), receiveRightPadded[tree.J](rpc.Tree)))
	cs = cs.WithGuard(rpc.ReceiveNode(ctx, cs.Guard(), receiveTree[tree.Expression]))
	return cs
}

func (r *Receiver) VisitClassDeclaration(cd *tree.ClassDeclaration, ctx *rpc.ReceiverContext) tree.J {
	cd = cd.WithID(rpc.ReceiveValue(ctx, cd.ID(), rpc.UUID))
	cd = cd.WithPrefix(rpc.ReceiveNode(ctx, cd.Prefix(), receiveSpace))
	cd = cd.WithMarkers(rpc.ReceiveNode(ctx, cd.Markers(), rpc.ReceiveMarkers))
	cd = cd.WithLeadingAnnotations(rpc.ReceiveNodes(ctx, cd.LeadingAnnotations(), receiveTree[*tree.Annotation]))
	cd = cd.WithModifiers(rpc.ReceiveNodes(ctx, cd.Modifiers(), receiveTree[*tree.Modifier]))
	cd = cd.WithKind(rpc.ReceiveNode(ctx, cd.Kind(), receiveTree[*tree.ClassDeclarationKind]))
	cd = cd.WithName(rpc.ReceiveNode(ctx, cd.Name(), receiveTree[*tree.Identifier]))
	cd = cd.Padding().WithTypeParameters(rpc.ReceiveNode(ctx, cd.Padding().TypeParameters(), receiveContainer[*tree.TypeParameter](rpc.Tree)))
	cd = cd.Padding().WithPrimaryConstructor(rpc.ReceiveNode(ctx, cd.Padding().PrimaryConstructor(), receiveContainer[tree.Statement](rpc.Tree)))
	cd = cd.Padding().WithExtends(rpc.ReceiveNode(ctx, cd.Padding().Extends(), receiveLeftPadded[tree.TypeTree](rpc.Tree)))
	cd = cd.Padding().WithImplements(rpc.ReceiveNode(ctx, cd.Padding().Implements(), receiveContainer[tree.TypeTree](rpc.Tree)))
	cd = cd.Padding().WithPermits(rpc.ReceiveNode(ctx, cd.Padding().Permits(), receiveContainer[tree.TypeTree](rpc.Tree)))
	cd = cd.WithBody(rpc.ReceiveNode(ctx, cd.Body(), receiveTree[*tree.Block]))
	cd = cd.WithType(rpc.ReceiveValue(ctx, cd.Type(), rpc.Object))
	return cd
}

func (r *Receiver) VisitClassDeclarationKind(cdk *tree.ClassDeclarationKind, ctx *rpc.ReceiverContext) tree.J {
	cdk = cdk.WithID(rpc.ReceiveValue(ctx, cdk.ID(), rpc.UUID))
	cdk = cdk.WithPrefix(rpc.ReceiveNode(ctx, cdk.Prefix(), receiveSpace))
	cdk = cdk.WithMarkers(rpc.ReceiveNode(ctx, cdk.Markers(), rpc.ReceiveMarkers))
	cdk = cdk.WithAnnotations(rpc.ReceiveNodes(ctx, cdk.Annotations(), receiveTree[*tree.Annotation]))
	cdk = cdk.WithClassKind(rpc.ReceiveValue(ctx, cdk.ClassKind(), rpc.Enum))
	return cdk
}

func (r *Receiver) VisitCompilationUnit(cu *tree.CompilationUnit, ctx *rpc.ReceiverContext) tree.J {
	cu = cu.WithID(rpc.ReceiveValue(ctx, cu.ID(), rpc.UUID))
	cu = cu.WithPrefix(rpc.ReceiveNode(ctx, cu.Prefix(), receiveSpace))
	cu = cu.WithMarkers(rpc.ReceiveNode(ctx, cu.Markers(), rpc.ReceiveMarkers))
	cu = cu.WithSourcePath(rpc.ReceiveValue(ctx, cu.SourcePath(), rpc.Primitive))
	cu = cu.WithCharsetName(rpc.ReceiveValue(ctx, cu.CharsetName(), rpc.Primitive))
	cu = cu.WithCharsetBomMarked(rpc.ReceiveValue(ctx, cu.CharsetBomMarked(), rpc.Primitive))
	cu = cu.WithChecksum(rpc.ReceiveValue(ctx, cu.Checksum(), rpc.Object))
	cu = cu.WithFileAttributes(rpc.ReceiveValue(ctx, cu.FileAttributes(), rpc.Object))
	cu = cu.Padding().WithPackageDeclaration(rpc.ReceiveNode(ctx, cu.Padding().PackageDeclaration(), receiveRightPadded[*tree.Package](rpc.Tree)))
	cu = cu.Padding().WithImports(rpc.ReceiveNodes(ctx, cu.Padding().Imports(), receiveRightPadded[*tree.Import](rpc.Tree)))
	cu = cu.WithClasses(rpc.ReceiveNodes(ctx, cu.Classes(), receiveTree[*tree.ClassDeclaration]))
	cu = cu.WithEof(rpc.ReceiveNode(ctx, cu.Eof(), receiveSpace))
	return cu
}

func (r *Receiver) VisitContinue(cont *tree.Continue, ctx *rpc.ReceiverContext) tree.J {
	cont = cont.WithID(rpc.ReceiveValue(ctx, cont.ID(), rpc.UUID))
	cont = cont.WithPrefix(rpc.ReceiveNode(ctx, cont.Prefix(), receiveSpace))
	cont = cont.WithMarkers(rpc.ReceiveNode(ctx, cont.Markers(), rpc.ReceiveMarkers))
	cont = cont.WithLabel(rpc.ReceiveNode(ctx, cont.Label(), receiveTree[*tree.Identifier]))
	return cont
}

func (r *Receiver) VisitControlParentheses(cp *tree.ControlParentheses, ctx *rpc.ReceiverContext) tree.J {
	cp = cp.WithID(rpc.ReceiveValue(ctx, cp.ID(), rpc.UUID))
	cp = cp.WithPrefix(rpc.ReceiveNode(ctx, cp.Prefix(), receiveSpace))
	cp = cp.WithMarkers(rpc.ReceiveNode(ctx, cp.Markers(), rpc.ReceiveMarkers))
	cp = cp.Padding().WithTree(rpc.ReceiveNode(ctx, cp.Padding().Tree(), receiveRightPadded[tree.J](rpc.Tree)))
	return cp
}

func (r *Receiver) VisitDeconstructionPattern(dp *tree.DeconstructionPattern, ctx *rpc.ReceiverContext) tree.J {
	dp = dp.WithID(rpc.ReceiveValue(ctx, dp.ID(), rpc.UUID))
	dp = dp.WithPrefix(rpc.ReceiveNode(ctx, dp.Prefix(), receiveSpace))
	dp = dp.WithMarkers(rpc.ReceiveNode(ctx, dp.Markers(), rpc.ReceiveMarkers))
	dp = dp.WithDeconstructor(rpc.ReceiveNode(ctx, dp.Deconstructor(), receiveTree[tree.Expression]))
	dp = dp.Padding().WithNested(rpc.ReceiveNode(ctx, dp.Padding().Nested(), receiveContainer[tree.J](rpc.Tree)))
	dp = dp.WithType(rpc.ReceiveValue(ctx, dp.Type(), rpc.Object))
	return dp
}

func (r *Receiver) VisitDoWhileLoop(dwl *tree.DoWhileLoop, ctx *rpc.ReceiverContext) tree.J {
	dwl = dwl.WithID(rpc.ReceiveValue(ctx, dwl.ID(), rpc.UUID))
	dwl = dwl.WithPrefix(rpc.ReceiveNode(ctx, dwl.Prefix(), receiveSpace))
	dwl = dwl.WithMarkers(rpc.ReceiveNode(ctx, dwl.Markers(), rpc.ReceiveMarkers))
	dwl = dwl.Padding().WithBody(rpc.ReceiveNode(ctx, dwl.Padding().Body(), receiveRightPadded[tree.Statement](rpc.Tree)))
	dwl = dwl.Padding().WithWhileCondition(rpc.ReceiveNode(ctx, dwl.Padding().WhileCondition(), receiveLeftPadded[*tree.ControlParentheses](rpc.Tree)))
	return dwl
}

func (r *Receiver) VisitEmpty(e *tree.Empty, ctx *rpc.ReceiverContext) tree.J {
	e = e.WithID(rpc.ReceiveValue(ctx, e.ID(), rpc.UUID))
	e = e.WithPrefix(rpc.ReceiveNode(ctx, e.Prefix(), receiveSpace))
	e = e.WithMarkers(rpc.ReceiveNode(ctx, e.Markers(), rpc.ReceiveMarkers))
	return e
}

func (r *Receiver) VisitEnumValue(ev *tree.EnumValue, ctx *rpc.ReceiverContext) tree.J {
	ev = ev.WithID(rpc.ReceiveValue(ctx, ev.ID(), rpc.UUID))
	ev = ev.WithPrefix(rpc.ReceiveNode(ctx, ev.Prefix(), receiveSpace))
	ev = ev.WithMarkers(rpc.ReceiveNode(ctx, ev.Markers(), rpc.ReceiveMarkers))
	ev = ev.WithAnnotations(rpc.ReceiveNodes(ctx, ev.Annotations(), receiveTree[*tree.Annotation]))
	ev = ev.WithName(rpc.ReceiveNode(ctx, ev.Name(), receiveTree[*tree.Identifier]))
	ev = ev.WithInitializer(rpc.ReceiveNode(ctx, ev.Initializer(), receiveTree[*tree.NewClass]))
	return ev
}

func (r *Receiver) VisitEnumValueSet(evs *tree.EnumValueSet, ctx *rpc.ReceiverContext) tree.J {
	evs = evs.WithID(rpc.ReceiveValue(ctx, evs.ID(), rpc.UUID))
	evs = evs.WithPrefix(rpc.ReceiveNode(ctx, evs.Prefix(), receiveSpace))
	evs = evs.WithMarkers(rpc.ReceiveNode(ctx, evs.Markers(), rpc.ReceiveMarkers))
	evs = evs.Padding().WithEnums(rpc.ReceiveNodes(ctx, evs.Padding().Enums(), receiveRightPadded[*tree.EnumValue](rpc.Tree)))
	evs = evs.WithTerminatedWithSemicolon(rpc.ReceiveValue(ctx, evs.TerminatedWithSemicolon(), rpc.Primitive))
	return evs
}

func (r *Receiver) VisitErroneous(e *tree.Erroneous, ctx *rpc.ReceiverContext) tree.J {
	e = e.WithID(rpc.ReceiveValue(ctx, e.ID(), rpc.UUID))
	e = e.WithPrefix(rpc.ReceiveNode(ctx, e.Prefix(), receiveSpace))
	e = e.WithMarkers(rpc.ReceiveNode(ctx, e.Markers(), rpc.ReceiveMarkers))
	e = e.WithText(rpc.ReceiveValue(ctx, e.Text(), rpc.Primitive))
	return e
}

func (r *Receiver) VisitFieldAccess(fa *tree.FieldAccess, ctx *rpc.ReceiverContext) tree.J {
	fa = fa.WithID(rpc.ReceiveValue(ctx, fa.ID(), rpc.UUID))
	fa = fa.WithPrefix(rpc.ReceiveNode(ctx, fa.Prefix(), receiveSpace))
	fa = fa.WithMarkers(rpc.ReceiveNode(ctx, fa.Markers(), rpc.ReceiveMarkers))
	fa = fa.WithTarget(rpc.ReceiveNode(ctx, fa.Target(), receiveTree[tree.Expression]))
	fa = fa.Padding().WithName(rpc.ReceiveNode(ctx, fa.Padding().Name(), receiveLeftPadded[*tree.Identifier](rpc.Tree)))
	fa = fa.WithType(rpc.ReceiveValue(ctx, fa.Type(), rpc.Object))
	return fa
}

func (r *Receiver) VisitForEachLoop(fel *tree.ForEachLoop, ctx *rpc.ReceiverContext) tree.J {
	fel = fel.WithID(rpc.ReceiveValue(ctx, fel.ID(), rpc.UUID))
	fel = fel.WithPrefix(rpc.ReceiveNode(ctx, fel.Prefix(), receiveSpace))
	fel = fel.WithMarkers(rpc.ReceiveNode(ctx, fel.Markers(), rpc.ReceiveMarkers))
	fel = fel.WithControl(rpc.ReceiveNode(ctx, fel.Control(), receiveTree[*tree.ForEachLoopControl]))
	fel = fel.Padding().WithBody(rpc.ReceiveNode(ctx, fel.Padding().Body(), receiveRightPadded[tree.Statement](rpc.Tree)))
	return fel
}

func (r *Receiver) VisitForEachLoopControl(felc *tree.ForEachLoopControl, ctx *rpc.ReceiverContext) tree.J {
	felc = felc.WithID(rpc.ReceiveValue(ctx, felc.ID(), rpc.UUID))
	felc = felc.WithPrefix(rpc.ReceiveNode(ctx, felc.Prefix(), receiveSpace))
	felc = felc.WithMarkers(rpc.ReceiveNode(ctx, felc.Markers(), rpc.ReceiveMarkers))
	felc = felc.Padding().WithVariable(rpc.ReceiveNode(ctx, felc.Padding().Variable(), receiveRightPadded[*tree.VariableDeclarations](rpc.Tree)))
	felc = felc.Padding().WithIterable(rpc.ReceiveNode(ctx, felc.Padding().Iterable(), receiveRightPadded[tree.Expression](rpc.Tree)))
	return felc
}

func (r *Receiver) VisitForLoop(fl *tree.ForLoop, ctx *rpc.ReceiverContext) tree.J {
	fl = fl.WithID(rpc.ReceiveValue(ctx, fl.ID(), rpc.UUID))
	fl = fl.WithPrefix(rpc.ReceiveNode(ctx, fl.Prefix(), receiveSpace))
	fl = fl.WithMarkers(rpc.ReceiveNode(ctx, fl.Markers(), rpc.ReceiveMarkers))
	fl = fl.WithControl(rpc.ReceiveNode(ctx, fl.Control(), receiveTree[*tree.ForLoopControl]))
	fl = fl.Padding().WithBody(rpc.ReceiveNode(ctx, fl.Padding().Body(), receiveRightPadded[tree.Statement](rpc.Tree)))
	return fl
}

func (r *Receiver) VisitForLoopControl(flc *tree.ForLoopControl, ctx *rpc.ReceiverContext) tree.J {
	flc = flc.WithID(rpc.ReceiveValue(ctx, flc.ID(), rpc.UUID))
	flc = flc.WithPrefix(rpc.ReceiveNode(ctx, flc.Prefix(), receiveSpace))
	flc = flc.WithMarkers(rpc.ReceiveNode(ctx, flc.Markers(), rpc.ReceiveMarkers))
	flc = flc.Padding().WithInit(rpc.ReceiveNodes(ctx, flc.Padding().Init(), receiveRightPadded[tree.Statement](rpc.Tree)))
	flc = flc.Padding().WithCondition(rpc.ReceiveNode(ctx, flc.Padding().Condition(), receiveRightPadded[tree.Expression](rpc.Tree)))
	flc = flc.Padding().WithUpdate(rpc.ReceiveNodes(ctx, flc.Padding().Update(), receiveRightPadded[tree.Statement](rpc.Tree)))
	return flc
}

func (r *Receiver) VisitIdentifier(i *tree.Identifier, ctx *rpc.ReceiverContext) tree.J {
	i = i.WithID(rpc.ReceiveValue(ctx, i.ID(), rpc.UUID))
	i = i.WithPrefix(rpc.ReceiveNode(ctx, i.Prefix(), receiveSpace))
	i = i.WithMarkers(rpc.ReceiveNode(ctx, i.Markers(), rpc.ReceiveMarkers))
	i = i.WithAnnotations(rpc.ReceiveNodes(ctx, i.Annotations(), receiveTree[*tree.Annotation]))
	i = i.WithSimpleName(rpc.ReceiveValue(ctx, i.SimpleName(), rpc.Primitive))
	i = i.WithType(rpc.ReceiveValue(ctx, i.Type(), rpc.Object))
	i = i.WithFieldType(rpc.ReceiveValue(ctx, i.FieldType(), rpc.Object))
	return i
}

func (r *Receiver) VisitIf(iff *tree.If, ctx *rpc.ReceiverContext) tree.J {
	iff = iff.WithID(rpc.ReceiveValue(ctx, iff.ID(), rpc.UUID))
	iff = iff.WithPrefix(rpc.ReceiveNode(ctx, iff.Prefix(), receiveSpace))
	iff = iff.WithMarkers(rpc.ReceiveNode(ctx, iff.Markers(), rpc.ReceiveMarkers))
	iff = iff.WithIfCondition(rpc.ReceiveNode(ctx, iff.IfCondition(), receiveTree[*tree.ControlParentheses]))
	iff = iff.Padding().WithThenPart(rpc.ReceiveNode(ctx, iff.Padding().ThenPart(), receiveRightPadded[tree.Statement](rpc.Tree)))
	iff = iff.WithElsePart(rpc.ReceiveNode(ctx, iff.ElsePart(), receiveTree[*tree.IfElse]))
	return iff
}

func (r *Receiver) VisitIfElse(ie *tree.IfElse, ctx *rpc.ReceiverContext) tree.J {
	ie = ie.WithID(rpc.ReceiveValue(ctx, ie.ID(), rpc.UUID))
	ie = ie.WithPrefix(rpc.ReceiveNode(ctx, ie.Prefix(), receiveSpace))
	ie = ie.WithMarkers(rpc.ReceiveNode(ctx, ie.Markers(), rpc.ReceiveMarkers))
	ie = ie.Padding().WithBody(rpc.ReceiveNode(ctx, ie.Padding().Body(), receiveRightPadded[tree.Statement](rpc.Tree)))
	return ie
}

func (r *Receiver) VisitImport(imp *tree.Import, ctx *rpc.ReceiverContext) tree.J {
	imp = imp.WithID(rpc.ReceiveValue(ctx, imp.ID(), rpc.UUID))
	imp = imp.WithPrefix(rpc.ReceiveNode(ctx, imp.Prefix(), receiveSpace))
	imp = imp.WithMarkers(rpc.ReceiveNode(ctx, imp.Markers(), rpc.ReceiveMarkers))
	imp = imp.Padding().WithStatic(rpc.ReceiveNode(ctx, imp.Padding().Static(), receiveLeftPadded[bool](rpc.Primitive)))
	imp = imp.WithQualid(rpc.ReceiveNode(ctx, imp.Qualid(), receiveTree[*tree.FieldAccess]))
	imp = imp.Padding().WithAlias(rpc.ReceiveNode(ctx, imp.Padding().Alias(), receiveLeftPadded[*tree.Identifier](rpc.Tree)))
	return imp
}

func (r *Receiver) VisitInstanceOf(io *tree.InstanceOf, ctx *rpc.ReceiverContext) tree.J {
	io = io.WithID(rpc.ReceiveValue(ctx, io.ID(), rpc.UUID))
	io = io.WithPrefix(rpc.ReceiveNode(ctx, io.Prefix(), receiveSpace))
	io = io.WithMarkers(rpc.ReceiveNode(ctx, io.Markers(), rpc.ReceiveMarkers))
	io = io.Padding().WithExpression(rpc.ReceiveNode(ctx, io.Padding().Expression(), receiveRightPadded[tree.Expression](rpc.Tree)))
	io = io.WithClazz(rpc.ReceiveNode(ctx, io.Clazz(), receiveTree[tree.J]))
	io = io.WithPattern(rpc.ReceiveNode(ctx, io.Pattern(), receiveTree[tree.J]))
	io = io.WithType(rpc.ReceiveValue(ctx, io.Type(), rpc.Object))
	io = io.WithModifier(rpc.ReceiveNode(ctx, io.Modifier(), receiveTree[*tree.Modifier]))
	return io
}

func (r *Receiver) VisitIntersectionType(it *tree.IntersectionType, ctx *rpc.ReceiverContext) tree.J {
	it = it.WithID(rpc.ReceiveValue(ctx, it.ID(), rpc.UUID))
	it = it.WithPrefix(rpc.ReceiveNode(ctx, it.Prefix(), receiveSpace))
	it = it.WithMarkers(rpc.ReceiveNode(ctx, it.Markers(), rpc.ReceiveMarkers))
	it = it.Padding().WithBounds(rpc.ReceiveNode(ctx, it.Padding().Bounds(), receiveContainer[tree.TypeTree](rpc.Tree)))
	return it
}

func (r *Receiver) VisitLabel(l *tree.Label, ctx *rpc.ReceiverContext) tree.J {
	l = l.WithID(rpc.ReceiveValue(ctx, l.ID(), rpc.UUID))
	l = l.WithPrefix(rpc.ReceiveNode(ctx, l.Prefix(), receiveSpace))
	l = l.WithMarkers(rpc.ReceiveNode(ctx, l.Markers(), rpc.ReceiveMarkers))
	l = l.Padding().WithLabel(rpc.ReceiveNode(ctx, l.Padding().Label(), receiveRightPadded[*tree.Identifier](rpc.Tree)))
	l = l.WithStatement(rpc.ReceiveNode(ctx, l.Statement(), receiveTree[tree.Statement]))
	return l
}

func (r *Receiver) VisitLambda(l *tree.Lambda, ctx *rpc.ReceiverContext) tree.J {
	l = l.WithID(rpc.ReceiveValue(ctx, l.ID(), rpc.UUID))
	l = l.WithPrefix(rpc.ReceiveNode(ctx, l.Prefix(), receiveSpace))
	l = l.WithMarkers(rpc.ReceiveNode(ctx, l.Markers(), rpc.ReceiveMarkers))
	l = l.WithParameters(rpc.ReceiveNode(ctx, l.Parameters(), receiveTree[*tree.LambdaParameters]))
	l = l.WithArrow(rpc.ReceiveNode(ctx, l.Arrow(), receiveSpace))
	l = l.WithBody(rpc.ReceiveNode(ctx, l.Body(), receiveTree[tree.J]))
	l = l.WithType(rpc.ReceiveValue(ctx, l.Type(), rpc.Object))
	return l
}

func (r *Receiver) VisitLambdaParameters(lp *tree.LambdaParameters, ctx *rpc.ReceiverContext) tree.J {
	lp = lp.WithID(rpc.ReceiveValue(ctx, lp.ID(), rpc.UUID))
	lp = lp.WithPrefix(rpc.ReceiveNode(ctx, lp.Prefix(), receiveSpace))
	lp = lp.WithMarkers(rpc.ReceiveNode(ctx, lp.Markers(), rpc.ReceiveMarkers))
	lp = lp.WithParenthesized(rpc.ReceiveValue(ctx, lp.Parenthesized(), rpc.Primitive))
	lp = lp.Padding().WithParameters(rpc.ReceiveNodes(ctx, lp.Padding().Parameters(), receiveRightPadded[tree.J](rpc.Tree)))
	return lp
}

func (r *Receiver) VisitLiteral(l *tree.Literal, ctx *rpc.ReceiverContext) tree.J {
	l = l.WithID(rpc.ReceiveValue(ctx, l.ID(), rpc.UUID))
	l = l.WithPrefix(rpc.ReceiveNode(ctx, l.Prefix(), receiveSpace))
	l = l.WithMarkers(rpc.ReceiveNode(ctx, l.Markers(), rpc.ReceiveMarkers))
	l = l.WithValue(rpc.ReceiveValue(ctx, l.Value(), rpc.Primitive))
	l = l.WithValueSource(rpc.ReceiveValue(ctx, l.ValueSource(), rpc.Primitive))
	l = l.WithUnicodeEscapes(rpc.ReceiveValues(ctx, l.UnicodeEscapes(), rpc.Object))
	l = l.WithType(rpc.ReceiveValue(ctx, l.Type(), rpc.Object))
	return l
}

func (r *Receiver) VisitMemberReference(mr *tree.MemberReference, ctx *rpc.ReceiverContext) tree.J {
	mr = mr.WithID(rpc.ReceiveValue(ctx, mr.ID(), rpc.UUID))
	mr = mr.WithPrefix(rpc.ReceiveNode(ctx, mr.Prefix(), receiveSpace))
	mr = mr.WithMarkers(rpc.ReceiveNode(ctx, mr.Markers(), rpc.ReceiveMarkers))
	mr = mr.Padding().WithContaining(rpc.ReceiveNode(ctx, mr.Padding().Containing(), receiveRightPadded[tree.Expression](rpc.Tree)))
	mr = mr.Padding().WithTypeParameters(rpc.ReceiveNode(ctx, mr.Padding().TypeParameters(), receiveContainer[tree.Expression](rpc.Tree)))
	mr = mr.Padding().WithReference(rpc.ReceiveNode(ctx, mr.Padding().Reference(), receiveLeftPadded[*tree.Identifier](rpc.Tree)))
	mr = mr.WithType(rpc.ReceiveValue(ctx, mr.Type(), rpc.Object))
	mr = mr.WithMethodType(rpc.ReceiveValue(ctx, mr.MethodType(), rpc.Object))
	mr = mr.WithVariableType(rpc.ReceiveValue(ctx, mr.VariableType(), rpc.Object))
	return mr
}

func (r *Receiver) VisitMethodDeclaration(md *tree.MethodDeclaration, ctx *rpc.ReceiverContext) tree.J {
	md = md.WithID(rpc.ReceiveValue(ctx, md.ID(), rpc.UUID))
	md = md.WithPrefix(rpc.ReceiveNode(ctx, md.Prefix(), receiveSpace))
	md = md.WithMarkers(rpc.ReceiveNode(ctx, md.Markers(), rpc.ReceiveMarkers))
	md = md.WithLeadingAnnotations(rpc.ReceiveNodes(ctx, md.LeadingAnnotations(), receiveTree[*tree.Annotation]))
	md = md.WithModifiers(rpc.ReceiveNodes(ctx, md.Modifiers(), receiveTree[*tree.Modifier]))
	md = md.WithTypeParameters(rpc.ReceiveNode(ctx, md.TypeParameters(), receiveTree[*tree.TypeParameters]))
	md = md.WithReturnTypeExpression(rpc.ReceiveNode(ctx, md.ReturnTypeExpression(), receiveTree[tree.TypeTree]))
	md = md.WithName(rpc.ReceiveNode(ctx, md.Name(), receiveTree[*tree.Identifier]))
	md = md.Padding().WithParameters(rpc.ReceiveNode(ctx, md.Padding().Parameters(), receiveContainer[tree.Statement](rpc.Tree)))
	md = md.Padding().WithThrows(rpc.ReceiveNode(ctx, md.Padding().Throws(), receiveContainer[tree.NameTree](rpc.Tree)))
	md = md.WithBody(rpc.ReceiveNode(ctx, md.Body(), receiveTree[*tree.Block]))
	md = md.Padding().WithDefaultValue(rpc.ReceiveNode(ctx, md.Padding().DefaultValue(), receiveLeftPadded[tree.Expression](rpc.Tree)))
	md = md.WithMethodType(rpc.ReceiveValue(ctx, md.MethodType(), rpc.Object))
	return md
}

func (r *Receiver) VisitMethodInvocation(mi *tree.MethodInvocation, ctx *rpc.ReceiverContext) tree.J {
	mi = mi.WithID(rpc.ReceiveValue(ctx, mi.ID(), rpc.UUID))
	mi = mi.WithPrefix(rpc.ReceiveNode(ctx, mi.Prefix(), receiveSpace))
	mi = mi.WithMarkers(rpc.ReceiveNode(ctx, mi.Markers(), rpc.ReceiveMarkers))
	mi = mi.Padding().WithSelect(rpc.ReceiveNode(ctx, mi.Padding().Select(), receiveRightPadded[tree.Expression](rpc.Tree)))
	mi = mi.Padding().WithTypeParameters(rpc.ReceiveNode(ctx, mi.Padding().TypeParameters(), receiveContainer[tree.Expression](rpc.Tree)))
	mi = mi.WithName(rpc.ReceiveNode(ctx, mi.Name(), receiveTree[*tree.Identifier]))
	mi = mi.Padding().WithArguments(rpc.ReceiveNode(ctx, mi.Padding().Arguments(), receiveContainer[tree.Expression](rpc.Tree)))
	mi = mi.WithMethodType(rpc.ReceiveValue(ctx, mi.MethodType(), rpc.Object))
	return mi
}

func (r *Receiver) VisitModifier(m *tree.Modifier, ctx *rpc.ReceiverContext) tree.J {
	m = m.WithID(rpc.ReceiveValue(ctx, m.ID(), rpc.UUID))
	m = m.WithPrefix(rpc.ReceiveNode(ctx, m.Prefix(), receiveSpace))
	m = m.WithMarkers(rpc.ReceiveNode(ctx, m.Markers(), rpc.ReceiveMarkers))
	m = m.WithKeyword(rpc.ReceiveValue(ctx, m.Keyword(), rpc.Primitive))
	m = m.WithModifierType(rpc.ReceiveValue(ctx, m.ModifierType(), rpc.Enum))
	m = m.WithAnnotations(rpc.ReceiveNodes(ctx, m.Annotations(), receiveTree[*tree.Annotation]))
	return m
}

func (r *Receiver) VisitMultiCatch(mc *tree.MultiCatch, ctx *rpc.ReceiverContext) tree.J {
	mc = mc.WithID(rpc.ReceiveValue(ctx, mc.ID(), rpc.UUID))
	mc = mc.WithPrefix(rpc.ReceiveNode(ctx, mc.Prefix(), receiveSpace))
	mc = mc.WithMarkers(rpc.ReceiveNode(ctx, mc.Markers(), rpc.ReceiveMarkers))
	mc = mc.Padding().WithAlternatives(rpc.ReceiveNodes(ctx, mc.Padding().Alternatives(), receiveRightPadded[tree.NameTree](rpc.Tree)))
	return mc
}

func (r *Receiver) VisitNamedVariable(nv *tree.NamedVariable, ctx *rpc.ReceiverContext) tree.J {
	nv = nv.WithID(rpc.ReceiveValue(ctx, nv.ID(), rpc.UUID))
	nv = nv.WithPrefix(rpc.ReceiveNode(ctx, nv.Prefix(), receiveSpace))
	nv = nv.WithMarkers(rpc.ReceiveNode(ctx, nv.Markers(), rpc.ReceiveMarkers))
	nv = nv.WithName(rpc.ReceiveNode(ctx, nv.Name(), receiveTree[*tree.Identifier]))
	nv = nv.WithDimensionsAfterName(rpc.ReceiveNodes(ctx, nv.DimensionsAfterName(), receiveLeftPadded[*tree.Space](rpc.Object)))
	nv = nv.Padding().WithInitializer(rpc.ReceiveNode(ctx, nv.Padding().Initializer(), receiveLeftPadded[tree.Expression](rpc.Tree)))
	nv = nv.WithVariableType(rpc.ReceiveValue(ctx, nv.VariableType(), rpc.Object))
	return nv
}

func (r *Receiver) VisitNewArray(na *tree.NewArray, ctx *rpc.ReceiverContext) tree.J {
	na = na.WithID(rpc.ReceiveValue(ctx, na.ID(), rpc.UUID))
	na = na.WithPrefix(rpc.ReceiveNode(ctx, na.Prefix(), receiveSpace))
	na = na.WithMarkers(rpc.ReceiveNode(ctx, na.Markers(), rpc.ReceiveMarkers))
	na = na.WithTypeExpression(rpc.ReceiveNode(ctx, na.TypeExpression(), receiveTree[tree.TypeTree]))
	na = na.WithDimensions(rpc.ReceiveNodes(ctx, na.Dimensions(), receiveTree[*tree.ArrayDimension]))
	na = na.Padding().WithInitializer(rpc.ReceiveNode(ctx, na.Padding().Initializer(), receiveContainer[tree.Expression](rpc.Tree)))
	na = na.WithType(rpc.ReceiveValue(ctx, na.Type(), rpc.Object))
	return na
}

func (r *Receiver) VisitNewClass(nc *tree.NewClass, ctx *rpc.ReceiverContext) tree.J {
	nc = nc.WithID(rpc.ReceiveValue(ctx, nc.ID(), rpc.UUID))
	nc = nc.WithPrefix(rpc.ReceiveNode(ctx, nc.Prefix(), receiveSpace))
	nc = nc.WithMarkers(rpc.ReceiveNode(ctx, nc.Markers(), rpc.ReceiveMarkers))
	nc = nc.Padding().WithEnclosing(rpc.ReceiveNode(ctx, nc.Padding().Enclosing(), receiveRightPadded[tree.Expression](rpc.Tree)))
	nc = nc.WithNew(rpc.ReceiveNode(ctx, nc.New(), receiveSpace))
	nc = nc.WithClazz(rpc.ReceiveNode(ctx, nc.Clazz(), receiveTree[tree.TypeTree]))
	nc = nc.Padding().WithArguments(rpc.ReceiveNode(ctx, nc.Padding().Arguments(), receiveContainer[tree.Expression](rpc.Tree)))
	nc = nc.WithBody(rpc.ReceiveNode(ctx, nc.Body(), receiveTree[*tree.Block]))
	nc = nc.WithConstructorType(rpc.ReceiveValue(ctx, nc.ConstructorType(), rpc.Object))
	return nc
}

func (r *Receiver) VisitNullableType(nt *tree.NullableType, ctx *rpc.ReceiverContext) tree.J {
	nt = nt.WithID(rpc.ReceiveValue(ctx, nt.ID(), rpc.UUID))
	nt = nt.WithPrefix(rpc.ReceiveNode(ctx, nt.Prefix(), receiveSpace))
	nt = nt.WithMarkers(rpc.ReceiveNode(ctx, nt.Markers(), rpc.ReceiveMarkers))
	nt = nt.WithAnnotations(rpc.ReceiveNodes(ctx, nt.Annotations(), receiveTree[*tree.Annotation]))
	nt = nt.Padding().WithTypeTree(rpc.ReceiveNode(ctx, nt.Padding().TypeTree(), receiveRightPadded[tree.TypeTree](rpc.Tree)))
	return nt
}

func (r *Receiver) VisitPackage(pkg *tree.Package, ctx *rpc.ReceiverContext) tree.J {
	pkg = pkg.WithID(rpc.ReceiveValue(ctx, pkg.ID(), rpc.UUID))
	pkg = pkg.WithPrefix(rpc.ReceiveNode(ctx, pkg.Prefix(), receiveSpace))
	pkg = pkg.WithMarkers(rpc.ReceiveNode(ctx, pkg.Markers(), rpc.ReceiveMarkers))
	pkg = pkg.WithExpression(rpc.ReceiveNode(ctx, pkg.Expression(), receiveTree[tree.Expression]))
	pkg = pkg.WithAnnotations(rpc.ReceiveNodes(ctx, pkg.Annotations(), receiveTree[*tree.Annotation]))
	return pkg
}

func (r *Receiver) VisitParameterizedType(pt *tree.ParameterizedType, ctx *rpc.ReceiverContext) tree.J {
	pt = pt.WithID(rpc.ReceiveValue(ctx, pt.ID(), rpc.UUID))
	pt = pt.WithPrefix(rpc.ReceiveNode(ctx, pt.Prefix(), receiveSpace))
	pt = pt.WithMarkers(rpc.ReceiveNode(ctx, pt.Markers(), rpc.ReceiveMarkers))
	pt = pt.WithClazz(rpc.ReceiveNode(ctx, pt.Clazz(), receiveTree[tree.NameTree]))
	pt = pt.Padding().WithTypeParameters(rpc.ReceiveNode(ctx, pt.Padding().TypeParameters(), receiveContainer[tree.Expression](rpc.Tree)))
	pt = pt.WithType(rpc.ReceiveValue(ctx, pt.Type(), rpc.Object))
	return pt
}

func (r *Receiver) VisitParentheses(pa *tree.Parentheses, ctx *rpc.ReceiverContext) tree.J {
	pa = pa.WithID(rpc.ReceiveValue(ctx, pa.ID(), rpc.UUID))
	pa = pa.WithPrefix(rpc.ReceiveNode(ctx, pa.Prefix(), receiveSpace))
	pa = pa.WithMarkers(rpc.ReceiveNode(ctx, pa.Markers(), rpc.ReceiveMarkers))
	pa = pa.Padding().WithTree(rpc.ReceiveNode(ctx, pa.Padding().Tree(), receiveRightPadded[tree.J](rpc.Tree)))
	return pa
}

func (r *Receiver) VisitParenthesizedTypeTree(ptt *tree.ParenthesizedTypeTree, ctx *rpc.ReceiverContext) tree.J {
	ptt = ptt.WithID(rpc.ReceiveValue(ctx, ptt.ID(), rpc.UUID))
	ptt = ptt.WithPrefix(rpc.ReceiveNode(ctx, ptt.Prefix(), receiveSpace))
	ptt = ptt.WithMarkers(rpc.ReceiveNode(ctx, ptt.Markers(), rpc.ReceiveMarkers))
	ptt = ptt.WithAnnotations(rpc.ReceiveNodes(ctx, ptt.Annotations(), receiveTree[*tree.Annotation]))
	ptt = ptt.WithParenthesizedType(rpc.ReceiveNode(ctx, ptt.ParenthesizedType(), receiveTree[*tree.Parentheses]))
	return ptt
}

func (r *Receiver) VisitPrimitive(prim *tree.Primitive, ctx *rpc.ReceiverContext) tree.J {
	prim = prim.WithID(rpc.ReceiveValue(ctx, prim.ID(), rpc.UUID))
	prim = prim.WithPrefix(rpc.ReceiveNode(ctx, prim.Prefix(), receiveSpace))
	prim = prim.WithMarkers(rpc.ReceiveNode(ctx, prim.Markers(), rpc.ReceiveMarkers))
	prim = prim.WithType(rpc.ReceiveValue(ctx, prim.Type(), rpc.Object))
	return prim
}

func (r *Receiver) VisitReturn(ret *tree.Return, ctx *rpc.ReceiverContext) tree.J {
	ret = ret.WithID(rpc.ReceiveValue(ctx, ret.ID(), rpc.UUID))
	ret = ret.WithPrefix(rpc.ReceiveNode(ctx, ret.Prefix(), receiveSpace))
	ret = ret.WithMarkers(rpc.ReceiveNode(ctx, ret.Markers(), rpc.ReceiveMarkers))
	ret = ret.WithExpression(rpc.ReceiveNode(ctx, ret.Expression(), receiveTree[tree.Expression]))
	return ret
}

func (r *Receiver) VisitSwitch(sw *tree.Switch, ctx *rpc.ReceiverContext) tree.J {
	sw = sw.WithID(rpc.ReceiveValue(ctx, sw.ID(), rpc.UUID))
	sw = sw.WithPrefix(rpc.ReceiveNode(ctx, sw.Prefix(), receiveSpace))
	sw = sw.WithMarkers(rpc.ReceiveNode(ctx, sw.Markers(), rpc.ReceiveMarkers))
	sw = sw.WithSelector(rpc.ReceiveNode(ctx, sw.Selector(), receiveTree[*tree.ControlParentheses]))
	sw = sw.WithCases(rpc.ReceiveNode(ctx, sw.Cases(), receiveTree[*tree.Block]))
	return sw
}

func (r *Receiver) VisitSwitchExpression(se *tree.SwitchExpression, ctx *rpc.ReceiverContext) tree.J {
	se = se.WithID(rpc.ReceiveValue(ctx, se.ID(), rpc.UUID))
	se = se.WithPrefix(rpc.ReceiveNode(ctx, se.Prefix(), receiveSpace))
	se = se.WithMarkers(rpc.ReceiveNode(ctx, se.Markers(), rpc.ReceiveMarkers))
	se = se.WithSelector(rpc.ReceiveNode(ctx, se.Selector(), receiveTree[*tree.ControlParentheses]))
	se = se.WithCases(rpc.ReceiveNode(ctx, se.Cases(), receiveTree[*tree.Block]))
	se = se.WithType(rpc.ReceiveValue(ctx, se.Type(), rpc.Object))
	return se
}

func (r *Receiver) VisitSynchronized(sync *tree.Synchronized, ctx *rpc.ReceiverContext) tree.J {
	sync = sync.WithID(rpc.ReceiveValue(ctx, sync.ID(), rpc.UUID))
	sync = sync.WithPrefix(rpc.ReceiveNode(ctx, sync.Prefix(), receiveSpace))
	sync = sync.WithMarkers(rpc.ReceiveNode(ctx, sync.Markers(), rpc.ReceiveMarkers))
	sync = sync.WithLock(rpc.ReceiveNode(ctx, sync.Lock(), receiveTree[*tree.ControlParentheses]))
	sync = sync.WithBody(rpc.ReceiveNode(ctx, sync.Body(), receiveTree[*tree.Block]))
	return sync
}

func (r *Receiver) VisitTernary(tern *tree.Ternary, ctx *rpc.ReceiverContext) tree.J {
	tern = tern.WithID(rpc.ReceiveValue(ctx, tern.ID(), rpc.UUID))
	tern = tern.WithPrefix(rpc.ReceiveNode(ctx, tern.Prefix(), receiveSpace))
	tern = tern.WithMarkers(rpc.ReceiveNode(ctx, tern.Markers(), rpc.ReceiveMarkers))
	tern = tern.WithCondition(rpc.ReceiveNode(ctx, tern.Condition(), receiveTree[tree.Expression]))
	tern = tern.Padding().WithTruePart(rpc.ReceiveNode(ctx, tern.Padding().TruePart(), receiveLeftPadded[tree.Expression](rpc.Tree)))
	tern = tern.Padding().WithFalsePart(rpc.ReceiveNode(ctx, tern.Padding().FalsePart(), receiveLeftPadded[tree.Expression](rpc.Tree)))
	tern = tern.WithType(rpc.ReceiveValue(ctx, tern.Type(), rpc.Object))
	return tern
}

func (r *Receiver) VisitThrow(th *tree.Throw, ctx *rpc.ReceiverContext) tree.J {
	th = th.WithID(rpc.ReceiveValue(ctx, th.ID(), rpc.UUID))
	th = th.WithPrefix(rpc.ReceiveNode(ctx, th.Prefix(), receiveSpace))
	th = th.WithMarkers(rpc.ReceiveNode(ctx, th.Markers(), rpc.ReceiveMarkers))
	th = th.WithException(rpc.ReceiveNode(ctx, th.Exception(), receiveTree[tree.Expression]))
	return th
}

func (r *Receiver) VisitTry(tr *tree.Try, ctx *rpc.ReceiverContext) tree.J {
	tr = tr.WithID(rpc.ReceiveValue(ctx, tr.ID(), rpc.UUID))
	tr = tr.WithPrefix(rpc.ReceiveNode(ctx, tr.Prefix(), receiveSpace))
	tr = tr.WithMarkers(rpc.ReceiveNode(ctx, tr.Markers(), rpc.ReceiveMarkers))
	tr = tr.Padding().WithResources(rpc.ReceiveNode(ctx, tr.Padding().Resources(), receiveContainer[*tree.TryResource](rpc.Tree)))
	tr = tr.WithBody(rpc.ReceiveNode(ctx, tr.Body(), receiveTree[*tree.Block]))
	tr = tr.WithCatches(rpc.ReceiveNodes(ctx, tr.Catches(), receiveTree[*tree.TryCatch]))
	tr = tr.Padding().WithFinally(rpc.ReceiveNode(ctx, tr.Padding().Finally(), receiveLeftPadded[*tree.Block](rpc.Tree)))
	return tr
}

func (r *Receiver) VisitTryCatch(tc *tree.TryCatch, ctx *rpc.ReceiverContext) tree.J {
	tc = tc.WithID(rpc.ReceiveValue(ctx, tc.ID(), rpc.UUID))
	tc = tc.WithPrefix(rpc.ReceiveNode(ctx, tc.Prefix(), receiveSpace))
	tc = tc.WithMarkers(rpc.ReceiveNode(ctx, tc.Markers(), rpc.ReceiveMarkers))
	tc = tc.WithParameter(rpc.ReceiveNode(ctx, tc.Parameter(), receiveTree[*tree.ControlParentheses]))
	tc = tc.WithBody(rpc.ReceiveNode(ctx, tc.Body(), receiveTree[*tree.Block]))
	return tc
}

func (r *Receiver) VisitTryResource(tr *tree.TryResource, ctx *rpc.ReceiverContext) tree.J {
	tr = tr.WithID(rpc.ReceiveValue(ctx, tr.ID(), rpc.UUID))
	tr = tr.WithPrefix(rpc.ReceiveNode(ctx, tr.Prefix(), receiveSpace))
	tr = tr.WithMarkers(rpc.ReceiveNode(ctx, tr.Markers(), rpc.ReceiveMarkers))
	tr = tr.WithVariableDeclarations(rpc.ReceiveNode(ctx, tr.VariableDeclarations(), receiveTree[tree.TypedTree]))
	tr = tr.WithTerminatedWithSemicolon(rpc.ReceiveValue(ctx, tr.TerminatedWithSemicolon(), rpc.Primitive))
	return tr
}

func (r *Receiver) VisitTypeCast(tc *tree.TypeCast, ctx *rpc.ReceiverContext) tree.J {
	tc = tc.WithID(rpc.ReceiveValue(ctx, tc.ID(), rpc.UUID))
	tc = tc.WithPrefix(rpc.ReceiveNode(ctx, tc.Prefix(), receiveSpace))
	tc = tc.WithMarkers(rpc.ReceiveNode(ctx, tc.Markers(), rpc.ReceiveMarkers))
	tc = tc.WithClazz(rpc.ReceiveNode(ctx, tc.Clazz(), receiveTree[*tree.ControlParentheses]))
	tc = tc.WithExpression(rpc.ReceiveNode(ctx, tc.Expression(), receiveTree[tree.Expression]))
	return tc
}

func (r *Receiver) VisitTypeParameter(tp *tree.TypeParameter, ctx *rpc.ReceiverContext) tree.J {
	tp = tp.WithID(rpc.ReceiveValue(ctx, tp.ID(), rpc.UUID))
	tp = tp.WithPrefix(rpc.ReceiveNode(ctx, tp.Prefix(), receiveSpace))
	tp = tp.WithMarkers(rpc.ReceiveNode(ctx, tp.Markers(), rpc.ReceiveMarkers))
	tp = tp.WithAnnotations(rpc.ReceiveNodes(ctx, tp.Annotations(), receiveTree[*tree.Annotation]))
	tp = tp.WithModifiers(rpc.ReceiveNodes(ctx, tp.Modifiers(), receiveTree[*tree.Modifier]))
	tp = tp.WithName(rpc.ReceiveNode(ctx, tp.Name(), receiveTree[tree.Expression]))
	tp = tp.Padding().WithBounds(rpc.ReceiveNode(ctx, tp.Padding().Bounds(), receiveContainer[tree.TypeTree](rpc.Tree)))
	return tp
}

func (r *Receiver) VisitTypeParameters(tp *tree.TypeParameters, ctx *rpc.ReceiverContext) tree.J {
	tp = tp.WithID(rpc.ReceiveValue(ctx, tp.ID(), rpc.UUID))
	tp = tp.WithPrefix(rpc.ReceiveNode(ctx, tp.Prefix(), receiveSpace))
	tp = tp.WithMarkers(rpc.ReceiveNode(ctx, tp.Markers(), rpc.ReceiveMarkers))
	tp = tp.WithAnnotations(rpc.ReceiveNodes(ctx, tp.Annotations(), receiveTree[*tree.Annotation]))
	tp = tp.Padding().WithTypeParameters(rpc.ReceiveNodes(ctx, tp.Padding().TypeParameters(), receiveRightPadded[*tree.TypeParameter](rpc.Tree)))
	return tp
}

func (r *Receiver) VisitUnary(u *tree.Unary, ctx *rpc.ReceiverContext) tree.J {
	u = u.WithID(rpc.ReceiveValue(ctx, u.ID(), rpc.UUID))
	u = u.WithPrefix(rpc.ReceiveNode(ctx, u.Prefix(), receiveSpace))
	u = u.WithMarkers(rpc.ReceiveNode(ctx, u.Markers(), rpc.ReceiveMarkers))
	u = u.Padding().WithOperator(rpc.ReceiveNode(ctx, u.Padding().Operator(), receiveLeftPadded[tree.UnaryOperator](rpc.Enum)))
	u = u.WithExpression(rpc.ReceiveNode(ctx, u.Expression(), receiveTree[tree.Expression]))
	u = u.WithType(rpc.ReceiveValue(ctx, u.Type(), rpc.Object))
	return u
}

func (r *Receiver) VisitUnknown(u *tree.Unknown, ctx *rpc.ReceiverContext) tree.J {
	u = u.WithID(rpc.ReceiveValue(ctx, u.ID(), rpc.UUID))
	u = u.WithPrefix(rpc.ReceiveNode(ctx, u.Prefix(), receiveSpace))
	u = u.WithMarkers(rpc.ReceiveNode(ctx, u.Markers(), rpc.ReceiveMarkers))
	u = u.WithSource(rpc.ReceiveNode(ctx, u.Source(), receiveTree[*tree.UnknownSource]))
	return u
}

func (r *Receiver) VisitUnknownSource(us *tree.UnknownSource, ctx *rpc.ReceiverContext) tree.J {
	us = us.WithID(rpc.ReceiveValue(ctx, us.ID(), rpc.UUID))
	us = us.WithPrefix(rpc.ReceiveNode(ctx, us.Prefix(), receiveSpace))
	us = us.WithMarkers(rpc.ReceiveNode(ctx, us.Markers(), rpc.ReceiveMarkers))
	us = us.WithText(rpc.ReceiveValue(ctx, us.Text(), rpc.Primitive))
	return us
}

func (r *Receiver) VisitVariableDeclarations(vd *tree.VariableDeclarations, ctx *rpc.ReceiverContext) tree.J {
	vd = vd.WithID(rpc.ReceiveValue(ctx, vd.ID(), rpc.UUID))
	vd = vd.WithPrefix(rpc.ReceiveNode(ctx, vd.Prefix(), receiveSpace))
	vd = vd.WithMarkers(rpc.ReceiveNode(ctx, vd.Markers(), rpc.ReceiveMarkers))
	vd = vd.WithLeadingAnnotations(rpc.ReceiveNodes(ctx, vd.LeadingAnnotations(), receiveTree[*tree.Annotation]))
	vd = vd.WithModifiers(rpc.ReceiveNodes(ctx, vd.Modifiers(), receiveTree[*tree.Modifier]))
	vd = vd.WithTypeExpression(rpc.ReceiveNode(ctx, vd.TypeExpression(), receiveTree[tree.TypeTree]))
	vd = vd.WithVarargs(rpc.ReceiveNode(ctx, vd.Varargs(), receiveSpace))
	vd = vd.WithDimensionsBeforeName(rpc.ReceiveNodes(ctx, vd.DimensionsBeforeName(), receiveLeftPadded[*tree.Space](rpc.Object)))
	vd = vd.Padding().WithVariables(rpc.ReceiveNodes(ctx, vd.Padding().Variables(), receiveRightPadded[*tree.NamedVariable](rpc.Tree)))
	return vd
}

func (r *Receiver) VisitWhileLoop(wl *tree.WhileLoop, ctx *rpc.ReceiverContext) tree.J {
	wl = wl.WithID(rpc.ReceiveValue(ctx, wl.ID(), rpc.UUID))
	wl = wl.WithPrefix(rpc.ReceiveNode(ctx, wl.Prefix(), receiveSpace))
	wl = wl.WithMarkers(rpc.ReceiveNode(ctx, wl.Markers(), rpc.ReceiveMarkers))
	wl = wl.WithCondition(rpc.ReceiveNode(ctx, wl.Condition(), receiveTree[*tree.ControlParentheses]))
	wl = wl.Padding().WithBody(rpc.ReceiveNode(ctx, wl.Padding().Body(), receiveRightPadded[tree.Statement](rpc.Tree)))
	return wl
}

func (r *Receiver) VisitWildcard(w *tree.Wildcard, ctx *rpc.ReceiverContext) tree.J {
	w = w.WithID(rpc.ReceiveValue(ctx, w.ID(), rpc.UUID))
	w = w.WithPrefix(rpc.ReceiveNode(ctx, w.Prefix(), receiveSpace))
	w = w.WithMarkers(rpc.ReceiveNode(ctx, w.Markers(), rpc.ReceiveMarkers))
	w = w.Padding().WithBound(rpc.ReceiveNode(ctx, w.Padding().Bound(), receiveLeftPadded[tree.WildcardBound](rpc.Enum)))
	w = w.WithBoundedType(rpc.ReceiveNode(ctx, w.BoundedType(), receiveTree[tree.NameTree]))
	return w
}

func (r *Receiver) VisitYield(y *tree.Yield, ctx *rpc.ReceiverContext) tree.J {
	y = y.WithID(rpc.ReceiveValue(ctx, y.ID(), rpc.UUID))
	y = y.WithPrefix(rpc.ReceiveNode(ctx, y.Prefix(), receiveSpace))
	y = y.WithMarkers(rpc.ReceiveNode(ctx, y.Markers(), rpc.ReceiveMarkers))
	y = y.WithImplicit(rpc.ReceiveValue(ctx, y.Implicit(), rpc.Primitive))
	y = y.WithValue(rpc.ReceiveNode(ctx, y.Value(), receiveTree[tree.Expression]))
	return y
}
