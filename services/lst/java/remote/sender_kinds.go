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

func (s *Sender) VisitAnnotatedType(at *tree.AnnotatedType, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, at, (*tree.AnnotatedType).ID, rpc.UUID)
	rpc.SendNode(ctx, at, (*tree.AnnotatedType).Prefix, sendSpace)
	rpc.SendNode(ctx, at, (*tree.AnnotatedType).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, at, (*tree.AnnotatedType).Annotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendNode(ctx, at, (*tree.AnnotatedType).TypeExpression, sendTree[tree.TypeTree])
	return at
}

func (s *Sender) VisitAnnotation(a *tree.Annotation, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, a, (*tree.Annotation).ID, rpc.UUID)
	rpc.SendNode(ctx, a, (*tree.Annotation).Prefix, sendSpace)
	rpc.SendNode(ctx, a, (*tree.Annotation).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, a, (*tree.Annotation).AnnotationType, sendTree[tree.NameTree])
	rpc.SendNode(ctx, a, func(a *tree.Annotation) *tree.Container[tree.Expression] { return a.Padding().Arguments() }, sendContainer[tree.Expression](rpc.Tree))
	return a
}

func (s *Sender) VisitArrayAccess(aa *tree.ArrayAccess, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, aa, (*tree.ArrayAccess).ID, rpc.UUID)
	rpc.SendNode(ctx, aa, (*tree.ArrayAccess).Prefix, sendSpace)
	rpc.SendNode(ctx, aa, (*tree.ArrayAccess).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, aa, (*tree.ArrayAccess).Indexed, sendTree[tree.Expression])
	rpc.SendNode(ctx, aa, (*tree.ArrayAccess).Dimension, sendTree[*tree.ArrayDimension])
	rpc.SendTypedValue(ctx, aa, (*tree.ArrayAccess).Type)
	return aa
}

func (s *Sender) VisitArrayDimension(ad *tree.ArrayDimension, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, ad, (*tree.ArrayDimension).ID, rpc.UUID)
	rpc.SendNode(ctx, ad, (*tree.ArrayDimension).Prefix, sendSpace)
	rpc.SendNode(ctx, ad, (*tree.ArrayDimension).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, ad, func(ad *tree.ArrayDimension) *tree.RightPadded[tree.Expression] { return ad.Padding().Index() }, sendRightPadded[tree.Expression](rpc.Tree))
	return ad
}

func (s *Sender) VisitArrayType(at *tree.ArrayType, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, at, (*tree.ArrayType).ID, rpc.UUID)
	rpc.SendNode(ctx, at, (*tree.ArrayType).Prefix, sendSpace)
	rpc.SendNode(ctx, at, (*tree.ArrayType).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, at, (*tree.ArrayType).ElementType, sendTree[tree.TypeTree])
	rpc.SendNodes(ctx, at, (*tree.ArrayType).Annotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendNode(ctx, at, func(at *tree.ArrayType) *tree.LeftPadded[*tree.Space] { return at.Padding().Dimension() }, sendLeftPadded[*tree.Space](rpc.Object))
	rpc.SendTypedValue(ctx, at, (*tree.ArrayType).Type)
	return at
}

func (s *Sender) VisitAssert(a *tree.Assert, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, a, (*tree.Assert).ID, rpc.UUID)
	rpc.SendNode(ctx, a, (*tree.Assert).Prefix, sendSpace)
	rpc.SendNode(ctx, a, (*tree.Assert).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, a, (*tree.Assert).Condition, sendTree[tree.Expression])
	rpc.SendNode(ctx, a, func(a *tree.Assert) *tree.LeftPadded[tree.Expression] { return a.Padding().Detail() }, sendLeftPadded[tree.Expression](rpc.Tree))
	return a
}

func (s *Sender) VisitAssignment(a *tree.Assignment, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, a, (*tree.Assignment).ID, rpc.UUID)
	rpc.SendNode(ctx, a, (*tree.Assignment).Prefix, sendSpace)
	rpc.SendNode(ctx, a, (*tree.Assignment).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, a, (*tree.Assignment).Variable, sendTree[tree.Expression])
	rpc.SendNode(ctx, a, func(a *tree.Assignment) *tree.LeftPadded[tree.Expression] { return a.Padding().Assignment() }, sendLeftPadded[tree.Expression](rpc.Tree))
	rpc.SendTypedValue(ctx, a, (*tree.Assignment).Type)
	return a
}

func (s *Sender) VisitAssignmentOperation(ao *tree.AssignmentOperation, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, ao, (*tree.AssignmentOperation).ID, rpc.UUID)
	rpc.SendNode(ctx, ao, (*tree.AssignmentOperation).Prefix, sendSpace)
	rpc.SendNode(ctx, ao, (*tree.AssignmentOperation).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, ao, (*tree.AssignmentOperation).Variable, sendTree[tree.Expression])
	rpc.SendNode(ctx, ao, func(ao *tree.AssignmentOperation) *tree.LeftPadded[tree.AssignmentOperator] { return ao.Padding().Operator() }, sendLeftPadded[tree.AssignmentOperator](rpc.Enum))
	rpc.SendNode(ctx, ao, (*tree.AssignmentOperation).Assignment, sendTree[tree.Expression])
	rpc.SendTypedValue(ctx, ao, (*tree.AssignmentOperation).Type)
	return ao
}

func (s *Sender) VisitBinary(b *tree.Binary, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, b, (*tree.Binary).ID, rpc.UUID)
	rpc.SendNode(ctx, b, (*tree.Binary).Prefix, sendSpace)
	rpc.SendNode(ctx, b, (*tree.Binary).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, b, (*tree.Binary).Left, sendTree[tree.Expression])
	rpc.SendNode(ctx, b, func(b *tree.Binary) *tree.LeftPadded[tree.BinaryOperator] { return b.Padding().Operator() }, sendLeftPadded[tree.BinaryOperator](rpc.Enum))
	rpc.SendNode(ctx, b, (*tree.Binary).Right, sendTree[tree.Expression])
	rpc.SendTypedValue(ctx, b, (*tree.Binary).Type)
	return b
}

func (s *Sender) VisitBlock(b *tree.Block, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, b, (*tree.Block).ID, rpc.UUID)
	rpc.SendNode(ctx, b, (*tree.Block).Prefix, sendSpace)
	rpc.SendNode(ctx, b, (*tree.Block).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, b, func(b *tree.Block) *tree.RightPadded[bool] { return b.Padding().Static() }, sendRightPadded[bool](rpc.Primitive))
	rpc.SendNodes(ctx, b, func(b *tree.Block) []*tree.RightPadded[tree.Statement] { return b.Padding().Statements() }, sendRightPadded[tree.Statement](rpc.Tree), rightPaddedID[tree.Statement])
	rpc.SendNode(ctx, b, (*tree.Block).End, sendSpace)
	return b
}

func (s *Sender) VisitBreak(brk *tree.Break, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, brk, (*tree.Break).ID, rpc.UUID)
	rpc.SendNode(ctx, brk, (*tree.Break).Prefix, sendSpace)
	rpc.SendNode(ctx, brk, (*tree.Break).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, brk, (*tree.Break).Label, sendTree[*tree.Identifier])
	return brk
}

func (s *Sender) VisitCase(cs *tree.Case, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, cs, (*tree.Case).ID, rpc.UUID)
	rpc.SendNode(ctx, cs, (*tree.Case).Prefix, sendSpace)
	rpc.SendNode(ctx, cs, (*tree.Case).Markers, rpc.SendMarkers)
	rpc.SendValue(ctx, cs, (*tree.Case).CaseType, rpc.Enum)
	rpc.SendNode(ctx, cs, func(cs *tree.Case) *tree.Container[tree.J] { return cs.Padding().CaseLabels() }, sendContainer[tree.J](rpc.Tree))
	rpc.SendNode(ctx, cs, func(cs *tree.Case) *tree.Container[tree.Statement] { return cs.Padding().Statements() }, sendContainer[tree.Statement](rpc.Tree))
	rpc.SendNode(ctx, cs, func(cs *tree.Case) *tree.RightPadded[tree.J] { return cs.Padding().Body() }, sendRightPadded[tree.J](rpc.Tree))
	rpc.SendNode(ctx, cs, (*tree.Case).Guard, sendTree[tree.Expression])
	return cs
}

func (s *Sender) VisitClassDeclaration(cd *tree.ClassDeclaration, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, cd, (*tree.ClassDeclaration).ID, rpc.UUID)
	rpc.SendNode(ctx, cd, (*tree.ClassDeclaration).Prefix, sendSpace)
	rpc.SendNode(ctx, cd, (*tree.ClassDeclaration).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, cd, (*tree.ClassDeclaration).LeadingAnnotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendNodes(ctx, cd, (*tree.ClassDeclaration).Modifiers, sendTree[*tree.Modifier], treeID[*tree.Modifier])
	rpc.SendNode(ctx, cd, (*tree.ClassDeclaration).Kind, sendTree[*tree.ClassDeclarationKind])
	rpc.SendNode(ctx, cd, (*tree.ClassDeclaration).Name, sendTree[*tree.Identifier])
	rpc.SendNode(ctx, cd, func(cd *tree.ClassDeclaration) *tree.Container[*tree.TypeParameter] { return cd.Padding().TypeParameters() }, sendContainer[*tree.TypeParameter](rpc.Tree))
	rpc.SendNode(ctx, cd, func(cd *tree.ClassDeclaration) *tree.Container[tree.Statement] { return cd.Padding().PrimaryConstructor() }, sendContainer[tree.Statement](rpc.Tree))
	rpc.SendNode(ctx, cd, func(cd *tree.ClassDeclaration) *tree.LeftPadded[tree.TypeTree] { return cd.Padding().Extends() }, sendLeftPadded[tree.TypeTree](rpc.Tree))
	rpc.SendNode(ctx, cd, func(cd *tree.ClassDeclaration) *tree.Container[tree.TypeTree] { return cd.Padding().Implements() }, sendContainer[tree.TypeTree](rpc.Tree))
	rpc.SendNode(ctx, cd, func(cd *tree.ClassDeclaration) *tree.Container[tree.TypeTree] { return cd.Padding().Permits() }, sendContainer[tree.TypeTree](rpc.Tree))
	rpc.SendNode(ctx, cd, (*tree.ClassDeclaration).Body, sendTree[*tree.Block])
	rpc.SendTypedValue(ctx, cd, (*tree.ClassDeclaration).Type)
	return cd
}

func (s *Sender) VisitClassDeclarationKind(cdk *tree.ClassDeclarationKind, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, cdk, (*tree.ClassDeclarationKind).ID, rpc.UUID)
	rpc.SendNode(ctx, cdk, (*tree.ClassDeclarationKind).Prefix, sendSpace)
	rpc.SendNode(ctx, cdk, (*tree.ClassDeclarationKind).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, cdk, (*tree.ClassDeclarationKind).Annotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendValue(ctx, cdk, (*tree.ClassDeclarationKind).ClassKind, rpc.Enum)
	return cdk
}

func (s *Sender) VisitCompilationUnit(cu *tree.CompilationUnit, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, cu, (*tree.CompilationUnit).ID, rpc.UUID)
	rpc.SendNode(ctx, cu, (*tree.CompilationUnit).Prefix, sendSpace)
	rpc.SendNode(ctx, cu, (*tree.CompilationUnit).Markers, rpc.SendMarkers)
	rpc.SendValue(ctx, cu, (*tree.CompilationUnit).SourcePath, rpc.Primitive)
	rpc.SendValue(ctx, cu, (*tree.CompilationUnit).CharsetName, rpc.Primitive)
	rpc.SendValue(ctx, cu, (*tree.CompilationUnit).CharsetBomMarked, rpc.Primitive)
	rpc.SendValue(ctx, cu, (*tree.CompilationUnit).Checksum, rpc.Object)
	rpc.SendValue(ctx, cu, (*tree.CompilationUnit).FileAttributes, rpc.Object)
	rpc.SendNode(ctx, cu, func(cu *tree.CompilationUnit) *tree.RightPadded[*tree.Package] { return cu.Padding().PackageDeclaration() }, sendRightPadded[*tree.Package](rpc.Tree))
	rpc.SendNodes(ctx, cu, func(cu *tree.CompilationUnit) []*tree.RightPadded[*tree.Import] { return cu.Padding().Imports() }, sendRightPadded[*tree.Import](rpc.Tree), rightPaddedID[*tree.Import])
	rpc.SendNodes(ctx, cu, (*tree.CompilationUnit).Classes, sendTree[*tree.ClassDeclaration], treeID[*tree.ClassDeclaration])
	rpc.SendNode(ctx, cu, (*tree.CompilationUnit).Eof, sendSpace)
	return cu
}

func (s *Sender) VisitContinue(cont *tree.Continue, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, cont, (*tree.Continue).ID, rpc.UUID)
	rpc.SendNode(ctx, cont, (*tree.Continue).Prefix, sendSpace)
	rpc.SendNode(ctx, cont, (*tree.Continue).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, cont, (*tree.Continue).Label, sendTree[*tree.Identifier])
	return cont
}

func (s *Sender) VisitControlParentheses(cp *tree.ControlParentheses, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, cp, (*tree.ControlParentheses).ID, rpc.UUID)
	rpc.SendNode(ctx, cp, (*tree.ControlParentheses).Prefix, sendSpace)
	rpc.SendNode(ctx, cp, (*tree.ControlParentheses).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, cp, func(cp *tree.ControlParentheses) *tree.RightPadded[tree.J] { return cp.Padding().Tree() }, sendRightPadded[tree.J](rpc.Tree))
	return cp
}

func (s *Sender) VisitDeconstructionPattern(dp *tree.DeconstructionPattern, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, dp, (*tree.DeconstructionPattern).ID, rpc.UUID)
	rpc.SendNode(ctx, dp, (*tree.DeconstructionPattern).Prefix, sendSpace)
	rpc.SendNode(ctx, dp, (*tree.DeconstructionPattern).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, dp, (*tree.DeconstructionPattern).Deconstructor, sendTree[tree.Expression])
	rpc.SendNode(ctx, dp, func(dp *tree.DeconstructionPattern) *tree.Container[tree.J] { return dp.Padding().Nested() }, sendContainer[tree.J](rpc.Tree))
	rpc.SendTypedValue(ctx, dp, (*tree.DeconstructionPattern).Type)
	return dp
}

func (s *Sender) VisitDoWhileLoop(dwl *tree.DoWhileLoop, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, dwl, (*tree.DoWhileLoop).ID, rpc.UUID)
	rpc.SendNode(ctx, dwl, (*tree.DoWhileLoop).Prefix, sendSpace)
	rpc.SendNode(ctx, dwl, (*tree.DoWhileLoop).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, dwl, func(dwl *tree.DoWhileLoop) *tree.RightPadded[tree.Statement] { return dwl.Padding().Body() }, sendRightPadded[tree.Statement](rpc.Tree))
	rpc.SendNode(ctx, dwl, func(dwl *tree.DoWhileLoop) *tree.LeftPadded[*tree.ControlParentheses] { return dwl.Padding().WhileCondition() }, sendLeftPadded[*tree.ControlParentheses](rpc.Tree))
	return dwl
}

func (s *Sender) VisitEmpty(e *tree.Empty, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, e, (*tree.Empty).ID, rpc.UUID)
	rpc.SendNode(ctx, e, (*tree.Empty).Prefix, sendSpace)
	rpc.SendNode(ctx, e, (*tree.Empty).Markers, rpc.SendMarkers)
	return e
}

func (s *Sender) VisitEnumValue(ev *tree.EnumValue, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, ev, (*tree.EnumValue).ID, rpc.UUID)
	rpc.SendNode(ctx, ev, (*tree.EnumValue).Prefix, sendSpace)
	rpc.SendNode(ctx, ev, (*tree.EnumValue).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, ev, (*tree.EnumValue).Annotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendNode(ctx, ev, (*tree.EnumValue).Name, sendTree[*tree.Identifier])
	rpc.SendNode(ctx, ev, (*tree.EnumValue).Initializer, sendTree[*tree.NewClass])
	return ev
}

func (s *Sender) VisitEnumValueSet(evs *tree.EnumValueSet, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, evs, (*tree.EnumValueSet).ID, rpc.UUID)
	rpc.SendNode(ctx, evs, (*tree.EnumValueSet).Prefix, sendSpace)
	rpc.SendNode(ctx, evs, (*tree.EnumValueSet).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, evs, func(evs *tree.EnumValueSet) []*tree.RightPadded[*tree.EnumValue] { return evs.Padding().Enums() }, sendRightPadded[*tree.EnumValue](rpc.Tree), rightPaddedID[*tree.EnumValue])
	rpc.SendValue(ctx, evs, (*tree.EnumValueSet).TerminatedWithSemicolon, rpc.Primitive)
	return evs
}

func (s *Sender) VisitErroneous(e *tree.Erroneous, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, e, (*tree.Erroneous).ID, rpc.UUID)
	rpc.SendNode(ctx, e, (*tree.Erroneous).Prefix, sendSpace)
	rpc.SendNode(ctx, e, (*tree.Erroneous).Markers, rpc.SendMarkers)
	rpc.SendValue(ctx, e, (*tree.Erroneous).Text, rpc.Primitive)
	return e
}

func (s *Sender) VisitFieldAccess(fa *tree.FieldAccess, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, fa, (*tree.FieldAccess).ID, rpc.UUID)
	rpc.SendNode(ctx, fa, (*tree.FieldAccess).Prefix, sendSpace)
	rpc.SendNode(ctx, fa, (*tree.FieldAccess).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, fa, (*tree.FieldAccess).Target, sendTree[tree.Expression])
	rpc.SendNode(ctx, fa, func(fa *tree.FieldAccess) *tree.LeftPadded[*tree.Identifier] { return fa.Padding().Name() }, sendLeftPadded[*tree.Identifier](rpc.Tree))
	rpc.SendTypedValue(ctx, fa, (*tree.FieldAccess).Type)
	return fa
}

func (s *Sender) VisitForEachLoop(fel *tree.ForEachLoop, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, fel, (*tree.ForEachLoop).ID, rpc.UUID)
	rpc.SendNode(ctx, fel, (*tree.ForEachLoop).Prefix, sendSpace)
	rpc.SendNode(ctx, fel, (*tree.ForEachLoop).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, fel, (*tree.ForEachLoop).Control, sendTree[*tree.ForEachLoopControl])
	rpc.SendNode(ctx, fel, func(fel *tree.ForEachLoop) *tree.RightPadded[tree.Statement] { return fel.Padding().Body() }, sendRightPadded[tree.Statement](rpc.Tree))
	return fel
}

func (s *Sender) VisitForEachLoopControl(felc *tree.ForEachLoopControl, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, felc, (*tree.ForEachLoopControl).ID, rpc.UUID)
	rpc.SendNode(ctx, felc, (*tree.ForEachLoopControl).Prefix, sendSpace)
	rpc.SendNode(ctx, felc, (*tree.ForEachLoopControl).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, felc, func(felc *tree.ForEachLoopControl) *tree.RightPadded[*tree.VariableDeclarations] { return felc.Padding().Variable() }, sendRightPadded[*tree.VariableDeclarations](rpc.Tree))
	rpc.SendNode(ctx, felc, func(felc *tree.ForEachLoopControl) *tree.RightPadded[tree.Expression] { return felc.Padding().Iterable() }, sendRightPadded[tree.Expression](rpc.Tree))
	return felc
}

func (s *Sender) VisitForLoop(fl *tree.ForLoop, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, fl, (*tree.ForLoop).ID, rpc.UUID)
	rpc.SendNode(ctx, fl, (*tree.ForLoop).Prefix, sendSpace)
	rpc.SendNode(ctx, fl, (*tree.ForLoop).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, fl, (*tree.ForLoop).Control, sendTree[*tree.ForLoopControl])
	rpc.SendNode(ctx, fl, func(fl *tree.ForLoop) *tree.RightPadded[tree.Statement] { return fl.Padding().Body() }, sendRightPadded[tree.Statement](rpc.Tree))
	return fl
}

func (s *Sender) VisitForLoopControl(flc *tree.ForLoopControl, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, flc, (*tree.ForLoopControl).ID, rpc.UUID)
	rpc.SendNode(ctx, flc, (*tree.ForLoopControl).Prefix, sendSpace)
	rpc.SendNode(ctx, flc, (*tree.ForLoopControl).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, flc, func(flc *tree.ForLoopControl) []*tree.RightPadded[tree.Statement] { return flc.Padding().Init() }, sendRightPadded[tree.Statement](rpc.Tree), rightPaddedID[tree.Statement])
	rpc.SendNode(ctx, flc, func(flc *tree.ForLoopControl) *tree.RightPadded[tree.Expression] { return flc.Padding().Condition() }, sendRightPadded[tree.Expression](rpc.Tree))
	rpc.SendNodes(ctx, flc, func(flc *tree.ForLoopControl) []*tree.RightPadded[tree.Statement] { return flc.Padding().Update() }, sendRightPadded[tree.Statement](rpc.Tree), rightPaddedID[tree.Statement])
	return flc
}

func (s *Sender) VisitIdentifier(i *tree.Identifier, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, i, (*tree.Identifier).ID, rpc.UUID)
	rpc.SendNode(ctx, i, (*tree.Identifier).Prefix, sendSpace)
	rpc.SendNode(ctx, i, (*tree.Identifier).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, i, (*tree.Identifier).Annotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendValue(ctx, i, (*tree.Identifier).SimpleName, rpc.Primitive)
	rpc.SendTypedValue(ctx, i, (*tree.Identifier).Type)
	rpc.SendTypedValue(ctx, i, (*tree.Identifier).FieldType)
	return i
}

func (s *Sender) VisitIf(iff *tree.If, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, iff, (*tree.If).ID, rpc.UUID)
	rpc.SendNode(ctx, iff, (*tree.If).Prefix, sendSpace)
	rpc.SendNode(ctx, iff, (*tree.If).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, iff, (*tree.If).IfCondition, sendTree[*tree.ControlParentheses])
	rpc.SendNode(ctx, iff, func(iff *tree.If) *tree.RightPadded[tree.Statement] { return iff.Padding().ThenPart() }, sendRightPadded[tree.Statement](rpc.Tree))
	rpc.SendNode(ctx, iff, (*tree.If).ElsePart, sendTree[*tree.IfElse])
	return iff
}

func (s *Sender) VisitIfElse(ie *tree.IfElse, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, ie, (*tree.IfElse).ID, rpc.UUID)
	rpc.SendNode(ctx, ie, (*tree.IfElse).Prefix, sendSpace)
	rpc.SendNode(ctx, ie, (*tree.IfElse).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, ie, func(ie *tree.IfElse) *tree.RightPadded[tree.Statement] { return ie.Padding().Body() }, sendRightPadded[tree.Statement](rpc.Tree))
	return ie
}

func (s *Sender) VisitImport(imp *tree.Import, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, imp, (*tree.Import).ID, rpc.UUID)
	rpc.SendNode(ctx, imp, (*tree.Import).Prefix, sendSpace)
	rpc.SendNode(ctx, imp, (*tree.Import).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, imp, func(imp *tree.Import) *tree.LeftPadded[bool] { return imp.Padding().Static() }, sendLeftPadded[bool](rpc.Primitive))
	rpc.SendNode(ctx, imp, (*tree.Import).Qualid, sendTree[*tree.FieldAccess])
	rpc.SendNode(ctx, imp, func(imp *tree.Import) *tree.LeftPadded[*tree.Identifier] { return imp.Padding().Alias() }, sendLeftPadded[*tree.Identifier](rpc.Tree))
	return imp
}

func (s *Sender) VisitInstanceOf(io *tree.InstanceOf, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, io, (*tree.InstanceOf).ID, rpc.UUID)
	rpc.SendNode(ctx, io, (*tree.InstanceOf).Prefix, sendSpace)
	rpc.SendNode(ctx, io, (*tree.InstanceOf).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, io, func(io *tree.InstanceOf) *tree.RightPadded[tree.Expression] { return io.Padding().Expression() }, sendRightPadded[tree.Expression](rpc.Tree))
	rpc.SendNode(ctx, io, (*tree.InstanceOf).Clazz, sendTree[tree.J])
	rpc.SendNode(ctx, io, (*tree.InstanceOf).Pattern, sendTree[tree.J])
	rpc.SendTypedValue(ctx, io, (*tree.InstanceOf).Type)
	rpc.SendNode(ctx, io, (*tree.InstanceOf).Modifier, sendTree[*tree.Modifier])
	return io
}

func (s *Sender) VisitIntersectionType(it *tree.IntersectionType, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, it, (*tree.IntersectionType).ID, rpc.UUID)
	rpc.SendNode(ctx, it, (*tree.IntersectionType).Prefix, sendSpace)
	rpc.SendNode(ctx, it, (*tree.IntersectionType).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, it, func(it *tree.IntersectionType) *tree.Container[tree.TypeTree] { return it.Padding().Bounds() }, sendContainer[tree.TypeTree](rpc.Tree))
	return it
}

func (s *Sender) VisitLabel(l *tree.Label, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, l, (*tree.Label).ID, rpc.UUID)
	rpc.SendNode(ctx, l, (*tree.Label).Prefix, sendSpace)
	rpc.SendNode(ctx, l, (*tree.Label).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, l, func(l *tree.Label) *tree.RightPadded[*tree.Identifier] { return l.Padding().Label() }, sendRightPadded[*tree.Identifier](rpc.Tree))
	rpc.SendNode(ctx, l, (*tree.Label).Statement, sendTree[tree.Statement])
	return l
}

func (s *Sender) VisitLambda(l *tree.Lambda, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, l, (*tree.Lambda).ID, rpc.UUID)
	rpc.SendNode(ctx, l, (*tree.Lambda).Prefix, sendSpace)
	rpc.SendNode(ctx, l, (*tree.Lambda).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, l, (*tree.Lambda).Parameters, sendTree[*tree.LambdaParameters])
	rpc.SendNode(ctx, l, (*tree.Lambda).Arrow, sendSpace)
	rpc.SendNode(ctx, l, (*tree.Lambda).Body, sendTree[tree.J])
	rpc.SendTypedValue(ctx, l, (*tree.Lambda).Type)
	return l
}

func (s *Sender) VisitLambdaParameters(lp *tree.LambdaParameters, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, lp, (*tree.LambdaParameters).ID, rpc.UUID)
	rpc.SendNode(ctx, lp, (*tree.LambdaParameters).Prefix, sendSpace)
	rpc.SendNode(ctx, lp, (*tree.LambdaParameters).Markers, rpc.SendMarkers)
	rpc.SendValue(ctx, lp, (*tree.LambdaParameters).Parenthesized, rpc.Primitive)
	rpc.SendNodes(ctx, lp, func(lp *tree.LambdaParameters) []*tree.RightPadded[tree.J] { return lp.Padding().Parameters() }, sendRightPadded[tree.J](rpc.Tree), rightPaddedID[tree.J])
	return lp
}

func (s *Sender) VisitLiteral(l *tree.Literal, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, l, (*tree.Literal).ID, rpc.UUID)
	rpc.SendNode(ctx, l, (*tree.Literal).Prefix, sendSpace)
	rpc.SendNode(ctx, l, (*tree.Literal).Markers, rpc.SendMarkers)
	rpc.SendValue(ctx, l, (*tree.Literal).Value, rpc.Primitive)
	rpc.SendValue(ctx, l, (*tree.Literal).ValueSource, rpc.Primitive)
	rpc.SendValues(ctx, l, (*tree.Literal).UnicodeEscapes, identity[*tree.UnicodeEscape], rpc.Object)
	rpc.SendTypedValue(ctx, l, (*tree.Literal).Type)
	return l
}

func (s *Sender) VisitMemberReference(mr *tree.MemberReference, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, mr, (*tree.MemberReference).ID, rpc.UUID)
	rpc.SendNode(ctx, mr, (*tree.MemberReference).Prefix, sendSpace)
	rpc.SendNode(ctx, mr, (*tree.MemberReference).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, mr, func(mr *tree.MemberReference) *tree.RightPadded[tree.Expression] { return mr.Padding().Containing() }, sendRightPadded[tree.Expression](rpc.Tree))
	rpc.SendNode(ctx, mr, func(mr *tree.MemberReference) *tree.Container[tree.Expression] { return mr.Padding().TypeParameters() }, sendContainer[tree.Expression](rpc.Tree))
	rpc.SendNode(ctx, mr, func(mr *tree.MemberReference) *tree.LeftPadded[*tree.Identifier] { return mr.Padding().Reference() }, sendLeftPadded[*tree.Identifier](rpc.Tree))
	rpc.SendTypedValue(ctx, mr, (*tree.MemberReference).Type)
	rpc.SendTypedValue(ctx, mr, (*tree.MemberReference).MethodType)
	rpc.SendTypedValue(ctx, mr, (*tree.MemberReference).VariableType)
	return mr
}

func (s *Sender) VisitMethodDeclaration(md *tree.MethodDeclaration, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, md, (*tree.MethodDeclaration).ID, rpc.UUID)
	rpc.SendNode(ctx, md, (*tree.MethodDeclaration).Prefix, sendSpace)
	rpc.SendNode(ctx, md, (*tree.MethodDeclaration).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, md, (*tree.MethodDeclaration).LeadingAnnotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendNodes(ctx, md, (*tree.MethodDeclaration).Modifiers, sendTree[*tree.Modifier], treeID[*tree.Modifier])
	rpc.SendNode(ctx, md, (*tree.MethodDeclaration).TypeParameters, sendTree[*tree.TypeParameters])
	rpc.SendNode(ctx, md, (*tree.MethodDeclaration).ReturnTypeExpression, sendTree[tree.TypeTree])
	rpc.SendNode(ctx, md, (*tree.MethodDeclaration).Name, sendTree[*tree.Identifier])
	rpc.SendNode(ctx, md, func(md *tree.MethodDeclaration) *tree.Container[tree.Statement] { return md.Padding().Parameters() }, sendContainer[tree.Statement](rpc.Tree))
	rpc.SendNode(ctx, md, func(md *tree.MethodDeclaration) *tree.Container[tree.NameTree] { return md.Padding().Throws() }, sendContainer[tree.NameTree](rpc.Tree))
	rpc.SendNode(ctx, md, (*tree.MethodDeclaration).Body, sendTree[*tree.Block])
	rpc.SendNode(ctx, md, func(md *tree.MethodDeclaration) *tree.LeftPadded[tree.Expression] { return md.Padding().DefaultValue() }, sendLeftPadded[tree.Expression](rpc.Tree))
	rpc.SendTypedValue(ctx, md, (*tree.MethodDeclaration).MethodType)
	return md
}

func (s *Sender) VisitMethodInvocation(mi *tree.MethodInvocation, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, mi, (*tree.MethodInvocation).ID, rpc.UUID)
	rpc.SendNode(ctx, mi, (*tree.MethodInvocation).Prefix, sendSpace)
	rpc.SendNode(ctx, mi, (*tree.MethodInvocation).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, mi, func(mi *tree.MethodInvocation) *tree.RightPadded[tree.Expression] { return mi.Padding().Select() }, sendRightPadded[tree.Expression](rpc.Tree))
	rpc.SendNode(ctx, mi, func(mi *tree.MethodInvocation) *tree.Container[tree.Expression] { return mi.Padding().TypeParameters() }, sendContainer[tree.Expression](rpc.Tree))
	rpc.SendNode(ctx, mi, (*tree.MethodInvocation).Name, sendTree[*tree.Identifier])
	rpc.SendNode(ctx, mi, func(mi *tree.MethodInvocation) *tree.Container[tree.Expression] { return mi.Padding().Arguments() }, sendContainer[tree.Expression](rpc.Tree))
	rpc.SendTypedValue(ctx, mi, (*tree.MethodInvocation).MethodType)
	return mi
}

func (s *Sender) VisitModifier(m *tree.Modifier, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, m, (*tree.Modifier).ID, rpc.UUID)
	rpc.SendNode(ctx, m, (*tree.Modifier).Prefix, sendSpace)
	rpc.SendNode(ctx, m, (*tree.Modifier).Markers, rpc.SendMarkers)
	rpc.SendValue(ctx, m, (*tree.Modifier).Keyword, rpc.Primitive)
	rpc.SendValue(ctx, m, (*tree.Modifier).ModifierType, rpc.Enum)
	rpc.SendNodes(ctx, m, (*tree.Modifier).Annotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	return m
}

func (s *Sender) VisitMultiCatch(mc *tree.MultiCatch, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, mc, (*tree.MultiCatch).ID, rpc.UUID)
	rpc.SendNode(ctx, mc, (*tree.MultiCatch).Prefix, sendSpace)
	rpc.SendNode(ctx, mc, (*tree.MultiCatch).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, mc, func(mc *tree.MultiCatch) []*tree.RightPadded[tree.NameTree] { return mc.Padding().Alternatives() }, sendRightPadded[tree.NameTree](rpc.Tree), rightPaddedID[tree.NameTree])
	return mc
}

func (s *Sender) VisitNamedVariable(nv *tree.NamedVariable, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, nv, (*tree.NamedVariable).ID, rpc.UUID)
	rpc.SendNode(ctx, nv, (*tree.NamedVariable).Prefix, sendSpace)
	rpc.SendNode(ctx, nv, (*tree.NamedVariable).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, nv, (*tree.NamedVariable).Name, sendTree[*tree.Identifier])
	rpc.SendNodes(ctx, nv, (*tree.NamedVariable).DimensionsAfterName, sendLeftPadded[*tree.Space](rpc.Object), identity[*tree.LeftPadded[*tree.Space]])
	rpc.SendNode(ctx, nv, func(nv *tree.NamedVariable) *tree.LeftPadded[tree.Expression] { return nv.Padding().Initializer() }, sendLeftPadded[tree.Expression](rpc.Tree))
	rpc.SendTypedValue(ctx, nv, (*tree.NamedVariable).VariableType)
	return nv
}

func (s *Sender) VisitNewArray(na *tree.NewArray, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, na, (*tree.NewArray).ID, rpc.UUID)
	rpc.SendNode(ctx, na, (*tree.NewArray).Prefix, sendSpace)
	rpc.SendNode(ctx, na, (*tree.NewArray).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, na, (*tree.NewArray).TypeExpression, sendTree[tree.TypeTree])
	rpc.SendNodes(ctx, na, (*tree.NewArray).Dimensions, sendTree[*tree.ArrayDimension], treeID[*tree.ArrayDimension])
	rpc.SendNode(ctx, na, func(na *tree.NewArray) *tree.Container[tree.Expression] { return na.Padding().Initializer() }, sendContainer[tree.Expression](rpc.Tree))
	rpc.SendTypedValue(ctx, na, (*tree.NewArray).Type)
	return na
}

func (s *Sender) VisitNewClass(nc *tree.NewClass, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, nc, (*tree.NewClass).ID, rpc.UUID)
	rpc.SendNode(ctx, nc, (*tree.NewClass).Prefix, sendSpace)
	rpc.SendNode(ctx, nc, (*tree.NewClass).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, nc, func(nc *tree.NewClass) *tree.RightPadded[tree.Expression] { return nc.Padding().Enclosing() }, sendRightPadded[tree.Expression](rpc.Tree))
	rpc.SendNode(ctx, nc, (*tree.NewClass).New, sendSpace)
	rpc.SendNode(ctx, nc, (*tree.NewClass).Clazz, sendTree[tree.TypeTree])
	rpc.SendNode(ctx, nc, func(nc *tree.NewClass) *tree.Container[tree.Expression] { return nc.Padding().Arguments() }, sendContainer[tree.Expression](rpc.Tree))
	rpc.SendNode(ctx, nc, (*tree.NewClass).Body, sendTree[*tree.Block])
	rpc.SendTypedValue(ctx, nc, (*tree.NewClass).ConstructorType)
	return nc
}

func (s *Sender) VisitNullableType(nt *tree.NullableType, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, nt, (*tree.NullableType).ID, rpc.UUID)
	rpc.SendNode(ctx, nt, (*tree.NullableType).Prefix, sendSpace)
	rpc.SendNode(ctx, nt, (*tree.NullableType).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, nt, (*tree.NullableType).Annotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendNode(ctx, nt, func(nt *tree.NullableType) *tree.RightPadded[tree.TypeTree] { return nt.Padding().TypeTree() }, sendRightPadded[tree.TypeTree](rpc.Tree))
	return nt
}

func (s *Sender) VisitPackage(pkg *tree.Package, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, pkg, (*tree.Package).ID, rpc.UUID)
	rpc.SendNode(ctx, pkg, (*tree.Package).Prefix, sendSpace)
	rpc.SendNode(ctx, pkg, (*tree.Package).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, pkg, (*tree.Package).Expression, sendTree[tree.Expression])
	rpc.SendNodes(ctx, pkg, (*tree.Package).Annotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	return pkg
}

func (s *Sender) VisitParameterizedType(pt *tree.ParameterizedType, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, pt, (*tree.ParameterizedType).ID, rpc.UUID)
	rpc.SendNode(ctx, pt, (*tree.ParameterizedType).Prefix, sendSpace)
	rpc.SendNode(ctx, pt, (*tree.ParameterizedType).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, pt, (*tree.ParameterizedType).Clazz, sendTree[tree.NameTree])
	rpc.SendNode(ctx, pt, func(pt *tree.ParameterizedType) *tree.Container[tree.Expression] { return pt.Padding().TypeParameters() }, sendContainer[tree.Expression](rpc.Tree))
	rpc.SendTypedValue(ctx, pt, (*tree.ParameterizedType).Type)
	return pt
}

func (s *Sender) VisitParentheses(pa *tree.Parentheses, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, pa, (*tree.Parentheses).ID, rpc.UUID)
	rpc.SendNode(ctx, pa, (*tree.Parentheses).Prefix, sendSpace)
	rpc.SendNode(ctx, pa, (*tree.Parentheses).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, pa, func(pa *tree.Parentheses) *tree.RightPadded[tree.J] { return pa.Padding().Tree() }, sendRightPadded[tree.J](rpc.Tree))
	return pa
}

func (s *Sender) VisitParenthesizedTypeTree(ptt *tree.ParenthesizedTypeTree, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, ptt, (*tree.ParenthesizedTypeTree).ID, rpc.UUID)
	rpc.SendNode(ctx, ptt, (*tree.ParenthesizedTypeTree).Prefix, sendSpace)
	rpc.SendNode(ctx, ptt, (*tree.ParenthesizedTypeTree).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, ptt, (*tree.ParenthesizedTypeTree).Annotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendNode(ctx, ptt, (*tree.ParenthesizedTypeTree).ParenthesizedType, sendTree[*tree.Parentheses])
	return ptt
}

func (s *Sender) VisitPrimitive(prim *tree.Primitive, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, prim, (*tree.Primitive).ID, rpc.UUID)
	rpc.SendNode(ctx, prim, (*tree.Primitive).Prefix, sendSpace)
	rpc.SendNode(ctx, prim, (*tree.Primitive).Markers, rpc.SendMarkers)
	rpc.SendTypedValue(ctx, prim, (*tree.Primitive).Type)
	return prim
}

func (s *Sender) VisitReturn(ret *tree.Return, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, ret, (*tree.Return).ID, rpc.UUID)
	rpc.SendNode(ctx, ret, (*tree.Return).Prefix, sendSpace)
	rpc.SendNode(ctx, ret, (*tree.Return).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, ret, (*tree.Return).Expression, sendTree[tree.Expression])
	return ret
}

func (s *Sender) VisitSwitch(sw *tree.Switch, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, sw, (*tree.Switch).ID, rpc.UUID)
	rpc.SendNode(ctx, sw, (*tree.Switch).Prefix, sendSpace)
	rpc.SendNode(ctx, sw, (*tree.Switch).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, sw, (*tree.Switch).Selector, sendTree[*tree.ControlParentheses])
	rpc.SendNode(ctx, sw, (*tree.Switch).Cases, sendTree[*tree.Block])
	return sw
}

func (s *Sender) VisitSwitchExpression(se *tree.SwitchExpression, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, se, (*tree.SwitchExpression).ID, rpc.UUID)
	rpc.SendNode(ctx, se, (*tree.SwitchExpression).Prefix, sendSpace)
	rpc.SendNode(ctx, se, (*tree.SwitchExpression).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, se, (*tree.SwitchExpression).Selector, sendTree[*tree.ControlParentheses])
	rpc.SendNode(ctx, se, (*tree.SwitchExpression).Cases, sendTree[*tree.Block])
	rpc.SendTypedValue(ctx, se, (*tree.SwitchExpression).Type)
	return se
}

func (s *Sender) VisitSynchronized(sync *tree.Synchronized, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, sync, (*tree.Synchronized).ID, rpc.UUID)
	rpc.SendNode(ctx, sync, (*tree.Synchronized).Prefix, sendSpace)
	rpc.SendNode(ctx, sync, (*tree.Synchronized).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, sync, (*tree.Synchronized).Lock, sendTree[*tree.ControlParentheses])
	rpc.SendNode(ctx, sync, (*tree.Synchronized).Body, sendTree[*tree.Block])
	return sync
}

func (s *Sender) VisitTernary(tern *tree.Ternary, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, tern, (*tree.Ternary).ID, rpc.UUID)
	rpc.SendNode(ctx, tern, (*tree.Ternary).Prefix, sendSpace)
	rpc.SendNode(ctx, tern, (*tree.Ternary).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, tern, (*tree.Ternary).Condition, sendTree[tree.Expression])
	rpc.SendNode(ctx, tern, func(tern *tree.Ternary) *tree.LeftPadded[tree.Expression] { return tern.Padding().TruePart() }, sendLeftPadded[tree.Expression](rpc.Tree))
	rpc.SendNode(ctx, tern, func(tern *tree.Ternary) *tree.LeftPadded[tree.Expression] { return tern.Padding().FalsePart() }, sendLeftPadded[tree.Expression](rpc.Tree))
	rpc.SendTypedValue(ctx, tern, (*tree.Ternary).Type)
	return tern
}

func (s *Sender) VisitThrow(th *tree.Throw, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, th, (*tree.Throw).ID, rpc.UUID)
	rpc.SendNode(ctx, th, (*tree.Throw).Prefix, sendSpace)
	rpc.SendNode(ctx, th, (*tree.Throw).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, th, (*tree.Throw).Exception, sendTree[tree.Expression])
	return th
}

func (s *Sender) VisitTry(tr *tree.Try, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, tr, (*tree.Try).ID, rpc.UUID)
	rpc.SendNode(ctx, tr, (*tree.Try).Prefix, sendSpace)
	rpc.SendNode(ctx, tr, (*tree.Try).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, tr, func(tr *tree.Try) *tree.Container[*tree.TryResource] { return tr.Padding().Resources() }, sendContainer[*tree.TryResource](rpc.Tree))
	rpc.SendNode(ctx, tr, (*tree.Try).Body, sendTree[*tree.Block])
	rpc.SendNodes(ctx, tr, (*tree.Try).Catches, sendTree[*tree.TryCatch], treeID[*tree.TryCatch])
	rpc.SendNode(ctx, tr, func(tr *tree.Try) *tree.LeftPadded[*tree.Block] { return tr.Padding().Finally() }, sendLeftPadded[*tree.Block](rpc.Tree))
	return tr
}

func (s *Sender) VisitTryCatch(tc *tree.TryCatch, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, tc, (*tree.TryCatch).ID, rpc.UUID)
	rpc.SendNode(ctx, tc, (*tree.TryCatch).Prefix, sendSpace)
	rpc.SendNode(ctx, tc, (*tree.TryCatch).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, tc, (*tree.TryCatch).Parameter, sendTree[*tree.ControlParentheses])
	rpc.SendNode(ctx, tc, (*tree.TryCatch).Body, sendTree[*tree.Block])
	return tc
}

func (s *Sender) VisitTryResource(tr *tree.TryResource, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, tr, (*tree.TryResource).ID, rpc.UUID)
	rpc.SendNode(ctx, tr, (*tree.TryResource).Prefix, sendSpace)
	rpc.SendNode(ctx, tr, (*tree.TryResource).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, tr, (*tree.TryResource).VariableDeclarations, sendTree[tree.TypedTree])
	rpc.SendValue(ctx, tr, (*tree.TryResource).TerminatedWithSemicolon, rpc.Primitive)
	return tr
}

func (s *Sender) VisitTypeCast(tc *tree.TypeCast, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, tc, (*tree.TypeCast).ID, rpc.UUID)
	rpc.SendNode(ctx, tc, (*tree.TypeCast).Prefix, sendSpace)
	rpc.SendNode(ctx, tc, (*tree.TypeCast).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, tc, (*tree.TypeCast).Clazz, sendTree[*tree.ControlParentheses])
	rpc.SendNode(ctx, tc, (*tree.TypeCast).Expression, sendTree[tree.Expression])
	return tc
}

func (s *Sender) VisitTypeParameter(tp *tree.TypeParameter, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, tp, (*tree.TypeParameter).ID, rpc.UUID)
	rpc.SendNode(ctx, tp, (*tree.TypeParameter).Prefix, sendSpace)
	rpc.SendNode(ctx, tp, (*tree.TypeParameter).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, tp, (*tree.TypeParameter).Annotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendNodes(ctx, tp, (*tree.TypeParameter).Modifiers, sendTree[*tree.Modifier], treeID[*tree.Modifier])
	rpc.SendNode(ctx, tp, (*tree.TypeParameter).Name, sendTree[tree.Expression])
	rpc.SendNode(ctx, tp, func(tp *tree.TypeParameter) *tree.Container[tree.TypeTree] { return tp.Padding().Bounds() }, sendContainer[tree.TypeTree](rpc.Tree))
	return tp
}

func (s *Sender) VisitTypeParameters(tp *tree.TypeParameters, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, tp, (*tree.TypeParameters).ID, rpc.UUID)
	rpc.SendNode(ctx, tp, (*tree.TypeParameters).Prefix, sendSpace)
	rpc.SendNode(ctx, tp, (*tree.TypeParameters).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, tp, (*tree.TypeParameters).Annotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendNodes(ctx, tp, func(tp *tree.TypeParameters) []*tree.RightPadded[*tree.TypeParameter] { return tp.Padding().TypeParameters() }, sendRightPadded[*tree.TypeParameter](rpc.Tree), rightPaddedID[*tree.TypeParameter])
	return tp
}

func (s *Sender) VisitUnary(u *tree.Unary, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, u, (*tree.Unary).ID, rpc.UUID)
	rpc.SendNode(ctx, u, (*tree.Unary).Prefix, sendSpace)
	rpc.SendNode(ctx, u, (*tree.Unary).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, u, func(u *tree.Unary) *tree.LeftPadded[tree.UnaryOperator] { return u.Padding().Operator() }, sendLeftPadded[tree.UnaryOperator](rpc.Enum))
	rpc.SendNode(ctx, u, (*tree.Unary).Expression, sendTree[tree.Expression])
	rpc.SendTypedValue(ctx, u, (*tree.Unary).Type)
	return u
}

func (s *Sender) VisitUnknown(u *tree.Unknown, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, u, (*tree.Unknown).ID, rpc.UUID)
	rpc.SendNode(ctx, u, (*tree.Unknown).Prefix, sendSpace)
	rpc.SendNode(ctx, u, (*tree.Unknown).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, u, (*tree.Unknown).Source, sendTree[*tree.UnknownSource])
	return u
}

func (s *Sender) VisitUnknownSource(us *tree.UnknownSource, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, us, (*tree.UnknownSource).ID, rpc.UUID)
	rpc.SendNode(ctx, us, (*tree.UnknownSource).Prefix, sendSpace)
	rpc.SendNode(ctx, us, (*tree.UnknownSource).Markers, rpc.SendMarkers)
	rpc.SendValue(ctx, us, (*tree.UnknownSource).Text, rpc.Primitive)
	return us
}

func (s *Sender) VisitVariableDeclarations(vd *tree.VariableDeclarations, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, vd, (*tree.VariableDeclarations).ID, rpc.UUID)
	rpc.SendNode(ctx, vd, (*tree.VariableDeclarations).Prefix, sendSpace)
	rpc.SendNode(ctx, vd, (*tree.VariableDeclarations).Markers, rpc.SendMarkers)
	rpc.SendNodes(ctx, vd, (*tree.VariableDeclarations).LeadingAnnotations, sendTree[*tree.Annotation], treeID[*tree.Annotation])
	rpc.SendNodes(ctx, vd, (*tree.VariableDeclarations).Modifiers, sendTree[*tree.Modifier], treeID[*tree.Modifier])
	rpc.SendNode(ctx, vd, (*tree.VariableDeclarations).TypeExpression, sendTree[tree.TypeTree])
	rpc.SendNode(ctx, vd, (*tree.VariableDeclarations).Varargs, sendSpace)
	rpc.SendNodes(ctx, vd, (*tree.VariableDeclarations).DimensionsBeforeName, sendLeftPadded[*tree.Space](rpc.Object), identity[*tree.LeftPadded[*tree.Space]])
	rpc.SendNodes(ctx, vd, func(vd *tree.VariableDeclarations) []*tree.RightPadded[*tree.NamedVariable] { return vd.Padding().Variables() }, sendRightPadded[*tree.NamedVariable](rpc.Tree), rightPaddedID[*tree.NamedVariable])
	return vd
}

func (s *Sender) VisitWhileLoop(wl *tree.WhileLoop, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, wl, (*tree.WhileLoop).ID, rpc.UUID)
	rpc.SendNode(ctx, wl, (*tree.WhileLoop).Prefix, sendSpace)
	rpc.SendNode(ctx, wl, (*tree.WhileLoop).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, wl, (*tree.WhileLoop).Condition, sendTree[*tree.ControlParentheses])
	rpc.SendNode(ctx, wl, func(wl *tree.WhileLoop) *tree.RightPadded[tree.Statement] { return wl.Padding().Body() }, sendRightPadded[tree.Statement](rpc.Tree))
	return wl
}

func (s *Sender) VisitWildcard(w *tree.Wildcard, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, w, (*tree.Wildcard).ID, rpc.UUID)
	rpc.SendNode(ctx, w, (*tree.Wildcard).Prefix, sendSpace)
	rpc.SendNode(ctx, w, (*tree.Wildcard).Markers, rpc.SendMarkers)
	rpc.SendNode(ctx, w, func(w *tree.Wildcard) *tree.LeftPadded[tree.WildcardBound] { return w.Padding().Bound() }, sendLeftPadded[tree.WildcardBound](rpc.Enum))
	rpc.SendNode(ctx, w, (*tree.Wildcard).BoundedType, sendTree[tree.NameTree])
	return w
}

func (s *Sender) VisitYield(y *tree.Yield, ctx *rpc.SenderContext) tree.J {
	rpc.SendValue(ctx, y, (*tree.Yield).ID, rpc.UUID)
	rpc.SendNode(ctx, y, (*tree.Yield).Prefix, sendSpace)
	rpc.SendNode(ctx, y, (*tree.Yield).Markers, rpc.SendMarkers)
	rpc.SendValue(ctx, y, (*tree.Yield).Implicit, rpc.Primitive)
	rpc.SendNode(ctx, y, (*tree.Yield).Value, sendTree[tree.Expression])
	return y
}
