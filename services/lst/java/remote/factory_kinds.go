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
	"github.com/AleutianAI/lstsync/services/lst/java/types"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

// constructors builds a node from scratch, reading constructor arguments
// in wire order. Go evaluates call arguments left to right.
var constructors = map[string]func(ctx *rpc.ReceiverContext) tree.J{
	TagAnnotatedType: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewAnnotatedType(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveNode[tree.TypeTree](ctx, nil, receiveTree[tree.TypeTree]),
		)
	},
	TagAnnotation: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewAnnotation(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.NameTree](ctx, nil, receiveTree[tree.NameTree]),
			rpc.ReceiveNode[*tree.Container[tree.Expression]](ctx, nil, receiveContainer[tree.Expression](rpc.Tree)),
		)
	},
	TagArrayAccess: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewArrayAccess(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveNode[*tree.ArrayDimension](ctx, nil, receiveTree[*tree.ArrayDimension]),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagArrayDimension: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewArrayDimension(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[tree.Expression]](ctx, nil, receiveRightPadded[tree.Expression](rpc.Tree)),
		)
	},
	TagArrayType: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewArrayType(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.TypeTree](ctx, nil, receiveTree[tree.TypeTree]),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveNode[*tree.LeftPadded[*tree.Space]](ctx, nil, receiveLeftPadded[*tree.Space](rpc.Object)),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagAssert: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewAssert(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveNode[*tree.LeftPadded[tree.Expression]](ctx, nil, receiveLeftPadded[tree.Expression](rpc.Tree)),
		)
	},
	TagAssignment: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewAssignment(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveNode[*tree.LeftPadded[tree.Expression]](ctx, nil, receiveLeftPadded[tree.Expression](rpc.Tree)),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagAssignmentOperation: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewAssignmentOperation(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveNode[*tree.LeftPadded[tree.AssignmentOperator]](ctx, nil, receiveLeftPadded[tree.AssignmentOperator](rpc.Enum)),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagBinary: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewBinary(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveNode[*tree.LeftPadded[tree.BinaryOperator]](ctx, nil, receiveLeftPadded[tree.BinaryOperator](rpc.Enum)),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagBlock: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewBlock(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[bool]](ctx, nil, receiveRightPadded[bool](rpc.Primitive)),
			rpc.ReceiveNodes[*tree.RightPadded[tree.Statement]](ctx, nil, receiveRightPadded[tree.Statement](rpc.Tree)),
			rpc.ReceiveNode[*tree.Space](ctx, nil, receiveSpace),
		)
	},
	TagBreak: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewBreak(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.Identifier](ctx, nil, receiveTree[*tree.Identifier]),
		)
	},
	TagCase: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewCase(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveValue[tree.CaseType](ctx, "", rpc.Enum),
			rpc.ReceiveNode[*tree.Container[tree.J]](ctx, nil, receiveContainer[tree.J](rpc.Tree)),
			rpc.ReceiveNode[*tree.Container[tree.Statement]](ctx, nil, receiveContainer[tree.Statement](rpc.Tree)),
			rpc.ReceiveNode[*tree.RightPadded[tree.J]](ctx, nil, receiveRightPadded[tree.J](rpc.Tree)),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
		)
	},
	TagClassDeclaration: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewClassDeclaration(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveNodes[*tree.Modifier](ctx, nil, receiveTree[*tree.Modifier]),
			rpc.ReceiveNode[*tree.ClassDeclarationKind](ctx, nil, receiveTree[*tree.ClassDeclarationKind]),
			rpc.ReceiveNode[*tree.Identifier](ctx, nil, receiveTree[*tree.Identifier]),
			rpc.ReceiveNode[*tree.Container[*tree.TypeParameter]](ctx, nil, receiveContainer[*tree.TypeParameter](rpc.Tree)),
			rpc.ReceiveNode[*tree.Container[tree.Statement]](ctx, nil, receiveContainer[tree.Statement](rpc.Tree)),
			rpc.ReceiveNode[*tree.LeftPadded[tree.TypeTree]](ctx, nil, receiveLeftPadded[tree.TypeTree](rpc.Tree)),
			rpc.ReceiveNode[*tree.Container[tree.TypeTree]](ctx, nil, receiveContainer[tree.TypeTree](rpc.Tree)),
			rpc.ReceiveNode[*tree.Container[tree.TypeTree]](ctx, nil, receiveContainer[tree.TypeTree](rpc.Tree)),
			rpc.ReceiveNode[*tree.Block](ctx, nil, receiveTree[*tree.Block]),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagClassDeclarationKind: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewClassDeclarationKind(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveValue[tree.ClassKind](ctx, "", rpc.Enum),
		)
	},
	TagCompilationUnit: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewCompilationUnit(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveValue(ctx, "", rpc.Primitive),
			rpc.ReceiveValue(ctx, "", rpc.Primitive),
			rpc.ReceiveValue(ctx, false, rpc.Primitive),
			rpc.ReceiveValue[*tree.Checksum](ctx, nil, rpc.Object),
			rpc.ReceiveValue[*tree.FileAttributes](ctx, nil, rpc.Object),
			rpc.ReceiveNode[*tree.RightPadded[*tree.Package]](ctx, nil, receiveRightPadded[*tree.Package](rpc.Tree)),
			rpc.ReceiveNodes[*tree.RightPadded[*tree.Import]](ctx, nil, receiveRightPadded[*tree.Import](rpc.Tree)),
			rpc.ReceiveNodes[*tree.ClassDeclaration](ctx, nil, receiveTree[*tree.ClassDeclaration]),
			rpc.ReceiveNode[*tree.Space](ctx, nil, receiveSpace),
		)
	},
	TagContinue: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewContinue(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.Identifier](ctx, nil, receiveTree[*tree.Identifier]),
		)
	},
	TagControlParentheses: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewControlParentheses(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[tree.J]](ctx, nil, receiveRightPadded[tree.J](rpc.Tree)),
		)
	},
	TagDeconstructionPattern: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewDeconstructionPattern(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveNode[*tree.Container[tree.J]](ctx, nil, receiveContainer[tree.J](rpc.Tree)),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagDoWhileLoop: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewDoWhileLoop(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[tree.Statement]](ctx, nil, receiveRightPadded[tree.Statement](rpc.Tree)),
			rpc.ReceiveNode[*tree.LeftPadded[*tree.ControlParentheses]](ctx, nil, receiveLeftPadded[*tree.ControlParentheses](rpc.Tree)),
		)
	},
	TagEmpty: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewEmpty(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
		)
	},
	TagEnumValue: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewEnumValue(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveNode[*tree.Identifier](ctx, nil, receiveTree[*tree.Identifier]),
			rpc.ReceiveNode[*tree.NewClass](ctx, nil, receiveTree[*tree.NewClass]),
		)
	},
	TagEnumValueSet: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewEnumValueSet(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.RightPadded[*tree.EnumValue]](ctx, nil, receiveRightPadded[*tree.EnumValue](rpc.Tree)),
			rpc.ReceiveValue(ctx, false, rpc.Primitive),
		)
	},
	TagErroneous: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewErroneous(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveValue(ctx, "", rpc.Primitive),
		)
	},
	TagFieldAccess: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewFieldAccess(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveNode[*tree.LeftPadded[*tree.Identifier]](ctx, nil, receiveLeftPadded[*tree.Identifier](rpc.Tree)),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagForEachLoop: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewForEachLoop(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.ForEachLoopControl](ctx, nil, receiveTree[*tree.ForEachLoopControl]),
			rpc.ReceiveNode[*tree.RightPadded[tree.Statement]](ctx, nil, receiveRightPadded[tree.Statement](rpc.Tree)),
		)
	},
	TagForEachLoopControl: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewForEachLoopControl(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[*tree.VariableDeclarations]](ctx, nil, receiveRightPadded[*tree.VariableDeclarations](rpc.Tree)),
			rpc.ReceiveNode[*tree.RightPadded[tree.Expression]](ctx, nil, receiveRightPadded[tree.Expression](rpc.Tree)),
		)
	},
	TagForLoop: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewForLoop(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.ForLoopControl](ctx, nil, receiveTree[*tree.ForLoopControl]),
			rpc.ReceiveNode[*tree.RightPadded[tree.Statement]](ctx, nil, receiveRightPadded[tree.Statement](rpc.Tree)),
		)
	},
	TagForLoopControl: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewForLoopControl(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.RightPadded[tree.Statement]](ctx, nil, receiveRightPadded[tree.Statement](rpc.Tree)),
			rpc.ReceiveNode[*tree.RightPadded[tree.Expression]](ctx, nil, receiveRightPadded[tree.Expression](rpc.Tree)),
			rpc.ReceiveNodes[*tree.RightPadded[tree.Statement]](ctx, nil, receiveRightPadded[tree.Statement](rpc.Tree)),
		)
	},
	TagIdentifier: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewIdentifier(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveValue(ctx, "", rpc.Primitive),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
			rpc.ReceiveValue[*types.Variable](ctx, nil, rpc.Object),
		)
	},
	TagIf: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewIf(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.ControlParentheses](ctx, nil, receiveTree[*tree.ControlParentheses]),
			rpc.ReceiveNode[*tree.RightPadded[tree.Statement]](ctx, nil, receiveRightPadded[tree.Statement](rpc.Tree)),
			rpc.ReceiveNode[*tree.IfElse](ctx, nil, receiveTree[*tree.IfElse]),
		)
	},
	TagIfElse: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewIfElse(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[tree.Statement]](ctx, nil, receiveRightPadded[tree.Statement](rpc.Tree)),
		)
	},
	TagImport: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewImport(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.LeftPadded[bool]](ctx, nil, receiveLeftPadded[bool](rpc.Primitive)),
			rpc.ReceiveNode[*tree.FieldAccess](ctx, nil, receiveTree[*tree.FieldAccess]),
			rpc.ReceiveNode[*tree.LeftPadded[*tree.Identifier]](ctx, nil, receiveLeftPadded[*tree.Identifier](rpc.Tree)),
		)
	},
	TagInstanceOf: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewInstanceOf(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[tree.Expression]](ctx, nil, receiveRightPadded[tree.Expression](rpc.Tree)),
			rpc.ReceiveNode[tree.J](ctx, nil, receiveTree[tree.J]),
			rpc.ReceiveNode[tree.J](ctx, nil, receiveTree[tree.J]),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
			rpc.ReceiveNode[*tree.Modifier](ctx, nil, receiveTree[*tree.Modifier]),
		)
	},
	TagIntersectionType: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewIntersectionType(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.Container[tree.TypeTree]](ctx, nil, receiveContainer[tree.TypeTree](rpc.Tree)),
		)
	},
	TagLabel: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewLabel(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[*tree.Identifier]](ctx, nil, receiveRightPadded[*tree.Identifier](rpc.Tree)),
			rpc.ReceiveNode[tree.Statement](ctx, nil, receiveTree[tree.Statement]),
		)
	},
	TagLambda: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewLambda(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.LambdaParameters](ctx, nil, receiveTree[*tree.LambdaParameters]),
			rpc.ReceiveNode[*tree.Space](ctx, nil, receiveSpace),
			rpc.ReceiveNode[tree.J](ctx, nil, receiveTree[tree.J]),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagLambdaParameters: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewLambdaParameters(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveValue(ctx, false, rpc.Primitive),
			rpc.ReceiveNodes[*tree.RightPadded[tree.J]](ctx, nil, receiveRightPadded[tree.J](rpc.Tree)),
		)
	},
	TagLiteral: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewLiteral(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveValue[any](ctx, nil, rpc.Primitive),
			rpc.ReceiveValue(ctx, "", rpc.Primitive),
			rpc.ReceiveValues[*tree.UnicodeEscape](ctx, nil, rpc.Object),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagMemberReference: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewMemberReference(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[tree.Expression]](ctx, nil, receiveRightPadded[tree.Expression](rpc.Tree)),
			rpc.ReceiveNode[*tree.Container[tree.Expression]](ctx, nil, receiveContainer[tree.Expression](rpc.Tree)),
			rpc.ReceiveNode[*tree.LeftPadded[*tree.Identifier]](ctx, nil, receiveLeftPadded[*tree.Identifier](rpc.Tree)),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
			rpc.ReceiveValue[*types.Method](ctx, nil, rpc.Object),
			rpc.ReceiveValue[*types.Variable](ctx, nil, rpc.Object),
		)
	},
	TagMethodDeclaration: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewMethodDeclaration(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveNodes[*tree.Modifier](ctx, nil, receiveTree[*tree.Modifier]),
			rpc.ReceiveNode[*tree.TypeParameters](ctx, nil, receiveTree[*tree.TypeParameters]),
			rpc.ReceiveNode[tree.TypeTree](ctx, nil, receiveTree[tree.TypeTree]),
			rpc.ReceiveNode[*tree.Identifier](ctx, nil, receiveTree[*tree.Identifier]),
			rpc.ReceiveNode[*tree.Container[tree.Statement]](ctx, nil, receiveContainer[tree.Statement](rpc.Tree)),
			rpc.ReceiveNode[*tree.Container[tree.NameTree]](ctx, nil, receiveContainer[tree.NameTree](rpc.Tree)),
			rpc.ReceiveNode[*tree.Block](ctx, nil, receiveTree[*tree.Block]),
			rpc.ReceiveNode[*tree.LeftPadded[tree.Expression]](ctx, nil, receiveLeftPadded[tree.Expression](rpc.Tree)),
			rpc.ReceiveValue[*types.Method](ctx, nil, rpc.Object),
		)
	},
	TagMethodInvocation: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewMethodInvocation(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[tree.Expression]](ctx, nil, receiveRightPadded[tree.Expression](rpc.Tree)),
			rpc.ReceiveNode[*tree.Container[tree.Expression]](ctx, nil, receiveContainer[tree.Expression](rpc.Tree)),
			rpc.ReceiveNode[*tree.Identifier](ctx, nil, receiveTree[*tree.Identifier]),
			rpc.ReceiveNode[*tree.Container[tree.Expression]](ctx, nil, receiveContainer[tree.Expression](rpc.Tree)),
			rpc.ReceiveValue[*types.Method](ctx, nil, rpc.Object),
		)
	},
	TagModifier: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewModifier(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveValue(ctx, "", rpc.Primitive),
			rpc.ReceiveValue[tree.ModifierType](ctx, "", rpc.Enum),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
		)
	},
	TagMultiCatch: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewMultiCatch(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.RightPadded[tree.NameTree]](ctx, nil, receiveRightPadded[tree.NameTree](rpc.Tree)),
		)
	},
	TagNamedVariable: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewNamedVariable(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.Identifier](ctx, nil, receiveTree[*tree.Identifier]),
			rpc.ReceiveNodes[*tree.LeftPadded[*tree.Space]](ctx, nil, receiveLeftPadded[*tree.Space](rpc.Object)),
			rpc.ReceiveNode[*tree.LeftPadded[tree.Expression]](ctx, nil, receiveLeftPadded[tree.Expression](rpc.Tree)),
			rpc.ReceiveValue[*types.Variable](ctx, nil, rpc.Object),
		)
	},
	TagNewArray: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewNewArray(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.TypeTree](ctx, nil, receiveTree[tree.TypeTree]),
			rpc.ReceiveNodes[*tree.ArrayDimension](ctx, nil, receiveTree[*tree.ArrayDimension]),
			rpc.ReceiveNode[*tree.Container[tree.Expression]](ctx, nil, receiveContainer[tree.Expression](rpc.Tree)),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagNewClass: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewNewClass(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[tree.Expression]](ctx, nil, receiveRightPadded[tree.Expression](rpc.Tree)),
			rpc.ReceiveNode[*tree.Space](ctx, nil, receiveSpace),
			rpc.ReceiveNode[tree.TypeTree](ctx, nil, receiveTree[tree.TypeTree]),
			rpc.ReceiveNode[*tree.Container[tree.Expression]](ctx, nil, receiveContainer[tree.Expression](rpc.Tree)),
			rpc.ReceiveNode[*tree.Block](ctx, nil, receiveTree[*tree.Block]),
			rpc.ReceiveValue[*types.Method](ctx, nil, rpc.Object),
		)
	},
	TagNullableType: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewNullableType(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveNode[*tree.RightPadded[tree.TypeTree]](ctx, nil, receiveRightPadded[tree.TypeTree](rpc.Tree)),
		)
	},
	TagPackage: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewPackage(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
		)
	},
	TagParameterizedType: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewParameterizedType(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.NameTree](ctx, nil, receiveTree[tree.NameTree]),
			rpc.ReceiveNode[*tree.Container[tree.Expression]](ctx, nil, receiveContainer[tree.Expression](rpc.Tree)),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagParentheses: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewParentheses(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.RightPadded[tree.J]](ctx, nil, receiveRightPadded[tree.J](rpc.Tree)),
		)
	},
	TagParenthesizedTypeTree: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewParenthesizedTypeTree(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveNode[*tree.Parentheses](ctx, nil, receiveTree[*tree.Parentheses]),
		)
	},
	TagPrimitive: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewPrimitive(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagReturn: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewReturn(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
		)
	},
	TagSwitch: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewSwitch(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.ControlParentheses](ctx, nil, receiveTree[*tree.ControlParentheses]),
			rpc.ReceiveNode[*tree.Block](ctx, nil, receiveTree[*tree.Block]),
		)
	},
	TagSwitchExpression: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewSwitchExpression(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.ControlParentheses](ctx, nil, receiveTree[*tree.ControlParentheses]),
			rpc.ReceiveNode[*tree.Block](ctx, nil, receiveTree[*tree.Block]),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagSynchronized: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewSynchronized(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.ControlParentheses](ctx, nil, receiveTree[*tree.ControlParentheses]),
			rpc.ReceiveNode[*tree.Block](ctx, nil, receiveTree[*tree.Block]),
		)
	},
	TagTernary: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewTernary(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveNode[*tree.LeftPadded[tree.Expression]](ctx, nil, receiveLeftPadded[tree.Expression](rpc.Tree)),
			rpc.ReceiveNode[*tree.LeftPadded[tree.Expression]](ctx, nil, receiveLeftPadded[tree.Expression](rpc.Tree)),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagThrow: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewThrow(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
		)
	},
	TagTry: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewTry(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.Container[*tree.TryResource]](ctx, nil, receiveContainer[*tree.TryResource](rpc.Tree)),
			rpc.ReceiveNode[*tree.Block](ctx, nil, receiveTree[*tree.Block]),
			rpc.ReceiveNodes[*tree.TryCatch](ctx, nil, receiveTree[*tree.TryCatch]),
			rpc.ReceiveNode[*tree.LeftPadded[*tree.Block]](ctx, nil, receiveLeftPadded[*tree.Block](rpc.Tree)),
		)
	},
	TagTryCatch: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewTryCatch(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.ControlParentheses](ctx, nil, receiveTree[*tree.ControlParentheses]),
			rpc.ReceiveNode[*tree.Block](ctx, nil, receiveTree[*tree.Block]),
		)
	},
	TagTryResource: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewTryResource(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[tree.TypedTree](ctx, nil, receiveTree[tree.TypedTree]),
			rpc.ReceiveValue(ctx, false, rpc.Primitive),
		)
	},
	TagTypeCast: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewTypeCast(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.ControlParentheses](ctx, nil, receiveTree[*tree.ControlParentheses]),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
		)
	},
	TagTypeParameter: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewTypeParameter(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveNodes[*tree.Modifier](ctx, nil, receiveTree[*tree.Modifier]),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveNode[*tree.Container[tree.TypeTree]](ctx, nil, receiveContainer[tree.TypeTree](rpc.Tree)),
		)
	},
	TagTypeParameters: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewTypeParameters(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveNodes[*tree.RightPadded[*tree.TypeParameter]](ctx, nil, receiveRightPadded[*tree.TypeParameter](rpc.Tree)),
		)
	},
	TagUnary: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewUnary(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.LeftPadded[tree.UnaryOperator]](ctx, nil, receiveLeftPadded[tree.UnaryOperator](rpc.Enum)),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
			rpc.ReceiveValue[types.JavaType](ctx, nil, rpc.Object),
		)
	},
	TagUnknown: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewUnknown(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.UnknownSource](ctx, nil, receiveTree[*tree.UnknownSource]),
		)
	},
	TagUnknownSource: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewUnknownSource(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveValue(ctx, "", rpc.Primitive),
		)
	},
	TagVariableDeclarations: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewVariableDeclarations(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNodes[*tree.Annotation](ctx, nil, receiveTree[*tree.Annotation]),
			rpc.ReceiveNodes[*tree.Modifier](ctx, nil, receiveTree[*tree.Modifier]),
			rpc.ReceiveNode[tree.TypeTree](ctx, nil, receiveTree[tree.TypeTree]),
			rpc.ReceiveNode[*tree.Space](ctx, nil, receiveSpace),
			rpc.ReceiveNodes[*tree.LeftPadded[*tree.Space]](ctx, nil, receiveLeftPadded[*tree.Space](rpc.Object)),
			rpc.ReceiveNodes[*tree.RightPadded[*tree.NamedVariable]](ctx, nil, receiveRightPadded[*tree.NamedVariable](rpc.Tree)),
		)
	},
	TagWhileLoop: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewWhileLoop(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.ControlParentheses](ctx, nil, receiveTree[*tree.ControlParentheses]),
			rpc.ReceiveNode[*tree.RightPadded[tree.Statement]](ctx, nil, receiveRightPadded[tree.Statement](rpc.Tree)),
		)
	},
	TagWildcard: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewWildcard(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveNode[*tree.LeftPadded[tree.WildcardBound]](ctx, nil, receiveLeftPadded[tree.WildcardBound](rpc.Enum)),
			rpc.ReceiveNode[tree.NameTree](ctx, nil, receiveTree[tree.NameTree]),
		)
	},
	TagYield: func(ctx *rpc.ReceiverContext) tree.J {
		return tree.NewYield(
			receiveID(ctx),
			receivePrefix(ctx),
			receiveNewMarkers(ctx),
			rpc.ReceiveValue(ctx, false, rpc.Primitive),
			rpc.ReceiveNode[tree.Expression](ctx, nil, receiveTree[tree.Expression]),
		)
	},
}
