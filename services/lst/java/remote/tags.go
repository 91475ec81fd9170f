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
	"reflect"

	"github.com/AleutianAI/lstsync/services/lst/java/tree"
)

// Wire type tags. The tag set is part of the protocol and must match the
// peer that reads or writes the stream.
const (
	TagAnnotatedType         = "org.openrewrite.java.tree.J$AnnotatedType"
	TagAnnotation            = "org.openrewrite.java.tree.J$Annotation"
	TagArrayAccess           = "org.openrewrite.java.tree.J$ArrayAccess"
	TagArrayDimension        = "org.openrewrite.java.tree.J$ArrayDimension"
	TagArrayType             = "org.openrewrite.java.tree.J$ArrayType"
	TagAssert                = "org.openrewrite.java.tree.J$Assert"
	TagAssignment            = "org.openrewrite.java.tree.J$Assignment"
	TagAssignmentOperation   = "org.openrewrite.java.tree.J$AssignmentOperation"
	TagBinary                = "org.openrewrite.java.tree.J$Binary"
	TagBlock                 = "org.openrewrite.java.tree.J$Block"
	TagBreak                 = "org.openrewrite.java.tree.J$Break"
	TagCase                  = "org.openrewrite.java.tree.J$Case"
	TagClassDeclaration      = "org.openrewrite.java.tree.J$ClassDeclaration"
	TagClassDeclarationKind  = "org.openrewrite.java.tree.J$ClassDeclaration$Kind"
	TagCompilationUnit       = "org.openrewrite.java.tree.J$CompilationUnit"
	TagContinue              = "org.openrewrite.java.tree.J$Continue"
	TagControlParentheses    = "org.openrewrite.java.tree.J$ControlParentheses"
	TagDeconstructionPattern = "org.openrewrite.java.tree.J$DeconstructionPattern"
	TagDoWhileLoop           = "org.openrewrite.java.tree.J$DoWhileLoop"
	TagEmpty                 = "org.openrewrite.java.tree.J$Empty"
	TagEnumValue             = "org.openrewrite.java.tree.J$EnumValue"
	TagEnumValueSet          = "org.openrewrite.java.tree.J$EnumValueSet"
	TagErroneous             = "org.openrewrite.java.tree.J$Erroneous"
	TagFieldAccess           = "org.openrewrite.java.tree.J$FieldAccess"
	TagForEachLoop           = "org.openrewrite.java.tree.J$ForEachLoop"
	TagForEachLoopControl    = "org.openrewrite.java.tree.J$ForEachLoop$Control"
	TagForLoop               = "org.openrewrite.java.tree.J$ForLoop"
	TagForLoopControl        = "org.openrewrite.java.tree.J$ForLoop$Control"
	TagIdentifier            = "org.openrewrite.java.tree.J$Identifier"
	TagIf                    = "org.openrewrite.java.tree.J$If"
	TagIfElse                = "org.openrewrite.java.tree.J$If$Else"
	TagImport                = "org.openrewrite.java.tree.J$Import"
	TagInstanceOf            = "org.openrewrite.java.tree.J$InstanceOf"
	TagIntersectionType      = "org.openrewrite.java.tree.J$IntersectionType"
	TagLabel                 = "org.openrewrite.java.tree.J$Label"
	TagLambda                = "org.openrewrite.java.tree.J$Lambda"
	TagLambdaParameters      = "org.openrewrite.java.tree.J$Lambda$Parameters"
	TagLiteral               = "org.openrewrite.java.tree.J$Literal"
	TagMemberReference       = "org.openrewrite.java.tree.J$MemberReference"
	TagMethodDeclaration     = "org.openrewrite.java.tree.J$MethodDeclaration"
	TagMethodInvocation      = "org.openrewrite.java.tree.J$MethodInvocation"
	TagModifier              = "org.openrewrite.java.tree.J$Modifier"
	TagMultiCatch            = "org.openrewrite.java.tree.J$MultiCatch"
	TagNamedVariable         = "org.openrewrite.java.tree.J$VariableDeclarations$NamedVariable"
	TagNewArray              = "org.openrewrite.java.tree.J$NewArray"
	TagNewClass              = "org.openrewrite.java.tree.J$NewClass"
	TagNullableType          = "org.openrewrite.java.tree.J$NullableType"
	TagPackage               = "org.openrewrite.java.tree.J$Package"
	TagParameterizedType     = "org.openrewrite.java.tree.J$ParameterizedType"
	TagParentheses           = "org.openrewrite.java.tree.J$Parentheses"
	TagParenthesizedTypeTree = "org.openrewrite.java.tree.J$ParenthesizedTypeTree"
	TagPrimitive             = "org.openrewrite.java.tree.J$Primitive"
	TagReturn                = "org.openrewrite.java.tree.J$Return"
	TagSwitch                = "org.openrewrite.java.tree.J$Switch"
	TagSwitchExpression      = "org.openrewrite.java.tree.J$SwitchExpression"
	TagSynchronized          = "org.openrewrite.java.tree.J$Synchronized"
	TagTernary               = "org.openrewrite.java.tree.J$Ternary"
	TagThrow                 = "org.openrewrite.java.tree.J$Throw"
	TagTry                   = "org.openrewrite.java.tree.J$Try"
	TagTryCatch              = "org.openrewrite.java.tree.J$Try$Catch"
	TagTryResource           = "org.openrewrite.java.tree.J$Try$Resource"
	TagTypeCast              = "org.openrewrite.java.tree.J$TypeCast"
	TagTypeParameter         = "org.openrewrite.java.tree.J$TypeParameter"
	TagTypeParameters        = "org.openrewrite.java.tree.J$TypeParameters"
	TagUnary                 = "org.openrewrite.java.tree.J$Unary"
	TagUnknown               = "org.openrewrite.java.tree.J$Unknown"
	TagUnknownSource         = "org.openrewrite.java.tree.J$Unknown$Source"
	TagVariableDeclarations  = "org.openrewrite.java.tree.J$VariableDeclarations"
	TagWhileLoop             = "org.openrewrite.java.tree.J$WhileLoop"
	TagWildcard              = "org.openrewrite.java.tree.J$Wildcard"
	TagYield                 = "org.openrewrite.java.tree.J$Yield"
)

var kindTags = map[reflect.Type]string{
	reflect.TypeOf((*tree.AnnotatedType)(nil)):         TagAnnotatedType,
	reflect.TypeOf((*tree.Annotation)(nil)):            TagAnnotation,
	reflect.TypeOf((*tree.ArrayAccess)(nil)):           TagArrayAccess,
	reflect.TypeOf((*tree.ArrayDimension)(nil)):        TagArrayDimension,
	reflect.TypeOf((*tree.ArrayType)(nil)):             TagArrayType,
	reflect.TypeOf((*tree.Assert)(nil)):                TagAssert,
	reflect.TypeOf((*tree.Assignment)(nil)):            TagAssignment,
	reflect.TypeOf((*tree.AssignmentOperation)(nil)):   TagAssignmentOperation,
	reflect.TypeOf((*tree.Binary)(nil)):                TagBinary,
	reflect.TypeOf((*tree.Block)(nil)):                 TagBlock,
	reflect.TypeOf((*tree.Break)(nil)):                 TagBreak,
	reflect.TypeOf((*tree.Case)(nil)):                  TagCase,
	reflect.TypeOf((*tree.ClassDeclaration)(nil)):      TagClassDeclaration,
	reflect.TypeOf((*tree.ClassDeclarationKind)(nil)):  TagClassDeclarationKind,
	reflect.TypeOf((*tree.CompilationUnit)(nil)):       TagCompilationUnit,
	reflect.TypeOf((*tree.Continue)(nil)):              TagContinue,
	reflect.TypeOf((*tree.ControlParentheses)(nil)):    TagControlParentheses,
	reflect.TypeOf((*tree.DeconstructionPattern)(nil)): TagDeconstructionPattern,
	reflect.TypeOf((*tree.DoWhileLoop)(nil)):           TagDoWhileLoop,
	reflect.TypeOf((*tree.Empty)(nil)):                 TagEmpty,
	reflect.TypeOf((*tree.EnumValue)(nil)):             TagEnumValue,
	reflect.TypeOf((*tree.EnumValueSet)(nil)):          TagEnumValueSet,
	reflect.TypeOf((*tree.Erroneous)(nil)):             TagErroneous,
	reflect.TypeOf((*tree.FieldAccess)(nil)):           TagFieldAccess,
	reflect.TypeOf((*tree.ForEachLoop)(nil)):           TagForEachLoop,
	reflect.TypeOf((*tree.ForEachLoopControl)(nil)):    TagForEachLoopControl,
	reflect.TypeOf((*tree.ForLoop)(nil)):               TagForLoop,
	reflect.TypeOf((*tree.ForLoopControl)(nil)):        TagForLoopControl,
	reflect.TypeOf((*tree.Identifier)(nil)):            TagIdentifier,
	reflect.TypeOf((*tree.If)(nil)):                    TagIf,
	reflect.TypeOf((*tree.IfElse)(nil)):                TagIfElse,
	reflect.TypeOf((*tree.Import)(nil)):                TagImport,
	reflect.TypeOf((*tree.InstanceOf)(nil)):            TagInstanceOf,
	reflect.TypeOf((*tree.IntersectionType)(nil)):      TagIntersectionType,
	reflect.TypeOf((*tree.Label)(nil)):                 TagLabel,
	reflect.TypeOf((*tree.Lambda)(nil)):                TagLambda,
	reflect.TypeOf((*tree.LambdaParameters)(nil)):      TagLambdaParameters,
	reflect.TypeOf((*tree.Literal)(nil)):               TagLiteral,
	reflect.TypeOf((*tree.MemberReference)(nil)):       TagMemberReference,
	reflect.TypeOf((*tree.MethodDeclaration)(nil)):     TagMethodDeclaration,
	reflect.TypeOf((*tree.MethodInvocation)(nil)):      TagMethodInvocation,
	reflect.TypeOf((*tree.Modifier)(nil)):              TagModifier,
	reflect.TypeOf((*tree.MultiCatch)(nil)):            TagMultiCatch,
	reflect.TypeOf((*tree.NamedVariable)(nil)):         TagNamedVariable,
	reflect.TypeOf((*tree.NewArray)(nil)):              TagNewArray,
	reflect.TypeOf((*tree.NewClass)(nil)):              TagNewClass,
	reflect.TypeOf((*tree.NullableType)(nil)):          TagNullableType,
	reflect.TypeOf((*tree.Package)(nil)):               TagPackage,
	reflect.TypeOf((*tree.ParameterizedType)(nil)):     TagParameterizedType,
	reflect.TypeOf((*tree.Parentheses)(nil)):           TagParentheses,
	reflect.TypeOf((*tree.ParenthesizedTypeTree)(nil)): TagParenthesizedTypeTree,
	reflect.TypeOf((*tree.Primitive)(nil)):             TagPrimitive,
	reflect.TypeOf((*tree.Return)(nil)):                TagReturn,
	reflect.TypeOf((*tree.Switch)(nil)):                TagSwitch,
	reflect.TypeOf((*tree.SwitchExpression)(nil)):      TagSwitchExpression,
	reflect.TypeOf((*tree.Synchronized)(nil)):          TagSynchronized,
	reflect.TypeOf((*tree.Ternary)(nil)):               TagTernary,
	reflect.TypeOf((*tree.Throw)(nil)):                 TagThrow,
	reflect.TypeOf((*tree.Try)(nil)):                   TagTry,
	reflect.TypeOf((*tree.TryCatch)(nil)):              TagTryCatch,
	reflect.TypeOf((*tree.TryResource)(nil)):           TagTryResource,
	reflect.TypeOf((*tree.TypeCast)(nil)):              TagTypeCast,
	reflect.TypeOf((*tree.TypeParameter)(nil)):         TagTypeParameter,
	reflect.TypeOf((*tree.TypeParameters)(nil)):        TagTypeParameters,
	reflect.TypeOf((*tree.Unary)(nil)):                 TagUnary,
	reflect.TypeOf((*tree.Unknown)(nil)):               TagUnknown,
	reflect.TypeOf((*tree.UnknownSource)(nil)):         TagUnknownSource,
	reflect.TypeOf((*tree.VariableDeclarations)(nil)):  TagVariableDeclarations,
	reflect.TypeOf((*tree.WhileLoop)(nil)):             TagWhileLoop,
	reflect.TypeOf((*tree.Wildcard)(nil)):              TagWildcard,
	reflect.TypeOf((*tree.Yield)(nil)):                 TagYield,
}
