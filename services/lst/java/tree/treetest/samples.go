// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package treetest

import (
	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst/java/tree"
)

// The constructors below build one node of each kind with every field
// populated, optional ones included, so a round trip exercises every slot.

func AnnotatedType() *tree.AnnotatedType {
	return tree.NewAnnotatedType(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.Annotation{Annotation()},
		Ident("x"),
	)
}

func Annotation() *tree.Annotation {
	return tree.NewAnnotation(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		tree.NewContainer[tree.Expression](Space(""), []*tree.RightPadded[tree.Expression]{tree.NewRightPadded[tree.Expression](Ident("x"), Space(""), Markers())}, Markers()),
	)
}

func ArrayAccess() *tree.ArrayAccess {
	return tree.NewArrayAccess(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		ArrayDimension(),
		SharedClass,
	)
}

func ArrayDimension() *tree.ArrayDimension {
	return tree.NewArrayDimension(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[tree.Expression](Ident("x"), Space(" "), Markers()),
	)
}

func ArrayType() *tree.ArrayType {
	return tree.NewArrayType(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		[]*tree.Annotation{Annotation()},
		tree.NewLeftPadded[*tree.Space](Space(" "), Space("  "), Markers()),
		SharedClass,
	)
}

func Assert() *tree.Assert {
	return tree.NewAssert(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		tree.NewLeftPadded[tree.Expression](Space(" "), Ident("x"), Markers()),
	)
}

func Assignment() *tree.Assignment {
	return tree.NewAssignment(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		tree.NewLeftPadded[tree.Expression](Space(" "), Ident("x"), Markers()),
		SharedClass,
	)
}

func AssignmentOperation() *tree.AssignmentOperation {
	return tree.NewAssignmentOperation(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		tree.NewLeftPadded[tree.AssignmentOperator](Space(" "), tree.AssignAddition, Markers()),
		Ident("x"),
		SharedClass,
	)
}

func Binary() *tree.Binary {
	return tree.NewBinary(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		tree.NewLeftPadded[tree.BinaryOperator](Space(" "), tree.BinaryAddition, Markers()),
		Ident("x"),
		SharedClass,
	)
}

func Block() *tree.Block {
	return tree.NewBlock(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[bool](true, Space(" "), Markers()),
		[]*tree.RightPadded[tree.Statement]{tree.NewRightPadded[tree.Statement](Empty(), Space(" "), Markers())},
		Space(" "),
	)
}

func Break() *tree.Break {
	return tree.NewBreak(
		uuid.New(),
		Space(" "),
		Markers(),
		Identifier(),
	)
}

func Case() *tree.Case {
	return tree.NewCase(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.CaseStatement,
		tree.NewContainer[tree.J](Space(""), []*tree.RightPadded[tree.J]{tree.NewRightPadded[tree.J](Ident("x"), Space(""), Markers())}, Markers()),
		tree.NewContainer[tree.Statement](Space(""), []*tree.RightPadded[tree.Statement]{tree.NewRightPadded[tree.Statement](Empty(), Space(""), Markers())}, Markers()),
		tree.NewRightPadded[tree.J](Ident("x"), Space(" "), Markers()),
		Ident("x"),
	)
}

func ClassDeclaration() *tree.ClassDeclaration {
	return tree.NewClassDeclaration(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.Annotation{Annotation()},
		[]*tree.Modifier{Modifier()},
		ClassDeclarationKind(),
		Identifier(),
		tree.NewContainer[*tree.TypeParameter](Space(""), []*tree.RightPadded[*tree.TypeParameter]{tree.NewRightPadded[*tree.TypeParameter](TypeParameter(), Space(""), Markers())}, Markers()),
		tree.NewContainer[tree.Statement](Space(""), []*tree.RightPadded[tree.Statement]{tree.NewRightPadded[tree.Statement](Empty(), Space(""), Markers())}, Markers()),
		tree.NewLeftPadded[tree.TypeTree](Space(" "), Ident("x"), Markers()),
		tree.NewContainer[tree.TypeTree](Space(""), []*tree.RightPadded[tree.TypeTree]{tree.NewRightPadded[tree.TypeTree](Ident("x"), Space(""), Markers())}, Markers()),
		tree.NewContainer[tree.TypeTree](Space(""), []*tree.RightPadded[tree.TypeTree]{tree.NewRightPadded[tree.TypeTree](Ident("x"), Space(""), Markers())}, Markers()),
		Block(),
		SharedClass,
	)
}

func ClassDeclarationKind() *tree.ClassDeclarationKind {
	return tree.NewClassDeclarationKind(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.Annotation{Annotation()},
		tree.ClassKindClass,
	)
}

func CompilationUnit() *tree.CompilationUnit {
	return tree.NewCompilationUnit(
		uuid.New(),
		Space(" "),
		Markers(),
		"v",
		"v",
		true,
		Checksum(),
		FileAttributes(),
		tree.NewRightPadded[*tree.Package](Package(), Space(" "), Markers()),
		[]*tree.RightPadded[*tree.Import]{tree.NewRightPadded[*tree.Import](Import(), Space(" "), Markers())},
		[]*tree.ClassDeclaration{ClassDeclaration()},
		Space(" "),
	)
}

func Continue() *tree.Continue {
	return tree.NewContinue(
		uuid.New(),
		Space(" "),
		Markers(),
		Identifier(),
	)
}

func ControlParentheses() *tree.ControlParentheses {
	return tree.NewControlParentheses(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[tree.J](Ident("x"), Space(" "), Markers()),
	)
}

func DeconstructionPattern() *tree.DeconstructionPattern {
	return tree.NewDeconstructionPattern(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		tree.NewContainer[tree.J](Space(""), []*tree.RightPadded[tree.J]{tree.NewRightPadded[tree.J](Ident("x"), Space(""), Markers())}, Markers()),
		SharedClass,
	)
}

func DoWhileLoop() *tree.DoWhileLoop {
	return tree.NewDoWhileLoop(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[tree.Statement](Empty(), Space(" "), Markers()),
		tree.NewLeftPadded[*tree.ControlParentheses](Space(" "), ControlParentheses(), Markers()),
	)
}

func Empty() *tree.Empty {
	return tree.NewEmpty(
		uuid.New(),
		Space(" "),
		Markers(),
	)
}

func EnumValue() *tree.EnumValue {
	return tree.NewEnumValue(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.Annotation{Annotation()},
		Identifier(),
		NewClass(),
	)
}

func EnumValueSet() *tree.EnumValueSet {
	return tree.NewEnumValueSet(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.RightPadded[*tree.EnumValue]{tree.NewRightPadded[*tree.EnumValue](EnumValue(), Space(" "), Markers())},
		true,
	)
}

func Erroneous() *tree.Erroneous {
	return tree.NewErroneous(
		uuid.New(),
		Space(" "),
		Markers(),
		"v",
	)
}

func FieldAccess() *tree.FieldAccess {
	return tree.NewFieldAccess(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		tree.NewLeftPadded[*tree.Identifier](Space(" "), Identifier(), Markers()),
		SharedClass,
	)
}

func ForEachLoop() *tree.ForEachLoop {
	return tree.NewForEachLoop(
		uuid.New(),
		Space(" "),
		Markers(),
		ForEachLoopControl(),
		tree.NewRightPadded[tree.Statement](Empty(), Space(" "), Markers()),
	)
}

func ForEachLoopControl() *tree.ForEachLoopControl {
	return tree.NewForEachLoopControl(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[*tree.VariableDeclarations](VariableDeclarations(), Space(" "), Markers()),
		tree.NewRightPadded[tree.Expression](Ident("x"), Space(" "), Markers()),
	)
}

func ForLoop() *tree.ForLoop {
	return tree.NewForLoop(
		uuid.New(),
		Space(" "),
		Markers(),
		ForLoopControl(),
		tree.NewRightPadded[tree.Statement](Empty(), Space(" "), Markers()),
	)
}

func ForLoopControl() *tree.ForLoopControl {
	return tree.NewForLoopControl(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.RightPadded[tree.Statement]{tree.NewRightPadded[tree.Statement](Empty(), Space(" "), Markers())},
		tree.NewRightPadded[tree.Expression](Ident("x"), Space(" "), Markers()),
		[]*tree.RightPadded[tree.Statement]{tree.NewRightPadded[tree.Statement](Empty(), Space(" "), Markers())},
	)
}

func Identifier() *tree.Identifier {
	return tree.NewIdentifier(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.Annotation{Annotation()},
		"v",
		SharedClass,
		VariableType(),
	)
}

func If() *tree.If {
	return tree.NewIf(
		uuid.New(),
		Space(" "),
		Markers(),
		ControlParentheses(),
		tree.NewRightPadded[tree.Statement](Empty(), Space(" "), Markers()),
		IfElse(),
	)
}

func IfElse() *tree.IfElse {
	return tree.NewIfElse(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[tree.Statement](Empty(), Space(" "), Markers()),
	)
}

func Import() *tree.Import {
	return tree.NewImport(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewLeftPadded[bool](Space(" "), true, Markers()),
		FieldAccess(),
		tree.NewLeftPadded[*tree.Identifier](Space(" "), Identifier(), Markers()),
	)
}

func InstanceOf() *tree.InstanceOf {
	return tree.NewInstanceOf(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[tree.Expression](Ident("x"), Space(" "), Markers()),
		Ident("x"),
		Ident("x"),
		SharedClass,
		Modifier(),
	)
}

func IntersectionType() *tree.IntersectionType {
	return tree.NewIntersectionType(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewContainer[tree.TypeTree](Space(""), []*tree.RightPadded[tree.TypeTree]{tree.NewRightPadded[tree.TypeTree](Ident("x"), Space(""), Markers())}, Markers()),
	)
}

func Label() *tree.Label {
	return tree.NewLabel(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[*tree.Identifier](Identifier(), Space(" "), Markers()),
		Empty(),
	)
}

func Lambda() *tree.Lambda {
	return tree.NewLambda(
		uuid.New(),
		Space(" "),
		Markers(),
		LambdaParameters(),
		Space(" "),
		Ident("x"),
		SharedClass,
	)
}

func LambdaParameters() *tree.LambdaParameters {
	return tree.NewLambdaParameters(
		uuid.New(),
		Space(" "),
		Markers(),
		true,
		[]*tree.RightPadded[tree.J]{tree.NewRightPadded[tree.J](Ident("x"), Space(" "), Markers())},
	)
}

func Literal() *tree.Literal {
	return tree.NewLiteral(
		uuid.New(),
		Space(" "),
		Markers(),
		int32(42),
		"v",
		UnicodeEscapes(),
		SharedClass,
	)
}

func MemberReference() *tree.MemberReference {
	return tree.NewMemberReference(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[tree.Expression](Ident("x"), Space(" "), Markers()),
		tree.NewContainer[tree.Expression](Space(""), []*tree.RightPadded[tree.Expression]{tree.NewRightPadded[tree.Expression](Ident("x"), Space(""), Markers())}, Markers()),
		tree.NewLeftPadded[*tree.Identifier](Space(" "), Identifier(), Markers()),
		SharedClass,
		MethodType(),
		VariableType(),
	)
}

func MethodDeclaration() *tree.MethodDeclaration {
	return tree.NewMethodDeclaration(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.Annotation{Annotation()},
		[]*tree.Modifier{Modifier()},
		TypeParameters(),
		Ident("x"),
		Identifier(),
		tree.NewContainer[tree.Statement](Space(""), []*tree.RightPadded[tree.Statement]{tree.NewRightPadded[tree.Statement](Empty(), Space(""), Markers())}, Markers()),
		tree.NewContainer[tree.NameTree](Space(""), []*tree.RightPadded[tree.NameTree]{tree.NewRightPadded[tree.NameTree](Ident("x"), Space(""), Markers())}, Markers()),
		Block(),
		tree.NewLeftPadded[tree.Expression](Space(" "), Ident("x"), Markers()),
		MethodType(),
	)
}

func MethodInvocation() *tree.MethodInvocation {
	return tree.NewMethodInvocation(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[tree.Expression](Ident("x"), Space(" "), Markers()),
		tree.NewContainer[tree.Expression](Space(""), []*tree.RightPadded[tree.Expression]{tree.NewRightPadded[tree.Expression](Ident("x"), Space(""), Markers())}, Markers()),
		Identifier(),
		tree.NewContainer[tree.Expression](Space(""), []*tree.RightPadded[tree.Expression]{tree.NewRightPadded[tree.Expression](Ident("x"), Space(""), Markers())}, Markers()),
		MethodType(),
	)
}

func Modifier() *tree.Modifier {
	return tree.NewModifier(
		uuid.New(),
		Space(" "),
		Markers(),
		"v",
		tree.ModifierDefault,
		[]*tree.Annotation{Annotation()},
	)
}

func MultiCatch() *tree.MultiCatch {
	return tree.NewMultiCatch(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.RightPadded[tree.NameTree]{tree.NewRightPadded[tree.NameTree](Ident("x"), Space(" "), Markers())},
	)
}

func NamedVariable() *tree.NamedVariable {
	return tree.NewNamedVariable(
		uuid.New(),
		Space(" "),
		Markers(),
		Identifier(),
		[]*tree.LeftPadded[*tree.Space]{tree.NewLeftPadded[*tree.Space](Space(" "), Space("  "), Markers())},
		tree.NewLeftPadded[tree.Expression](Space(" "), Ident("x"), Markers()),
		VariableType(),
	)
}

func NewArray() *tree.NewArray {
	return tree.NewNewArray(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		[]*tree.ArrayDimension{ArrayDimension()},
		tree.NewContainer[tree.Expression](Space(""), []*tree.RightPadded[tree.Expression]{tree.NewRightPadded[tree.Expression](Ident("x"), Space(""), Markers())}, Markers()),
		SharedClass,
	)
}

func NewClass() *tree.NewClass {
	return tree.NewNewClass(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[tree.Expression](Ident("x"), Space(" "), Markers()),
		Space(" "),
		Ident("x"),
		tree.NewContainer[tree.Expression](Space(""), []*tree.RightPadded[tree.Expression]{tree.NewRightPadded[tree.Expression](Ident("x"), Space(""), Markers())}, Markers()),
		Block(),
		MethodType(),
	)
}

func NullableType() *tree.NullableType {
	return tree.NewNullableType(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.Annotation{Annotation()},
		tree.NewRightPadded[tree.TypeTree](Ident("x"), Space(" "), Markers()),
	)
}

func Package() *tree.Package {
	return tree.NewPackage(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		[]*tree.Annotation{Annotation()},
	)
}

func ParameterizedType() *tree.ParameterizedType {
	return tree.NewParameterizedType(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		tree.NewContainer[tree.Expression](Space(""), []*tree.RightPadded[tree.Expression]{tree.NewRightPadded[tree.Expression](Ident("x"), Space(""), Markers())}, Markers()),
		SharedClass,
	)
}

func Parentheses() *tree.Parentheses {
	return tree.NewParentheses(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewRightPadded[tree.J](Ident("x"), Space(" "), Markers()),
	)
}

func ParenthesizedTypeTree() *tree.ParenthesizedTypeTree {
	return tree.NewParenthesizedTypeTree(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.Annotation{Annotation()},
		Parentheses(),
	)
}

func Primitive() *tree.Primitive {
	return tree.NewPrimitive(
		uuid.New(),
		Space(" "),
		Markers(),
		SharedClass,
	)
}

func Return() *tree.Return {
	return tree.NewReturn(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
	)
}

func Switch() *tree.Switch {
	return tree.NewSwitch(
		uuid.New(),
		Space(" "),
		Markers(),
		ControlParentheses(),
		Block(),
	)
}

func SwitchExpression() *tree.SwitchExpression {
	return tree.NewSwitchExpression(
		uuid.New(),
		Space(" "),
		Markers(),
		ControlParentheses(),
		Block(),
		SharedClass,
	)
}

func Synchronized() *tree.Synchronized {
	return tree.NewSynchronized(
		uuid.New(),
		Space(" "),
		Markers(),
		ControlParentheses(),
		Block(),
	)
}

func Ternary() *tree.Ternary {
	return tree.NewTernary(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		tree.NewLeftPadded[tree.Expression](Space(" "), Ident("x"), Markers()),
		tree.NewLeftPadded[tree.Expression](Space(" "), Ident("x"), Markers()),
		SharedClass,
	)
}

func Throw() *tree.Throw {
	return tree.NewThrow(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
	)
}

func Try() *tree.Try {
	return tree.NewTry(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewContainer[*tree.TryResource](Space(""), []*tree.RightPadded[*tree.TryResource]{tree.NewRightPadded[*tree.TryResource](TryResource(), Space(""), Markers())}, Markers()),
		Block(),
		[]*tree.TryCatch{TryCatch()},
		tree.NewLeftPadded[*tree.Block](Space(" "), Block(), Markers()),
	)
}

func TryCatch() *tree.TryCatch {
	return tree.NewTryCatch(
		uuid.New(),
		Space(" "),
		Markers(),
		ControlParentheses(),
		Block(),
	)
}

func TryResource() *tree.TryResource {
	return tree.NewTryResource(
		uuid.New(),
		Space(" "),
		Markers(),
		Ident("x"),
		true,
	)
}

func TypeCast() *tree.TypeCast {
	return tree.NewTypeCast(
		uuid.New(),
		Space(" "),
		Markers(),
		ControlParentheses(),
		Ident("x"),
	)
}

func TypeParameter() *tree.TypeParameter {
	return tree.NewTypeParameter(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.Annotation{Annotation()},
		[]*tree.Modifier{Modifier()},
		Ident("x"),
		tree.NewContainer[tree.TypeTree](Space(""), []*tree.RightPadded[tree.TypeTree]{tree.NewRightPadded[tree.TypeTree](Ident("x"), Space(""), Markers())}, Markers()),
	)
}

func TypeParameters() *tree.TypeParameters {
	return tree.NewTypeParameters(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.Annotation{Annotation()},
		[]*tree.RightPadded[*tree.TypeParameter]{tree.NewRightPadded[*tree.TypeParameter](TypeParameter(), Space(" "), Markers())},
	)
}

func Unary() *tree.Unary {
	return tree.NewUnary(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewLeftPadded[tree.UnaryOperator](Space(" "), tree.UnaryPreIncrement, Markers()),
		Ident("x"),
		SharedClass,
	)
}

func Unknown() *tree.Unknown {
	return tree.NewUnknown(
		uuid.New(),
		Space(" "),
		Markers(),
		UnknownSource(),
	)
}

func UnknownSource() *tree.UnknownSource {
	return tree.NewUnknownSource(
		uuid.New(),
		Space(" "),
		Markers(),
		"v",
	)
}

func VariableDeclarations() *tree.VariableDeclarations {
	return tree.NewVariableDeclarations(
		uuid.New(),
		Space(" "),
		Markers(),
		[]*tree.Annotation{Annotation()},
		[]*tree.Modifier{Modifier()},
		Ident("x"),
		Space(" "),
		[]*tree.LeftPadded[*tree.Space]{tree.NewLeftPadded[*tree.Space](Space(" "), Space("  "), Markers())},
		[]*tree.RightPadded[*tree.NamedVariable]{tree.NewRightPadded[*tree.NamedVariable](NamedVariable(), Space(" "), Markers())},
	)
}

func WhileLoop() *tree.WhileLoop {
	return tree.NewWhileLoop(
		uuid.New(),
		Space(" "),
		Markers(),
		ControlParentheses(),
		tree.NewRightPadded[tree.Statement](Empty(), Space(" "), Markers()),
	)
}

func Wildcard() *tree.Wildcard {
	return tree.NewWildcard(
		uuid.New(),
		Space(" "),
		Markers(),
		tree.NewLeftPadded[tree.WildcardBound](Space(" "), tree.WildcardExtends, Markers()),
		Ident("x"),
	)
}

func Yield() *tree.Yield {
	return tree.NewYield(
		uuid.New(),
		Space(" "),
		Markers(),
		true,
		Ident("x"),
	)
}

// All returns one populated sample of every node kind.
func All() []tree.J {
	return []tree.J{
		AnnotatedType(),
		Annotation(),
		ArrayAccess(),
		ArrayDimension(),
		ArrayType(),
		Assert(),
		Assignment(),
		AssignmentOperation(),
		Binary(),
		Block(),
		Break(),
		Case(),
		ClassDeclaration(),
		ClassDeclarationKind(),
		CompilationUnit(),
		Continue(),
		ControlParentheses(),
		DeconstructionPattern(),
		DoWhileLoop(),
		Empty(),
		EnumValue(),
		EnumValueSet(),
		Erroneous(),
		FieldAccess(),
		ForEachLoop(),
		ForEachLoopControl(),
		ForLoop(),
		ForLoopControl(),
		Identifier(),
		If(),
		IfElse(),
		Import(),
		InstanceOf(),
		IntersectionType(),
		Label(),
		Lambda(),
		LambdaParameters(),
		Literal(),
		MemberReference(),
		MethodDeclaration(),
		MethodInvocation(),
		Modifier(),
		MultiCatch(),
		NamedVariable(),
		NewArray(),
		NewClass(),
		NullableType(),
		Package(),
		ParameterizedType(),
		Parentheses(),
		ParenthesizedTypeTree(),
		Primitive(),
		Return(),
		Switch(),
		SwitchExpression(),
		Synchronized(),
		Ternary(),
		Throw(),
		Try(),
		TryCatch(),
		TryResource(),
		TypeCast(),
		TypeParameter(),
		TypeParameters(),
		Unary(),
		Unknown(),
		UnknownSource(),
		VariableDeclarations(),
		WhileLoop(),
		Wildcard(),
		Yield(),
	}
}
