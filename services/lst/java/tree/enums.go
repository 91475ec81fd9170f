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

// BinaryOperator is the operator of a Binary.
type BinaryOperator string

const (
	BinaryAddition           BinaryOperator = "Addition"
	BinarySubtraction        BinaryOperator = "Subtraction"
	BinaryMultiplication     BinaryOperator = "Multiplication"
	BinaryDivision           BinaryOperator = "Division"
	BinaryModulo             BinaryOperator = "Modulo"
	BinaryLessThan           BinaryOperator = "LessThan"
	BinaryGreaterThan        BinaryOperator = "GreaterThan"
	BinaryLessThanOrEqual    BinaryOperator = "LessThanOrEqual"
	BinaryGreaterThanOrEqual BinaryOperator = "GreaterThanOrEqual"
	BinaryEqual              BinaryOperator = "Equal"
	BinaryNotEqual           BinaryOperator = "NotEqual"
	BinaryBitAnd             BinaryOperator = "BitAnd"
	BinaryBitOr              BinaryOperator = "BitOr"
	BinaryBitXor             BinaryOperator = "BitXor"
	BinaryLeftShift          BinaryOperator = "LeftShift"
	BinaryRightShift         BinaryOperator = "RightShift"
	BinaryUnsignedRightShift BinaryOperator = "UnsignedRightShift"
	BinaryOr                 BinaryOperator = "Or"
	BinaryAnd                BinaryOperator = "And"
)

// AssignmentOperator is the operator of an AssignmentOperation.
type AssignmentOperator string

const (
	AssignAddition           AssignmentOperator = "Addition"
	AssignSubtraction        AssignmentOperator = "Subtraction"
	AssignMultiplication     AssignmentOperator = "Multiplication"
	AssignDivision           AssignmentOperator = "Division"
	AssignModulo             AssignmentOperator = "Modulo"
	AssignBitAnd             AssignmentOperator = "BitAnd"
	AssignBitOr              AssignmentOperator = "BitOr"
	AssignBitXor             AssignmentOperator = "BitXor"
	AssignLeftShift          AssignmentOperator = "LeftShift"
	AssignRightShift         AssignmentOperator = "RightShift"
	AssignUnsignedRightShift AssignmentOperator = "UnsignedRightShift"
	AssignExponentiation     AssignmentOperator = "Exponentiation"
)

// UnaryOperator is the operator of a Unary.
type UnaryOperator string

const (
	UnaryPreIncrement  UnaryOperator = "PreIncrement"
	UnaryPreDecrement  UnaryOperator = "PreDecrement"
	UnaryPostIncrement UnaryOperator = "PostIncrement"
	UnaryPostDecrement UnaryOperator = "PostDecrement"
	UnaryPositive      UnaryOperator = "Positive"
	UnaryNegative      UnaryOperator = "Negative"
	UnaryComplement    UnaryOperator = "Complement"
	UnaryNot           UnaryOperator = "Not"
)

// ClassKind is the declaration keyword of a ClassDeclaration.
type ClassKind string

const (
	ClassKindClass      ClassKind = "Class"
	ClassKindEnum       ClassKind = "Enum"
	ClassKindInterface  ClassKind = "Interface"
	ClassKindAnnotation ClassKind = "Annotation"
	ClassKindRecord     ClassKind = "Record"
	ClassKindValue      ClassKind = "Value"
)

// ModifierType identifies a Modifier keyword.
type ModifierType string

const (
	ModifierDefault           ModifierType = "Default"
	ModifierPublic            ModifierType = "Public"
	ModifierProtected         ModifierType = "Protected"
	ModifierPrivate           ModifierType = "Private"
	ModifierAbstract          ModifierType = "Abstract"
	ModifierStatic            ModifierType = "Static"
	ModifierFinal             ModifierType = "Final"
	ModifierSealed            ModifierType = "Sealed"
	ModifierNonSealed         ModifierType = "NonSealed"
	ModifierTransient         ModifierType = "Transient"
	ModifierVolatile          ModifierType = "Volatile"
	ModifierSynchronized      ModifierType = "Synchronized"
	ModifierNative            ModifierType = "Native"
	ModifierStrictfp          ModifierType = "Strictfp"
	ModifierAsync             ModifierType = "Async"
	ModifierReified           ModifierType = "Reified"
	ModifierInline            ModifierType = "Inline"
	ModifierLanguageExtension ModifierType = "LanguageExtension"
)

// CaseType distinguishes "case x:" statements from "case x ->" rules.
type CaseType string

const (
	CaseStatement CaseType = "Statement"
	CaseRule      CaseType = "Rule"
)

// WildcardBound is the extends/super bound of a Wildcard.
type WildcardBound string

const (
	WildcardExtends WildcardBound = "Extends"
	WildcardSuper   WildcardBound = "Super"
)
