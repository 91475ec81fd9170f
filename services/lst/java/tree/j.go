// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package tree is the Java node model: one immutable struct per node kind,
// the padding wrappers that carry formatting between children, and the
// location tags naming every formatting slot.
//
// Every WithX method returns its receiver when the argument is identical to
// the current value, so a rewrite that changes nothing allocates nothing and
// change detection reduces to pointer comparison. For lists that comparison
// is lst.SameSlice, so a slice returned by a getter is the node's own and
// must not be modified in place: build a new slice and pass that to the
// wither.
package tree

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/types"
)

// J is implemented by every Java node kind.
type J interface {
	lst.Tree

	// Prefix is the whitespace and comments before the node.
	Prefix() *Space
}

// Expression is a node usable where Java expects a value.
type Expression interface {
	J
	Type() types.JavaType
	isExpression()
}

// Statement is a node usable as a statement.
type Statement interface {
	J
	isStatement()
}

// TypedTree is a node that carries a resolved type.
type TypedTree interface {
	J
	Type() types.JavaType
}

// NameTree is a node usable as a name, such as an identifier or a
// qualified name.
type NameTree interface {
	TypedTree
	isNameTree()
}

// TypeTree is a node usable as a type expression.
type TypeTree interface {
	NameTree
	isTypeTree()
}

// Loop is implemented by the loop statements.
type Loop interface {
	Statement
	Body() Statement
}

// MethodCall is implemented by method invocations, constructor calls and
// method references.
type MethodCall interface {
	Expression
	MethodType() *types.Method
}

var (
	_ Loop       = (*DoWhileLoop)(nil)
	_ Loop       = (*ForEachLoop)(nil)
	_ Loop       = (*ForLoop)(nil)
	_ Loop       = (*WhileLoop)(nil)
	_ MethodCall = (*MethodInvocation)(nil)
	_ MethodCall = (*MemberReference)(nil)
	_ MethodCall = (*NewClass)(nil)
	_ TypeTree   = (*Identifier)(nil)
	_ NameTree   = (*NamedVariable)(nil)
	_ TypedTree  = (*ClassDeclaration)(nil)
)

// nilIfEmpty normalizes empty slices so an empty list and an absent list
// compare equal.
func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func typeOf(t J) types.JavaType {
	if lst.IsNil(t) {
		return nil
	}
	if tt, ok := t.(TypedTree); ok {
		return tt.Type()
	}
	return nil
}

func returnTypeOf(m *types.Method) types.JavaType {
	if m == nil {
		return nil
	}
	return m.ReturnType()
}

func methodAsType(m *types.Method) types.JavaType {
	if m == nil {
		return nil
	}
	return m
}

func variableTypeOf(v *types.Variable) types.JavaType {
	if v == nil {
		return nil
	}
	return v.Type()
}

type identified interface {
	ID() uuid.UUID
}

func locationName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Location(" + strconv.Itoa(i) + ")"
	}
	return names[i]
}
