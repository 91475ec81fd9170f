// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
)

func (b *builder) block(n *sitter.Node) *tree.Block {
	prefix := b.prefix(n)
	b.skip("{")
	var statements []*tree.RightPadded[tree.Statement]
	for _, c := range children(n) {
		if c.Type() == "{" || c.Type() == "}" {
			continue
		}
		statements = append(statements, b.statement(c))
	}
	end := b.skip("}")
	return tree.NewBlock(newID(), prefix, lst.EmptyMarkers,
		tree.NewRightPadded(false, tree.EmptySpace, lst.EmptyMarkers), statements, end)
}

func (b *builder) statement(n *sitter.Node) *tree.RightPadded[tree.Statement] {
	stmt, after := b.guardStatement(n, b.statementOf)
	return tree.NewRightPadded(stmt, after, lst.EmptyMarkers)
}

// body converts the statement controlled by an if, else or loop.
func (b *builder) body(n *sitter.Node) *tree.RightPadded[tree.Statement] {
	if n == nil {
		b.fail(nil, "missing statement body")
	}
	return b.statement(n)
}

// statementOf converts n and returns the formatting before its
// terminating semicolon, if it has one.
func (b *builder) statementOf(n *sitter.Node) (tree.Statement, *tree.Space) {
	switch n.Type() {
	case "block", "constructor_body":
		return b.block(n), tree.EmptySpace

	case ";":
		return emptyStatement(b.skip(";")), tree.EmptySpace

	case "local_variable_declaration":
		vd := b.variableDeclarations(n)
		return vd, b.skip(";")

	case "expression_statement":
		expr := b.expressionOf(named(n)[0])
		stmt, ok := expr.(tree.Statement)
		if !ok {
			b.fail(n, "%T is not a statement", expr)
		}
		return stmt, b.skip(";")

	case "explicit_constructor_invocation":
		return b.constructorCall(n), b.skip(";")

	case "return_statement":
		prefix := b.prefix(n)
		b.skip("return")
		var expr tree.Expression
		if values := named(n); len(values) > 0 {
			expr = b.expression(values[0])
		}
		return tree.NewReturn(newID(), prefix, lst.EmptyMarkers, expr), b.skip(";")

	case "throw_statement":
		prefix := b.prefix(n)
		b.skip("throw")
		expr := b.expression(named(n)[0])
		return tree.NewThrow(newID(), prefix, lst.EmptyMarkers, expr), b.skip(";")

	case "break_statement", "continue_statement":
		prefix := b.prefix(n)
		keyword := "break"
		if n.Type() == "continue_statement" {
			keyword = "continue"
		}
		b.skip(keyword)
		var label *tree.Identifier
		if id := childOfType(n, "identifier"); id != nil {
			label = b.identifier(id)
		}
		after := b.skip(";")
		if keyword == "break" {
			return tree.NewBreak(newID(), prefix, lst.EmptyMarkers, label), after
		}
		return tree.NewContinue(newID(), prefix, lst.EmptyMarkers, label), after

	case "if_statement":
		prefix := b.prefix(n)
		b.skip("if")
		cond := b.controlParentheses(n.ChildByFieldName("condition"))
		then := b.body(n.ChildByFieldName("consequence"))
		var elsePart *tree.IfElse
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			elsePrefix := b.skip("else")
			elsePart = tree.NewIfElse(newID(), elsePrefix, lst.EmptyMarkers, b.body(alt))
		}
		return tree.NewIf(newID(), prefix, lst.EmptyMarkers, cond, then, elsePart), tree.EmptySpace

	case "while_statement":
		prefix := b.prefix(n)
		b.skip("while")
		cond := b.controlParentheses(n.ChildByFieldName("condition"))
		body := b.body(n.ChildByFieldName("body"))
		return tree.NewWhileLoop(newID(), prefix, lst.EmptyMarkers, cond, body), tree.EmptySpace

	case "do_statement":
		prefix := b.prefix(n)
		b.skip("do")
		body := b.body(n.ChildByFieldName("body"))
		before := b.skip("while")
		cond := b.controlParentheses(n.ChildByFieldName("condition"))
		loop := tree.NewDoWhileLoop(newID(), prefix, lst.EmptyMarkers, body,
			tree.NewLeftPadded(before, cond, lst.EmptyMarkers))
		return loop, b.skip(";")

	case "assert_statement":
		prefix := b.prefix(n)
		b.skip("assert")
		exprs := named(n)
		cond := b.expression(exprs[0])
		var detail *tree.LeftPadded[tree.Expression]
		if len(exprs) > 1 {
			before := b.skip(":")
			detail = tree.NewLeftPadded(before, b.expression(exprs[1]), lst.EmptyMarkers)
		}
		return tree.NewAssert(newID(), prefix, lst.EmptyMarkers, cond, detail), b.skip(";")

	case "labeled_statement":
		prefix := b.prefix(n)
		label := b.identifier(childOfType(n, "identifier"))
		colon := b.skip(":")
		inner := named(n)
		stmt, after := b.statementOf(inner[len(inner)-1])
		if !after.IsEmpty() {
			b.fail(n, "labeled statement with space before its semicolon")
		}
		return tree.NewLabel(newID(), prefix, lst.EmptyMarkers,
			tree.NewRightPadded(label, colon, lst.EmptyMarkers), stmt), tree.EmptySpace
	}
	if _, ok := classKinds[n.Type()]; ok {
		return b.classDeclaration(n), tree.EmptySpace
	}
	b.fail(n, "unsupported statement %s", n.Type())
	return nil, nil
}

// controlParentheses converts a parenthesized condition.
func (b *builder) controlParentheses(n *sitter.Node) *tree.ControlParentheses {
	if n == nil {
		b.fail(nil, "missing condition")
	}
	prefix := b.prefix(n)
	b.skip("(")
	inner := b.expression(named(n)[0])
	after := b.skip(")")
	return tree.NewControlParentheses(newID(), prefix, lst.EmptyMarkers,
		tree.NewRightPadded[tree.J](inner, after, lst.EmptyMarkers))
}

// constructorCall converts this(...) and super(...) into an invocation
// named by the keyword.
func (b *builder) constructorCall(n *sitter.Node) *tree.MethodInvocation {
	if n.ChildByFieldName("object") != nil || childOfType(n, "type_arguments") != nil {
		b.fail(n, "qualified constructor calls are not supported")
	}
	prefix := b.prefix(n)
	name := b.identifier(n.ChildByFieldName("constructor"))
	args := b.arguments(n.ChildByFieldName("arguments"))
	return tree.NewMethodInvocation(newID(), prefix, lst.EmptyMarkers, nil, nil, name, args, nil)
}
