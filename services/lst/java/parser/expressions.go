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
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/java/types"
)

var binaryOperators = map[string]tree.BinaryOperator{
	"+":   tree.BinaryAddition,
	"-":   tree.BinarySubtraction,
	"*":   tree.BinaryMultiplication,
	"/":   tree.BinaryDivision,
	"%":   tree.BinaryModulo,
	"<":   tree.BinaryLessThan,
	">":   tree.BinaryGreaterThan,
	"<=":  tree.BinaryLessThanOrEqual,
	">=":  tree.BinaryGreaterThanOrEqual,
	"==":  tree.BinaryEqual,
	"!=":  tree.BinaryNotEqual,
	"&":   tree.BinaryBitAnd,
	"|":   tree.BinaryBitOr,
	"^":   tree.BinaryBitXor,
	"<<":  tree.BinaryLeftShift,
	">>":  tree.BinaryRightShift,
	">>>": tree.BinaryUnsignedRightShift,
	"||":  tree.BinaryOr,
	"&&":  tree.BinaryAnd,
}

var assignmentOperators = map[string]tree.AssignmentOperator{
	"+=":   tree.AssignAddition,
	"-=":   tree.AssignSubtraction,
	"*=":   tree.AssignMultiplication,
	"/=":   tree.AssignDivision,
	"%=":   tree.AssignModulo,
	"&=":   tree.AssignBitAnd,
	"|=":   tree.AssignBitOr,
	"^=":   tree.AssignBitXor,
	"<<=":  tree.AssignLeftShift,
	">>=":  tree.AssignRightShift,
	">>>=": tree.AssignUnsignedRightShift,
}

var unaryOperators = map[string]tree.UnaryOperator{
	"+": tree.UnaryPositive,
	"-": tree.UnaryNegative,
	"~": tree.UnaryComplement,
	"!": tree.UnaryNot,
}

// expression converts n, keeping it as an Unknown when it cannot.
func (b *builder) expression(n *sitter.Node) tree.Expression {
	if n == nil {
		b.fail(nil, "missing expression")
	}
	return guard(b, n, b.expressionOf)
}

func (b *builder) expressionOf(n *sitter.Node) tree.Expression {
	switch n.Type() {
	case "identifier", "this", "super":
		return b.identifier(n)

	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal",
		"decimal_floating_point_literal", "hex_floating_point_literal",
		"string_literal", "text_block", "character_literal", "true", "false", "null_literal":
		return b.literal(n)

	case "annotation", "marker_annotation":
		return b.annotation(n)

	case "parenthesized_expression":
		prefix := b.prefix(n)
		b.skip("(")
		inner := b.expression(named(n)[0])
		after := b.skip(")")
		return tree.NewParentheses(newID(), prefix, lst.EmptyMarkers, tree.NewRightPadded[tree.J](inner, after, lst.EmptyMarkers))

	case "binary_expression":
		prefix := b.prefix(n)
		left := b.expression(n.ChildByFieldName("left"))
		opText := b.text(n.ChildByFieldName("operator"))
		op, ok := binaryOperators[opText]
		if !ok {
			b.fail(n, "unknown operator %q", opText)
		}
		before := b.skip(opText)
		right := b.expression(n.ChildByFieldName("right"))
		return tree.NewBinary(newID(), prefix, lst.EmptyMarkers, left,
			tree.NewLeftPadded(before, op, lst.EmptyMarkers), right, nil)

	case "unary_expression":
		prefix := b.prefix(n)
		opText := b.text(n.ChildByFieldName("operator"))
		op, ok := unaryOperators[opText]
		if !ok {
			b.fail(n, "unknown operator %q", opText)
		}
		before := b.skip(opText)
		operand := b.expression(n.ChildByFieldName("operand"))
		return tree.NewUnary(newID(), prefix, lst.EmptyMarkers, tree.NewLeftPadded(before, op, lst.EmptyMarkers), operand, nil)

	case "update_expression":
		return b.update(n)

	case "assignment_expression":
		prefix := b.prefix(n)
		left := b.expression(n.ChildByFieldName("left"))
		opText := b.text(n.ChildByFieldName("operator"))
		before := b.skip(opText)
		right := b.expression(n.ChildByFieldName("right"))
		if opText == "=" {
			return tree.NewAssignment(newID(), prefix, lst.EmptyMarkers, left,
				tree.NewLeftPadded(before, right, lst.EmptyMarkers), nil)
		}
		op, ok := assignmentOperators[opText]
		if !ok {
			b.fail(n, "unknown operator %q", opText)
		}
		return tree.NewAssignmentOperation(newID(), prefix, lst.EmptyMarkers, left,
			tree.NewLeftPadded(before, op, lst.EmptyMarkers), right, nil)

	case "ternary_expression":
		prefix := b.prefix(n)
		cond := b.expression(n.ChildByFieldName("condition"))
		question := b.skip("?")
		truePart := b.expression(n.ChildByFieldName("consequence"))
		colon := b.skip(":")
		falsePart := b.expression(n.ChildByFieldName("alternative"))
		return tree.NewTernary(newID(), prefix, lst.EmptyMarkers, cond,
			tree.NewLeftPadded(question, truePart, lst.EmptyMarkers),
			tree.NewLeftPadded(colon, falsePart, lst.EmptyMarkers), nil)

	case "method_invocation":
		prefix := b.prefix(n)
		var sel *tree.RightPadded[tree.Expression]
		if obj := n.ChildByFieldName("object"); obj != nil {
			target := b.expression(obj)
			sel = tree.NewRightPadded(target, b.skip("."), lst.EmptyMarkers)
		}
		name := b.identifier(n.ChildByFieldName("name"))
		args := b.arguments(n.ChildByFieldName("arguments"))
		return tree.NewMethodInvocation(newID(), prefix, lst.EmptyMarkers, sel, nil, name, args, nil)

	case "field_access":
		prefix := b.prefix(n)
		target := b.expression(n.ChildByFieldName("object"))
		dot := b.skip(".")
		name := b.identifier(n.ChildByFieldName("field"))
		return tree.NewFieldAccess(newID(), prefix, lst.EmptyMarkers, target,
			tree.NewLeftPadded(dot, name, lst.EmptyMarkers), nil)

	case "object_creation_expression":
		prefix := b.prefix(n)
		newKeyword := b.skip("new")
		clazz := b.typeTree(n.ChildByFieldName("type"))
		args := b.arguments(n.ChildByFieldName("arguments"))
		var body *tree.Block
		if cb := childOfType(n, "class_body"); cb != nil {
			body = b.classBody(cb)
		}
		return tree.NewNewClass(newID(), prefix, lst.EmptyMarkers, nil, newKeyword, clazz, args, body, nil)

	case "cast_expression":
		prefix := b.prefix(n)
		open := b.skip("(")
		clazz := b.typeTree(n.ChildByFieldName("type"))
		closing := b.skip(")")
		value := b.expression(n.ChildByFieldName("value"))
		cp := tree.NewControlParentheses(newID(), open, lst.EmptyMarkers, tree.NewRightPadded[tree.J](clazz, closing, lst.EmptyMarkers))
		return tree.NewTypeCast(newID(), prefix, lst.EmptyMarkers, cp, value)

	case "instanceof_expression":
		if n.ChildByFieldName("name") != nil || n.ChildByFieldName("pattern") != nil {
			b.fail(n, "instanceof patterns are not supported")
		}
		prefix := b.prefix(n)
		left := b.expression(n.ChildByFieldName("left"))
		before := b.skip("instanceof")
		clazz := b.typeTree(n.ChildByFieldName("right"))
		return tree.NewInstanceOf(newID(), prefix, lst.EmptyMarkers,
			tree.NewRightPadded(left, before, lst.EmptyMarkers), clazz, nil, nil, nil)

	case "array_access":
		prefix := b.prefix(n)
		indexed := b.expression(n.ChildByFieldName("array"))
		dimPrefix := b.skip("[")
		index := b.expression(n.ChildByFieldName("index"))
		dim := tree.NewArrayDimension(newID(), dimPrefix, lst.EmptyMarkers, tree.NewRightPadded(index, b.skip("]"), lst.EmptyMarkers))
		return tree.NewArrayAccess(newID(), prefix, lst.EmptyMarkers, indexed, dim, nil)

	case "array_creation_expression":
		return b.newArray(n)

	case "array_initializer":
		prefix := b.prefix(n)
		return tree.NewNewArray(newID(), prefix, lst.EmptyMarkers, nil, nil, b.arrayInitializer(n), nil)
	}
	b.fail(n, "unsupported expression %s", n.Type())
	return nil
}

func (b *builder) update(n *sitter.Node) tree.Expression {
	prefix := b.prefix(n)
	cs := children(n)
	if len(cs) != 2 {
		b.fail(n, "malformed update expression")
	}
	if !cs[0].IsNamed() {
		opText := b.text(cs[0])
		op := tree.UnaryPreIncrement
		if opText == "--" {
			op = tree.UnaryPreDecrement
		}
		before := b.skip(opText)
		operand := b.expression(cs[1])
		return tree.NewUnary(newID(), prefix, lst.EmptyMarkers, tree.NewLeftPadded(before, op, lst.EmptyMarkers), operand, nil)
	}
	operand := b.expression(cs[0])
	opText := b.text(cs[1])
	op := tree.UnaryPostIncrement
	if opText == "--" {
		op = tree.UnaryPostDecrement
	}
	before := b.skip(opText)
	return tree.NewUnary(newID(), prefix, lst.EmptyMarkers, tree.NewLeftPadded(before, op, lst.EmptyMarkers), operand, nil)
}

func (b *builder) arguments(n *sitter.Node) *tree.Container[tree.Expression] {
	if n == nil {
		b.fail(nil, "missing argument list")
	}
	before := b.skip("(")
	return tree.NewContainer(before, padded(b, named(n), ",", ")", b.expression, emptyExpression), lst.EmptyMarkers)
}

func (b *builder) newArray(n *sitter.Node) *tree.NewArray {
	prefix := b.prefix(n)
	b.skip("new")
	typ := b.typeTree(n.ChildByFieldName("type"))
	var dims []*tree.ArrayDimension
	var initializer *tree.Container[tree.Expression]
	for _, c := range named(n) {
		switch c.Type() {
		case "dimensions_expr":
			dimPrefix := b.skip("[")
			index := b.expression(named(c)[0])
			dims = append(dims, tree.NewArrayDimension(newID(), dimPrefix, lst.EmptyMarkers,
				tree.NewRightPadded(index, b.skip("]"), lst.EmptyMarkers)))
		case "dimensions":
			for range childrenOfType(c, "[") {
				dimPrefix := b.skip("[")
				inside := emptyExpression(b.skip("]"))
				dims = append(dims, tree.NewArrayDimension(newID(), dimPrefix, lst.EmptyMarkers,
					tree.NewRightPadded(inside, tree.EmptySpace, lst.EmptyMarkers)))
			}
		case "array_initializer":
			initializer = b.arrayInitializer(c)
		}
	}
	return tree.NewNewArray(newID(), prefix, lst.EmptyMarkers, typ, dims, initializer, nil)
}

func (b *builder) arrayInitializer(n *sitter.Node) *tree.Container[tree.Expression] {
	before := b.skip("{")
	return tree.NewContainer(before, padded(b, named(n), ",", "}", b.expression, emptyExpression), lst.EmptyMarkers)
}

// typeTree converts a type expression, keeping it as an Unknown when it
// cannot.
func (b *builder) typeTree(n *sitter.Node) tree.TypeTree {
	if n == nil {
		b.fail(nil, "missing type")
	}
	return guard(b, n, b.typeTreeOf)
}

func (b *builder) nameTree(n *sitter.Node) tree.NameTree { return b.typeTree(n) }

func (b *builder) typeTreeOf(n *sitter.Node) tree.TypeTree {
	switch n.Type() {
	case "integral_type", "floating_point_type", "boolean_type", "void_type":
		prefix := b.prefix(n)
		keyword := b.consume(n)
		p, ok := types.PrimitiveByKeyword(keyword)
		if !ok {
			b.fail(n, "unknown primitive %q", keyword)
		}
		return tree.NewPrimitive(newID(), prefix, lst.EmptyMarkers, p)

	case "type_identifier", "identifier":
		return b.identifier(n)

	case "scoped_type_identifier", "scoped_identifier":
		prefix := b.prefix(n)
		cs := named(n)
		target, ok := b.typeTree(cs[0]).(tree.Expression)
		if !ok {
			b.fail(n, "qualifier is not an expression")
		}
		dot := b.skip(".")
		name := b.identifier(cs[len(cs)-1])
		return tree.NewFieldAccess(newID(), prefix, lst.EmptyMarkers, target,
			tree.NewLeftPadded(dot, name, lst.EmptyMarkers), nil)

	case "generic_type":
		prefix := b.prefix(n)
		cs := named(n)
		if len(cs) != 2 {
			b.fail(n, "malformed generic type")
		}
		clazz := b.typeTree(cs[0])
		before := b.skip("<")
		params := padded(b, named(cs[1]), ",", ">", b.typeArgument, emptyExpression)
		return tree.NewParameterizedType(newID(), prefix, lst.EmptyMarkers, clazz,
			tree.NewContainer(before, params, lst.EmptyMarkers), nil)

	case "array_type":
		prefix := b.prefix(n)
		t := b.typeTree(n.ChildByFieldName("element"))
		dims := n.ChildByFieldName("dimensions")
		if dims == nil {
			b.fail(n, "array type without dimensions")
		}
		brackets := childrenOfType(dims, "[")
		for i := range brackets {
			before := b.skip("[")
			dim := tree.NewLeftPadded(before, b.skip("]"), lst.EmptyMarkers)
			p := tree.EmptySpace
			if i == len(brackets)-1 {
				p = prefix
			}
			t = tree.NewArrayType(newID(), p, lst.EmptyMarkers, t, nil, dim, nil)
		}
		return t
	}
	b.fail(n, "unsupported type %s", n.Type())
	return nil
}

func (b *builder) typeArgument(n *sitter.Node) tree.Expression {
	return guard(b, n, func(n *sitter.Node) tree.Expression {
		if n.Type() != "wildcard" {
			e, ok := b.typeTree(n).(tree.Expression)
			if !ok {
				b.fail(n, "type argument is not an expression")
			}
			return e
		}
		var keyword string
		var bounded *sitter.Node
		for _, c := range children(n) {
			switch {
			case isAnnotation(c):
				b.fail(c, "annotated wildcards are not supported")
			case c.Type() == "extends" || c.Type() == "super":
				keyword = c.Type()
			case c.IsNamed():
				bounded = c
			}
		}
		prefix := b.prefix(n)
		b.skip("?")
		if keyword == "" {
			return tree.NewWildcard(newID(), prefix, lst.EmptyMarkers, nil, nil)
		}
		bound := tree.WildcardExtends
		if keyword == "super" {
			bound = tree.WildcardSuper
		}
		before := b.skip(keyword)
		return tree.NewWildcard(newID(), prefix, lst.EmptyMarkers,
			tree.NewLeftPadded(before, bound, lst.EmptyMarkers), b.nameTree(bounded))
	})
}

func (b *builder) literal(n *sitter.Node) *tree.Literal {
	prefix := b.prefix(n)
	source := b.consume(n)
	value, typ := literalValue(n.Type(), source)
	return tree.NewLiteral(newID(), prefix, lst.EmptyMarkers, value, source, nil, typ)
}

// literalValue returns the Go value of a literal with its primitive type.
// A numeric literal out of range keeps a nil value.
func literalValue(kind, source string) (any, types.JavaType) {
	switch kind {
	case "true":
		return true, types.Boolean
	case "false":
		return false, types.Boolean
	case "null_literal":
		return nil, types.Null
	case "character_literal":
		return unescape(strings.TrimSuffix(strings.TrimPrefix(source, "'"), "'")), types.Char
	case "string_literal":
		return unescape(strings.TrimSuffix(strings.TrimPrefix(source, "\""), "\"")), types.String
	case "text_block":
		body := strings.TrimSuffix(strings.TrimPrefix(source, "\"\"\""), "\"\"\"")
		if nl := strings.IndexByte(body, '\n'); nl >= 0 {
			body = body[nl+1:]
		}
		return unescape(body), types.String
	case "decimal_floating_point_literal", "hex_floating_point_literal":
		clean := strings.ReplaceAll(source, "_", "")
		switch clean[len(clean)-1] {
		case 'f', 'F':
			v, err := strconv.ParseFloat(clean[:len(clean)-1], 32)
			if err != nil {
				return nil, types.Float
			}
			return float32(v), types.Float
		case 'd', 'D':
			clean = clean[:len(clean)-1]
		}
		v, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return nil, types.Double
		}
		return v, types.Double
	}

	clean := strings.ReplaceAll(source, "_", "")
	long := strings.HasSuffix(clean, "l") || strings.HasSuffix(clean, "L")
	clean = strings.TrimRight(clean, "lL")
	v, base, ok := parseInteger(clean)
	// Hex, octal and binary literals may fill every bit. A decimal literal
	// may reach the magnitude of the minimum value, which only compiles
	// under unary minus and then denotes that minimum.
	if long {
		if !ok || (base == 10 && v > 1<<63) {
			return nil, types.Long
		}
		return int64(v), types.Long
	}
	if !ok || v > 1<<32-1 || (base == 10 && v > 1<<31) {
		return nil, types.Int
	}
	return int32(uint32(v)), types.Int
}

func parseInteger(s string) (uint64, int, bool) {
	base := 10
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		s, base = s[2:], 2
	case len(s) > 1 && s[0] == '0':
		s, base = s[1:], 8
	}
	v, err := strconv.ParseUint(s, base, 64)
	return v, base, err == nil
}

// unescape decodes the escape sequences of a string or character literal.
// Unrecognized escapes are kept as written.
func unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			out.WriteByte(c)
			continue
		}
		i++
		switch e := s[i]; e {
		case 'b':
			out.WriteByte('\b')
		case 't':
			out.WriteByte('\t')
		case 'n':
			out.WriteByte('\n')
		case 'f':
			out.WriteByte('\f')
		case 'r':
			out.WriteByte('\r')
		case 's':
			out.WriteByte(' ')
		case '"', '\'', '\\':
			out.WriteByte(e)
		case 'u':
			j := i
			for j < len(s) && s[j] == 'u' {
				j++
			}
			if j+4 <= len(s) {
				if r, err := strconv.ParseUint(s[j:j+4], 16, 32); err == nil {
					out.WriteRune(rune(r))
					i = j + 3
					continue
				}
			}
			out.WriteString(s[i-1 : i+1])
		default:
			if e < '0' || e > '7' {
				out.WriteByte('\\')
				out.WriteByte(e)
				continue
			}
			j, limit := i, i+3
			if e > '3' {
				limit = i + 2
			}
			for j < len(s) && j < limit && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			r, _ := strconv.ParseUint(s[i:j], 8, 32)
			out.WriteRune(rune(r))
			i = j - 1
		}
	}
	return out.String()
}
