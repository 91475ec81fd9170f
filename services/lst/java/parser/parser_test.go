// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package parser_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java"
	"github.com/AleutianAI/lstsync/services/lst/java/parser"
	"github.com/AleutianAI/lstsync/services/lst/java/remote"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/java/types"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

const sample = `// header
package com.example;

import java.util.List;
import static java.util.Collections.*;

/** Doc. */
public final class Sample<T extends Comparable<T>> extends Base implements Runnable, Cloneable {
    private static final int MAX = 0x10;
    private List<String> names = new ArrayList<>();

    public Sample(int n) {
        super(n);
    }

    @Override
    public void run() {
        int total = 0;
        for (int i = 0; i < MAX; i++) { total += i; }
        if (total > 10 && !names.isEmpty()) {
            names.add("big\tdeal");
        } else {
            return;
        }
        while (total-- > 0) total = total / 2;
        Runnable r = () -> {};
        throw new IllegalStateException((String) names.get(0));
    }
}
`

func parse(t *testing.T, src string) *parser.Result {
	t.Helper()
	res, err := parser.New().Parse(context.Background(), []byte(src), "Sample.java")
	require.NoError(t, err)
	require.NotNil(t, res.CompilationUnit)
	return res
}

func TestParse_CompilationUnit(t *testing.T) {
	res := parse(t, sample)
	cu := res.CompilationUnit

	assert.Equal(t, "Sample.java", cu.SourcePath())
	assert.Equal(t, "UTF-8", cu.CharsetName())
	assert.False(t, cu.CharsetBomMarked())
	require.NotNil(t, cu.Checksum())
	assert.Equal(t, "SHA-256", cu.Checksum().Algorithm())
	assert.False(t, res.SyntaxErrors)

	t.Run("header comment is the unit prefix", func(t *testing.T) {
		require.Len(t, cu.Prefix().Comments(), 1)
		c := cu.Prefix().Comments()[0].(*tree.TextComment)
		assert.Equal(t, " header", c.Text())
		assert.Equal(t, "\n", c.Suffix())
	})

	t.Run("package and imports", func(t *testing.T) {
		pkg := cu.PackageDeclaration()
		require.NotNil(t, pkg)
		fa, ok := pkg.Expression().(*tree.FieldAccess)
		require.True(t, ok)
		assert.Equal(t, "example", fa.Name().SimpleName())
		assert.Equal(t, "com", fa.Target().(*tree.Identifier).SimpleName())

		imports := cu.Imports()
		require.Len(t, imports, 2)
		assert.False(t, imports[0].Static())
		assert.Equal(t, "List", imports[0].Qualid().Name().SimpleName())
		assert.True(t, imports[1].Static())
		assert.Equal(t, "*", imports[1].Qualid().Name().SimpleName())
		assert.Equal(t, " ", imports[1].Padding().Static().Before().Whitespace())
	})

	cls := cu.Classes()[0]
	t.Run("class header", func(t *testing.T) {
		require.Len(t, cls.Prefix().Comments(), 1)
		assert.True(t, cls.Prefix().Comments()[0].(*tree.TextComment).Multiline())
		require.Len(t, cls.Modifiers(), 2)
		assert.Equal(t, tree.ModifierPublic, cls.Modifiers()[0].ModifierType())
		assert.Equal(t, tree.ModifierFinal, cls.Modifiers()[1].ModifierType())
		assert.Equal(t, tree.ClassKindClass, cls.Kind().ClassKind())
		assert.Equal(t, "Sample", cls.Name().SimpleName())

		require.Len(t, cls.TypeParameters(), 1)
		bounds := cls.TypeParameters()[0].Bounds()
		require.Len(t, bounds, 1)
		assert.IsType(t, &tree.ParameterizedType{}, bounds[0])

		assert.Equal(t, "Base", cls.Extends().(*tree.Identifier).SimpleName())
		require.Len(t, cls.Implements(), 2)
	})

	members := cls.Body().Statements()
	require.Len(t, members, 4)

	t.Run("fields", func(t *testing.T) {
		max := members[0].(*tree.VariableDeclarations)
		assert.Len(t, max.Modifiers(), 3)
		assert.Same(t, types.Int, max.TypeExpression().(*tree.Primitive).Type())
		lit := max.Variables()[0].Initializer().(*tree.Literal)
		assert.Equal(t, int32(16), lit.Value())
		assert.Equal(t, "0x10", lit.ValueSource())

		names := members[1].(*tree.VariableDeclarations)
		nv := names.Variables()[0]
		assert.Equal(t, " ", nv.Padding().Initializer().Before().Whitespace())
		nc := nv.Initializer().(*tree.NewClass)
		diamond := nc.Clazz().(*tree.ParameterizedType)
		require.Len(t, diamond.TypeParameters(), 1)
		assert.IsType(t, &tree.Empty{}, diamond.TypeParameters()[0])
	})

	t.Run("constructor", func(t *testing.T) {
		ctor := members[2].(*tree.MethodDeclaration)
		assert.Nil(t, ctor.ReturnTypeExpression())
		require.Len(t, ctor.Parameters(), 1)
		call := ctor.Body().Statements()[0].(*tree.MethodInvocation)
		assert.Equal(t, "super", call.Name().SimpleName())
	})

	t.Run("method body", func(t *testing.T) {
		run := members[3].(*tree.MethodDeclaration)
		require.Len(t, run.LeadingAnnotations(), 1)
		assert.Same(t, types.Void, run.ReturnTypeExpression().(*tree.Primitive).Type())

		body := run.Body().Statements()
		require.Len(t, body, 6)
		assert.IsType(t, &tree.VariableDeclarations{}, body[0])
		assert.Equal(t, "for (int i = 0; i < MAX; i++) { total += i; }", body[1].(*tree.Unknown).Source().Text())

		cond := body[2].(*tree.If).IfCondition().Tree().(*tree.Binary)
		assert.Equal(t, tree.BinaryAnd, cond.Operator())
		assert.Equal(t, tree.UnaryNot, cond.Right().(*tree.Unary).Operator())

		loop := body[3].(*tree.WhileLoop)
		post := loop.Condition().Tree().(*tree.Binary).Left().(*tree.Unary)
		assert.Equal(t, tree.UnaryPostDecrement, post.Operator())
		assert.IsType(t, &tree.Assignment{}, loop.Body())

		lambda := body[4].(*tree.VariableDeclarations).Variables()[0].Initializer()
		assert.Equal(t, "() -> {}", lambda.(*tree.Unknown).Source().Text())

		thrown := body[5].(*tree.Throw).Exception().(*tree.NewClass)
		assert.IsType(t, &tree.TypeCast{}, thrown.Arguments()[0])
	})

	t.Run("kinds", func(t *testing.T) {
		counts := java.KindCounts(cu)
		assert.Equal(t, 2, counts["Unknown"])
		assert.Equal(t, 2, res.Unknown)
		assert.Equal(t, 1, counts["If"])
		assert.Equal(t, 1, counts["Return"])
		assert.Equal(t, 2, counts["MethodDeclaration"])
		assert.Equal(t, 1, counts["Annotation"])
	})

	t.Run("string escapes are decoded", func(t *testing.T) {
		var found bool
		for _, lit := range literals(cu) {
			if lit.ValueSource() == "\"big\\tdeal\"" {
				assert.Equal(t, "big\tdeal", lit.Value())
				found = true
			}
		}
		assert.True(t, found)
	})
}

type literalCollector struct {
	*java.BaseVisitor[int]
	found []*tree.Literal
}

func (c *literalCollector) VisitLiteral(l *tree.Literal, p int) tree.J {
	c.found = append(c.found, l)
	return c.BaseVisitor.VisitLiteral(l, p)
}

func literals(t tree.J) []*tree.Literal {
	c := &literalCollector{}
	c.BaseVisitor = java.NewBaseVisitor[int](c)
	c.Visit(t, 0)
	return c.found
}

func TestParse_TreeIsSyncable(t *testing.T) {
	cu := parse(t, sample).CompilationUnit

	v := java.NewBaseVisitor[int](nil)
	assert.Same(t, cu, v.Visit(cu, 0))

	ctx := context.Background()
	buf := rpc.NewBuffer()
	require.NoError(t, remote.NewSession().Send(ctx, buf, cu, nil))
	got, err := remote.NewSession().Receive(ctx, buf, nil)
	require.NoError(t, err)
	assert.Equal(t, cu, got)
}

func TestParse_Enum(t *testing.T) {
	src := "enum Color { RED, GREEN(2), BLUE { }, ; int v; }\n"
	cu := parse(t, src).CompilationUnit

	cls := cu.Classes()[0]
	assert.Equal(t, tree.ClassKindEnum, cls.Kind().ClassKind())
	stmts := cls.Body().Statements()
	require.Len(t, stmts, 2)

	set := stmts[0].(*tree.EnumValueSet)
	assert.True(t, set.TerminatedWithSemicolon())
	enums := set.Enums()
	require.Len(t, enums, 3)
	assert.Nil(t, enums[0].Initializer())
	require.NotNil(t, enums[1].Initializer())
	assert.Len(t, enums[1].Initializer().Arguments(), 1)
	assert.NotNil(t, enums[2].Initializer().Body())

	last := set.Padding().Enums()[2]
	_, ok := lst.FindMarker[*tree.TrailingComma](last.Markers())
	assert.True(t, ok)

	assert.IsType(t, &tree.VariableDeclarations{}, stmts[1])
}

func TestParse_Literals(t *testing.T) {
	cases := []struct {
		source string
		value  any
		typ    types.JavaType
	}{
		{"1_000", int32(1000), types.Int},
		{"0xFFFFFFFF", int32(-1), types.Int},
		{"07", int32(7), types.Int},
		{"0b101", int32(5), types.Int},
		{"10L", int64(10), types.Long},
		{"2147483647", int32(2147483647), types.Int},
		{"3000000000", nil, types.Int},
		{"0x100000000", nil, types.Int},
		{"0xFFFFFFFFFFFFFFFFL", int64(-1), types.Long},
		{"9223372036854775807L", int64(9223372036854775807), types.Long},
		{"18446744073709551615L", nil, types.Long},
		{"1.5f", float32(1.5), types.Float},
		{"2.5", 2.5, types.Double},
		{"'\\n'", "\n", types.Char},
		{"\"a\\u0041\"", "aA", types.String},
		{"true", true, types.Boolean},
		{"null", nil, types.Null},
	}
	for _, tc := range cases {
		t.Run(tc.source, func(t *testing.T) {
			cu := parse(t, "class A { Object f = "+tc.source+"; }").CompilationUnit
			vd := cu.Classes()[0].Body().Statements()[0].(*tree.VariableDeclarations)
			lit, ok := vd.Variables()[0].Initializer().(*tree.Literal)
			require.True(t, ok)
			assert.Equal(t, tc.value, lit.Value())
			assert.Same(t, tc.typ, lit.Type())
			assert.Equal(t, tc.source, lit.ValueSource())
		})
	}
}

func TestParse_NegatedMinimumLiterals(t *testing.T) {
	cases := []struct {
		source string
		value  any
	}{
		{"-2147483648", int32(-2147483648)},
		{"-9223372036854775808L", int64(-9223372036854775808)},
	}
	for _, tc := range cases {
		t.Run(tc.source, func(t *testing.T) {
			cu := parse(t, "class A { Object f = "+tc.source+"; }").CompilationUnit
			vd := cu.Classes()[0].Body().Statements()[0].(*tree.VariableDeclarations)
			u, ok := vd.Variables()[0].Initializer().(*tree.Unary)
			require.True(t, ok)
			assert.Equal(t, tree.UnaryNegative, u.Operator())
			lit, ok := u.Expression().(*tree.Literal)
			require.True(t, ok)
			assert.Equal(t, tc.value, lit.Value())
		})
	}
}

func TestParse_ByteOrderMark(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("class A {}")...)
	res, err := parser.New().Parse(context.Background(), src, "A.java")
	require.NoError(t, err)
	assert.True(t, res.CompilationUnit.CharsetBomMarked())
	assert.Equal(t, "A", res.CompilationUnit.Classes()[0].Name().SimpleName())
}

func TestParse_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("too large", func(t *testing.T) {
		_, err := parser.New(parser.WithMaxFileSize(4)).Parse(ctx, []byte("class A {}"), "A.java")
		assert.ErrorIs(t, err, parser.ErrFileTooLarge)
	})

	t.Run("not utf-8", func(t *testing.T) {
		_, err := parser.New().Parse(ctx, []byte{'c', 0xff, 0xfe}, "A.java")
		assert.ErrorIs(t, err, parser.ErrInvalidContent)
	})

	t.Run("statement outside a class", func(t *testing.T) {
		_, err := parser.New().Parse(ctx, []byte("package a;\n\nint x = 1;\n"), "A.java")
		require.Error(t, err)
		assert.ErrorIs(t, err, parser.ErrUnsupported)
		var pe *parser.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "A.java", pe.FilePath)
		assert.Equal(t, 3, pe.Line)
		assert.Equal(t, 1, pe.Column)
	})

	t.Run("canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := parser.New().Parse(canceled, []byte("class A {}"), "A.java")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "A.java")
	require.NoError(t, os.WriteFile(path, []byte("class A {}\n"), 0o644))

	res, err := parser.New().ParseFile(context.Background(), path)
	require.NoError(t, err)
	attrs := res.CompilationUnit.FileAttributes()
	require.NotNil(t, attrs)
	assert.True(t, attrs.Readable())
	assert.True(t, attrs.Writable())
	assert.False(t, attrs.Executable())
	assert.Equal(t, int64(11), attrs.Size())

	_, err = parser.New().ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.java"))
	assert.Error(t, err)
}
