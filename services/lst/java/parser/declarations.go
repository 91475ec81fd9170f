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

var modifierTypes = map[string]tree.ModifierType{
	"default":      tree.ModifierDefault,
	"public":       tree.ModifierPublic,
	"protected":    tree.ModifierProtected,
	"private":      tree.ModifierPrivate,
	"abstract":     tree.ModifierAbstract,
	"static":       tree.ModifierStatic,
	"final":        tree.ModifierFinal,
	"sealed":       tree.ModifierSealed,
	"non-sealed":   tree.ModifierNonSealed,
	"transient":    tree.ModifierTransient,
	"volatile":     tree.ModifierVolatile,
	"synchronized": tree.ModifierSynchronized,
	"native":       tree.ModifierNative,
	"strictfp":     tree.ModifierStrictfp,
}

var classKinds = map[string]tree.ClassKind{
	"class_declaration":           tree.ClassKindClass,
	"interface_declaration":       tree.ClassKindInterface,
	"enum_declaration":            tree.ClassKindEnum,
	"record_declaration":          tree.ClassKindRecord,
	"annotation_type_declaration": tree.ClassKindAnnotation,
}

var classKeywords = map[tree.ClassKind]string{
	tree.ClassKindClass:      "class",
	tree.ClassKindInterface:  "interface",
	tree.ClassKindEnum:       "enum",
	tree.ClassKindRecord:     "record",
	tree.ClassKindAnnotation: "@interface",
}

func isAnnotation(n *sitter.Node) bool {
	return n.Type() == "annotation" || n.Type() == "marker_annotation"
}

func emptyExpression(s *tree.Space) tree.Expression {
	return tree.NewEmpty(newID(), s, lst.EmptyMarkers)
}

func emptyStatement(s *tree.Space) tree.Statement {
	return tree.NewEmpty(newID(), s, lst.EmptyMarkers)
}

func (b *builder) compilationUnit(root *sitter.Node, sourcePath string, bom bool, checksum *tree.Checksum) *tree.CompilationUnit {
	prefix := b.space(scanTrivia(b.src, 0))
	var (
		pkg     *tree.RightPadded[*tree.Package]
		imports []*tree.RightPadded[*tree.Import]
		classes []*tree.ClassDeclaration
	)
	for _, c := range children(root) {
		switch c.Type() {
		case "package_declaration":
			pkg = b.packageDeclaration(c)
		case "import_declaration":
			imports = append(imports, b.importDeclaration(c))
		default:
			if _, ok := classKinds[c.Type()]; !ok {
				b.fail(c, "%s is not supported at the top level", c.Type())
			}
			classes = append(classes, b.classDeclaration(c))
		}
	}
	eof := b.space(len(b.src))
	return tree.NewCompilationUnit(newID(), prefix, lst.EmptyMarkers, sourcePath, "UTF-8", bom,
		checksum, nil, pkg, imports, classes, eof)
}

func (b *builder) packageDeclaration(n *sitter.Node) *tree.RightPadded[*tree.Package] {
	prefix := b.prefix(n)
	var name *sitter.Node
	for _, c := range named(n) {
		if isAnnotation(c) {
			b.fail(c, "package annotations are not supported")
		}
		name = c
	}
	b.skip("package")
	expr := b.qualifiedName(name)
	after := b.skip(";")
	pkg := tree.NewPackage(newID(), prefix, lst.EmptyMarkers, expr, nil)
	return tree.NewRightPadded(pkg, after, lst.EmptyMarkers)
}

func (b *builder) importDeclaration(n *sitter.Node) *tree.RightPadded[*tree.Import] {
	prefix := b.prefix(n)
	b.skip("import")
	static := tree.NewLeftPadded(tree.EmptySpace, false, lst.EmptyMarkers)
	if b.peekWord("static") {
		static = tree.NewLeftPadded(b.skip("static"), true, lst.EmptyMarkers)
	}
	var qualid tree.Expression
	for _, c := range children(n) {
		switch c.Type() {
		case "identifier", "scoped_identifier":
			qualid = b.qualifiedName(c)
		case "asterisk", "*":
			dot := b.skip(".")
			star := b.identifier(c)
			qualid = tree.NewFieldAccess(newID(), tree.EmptySpace, lst.EmptyMarkers, qualid,
				tree.NewLeftPadded(dot, star, lst.EmptyMarkers), nil)
		}
	}
	fa, ok := qualid.(*tree.FieldAccess)
	if !ok {
		b.fail(n, "import of an unqualified name")
	}
	after := b.skip(";")
	return tree.NewRightPadded(tree.NewImport(newID(), prefix, lst.EmptyMarkers, static, fa, nil), after, lst.EmptyMarkers)
}

// qualifiedName converts a dotted name into nested field accesses.
func (b *builder) qualifiedName(n *sitter.Node) tree.Expression {
	if n == nil {
		b.fail(nil, "missing name")
	}
	switch n.Type() {
	case "identifier", "type_identifier", "this", "super":
		return b.identifier(n)
	case "scoped_identifier":
		prefix := b.prefix(n)
		target := b.qualifiedName(n.ChildByFieldName("scope"))
		dot := b.skip(".")
		name := b.identifier(n.ChildByFieldName("name"))
		return tree.NewFieldAccess(newID(), prefix, lst.EmptyMarkers, target,
			tree.NewLeftPadded(dot, name, lst.EmptyMarkers), nil)
	}
	b.fail(n, "%s is not a name", n.Type())
	return nil
}

func (b *builder) identifier(n *sitter.Node) *tree.Identifier {
	if n == nil {
		b.fail(nil, "missing identifier")
	}
	prefix := b.prefix(n)
	name := b.consume(n)
	return tree.NewIdentifier(newID(), prefix, lst.EmptyMarkers, nil, name, nil, nil)
}

// modifiers splits a modifiers node into the annotations before the first
// keyword, the keywords, and the annotations after the last keyword.
// Annotations between keywords belong to the keyword that follows them.
func (b *builder) modifiers(n *sitter.Node) (leading []*tree.Annotation, mods []*tree.Modifier, trailing []*tree.Annotation) {
	if n == nil {
		return nil, nil, nil
	}
	var pending []*tree.Annotation
	for _, c := range children(n) {
		if isAnnotation(c) {
			pending = append(pending, b.annotation(c))
			continue
		}
		keyword := b.text(c)
		typ, ok := modifierTypes[keyword]
		if !ok {
			b.fail(c, "unknown modifier %q", keyword)
		}
		var own []*tree.Annotation
		if len(mods) == 0 {
			leading = pending
		} else {
			own = pending
		}
		pending = nil
		prefix := b.prefix(c)
		b.consume(c)
		mods = append(mods, tree.NewModifier(newID(), prefix, lst.EmptyMarkers, keyword, typ, own))
	}
	if len(mods) == 0 {
		return pending, nil, nil
	}
	return leading, mods, pending
}

// annotate wraps a type in the annotations that followed the modifiers.
func annotate(annotations []*tree.Annotation, t tree.TypeTree) tree.TypeTree {
	if len(annotations) == 0 {
		return t
	}
	return tree.NewAnnotatedType(newID(), tree.EmptySpace, lst.EmptyMarkers, annotations, t)
}

func (b *builder) annotation(n *sitter.Node) *tree.Annotation {
	prefix := b.prefix(n)
	b.skip("@")
	typ, ok := b.qualifiedName(n.ChildByFieldName("name")).(tree.NameTree)
	if !ok {
		b.fail(n, "annotation name is not a type")
	}
	var args *tree.Container[tree.Expression]
	if list := n.ChildByFieldName("arguments"); list != nil {
		before := b.skip("(")
		args = tree.NewContainer(before, padded(b, named(list), ",", ")", b.annotationArgument, emptyExpression), lst.EmptyMarkers)
	}
	return tree.NewAnnotation(newID(), prefix, lst.EmptyMarkers, typ, args)
}

func (b *builder) annotationArgument(n *sitter.Node) tree.Expression {
	return guard(b, n, func(n *sitter.Node) tree.Expression {
		if n.Type() != "element_value_pair" {
			return b.expressionOf(n)
		}
		prefix := b.prefix(n)
		key := b.identifier(n.ChildByFieldName("key"))
		before := b.skip("=")
		value := b.expression(n.ChildByFieldName("value"))
		return tree.NewAssignment(newID(), prefix, lst.EmptyMarkers, key,
			tree.NewLeftPadded(before, value, lst.EmptyMarkers), nil)
	})
}

func (b *builder) classDeclaration(n *sitter.Node) *tree.ClassDeclaration {
	classKind := classKinds[n.Type()]
	prefix := b.prefix(n)
	leading, mods, trailing := b.modifiers(childOfType(n, "modifiers"))
	kindPrefix := b.skip(classKeywords[classKind])
	kind := tree.NewClassDeclarationKind(newID(), kindPrefix, lst.EmptyMarkers, trailing, classKind)
	name := b.identifier(n.ChildByFieldName("name"))

	var (
		typeParams *tree.Container[*tree.TypeParameter]
		primary    *tree.Container[tree.Statement]
		extends    *tree.LeftPadded[tree.TypeTree]
		implements *tree.Container[tree.TypeTree]
		permits    *tree.Container[tree.TypeTree]
		body       *tree.Block
	)
	for _, c := range children(n) {
		switch c.Type() {
		case "type_parameters":
			before := b.skip("<")
			typeParams = tree.NewContainer(before, padded(b, named(c), ",", ">", b.typeParameter, nil), lst.EmptyMarkers)
		case "formal_parameters":
			primary = b.parameters(c)
		case "superclass":
			before := b.skip("extends")
			extends = tree.NewLeftPadded(before, b.typeTree(named(c)[0]), lst.EmptyMarkers)
		case "super_interfaces":
			implements = b.typeList(c, "implements")
		case "extends_interfaces":
			implements = b.typeList(c, "extends")
		case "permits":
			permits = b.typeList(c, "permits")
		case "class_body", "interface_body", "annotation_type_body":
			body = b.classBody(c)
		case "enum_body":
			body = b.enumBody(c)
		}
	}
	if body == nil {
		b.fail(n, "class declaration without a body")
	}
	return tree.NewClassDeclaration(newID(), prefix, lst.EmptyMarkers, leading, mods, kind, name,
		typeParams, primary, extends, implements, permits, body, nil)
}

func (b *builder) typeList(n *sitter.Node, keyword string) *tree.Container[tree.TypeTree] {
	before := b.skip(keyword)
	list := childOfType(n, "type_list")
	if list == nil {
		b.fail(n, "%s without types", keyword)
	}
	return tree.NewContainer(before, padded(b, named(list), ",", "", b.typeTree, nil), lst.EmptyMarkers)
}

func (b *builder) classBody(n *sitter.Node) *tree.Block {
	prefix := b.prefix(n)
	b.skip("{")
	var statements []*tree.RightPadded[tree.Statement]
	for _, c := range children(n) {
		if c.Type() == "{" || c.Type() == "}" {
			continue
		}
		statements = append(statements, b.member(c))
	}
	end := b.skip("}")
	return tree.NewBlock(newID(), prefix, lst.EmptyMarkers,
		tree.NewRightPadded(false, tree.EmptySpace, lst.EmptyMarkers), statements, end)
}

func (b *builder) member(n *sitter.Node) *tree.RightPadded[tree.Statement] {
	stmt, after := b.guardStatement(n, b.memberOf)
	return tree.NewRightPadded(stmt, after, lst.EmptyMarkers)
}

func (b *builder) memberOf(n *sitter.Node) (tree.Statement, *tree.Space) {
	switch n.Type() {
	case "field_declaration", "constant_declaration":
		vd := b.variableDeclarations(n)
		return vd, b.skip(";")
	case "method_declaration", "constructor_declaration", "compact_constructor_declaration":
		return b.methodDeclaration(n)
	case "block":
		return b.block(n), tree.EmptySpace
	case "static_initializer":
		prefix := b.prefix(n)
		b.skip("static")
		blk := childOfType(n, "block")
		afterStatic := b.prefix(blk)
		inner := b.block(blk)
		return tree.NewBlock(newID(), prefix, lst.EmptyMarkers,
			tree.NewRightPadded(true, afterStatic, lst.EmptyMarkers),
			inner.Padding().Statements(), inner.End()), tree.EmptySpace
	case ";":
		return emptyStatement(b.skip(";")), tree.EmptySpace
	}
	if _, ok := classKinds[n.Type()]; ok {
		return b.classDeclaration(n), tree.EmptySpace
	}
	b.fail(n, "unsupported member %s", n.Type())
	return nil, nil
}

// enumBody keeps the constants as one EnumValueSet statement ahead of the
// other members.
func (b *builder) enumBody(n *sitter.Node) *tree.Block {
	prefix := b.prefix(n)
	b.skip("{")
	var statements []*tree.RightPadded[tree.Statement]

	constants := childrenOfType(n, "enum_constant")
	if len(constants) > 0 {
		terminated := false
		enums := make([]*tree.RightPadded[*tree.EnumValue], 0, len(constants))
		for i, c := range constants {
			ev := b.enumValue(c)
			after, markers := tree.EmptySpace, lst.EmptyMarkers
			switch {
			case i < len(constants)-1:
				after = b.skip(",")
			case b.peek(","):
				after = b.skip(",")
				suffix := tree.EmptySpace
				if b.peek(";") {
					suffix = b.skip(";")
					terminated = true
				}
				markers = lst.BuildMarkers(tree.NewTrailingComma(newID(), suffix))
			case b.peek(";"):
				after = b.skip(";")
				terminated = true
			}
			enums = append(enums, tree.NewRightPadded(ev, after, markers))
		}
		set := tree.NewEnumValueSet(newID(), tree.EmptySpace, lst.EmptyMarkers, enums, terminated)
		statements = append(statements, tree.NewRightPadded[tree.Statement](set, tree.EmptySpace, lst.EmptyMarkers))
	}

	if decls := childOfType(n, "enum_body_declarations"); decls != nil {
		if len(constants) == 0 {
			b.fail(decls, "enum members without constants")
		}
		for i, c := range children(decls) {
			if i == 0 && c.Type() == ";" {
				continue
			}
			statements = append(statements, b.member(c))
		}
	}
	end := b.skip("}")
	return tree.NewBlock(newID(), prefix, lst.EmptyMarkers,
		tree.NewRightPadded(false, tree.EmptySpace, lst.EmptyMarkers), statements, end)
}

func (b *builder) enumValue(n *sitter.Node) *tree.EnumValue {
	prefix := b.prefix(n)
	annotations, mods, _ := b.modifiers(childOfType(n, "modifiers"))
	if len(mods) > 0 {
		b.fail(n, "enum constant with modifiers")
	}
	name := b.identifier(n.ChildByFieldName("name"))
	var initializer *tree.NewClass
	args, body := n.ChildByFieldName("arguments"), n.ChildByFieldName("body")
	if args != nil || body != nil {
		var arguments *tree.Container[tree.Expression]
		if args != nil {
			arguments = b.arguments(args)
		}
		var blk *tree.Block
		if body != nil {
			blk = b.classBody(body)
		}
		initializer = tree.NewNewClass(newID(), tree.EmptySpace, lst.EmptyMarkers, nil, tree.EmptySpace, nil, arguments, blk, nil)
	}
	return tree.NewEnumValue(newID(), prefix, lst.EmptyMarkers, annotations, name, initializer)
}

func (b *builder) methodDeclaration(n *sitter.Node) (tree.Statement, *tree.Space) {
	if n.Type() == "compact_constructor_declaration" {
		b.fail(n, "compact constructors are not supported")
	}
	for _, c := range children(n) {
		if isAnnotation(c) {
			b.fail(c, "annotations after type parameters are not supported")
		}
	}
	prefix := b.prefix(n)
	leading, mods, trailing := b.modifiers(childOfType(n, "modifiers"))

	var typeParams *tree.TypeParameters
	if tp := childOfType(n, "type_parameters"); tp != nil {
		if len(trailing) > 0 {
			b.fail(n, "annotations before type parameters are not supported")
		}
		typeParams = b.typeParameters(tp)
	}

	var returnType tree.TypeTree
	if t := n.ChildByFieldName("type"); t != nil {
		returnType = annotate(trailing, b.typeTree(t))
	} else if len(trailing) > 0 {
		b.fail(n, "annotations after constructor modifiers are not supported")
	}

	name := b.identifier(n.ChildByFieldName("name"))
	params := b.parameters(n.ChildByFieldName("parameters"))
	if n.ChildByFieldName("dimensions") != nil {
		b.fail(n, "array dimensions after a parameter list are not supported")
	}

	var throws *tree.Container[tree.NameTree]
	if th := childOfType(n, "throws"); th != nil {
		before := b.skip("throws")
		throws = tree.NewContainer(before, padded(b, named(th), ",", "", b.nameTree, nil), lst.EmptyMarkers)
	}

	var body *tree.Block
	after := tree.EmptySpace
	if bd := n.ChildByFieldName("body"); bd != nil {
		body = b.block(bd)
	} else {
		after = b.skip(";")
	}
	return tree.NewMethodDeclaration(newID(), prefix, lst.EmptyMarkers, leading, mods, typeParams,
		returnType, name, params, throws, body, nil, nil), after
}

func (b *builder) typeParameters(n *sitter.Node) *tree.TypeParameters {
	prefix := b.skip("<")
	params := padded(b, named(n), ",", ">", b.typeParameter, nil)
	return tree.NewTypeParameters(newID(), prefix, lst.EmptyMarkers, nil, params)
}

func (b *builder) typeParameter(n *sitter.Node) *tree.TypeParameter {
	prefix := b.prefix(n)
	var (
		annotations []*tree.Annotation
		name        tree.Expression
		bounds      *tree.Container[tree.TypeTree]
	)
	for _, c := range named(n) {
		switch {
		case isAnnotation(c):
			annotations = append(annotations, b.annotation(c))
		case c.Type() == "type_bound":
			before := b.skip("extends")
			bounds = tree.NewContainer(before, padded(b, named(c), "&", "", b.typeTree, nil), lst.EmptyMarkers)
		default:
			name = b.identifier(c)
		}
	}
	return tree.NewTypeParameter(newID(), prefix, lst.EmptyMarkers, annotations, nil, name, bounds)
}

func (b *builder) parameters(n *sitter.Node) *tree.Container[tree.Statement] {
	if n == nil {
		b.fail(nil, "missing parameter list")
	}
	before := b.skip("(")
	return tree.NewContainer(before, padded(b, named(n), ",", ")", b.parameter, emptyStatement), lst.EmptyMarkers)
}

func (b *builder) parameter(n *sitter.Node) tree.Statement {
	return guard(b, n, func(n *sitter.Node) tree.Statement {
		if n.Type() != "formal_parameter" {
			b.fail(n, "unsupported parameter %s", n.Type())
		}
		prefix := b.prefix(n)
		leading, mods, trailing := b.modifiers(childOfType(n, "modifiers"))
		typ := annotate(trailing, b.typeTree(n.ChildByFieldName("type")))
		if n.ChildByFieldName("dimensions") != nil {
			b.fail(n, "array dimensions after a parameter name are not supported")
		}
		nameNode := n.ChildByFieldName("name")
		varPrefix := b.prefix(nameNode)
		v := tree.NewNamedVariable(newID(), varPrefix, lst.EmptyMarkers, b.identifier(nameNode), nil, nil, nil)
		return tree.NewVariableDeclarations(newID(), prefix, lst.EmptyMarkers, leading, mods, typ, nil, nil,
			[]*tree.RightPadded[*tree.NamedVariable]{tree.NewRightPadded(v, tree.EmptySpace, lst.EmptyMarkers)})
	})
}

// variableDeclarations converts a field, constant or local variable
// declaration up to but not including its semicolon.
func (b *builder) variableDeclarations(n *sitter.Node) *tree.VariableDeclarations {
	prefix := b.prefix(n)
	leading, mods, trailing := b.modifiers(childOfType(n, "modifiers"))
	typ := annotate(trailing, b.typeTree(n.ChildByFieldName("type")))
	vars := padded(b, childrenOfType(n, "variable_declarator"), ",", "", b.namedVariable, nil)
	return tree.NewVariableDeclarations(newID(), prefix, lst.EmptyMarkers, leading, mods, typ, nil, nil, vars)
}

func (b *builder) namedVariable(n *sitter.Node) *tree.NamedVariable {
	if n.ChildByFieldName("dimensions") != nil {
		b.fail(n, "array dimensions after a variable name are not supported")
	}
	prefix := b.prefix(n)
	name := b.identifier(n.ChildByFieldName("name"))
	var initializer *tree.LeftPadded[tree.Expression]
	if v := n.ChildByFieldName("value"); v != nil {
		before := b.skip("=")
		initializer = tree.NewLeftPadded(before, b.expression(v), lst.EmptyMarkers)
	}
	return tree.NewNamedVariable(newID(), prefix, lst.EmptyMarkers, name, nil, initializer, nil)
}
