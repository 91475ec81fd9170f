// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package types is the resolved-type graph attached to Java LST nodes.
//
// Type objects are reference-shared: the same *Class is reachable from
// every identifier, method invocation and declaration that names the
// class. The remote protocol therefore transmits each object once per
// session and refers to it by id afterwards.
//
// Objects are immutable once built. Graphs with cycles (a class whose
// method returns the class itself) are built in two steps: allocate the
// shell with New* or new(T), then fill it with UnsafeSet before handing it
// out. UnsafeSet must not be called on an object other goroutines can see.
// Slice getters return the object's own slices, which callers must not
// modify.
package types

import (
	"strings"
)

// JavaType is any node of the type graph.
type JavaType interface {
	String() string
	isJavaType()
}

// FullyQualified is a type with a fully qualified name.
type FullyQualified interface {
	JavaType
	FullyQualifiedName() string
}

// Flag is a bit in a class, method or variable flags bitmap.
type Flag int64

// Flags use the JVM access flag layout.
const (
	FlagPublic       Flag = 1
	FlagPrivate      Flag = 1 << 1
	FlagProtected    Flag = 1 << 2
	FlagStatic       Flag = 1 << 3
	FlagFinal        Flag = 1 << 4
	FlagSynchronized Flag = 1 << 5
	FlagVolatile     Flag = 1 << 6
	FlagTransient    Flag = 1 << 7
	FlagNative       Flag = 1 << 8
	FlagInterface    Flag = 1 << 9
	FlagAbstract     Flag = 1 << 10
	FlagStrictfp     Flag = 1 << 11
)

// HasFlags reports whether bitmap contains every flag in flags.
func HasFlags(bitmap int64, flags ...Flag) bool {
	for _, f := range flags {
		if bitmap&int64(f) == 0 {
			return false
		}
	}
	return true
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

// Primitive is one of the built-in types. Instances are singletons; use
// PrimitiveByName or PrimitiveByKeyword to look them up.
type Primitive struct {
	name    string
	keyword string
}

// The primitive singletons.
var (
	Boolean = &Primitive{name: "Boolean", keyword: "boolean"}
	Byte    = &Primitive{name: "Byte", keyword: "byte"}
	Char    = &Primitive{name: "Char", keyword: "char"}
	Double  = &Primitive{name: "Double", keyword: "double"}
	Float   = &Primitive{name: "Float", keyword: "float"}
	Int     = &Primitive{name: "Int", keyword: "int"}
	Long    = &Primitive{name: "Long", keyword: "long"}
	Short   = &Primitive{name: "Short", keyword: "short"}
	Void    = &Primitive{name: "Void", keyword: "void"}
	String  = &Primitive{name: "String", keyword: "String"}
	None    = &Primitive{name: "None", keyword: ""}
	Null    = &Primitive{name: "Null", keyword: "null"}
)

var primitives = []*Primitive{Boolean, Byte, Char, Double, Float, Int, Long, Short, Void, String, None, Null}

// PrimitiveByName returns the primitive with the given wire name ("Int").
func PrimitiveByName(name string) (*Primitive, bool) {
	for _, p := range primitives {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}

// PrimitiveByKeyword returns the primitive for a source keyword ("int").
func PrimitiveByKeyword(keyword string) (*Primitive, bool) {
	for _, p := range primitives {
		if p.keyword == keyword {
			return p, true
		}
	}
	return nil, false
}

// Name returns the wire name.
func (p *Primitive) Name() string { return p.name }

// Keyword returns the source keyword.
func (p *Primitive) Keyword() string { return p.keyword }

func (p *Primitive) String() string { return p.keyword }
func (*Primitive) isJavaType() {}

// FullyQualifiedKind distinguishes classes, interfaces, enums and friends.
type FullyQualifiedKind string

const (
	KindClass      FullyQualifiedKind = "Class"
	KindEnum       FullyQualifiedKind = "Enum"
	KindInterface  FullyQualifiedKind = "Interface"
	KindAnnotation FullyQualifiedKind = "Annotation"
	KindRecord     FullyQualifiedKind = "Record"
	KindValue      FullyQualifiedKind = "Value"
)

// Class is a declared class, interface, enum, record or annotation type.
type Class struct {
	flagsBitMap        int64
	fullyQualifiedName string
	kind               FullyQualifiedKind
	typeParameters     []JavaType
	supertype          FullyQualified
	owningClass        FullyQualified
	annotations        []FullyQualified
	interfaces         []FullyQualified
	members            []*Variable
	methods            []*Method
}

// NewClass allocates a class with no relations. Call UnsafeSet to fill
// in the rest of the graph.
func NewClass(flagsBitMap int64, fullyQualifiedName string, kind FullyQualifiedKind) *Class {
	return &Class{flagsBitMap: flagsBitMap, fullyQualifiedName: fullyQualifiedName, kind: kind}
}

// UnsafeSetHeader fills in the scalar header. It exists for decoders, which
// must register the shell before any field is known.
func (c *Class) UnsafeSetHeader(flagsBitMap int64, fullyQualifiedName string, kind FullyQualifiedKind) *Class {
	c.flagsBitMap = flagsBitMap
	c.fullyQualifiedName = fullyQualifiedName
	c.kind = kind
	return c
}

// UnsafeSet fills in the class relations.
func (c *Class) UnsafeSet(typeParameters []JavaType, supertype, owningClass FullyQualified,
	annotations, interfaces []FullyQualified, members []*Variable, methods []*Method) *Class {
	c.typeParameters = nilIfEmpty(typeParameters)
	c.supertype = supertype
	c.owningClass = owningClass
	c.annotations = nilIfEmpty(annotations)
	c.interfaces = nilIfEmpty(interfaces)
	c.members = nilIfEmpty(members)
	c.methods = nilIfEmpty(methods)
	return c
}

func (c *Class) FlagsBitMap() int64 { return c.flagsBitMap }
func (c *Class) FullyQualifiedName() string { return c.fullyQualifiedName }
func (c *Class) Kind() FullyQualifiedKind { return c.kind }
func (c *Class) TypeParameters() []JavaType { return c.typeParameters }
func (c *Class) Supertype() FullyQualified { return c.supertype }
func (c *Class) OwningClass() FullyQualified { return c.owningClass }
func (c *Class) Annotations() []FullyQualified { return c.annotations }
func (c *Class) Interfaces() []FullyQualified { return c.interfaces }
func (c *Class) Members() []*Variable { return c.members }
func (c *Class) Methods() []*Method { return c.methods }
func (c *Class) String() string { return c.fullyQualifiedName }
func (*Class) isJavaType() {}

// ClassName returns the simple name, without package or outer classes.
func (c *Class) ClassName() string {
	name := c.fullyQualifiedName
	if i := strings.LastIndexAny(name, ".$"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// PackageName returns the package portion of the fully qualified name.
func (c *Class) PackageName() string {
	name := c.fullyQualifiedName
	if i := strings.IndexByte(name, '$'); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}

// Parameterized is a generic class applied to type arguments.
type Parameterized struct {
	typ            FullyQualified
	typeParameters []JavaType
}

// NewParameterized creates a parameterized type.
func NewParameterized(typ FullyQualified, typeParameters []JavaType) *Parameterized {
	return &Parameterized{typ: typ, typeParameters: nilIfEmpty(typeParameters)}
}

// UnsafeSet fills in a decoded shell.
func (p *Parameterized) UnsafeSet(typ FullyQualified, typeParameters []JavaType) *Parameterized {
	p.typ = typ
	p.typeParameters = nilIfEmpty(typeParameters)
	return p
}

func (p *Parameterized) Type() FullyQualified { return p.typ }
func (p *Parameterized) TypeParameters() []JavaType { return p.typeParameters }
func (*Parameterized) isJavaType() {}

// FullyQualifiedName returns the name of the generic class.
func (p *Parameterized) FullyQualifiedName() string {
	if p.typ == nil {
		return ""
	}
	return p.typ.FullyQualifiedName()
}

func (p *Parameterized) String() string {
	params := make([]string, len(p.typeParameters))
	for i, tp := range p.typeParameters {
		params[i] = typeString(tp)
	}
	return p.FullyQualifiedName() + "<" + strings.Join(params, ", ") + ">"
}

// Variance of a generic type variable.
type Variance string

const (
	Invariant     Variance = "Invariant"
	Covariant     Variance = "Covariant"
	Contravariant Variance = "Contravariant"
)

// GenericTypeVariable is a type variable such as T or ? extends Number.
type GenericTypeVariable struct {
	name     string
	variance Variance
	bounds   []JavaType
}

// NewGenericTypeVariable creates a type variable.
func NewGenericTypeVariable(name string, variance Variance, bounds []JavaType) *GenericTypeVariable {
	return &GenericTypeVariable{name: name, variance: variance, bounds: nilIfEmpty(bounds)}
}

// UnsafeSet fills in a decoded shell.
func (g *GenericTypeVariable) UnsafeSet(name string, variance Variance, bounds []JavaType) *GenericTypeVariable {
	g.name = name
	g.variance = variance
	g.bounds = nilIfEmpty(bounds)
	return g
}

func (g *GenericTypeVariable) Name() string { return g.name }
func (g *GenericTypeVariable) Variance() Variance { return g.variance }
func (g *GenericTypeVariable) Bounds() []JavaType { return g.bounds }
func (g *GenericTypeVariable) String() string { return g.name }
func (*GenericTypeVariable) isJavaType() {}

// Array is an array type.
type Array struct {
	elemType    JavaType
	annotations []FullyQualified
}

// NewArray creates an array type.
func NewArray(elemType JavaType, annotations []FullyQualified) *Array {
	return &Array{elemType: elemType, annotations: nilIfEmpty(annotations)}
}

// UnsafeSet fills in a decoded shell.
func (a *Array) UnsafeSet(elemType JavaType, annotations []FullyQualified) *Array {
	a.elemType = elemType
	a.annotations = nilIfEmpty(annotations)
	return a
}

func (a *Array) ElemType() JavaType { return a.elemType }
func (a *Array) Annotations() []FullyQualified { return a.annotations }
func (a *Array) String() string { return typeString(a.elemType) + "[]" }
func (*Array) isJavaType() {}

// Method is a resolved method or constructor signature.
type Method struct {
	declaringType    FullyQualified
	flagsBitMap      int64
	name             string
	returnType       JavaType
	parameterNames   []string
	parameterTypes   []JavaType
	thrownExceptions []JavaType
	annotations      []FullyQualified
	defaultValue     []string
}

// NewMethod allocates a method with a name and flags. Call UnsafeSet for
// the signature.
func NewMethod(flagsBitMap int64, name string) *Method {
	return &Method{flagsBitMap: flagsBitMap, name: name}
}

// UnsafeSet fills in the signature.
func (m *Method) UnsafeSet(declaringType FullyQualified, returnType JavaType, parameterNames []string,
	parameterTypes, thrownExceptions []JavaType, annotations []FullyQualified, defaultValue []string) *Method {
	m.declaringType = declaringType
	m.returnType = returnType
	m.parameterNames = nilIfEmpty(parameterNames)
	m.parameterTypes = nilIfEmpty(parameterTypes)
	m.thrownExceptions = nilIfEmpty(thrownExceptions)
	m.annotations = nilIfEmpty(annotations)
	m.defaultValue = nilIfEmpty(defaultValue)
	return m
}

// UnsafeSetHeader fills in the name and flags of a decoded shell.
func (m *Method) UnsafeSetHeader(flagsBitMap int64, name string) *Method {
	m.flagsBitMap = flagsBitMap
	m.name = name
	return m
}

func (m *Method) DeclaringType() FullyQualified { return m.declaringType }
func (m *Method) FlagsBitMap() int64 { return m.flagsBitMap }
func (m *Method) Name() string { return m.name }
func (m *Method) ReturnType() JavaType { return m.returnType }
func (m *Method) ParameterNames() []string { return m.parameterNames }
func (m *Method) ParameterTypes() []JavaType { return m.parameterTypes }
func (m *Method) ThrownExceptions() []JavaType { return m.thrownExceptions }
func (m *Method) Annotations() []FullyQualified { return m.annotations }
func (m *Method) DefaultValue() []string { return m.defaultValue }
func (*Method) isJavaType() {}

// IsConstructor reports whether m is a constructor signature.
func (m *Method) IsConstructor() bool { return m.name == "<constructor>" }

func (m *Method) String() string {
	params := make([]string, len(m.parameterTypes))
	for i, p := range m.parameterTypes {
		params[i] = typeString(p)
	}
	owner := ""
	if m.declaringType != nil {
		owner = m.declaringType.FullyQualifiedName() + "."
	}
	return owner + m.name + "(" + strings.Join(params, ",") + ")"
}

// Variable is a resolved field, parameter or local variable.
type Variable struct {
	flagsBitMap int64
	name        string
	owner       JavaType
	typ         JavaType
	annotations []FullyQualified
}

// NewVariable allocates a variable. Call UnsafeSet for owner and type.
func NewVariable(flagsBitMap int64, name string) *Variable {
	return &Variable{flagsBitMap: flagsBitMap, name: name}
}

// UnsafeSetHeader fills in the name and flags of a decoded shell.
func (v *Variable) UnsafeSetHeader(flagsBitMap int64, name string) *Variable {
	v.flagsBitMap = flagsBitMap
	v.name = name
	return v
}

// UnsafeSet fills in owner, type and annotations.
func (v *Variable) UnsafeSet(owner, typ JavaType, annotations []FullyQualified) *Variable {
	v.owner = owner
	v.typ = typ
	v.annotations = nilIfEmpty(annotations)
	return v
}

func (v *Variable) FlagsBitMap() int64 { return v.flagsBitMap }
func (v *Variable) Name() string { return v.name }
func (v *Variable) Owner() JavaType { return v.owner }
func (v *Variable) Type() JavaType { return v.typ }
func (v *Variable) Annotations() []FullyQualified { return v.annotations }
func (v *Variable) String() string { return v.name }
func (*Variable) isJavaType() {}

// Union is the type of a multi-catch parameter.
type Union struct {
	bounds []JavaType
}

// NewUnion creates a union type.
func NewUnion(bounds []JavaType) *Union { return &Union{bounds: nilIfEmpty(bounds)} }

// UnsafeSet fills in a decoded shell.
func (u *Union) UnsafeSet(bounds []JavaType) *Union {
	u.bounds = nilIfEmpty(bounds)
	return u
}

func (u *Union) Bounds() []JavaType { return u.bounds }
func (u *Union) String() string { return joinTypes(u.bounds, " | ") }
func (*Union) isJavaType() {}

// Intersection is the type of an intersection cast or bound.
type Intersection struct {
	bounds []JavaType
}

// NewIntersection creates an intersection type.
func NewIntersection(bounds []JavaType) *Intersection {
	return &Intersection{bounds: nilIfEmpty(bounds)}
}

// UnsafeSet fills in a decoded shell.
func (i *Intersection) UnsafeSet(bounds []JavaType) *Intersection {
	i.bounds = nilIfEmpty(bounds)
	return i
}

func (i *Intersection) Bounds() []JavaType { return i.bounds }
func (i *Intersection) String() string { return joinTypes(i.bounds, " & ") }
func (*Intersection) isJavaType() {}

// UnknownType stands in for a type that could not be resolved.
type UnknownType struct{}

// Unknown is the unresolved-type singleton.
var Unknown = &UnknownType{}

func (*UnknownType) FullyQualifiedName() string { return "<unknown>" }
func (*UnknownType) String() string { return "<unknown>" }
func (*UnknownType) isJavaType() {}

func typeString(t JavaType) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func joinTypes(ts []JavaType, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = typeString(t)
	}
	return strings.Join(parts, sep)
}
