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

import (
	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/types"
)

// Expressions.

// ArrayAccess is an indexed array read such as a[i].
type ArrayAccess struct {
	id        uuid.UUID
	prefix    *Space
	markers   *lst.Markers
	indexed   Expression
	dimension *ArrayDimension
	typ       types.JavaType
}

// NewArrayAccess creates an ArrayAccess.
func NewArrayAccess(id uuid.UUID, prefix *Space, markers *lst.Markers, indexed Expression, dimension *ArrayDimension, typ types.JavaType) *ArrayAccess {
	return &ArrayAccess{
		id:        id,
		prefix:    prefix,
		markers:   markers,
		indexed:   indexed,
		dimension: dimension,
		typ:       typ,
	}
}

func (aa *ArrayAccess) ID() uuid.UUID { return aa.id }

func (aa *ArrayAccess) WithID(id uuid.UUID) *ArrayAccess {
	if aa.id == id {
		return aa
	}
	n := *aa
	n.id = id
	return &n
}

func (aa *ArrayAccess) Prefix() *Space { return aa.prefix }

func (aa *ArrayAccess) WithPrefix(prefix *Space) *ArrayAccess {
	if aa.prefix == prefix {
		return aa
	}
	n := *aa
	n.prefix = prefix
	return &n
}

func (aa *ArrayAccess) Markers() *lst.Markers { return aa.markers }

func (aa *ArrayAccess) WithMarkers(markers *lst.Markers) *ArrayAccess {
	if aa.markers == markers {
		return aa
	}
	n := *aa
	n.markers = markers
	return &n
}

func (aa *ArrayAccess) Indexed() Expression { return aa.indexed }

func (aa *ArrayAccess) WithIndexed(indexed Expression) *ArrayAccess {
	if aa.indexed == indexed {
		return aa
	}
	n := *aa
	n.indexed = indexed
	return &n
}

func (aa *ArrayAccess) Dimension() *ArrayDimension { return aa.dimension }

func (aa *ArrayAccess) WithDimension(dimension *ArrayDimension) *ArrayAccess {
	if aa.dimension == dimension {
		return aa
	}
	n := *aa
	n.dimension = dimension
	return &n
}

func (aa *ArrayAccess) Type() types.JavaType { return aa.typ }

func (aa *ArrayAccess) WithType(typ types.JavaType) *ArrayAccess {
	if aa.typ == typ {
		return aa
	}
	n := *aa
	n.typ = typ
	return &n
}

func (*ArrayAccess) isExpression() {}

// ArrayDimension is the bracketed index of an array access or creation.
type ArrayDimension struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	index   *RightPadded[Expression]
}

// NewArrayDimension creates an ArrayDimension.
func NewArrayDimension(id uuid.UUID, prefix *Space, markers *lst.Markers, index *RightPadded[Expression]) *ArrayDimension {
	return &ArrayDimension{
		id:      id,
		prefix:  prefix,
		markers: markers,
		index:   index,
	}
}

func (ad *ArrayDimension) ID() uuid.UUID { return ad.id }

func (ad *ArrayDimension) WithID(id uuid.UUID) *ArrayDimension {
	if ad.id == id {
		return ad
	}
	n := *ad
	n.id = id
	return &n
}

func (ad *ArrayDimension) Prefix() *Space { return ad.prefix }

func (ad *ArrayDimension) WithPrefix(prefix *Space) *ArrayDimension {
	if ad.prefix == prefix {
		return ad
	}
	n := *ad
	n.prefix = prefix
	return &n
}

func (ad *ArrayDimension) Markers() *lst.Markers { return ad.markers }

func (ad *ArrayDimension) WithMarkers(markers *lst.Markers) *ArrayDimension {
	if ad.markers == markers {
		return ad
	}
	n := *ad
	n.markers = markers
	return &n
}

func (ad *ArrayDimension) Index() Expression { return ad.index.Element() }

func (ad *ArrayDimension) WithIndex(index Expression) *ArrayDimension {
	return ad.Padding().WithIndex(withRightElement(ad.index, index))
}

// ArrayDimensionPadding exposes the padded fields of an ArrayDimension.
type ArrayDimensionPadding struct{ t *ArrayDimension }

// Padding returns the padded view of ad.
func (ad *ArrayDimension) Padding() ArrayDimensionPadding { return ArrayDimensionPadding{t: ad} }

func (p ArrayDimensionPadding) Index() *RightPadded[Expression] { return p.t.index }

func (p ArrayDimensionPadding) WithIndex(index *RightPadded[Expression]) *ArrayDimension {
	if p.t.index == index {
		return p.t
	}
	n := *p.t
	n.index = index
	return &n
}

// Assignment is a simple assignment such as a = b.
type Assignment struct {
	id         uuid.UUID
	prefix     *Space
	markers    *lst.Markers
	variable   Expression
	assignment *LeftPadded[Expression]
	typ        types.JavaType
}

// NewAssignment creates an Assignment.
func NewAssignment(id uuid.UUID, prefix *Space, markers *lst.Markers, variable Expression, assignment *LeftPadded[Expression], typ types.JavaType) *Assignment {
	return &Assignment{
		id:         id,
		prefix:     prefix,
		markers:    markers,
		variable:   variable,
		assignment: assignment,
		typ:        typ,
	}
}

func (a *Assignment) ID() uuid.UUID { return a.id }

func (a *Assignment) WithID(id uuid.UUID) *Assignment {
	if a.id == id {
		return a
	}
	n := *a
	n.id = id
	return &n
}

func (a *Assignment) Prefix() *Space { return a.prefix }

func (a *Assignment) WithPrefix(prefix *Space) *Assignment {
	if a.prefix == prefix {
		return a
	}
	n := *a
	n.prefix = prefix
	return &n
}

func (a *Assignment) Markers() *lst.Markers { return a.markers }

func (a *Assignment) WithMarkers(markers *lst.Markers) *Assignment {
	if a.markers == markers {
		return a
	}
	n := *a
	n.markers = markers
	return &n
}

func (a *Assignment) Variable() Expression { return a.variable }

func (a *Assignment) WithVariable(variable Expression) *Assignment {
	if a.variable == variable {
		return a
	}
	n := *a
	n.variable = variable
	return &n
}

func (a *Assignment) Assignment() Expression { return a.assignment.Element() }

func (a *Assignment) WithAssignment(assignment Expression) *Assignment {
	return a.Padding().WithAssignment(withLeftElement(a.assignment, assignment))
}

func (a *Assignment) Type() types.JavaType { return a.typ }

func (a *Assignment) WithType(typ types.JavaType) *Assignment {
	if a.typ == typ {
		return a
	}
	n := *a
	n.typ = typ
	return &n
}

func (*Assignment) isExpression() {}
func (*Assignment) isStatement() {}

// AssignmentPadding exposes the padded fields of an Assignment.
type AssignmentPadding struct{ t *Assignment }

// Padding returns the padded view of a.
func (a *Assignment) Padding() AssignmentPadding { return AssignmentPadding{t: a} }

func (p AssignmentPadding) Assignment() *LeftPadded[Expression] { return p.t.assignment }

func (p AssignmentPadding) WithAssignment(assignment *LeftPadded[Expression]) *Assignment {
	if p.t.assignment == assignment {
		return p.t
	}
	n := *p.t
	n.assignment = assignment
	return &n
}

// AssignmentOperation is a compound assignment such as a += b.
type AssignmentOperation struct {
	id         uuid.UUID
	prefix     *Space
	markers    *lst.Markers
	variable   Expression
	operator   *LeftPadded[AssignmentOperator]
	assignment Expression
	typ        types.JavaType
}

// NewAssignmentOperation creates an AssignmentOperation.
func NewAssignmentOperation(id uuid.UUID, prefix *Space, markers *lst.Markers, variable Expression, operator *LeftPadded[AssignmentOperator], assignment Expression, typ types.JavaType) *AssignmentOperation {
	return &AssignmentOperation{
		id:         id,
		prefix:     prefix,
		markers:    markers,
		variable:   variable,
		operator:   operator,
		assignment: assignment,
		typ:        typ,
	}
}

func (ao *AssignmentOperation) ID() uuid.UUID { return ao.id }

func (ao *AssignmentOperation) WithID(id uuid.UUID) *AssignmentOperation {
	if ao.id == id {
		return ao
	}
	n := *ao
	n.id = id
	return &n
}

func (ao *AssignmentOperation) Prefix() *Space { return ao.prefix }

func (ao *AssignmentOperation) WithPrefix(prefix *Space) *AssignmentOperation {
	if ao.prefix == prefix {
		return ao
	}
	n := *ao
	n.prefix = prefix
	return &n
}

func (ao *AssignmentOperation) Markers() *lst.Markers { return ao.markers }

func (ao *AssignmentOperation) WithMarkers(markers *lst.Markers) *AssignmentOperation {
	if ao.markers == markers {
		return ao
	}
	n := *ao
	n.markers = markers
	return &n
}

func (ao *AssignmentOperation) Variable() Expression { return ao.variable }

func (ao *AssignmentOperation) WithVariable(variable Expression) *AssignmentOperation {
	if ao.variable == variable {
		return ao
	}
	n := *ao
	n.variable = variable
	return &n
}

func (ao *AssignmentOperation) Operator() AssignmentOperator { return ao.operator.Element() }

func (ao *AssignmentOperation) WithOperator(operator AssignmentOperator) *AssignmentOperation {
	return ao.Padding().WithOperator(withLeftElement(ao.operator, operator))
}

func (ao *AssignmentOperation) Assignment() Expression { return ao.assignment }

func (ao *AssignmentOperation) WithAssignment(assignment Expression) *AssignmentOperation {
	if ao.assignment == assignment {
		return ao
	}
	n := *ao
	n.assignment = assignment
	return &n
}

func (ao *AssignmentOperation) Type() types.JavaType { return ao.typ }

func (ao *AssignmentOperation) WithType(typ types.JavaType) *AssignmentOperation {
	if ao.typ == typ {
		return ao
	}
	n := *ao
	n.typ = typ
	return &n
}

func (*AssignmentOperation) isExpression() {}
func (*AssignmentOperation) isStatement() {}

// AssignmentOperationPadding exposes the padded fields of an AssignmentOperation.
type AssignmentOperationPadding struct{ t *AssignmentOperation }

// Padding returns the padded view of ao.
func (ao *AssignmentOperation) Padding() AssignmentOperationPadding { return AssignmentOperationPadding{t: ao} }

func (p AssignmentOperationPadding) Operator() *LeftPadded[AssignmentOperator] { return p.t.operator }

func (p AssignmentOperationPadding) WithOperator(operator *LeftPadded[AssignmentOperator]) *AssignmentOperation {
	if p.t.operator == operator {
		return p.t
	}
	n := *p.t
	n.operator = operator
	return &n
}

// Binary is a binary operation such as a + b.
type Binary struct {
	id       uuid.UUID
	prefix   *Space
	markers  *lst.Markers
	left     Expression
	operator *LeftPadded[BinaryOperator]
	right    Expression
	typ      types.JavaType
}

// NewBinary creates a Binary.
func NewBinary(id uuid.UUID, prefix *Space, markers *lst.Markers, left Expression, operator *LeftPadded[BinaryOperator], right Expression, typ types.JavaType) *Binary {
	return &Binary{
		id:       id,
		prefix:   prefix,
		markers:  markers,
		left:     left,
		operator: operator,
		right:    right,
		typ:      typ,
	}
}

func (b *Binary) ID() uuid.UUID { return b.id }

func (b *Binary) WithID(id uuid.UUID) *Binary {
	if b.id == id {
		return b
	}
	n := *b
	n.id = id
	return &n
}

func (b *Binary) Prefix() *Space { return b.prefix }

func (b *Binary) WithPrefix(prefix *Space) *Binary {
	if b.prefix == prefix {
		return b
	}
	n := *b
	n.prefix = prefix
	return &n
}

func (b *Binary) Markers() *lst.Markers { return b.markers }

func (b *Binary) WithMarkers(markers *lst.Markers) *Binary {
	if b.markers == markers {
		return b
	}
	n := *b
	n.markers = markers
	return &n
}

func (b *Binary) Left() Expression { return b.left }

func (b *Binary) WithLeft(left Expression) *Binary {
	if b.left == left {
		return b
	}
	n := *b
	n.left = left
	return &n
}

func (b *Binary) Operator() BinaryOperator { return b.operator.Element() }

func (b *Binary) WithOperator(operator BinaryOperator) *Binary {
	return b.Padding().WithOperator(withLeftElement(b.operator, operator))
}

func (b *Binary) Right() Expression { return b.right }

func (b *Binary) WithRight(right Expression) *Binary {
	if b.right == right {
		return b
	}
	n := *b
	n.right = right
	return &n
}

func (b *Binary) Type() types.JavaType { return b.typ }

func (b *Binary) WithType(typ types.JavaType) *Binary {
	if b.typ == typ {
		return b
	}
	n := *b
	n.typ = typ
	return &n
}

func (*Binary) isExpression() {}

// BinaryPadding exposes the padded fields of a Binary.
type BinaryPadding struct{ t *Binary }

// Padding returns the padded view of b.
func (b *Binary) Padding() BinaryPadding { return BinaryPadding{t: b} }

func (p BinaryPadding) Operator() *LeftPadded[BinaryOperator] { return p.t.operator }

func (p BinaryPadding) WithOperator(operator *LeftPadded[BinaryOperator]) *Binary {
	if p.t.operator == operator {
		return p.t
	}
	n := *p.t
	n.operator = operator
	return &n
}

// ControlParentheses wraps the condition of a control statement.
type ControlParentheses struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	tree    *RightPadded[J]
}

// NewControlParentheses creates a ControlParentheses.
func NewControlParentheses(id uuid.UUID, prefix *Space, markers *lst.Markers, tree *RightPadded[J]) *ControlParentheses {
	return &ControlParentheses{
		id:      id,
		prefix:  prefix,
		markers: markers,
		tree:    tree,
	}
}

func (cp *ControlParentheses) ID() uuid.UUID { return cp.id }

func (cp *ControlParentheses) WithID(id uuid.UUID) *ControlParentheses {
	if cp.id == id {
		return cp
	}
	n := *cp
	n.id = id
	return &n
}

func (cp *ControlParentheses) Prefix() *Space { return cp.prefix }

func (cp *ControlParentheses) WithPrefix(prefix *Space) *ControlParentheses {
	if cp.prefix == prefix {
		return cp
	}
	n := *cp
	n.prefix = prefix
	return &n
}

func (cp *ControlParentheses) Markers() *lst.Markers { return cp.markers }

func (cp *ControlParentheses) WithMarkers(markers *lst.Markers) *ControlParentheses {
	if cp.markers == markers {
		return cp
	}
	n := *cp
	n.markers = markers
	return &n
}

func (cp *ControlParentheses) Tree() J { return cp.tree.Element() }

func (cp *ControlParentheses) WithTree(tree J) *ControlParentheses {
	return cp.Padding().WithTree(withRightElement(cp.tree, tree))
}

func (cp *ControlParentheses) Type() types.JavaType { return typeOf(cp.tree.Element()) }

func (*ControlParentheses) isExpression() {}

// ControlParenthesesPadding exposes the padded fields of a ControlParentheses.
type ControlParenthesesPadding struct{ t *ControlParentheses }

// Padding returns the padded view of cp.
func (cp *ControlParentheses) Padding() ControlParenthesesPadding { return ControlParenthesesPadding{t: cp} }

func (p ControlParenthesesPadding) Tree() *RightPadded[J] { return p.t.tree }

func (p ControlParenthesesPadding) WithTree(tree *RightPadded[J]) *ControlParentheses {
	if p.t.tree == tree {
		return p.t
	}
	n := *p.t
	n.tree = tree
	return &n
}

// DeconstructionPattern is a record pattern such as Point(int x, int y).
type DeconstructionPattern struct {
	id            uuid.UUID
	prefix        *Space
	markers       *lst.Markers
	deconstructor Expression
	nested        *Container[J]
	typ           types.JavaType
}

// NewDeconstructionPattern creates a DeconstructionPattern.
func NewDeconstructionPattern(id uuid.UUID, prefix *Space, markers *lst.Markers, deconstructor Expression, nested *Container[J], typ types.JavaType) *DeconstructionPattern {
	return &DeconstructionPattern{
		id:            id,
		prefix:        prefix,
		markers:       markers,
		deconstructor: deconstructor,
		nested:        nested,
		typ:           typ,
	}
}

func (dp *DeconstructionPattern) ID() uuid.UUID { return dp.id }

func (dp *DeconstructionPattern) WithID(id uuid.UUID) *DeconstructionPattern {
	if dp.id == id {
		return dp
	}
	n := *dp
	n.id = id
	return &n
}

func (dp *DeconstructionPattern) Prefix() *Space { return dp.prefix }

func (dp *DeconstructionPattern) WithPrefix(prefix *Space) *DeconstructionPattern {
	if dp.prefix == prefix {
		return dp
	}
	n := *dp
	n.prefix = prefix
	return &n
}

func (dp *DeconstructionPattern) Markers() *lst.Markers { return dp.markers }

func (dp *DeconstructionPattern) WithMarkers(markers *lst.Markers) *DeconstructionPattern {
	if dp.markers == markers {
		return dp
	}
	n := *dp
	n.markers = markers
	return &n
}

func (dp *DeconstructionPattern) Deconstructor() Expression { return dp.deconstructor }

func (dp *DeconstructionPattern) WithDeconstructor(deconstructor Expression) *DeconstructionPattern {
	if dp.deconstructor == deconstructor {
		return dp
	}
	n := *dp
	n.deconstructor = deconstructor
	return &n
}

func (dp *DeconstructionPattern) Nested() []J { return dp.nested.Elements() }

func (dp *DeconstructionPattern) WithNested(nested []J) *DeconstructionPattern {
	return dp.Padding().WithNested(withContainerElements(dp.nested, nested))
}

func (dp *DeconstructionPattern) Type() types.JavaType { return dp.typ }

func (dp *DeconstructionPattern) WithType(typ types.JavaType) *DeconstructionPattern {
	if dp.typ == typ {
		return dp
	}
	n := *dp
	n.typ = typ
	return &n
}

// DeconstructionPatternPadding exposes the padded fields of a DeconstructionPattern.
type DeconstructionPatternPadding struct{ t *DeconstructionPattern }

// Padding returns the padded view of dp.
func (dp *DeconstructionPattern) Padding() DeconstructionPatternPadding { return DeconstructionPatternPadding{t: dp} }

func (p DeconstructionPatternPadding) Nested() *Container[J] { return p.t.nested }

func (p DeconstructionPatternPadding) WithNested(nested *Container[J]) *DeconstructionPattern {
	if p.t.nested == nested {
		return p.t
	}
	n := *p.t
	n.nested = nested
	return &n
}

// FieldAccess is a qualified name or member select such as a.b.
type FieldAccess struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	target  Expression
	name    *LeftPadded[*Identifier]
	typ     types.JavaType
}

// NewFieldAccess creates a FieldAccess.
func NewFieldAccess(id uuid.UUID, prefix *Space, markers *lst.Markers, target Expression, name *LeftPadded[*Identifier], typ types.JavaType) *FieldAccess {
	return &FieldAccess{
		id:      id,
		prefix:  prefix,
		markers: markers,
		target:  target,
		name:    name,
		typ:     typ,
	}
}

func (fa *FieldAccess) ID() uuid.UUID { return fa.id }

func (fa *FieldAccess) WithID(id uuid.UUID) *FieldAccess {
	if fa.id == id {
		return fa
	}
	n := *fa
	n.id = id
	return &n
}

func (fa *FieldAccess) Prefix() *Space { return fa.prefix }

func (fa *FieldAccess) WithPrefix(prefix *Space) *FieldAccess {
	if fa.prefix == prefix {
		return fa
	}
	n := *fa
	n.prefix = prefix
	return &n
}

func (fa *FieldAccess) Markers() *lst.Markers { return fa.markers }

func (fa *FieldAccess) WithMarkers(markers *lst.Markers) *FieldAccess {
	if fa.markers == markers {
		return fa
	}
	n := *fa
	n.markers = markers
	return &n
}

func (fa *FieldAccess) Target() Expression { return fa.target }

func (fa *FieldAccess) WithTarget(target Expression) *FieldAccess {
	if fa.target == target {
		return fa
	}
	n := *fa
	n.target = target
	return &n
}

func (fa *FieldAccess) Name() *Identifier { return fa.name.Element() }

func (fa *FieldAccess) WithName(name *Identifier) *FieldAccess {
	return fa.Padding().WithName(withLeftElement(fa.name, name))
}

func (fa *FieldAccess) Type() types.JavaType { return fa.typ }

func (fa *FieldAccess) WithType(typ types.JavaType) *FieldAccess {
	if fa.typ == typ {
		return fa
	}
	n := *fa
	n.typ = typ
	return &n
}

func (*FieldAccess) isExpression() {}
func (*FieldAccess) isStatement() {}
func (*FieldAccess) isNameTree() {}
func (*FieldAccess) isTypeTree() {}

// FieldAccessPadding exposes the padded fields of a FieldAccess.
type FieldAccessPadding struct{ t *FieldAccess }

// Padding returns the padded view of fa.
func (fa *FieldAccess) Padding() FieldAccessPadding { return FieldAccessPadding{t: fa} }

func (p FieldAccessPadding) Name() *LeftPadded[*Identifier] { return p.t.name }

func (p FieldAccessPadding) WithName(name *LeftPadded[*Identifier]) *FieldAccess {
	if p.t.name == name {
		return p.t
	}
	n := *p.t
	n.name = name
	return &n
}

// Identifier is a simple name.
type Identifier struct {
	id          uuid.UUID
	prefix      *Space
	markers     *lst.Markers
	annotations []*Annotation
	simpleName  string
	typ         types.JavaType
	fieldType   *types.Variable
}

// NewIdentifier creates an Identifier.
func NewIdentifier(id uuid.UUID, prefix *Space, markers *lst.Markers, annotations []*Annotation, simpleName string, typ types.JavaType, fieldType *types.Variable) *Identifier {
	return &Identifier{
		id:          id,
		prefix:      prefix,
		markers:     markers,
		annotations: nilIfEmpty(annotations),
		simpleName:  simpleName,
		typ:         typ,
		fieldType:   fieldType,
	}
}

func (i *Identifier) ID() uuid.UUID { return i.id }

func (i *Identifier) WithID(id uuid.UUID) *Identifier {
	if i.id == id {
		return i
	}
	n := *i
	n.id = id
	return &n
}

func (i *Identifier) Prefix() *Space { return i.prefix }

func (i *Identifier) WithPrefix(prefix *Space) *Identifier {
	if i.prefix == prefix {
		return i
	}
	n := *i
	n.prefix = prefix
	return &n
}

func (i *Identifier) Markers() *lst.Markers { return i.markers }

func (i *Identifier) WithMarkers(markers *lst.Markers) *Identifier {
	if i.markers == markers {
		return i
	}
	n := *i
	n.markers = markers
	return &n
}

// Annotations returns the node's own slice; copy it before modifying.
func (i *Identifier) Annotations() []*Annotation { return i.annotations }

func (i *Identifier) WithAnnotations(annotations []*Annotation) *Identifier {
	if lst.SameSlice(i.annotations, annotations) {
		return i
	}
	n := *i
	n.annotations = nilIfEmpty(annotations)
	return &n
}

func (i *Identifier) SimpleName() string { return i.simpleName }

func (i *Identifier) WithSimpleName(simpleName string) *Identifier {
	if i.simpleName == simpleName {
		return i
	}
	n := *i
	n.simpleName = simpleName
	return &n
}

func (i *Identifier) Type() types.JavaType { return i.typ }

func (i *Identifier) WithType(typ types.JavaType) *Identifier {
	if i.typ == typ {
		return i
	}
	n := *i
	n.typ = typ
	return &n
}

func (i *Identifier) FieldType() *types.Variable { return i.fieldType }

func (i *Identifier) WithFieldType(fieldType *types.Variable) *Identifier {
	if i.fieldType == fieldType {
		return i
	}
	n := *i
	n.fieldType = fieldType
	return &n
}

func (*Identifier) isExpression() {}
func (*Identifier) isNameTree() {}
func (*Identifier) isTypeTree() {}

// InstanceOf is an instanceof test, optionally with a pattern.
type InstanceOf struct {
	id         uuid.UUID
	prefix     *Space
	markers    *lst.Markers
	expression *RightPadded[Expression]
	clazz      J
	pattern    J
	typ        types.JavaType
	modifier   *Modifier
}

// NewInstanceOf creates an InstanceOf.
func NewInstanceOf(id uuid.UUID, prefix *Space, markers *lst.Markers, expression *RightPadded[Expression], clazz J, pattern J, typ types.JavaType, modifier *Modifier) *InstanceOf {
	return &InstanceOf{
		id:         id,
		prefix:     prefix,
		markers:    markers,
		expression: expression,
		clazz:      clazz,
		pattern:    pattern,
		typ:        typ,
		modifier:   modifier,
	}
}

func (io *InstanceOf) ID() uuid.UUID { return io.id }

func (io *InstanceOf) WithID(id uuid.UUID) *InstanceOf {
	if io.id == id {
		return io
	}
	n := *io
	n.id = id
	return &n
}

func (io *InstanceOf) Prefix() *Space { return io.prefix }

func (io *InstanceOf) WithPrefix(prefix *Space) *InstanceOf {
	if io.prefix == prefix {
		return io
	}
	n := *io
	n.prefix = prefix
	return &n
}

func (io *InstanceOf) Markers() *lst.Markers { return io.markers }

func (io *InstanceOf) WithMarkers(markers *lst.Markers) *InstanceOf {
	if io.markers == markers {
		return io
	}
	n := *io
	n.markers = markers
	return &n
}

func (io *InstanceOf) Expression() Expression { return io.expression.Element() }

func (io *InstanceOf) WithExpression(expression Expression) *InstanceOf {
	return io.Padding().WithExpression(withRightElement(io.expression, expression))
}

func (io *InstanceOf) Clazz() J { return io.clazz }

func (io *InstanceOf) WithClazz(clazz J) *InstanceOf {
	if io.clazz == clazz {
		return io
	}
	n := *io
	n.clazz = clazz
	return &n
}

func (io *InstanceOf) Pattern() J { return io.pattern }

func (io *InstanceOf) WithPattern(pattern J) *InstanceOf {
	if io.pattern == pattern {
		return io
	}
	n := *io
	n.pattern = pattern
	return &n
}

func (io *InstanceOf) Type() types.JavaType { return io.typ }

func (io *InstanceOf) WithType(typ types.JavaType) *InstanceOf {
	if io.typ == typ {
		return io
	}
	n := *io
	n.typ = typ
	return &n
}

func (io *InstanceOf) Modifier() *Modifier { return io.modifier }

func (io *InstanceOf) WithModifier(modifier *Modifier) *InstanceOf {
	if io.modifier == modifier {
		return io
	}
	n := *io
	n.modifier = modifier
	return &n
}

func (*InstanceOf) isExpression() {}

// InstanceOfPadding exposes the padded fields of an InstanceOf.
type InstanceOfPadding struct{ t *InstanceOf }

// Padding returns the padded view of io.
func (io *InstanceOf) Padding() InstanceOfPadding { return InstanceOfPadding{t: io} }

func (p InstanceOfPadding) Expression() *RightPadded[Expression] { return p.t.expression }

func (p InstanceOfPadding) WithExpression(expression *RightPadded[Expression]) *InstanceOf {
	if p.t.expression == expression {
		return p.t
	}
	n := *p.t
	n.expression = expression
	return &n
}

// Lambda is a lambda expression.
type Lambda struct {
	id         uuid.UUID
	prefix     *Space
	markers    *lst.Markers
	parameters *LambdaParameters
	arrow      *Space
	body       J
	typ        types.JavaType
}

// NewLambda creates a Lambda.
func NewLambda(id uuid.UUID, prefix *Space, markers *lst.Markers, parameters *LambdaParameters, arrow *Space, body J, typ types.JavaType) *Lambda {
	return &Lambda{
		id:         id,
		prefix:     prefix,
		markers:    markers,
		parameters: parameters,
		arrow:      arrow,
		body:       body,
		typ:        typ,
	}
}

func (l *Lambda) ID() uuid.UUID { return l.id }

func (l *Lambda) WithID(id uuid.UUID) *Lambda {
	if l.id == id {
		return l
	}
	n := *l
	n.id = id
	return &n
}

func (l *Lambda) Prefix() *Space { return l.prefix }

func (l *Lambda) WithPrefix(prefix *Space) *Lambda {
	if l.prefix == prefix {
		return l
	}
	n := *l
	n.prefix = prefix
	return &n
}

func (l *Lambda) Markers() *lst.Markers { return l.markers }

func (l *Lambda) WithMarkers(markers *lst.Markers) *Lambda {
	if l.markers == markers {
		return l
	}
	n := *l
	n.markers = markers
	return &n
}

func (l *Lambda) Parameters() *LambdaParameters { return l.parameters }

func (l *Lambda) WithParameters(parameters *LambdaParameters) *Lambda {
	if l.parameters == parameters {
		return l
	}
	n := *l
	n.parameters = parameters
	return &n
}

func (l *Lambda) Arrow() *Space { return l.arrow }

func (l *Lambda) WithArrow(arrow *Space) *Lambda {
	if l.arrow == arrow {
		return l
	}
	n := *l
	n.arrow = arrow
	return &n
}

func (l *Lambda) Body() J { return l.body }

func (l *Lambda) WithBody(body J) *Lambda {
	if l.body == body {
		return l
	}
	n := *l
	n.body = body
	return &n
}

func (l *Lambda) Type() types.JavaType { return l.typ }

func (l *Lambda) WithType(typ types.JavaType) *Lambda {
	if l.typ == typ {
		return l
	}
	n := *l
	n.typ = typ
	return &n
}

func (*Lambda) isExpression() {}
func (*Lambda) isStatement() {}

// LambdaParameters is the parameter list of a lambda.
type LambdaParameters struct {
	id            uuid.UUID
	prefix        *Space
	markers       *lst.Markers
	parenthesized bool
	parameters    []*RightPadded[J]
}

// NewLambdaParameters creates a LambdaParameters.
func NewLambdaParameters(id uuid.UUID, prefix *Space, markers *lst.Markers, parenthesized bool, parameters []*RightPadded[J]) *LambdaParameters {
	return &LambdaParameters{
		id:            id,
		prefix:        prefix,
		markers:       markers,
		parenthesized: parenthesized,
		parameters:    nilIfEmpty(parameters),
	}
}

func (lp *LambdaParameters) ID() uuid.UUID { return lp.id }

func (lp *LambdaParameters) WithID(id uuid.UUID) *LambdaParameters {
	if lp.id == id {
		return lp
	}
	n := *lp
	n.id = id
	return &n
}

func (lp *LambdaParameters) Prefix() *Space { return lp.prefix }

func (lp *LambdaParameters) WithPrefix(prefix *Space) *LambdaParameters {
	if lp.prefix == prefix {
		return lp
	}
	n := *lp
	n.prefix = prefix
	return &n
}

func (lp *LambdaParameters) Markers() *lst.Markers { return lp.markers }

func (lp *LambdaParameters) WithMarkers(markers *lst.Markers) *LambdaParameters {
	if lp.markers == markers {
		return lp
	}
	n := *lp
	n.markers = markers
	return &n
}

func (lp *LambdaParameters) Parenthesized() bool { return lp.parenthesized }

func (lp *LambdaParameters) WithParenthesized(parenthesized bool) *LambdaParameters {
	if lp.parenthesized == parenthesized {
		return lp
	}
	n := *lp
	n.parenthesized = parenthesized
	return &n
}

func (lp *LambdaParameters) Parameters() []J { return rightPaddedElements(lp.parameters) }

func (lp *LambdaParameters) WithParameters(parameters []J) *LambdaParameters {
	return lp.Padding().WithParameters(withRightPaddedElements(lp.parameters, parameters))
}

// LambdaParametersPadding exposes the padded fields of a LambdaParameters.
type LambdaParametersPadding struct{ t *LambdaParameters }

// Padding returns the padded view of lp.
func (lp *LambdaParameters) Padding() LambdaParametersPadding { return LambdaParametersPadding{t: lp} }

// Parameters returns the node's own slice; copy it before modifying.
func (p LambdaParametersPadding) Parameters() []*RightPadded[J] { return p.t.parameters }

func (p LambdaParametersPadding) WithParameters(parameters []*RightPadded[J]) *LambdaParameters {
	if lst.SameSlice(p.t.parameters, parameters) {
		return p.t
	}
	n := *p.t
	n.parameters = nilIfEmpty(parameters)
	return &n
}

// Literal is a literal value. Value holds nil, bool, int32, int64, float32, float64 or string.
type Literal struct {
	id             uuid.UUID
	prefix         *Space
	markers        *lst.Markers
	value          any
	valueSource    string
	unicodeEscapes []*UnicodeEscape
	typ            types.JavaType
}

// NewLiteral creates a Literal.
func NewLiteral(id uuid.UUID, prefix *Space, markers *lst.Markers, value any, valueSource string, unicodeEscapes []*UnicodeEscape, typ types.JavaType) *Literal {
	return &Literal{
		id:             id,
		prefix:         prefix,
		markers:        markers,
		value:          value,
		valueSource:    valueSource,
		unicodeEscapes: nilIfEmpty(unicodeEscapes),
		typ:            typ,
	}
}

func (l *Literal) ID() uuid.UUID { return l.id }

func (l *Literal) WithID(id uuid.UUID) *Literal {
	if l.id == id {
		return l
	}
	n := *l
	n.id = id
	return &n
}

func (l *Literal) Prefix() *Space { return l.prefix }

func (l *Literal) WithPrefix(prefix *Space) *Literal {
	if l.prefix == prefix {
		return l
	}
	n := *l
	n.prefix = prefix
	return &n
}

func (l *Literal) Markers() *lst.Markers { return l.markers }

func (l *Literal) WithMarkers(markers *lst.Markers) *Literal {
	if l.markers == markers {
		return l
	}
	n := *l
	n.markers = markers
	return &n
}

func (l *Literal) Value() any { return l.value }

func (l *Literal) WithValue(value any) *Literal {
	if lst.Same(l.value, value) {
		return l
	}
	n := *l
	n.value = value
	return &n
}

func (l *Literal) ValueSource() string { return l.valueSource }

func (l *Literal) WithValueSource(valueSource string) *Literal {
	if l.valueSource == valueSource {
		return l
	}
	n := *l
	n.valueSource = valueSource
	return &n
}

// UnicodeEscapes returns the node's own slice; copy it before modifying.
func (l *Literal) UnicodeEscapes() []*UnicodeEscape { return l.unicodeEscapes }

func (l *Literal) WithUnicodeEscapes(unicodeEscapes []*UnicodeEscape) *Literal {
	if lst.SameSlice(l.unicodeEscapes, unicodeEscapes) {
		return l
	}
	n := *l
	n.unicodeEscapes = nilIfEmpty(unicodeEscapes)
	return &n
}

func (l *Literal) Type() types.JavaType { return l.typ }

func (l *Literal) WithType(typ types.JavaType) *Literal {
	if l.typ == typ {
		return l
	}
	n := *l
	n.typ = typ
	return &n
}

func (*Literal) isExpression() {}

// MemberReference is a method reference such as String::valueOf.
type MemberReference struct {
	id             uuid.UUID
	prefix         *Space
	markers        *lst.Markers
	containing     *RightPadded[Expression]
	typeParameters *Container[Expression]
	reference      *LeftPadded[*Identifier]
	typ            types.JavaType
	methodType     *types.Method
	variableType   *types.Variable
}

// NewMemberReference creates a MemberReference.
func NewMemberReference(id uuid.UUID, prefix *Space, markers *lst.Markers, containing *RightPadded[Expression], typeParameters *Container[Expression], reference *LeftPadded[*Identifier], typ types.JavaType, methodType *types.Method, variableType *types.Variable) *MemberReference {
	return &MemberReference{
		id:             id,
		prefix:         prefix,
		markers:        markers,
		containing:     containing,
		typeParameters: typeParameters,
		reference:      reference,
		typ:            typ,
		methodType:     methodType,
		variableType:   variableType,
	}
}

func (mr *MemberReference) ID() uuid.UUID { return mr.id }

func (mr *MemberReference) WithID(id uuid.UUID) *MemberReference {
	if mr.id == id {
		return mr
	}
	n := *mr
	n.id = id
	return &n
}

func (mr *MemberReference) Prefix() *Space { return mr.prefix }

func (mr *MemberReference) WithPrefix(prefix *Space) *MemberReference {
	if mr.prefix == prefix {
		return mr
	}
	n := *mr
	n.prefix = prefix
	return &n
}

func (mr *MemberReference) Markers() *lst.Markers { return mr.markers }

func (mr *MemberReference) WithMarkers(markers *lst.Markers) *MemberReference {
	if mr.markers == markers {
		return mr
	}
	n := *mr
	n.markers = markers
	return &n
}

func (mr *MemberReference) Containing() Expression { return mr.containing.Element() }

func (mr *MemberReference) WithContaining(containing Expression) *MemberReference {
	return mr.Padding().WithContaining(withRightElement(mr.containing, containing))
}

func (mr *MemberReference) TypeParameters() []Expression { return mr.typeParameters.Elements() }

func (mr *MemberReference) WithTypeParameters(typeParameters []Expression) *MemberReference {
	return mr.Padding().WithTypeParameters(withContainerElements(mr.typeParameters, typeParameters))
}

func (mr *MemberReference) Reference() *Identifier { return mr.reference.Element() }

func (mr *MemberReference) WithReference(reference *Identifier) *MemberReference {
	return mr.Padding().WithReference(withLeftElement(mr.reference, reference))
}

func (mr *MemberReference) Type() types.JavaType { return mr.typ }

func (mr *MemberReference) WithType(typ types.JavaType) *MemberReference {
	if mr.typ == typ {
		return mr
	}
	n := *mr
	n.typ = typ
	return &n
}

func (mr *MemberReference) MethodType() *types.Method { return mr.methodType }

func (mr *MemberReference) WithMethodType(methodType *types.Method) *MemberReference {
	if mr.methodType == methodType {
		return mr
	}
	n := *mr
	n.methodType = methodType
	return &n
}

func (mr *MemberReference) VariableType() *types.Variable { return mr.variableType }

func (mr *MemberReference) WithVariableType(variableType *types.Variable) *MemberReference {
	if mr.variableType == variableType {
		return mr
	}
	n := *mr
	n.variableType = variableType
	return &n
}

func (*MemberReference) isExpression() {}

// MemberReferencePadding exposes the padded fields of a MemberReference.
type MemberReferencePadding struct{ t *MemberReference }

// Padding returns the padded view of mr.
func (mr *MemberReference) Padding() MemberReferencePadding { return MemberReferencePadding{t: mr} }

func (p MemberReferencePadding) Containing() *RightPadded[Expression] { return p.t.containing }

func (p MemberReferencePadding) WithContaining(containing *RightPadded[Expression]) *MemberReference {
	if p.t.containing == containing {
		return p.t
	}
	n := *p.t
	n.containing = containing
	return &n
}

func (p MemberReferencePadding) TypeParameters() *Container[Expression] { return p.t.typeParameters }

func (p MemberReferencePadding) WithTypeParameters(typeParameters *Container[Expression]) *MemberReference {
	if p.t.typeParameters == typeParameters {
		return p.t
	}
	n := *p.t
	n.typeParameters = typeParameters
	return &n
}

func (p MemberReferencePadding) Reference() *LeftPadded[*Identifier] { return p.t.reference }

func (p MemberReferencePadding) WithReference(reference *LeftPadded[*Identifier]) *MemberReference {
	if p.t.reference == reference {
		return p.t
	}
	n := *p.t
	n.reference = reference
	return &n
}

// MethodInvocation is a method call.
type MethodInvocation struct {
	id             uuid.UUID
	prefix         *Space
	markers        *lst.Markers
	selectExpr     *RightPadded[Expression]
	typeParameters *Container[Expression]
	name           *Identifier
	arguments      *Container[Expression]
	methodType     *types.Method
}

// NewMethodInvocation creates a MethodInvocation.
func NewMethodInvocation(id uuid.UUID, prefix *Space, markers *lst.Markers, selectExpr *RightPadded[Expression], typeParameters *Container[Expression], name *Identifier, arguments *Container[Expression], methodType *types.Method) *MethodInvocation {
	return &MethodInvocation{
		id:             id,
		prefix:         prefix,
		markers:        markers,
		selectExpr:     selectExpr,
		typeParameters: typeParameters,
		name:           name,
		arguments:      arguments,
		methodType:     methodType,
	}
}

func (mi *MethodInvocation) ID() uuid.UUID { return mi.id }

func (mi *MethodInvocation) WithID(id uuid.UUID) *MethodInvocation {
	if mi.id == id {
		return mi
	}
	n := *mi
	n.id = id
	return &n
}

func (mi *MethodInvocation) Prefix() *Space { return mi.prefix }

func (mi *MethodInvocation) WithPrefix(prefix *Space) *MethodInvocation {
	if mi.prefix == prefix {
		return mi
	}
	n := *mi
	n.prefix = prefix
	return &n
}

func (mi *MethodInvocation) Markers() *lst.Markers { return mi.markers }

func (mi *MethodInvocation) WithMarkers(markers *lst.Markers) *MethodInvocation {
	if mi.markers == markers {
		return mi
	}
	n := *mi
	n.markers = markers
	return &n
}

func (mi *MethodInvocation) Select() Expression { return mi.selectExpr.Element() }

func (mi *MethodInvocation) WithSelect(selectExpr Expression) *MethodInvocation {
	return mi.Padding().WithSelect(withRightElement(mi.selectExpr, selectExpr))
}

func (mi *MethodInvocation) TypeParameters() []Expression { return mi.typeParameters.Elements() }

func (mi *MethodInvocation) WithTypeParameters(typeParameters []Expression) *MethodInvocation {
	return mi.Padding().WithTypeParameters(withContainerElements(mi.typeParameters, typeParameters))
}

func (mi *MethodInvocation) Name() *Identifier { return mi.name }

func (mi *MethodInvocation) WithName(name *Identifier) *MethodInvocation {
	if mi.name == name {
		return mi
	}
	n := *mi
	n.name = name
	return &n
}

func (mi *MethodInvocation) Arguments() []Expression { return mi.arguments.Elements() }

func (mi *MethodInvocation) WithArguments(arguments []Expression) *MethodInvocation {
	return mi.Padding().WithArguments(withContainerElements(mi.arguments, arguments))
}

func (mi *MethodInvocation) MethodType() *types.Method { return mi.methodType }

func (mi *MethodInvocation) WithMethodType(methodType *types.Method) *MethodInvocation {
	if mi.methodType == methodType {
		return mi
	}
	n := *mi
	n.methodType = methodType
	return &n
}

func (mi *MethodInvocation) Type() types.JavaType { return returnTypeOf(mi.methodType) }

func (*MethodInvocation) isExpression() {}
func (*MethodInvocation) isStatement() {}

// MethodInvocationPadding exposes the padded fields of a MethodInvocation.
type MethodInvocationPadding struct{ t *MethodInvocation }

// Padding returns the padded view of mi.
func (mi *MethodInvocation) Padding() MethodInvocationPadding { return MethodInvocationPadding{t: mi} }

func (p MethodInvocationPadding) Select() *RightPadded[Expression] { return p.t.selectExpr }

func (p MethodInvocationPadding) WithSelect(selectExpr *RightPadded[Expression]) *MethodInvocation {
	if p.t.selectExpr == selectExpr {
		return p.t
	}
	n := *p.t
	n.selectExpr = selectExpr
	return &n
}

func (p MethodInvocationPadding) TypeParameters() *Container[Expression] { return p.t.typeParameters }

func (p MethodInvocationPadding) WithTypeParameters(typeParameters *Container[Expression]) *MethodInvocation {
	if p.t.typeParameters == typeParameters {
		return p.t
	}
	n := *p.t
	n.typeParameters = typeParameters
	return &n
}

func (p MethodInvocationPadding) Arguments() *Container[Expression] { return p.t.arguments }

func (p MethodInvocationPadding) WithArguments(arguments *Container[Expression]) *MethodInvocation {
	if p.t.arguments == arguments {
		return p.t
	}
	n := *p.t
	n.arguments = arguments
	return &n
}

// NewArray is an array creation expression or array initializer.
type NewArray struct {
	id             uuid.UUID
	prefix         *Space
	markers        *lst.Markers
	typeExpression TypeTree
	dimensions     []*ArrayDimension
	initializer    *Container[Expression]
	typ            types.JavaType
}

// NewNewArray creates a NewArray.
func NewNewArray(id uuid.UUID, prefix *Space, markers *lst.Markers, typeExpression TypeTree, dimensions []*ArrayDimension, initializer *Container[Expression], typ types.JavaType) *NewArray {
	return &NewArray{
		id:             id,
		prefix:         prefix,
		markers:        markers,
		typeExpression: typeExpression,
		dimensions:     nilIfEmpty(dimensions),
		initializer:    initializer,
		typ:            typ,
	}
}

func (na *NewArray) ID() uuid.UUID { return na.id }

func (na *NewArray) WithID(id uuid.UUID) *NewArray {
	if na.id == id {
		return na
	}
	n := *na
	n.id = id
	return &n
}

func (na *NewArray) Prefix() *Space { return na.prefix }

func (na *NewArray) WithPrefix(prefix *Space) *NewArray {
	if na.prefix == prefix {
		return na
	}
	n := *na
	n.prefix = prefix
	return &n
}

func (na *NewArray) Markers() *lst.Markers { return na.markers }

func (na *NewArray) WithMarkers(markers *lst.Markers) *NewArray {
	if na.markers == markers {
		return na
	}
	n := *na
	n.markers = markers
	return &n
}

func (na *NewArray) TypeExpression() TypeTree { return na.typeExpression }

func (na *NewArray) WithTypeExpression(typeExpression TypeTree) *NewArray {
	if na.typeExpression == typeExpression {
		return na
	}
	n := *na
	n.typeExpression = typeExpression
	return &n
}

// Dimensions returns the node's own slice; copy it before modifying.
func (na *NewArray) Dimensions() []*ArrayDimension { return na.dimensions }

func (na *NewArray) WithDimensions(dimensions []*ArrayDimension) *NewArray {
	if lst.SameSlice(na.dimensions, dimensions) {
		return na
	}
	n := *na
	n.dimensions = nilIfEmpty(dimensions)
	return &n
}

func (na *NewArray) Initializer() []Expression { return na.initializer.Elements() }

func (na *NewArray) WithInitializer(initializer []Expression) *NewArray {
	return na.Padding().WithInitializer(withContainerElements(na.initializer, initializer))
}

func (na *NewArray) Type() types.JavaType { return na.typ }

func (na *NewArray) WithType(typ types.JavaType) *NewArray {
	if na.typ == typ {
		return na
	}
	n := *na
	n.typ = typ
	return &n
}

func (*NewArray) isExpression() {}

// NewArrayPadding exposes the padded fields of a NewArray.
type NewArrayPadding struct{ t *NewArray }

// Padding returns the padded view of na.
func (na *NewArray) Padding() NewArrayPadding { return NewArrayPadding{t: na} }

func (p NewArrayPadding) Initializer() *Container[Expression] { return p.t.initializer }

func (p NewArrayPadding) WithInitializer(initializer *Container[Expression]) *NewArray {
	if p.t.initializer == initializer {
		return p.t
	}
	n := *p.t
	n.initializer = initializer
	return &n
}

// NewClass is an instance creation expression, possibly with an anonymous body.
type NewClass struct {
	id              uuid.UUID
	prefix          *Space
	markers         *lst.Markers
	enclosing       *RightPadded[Expression]
	newKeyword      *Space
	clazz           TypeTree
	arguments       *Container[Expression]
	body            *Block
	constructorType *types.Method
}

// NewNewClass creates a NewClass.
func NewNewClass(id uuid.UUID, prefix *Space, markers *lst.Markers, enclosing *RightPadded[Expression], newKeyword *Space, clazz TypeTree, arguments *Container[Expression], body *Block, constructorType *types.Method) *NewClass {
	return &NewClass{
		id:              id,
		prefix:          prefix,
		markers:         markers,
		enclosing:       enclosing,
		newKeyword:      newKeyword,
		clazz:           clazz,
		arguments:       arguments,
		body:            body,
		constructorType: constructorType,
	}
}

func (nc *NewClass) ID() uuid.UUID { return nc.id }

func (nc *NewClass) WithID(id uuid.UUID) *NewClass {
	if nc.id == id {
		return nc
	}
	n := *nc
	n.id = id
	return &n
}

func (nc *NewClass) Prefix() *Space { return nc.prefix }

func (nc *NewClass) WithPrefix(prefix *Space) *NewClass {
	if nc.prefix == prefix {
		return nc
	}
	n := *nc
	n.prefix = prefix
	return &n
}

func (nc *NewClass) Markers() *lst.Markers { return nc.markers }

func (nc *NewClass) WithMarkers(markers *lst.Markers) *NewClass {
	if nc.markers == markers {
		return nc
	}
	n := *nc
	n.markers = markers
	return &n
}

func (nc *NewClass) Enclosing() Expression { return nc.enclosing.Element() }

func (nc *NewClass) WithEnclosing(enclosing Expression) *NewClass {
	return nc.Padding().WithEnclosing(withRightElement(nc.enclosing, enclosing))
}

func (nc *NewClass) New() *Space { return nc.newKeyword }

func (nc *NewClass) WithNew(newKeyword *Space) *NewClass {
	if nc.newKeyword == newKeyword {
		return nc
	}
	n := *nc
	n.newKeyword = newKeyword
	return &n
}

func (nc *NewClass) Clazz() TypeTree { return nc.clazz }

func (nc *NewClass) WithClazz(clazz TypeTree) *NewClass {
	if nc.clazz == clazz {
		return nc
	}
	n := *nc
	n.clazz = clazz
	return &n
}

func (nc *NewClass) Arguments() []Expression { return nc.arguments.Elements() }

func (nc *NewClass) WithArguments(arguments []Expression) *NewClass {
	return nc.Padding().WithArguments(withContainerElements(nc.arguments, arguments))
}

func (nc *NewClass) Body() *Block { return nc.body }

func (nc *NewClass) WithBody(body *Block) *NewClass {
	if nc.body == body {
		return nc
	}
	n := *nc
	n.body = body
	return &n
}

func (nc *NewClass) ConstructorType() *types.Method { return nc.constructorType }

func (nc *NewClass) WithConstructorType(constructorType *types.Method) *NewClass {
	if nc.constructorType == constructorType {
		return nc
	}
	n := *nc
	n.constructorType = constructorType
	return &n
}

func (nc *NewClass) Type() types.JavaType { return returnTypeOf(nc.constructorType) }

func (*NewClass) isExpression() {}
func (*NewClass) isStatement() {}

// NewClassPadding exposes the padded fields of a NewClass.
type NewClassPadding struct{ t *NewClass }

// Padding returns the padded view of nc.
func (nc *NewClass) Padding() NewClassPadding { return NewClassPadding{t: nc} }

func (p NewClassPadding) Enclosing() *RightPadded[Expression] { return p.t.enclosing }

func (p NewClassPadding) WithEnclosing(enclosing *RightPadded[Expression]) *NewClass {
	if p.t.enclosing == enclosing {
		return p.t
	}
	n := *p.t
	n.enclosing = enclosing
	return &n
}

func (p NewClassPadding) Arguments() *Container[Expression] { return p.t.arguments }

func (p NewClassPadding) WithArguments(arguments *Container[Expression]) *NewClass {
	if p.t.arguments == arguments {
		return p.t
	}
	n := *p.t
	n.arguments = arguments
	return &n
}

// MethodType returns the constructor signature.
func (nc *NewClass) MethodType() *types.Method { return nc.constructorType }

// Parentheses is a parenthesized expression.
type Parentheses struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	tree    *RightPadded[J]
}

// NewParentheses creates a Parentheses.
func NewParentheses(id uuid.UUID, prefix *Space, markers *lst.Markers, tree *RightPadded[J]) *Parentheses {
	return &Parentheses{
		id:      id,
		prefix:  prefix,
		markers: markers,
		tree:    tree,
	}
}

func (pa *Parentheses) ID() uuid.UUID { return pa.id }

func (pa *Parentheses) WithID(id uuid.UUID) *Parentheses {
	if pa.id == id {
		return pa
	}
	n := *pa
	n.id = id
	return &n
}

func (pa *Parentheses) Prefix() *Space { return pa.prefix }

func (pa *Parentheses) WithPrefix(prefix *Space) *Parentheses {
	if pa.prefix == prefix {
		return pa
	}
	n := *pa
	n.prefix = prefix
	return &n
}

func (pa *Parentheses) Markers() *lst.Markers { return pa.markers }

func (pa *Parentheses) WithMarkers(markers *lst.Markers) *Parentheses {
	if pa.markers == markers {
		return pa
	}
	n := *pa
	n.markers = markers
	return &n
}

func (pa *Parentheses) Tree() J { return pa.tree.Element() }

func (pa *Parentheses) WithTree(tree J) *Parentheses {
	return pa.Padding().WithTree(withRightElement(pa.tree, tree))
}

func (pa *Parentheses) Type() types.JavaType { return typeOf(pa.tree.Element()) }

func (*Parentheses) isExpression() {}

// ParenthesesPadding exposes the padded fields of a Parentheses.
type ParenthesesPadding struct{ t *Parentheses }

// Padding returns the padded view of pa.
func (pa *Parentheses) Padding() ParenthesesPadding { return ParenthesesPadding{t: pa} }

func (p ParenthesesPadding) Tree() *RightPadded[J] { return p.t.tree }

func (p ParenthesesPadding) WithTree(tree *RightPadded[J]) *Parentheses {
	if p.t.tree == tree {
		return p.t
	}
	n := *p.t
	n.tree = tree
	return &n
}

// SwitchExpression is a switch used as an expression.
type SwitchExpression struct {
	id       uuid.UUID
	prefix   *Space
	markers  *lst.Markers
	selector *ControlParentheses
	cases    *Block
	typ      types.JavaType
}

// NewSwitchExpression creates a SwitchExpression.
func NewSwitchExpression(id uuid.UUID, prefix *Space, markers *lst.Markers, selector *ControlParentheses, cases *Block, typ types.JavaType) *SwitchExpression {
	return &SwitchExpression{
		id:       id,
		prefix:   prefix,
		markers:  markers,
		selector: selector,
		cases:    cases,
		typ:      typ,
	}
}

func (se *SwitchExpression) ID() uuid.UUID { return se.id }

func (se *SwitchExpression) WithID(id uuid.UUID) *SwitchExpression {
	if se.id == id {
		return se
	}
	n := *se
	n.id = id
	return &n
}

func (se *SwitchExpression) Prefix() *Space { return se.prefix }

func (se *SwitchExpression) WithPrefix(prefix *Space) *SwitchExpression {
	if se.prefix == prefix {
		return se
	}
	n := *se
	n.prefix = prefix
	return &n
}

func (se *SwitchExpression) Markers() *lst.Markers { return se.markers }

func (se *SwitchExpression) WithMarkers(markers *lst.Markers) *SwitchExpression {
	if se.markers == markers {
		return se
	}
	n := *se
	n.markers = markers
	return &n
}

func (se *SwitchExpression) Selector() *ControlParentheses { return se.selector }

func (se *SwitchExpression) WithSelector(selector *ControlParentheses) *SwitchExpression {
	if se.selector == selector {
		return se
	}
	n := *se
	n.selector = selector
	return &n
}

func (se *SwitchExpression) Cases() *Block { return se.cases }

func (se *SwitchExpression) WithCases(cases *Block) *SwitchExpression {
	if se.cases == cases {
		return se
	}
	n := *se
	n.cases = cases
	return &n
}

func (se *SwitchExpression) Type() types.JavaType { return se.typ }

func (se *SwitchExpression) WithType(typ types.JavaType) *SwitchExpression {
	if se.typ == typ {
		return se
	}
	n := *se
	n.typ = typ
	return &n
}

func (*SwitchExpression) isExpression() {}

// Ternary is a conditional expression a ? b : c.
type Ternary struct {
	id        uuid.UUID
	prefix    *Space
	markers   *lst.Markers
	condition Expression
	truePart  *LeftPadded[Expression]
	falsePart *LeftPadded[Expression]
	typ       types.JavaType
}

// NewTernary creates a Ternary.
func NewTernary(id uuid.UUID, prefix *Space, markers *lst.Markers, condition Expression, truePart *LeftPadded[Expression], falsePart *LeftPadded[Expression], typ types.JavaType) *Ternary {
	return &Ternary{
		id:        id,
		prefix:    prefix,
		markers:   markers,
		condition: condition,
		truePart:  truePart,
		falsePart: falsePart,
		typ:       typ,
	}
}

func (tern *Ternary) ID() uuid.UUID { return tern.id }

func (tern *Ternary) WithID(id uuid.UUID) *Ternary {
	if tern.id == id {
		return tern
	}
	n := *tern
	n.id = id
	return &n
}

func (tern *Ternary) Prefix() *Space { return tern.prefix }

func (tern *Ternary) WithPrefix(prefix *Space) *Ternary {
	if tern.prefix == prefix {
		return tern
	}
	n := *tern
	n.prefix = prefix
	return &n
}

func (tern *Ternary) Markers() *lst.Markers { return tern.markers }

func (tern *Ternary) WithMarkers(markers *lst.Markers) *Ternary {
	if tern.markers == markers {
		return tern
	}
	n := *tern
	n.markers = markers
	return &n
}

func (tern *Ternary) Condition() Expression { return tern.condition }

func (tern *Ternary) WithCondition(condition Expression) *Ternary {
	if tern.condition == condition {
		return tern
	}
	n := *tern
	n.condition = condition
	return &n
}

func (tern *Ternary) TruePart() Expression { return tern.truePart.Element() }

func (tern *Ternary) WithTruePart(truePart Expression) *Ternary {
	return tern.Padding().WithTruePart(withLeftElement(tern.truePart, truePart))
}

func (tern *Ternary) FalsePart() Expression { return tern.falsePart.Element() }

func (tern *Ternary) WithFalsePart(falsePart Expression) *Ternary {
	return tern.Padding().WithFalsePart(withLeftElement(tern.falsePart, falsePart))
}

func (tern *Ternary) Type() types.JavaType { return tern.typ }

func (tern *Ternary) WithType(typ types.JavaType) *Ternary {
	if tern.typ == typ {
		return tern
	}
	n := *tern
	n.typ = typ
	return &n
}

func (*Ternary) isExpression() {}
func (*Ternary) isStatement() {}

// TernaryPadding exposes the padded fields of a Ternary.
type TernaryPadding struct{ t *Ternary }

// Padding returns the padded view of tern.
func (tern *Ternary) Padding() TernaryPadding { return TernaryPadding{t: tern} }

func (p TernaryPadding) TruePart() *LeftPadded[Expression] { return p.t.truePart }

func (p TernaryPadding) WithTruePart(truePart *LeftPadded[Expression]) *Ternary {
	if p.t.truePart == truePart {
		return p.t
	}
	n := *p.t
	n.truePart = truePart
	return &n
}

func (p TernaryPadding) FalsePart() *LeftPadded[Expression] { return p.t.falsePart }

func (p TernaryPadding) WithFalsePart(falsePart *LeftPadded[Expression]) *Ternary {
	if p.t.falsePart == falsePart {
		return p.t
	}
	n := *p.t
	n.falsePart = falsePart
	return &n
}

// TypeCast is a cast expression.
type TypeCast struct {
	id         uuid.UUID
	prefix     *Space
	markers    *lst.Markers
	clazz      *ControlParentheses
	expression Expression
}

// NewTypeCast creates a TypeCast.
func NewTypeCast(id uuid.UUID, prefix *Space, markers *lst.Markers, clazz *ControlParentheses, expression Expression) *TypeCast {
	return &TypeCast{
		id:         id,
		prefix:     prefix,
		markers:    markers,
		clazz:      clazz,
		expression: expression,
	}
}

func (tc *TypeCast) ID() uuid.UUID { return tc.id }

func (tc *TypeCast) WithID(id uuid.UUID) *TypeCast {
	if tc.id == id {
		return tc
	}
	n := *tc
	n.id = id
	return &n
}

func (tc *TypeCast) Prefix() *Space { return tc.prefix }

func (tc *TypeCast) WithPrefix(prefix *Space) *TypeCast {
	if tc.prefix == prefix {
		return tc
	}
	n := *tc
	n.prefix = prefix
	return &n
}

func (tc *TypeCast) Markers() *lst.Markers { return tc.markers }

func (tc *TypeCast) WithMarkers(markers *lst.Markers) *TypeCast {
	if tc.markers == markers {
		return tc
	}
	n := *tc
	n.markers = markers
	return &n
}

func (tc *TypeCast) Clazz() *ControlParentheses { return tc.clazz }

func (tc *TypeCast) WithClazz(clazz *ControlParentheses) *TypeCast {
	if tc.clazz == clazz {
		return tc
	}
	n := *tc
	n.clazz = clazz
	return &n
}

func (tc *TypeCast) Expression() Expression { return tc.expression }

func (tc *TypeCast) WithExpression(expression Expression) *TypeCast {
	if tc.expression == expression {
		return tc
	}
	n := *tc
	n.expression = expression
	return &n
}

func (tc *TypeCast) Type() types.JavaType { return typeOf(tc.clazz) }

func (*TypeCast) isExpression() {}

// Unary is a unary operation such as !a or i++.
type Unary struct {
	id         uuid.UUID
	prefix     *Space
	markers    *lst.Markers
	operator   *LeftPadded[UnaryOperator]
	expression Expression
	typ        types.JavaType
}

// NewUnary creates a Unary.
func NewUnary(id uuid.UUID, prefix *Space, markers *lst.Markers, operator *LeftPadded[UnaryOperator], expression Expression, typ types.JavaType) *Unary {
	return &Unary{
		id:         id,
		prefix:     prefix,
		markers:    markers,
		operator:   operator,
		expression: expression,
		typ:        typ,
	}
}

func (u *Unary) ID() uuid.UUID { return u.id }

func (u *Unary) WithID(id uuid.UUID) *Unary {
	if u.id == id {
		return u
	}
	n := *u
	n.id = id
	return &n
}

func (u *Unary) Prefix() *Space { return u.prefix }

func (u *Unary) WithPrefix(prefix *Space) *Unary {
	if u.prefix == prefix {
		return u
	}
	n := *u
	n.prefix = prefix
	return &n
}

func (u *Unary) Markers() *lst.Markers { return u.markers }

func (u *Unary) WithMarkers(markers *lst.Markers) *Unary {
	if u.markers == markers {
		return u
	}
	n := *u
	n.markers = markers
	return &n
}

func (u *Unary) Operator() UnaryOperator { return u.operator.Element() }

func (u *Unary) WithOperator(operator UnaryOperator) *Unary {
	return u.Padding().WithOperator(withLeftElement(u.operator, operator))
}

func (u *Unary) Expression() Expression { return u.expression }

func (u *Unary) WithExpression(expression Expression) *Unary {
	if u.expression == expression {
		return u
	}
	n := *u
	n.expression = expression
	return &n
}

func (u *Unary) Type() types.JavaType { return u.typ }

func (u *Unary) WithType(typ types.JavaType) *Unary {
	if u.typ == typ {
		return u
	}
	n := *u
	n.typ = typ
	return &n
}

func (*Unary) isExpression() {}
func (*Unary) isStatement() {}

// UnaryPadding exposes the padded fields of a Unary.
type UnaryPadding struct{ t *Unary }

// Padding returns the padded view of u.
func (u *Unary) Padding() UnaryPadding { return UnaryPadding{t: u} }

func (p UnaryPadding) Operator() *LeftPadded[UnaryOperator] { return p.t.operator }

func (p UnaryPadding) WithOperator(operator *LeftPadded[UnaryOperator]) *Unary {
	if p.t.operator == operator {
		return p.t
	}
	n := *p.t
	n.operator = operator
	return &n
}
