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

// Statements and their structural parts.

// Assert is an assert statement.
type Assert struct {
	id        uuid.UUID
	prefix    *Space
	markers   *lst.Markers
	condition Expression
	detail    *LeftPadded[Expression]
}

// NewAssert creates an Assert.
func NewAssert(id uuid.UUID, prefix *Space, markers *lst.Markers, condition Expression, detail *LeftPadded[Expression]) *Assert {
	return &Assert{
		id:        id,
		prefix:    prefix,
		markers:   markers,
		condition: condition,
		detail:    detail,
	}
}

func (a *Assert) ID() uuid.UUID { return a.id }

func (a *Assert) WithID(id uuid.UUID) *Assert {
	if a.id == id {
		return a
	}
	n := *a
	n.id = id
	return &n
}

func (a *Assert) Prefix() *Space { return a.prefix }

func (a *Assert) WithPrefix(prefix *Space) *Assert {
	if a.prefix == prefix {
		return a
	}
	n := *a
	n.prefix = prefix
	return &n
}

func (a *Assert) Markers() *lst.Markers { return a.markers }

func (a *Assert) WithMarkers(markers *lst.Markers) *Assert {
	if a.markers == markers {
		return a
	}
	n := *a
	n.markers = markers
	return &n
}

func (a *Assert) Condition() Expression { return a.condition }

func (a *Assert) WithCondition(condition Expression) *Assert {
	if a.condition == condition {
		return a
	}
	n := *a
	n.condition = condition
	return &n
}

func (a *Assert) Detail() Expression { return a.detail.Element() }

func (a *Assert) WithDetail(detail Expression) *Assert {
	return a.Padding().WithDetail(withLeftElement(a.detail, detail))
}

func (*Assert) isStatement() {}

// AssertPadding exposes the padded fields of an Assert.
type AssertPadding struct{ t *Assert }

// Padding returns the padded view of a.
func (a *Assert) Padding() AssertPadding { return AssertPadding{t: a} }

func (p AssertPadding) Detail() *LeftPadded[Expression] { return p.t.detail }

func (p AssertPadding) WithDetail(detail *LeftPadded[Expression]) *Assert {
	if p.t.detail == detail {
		return p.t
	}
	n := *p.t
	n.detail = detail
	return &n
}

// Block is a brace-delimited statement list, optionally a static initializer.
type Block struct {
	id         uuid.UUID
	prefix     *Space
	markers    *lst.Markers
	static     *RightPadded[bool]
	statements []*RightPadded[Statement]
	end        *Space
}

// NewBlock creates a Block.
func NewBlock(id uuid.UUID, prefix *Space, markers *lst.Markers, static *RightPadded[bool], statements []*RightPadded[Statement], end *Space) *Block {
	return &Block{
		id:         id,
		prefix:     prefix,
		markers:    markers,
		static:     static,
		statements: nilIfEmpty(statements),
		end:        end,
	}
}

func (b *Block) ID() uuid.UUID { return b.id }

func (b *Block) WithID(id uuid.UUID) *Block {
	if b.id == id {
		return b
	}
	n := *b
	n.id = id
	return &n
}

func (b *Block) Prefix() *Space { return b.prefix }

func (b *Block) WithPrefix(prefix *Space) *Block {
	if b.prefix == prefix {
		return b
	}
	n := *b
	n.prefix = prefix
	return &n
}

func (b *Block) Markers() *lst.Markers { return b.markers }

func (b *Block) WithMarkers(markers *lst.Markers) *Block {
	if b.markers == markers {
		return b
	}
	n := *b
	n.markers = markers
	return &n
}

func (b *Block) Static() bool { return b.static.Element() }

func (b *Block) WithStatic(static bool) *Block {
	return b.Padding().WithStatic(withRightElement(b.static, static))
}

func (b *Block) Statements() []Statement { return rightPaddedElements(b.statements) }

func (b *Block) WithStatements(statements []Statement) *Block {
	return b.Padding().WithStatements(withRightPaddedElements(b.statements, statements))
}

func (b *Block) End() *Space { return b.end }

func (b *Block) WithEnd(end *Space) *Block {
	if b.end == end {
		return b
	}
	n := *b
	n.end = end
	return &n
}

func (*Block) isStatement() {}

// BlockPadding exposes the padded fields of a Block.
type BlockPadding struct{ t *Block }

// Padding returns the padded view of b.
func (b *Block) Padding() BlockPadding { return BlockPadding{t: b} }

func (p BlockPadding) Static() *RightPadded[bool] { return p.t.static }

func (p BlockPadding) WithStatic(static *RightPadded[bool]) *Block {
	if p.t.static == static {
		return p.t
	}
	n := *p.t
	n.static = static
	return &n
}

// Statements returns the node's own slice; copy it before modifying.
func (p BlockPadding) Statements() []*RightPadded[Statement] { return p.t.statements }

func (p BlockPadding) WithStatements(statements []*RightPadded[Statement]) *Block {
	if lst.SameSlice(p.t.statements, statements) {
		return p.t
	}
	n := *p.t
	n.statements = nilIfEmpty(statements)
	return &n
}

// Break is a break statement.
type Break struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	label   *Identifier
}

// NewBreak creates a Break.
func NewBreak(id uuid.UUID, prefix *Space, markers *lst.Markers, label *Identifier) *Break {
	return &Break{
		id:      id,
		prefix:  prefix,
		markers: markers,
		label:   label,
	}
}

func (brk *Break) ID() uuid.UUID { return brk.id }

func (brk *Break) WithID(id uuid.UUID) *Break {
	if brk.id == id {
		return brk
	}
	n := *brk
	n.id = id
	return &n
}

func (brk *Break) Prefix() *Space { return brk.prefix }

func (brk *Break) WithPrefix(prefix *Space) *Break {
	if brk.prefix == prefix {
		return brk
	}
	n := *brk
	n.prefix = prefix
	return &n
}

func (brk *Break) Markers() *lst.Markers { return brk.markers }

func (brk *Break) WithMarkers(markers *lst.Markers) *Break {
	if brk.markers == markers {
		return brk
	}
	n := *brk
	n.markers = markers
	return &n
}

func (brk *Break) Label() *Identifier { return brk.label }

func (brk *Break) WithLabel(label *Identifier) *Break {
	if brk.label == label {
		return brk
	}
	n := *brk
	n.label = label
	return &n
}

func (*Break) isStatement() {}

// Case is one case or default clause of a switch.
type Case struct {
	id         uuid.UUID
	prefix     *Space
	markers    *lst.Markers
	caseType   CaseType
	caseLabels *Container[J]
	statements *Container[Statement]
	body       *RightPadded[J]
	guard      Expression
}

// NewCase creates a Case.
func NewCase(id uuid.UUID, prefix *Space, markers *lst.Markers, caseType CaseType, caseLabels *Container[J], statements *Container[Statement], body *RightPadded[J], guard Expression) *Case {
	return &Case{
		id:         id,
		prefix:     prefix,
		markers:    markers,
		caseType:   caseType,
		caseLabels: caseLabels,
		statements: statements,
		body:       body,
		guard:      guard,
	}
}

func (cs *Case) ID() uuid.UUID { return cs.id }

func (cs *Case) WithID(id uuid.UUID) *Case {
	if cs.id == id {
		return cs
	}
	n := *cs
	n.id = id
	return &n
}

func (cs *Case) Prefix() *Space { return cs.prefix }

func (cs *Case) WithPrefix(prefix *Space) *Case {
	if cs.prefix == prefix {
		return cs
	}
	n := *cs
	n.prefix = prefix
	return &n
}

func (cs *Case) Markers() *lst.Markers { return cs.markers }

func (cs *Case) WithMarkers(markers *lst.Markers) *Case {
	if cs.markers == markers {
		return cs
	}
	n := *cs
	n.markers = markers
	return &n
}

func (cs *Case) CaseType() CaseType { return cs.caseType }

func (cs *Case) WithCaseType(caseType CaseType) *Case {
	if cs.caseType == caseType {
		return cs
	}
	n := *cs
	n.caseType = caseType
	return &n
}

func (cs *Case) CaseLabels() []J { return cs.caseLabels.Elements() }

func (cs *Case) WithCaseLabels(caseLabels []J) *Case {
	return cs.Padding().WithCaseLabels(withContainerElements(cs.caseLabels, caseLabels))
}

func (cs *Case) Statements() []Statement { return cs.statements.Elements() }

func (cs *Case) WithStatements(statements []Statement) *Case {
	return cs.Padding().WithStatements(withContainerElements(cs.statements, statements))
}

func (cs *Case) Body() J { return cs.body.Element() }

func (cs *Case) WithBody(body J) *Case {
	return cs.Padding().WithBody(withRightElement(cs.body, body))
}

func (cs *Case) Guard() Expression { return cs.guard }

func (cs *Case) WithGuard(guard Expression) *Case {
	if cs.guard == guard {
		return cs
	}
	n := *cs
	n.guard = guard
	return &n
}

func (*Case) isStatement() {}

// CasePadding exposes the padded fields of a Case.
type CasePadding struct{ t *Case }

// Padding returns the padded view of cs.
func (cs *Case) Padding() CasePadding { return CasePadding{t: cs} }

func (p CasePadding) CaseLabels() *Container[J] { return p.t.caseLabels }

func (p CasePadding) WithCaseLabels(caseLabels *Container[J]) *Case {
	if p.t.caseLabels == caseLabels {
		return p.t
	}
	n := *p.t
	n.caseLabels = caseLabels
	return &n
}

func (p CasePadding) Statements() *Container[Statement] { return p.t.statements }

func (p CasePadding) WithStatements(statements *Container[Statement]) *Case {
	if p.t.statements == statements {
		return p.t
	}
	n := *p.t
	n.statements = statements
	return &n
}

func (p CasePadding) Body() *RightPadded[J] { return p.t.body }

func (p CasePadding) WithBody(body *RightPadded[J]) *Case {
	if p.t.body == body {
		return p.t
	}
	n := *p.t
	n.body = body
	return &n
}

// Continue is a continue statement.
type Continue struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	label   *Identifier
}

// NewContinue creates a Continue.
func NewContinue(id uuid.UUID, prefix *Space, markers *lst.Markers, label *Identifier) *Continue {
	return &Continue{
		id:      id,
		prefix:  prefix,
		markers: markers,
		label:   label,
	}
}

func (cont *Continue) ID() uuid.UUID { return cont.id }

func (cont *Continue) WithID(id uuid.UUID) *Continue {
	if cont.id == id {
		return cont
	}
	n := *cont
	n.id = id
	return &n
}

func (cont *Continue) Prefix() *Space { return cont.prefix }

func (cont *Continue) WithPrefix(prefix *Space) *Continue {
	if cont.prefix == prefix {
		return cont
	}
	n := *cont
	n.prefix = prefix
	return &n
}

func (cont *Continue) Markers() *lst.Markers { return cont.markers }

func (cont *Continue) WithMarkers(markers *lst.Markers) *Continue {
	if cont.markers == markers {
		return cont
	}
	n := *cont
	n.markers = markers
	return &n
}

func (cont *Continue) Label() *Identifier { return cont.label }

func (cont *Continue) WithLabel(label *Identifier) *Continue {
	if cont.label == label {
		return cont
	}
	n := *cont
	n.label = label
	return &n
}

func (*Continue) isStatement() {}

// DoWhileLoop is a do { } while (...) loop.
type DoWhileLoop struct {
	id             uuid.UUID
	prefix         *Space
	markers        *lst.Markers
	body           *RightPadded[Statement]
	whileCondition *LeftPadded[*ControlParentheses]
}

// NewDoWhileLoop creates a DoWhileLoop.
func NewDoWhileLoop(id uuid.UUID, prefix *Space, markers *lst.Markers, body *RightPadded[Statement], whileCondition *LeftPadded[*ControlParentheses]) *DoWhileLoop {
	return &DoWhileLoop{
		id:             id,
		prefix:         prefix,
		markers:        markers,
		body:           body,
		whileCondition: whileCondition,
	}
}

func (dwl *DoWhileLoop) ID() uuid.UUID { return dwl.id }

func (dwl *DoWhileLoop) WithID(id uuid.UUID) *DoWhileLoop {
	if dwl.id == id {
		return dwl
	}
	n := *dwl
	n.id = id
	return &n
}

func (dwl *DoWhileLoop) Prefix() *Space { return dwl.prefix }

func (dwl *DoWhileLoop) WithPrefix(prefix *Space) *DoWhileLoop {
	if dwl.prefix == prefix {
		return dwl
	}
	n := *dwl
	n.prefix = prefix
	return &n
}

func (dwl *DoWhileLoop) Markers() *lst.Markers { return dwl.markers }

func (dwl *DoWhileLoop) WithMarkers(markers *lst.Markers) *DoWhileLoop {
	if dwl.markers == markers {
		return dwl
	}
	n := *dwl
	n.markers = markers
	return &n
}

func (dwl *DoWhileLoop) Body() Statement { return dwl.body.Element() }

func (dwl *DoWhileLoop) WithBody(body Statement) *DoWhileLoop {
	return dwl.Padding().WithBody(withRightElement(dwl.body, body))
}

func (dwl *DoWhileLoop) WhileCondition() *ControlParentheses { return dwl.whileCondition.Element() }

func (dwl *DoWhileLoop) WithWhileCondition(whileCondition *ControlParentheses) *DoWhileLoop {
	return dwl.Padding().WithWhileCondition(withLeftElement(dwl.whileCondition, whileCondition))
}

func (*DoWhileLoop) isStatement() {}

// DoWhileLoopPadding exposes the padded fields of a DoWhileLoop.
type DoWhileLoopPadding struct{ t *DoWhileLoop }

// Padding returns the padded view of dwl.
func (dwl *DoWhileLoop) Padding() DoWhileLoopPadding { return DoWhileLoopPadding{t: dwl} }

func (p DoWhileLoopPadding) Body() *RightPadded[Statement] { return p.t.body }

func (p DoWhileLoopPadding) WithBody(body *RightPadded[Statement]) *DoWhileLoop {
	if p.t.body == body {
		return p.t
	}
	n := *p.t
	n.body = body
	return &n
}

func (p DoWhileLoopPadding) WhileCondition() *LeftPadded[*ControlParentheses] { return p.t.whileCondition }

func (p DoWhileLoopPadding) WithWhileCondition(whileCondition *LeftPadded[*ControlParentheses]) *DoWhileLoop {
	if p.t.whileCondition == whileCondition {
		return p.t
	}
	n := *p.t
	n.whileCondition = whileCondition
	return &n
}

// Empty is an empty statement or an omitted expression.
type Empty struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
}

// NewEmpty creates an Empty.
func NewEmpty(id uuid.UUID, prefix *Space, markers *lst.Markers) *Empty {
	return &Empty{
		id:      id,
		prefix:  prefix,
		markers: markers,
	}
}

func (e *Empty) ID() uuid.UUID { return e.id }

func (e *Empty) WithID(id uuid.UUID) *Empty {
	if e.id == id {
		return e
	}
	n := *e
	n.id = id
	return &n
}

func (e *Empty) Prefix() *Space { return e.prefix }

func (e *Empty) WithPrefix(prefix *Space) *Empty {
	if e.prefix == prefix {
		return e
	}
	n := *e
	n.prefix = prefix
	return &n
}

func (e *Empty) Markers() *lst.Markers { return e.markers }

func (e *Empty) WithMarkers(markers *lst.Markers) *Empty {
	if e.markers == markers {
		return e
	}
	n := *e
	n.markers = markers
	return &n
}

func (*Empty) Type() types.JavaType { return nil }

func (*Empty) isExpression() {}
func (*Empty) isStatement() {}
func (*Empty) isNameTree() {}
func (*Empty) isTypeTree() {}

// ForEachLoop is an enhanced for loop.
type ForEachLoop struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	control *ForEachLoopControl
	body    *RightPadded[Statement]
}

// NewForEachLoop creates a ForEachLoop.
func NewForEachLoop(id uuid.UUID, prefix *Space, markers *lst.Markers, control *ForEachLoopControl, body *RightPadded[Statement]) *ForEachLoop {
	return &ForEachLoop{
		id:      id,
		prefix:  prefix,
		markers: markers,
		control: control,
		body:    body,
	}
}

func (fel *ForEachLoop) ID() uuid.UUID { return fel.id }

func (fel *ForEachLoop) WithID(id uuid.UUID) *ForEachLoop {
	if fel.id == id {
		return fel
	}
	n := *fel
	n.id = id
	return &n
}

func (fel *ForEachLoop) Prefix() *Space { return fel.prefix }

func (fel *ForEachLoop) WithPrefix(prefix *Space) *ForEachLoop {
	if fel.prefix == prefix {
		return fel
	}
	n := *fel
	n.prefix = prefix
	return &n
}

func (fel *ForEachLoop) Markers() *lst.Markers { return fel.markers }

func (fel *ForEachLoop) WithMarkers(markers *lst.Markers) *ForEachLoop {
	if fel.markers == markers {
		return fel
	}
	n := *fel
	n.markers = markers
	return &n
}

func (fel *ForEachLoop) Control() *ForEachLoopControl { return fel.control }

func (fel *ForEachLoop) WithControl(control *ForEachLoopControl) *ForEachLoop {
	if fel.control == control {
		return fel
	}
	n := *fel
	n.control = control
	return &n
}

func (fel *ForEachLoop) Body() Statement { return fel.body.Element() }

func (fel *ForEachLoop) WithBody(body Statement) *ForEachLoop {
	return fel.Padding().WithBody(withRightElement(fel.body, body))
}

func (*ForEachLoop) isStatement() {}

// ForEachLoopPadding exposes the padded fields of a ForEachLoop.
type ForEachLoopPadding struct{ t *ForEachLoop }

// Padding returns the padded view of fel.
func (fel *ForEachLoop) Padding() ForEachLoopPadding { return ForEachLoopPadding{t: fel} }

func (p ForEachLoopPadding) Body() *RightPadded[Statement] { return p.t.body }

func (p ForEachLoopPadding) WithBody(body *RightPadded[Statement]) *ForEachLoop {
	if p.t.body == body {
		return p.t
	}
	n := *p.t
	n.body = body
	return &n
}

// ForEachLoopControl is the parenthesized header of an enhanced for loop.
type ForEachLoopControl struct {
	id       uuid.UUID
	prefix   *Space
	markers  *lst.Markers
	variable *RightPadded[*VariableDeclarations]
	iterable *RightPadded[Expression]
}

// NewForEachLoopControl creates a ForEachLoopControl.
func NewForEachLoopControl(id uuid.UUID, prefix *Space, markers *lst.Markers, variable *RightPadded[*VariableDeclarations], iterable *RightPadded[Expression]) *ForEachLoopControl {
	return &ForEachLoopControl{
		id:       id,
		prefix:   prefix,
		markers:  markers,
		variable: variable,
		iterable: iterable,
	}
}

func (felc *ForEachLoopControl) ID() uuid.UUID { return felc.id }

func (felc *ForEachLoopControl) WithID(id uuid.UUID) *ForEachLoopControl {
	if felc.id == id {
		return felc
	}
	n := *felc
	n.id = id
	return &n
}

func (felc *ForEachLoopControl) Prefix() *Space { return felc.prefix }

func (felc *ForEachLoopControl) WithPrefix(prefix *Space) *ForEachLoopControl {
	if felc.prefix == prefix {
		return felc
	}
	n := *felc
	n.prefix = prefix
	return &n
}

func (felc *ForEachLoopControl) Markers() *lst.Markers { return felc.markers }

func (felc *ForEachLoopControl) WithMarkers(markers *lst.Markers) *ForEachLoopControl {
	if felc.markers == markers {
		return felc
	}
	n := *felc
	n.markers = markers
	return &n
}

func (felc *ForEachLoopControl) Variable() *VariableDeclarations { return felc.variable.Element() }

func (felc *ForEachLoopControl) WithVariable(variable *VariableDeclarations) *ForEachLoopControl {
	return felc.Padding().WithVariable(withRightElement(felc.variable, variable))
}

func (felc *ForEachLoopControl) Iterable() Expression { return felc.iterable.Element() }

func (felc *ForEachLoopControl) WithIterable(iterable Expression) *ForEachLoopControl {
	return felc.Padding().WithIterable(withRightElement(felc.iterable, iterable))
}

// ForEachLoopControlPadding exposes the padded fields of a ForEachLoopControl.
type ForEachLoopControlPadding struct{ t *ForEachLoopControl }

// Padding returns the padded view of felc.
func (felc *ForEachLoopControl) Padding() ForEachLoopControlPadding { return ForEachLoopControlPadding{t: felc} }

func (p ForEachLoopControlPadding) Variable() *RightPadded[*VariableDeclarations] { return p.t.variable }

func (p ForEachLoopControlPadding) WithVariable(variable *RightPadded[*VariableDeclarations]) *ForEachLoopControl {
	if p.t.variable == variable {
		return p.t
	}
	n := *p.t
	n.variable = variable
	return &n
}

func (p ForEachLoopControlPadding) Iterable() *RightPadded[Expression] { return p.t.iterable }

func (p ForEachLoopControlPadding) WithIterable(iterable *RightPadded[Expression]) *ForEachLoopControl {
	if p.t.iterable == iterable {
		return p.t
	}
	n := *p.t
	n.iterable = iterable
	return &n
}

// ForLoop is a classic three-clause for loop.
type ForLoop struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	control *ForLoopControl
	body    *RightPadded[Statement]
}

// NewForLoop creates a ForLoop.
func NewForLoop(id uuid.UUID, prefix *Space, markers *lst.Markers, control *ForLoopControl, body *RightPadded[Statement]) *ForLoop {
	return &ForLoop{
		id:      id,
		prefix:  prefix,
		markers: markers,
		control: control,
		body:    body,
	}
}

func (fl *ForLoop) ID() uuid.UUID { return fl.id }

func (fl *ForLoop) WithID(id uuid.UUID) *ForLoop {
	if fl.id == id {
		return fl
	}
	n := *fl
	n.id = id
	return &n
}

func (fl *ForLoop) Prefix() *Space { return fl.prefix }

func (fl *ForLoop) WithPrefix(prefix *Space) *ForLoop {
	if fl.prefix == prefix {
		return fl
	}
	n := *fl
	n.prefix = prefix
	return &n
}

func (fl *ForLoop) Markers() *lst.Markers { return fl.markers }

func (fl *ForLoop) WithMarkers(markers *lst.Markers) *ForLoop {
	if fl.markers == markers {
		return fl
	}
	n := *fl
	n.markers = markers
	return &n
}

func (fl *ForLoop) Control() *ForLoopControl { return fl.control }

func (fl *ForLoop) WithControl(control *ForLoopControl) *ForLoop {
	if fl.control == control {
		return fl
	}
	n := *fl
	n.control = control
	return &n
}

func (fl *ForLoop) Body() Statement { return fl.body.Element() }

func (fl *ForLoop) WithBody(body Statement) *ForLoop {
	return fl.Padding().WithBody(withRightElement(fl.body, body))
}

func (*ForLoop) isStatement() {}

// ForLoopPadding exposes the padded fields of a ForLoop.
type ForLoopPadding struct{ t *ForLoop }

// Padding returns the padded view of fl.
func (fl *ForLoop) Padding() ForLoopPadding { return ForLoopPadding{t: fl} }

func (p ForLoopPadding) Body() *RightPadded[Statement] { return p.t.body }

func (p ForLoopPadding) WithBody(body *RightPadded[Statement]) *ForLoop {
	if p.t.body == body {
		return p.t
	}
	n := *p.t
	n.body = body
	return &n
}

// ForLoopControl is the parenthesized header of a for loop.
type ForLoopControl struct {
	id        uuid.UUID
	prefix    *Space
	markers   *lst.Markers
	init      []*RightPadded[Statement]
	condition *RightPadded[Expression]
	update    []*RightPadded[Statement]
}

// NewForLoopControl creates a ForLoopControl.
func NewForLoopControl(id uuid.UUID, prefix *Space, markers *lst.Markers, init []*RightPadded[Statement], condition *RightPadded[Expression], update []*RightPadded[Statement]) *ForLoopControl {
	return &ForLoopControl{
		id:        id,
		prefix:    prefix,
		markers:   markers,
		init:      nilIfEmpty(init),
		condition: condition,
		update:    nilIfEmpty(update),
	}
}

func (flc *ForLoopControl) ID() uuid.UUID { return flc.id }

func (flc *ForLoopControl) WithID(id uuid.UUID) *ForLoopControl {
	if flc.id == id {
		return flc
	}
	n := *flc
	n.id = id
	return &n
}

func (flc *ForLoopControl) Prefix() *Space { return flc.prefix }

func (flc *ForLoopControl) WithPrefix(prefix *Space) *ForLoopControl {
	if flc.prefix == prefix {
		return flc
	}
	n := *flc
	n.prefix = prefix
	return &n
}

func (flc *ForLoopControl) Markers() *lst.Markers { return flc.markers }

func (flc *ForLoopControl) WithMarkers(markers *lst.Markers) *ForLoopControl {
	if flc.markers == markers {
		return flc
	}
	n := *flc
	n.markers = markers
	return &n
}

func (flc *ForLoopControl) Init() []Statement { return rightPaddedElements(flc.init) }

func (flc *ForLoopControl) WithInit(init []Statement) *ForLoopControl {
	return flc.Padding().WithInit(withRightPaddedElements(flc.init, init))
}

func (flc *ForLoopControl) Condition() Expression { return flc.condition.Element() }

func (flc *ForLoopControl) WithCondition(condition Expression) *ForLoopControl {
	return flc.Padding().WithCondition(withRightElement(flc.condition, condition))
}

func (flc *ForLoopControl) Update() []Statement { return rightPaddedElements(flc.update) }

func (flc *ForLoopControl) WithUpdate(update []Statement) *ForLoopControl {
	return flc.Padding().WithUpdate(withRightPaddedElements(flc.update, update))
}

// ForLoopControlPadding exposes the padded fields of a ForLoopControl.
type ForLoopControlPadding struct{ t *ForLoopControl }

// Padding returns the padded view of flc.
func (flc *ForLoopControl) Padding() ForLoopControlPadding { return ForLoopControlPadding{t: flc} }

// Init returns the node's own slice; copy it before modifying.
func (p ForLoopControlPadding) Init() []*RightPadded[Statement] { return p.t.init }

func (p ForLoopControlPadding) WithInit(init []*RightPadded[Statement]) *ForLoopControl {
	if lst.SameSlice(p.t.init, init) {
		return p.t
	}
	n := *p.t
	n.init = nilIfEmpty(init)
	return &n
}

func (p ForLoopControlPadding) Condition() *RightPadded[Expression] { return p.t.condition }

func (p ForLoopControlPadding) WithCondition(condition *RightPadded[Expression]) *ForLoopControl {
	if p.t.condition == condition {
		return p.t
	}
	n := *p.t
	n.condition = condition
	return &n
}

// Update returns the node's own slice; copy it before modifying.
func (p ForLoopControlPadding) Update() []*RightPadded[Statement] { return p.t.update }

func (p ForLoopControlPadding) WithUpdate(update []*RightPadded[Statement]) *ForLoopControl {
	if lst.SameSlice(p.t.update, update) {
		return p.t
	}
	n := *p.t
	n.update = nilIfEmpty(update)
	return &n
}

// If is an if statement.
type If struct {
	id          uuid.UUID
	prefix      *Space
	markers     *lst.Markers
	ifCondition *ControlParentheses
	thenPart    *RightPadded[Statement]
	elsePart    *IfElse
}

// NewIf creates an If.
func NewIf(id uuid.UUID, prefix *Space, markers *lst.Markers, ifCondition *ControlParentheses, thenPart *RightPadded[Statement], elsePart *IfElse) *If {
	return &If{
		id:          id,
		prefix:      prefix,
		markers:     markers,
		ifCondition: ifCondition,
		thenPart:    thenPart,
		elsePart:    elsePart,
	}
}

func (iff *If) ID() uuid.UUID { return iff.id }

func (iff *If) WithID(id uuid.UUID) *If {
	if iff.id == id {
		return iff
	}
	n := *iff
	n.id = id
	return &n
}

func (iff *If) Prefix() *Space { return iff.prefix }

func (iff *If) WithPrefix(prefix *Space) *If {
	if iff.prefix == prefix {
		return iff
	}
	n := *iff
	n.prefix = prefix
	return &n
}

func (iff *If) Markers() *lst.Markers { return iff.markers }

func (iff *If) WithMarkers(markers *lst.Markers) *If {
	if iff.markers == markers {
		return iff
	}
	n := *iff
	n.markers = markers
	return &n
}

func (iff *If) IfCondition() *ControlParentheses { return iff.ifCondition }

func (iff *If) WithIfCondition(ifCondition *ControlParentheses) *If {
	if iff.ifCondition == ifCondition {
		return iff
	}
	n := *iff
	n.ifCondition = ifCondition
	return &n
}

func (iff *If) ThenPart() Statement { return iff.thenPart.Element() }

func (iff *If) WithThenPart(thenPart Statement) *If {
	return iff.Padding().WithThenPart(withRightElement(iff.thenPart, thenPart))
}

func (iff *If) ElsePart() *IfElse { return iff.elsePart }

func (iff *If) WithElsePart(elsePart *IfElse) *If {
	if iff.elsePart == elsePart {
		return iff
	}
	n := *iff
	n.elsePart = elsePart
	return &n
}

func (*If) isStatement() {}

// IfPadding exposes the padded fields of an If.
type IfPadding struct{ t *If }

// Padding returns the padded view of iff.
func (iff *If) Padding() IfPadding { return IfPadding{t: iff} }

func (p IfPadding) ThenPart() *RightPadded[Statement] { return p.t.thenPart }

func (p IfPadding) WithThenPart(thenPart *RightPadded[Statement]) *If {
	if p.t.thenPart == thenPart {
		return p.t
	}
	n := *p.t
	n.thenPart = thenPart
	return &n
}

// IfElse is the else branch of an if statement.
type IfElse struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	body    *RightPadded[Statement]
}

// NewIfElse creates an IfElse.
func NewIfElse(id uuid.UUID, prefix *Space, markers *lst.Markers, body *RightPadded[Statement]) *IfElse {
	return &IfElse{
		id:      id,
		prefix:  prefix,
		markers: markers,
		body:    body,
	}
}

func (ie *IfElse) ID() uuid.UUID { return ie.id }

func (ie *IfElse) WithID(id uuid.UUID) *IfElse {
	if ie.id == id {
		return ie
	}
	n := *ie
	n.id = id
	return &n
}

func (ie *IfElse) Prefix() *Space { return ie.prefix }

func (ie *IfElse) WithPrefix(prefix *Space) *IfElse {
	if ie.prefix == prefix {
		return ie
	}
	n := *ie
	n.prefix = prefix
	return &n
}

func (ie *IfElse) Markers() *lst.Markers { return ie.markers }

func (ie *IfElse) WithMarkers(markers *lst.Markers) *IfElse {
	if ie.markers == markers {
		return ie
	}
	n := *ie
	n.markers = markers
	return &n
}

func (ie *IfElse) Body() Statement { return ie.body.Element() }

func (ie *IfElse) WithBody(body Statement) *IfElse {
	return ie.Padding().WithBody(withRightElement(ie.body, body))
}

// IfElsePadding exposes the padded fields of an IfElse.
type IfElsePadding struct{ t *IfElse }

// Padding returns the padded view of ie.
func (ie *IfElse) Padding() IfElsePadding { return IfElsePadding{t: ie} }

func (p IfElsePadding) Body() *RightPadded[Statement] { return p.t.body }

func (p IfElsePadding) WithBody(body *RightPadded[Statement]) *IfElse {
	if p.t.body == body {
		return p.t
	}
	n := *p.t
	n.body = body
	return &n
}

// Label is a labeled statement.
type Label struct {
	id        uuid.UUID
	prefix    *Space
	markers   *lst.Markers
	label     *RightPadded[*Identifier]
	statement Statement
}

// NewLabel creates a Label.
func NewLabel(id uuid.UUID, prefix *Space, markers *lst.Markers, label *RightPadded[*Identifier], statement Statement) *Label {
	return &Label{
		id:        id,
		prefix:    prefix,
		markers:   markers,
		label:     label,
		statement: statement,
	}
}

func (l *Label) ID() uuid.UUID { return l.id }

func (l *Label) WithID(id uuid.UUID) *Label {
	if l.id == id {
		return l
	}
	n := *l
	n.id = id
	return &n
}

func (l *Label) Prefix() *Space { return l.prefix }

func (l *Label) WithPrefix(prefix *Space) *Label {
	if l.prefix == prefix {
		return l
	}
	n := *l
	n.prefix = prefix
	return &n
}

func (l *Label) Markers() *lst.Markers { return l.markers }

func (l *Label) WithMarkers(markers *lst.Markers) *Label {
	if l.markers == markers {
		return l
	}
	n := *l
	n.markers = markers
	return &n
}

func (l *Label) Label() *Identifier { return l.label.Element() }

func (l *Label) WithLabel(label *Identifier) *Label {
	return l.Padding().WithLabel(withRightElement(l.label, label))
}

func (l *Label) Statement() Statement { return l.statement }

func (l *Label) WithStatement(statement Statement) *Label {
	if l.statement == statement {
		return l
	}
	n := *l
	n.statement = statement
	return &n
}

func (*Label) isStatement() {}

// LabelPadding exposes the padded fields of a Label.
type LabelPadding struct{ t *Label }

// Padding returns the padded view of l.
func (l *Label) Padding() LabelPadding { return LabelPadding{t: l} }

func (p LabelPadding) Label() *RightPadded[*Identifier] { return p.t.label }

func (p LabelPadding) WithLabel(label *RightPadded[*Identifier]) *Label {
	if p.t.label == label {
		return p.t
	}
	n := *p.t
	n.label = label
	return &n
}

// Return is a return statement.
type Return struct {
	id         uuid.UUID
	prefix     *Space
	markers    *lst.Markers
	expression Expression
}

// NewReturn creates a Return.
func NewReturn(id uuid.UUID, prefix *Space, markers *lst.Markers, expression Expression) *Return {
	return &Return{
		id:         id,
		prefix:     prefix,
		markers:    markers,
		expression: expression,
	}
}

func (ret *Return) ID() uuid.UUID { return ret.id }

func (ret *Return) WithID(id uuid.UUID) *Return {
	if ret.id == id {
		return ret
	}
	n := *ret
	n.id = id
	return &n
}

func (ret *Return) Prefix() *Space { return ret.prefix }

func (ret *Return) WithPrefix(prefix *Space) *Return {
	if ret.prefix == prefix {
		return ret
	}
	n := *ret
	n.prefix = prefix
	return &n
}

func (ret *Return) Markers() *lst.Markers { return ret.markers }

func (ret *Return) WithMarkers(markers *lst.Markers) *Return {
	if ret.markers == markers {
		return ret
	}
	n := *ret
	n.markers = markers
	return &n
}

func (ret *Return) Expression() Expression { return ret.expression }

func (ret *Return) WithExpression(expression Expression) *Return {
	if ret.expression == expression {
		return ret
	}
	n := *ret
	n.expression = expression
	return &n
}

func (*Return) isStatement() {}

// Switch is a switch statement.
type Switch struct {
	id       uuid.UUID
	prefix   *Space
	markers  *lst.Markers
	selector *ControlParentheses
	cases    *Block
}

// NewSwitch creates a Switch.
func NewSwitch(id uuid.UUID, prefix *Space, markers *lst.Markers, selector *ControlParentheses, cases *Block) *Switch {
	return &Switch{
		id:       id,
		prefix:   prefix,
		markers:  markers,
		selector: selector,
		cases:    cases,
	}
}

func (sw *Switch) ID() uuid.UUID { return sw.id }

func (sw *Switch) WithID(id uuid.UUID) *Switch {
	if sw.id == id {
		return sw
	}
	n := *sw
	n.id = id
	return &n
}

func (sw *Switch) Prefix() *Space { return sw.prefix }

func (sw *Switch) WithPrefix(prefix *Space) *Switch {
	if sw.prefix == prefix {
		return sw
	}
	n := *sw
	n.prefix = prefix
	return &n
}

func (sw *Switch) Markers() *lst.Markers { return sw.markers }

func (sw *Switch) WithMarkers(markers *lst.Markers) *Switch {
	if sw.markers == markers {
		return sw
	}
	n := *sw
	n.markers = markers
	return &n
}

func (sw *Switch) Selector() *ControlParentheses { return sw.selector }

func (sw *Switch) WithSelector(selector *ControlParentheses) *Switch {
	if sw.selector == selector {
		return sw
	}
	n := *sw
	n.selector = selector
	return &n
}

func (sw *Switch) Cases() *Block { return sw.cases }

func (sw *Switch) WithCases(cases *Block) *Switch {
	if sw.cases == cases {
		return sw
	}
	n := *sw
	n.cases = cases
	return &n
}

func (*Switch) isStatement() {}

// Synchronized is a synchronized block.
type Synchronized struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	lock    *ControlParentheses
	body    *Block
}

// NewSynchronized creates a Synchronized.
func NewSynchronized(id uuid.UUID, prefix *Space, markers *lst.Markers, lock *ControlParentheses, body *Block) *Synchronized {
	return &Synchronized{
		id:      id,
		prefix:  prefix,
		markers: markers,
		lock:    lock,
		body:    body,
	}
}

func (sync *Synchronized) ID() uuid.UUID { return sync.id }

func (sync *Synchronized) WithID(id uuid.UUID) *Synchronized {
	if sync.id == id {
		return sync
	}
	n := *sync
	n.id = id
	return &n
}

func (sync *Synchronized) Prefix() *Space { return sync.prefix }

func (sync *Synchronized) WithPrefix(prefix *Space) *Synchronized {
	if sync.prefix == prefix {
		return sync
	}
	n := *sync
	n.prefix = prefix
	return &n
}

func (sync *Synchronized) Markers() *lst.Markers { return sync.markers }

func (sync *Synchronized) WithMarkers(markers *lst.Markers) *Synchronized {
	if sync.markers == markers {
		return sync
	}
	n := *sync
	n.markers = markers
	return &n
}

func (sync *Synchronized) Lock() *ControlParentheses { return sync.lock }

func (sync *Synchronized) WithLock(lock *ControlParentheses) *Synchronized {
	if sync.lock == lock {
		return sync
	}
	n := *sync
	n.lock = lock
	return &n
}

func (sync *Synchronized) Body() *Block { return sync.body }

func (sync *Synchronized) WithBody(body *Block) *Synchronized {
	if sync.body == body {
		return sync
	}
	n := *sync
	n.body = body
	return &n
}

func (*Synchronized) isStatement() {}

// Throw is a throw statement.
type Throw struct {
	id        uuid.UUID
	prefix    *Space
	markers   *lst.Markers
	exception Expression
}

// NewThrow creates a Throw.
func NewThrow(id uuid.UUID, prefix *Space, markers *lst.Markers, exception Expression) *Throw {
	return &Throw{
		id:        id,
		prefix:    prefix,
		markers:   markers,
		exception: exception,
	}
}

func (th *Throw) ID() uuid.UUID { return th.id }

func (th *Throw) WithID(id uuid.UUID) *Throw {
	if th.id == id {
		return th
	}
	n := *th
	n.id = id
	return &n
}

func (th *Throw) Prefix() *Space { return th.prefix }

func (th *Throw) WithPrefix(prefix *Space) *Throw {
	if th.prefix == prefix {
		return th
	}
	n := *th
	n.prefix = prefix
	return &n
}

func (th *Throw) Markers() *lst.Markers { return th.markers }

func (th *Throw) WithMarkers(markers *lst.Markers) *Throw {
	if th.markers == markers {
		return th
	}
	n := *th
	n.markers = markers
	return &n
}

func (th *Throw) Exception() Expression { return th.exception }

func (th *Throw) WithException(exception Expression) *Throw {
	if th.exception == exception {
		return th
	}
	n := *th
	n.exception = exception
	return &n
}

func (*Throw) isStatement() {}

// Try is a try statement with optional resources, catches and finally.
type Try struct {
	id        uuid.UUID
	prefix    *Space
	markers   *lst.Markers
	resources *Container[*TryResource]
	body      *Block
	catches   []*TryCatch
	finally   *LeftPadded[*Block]
}

// NewTry creates a Try.
func NewTry(id uuid.UUID, prefix *Space, markers *lst.Markers, resources *Container[*TryResource], body *Block, catches []*TryCatch, finally *LeftPadded[*Block]) *Try {
	return &Try{
		id:        id,
		prefix:    prefix,
		markers:   markers,
		resources: resources,
		body:      body,
		catches:   nilIfEmpty(catches),
		finally:   finally,
	}
}

func (tr *Try) ID() uuid.UUID { return tr.id }

func (tr *Try) WithID(id uuid.UUID) *Try {
	if tr.id == id {
		return tr
	}
	n := *tr
	n.id = id
	return &n
}

func (tr *Try) Prefix() *Space { return tr.prefix }

func (tr *Try) WithPrefix(prefix *Space) *Try {
	if tr.prefix == prefix {
		return tr
	}
	n := *tr
	n.prefix = prefix
	return &n
}

func (tr *Try) Markers() *lst.Markers { return tr.markers }

func (tr *Try) WithMarkers(markers *lst.Markers) *Try {
	if tr.markers == markers {
		return tr
	}
	n := *tr
	n.markers = markers
	return &n
}

func (tr *Try) Resources() []*TryResource { return tr.resources.Elements() }

func (tr *Try) WithResources(resources []*TryResource) *Try {
	return tr.Padding().WithResources(withContainerElements(tr.resources, resources))
}

func (tr *Try) Body() *Block { return tr.body }

func (tr *Try) WithBody(body *Block) *Try {
	if tr.body == body {
		return tr
	}
	n := *tr
	n.body = body
	return &n
}

// Catches returns the node's own slice; copy it before modifying.
func (tr *Try) Catches() []*TryCatch { return tr.catches }

func (tr *Try) WithCatches(catches []*TryCatch) *Try {
	if lst.SameSlice(tr.catches, catches) {
		return tr
	}
	n := *tr
	n.catches = nilIfEmpty(catches)
	return &n
}

func (tr *Try) Finally() *Block { return tr.finally.Element() }

func (tr *Try) WithFinally(finally *Block) *Try {
	return tr.Padding().WithFinally(withLeftElement(tr.finally, finally))
}

func (*Try) isStatement() {}

// TryPadding exposes the padded fields of a Try.
type TryPadding struct{ t *Try }

// Padding returns the padded view of tr.
func (tr *Try) Padding() TryPadding { return TryPadding{t: tr} }

func (p TryPadding) Resources() *Container[*TryResource] { return p.t.resources }

func (p TryPadding) WithResources(resources *Container[*TryResource]) *Try {
	if p.t.resources == resources {
		return p.t
	}
	n := *p.t
	n.resources = resources
	return &n
}

func (p TryPadding) Finally() *LeftPadded[*Block] { return p.t.finally }

func (p TryPadding) WithFinally(finally *LeftPadded[*Block]) *Try {
	if p.t.finally == finally {
		return p.t
	}
	n := *p.t
	n.finally = finally
	return &n
}

// TryResource is one resource of a try-with-resources statement.
type TryResource struct {
	id                      uuid.UUID
	prefix                  *Space
	markers                 *lst.Markers
	variableDeclarations    TypedTree
	terminatedWithSemicolon bool
}

// NewTryResource creates a TryResource.
func NewTryResource(id uuid.UUID, prefix *Space, markers *lst.Markers, variableDeclarations TypedTree, terminatedWithSemicolon bool) *TryResource {
	return &TryResource{
		id:                      id,
		prefix:                  prefix,
		markers:                 markers,
		variableDeclarations:    variableDeclarations,
		terminatedWithSemicolon: terminatedWithSemicolon,
	}
}

func (tr *TryResource) ID() uuid.UUID { return tr.id }

func (tr *TryResource) WithID(id uuid.UUID) *TryResource {
	if tr.id == id {
		return tr
	}
	n := *tr
	n.id = id
	return &n
}

func (tr *TryResource) Prefix() *Space { return tr.prefix }

func (tr *TryResource) WithPrefix(prefix *Space) *TryResource {
	if tr.prefix == prefix {
		return tr
	}
	n := *tr
	n.prefix = prefix
	return &n
}

func (tr *TryResource) Markers() *lst.Markers { return tr.markers }

func (tr *TryResource) WithMarkers(markers *lst.Markers) *TryResource {
	if tr.markers == markers {
		return tr
	}
	n := *tr
	n.markers = markers
	return &n
}

func (tr *TryResource) VariableDeclarations() TypedTree { return tr.variableDeclarations }

func (tr *TryResource) WithVariableDeclarations(variableDeclarations TypedTree) *TryResource {
	if tr.variableDeclarations == variableDeclarations {
		return tr
	}
	n := *tr
	n.variableDeclarations = variableDeclarations
	return &n
}

func (tr *TryResource) TerminatedWithSemicolon() bool { return tr.terminatedWithSemicolon }

func (tr *TryResource) WithTerminatedWithSemicolon(terminatedWithSemicolon bool) *TryResource {
	if tr.terminatedWithSemicolon == terminatedWithSemicolon {
		return tr
	}
	n := *tr
	n.terminatedWithSemicolon = terminatedWithSemicolon
	return &n
}

// TryCatch is one catch clause of a try statement.
type TryCatch struct {
	id        uuid.UUID
	prefix    *Space
	markers   *lst.Markers
	parameter *ControlParentheses
	body      *Block
}

// NewTryCatch creates a TryCatch.
func NewTryCatch(id uuid.UUID, prefix *Space, markers *lst.Markers, parameter *ControlParentheses, body *Block) *TryCatch {
	return &TryCatch{
		id:        id,
		prefix:    prefix,
		markers:   markers,
		parameter: parameter,
		body:      body,
	}
}

func (tc *TryCatch) ID() uuid.UUID { return tc.id }

func (tc *TryCatch) WithID(id uuid.UUID) *TryCatch {
	if tc.id == id {
		return tc
	}
	n := *tc
	n.id = id
	return &n
}

func (tc *TryCatch) Prefix() *Space { return tc.prefix }

func (tc *TryCatch) WithPrefix(prefix *Space) *TryCatch {
	if tc.prefix == prefix {
		return tc
	}
	n := *tc
	n.prefix = prefix
	return &n
}

func (tc *TryCatch) Markers() *lst.Markers { return tc.markers }

func (tc *TryCatch) WithMarkers(markers *lst.Markers) *TryCatch {
	if tc.markers == markers {
		return tc
	}
	n := *tc
	n.markers = markers
	return &n
}

func (tc *TryCatch) Parameter() *ControlParentheses { return tc.parameter }

func (tc *TryCatch) WithParameter(parameter *ControlParentheses) *TryCatch {
	if tc.parameter == parameter {
		return tc
	}
	n := *tc
	n.parameter = parameter
	return &n
}

func (tc *TryCatch) Body() *Block { return tc.body }

func (tc *TryCatch) WithBody(body *Block) *TryCatch {
	if tc.body == body {
		return tc
	}
	n := *tc
	n.body = body
	return &n
}

// WhileLoop is a while loop.
type WhileLoop struct {
	id        uuid.UUID
	prefix    *Space
	markers   *lst.Markers
	condition *ControlParentheses
	body      *RightPadded[Statement]
}

// NewWhileLoop creates a WhileLoop.
func NewWhileLoop(id uuid.UUID, prefix *Space, markers *lst.Markers, condition *ControlParentheses, body *RightPadded[Statement]) *WhileLoop {
	return &WhileLoop{
		id:        id,
		prefix:    prefix,
		markers:   markers,
		condition: condition,
		body:      body,
	}
}

func (wl *WhileLoop) ID() uuid.UUID { return wl.id }

func (wl *WhileLoop) WithID(id uuid.UUID) *WhileLoop {
	if wl.id == id {
		return wl
	}
	n := *wl
	n.id = id
	return &n
}

func (wl *WhileLoop) Prefix() *Space { return wl.prefix }

func (wl *WhileLoop) WithPrefix(prefix *Space) *WhileLoop {
	if wl.prefix == prefix {
		return wl
	}
	n := *wl
	n.prefix = prefix
	return &n
}

func (wl *WhileLoop) Markers() *lst.Markers { return wl.markers }

func (wl *WhileLoop) WithMarkers(markers *lst.Markers) *WhileLoop {
	if wl.markers == markers {
		return wl
	}
	n := *wl
	n.markers = markers
	return &n
}

func (wl *WhileLoop) Condition() *ControlParentheses { return wl.condition }

func (wl *WhileLoop) WithCondition(condition *ControlParentheses) *WhileLoop {
	if wl.condition == condition {
		return wl
	}
	n := *wl
	n.condition = condition
	return &n
}

func (wl *WhileLoop) Body() Statement { return wl.body.Element() }

func (wl *WhileLoop) WithBody(body Statement) *WhileLoop {
	return wl.Padding().WithBody(withRightElement(wl.body, body))
}

func (*WhileLoop) isStatement() {}

// WhileLoopPadding exposes the padded fields of a WhileLoop.
type WhileLoopPadding struct{ t *WhileLoop }

// Padding returns the padded view of wl.
func (wl *WhileLoop) Padding() WhileLoopPadding { return WhileLoopPadding{t: wl} }

func (p WhileLoopPadding) Body() *RightPadded[Statement] { return p.t.body }

func (p WhileLoopPadding) WithBody(body *RightPadded[Statement]) *WhileLoop {
	if p.t.body == body {
		return p.t
	}
	n := *p.t
	n.body = body
	return &n
}

// Yield is a yield statement inside a switch expression.
type Yield struct {
	id       uuid.UUID
	prefix   *Space
	markers  *lst.Markers
	implicit bool
	value    Expression
}

// NewYield creates a Yield.
func NewYield(id uuid.UUID, prefix *Space, markers *lst.Markers, implicit bool, value Expression) *Yield {
	return &Yield{
		id:       id,
		prefix:   prefix,
		markers:  markers,
		implicit: implicit,
		value:    value,
	}
}

func (y *Yield) ID() uuid.UUID { return y.id }

func (y *Yield) WithID(id uuid.UUID) *Yield {
	if y.id == id {
		return y
	}
	n := *y
	n.id = id
	return &n
}

func (y *Yield) Prefix() *Space { return y.prefix }

func (y *Yield) WithPrefix(prefix *Space) *Yield {
	if y.prefix == prefix {
		return y
	}
	n := *y
	n.prefix = prefix
	return &n
}

func (y *Yield) Markers() *lst.Markers { return y.markers }

func (y *Yield) WithMarkers(markers *lst.Markers) *Yield {
	if y.markers == markers {
		return y
	}
	n := *y
	n.markers = markers
	return &n
}

func (y *Yield) Implicit() bool { return y.implicit }

func (y *Yield) WithImplicit(implicit bool) *Yield {
	if y.implicit == implicit {
		return y
	}
	n := *y
	n.implicit = implicit
	return &n
}

func (y *Yield) Value() Expression { return y.value }

func (y *Yield) WithValue(value Expression) *Yield {
	if y.value == value {
		return y
	}
	n := *y
	n.value = value
	return &n
}

func (*Yield) isStatement() {}
