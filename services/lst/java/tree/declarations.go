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

// Declarations: compilation units, packages, imports, classes, methods and variables.

// CompilationUnit is one parsed source file.
type CompilationUnit struct {
	id                 uuid.UUID
	prefix             *Space
	markers            *lst.Markers
	sourcePath         string
	charsetName        string
	charsetBomMarked   bool
	checksum           *Checksum
	fileAttributes     *FileAttributes
	packageDeclaration *RightPadded[*Package]
	imports            []*RightPadded[*Import]
	classes            []*ClassDeclaration
	eof                *Space
}

// NewCompilationUnit creates a CompilationUnit.
func NewCompilationUnit(id uuid.UUID, prefix *Space, markers *lst.Markers, sourcePath string, charsetName string, charsetBomMarked bool, checksum *Checksum, fileAttributes *FileAttributes, packageDeclaration *RightPadded[*Package], imports []*RightPadded[*Import], classes []*ClassDeclaration, eof *Space) *CompilationUnit {
	return &CompilationUnit{
		id:                 id,
		prefix:             prefix,
		markers:            markers,
		sourcePath:         sourcePath,
		charsetName:        charsetName,
		charsetBomMarked:   charsetBomMarked,
		checksum:           checksum,
		fileAttributes:     fileAttributes,
		packageDeclaration: packageDeclaration,
		imports:            nilIfEmpty(imports),
		classes:            nilIfEmpty(classes),
		eof:                eof,
	}
}

func (cu *CompilationUnit) ID() uuid.UUID { return cu.id }

func (cu *CompilationUnit) WithID(id uuid.UUID) *CompilationUnit {
	if cu.id == id {
		return cu
	}
	n := *cu
	n.id = id
	return &n
}

func (cu *CompilationUnit) Prefix() *Space { return cu.prefix }

func (cu *CompilationUnit) WithPrefix(prefix *Space) *CompilationUnit {
	if cu.prefix == prefix {
		return cu
	}
	n := *cu
	n.prefix = prefix
	return &n
}

func (cu *CompilationUnit) Markers() *lst.Markers { return cu.markers }

func (cu *CompilationUnit) WithMarkers(markers *lst.Markers) *CompilationUnit {
	if cu.markers == markers {
		return cu
	}
	n := *cu
	n.markers = markers
	return &n
}

func (cu *CompilationUnit) SourcePath() string { return cu.sourcePath }

func (cu *CompilationUnit) WithSourcePath(sourcePath string) *CompilationUnit {
	if cu.sourcePath == sourcePath {
		return cu
	}
	n := *cu
	n.sourcePath = sourcePath
	return &n
}

func (cu *CompilationUnit) CharsetName() string { return cu.charsetName }

func (cu *CompilationUnit) WithCharsetName(charsetName string) *CompilationUnit {
	if cu.charsetName == charsetName {
		return cu
	}
	n := *cu
	n.charsetName = charsetName
	return &n
}

func (cu *CompilationUnit) CharsetBomMarked() bool { return cu.charsetBomMarked }

func (cu *CompilationUnit) WithCharsetBomMarked(charsetBomMarked bool) *CompilationUnit {
	if cu.charsetBomMarked == charsetBomMarked {
		return cu
	}
	n := *cu
	n.charsetBomMarked = charsetBomMarked
	return &n
}

func (cu *CompilationUnit) Checksum() *Checksum { return cu.checksum }

func (cu *CompilationUnit) WithChecksum(checksum *Checksum) *CompilationUnit {
	if cu.checksum == checksum {
		return cu
	}
	n := *cu
	n.checksum = checksum
	return &n
}

func (cu *CompilationUnit) FileAttributes() *FileAttributes { return cu.fileAttributes }

func (cu *CompilationUnit) WithFileAttributes(fileAttributes *FileAttributes) *CompilationUnit {
	if cu.fileAttributes == fileAttributes {
		return cu
	}
	n := *cu
	n.fileAttributes = fileAttributes
	return &n
}

func (cu *CompilationUnit) PackageDeclaration() *Package { return cu.packageDeclaration.Element() }

func (cu *CompilationUnit) WithPackageDeclaration(packageDeclaration *Package) *CompilationUnit {
	return cu.Padding().WithPackageDeclaration(withRightElement(cu.packageDeclaration, packageDeclaration))
}

func (cu *CompilationUnit) Imports() []*Import { return rightPaddedElements(cu.imports) }

func (cu *CompilationUnit) WithImports(imports []*Import) *CompilationUnit {
	return cu.Padding().WithImports(withRightPaddedElements(cu.imports, imports))
}

// Classes returns the node's own slice; copy it before modifying.
func (cu *CompilationUnit) Classes() []*ClassDeclaration { return cu.classes }

func (cu *CompilationUnit) WithClasses(classes []*ClassDeclaration) *CompilationUnit {
	if lst.SameSlice(cu.classes, classes) {
		return cu
	}
	n := *cu
	n.classes = nilIfEmpty(classes)
	return &n
}

func (cu *CompilationUnit) Eof() *Space { return cu.eof }

func (cu *CompilationUnit) WithEof(eof *Space) *CompilationUnit {
	if cu.eof == eof {
		return cu
	}
	n := *cu
	n.eof = eof
	return &n
}

// CompilationUnitPadding exposes the padded fields of a CompilationUnit.
type CompilationUnitPadding struct{ t *CompilationUnit }

// Padding returns the padded view of cu.
func (cu *CompilationUnit) Padding() CompilationUnitPadding { return CompilationUnitPadding{t: cu} }

func (p CompilationUnitPadding) PackageDeclaration() *RightPadded[*Package] { return p.t.packageDeclaration }

func (p CompilationUnitPadding) WithPackageDeclaration(packageDeclaration *RightPadded[*Package]) *CompilationUnit {
	if p.t.packageDeclaration == packageDeclaration {
		return p.t
	}
	n := *p.t
	n.packageDeclaration = packageDeclaration
	return &n
}

// Imports returns the node's own slice; copy it before modifying.
func (p CompilationUnitPadding) Imports() []*RightPadded[*Import] { return p.t.imports }

func (p CompilationUnitPadding) WithImports(imports []*RightPadded[*Import]) *CompilationUnit {
	if lst.SameSlice(p.t.imports, imports) {
		return p.t
	}
	n := *p.t
	n.imports = nilIfEmpty(imports)
	return &n
}

// Package is the package declaration of a compilation unit.
type Package struct {
	id          uuid.UUID
	prefix      *Space
	markers     *lst.Markers
	expression  Expression
	annotations []*Annotation
}

// NewPackage creates a Package.
func NewPackage(id uuid.UUID, prefix *Space, markers *lst.Markers, expression Expression, annotations []*Annotation) *Package {
	return &Package{
		id:          id,
		prefix:      prefix,
		markers:     markers,
		expression:  expression,
		annotations: nilIfEmpty(annotations),
	}
}

func (pkg *Package) ID() uuid.UUID { return pkg.id }

func (pkg *Package) WithID(id uuid.UUID) *Package {
	if pkg.id == id {
		return pkg
	}
	n := *pkg
	n.id = id
	return &n
}

func (pkg *Package) Prefix() *Space { return pkg.prefix }

func (pkg *Package) WithPrefix(prefix *Space) *Package {
	if pkg.prefix == prefix {
		return pkg
	}
	n := *pkg
	n.prefix = prefix
	return &n
}

func (pkg *Package) Markers() *lst.Markers { return pkg.markers }

func (pkg *Package) WithMarkers(markers *lst.Markers) *Package {
	if pkg.markers == markers {
		return pkg
	}
	n := *pkg
	n.markers = markers
	return &n
}

func (pkg *Package) Expression() Expression { return pkg.expression }

func (pkg *Package) WithExpression(expression Expression) *Package {
	if pkg.expression == expression {
		return pkg
	}
	n := *pkg
	n.expression = expression
	return &n
}

// Annotations returns the node's own slice; copy it before modifying.
func (pkg *Package) Annotations() []*Annotation { return pkg.annotations }

func (pkg *Package) WithAnnotations(annotations []*Annotation) *Package {
	if lst.SameSlice(pkg.annotations, annotations) {
		return pkg
	}
	n := *pkg
	n.annotations = nilIfEmpty(annotations)
	return &n
}

func (*Package) isStatement() {}

// Import is an import declaration, possibly static or aliased.
type Import struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	static  *LeftPadded[bool]
	qualid  *FieldAccess
	alias   *LeftPadded[*Identifier]
}

// NewImport creates an Import.
func NewImport(id uuid.UUID, prefix *Space, markers *lst.Markers, static *LeftPadded[bool], qualid *FieldAccess, alias *LeftPadded[*Identifier]) *Import {
	return &Import{
		id:      id,
		prefix:  prefix,
		markers: markers,
		static:  static,
		qualid:  qualid,
		alias:   alias,
	}
}

func (imp *Import) ID() uuid.UUID { return imp.id }

func (imp *Import) WithID(id uuid.UUID) *Import {
	if imp.id == id {
		return imp
	}
	n := *imp
	n.id = id
	return &n
}

func (imp *Import) Prefix() *Space { return imp.prefix }

func (imp *Import) WithPrefix(prefix *Space) *Import {
	if imp.prefix == prefix {
		return imp
	}
	n := *imp
	n.prefix = prefix
	return &n
}

func (imp *Import) Markers() *lst.Markers { return imp.markers }

func (imp *Import) WithMarkers(markers *lst.Markers) *Import {
	if imp.markers == markers {
		return imp
	}
	n := *imp
	n.markers = markers
	return &n
}

func (imp *Import) Static() bool { return imp.static.Element() }

func (imp *Import) WithStatic(static bool) *Import {
	return imp.Padding().WithStatic(withLeftElement(imp.static, static))
}

func (imp *Import) Qualid() *FieldAccess { return imp.qualid }

func (imp *Import) WithQualid(qualid *FieldAccess) *Import {
	if imp.qualid == qualid {
		return imp
	}
	n := *imp
	n.qualid = qualid
	return &n
}

func (imp *Import) Alias() *Identifier { return imp.alias.Element() }

func (imp *Import) WithAlias(alias *Identifier) *Import {
	return imp.Padding().WithAlias(withLeftElement(imp.alias, alias))
}

func (*Import) isStatement() {}

// ImportPadding exposes the padded fields of an Import.
type ImportPadding struct{ t *Import }

// Padding returns the padded view of imp.
func (imp *Import) Padding() ImportPadding { return ImportPadding{t: imp} }

func (p ImportPadding) Static() *LeftPadded[bool] { return p.t.static }

func (p ImportPadding) WithStatic(static *LeftPadded[bool]) *Import {
	if p.t.static == static {
		return p.t
	}
	n := *p.t
	n.static = static
	return &n
}

func (p ImportPadding) Alias() *LeftPadded[*Identifier] { return p.t.alias }

func (p ImportPadding) WithAlias(alias *LeftPadded[*Identifier]) *Import {
	if p.t.alias == alias {
		return p.t
	}
	n := *p.t
	n.alias = alias
	return &n
}

// ClassDeclaration declares a class, interface, enum, record or annotation type.
type ClassDeclaration struct {
	id                 uuid.UUID
	prefix             *Space
	markers            *lst.Markers
	leadingAnnotations []*Annotation
	modifiers          []*Modifier
	kind               *ClassDeclarationKind
	name               *Identifier
	typeParameters     *Container[*TypeParameter]
	primaryConstructor *Container[Statement]
	extends            *LeftPadded[TypeTree]
	implements         *Container[TypeTree]
	permits            *Container[TypeTree]
	body               *Block
	typ                types.JavaType
}

// NewClassDeclaration creates a ClassDeclaration.
func NewClassDeclaration(id uuid.UUID, prefix *Space, markers *lst.Markers, leadingAnnotations []*Annotation, modifiers []*Modifier, kind *ClassDeclarationKind, name *Identifier, typeParameters *Container[*TypeParameter], primaryConstructor *Container[Statement], extends *LeftPadded[TypeTree], implements *Container[TypeTree], permits *Container[TypeTree], body *Block, typ types.JavaType) *ClassDeclaration {
	return &ClassDeclaration{
		id:                 id,
		prefix:             prefix,
		markers:            markers,
		leadingAnnotations: nilIfEmpty(leadingAnnotations),
		modifiers:          nilIfEmpty(modifiers),
		kind:               kind,
		name:               name,
		typeParameters:     typeParameters,
		primaryConstructor: primaryConstructor,
		extends:            extends,
		implements:         implements,
		permits:            permits,
		body:               body,
		typ:                typ,
	}
}

func (cd *ClassDeclaration) ID() uuid.UUID { return cd.id }

func (cd *ClassDeclaration) WithID(id uuid.UUID) *ClassDeclaration {
	if cd.id == id {
		return cd
	}
	n := *cd
	n.id = id
	return &n
}

func (cd *ClassDeclaration) Prefix() *Space { return cd.prefix }

func (cd *ClassDeclaration) WithPrefix(prefix *Space) *ClassDeclaration {
	if cd.prefix == prefix {
		return cd
	}
	n := *cd
	n.prefix = prefix
	return &n
}

func (cd *ClassDeclaration) Markers() *lst.Markers { return cd.markers }

func (cd *ClassDeclaration) WithMarkers(markers *lst.Markers) *ClassDeclaration {
	if cd.markers == markers {
		return cd
	}
	n := *cd
	n.markers = markers
	return &n
}

// LeadingAnnotations returns the node's own slice; copy it before modifying.
func (cd *ClassDeclaration) LeadingAnnotations() []*Annotation { return cd.leadingAnnotations }

func (cd *ClassDeclaration) WithLeadingAnnotations(leadingAnnotations []*Annotation) *ClassDeclaration {
	if lst.SameSlice(cd.leadingAnnotations, leadingAnnotations) {
		return cd
	}
	n := *cd
	n.leadingAnnotations = nilIfEmpty(leadingAnnotations)
	return &n
}

// Modifiers returns the node's own slice; copy it before modifying.
func (cd *ClassDeclaration) Modifiers() []*Modifier { return cd.modifiers }

func (cd *ClassDeclaration) WithModifiers(modifiers []*Modifier) *ClassDeclaration {
	if lst.SameSlice(cd.modifiers, modifiers) {
		return cd
	}
	n := *cd
	n.modifiers = nilIfEmpty(modifiers)
	return &n
}

func (cd *ClassDeclaration) Kind() *ClassDeclarationKind { return cd.kind }

func (cd *ClassDeclaration) WithKind(kind *ClassDeclarationKind) *ClassDeclaration {
	if cd.kind == kind {
		return cd
	}
	n := *cd
	n.kind = kind
	return &n
}

func (cd *ClassDeclaration) Name() *Identifier { return cd.name }

func (cd *ClassDeclaration) WithName(name *Identifier) *ClassDeclaration {
	if cd.name == name {
		return cd
	}
	n := *cd
	n.name = name
	return &n
}

func (cd *ClassDeclaration) TypeParameters() []*TypeParameter { return cd.typeParameters.Elements() }

func (cd *ClassDeclaration) WithTypeParameters(typeParameters []*TypeParameter) *ClassDeclaration {
	return cd.Padding().WithTypeParameters(withContainerElements(cd.typeParameters, typeParameters))
}

func (cd *ClassDeclaration) PrimaryConstructor() []Statement { return cd.primaryConstructor.Elements() }

func (cd *ClassDeclaration) WithPrimaryConstructor(primaryConstructor []Statement) *ClassDeclaration {
	return cd.Padding().WithPrimaryConstructor(withContainerElements(cd.primaryConstructor, primaryConstructor))
}

func (cd *ClassDeclaration) Extends() TypeTree { return cd.extends.Element() }

func (cd *ClassDeclaration) WithExtends(extends TypeTree) *ClassDeclaration {
	return cd.Padding().WithExtends(withLeftElement(cd.extends, extends))
}

func (cd *ClassDeclaration) Implements() []TypeTree { return cd.implements.Elements() }

func (cd *ClassDeclaration) WithImplements(implements []TypeTree) *ClassDeclaration {
	return cd.Padding().WithImplements(withContainerElements(cd.implements, implements))
}

func (cd *ClassDeclaration) Permits() []TypeTree { return cd.permits.Elements() }

func (cd *ClassDeclaration) WithPermits(permits []TypeTree) *ClassDeclaration {
	return cd.Padding().WithPermits(withContainerElements(cd.permits, permits))
}

func (cd *ClassDeclaration) Body() *Block { return cd.body }

func (cd *ClassDeclaration) WithBody(body *Block) *ClassDeclaration {
	if cd.body == body {
		return cd
	}
	n := *cd
	n.body = body
	return &n
}

func (cd *ClassDeclaration) Type() types.JavaType { return cd.typ }

func (cd *ClassDeclaration) WithType(typ types.JavaType) *ClassDeclaration {
	if cd.typ == typ {
		return cd
	}
	n := *cd
	n.typ = typ
	return &n
}

func (*ClassDeclaration) isStatement() {}

// ClassDeclarationPadding exposes the padded fields of a ClassDeclaration.
type ClassDeclarationPadding struct{ t *ClassDeclaration }

// Padding returns the padded view of cd.
func (cd *ClassDeclaration) Padding() ClassDeclarationPadding { return ClassDeclarationPadding{t: cd} }

func (p ClassDeclarationPadding) TypeParameters() *Container[*TypeParameter] { return p.t.typeParameters }

func (p ClassDeclarationPadding) WithTypeParameters(typeParameters *Container[*TypeParameter]) *ClassDeclaration {
	if p.t.typeParameters == typeParameters {
		return p.t
	}
	n := *p.t
	n.typeParameters = typeParameters
	return &n
}

func (p ClassDeclarationPadding) PrimaryConstructor() *Container[Statement] { return p.t.primaryConstructor }

func (p ClassDeclarationPadding) WithPrimaryConstructor(primaryConstructor *Container[Statement]) *ClassDeclaration {
	if p.t.primaryConstructor == primaryConstructor {
		return p.t
	}
	n := *p.t
	n.primaryConstructor = primaryConstructor
	return &n
}

func (p ClassDeclarationPadding) Extends() *LeftPadded[TypeTree] { return p.t.extends }

func (p ClassDeclarationPadding) WithExtends(extends *LeftPadded[TypeTree]) *ClassDeclaration {
	if p.t.extends == extends {
		return p.t
	}
	n := *p.t
	n.extends = extends
	return &n
}

func (p ClassDeclarationPadding) Implements() *Container[TypeTree] { return p.t.implements }

func (p ClassDeclarationPadding) WithImplements(implements *Container[TypeTree]) *ClassDeclaration {
	if p.t.implements == implements {
		return p.t
	}
	n := *p.t
	n.implements = implements
	return &n
}

func (p ClassDeclarationPadding) Permits() *Container[TypeTree] { return p.t.permits }

func (p ClassDeclarationPadding) WithPermits(permits *Container[TypeTree]) *ClassDeclaration {
	if p.t.permits == permits {
		return p.t
	}
	n := *p.t
	n.permits = permits
	return &n
}

// ClassDeclarationKind is the keyword of a class declaration with its annotations.
type ClassDeclarationKind struct {
	id          uuid.UUID
	prefix      *Space
	markers     *lst.Markers
	annotations []*Annotation
	classKind   ClassKind
}

// NewClassDeclarationKind creates a ClassDeclarationKind.
func NewClassDeclarationKind(id uuid.UUID, prefix *Space, markers *lst.Markers, annotations []*Annotation, classKind ClassKind) *ClassDeclarationKind {
	return &ClassDeclarationKind{
		id:          id,
		prefix:      prefix,
		markers:     markers,
		annotations: nilIfEmpty(annotations),
		classKind:   classKind,
	}
}

func (cdk *ClassDeclarationKind) ID() uuid.UUID { return cdk.id }

func (cdk *ClassDeclarationKind) WithID(id uuid.UUID) *ClassDeclarationKind {
	if cdk.id == id {
		return cdk
	}
	n := *cdk
	n.id = id
	return &n
}

func (cdk *ClassDeclarationKind) Prefix() *Space { return cdk.prefix }

func (cdk *ClassDeclarationKind) WithPrefix(prefix *Space) *ClassDeclarationKind {
	if cdk.prefix == prefix {
		return cdk
	}
	n := *cdk
	n.prefix = prefix
	return &n
}

func (cdk *ClassDeclarationKind) Markers() *lst.Markers { return cdk.markers }

func (cdk *ClassDeclarationKind) WithMarkers(markers *lst.Markers) *ClassDeclarationKind {
	if cdk.markers == markers {
		return cdk
	}
	n := *cdk
	n.markers = markers
	return &n
}

// Annotations returns the node's own slice; copy it before modifying.
func (cdk *ClassDeclarationKind) Annotations() []*Annotation { return cdk.annotations }

func (cdk *ClassDeclarationKind) WithAnnotations(annotations []*Annotation) *ClassDeclarationKind {
	if lst.SameSlice(cdk.annotations, annotations) {
		return cdk
	}
	n := *cdk
	n.annotations = nilIfEmpty(annotations)
	return &n
}

func (cdk *ClassDeclarationKind) ClassKind() ClassKind { return cdk.classKind }

func (cdk *ClassDeclarationKind) WithClassKind(classKind ClassKind) *ClassDeclarationKind {
	if cdk.classKind == classKind {
		return cdk
	}
	n := *cdk
	n.classKind = classKind
	return &n
}

// EnumValue is one constant of an enum declaration.
type EnumValue struct {
	id          uuid.UUID
	prefix      *Space
	markers     *lst.Markers
	annotations []*Annotation
	name        *Identifier
	initializer *NewClass
}

// NewEnumValue creates an EnumValue.
func NewEnumValue(id uuid.UUID, prefix *Space, markers *lst.Markers, annotations []*Annotation, name *Identifier, initializer *NewClass) *EnumValue {
	return &EnumValue{
		id:          id,
		prefix:      prefix,
		markers:     markers,
		annotations: nilIfEmpty(annotations),
		name:        name,
		initializer: initializer,
	}
}

func (ev *EnumValue) ID() uuid.UUID { return ev.id }

func (ev *EnumValue) WithID(id uuid.UUID) *EnumValue {
	if ev.id == id {
		return ev
	}
	n := *ev
	n.id = id
	return &n
}

func (ev *EnumValue) Prefix() *Space { return ev.prefix }

func (ev *EnumValue) WithPrefix(prefix *Space) *EnumValue {
	if ev.prefix == prefix {
		return ev
	}
	n := *ev
	n.prefix = prefix
	return &n
}

func (ev *EnumValue) Markers() *lst.Markers { return ev.markers }

func (ev *EnumValue) WithMarkers(markers *lst.Markers) *EnumValue {
	if ev.markers == markers {
		return ev
	}
	n := *ev
	n.markers = markers
	return &n
}

// Annotations returns the node's own slice; copy it before modifying.
func (ev *EnumValue) Annotations() []*Annotation { return ev.annotations }

func (ev *EnumValue) WithAnnotations(annotations []*Annotation) *EnumValue {
	if lst.SameSlice(ev.annotations, annotations) {
		return ev
	}
	n := *ev
	n.annotations = nilIfEmpty(annotations)
	return &n
}

func (ev *EnumValue) Name() *Identifier { return ev.name }

func (ev *EnumValue) WithName(name *Identifier) *EnumValue {
	if ev.name == name {
		return ev
	}
	n := *ev
	n.name = name
	return &n
}

func (ev *EnumValue) Initializer() *NewClass { return ev.initializer }

func (ev *EnumValue) WithInitializer(initializer *NewClass) *EnumValue {
	if ev.initializer == initializer {
		return ev
	}
	n := *ev
	n.initializer = initializer
	return &n
}

// EnumValueSet is the list of constants at the top of an enum body.
type EnumValueSet struct {
	id                      uuid.UUID
	prefix                  *Space
	markers                 *lst.Markers
	enums                   []*RightPadded[*EnumValue]
	terminatedWithSemicolon bool
}

// NewEnumValueSet creates an EnumValueSet.
func NewEnumValueSet(id uuid.UUID, prefix *Space, markers *lst.Markers, enums []*RightPadded[*EnumValue], terminatedWithSemicolon bool) *EnumValueSet {
	return &EnumValueSet{
		id:                      id,
		prefix:                  prefix,
		markers:                 markers,
		enums:                   nilIfEmpty(enums),
		terminatedWithSemicolon: terminatedWithSemicolon,
	}
}

func (evs *EnumValueSet) ID() uuid.UUID { return evs.id }

func (evs *EnumValueSet) WithID(id uuid.UUID) *EnumValueSet {
	if evs.id == id {
		return evs
	}
	n := *evs
	n.id = id
	return &n
}

func (evs *EnumValueSet) Prefix() *Space { return evs.prefix }

func (evs *EnumValueSet) WithPrefix(prefix *Space) *EnumValueSet {
	if evs.prefix == prefix {
		return evs
	}
	n := *evs
	n.prefix = prefix
	return &n
}

func (evs *EnumValueSet) Markers() *lst.Markers { return evs.markers }

func (evs *EnumValueSet) WithMarkers(markers *lst.Markers) *EnumValueSet {
	if evs.markers == markers {
		return evs
	}
	n := *evs
	n.markers = markers
	return &n
}

func (evs *EnumValueSet) Enums() []*EnumValue { return rightPaddedElements(evs.enums) }

func (evs *EnumValueSet) WithEnums(enums []*EnumValue) *EnumValueSet {
	return evs.Padding().WithEnums(withRightPaddedElements(evs.enums, enums))
}

func (evs *EnumValueSet) TerminatedWithSemicolon() bool { return evs.terminatedWithSemicolon }

func (evs *EnumValueSet) WithTerminatedWithSemicolon(terminatedWithSemicolon bool) *EnumValueSet {
	if evs.terminatedWithSemicolon == terminatedWithSemicolon {
		return evs
	}
	n := *evs
	n.terminatedWithSemicolon = terminatedWithSemicolon
	return &n
}

func (*EnumValueSet) isStatement() {}

// EnumValueSetPadding exposes the padded fields of an EnumValueSet.
type EnumValueSetPadding struct{ t *EnumValueSet }

// Padding returns the padded view of evs.
func (evs *EnumValueSet) Padding() EnumValueSetPadding { return EnumValueSetPadding{t: evs} }

// Enums returns the node's own slice; copy it before modifying.
func (p EnumValueSetPadding) Enums() []*RightPadded[*EnumValue] { return p.t.enums }

func (p EnumValueSetPadding) WithEnums(enums []*RightPadded[*EnumValue]) *EnumValueSet {
	if lst.SameSlice(p.t.enums, enums) {
		return p.t
	}
	n := *p.t
	n.enums = nilIfEmpty(enums)
	return &n
}

// MethodDeclaration declares a method or constructor.
type MethodDeclaration struct {
	id                   uuid.UUID
	prefix               *Space
	markers              *lst.Markers
	leadingAnnotations   []*Annotation
	modifiers            []*Modifier
	typeParameters       *TypeParameters
	returnTypeExpression TypeTree
	name                 *Identifier
	parameters           *Container[Statement]
	throws               *Container[NameTree]
	body                 *Block
	defaultValue         *LeftPadded[Expression]
	methodType           *types.Method
}

// NewMethodDeclaration creates a MethodDeclaration.
func NewMethodDeclaration(id uuid.UUID, prefix *Space, markers *lst.Markers, leadingAnnotations []*Annotation, modifiers []*Modifier, typeParameters *TypeParameters, returnTypeExpression TypeTree, name *Identifier, parameters *Container[Statement], throws *Container[NameTree], body *Block, defaultValue *LeftPadded[Expression], methodType *types.Method) *MethodDeclaration {
	return &MethodDeclaration{
		id:                   id,
		prefix:               prefix,
		markers:              markers,
		leadingAnnotations:   nilIfEmpty(leadingAnnotations),
		modifiers:            nilIfEmpty(modifiers),
		typeParameters:       typeParameters,
		returnTypeExpression: returnTypeExpression,
		name:                 name,
		parameters:           parameters,
		throws:               throws,
		body:                 body,
		defaultValue:         defaultValue,
		methodType:           methodType,
	}
}

func (md *MethodDeclaration) ID() uuid.UUID { return md.id }

func (md *MethodDeclaration) WithID(id uuid.UUID) *MethodDeclaration {
	if md.id == id {
		return md
	}
	n := *md
	n.id = id
	return &n
}

func (md *MethodDeclaration) Prefix() *Space { return md.prefix }

func (md *MethodDeclaration) WithPrefix(prefix *Space) *MethodDeclaration {
	if md.prefix == prefix {
		return md
	}
	n := *md
	n.prefix = prefix
	return &n
}

func (md *MethodDeclaration) Markers() *lst.Markers { return md.markers }

func (md *MethodDeclaration) WithMarkers(markers *lst.Markers) *MethodDeclaration {
	if md.markers == markers {
		return md
	}
	n := *md
	n.markers = markers
	return &n
}

// LeadingAnnotations returns the node's own slice; copy it before modifying.
func (md *MethodDeclaration) LeadingAnnotations() []*Annotation { return md.leadingAnnotations }

func (md *MethodDeclaration) WithLeadingAnnotations(leadingAnnotations []*Annotation) *MethodDeclaration {
	if lst.SameSlice(md.leadingAnnotations, leadingAnnotations) {
		return md
	}
	n := *md
	n.leadingAnnotations = nilIfEmpty(leadingAnnotations)
	return &n
}

// Modifiers returns the node's own slice; copy it before modifying.
func (md *MethodDeclaration) Modifiers() []*Modifier { return md.modifiers }

func (md *MethodDeclaration) WithModifiers(modifiers []*Modifier) *MethodDeclaration {
	if lst.SameSlice(md.modifiers, modifiers) {
		return md
	}
	n := *md
	n.modifiers = nilIfEmpty(modifiers)
	return &n
}

func (md *MethodDeclaration) TypeParameters() *TypeParameters { return md.typeParameters }

func (md *MethodDeclaration) WithTypeParameters(typeParameters *TypeParameters) *MethodDeclaration {
	if md.typeParameters == typeParameters {
		return md
	}
	n := *md
	n.typeParameters = typeParameters
	return &n
}

func (md *MethodDeclaration) ReturnTypeExpression() TypeTree { return md.returnTypeExpression }

func (md *MethodDeclaration) WithReturnTypeExpression(returnTypeExpression TypeTree) *MethodDeclaration {
	if md.returnTypeExpression == returnTypeExpression {
		return md
	}
	n := *md
	n.returnTypeExpression = returnTypeExpression
	return &n
}

func (md *MethodDeclaration) Name() *Identifier { return md.name }

func (md *MethodDeclaration) WithName(name *Identifier) *MethodDeclaration {
	if md.name == name {
		return md
	}
	n := *md
	n.name = name
	return &n
}

func (md *MethodDeclaration) Parameters() []Statement { return md.parameters.Elements() }

func (md *MethodDeclaration) WithParameters(parameters []Statement) *MethodDeclaration {
	return md.Padding().WithParameters(withContainerElements(md.parameters, parameters))
}

func (md *MethodDeclaration) Throws() []NameTree { return md.throws.Elements() }

func (md *MethodDeclaration) WithThrows(throws []NameTree) *MethodDeclaration {
	return md.Padding().WithThrows(withContainerElements(md.throws, throws))
}

func (md *MethodDeclaration) Body() *Block { return md.body }

func (md *MethodDeclaration) WithBody(body *Block) *MethodDeclaration {
	if md.body == body {
		return md
	}
	n := *md
	n.body = body
	return &n
}

func (md *MethodDeclaration) DefaultValue() Expression { return md.defaultValue.Element() }

func (md *MethodDeclaration) WithDefaultValue(defaultValue Expression) *MethodDeclaration {
	return md.Padding().WithDefaultValue(withLeftElement(md.defaultValue, defaultValue))
}

func (md *MethodDeclaration) MethodType() *types.Method { return md.methodType }

func (md *MethodDeclaration) WithMethodType(methodType *types.Method) *MethodDeclaration {
	if md.methodType == methodType {
		return md
	}
	n := *md
	n.methodType = methodType
	return &n
}

func (md *MethodDeclaration) Type() types.JavaType { return methodAsType(md.methodType) }

func (*MethodDeclaration) isStatement() {}

// MethodDeclarationPadding exposes the padded fields of a MethodDeclaration.
type MethodDeclarationPadding struct{ t *MethodDeclaration }

// Padding returns the padded view of md.
func (md *MethodDeclaration) Padding() MethodDeclarationPadding { return MethodDeclarationPadding{t: md} }

func (p MethodDeclarationPadding) Parameters() *Container[Statement] { return p.t.parameters }

func (p MethodDeclarationPadding) WithParameters(parameters *Container[Statement]) *MethodDeclaration {
	if p.t.parameters == parameters {
		return p.t
	}
	n := *p.t
	n.parameters = parameters
	return &n
}

func (p MethodDeclarationPadding) Throws() *Container[NameTree] { return p.t.throws }

func (p MethodDeclarationPadding) WithThrows(throws *Container[NameTree]) *MethodDeclaration {
	if p.t.throws == throws {
		return p.t
	}
	n := *p.t
	n.throws = throws
	return &n
}

func (p MethodDeclarationPadding) DefaultValue() *LeftPadded[Expression] { return p.t.defaultValue }

func (p MethodDeclarationPadding) WithDefaultValue(defaultValue *LeftPadded[Expression]) *MethodDeclaration {
	if p.t.defaultValue == defaultValue {
		return p.t
	}
	n := *p.t
	n.defaultValue = defaultValue
	return &n
}

// VariableDeclarations declares one or more fields, locals or parameters sharing a type.
type VariableDeclarations struct {
	id                   uuid.UUID
	prefix               *Space
	markers              *lst.Markers
	leadingAnnotations   []*Annotation
	modifiers            []*Modifier
	typeExpression       TypeTree
	varargs              *Space
	dimensionsBeforeName []*LeftPadded[*Space]
	variables            []*RightPadded[*NamedVariable]
}

// NewVariableDeclarations creates a VariableDeclarations.
func NewVariableDeclarations(id uuid.UUID, prefix *Space, markers *lst.Markers, leadingAnnotations []*Annotation, modifiers []*Modifier, typeExpression TypeTree, varargs *Space, dimensionsBeforeName []*LeftPadded[*Space], variables []*RightPadded[*NamedVariable]) *VariableDeclarations {
	return &VariableDeclarations{
		id:                   id,
		prefix:               prefix,
		markers:              markers,
		leadingAnnotations:   nilIfEmpty(leadingAnnotations),
		modifiers:            nilIfEmpty(modifiers),
		typeExpression:       typeExpression,
		varargs:              varargs,
		dimensionsBeforeName: nilIfEmpty(dimensionsBeforeName),
		variables:            nilIfEmpty(variables),
	}
}

func (vd *VariableDeclarations) ID() uuid.UUID { return vd.id }

func (vd *VariableDeclarations) WithID(id uuid.UUID) *VariableDeclarations {
	if vd.id == id {
		return vd
	}
	n := *vd
	n.id = id
	return &n
}

func (vd *VariableDeclarations) Prefix() *Space { return vd.prefix }

func (vd *VariableDeclarations) WithPrefix(prefix *Space) *VariableDeclarations {
	if vd.prefix == prefix {
		return vd
	}
	n := *vd
	n.prefix = prefix
	return &n
}

func (vd *VariableDeclarations) Markers() *lst.Markers { return vd.markers }

func (vd *VariableDeclarations) WithMarkers(markers *lst.Markers) *VariableDeclarations {
	if vd.markers == markers {
		return vd
	}
	n := *vd
	n.markers = markers
	return &n
}

// LeadingAnnotations returns the node's own slice; copy it before modifying.
func (vd *VariableDeclarations) LeadingAnnotations() []*Annotation { return vd.leadingAnnotations }

func (vd *VariableDeclarations) WithLeadingAnnotations(leadingAnnotations []*Annotation) *VariableDeclarations {
	if lst.SameSlice(vd.leadingAnnotations, leadingAnnotations) {
		return vd
	}
	n := *vd
	n.leadingAnnotations = nilIfEmpty(leadingAnnotations)
	return &n
}

// Modifiers returns the node's own slice; copy it before modifying.
func (vd *VariableDeclarations) Modifiers() []*Modifier { return vd.modifiers }

func (vd *VariableDeclarations) WithModifiers(modifiers []*Modifier) *VariableDeclarations {
	if lst.SameSlice(vd.modifiers, modifiers) {
		return vd
	}
	n := *vd
	n.modifiers = nilIfEmpty(modifiers)
	return &n
}

func (vd *VariableDeclarations) TypeExpression() TypeTree { return vd.typeExpression }

func (vd *VariableDeclarations) WithTypeExpression(typeExpression TypeTree) *VariableDeclarations {
	if vd.typeExpression == typeExpression {
		return vd
	}
	n := *vd
	n.typeExpression = typeExpression
	return &n
}

func (vd *VariableDeclarations) Varargs() *Space { return vd.varargs }

func (vd *VariableDeclarations) WithVarargs(varargs *Space) *VariableDeclarations {
	if vd.varargs == varargs {
		return vd
	}
	n := *vd
	n.varargs = varargs
	return &n
}

// DimensionsBeforeName returns the node's own slice; copy it before modifying.
func (vd *VariableDeclarations) DimensionsBeforeName() []*LeftPadded[*Space] { return vd.dimensionsBeforeName }

func (vd *VariableDeclarations) WithDimensionsBeforeName(dimensionsBeforeName []*LeftPadded[*Space]) *VariableDeclarations {
	if lst.SameSlice(vd.dimensionsBeforeName, dimensionsBeforeName) {
		return vd
	}
	n := *vd
	n.dimensionsBeforeName = nilIfEmpty(dimensionsBeforeName)
	return &n
}

func (vd *VariableDeclarations) Variables() []*NamedVariable { return rightPaddedElements(vd.variables) }

func (vd *VariableDeclarations) WithVariables(variables []*NamedVariable) *VariableDeclarations {
	return vd.Padding().WithVariables(withRightPaddedElements(vd.variables, variables))
}

func (vd *VariableDeclarations) Type() types.JavaType { return typeOf(vd.typeExpression) }

func (*VariableDeclarations) isStatement() {}

// VariableDeclarationsPadding exposes the padded fields of a VariableDeclarations.
type VariableDeclarationsPadding struct{ t *VariableDeclarations }

// Padding returns the padded view of vd.
func (vd *VariableDeclarations) Padding() VariableDeclarationsPadding { return VariableDeclarationsPadding{t: vd} }

// Variables returns the node's own slice; copy it before modifying.
func (p VariableDeclarationsPadding) Variables() []*RightPadded[*NamedVariable] { return p.t.variables }

func (p VariableDeclarationsPadding) WithVariables(variables []*RightPadded[*NamedVariable]) *VariableDeclarations {
	if lst.SameSlice(p.t.variables, variables) {
		return p.t
	}
	n := *p.t
	n.variables = nilIfEmpty(variables)
	return &n
}

// NamedVariable is one declarator of a VariableDeclarations.
type NamedVariable struct {
	id                  uuid.UUID
	prefix              *Space
	markers             *lst.Markers
	name                *Identifier
	dimensionsAfterName []*LeftPadded[*Space]
	initializer         *LeftPadded[Expression]
	variableType        *types.Variable
}

// NewNamedVariable creates a NamedVariable.
func NewNamedVariable(id uuid.UUID, prefix *Space, markers *lst.Markers, name *Identifier, dimensionsAfterName []*LeftPadded[*Space], initializer *LeftPadded[Expression], variableType *types.Variable) *NamedVariable {
	return &NamedVariable{
		id:                  id,
		prefix:              prefix,
		markers:             markers,
		name:                name,
		dimensionsAfterName: nilIfEmpty(dimensionsAfterName),
		initializer:         initializer,
		variableType:        variableType,
	}
}

func (nv *NamedVariable) ID() uuid.UUID { return nv.id }

func (nv *NamedVariable) WithID(id uuid.UUID) *NamedVariable {
	if nv.id == id {
		return nv
	}
	n := *nv
	n.id = id
	return &n
}

func (nv *NamedVariable) Prefix() *Space { return nv.prefix }

func (nv *NamedVariable) WithPrefix(prefix *Space) *NamedVariable {
	if nv.prefix == prefix {
		return nv
	}
	n := *nv
	n.prefix = prefix
	return &n
}

func (nv *NamedVariable) Markers() *lst.Markers { return nv.markers }

func (nv *NamedVariable) WithMarkers(markers *lst.Markers) *NamedVariable {
	if nv.markers == markers {
		return nv
	}
	n := *nv
	n.markers = markers
	return &n
}

func (nv *NamedVariable) Name() *Identifier { return nv.name }

func (nv *NamedVariable) WithName(name *Identifier) *NamedVariable {
	if nv.name == name {
		return nv
	}
	n := *nv
	n.name = name
	return &n
}

// DimensionsAfterName returns the node's own slice; copy it before modifying.
func (nv *NamedVariable) DimensionsAfterName() []*LeftPadded[*Space] { return nv.dimensionsAfterName }

func (nv *NamedVariable) WithDimensionsAfterName(dimensionsAfterName []*LeftPadded[*Space]) *NamedVariable {
	if lst.SameSlice(nv.dimensionsAfterName, dimensionsAfterName) {
		return nv
	}
	n := *nv
	n.dimensionsAfterName = nilIfEmpty(dimensionsAfterName)
	return &n
}

func (nv *NamedVariable) Initializer() Expression { return nv.initializer.Element() }

func (nv *NamedVariable) WithInitializer(initializer Expression) *NamedVariable {
	return nv.Padding().WithInitializer(withLeftElement(nv.initializer, initializer))
}

func (nv *NamedVariable) VariableType() *types.Variable { return nv.variableType }

func (nv *NamedVariable) WithVariableType(variableType *types.Variable) *NamedVariable {
	if nv.variableType == variableType {
		return nv
	}
	n := *nv
	n.variableType = variableType
	return &n
}

func (nv *NamedVariable) Type() types.JavaType { return variableTypeOf(nv.variableType) }

func (*NamedVariable) isNameTree() {}

// NamedVariablePadding exposes the padded fields of a NamedVariable.
type NamedVariablePadding struct{ t *NamedVariable }

// Padding returns the padded view of nv.
func (nv *NamedVariable) Padding() NamedVariablePadding { return NamedVariablePadding{t: nv} }

func (p NamedVariablePadding) Initializer() *LeftPadded[Expression] { return p.t.initializer }

func (p NamedVariablePadding) WithInitializer(initializer *LeftPadded[Expression]) *NamedVariable {
	if p.t.initializer == initializer {
		return p.t
	}
	n := *p.t
	n.initializer = initializer
	return &n
}

// TypeParameter declares one generic type parameter.
type TypeParameter struct {
	id          uuid.UUID
	prefix      *Space
	markers     *lst.Markers
	annotations []*Annotation
	modifiers   []*Modifier
	name        Expression
	bounds      *Container[TypeTree]
}

// NewTypeParameter creates a TypeParameter.
func NewTypeParameter(id uuid.UUID, prefix *Space, markers *lst.Markers, annotations []*Annotation, modifiers []*Modifier, name Expression, bounds *Container[TypeTree]) *TypeParameter {
	return &TypeParameter{
		id:          id,
		prefix:      prefix,
		markers:     markers,
		annotations: nilIfEmpty(annotations),
		modifiers:   nilIfEmpty(modifiers),
		name:        name,
		bounds:      bounds,
	}
}

func (tp *TypeParameter) ID() uuid.UUID { return tp.id }

func (tp *TypeParameter) WithID(id uuid.UUID) *TypeParameter {
	if tp.id == id {
		return tp
	}
	n := *tp
	n.id = id
	return &n
}

func (tp *TypeParameter) Prefix() *Space { return tp.prefix }

func (tp *TypeParameter) WithPrefix(prefix *Space) *TypeParameter {
	if tp.prefix == prefix {
		return tp
	}
	n := *tp
	n.prefix = prefix
	return &n
}

func (tp *TypeParameter) Markers() *lst.Markers { return tp.markers }

func (tp *TypeParameter) WithMarkers(markers *lst.Markers) *TypeParameter {
	if tp.markers == markers {
		return tp
	}
	n := *tp
	n.markers = markers
	return &n
}

// Annotations returns the node's own slice; copy it before modifying.
func (tp *TypeParameter) Annotations() []*Annotation { return tp.annotations }

func (tp *TypeParameter) WithAnnotations(annotations []*Annotation) *TypeParameter {
	if lst.SameSlice(tp.annotations, annotations) {
		return tp
	}
	n := *tp
	n.annotations = nilIfEmpty(annotations)
	return &n
}

// Modifiers returns the node's own slice; copy it before modifying.
func (tp *TypeParameter) Modifiers() []*Modifier { return tp.modifiers }

func (tp *TypeParameter) WithModifiers(modifiers []*Modifier) *TypeParameter {
	if lst.SameSlice(tp.modifiers, modifiers) {
		return tp
	}
	n := *tp
	n.modifiers = nilIfEmpty(modifiers)
	return &n
}

func (tp *TypeParameter) Name() Expression { return tp.name }

func (tp *TypeParameter) WithName(name Expression) *TypeParameter {
	if tp.name == name {
		return tp
	}
	n := *tp
	n.name = name
	return &n
}

func (tp *TypeParameter) Bounds() []TypeTree { return tp.bounds.Elements() }

func (tp *TypeParameter) WithBounds(bounds []TypeTree) *TypeParameter {
	return tp.Padding().WithBounds(withContainerElements(tp.bounds, bounds))
}

// TypeParameterPadding exposes the padded fields of a TypeParameter.
type TypeParameterPadding struct{ t *TypeParameter }

// Padding returns the padded view of tp.
func (tp *TypeParameter) Padding() TypeParameterPadding { return TypeParameterPadding{t: tp} }

func (p TypeParameterPadding) Bounds() *Container[TypeTree] { return p.t.bounds }

func (p TypeParameterPadding) WithBounds(bounds *Container[TypeTree]) *TypeParameter {
	if p.t.bounds == bounds {
		return p.t
	}
	n := *p.t
	n.bounds = bounds
	return &n
}

// TypeParameters is the type parameter list of a method declaration.
type TypeParameters struct {
	id             uuid.UUID
	prefix         *Space
	markers        *lst.Markers
	annotations    []*Annotation
	typeParameters []*RightPadded[*TypeParameter]
}

// NewTypeParameters creates a TypeParameters.
func NewTypeParameters(id uuid.UUID, prefix *Space, markers *lst.Markers, annotations []*Annotation, typeParameters []*RightPadded[*TypeParameter]) *TypeParameters {
	return &TypeParameters{
		id:             id,
		prefix:         prefix,
		markers:        markers,
		annotations:    nilIfEmpty(annotations),
		typeParameters: nilIfEmpty(typeParameters),
	}
}

func (tp *TypeParameters) ID() uuid.UUID { return tp.id }

func (tp *TypeParameters) WithID(id uuid.UUID) *TypeParameters {
	if tp.id == id {
		return tp
	}
	n := *tp
	n.id = id
	return &n
}

func (tp *TypeParameters) Prefix() *Space { return tp.prefix }

func (tp *TypeParameters) WithPrefix(prefix *Space) *TypeParameters {
	if tp.prefix == prefix {
		return tp
	}
	n := *tp
	n.prefix = prefix
	return &n
}

func (tp *TypeParameters) Markers() *lst.Markers { return tp.markers }

func (tp *TypeParameters) WithMarkers(markers *lst.Markers) *TypeParameters {
	if tp.markers == markers {
		return tp
	}
	n := *tp
	n.markers = markers
	return &n
}

// Annotations returns the node's own slice; copy it before modifying.
func (tp *TypeParameters) Annotations() []*Annotation { return tp.annotations }

func (tp *TypeParameters) WithAnnotations(annotations []*Annotation) *TypeParameters {
	if lst.SameSlice(tp.annotations, annotations) {
		return tp
	}
	n := *tp
	n.annotations = nilIfEmpty(annotations)
	return &n
}

func (tp *TypeParameters) TypeParameters() []*TypeParameter { return rightPaddedElements(tp.typeParameters) }

func (tp *TypeParameters) WithTypeParameters(typeParameters []*TypeParameter) *TypeParameters {
	return tp.Padding().WithTypeParameters(withRightPaddedElements(tp.typeParameters, typeParameters))
}

// TypeParametersPadding exposes the padded fields of a TypeParameters.
type TypeParametersPadding struct{ t *TypeParameters }

// Padding returns the padded view of tp.
func (tp *TypeParameters) Padding() TypeParametersPadding { return TypeParametersPadding{t: tp} }

// TypeParameters returns the node's own slice; copy it before modifying.
func (p TypeParametersPadding) TypeParameters() []*RightPadded[*TypeParameter] { return p.t.typeParameters }

func (p TypeParametersPadding) WithTypeParameters(typeParameters []*RightPadded[*TypeParameter]) *TypeParameters {
	if lst.SameSlice(p.t.typeParameters, typeParameters) {
		return p.t
	}
	n := *p.t
	n.typeParameters = nilIfEmpty(typeParameters)
	return &n
}

// Modifier is a declaration modifier keyword such as public or static.
type Modifier struct {
	id           uuid.UUID
	prefix       *Space
	markers      *lst.Markers
	keyword      string
	modifierType ModifierType
	annotations  []*Annotation
}

// NewModifier creates a Modifier.
func NewModifier(id uuid.UUID, prefix *Space, markers *lst.Markers, keyword string, modifierType ModifierType, annotations []*Annotation) *Modifier {
	return &Modifier{
		id:           id,
		prefix:       prefix,
		markers:      markers,
		keyword:      keyword,
		modifierType: modifierType,
		annotations:  nilIfEmpty(annotations),
	}
}

func (m *Modifier) ID() uuid.UUID { return m.id }

func (m *Modifier) WithID(id uuid.UUID) *Modifier {
	if m.id == id {
		return m
	}
	n := *m
	n.id = id
	return &n
}

func (m *Modifier) Prefix() *Space { return m.prefix }

func (m *Modifier) WithPrefix(prefix *Space) *Modifier {
	if m.prefix == prefix {
		return m
	}
	n := *m
	n.prefix = prefix
	return &n
}

func (m *Modifier) Markers() *lst.Markers { return m.markers }

func (m *Modifier) WithMarkers(markers *lst.Markers) *Modifier {
	if m.markers == markers {
		return m
	}
	n := *m
	n.markers = markers
	return &n
}

func (m *Modifier) Keyword() string { return m.keyword }

func (m *Modifier) WithKeyword(keyword string) *Modifier {
	if m.keyword == keyword {
		return m
	}
	n := *m
	n.keyword = keyword
	return &n
}

func (m *Modifier) ModifierType() ModifierType { return m.modifierType }

func (m *Modifier) WithModifierType(modifierType ModifierType) *Modifier {
	if m.modifierType == modifierType {
		return m
	}
	n := *m
	n.modifierType = modifierType
	return &n
}

// Annotations returns the node's own slice; copy it before modifying.
func (m *Modifier) Annotations() []*Annotation { return m.annotations }

func (m *Modifier) WithAnnotations(annotations []*Annotation) *Modifier {
	if lst.SameSlice(m.annotations, annotations) {
		return m
	}
	n := *m
	n.annotations = nilIfEmpty(annotations)
	return &n
}

// Annotation is an annotation use such as @Override.
type Annotation struct {
	id             uuid.UUID
	prefix         *Space
	markers        *lst.Markers
	annotationType NameTree
	arguments      *Container[Expression]
}

// NewAnnotation creates an Annotation.
func NewAnnotation(id uuid.UUID, prefix *Space, markers *lst.Markers, annotationType NameTree, arguments *Container[Expression]) *Annotation {
	return &Annotation{
		id:             id,
		prefix:         prefix,
		markers:        markers,
		annotationType: annotationType,
		arguments:      arguments,
	}
}

func (a *Annotation) ID() uuid.UUID { return a.id }

func (a *Annotation) WithID(id uuid.UUID) *Annotation {
	if a.id == id {
		return a
	}
	n := *a
	n.id = id
	return &n
}

func (a *Annotation) Prefix() *Space { return a.prefix }

func (a *Annotation) WithPrefix(prefix *Space) *Annotation {
	if a.prefix == prefix {
		return a
	}
	n := *a
	n.prefix = prefix
	return &n
}

func (a *Annotation) Markers() *lst.Markers { return a.markers }

func (a *Annotation) WithMarkers(markers *lst.Markers) *Annotation {
	if a.markers == markers {
		return a
	}
	n := *a
	n.markers = markers
	return &n
}

func (a *Annotation) AnnotationType() NameTree { return a.annotationType }

func (a *Annotation) WithAnnotationType(annotationType NameTree) *Annotation {
	if a.annotationType == annotationType {
		return a
	}
	n := *a
	n.annotationType = annotationType
	return &n
}

func (a *Annotation) Arguments() []Expression { return a.arguments.Elements() }

func (a *Annotation) WithArguments(arguments []Expression) *Annotation {
	return a.Padding().WithArguments(withContainerElements(a.arguments, arguments))
}

func (a *Annotation) Type() types.JavaType { return typeOf(a.annotationType) }

func (*Annotation) isExpression() {}

// AnnotationPadding exposes the padded fields of an Annotation.
type AnnotationPadding struct{ t *Annotation }

// Padding returns the padded view of a.
func (a *Annotation) Padding() AnnotationPadding { return AnnotationPadding{t: a} }

func (p AnnotationPadding) Arguments() *Container[Expression] { return p.t.arguments }

func (p AnnotationPadding) WithArguments(arguments *Container[Expression]) *Annotation {
	if p.t.arguments == arguments {
		return p.t
	}
	n := *p.t
	n.arguments = arguments
	return &n
}
