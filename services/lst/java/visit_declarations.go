// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package java

import (
	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
)

func (v *BaseVisitor[P]) VisitCompilationUnit(cu *tree.CompilationUnit, p P) tree.J {
	cu = cu.WithPrefix(v.self.VisitSpace(cu.Prefix(), tree.SpaceCompilationUnitPrefix, p))
	cu = cu.WithMarkers(v.self.VisitMarkers(cu.Markers(), p))
	cu = cu.Padding().WithPackageDeclaration(visitRightPadded(v, cu.Padding().PackageDeclaration(), tree.RightPaddedCompilationUnitPackageDeclaration, p))
	cu = cu.Padding().WithImports(visitRightPaddedList(v, cu.Padding().Imports(), tree.RightPaddedCompilationUnitImports, p))
	cu = cu.WithClasses(lst.MapList(cu.Classes(), func(e *tree.ClassDeclaration) *tree.ClassDeclaration { return visitAndCast(v, e, p) }))
	cu = cu.WithEof(v.self.VisitSpace(cu.Eof(), tree.SpaceCompilationUnitEof, p))
	return cu
}

func (v *BaseVisitor[P]) VisitPackage(pkg *tree.Package, p P) tree.J {
	pkg = pkg.WithPrefix(v.self.VisitSpace(pkg.Prefix(), tree.SpacePackagePrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(pkg, p)
	if pkg, ok = tmp.(*tree.Package); !ok {
		return tmp
	}
	pkg = pkg.WithMarkers(v.self.VisitMarkers(pkg.Markers(), p))
	pkg = pkg.WithExpression(visitAndCast(v, pkg.Expression(), p))
	pkg = pkg.WithAnnotations(lst.MapList(pkg.Annotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	return pkg
}

func (v *BaseVisitor[P]) VisitImport(imp *tree.Import, p P) tree.J {
	imp = imp.WithPrefix(v.self.VisitSpace(imp.Prefix(), tree.SpaceImportPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(imp, p)
	if imp, ok = tmp.(*tree.Import); !ok {
		return tmp
	}
	imp = imp.WithMarkers(v.self.VisitMarkers(imp.Markers(), p))
	imp = imp.Padding().WithStatic(visitLeftPadded(v, imp.Padding().Static(), tree.LeftPaddedImportStatic, p))
	imp = imp.WithQualid(visitAndCast(v, imp.Qualid(), p))
	imp = imp.Padding().WithAlias(visitLeftPadded(v, imp.Padding().Alias(), tree.LeftPaddedImportAlias, p))
	return imp
}

func (v *BaseVisitor[P]) VisitClassDeclaration(cd *tree.ClassDeclaration, p P) tree.J {
	cd = cd.WithPrefix(v.self.VisitSpace(cd.Prefix(), tree.SpaceClassDeclarationPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(cd, p)
	if cd, ok = tmp.(*tree.ClassDeclaration); !ok {
		return tmp
	}
	cd = cd.WithMarkers(v.self.VisitMarkers(cd.Markers(), p))
	cd = cd.WithLeadingAnnotations(lst.MapList(cd.LeadingAnnotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	cd = cd.WithModifiers(lst.MapList(cd.Modifiers(), func(e *tree.Modifier) *tree.Modifier { return visitAndCast(v, e, p) }))
	cd = cd.WithKind(visitAndCast(v, cd.Kind(), p))
	cd = cd.WithName(visitAndCast(v, cd.Name(), p))
	cd = cd.Padding().WithTypeParameters(visitContainer(v, cd.Padding().TypeParameters(), tree.ContainerClassDeclarationTypeParameters, p))
	cd = cd.Padding().WithPrimaryConstructor(visitContainer(v, cd.Padding().PrimaryConstructor(), tree.ContainerClassDeclarationPrimaryConstructor, p))
	cd = cd.Padding().WithExtends(visitLeftPadded(v, cd.Padding().Extends(), tree.LeftPaddedClassDeclarationExtends, p))
	cd = cd.Padding().WithImplements(visitContainer(v, cd.Padding().Implements(), tree.ContainerClassDeclarationImplements, p))
	cd = cd.Padding().WithPermits(visitContainer(v, cd.Padding().Permits(), tree.ContainerClassDeclarationPermits, p))
	cd = cd.WithBody(visitAndCast(v, cd.Body(), p))
	cd = cd.WithType(visitType(v, cd.Type(), p))
	return cd
}

func (v *BaseVisitor[P]) VisitClassDeclarationKind(cdk *tree.ClassDeclarationKind, p P) tree.J {
	cdk = cdk.WithPrefix(v.self.VisitSpace(cdk.Prefix(), tree.SpaceClassDeclarationKindPrefix, p))
	cdk = cdk.WithMarkers(v.self.VisitMarkers(cdk.Markers(), p))
	cdk = cdk.WithAnnotations(lst.MapList(cdk.Annotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	return cdk
}

func (v *BaseVisitor[P]) VisitEnumValue(ev *tree.EnumValue, p P) tree.J {
	ev = ev.WithPrefix(v.self.VisitSpace(ev.Prefix(), tree.SpaceEnumValuePrefix, p))
	ev = ev.WithMarkers(v.self.VisitMarkers(ev.Markers(), p))
	ev = ev.WithAnnotations(lst.MapList(ev.Annotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	ev = ev.WithName(visitAndCast(v, ev.Name(), p))
	ev = ev.WithInitializer(visitAndCast(v, ev.Initializer(), p))
	return ev
}

func (v *BaseVisitor[P]) VisitEnumValueSet(evs *tree.EnumValueSet, p P) tree.J {
	evs = evs.WithPrefix(v.self.VisitSpace(evs.Prefix(), tree.SpaceEnumValueSetPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(evs, p)
	if evs, ok = tmp.(*tree.EnumValueSet); !ok {
		return tmp
	}
	evs = evs.WithMarkers(v.self.VisitMarkers(evs.Markers(), p))
	evs = evs.Padding().WithEnums(visitRightPaddedList(v, evs.Padding().Enums(), tree.RightPaddedEnumValueSetEnums, p))
	return evs
}

func (v *BaseVisitor[P]) VisitMethodDeclaration(md *tree.MethodDeclaration, p P) tree.J {
	md = md.WithPrefix(v.self.VisitSpace(md.Prefix(), tree.SpaceMethodDeclarationPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(md, p)
	if md, ok = tmp.(*tree.MethodDeclaration); !ok {
		return tmp
	}
	md = md.WithMarkers(v.self.VisitMarkers(md.Markers(), p))
	md = md.WithLeadingAnnotations(lst.MapList(md.LeadingAnnotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	md = md.WithModifiers(lst.MapList(md.Modifiers(), func(e *tree.Modifier) *tree.Modifier { return visitAndCast(v, e, p) }))
	md = md.WithTypeParameters(visitAndCast(v, md.TypeParameters(), p))
	md = md.WithReturnTypeExpression(visitAndCast(v, md.ReturnTypeExpression(), p))
	md = md.WithName(visitAndCast(v, md.Name(), p))
	md = md.Padding().WithParameters(visitContainer(v, md.Padding().Parameters(), tree.ContainerMethodDeclarationParameters, p))
	md = md.Padding().WithThrows(visitContainer(v, md.Padding().Throws(), tree.ContainerMethodDeclarationThrows, p))
	md = md.WithBody(visitAndCast(v, md.Body(), p))
	md = md.Padding().WithDefaultValue(visitLeftPadded(v, md.Padding().DefaultValue(), tree.LeftPaddedMethodDeclarationDefaultValue, p))
	md = md.WithMethodType(visitType(v, md.MethodType(), p))
	return md
}

func (v *BaseVisitor[P]) VisitVariableDeclarations(vd *tree.VariableDeclarations, p P) tree.J {
	vd = vd.WithPrefix(v.self.VisitSpace(vd.Prefix(), tree.SpaceVariableDeclarationsPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(vd, p)
	if vd, ok = tmp.(*tree.VariableDeclarations); !ok {
		return tmp
	}
	vd = vd.WithMarkers(v.self.VisitMarkers(vd.Markers(), p))
	vd = vd.WithLeadingAnnotations(lst.MapList(vd.LeadingAnnotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	vd = vd.WithModifiers(lst.MapList(vd.Modifiers(), func(e *tree.Modifier) *tree.Modifier { return visitAndCast(v, e, p) }))
	vd = vd.WithTypeExpression(visitAndCast(v, vd.TypeExpression(), p))
	vd = vd.WithVarargs(v.self.VisitSpace(vd.Varargs(), tree.SpaceVariableDeclarationsVarargs, p))
	vd = vd.WithDimensionsBeforeName(visitLeftPaddedList(v, vd.DimensionsBeforeName(), tree.LeftPaddedVariableDeclarationsDimensionsBeforeName, p))
	vd = vd.Padding().WithVariables(visitRightPaddedList(v, vd.Padding().Variables(), tree.RightPaddedVariableDeclarationsVariables, p))
	return vd
}

func (v *BaseVisitor[P]) VisitNamedVariable(nv *tree.NamedVariable, p P) tree.J {
	nv = nv.WithPrefix(v.self.VisitSpace(nv.Prefix(), tree.SpaceNamedVariablePrefix, p))
	nv = nv.WithMarkers(v.self.VisitMarkers(nv.Markers(), p))
	nv = nv.WithName(visitAndCast(v, nv.Name(), p))
	nv = nv.WithDimensionsAfterName(visitLeftPaddedList(v, nv.DimensionsAfterName(), tree.LeftPaddedNamedVariableDimensionsAfterName, p))
	nv = nv.Padding().WithInitializer(visitLeftPadded(v, nv.Padding().Initializer(), tree.LeftPaddedNamedVariableInitializer, p))
	nv = nv.WithVariableType(visitType(v, nv.VariableType(), p))
	return nv
}

func (v *BaseVisitor[P]) VisitTypeParameter(tp *tree.TypeParameter, p P) tree.J {
	tp = tp.WithPrefix(v.self.VisitSpace(tp.Prefix(), tree.SpaceTypeParameterPrefix, p))
	tp = tp.WithMarkers(v.self.VisitMarkers(tp.Markers(), p))
	tp = tp.WithAnnotations(lst.MapList(tp.Annotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	tp = tp.WithModifiers(lst.MapList(tp.Modifiers(), func(e *tree.Modifier) *tree.Modifier { return visitAndCast(v, e, p) }))
	tp = tp.WithName(visitAndCast(v, tp.Name(), p))
	tp = tp.Padding().WithBounds(visitContainer(v, tp.Padding().Bounds(), tree.ContainerTypeParameterBounds, p))
	return tp
}

func (v *BaseVisitor[P]) VisitTypeParameters(tp *tree.TypeParameters, p P) tree.J {
	tp = tp.WithPrefix(v.self.VisitSpace(tp.Prefix(), tree.SpaceTypeParametersPrefix, p))
	tp = tp.WithMarkers(v.self.VisitMarkers(tp.Markers(), p))
	tp = tp.WithAnnotations(lst.MapList(tp.Annotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	tp = tp.Padding().WithTypeParameters(visitRightPaddedList(v, tp.Padding().TypeParameters(), tree.RightPaddedTypeParametersTypeParameters, p))
	return tp
}

func (v *BaseVisitor[P]) VisitModifier(m *tree.Modifier, p P) tree.J {
	m = m.WithPrefix(v.self.VisitSpace(m.Prefix(), tree.SpaceModifierPrefix, p))
	m = m.WithMarkers(v.self.VisitMarkers(m.Markers(), p))
	m = m.WithAnnotations(lst.MapList(m.Annotations(), func(e *tree.Annotation) *tree.Annotation { return visitAndCast(v, e, p) }))
	return m
}

func (v *BaseVisitor[P]) VisitAnnotation(a *tree.Annotation, p P) tree.J {
	a = a.WithPrefix(v.self.VisitSpace(a.Prefix(), tree.SpaceAnnotationPrefix, p))
	var ok bool
	tmp := v.self.VisitExpression(a, p)
	if a, ok = tmp.(*tree.Annotation); !ok {
		return tmp
	}
	a = a.WithMarkers(v.self.VisitMarkers(a.Markers(), p))
	a = a.WithAnnotationType(visitAndCast(v, a.AnnotationType(), p))
	a = a.Padding().WithArguments(visitContainer(v, a.Padding().Arguments(), tree.ContainerAnnotationArguments, p))
	return a
}
