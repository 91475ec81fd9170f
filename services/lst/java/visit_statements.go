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

func (v *BaseVisitor[P]) VisitAssert(a *tree.Assert, p P) tree.J {
	a = a.WithPrefix(v.self.VisitSpace(a.Prefix(), tree.SpaceAssertPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(a, p)
	if a, ok = tmp.(*tree.Assert); !ok {
		return tmp
	}
	a = a.WithMarkers(v.self.VisitMarkers(a.Markers(), p))
	a = a.WithCondition(visitAndCast(v, a.Condition(), p))
	a = a.Padding().WithDetail(visitLeftPadded(v, a.Padding().Detail(), tree.LeftPaddedAssertDetail, p))
	return a
}

func (v *BaseVisitor[P]) VisitBlock(b *tree.Block, p P) tree.J {
	b = b.WithPrefix(v.self.VisitSpace(b.Prefix(), tree.SpaceBlockPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(b, p)
	if b, ok = tmp.(*tree.Block); !ok {
		return tmp
	}
	b = b.WithMarkers(v.self.VisitMarkers(b.Markers(), p))
	b = b.Padding().WithStatic(visitRightPadded(v, b.Padding().Static(), tree.RightPaddedBlockStatic, p))
	b = b.Padding().WithStatements(visitRightPaddedList(v, b.Padding().Statements(), tree.RightPaddedBlockStatements, p))
	b = b.WithEnd(v.self.VisitSpace(b.End(), tree.SpaceBlockEnd, p))
	return b
}

func (v *BaseVisitor[P]) VisitBreak(brk *tree.Break, p P) tree.J {
	brk = brk.WithPrefix(v.self.VisitSpace(brk.Prefix(), tree.SpaceBreakPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(brk, p)
	if brk, ok = tmp.(*tree.Break); !ok {
		return tmp
	}
	brk = brk.WithMarkers(v.self.VisitMarkers(brk.Markers(), p))
	brk = brk.WithLabel(visitAndCast(v, brk.Label(), p))
	return brk
}

func (v *BaseVisitor[P]) VisitCase(cs *tree.Case, p P) tree.J {
	cs = cs.WithPrefix(v.self.VisitSpace(cs.Prefix(), tree.SpaceCasePrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(cs, p)
	if cs, ok = tmp.(*tree.Case); !ok {
		return tmp
	}
	cs = cs.WithMarkers(v.self.VisitMarkers(cs.Markers(), p))
	cs = cs.Padding().WithCaseLabels(visitContainer(v, cs.Padding().CaseLabels(), tree.ContainerCaseCaseLabels, p))
	cs = cs.Padding().WithStatements(visitContainer(v, cs.Padding().Statements(), tree.ContainerCaseStatements, p))
	cs = cs.Padding().WithBody(visitRightPadded(v, cs.Padding().Body(), tree.RightPaddedCaseBody, p))
	cs = cs.WithGuard(visitAndCast(v, cs.Guard(), p))
	return cs
}

func (v *BaseVisitor[P]) VisitContinue(cont *tree.Continue, p P) tree.J {
	cont = cont.WithPrefix(v.self.VisitSpace(cont.Prefix(), tree.SpaceContinuePrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(cont, p)
	if cont, ok = tmp.(*tree.Continue); !ok {
		return tmp
	}
	cont = cont.WithMarkers(v.self.VisitMarkers(cont.Markers(), p))
	cont = cont.WithLabel(visitAndCast(v, cont.Label(), p))
	return cont
}

func (v *BaseVisitor[P]) VisitDoWhileLoop(dwl *tree.DoWhileLoop, p P) tree.J {
	dwl = dwl.WithPrefix(v.self.VisitSpace(dwl.Prefix(), tree.SpaceDoWhileLoopPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(dwl, p)
	if dwl, ok = tmp.(*tree.DoWhileLoop); !ok {
		return tmp
	}
	dwl = dwl.WithMarkers(v.self.VisitMarkers(dwl.Markers(), p))
	dwl = dwl.Padding().WithBody(visitRightPadded(v, dwl.Padding().Body(), tree.RightPaddedDoWhileLoopBody, p))
	dwl = dwl.Padding().WithWhileCondition(visitLeftPadded(v, dwl.Padding().WhileCondition(), tree.LeftPaddedDoWhileLoopWhileCondition, p))
	return dwl
}

func (v *BaseVisitor[P]) VisitEmpty(e *tree.Empty, p P) tree.J {
	e = e.WithPrefix(v.self.VisitSpace(e.Prefix(), tree.SpaceEmptyPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(e, p)
	if e, ok = tmp.(*tree.Empty); !ok {
		return tmp
	}
	tmp = v.self.VisitExpression(e, p)
	if e, ok = tmp.(*tree.Empty); !ok {
		return tmp
	}
	e = e.WithMarkers(v.self.VisitMarkers(e.Markers(), p))
	return e
}

func (v *BaseVisitor[P]) VisitForEachLoop(fel *tree.ForEachLoop, p P) tree.J {
	fel = fel.WithPrefix(v.self.VisitSpace(fel.Prefix(), tree.SpaceForEachLoopPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(fel, p)
	if fel, ok = tmp.(*tree.ForEachLoop); !ok {
		return tmp
	}
	fel = fel.WithMarkers(v.self.VisitMarkers(fel.Markers(), p))
	fel = fel.WithControl(visitAndCast(v, fel.Control(), p))
	fel = fel.Padding().WithBody(visitRightPadded(v, fel.Padding().Body(), tree.RightPaddedForEachLoopBody, p))
	return fel
}

func (v *BaseVisitor[P]) VisitForEachLoopControl(felc *tree.ForEachLoopControl, p P) tree.J {
	felc = felc.WithPrefix(v.self.VisitSpace(felc.Prefix(), tree.SpaceForEachLoopControlPrefix, p))
	felc = felc.WithMarkers(v.self.VisitMarkers(felc.Markers(), p))
	felc = felc.Padding().WithVariable(visitRightPadded(v, felc.Padding().Variable(), tree.RightPaddedForEachLoopControlVariable, p))
	felc = felc.Padding().WithIterable(visitRightPadded(v, felc.Padding().Iterable(), tree.RightPaddedForEachLoopControlIterable, p))
	return felc
}

func (v *BaseVisitor[P]) VisitForLoop(fl *tree.ForLoop, p P) tree.J {
	fl = fl.WithPrefix(v.self.VisitSpace(fl.Prefix(), tree.SpaceForLoopPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(fl, p)
	if fl, ok = tmp.(*tree.ForLoop); !ok {
		return tmp
	}
	fl = fl.WithMarkers(v.self.VisitMarkers(fl.Markers(), p))
	fl = fl.WithControl(visitAndCast(v, fl.Control(), p))
	fl = fl.Padding().WithBody(visitRightPadded(v, fl.Padding().Body(), tree.RightPaddedForLoopBody, p))
	return fl
}

func (v *BaseVisitor[P]) VisitForLoopControl(flc *tree.ForLoopControl, p P) tree.J {
	flc = flc.WithPrefix(v.self.VisitSpace(flc.Prefix(), tree.SpaceForLoopControlPrefix, p))
	flc = flc.WithMarkers(v.self.VisitMarkers(flc.Markers(), p))
	flc = flc.Padding().WithInit(visitRightPaddedList(v, flc.Padding().Init(), tree.RightPaddedForLoopControlInit, p))
	flc = flc.Padding().WithCondition(visitRightPadded(v, flc.Padding().Condition(), tree.RightPaddedForLoopControlCondition, p))
	flc = flc.Padding().WithUpdate(visitRightPaddedList(v, flc.Padding().Update(), tree.RightPaddedForLoopControlUpdate, p))
	return flc
}

func (v *BaseVisitor[P]) VisitIf(iff *tree.If, p P) tree.J {
	iff = iff.WithPrefix(v.self.VisitSpace(iff.Prefix(), tree.SpaceIfPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(iff, p)
	if iff, ok = tmp.(*tree.If); !ok {
		return tmp
	}
	iff = iff.WithMarkers(v.self.VisitMarkers(iff.Markers(), p))
	iff = iff.WithIfCondition(visitAndCast(v, iff.IfCondition(), p))
	iff = iff.Padding().WithThenPart(visitRightPadded(v, iff.Padding().ThenPart(), tree.RightPaddedIfThenPart, p))
	iff = iff.WithElsePart(visitAndCast(v, iff.ElsePart(), p))
	return iff
}

func (v *BaseVisitor[P]) VisitIfElse(ie *tree.IfElse, p P) tree.J {
	ie = ie.WithPrefix(v.self.VisitSpace(ie.Prefix(), tree.SpaceIfElsePrefix, p))
	ie = ie.WithMarkers(v.self.VisitMarkers(ie.Markers(), p))
	ie = ie.Padding().WithBody(visitRightPadded(v, ie.Padding().Body(), tree.RightPaddedIfElseBody, p))
	return ie
}

func (v *BaseVisitor[P]) VisitLabel(l *tree.Label, p P) tree.J {
	l = l.WithPrefix(v.self.VisitSpace(l.Prefix(), tree.SpaceLabelPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(l, p)
	if l, ok = tmp.(*tree.Label); !ok {
		return tmp
	}
	l = l.WithMarkers(v.self.VisitMarkers(l.Markers(), p))
	l = l.Padding().WithLabel(visitRightPadded(v, l.Padding().Label(), tree.RightPaddedLabelLabel, p))
	l = l.WithStatement(visitAndCast(v, l.Statement(), p))
	return l
}

func (v *BaseVisitor[P]) VisitReturn(ret *tree.Return, p P) tree.J {
	ret = ret.WithPrefix(v.self.VisitSpace(ret.Prefix(), tree.SpaceReturnPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(ret, p)
	if ret, ok = tmp.(*tree.Return); !ok {
		return tmp
	}
	ret = ret.WithMarkers(v.self.VisitMarkers(ret.Markers(), p))
	ret = ret.WithExpression(visitAndCast(v, ret.Expression(), p))
	return ret
}

func (v *BaseVisitor[P]) VisitSwitch(sw *tree.Switch, p P) tree.J {
	sw = sw.WithPrefix(v.self.VisitSpace(sw.Prefix(), tree.SpaceSwitchPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(sw, p)
	if sw, ok = tmp.(*tree.Switch); !ok {
		return tmp
	}
	sw = sw.WithMarkers(v.self.VisitMarkers(sw.Markers(), p))
	sw = sw.WithSelector(visitAndCast(v, sw.Selector(), p))
	sw = sw.WithCases(visitAndCast(v, sw.Cases(), p))
	return sw
}

func (v *BaseVisitor[P]) VisitSynchronized(sync *tree.Synchronized, p P) tree.J {
	sync = sync.WithPrefix(v.self.VisitSpace(sync.Prefix(), tree.SpaceSynchronizedPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(sync, p)
	if sync, ok = tmp.(*tree.Synchronized); !ok {
		return tmp
	}
	sync = sync.WithMarkers(v.self.VisitMarkers(sync.Markers(), p))
	sync = sync.WithLock(visitAndCast(v, sync.Lock(), p))
	sync = sync.WithBody(visitAndCast(v, sync.Body(), p))
	return sync
}

func (v *BaseVisitor[P]) VisitThrow(th *tree.Throw, p P) tree.J {
	th = th.WithPrefix(v.self.VisitSpace(th.Prefix(), tree.SpaceThrowPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(th, p)
	if th, ok = tmp.(*tree.Throw); !ok {
		return tmp
	}
	th = th.WithMarkers(v.self.VisitMarkers(th.Markers(), p))
	th = th.WithException(visitAndCast(v, th.Exception(), p))
	return th
}

func (v *BaseVisitor[P]) VisitTry(tr *tree.Try, p P) tree.J {
	tr = tr.WithPrefix(v.self.VisitSpace(tr.Prefix(), tree.SpaceTryPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(tr, p)
	if tr, ok = tmp.(*tree.Try); !ok {
		return tmp
	}
	tr = tr.WithMarkers(v.self.VisitMarkers(tr.Markers(), p))
	tr = tr.Padding().WithResources(visitContainer(v, tr.Padding().Resources(), tree.ContainerTryResources, p))
	tr = tr.WithBody(visitAndCast(v, tr.Body(), p))
	tr = tr.WithCatches(lst.MapList(tr.Catches(), func(e *tree.TryCatch) *tree.TryCatch { return visitAndCast(v, e, p) }))
	tr = tr.Padding().WithFinally(visitLeftPadded(v, tr.Padding().Finally(), tree.LeftPaddedTryFinally, p))
	return tr
}

func (v *BaseVisitor[P]) VisitTryResource(tr *tree.TryResource, p P) tree.J {
	tr = tr.WithPrefix(v.self.VisitSpace(tr.Prefix(), tree.SpaceTryResourcePrefix, p))
	tr = tr.WithMarkers(v.self.VisitMarkers(tr.Markers(), p))
	tr = tr.WithVariableDeclarations(visitAndCast(v, tr.VariableDeclarations(), p))
	return tr
}

func (v *BaseVisitor[P]) VisitTryCatch(tc *tree.TryCatch, p P) tree.J {
	tc = tc.WithPrefix(v.self.VisitSpace(tc.Prefix(), tree.SpaceTryCatchPrefix, p))
	tc = tc.WithMarkers(v.self.VisitMarkers(tc.Markers(), p))
	tc = tc.WithParameter(visitAndCast(v, tc.Parameter(), p))
	tc = tc.WithBody(visitAndCast(v, tc.Body(), p))
	return tc
}

func (v *BaseVisitor[P]) VisitWhileLoop(wl *tree.WhileLoop, p P) tree.J {
	wl = wl.WithPrefix(v.self.VisitSpace(wl.Prefix(), tree.SpaceWhileLoopPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(wl, p)
	if wl, ok = tmp.(*tree.WhileLoop); !ok {
		return tmp
	}
	wl = wl.WithMarkers(v.self.VisitMarkers(wl.Markers(), p))
	wl = wl.WithCondition(visitAndCast(v, wl.Condition(), p))
	wl = wl.Padding().WithBody(visitRightPadded(v, wl.Padding().Body(), tree.RightPaddedWhileLoopBody, p))
	return wl
}

func (v *BaseVisitor[P]) VisitYield(y *tree.Yield, p P) tree.J {
	y = y.WithPrefix(v.self.VisitSpace(y.Prefix(), tree.SpaceYieldPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(y, p)
	if y, ok = tmp.(*tree.Yield); !ok {
		return tmp
	}
	y = y.WithMarkers(v.self.VisitMarkers(y.Markers(), p))
	y = y.WithValue(visitAndCast(v, y.Value(), p))
	return y
}
