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
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
)

func (v *BaseVisitor[P]) VisitUnknown(u *tree.Unknown, p P) tree.J {
	u = u.WithPrefix(v.self.VisitSpace(u.Prefix(), tree.SpaceUnknownPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(u, p)
	if u, ok = tmp.(*tree.Unknown); !ok {
		return tmp
	}
	tmp = v.self.VisitExpression(u, p)
	if u, ok = tmp.(*tree.Unknown); !ok {
		return tmp
	}
	u = u.WithMarkers(v.self.VisitMarkers(u.Markers(), p))
	u = u.WithSource(visitAndCast(v, u.Source(), p))
	return u
}

func (v *BaseVisitor[P]) VisitUnknownSource(us *tree.UnknownSource, p P) tree.J {
	us = us.WithPrefix(v.self.VisitSpace(us.Prefix(), tree.SpaceUnknownSourcePrefix, p))
	us = us.WithMarkers(v.self.VisitMarkers(us.Markers(), p))
	return us
}

func (v *BaseVisitor[P]) VisitErroneous(e *tree.Erroneous, p P) tree.J {
	e = e.WithPrefix(v.self.VisitSpace(e.Prefix(), tree.SpaceErroneousPrefix, p))
	var ok bool
	tmp := v.self.VisitStatement(e, p)
	if e, ok = tmp.(*tree.Erroneous); !ok {
		return tmp
	}
	tmp = v.self.VisitExpression(e, p)
	if e, ok = tmp.(*tree.Erroneous); !ok {
		return tmp
	}
	e = e.WithMarkers(v.self.VisitMarkers(e.Markers(), p))
	return e
}
