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
	"fmt"
	"strings"

	"github.com/AleutianAI/lstsync/services/lst/java/tree"
)

// KindName returns the kind of t without its package, such as "Binary".
func KindName(t tree.J) string {
	name := fmt.Sprintf("%T", t)
	return name[strings.LastIndexByte(name, '.')+1:]
}

// KindCounts counts the nodes of each kind in t.
func KindCounts(t tree.J) map[string]int {
	c := &kindCounter{counts: make(map[string]int)}
	c.BaseVisitor = NewBaseVisitor[struct{}](c)
	c.Visit(t, struct{}{})
	return c.counts
}

type kindCounter struct {
	*BaseVisitor[struct{}]
	counts map[string]int
}

func (c *kindCounter) PreVisit(t tree.J, _ struct{}) tree.J {
	c.counts[KindName(t)]++
	return t
}
