// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package lst

import "reflect"

// MapList applies fn to every element of list.
//
// Description:
//
//	Returns list itself when fn returned every element unchanged
//	(by identity). Elements mapped to a nil value are dropped. When
//	something changed, a new slice is returned; elements that did not
//	change are carried over as-is.
//
// Inputs:
//
//	list - Elements to map. May be nil.
//	fn - Mapping function. Must not retain the slice.
//
// Outputs:
//
//	[]T - list, or a new slice if any element changed or was removed.
//	      A fully emptied list becomes nil.
//
// Example:
//
//	stmts = lst.MapList(stmts, func(s Statement) Statement {
//	    return visit(s)
//	})
//
// Thread Safety: Safe if fn is.
func MapList[T any](list []T, fn func(T) T) []T {
	var out []T
	for i, el := range list {
		mapped := fn(el)
		if out == nil {
			if Same(mapped, el) {
				continue
			}
			out = make([]T, i, len(list))
			copy(out, list[:i])
		}
		if IsNil(mapped) {
			continue
		}
		out = append(out, mapped)
	}
	if out == nil {
		return list
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SameSlice reports whether a and b are the same list: same length and,
// when non-empty, the same backing array start. Empty and nil lists are
// the same list.
func SameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// Same reports whether a and b are identical values.
//
// Description:
//
//	Pointers, interfaces holding pointers, and scalars compare with ==.
//	Slices compare by backing array and length. Typed nils and untyped
//	nil are the same. Values of incomparable kinds other than slices are
//	never the same.
//
// Thread Safety: Safe for concurrent use.
func Same(a, b any) bool {
	aNil, bNil := IsNil(a), IsNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == reflect.Slice {
		if va.Len() != vb.Len() {
			return false
		}
		return va.Len() == 0 || va.Pointer() == vb.Pointer()
	}
	return false
}

// IsNil reports whether v is nil or an interface wrapping a nil pointer,
// map, slice, func or channel.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
