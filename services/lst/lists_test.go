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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct{ n int }

func TestMapList(t *testing.T) {
	a, b, c := &box{1}, &box{2}, &box{3}
	list := []*box{a, b, c}

	t.Run("unchanged list keeps identity", func(t *testing.T) {
		out := MapList(list, func(x *box) *box { return x })
		assert.True(t, SameSlice(list, out))
	})

	t.Run("single change keeps other elements", func(t *testing.T) {
		b2 := &box{20}
		out := MapList(list, func(x *box) *box {
			if x == b {
				return b2
			}
			return x
		})
		require.Len(t, out, 3)
		assert.False(t, SameSlice(list, out))
		assert.Same(t, a, out[0])
		assert.Same(t, b2, out[1])
		assert.Same(t, c, out[2])
		assert.Same(t, b, list[1], "input must not be modified")
	})

	t.Run("nil results are removed", func(t *testing.T) {
		out := MapList(list, func(x *box) *box {
			if x == a {
				return nil
			}
			return x
		})
		assert.Equal(t, []*box{b, c}, out)
	})

	t.Run("emptied list becomes nil", func(t *testing.T) {
		out := MapList(list, func(*box) *box { return nil })
		assert.Nil(t, out)
	})

	t.Run("nil list", func(t *testing.T) {
		assert.Nil(t, MapList[*box](nil, func(x *box) *box { return x }))
	})
}

func TestSame(t *testing.T) {
	x := &box{1}
	s := []int{1, 2}
	var typedNil *box

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same pointer", x, x, true},
		{"equal but distinct pointers", x, &box{1}, false},
		{"equal strings", "a", "a", true},
		{"different scalars", int32(1), int64(1), false},
		{"same slice", s, s, true},
		{"resliced", s, s[:1], false},
		{"typed nil and nil", typedNil, nil, true},
		{"nil and value", nil, x, false},
		{"empty slices", []int{}, []int(nil), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Same(tc.a, tc.b))
		})
	}
}

func TestSameSlice(t *testing.T) {
	s := []int{1, 2, 3}
	assert.True(t, SameSlice(s, s))
	assert.True(t, SameSlice([]int{}, nil))
	assert.False(t, SameSlice(s, []int{1, 2, 3}))
	assert.False(t, SameSlice(s, s[:2]))
}
