// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package rpc

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/lstsync/services/lst"
)

// ring is a shared object that can point back at itself.
type ring struct {
	name string
	next *ring
}

const ringTag = "test.Ring"

type ringCodec struct{}

func (ringCodec) Tags() []string { return []string{ringTag} }

func (ringCodec) Encode(enc *Encoder, v any) (Doc, bool) {
	r, ok := v.(*ring)
	if !ok {
		return nil, false
	}
	return enc.EncodeShared(r, ringTag, func(d Doc) {
		d["name"] = r.name
		d["next"] = enc.Encode(r.next)
	}), true
}

func (ringCodec) Decode(dec *Decoder, _ string, doc Doc) (any, error) {
	r := &ring{}
	dec.Register(doc, r)
	r.name = DocString(doc, "name")
	r.next = DecodeAs[*ring](dec, doc["next"])
	return r, nil
}

func catch(fn func()) (err error) {
	defer recoverAbort(&err)
	fn()
	return nil
}

func TestCodec_SharedReferences(t *testing.T) {
	a := &ring{name: "a"}
	b := &ring{name: "b", next: a}
	a.next = b

	enc := NewEncoder(ringCodec{})
	first := enc.Encode(a).(Doc)
	second := enc.Encode(b).(Doc)

	assert.Equal(t, ringTag, first[KeyClass])
	assert.Equal(t, Doc{KeyRef: int64(2)}, second, "b was registered while encoding a")
	assert.Equal(t, 2, enc.Shared())

	dec := NewDecoder(ringCodec{})
	gotA := dec.Decode(first).(*ring)
	gotB := dec.Decode(second).(*ring)
	assert.Same(t, gotA, gotA.next.next)
	assert.Same(t, gotB, gotA.next)
	assert.Equal(t, "b", gotB.name)
	assert.Equal(t, enc.Shared(), dec.Shared())
}

func TestCodec_SurvivesJSON(t *testing.T) {
	a := &ring{name: "a"}
	a.next = a
	enc := NewEncoder(ringCodec{})

	data, err := MarshalBatch(&Batch{Events: []DiffEvent{
		{State: Add, ValueType: TagObject, Value: enc.Encode(a)},
		{State: Add, ValueType: TagObject, Value: enc.Encode(a)},
	}})
	require.NoError(t, err)
	batch, err := UnmarshalBatch(data)
	require.NoError(t, err)

	dec := NewDecoder(ringCodec{})
	first := dec.Decode(batch.Events[0].Value).(*ring)
	second := dec.Decode(batch.Events[1].Value).(*ring)
	assert.Same(t, first, first.next)
	assert.Same(t, first, second)
}

func TestCodec_Errors(t *testing.T) {
	dec := NewDecoder(ringCodec{})

	tests := []struct {
		name string
		in   any
		want error
	}{
		{"unknown tag", Doc{KeyClass: "test.Missing"}, ErrUnknownType},
		{"unknown reference", Doc{KeyRef: int64(9)}, ErrUnknownReference},
		{"neither tag nor reference", Doc{"name": "x"}, ErrDesync},
		{"not a document", "x", ErrDesync},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catch(func() { dec.Decode(tt.in) })
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsDesync(err))
		})
	}

	t.Run("no encoder codec", func(t *testing.T) {
		err := catch(func() { NewEncoder().Encode(struct{}{}) })
		assert.True(t, IsImplementationGap(err))
	})
}

func TestDocInt64(t *testing.T) {
	for _, v := range []any{7, int32(7), int64(7), float64(7), json.Number("7"), "7"} {
		assert.Equal(t, int64(7), DocInt64(v), "%T", v)
	}
	assert.Error(t, catch(func() { DocInt64(1.5) }))
	assert.Error(t, catch(func() { DocInt64(true) }))
}

func TestMarkerCodec(t *testing.T) {
	sr := lst.NewSearchResult(uuid.New(), "hit")
	enc, dec := NewEncoder(MarkerCodec{}), NewDecoder(MarkerCodec{})
	got := dec.Decode(enc.Encode(sr))
	assert.Equal(t, sr, got)

	list := DecodeList[lst.Marker](dec, EncodeList(enc, []lst.Marker{sr, sr}))
	assert.Len(t, list, 2)
	assert.Nil(t, EncodeList[lst.Marker](enc, nil))
}
