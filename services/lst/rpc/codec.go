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
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst"
)

// Doc is the encoded form of an object value. The "@c" key holds the
// object's type tag and "@ref" its session reference id, if shared.
type Doc = map[string]any

// Reserved Doc keys.
const (
	KeyClass = "@c"
	KeyRef   = "@ref"
)

// ObjectCodec encodes and decodes the object values of a dialect.
type ObjectCodec interface {
	// Tags lists the "@c" tags Decode accepts.
	Tags() []string
	// Encode encodes v. It reports false if v is not a type it handles.
	Encode(enc *Encoder, v any) (Doc, bool)
	// Decode builds a value from doc. Shared values must be registered
	// with dec.Register before their fields are decoded.
	Decode(dec *Decoder, tag string, doc Doc) (any, error)
}

// Encoder turns object values into Docs.
//
// Description:
//
//	Values encoded with EncodeShared get a reference id on first sight;
//	later occurrences encode as {"@ref": id} only. The table lives as
//	long as the Encoder, so a sender and its receiver must keep their
//	Encoder and Decoder paired for the whole session.
//
// Thread Safety:
//
//	Not safe for concurrent use.
type Encoder struct {
	codecs  []ObjectCodec
	refs    map[any]int64
	nextRef int64
}

// NewEncoder creates an encoder trying codecs in order.
func NewEncoder(codecs ...ObjectCodec) *Encoder {
	return &Encoder{codecs: codecs, refs: make(map[any]int64)}
}

// Encode encodes v, or returns nil for a nil v.
func (e *Encoder) Encode(v any) any {
	if lst.IsNil(v) {
		return nil
	}
	for _, c := range e.codecs {
		if doc, ok := c.Encode(e, v); ok {
			return doc
		}
	}
	NotImplemented("Encode", "no codec for %T", v)
	return nil
}

// EncodeShared encodes v once per session. fill adds v's fields to its
// first occurrence; v is registered before fill runs, so cycles through v
// encode as references.
func (e *Encoder) EncodeShared(v any, tag string, fill func(Doc)) Doc {
	if id, ok := e.refs[v]; ok {
		return Doc{KeyRef: id}
	}
	e.nextRef++
	id := e.nextRef
	e.refs[v] = id
	doc := Doc{KeyClass: tag, KeyRef: id}
	fill(doc)
	return doc
}

// Shared reports how many values have been assigned reference ids.
func (e *Encoder) Shared() int { return len(e.refs) }

// EncodeList encodes every element of list. An empty list encodes as nil.
func EncodeList[T any](e *Encoder, list []T) []any {
	if len(list) == 0 {
		return nil
	}
	out := make([]any, len(list))
	for i, v := range list {
		out[i] = e.Encode(v)
	}
	return out
}

// Decoder turns Docs back into object values.
//
// Thread Safety:
//
//	Not safe for concurrent use.
type Decoder struct {
	byTag map[string]ObjectCodec
	refs  map[int64]any
}

// NewDecoder creates a decoder for the tags of codecs.
func NewDecoder(codecs ...ObjectCodec) *Decoder {
	d := &Decoder{byTag: make(map[string]ObjectCodec), refs: make(map[int64]any)}
	for _, c := range codecs {
		for _, tag := range c.Tags() {
			d.byTag[tag] = c
		}
	}
	return d
}

// Decode decodes an encoded value, resolving references.
func (d *Decoder) Decode(v any) any {
	if v == nil {
		return nil
	}
	doc, ok := v.(Doc)
	if !ok {
		Desync("Decode", ErrDesync, "object encoded as %T", v)
	}
	tag, _ := doc[KeyClass].(string)
	if tag == "" {
		ref, ok := doc[KeyRef]
		if !ok {
			Desync("Decode", ErrDesync, "object without %s or %s", KeyClass, KeyRef)
		}
		id := DocInt64(ref)
		obj, ok := d.refs[id]
		if !ok {
			Desync("Decode", ErrUnknownReference, "%s %d", KeyRef, id)
		}
		return obj
	}
	codec, ok := d.byTag[tag]
	if !ok {
		Desync("Decode", ErrUnknownType, "%q", tag)
	}
	obj, err := codec.Decode(d, tag, doc)
	if err != nil {
		var pe *ProtocolError
		if errors.As(err, &pe) {
			panic(pe)
		}
		Desync("Decode", ErrDesync, "%s: %v", tag, err)
	}
	if _, shared := doc[KeyRef]; shared {
		d.Register(doc, obj)
	}
	return obj
}

// Register records v as the value of doc's reference id. Codecs call it
// with an empty shell before decoding fields that may refer back to v.
func (d *Decoder) Register(doc Doc, v any) {
	if ref, ok := doc[KeyRef]; ok {
		d.refs[DocInt64(ref)] = v
	}
}

// Shared reports how many reference ids have been registered.
func (d *Decoder) Shared() int { return len(d.refs) }

// DecodeAs decodes v and asserts its type. nil decodes as the zero value.
func DecodeAs[T any](d *Decoder, v any) T {
	var zero T
	obj := d.Decode(v)
	if obj == nil {
		return zero
	}
	typed, ok := obj.(T)
	if !ok {
		Desync("Decode", ErrDesync, "%T where %T is expected", obj, zero)
	}
	return typed
}

// DecodeList decodes a list written by EncodeList.
func DecodeList[T any](d *Decoder, v any) []T {
	items, _ := v.([]any)
	if len(items) == 0 {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = DecodeAs[T](d, item)
	}
	return out
}

// DocInt64 reads an integer from a Doc value in any of the forms it takes
// in memory or after a JSON round trip.
func DocInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		if n != math.Trunc(n) {
			Desync("Decode", ErrDesync, "non-integer %v", n)
		}
		return int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			Desync("Decode", ErrDesync, "bad integer %q", n.String())
		}
		return i
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			Desync("Decode", ErrDesync, "bad integer %q", n)
		}
		return i
	}
	Desync("Decode", ErrDesync, "%T is not an integer", v)
	return 0
}

// DocString reads a string field; a missing field reads as "".
func DocString(doc Doc, key string) string {
	s, _ := doc[key].(string)
	return s
}

// DocBool reads a boolean field; a missing field reads as false.
func DocBool(doc Doc, key string) bool {
	b, _ := doc[key].(bool)
	return b
}

// DocUUID reads a uuid field.
func DocUUID(doc Doc, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(DocString(doc, key))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", key, err)
	}
	return id, nil
}

// SearchResultTag is the type tag of lst.SearchResult.
const SearchResultTag = "org.openrewrite.marker.SearchResult"

// MarkerCodec encodes the dialect-neutral markers.
type MarkerCodec struct{}

func (MarkerCodec) Tags() []string { return []string{SearchResultTag} }

func (MarkerCodec) Encode(_ *Encoder, v any) (Doc, bool) {
	sr, ok := v.(*lst.SearchResult)
	if !ok {
		return nil, false
	}
	return Doc{KeyClass: SearchResultTag, "id": sr.ID().String(), "description": sr.Description()}, true
}

func (MarkerCodec) Decode(_ *Decoder, _ string, doc Doc) (any, error) {
	id, err := DocUUID(doc, "id")
	if err != nil {
		return nil, err
	}
	return lst.NewSearchResult(id, DocString(doc, "description")), nil
}
