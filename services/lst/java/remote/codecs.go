// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package remote

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/java/types"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

// Object type tags.
const (
	TagTypeClass               = "org.openrewrite.java.tree.JavaType$Class"
	TagTypeParameterized       = "org.openrewrite.java.tree.JavaType$Parameterized"
	TagTypeGenericTypeVariable = "org.openrewrite.java.tree.JavaType$GenericTypeVariable"
	TagTypeArray               = "org.openrewrite.java.tree.JavaType$Array"
	TagTypeMethod              = "org.openrewrite.java.tree.JavaType$Method"
	TagTypeVariable            = "org.openrewrite.java.tree.JavaType$Variable"
	TagTypePrimitive           = "org.openrewrite.java.tree.JavaType$Primitive"
	TagTypeUnion               = "org.openrewrite.java.tree.JavaType$MultiCatch"
	TagTypeIntersection        = "org.openrewrite.java.tree.JavaType$Intersection"
	TagTypeUnknown             = "org.openrewrite.java.tree.JavaType$Unknown"

	TagSpace           = "org.openrewrite.java.tree.Space"
	TagTextComment     = "org.openrewrite.java.tree.TextComment"
	TagSemicolon       = "org.openrewrite.java.marker.Semicolon"
	TagTrailingComma   = "org.openrewrite.java.marker.TrailingComma"
	TagOmitParentheses = "org.openrewrite.java.marker.OmitParentheses"
	TagChecksum        = "org.openrewrite.Checksum"
	TagFileAttributes  = "org.openrewrite.FileAttributes"
	TagUnicodeEscape   = "org.openrewrite.java.tree.J$Literal$UnicodeEscape"
)

// TypeCodec encodes the type attribution graph. Every type is shared by
// reference within a session, so a class referenced from many nodes is
// sent once, and cycles such as a class whose members refer back to it
// terminate.
type TypeCodec struct{}

var _ rpc.ObjectCodec = TypeCodec{}

func (TypeCodec) Tags() []string {
	return []string{
		TagTypeClass, TagTypeParameterized, TagTypeGenericTypeVariable, TagTypeArray, TagTypeMethod,
		TagTypeVariable, TagTypePrimitive, TagTypeUnion, TagTypeIntersection, TagTypeUnknown,
	}
}

func (TypeCodec) Encode(enc *rpc.Encoder, v any) (rpc.Doc, bool) {
	switch t := v.(type) {
	case *types.Class:
		return enc.EncodeShared(t, TagTypeClass, func(d rpc.Doc) {
			d["flags"] = t.FlagsBitMap()
			d["fullyQualifiedName"] = t.FullyQualifiedName()
			d["kind"] = string(t.Kind())
			d["typeParameters"] = rpc.EncodeList(enc, t.TypeParameters())
			d["supertype"] = enc.Encode(t.Supertype())
			d["owningClass"] = enc.Encode(t.OwningClass())
			d["annotations"] = rpc.EncodeList(enc, t.Annotations())
			d["interfaces"] = rpc.EncodeList(enc, t.Interfaces())
			d["members"] = rpc.EncodeList(enc, t.Members())
			d["methods"] = rpc.EncodeList(enc, t.Methods())
		}), true
	case *types.Parameterized:
		return enc.EncodeShared(t, TagTypeParameterized, func(d rpc.Doc) {
			d["type"] = enc.Encode(t.Type())
			d["typeParameters"] = rpc.EncodeList(enc, t.TypeParameters())
		}), true
	case *types.GenericTypeVariable:
		return enc.EncodeShared(t, TagTypeGenericTypeVariable, func(d rpc.Doc) {
			d["name"] = t.Name()
			d["variance"] = string(t.Variance())
			d["bounds"] = rpc.EncodeList(enc, t.Bounds())
		}), true
	case *types.Array:
		return enc.EncodeShared(t, TagTypeArray, func(d rpc.Doc) {
			d["elemType"] = enc.Encode(t.ElemType())
			d["annotations"] = rpc.EncodeList(enc, t.Annotations())
		}), true
	case *types.Method:
		return enc.EncodeShared(t, TagTypeMethod, func(d rpc.Doc) {
			d["flags"] = t.FlagsBitMap()
			d["name"] = t.Name()
			d["declaringType"] = enc.Encode(t.DeclaringType())
			d["returnType"] = enc.Encode(t.ReturnType())
			d["parameterNames"] = stringList(t.ParameterNames())
			d["parameterTypes"] = rpc.EncodeList(enc, t.ParameterTypes())
			d["thrownExceptions"] = rpc.EncodeList(enc, t.ThrownExceptions())
			d["annotations"] = rpc.EncodeList(enc, t.Annotations())
			d["defaultValue"] = stringList(t.DefaultValue())
		}), true
	case *types.Variable:
		return enc.EncodeShared(t, TagTypeVariable, func(d rpc.Doc) {
			d["flags"] = t.FlagsBitMap()
			d["name"] = t.Name()
			d["owner"] = enc.Encode(t.Owner())
			d["type"] = enc.Encode(t.Type())
			d["annotations"] = rpc.EncodeList(enc, t.Annotations())
		}), true
	case *types.Primitive:
		return enc.EncodeShared(t, TagTypePrimitive, func(d rpc.Doc) {
			d["name"] = t.Name()
		}), true
	case *types.Union:
		return enc.EncodeShared(t, TagTypeUnion, func(d rpc.Doc) {
			d["bounds"] = rpc.EncodeList(enc, t.Bounds())
		}), true
	case *types.Intersection:
		return enc.EncodeShared(t, TagTypeIntersection, func(d rpc.Doc) {
			d["bounds"] = rpc.EncodeList(enc, t.Bounds())
		}), true
	case *types.UnknownType:
		return enc.EncodeShared(t, TagTypeUnknown, func(rpc.Doc) {}), true
	}
	return nil, false
}

// Decode registers an empty shell for doc before decoding any field, so a
// field that refers back to the type being decoded resolves to the shell.
func (TypeCodec) Decode(dec *rpc.Decoder, tag string, doc rpc.Doc) (any, error) {
	switch tag {
	case TagTypeClass:
		c := types.NewClass(0, "", "")
		dec.Register(doc, c)
		c.UnsafeSetHeader(rpc.DocInt64(doc["flags"]), rpc.DocString(doc, "fullyQualifiedName"),
			types.FullyQualifiedKind(rpc.DocString(doc, "kind")))
		return c.UnsafeSet(
			rpc.DecodeList[types.JavaType](dec, doc["typeParameters"]),
			rpc.DecodeAs[types.FullyQualified](dec, doc["supertype"]),
			rpc.DecodeAs[types.FullyQualified](dec, doc["owningClass"]),
			rpc.DecodeList[types.FullyQualified](dec, doc["annotations"]),
			rpc.DecodeList[types.FullyQualified](dec, doc["interfaces"]),
			rpc.DecodeList[*types.Variable](dec, doc["members"]),
			rpc.DecodeList[*types.Method](dec, doc["methods"]),
		), nil
	case TagTypeParameterized:
		p := types.NewParameterized(nil, nil)
		dec.Register(doc, p)
		return p.UnsafeSet(
			rpc.DecodeAs[types.FullyQualified](dec, doc["type"]),
			rpc.DecodeList[types.JavaType](dec, doc["typeParameters"]),
		), nil
	case TagTypeGenericTypeVariable:
		g := types.NewGenericTypeVariable("", types.Invariant, nil)
		dec.Register(doc, g)
		return g.UnsafeSet(
			rpc.DocString(doc, "name"),
			types.Variance(rpc.DocString(doc, "variance")),
			rpc.DecodeList[types.JavaType](dec, doc["bounds"]),
		), nil
	case TagTypeArray:
		a := types.NewArray(nil, nil)
		dec.Register(doc, a)
		return a.UnsafeSet(
			rpc.DecodeAs[types.JavaType](dec, doc["elemType"]),
			rpc.DecodeList[types.FullyQualified](dec, doc["annotations"]),
		), nil
	case TagTypeMethod:
		m := types.NewMethod(0, "")
		dec.Register(doc, m)
		m.UnsafeSetHeader(rpc.DocInt64(doc["flags"]), rpc.DocString(doc, "name"))
		return m.UnsafeSet(
			rpc.DecodeAs[types.FullyQualified](dec, doc["declaringType"]),
			rpc.DecodeAs[types.JavaType](dec, doc["returnType"]),
			docStrings(doc["parameterNames"]),
			rpc.DecodeList[types.JavaType](dec, doc["parameterTypes"]),
			rpc.DecodeList[types.JavaType](dec, doc["thrownExceptions"]),
			rpc.DecodeList[types.FullyQualified](dec, doc["annotations"]),
			docStrings(doc["defaultValue"]),
		), nil
	case TagTypeVariable:
		v := types.NewVariable(0, "")
		dec.Register(doc, v)
		v.UnsafeSetHeader(rpc.DocInt64(doc["flags"]), rpc.DocString(doc, "name"))
		return v.UnsafeSet(
			rpc.DecodeAs[types.JavaType](dec, doc["owner"]),
			rpc.DecodeAs[types.JavaType](dec, doc["type"]),
			rpc.DecodeList[types.FullyQualified](dec, doc["annotations"]),
		), nil
	case TagTypePrimitive:
		p, ok := types.PrimitiveByName(rpc.DocString(doc, "name"))
		if !ok {
			return nil, fmt.Errorf("unknown primitive %q", rpc.DocString(doc, "name"))
		}
		return p, nil
	case TagTypeUnion:
		u := types.NewUnion(nil)
		dec.Register(doc, u)
		return u.UnsafeSet(rpc.DecodeList[types.JavaType](dec, doc["bounds"])), nil
	case TagTypeIntersection:
		i := types.NewIntersection(nil)
		dec.Register(doc, i)
		return i.UnsafeSet(rpc.DecodeList[types.JavaType](dec, doc["bounds"])), nil
	case TagTypeUnknown:
		return types.Unknown, nil
	}
	return nil, fmt.Errorf("%w: %s", rpc.ErrUnknownType, tag)
}

func stringList(list []string) []any {
	if len(list) == 0 {
		return nil
	}
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = s
	}
	return out
}

func docStrings(v any) []string {
	items, _ := v.([]any)
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			rpc.Desync("Decode", rpc.ErrDesync, "%T in a string list", item)
		}
		out[i] = s
	}
	return out
}

// TreeCodec encodes the non-type objects of the Java model: formatting
// carried as a padding payload, Java markers, and source file metadata.
type TreeCodec struct{}

var _ rpc.ObjectCodec = TreeCodec{}

func (TreeCodec) Tags() []string {
	return []string{
		TagSpace, TagTextComment, TagSemicolon, TagTrailingComma, TagOmitParentheses,
		TagChecksum, TagFileAttributes, TagUnicodeEscape,
	}
}

func (TreeCodec) Encode(enc *rpc.Encoder, v any) (rpc.Doc, bool) {
	switch o := v.(type) {
	case *tree.Space:
		return rpc.Doc{
			rpc.KeyClass: TagSpace,
			"whitespace": o.Whitespace(),
			"comments":   rpc.EncodeList(enc, o.Comments()),
		}, true
	case *tree.TextComment:
		return rpc.Doc{
			rpc.KeyClass: TagTextComment,
			"multiline":  o.Multiline(),
			"text":       o.Text(),
			"suffix":     o.Suffix(),
			"markers":    encodeMarkers(enc, o.Markers()),
		}, true
	case *tree.Semicolon:
		return rpc.Doc{rpc.KeyClass: TagSemicolon, "id": o.ID().String()}, true
	case *tree.TrailingComma:
		return rpc.Doc{rpc.KeyClass: TagTrailingComma, "id": o.ID().String(), "suffix": enc.Encode(o.Suffix())}, true
	case *tree.OmitParentheses:
		return rpc.Doc{rpc.KeyClass: TagOmitParentheses, "id": o.ID().String()}, true
	case *tree.Checksum:
		return rpc.Doc{
			rpc.KeyClass: TagChecksum,
			"algorithm":  o.Algorithm(),
			"value":      hex.EncodeToString(o.Value()),
		}, true
	case *tree.FileAttributes:
		return rpc.Doc{
			rpc.KeyClass:       TagFileAttributes,
			"creationTime":     unixMilli(o.CreationTime()),
			"lastModifiedTime": unixMilli(o.LastModifiedTime()),
			"lastAccessTime":   unixMilli(o.LastAccessTime()),
			"readable":         o.Readable(),
			"writable":         o.Writable(),
			"executable":       o.Executable(),
			"size":             o.Size(),
		}, true
	case *tree.UnicodeEscape:
		return rpc.Doc{
			rpc.KeyClass:       TagUnicodeEscape,
			"valueSourceIndex": int64(o.ValueSourceIndex()),
			"codePoint":        o.CodePoint(),
		}, true
	}
	return nil, false
}

func (TreeCodec) Decode(dec *rpc.Decoder, tag string, doc rpc.Doc) (any, error) {
	switch tag {
	case TagSpace:
		comments := rpc.DecodeList[tree.Comment](dec, doc["comments"])
		whitespace := rpc.DocString(doc, "whitespace")
		if whitespace == "" && len(comments) == 0 {
			return tree.EmptySpace, nil
		}
		return tree.BuildSpace(whitespace, comments), nil
	case TagTextComment:
		markers, err := decodeMarkers(dec, doc["markers"])
		if err != nil {
			return nil, err
		}
		return tree.NewTextComment(rpc.DocBool(doc, "multiline"), rpc.DocString(doc, "text"),
			rpc.DocString(doc, "suffix"), markers), nil
	case TagSemicolon, TagTrailingComma, TagOmitParentheses:
		id, err := rpc.DocUUID(doc, "id")
		if err != nil {
			return nil, err
		}
		switch tag {
		case TagSemicolon:
			return tree.NewSemicolon(id), nil
		case TagTrailingComma:
			return tree.NewTrailingComma(id, rpc.DecodeAs[*tree.Space](dec, doc["suffix"])), nil
		}
		return tree.NewOmitParentheses(id), nil
	case TagChecksum:
		value, err := hex.DecodeString(rpc.DocString(doc, "value"))
		if err != nil {
			return nil, fmt.Errorf("checksum value: %w", err)
		}
		return tree.NewChecksum(rpc.DocString(doc, "algorithm"), value), nil
	case TagFileAttributes:
		return tree.NewFileAttributes(
			fromUnixMilli(rpc.DocInt64(doc["creationTime"])),
			fromUnixMilli(rpc.DocInt64(doc["lastModifiedTime"])),
			fromUnixMilli(rpc.DocInt64(doc["lastAccessTime"])),
			rpc.DocBool(doc, "readable"),
			rpc.DocBool(doc, "writable"),
			rpc.DocBool(doc, "executable"),
			rpc.DocInt64(doc["size"]),
		), nil
	case TagUnicodeEscape:
		return tree.NewUnicodeEscape(int32(rpc.DocInt64(doc["valueSourceIndex"])), rpc.DocString(doc, "codePoint")), nil
	}
	return nil, fmt.Errorf("%w: %s", rpc.ErrUnknownType, tag)
}

// encodeMarkers writes a marker set inline. Markers are not shared.
func encodeMarkers(enc *rpc.Encoder, m *lst.Markers) any {
	if m == nil {
		return nil
	}
	return rpc.Doc{"id": m.ID().String(), "markers": rpc.EncodeList(enc, m.Markers())}
}

func decodeMarkers(dec *rpc.Decoder, v any) (*lst.Markers, error) {
	doc, ok := v.(rpc.Doc)
	if !ok {
		return nil, nil
	}
	id, err := rpc.DocUUID(doc, "id")
	if err != nil {
		return nil, err
	}
	markers := rpc.DecodeList[lst.Marker](dec, doc["markers"])
	if id == lst.EmptyMarkers.ID() && len(markers) == 0 {
		return lst.EmptyMarkers, nil
	}
	return lst.NewMarkers(id, markers...), nil
}

// Zero times travel as 0 so an unset attribute stays unset.
func unixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromUnixMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
