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
	"reflect"
	"sort"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

// DialectName names the Java dialect in logs and metrics.
const DialectName = "java"

// Dialect returns the Java dialect for rpc sessions.
func Dialect() *rpc.Dialect {
	return &rpc.Dialect{
		Name:        DialectName,
		TagOf:       TagOf,
		NewSender:   func() rpc.TreeSender { return NewSender() },
		NewReceiver: func() rpc.TreeReceiver { return NewReceiver(NewFactory()) },
		Codecs:      []rpc.ObjectCodec{TypeCodec{}, TreeCodec{}},
	}
}

// NewSession creates an rpc session for Java trees.
//
// Example:
//
//	sender, receiver := remote.NewSession(), remote.NewSession()
//	buf := rpc.NewBuffer()
//	if err := sender.Send(ctx, buf, cu, nil); err != nil {
//	    return err
//	}
//	got, err := receiver.Receive(ctx, buf, nil)
func NewSession(opts ...rpc.Option) *rpc.Session {
	return rpc.NewSession(Dialect(), opts...)
}

// TagOf returns the wire type tag of a Java tree.
func TagOf(t lst.Tree) (string, bool) {
	tag, ok := kindTags[reflect.TypeOf(t)]
	return tag, ok
}

// KindTag pairs a Go node type with its wire type tag.
type KindTag struct {
	Kind string
	Tag  string
}

// Kinds lists every node kind with its tag, sorted by kind.
func Kinds() []KindTag {
	out := make([]KindTag, 0, len(kindTags))
	for t, tag := range kindTags {
		out = append(out, KindTag{Kind: t.Elem().Name(), Tag: tag})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}
