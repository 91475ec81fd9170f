// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package parser

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
)

// bail aborts the conversion of the innermost guarded node, which then
// becomes an Unknown holding its source text.
type bail struct {
	node   *sitter.Node
	reason string
}

// builder walks a tree-sitter syntax tree in source order. pos is the
// first byte not yet attributed to a node, so the text between pos and
// the next token is the formatting of whatever comes next.
type builder struct {
	raw      []byte
	src      string
	pos      int
	unknowns int
}

func (b *builder) fail(n *sitter.Node, format string, args ...any) {
	panic(bail{node: n, reason: fmt.Sprintf(format, args...)})
}

// space attributes src[pos:to] as formatting. Anything but whitespace and
// comments there means a token was skipped by mistake.
func (b *builder) space(to int) *tree.Space {
	if to < b.pos {
		b.fail(nil, "cursor at %d is past %d", b.pos, to)
	}
	text := b.src[b.pos:to]
	if scanTrivia(text, 0) != len(text) {
		b.fail(nil, "unexpected source %q", text)
	}
	b.pos = to
	return tree.FormatSpace(text)
}

// prefix returns the formatting before n.
func (b *builder) prefix(n *sitter.Node) *tree.Space {
	return b.space(int(n.StartByte()))
}

// skip consumes tok after any formatting and returns that formatting.
func (b *builder) skip(tok string) *tree.Space {
	at := scanTrivia(b.src, b.pos)
	if !strings.HasPrefix(b.src[at:], tok) {
		b.fail(nil, "expected %q at offset %d", tok, at)
	}
	s := b.space(at)
	b.pos = at + len(tok)
	return s
}

// peek reports whether the next token is tok.
func (b *builder) peek(tok string) bool {
	at := scanTrivia(b.src, b.pos)
	return strings.HasPrefix(b.src[at:], tok)
}

func (b *builder) text(n *sitter.Node) string { return n.Content(b.raw) }

// consume moves the cursor past n and returns its source text.
func (b *builder) consume(n *sitter.Node) string {
	b.pos = int(n.EndByte())
	return b.text(n)
}

func (b *builder) unknown(n *sitter.Node) *tree.Unknown {
	prefix := b.prefix(n)
	text := b.consume(n)
	b.unknowns++
	return tree.NewUnknown(newID(), prefix, lst.EmptyMarkers,
		tree.NewUnknownSource(newID(), tree.EmptySpace, lst.EmptyMarkers, text))
}

// guard runs convert and falls back to an Unknown for n when the
// conversion bails. Other panics propagate.
func guard[T tree.J](b *builder, n *sitter.Node, convert func(*sitter.Node) T) (out T) {
	mark := b.pos
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(bail); !ok {
			panic(r)
		}
		b.pos = mark
		u, ok := tree.J(b.unknown(n)).(T)
		if !ok {
			panic(r)
		}
		out = u
	}()
	return convert(n)
}

// guardStatement is guard for converters that also report the formatting
// before a terminating semicolon.
func (b *builder) guardStatement(n *sitter.Node, convert func(*sitter.Node) (tree.Statement, *tree.Space)) (out tree.Statement, after *tree.Space) {
	mark := b.pos
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(bail); !ok {
			panic(r)
		}
		b.pos = mark
		out, after = b.unknown(n), tree.EmptySpace
	}()
	return convert(n)
}

func isComment(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment", "block_comment", "comment":
		return true
	}
	return false
}

// children returns the children of n without comments.
func children(n *sitter.Node) []*sitter.Node {
	count := int(n.ChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		c := n.Child(i)
		if c == nil || isComment(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// named returns the named children of n without comments.
func named(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for _, c := range children(n) {
		if c.IsNamed() {
			out = append(out, c)
		}
	}
	return out
}

func childOfType(n *sitter.Node, types ...string) *sitter.Node {
	for _, c := range children(n) {
		for _, t := range types {
			if c.Type() == t {
				return c
			}
		}
	}
	return nil
}

func childrenOfType(n *sitter.Node, typ string) []*sitter.Node {
	var out []*sitter.Node
	for _, c := range children(n) {
		if c.Type() == typ {
			out = append(out, c)
		}
	}
	return out
}

// padded converts nodes into a separated list closed by end. An empty
// list closed by end is a single element made by empty from the space
// before end, so that space is kept.
func padded[T any](b *builder, nodes []*sitter.Node, sep, end string, convert func(*sitter.Node) T, empty func(*tree.Space) T) []*tree.RightPadded[T] {
	if len(nodes) == 0 {
		if empty == nil || end == "" {
			return nil
		}
		return []*tree.RightPadded[T]{tree.NewRightPadded(empty(b.skip(end)), tree.EmptySpace, lst.EmptyMarkers)}
	}
	out := make([]*tree.RightPadded[T], 0, len(nodes))
	for i, n := range nodes {
		el := convert(n)
		after := tree.EmptySpace
		switch {
		case i < len(nodes)-1:
			after = b.skip(sep)
		case end != "":
			after = b.skip(end)
		}
		out = append(out, tree.NewRightPadded(el, after, lst.EmptyMarkers))
	}
	return out
}

// scanTrivia returns the index of the first byte at or after from that is
// not whitespace or part of a comment.
func scanTrivia(s string, from int) int {
	i := from
	for i < len(s) {
		switch {
		case s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f':
			i++
		case strings.HasPrefix(s[i:], "//"):
			nl := strings.IndexByte(s[i:], '\n')
			if nl < 0 {
				return len(s)
			}
			i += nl
		case strings.HasPrefix(s[i:], "/*"):
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return len(s)
			}
			i += 2 + end + 2
		default:
			return i
		}
	}
	return i
}

// peekWord is peek for keywords: the token must not continue as an
// identifier.
func (b *builder) peekWord(word string) bool {
	at := scanTrivia(b.src, b.pos)
	if !strings.HasPrefix(b.src[at:], word) {
		return false
	}
	end := at + len(word)
	return end == len(b.src) || !isIdentifierByte(b.src[end])
}

func isIdentifierByte(c byte) bool {
	return c == '_' || c == '$' || c >= 0x80 ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
