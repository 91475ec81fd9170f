// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tree

import (
	"strings"

	"github.com/AleutianAI/lstsync/services/lst"
)

// Space is the formatting between two tokens: leading whitespace followed
// by zero or more comments, each carrying the whitespace after it.
//
// Description:
//
//	Space is not a node. It has no id and is compared by identity like
//	every other value in the model. The zero-formatting value is the
//	EmptySpace singleton.
//
// Thread Safety:
//
//	Immutable; safe for concurrent use.
type Space struct {
	whitespace string
	comments   []Comment
}

// EmptySpace is the shared Space with no whitespace and no comments.
var EmptySpace = &Space{}

// SingleSpace is the shared Space holding one blank.
var SingleSpace = &Space{whitespace: " "}

// BuildSpace returns a Space, reusing the shared singletons for the
// common values.
func BuildSpace(whitespace string, comments []Comment) *Space {
	if len(comments) == 0 {
		switch whitespace {
		case "":
			return EmptySpace
		case " ":
			return SingleSpace
		}
	}
	return &Space{whitespace: whitespace, comments: nilIfEmpty(comments)}
}

// FormatSpace splits raw source formatting into whitespace and comments.
//
// Description:
//
//	Text before the first comment becomes the whitespace. Each "//" comment
//	runs to the end of its line and each "/* */" comment to its terminator;
//	the text between a comment and the next one becomes that comment's
//	suffix. An unterminated block comment takes the rest of the input.
//
// Inputs:
//
//	formatting - Source text containing only whitespace and comments.
//
// Outputs:
//
//	*Space - The parsed formatting. Never nil.
//
// Example:
//
//	s := FormatSpace("  // note\n\t")
//	// s.Whitespace() == "  ", s.Comments()[0].Suffix() == "\n\t"
func FormatSpace(formatting string) *Space {
	if formatting == "" {
		return EmptySpace
	}
	first := indexComment(formatting, 0)
	if first < 0 {
		return BuildSpace(formatting, nil)
	}

	var comments []Comment
	pos := first
	for pos < len(formatting) {
		var text string
		var multiline bool
		var end int
		if strings.HasPrefix(formatting[pos:], "//") {
			nl := strings.IndexByte(formatting[pos:], '\n')
			if nl < 0 {
				end = len(formatting)
			} else {
				end = pos + nl
			}
			text = formatting[pos+2 : end]
		} else {
			multiline = true
			term := strings.Index(formatting[pos+2:], "*/")
			if term < 0 {
				end = len(formatting)
				text = formatting[pos+2:]
			} else {
				end = pos + 2 + term + 2
				text = formatting[pos+2 : end-2]
			}
		}
		next := indexComment(formatting, end)
		suffixEnd := next
		if next < 0 {
			suffixEnd = len(formatting)
		}
		comments = append(comments, NewTextComment(multiline, text, formatting[end:suffixEnd], lst.EmptyMarkers))
		if next < 0 {
			break
		}
		pos = next
	}
	return BuildSpace(formatting[:first], comments)
}

func indexComment(s string, from int) int {
	for i := from; i+1 < len(s); i++ {
		if s[i] == '/' && (s[i+1] == '/' || s[i+1] == '*') {
			return i
		}
	}
	return -1
}

func (s *Space) Whitespace() string {
	if s == nil {
		return ""
	}
	return s.whitespace
}

// Comments returns the space's own slice; copy it before modifying.
func (s *Space) Comments() []Comment {
	if s == nil {
		return nil
	}
	return s.comments
}

// IsEmpty reports whether the space carries no formatting at all.
func (s *Space) IsEmpty() bool {
	return s == nil || (s.whitespace == "" && len(s.comments) == 0)
}

func (s *Space) WithWhitespace(whitespace string) *Space {
	if s.Whitespace() == whitespace {
		return s
	}
	return BuildSpace(whitespace, s.Comments())
}

func (s *Space) WithComments(comments []Comment) *Space {
	if lst.SameSlice(s.Comments(), comments) {
		return s
	}
	return BuildSpace(s.Whitespace(), comments)
}

// String renders the formatting back to source text.
func (s *Space) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(s.whitespace)
	for _, c := range s.comments {
		if tc, ok := c.(*TextComment); ok {
			b.WriteString(tc.Source())
		}
		b.WriteString(c.Suffix())
	}
	return b.String()
}

// Comment is a comment inside a Space.
type Comment interface {
	Multiline() bool
	Suffix() string
	Markers() *lst.Markers
	isComment()
}

// TextComment is a // or /* */ comment.
type TextComment struct {
	multiline bool
	text      string
	suffix    string
	markers   *lst.Markers
}

// NewTextComment creates a TextComment. Text excludes the delimiters.
func NewTextComment(multiline bool, text, suffix string, markers *lst.Markers) *TextComment {
	return &TextComment{multiline: multiline, text: text, suffix: suffix, markers: markers}
}

func (c *TextComment) Multiline() bool       { return c.multiline }
func (c *TextComment) Text() string          { return c.text }
func (c *TextComment) Suffix() string        { return c.suffix }
func (c *TextComment) Markers() *lst.Markers { return c.markers }
func (*TextComment) isComment()              {}

func (c *TextComment) WithMultiline(multiline bool) *TextComment {
	if c.multiline == multiline {
		return c
	}
	n := *c
	n.multiline = multiline
	return &n
}

func (c *TextComment) WithText(text string) *TextComment {
	if c.text == text {
		return c
	}
	n := *c
	n.text = text
	return &n
}

func (c *TextComment) WithSuffix(suffix string) *TextComment {
	if c.suffix == suffix {
		return c
	}
	n := *c
	n.suffix = suffix
	return &n
}

func (c *TextComment) WithMarkers(markers *lst.Markers) *TextComment {
	if c.markers == markers {
		return c
	}
	n := *c
	n.markers = markers
	return &n
}

// Source is the comment including its delimiters.
func (c *TextComment) Source() string {
	if c.multiline {
		return "/*" + c.text + "*/"
	}
	return "//" + c.text
}
