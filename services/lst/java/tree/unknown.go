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
	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/java/types"
)

// Escape hatches for source the front end did not model.

// Unknown holds source text the front end did not model.
type Unknown struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	source  *UnknownSource
}

// NewUnknown creates an Unknown.
func NewUnknown(id uuid.UUID, prefix *Space, markers *lst.Markers, source *UnknownSource) *Unknown {
	return &Unknown{
		id:      id,
		prefix:  prefix,
		markers: markers,
		source:  source,
	}
}

func (u *Unknown) ID() uuid.UUID { return u.id }

func (u *Unknown) WithID(id uuid.UUID) *Unknown {
	if u.id == id {
		return u
	}
	n := *u
	n.id = id
	return &n
}

func (u *Unknown) Prefix() *Space { return u.prefix }

func (u *Unknown) WithPrefix(prefix *Space) *Unknown {
	if u.prefix == prefix {
		return u
	}
	n := *u
	n.prefix = prefix
	return &n
}

func (u *Unknown) Markers() *lst.Markers { return u.markers }

func (u *Unknown) WithMarkers(markers *lst.Markers) *Unknown {
	if u.markers == markers {
		return u
	}
	n := *u
	n.markers = markers
	return &n
}

func (u *Unknown) Source() *UnknownSource { return u.source }

func (u *Unknown) WithSource(source *UnknownSource) *Unknown {
	if u.source == source {
		return u
	}
	n := *u
	n.source = source
	return &n
}

func (*Unknown) Type() types.JavaType { return nil }

func (*Unknown) isExpression() {}
func (*Unknown) isStatement() {}
func (*Unknown) isNameTree() {}
func (*Unknown) isTypeTree() {}

// UnknownSource is the verbatim text of an Unknown.
type UnknownSource struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	text    string
}

// NewUnknownSource creates an UnknownSource.
func NewUnknownSource(id uuid.UUID, prefix *Space, markers *lst.Markers, text string) *UnknownSource {
	return &UnknownSource{
		id:      id,
		prefix:  prefix,
		markers: markers,
		text:    text,
	}
}

func (us *UnknownSource) ID() uuid.UUID { return us.id }

func (us *UnknownSource) WithID(id uuid.UUID) *UnknownSource {
	if us.id == id {
		return us
	}
	n := *us
	n.id = id
	return &n
}

func (us *UnknownSource) Prefix() *Space { return us.prefix }

func (us *UnknownSource) WithPrefix(prefix *Space) *UnknownSource {
	if us.prefix == prefix {
		return us
	}
	n := *us
	n.prefix = prefix
	return &n
}

func (us *UnknownSource) Markers() *lst.Markers { return us.markers }

func (us *UnknownSource) WithMarkers(markers *lst.Markers) *UnknownSource {
	if us.markers == markers {
		return us
	}
	n := *us
	n.markers = markers
	return &n
}

func (us *UnknownSource) Text() string { return us.text }

func (us *UnknownSource) WithText(text string) *UnknownSource {
	if us.text == text {
		return us
	}
	n := *us
	n.text = text
	return &n
}

// Erroneous holds source text that failed to parse.
type Erroneous struct {
	id      uuid.UUID
	prefix  *Space
	markers *lst.Markers
	text    string
}

// NewErroneous creates an Erroneous.
func NewErroneous(id uuid.UUID, prefix *Space, markers *lst.Markers, text string) *Erroneous {
	return &Erroneous{
		id:      id,
		prefix:  prefix,
		markers: markers,
		text:    text,
	}
}

func (e *Erroneous) ID() uuid.UUID { return e.id }

func (e *Erroneous) WithID(id uuid.UUID) *Erroneous {
	if e.id == id {
		return e
	}
	n := *e
	n.id = id
	return &n
}

func (e *Erroneous) Prefix() *Space { return e.prefix }

func (e *Erroneous) WithPrefix(prefix *Space) *Erroneous {
	if e.prefix == prefix {
		return e
	}
	n := *e
	n.prefix = prefix
	return &n
}

func (e *Erroneous) Markers() *lst.Markers { return e.markers }

func (e *Erroneous) WithMarkers(markers *lst.Markers) *Erroneous {
	if e.markers == markers {
		return e
	}
	n := *e
	n.markers = markers
	return &n
}

func (e *Erroneous) Text() string { return e.text }

func (e *Erroneous) WithText(text string) *Erroneous {
	if e.text == text {
		return e
	}
	n := *e
	n.text = text
	return &n
}

func (*Erroneous) Type() types.JavaType { return nil }

func (*Erroneous) isExpression() {}
func (*Erroneous) isStatement() {}
