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

import "github.com/google/uuid"

// Semicolon marks a statement or member terminated by an optional
// semicolon, such as the last enum constant.
type Semicolon struct{ id uuid.UUID }

func NewSemicolon(id uuid.UUID) *Semicolon { return &Semicolon{id: id} }
func (m *Semicolon) ID() uuid.UUID         { return m.id }

// TrailingComma marks a list whose last element is followed by a comma.
// Suffix is the formatting after that comma.
type TrailingComma struct {
	id     uuid.UUID
	suffix *Space
}

func NewTrailingComma(id uuid.UUID, suffix *Space) *TrailingComma {
	return &TrailingComma{id: id, suffix: suffix}
}

func (m *TrailingComma) ID() uuid.UUID  { return m.id }
func (m *TrailingComma) Suffix() *Space { return m.suffix }

func (m *TrailingComma) WithSuffix(suffix *Space) *TrailingComma {
	if m.suffix == suffix {
		return m
	}
	return &TrailingComma{id: m.id, suffix: suffix}
}

// OmitParentheses marks a construct written without the parentheses its
// node kind normally implies.
type OmitParentheses struct{ id uuid.UUID }

func NewOmitParentheses(id uuid.UUID) *OmitParentheses { return &OmitParentheses{id: id} }
func (m *OmitParentheses) ID() uuid.UUID               { return m.id }
