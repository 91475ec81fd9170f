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

import "github.com/google/uuid"

// Markers is an ordered, immutable set of Marker values.
//
// Description:
//
//	Markers carry information about a node that is not part of its
//	semantic shape, for example "this statement ended in a semicolon" or
//	"a search matched here". Markers has its own id so the remote protocol
//	can diff it like any other node.
//
// Thread Safety: Immutable; safe to share.
type Markers struct {
	id      uuid.UUID
	markers []Marker
}

// EmptyMarkers is the shared empty marker set.
var EmptyMarkers = &Markers{id: uuid.MustParse("5f3c7bde-8a0e-4c6c-9a76-0f7c0c0d1e5a")}

// NewMarkers creates a marker set. A nil id is replaced by a random one.
func NewMarkers(id uuid.UUID, markers ...Marker) *Markers {
	if id == uuid.Nil {
		id = uuid.New()
	}
	if len(markers) == 0 {
		markers = nil
	}
	return &Markers{id: id, markers: markers}
}

// BuildMarkers creates a marker set with a random id.
func BuildMarkers(markers ...Marker) *Markers {
	return NewMarkers(uuid.New(), markers...)
}

// ID returns the marker set's identity, or uuid.Nil for a nil set.
func (m *Markers) ID() uuid.UUID {
	if m == nil {
		return uuid.Nil
	}
	return m.id
}

// Markers returns the markers in insertion order. The slice must not be modified.
func (m *Markers) Markers() []Marker {
	if m == nil {
		return nil
	}
	return m.markers
}

// WithID returns m with a different id.
func (m *Markers) WithID(id uuid.UUID) *Markers {
	if m.id == id {
		return m
	}
	return &Markers{id: id, markers: m.markers}
}

// WithMarkers returns m with a different marker list.
func (m *Markers) WithMarkers(markers []Marker) *Markers {
	if SameSlice(m.markers, markers) {
		return m
	}
	if len(markers) == 0 {
		markers = nil
	}
	return &Markers{id: m.id, markers: markers}
}

// Add returns m with marker appended, or m itself if a marker with the
// same id is already present.
func (m *Markers) Add(marker Marker) *Markers {
	for _, existing := range m.markers {
		if existing.ID() == marker.ID() {
			return m
		}
	}
	next := make([]Marker, len(m.markers), len(m.markers)+1)
	copy(next, m.markers)
	return m.WithMarkers(append(next, marker))
}

// RemoveByID returns m without the marker with the given id.
func (m *Markers) RemoveByID(id uuid.UUID) *Markers {
	return m.WithMarkers(MapList(m.markers, func(mk Marker) Marker {
		if mk.ID() == id {
			return nil
		}
		return mk
	}))
}

// FindMarker returns the first marker of type T.
//
// Example:
//
//	if sr, ok := lst.FindMarker[*lst.SearchResult](node.Markers()); ok {
//	    fmt.Println(sr.Description())
//	}
func FindMarker[T Marker](m *Markers) (T, bool) {
	for _, mk := range m.Markers() {
		if t, ok := mk.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// SearchResult marks a node that matched a search.
type SearchResult struct {
	id          uuid.UUID
	description string
}

// NewSearchResult creates a search result marker.
func NewSearchResult(id uuid.UUID, description string) *SearchResult {
	return &SearchResult{id: id, description: description}
}

// ID returns the marker id.
func (s *SearchResult) ID() uuid.UUID { return s.id }

// Description returns the optional search description.
func (s *SearchResult) Description() string { return s.description }
