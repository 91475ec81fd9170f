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

// Tree is the capability every LST node has.
//
// Description:
//
//	ID is stable across edits that keep the same logical node. A new ID
//	means "conceptually a different node" to the diff and dedup layers.
//
// Thread Safety: Implementations are immutable and safe to share.
type Tree interface {
	ID() uuid.UUID
	Markers() *Markers
}

// Marker is an out-of-band annotation attached to a tree through Markers.
type Marker interface {
	ID() uuid.UUID
}
