// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package lst holds the language-neutral pieces of a Lossless Semantic Tree.
//
// A lossless semantic tree keeps enough formatting (whitespace, comments)
// to reproduce the original source text exactly. Every node is immutable
// and carries a stable identity plus a set of out-of-band Markers.
//
// This package provides:
//
//   - Tree: the identity/markers capability shared by every dialect.
//   - Markers and Marker: ordered, immutable annotations attached to nodes.
//   - Cursor: an immutable parent-linked traversal stack.
//   - MapList, SameSlice, Same, IsNil: identity-preserving list helpers
//     used by visitors and by the remote sync protocol.
//
// Dialect packages (services/lst/java/...) build their node models on top
// of these types; the rpc package synchronizes trees of any dialect.
package lst
