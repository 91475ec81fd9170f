// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package journal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

// Replay receives every transmission recorded in stream.
//
// Description:
//
//	Reads the stream from its first batch and feeds each transmission to
//	sess, passing the previously received version of the same tree as
//	before. sess must be fresh (or a Fork of one) and of the dialect the
//	stream was sent with, since the stream's shared-object references
//	start from an empty table.
//
// Inputs:
//
//	ctx - Context for reading and receiving.
//	store - The journal to read.
//	stream - Stream name.
//	sess - Receiving session.
//	fn - Optional callback for every received version, in stream order.
//	     Returning an error stops the replay with that error.
//
// Outputs:
//
//	[]lst.Tree - The latest version of every tree, ordered by first
//	             appearance in the stream.
//	error - A storage error, an rpc error from Receive, or fn's error.
func Replay(ctx context.Context, store *Store, stream string, sess *rpc.Session, fn func(lst.Tree) error) ([]lst.Tree, error) {
	r := store.Reader(stream)
	m := rpc.NewMirror(sess)
	versions := 0

	for {
		at := r.Position()
		t, err := m.Receive(ctx, r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("replay %s at batch %d: %w", stream, at, err)
		}
		versions++

		if fn != nil {
			if err := fn(t); err != nil {
				return nil, err
			}
		}
	}

	out := m.Trees()
	store.logger.Debug("journal replayed",
		slog.String("stream", stream),
		slog.Int("versions", versions),
		slog.Int("trees", len(out)))
	return out, nil
}
