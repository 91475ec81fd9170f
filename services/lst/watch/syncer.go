// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package watch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/AleutianAI/lstsync/services/lst/java/parser"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

// SyncerOptions configures a Syncer.
type SyncerOptions struct {
	// Extensions selects the files synced. Empty syncs every file handed
	// to the syncer.
	Extensions []string

	// Ignore names directories SyncDir skips.
	Ignore []string

	// Limiter bounds the rate of transmissions. Nil is unlimited.
	Limiter *rate.Limiter

	// Workers bounds concurrent parsing in SyncDir. Zero is unbounded.
	Workers int

	Logger *slog.Logger
}

// Syncer sends compilation units through one sender session and
// remembers the version last sent for each path, so the next change to
// a file is sent as a diff against it.
//
// Description:
//
//	A re-parsed file gets fresh node ids. The syncer keeps the root id
//	of the first version so the receiver applies every later version to
//	the same tree. Files whose checksum did not change are not sent.
//
//	A failed send leaves the session out of step with its peer, so Sync
//	errors other than parse failures are fatal to the syncer.
//
// Thread Safety:
//
//	Safe for concurrent use. Transmissions are serialized.
type Syncer struct {
	parser  *parser.Parser
	sess    *rpc.Session
	out     rpc.BatchWriter
	limiter *rate.Limiter
	opts    SyncerOptions
	logger  *slog.Logger

	mu   sync.Mutex
	sent map[string]*tree.CompilationUnit
}

// NewSyncer creates a syncer that writes to out through sess.
func NewSyncer(p *parser.Parser, sess *rpc.Session, out rpc.BatchWriter, opts SyncerOptions) *Syncer {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	limiter := opts.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Syncer{
		parser:  p,
		sess:    sess,
		out:     out,
		limiter: limiter,
		opts:    opts,
		logger:  opts.Logger,
		sent:    make(map[string]*tree.CompilationUnit),
	}
}

// Tracked returns the number of files the receiver currently holds.
func (s *Syncer) Tracked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

// Sync parses path and sends it if it changed since the last send.
//
// Outputs:
//
//	bool - Whether a transmission was written.
//	error - A parse error (the file is skipped and the session stays
//	        usable) or a transmission error.
func (s *Syncer) Sync(ctx context.Context, path string) (bool, error) {
	result, err := s.parser.ParseFile(ctx, path)
	if err != nil {
		return false, err
	}
	return s.send(ctx, path, result.CompilationUnit)
}

func (s *Syncer) send(ctx context.Context, path string, cu *tree.CompilationUnit) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.sent[path]
	if before != nil {
		if sameChecksum(before.Checksum(), cu.Checksum()) {
			return false, nil
		}
		cu = cu.WithID(before.ID())
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return false, err
	}

	var err error
	if before == nil {
		err = s.sess.Send(ctx, s.out, cu, nil)
	} else {
		err = s.sess.Send(ctx, s.out, cu, before)
	}
	if err != nil {
		return false, fmt.Errorf("send %s: %w", path, err)
	}
	s.sent[path] = cu
	s.logger.Debug("file synced",
		slog.String("path", path),
		slog.String("tree_id", cu.ID().String()),
		slog.Bool("update", before != nil))
	return true, nil
}

func sameChecksum(a, b *tree.Checksum) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Algorithm() == b.Algorithm() && bytes.Equal(a.Value(), b.Value())
}

// Forget drops the remembered version of path. The next Sync of path
// sends it as a new tree.
func (s *Syncer) Forget(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sent[path]
	delete(s.sent, path)
	return ok
}

// HandleChanges applies one debounced set of changes.
//
// Description:
//
//	Removed or renamed files are forgotten. Created or written files are
//	synced. Files that fail to parse are logged and skipped.
//
// Outputs:
//
//	error - The first transmission error. Later changes are not applied.
func (s *Syncer) HandleChanges(ctx context.Context, changes []Change) error {
	for _, c := range changes {
		if !MatchExtension(c.Path, s.opts.Extensions) {
			continue
		}
		switch c.Op {
		case OpRemove, OpRename:
			if s.Forget(c.Path) {
				s.logger.Info("file removed", slog.String("path", c.Path))
			}
			continue
		}
		sent, err := s.Sync(ctx, c.Path)
		if err != nil {
			if isParseFailure(err) {
				s.logger.Warn("skipping file",
					slog.String("path", c.Path), slog.String("error", err.Error()))
				continue
			}
			return err
		}
		if sent {
			s.logger.Info("file changed", slog.String("path", c.Path), slog.String("op", c.Op.String()))
		}
	}
	return nil
}

// isParseFailure reports whether err came from reading or parsing a
// file rather than from the transmission.
func isParseFailure(err error) bool {
	var pe *parser.ParseError
	return errors.As(err, &pe) ||
		errors.Is(err, parser.ErrFileTooLarge) ||
		errors.Is(err, parser.ErrInvalidContent) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission)
}

// SyncDir parses every matching file below root and sends the results
// in path order.
//
// Outputs:
//
//	int - Number of files sent.
//	error - A walk or transmission error. Unparseable files are skipped.
func (s *Syncer) SyncDir(ctx context.Context, root string) (int, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && slices.Contains(s.opts.Ignore, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if MatchExtension(path, s.opts.Extensions) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walk %s: %w", root, err)
	}
	return s.SyncFiles(ctx, paths)
}

// SyncFiles parses paths concurrently and sends the results in the given
// order. Unparseable files are logged and skipped.
func (s *Syncer) SyncFiles(ctx context.Context, paths []string) (int, error) {
	units := make([]*tree.CompilationUnit, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	if s.opts.Workers > 0 {
		g.SetLimit(s.opts.Workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			result, err := s.parser.ParseFile(gctx, path)
			if err != nil {
				if isParseFailure(err) {
					s.logger.Warn("skipping file",
						slog.String("path", path), slog.String("error", err.Error()))
					return nil
				}
				return err
			}
			units[i] = result.CompilationUnit
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	sent := 0
	for i, cu := range units {
		if cu == nil {
			continue
		}
		ok, err := s.send(ctx, paths[i], cu)
		if err != nil {
			return sent, err
		}
		if ok {
			sent++
		}
	}
	s.logger.Info("sync complete",
		slog.Int("files", len(paths)),
		slog.Int("sent", sent))
	return sent, nil
}
