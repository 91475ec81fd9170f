// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package watch keeps a receiver's copy of a source tree current by
// re-sending every Java file that changes on disk.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is one debounced file system event.
type Change struct {
	Path string
	Op   Op
	Time time.Time
}

// Op is the kind of file system event.
type Op int

const (
	OpCreate Op = iota
	OpWrite
	OpRemove
	OpRename
)

func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Handler receives each debounced set of changes.
type Handler func(ctx context.Context, changes []Change)

// Options configures a Watcher.
type Options struct {
	// Debounce is how long the watcher waits for more events before
	// calling the handler.
	Debounce time.Duration

	// Extensions selects the files reported, for example ".java".
	// Matching ignores case. Empty reports every file.
	Extensions []string

	// Ignore names directories that are never watched.
	Ignore []string

	// BufferSize is the capacity of the event channel. Events arriving
	// while it is full are dropped and logged.
	BufferSize int

	Logger *slog.Logger
}

// DefaultOptions returns options for watching Java sources.
func DefaultOptions() Options {
	return Options{
		Debounce:   200 * time.Millisecond,
		Extensions: []string{".java"},
		Ignore:     []string{".git", ".idea", ".gradle", "build", "target", "node_modules"},
		BufferSize: 1000,
		Logger:     slog.Default(),
	}
}

// Watcher reports changes to matching files below a root directory.
//
// Description:
//
//	Watches root and every subdirectory, including directories created
//	later. Events are collected until Debounce passes without another
//	event, then deduplicated per path and handed to the handler.
//
// Thread Safety:
//
//	Safe for concurrent use. The handler is called from one goroutine.
type Watcher struct {
	root    string
	watcher *fsnotify.Watcher
	handler Handler
	opts    Options
	logger  *slog.Logger

	changes  chan Change
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	watching bool
}

// New creates a watcher for root. Call Start to begin watching.
func New(root string, handler Handler, opts Options) (*Watcher, error) {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultOptions().BufferSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		root:    root,
		watcher: fw,
		handler: handler,
		opts:    opts,
		logger:  opts.Logger.With(slog.String("root", root)),
		changes: make(chan Change, opts.BufferSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}, nil
}

// Start adds the directory tree to the watch list and starts delivering
// changes. The watcher stops when ctx is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.watching {
		w.mu.Unlock()
		return nil
	}
	w.watching = true
	w.mu.Unlock()

	if err := w.addRecursive(w.root); err != nil {
		w.mu.Lock()
		w.watching = false
		w.mu.Unlock()
		return err
	}

	go w.processEvents(ctx)
	go func() {
		defer close(w.stopped)
		w.debounceLoop(ctx)
	}()
	return nil
}

// Stop stops watching and waits for a running handler call to return.
// It must not be called from the handler.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
		w.mu.Lock()
		started := w.watching
		w.watching = false
		w.mu.Unlock()
		if started {
			<-w.stopped
		}
	})
}

// IsWatching reports whether the watcher has been started and not stopped.
func (w *Watcher) IsWatching() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.watching
}

// Matches reports whether path has one of the watched extensions.
func (w *Watcher) Matches(path string) bool {
	return MatchExtension(path, w.opts.Extensions)
}

// MatchExtension reports whether path ends in one of exts, ignoring case.
// An empty exts matches everything.
func MatchExtension(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	return slices.ContainsFunc(exts, func(e string) bool { return strings.EqualFold(e, ext) })
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			w.logger.Warn("skipping unreadable directory",
				slog.String("path", path), slog.String("error", err.Error()))
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.ignored(path) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) ignored(path string) bool {
	return slices.Contains(w.opts.Ignore, filepath.Base(path))
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !w.ignored(event.Name) {
						if err := w.addRecursive(event.Name); err != nil {
							w.logger.Warn("failed to watch new directory",
								slog.String("path", event.Name), slog.String("error", err.Error()))
						}
					}
					continue
				}
			}
			if !w.Matches(event.Name) {
				continue
			}
			change := Change{Path: event.Name, Op: convertOp(event.Op), Time: time.Now()}
			select {
			case w.changes <- change:
			default:
				w.logger.Warn("change buffer full, dropping event",
					slog.String("path", change.Path), slog.String("op", change.Op.String()))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", slog.String("error", err.Error()))
		}
	}
}

func convertOp(op fsnotify.Op) Op {
	switch {
	case op.Has(fsnotify.Create):
		return OpCreate
	case op.Has(fsnotify.Write):
		return OpWrite
	case op.Has(fsnotify.Remove):
		return OpRemove
	case op.Has(fsnotify.Rename):
		return OpRename
	default:
		return OpWrite
	}
}

func (w *Watcher) debounceLoop(ctx context.Context) {
	var batch []Change
	var timer *time.Timer
	var timerC <-chan time.Time

	flush := func() {
		if timer != nil {
			timer.Stop()
			timer, timerC = nil, nil
		}
		if len(batch) == 0 {
			return
		}
		deduped := deduplicate(batch)
		batch = batch[:0]
		if w.handler != nil && ctx.Err() == nil {
			w.handler(ctx, deduped)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			flush()
			return
		case change := <-w.changes:
			batch = append(batch, change)
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.opts.Debounce)
			}
		case <-timerC:
			timer, timerC = nil, nil
			flush()
		}
	}
}

// deduplicate keeps the last change per path, ordered by first
// appearance. A create followed by writes stays a create.
func deduplicate(changes []Change) []Change {
	index := make(map[string]int, len(changes))
	var out []Change
	for _, c := range changes {
		i, seen := index[c.Path]
		if !seen {
			index[c.Path] = len(out)
			out = append(out, c)
			continue
		}
		if out[i].Op == OpCreate && c.Op == OpWrite {
			out[i].Time = c.Time
			continue
		}
		out[i] = c
	}
	return out
}
