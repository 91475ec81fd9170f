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
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

var (
	// ErrClosed is returned by operations on a closed Store.
	ErrClosed = errors.New("journal closed")

	// ErrInvalidStream is returned for an empty stream name or one
	// containing a NUL byte.
	ErrInvalidStream = errors.New("invalid stream name")
)

// Key layout:
//
//	b/<stream>\x00<seq uint64 BE>  -> JSON batch
//	n/<stream>                     -> next seq uint64 BE
//	m/<stream>                     -> JSON metadata map
var (
	batchPrefix = []byte("b/")
	nextPrefix  = []byte("n/")
	metaPrefix  = []byte("m/")
)

func batchKey(stream string, seq uint64) []byte {
	k := make([]byte, 0, len(batchPrefix)+len(stream)+9)
	k = append(k, batchPrefix...)
	k = append(k, stream...)
	k = append(k, 0)
	return binary.BigEndian.AppendUint64(k, seq)
}

func streamPrefix(stream string) []byte {
	k := append([]byte(nil), batchPrefix...)
	k = append(k, stream...)
	return append(k, 0)
}

func nextKey(stream string) []byte {
	return append(append([]byte(nil), nextPrefix...), stream...)
}

func metaKey(stream string) []byte {
	return append(append([]byte(nil), metaPrefix...), stream...)
}

func checkStream(stream string) error {
	if stream == "" || strings.IndexByte(stream, 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidStream, stream)
	}
	return nil
}

// Store is a journal of batches grouped into named streams.
//
// Thread Safety: Safe for concurrent use. Appends to one Store are
// serialized.
type Store struct {
	db     *badger.DB
	gc     *gcRunner
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// Open opens the journal described by cfg.
//
// Description:
//
//	Opens (or creates) the BadgerDB database and starts value log garbage
//	collection when GCInterval is set on a persistent journal.
//
// Inputs:
//
//	cfg - Journal configuration. Path is required unless InMemory is true.
//
// Outputs:
//
//	*Store - The opened journal. Caller must call Close when done.
//	error - Non-nil if the database cannot be opened.
func Open(cfg Config) (*Store, error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{db: db, logger: logger}

	if cfg.GCInterval > 0 && !cfg.InMemory {
		runner, err := newGCRunner(db, cfg.GCInterval, cfg.GCDiscardRatio, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("create GC runner: %w", err)
		}
		s.gc = runner
	}
	return s, nil
}

// OpenInMemory opens an in-memory journal. Data is lost when closed.
func OpenInMemory() (*Store, error) {
	return Open(InMemoryConfig())
}

// Close stops garbage collection and closes the database. Safe to call
// more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.gc != nil {
		s.gc.stop()
	}
	return s.db.Close()
}

// Append adds b to the end of stream and returns its journal position.
//
// Description:
//
//	Encodes the batch with rpc.MarshalBatch and writes it together with
//	the stream's advanced position counter in one transaction.
//
// Inputs:
//
//	ctx - Checked for cancellation before writing.
//	stream - Stream name. Must be non-empty and free of NUL bytes.
//	b - The batch to append.
//
// Outputs:
//
//	uint64 - Zero-based position of the batch within the stream.
//	error - ErrClosed, ErrInvalidStream, or a storage error.
func (s *Store) Append(ctx context.Context, stream string, b *rpc.Batch) (uint64, error) {
	if err := checkStream(stream); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	data, err := rpc.MarshalBatch(b)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}

	var seq uint64
	err = s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(nextKey(stream))
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
		case err != nil:
			return err
		default:
			if err := item.Value(func(v []byte) error {
				seq = binary.BigEndian.Uint64(v)
				return nil
			}); err != nil {
				return err
			}
		}
		if err := txn.Set(batchKey(stream, seq), data); err != nil {
			return err
		}
		return txn.Set(nextKey(stream), binary.BigEndian.AppendUint64(nil, seq+1))
	})
	if err != nil {
		return 0, fmt.Errorf("append to stream %s: %w", stream, err)
	}
	return seq, nil
}

// Len returns the number of batches in stream.
func (s *Store) Len(stream string) (uint64, error) {
	if err := checkStream(stream); err != nil {
		return 0, err
	}
	var n uint64
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(nextKey(stream))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			n = binary.BigEndian.Uint64(v)
			return nil
		})
	})
	if err != nil {
		return 0, fmt.Errorf("length of stream %s: %w", stream, err)
	}
	return n, nil
}

// Streams lists the stream names in the journal in key order.
func (s *Store) Streams() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = nextPrefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, string(it.Item().Key()[len(nextPrefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list streams: %w", err)
	}
	return names, nil
}

// Drop removes every batch of stream.
func (s *Store) Drop(stream string) error {
	if err := checkStream(stream); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := s.db.DropPrefix(streamPrefix(stream)); err != nil {
		return fmt.Errorf("drop stream %s: %w", stream, err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(metaKey(stream)); err != nil {
			return err
		}
		return txn.Delete(nextKey(stream))
	}); err != nil {
		return fmt.Errorf("drop stream %s: %w", stream, err)
	}
	s.logger.Info("journal stream dropped", slog.String("stream", stream))
	return nil
}

// SetMeta replaces the metadata of stream, e.g. its source path or the
// trace context of the process writing it.
func (s *Store) SetMeta(stream string, meta map[string]string) error {
	if err := checkStream(stream); err != nil {
		return err
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode metadata of %s: %w", stream, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(metaKey(stream), data)
	}); err != nil {
		return fmt.Errorf("write metadata of %s: %w", stream, err)
	}
	return nil
}

// Meta returns the metadata of stream, or nil if none was set.
func (s *Store) Meta(stream string) (map[string]string, error) {
	if err := checkStream(stream); err != nil {
		return nil, err
	}
	var meta map[string]string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey(stream))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &meta)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read metadata of %s: %w", stream, err)
	}
	return meta, nil
}

// get reads the batch at seq, returning io.EOF past the end of stream.
func (s *Store) get(stream string, seq uint64) (*rpc.Batch, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(batchKey(stream, seq))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("read stream %s at %d: %w", stream, seq, err)
	}
	return rpc.UnmarshalBatch(data)
}

// Writer returns an rpc.BatchWriter appending to stream.
func (s *Store) Writer(stream string) *Writer {
	return &Writer{store: s, stream: stream}
}

// Reader returns an rpc.BatchReader over stream, starting at its first
// batch.
func (s *Store) Reader(stream string) *Reader {
	return &Reader{store: s, stream: stream}
}

// Writer appends every batch it is given to one stream.
type Writer struct {
	store  *Store
	stream string
}

func (w *Writer) WriteBatch(ctx context.Context, b *rpc.Batch) error {
	_, err := w.store.Append(ctx, w.stream, b)
	return err
}

// Reader yields the batches of one stream in append order. Reads past the
// last batch return io.EOF; batches appended later become readable.
//
// Thread Safety: Not safe for concurrent use.
type Reader struct {
	store  *Store
	stream string
	next   uint64
	peeked *rpc.Batch
}

func (r *Reader) ReadBatch(ctx context.Context) (*rpc.Batch, error) {
	b, err := r.Peek(ctx)
	if err != nil {
		return nil, err
	}
	r.peeked = nil
	r.next++
	return b, nil
}

// Peek returns the next batch without consuming it.
func (r *Reader) Peek(ctx context.Context) (*rpc.Batch, error) {
	if r.peeked != nil {
		return r.peeked, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkStream(r.stream); err != nil {
		return nil, err
	}
	b, err := r.store.get(r.stream, r.next)
	if err != nil {
		return nil, err
	}
	r.peeked = b
	return b, nil
}

// Position returns the journal position of the next batch to be read.
func (r *Reader) Position() uint64 { return r.next }
