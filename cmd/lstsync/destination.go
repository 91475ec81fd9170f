// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/AleutianAI/lstsync/pkg/validation"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
	"github.com/AleutianAI/lstsync/services/lst/telemetry"
)

// destination is where a command writes batches.
type destination struct {
	rpc.BatchWriter
	name  string
	close func() error
}

func (d *destination) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// destinationFlags select a destination. At most one of journal, url
// and out may be set; out "-" or empty means stdout.
type destinationFlags struct {
	out     string
	journal string
	reset   bool
	url     string
	stream  string
}

// validate checks that at most one destination is selected and returns the
// flags with stream names trimmed.
func (f destinationFlags) validate() (destinationFlags, error) {
	out := f.out
	if out == "-" {
		out = ""
	}
	set := 0
	for _, v := range []string{f.journal, f.url, out} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return f, errors.New("choose one of --out, --journal and --url")
	}
	var err error
	if f.journal != "" {
		if f.journal, err = validation.SanitizeStreamName(f.journal); err != nil {
			return f, fmt.Errorf("--journal: %w", err)
		}
	}
	if f.stream != "" {
		if f.stream, err = validation.SanitizeStreamName(f.stream); err != nil {
			return f, fmt.Errorf("--stream: %w", err)
		}
	}
	return f, nil
}

// open opens the selected destination. source describes what is being
// sent and is recorded with journal streams.
func (f destinationFlags) open(ctx context.Context, source string) (*destination, error) {
	f, err := f.validate()
	if err != nil {
		return nil, err
	}
	switch {
	case f.journal != "":
		return openJournalDestination(ctx, f.journal, f.reset, source)
	case f.url != "":
		return dialDestination(ctx, f.url, f.stream, f.reset)
	case f.out == "" || f.out == "-":
		w := bufio.NewWriter(os.Stdout)
		return &destination{BatchWriter: rpc.NewFrameWriter(w), name: "stdout", close: w.Flush}, nil
	default:
		file, err := os.Create(f.out)
		if err != nil {
			return nil, err
		}
		w := bufio.NewWriter(file)
		return &destination{
			BatchWriter: rpc.NewFrameWriter(w),
			name:        f.out,
			close: func() error {
				return errors.Join(w.Flush(), file.Close())
			},
		}, nil
	}
}

func openJournalDestination(ctx context.Context, stream string, reset bool, source string) (*destination, error) {
	store, err := openJournal()
	if err != nil {
		return nil, err
	}
	if err := claimStream(store, stream, reset); err != nil {
		store.Close()
		return nil, err
	}
	meta := map[string]string{
		"source":  source,
		"started": time.Now().UTC().Format(time.RFC3339),
	}
	telemetry.InjectToMap(ctx, meta)
	if err := store.SetMeta(stream, meta); err != nil {
		store.Close()
		return nil, err
	}
	return &destination{
		BatchWriter: store.Writer(stream),
		name:        "journal:" + stream,
		close:       store.Close,
	}, nil
}

// syncURL adds the stream name and reset request to a sync endpoint URL.
func syncURL(raw, stream string, reset bool) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("invalid url %q: scheme must be ws or wss", raw)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/v1/lst/sync"
	}
	q := u.Query()
	if stream != "" {
		q.Set("stream", stream)
	}
	if reset {
		q.Set("reset", "true")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func dialDestination(ctx context.Context, raw, stream string, reset bool) (*destination, error) {
	target, err := syncURL(raw, stream, reset)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	telemetry.InjectContext(ctx, header)
	conn, err := rpc.DialWebSocket(ctx, target, header)
	if err != nil {
		return nil, err
	}
	return &destination{BatchWriter: conn, name: target, close: conn.Close}, nil
}
