// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package rpc

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoServer sends every batch it reads back to the client and reports
// the error that ended the read loop.
func echoServer(t *testing.T, done chan<- error) *httptest.Server {
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			done <- err
			return
		}
		c := NewWebSocketConn(conn)
		defer c.Close()
		for {
			b, err := c.ReadBatch(r.Context())
			if err != nil {
				done <- err
				return
			}
			if err := c.WriteBatch(r.Context(), b); err != nil {
				done <- err
				return
			}
		}
	}))
}

func TestWebSocketConn(t *testing.T) {
	done := make(chan error, 1)
	srv := echoServer(t, done)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := DialWebSocket(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)

	sender, receiver := NewSession(leafDialect()), NewSession(leafDialect())
	root := newLeaf("over the wire", newLeaf("child", nil))
	require.NoError(t, sender.Send(ctx, conn, root, nil))
	got, err := receiver.Receive(ctx, conn, nil)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	require.NoError(t, conn.Close())
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, io.EOF), "server saw %v", err)
	case <-ctx.Done():
		t.Fatal("server did not observe the close")
	}
}

func TestDialWebSocket_Refused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	_, err := DialWebSocket(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	assert.Error(t, err)
}
