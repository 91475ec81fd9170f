// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/lstsync/services/lst/java/parser"
	"github.com/AleutianAI/lstsync/services/lst/java/remote"
	"github.com/AleutianAI/lstsync/services/lst/java/tree"
	"github.com/AleutianAI/lstsync/services/lst/journal"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const source = `package demo;

class Greeter {
    String greet(String name) {
        return "hello " + name;
    }
}
`

func parse(t *testing.T, content, path string) *tree.CompilationUnit {
	t.Helper()
	result, err := parser.New().Parse(context.Background(), []byte(content), path)
	require.NoError(t, err)
	return result.CompilationUnit
}

func newTestServer(t *testing.T, store *journal.Store) (*Server, *httptest.Server) {
	t.Helper()
	s := New(Options{
		MaxMessageBytes: 1 << 20,
		Journal:         store,
		NewSession:      func() *rpc.Session { return remote.NewSession() },
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("lstsync_up 1\n"))
		}),
	})
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return s, srv
}

func wsURL(srv *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/lst/sync?" + query
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func waitDisconnected(t *testing.T, s *Server, name string) {
	t.Helper()
	require.Eventually(t, func() bool {
		for _, st := range s.Streams() {
			if st.Name == name {
				return !st.Connected
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
}

func TestServer_Sync(t *testing.T) {
	store, err := journal.OpenInMemory()
	require.NoError(t, err)
	defer store.Close()
	s, srv := newTestServer(t, store)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cu := parse(t, source, "src/demo/Greeter.java")
	conn, err := rpc.DialWebSocket(ctx, wsURL(srv, "stream=demo"), nil)
	require.NoError(t, err)
	sender := remote.NewSession(rpc.WithBatchSize(10))
	require.NoError(t, sender.Send(ctx, conn, cu, nil))

	t.Run("second sender is rejected while connected", func(t *testing.T) {
		_, err := rpc.DialWebSocket(ctx, wsURL(srv, "stream=demo"), nil)
		assert.Error(t, err)
	})

	updated := parse(t, strings.Replace(source, "hello ", "hi ", 1), "src/demo/Greeter.java").WithID(cu.ID())
	require.NoError(t, sender.Send(ctx, conn, updated, cu))
	require.NoError(t, conn.Close())
	waitDisconnected(t, s, "demo")

	t.Run("streams", func(t *testing.T) {
		var body struct {
			Streams []StreamSummary `json:"streams"`
		}
		require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/v1/lst/streams", &body))
		require.Len(t, body.Streams, 1)
		st := body.Streams[0]
		assert.Equal(t, "demo", st.Name)
		assert.False(t, st.Connected)
		assert.Equal(t, 1, st.Trees)
		assert.Equal(t, 2, st.Versions)
		assert.Empty(t, st.LastError)
	})

	t.Run("trees", func(t *testing.T) {
		var body struct {
			Stream string        `json:"stream"`
			Trees  []TreeSummary `json:"trees"`
		}
		require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/v1/lst/streams/demo/trees", &body))
		require.Len(t, body.Trees, 1)
		assert.Equal(t, cu.ID(), body.Trees[0].ID)
		assert.Equal(t, "CompilationUnit", body.Trees[0].Kind)
		assert.Equal(t, "src/demo/Greeter.java", body.Trees[0].SourcePath)
		assert.Equal(t, updated.Checksum().String(), body.Trees[0].Checksum)
		assert.Nil(t, body.Trees[0].Kinds)
	})

	t.Run("tree", func(t *testing.T) {
		var sum TreeSummary
		require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/v1/lst/streams/demo/trees/"+cu.ID().String(), &sum))
		assert.Equal(t, 1, sum.Kinds["ClassDeclaration"])
		assert.Equal(t, 1, sum.Kinds["Return"])
		assert.Greater(t, sum.Nodes, 10)

		assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/v1/lst/streams/demo/trees/nope", nil))
		assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/v1/lst/streams/demo/trees/"+uuid.NewString(), nil))
		assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/v1/lst/streams/missing/trees", nil))
	})

	t.Run("journal replays the stream", func(t *testing.T) {
		trees, err := journal.Replay(ctx, store, "demo", remote.NewSession(), nil)
		require.NoError(t, err)
		require.Len(t, trees, 1)
		got, ok := s.streams["demo"].mirror.Get(cu.ID())
		require.True(t, ok)
		assert.Equal(t, got, trees[0])

		meta, err := store.Meta("demo")
		require.NoError(t, err)
		assert.NotEmpty(t, meta["remote"])
		assert.NotEmpty(t, meta["started"])
	})

	t.Run("recorded stream needs reset", func(t *testing.T) {
		_, err := rpc.DialWebSocket(ctx, wsURL(srv, "stream=demo"), nil)
		assert.Error(t, err)

		conn, err := rpc.DialWebSocket(ctx, wsURL(srv, "stream=demo&reset=true"), nil)
		require.NoError(t, err)
		require.NoError(t, conn.Close())
		waitDisconnected(t, s, "demo")
		n, err := store.Len("demo")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestServer_ProtocolError(t *testing.T) {
	s, srv := newTestServer(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := rpc.DialWebSocket(ctx, wsURL(srv, "stream=bad"), nil)
	require.NoError(t, err)
	bogus := &rpc.Batch{Seq: 0, Events: []rpc.DiffEvent{{State: rpc.End}}}
	require.NoError(t, conn.WriteBatch(ctx, bogus))
	defer conn.Close()

	waitDisconnected(t, s, "bad")
	streams := s.Streams()
	require.Len(t, streams, 1)
	assert.NotEmpty(t, streams[0].LastError)
	assert.Zero(t, streams[0].Trees)
}

func TestServer_TrimsStreamName(t *testing.T) {
	s, srv := newTestServer(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := rpc.DialWebSocket(ctx, wsURL(srv, "stream=%20dev%20"), nil)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	waitDisconnected(t, s, "dev")

	streams := s.Streams()
	require.Len(t, streams, 1)
	assert.Equal(t, "dev", streams[0].Name)
}

func TestServer_Endpoints(t *testing.T) {
	_, srv := newTestServer(t, nil)

	var health map[string]any
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &health))
	assert.Equal(t, "ok", health["status"])

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	t.Run("invalid stream name with journal", func(t *testing.T) {
		store, err := journal.OpenInMemory()
		require.NoError(t, err)
		defer store.Close()
		_, srv := newTestServer(t, store)

		resp, err := http.Get(srv.URL + "/v1/lst/sync?stream=a%00b")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid stream name without journal", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/lst/sync?stream=a%2Fb")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSummarize(t *testing.T) {
	cu := parse(t, source, "Greeter.java")
	sum := Summarize(cu, false)
	assert.Equal(t, cu.ID(), sum.ID)
	assert.Equal(t, "CompilationUnit", sum.Kind)
	assert.Equal(t, "Greeter.java", sum.SourcePath)
	assert.Nil(t, sum.Kinds)
	assert.Zero(t, sum.Nodes)

	cls := Summarize(cu.Classes()[0], true)
	assert.Equal(t, "ClassDeclaration", cls.Kind)
	assert.Empty(t, cls.SourcePath)
	assert.Equal(t, 1, cls.Kinds["MethodDeclaration"])
}

func TestServer_Run(t *testing.T) {
	s := New(Options{NewSession: func() *rpc.Session { return remote.NewSession() }})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0", time.Second) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
