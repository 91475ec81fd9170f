// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package server accepts tree transmissions over WebSocket and keeps the
// latest version of every received tree per stream.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/lstsync/services/lst/journal"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
)

// ErrStreamBusy is returned when a stream already has a connected sender.
var ErrStreamBusy = errors.New("stream already has a connected sender")

// Options configures a Server.
type Options struct {
	// ServiceName names the server in traces.
	ServiceName string

	// MaxMessageBytes bounds one WebSocket message, and so one batch.
	MaxMessageBytes int64

	// Journal records every received batch under the stream name when
	// set.
	Journal *journal.Store

	// NewSession creates the receiving session for each connection.
	NewSession func() *rpc.Session

	// Metrics serves /metrics when set.
	Metrics http.Handler

	Logger *slog.Logger
}

// Server is the sync endpoint.
//
// Description:
//
//	Each WebSocket connection is one sender session. Its transmissions
//	are received into the connection's stream, named by the "stream"
//	query parameter. A stream holds at most one connection at a time, and
//	a reconnect starts the stream over, since the new sender's reference
//	tables start empty.
//
// Thread Safety:
//
//	Safe for concurrent use.
type Server struct {
	opts     Options
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	streams map[string]*stream
}

type stream struct {
	name      string
	mirror    *rpc.Mirror
	connected bool
	conn      *rpc.WebSocketConn
	remote    string
	started   time.Time
	versions  int
	lastError string
}

// New creates a server.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "lstsync"
	}
	return &Server{
		opts:   opts,
		logger: opts.Logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		streams: make(map[string]*stream),
	}
}

// Handler returns the HTTP handler with every route registered.
func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(s.opts.ServiceName))
	s.RegisterRoutes(router)
	return router
}

// RegisterRoutes registers the server's endpoints.
//
// Endpoints:
//
//	GET /health - Liveness and stream count
//	GET /metrics - Prometheus metrics, when configured
//	GET /v1/lst/sync?stream=NAME - WebSocket sync endpoint
//	GET /v1/lst/streams - Stream summaries
//	GET /v1/lst/streams/:stream/trees - Latest trees in a stream
//	GET /v1/lst/streams/:stream/trees/:id - One tree with node kind counts
func (s *Server) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", s.HandleHealth)
	if s.opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(s.opts.Metrics))
	}
	v1 := r.Group("/v1/lst")
	v1.GET("/sync", s.HandleSync)
	v1.GET("/streams", s.HandleStreams)
	v1.GET("/streams/:stream/trees", s.HandleTrees)
	v1.GET("/streams/:stream/trees/:id", s.HandleTree)
}

// Run serves on addr until ctx is canceled, then shuts down within
// shutdownTimeout and closes open sync connections.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.RegisterOnShutdown(s.closeConnections)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("sync server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("sync server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (s *Server) closeConnections() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.streams {
		if st.conn != nil {
			_ = st.conn.Close()
		}
	}
}

// claim registers a new connection for name, replacing an idle stream.
func (s *Server) claim(name, remote string) (*stream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.streams[name]; ok && st.connected {
		return nil, ErrStreamBusy
	}
	newSession := s.opts.NewSession
	if newSession == nil {
		return nil, errors.New("server has no session factory")
	}
	st := &stream{
		name:      name,
		mirror:    rpc.NewMirror(newSession()),
		connected: true,
		remote:    remote,
		started:   time.Now(),
	}
	s.streams[name] = st
	return st, nil
}

func (s *Server) release(st *stream, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.connected = false
	st.conn = nil
	if err != nil {
		st.lastError = err.Error()
	}
}

func (s *Server) stream(name string) (*stream, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.streams[name]
	return st, ok
}

// StreamSummary describes one stream.
type StreamSummary struct {
	Name      string    `json:"name"`
	Connected bool      `json:"connected"`
	Remote    string    `json:"remote,omitempty"`
	Started   time.Time `json:"started"`
	Trees     int       `json:"trees"`
	Versions  int       `json:"versions"`
	LastError string    `json:"last_error,omitempty"`
}

// Streams returns a summary of every stream, sorted by name.
func (s *Server) Streams() []StreamSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]StreamSummary, 0, len(s.streams))
	for _, st := range s.streams {
		out = append(out, StreamSummary{
			Name:      st.name,
			Connected: st.connected,
			Remote:    st.remote,
			Started:   st.started,
			Trees:     st.mirror.Len(),
			Versions:  st.versions,
			LastError: st.lastError,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func newStreamName() string { return uuid.NewString() }
