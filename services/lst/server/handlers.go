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
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AleutianAI/lstsync/pkg/validation"
	"github.com/AleutianAI/lstsync/services/lst"
	"github.com/AleutianAI/lstsync/services/lst/journal"
	"github.com/AleutianAI/lstsync/services/lst/rpc"
	"github.com/AleutianAI/lstsync/services/lst/telemetry"
)

// HandleHealth reports liveness.
func (s *Server) HandleHealth(c *gin.Context) {
	s.mu.RLock()
	n := len(s.streams)
	s.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "streams": n})
}

// HandleSync upgrades the request to a WebSocket and receives
// transmissions until the sender closes the connection.
//
// Description:
//
//	With a journal configured, a stream that already has recorded
//	batches is rejected with 409 unless the request sets reset=true,
//	which drops the recorded batches first. Journal references only
//	resolve within one sender session.
func (s *Server) HandleSync(c *gin.Context) {
	name := c.Query("stream")
	if name == "" {
		name = newStreamName()
	}
	name, err := validation.SanitizeStreamName(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	logger := telemetry.LoggerWithTrace(ctx, s.logger).With(slog.String("stream", name))

	if j := s.opts.Journal; j != nil {
		n, err := j.Len(name)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, journal.ErrInvalidStream) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		if n > 0 {
			if c.Query("reset") != "true" {
				c.JSON(http.StatusConflict, gin.H{"error": "stream has recorded batches; reconnect with reset=true to replace them"})
				return
			}
			if err := j.Drop(name); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
	}

	st, err := s.claim(name, c.ClientIP())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrStreamBusy) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		s.release(st, err)
		logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	if s.opts.MaxMessageBytes > 0 {
		ws.SetReadLimit(s.opts.MaxMessageBytes)
	}
	conn := rpc.NewWebSocketConn(ws)
	s.mu.Lock()
	st.conn = conn
	s.mu.Unlock()
	logger.Info("sync stream connected", slog.String("remote", st.remote))

	var reader rpc.BatchReader = conn
	if j := s.opts.Journal; j != nil {
		meta := map[string]string{
			"remote":  st.remote,
			"started": st.started.UTC().Format(time.RFC3339),
		}
		telemetry.InjectToMap(ctx, meta)
		if err := j.SetMeta(name, meta); err != nil {
			logger.Warn("failed to record stream metadata", slog.String("error", err.Error()))
		}
		reader = rpc.TeeReader(conn, j.Writer(name))
	}

	runErr := s.receive(c, st, rpc.NewPeekReader(reader), logger)
	_ = conn.Close()
	s.release(st, runErr)
	if runErr != nil {
		logger.Warn("sync stream failed", slog.String("error", runErr.Error()))
		return
	}
	logger.Info("sync stream closed", slog.Int("trees", st.mirror.Len()))
}

func (s *Server) receive(c *gin.Context, st *stream, r rpc.PeekReader, logger *slog.Logger) error {
	ctx := c.Request.Context()
	for {
		t, err := st.mirror.Receive(ctx, r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		s.mu.Lock()
		st.versions++
		s.mu.Unlock()
		sum := Summarize(t, false)
		logger.Debug("tree received",
			slog.String("tree_id", sum.ID.String()),
			slog.String("source_path", sum.SourcePath))
	}
}

// HandleStreams lists stream summaries.
func (s *Server) HandleStreams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"streams": s.Streams()})
}

// HandleTrees lists the latest version of every tree in a stream.
func (s *Server) HandleTrees(c *gin.Context) {
	st, ok := s.stream(c.Param("stream"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "stream not found"})
		return
	}
	trees := st.mirror.Trees()
	out := make([]TreeSummary, 0, len(trees))
	for _, t := range trees {
		out = append(out, Summarize(t, false))
	}
	c.JSON(http.StatusOK, gin.H{"stream": st.name, "trees": out})
}

// HandleTree describes one tree, including its node kind counts.
func (s *Server) HandleTree(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tree id"})
		return
	}
	st, ok := s.stream(c.Param("stream"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "stream not found"})
		return
	}
	var t lst.Tree
	if t, ok = st.mirror.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "tree not found"})
		return
	}
	c.JSON(http.StatusOK, Summarize(t, true))
}
