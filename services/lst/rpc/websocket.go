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
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketConn carries one batch per text message.
//
// Thread Safety:
//
//	WriteBatch is safe for concurrent use. ReadBatch must be called from
//	one goroutine.
type WebSocketConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// NewWebSocketConn wraps an established connection, such as one returned
// by websocket.Upgrader.Upgrade.
func NewWebSocketConn(conn *websocket.Conn) *WebSocketConn {
	return &WebSocketConn{conn: conn}
}

// DialWebSocket connects to a sync endpoint.
func DialWebSocket(ctx context.Context, url string, header http.Header) (*WebSocketConn, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return NewWebSocketConn(conn), nil
}

func (c *WebSocketConn) WriteBatch(ctx context.Context, b *Batch) error {
	data, err := MarshalBatch(b)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetWriteDeadline(deadline)
		defer c.conn.SetWriteDeadline(time.Time{})
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write batch: %w", err)
	}
	return nil
}

// ReadBatch reads the next batch. A normal close by the peer reads as
// io.EOF.
func (c *WebSocketConn) ReadBatch(ctx context.Context) (*Batch, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetReadDeadline(deadline)
		defer c.conn.SetReadDeadline(time.Time{})
	}
	kind, data, err := c.conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return nil, io.EOF
		}
		var closeErr *websocket.CloseError
		if errors.As(err, &closeErr) {
			return nil, fmt.Errorf("connection closed: %w", err)
		}
		return nil, fmt.Errorf("read batch: %w", err)
	}
	if kind != websocket.TextMessage {
		return nil, fmt.Errorf("%w: websocket message type %d", ErrDesync, kind)
	}
	return UnmarshalBatch(data)
}

// Close sends a normal close message and closes the connection.
func (c *WebSocketConn) Close() error {
	c.writeMu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	c.writeMu.Unlock()
	return c.conn.Close()
}
