// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stream serves rendered frames to browsers over websockets.
// The page at / shows a full-viewport canvas that draws each frame
// received on /ws.
package stream

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/gorilla/websocket"
)

//go:embed index.html
var indexHTML []byte

// Hub broadcasts encoded frames to the connected viewers. It implements
// the display sink interface. A viewer that has not taken the previous
// frame when a new one arrives misses the new one.
type Hub struct {

	// Format is the encoding of the frames sent to viewers.
	Format imagex.Formats

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub returns a hub sending JPEG frames.
func NewHub() *Hub {
	return &Hub{Format: imagex.JPEG, clients: map[*client]struct{}{}}
}

// NumClients returns the number of connected viewers.
func (hb *Hub) NumClients() int {
	hb.mu.Lock()
	defer hb.mu.Unlock()
	return len(hb.clients)
}

// WriteFrame encodes the frame once and queues it for each viewer.
// With no viewers it does nothing.
func (hb *Hub) WriteFrame(n int, img *image.RGBA) error {
	if hb.NumClients() == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := imagex.Write(img, &buf, hb.Format); err != nil {
		return fmt.Errorf("stream.Hub: frame %d: %w", n, err)
	}
	msg := buf.Bytes()
	hb.mu.Lock()
	defer hb.mu.Unlock()
	for c := range hb.clients {
		select {
		case c.send <- msg:
		default:
		}
	}
	return nil
}

// ServeWS upgrades the request to a websocket and sends frames to it
// until the connection is closed.
func (hb *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := hb.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("stream: upgrade", "err", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 1)}
	hb.mu.Lock()
	hb.clients[c] = struct{}{}
	hb.mu.Unlock()
	slog.Info("stream: viewer connected", "addr", r.RemoteAddr)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	defer func() {
		hb.mu.Lock()
		delete(hb.clients, c)
		hb.mu.Unlock()
		conn.Close()
		slog.Info("stream: viewer disconnected", "addr", r.RemoteAddr)
	}()
	for {
		select {
		case <-done:
			return
		case msg := <-c.send:
			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
				return
			}
		}
	}
}

// Handler returns the handler serving the viewer page and the frame socket.
func (hb *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.HandleFunc("/ws", hb.ServeWS)
	return mux
}

// ListenAndServe serves the hub on addr until ctx is done, and then
// shuts the server down.
func (hb *Hub) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("stream: %w", err)
	}
	return hb.Serve(ctx, ln)
}

// Serve serves the hub on ln until ctx is done.
func (hb *Hub) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: hb.Handler(), ReadHeaderTimeout: 10 * time.Second}
	slog.Info("stream: serving viewer", "url", "http://"+ln.Addr().String())
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("stream: %w", err)
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err := srv.Shutdown(sctx)
		hb.closeAll()
		return err
	}
}

// closeAll closes all viewer connections, which are not tracked by
// the http server once upgraded.
func (hb *Hub) closeAll() {
	hb.mu.Lock()
	defer hb.mu.Unlock()
	for c := range hb.clients {
		c.conn.Close()
	}
}
