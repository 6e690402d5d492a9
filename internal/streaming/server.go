// Package streaming broadcasts a session's emissions to any number of
// websocket clients, in the hub-and-client shape from gorilla/websocket's
// own chat example: the hub keeps the client set behind a mutex and
// Broadcast hands every message to each client's buffered send channel,
// drained by that client's own write goroutine, so callers never touch
// a connection directly.
package streaming

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans emitted terms out to every currently connected websocket
// client. The zero value is not usable; construct with NewHub.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
	logger  *slog.Logger
}

// NewHub returns an empty hub. log may be nil, in which case
// slog.Default() is used.
func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		clients: make(map[*websocket.Conn]chan []byte),
		logger:  log,
	}
}

// Broadcast marshals v as JSON and sends it to every connected client.
// Slow or disconnected clients are dropped rather than allowed to
// block the broadcaster.
func (h *Hub) Broadcast(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("streaming: marshal broadcast payload", "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, out := range h.clients {
		select {
		case out <- payload:
		default:
			h.logger.Warn("streaming: dropping slow client")
			delete(h.clients, conn)
			close(out)
			conn.Close()
		}
	}
}

// ServeHTTP upgrades the request to a websocket and registers the
// connection with the hub until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("streaming: upgrade", "err", err)
		return
	}

	out := make(chan []byte, 32)
	h.mu.Lock()
	h.clients[conn] = out
	h.mu.Unlock()

	go h.writePump(conn, out)
	go h.readPump(conn, out)
}

// writePump drains out onto the connection until it is closed.
func (h *Hub) writePump(conn *websocket.Conn, out chan []byte) {
	for payload := range out {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.remove(conn, out)
			return
		}
	}
}

// readPump exists only to notice when the client goes away — this
// server never expects client-to-server messages.
func (h *Hub) readPump(conn *websocket.Conn, out chan []byte) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.remove(conn, out)
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn, out chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(out)
	}
	conn.Close()
}
