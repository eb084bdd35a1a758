// Package ws implements the WebSocket adapter for pushing site events to
// connected admin dashboards. Connections subscribe to a single clinic slug;
// broadcasts are scoped to that slug's subscribers.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
)

// Event types broadcast by the hub.
const (
	EventSiteUpdated         = "site.updated"
	EventAppointmentReceived = "appointment.received"
)

// Message is the envelope for all WebSocket messages.
type Message struct {
	Type    string          `json:"type"`
	Slug    string          `json:"slug"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// conn wraps a single WebSocket connection subscribed to one slug.
type conn struct {
	ws     *websocket.Conn
	slug   string
	cancel context.CancelFunc
}

// Hub manages active WebSocket connections grouped by clinic slug.
type Hub struct {
	mu    sync.RWMutex
	conns map[*conn]struct{}
}

// NewHub creates a new WebSocket hub.
func NewHub() *Hub {
	return &Hub{
		conns: make(map[*conn]struct{}),
	}
}

// Handle upgrades the request to a WebSocket subscribed to the given slug.
// It blocks for the lifetime of the connection: returning would make net/http
// cancel the request context and tear the connection down.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request, slug string) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // CORS handled by middleware
	})
	if err != nil {
		slog.Error("websocket accept failed", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	c := &conn{ws: ws, slug: slug, cancel: cancel}

	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()

	slog.Info("websocket connected", "remote", r.RemoteAddr, "slug", slug)

	defer func() {
		h.remove(c)
		_ = ws.Close(websocket.StatusNormalClosure, "")
	}()

	// Read loop: detects disconnects and consumes pings. Broadcast writes
	// happen from other goroutines; coder/websocket allows one concurrent
	// reader and one concurrent writer.
	for {
		if _, _, err := ws.Read(ctx); err != nil {
			return
		}
	}
}

// Broadcast sends a message to all clients subscribed to msg.Slug.
func (h *Hub) Broadcast(ctx context.Context, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("websocket marshal failed", "error", err)
		return
	}

	// Full lock: writes to one connection must not run concurrently.
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.conns {
		if c.slug != msg.Slug {
			continue
		}
		if err := c.ws.Write(ctx, websocket.MessageText, data); err != nil {
			slog.Debug("websocket write failed", "error", err)
			go h.remove(c)
		}
	}
}

// SubscriberCount returns the number of active connections for a slug.
func (h *Hub) SubscriberCount(slug string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for c := range h.conns {
		if c.slug == slug {
			n++
		}
	}
	return n
}

func (h *Hub) remove(c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[c]; ok {
		c.cancel()
		delete(h.conns, c)
		slog.Info("websocket disconnected", "slug", c.slug)
	}
}
