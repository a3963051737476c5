// Package events broadcasts domain events to live websocket subscribers.
package events

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
)

const (
	// writeWait bounds a single write to a subscriber.
	writeWait = 5 * time.Second
	// bufferSize is the number of events queued for broadcast before new ones are dropped.
	bufferSize = 256
)

// Publisher accepts events for delivery to live subscribers. Publish never blocks.
type Publisher interface {
	Publish(ctx context.Context, e domain.Event)
}

// Nop is a Publisher that drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, domain.Event) {}

// Hub keeps the set of connected websocket clients and broadcasts events to them.
type Hub struct {
	upgrader  websocket.Upgrader
	broadcast chan []byte

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	closed  bool
}

// NewHub creates a hub. Run must be called for events to be delivered.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the dashboard is served from another origin; CORS is enforced on /api.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		broadcast: make(chan []byte, bufferSize),
		clients:   make(map[*websocket.Conn]struct{}),
	}
}

// Run broadcasts published events until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	ctx = logger.Named(ctx, "events")
	for {
		select {
		case <-ctx.Done():
			h.shutdown()

			return
		case msg := <-h.broadcast:
			h.send(ctx, msg)
		}
	}
}

// Publish queues e for broadcast. Events are dropped when the queue is full.
func (h *Hub) Publish(ctx context.Context, e domain.Event) {
	msg, err := json.Marshal(e)
	if err != nil {
		logger.Error(ctx, "could not marshal event", zap.Error(err), zap.String("type", string(e.Type)))

		return
	}

	select {
	case h.broadcast <- msg:
	default:
		logger.Warn(ctx, "event queue full, dropping event", zap.String("type", string(e.Type)))
	}
}

// Subscribe upgrades the request to a websocket and registers the client.
// The connection is read only to notice disconnects.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote an error response.
		logger.Warn(ctx, "could not upgrade websocket", zap.Error(err))

		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()

		return
	}
	h.clients[conn] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	logger.Debug(ctx, "websocket client connected", zap.Int("clients", total))

	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Debug(ctx, "websocket read error", zap.Error(err))
				}

				return
			}
		}
	}()
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

func (h *Hub) send(ctx context.Context, msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debug(ctx, "dropping websocket client", zap.Error(err))
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, conn)
	_ = conn.Close()
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for conn := range h.clients {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		delete(h.clients, conn)
	}
}
