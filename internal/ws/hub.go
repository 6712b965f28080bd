package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event types pushed to open consoles.
const (
	EventStoreCreated       = "store_created"
	EventStoreUpdated       = "store_updated"
	EventStoreStatusChanged = "store_status_changed"
	EventUserCreated        = "user_created"
)

// Event is one message broadcast to every connected console.
type Event struct {
	Type    string    `json:"type"`
	Actor   string    `json:"actor,omitempty"`
	Payload any       `json:"payload"`
	SentAt  time.Time `json:"sent_at"`
}

// client is a connected console.
type client struct {
	id   string
	conn *websocket.Conn
}

type Hub struct {
	clients    map[*websocket.Conn]*client
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	done       chan struct{}
	mutex      sync.Mutex
	logger     zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]*client),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		logger:     logger.With().Str("component", "ws_hub").Logger(),
	}
}

// Run owns the client set until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			c := &client{id: uuid.NewString(), conn: conn}
			h.mutex.Lock()
			h.clients[conn] = c
			h.mutex.Unlock()
			h.logger.Debug().Str("client_id", c.id).Msg("console connected")

		case conn := <-h.unregister:
			h.mutex.Lock()
			if c, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
				h.logger.Debug().Str("client_id", c.id).Msg("console disconnected")
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.Lock()
			for conn, c := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					h.logger.Debug().Err(err).Str("client_id", c.id).Msg("dropping console")
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()

		case <-h.done:
			h.mutex.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mutex.Unlock()
			return
		}
	}
}

// Stop ends Run and closes every connection.
func (h *Hub) Stop() {
	close(h.done)
}

// Clients returns the number of connected consoles.
func (h *Hub) Clients() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Publish queues an event for broadcast. It never blocks the caller; when the queue is
// full the event is dropped and consoles catch up on their next reload.
func (h *Hub) Publish(eventType, actor string, payload any) {
	msg, err := json.Marshal(Event{Type: eventType, Actor: actor, Payload: payload, SentAt: time.Now()})
	if err != nil {
		h.logger.Error().Err(err).Str("type", eventType).Msg("encode event")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn().Str("type", eventType).Msg("event queue full, dropping event")
	}
}

// Serve registers conn and blocks until the console goes away. After Stop it returns
// at once.
func (h *Hub) Serve(conn *websocket.Conn) {
	if !h.add(conn) {
		return
	}
	defer h.remove(conn)

	for {
		// Keep alive loop
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// add hands conn to Run. It reports false when the hub has stopped.
func (h *Hub) add(conn *websocket.Conn) bool {
	select {
	case h.register <- conn:
		return true
	case <-h.done:
		return false
	}
}

// remove hands conn back to Run. Once the hub has stopped Run has already closed it.
func (h *Hub) remove(conn *websocket.Conn) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}
