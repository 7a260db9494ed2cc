package ws

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Connection represents one dashboard WebSocket connection
type Connection struct {
	ID   string
	Send chan []byte
}

// Hub fans candidate events out to every connected dashboard. The run loop is
// the only owner of the connection set.
type Hub struct {
	conns map[*Connection]struct{}

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan []byte
	count      chan chan int
	done       chan struct{}
}

// NewHub creates a new WebSocket hub and starts its run loop
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan []byte, 256),
		count:      make(chan chan int),
		done:       make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.conns[conn] = struct{}{}
			log.Debug().Str("conn", conn.ID).Int("clients", len(h.conns)).Msg("dashboard connected")

		case conn := <-h.unregister:
			if _, ok := h.conns[conn]; ok {
				delete(h.conns, conn)
				close(conn.Send)
				log.Debug().Str("conn", conn.ID).Int("clients", len(h.conns)).Msg("dashboard disconnected")
			}

		case data := <-h.broadcast:
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}

		case reply := <-h.count:
			reply <- len(h.conns)

		case <-h.done:
			for conn := range h.conns {
				close(conn.Send)
			}
			h.conns = nil
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Broadcast sends an event to every dashboard (implements service.Broadcaster)
func (h *Hub) Broadcast(msgType string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("type", msgType).Msg("failed to encode event payload")
		return
	}
	data, _ := json.Marshal(&Message{Type: msgType, Payload: body})

	select {
	case h.broadcast <- data:
	case <-h.done:
	default:
		log.Warn().Str("type", msgType).Msg("event queue full, dropping event")
	}
}

// Clients returns the number of connected dashboards
func (h *Hub) Clients() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

// Close stops the run loop and closes every connection
func (h *Hub) Close() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}
