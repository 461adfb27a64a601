package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

type StatusEvent struct {
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}

// client wraps a socket with a write mutex; gorilla/websocket allows only one
// concurrent writer per connection.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) send(ev StatusEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(ev)
}

// Hub fans order-status events out to the owning customer's open sockets.
type Hub struct {
	mu    sync.RWMutex
	conns map[uint]map[*websocket.Conn]*client
}

func NewHub() *Hub {
	return &Hub{conns: make(map[uint]map[*websocket.Conn]*client)}
}

func (h *Hub) Register(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]*client)
	}
	h.conns[userID][conn] = &client{conn: conn}
}

func (h *Hub) Unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[userID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.conns, userID)
		}
	}
	conn.Close()
}

// Notify never blocks order processing: write failures just drop the socket.
func (h *Hub) Notify(userID uint, ev StatusEvent) {
	h.mu.RLock()
	var targets []*client
	for _, c := range h.conns[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(ev); err != nil {
			h.Unregister(userID, c.conn)
		}
	}
}
