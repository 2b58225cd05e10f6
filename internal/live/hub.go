// Package live fans out event live-score updates to websocket subscribers.
package live

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = 10 * time.Second

// Message is what subscribers of an event receive.
type Message struct {
	EventID  uint `json:"eventId"`
	LiveData any  `json:"liveData"`
}

// Hub keeps the websocket subscribers of each event. Only the hub's own
// goroutine writes to registered connections.
type Hub struct {
	clients   map[uint]map[*websocket.Conn]bool
	broadcast chan Message
	mu        sync.Mutex
	closed    bool
}

func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[uint]map[*websocket.Conn]bool),
		broadcast: make(chan Message, 100),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for msg := range h.broadcast {
		for _, conn := range h.subscribers(msg.EventID) {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"event_id": msg.EventID,
					"conn_ptr": fmt.Sprintf("%p", conn),
				}).Info("live subscriber write failed, unregistering")
				h.Unregister(msg.EventID, conn)
				conn.Close()
			}
		}
	}
}

func (h *Hub) subscribers(eventID uint) []*websocket.Conn {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := make([]*websocket.Conn, 0, len(h.clients[eventID]))
	for c := range h.clients[eventID] {
		conns = append(conns, c)
	}
	return conns
}

func (h *Hub) Register(eventID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[eventID]; !ok {
		h.clients[eventID] = make(map[*websocket.Conn]bool)
	}
	h.clients[eventID][conn] = true
	logrus.WithFields(logrus.Fields{
		"event_id": eventID,
		"conn_ptr": fmt.Sprintf("%p", conn),
	}).Debug("live subscriber registered")
}

func (h *Hub) Unregister(eventID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.clients[eventID]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(h.clients, eventID)
		}
	}
}

// Subscribers returns how many connections follow eventID.
func (h *Hub) Subscribers(eventID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[eventID])
}

// Publish queues payload for the subscribers of eventID. It never blocks:
// the update is dropped when the queue is full.
func (h *Hub) Publish(eventID uint, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	select {
	case h.broadcast <- Message{EventID: eventID, LiveData: payload}:
	default:
		logrus.WithField("event_id", eventID).Warn("live broadcast channel full, dropping update")
	}
}

// Close stops the hub. Later publishes are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.closed {
		h.closed = true
		close(h.broadcast)
	}
}
