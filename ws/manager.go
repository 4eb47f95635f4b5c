package ws

import (
	"encoding/json"
	"sync"
	"time"

	"blog-server/entities"

	"github.com/gorilla/websocket"
)

// Event is pushed to every feed subscriber when a blog mutates.
type Event struct {
	Action string        `json:"action"` // created | updated | deleted
	Blog   entities.Blog `json:"blog"`
}

const (
	// sendBuffer bounds how far a subscriber may fall behind before it
	// is dropped.
	sendBuffer = 16

	writeTimeout = 10 * time.Second
)

// Manager keeps track of active feed subscriber connections. Each
// subscriber gets a bounded send queue drained by its own writer
// goroutine, so a peer that stops reading never blocks a broadcaster.
type Manager struct {
	mu          sync.RWMutex
	subscribers map[*websocket.Conn]chan []byte
}

func NewManager() *Manager {
	return &Manager{subscribers: make(map[*websocket.Conn]chan []byte)}
}

// Register adds a subscriber connection and starts its writer.
func (m *Manager) Register(conn *websocket.Conn) {
	ch := make(chan []byte, sendBuffer)

	m.mu.Lock()
	m.subscribers[conn] = ch
	m.mu.Unlock()

	go m.writeLoop(conn, ch)
}

// Unregister removes and closes a subscriber connection. Safe to call
// more than once for the same connection.
func (m *Manager) Unregister(conn *websocket.Conn) {
	m.mu.Lock()
	ch, ok := m.subscribers[conn]
	if ok {
		delete(m.subscribers, conn)
	}
	m.mu.Unlock()

	if ok {
		close(ch)
		_ = conn.Close()
	}
}

// Broadcast queues the event for every subscriber. Delivery is best
// effort: a subscriber whose queue is full is dropped on the spot, a
// subscriber whose write fails is dropped by its writer. The caller is
// never blocked on a peer's socket.
func (m *Manager) Broadcast(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	var stalled []*websocket.Conn

	m.mu.RLock()
	for conn, ch := range m.subscribers {
		select {
		case ch <- payload:
		default:
			stalled = append(stalled, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range stalled {
		m.Unregister(conn)
	}
}

// Count returns the number of active subscribers.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers)
}

// writeLoop drains the subscriber's queue onto the wire until the queue
// is closed or a write fails.
func (m *Manager) writeLoop(conn *websocket.Conn, ch chan []byte) {
	for payload := range ch {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			m.Unregister(conn)
			return
		}
	}
}
