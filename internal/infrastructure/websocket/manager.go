package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"laporkota/internal/domain/entity"
)

// Client represents a WebSocket connection client
type Client struct {
	ID     string
	UserID string
	Admin  bool
	Conn   *websocket.Conn
	Send   chan []byte
}

type complaintsEvent struct {
	Type  string              `json:"type"`
	Items []*entity.Complaint `json:"items"`
}

// Manager manages all active WebSocket connections and fans complaint
// snapshots out to them. Admin clients receive the full set, regular clients
// only their own records.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	updates    chan []*entity.Complaint
	mutex      sync.RWMutex
}

// NewManager creates a new WebSocket connection manager
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		updates:    make(chan []*entity.Complaint, 8),
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				log.Printf("Client registered: %s (user %s)", client.ID, client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					close(client.Send)
				}
				m.mutex.Unlock()
				log.Printf("Client unregistered: %s", client.ID)

			case complaints := <-m.updates:
				m.dispatch(complaints)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Publish hands a fresh complaint snapshot to the manager. Called by the
// Firestore watch loop on every change notification; there is no debouncing.
func (m *Manager) Publish(complaints []*entity.Complaint) {
	m.updates <- complaints
}

func (m *Manager) dispatch(complaints []*entity.Complaint) {
	m.mutex.RLock()
	clients := make([]*Client, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.mutex.RUnlock()

	for _, client := range clients {
		visible := complaints
		if !client.Admin {
			visible = make([]*entity.Complaint, 0)
			for _, c := range complaints {
				if c.UserID == client.UserID {
					visible = append(visible, c)
				}
			}
		}

		message, err := json.Marshal(complaintsEvent{Type: "complaints", Items: visible})
		if err != nil {
			log.Printf("failed to encode complaints event: %v", err)
			continue
		}

		select {
		case client.Send <- message:
		default:
			m.mutex.Lock()
			delete(m.clients, client.ID)
			m.mutex.Unlock()
			close(client.Send)
		}
	}
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		// Clients only listen; inbound frames are drained to detect closes.
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
}
