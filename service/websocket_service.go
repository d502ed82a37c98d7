package service

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/tieubaoca/ocr-be/types"
)

// WebSocketManager fans job progress updates out to connected clients.
type WebSocketManager struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Start runs the manager loop in its own goroutine.
func (m *WebSocketManager) Start() {
	go func() {
		for {
			select {
			case client := <-m.register:
				m.mu.Lock()
				m.clients[client] = true
				m.mu.Unlock()
				log.Printf("New progress subscriber connected. Total clients: %d", len(m.clients))
			case client := <-m.unregister:
				m.mu.Lock()
				if _, ok := m.clients[client]; ok {
					delete(m.clients, client)
					client.Close()
				}
				m.mu.Unlock()
			case message := <-m.broadcast:
				m.mu.Lock()
				for client := range m.clients {
					if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
						log.Printf("Error sending message to client: %v", err)
						client.Close()
						delete(m.clients, client)
					}
				}
				m.mu.Unlock()
			}
		}
	}()
}

// BroadcastJobUpdate sends the current job state to all subscribers.
// Drops the update when no one can keep up; progress is best-effort.
func (m *WebSocketManager) BroadcastJobUpdate(job *types.ConversionJob) {
	update := types.WebSocketJobUpdate{
		Type: types.TypeWebsocketJobUpdate,
		Job:  job,
	}
	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Failed to marshal job update: %v", err)
		return
	}
	select {
	case m.broadcast <- data:
	default:
	}
}

func (m *WebSocketManager) RegisterClient(conn *websocket.Conn) {
	m.register <- conn
}

func (m *WebSocketManager) UnregisterClient(conn *websocket.Conn) {
	m.unregister <- conn
}
