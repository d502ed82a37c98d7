package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/tieubaoca/ocr-be/service"
)

// WsHandler upgrades clients onto the job progress feed.
type WsHandler struct {
	manager  *service.WebSocketManager
	upgrader websocket.Upgrader
}

func NewWsHandler(manager *service.WebSocketManager) *WsHandler {
	return &WsHandler{
		manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (h *WsHandler) HandleProgress(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	h.manager.RegisterClient(conn)

	// Subscribers only listen; the read loop just detects disconnects.
	go func() {
		defer h.manager.UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				return
			}
		}
	}()
}
