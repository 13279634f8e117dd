package http

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"asset_ops_server/pkg/colors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Bigscreen clients connect from the dashboard host; origin checks
		// are left to the reverse proxy.
		return true
	},
}

// WebSocketHub manages the bigscreen client connections and pushes asset
// status transitions to all of them.
type WebSocketHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
}

// WebSocketMessage represents a message sent through WebSocket
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// AssetStatusUpdate is the payload broadcast when an asset changes status.
type AssetStatusUpdate struct {
	AssetID     string `json:"asset_id"`
	AssetStatus string `json:"asset_status"`
}

// Global WebSocket hub instance
var WSHub *WebSocketHub

// NewWebSocketHub creates a new WebSocket hub
func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// InitializeWebSocket creates the global hub and starts its loop.
func InitializeWebSocket() {
	WSHub = NewWebSocketHub()
	go WSHub.Run()
}

// Run starts the WebSocket hub
func (h *WebSocketHub) Run() {
	colors.PrintServer("ws", "WebSocket Hub started - Ready for bigscreen connections")

	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			colors.PrintConnection("ws", "WebSocket client connected. Total clients: %d", len(h.clients))

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			h.mutex.Unlock()
			colors.PrintConnection("ws", "WebSocket client disconnected. Total clients: %d", len(h.clients))

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
					colors.PrintError("Error sending message to WebSocket client: %v", err)
					client.Close()
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// BroadcastAssetStatus pushes one asset status transition to every client.
func (h *WebSocketHub) BroadcastAssetStatus(assetID, status string) {
	message := WebSocketMessage{
		Type:      "asset_status",
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      AssetStatusUpdate{AssetID: assetID, AssetStatus: status},
	}

	payload, err := json.Marshal(message)
	if err != nil {
		colors.PrintError("Failed to marshal websocket message: %v", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		// nobody listening on the hub loop yet; drop rather than block
	}
}

// HandleWebSocket upgrades the HTTP connection and parks it in the hub.
func HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		colors.PrintError("WebSocket upgrade failed: %v", err)
		return
	}

	WSHub.register <- conn

	// Reader loop: the feed is one-way, but reading keeps ping/pong alive
	// and detects the disconnect.
	go func() {
		defer func() { WSHub.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}
