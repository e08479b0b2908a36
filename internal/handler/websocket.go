package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "github.com/Nazehs/trivia-app/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler serves the live question feed
type WebSocketHandler struct {
	hub *ws.Hub
	log *slog.Logger
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *ws.Hub, log *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		log: log,
	}
}

// Register registers the feed route
func (h *WebSocketHandler) Register(e *echo.Echo) {
	e.GET("/ws", h.HandleWebSocket)
}

// HandleWebSocket upgrades the connection and subscribes it to question events
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	// Upgrade writes its own error response on failure
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.DebugContext(c.Request().Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return nil
	}

	ws.NewClient(h.hub, conn).Start()
	return nil
}
