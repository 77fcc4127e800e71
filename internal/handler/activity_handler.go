package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"prism-brain-be/internal/pkg/logger"
	internalWS "prism-brain-be/internal/websocket"
)

// ActivityHandler exposes the live activity feed over websocket. One
// connection watches exactly one project.
type ActivityHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewActivityHandler(hub *internalWS.Hub, log logger.ILogger) *ActivityHandler {
	return &ActivityHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *ActivityHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/activity/v1")
	g.Get("/ws/:projectId", h.ServeWs)
}

// ServeWs upgrades the request and attaches it to the project's feed.
func (h *ActivityHandler) ServeWs(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ActivityHandler", "Starting WebSocket session", map[string]interface{}{"project_id": projectID})
			internalWS.ServeWs(h.hub, conn, projectID)
			h.logger.Info("ActivityHandler", "WebSocket session ended", map[string]interface{}{"project_id": projectID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
