package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches one websocket connection to a project's activity feed.
func ServeWs(hub *Hub, c *websocket.Conn, projectID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, ProjectID: projectID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // runs on the handler goroutine
}
