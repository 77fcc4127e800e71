package websocket

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"prism-brain-be/internal/dto"
	"prism-brain-be/internal/pkg/logger"
)

func testHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil, logger.NewZapLogger(filepath.Join(t.TempDir(), "ws.log"), false))
	go hub.Run()
	return hub
}

func registerClient(t *testing.T, hub *Hub, projectID uuid.UUID, buffer int) *Client {
	t.Helper()
	client := &Client{Hub: hub, ProjectID: projectID, Send: make(chan []byte, buffer)}
	hub.register <- client

	assert.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		for _, c := range hub.clients[projectID] {
			if c == client {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
	return client
}

func clientCount(hub *Hub, projectID uuid.UUID) int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.clients[projectID])
}

func TestBroadcastDropsSlowClientWithoutPanic(t *testing.T) {
	hub := testHub(t)
	projectID := uuid.New()

	slow := registerClient(t, hub, projectID, 0) // never drained
	healthy := registerClient(t, hub, projectID, 8)

	event := dto.ActivityEvent{Type: "SOURCE_INGESTED", ProjectId: projectID, OccurredAt: time.Now()}
	hub.Broadcast(event)

	// The slow client is unregistered and its channel closed exactly once.
	assert.Eventually(t, func() bool {
		select {
		case _, open := <-slow.Send:
			return !open
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		return clientCount(hub, projectID) == 1
	}, time.Second, 5*time.Millisecond)

	// The hub goroutine survived the drop and keeps delivering.
	hub.Broadcast(event)
	assert.Eventually(t, func() bool {
		return len(healthy.Send) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestRelaySkipsOwnBroadcasts(t *testing.T) {
	hub := testHub(t)
	projectID := uuid.New()
	client := registerClient(t, hub, projectID, 8)

	message, _ := json.Marshal(map[string]interface{}{"type": "activity"})

	own, _ := json.Marshal(map[string]interface{}{
		"instance_id": hub.instanceId,
		"project_id":  projectID.String(),
		"message":     json.RawMessage(message),
	})
	hub.relay(own)
	assert.Empty(t, client.Send)

	foreign, _ := json.Marshal(map[string]interface{}{
		"instance_id": uuid.NewString(),
		"project_id":  projectID.String(),
		"message":     json.RawMessage(message),
	})
	hub.relay(foreign)
	assert.Len(t, client.Send, 1)
}
