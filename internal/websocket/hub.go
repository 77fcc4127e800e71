package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"prism-brain-be/internal/dto"
	"prism-brain-be/internal/pkg/logger"
)

const activityChannel = "project_activity"

// Hub fans ingestion/synthesis activity out to the websocket clients
// watching each project. Redis pub/sub relays events across instances;
// without Redis the hub still serves local clients.
type Hub struct {
	// ProjectID -> subscribed clients (a dashboard may open several tabs).
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	// Identifies this instance on the Redis channel so it can skip the
	// relayed copies of its own broadcasts.
	instanceId string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ProjectID] = append(h.clients[client.ProjectID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client subscribed", map[string]interface{}{"project_id": client.ProjectID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.ProjectID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.ProjectID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.ProjectID]) == 0 {
					delete(h.clients, client.ProjectID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast delivers an activity event to every local watcher of its
// project, then relays it over Redis for other instances.
func (h *Hub) Broadcast(event dto.ActivityEvent) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "activity",
		"data": event,
	})

	h.deliverLocal(event.ProjectId, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"instance_id": h.instanceId,
			"project_id":  event.ProjectId.String(),
			"message":     json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), activityChannel, payload)
	}
}

// deliverLocal fans out under the read lock so the unregister branch,
// which closes Send under the write lock, can never interleave with a
// send. The unregister branch is the only closer of Send.
func (h *Hub) deliverLocal(projectID uuid.UUID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[projectID] {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"project_id": projectID})
			// Hand off asynchronously; blocking here while holding the
			// read lock would deadlock against the unregister branch.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to the shared activity channel and
	// delivers only to projects it holds clients for.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, activityChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.relay([]byte(msg.Payload))
	}
}

// relay delivers one Redis-published activity payload, skipping the copies
// this instance published itself (those were already delivered locally).
func (h *Hub) relay(raw []byte) {
	var payload struct {
		InstanceID string          `json:"instance_id"`
		ProjectID  string          `json:"project_id"`
		Message    json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("Redis msg parse error: %v", err)
		return
	}

	if payload.InstanceID == h.instanceId {
		return
	}

	projectID, err := uuid.Parse(payload.ProjectID)
	if err != nil {
		return
	}
	h.deliverLocal(projectID, payload.Message)
}
