package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEvent is broadcast to websocket subscribers of a project while
// ingestion and synthesis progress.
type ActivityEvent struct {
	Type       string    `json:"type"` // SOURCE_INGESTED | PROJECT_SYNTHESIZED
	ProjectId  uuid.UUID `json:"project_id"`
	Source     string    `json:"source,omitempty"`
	SourceName string    `json:"source_name,omitempty"`
	Notes      int       `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
