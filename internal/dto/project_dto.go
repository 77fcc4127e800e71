package dto

import (
	"time"

	"github.com/google/uuid"

	"prism-brain-be/internal/entity"
)

type CreateProjectRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateProjectResponse struct {
	Id uuid.UUID `json:"id"`
}

// ProjectOverviewResponse is the lightweight project view; the full note
// list only travels inside the synthesis report.
type ProjectOverviewResponse struct {
	Id           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	CreatedAt    time.Time             `json:"created_at"`
	LastUpdated  time.Time             `json:"last_updated"`
	TotalNotes   int                   `json:"total_notes"`
	TotalSources int                   `json:"total_sources"`
	Connections  int                   `json:"connections"`
	Diagrams     int                   `json:"diagrams"`
	Contributors int                   `json:"contributors"`
	Sources      []entity.SourceRecord `json:"sources"`
	HasInsights  bool                  `json:"has_insights"`
}

type ShareReportRequest struct {
	Email string `json:"email" validate:"required,email"`
}
