package dto

import "github.com/google/uuid"

type IngestBoardRequest struct {
	ProjectId uuid.UUID `json:"project_id" validate:"required"`
	URL       string    `json:"url" validate:"required"`
}

type IngestFileRequest struct {
	ProjectId uuid.UUID `json:"project_id" validate:"required"`
	Path      string    `json:"path" validate:"required"`
}

// IngestResult is the structured outcome of one ingestion call. Failures
// carry an error message and kind instead of bubbling an error past the
// ingestion boundary.
type IngestResult struct {
	Success     bool    `json:"success"`
	Notes       int     `json:"notes"`
	Connections int     `json:"connections,omitempty"`
	Diagrams    int     `json:"diagrams,omitempty"`
	Duration    float64 `json:"duration,omitempty"`
	Error       string  `json:"error,omitempty"`
	ErrorKind   string  `json:"error_kind,omitempty"`
}

// PublishRefreshMessage rides the in-process bus to trigger a background
// synthesis refresh after ingestion.
type PublishRefreshMessage struct {
	ProjectId uuid.UUID `json:"project_id"`
}
