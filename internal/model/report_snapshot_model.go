package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReportSnapshot archives one synthesis run. Best-effort history: the
// in-memory project registry remains the source of truth.
type ReportSnapshot struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectId    uuid.UUID `gorm:"type:uuid;index"`
	ProjectName  string
	TotalNotes   int
	TotalSources int
	Report       datatypes.JSON
	CreatedAt    time.Time
}
