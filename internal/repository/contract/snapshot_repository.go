package contract

import (
	"context"

	"github.com/google/uuid"

	"prism-brain-be/internal/model"
)

type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *model.ReportSnapshot) error
	FindByProject(ctx context.Context, projectId uuid.UUID, limit int) ([]*model.ReportSnapshot, error)
	Count(ctx context.Context) (int64, error)
}
