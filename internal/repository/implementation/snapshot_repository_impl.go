package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prism-brain-be/internal/model"
	"prism-brain-be/internal/repository/contract"
)

type SnapshotRepositoryImpl struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) contract.SnapshotRepository {
	return &SnapshotRepositoryImpl{db: db}
}

func (r *SnapshotRepositoryImpl) Create(ctx context.Context, snapshot *model.ReportSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *SnapshotRepositoryImpl) FindByProject(ctx context.Context, projectId uuid.UUID, limit int) ([]*model.ReportSnapshot, error) {
	var snapshots []*model.ReportSnapshot
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectId).
		Order("created_at DESC").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *SnapshotRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ReportSnapshot{}).Count(&count).Error
	return count, err
}
