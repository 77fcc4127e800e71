package mapper

import (
	"prism-brain-be/internal/dto"
	"prism-brain-be/internal/entity"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToOverview(p *entity.Project) *dto.ProjectOverviewResponse {
	if p == nil {
		return nil
	}

	sources := p.Sources
	if sources == nil {
		sources = []entity.SourceRecord{}
	}

	return &dto.ProjectOverviewResponse{
		Id:           p.Id,
		Name:         p.Name,
		CreatedAt:    p.CreatedAt,
		LastUpdated:  p.LastUpdated,
		TotalNotes:   len(p.Notes),
		TotalSources: len(p.Sources),
		Connections:  len(p.Connections),
		Diagrams:     len(p.Diagrams),
		Contributors: len(p.Contributors),
		Sources:      sources,
		HasInsights:  p.Insights != nil,
	}
}
