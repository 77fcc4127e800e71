package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"prism-brain-be/internal/dto"
	"prism-brain-be/internal/entity"
	"prism-brain-be/internal/mapper"
	"prism-brain-be/internal/model"
	"prism-brain-be/internal/pkg/logger"
	"prism-brain-be/internal/pkg/mailer"
	"prism-brain-be/internal/repository/contract"
	"prism-brain-be/internal/repository/memory"
	"prism-brain-be/internal/websocket"
	"prism-brain-be/pkg/events"
	pktNats "prism-brain-be/pkg/nats"
	"prism-brain-be/pkg/synthesis"
)

var (
	ErrProjectNotFound = errors.New("project not found")

	// ErrSharingDisabled means no SMTP credentials were configured.
	ErrSharingDisabled = errors.New("report sharing is not configured")
)

type IProjectService interface {
	Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ProjectOverviewResponse, error)
	List(ctx context.Context) ([]*dto.ProjectOverviewResponse, error)
	Synthesize(ctx context.Context, id uuid.UUID) (*entity.Report, error)
	Share(ctx context.Context, id uuid.UUID, req *dto.ShareReportRequest) error
}

type projectService struct {
	projects       *memory.ProjectRepository
	snapshots      contract.SnapshotRepository // nil when no archive database is configured
	locker         *ProjectLocker
	emailService   mailer.IEmailService // nil when SMTP is not configured
	eventPublisher *pktNats.Publisher
	hub            *websocket.Hub
	mapper         *mapper.ProjectMapper
	logger         logger.ILogger
}

func NewProjectService(
	projects *memory.ProjectRepository,
	snapshots contract.SnapshotRepository,
	locker *ProjectLocker,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	hub *websocket.Hub,
	log logger.ILogger,
) IProjectService {
	return &projectService{
		projects:       projects,
		snapshots:      snapshots,
		locker:         locker,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		hub:            hub,
		mapper:         mapper.NewProjectMapper(),
		logger:         log,
	}
}

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error) {
	project := entity.NewProject(req.Name)
	s.projects.Save(project)

	s.logger.Info("ProjectService", "Project created", map[string]interface{}{
		"project_id": project.Id,
		"name":       project.Name,
	})

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.EventProjectCreated,
			Data: map[string]interface{}{
				"project_id": project.Id,
				"name":       project.Name,
			},
			OccurredAt: time.Now(),
		}
		// Events are auxiliary, the request does not fail on a bus outage.
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish PROJECT_CREATED event: %v\n", err)
		}
	}

	return &dto.CreateProjectResponse{Id: project.Id}, nil
}

func (s *projectService) Show(ctx context.Context, id uuid.UUID) (*dto.ProjectOverviewResponse, error) {
	project, found := s.projects.Get(id)
	if !found {
		return nil, ErrProjectNotFound
	}
	return s.mapper.ToOverview(project), nil
}

// List returns overviews for every project, newest first.
func (s *projectService) List(ctx context.Context) ([]*dto.ProjectOverviewResponse, error) {
	projects := s.projects.List()
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})

	overviews := make([]*dto.ProjectOverviewResponse, 0, len(projects))
	for _, project := range projects {
		overviews = append(overviews, s.mapper.ToOverview(project))
	}
	return overviews, nil
}

func (s *projectService) Synthesize(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	project, found := s.projects.Get(id)
	if !found {
		return nil, ErrProjectNotFound
	}

	unlock := s.locker.Lock(project.Id)
	report := synthesis.Synthesize(project)
	s.projects.Save(project)
	unlock()

	s.archiveSnapshot(ctx, project, report)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.EventProjectSynthesized,
			Data: map[string]interface{}{
				"project_id":  project.Id,
				"total_notes": report.TotalNotes,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish PROJECT_SYNTHESIZED event: %v\n", err)
		}
	}

	s.hub.Broadcast(dto.ActivityEvent{
		Type:       events.EventProjectSynthesized,
		ProjectId:  project.Id,
		Notes:      report.TotalNotes,
		OccurredAt: time.Now(),
	})

	return report, nil
}

func (s *projectService) Share(ctx context.Context, id uuid.UUID, req *dto.ShareReportRequest) error {
	if s.emailService == nil {
		return ErrSharingDisabled
	}

	project, found := s.projects.Get(id)
	if !found {
		return ErrProjectNotFound
	}

	report := project.Insights
	if report == nil {
		var err error
		report, err = s.Synthesize(ctx, id)
		if err != nil {
			return err
		}
	}

	if err := s.emailService.SendReport(req.Email, project.Name, report); err != nil {
		return err
	}

	s.logger.Info("ProjectService", "Report shared", map[string]interface{}{
		"project_id": project.Id,
		"recipient":  req.Email,
	})
	return nil
}

// archiveSnapshot persists the synthesized report when the archive
// database is configured. Archive failures are logged, never surfaced.
func (s *projectService) archiveSnapshot(ctx context.Context, project *entity.Project, report *entity.Report) {
	if s.snapshots == nil {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		s.logger.Warn("ProjectService", "Failed to marshal report snapshot", map[string]interface{}{"error": err.Error()})
		return
	}

	snapshot := &model.ReportSnapshot{
		Id:           uuid.New(),
		ProjectId:    project.Id,
		ProjectName:  project.Name,
		TotalNotes:   report.TotalNotes,
		TotalSources: report.TotalSources,
		Report:       datatypes.JSON(data),
		CreatedAt:    time.Now(),
	}
	if err := s.snapshots.Create(ctx, snapshot); err != nil {
		s.logger.Warn("ProjectService", "Failed to archive report snapshot", map[string]interface{}{
			"project_id": project.Id,
			"error":      err.Error(),
		})
	}
}
