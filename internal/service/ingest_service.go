package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"prism-brain-be/internal/dto"
	"prism-brain-be/internal/entity"
	"prism-brain-be/internal/pkg/logger"
	"prism-brain-be/internal/repository/memory"
	"prism-brain-be/internal/websocket"
	"prism-brain-be/pkg/aggregate"
	"prism-brain-be/pkg/connector"
	"prism-brain-be/pkg/connector/document"
	"prism-brain-be/pkg/connector/figma"
	"prism-brain-be/pkg/connector/transcribe"
	"prism-brain-be/pkg/events"
	pktNats "prism-brain-be/pkg/nats"
	"prism-brain-be/pkg/normalize"
)

type IIngestService interface {
	IngestBoard(ctx context.Context, req *dto.IngestBoardRequest) (*dto.IngestResult, error)
	IngestAudio(ctx context.Context, req *dto.IngestFileRequest) (*dto.IngestResult, error)
	IngestDocument(ctx context.Context, req *dto.IngestFileRequest) (*dto.IngestResult, error)
}

type ingestService struct {
	projects         *memory.ProjectRepository
	locker           *ProjectLocker
	normalizer       *normalize.Normalizer
	figma            *figma.Client
	transcriber      *transcribe.Client
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	hub              *websocket.Hub
	logger           logger.ILogger
}

func NewIngestService(
	projects *memory.ProjectRepository,
	locker *ProjectLocker,
	figmaClient *figma.Client,
	transcriber *transcribe.Client,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	hub *websocket.Hub,
	log logger.ILogger,
) IIngestService {
	return &ingestService{
		projects:         projects,
		locker:           locker,
		normalizer:       normalize.New(),
		figma:            figmaClient,
		transcriber:      transcriber,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		hub:              hub,
		logger:           log,
	}
}

// stagedSource holds everything one ingestion produced before any of it
// touches the project. A failure mid-extraction leaves the project
// untouched; a commit applies the whole source at once.
type stagedSource struct {
	record      entity.SourceRecord
	notes       []entity.Note
	connections []entity.Connection
	diagrams    []entity.Shape
}

func (s *ingestService) IngestBoard(ctx context.Context, req *dto.IngestBoardRequest) (*dto.IngestResult, error) {
	project, found := s.projects.Get(req.ProjectId)
	if !found {
		return nil, ErrProjectNotFound
	}

	// A malformed URL reports before a missing credential.
	fileKey, err := figma.ExtractFileKey(req.URL)
	if err != nil {
		return failResult(err), nil
	}

	if err := s.figma.Available(); err != nil {
		return failResult(err), nil
	}

	file, err := s.figma.FetchFile(ctx, fileKey)
	if err != nil {
		return failResult(err), nil
	}

	res := s.normalizer.Board(file.Name, file)

	s.commit(ctx, project, stagedSource{
		record: entity.SourceRecord{
			Type:            entity.SourceFigmaBoard,
			Name:            file.Name,
			URL:             req.URL,
			ConnectionCount: len(res.Connections),
			DiagramCount:    len(res.Diagrams),
		},
		notes:       res.Notes,
		connections: res.Connections,
		diagrams:    res.Diagrams,
	})

	return &dto.IngestResult{
		Success:     true,
		Notes:       len(res.Notes),
		Connections: len(res.Connections),
		Diagrams:    len(res.Diagrams),
	}, nil
}

func (s *ingestService) IngestAudio(ctx context.Context, req *dto.IngestFileRequest) (*dto.IngestResult, error) {
	project, found := s.projects.Get(req.ProjectId)
	if !found {
		return nil, ErrProjectNotFound
	}

	if err := s.transcriber.Available(); err != nil {
		return failResult(err), nil
	}

	transcript, err := s.transcriber.Transcribe(ctx, req.Path)
	if err != nil {
		return failResult(err), nil
	}

	name := filepath.Base(req.Path)
	notes := s.normalizer.Segments(name, transcript.Segments)

	s.commit(ctx, project, stagedSource{
		record: entity.SourceRecord{
			Type:     entity.SourceAudio,
			Name:     name,
			Duration: transcript.Duration,
		},
		notes: notes,
	})

	return &dto.IngestResult{
		Success:  true,
		Notes:    len(notes),
		Duration: transcript.Duration,
	}, nil
}

func (s *ingestService) IngestDocument(ctx context.Context, req *dto.IngestFileRequest) (*dto.IngestResult, error) {
	project, found := s.projects.Get(req.ProjectId)
	if !found {
		return nil, ErrProjectNotFound
	}

	name := filepath.Base(req.Path)
	var staged stagedSource

	switch ext := strings.ToLower(filepath.Ext(req.Path)); ext {
	case ".pdf":
		pages, err := document.ExtractPDF(req.Path)
		if err != nil {
			return failResult(err), nil
		}
		staged = stagedSource{
			record: entity.SourceRecord{Type: entity.SourcePDF, Name: name, Pages: len(pages)},
			notes:  s.normalizer.PDFPages(name, pages),
		}

	case ".ppt", ".pptx":
		slides, err := document.ExtractSlides(req.Path)
		if err != nil {
			return failResult(err), nil
		}
		staged = stagedSource{
			record: entity.SourceRecord{Type: entity.SourceSlideDeck, Name: name, Slides: len(slides)},
			notes:  s.normalizer.Slides(name, slides),
		}

	default:
		// Anything else is read as plain text.
		text, err := document.ReadText(req.Path)
		if err != nil {
			return failResult(err), nil
		}
		staged = stagedSource{
			record: entity.SourceRecord{Type: entity.SourcePlainDocument, Name: name},
			notes:  s.normalizer.PlainText(name, text),
		}
	}

	s.commit(ctx, project, staged)

	return &dto.IngestResult{Success: true, Notes: len(staged.notes)}, nil
}

// commit applies one staged source to its project under the project lock,
// then kicks off the background refresh and activity fan-out.
func (s *ingestService) commit(ctx context.Context, project *entity.Project, staged stagedSource) {
	staged.record.AddedAt = time.Now()
	staged.record.NoteCount = len(staged.notes)

	unlock := s.locker.Lock(project.Id)
	project.Sources = append(project.Sources, staged.record)
	project.Notes = append(project.Notes, staged.notes...)
	project.Connections = append(project.Connections, staged.connections...)
	project.Diagrams = append(project.Diagrams, staged.diagrams...)
	aggregate.AppendTimeline(project, staged.notes)
	aggregate.AppendContributors(project, staged.notes)
	project.LastUpdated = time.Now()
	s.projects.Save(project)
	unlock()

	s.logger.Info("IngestService", "Source committed", map[string]interface{}{
		"project_id": project.Id,
		"source":     staged.record.Type,
		"name":       staged.record.Name,
		"notes":      len(staged.notes),
	})

	payload, err := json.Marshal(dto.PublishRefreshMessage{ProjectId: project.Id})
	if err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("IngestService", "Failed to queue synthesis refresh", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.EventSourceIngested,
			Data: map[string]interface{}{
				"project_id":  project.Id,
				"source_type": staged.record.Type,
				"source_name": staged.record.Name,
				"notes":       len(staged.notes),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SOURCE_INGESTED event: %v\n", err)
		}
	}

	s.hub.Broadcast(dto.ActivityEvent{
		Type:       events.EventSourceIngested,
		ProjectId:  project.Id,
		Source:     string(staged.record.Type),
		SourceName: staged.record.Name,
		Notes:      len(staged.notes),
		OccurredAt: time.Now(),
	})
}

func failResult(err error) *dto.IngestResult {
	return &dto.IngestResult{
		Success:   false,
		Error:     err.Error(),
		ErrorKind: string(connector.KindOf(err)),
	}
}
