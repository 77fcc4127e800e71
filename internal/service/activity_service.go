package service

import (
	"context"

	"prism-brain-be/internal/pkg/logger"
	"prism-brain-be/pkg/events"
	pktNats "prism-brain-be/pkg/nats"
)

// ActivityService tails every pipeline event off the NATS bus into the
// activity audit log, so the trail survives process restarts even though
// projects themselves are in-memory.
type ActivityService struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewActivityService(sub *pktNats.Subscriber, log logger.ILogger) *ActivityService {
	return &ActivityService{
		subscriber: sub,
		logger:     log,
	}
}

func (s *ActivityService) Start() {
	// Subscribe to all pipeline events with a durable consumer
	err := s.subscriber.Subscribe("prism.events.>", "activity-audit-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("ActivityService", "Failed to subscribe to events", map[string]interface{}{"error": err.Error()})
	}
}

func (s *ActivityService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("Activity", event.EventType(), event.Payload())
	return nil
}
