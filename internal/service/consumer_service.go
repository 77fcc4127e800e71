package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"prism-brain-be/internal/dto"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the refresh topic and re-synthesizes each
// project after ingestion so the report is warm before anyone asks.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	projectService IProjectService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	projectService IProjectService,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		projectService: projectService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishRefreshMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal refresh message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if _, err := cs.projectService.Synthesize(ctx, payload.ProjectId); err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			log.Printf("[WARN] Refresh for unknown project %s", payload.ProjectId)
			msg.Ack() // Project gone? Ack.
			return
		}
		log.Printf("[ERROR] Failed to refresh project %s: %v", payload.ProjectId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	log.Printf("[INFO] Refreshed synthesis for project %s", payload.ProjectId)
	msg.Ack()
}
