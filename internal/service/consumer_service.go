package service

import (
	"context"
	"encoding/json"

	"craftguide-be/internal/dto"
	"craftguide-be/internal/pkg/logger"
	"craftguide-be/pkg/knowledge"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService turns KNOWLEDGE_CITED messages into view counts.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	tracker    knowledge.Tracker
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	tracker knowledge.Tracker,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		tracker:    tracker,
		logger:     logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
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
	var payload dto.KnowledgeCitedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("EVENTS", "Failed to unmarshal citation message", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if err := cs.tracker.RecordViews(ctx, payload.ArticleIds); err != nil {
		cs.logger.Warn("EVENTS", "Failed to record article views", map[string]interface{}{
			"error":    err.Error(),
			"query_id": payload.QueryId.String(),
		})
		// View counts are best effort; redelivery would spin while the store is down.
		msg.Ack()
		return
	}

	cs.logger.Debug("EVENTS", "Recorded article views", map[string]interface{}{
		"query_id": payload.QueryId.String(),
		"articles": len(payload.ArticleIds),
	})
	msg.Ack()
}
