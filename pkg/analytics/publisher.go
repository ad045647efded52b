package analytics

import (
	"context"

	"craftguide-be/internal/pkg/logger"
	pkgEvents "craftguide-be/pkg/events"
	"craftguide-be/pkg/rag/response"

	"github.com/google/uuid"
)

// Sink is anything that can ship an event, usually *nats.Publisher.
type Sink interface {
	Publish(ctx context.Context, event pkgEvents.Event) error
}

// Publisher emits guidance analytics. Failures are logged, never returned.
type Publisher interface {
	PublishGuidanceComposed(ctx context.Context, userId uuid.UUID, resp *response.GuidanceResponse)
	PublishGuidanceFeedback(ctx context.Context, userId, queryId uuid.UUID, helpful bool, rating *float64)
}

type EventPublisher struct {
	sink   Sink
	logger logger.ILogger
}

// NewPublisher wraps sink. A nil sink drops every event.
func NewPublisher(sink Sink, log logger.ILogger) *EventPublisher {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &EventPublisher{sink: sink, logger: log}
}

func (p *EventPublisher) PublishGuidanceComposed(ctx context.Context, userId uuid.UUID, resp *response.GuidanceResponse) {
	ids := make([]string, 0, len(resp.CitedKnowledge))
	for _, c := range resp.CitedKnowledge {
		ids = append(ids, c.Article.ID)
	}
	p.publish(ctx, pkgEvents.New(pkgEvents.TypeGuidanceComposed, map[string]interface{}{
		"query_id":           resp.QueryID.String(),
		"user_id":            userId.String(),
		"confidence":         resp.Confidence,
		"degraded":           resp.Degraded,
		"content_available":  resp.ContentAvailable,
		"cited_article_ids":  ids,
		"processing_time_ms": resp.ProcessingTimeMs,
	}))
}

func (p *EventPublisher) PublishGuidanceFeedback(ctx context.Context, userId, queryId uuid.UUID, helpful bool, rating *float64) {
	data := map[string]interface{}{
		"query_id": queryId.String(),
		"user_id":  userId.String(),
		"helpful":  helpful,
	}
	if rating != nil {
		data["rating"] = *rating
	}
	p.publish(ctx, pkgEvents.New(pkgEvents.TypeGuidanceFeedback, data))
}

func (p *EventPublisher) publish(ctx context.Context, evt pkgEvents.BaseEvent) {
	if p.sink == nil {
		return
	}
	if err := p.sink.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+evt.Type+" event", map[string]interface{}{"error": err.Error()})
	}
}
