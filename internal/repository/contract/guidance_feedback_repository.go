package contract

import (
	"context"

	"craftguide-be/internal/entity"

	"github.com/google/uuid"
)

type GuidanceFeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.GuidanceFeedback) error
	FindByQueryId(ctx context.Context, queryId uuid.UUID) ([]*entity.GuidanceFeedback, error)
}
