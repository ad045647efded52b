package contract

import (
	"context"

	"craftguide-be/internal/entity"

	"github.com/google/uuid"
)

// GuidanceRecordRepository keeps composed responses for a bounded time.
// FindOne returns nil, nil for unknown or expired ids.
type GuidanceRecordRepository interface {
	Save(ctx context.Context, record *entity.GuidanceRecord) error
	FindOne(ctx context.Context, queryId uuid.UUID) (*entity.GuidanceRecord, error)
}
