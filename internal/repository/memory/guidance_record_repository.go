package memory

import (
	"context"
	"time"

	"craftguide-be/internal/entity"
	"craftguide-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type GuidanceRecordRepository struct {
	cache *cache.Cache
}

// NewGuidanceRecordRepository keeps records for ttl and purges expired ones
// every ttl/6.
func NewGuidanceRecordRepository(ttl time.Duration) contract.GuidanceRecordRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &GuidanceRecordRepository{
		cache: cache.New(ttl, ttl/6),
	}
}

func (r *GuidanceRecordRepository) Save(_ context.Context, record *entity.GuidanceRecord) error {
	r.cache.Set(record.QueryId.String(), record, cache.DefaultExpiration)
	return nil
}

func (r *GuidanceRecordRepository) FindOne(_ context.Context, queryId uuid.UUID) (*entity.GuidanceRecord, error) {
	if x, found := r.cache.Get(queryId.String()); found {
		return x.(*entity.GuidanceRecord), nil
	}
	return nil, nil
}
