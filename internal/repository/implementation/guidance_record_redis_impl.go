package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"craftguide-be/internal/entity"
	"craftguide-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const guidanceKeyPrefix = "guidance:record:"

// GuidanceRecordRedisImpl shares guidance records between instances.
type GuidanceRecordRedisImpl struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewGuidanceRecordRedisRepository(rdb redis.UniversalClient, ttl time.Duration) contract.GuidanceRecordRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &GuidanceRecordRedisImpl{rdb: rdb, ttl: ttl}
}

func (r *GuidanceRecordRedisImpl) Save(ctx context.Context, record *entity.GuidanceRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal guidance record: %w", err)
	}
	return r.rdb.Set(ctx, guidanceKeyPrefix+record.QueryId.String(), data, r.ttl).Err()
}

func (r *GuidanceRecordRedisImpl) FindOne(ctx context.Context, queryId uuid.UUID) (*entity.GuidanceRecord, error) {
	data, err := r.rdb.Get(ctx, guidanceKeyPrefix+queryId.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record entity.GuidanceRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode guidance record %s: %w", queryId, err)
	}
	return &record, nil
}
