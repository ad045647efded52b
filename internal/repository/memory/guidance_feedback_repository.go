package memory

import (
	"context"
	"sync"
	"time"

	"craftguide-be/internal/entity"
	"craftguide-be/internal/repository/contract"

	"github.com/google/uuid"
)

// GuidanceFeedbackRepository holds feedback in process when no database is
// configured.
type GuidanceFeedbackRepository struct {
	mu      sync.RWMutex
	byQuery map[uuid.UUID][]*entity.GuidanceFeedback
}

func NewGuidanceFeedbackRepository() contract.GuidanceFeedbackRepository {
	return &GuidanceFeedbackRepository{byQuery: make(map[uuid.UUID][]*entity.GuidanceFeedback)}
}

func (r *GuidanceFeedbackRepository) Create(_ context.Context, feedback *entity.GuidanceFeedback) error {
	if feedback.Id == uuid.Nil {
		feedback.Id = uuid.New()
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now()
	}
	stored := *feedback
	stored.ArticleIds = append([]string(nil), feedback.ArticleIds...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byQuery[feedback.QueryId] = append(r.byQuery[feedback.QueryId], &stored)
	return nil
}

func (r *GuidanceFeedbackRepository) FindByQueryId(_ context.Context, queryId uuid.UUID) ([]*entity.GuidanceFeedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.byQuery[queryId]
	out := make([]*entity.GuidanceFeedback, len(items))
	for i, f := range items {
		c := *f
		out[i] = &c
	}
	return out, nil
}
