package implementation

import (
	"context"

	"craftguide-be/internal/entity"
	"craftguide-be/internal/mapper"
	"craftguide-be/internal/model"
	"craftguide-be/internal/repository/contract"
	"craftguide-be/internal/repository/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuidanceFeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GuidanceMapper
}

func NewGuidanceFeedbackRepository(db *gorm.DB) contract.GuidanceFeedbackRepository {
	return &GuidanceFeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewGuidanceMapper(),
	}
}

func (r *GuidanceFeedbackRepositoryImpl) Create(ctx context.Context, feedback *entity.GuidanceFeedback) error {
	m := r.mapper.FeedbackToModel(feedback)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feedback = *r.mapper.FeedbackToEntity(m)
	return nil
}

func (r *GuidanceFeedbackRepositoryImpl) FindByQueryId(ctx context.Context, queryId uuid.UUID) ([]*entity.GuidanceFeedback, error) {
	var models []*model.GuidanceFeedback
	err := r.db.WithContext(ctx).
		Scopes(scope.ForQuery(queryId), scope.OrderByCreatedAsc).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entity.GuidanceFeedback, len(models))
	for i, m := range models {
		out[i] = r.mapper.FeedbackToEntity(m)
	}
	return out, nil
}
