package implementation

import (
	"context"
	"errors"
	"fmt"

	"craftguide-be/internal/mapper"
	"craftguide-be/internal/model"
	"craftguide-be/internal/repository/contract"
	"craftguide-be/internal/repository/specification"
	"craftguide-be/pkg/knowledge"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeRepositoryImpl) Scan(ctx context.Context, filters knowledge.Filters) ([]knowledge.Article, error) {
	specs := append(specification.ForFilters(filters), specification.OrderBy{Field: "id"})
	return r.FindAll(ctx, specs...)
}

func (r *KnowledgeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]knowledge.Article, error) {
	var models []*model.KnowledgeArticle
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KnowledgeArticle{}), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToArticles(models), nil
}

func (r *KnowledgeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KnowledgeArticle{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Upsert inserts the article or replaces its content, keeping the stored
// view count and rating.
func (r *KnowledgeRepositoryImpl) Upsert(ctx context.Context, article knowledge.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}
	m := r.mapper.ToModel(article)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "content", "category", "difficulty", "craft_types", "tags", "author", "source", "updated_at",
		}),
	}).Create(m).Error
}

func (r *KnowledgeRepositoryImpl) RecordViews(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KnowledgeArticle{}), specification.ByArticleIDs{IDs: ids})
	return query.UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (r *KnowledgeRepositoryImpl) ApplyRating(ctx context.Context, id string, rating float64) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("%w: rating %.2f outside [0,5]", knowledge.ErrInvalidArticle, rating)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.KnowledgeArticle
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("knowledge article %q not found", id)
		}
		if err != nil {
			return err
		}

		blended := knowledge.BlendRating(m.Rating, m.ViewCount, rating)
		return tx.Model(&m).UpdateColumn("rating", blended).Error
	})
}
