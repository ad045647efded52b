package contract

import (
	"context"

	"craftguide-be/internal/repository/specification"
	"craftguide-be/pkg/knowledge"
)

// KnowledgeRepository is the persistent corpus. It satisfies knowledge.Store
// and knowledge.Tracker so the ranker and the view consumer can use it
// directly.
type KnowledgeRepository interface {
	knowledge.Store
	knowledge.Tracker
	Upsert(ctx context.Context, article knowledge.Article) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]knowledge.Article, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
