package service

import (
	"context"

	"craftguide-be/internal/dto"
	"craftguide-be/pkg/craft"
	"craftguide-be/pkg/knowledge"
	"craftguide-be/pkg/rag/search"
)

type IKnowledgeService interface {
	Search(ctx context.Context, req *dto.SearchKnowledgeRequest) (*dto.SearchKnowledgeResponse, error)
}

type knowledgeService struct {
	ranker *search.Ranker
}

func NewKnowledgeService(ranker *search.Ranker) IKnowledgeService {
	return &knowledgeService{ranker: ranker}
}

// Search runs a direct ranked lookup. Store failures surface as errors here;
// only the guidance composer degrades silently.
func (s *knowledgeService) Search(ctx context.Context, req *dto.SearchKnowledgeRequest) (*dto.SearchKnowledgeResponse, error) {
	q := knowledge.NewSearchQuery(req.Text)
	q.Limit = req.Limit
	if req.MinScore != nil {
		q.MinScore = *req.MinScore
	}
	q.Filters = knowledge.Filters{
		CraftTypes: craft.NormalizeSet(req.Filters.CraftTypes),
	}
	for _, d := range req.Filters.Difficulties {
		q.Filters.Difficulties = append(q.Filters.Difficulties, knowledge.Difficulty(d))
	}
	for _, c := range req.Filters.Categories {
		q.Filters.Categories = append(q.Filters.Categories, knowledge.Category(c))
	}

	results, err := s.ranker.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.SearchKnowledgeResponse{Results: results, Total: len(results)}, nil
}
