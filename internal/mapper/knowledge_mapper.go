package mapper

import (
	"craftguide-be/internal/model"
	"craftguide-be/pkg/knowledge"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToArticle(a *model.KnowledgeArticle) knowledge.Article {
	return knowledge.Article{
		ID:         a.Id,
		Title:      a.Title,
		Content:    a.Content,
		Category:   knowledge.Category(a.Category),
		CraftTypes: append([]string(nil), a.CraftTypes...),
		Difficulty: knowledge.Difficulty(a.Difficulty),
		Tags:       append([]string(nil), a.Tags...),
		Metadata: knowledge.Metadata{
			Author:    a.Author,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
			ViewCount: a.ViewCount,
			Rating:    a.Rating,
			Source:    a.Source,
		},
	}
}

func (m *KnowledgeMapper) ToModel(a knowledge.Article) *model.KnowledgeArticle {
	return &model.KnowledgeArticle{
		Id:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		Category:   string(a.Category),
		Difficulty: string(a.Difficulty),
		CraftTypes: append([]string(nil), a.CraftTypes...),
		Tags:       append([]string(nil), a.Tags...),
		Author:     a.Metadata.Author,
		Source:     a.Metadata.Source,
		ViewCount:  a.Metadata.ViewCount,
		Rating:     a.Metadata.Rating,
		CreatedAt:  a.Metadata.CreatedAt,
		UpdatedAt:  a.Metadata.UpdatedAt,
	}
}

func (m *KnowledgeMapper) ToArticles(models []*model.KnowledgeArticle) []knowledge.Article {
	out := make([]knowledge.Article, len(models))
	for i, a := range models {
		out[i] = m.ToArticle(a)
	}
	return out
}
