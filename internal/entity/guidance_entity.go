package entity

import (
	"time"

	"craftguide-be/pkg/rag/response"

	"github.com/google/uuid"
)

// GuidanceRecord is a composed response kept for later lookup and feedback.
type GuidanceRecord struct {
	QueryId   uuid.UUID
	UserId    uuid.UUID
	Question  string
	Response  *response.GuidanceResponse
	CreatedAt time.Time
}

// CitedArticleIds lists the article ids in citation order.
func (r *GuidanceRecord) CitedArticleIds() []string {
	if r == nil || r.Response == nil {
		return nil
	}
	ids := make([]string, 0, len(r.Response.CitedKnowledge))
	for _, c := range r.Response.CitedKnowledge {
		ids = append(ids, c.Article.ID)
	}
	return ids
}

type GuidanceFeedback struct {
	Id         uuid.UUID
	QueryId    uuid.UUID
	UserId     uuid.UUID
	Helpful    bool
	Rating     *float64
	Comment    string
	ArticleIds []string
	CreatedAt  time.Time
}
