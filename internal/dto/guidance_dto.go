package dto

import (
	"time"

	"craftguide-be/pkg/knowledge"
	"craftguide-be/pkg/rag/response"
	"craftguide-be/pkg/tools"

	"github.com/google/uuid"
)

type UserContextDTO struct {
	CraftSpecializations []string `json:"craft_specializations" validate:"omitempty,max=10,dive,required,max=50"`
	SkillLevel           string   `json:"skill_level" validate:"omitempty,oneof=novice apprentice journeyman craftsman master"`
	OwnedTools           []string `json:"owned_tools" validate:"omitempty,max=200,dive,max=100"`
	MissingTools         []string `json:"missing_tools" validate:"omitempty,max=200,dive,max=100"`
}

type ComposeGuidanceRequest struct {
	Text         string         `json:"text" validate:"required,max=2000"`
	UserContext  UserContextDTO `json:"user_context"`
	IncludeTools bool           `json:"include_tools"`
}

type GuidanceRecordResponse struct {
	QueryId   uuid.UUID                  `json:"query_id"`
	Question  string                     `json:"question"`
	Guidance  *response.GuidanceResponse `json:"guidance"`
	CreatedAt time.Time                  `json:"created_at"`
}

type GuidanceFeedbackRequest struct {
	Helpful bool     `json:"helpful"`
	Rating  *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	Comment string   `json:"comment" validate:"max=1000"`
}

type GuidanceFeedbackResponse struct {
	Id              uuid.UUID `json:"id"`
	QueryId         uuid.UUID `json:"query_id"`
	RatedArticleIds []string  `json:"rated_article_ids"`
}

type SearchFiltersDTO struct {
	CraftTypes   []string `json:"craft_types" validate:"omitempty,dive,required,max=50"`
	Difficulties []string `json:"difficulties" validate:"omitempty,dive,oneof=beginner intermediate advanced expert"`
	Categories   []string `json:"categories" validate:"omitempty,dive,oneof=techniques materials tools safety projects troubleshooting"`
}

type SearchKnowledgeRequest struct {
	Text     string           `json:"text" validate:"max=2000"`
	Filters  SearchFiltersDTO `json:"filters"`
	Limit    int              `json:"limit" validate:"min=0,max=100"`
	MinScore *float64         `json:"min_score" validate:"omitempty,min=0,max=1"`
}

type SearchKnowledgeResponse struct {
	Results []knowledge.SearchResult `json:"results"`
	Total   int                      `json:"total"`
}

type ToolRecommendationRequest struct {
	CraftType  string   `json:"craft_type" validate:"required,max=50"`
	SkillLevel string   `json:"skill_level" validate:"required,oneof=novice apprentice journeyman craftsman master"`
	OwnedTools []string `json:"owned_tools" validate:"omitempty,max=200,dive,max=100"`
}

type ToolRecommendationResponse struct {
	CraftType       string                 `json:"craft_type"`
	Recommendations []tools.Recommendation `json:"recommendations"`
}

// KnowledgeCitedMessage travels on the in-process KNOWLEDGE_CITED topic.
type KnowledgeCitedMessage struct {
	QueryId    uuid.UUID `json:"query_id"`
	ArticleIds []string  `json:"article_ids"`
}
