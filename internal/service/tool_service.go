package service

import (
	"craftguide-be/internal/dto"
	"craftguide-be/pkg/craft"
	"craftguide-be/pkg/tools"
)

type IToolService interface {
	Recommend(req *dto.ToolRecommendationRequest) *dto.ToolRecommendationResponse
}

type toolService struct {
	recommender *tools.Recommender
}

func NewToolService(recommender *tools.Recommender) IToolService {
	return &toolService{recommender: recommender}
}

// Recommend answers an empty list for crafts outside the catalog.
func (s *toolService) Recommend(req *dto.ToolRecommendationRequest) *dto.ToolRecommendationResponse {
	resp := &dto.ToolRecommendationResponse{
		CraftType:       req.CraftType,
		Recommendations: []tools.Recommendation{},
	}
	ct, ok := craft.ParseCraftType(req.CraftType)
	if !ok {
		return resp
	}
	level, _ := craft.ParseSkillLevel(req.SkillLevel)
	resp.CraftType = string(ct)
	resp.Recommendations = s.recommender.Recommend(ct, level, req.OwnedTools)
	return resp
}
