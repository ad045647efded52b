package mapper

import (
	"craftguide-be/internal/dto"
	"craftguide-be/internal/entity"
	"craftguide-be/internal/model"
	"craftguide-be/pkg/craft"
)

type GuidanceMapper struct{}

func NewGuidanceMapper() *GuidanceMapper {
	return &GuidanceMapper{}
}

func (m *GuidanceMapper) ToUserContext(u dto.UserContextDTO) craft.UserContext {
	level, _ := craft.ParseSkillLevel(u.SkillLevel)
	return craft.UserContext{
		CraftSpecializations: u.CraftSpecializations,
		SkillLevel:           level,
		OwnedTools:           u.OwnedTools,
		MissingTools:         u.MissingTools,
	}
}

func (m *GuidanceMapper) FeedbackToModel(f *entity.GuidanceFeedback) *model.GuidanceFeedback {
	return &model.GuidanceFeedback{
		Id:         f.Id,
		QueryId:    f.QueryId,
		UserId:     f.UserId,
		Helpful:    f.Helpful,
		Rating:     f.Rating,
		Comment:    f.Comment,
		ArticleIds: append([]string(nil), f.ArticleIds...),
		CreatedAt:  f.CreatedAt,
	}
}

func (m *GuidanceMapper) FeedbackToEntity(f *model.GuidanceFeedback) *entity.GuidanceFeedback {
	if f == nil {
		return nil
	}
	return &entity.GuidanceFeedback{
		Id:         f.Id,
		QueryId:    f.QueryId,
		UserId:     f.UserId,
		Helpful:    f.Helpful,
		Rating:     f.Rating,
		Comment:    f.Comment,
		ArticleIds: append([]string(nil), f.ArticleIds...),
		CreatedAt:  f.CreatedAt,
	}
}

func (m *GuidanceMapper) ToRecordResponse(r *entity.GuidanceRecord) *dto.GuidanceRecordResponse {
	return &dto.GuidanceRecordResponse{
		QueryId:   r.QueryId,
		Question:  r.Question,
		Guidance:  r.Response,
		CreatedAt: r.CreatedAt,
	}
}
