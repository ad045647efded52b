package service

import (
	"context"
	"encoding/json"
	"time"

	"craftguide-be/internal/dto"
	"craftguide-be/internal/entity"
	"craftguide-be/internal/mapper"
	"craftguide-be/internal/pkg/logger"
	"craftguide-be/internal/pkg/serverutils"
	"craftguide-be/internal/repository/contract"
	"craftguide-be/pkg/analytics"
	"craftguide-be/pkg/knowledge"
	"craftguide-be/pkg/rag/response"

	"github.com/google/uuid"
)

type IGuidanceService interface {
	Compose(ctx context.Context, userId uuid.UUID, req *dto.ComposeGuidanceRequest) (*response.GuidanceResponse, error)
	Show(ctx context.Context, userId, queryId uuid.UUID) (*dto.GuidanceRecordResponse, error)
	SubmitFeedback(ctx context.Context, userId, queryId uuid.UUID, req *dto.GuidanceFeedbackRequest) (*dto.GuidanceFeedbackResponse, error)
}

type guidanceService struct {
	composer  *response.Composer
	records   contract.GuidanceRecordRepository
	feedback  contract.GuidanceFeedbackRepository
	tracker   knowledge.Tracker
	citations IPublisherService
	analytics analytics.Publisher
	mapper    *mapper.GuidanceMapper
	logger    logger.ILogger
}

func NewGuidanceService(
	composer *response.Composer,
	records contract.GuidanceRecordRepository,
	feedback contract.GuidanceFeedbackRepository,
	tracker knowledge.Tracker,
	citations IPublisherService,
	events analytics.Publisher,
	log logger.ILogger,
) IGuidanceService {
	if log == nil {
		log = logger.NewNopLogger()
	}
	if events == nil {
		events = analytics.NewPublisher(nil, log)
	}
	return &guidanceService{
		composer:  composer,
		records:   records,
		feedback:  feedback,
		tracker:   tracker,
		citations: citations,
		analytics: events,
		mapper:    mapper.NewGuidanceMapper(),
		logger:    log,
	}
}

func (s *guidanceService) Compose(ctx context.Context, userId uuid.UUID, req *dto.ComposeGuidanceRequest) (*response.GuidanceResponse, error) {
	resp := s.composer.Compose(ctx, response.Request{
		Text:         req.Text,
		User:         s.mapper.ToUserContext(req.UserContext),
		IncludeTools: req.IncludeTools,
	})

	record := &entity.GuidanceRecord{
		QueryId:   resp.QueryID,
		UserId:    userId,
		Question:  req.Text,
		Response:  resp,
		CreatedAt: time.Now(),
	}
	// Without a stored record feedback cannot be correlated, but the answer
	// itself is still valid.
	if err := s.records.Save(ctx, record); err != nil {
		s.logger.Warn("GUIDANCE", "Failed to store guidance record", map[string]interface{}{
			"error":    err.Error(),
			"query_id": resp.QueryID.String(),
		})
	}

	s.publishCitations(ctx, record)
	s.analytics.PublishGuidanceComposed(ctx, userId, resp)

	return resp, nil
}

func (s *guidanceService) publishCitations(ctx context.Context, record *entity.GuidanceRecord) {
	ids := record.CitedArticleIds()
	if len(ids) == 0 || s.citations == nil {
		return
	}
	msgJson, err := json.Marshal(dto.KnowledgeCitedMessage{QueryId: record.QueryId, ArticleIds: ids})
	if err != nil {
		return
	}
	if err := s.citations.Publish(ctx, msgJson); err != nil {
		s.logger.Warn("GUIDANCE", "Failed to publish citation message", map[string]interface{}{
			"error":    err.Error(),
			"query_id": record.QueryId.String(),
		})
	}
}

func (s *guidanceService) findOwned(ctx context.Context, userId, queryId uuid.UUID) (*entity.GuidanceRecord, error) {
	record, err := s.records.FindOne(ctx, queryId)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserId != userId {
		return nil, serverutils.NotFound("Guidance not found or expired")
	}
	return record, nil
}

func (s *guidanceService) Show(ctx context.Context, userId, queryId uuid.UUID) (*dto.GuidanceRecordResponse, error) {
	record, err := s.findOwned(ctx, userId, queryId)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToRecordResponse(record), nil
}

// SubmitFeedback stores the feedback and, when a rating is given, folds it
// into every cited article's rating.
func (s *guidanceService) SubmitFeedback(ctx context.Context, userId, queryId uuid.UUID, req *dto.GuidanceFeedbackRequest) (*dto.GuidanceFeedbackResponse, error) {
	record, err := s.findOwned(ctx, userId, queryId)
	if err != nil {
		return nil, err
	}

	feedback := &entity.GuidanceFeedback{
		Id:         uuid.New(),
		QueryId:    queryId,
		UserId:     userId,
		Helpful:    req.Helpful,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ArticleIds: record.CitedArticleIds(),
		CreatedAt:  time.Now(),
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, err
	}

	rated := []string{}
	if req.Rating != nil {
		for _, id := range feedback.ArticleIds {
			if err := s.tracker.ApplyRating(ctx, id, *req.Rating); err != nil {
				s.logger.Warn("GUIDANCE", "Failed to apply rating", map[string]interface{}{
					"error":      err.Error(),
					"article_id": id,
				})
				continue
			}
			rated = append(rated, id)
		}
	}

	s.analytics.PublishGuidanceFeedback(ctx, userId, queryId, req.Helpful, req.Rating)

	return &dto.GuidanceFeedbackResponse{
		Id:              feedback.Id,
		QueryId:         queryId,
		RatedArticleIds: rated,
	}, nil
}
