package response

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"craftguide-be/internal/pkg/logger"
	"craftguide-be/pkg/craft"
	"craftguide-be/pkg/knowledge"
	ragcontext "craftguide-be/pkg/rag/context"
	"craftguide-be/pkg/rag/prompt"
	"craftguide-be/pkg/tools"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const logModule = "GUIDANCE"

var tracer = otel.Tracer("craftguide-be/pkg/rag/response")

// Searcher is the slice of the ranker the composer depends on.
type Searcher interface {
	Search(ctx context.Context, q knowledge.SearchQuery) ([]knowledge.SearchResult, error)
}

// Request is one question asked in the context of one user.
type Request struct {
	Text         string
	User         craft.UserContext
	IncludeTools bool
}

// GuidanceResponse is the structured answer. It is always well formed, even
// when a collaborator failed.
type GuidanceResponse struct {
	QueryID             uuid.UUID                `json:"query_id"`
	Content             string                   `json:"content"`
	ContentAvailable    bool                     `json:"content_available"`
	Confidence          int                      `json:"confidence"`
	CitedKnowledge      []knowledge.SearchResult `json:"cited_knowledge"`
	Suggestions         []string                 `json:"suggestions"`
	FollowUpQuestions   []string                 `json:"follow_up_questions"`
	ToolRecommendations []tools.Recommendation   `json:"tool_recommendations,omitempty"`
	Degraded            bool                     `json:"degraded"`
	ProcessingTimeMs    int64                    `json:"processing_time_ms"`
}

// Composer runs enrich, rank and generate, then assembles the response.
type Composer struct {
	searcher    Searcher
	generator   ContentGenerator
	recommender *tools.Recommender
	cfg         Config
	logger      logger.ILogger
	now         func() time.Time
}

// NewComposer wires the pipeline. generator and recommender may be nil: a
// nil generator always degrades the content and a nil recommender skips tool
// recommendations.
func NewComposer(searcher Searcher, generator ContentGenerator, recommender *tools.Recommender, cfg Config, log logger.ILogger) *Composer {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Composer{
		searcher:    searcher,
		generator:   generator,
		recommender: recommender,
		cfg:         cfg.withDefaults(),
		logger:      log,
		now:         time.Now,
	}
}

// Compose never returns an error. Store and generation failures become a
// degraded response with the fixed low confidence.
func (c *Composer) Compose(ctx context.Context, req Request) *GuidanceResponse {
	started := c.now()
	ctx, span := tracer.Start(ctx, "guidance.compose")
	defer span.End()

	resp := &GuidanceResponse{
		QueryID:        uuid.New(),
		CitedKnowledge: []knowledge.SearchResult{},
	}
	span.SetAttributes(attribute.String("guidance.query_id", resp.QueryID.String()))

	enriched := ragcontext.Enrich(req.Text, req.User)

	results, searchErr := c.retrieve(ctx, enriched)
	if searchErr == nil {
		resp.CitedKnowledge = results
		resp.Content, resp.ContentAvailable = c.generate(ctx, enriched, results, req.User)
	}

	switch {
	case searchErr != nil:
		resp.Degraded = true
		resp.Confidence = c.cfg.DegradedConfidence
		span.SetStatus(codes.Error, "knowledge store unavailable")
	case !resp.ContentAvailable:
		resp.Degraded = true
		resp.Confidence = c.cfg.DegradedConfidence
	default:
		resp.Confidence = c.confidence(results)
	}

	resp.Suggestions = Suggestions(resp.CitedKnowledge, req.Text, c.cfg.MaxSuggestions)
	resp.FollowUpQuestions = FollowUps(resp.CitedKnowledge, req.User.PrimaryCraft(), c.cfg.MaxFollowUps)

	if req.IncludeTools {
		resp.ToolRecommendations = c.recommendTools(req.User)
	}

	resp.ProcessingTimeMs = c.now().Sub(started).Milliseconds()
	if resp.ProcessingTimeMs < 0 {
		resp.ProcessingTimeMs = 0
	}

	span.SetAttributes(
		attribute.Int("guidance.citations", len(resp.CitedKnowledge)),
		attribute.Int("guidance.confidence", resp.Confidence),
		attribute.Bool("guidance.degraded", resp.Degraded),
	)
	c.logger.Info(logModule, "Guidance composed", map[string]interface{}{
		"query_id":      resp.QueryID.String(),
		"citations":     len(resp.CitedKnowledge),
		"confidence":    resp.Confidence,
		"degraded":      resp.Degraded,
		"processing_ms": resp.ProcessingTimeMs,
	})
	return resp
}

func (c *Composer) retrieve(ctx context.Context, enriched ragcontext.EnrichedQuery) ([]knowledge.SearchResult, error) {
	ctx, span := tracer.Start(ctx, "guidance.retrieve")
	defer span.End()

	q := knowledge.NewSearchQuery(enriched.OriginalText)
	q.Filters.CraftTypes = enriched.DerivedCraftFilter
	q.Limit = c.cfg.CitationLimit
	q.MinScore = c.cfg.MinScore

	results, err := c.searcher.Search(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error(logModule, "Knowledge retrieval failed", map[string]interface{}{
			"error":        err.Error(),
			"craft_filter": enriched.DerivedCraftFilter,
		})
		return nil, err
	}

	span.SetAttributes(attribute.Int("knowledge.results", len(results)))
	return results, nil
}

func (c *Composer) generate(ctx context.Context, enriched ragcontext.EnrichedQuery, results []knowledge.SearchResult, user craft.UserContext) (string, bool) {
	if c.generator == nil {
		return "", false
	}

	ctx, span := tracer.Start(ctx, "guidance.generate", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	genCtx, cancel := context.WithTimeout(ctx, c.cfg.GenerationTimeout)
	defer cancel()

	content, err := c.generator.Generate(genCtx, prompt.Context{
		AugmentedText: enriched.AugmentedText,
		Results:       results,
		User:          user,
	})
	if err == nil && strings.TrimSpace(content) == "" {
		err = ErrGenerationUnavailable
	}
	if err != nil {
		if errors.Is(genCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: timed out after %s", ErrGenerationUnavailable, c.cfg.GenerationTimeout)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn(logModule, "Generation unavailable, returning retrieval only", map[string]interface{}{
			"error":     err.Error(),
			"citations": len(results),
		})
		return "", false
	}

	span.SetAttributes(attribute.Int("generation.chars", len(content)))
	return content, true
}

func (c *Composer) recommendTools(user craft.UserContext) []tools.Recommendation {
	out := []tools.Recommendation{}
	if c.recommender == nil {
		return out
	}
	for _, s := range user.Specializations() {
		ct, ok := craft.ParseCraftType(s)
		if !ok {
			continue
		}
		out = append(out, c.recommender.Recommend(ct, user.SkillLevel, user.OwnedTools)...)
	}
	return out
}

func (c *Composer) confidence(results []knowledge.SearchResult) int {
	return Confidence(results, c.cfg)
}

// Confidence is round(top*100), or the baseline when nothing was found, plus
// a corroboration bonus per extra source, clamped to [0,100].
func Confidence(results []knowledge.SearchResult, cfg Config) int {
	if len(results) == 0 {
		return clampPercent(cfg.BaselineConfidence)
	}
	base := int(math.Round(results[0].Score * 100))
	bonus := min(cfg.MaxCorroborationBonus, (len(results)-1)*cfg.CorroborationBonus)
	return clampPercent(base + bonus)
}

func clampPercent(v int) int {
	return max(0, min(100, v))
}

// Suggestions collects cited tags not already in the question text, keeping
// first-seen order.
func Suggestions(results []knowledge.SearchResult, originalText string, limit int) []string {
	text := strings.ToLower(originalText)
	out := []string{}
	seen := make(map[string]bool)
	for _, r := range results {
		for _, tag := range r.Article.Tags {
			if len(out) >= limit {
				return out
			}
			if seen[tag] || strings.Contains(text, strings.ToLower(tag)) {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}

var followUpTemplates = []string{
	"What safety precautions apply to %s in %s?",
	"What are common mistakes with %s in %s?",
	"How can I advance my %[2]s skills beyond %[1]s?",
}

// FollowUps fills the fixed templates with the top citation's category and
// the user's primary craft.
func FollowUps(results []knowledge.SearchResult, primaryCraft string, limit int) []string {
	category := craft.GeneralCraft
	if len(results) > 0 {
		category = string(results[0].Article.Category)
	}
	if primaryCraft == "" {
		primaryCraft = craft.GeneralCraft
	}

	out := make([]string, 0, min(limit, len(followUpTemplates)))
	for _, tpl := range followUpTemplates {
		if len(out) >= limit {
			break
		}
		out = append(out, fmt.Sprintf(tpl, category, primaryCraft))
	}
	return out
}
