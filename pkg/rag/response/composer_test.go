package response

import (
	"context"
	"errors"
	"testing"
	"time"

	"craftguide-be/pkg/craft"
	"craftguide-be/pkg/knowledge"
	"craftguide-be/pkg/knowledge/knowledgetest"
	"craftguide-be/pkg/rag/prompt"
	"craftguide-be/pkg/rag/search"
	"craftguide-be/pkg/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComposer(t *testing.T, articles []knowledge.Article, gen ContentGenerator, cfg Config) *Composer {
	t.Helper()
	store, err := knowledge.NewMemoryStore(articles)
	require.NoError(t, err)
	return NewComposer(search.NewRanker(store, nil), gen, tools.NewRecommender(tools.DefaultCatalog()), cfg, nil)
}

func staticGenerator(text string) ContentGenerator {
	return GeneratorFunc(func(context.Context, prompt.Context) (string, error) {
		return text, nil
	})
}

func potter() craft.UserContext {
	return craft.UserContext{
		CraftSpecializations: []string{"pottery"},
		SkillLevel:           craft.Novice,
		OwnedTools:           []string{"Wire Clay Cutter"},
		MissingTools:         []string{"Kiln"},
	}
}

func TestComposeSharpeningChisels(t *testing.T) {
	c := newComposer(t, knowledgetest.Corpus(), staticGenerator("Hone through the grits."), DefaultConfig())
	user := craft.UserContext{CraftSpecializations: []string{"woodworking"}, SkillLevel: craft.Apprentice}

	resp := c.Compose(context.Background(), Request{Text: "sharpening chisels", User: user})

	require.Len(t, resp.CitedKnowledge, 1)
	assert.Equal(t, "wood-001", resp.CitedKnowledge[0].Article.ID)
	assert.Equal(t, 100, resp.Confidence)
	assert.True(t, resp.ContentAvailable)
	assert.False(t, resp.Degraded)
	assert.Equal(t, "Hone through the grits.", resp.Content)
	assert.Equal(t, []string{"tools", "maintenance"}, resp.Suggestions)
	assert.Equal(t, []string{
		"What safety precautions apply to tools in woodworking?",
		"What are common mistakes with tools in woodworking?",
		"How can I advance my woodworking skills beyond tools?",
	}, resp.FollowUpQuestions)
	assert.Nil(t, resp.ToolRecommendations)
	assert.GreaterOrEqual(t, resp.ProcessingTimeMs, int64(0))
}

func TestComposeCorroborationBonus(t *testing.T) {
	c := newComposer(t, knowledgetest.Corpus(), staticGenerator("Keep it wet."), DefaultConfig())

	resp := c.Compose(context.Background(), Request{Text: "wheel clay kiln", User: potter()})

	require.Len(t, resp.CitedKnowledge, 2)
	assert.Equal(t, "pot-001", resp.CitedKnowledge[0].Article.ID)
	assert.Equal(t, "pot-002", resp.CitedKnowledge[1].Article.ID)
	// round(86.67) + one corroborating source
	assert.Equal(t, 89, resp.Confidence)
	assert.Equal(t, []string{"centering", "throwing", "ventilation", "safety"}, resp.Suggestions)
	assert.Contains(t, resp.FollowUpQuestions, "What safety precautions apply to techniques in pottery?")
}

func TestComposeGenerationUnavailable(t *testing.T) {
	failing := GeneratorFunc(func(context.Context, prompt.Context) (string, error) {
		return "", errors.New("connection refused")
	})
	c := newComposer(t, knowledgetest.Corpus(), failing, DefaultConfig())

	resp := c.Compose(context.Background(), Request{Text: "wheel clay kiln", User: potter()})

	assert.Len(t, resp.CitedKnowledge, 2)
	assert.False(t, resp.ContentAvailable)
	assert.Empty(t, resp.Content)
	assert.True(t, resp.Degraded)
	assert.Equal(t, 20, resp.Confidence)
	assert.NotEmpty(t, resp.Suggestions)
}

func TestComposeWithoutGenerator(t *testing.T) {
	c := newComposer(t, knowledgetest.Corpus(), nil, DefaultConfig())

	resp := c.Compose(context.Background(), Request{Text: "sharpening chisels"})

	assert.NotEmpty(t, resp.CitedKnowledge)
	assert.False(t, resp.ContentAvailable)
	assert.Equal(t, 20, resp.Confidence)
}

func TestComposeGenerationTimeout(t *testing.T) {
	slow := GeneratorFunc(func(ctx context.Context, _ prompt.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	cfg := DefaultConfig()
	cfg.GenerationTimeout = 20 * time.Millisecond
	c := newComposer(t, knowledgetest.Corpus(), slow, cfg)

	resp := c.Compose(context.Background(), Request{Text: "sharpening chisels"})

	assert.False(t, resp.ContentAvailable)
	assert.True(t, resp.Degraded)
	assert.Equal(t, 20, resp.Confidence)
	assert.Len(t, resp.CitedKnowledge, 1)
}

type failingSearcher struct{}

func (failingSearcher) Search(context.Context, knowledge.SearchQuery) ([]knowledge.SearchResult, error) {
	return nil, errors.New("knowledge scan failed: connection reset")
}

func TestComposeStoreUnavailable(t *testing.T) {
	called := false
	gen := GeneratorFunc(func(context.Context, prompt.Context) (string, error) {
		called = true
		return "unused", nil
	})
	c := NewComposer(failingSearcher{}, gen, nil, DefaultConfig(), nil)

	resp := c.Compose(context.Background(), Request{Text: "kiln", User: potter()})

	require.NotNil(t, resp)
	assert.NotNil(t, resp.CitedKnowledge)
	assert.Empty(t, resp.CitedKnowledge)
	assert.False(t, resp.ContentAvailable)
	assert.True(t, resp.Degraded)
	assert.Equal(t, 20, resp.Confidence)
	assert.False(t, called)
	assert.Empty(t, resp.Suggestions)
	assert.Len(t, resp.FollowUpQuestions, 3)
}

func TestComposeEmptyCorpusUsesBaseline(t *testing.T) {
	c := newComposer(t, nil, staticGenerator("General advice."), DefaultConfig())

	resp := c.Compose(context.Background(), Request{Text: "how do I glaze"})

	assert.Empty(t, resp.CitedKnowledge)
	assert.Equal(t, 40, resp.Confidence)
	assert.True(t, resp.ContentAvailable)
	assert.False(t, resp.Degraded)
	assert.Equal(t, []string{
		"What safety precautions apply to general in general?",
		"What are common mistakes with general in general?",
		"How can I advance my general skills beyond general?",
	}, resp.FollowUpQuestions)
}

func TestComposeIsIdempotent(t *testing.T) {
	c := newComposer(t, knowledgetest.Corpus(), staticGenerator("ok"), DefaultConfig())
	req := Request{Text: "wheel clay kiln", User: potter(), IncludeTools: true}

	first := c.Compose(context.Background(), req)
	second := c.Compose(context.Background(), req)

	assert.Equal(t, first.CitedKnowledge, second.CitedKnowledge)
	assert.Equal(t, first.Suggestions, second.Suggestions)
	assert.Equal(t, first.FollowUpQuestions, second.FollowUpQuestions)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.ToolRecommendations, second.ToolRecommendations)
	assert.NotEqual(t, first.QueryID, second.QueryID)
}

func TestComposeToolRecommendations(t *testing.T) {
	c := newComposer(t, knowledgetest.Corpus(), staticGenerator("ok"), DefaultConfig())
	user := potter()
	user.CraftSpecializations = append(user.CraftSpecializations, "glassblowing")

	resp := c.Compose(context.Background(), Request{Text: "centering", User: user, IncludeTools: true})

	names := make([]string, 0, len(resp.ToolRecommendations))
	for _, r := range resp.ToolRecommendations {
		names = append(names, r.ToolName)
	}
	assert.Equal(t, []string{"Rib Set", "Banding Wheel"}, names)
}

func TestComposePassesAugmentedTextToGenerator(t *testing.T) {
	var got prompt.Context
	gen := GeneratorFunc(func(_ context.Context, pc prompt.Context) (string, error) {
		got = pc
		return "ok", nil
	})
	c := newComposer(t, knowledgetest.Corpus(), gen, DefaultConfig())

	c.Compose(context.Background(), Request{Text: "wheel clay kiln", User: potter()})

	assert.Contains(t, got.AugmentedText, "My available tools: Wire Clay Cutter")
	assert.Contains(t, got.AugmentedText, "Tools I don't have: Kiln")
	assert.Len(t, got.Results, 2)
	assert.Equal(t, craft.Novice, got.User.SkillLevel)
}

func TestConfidence(t *testing.T) {
	cfg := DefaultConfig()
	results := func(top float64, n int) []knowledge.SearchResult {
		out := make([]knowledge.SearchResult, n)
		for i := range out {
			out[i].Score = top
		}
		return out
	}

	tests := []struct {
		name    string
		results []knowledge.SearchResult
		want    int
	}{
		{"no results", nil, 40},
		{"single", results(0.55, 1), 55},
		{"rounds half up", results(0.625, 1), 63},
		{"bonus", results(0.5, 3), 54},
		{"bonus capped", results(0.5, 20), 60},
		{"clamped", results(0.98, 5), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Confidence(tt.results, cfg))
		})
	}
}

func TestSuggestionsDedupAndCap(t *testing.T) {
	a := knowledgetest.Article("a", "A", knowledge.CategoryTools, knowledge.DifficultyBeginner,
		[]string{"weaving"}, []string{"loom", "warp", "heddle"})
	b := knowledgetest.Article("b", "B", knowledge.CategoryTools, knowledge.DifficultyBeginner,
		[]string{"weaving"}, []string{"warp", "weft", "shuttle", "reed", "beater"})
	results := []knowledge.SearchResult{{Article: a}, {Article: b}}

	assert.Equal(t, []string{"warp", "heddle", "weft", "shuttle", "reed"}, Suggestions(results, "My LOOM jams", 5))
	assert.Equal(t, []string{}, Suggestions(nil, "anything", 5))
}

func TestFollowUpsCap(t *testing.T) {
	assert.Len(t, FollowUps(nil, "weaving", 2), 2)
	assert.Len(t, FollowUps(nil, "", 10), 3)
}
