package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"craftguide-be/pkg/knowledge"
	"craftguide-be/pkg/knowledge/knowledgetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestRanker(t *testing.T, articles []knowledge.Article) *Ranker {
	t.Helper()
	store, err := knowledge.NewMemoryStore(articles)
	require.NoError(t, err)
	return NewRanker(store, nil)
}

func TestSearchSharpeningChisels(t *testing.T) {
	r := newTestRanker(t, knowledgetest.Corpus())

	results, err := r.Search(context.Background(), knowledge.NewSearchQuery("sharpening chisels"))
	require.NoError(t, err)
	require.NotEmpty(t, results)

	top := results[0]
	assert.Equal(t, "wood-001", top.Article.ID)
	assert.GreaterOrEqual(t, top.Score, 0.5)
	assert.Equal(t, knowledge.TierHigh, top.RelevanceTier)
}

func TestSearchTitleBoostWithoutTokenOverlap(t *testing.T) {
	todo := knowledgetest.Article("misc-001", "To Do", knowledge.CategoryProjects,
		knowledge.DifficultyBeginner, []string{"weaving"}, []string{"planning"})
	todo.Content = "Plan the week."
	r := newTestRanker(t, []knowledge.Article{todo})

	q := knowledge.NewSearchQuery("to do")
	results, err := r.Search(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 0.3, results[0].Score, 1e-9)
	assert.Equal(t, knowledge.TierLow, results[0].RelevanceTier)
}

func TestSearchExactTitleScoresAtLeastTitleBoost(t *testing.T) {
	corpus := knowledgetest.Corpus()
	r := newTestRanker(t, corpus)

	for _, a := range corpus {
		t.Run(a.ID, func(t *testing.T) {
			q := knowledge.NewSearchQuery(a.Title)
			q.Limit = len(corpus)
			results, err := r.Search(context.Background(), q)
			require.NoError(t, err)

			var found bool
			for _, res := range results {
				if res.Article.ID == a.ID {
					found = true
					assert.GreaterOrEqual(t, res.Score, 0.3)
				}
			}
			assert.True(t, found, "article %s missing from its own title query", a.ID)
		})
	}
}

func TestSearchShortWordsOnlyBoostsContribute(t *testing.T) {
	corpus := knowledgetest.Corpus()
	boosted := knowledgetest.Article("misc-002", "To Be Or Not", knowledge.CategoryProjects,
		knowledge.DifficultyBeginner, []string{"weaving"}, []string{"or"})
	corpus = append(corpus, boosted)

	scorer := NewKeywordScorer()
	assert.Empty(t, scorer.Tokenize("to be or"))

	r := NewRanker(mustStore(t, corpus), scorer)
	q := knowledge.NewSearchQuery("to be or")
	q.MinScore = 0
	q.Filters = knowledge.Filters{Categories: []knowledge.Category{
		knowledge.CategoryProjects, knowledge.CategoryTools, knowledge.CategoryTechniques,
		knowledge.CategoryMaterials, knowledge.CategorySafety, knowledge.CategoryTroubleshooting,
	}}
	q.Limit = 100

	results, err := r.Search(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, results, len(corpus))

	for _, res := range results {
		if res.Article.ID == "misc-002" {
			assert.InDelta(t, 0.5, res.Score, 1e-9, "title and tag boost")
			continue
		}
		assert.Zero(t, res.Score, "article %s", res.Article.ID)
	}
	assert.Equal(t, "misc-002", results[0].Article.ID)
}

func TestSearchEmptyTextWithoutFilters(t *testing.T) {
	r := newTestRanker(t, knowledgetest.Corpus())

	q := knowledge.NewSearchQuery("   ")
	q.MinScore = 0
	results, err := r.Search(context.Background(), q)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchEmptyTextWithFilterListsMatches(t *testing.T) {
	r := newTestRanker(t, knowledgetest.Corpus())

	q := knowledge.NewSearchQuery("")
	q.MinScore = 0
	q.Filters = knowledge.Filters{CraftTypes: []string{"pottery"}}
	results, err := r.Search(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "pot-001", results[0].Article.ID)
	assert.Equal(t, "pot-002", results[1].Article.ID)
}

func TestSearchValidation(t *testing.T) {
	r := newTestRanker(t, knowledgetest.Corpus())

	tests := []struct {
		name  string
		query knowledge.SearchQuery
	}{
		{"negative limit", knowledge.SearchQuery{Text: "oil", Limit: -1, MinScore: 0.2}},
		{"negative min score", knowledge.SearchQuery{Text: "oil", Limit: 5, MinScore: -0.1}},
		{"min score above one", knowledge.SearchQuery{Text: "oil", Limit: 5, MinScore: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Search(context.Background(), tt.query)
			assert.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
}

func TestSearchZeroLimitUsesDefault(t *testing.T) {
	var corpus []knowledge.Article
	for i := 0; i < 15; i++ {
		corpus = append(corpus, knowledgetest.Article(fmt.Sprintf("oil-%02d", i), "Oil Notes",
			knowledge.CategoryMaterials, knowledge.DifficultyBeginner, []string{"woodworking"}, []string{"oil"}))
	}
	r := newTestRanker(t, corpus)

	results, err := r.Search(context.Background(), knowledge.SearchQuery{Text: "oil", MinScore: 0.2})
	require.NoError(t, err)
	assert.Len(t, results, knowledge.DefaultSearchLimit)
	assert.Equal(t, "oil-00", results[0].Article.ID)
	assert.Equal(t, "oil-09", results[9].Article.ID)
}

func TestSearchStoreFailure(t *testing.T) {
	boom := errors.New("connection refused")
	r := NewRanker(failingStore{err: boom}, nil)

	_, err := r.Search(context.Background(), knowledge.NewSearchQuery("centering clay"))
	assert.ErrorIs(t, err, boom)
}

type fixedScorer float64

func (f fixedScorer) Score(string, knowledge.Article) float64 { return float64(f) }

func TestRankClampsPluggableScorer(t *testing.T) {
	corpus := knowledgetest.Corpus()
	over := NewRanker(mustStore(t, corpus), fixedScorer(3.2))
	results := over.Rank(knowledge.SearchQuery{Text: "x", MinScore: 0.2, Limit: 2}, corpus)
	require.Len(t, results, 2)
	assert.Equal(t, 1.0, results[0].Score)
	assert.Equal(t, "metal-001", results[0].Article.ID, "ties fall back to id order")

	under := NewRanker(mustStore(t, corpus), fixedScorer(-1))
	assert.Empty(t, under.Rank(knowledge.SearchQuery{Text: "x", MinScore: 0.1, Limit: 2}, corpus))
}

func TestKeywordScorerComponents(t *testing.T) {
	s := NewKeywordScorer()
	a := knowledgetest.Corpus()[0] // Sharpening Chisels and Plane Irons

	tests := []struct {
		query string
		want  float64
	}{
		{"plane irons rusted", 2.0 / 3.0},
		{"plane irons", 1.0},
		{"rusty tools", 0.5 + 0.2},
		{"maintenance", 1.0},
		{"glaze kiln", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Score(tt.query, a), 1e-9)
		})
	}

	assert.Equal(t, []string{"sharpening", "the", "chisels"}, s.Tokenize("Sharpening  the Chisels to me"))
}

func mustStore(t *testing.T, articles []knowledge.Article) *knowledge.MemoryStore {
	t.Helper()
	store, err := knowledge.NewMemoryStore(articles)
	require.NoError(t, err)
	return store
}

type failingStore struct{ err error }

func (f failingStore) Scan(context.Context, knowledge.Filters) ([]knowledge.Article, error) {
	return nil, f.err
}

var vocabulary = []string{
	"oil", "chisel", "kiln", "glaze", "forge", "dovetail", "loom", "warp",
	"sharpening", "safety", "wheel", "clay", "flux", "to", "be", "an",
}

func articleGen() *rapid.Generator[knowledge.Article] {
	return rapid.Custom(func(t *rapid.T) knowledge.Article {
		id := fmt.Sprintf("art-%03d", rapid.IntRange(0, 999).Draw(t, "id"))
		titleWords := rapid.SliceOfN(rapid.SampledFrom(vocabulary), 1, 4).Draw(t, "title")
		contentWords := rapid.SliceOfN(rapid.SampledFrom(vocabulary), 0, 8).Draw(t, "content")
		tags := rapid.SliceOfNDistinct(rapid.SampledFrom(vocabulary), 1, 3, rapid.ID[string]).Draw(t, "tags")
		a := knowledgetest.Article(id, strings.Join(titleWords, " "), knowledge.CategoryTechniques,
			knowledge.DifficultyBeginner, []string{"woodworking"}, tags)
		a.Content = strings.Join(contentWords, " ")
		return a
	})
}

func TestPropertySearchInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		corpus := rapid.SliceOfNDistinct(articleGen(), 0, 12, func(a knowledge.Article) string { return a.ID }).Draw(rt, "corpus")
		words := rapid.SliceOfN(rapid.SampledFrom(vocabulary), 1, 4).Draw(rt, "query")
		minScore := rapid.Float64Range(0, 1).Draw(rt, "minScore")
		limit := rapid.IntRange(1, 15).Draw(rt, "limit")

		store, err := knowledge.NewMemoryStore(corpus)
		if err != nil {
			rt.Fatalf("store: %v", err)
		}
		r := NewRanker(store, nil)
		q := knowledge.SearchQuery{Text: strings.Join(words, " "), Limit: limit, MinScore: minScore}

		results, err := r.Search(context.Background(), q)
		if err != nil {
			rt.Fatalf("search: %v", err)
		}
		if len(results) > limit {
			rt.Fatalf("got %d results, limit %d", len(results), limit)
		}
		for i, res := range results {
			if res.Score < 0 || res.Score > 1 {
				rt.Fatalf("score %.3f outside [0,1]", res.Score)
			}
			if res.Score < minScore {
				rt.Fatalf("score %.3f below min %.3f", res.Score, minScore)
			}
			if res.RelevanceTier != knowledge.TierFor(res.Score) {
				rt.Fatalf("tier %s does not match score %.3f", res.RelevanceTier, res.Score)
			}
			if i == 0 {
				continue
			}
			prev := results[i-1]
			if prev.Score < res.Score {
				rt.Fatalf("results not sorted: %.3f before %.3f", prev.Score, res.Score)
			}
			if prev.Score == res.Score && prev.Article.ID >= res.Article.ID {
				rt.Fatalf("tie not broken by id: %s before %s", prev.Article.ID, res.Article.ID)
			}
		}

		again, err := r.Search(context.Background(), q)
		if err != nil {
			rt.Fatalf("search again: %v", err)
		}
		if len(again) != len(results) {
			rt.Fatalf("repeat search returned %d results, first %d", len(again), len(results))
		}
		for i := range again {
			if again[i].Article.ID != results[i].Article.ID || again[i].Score != results[i].Score {
				rt.Fatalf("repeat search differs at %d", i)
			}
		}
	})
}
