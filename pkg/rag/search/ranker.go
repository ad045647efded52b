package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"craftguide-be/pkg/knowledge"
)

// ErrInvalidQuery marks a malformed search query.
var ErrInvalidQuery = errors.New("invalid search query")

// Ranker filters the store, scores candidates and returns the best ones.
type Ranker struct {
	store  knowledge.Store
	scorer Scorer
}

// NewRanker wires a ranker over a store. A nil scorer means KeywordScorer.
func NewRanker(store knowledge.Store, scorer Scorer) *Ranker {
	if scorer == nil {
		scorer = NewKeywordScorer()
	}
	return &Ranker{
		store:  store,
		scorer: scorer,
	}
}

// Validate rejects negative limits and thresholds outside [0,1]. A zero
// limit is allowed and means the default.
func Validate(q knowledge.SearchQuery) error {
	if q.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidQuery, q.Limit)
	}
	if q.MinScore < 0 || q.MinScore > 1 {
		return fmt.Errorf("%w: min score must be within [0,1], got %.3f", ErrInvalidQuery, q.MinScore)
	}
	return nil
}

// Search ranks the candidates matching q.Filters. Results are sorted by
// score descending with ties broken by article id, all at or above
// q.MinScore, and at most q.Limit long.
func (r *Ranker) Search(ctx context.Context, q knowledge.SearchQuery) ([]knowledge.SearchResult, error) {
	if err := Validate(q); err != nil {
		return nil, err
	}
	if q.Limit == 0 {
		q.Limit = knowledge.DefaultSearchLimit
	}

	// Listing the whole corpus goes through an explicit filter, never an
	// empty ranker call.
	if strings.TrimSpace(q.Text) == "" && q.Filters.IsEmpty() {
		return []knowledge.SearchResult{}, nil
	}

	candidates, err := r.store.Scan(ctx, q.Filters)
	if err != nil {
		return nil, fmt.Errorf("knowledge scan failed: %w", err)
	}

	return r.Rank(q, candidates), nil
}

// Rank scores an already filtered candidate set.
func (r *Ranker) Rank(q knowledge.SearchQuery, candidates []knowledge.Article) []knowledge.SearchResult {
	results := make([]knowledge.SearchResult, 0, len(candidates))
	for _, a := range candidates {
		score := clamp(r.scorer.Score(q.Text, a))
		if score < q.MinScore {
			continue
		}
		results = append(results, knowledge.SearchResult{
			Article: a,
			Score:   score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Article.ID < results[j].Article.ID
	})

	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}

	for i := range results {
		results[i].RelevanceTier = knowledge.TierFor(results[i].Score)
	}
	return results
}

func clamp(score float64) float64 {
	switch {
	case math.IsNaN(score):
		return 0
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}
