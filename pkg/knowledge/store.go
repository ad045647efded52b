package knowledge

import (
	"context"
	"fmt"
	"sync"
)

// Store answers filtered scans over the corpus. Implementations give no
// ordering guarantee; an empty result is not an error.
type Store interface {
	Scan(ctx context.Context, filters Filters) ([]Article, error)
}

// Tracker is the collaborator side of the corpus: usage counters and
// ratings. The ranker never calls it.
type Tracker interface {
	RecordViews(ctx context.Context, ids []string) error
	ApplyRating(ctx context.Context, id string, rating float64) error
}

// MemoryStore keeps the corpus in process. Scans return copies so a query
// never observes a concurrent collaborator update half-way.
type MemoryStore struct {
	mu       sync.RWMutex
	articles []Article
	index    map[string]int
}

var (
	_ Store   = (*MemoryStore)(nil)
	_ Tracker = (*MemoryStore)(nil)
)

// NewMemoryStore validates every article and rejects duplicate ids.
func NewMemoryStore(articles []Article) (*MemoryStore, error) {
	s := &MemoryStore{
		articles: make([]Article, 0, len(articles)),
		index:    make(map[string]int, len(articles)),
	}
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.index[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidArticle, a.ID)
		}
		s.index[a.ID] = len(s.articles)
		s.articles = append(s.articles, a.Clone())
	}
	return s, nil
}

func (s *MemoryStore) Scan(ctx context.Context, filters Filters) ([]Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Article, 0, len(s.articles))
	for _, a := range s.articles {
		if filters.Matches(a) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

// Len returns the corpus size.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}

// Get returns a copy of the article with the given id.
func (s *MemoryStore) Get(id string) (Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return Article{}, false
	}
	return s.articles[i].Clone(), true
}

// RecordViews increments the view count of every known id; unknown ids are
// ignored.
func (s *MemoryStore) RecordViews(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if i, ok := s.index[id]; ok {
			s.articles[i].Metadata.ViewCount++
		}
	}
	return nil
}

// ApplyRating folds a 0..5 rating into the article's running rating.
func (s *MemoryStore) ApplyRating(_ context.Context, id string, rating float64) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("rating %.2f outside [0,5]", rating)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("article %s not found", id)
	}
	meta := &s.articles[i].Metadata
	meta.Rating = BlendRating(meta.Rating, meta.ViewCount, rating)
	return nil
}

// BlendRating averages a new rating into the current one, weighting the
// current value by the view count (at least one sample once rated).
func BlendRating(current float64, views int64, rating float64) float64 {
	if current == 0 && views == 0 {
		return rating
	}
	weight := float64(views)
	if weight < 1 {
		weight = 1
	}
	blended := (current*weight + rating) / (weight + 1)
	if blended < 0 {
		return 0
	}
	if blended > 5 {
		return 5
	}
	return blended
}
