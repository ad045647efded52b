package knowledge

const (
	DefaultSearchLimit = 10
	DefaultMinScore    = 0.2
)

// Filters constrain a scan. A nil or empty axis does not filter.
type Filters struct {
	CraftTypes   []string     `json:"craft_types,omitempty"`
	Difficulties []Difficulty `json:"difficulties,omitempty"`
	Categories   []Category   `json:"categories,omitempty"`
}

// IsEmpty reports whether no axis is constrained.
func (f Filters) IsEmpty() bool {
	return len(f.CraftTypes) == 0 && len(f.Difficulties) == 0 && len(f.Categories) == 0
}

// Matches applies the filter axes to a single article.
func (f Filters) Matches(a Article) bool {
	if len(f.CraftTypes) > 0 && !intersects(f.CraftTypes, a.CraftTypes) {
		return false
	}
	if len(f.Difficulties) > 0 && !containsDifficulty(f.Difficulties, a.Difficulty) {
		return false
	}
	if len(f.Categories) > 0 && !containsCategory(f.Categories, a.Category) {
		return false
	}
	return true
}

func intersects(filter, values []string) bool {
	for _, want := range filter {
		for _, v := range values {
			if v == want {
				return true
			}
		}
	}
	return false
}

func containsDifficulty(filter []Difficulty, d Difficulty) bool {
	for _, want := range filter {
		if want == d {
			return true
		}
	}
	return false
}

func containsCategory(filter []Category, c Category) bool {
	for _, want := range filter {
		if want == c {
			return true
		}
	}
	return false
}

// SearchQuery is a ranked lookup against the store.
type SearchQuery struct {
	Text     string
	Filters  Filters
	Limit    int
	MinScore float64
}

// NewSearchQuery returns a query carrying the default limit and threshold.
func NewSearchQuery(text string) SearchQuery {
	return SearchQuery{
		Text:     text,
		Limit:    DefaultSearchLimit,
		MinScore: DefaultMinScore,
	}
}

type RelevanceTier string

const (
	TierHigh   RelevanceTier = "high"
	TierMedium RelevanceTier = "medium"
	TierLow    RelevanceTier = "low"
)

// TierFor buckets a score: high above 0.7, medium above 0.4, otherwise low.
func TierFor(score float64) RelevanceTier {
	switch {
	case score > 0.7:
		return TierHigh
	case score > 0.4:
		return TierMedium
	default:
		return TierLow
	}
}

// SearchResult is one ranked article.
type SearchResult struct {
	Article       Article       `json:"article"`
	Score         float64       `json:"score"`
	RelevanceTier RelevanceTier `json:"relevance_tier"`
}
