package search

import (
	"strings"

	"craftguide-be/pkg/knowledge"
)

// Scorer rates how well an article answers a query, in [0,1]. The ranker
// owns thresholding, ordering and truncation, so an embedding-based scorer
// can replace KeywordScorer without touching them.
type Scorer interface {
	Score(query string, article knowledge.Article) float64
}

// KeywordScorer scores token overlap plus fixed title and tag boosts.
type KeywordScorer struct {
	TitleBoost     float64
	TagBoost       float64
	MinTokenLength int // tokens of this length or shorter are dropped
}

// NewKeywordScorer returns the scorer with the production constants.
func NewKeywordScorer() KeywordScorer {
	return KeywordScorer{
		TitleBoost:     0.3,
		TagBoost:       0.2,
		MinTokenLength: 2,
	}
}

// Tokenize lowercases, splits on whitespace and drops short tokens.
func (s KeywordScorer) Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > s.MinTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func (s KeywordScorer) Score(query string, article knowledge.Article) float64 {
	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	score := s.matchRatio(s.Tokenize(query), searchableText(article))

	if lowerQuery != "" && strings.Contains(strings.ToLower(article.Title), lowerQuery) {
		score += s.TitleBoost
	}

	for _, tag := range article.Tags {
		tag = strings.ToLower(tag)
		if tag != "" && strings.Contains(lowerQuery, tag) {
			score += s.TagBoost
			break
		}
	}

	if score > 1 {
		return 1
	}
	return score
}

func (s KeywordScorer) matchRatio(tokens []string, text string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	matched := 0
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			matched++
		}
	}
	return float64(matched) / float64(len(tokens))
}

func searchableText(a knowledge.Article) string {
	return strings.ToLower(a.Title + " " + a.Content + " " + strings.Join(a.Tags, " ") + " " + strings.Join(a.CraftTypes, " "))
}
