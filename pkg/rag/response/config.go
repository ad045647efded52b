package response

import (
	"time"

	"craftguide-be/pkg/knowledge"
)

// Config holds the composer's tunables.
type Config struct {
	CitationLimit         int
	MinScore              float64
	BaselineConfidence    int
	DegradedConfidence    int
	CorroborationBonus    int
	MaxCorroborationBonus int
	MaxSuggestions        int
	MaxFollowUps          int
	GenerationTimeout     time.Duration
}

func DefaultConfig() Config {
	return Config{
		CitationLimit:         5,
		MinScore:              knowledge.DefaultMinScore,
		BaselineConfidence:    40,
		DegradedConfidence:    20,
		CorroborationBonus:    2,
		MaxCorroborationBonus: 10,
		MaxSuggestions:        5,
		MaxFollowUps:          3,
		GenerationTimeout:     30 * time.Second,
	}
}

// withDefaults fills zero fields from DefaultConfig. MinScore and the
// confidence values are taken as given since zero is meaningful for them.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CitationLimit <= 0 {
		c.CitationLimit = d.CitationLimit
	}
	if c.MaxSuggestions <= 0 {
		c.MaxSuggestions = d.MaxSuggestions
	}
	if c.MaxFollowUps <= 0 {
		c.MaxFollowUps = d.MaxFollowUps
	}
	if c.GenerationTimeout <= 0 {
		c.GenerationTimeout = d.GenerationTimeout
	}
	return c
}
