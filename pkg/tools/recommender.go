package tools

import (
	"sort"
	"strings"

	"craftguide-be/pkg/craft"
)

// Recommendation is a catalog entry selected for a specific user.
type Recommendation struct {
	ToolName      string          `json:"tool_name"`
	Category      string          `json:"category"`
	Reason        string          `json:"reason"`
	Priority      Priority        `json:"priority"`
	CraftType     craft.CraftType `json:"craft_type"`
	EstimatedCost *float64        `json:"estimated_cost,omitempty"`
	Alternatives  []string        `json:"alternatives,omitempty"`
}

// Recommender filters a catalog against a user's level and inventory.
type Recommender struct {
	catalog Catalog
}

func NewRecommender(catalog Catalog) *Recommender {
	return &Recommender{catalog: catalog}
}

// Recommend returns the catalog entries for craftType that the user does not
// own and that suit their level, highest priority first. Equal priorities
// keep catalog order. An unknown craft yields an empty list.
func (r *Recommender) Recommend(craftType craft.CraftType, level craft.SkillLevel, owned []string) []Recommendation {
	entries := r.catalog[craftType]

	ownedSet := make(map[string]bool, len(owned))
	for _, name := range owned {
		ownedSet[normalizeName(name)] = true
	}

	out := make([]Recommendation, 0, len(entries))
	for _, e := range entries {
		if ownedSet[normalizeName(e.Name)] {
			continue
		}
		if !e.EligibleFor(level) {
			continue
		}
		out = append(out, Recommendation{
			ToolName:      e.Name,
			Category:      e.Category,
			Reason:        e.Reason,
			Priority:      e.Priority,
			CraftType:     craftType,
			EstimatedCost: e.EstimatedCost,
			Alternatives:  append([]string(nil), e.Alternatives...),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Weight() > out[j].Priority.Weight()
	})
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
