package tools

import (
	"strings"
	"testing"

	"craftguide-be/pkg/craft"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func names(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ToolName
	}
	return out
}

func TestRecommendExcludesOwnedWireClayCutter(t *testing.T) {
	r := NewRecommender(DefaultCatalog())

	recs := r.Recommend(craft.Pottery, craft.Novice, []string{"Wire Clay Cutter"})
	assert.NotContains(t, names(recs), "Wire Clay Cutter")
	assert.Equal(t, []string{"Rib Set", "Banding Wheel"}, names(recs))

	withCutter := r.Recommend(craft.Pottery, craft.Novice, nil)
	assert.Equal(t, "Wire Clay Cutter", withCutter[0].ToolName)
}

func TestRecommendOwnedMatchIsCaseInsensitive(t *testing.T) {
	r := NewRecommender(DefaultCatalog())
	recs := r.Recommend(craft.Pottery, craft.Novice, []string{"  wire CLAY cutter "})
	assert.NotContains(t, names(recs), "Wire Clay Cutter")
}

func TestRecommendFiltersBySkillLevel(t *testing.T) {
	r := NewRecommender(DefaultCatalog())

	master := r.Recommend(craft.Blacksmithing, craft.Master, nil)
	assert.Equal(t, []string{"Cross Peen Hammer", "Power Hammer"}, names(master))

	novice := r.Recommend(craft.Blacksmithing, craft.Novice, nil)
	assert.Equal(t, []string{"Cross Peen Hammer", "Wolf Jaw Tongs"}, names(novice))
}

func TestRecommendPrioritySortIsStable(t *testing.T) {
	catalog := Catalog{
		craft.Weaving: {
			{Name: "A", Priority: PriorityLow, SkillLevels: allLevels},
			{Name: "B", Priority: PriorityHigh, SkillLevels: allLevels},
			{Name: "C", Priority: PriorityMedium, SkillLevels: allLevels},
			{Name: "D", Priority: PriorityHigh, SkillLevels: allLevels},
			{Name: "E", Priority: PriorityLow, SkillLevels: allLevels},
		},
	}
	recs := NewRecommender(catalog).Recommend(craft.Weaving, craft.Journeyman, nil)
	assert.Equal(t, []string{"B", "D", "C", "A", "E"}, names(recs))
	for _, rec := range recs {
		assert.Equal(t, craft.Weaving, rec.CraftType)
	}
}

func TestRecommendUnknownCraft(t *testing.T) {
	r := NewRecommender(DefaultCatalog())
	recs := r.Recommend(craft.CraftType("glassblowing"), craft.Novice, nil)
	require.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestDefaultCatalogCoversEveryCraft(t *testing.T) {
	catalog := DefaultCatalog()
	for _, c := range craft.AllCraftTypes() {
		entries, ok := catalog[c]
		assert.True(t, ok, "catalog missing %s", c)
		assert.NotEmpty(t, entries, "catalog empty for %s", c)
		for _, e := range entries {
			assert.NotZero(t, e.Priority.Weight(), "%s/%s has unknown priority", c, e.Name)
			assert.NotEmpty(t, e.SkillLevels, "%s/%s has no skill levels", c, e.Name)
		}
	}
}

func TestPropertyNeverRecommendsOwnedTools(t *testing.T) {
	catalog := DefaultCatalog()
	r := NewRecommender(catalog)
	crafts := craft.AllCraftTypes()
	levels := allLevels

	rapid.Check(t, func(rt *rapid.T) {
		c := rapid.SampledFrom(crafts).Draw(rt, "craft")
		level := rapid.SampledFrom(levels).Draw(rt, "level")

		var pool []string
		for _, e := range catalog[c] {
			pool = append(pool, e.Name, strings.ToUpper(e.Name), strings.ToLower(e.Name))
		}
		owned := rapid.SliceOfN(rapid.SampledFrom(pool), 0, len(pool)).Draw(rt, "owned")

		ownedSet := make(map[string]bool)
		for _, o := range owned {
			ownedSet[strings.ToLower(o)] = true
		}

		recs := r.Recommend(c, level, owned)
		for i, rec := range recs {
			if ownedSet[strings.ToLower(rec.ToolName)] {
				rt.Fatalf("recommended owned tool %q", rec.ToolName)
			}
			if i > 0 && recs[i-1].Priority.Weight() < rec.Priority.Weight() {
				rt.Fatalf("priority order broken at %d", i)
			}
		}
	})
}
