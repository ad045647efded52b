package mapper

import (
	"testing"

	"craftguide-be/internal/dto"
	"craftguide-be/pkg/craft"
	"craftguide-be/pkg/knowledge/knowledgetest"

	"github.com/stretchr/testify/assert"
)

func TestKnowledgeMapperRoundTrip(t *testing.T) {
	m := NewKnowledgeMapper()
	for _, a := range knowledgetest.Corpus() {
		assert.Equal(t, a, m.ToArticle(m.ToModel(a)))
	}
}

func TestToUserContextIgnoresUnknownLevel(t *testing.T) {
	u := NewGuidanceMapper().ToUserContext(dto.UserContextDTO{
		CraftSpecializations: []string{"weaving"},
		SkillLevel:           "grandmaster",
	})
	assert.Equal(t, craft.SkillLevel(""), u.SkillLevel)
	assert.Equal(t, []string{"weaving"}, u.CraftSpecializations)
}
