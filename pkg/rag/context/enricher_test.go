package context

import (
	"testing"

	"craftguide-be/pkg/craft"

	"github.com/stretchr/testify/assert"
)

func TestEnrich(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		user       craft.UserContext
		wantText   string
		wantFilter []string
	}{
		{
			name: "tools and specializations",
			text: "How do I flatten a board?",
			user: craft.UserContext{
				CraftSpecializations: []string{"Woodworking"},
				SkillLevel:           craft.Apprentice,
				OwnedTools:           []string{"Jack Plane", " Winding Sticks "},
				MissingTools:         []string{"Jointer"},
			},
			wantText: "How do I flatten a board?\n\n" +
				"My available tools: Jack Plane, Winding Sticks\n" +
				"Tools I don't have: Jointer\n" +
				ToolInstruction,
			wantFilter: []string{"woodworking"},
		},
		{
			name: "empty everything",
			text: "",
			user: craft.UserContext{},
			wantText: "\n\n" +
				"My available tools: none\n" +
				"Tools I don't have: none\n" +
				ToolInstruction,
			wantFilter: nil,
		},
		{
			name: "duplicate and blank tools collapse",
			text: "glaze",
			user: craft.UserContext{
				CraftSpecializations: []string{" ", "pottery", "Pottery"},
				OwnedTools:           []string{"Banding Wheel", "banding wheel", ""},
			},
			wantText: "glaze\n\n" +
				"My available tools: Banding Wheel\n" +
				"Tools I don't have: none\n" +
				ToolInstruction,
			wantFilter: []string{"pottery"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Enrich(tt.text, tt.user)
			assert.Equal(t, tt.text, got.OriginalText)
			assert.Equal(t, tt.wantText, got.AugmentedText)
			assert.Equal(t, tt.wantFilter, got.DerivedCraftFilter)
		})
	}
}

func TestEnrichIsDeterministic(t *testing.T) {
	user := craft.UserContext{
		CraftSpecializations: []string{"metalworking", "blacksmithing"},
		OwnedTools:           []string{"Anvil", "Cross Peen Hammer"},
		MissingTools:         []string{"Power Hammer"},
	}
	assert.Equal(t, Enrich("forge weld", user), Enrich("forge weld", user))
}
