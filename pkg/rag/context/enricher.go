package context

import (
	"strings"

	"craftguide-be/pkg/craft"
)

const (
	ownedToolsLabel   = "My available tools: "
	missingToolsLabel = "Tools I don't have: "
	noTools           = "none"

	// ToolInstruction closes every augmented query.
	ToolInstruction = "Please take into account the tools I have available when giving advice."
)

// EnrichedQuery is the raw question merged with the user's workshop state.
type EnrichedQuery struct {
	OriginalText  string
	AugmentedText string
	// DerivedCraftFilter is nil when the user has no specialization, which
	// leaves the craft axis unconstrained.
	DerivedCraftFilter []string
}

// Enrich appends the user's owned and missing tools to the question and
// derives the craft filter from their specializations. Empty input yields
// "none" lists and no filter.
func Enrich(text string, user craft.UserContext) EnrichedQuery {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(ownedToolsLabel)
	b.WriteString(joinTools(user.OwnedTools))
	b.WriteString("\n")
	b.WriteString(missingToolsLabel)
	b.WriteString(joinTools(user.MissingTools))
	b.WriteString("\n")
	b.WriteString(ToolInstruction)

	return EnrichedQuery{
		OriginalText:       text,
		AugmentedText:      b.String(),
		DerivedCraftFilter: user.Specializations(),
	}
}

func joinTools(tools []string) string {
	cleaned := CleanToolNames(tools)
	if len(cleaned) == 0 {
		return noTools
	}
	return strings.Join(cleaned, ", ")
}

// CleanToolNames trims names and drops blanks and case-insensitive
// duplicates, keeping the first spelling seen.
func CleanToolNames(tools []string) []string {
	out := make([]string, 0, len(tools))
	seen := make(map[string]bool, len(tools))
	for _, t := range tools {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
