package prompt

import (
	"fmt"
	"strings"

	"craftguide-be/pkg/craft"
	"craftguide-be/pkg/knowledge"
)

// Context is everything the generation service receives for one question.
type Context struct {
	AugmentedText string
	Results       []knowledge.SearchResult
	User          craft.UserContext
}

// Builder renders a Context into the grounded prompt text.
type Builder struct {
	// MaxArticleChars trims long article bodies; 0 keeps them whole.
	MaxArticleChars int
}

func NewBuilder() *Builder {
	return &Builder{MaxArticleChars: 2000}
}

// Build creates the prompt: reference material, the user's profile, the
// instructions, then the enriched question.
func (b *Builder) Build(c Context) string {
	var prompt strings.Builder

	b.writeReferenceMaterial(&prompt, c.Results)
	b.writeProfile(&prompt, c.User)
	b.writeTask(&prompt)
	b.writeUserQuestion(&prompt, c.AugmentedText)

	return prompt.String()
}

func (b *Builder) writeReferenceMaterial(prompt *strings.Builder, results []knowledge.SearchResult) {
	prompt.WriteString("<reference_material>\n")
	if len(results) == 0 {
		prompt.WriteString("No curated articles matched this question. Answer from general craft practice and say so.\n")
	}
	for i, r := range results {
		a := r.Article
		prompt.WriteString(fmt.Sprintf("\n--- SOURCE %d: %s (%s, %s, relevance %s) ---\n",
			i+1, a.Title, a.Category, a.Difficulty, r.RelevanceTier))
		prompt.WriteString(b.trim(a.Content))
		prompt.WriteString(fmt.Sprintf("\n--- END OF SOURCE %d ---\n", i+1))
	}
	prompt.WriteString("</reference_material>\n\n")
}

func (b *Builder) writeProfile(prompt *strings.Builder, user craft.UserContext) {
	level := string(user.SkillLevel)
	if level == "" {
		level = "unknown"
	}
	crafts := user.Specializations()
	craftList := craft.GeneralCraft
	if len(crafts) > 0 {
		craftList = strings.Join(crafts, ", ")
	}

	prompt.WriteString("<craftsperson_profile>\n")
	prompt.WriteString(fmt.Sprintf("Specializations: %s\n", craftList))
	prompt.WriteString(fmt.Sprintf("Skill level: %s\n", level))
	prompt.WriteString("</craftsperson_profile>\n\n")
}

func (b *Builder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString("You are an experienced workshop mentor answering a craftsperson's question.\n")
	prompt.WriteString("1. Ground your answer in the reference material; prefer higher relevance sources.\n")
	prompt.WriteString("2. Match the depth of the answer to the skill level in the profile.\n")
	prompt.WriteString("3. Only suggest techniques the listed available tools allow, or name the missing tool plainly.\n")
	prompt.WriteString("4. Call out safety precautions whenever heat, blades or chemicals are involved.\n")
	prompt.WriteString("5. Do not add source markers like [1]; citations are attached separately.\n")
	prompt.WriteString("</task>\n\n")
}

func (b *Builder) writeUserQuestion(prompt *strings.Builder, text string) {
	prompt.WriteString("<user_question>\n")
	prompt.WriteString(text)
	prompt.WriteString("\n</user_question>\n\n")
	prompt.WriteString("Answer:")
}

func (b *Builder) trim(content string) string {
	if b.MaxArticleChars <= 0 {
		return content
	}
	runes := []rune(content)
	if len(runes) <= b.MaxArticleChars {
		return content
	}
	return string(runes[:b.MaxArticleChars]) + "..."
}
