// Package knowledgetest provides corpus fixtures for tests across the engine.
package knowledgetest

import (
	"time"

	"craftguide-be/pkg/knowledge"
)

var fixtureTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// Article builds a valid article with sensible metadata.
func Article(id, title string, category knowledge.Category, difficulty knowledge.Difficulty, crafts, tags []string) knowledge.Article {
	return knowledge.Article{
		ID:         id,
		Title:      title,
		Content:    title + ".",
		Category:   category,
		CraftTypes: crafts,
		Difficulty: difficulty,
		Tags:       tags,
		Metadata: knowledge.Metadata{
			Author:    "workshop-editors",
			CreatedAt: fixtureTime,
			UpdatedAt: fixtureTime,
			Rating:    4.2,
			Source:    "curated",
		},
	}
}

// Corpus is a small mixed-craft corpus.
func Corpus() []knowledge.Article {
	chisels := Article("wood-001", "Sharpening Chisels and Plane Irons",
		knowledge.CategoryTools, knowledge.DifficultyBeginner,
		[]string{"woodworking"}, []string{"tools", "sharpening", "maintenance"})
	chisels.Content = "Flatten the back on a coarse stone, then hone the bevel through finer grits until a burr forms."

	dovetail := Article("wood-002", "Cutting Hand Dovetails",
		knowledge.CategoryTechniques, knowledge.DifficultyIntermediate,
		[]string{"woodworking"}, []string{"joinery", "dovetail", "handsaw"})
	dovetail.Content = "Mark the tails with a bevel gauge, saw to the waste side of the line, and chop the waste with a sharp chisel."

	finishing := Article("wood-003", "Oil Finishes for Hardwood",
		knowledge.CategoryMaterials, knowledge.DifficultyBeginner,
		[]string{"woodworking"}, []string{"finishing", "oil"})
	finishing.Content = "Wipe on thin coats of oil and let each cure; rags soaked in oil can self-ignite, so dry them flat."

	centering := Article("pot-001", "Centering Clay on the Wheel",
		knowledge.CategoryTechniques, knowledge.DifficultyBeginner,
		[]string{"pottery"}, []string{"wheel", "centering", "throwing"})
	centering.Content = "Brace your elbows, keep the clay wet, and apply steady downward pressure while the wheel spins fast."

	kiln := Article("pot-002", "Kiln Safety Basics",
		knowledge.CategorySafety, knowledge.DifficultyIntermediate,
		[]string{"pottery", "glassblowing"}, []string{"kiln", "ventilation", "safety"})
	kiln.Content = "Ventilate the kiln room, wear heat resistant gloves, and never open a kiln above 150 degrees."

	forge := Article("metal-001", "Forge Welding Troubleshooting",
		knowledge.CategoryTroubleshooting, knowledge.DifficultyAdvanced,
		[]string{"metalworking", "blacksmithing"}, []string{"forge", "welding", "flux"})
	forge.Content = "Scale and low heat cause failed welds; use borax flux and bring both pieces to a bright yellow heat."

	return []knowledge.Article{chisels, dovetail, finishing, centering, kiln, forge}
}
