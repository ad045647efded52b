package knowledge

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidArticle is returned when an article breaks a corpus invariant.
var ErrInvalidArticle = errors.New("invalid knowledge article")

type Category string

const (
	CategoryTechniques      Category = "techniques"
	CategoryMaterials       Category = "materials"
	CategoryTools           Category = "tools"
	CategorySafety          Category = "safety"
	CategoryProjects        Category = "projects"
	CategoryTroubleshooting Category = "troubleshooting"
)

var categories = map[Category]bool{
	CategoryTechniques:      true,
	CategoryMaterials:       true,
	CategoryTools:           true,
	CategorySafety:          true,
	CategoryProjects:        true,
	CategoryTroubleshooting: true,
}

func (c Category) Valid() bool { return categories[c] }

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

var difficulties = map[Difficulty]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyAdvanced:     true,
	DifficultyExpert:       true,
}

func (d Difficulty) Valid() bool { return difficulties[d] }

// Metadata is maintained by collaborators; the ranker only reads it.
type Metadata struct {
	Author    string    `json:"author" yaml:"author"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
	ViewCount int64     `json:"view_count" yaml:"view_count"`
	Rating    float64   `json:"rating" yaml:"rating"`
	Source    string    `json:"source" yaml:"source"`
}

// Article is a single curated piece of craft knowledge.
type Article struct {
	ID         string     `json:"id" yaml:"id"`
	Title      string     `json:"title" yaml:"title"`
	Content    string     `json:"content" yaml:"content"`
	Category   Category   `json:"category" yaml:"category"`
	CraftTypes []string   `json:"craft_types" yaml:"craft_types"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	Tags       []string   `json:"tags" yaml:"tags"`
	Metadata   Metadata   `json:"metadata" yaml:"metadata"`
}

// Validate checks the corpus invariants: an id, a known category and
// difficulty, non-empty lowercase craft type and tag sets, rating in [0,5].
func (a Article) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidArticle)
	}
	if !a.Category.Valid() {
		return fmt.Errorf("%w: article %s has unknown category %q", ErrInvalidArticle, a.ID, a.Category)
	}
	if !a.Difficulty.Valid() {
		return fmt.Errorf("%w: article %s has unknown difficulty %q", ErrInvalidArticle, a.ID, a.Difficulty)
	}
	if err := validateLowerSet("craft_types", a.CraftTypes); err != nil {
		return fmt.Errorf("%w: article %s: %v", ErrInvalidArticle, a.ID, err)
	}
	if err := validateLowerSet("tags", a.Tags); err != nil {
		return fmt.Errorf("%w: article %s: %v", ErrInvalidArticle, a.ID, err)
	}
	if a.Metadata.Rating < 0 || a.Metadata.Rating > 5 {
		return fmt.Errorf("%w: article %s rating %.2f outside [0,5]", ErrInvalidArticle, a.ID, a.Metadata.Rating)
	}
	if a.Metadata.ViewCount < 0 {
		return fmt.Errorf("%w: article %s has negative view count", ErrInvalidArticle, a.ID)
	}
	return nil
}

func validateLowerSet(field string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%s must not be empty", field)
	}
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" || v != strings.ToLower(v) {
			return fmt.Errorf("%s value %q must be non-empty lowercase", field, v)
		}
		if seen[v] {
			return fmt.Errorf("%s value %q is duplicated", field, v)
		}
		seen[v] = true
	}
	return nil
}

// Clone returns a copy that shares no slices with a.
func (a Article) Clone() Article {
	out := a
	out.CraftTypes = append([]string(nil), a.CraftTypes...)
	out.Tags = append([]string(nil), a.Tags...)
	return out
}
