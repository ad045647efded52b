package specification

import (
	"encoding/json"
	"strings"

	"craftguide-be/pkg/knowledge"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ByCraftTypes matches articles whose craft_types array shares at least one
// value with CraftTypes. Empty means unconstrained.
type ByCraftTypes struct {
	CraftTypes []string
}

func (s ByCraftTypes) Apply(db *gorm.DB) *gorm.DB {
	if len(s.CraftTypes) == 0 {
		return db
	}
	clauses := make([]string, 0, len(s.CraftTypes))
	args := make([]interface{}, 0, len(s.CraftTypes))
	for _, c := range s.CraftTypes {
		b, _ := json.Marshal([]string{c})
		clauses = append(clauses, "craft_types @> ?")
		args = append(args, datatypes.JSON(b))
	}
	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

type ByDifficulties struct {
	Difficulties []knowledge.Difficulty
}

func (s ByDifficulties) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Difficulties) == 0 {
		return db
	}
	values := make([]string, len(s.Difficulties))
	for i, d := range s.Difficulties {
		values[i] = string(d)
	}
	return db.Where("difficulty IN ?", values)
}

type ByCategories struct {
	Categories []knowledge.Category
}

func (s ByCategories) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Categories) == 0 {
		return db
	}
	values := make([]string, len(s.Categories))
	for i, c := range s.Categories {
		values[i] = string(c)
	}
	return db.Where("category IN ?", values)
}

type ByArticleIDs struct {
	IDs []string
}

func (s ByArticleIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

// ForFilters expands scan filters into specifications.
func ForFilters(f knowledge.Filters) []Specification {
	return []Specification{
		ByCraftTypes{CraftTypes: f.CraftTypes},
		ByDifficulties{Difficulties: f.Difficulties},
		ByCategories{Categories: f.Categories},
	}
}
