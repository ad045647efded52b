package craft

import (
	"strings"
)

// CraftType identifies a craft discipline. The set is closed; every catalog
// keyed by craft is keyed by these values.
type CraftType string

const (
	Woodworking    CraftType = "woodworking"
	Metalworking   CraftType = "metalworking"
	Pottery        CraftType = "pottery"
	Leatherworking CraftType = "leatherworking"
	Weaving        CraftType = "weaving"
	Blacksmithing  CraftType = "blacksmithing"
)

// GeneralCraft is the label used when a user has no specialization.
const GeneralCraft = "general"

var allCraftTypes = []CraftType{
	Woodworking,
	Metalworking,
	Pottery,
	Leatherworking,
	Weaving,
	Blacksmithing,
}

// AllCraftTypes returns every known craft type in declaration order.
func AllCraftTypes() []CraftType {
	out := make([]CraftType, len(allCraftTypes))
	copy(out, allCraftTypes)
	return out
}

// ParseCraftType matches a craft name case-insensitively.
func ParseCraftType(s string) (CraftType, bool) {
	v := CraftType(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range allCraftTypes {
		if c == v {
			return c, true
		}
	}
	return "", false
}

// SkillLevel is ordered from novice to master.
type SkillLevel string

const (
	Novice     SkillLevel = "novice"
	Apprentice SkillLevel = "apprentice"
	Journeyman SkillLevel = "journeyman"
	Craftsman  SkillLevel = "craftsman"
	Master     SkillLevel = "master"
)

var skillOrder = map[SkillLevel]int{
	Novice:     1,
	Apprentice: 2,
	Journeyman: 3,
	Craftsman:  4,
	Master:     5,
}

// ParseSkillLevel matches a skill level case-insensitively.
func ParseSkillLevel(s string) (SkillLevel, bool) {
	v := SkillLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := skillOrder[v]; ok {
		return v, true
	}
	return "", false
}

// Rank returns the position of the level in the ladder, 0 for unknown.
func (s SkillLevel) Rank() int {
	return skillOrder[s]
}

// UserContext is the slice of the user's profile the engine reads.
type UserContext struct {
	CraftSpecializations []string
	SkillLevel           SkillLevel
	OwnedTools           []string
	MissingTools         []string
}

// Specializations returns the lowercased, trimmed, de-duplicated
// specializations in their original order.
func (u UserContext) Specializations() []string {
	return NormalizeSet(u.CraftSpecializations)
}

// PrimaryCraft is the first specialization, or GeneralCraft when there is none.
func (u UserContext) PrimaryCraft() string {
	specs := u.Specializations()
	if len(specs) == 0 {
		return GeneralCraft
	}
	return specs[0]
}

// NormalizeSet lowercases and trims every value, dropping blanks and
// duplicates while keeping first-seen order.
func NormalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
