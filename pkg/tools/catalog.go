package tools

import "craftguide-be/pkg/craft"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var priorityWeight = map[Priority]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Weight is the sort weight of a priority; unknown priorities weigh 0.
func (p Priority) Weight() int {
	return priorityWeight[p]
}

// CatalogEntry is one recommendable tool.
type CatalogEntry struct {
	Name          string
	Category      string
	Reason        string
	Priority      Priority
	SkillLevels   []craft.SkillLevel
	EstimatedCost *float64
	Alternatives  []string
}

// EligibleFor reports whether the entry targets the given skill level.
func (e CatalogEntry) EligibleFor(level craft.SkillLevel) bool {
	for _, l := range e.SkillLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Catalog groups entries by craft. Order within a craft is significant: it
// decides ties after the priority sort.
type Catalog map[craft.CraftType][]CatalogEntry

func cost(v float64) *float64 { return &v }

var (
	beginnerLevels = []craft.SkillLevel{craft.Novice, craft.Apprentice}
	middleLevels   = []craft.SkillLevel{craft.Apprentice, craft.Journeyman, craft.Craftsman}
	seniorLevels   = []craft.SkillLevel{craft.Journeyman, craft.Craftsman, craft.Master}
	allLevels      = []craft.SkillLevel{craft.Novice, craft.Apprentice, craft.Journeyman, craft.Craftsman, craft.Master}
)

// DefaultCatalog builds the bundled recommendation catalog. Every craft type
// has an entry list, even if short.
func DefaultCatalog() Catalog {
	return Catalog{
		craft.Woodworking: {
			{Name: "Combination Square", Category: "measuring", Reason: "Accurate layout is the base of every joint", Priority: PriorityHigh, SkillLevels: allLevels, EstimatedCost: cost(25), Alternatives: []string{"Speed Square"}},
			{Name: "Bench Chisel Set", Category: "hand tools", Reason: "Needed for joinery cleanup and paring", Priority: PriorityHigh, SkillLevels: beginnerLevels, EstimatedCost: cost(60)},
			{Name: "Sharpening Stones", Category: "maintenance", Reason: "Sharp edges are safer and cut cleaner", Priority: PriorityMedium, SkillLevels: allLevels, EstimatedCost: cost(45), Alternatives: []string{"Diamond Plates", "Scary Sharp Sandpaper"}},
			{Name: "Low Angle Jack Plane", Category: "hand tools", Reason: "Flattens and trues stock without a jointer", Priority: PriorityMedium, SkillLevels: middleLevels, EstimatedCost: cost(180)},
			{Name: "Router Plane", Category: "hand tools", Reason: "Cleans dados and tenon cheeks to exact depth", Priority: PriorityLow, SkillLevels: seniorLevels, EstimatedCost: cost(150)},
		},
		craft.Metalworking: {
			{Name: "Safety Glasses", Category: "safety", Reason: "Eye protection for grinding and cutting", Priority: PriorityHigh, SkillLevels: allLevels, EstimatedCost: cost(12)},
			{Name: "Bench Vise", Category: "workholding", Reason: "Holds stock steady for filing and sawing", Priority: PriorityHigh, SkillLevels: beginnerLevels, EstimatedCost: cost(90)},
			{Name: "Digital Calipers", Category: "measuring", Reason: "Precise measurement for fitting parts", Priority: PriorityMedium, SkillLevels: middleLevels, EstimatedCost: cost(30)},
			{Name: "MIG Welder", Category: "power tools", Reason: "Joins steel quickly once fundamentals are solid", Priority: PriorityLow, SkillLevels: seniorLevels, EstimatedCost: cost(600), Alternatives: []string{"Flux Core Welder"}},
		},
		craft.Pottery: {
			{Name: "Wire Clay Cutter", Category: "hand tools", Reason: "Cuts clay from the bag and pots from the wheel", Priority: PriorityHigh, SkillLevels: beginnerLevels, EstimatedCost: cost(6)},
			{Name: "Rib Set", Category: "hand tools", Reason: "Shapes and compresses walls while throwing", Priority: PriorityMedium, SkillLevels: allLevels, EstimatedCost: cost(15)},
			{Name: "Banding Wheel", Category: "equipment", Reason: "Turns work for trimming and decorating", Priority: PriorityMedium, SkillLevels: beginnerLevels, EstimatedCost: cost(70)},
			{Name: "Trimming Tools", Category: "hand tools", Reason: "Refines feet and removes excess clay", Priority: PriorityHigh, SkillLevels: middleLevels, EstimatedCost: cost(20)},
			{Name: "Pyrometer", Category: "equipment", Reason: "Reads kiln temperature during firing", Priority: PriorityLow, SkillLevels: seniorLevels, EstimatedCost: cost(120), Alternatives: []string{"Witness Cones"}},
		},
		craft.Leatherworking: {
			{Name: "Stitching Chisels", Category: "hand tools", Reason: "Punches evenly spaced stitch holes", Priority: PriorityHigh, SkillLevels: beginnerLevels, EstimatedCost: cost(35), Alternatives: []string{"Overstitch Wheel and Awl"}},
			{Name: "Edge Beveler", Category: "hand tools", Reason: "Rounds edges before burnishing", Priority: PriorityMedium, SkillLevels: allLevels, EstimatedCost: cost(18)},
			{Name: "Head Knife", Category: "cutting", Reason: "Cuts curves and skives in one tool", Priority: PriorityLow, SkillLevels: seniorLevels, EstimatedCost: cost(140)},
		},
		craft.Weaving: {
			{Name: "Warping Board", Category: "equipment", Reason: "Measures long warps accurately", Priority: PriorityHigh, SkillLevels: beginnerLevels, EstimatedCost: cost(80)},
			{Name: "Boat Shuttle", Category: "hand tools", Reason: "Speeds weft insertion on wider cloth", Priority: PriorityMedium, SkillLevels: middleLevels, EstimatedCost: cost(40), Alternatives: []string{"Stick Shuttle"}},
			{Name: "Tablet Cards", Category: "equipment", Reason: "Opens up patterned bands and trims", Priority: PriorityLow, SkillLevels: seniorLevels, EstimatedCost: cost(10)},
		},
		craft.Blacksmithing: {
			{Name: "Cross Peen Hammer", Category: "hand tools", Reason: "The general forging hammer for drawing out", Priority: PriorityHigh, SkillLevels: allLevels, EstimatedCost: cost(55)},
			{Name: "Wolf Jaw Tongs", Category: "workholding", Reason: "Grip both flat and round stock", Priority: PriorityHigh, SkillLevels: beginnerLevels, EstimatedCost: cost(45)},
			{Name: "Hardy Tools", Category: "anvil tooling", Reason: "Cut and form in the hardy hole", Priority: PriorityMedium, SkillLevels: middleLevels, EstimatedCost: cost(60)},
			{Name: "Power Hammer", Category: "power tools", Reason: "Moves large stock efficiently", Priority: PriorityLow, SkillLevels: []craft.SkillLevel{craft.Master}, EstimatedCost: cost(8000)},
		},
	}
}
