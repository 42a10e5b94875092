package registry

// Category classifies a module's role in a composed review prompt.
type Category string

const (
	CategoryCore        Category = "core"
	CategorySpecialized Category = "specialized"
	CategoryTechStack   Category = "tech_stack"
	CategoryChecklist   Category = "checklist"
)

// CategoryRank returns a numeric priority for planning (lower = kept longer).
// Core modules rank first and are never dropped for budget reasons.
func CategoryRank(c Category) int {
	switch c {
	case CategoryCore:
		return 0
	case CategorySpecialized:
		return 1
	case CategoryTechStack:
		return 2
	case CategoryChecklist:
		return 3
	default:
		return 4
	}
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryCore, CategorySpecialized, CategoryTechStack, CategoryChecklist:
		return true
	}
	return false
}

// Module is a self-contained unit of review guidance with a declared token
// cost, category, tags, and dependencies on other modules.
type Module struct {
	ID            string   `json:"id"`
	Title         string   `json:"title,omitempty"`
	Category      Category `json:"category"`
	TokenEstimate int      `json:"tokenEstimate"`
	Dependencies  []string `json:"dependencies,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	// Items is the number of checklist items for checklist-category modules.
	// Zero for modules that are not scored item-by-item.
	Items   int    `json:"items,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// HasTag reports whether the module carries the given tag.
func (m Module) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
