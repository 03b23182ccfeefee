package rules

import "strings"

var (
	registry []Category
	catIndex = map[string]int{} // category name -> index
)

// Register appends rules to the named category, creating it on first use.
// Categories and rules keep declaration order; the matcher relies on that
// order for deterministic reports, so nothing here ever sorts.
func Register(category string, rs ...Rule) {
	idx, ok := catIndex[category]
	if !ok {
		registry = append(registry, Category{Name: category})
		idx = len(registry) - 1
		catIndex[category] = idx
	}
	registry[idx].Rules = append(registry[idx].Rules, rs...)
}

// Categories returns the catalog in declaration order with disabled rules
// skipped. Callers get copies; the registry itself is never exposed.
func Categories() []Category {
	out := make([]Category, 0, len(registry))
	for _, c := range registry {
		kept := make([]Rule, 0, len(c.Rules))
		for _, r := range c.Rules {
			if rsettings.Disabled[strings.ToUpper(r.ID)] {
				continue
			}
			kept = append(kept, r)
		}
		out = append(out, Category{Name: c.Name, Rules: kept})
	}
	return out
}

// Get returns a rule by ID if registered (used by the API rules endpoint).
func Get(id string) (Rule, bool) {
	id = strings.ToUpper(strings.TrimSpace(id))
	for _, c := range registry {
		for _, r := range c.Rules {
			if strings.ToUpper(r.ID) == id {
				return r, true
			}
		}
	}
	return Rule{}, false
}
