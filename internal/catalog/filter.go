package catalog

import (
	"fmt"
	"strings"
)

// Filter selects which items are rendered.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterInactive
)

// Filters lists the filter controls in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterInactive}

// Label returns the control label shown for the filter.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterInactive:
		return "Inactive"
	default:
		return "All"
	}
}

// String implements fmt.Stringer.
func (f Filter) String() string {
	return strings.ToLower(f.Label())
}

// Matches reports whether the item belongs to the filtered subset.
func (f Filter) Matches(item Item) bool {
	switch f {
	case FilterActive:
		return item.IsActive
	case FilterInactive:
		return !item.IsActive
	default:
		return true
	}
}

// Apply returns the matching subset of items in their original order. The
// input slice is never modified.
func (f Filter) Apply(items []Item) []Item {
	result := make([]Item, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			result = append(result, item)
		}
	}
	return result
}

// Next returns the following filter control, wrapping around.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// Prev returns the preceding filter control, wrapping around.
func (f Filter) Prev() Filter {
	return Filters[(int(f)+len(Filters)-1)%len(Filters)]
}

// ParseFilter resolves a filter name, case-insensitively.
func ParseFilter(value string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "inactive":
		return FilterInactive, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter %q: must be one of all, active, inactive", value)
	}
}
