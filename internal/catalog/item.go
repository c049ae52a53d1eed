package catalog

import "strings"

// Item is one extension card. Name is the unique key used to locate an item
// for toggling or removal.
type Item struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// Summarize renders one "name<TAB>state" line per item, in order.
func Summarize(items []Item) string {
	var b strings.Builder
	for _, item := range items {
		state := "inactive"
		if item.IsActive {
			state = "active"
		}
		b.WriteString(item.Name)
		b.WriteByte('\t')
		b.WriteString(state)
		b.WriteByte('\n')
	}
	return b.String()
}
