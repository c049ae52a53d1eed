package cards

import (
	"github.com/alexisbeaulieu97/extman/internal/catalog"
	"github.com/alexisbeaulieu97/extman/internal/theme"
)

// Load Messages

// ItemsLoadedMsg carries the dataset after a successful fetch
type ItemsLoadedMsg struct {
	Items []catalog.Item
}

// LoadFailedMsg indicates the dataset could not be fetched or decoded
type LoadFailedMsg struct {
	Err error
}

// Control Messages

// FilterSelectedMsg selects a filter control
type FilterSelectedMsg struct {
	Filter catalog.Filter
}

// FilterStepMsg moves the selection to the next (Step > 0) or previous
// filter control
type FilterStepMsg struct {
	Step int
}

// RemoveItemMsg asks to remove the card keyed by Name
type RemoveItemMsg struct {
	Name string
}

// ToggleItemMsg reports a card checkbox changed to Active
type ToggleItemMsg struct {
	Name   string
	Active bool
}

// ToggleThemeMsg flips the persisted light/dark preference
type ToggleThemeMsg struct{}

// ThemeAppliedMsg indicates the UI switched to Mode
type ThemeAppliedMsg struct {
	Mode theme.Mode
}
