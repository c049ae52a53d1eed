package catalog

// Store holds the ordered item sequence for the lifetime of the process. It
// is owned by the UI event loop and is not safe for concurrent use.
type Store struct {
	items []Item
}

// NewStore creates a store seeded with the given items.
func NewStore(items []Item) *Store {
	s := &Store{}
	s.Replace(items)
	return s
}

// Replace assigns the item sequence wholesale.
func (s *Store) Replace(items []Item) {
	s.items = make([]Item, len(items))
	copy(s.items, items)
}

// Items returns a copy of the current sequence
func (s *Store) Items() []Item {
	result := make([]Item, len(s.items))
	copy(result, s.items)
	return result
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	return len(s.items)
}

// Get retrieves an item by name.
func (s *Store) Get(name string) (Item, bool) {
	for _, item := range s.items {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}

// Filtered returns the subset matching the filter, preserving order.
func (s *Store) Filtered(f Filter) []Item {
	return f.Apply(s.items)
}

// Remove drops every item whose name matches and reports whether anything
// was removed. Missing names are a no-op.
func (s *Store) Remove(name string) bool {
	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.Name == name {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	// clear the tail so dropped items do not linger in the backing array
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = Item{}
	}
	s.items = kept
	return removed
}

// SetActive sets IsActive on the first item with the given name. It reports
// false, leaving the store untouched, when no item matches.
func (s *Store) SetActive(name string, active bool) bool {
	for i := range s.items {
		if s.items[i].Name == name {
			s.items[i].IsActive = active
			return true
		}
	}
	return false
}

// CountActive returns how many items are active and inactive.
func (s *Store) CountActive() (active, inactive int) {
	for _, item := range s.items {
		if item.IsActive {
			active++
		} else {
			inactive++
		}
	}
	return active, inactive
}
