package view

import (
	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/shop"
)

// OrganizerRow is a selected layout item with its reorder affordances.
type OrganizerRow struct {
	catalog.Entry
	CanMoveUp   bool
	CanMoveDown bool
}

// PoolEntry is an effective-catalog item not yet selected. Disabled
// means the row is at capacity and the add control must not fire.
type PoolEntry struct {
	catalog.Entry
	Disabled bool
}

// OrganizerSection is the layout editor for one type.
type OrganizerSection struct {
	TypeKey  string
	Max      int
	Selected []OrganizerRow
	Pool     []PoolEntry
}

// Organizer computes the layout editor for one type: selected items in
// layout order with boundary-aware move controls, then the remaining
// catalog as an add pool.
func Organizer(s *shop.Shop, typeKey string) OrganizerSection {
	source := s.Effective(typeKey)
	selectedIDs := dedup(s.Layout().Section(typeKey))

	inSelection := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		inSelection[id] = true
	}

	var selected []OrganizerRow
	for _, id := range selectedIDs {
		if entry := catalog.EntryByID(source, id); entry != nil {
			selected = append(selected, OrganizerRow{Entry: *entry})
		}
	}
	for i := range selected {
		selected[i].CanMoveUp = i > 0
		selected[i].CanMoveDown = i < len(selected)-1
	}

	max := catalog.MaxFor(typeKey)
	atCapacity := len(selected) >= max
	var pool []PoolEntry
	for _, entry := range source {
		if !inSelection[entry.ID] {
			pool = append(pool, PoolEntry{Entry: entry, Disabled: atCapacity})
		}
	}

	return OrganizerSection{TypeKey: typeKey, Max: max, Selected: selected, Pool: pool}
}

// OrganizerSections computes the editor for all three types.
func OrganizerSections(s *shop.Shop) []OrganizerSection {
	sections := make([]OrganizerSection, 0, 3)
	for _, key := range []string{"guitar", "poem", "drawing"} {
		sections = append(sections, Organizer(s, key))
	}
	return sections
}
