package shop

import (
	"fmt"

	"github.com/blackwell-systems/atelierctl/internal/catalog"
)

// Layout returns the homepage arrangement. A missing or wrong-shaped
// section falls back to the default for that section only, so one
// corrupt entry never resets the whole layout.
func (s *Shop) Layout() catalog.Layout {
	defaults := catalog.DefaultLayout()
	var stored catalog.Layout
	if !s.st.Load(keyLayout, &stored) {
		return defaults
	}
	if stored.Guitar == nil {
		stored.Guitar = defaults.Guitar
	}
	if stored.Poem == nil {
		stored.Poem = defaults.Poem
	}
	if stored.Drawing == nil {
		stored.Drawing = defaults.Drawing
	}
	return stored
}

// LayoutAdd appends an item id to a type's homepage row. Duplicates are
// a silent no-op; a full row is rejected with a notice.
func (s *Shop) LayoutAdd(typeKey, id string) []View {
	return s.layoutChange(typeKey, func(ids []string) ([]string, bool) {
		for _, existing := range ids {
			if existing == id {
				return nil, false
			}
		}
		if max := catalog.MaxFor(typeKey); len(ids) >= max {
			s.announce(fmt.Sprintf("Maximaal %d items toegestaan voor deze rij.", max))
			return nil, false
		}
		return append(ids, id), true
	})
}

// LayoutRemove drops an item id from a type's homepage row.
func (s *Shop) LayoutRemove(typeKey, id string) []View {
	return s.layoutChange(typeKey, func(ids []string) ([]string, bool) {
		for i, existing := range ids {
			if existing == id {
				return append(ids[:i], ids[i+1:]...), true
			}
		}
		return nil, false
	})
}

// LayoutMoveUp swaps the id with its predecessor in the row.
func (s *Shop) LayoutMoveUp(typeKey, id string) []View {
	return s.layoutChange(typeKey, func(ids []string) ([]string, bool) {
		for i, existing := range ids {
			if existing == id {
				if i == 0 {
					return nil, false
				}
				ids[i-1], ids[i] = ids[i], ids[i-1]
				return ids, true
			}
		}
		return nil, false
	})
}

// LayoutMoveDown swaps the id with its successor in the row.
func (s *Shop) LayoutMoveDown(typeKey, id string) []View {
	return s.layoutChange(typeKey, func(ids []string) ([]string, bool) {
		for i, existing := range ids {
			if existing == id {
				if i == len(ids)-1 {
					return nil, false
				}
				ids[i], ids[i+1] = ids[i+1], ids[i]
				return ids, true
			}
		}
		return nil, false
	})
}

func (s *Shop) layoutChange(typeKey string, change func([]string) ([]string, bool)) []View {
	switch typeKey {
	case "guitar", "poem", "drawing":
	default:
		return nil
	}

	layout := s.Layout()
	section := layout.Section(typeKey)
	ids := make([]string, len(section))
	copy(ids, section)

	changed, applied := change(ids)
	if !applied {
		return nil
	}
	layout.SetSection(typeKey, changed)
	if !s.st.Save(keyLayout, layout) {
		return nil
	}
	s.announce("Homepage-indeling bijgewerkt.")
	return s.done(CmdLayoutChange)
}
