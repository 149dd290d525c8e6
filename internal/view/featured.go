// Package view computes the storefront view models from repository
// state and renders them as terminal output. Builders are pure reads:
// they never mutate repositories.
package view

import (
	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/shop"
)

// FeaturedSection is one homepage row of curated items for a type.
type FeaturedSection struct {
	TypeKey   string
	Items     []catalog.Entry
	EmptyText string
}

// emptyTexts are the per-type empty-state messages.
var emptyTexts = map[string]string{
	"guitar":  "Nog geen gitaren geselecteerd.",
	"poem":    "Nog geen gedichten geselecteerd.",
	"drawing": "Nog geen tekeningen geselecteerd.",
}

// Featured computes a homepage row: the configured layout ids resolved
// against the effective catalog, topped up with unconfigured catalog
// items in catalog order, truncated to maxItems.
func Featured(s *shop.Shop, typeKey string, maxItems int) FeaturedSection {
	source := s.Effective(typeKey)
	configured := dedup(s.Layout().Section(typeKey))

	inConfig := make(map[string]bool, len(configured))
	for _, id := range configured {
		inConfig[id] = true
	}

	var items []catalog.Entry
	for _, id := range configured {
		// Stale ids drop out here; storage keeps them untouched.
		if entry := catalog.EntryByID(source, id); entry != nil {
			items = append(items, *entry)
		}
	}
	for _, entry := range source {
		if !inConfig[entry.ID] {
			items = append(items, entry)
		}
	}
	if len(items) > maxItems {
		items = items[:maxItems]
	}

	return FeaturedSection{TypeKey: typeKey, Items: items, EmptyText: emptyTexts[typeKey]}
}

// FeaturedSections computes all three homepage rows at their
// type-specific capacities.
func FeaturedSections(s *shop.Shop) []FeaturedSection {
	sections := make([]FeaturedSection, 0, 3)
	for _, key := range []string{"guitar", "poem", "drawing"} {
		sections = append(sections, Featured(s, key, catalog.MaxFor(key)))
	}
	return sections
}

// dedup keeps the first occurrence of each id, preserving order.
func dedup(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
