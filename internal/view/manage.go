package view

import (
	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/image"
	"github.com/blackwell-systems/atelierctl/internal/shop"
)

// PublishedRow is one line of the published-products manager.
type PublishedRow struct {
	catalog.Item
	PublishedAt string
	Deleted     bool
}

// PublishedManager lists every published item with its first-published
// date and hidden state. Hidden items stay listed so they can be
// restored.
func PublishedManager(s *shop.Shop) []PublishedRow {
	deleted := make(map[string]bool)
	for _, id := range s.DeletedPublishedIDs() {
		deleted[id] = true
	}
	dates := s.PublishedDates()

	items := catalog.Published()
	rows := make([]PublishedRow, len(items))
	for i, item := range items {
		item.Image = image.OrFallback(item.Image)
		rows[i] = PublishedRow{
			Item:        item,
			PublishedAt: dates[item.ID],
			Deleted:     deleted[item.ID],
		}
	}
	return rows
}

// CustomManager lists the operator-added products for the manage view.
func CustomManager(s *shop.Shop) []catalog.Product {
	products := s.CustomProducts()
	for i := range products {
		products[i].Image = image.OrFallback(products[i].Image)
	}
	return products
}

// HiddenIDs returns the published ids currently hidden storefront-wide,
// for the visibility pass over shop pages.
func HiddenIDs(s *shop.Shop) map[string]bool {
	hidden := make(map[string]bool)
	for _, id := range s.DeletedPublishedIDs() {
		hidden[id] = true
	}
	return hidden
}
