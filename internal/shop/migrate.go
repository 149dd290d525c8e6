package shop

import (
	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/image"
)

// Startup runs the one-time-per-load migrations: image reference
// cleanup over the persisted lists and the published-date backfill.
// Both are idempotent.
func (s *Shop) Startup() {
	s.normalizeStoredImages()
	s.EnsureTrackingDates()
}

// normalizeStoredImages rewrites each persisted list in place when any
// entry's normalized image reference differs from the stored form.
func (s *Shop) normalizeStoredImages() {
	for _, key := range []string{keyCart, keyFavorites} {
		var items []catalog.Item
		if !s.st.Load(key, &items) {
			continue
		}
		changed := false
		for i := range items {
			if normalized := image.Normalize(items[i].Image); normalized != items[i].Image {
				items[i].Image = normalized
				changed = true
			}
		}
		if changed {
			s.st.Save(key, items)
		}
	}

	var products []catalog.Product
	if s.st.Load(keyCustomProducts, &products) {
		changed := false
		for i := range products {
			if normalized := image.Normalize(products[i].Image); normalized != products[i].Image {
				products[i].Image = normalized
				changed = true
			}
		}
		if changed {
			s.st.Save(keyCustomProducts, products)
		}
	}
}

// EnsureTrackingDates backfills the published-date map: every published
// item and custom product lacking an entry gets the current time, and
// custom products missing publishedAt are augmented and re-persisted.
// Existing entries are never overwritten, so a second run is a no-op.
func (s *Shop) EnsureTrackingDates() {
	dates := s.PublishedDates()
	now := s.timestamp()
	changed := false

	for _, item := range catalog.Published() {
		if dates[item.ID] == "" {
			dates[item.ID] = now
			changed = true
		}
	}

	products := s.CustomProducts()
	for i := range products {
		if products[i].PublishedAt == "" {
			products[i].PublishedAt = now
			changed = true
		}
		if dates[products[i].ID] == "" {
			dates[products[i].ID] = products[i].PublishedAt
			changed = true
		}
	}

	if changed {
		s.st.Save(keyDates, dates)
		s.st.Save(keyCustomProducts, products)
	}
}
