package view

import (
	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/shop"
)

// Favorites the homepage carousel shows at most, in slides of four.
const (
	carouselCap   = 10
	carouselSlide = 4
)

// Carousel is the homepage favorites carousel: the visitor's favorites
// with hidden published items filtered out, grouped into slides.
type Carousel struct {
	Slides [][]catalog.Item
}

// Empty reports whether there is nothing to show.
func (c Carousel) Empty() bool {
	return len(c.Slides) == 0
}

// FavoritesCarousel computes the homepage carousel slides.
func FavoritesCarousel(s *shop.Shop) Carousel {
	deleted := make(map[string]bool)
	for _, id := range s.DeletedPublishedIDs() {
		deleted[id] = true
	}

	var visible []catalog.Item
	for _, item := range s.Favorites() {
		if deleted[item.ID] {
			continue
		}
		visible = append(visible, item)
		if len(visible) == carouselCap {
			break
		}
	}

	var slides [][]catalog.Item
	for start := 0; start < len(visible); start += carouselSlide {
		end := start + carouselSlide
		if end > len(visible) {
			end = len(visible)
		}
		slides = append(slides, visible[start:end])
	}
	return Carousel{Slides: slides}
}

// Badges holds the navigation counters shown on every page.
type Badges struct {
	CartCount      int
	FavoritesCount int
}

// CountBadges computes the cart and favorites counters.
func CountBadges(s *shop.Shop) Badges {
	return Badges{
		CartCount:      len(s.Cart()),
		FavoritesCount: len(s.Favorites()),
	}
}
