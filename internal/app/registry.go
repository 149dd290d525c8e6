package app

import (
	"fmt"

	"github.com/blackwell-systems/atelierctl/internal/shop"
	"github.com/blackwell-systems/atelierctl/internal/view"
)

// buildRegistry binds every view id from the render-dependency graph to
// a print function. After a mutation, refresh re-renders exactly the
// views the command invalidated.
func buildRegistry() *view.Registry {
	r := view.NewRegistry()

	r.Register(shop.ViewBadges, func() {
		fmt.Println(renderer.Badges(view.CountBadges(shopSvc)))
	})
	r.Register(shop.ViewHomeCarousel, func() {
		fmt.Println(renderer.Carousel(view.FavoritesCarousel(shopSvc)))
	})
	r.Register(shop.ViewFeatured, func() {
		for _, section := range view.FeaturedSections(shopSvc) {
			fmt.Println(renderer.FeaturedSection(section))
		}
	})
	r.Register(shop.ViewFavoritesPage, func() {
		fmt.Println(renderer.FavoritesPage(view.FavoritesPage(shopSvc)))
	})
	r.Register(shop.ViewCartPage, func() {
		fmt.Println(renderer.CartPage(view.Cart(shopSvc)))
	})
	r.Register(shop.ViewManageProducts, func() {
		fmt.Println(renderer.CustomManager(view.CustomManager(shopSvc)))
	})
	r.Register(shop.ViewManagePublished, func() {
		fmt.Println(renderer.PublishedManager(view.PublishedManager(shopSvc)))
	})
	r.Register(shop.ViewShopPages, func() {
		for _, typeKey := range []string{"guitar", "poem", "drawing"} {
			fmt.Println(renderer.ShopPage(pageTitle(typeKey), view.ShopPage(shopSvc, typeKey)))
		}
	})
	r.Register(shop.ViewOrganizer, func() {
		fmt.Println(renderer.Organizer(view.OrganizerSections(shopSvc)))
	})
	r.Register(shop.ViewSales, func() {
		fmt.Println(renderer.Dashboard(view.SalesDashboard(shopSvc)))
	})
	// ViewVisibility and ViewSecurity stay unbound in CLI mode: the
	// announcer already carries their feedback.

	return r
}

// refresh re-renders the views invalidated by the given refresh set.
func refresh(views []shop.View) {
	if len(views) == 0 {
		return
	}
	registry.Refresh(views...)
}

func pageTitle(typeKey string) string {
	switch typeKey {
	case "guitar":
		return "Gitaren"
	case "poem":
		return "Gedichten"
	case "drawing":
		return "Tekeningen"
	}
	return typeKey
}
