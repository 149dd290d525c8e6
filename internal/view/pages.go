package view

import (
	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/shop"
)

// CartPage is the cart view: lines in insertion order plus the flat
// total.
type CartPage struct {
	Lines []catalog.Item
	Total float64
}

// Cart computes the cart page model.
func Cart(s *shop.Shop) CartPage {
	return CartPage{Lines: s.Cart(), Total: s.CartTotal()}
}

// FavoritesPage lists the visitor's favorites in insertion order.
func FavoritesPage(s *shop.Shop) []catalog.Item {
	return s.Favorites()
}

// ShopPage is one storefront page: the effective catalog for a type.
// Hidden published items are already excluded by the aggregator.
func ShopPage(s *shop.Shop, typeKey string) []catalog.Entry {
	return s.Effective(typeKey)
}
