package shop

import (
	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/image"
)

// Cart returns the cart lines in insertion order. Duplicate ids are
// legitimate: the same artwork added twice is two lines.
func (s *Shop) Cart() []catalog.Item {
	var items []catalog.Item
	s.st.Load(keyCart, &items)
	return normalizeImages(items)
}

// AddToCart appends item to the cart. The badge count only advances
// when the write is durable.
func (s *Shop) AddToCart(item catalog.Item) []View {
	cart := append(s.Cart(), item)
	if !s.st.Save(keyCart, cart) {
		return nil
	}
	s.announce("Toegevoegd aan winkelwagen")
	return s.done(CmdAddToCart)
}

// RemoveCartItem removes the line at index. Out-of-range indexes are a
// silent no-op.
func (s *Shop) RemoveCartItem(index int) []View {
	cart := s.Cart()
	if index < 0 || index >= len(cart) {
		return nil
	}
	cart = append(cart[:index], cart[index+1:]...)
	if !s.st.Save(keyCart, cart) {
		return nil
	}
	return s.done(CmdRemoveCartItem)
}

// CartTotal sums the line prices.
func (s *Shop) CartTotal() float64 {
	var total float64
	for _, item := range s.Cart() {
		total += item.Price
	}
	return total
}

func normalizeImages(items []catalog.Item) []catalog.Item {
	for i := range items {
		items[i].Image = image.Normalize(items[i].Image)
	}
	return items
}
