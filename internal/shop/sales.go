package shop

import (
	"fmt"

	"github.com/blackwell-systems/atelierctl/internal/catalog"
)

// Sales returns the sales ledger, most recent first. Sales are
// append-only and never edited.
func (s *Shop) Sales() []catalog.Sale {
	var sales []catalog.Sale
	s.st.Load(keySales, &sales)
	return sales
}

// Checkout turns the current cart into a Sale and empties the cart.
// An empty cart is rejected with a notice and no mutation.
func (s *Shop) Checkout() []View {
	cart := s.Cart()
	if len(cart) == 0 {
		s.announce("Je winkelwagen is leeg. Voeg eerst iets toe.")
		return nil
	}

	sale := catalog.Sale{
		ID:        fmt.Sprintf("sale-%d", s.now().UnixMilli()),
		CreatedAt: s.timestamp(),
		Items:     make([]catalog.SaleItem, len(cart)),
	}
	for i, item := range cart {
		sale.Total += item.Price
		sale.Items[i] = catalog.SaleItem{
			ID:       item.ID,
			Type:     item.Type,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: 1,
		}
	}

	if !s.st.Save(keySales, append([]catalog.Sale{sale}, s.Sales()...)) {
		return nil
	}
	s.st.Remove(keyCart)
	s.announce("Betaling ontvangen. Bedankt voor je bestelling.")
	return s.done(CmdCheckout)
}
