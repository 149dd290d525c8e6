package view

import (
	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/shop"
)

// palette is the fixed cyclic gray scale for pie slices, assigned in
// first-appearance order of each type.
var palette = []string{"#111111", "#4b4b4b", "#7a7a7a", "#a0a0a0", "#c7c7c7"}

// SalesStats are the dashboard headline numbers.
type SalesStats struct {
	Orders    int
	ItemsSold int
	Revenue   float64
}

// PieSlice is one type's arc of the sales breakdown. From and To are
// degrees on a full circle, cumulative over the preceding slices.
type PieSlice struct {
	Type  string
	Count int
	Color string
	From  float64
	To    float64
}

// SoldProduct is one row of the flat chronological product table:
// sale-major order, each sale's items in stored order.
type SoldProduct struct {
	catalog.SaleItem
	SaleDate string
	OrderID  string
}

// Dashboard is the full sales view model.
type Dashboard struct {
	Stats    SalesStats
	Slices   []PieSlice
	Products []SoldProduct
	Orders   []catalog.Sale // most recent first, as stored
}

// SalesDashboard aggregates the sales ledger into the dashboard model.
func SalesDashboard(s *shop.Shop) Dashboard {
	sales := s.Sales()

	var d Dashboard
	d.Stats.Orders = len(sales)
	d.Orders = sales

	counts := map[string]int{}
	var order []string
	for _, sale := range sales {
		d.Stats.Revenue += sale.Total
		d.Stats.ItemsSold += len(sale.Items)
		for _, item := range sale.Items {
			typ := string(item.Type)
			if typ == "" {
				typ = "Overig"
			}
			if _, seen := counts[typ]; !seen {
				order = append(order, typ)
			}
			counts[typ]++
			d.Products = append(d.Products, SoldProduct{
				SaleItem: item,
				SaleDate: sale.CreatedAt,
				OrderID:  sale.ID,
			})
		}
	}

	total := 0
	for _, typ := range order {
		total += counts[typ]
	}
	cumulative := 0
	for i, typ := range order {
		from := float64(cumulative) / float64(total) * 360
		cumulative += counts[typ]
		to := float64(cumulative) / float64(total) * 360
		d.Slices = append(d.Slices, PieSlice{
			Type:  typ,
			Count: counts[typ],
			Color: palette[i%len(palette)],
			From:  from,
			To:    to,
		})
	}
	return d
}
