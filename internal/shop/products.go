package shop

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/image"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// CustomProducts returns the operator-added products in insertion
// order.
func (s *Shop) CustomProducts() []catalog.Product {
	var products []catalog.Product
	s.st.Load(keyCustomProducts, &products)
	for i := range products {
		products[i].Image = image.Normalize(products[i].Image)
	}
	return products
}

// ProductFields is the management-form input for a new custom product.
type ProductFields struct {
	Type        catalog.Type
	Title       string
	Price       float64
	Image       string
	Description string
}

// AddCustomProduct creates a product from the form fields. The id is
// derived from type, title slug and creation time; publishedAt is
// stamped immediately. An empty title is a silent no-op.
func (s *Shop) AddCustomProduct(fields ProductFields) []View {
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return nil
	}

	product := catalog.Product{
		Item: catalog.Item{
			ID:          s.productID(fields.Type, title),
			Type:        fields.Type,
			Title:       title,
			Price:       fields.Price,
			Image:       strings.TrimSpace(fields.Image),
			Description: strings.TrimSpace(fields.Description),
		},
		PublishedAt: s.timestamp(),
	}
	if !s.st.Save(keyCustomProducts, append(s.CustomProducts(), product)) {
		return nil
	}
	s.announce("Product toegevoegd")
	return s.done(CmdAddProduct)
}

// RemoveCustomProduct hard-deletes the product with the given id.
func (s *Shop) RemoveCustomProduct(id string) []View {
	products := s.CustomProducts()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if !s.st.Save(keyCustomProducts, kept) {
		return nil
	}
	return s.done(CmdRemoveProduct)
}

// DeletedPublishedIDs returns the ids of published items hidden
// storefront-wide. The ids stay valid for layout references.
func (s *Shop) DeletedPublishedIDs() []string {
	var ids []string
	s.st.Load(keyDeleted, &ids)
	return ids
}

// DeletePublished hides a published item. Already-hidden ids are a
// no-op; uniqueness is enforced here, on write.
func (s *Shop) DeletePublished(id string) []View {
	ids := s.DeletedPublishedIDs()
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	if !s.st.Save(keyDeleted, append(ids, id)) {
		return nil
	}
	return s.done(CmdDeletePublished)
}

// RestorePublished clears a published item's hidden marker, making the
// deletion reversible.
func (s *Shop) RestorePublished(id string) []View {
	ids := s.DeletedPublishedIDs()
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if !s.st.Save(keyDeleted, kept) {
		return nil
	}
	return s.done(CmdRestorePublished)
}

// PublishedDates returns the id → first-published timestamp map.
func (s *Shop) PublishedDates() map[string]string {
	dates := map[string]string{}
	s.st.Load(keyDates, &dates)
	return dates
}

// Effective returns the aggregated catalog for one type: published
// items minus hidden ids, then custom products.
func (s *Shop) Effective(typeKey string) []catalog.Entry {
	return catalog.Effective(typeKey, s.CustomProducts(), s.DeletedPublishedIDs())
}

func (s *Shop) productID(t catalog.Type, title string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(title), "-"), "-")
	return fmt.Sprintf("%s-%s-%d", strings.ToLower(string(t)), slug, s.now().UnixMilli())
}
