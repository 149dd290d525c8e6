package view

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/shop"
	"github.com/blackwell-systems/atelierctl/internal/tui"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// cardWidth is the inner text width of a carousel card.
const cardWidth = 22

// Renderer turns view models into terminal output, styled for the
// resolved theme and accessibility preferences.
type Renderer struct {
	styles tui.Styles
}

// NewRenderer creates a renderer for the given theme ("light"/"dark")
// and accessibility preferences.
func NewRenderer(theme string, prefs shop.A11yPrefs) *Renderer {
	return &Renderer{styles: tui.NewStyles(theme == "dark", prefs.HighContrast, prefs.LargeText)}
}

// Badges renders the navigation counters.
func (r *Renderer) Badges(b Badges) string {
	return r.styles.Help.Render(fmt.Sprintf("Winkelwagen: %d · Favorieten: %d", b.CartCount, b.FavoritesCount))
}

// Home renders the homepage: featured sections and the favorites
// carousel.
func (r *Renderer) Home(sections []FeaturedSection, carousel Carousel) string {
	var parts []string
	for _, section := range sections {
		parts = append(parts, r.FeaturedSection(section))
	}
	parts = append(parts, r.Carousel(carousel))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FeaturedSection renders one homepage row.
func (r *Renderer) FeaturedSection(section FeaturedSection) string {
	title := map[string]string{
		"guitar":  "Gitaren",
		"poem":    "Gedichten",
		"drawing": "Tekeningen",
	}[section.TypeKey]

	var b strings.Builder
	b.WriteString(r.styles.Header.Render(title))
	b.WriteString("\n")
	if len(section.Items) == 0 {
		b.WriteString(r.styles.Help.Render(section.EmptyText))
		return b.String()
	}
	for _, item := range section.Items {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			r.styles.Normal.Render(item.Title),
			r.styles.Help.Render(item.Link)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Carousel renders the homepage favorites carousel.
func (r *Renderer) Carousel(c Carousel) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("Favorieten"))
	b.WriteString("\n")
	if c.Empty() {
		b.WriteString(r.styles.Help.Render("Nog geen favorieten geselecteerd."))
		return b.String()
	}
	for i, slide := range c.Slides {
		cards := make([]string, len(slide))
		for j, item := range slide {
			content := fmt.Sprintf("%s\n%s\n%s",
				r.styles.Tag.Render(string(item.Type)),
				xansi.Truncate(item.Title, cardWidth, "…"),
				r.priceOrOnRequest(item.Price))
			cards[j] = r.styles.Card.Render(content)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		if i < len(c.Slides)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// CartPage renders the cart lines and total.
func (r *Renderer) CartPage(page CartPage) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("Winkelwagen"))
	b.WriteString("\n")
	if len(page.Lines) == 0 {
		b.WriteString(r.styles.Help.Render("Je winkelwagen is leeg."))
		b.WriteString("\n")
	}
	for i, item := range page.Lines {
		b.WriteString(fmt.Sprintf("  %2d. %s %s  %s\n",
			i+1,
			r.styles.Tag.Render(string(item.Type)),
			item.Title,
			r.priceOrOnRequest(item.Price)))
	}
	b.WriteString(r.styles.Header.Render("Totaal: " + Euro(page.Total)))
	return b.String()
}

// FavoritesPage renders the favorites list.
func (r *Renderer) FavoritesPage(items []catalog.Item) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("Favorieten"))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(r.styles.Help.Render("Nog geen favorieten. Voeg werk toe op de Gitaren-, Gedichten- of Tekeningenpagina."))
		return b.String()
	}
	for _, item := range items {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			r.styles.Tag.Render(string(item.Type)),
			item.Title,
			r.priceOrOnRequest(item.Price)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ShopPage renders a storefront page for one type.
func (r *Renderer) ShopPage(title string, entries []catalog.Entry) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render(title))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(r.styles.Help.Render("Geen werken beschikbaar."))
		return b.String()
	}
	for _, entry := range entries {
		desc := entry.Description
		if desc == "" {
			desc = "Handgemaakt zwart-wit kunstwerk."
		}
		b.WriteString(fmt.Sprintf("  %-26s %s\n", entry.ID, r.styles.Normal.Render(entry.Title)))
		b.WriteString(fmt.Sprintf("      %s  %s\n", r.styles.Help.Render(desc), r.priceOrOnRequest(entry.Price)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// PublishedManager renders the published-products manager.
func (r *Renderer) PublishedManager(rows []PublishedRow) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("Gepubliceerde producten"))
	b.WriteString("\n")
	for _, row := range rows {
		state := r.styles.Ok.Render("zichtbaar")
		if row.Deleted {
			state = r.styles.Warn.Render("verborgen")
		}
		b.WriteString(fmt.Sprintf("  %-26s %-22s %s  %s\n",
			row.ID, row.Title, state,
			r.styles.Help.Render("Gepubliceerd: "+FormatDate(row.PublishedAt))))
	}
	return strings.TrimRight(b.String(), "\n")
}

// CustomManager renders the custom-products manager.
func (r *Renderer) CustomManager(products []catalog.Product) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("Beheerde producten"))
	b.WriteString("\n")
	if len(products) == 0 {
		b.WriteString(r.styles.Help.Render("Nog geen beheerde producten."))
		return b.String()
	}
	for _, p := range products {
		b.WriteString(fmt.Sprintf("  %-34s %s %s  %s  %s\n",
			p.ID,
			r.styles.Tag.Render(string(p.Type)),
			p.Title,
			r.priceOrOnRequest(p.Price),
			r.styles.Help.Render("Gepubliceerd: "+FormatDate(p.PublishedAt))))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Dashboard renders the sales dashboard: stats, breakdown, product
// table and order summaries.
func (r *Renderer) Dashboard(d Dashboard) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("Verkoop"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Bestellingen: %d · Verkochte items: %d · Omzet: %s\n",
		d.Stats.Orders, d.Stats.ItemsSold, Euro(d.Stats.Revenue)))

	if d.Stats.Orders == 0 {
		b.WriteString(r.styles.Help.Render("Nog geen verkoop. Voltooide bestellingen verschijnen hier."))
		return b.String()
	}

	b.WriteString(r.styles.Header.Render("Verdeling per type"))
	b.WriteString("\n")
	for _, slice := range d.Slices {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(slice.Color)).Render("■")
		b.WriteString(fmt.Sprintf("  %s %-10s %3d  %s\n",
			swatch, slice.Type, slice.Count,
			r.styles.Help.Render(fmt.Sprintf("%.0f°–%.0f°", slice.From, slice.To))))
	}

	b.WriteString(r.styles.Header.Render("Verkochte producten"))
	b.WriteString("\n")
	for _, p := range d.Products {
		b.WriteString(fmt.Sprintf("  %-17s %-22s %-8s %10s  %s\n",
			FormatDate(p.SaleDate), p.Title, p.Type, Euro(p.Price),
			r.styles.Help.Render(p.OrderID)))
	}

	b.WriteString(r.styles.Header.Render("Bestellingen"))
	b.WriteString("\n")
	for _, sale := range d.Orders {
		titles := make([]string, len(sale.Items))
		for i, item := range sale.Items {
			titles[i] = fmt.Sprintf("%s (%s)", item.Title, item.Type)
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n      %s\n",
			sale.ID, FormatDate(sale.CreatedAt), Euro(sale.Total),
			r.styles.Help.Render(strings.Join(titles, ", "))))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Organizer renders the homepage layout editor for all sections.
func (r *Renderer) Organizer(sections []OrganizerSection) string {
	var b strings.Builder
	for _, section := range sections {
		b.WriteString(r.styles.Header.Render(fmt.Sprintf("Homepage %s (max %d)", section.TypeKey, section.Max)))
		b.WriteString("\n")
		if len(section.Selected) == 0 {
			b.WriteString(r.styles.Help.Render("Nog geen geselecteerde items."))
			b.WriteString("\n")
		}
		for i, row := range section.Selected {
			controls := ""
			if row.CanMoveUp {
				controls += "↑"
			}
			if row.CanMoveDown {
				controls += "↓"
			}
			b.WriteString(fmt.Sprintf("  %2d. %-26s %s\n", i+1, row.ID, r.styles.Help.Render(controls)))
		}
		if len(section.Pool) == 0 {
			b.WriteString(r.styles.Help.Render("Geen extra items beschikbaar."))
			b.WriteString("\n")
			continue
		}
		for _, entry := range section.Pool {
			label := "+ " + entry.Title
			if entry.Disabled {
				b.WriteString("  " + r.styles.Disabled.Render(label+" (rij vol)") + "\n")
			} else {
				b.WriteString("  " + r.styles.Normal.Render(label) + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) priceOrOnRequest(price float64) string {
	if price > 0 {
		return r.styles.Normal.Render(Euro(price))
	}
	return r.styles.Help.Render("Op aanvraag")
}
