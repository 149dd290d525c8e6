package catalog

// Type classifies an artwork. The shop only ever sells these three, but
// custom products may carry other values; those fall back to the
// favorites page for navigation.
type Type string

const (
	Guitar  Type = "Guitar"
	Drawing Type = "Drawing"
	Poem    Type = "Poem"
)

// Key returns the lowercase form used for layout sections and lookups.
func (t Type) Key() string {
	switch t {
	case Guitar:
		return "guitar"
	case Drawing:
		return "drawing"
	case Poem:
		return "poem"
	}
	return ""
}

// Item is a sellable artwork as it appears in the cart, the favorites
// list, and the published catalog.
type Item struct {
	ID          string  `json:"id"`
	Type        Type    `json:"type"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// Product is an operator-added artwork. PublishedAt is stamped at
// creation and backfilled once for records that predate it.
type Product struct {
	Item
	PublishedAt string `json:"publishedAt,omitempty"`
}

// SaleItem is one line of a completed sale. Quantity is always 1: the
// cart records a duplicate item as two lines, and checkout preserves
// that.
type SaleItem struct {
	ID       string  `json:"id"`
	Type     Type    `json:"type"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Sale is an immutable record of a checkout. Sales are stored
// most-recent-first.
type Sale struct {
	ID        string     `json:"id"`
	CreatedAt string     `json:"createdAt"`
	Total     float64    `json:"total"`
	Items     []SaleItem `json:"items"`
}

// Layout is the operator-curated homepage arrangement: one ordered id
// sequence per type. Stale ids are filtered when read, never rewritten
// in storage.
type Layout struct {
	Guitar  []string `json:"guitar"`
	Poem    []string `json:"poem"`
	Drawing []string `json:"drawing"`
}

// Section returns the id sequence for a type key, or nil for unknown
// keys.
func (l Layout) Section(key string) []string {
	switch key {
	case "guitar":
		return l.Guitar
	case "poem":
		return l.Poem
	case "drawing":
		return l.Drawing
	}
	return nil
}

// SetSection replaces the id sequence for a type key.
func (l *Layout) SetSection(key string, ids []string) {
	switch key {
	case "guitar":
		l.Guitar = ids
	case "poem":
		l.Poem = ids
	case "drawing":
		l.Drawing = ids
	}
}

// MaxFor returns the homepage capacity for a type key. Unknown keys get
// the guitar capacity, matching the storefront's historical behavior.
func MaxFor(key string) int {
	switch key {
	case "poem":
		return 3
	case "drawing":
		return 5
	default:
		return 4
	}
}
