package view

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var dutch = message.NewPrinter(language.Dutch)

// Euro formats an amount as a Dutch euro string.
func Euro(amount float64) string {
	return dutch.Sprintf("€ %.2f", amount)
}

// PriceLabel formats a price, with the on-request label for works that
// have no listed price.
func PriceLabel(amount float64) string {
	if amount > 0 {
		return Euro(amount)
	}
	return "Prijs op aanvraag"
}

// FormatDate renders a stored RFC3339 timestamp as a short Dutch date,
// or "Onbekend" for missing or unparseable values.
func FormatDate(value string) string {
	if value == "" {
		return "Onbekend"
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "Onbekend"
	}
	return t.Format("02-01-2006 15:04")
}
