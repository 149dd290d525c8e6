// Package shop holds the domain repositories over the persistent store
// and the mutation handlers that drive every view refresh. Nothing
// outside this package touches the store directly; reads flow through
// the repositories (and the catalog aggregator built on them), writes
// through the command handlers.
package shop

import (
	"time"

	"github.com/blackwell-systems/atelierctl/internal/store"
)

// Storage keys. Behavior, not naming, is the contract; these only need
// to stay distinct and stable.
const (
	keyCart           = "cart"
	keyFavorites      = "favorites"
	keyCustomProducts = "custom-products"
	keyDeleted        = "deleted-published"
	keyDates          = "published-dates"
	keySales          = "sales"
	keyLayout         = "home-layout"
	keyAccessCode     = "access-code"
	keyTheme          = "theme"
	keyA11y           = "a11y-prefs"
	keySession        = "session"
)

// Shop is the repository facade: typed accessors per entity plus the
// command handlers. All state lives in the injected Store, so a test
// substitutes an in-memory one.
type Shop struct {
	st  store.Store
	ann store.Announcer
	now func() time.Time
}

// New creates a Shop over st. Announcements go to a, which may be nil.
func New(st store.Store, a store.Announcer) *Shop {
	return &Shop{st: st, ann: a, now: time.Now}
}

// WithClock replaces the time source, for deterministic ids and dates
// in tests.
func (s *Shop) WithClock(now func() time.Time) *Shop {
	s.now = now
	return s
}

func (s *Shop) announce(msg string) {
	if s.ann != nil {
		s.ann.Announce(msg)
	}
}

func (s *Shop) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
