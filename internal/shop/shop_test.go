package shop_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/shop"
	"github.com/blackwell-systems/atelierctl/internal/store"
)

var testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestShop() (*shop.Shop, *store.MemStore, *store.CollectAnnouncer) {
	ann := &store.CollectAnnouncer{}
	st := store.NewMemStore().WithAnnouncer(ann)
	s := shop.New(st, ann).WithClock(func() time.Time { return testTime })
	return s, st, ann
}

func guitarItem(id string) catalog.Item {
	return catalog.Item{ID: id, Type: catalog.Guitar, Title: "Test", Price: 100}
}

func TestAddToCart_KeepsOrderAndDuplicates(t *testing.T) {
	s, _, _ := newTestShop()

	s.AddToCart(guitarItem("guitar-a"))
	s.AddToCart(guitarItem("guitar-a"))
	s.AddToCart(guitarItem("guitar-b"))

	cart := s.Cart()
	if len(cart) != 3 {
		t.Fatalf("cart length = %d, want 3", len(cart))
	}
	wantIDs := []string{"guitar-a", "guitar-a", "guitar-b"}
	for i, want := range wantIDs {
		if cart[i].ID != want {
			t.Errorf("cart[%d].ID = %q, want %q", i, cart[i].ID, want)
		}
	}
}

func TestAddToCart_RefreshSet(t *testing.T) {
	s, _, ann := newTestShop()

	views := s.AddToCart(guitarItem("guitar-a"))
	want := shop.Refreshes(shop.CmdAddToCart)
	if len(views) != len(want) {
		t.Fatalf("refresh set length = %d, want %d", len(views), len(want))
	}
	for i := range want {
		if views[i] != want[i] {
			t.Errorf("views[%d] = %q, want %q", i, views[i], want[i])
		}
	}
	if ann.Last() != "Toegevoegd aan winkelwagen" {
		t.Errorf("announcement = %q", ann.Last())
	}
}

func TestAddToCart_SaveFailureDoesNotAdvance(t *testing.T) {
	s, st, _ := newTestShop()
	st.FailSaves = true

	if views := s.AddToCart(guitarItem("guitar-a")); views != nil {
		t.Errorf("refresh set = %v, want nil on failed save", views)
	}
	if got := len(s.Cart()); got != 0 {
		t.Errorf("cart length = %d, want 0", got)
	}
}

func TestRemoveCartItem(t *testing.T) {
	s, _, _ := newTestShop()
	s.AddToCart(guitarItem("guitar-a"))
	s.AddToCart(guitarItem("guitar-b"))

	if views := s.RemoveCartItem(0); views == nil {
		t.Fatal("RemoveCartItem(0) returned nil refresh set")
	}
	cart := s.Cart()
	if len(cart) != 1 || cart[0].ID != "guitar-b" {
		t.Errorf("cart = %v, want single guitar-b line", cart)
	}
}

func TestRemoveCartItem_OutOfRange(t *testing.T) {
	s, _, _ := newTestShop()
	s.AddToCart(guitarItem("guitar-a"))

	if views := s.RemoveCartItem(5); views != nil {
		t.Errorf("out-of-range remove returned %v, want nil", views)
	}
	if views := s.RemoveCartItem(-1); views != nil {
		t.Errorf("negative remove returned %v, want nil", views)
	}
	if got := len(s.Cart()); got != 1 {
		t.Errorf("cart length = %d, want 1", got)
	}
}

func TestCartTotal(t *testing.T) {
	s, _, _ := newTestShop()
	a := guitarItem("guitar-a")
	a.Price = 150.50
	b := guitarItem("guitar-b")
	b.Price = 49.50
	s.AddToCart(a)
	s.AddToCart(b)

	if got := s.CartTotal(); got != 200 {
		t.Errorf("CartTotal = %v, want 200", got)
	}
}

func TestFavorites_UniqueByID(t *testing.T) {
	s, _, _ := newTestShop()

	if views := s.AddToFavorites(guitarItem("guitar-a")); views == nil {
		t.Fatal("first add returned nil refresh set")
	}
	if views := s.AddToFavorites(guitarItem("guitar-a")); views != nil {
		t.Errorf("duplicate add returned %v, want nil", views)
	}
	if got := len(s.Favorites()); got != 1 {
		t.Errorf("favorites length = %d, want 1", got)
	}
}

func TestRemoveFavorite(t *testing.T) {
	s, _, _ := newTestShop()
	s.AddToFavorites(guitarItem("guitar-a"))
	s.AddToFavorites(guitarItem("guitar-b"))

	s.RemoveFavorite("guitar-a")

	favorites := s.Favorites()
	if len(favorites) != 1 || favorites[0].ID != "guitar-b" {
		t.Errorf("favorites = %v, want single guitar-b", favorites)
	}
}

func TestFavoriteByID(t *testing.T) {
	s, _, _ := newTestShop()
	s.AddToFavorites(guitarItem("guitar-a"))

	if fav := s.FavoriteByID("guitar-a"); fav == nil || fav.ID != "guitar-a" {
		t.Errorf("FavoriteByID(guitar-a) = %v", fav)
	}
	if fav := s.FavoriteByID("nope"); fav != nil {
		t.Errorf("FavoriteByID(nope) = %v, want nil", fav)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	s, _, ann := newTestShop()

	if views := s.Checkout(); views != nil {
		t.Errorf("empty checkout returned %v, want nil", views)
	}
	if ann.Last() != "Je winkelwagen is leeg. Voeg eerst iets toe." {
		t.Errorf("announcement = %q", ann.Last())
	}
	if got := len(s.Sales()); got != 0 {
		t.Errorf("sales length = %d, want 0", got)
	}
}

func TestCheckout_RecordsSaleAndEmptiesCart(t *testing.T) {
	s, _, ann := newTestShop()
	a := guitarItem("guitar-a")
	a.Price = 100
	b := guitarItem("guitar-b")
	b.Price = 50
	s.AddToCart(a)
	s.AddToCart(b)

	views := s.Checkout()
	if views == nil {
		t.Fatal("checkout returned nil refresh set")
	}

	sales := s.Sales()
	if len(sales) != 1 {
		t.Fatalf("sales length = %d, want 1", len(sales))
	}
	sale := sales[0]
	wantID := fmt.Sprintf("sale-%d", testTime.UnixMilli())
	if sale.ID != wantID {
		t.Errorf("sale.ID = %q, want %q", sale.ID, wantID)
	}
	if sale.Total != 150 {
		t.Errorf("sale.Total = %v, want 150", sale.Total)
	}
	if sale.CreatedAt != testTime.Format(time.RFC3339) {
		t.Errorf("sale.CreatedAt = %q", sale.CreatedAt)
	}
	if len(sale.Items) != 2 {
		t.Fatalf("sale items = %d, want 2", len(sale.Items))
	}
	for i, item := range sale.Items {
		if item.Quantity != 1 {
			t.Errorf("item[%d].Quantity = %d, want 1", i, item.Quantity)
		}
	}

	if got := len(s.Cart()); got != 0 {
		t.Errorf("cart length after checkout = %d, want 0", got)
	}
	if ann.Last() != "Betaling ontvangen. Bedankt voor je bestelling." {
		t.Errorf("announcement = %q", ann.Last())
	}
}

func TestCheckout_PrependsNewestSale(t *testing.T) {
	s, _, _ := newTestShop()
	clock := testTime
	s.WithClock(func() time.Time { return clock })

	s.AddToCart(guitarItem("guitar-a"))
	s.Checkout()

	clock = clock.Add(time.Hour)
	s.AddToCart(guitarItem("guitar-b"))
	s.Checkout()

	sales := s.Sales()
	if len(sales) != 2 {
		t.Fatalf("sales length = %d, want 2", len(sales))
	}
	if sales[0].Items[0].ID != "guitar-b" {
		t.Errorf("sales[0] item = %q, want the newest sale first", sales[0].Items[0].ID)
	}
}

func TestCheckout_SaveFailureKeepsCart(t *testing.T) {
	s, st, _ := newTestShop()
	s.AddToCart(guitarItem("guitar-a"))

	st.FailSaves = true
	if views := s.Checkout(); views != nil {
		t.Errorf("failed checkout returned %v, want nil", views)
	}
	st.FailSaves = false

	if got := len(s.Cart()); got != 1 {
		t.Errorf("cart length = %d, want 1 after failed checkout", got)
	}
	if got := len(s.Sales()); got != 0 {
		t.Errorf("sales length = %d, want 0 after failed checkout", got)
	}
}

func TestLayout_CorruptSectionFallsBackPerSection(t *testing.T) {
	s, st, _ := newTestShop()
	st.Seed("home-layout", `{"guitar":["guitar-inkline"]}`)

	layout := s.Layout()
	if len(layout.Guitar) != 1 || layout.Guitar[0] != "guitar-inkline" {
		t.Errorf("guitar section = %v", layout.Guitar)
	}
	defaults := catalog.DefaultLayout()
	if len(layout.Poem) != len(defaults.Poem) {
		t.Errorf("poem section = %v, want defaults", layout.Poem)
	}
	if len(layout.Drawing) != len(defaults.Drawing) {
		t.Errorf("drawing section = %v, want defaults", layout.Drawing)
	}
}

func TestLayoutAdd_Capacity(t *testing.T) {
	s, st, ann := newTestShop()
	st.Seed("home-layout", `{"guitar":[],"poem":["p1","p2","p3"],"drawing":[]}`)

	if views := s.LayoutAdd("poem", "p4"); views != nil {
		t.Errorf("add at capacity returned %v, want nil", views)
	}
	if ann.Last() != "Maximaal 3 items toegestaan voor deze rij." {
		t.Errorf("announcement = %q", ann.Last())
	}
	if got := len(s.Layout().Poem); got != 3 {
		t.Errorf("poem section length = %d, want 3", got)
	}
}

func TestLayoutAdd_DuplicateIsNoOp(t *testing.T) {
	s, st, _ := newTestShop()
	st.Seed("home-layout", `{"guitar":["g1"],"poem":[],"drawing":[]}`)

	if views := s.LayoutAdd("guitar", "g1"); views != nil {
		t.Errorf("duplicate add returned %v, want nil", views)
	}
}

func TestLayoutAdd_UnknownType(t *testing.T) {
	s, _, _ := newTestShop()
	if views := s.LayoutAdd("sculpture", "x"); views != nil {
		t.Errorf("unknown type returned %v, want nil", views)
	}
}

func TestLayoutMove_Boundaries(t *testing.T) {
	s, st, _ := newTestShop()
	st.Seed("home-layout", `{"guitar":["g1","g2"],"poem":[],"drawing":[]}`)

	if views := s.LayoutMoveUp("guitar", "g1"); views != nil {
		t.Errorf("move up at top returned %v, want nil", views)
	}
	if views := s.LayoutMoveDown("guitar", "g2"); views != nil {
		t.Errorf("move down at bottom returned %v, want nil", views)
	}

	if views := s.LayoutMoveDown("guitar", "g1"); views == nil {
		t.Fatal("valid move down returned nil")
	}
	guitar := s.Layout().Guitar
	if guitar[0] != "g2" || guitar[1] != "g1" {
		t.Errorf("guitar section = %v, want [g2 g1]", guitar)
	}
}

func TestAccessCode_Default(t *testing.T) {
	s, _, _ := newTestShop()
	if got := s.AccessCode(); got != shop.DefaultAccessCode {
		t.Errorf("AccessCode = %q, want default", got)
	}
}

func TestSetAccessCode_ValidationOrder(t *testing.T) {
	s, _, _ := newTestShop()

	if err := s.SetAccessCode("wrong", "ab", "cd"); err != shop.ErrWrongCode {
		t.Errorf("err = %v, want ErrWrongCode", err)
	}
	if err := s.SetAccessCode(shop.DefaultAccessCode, "ab", "cd"); err != shop.ErrCodeTooShort {
		t.Errorf("err = %v, want ErrCodeTooShort", err)
	}
	if err := s.SetAccessCode(shop.DefaultAccessCode, "abcd", "abce"); err != shop.ErrCodeMismatch {
		t.Errorf("err = %v, want ErrCodeMismatch", err)
	}
	if err := s.SetAccessCode(shop.DefaultAccessCode, "abcd", "abcd"); err != nil {
		t.Fatalf("valid change failed: %v", err)
	}
	if got := s.AccessCode(); got != "abcd" {
		t.Errorf("AccessCode after change = %q, want abcd", got)
	}
}

func TestSetAccessCode_SaveFailure(t *testing.T) {
	s, st, _ := newTestShop()
	st.FailSaves = true
	if err := s.SetAccessCode(shop.DefaultAccessCode, "abcd", "abcd"); err != shop.ErrNotSaved {
		t.Errorf("err = %v, want ErrNotSaved", err)
	}
}

func TestLoginLogout(t *testing.T) {
	s, _, _ := newTestShop()

	if s.Unlocked() {
		t.Fatal("fresh shop should be locked")
	}
	if s.Login("wrong") {
		t.Error("wrong code unlocked the shop")
	}
	if !s.Login(shop.DefaultAccessCode) {
		t.Fatal("correct code did not unlock")
	}
	if !s.Unlocked() {
		t.Error("Unlocked = false after login")
	}
	s.Logout()
	if s.Unlocked() {
		t.Error("Unlocked = true after logout")
	}
}

func TestAddCustomProduct(t *testing.T) {
	s, _, ann := newTestShop()

	views := s.AddCustomProduct(shop.ProductFields{
		Type:  catalog.Guitar,
		Title: "  Fuzz Deluxe!  ",
		Price: 1250,
	})
	if views == nil {
		t.Fatal("AddCustomProduct returned nil refresh set")
	}

	products := s.CustomProducts()
	if len(products) != 1 {
		t.Fatalf("products length = %d, want 1", len(products))
	}
	p := products[0]
	wantID := fmt.Sprintf("guitar-fuzz-deluxe-%d", testTime.UnixMilli())
	if p.ID != wantID {
		t.Errorf("product id = %q, want %q", p.ID, wantID)
	}
	if p.Title != "Fuzz Deluxe!" {
		t.Errorf("title = %q, want trimmed", p.Title)
	}
	if p.PublishedAt != testTime.Format(time.RFC3339) {
		t.Errorf("publishedAt = %q", p.PublishedAt)
	}
	if ann.Last() != "Product toegevoegd" {
		t.Errorf("announcement = %q", ann.Last())
	}
}

func TestAddCustomProduct_EmptyTitle(t *testing.T) {
	s, _, _ := newTestShop()
	if views := s.AddCustomProduct(shop.ProductFields{Type: catalog.Poem, Title: "   "}); views != nil {
		t.Errorf("empty title returned %v, want nil", views)
	}
	if got := len(s.CustomProducts()); got != 0 {
		t.Errorf("products length = %d, want 0", got)
	}
}

func TestDeleteAndRestorePublished(t *testing.T) {
	s, _, _ := newTestShop()

	if views := s.DeletePublished("guitar-inkline"); views == nil {
		t.Fatal("DeletePublished returned nil refresh set")
	}
	if views := s.DeletePublished("guitar-inkline"); views != nil {
		t.Errorf("second delete returned %v, want nil", views)
	}

	for _, entry := range s.Effective("guitar") {
		if entry.ID == "guitar-inkline" {
			t.Error("hidden item still in effective catalog")
		}
	}

	s.RestorePublished("guitar-inkline")
	entries := s.Effective("guitar")
	if len(entries) != 3 {
		t.Fatalf("effective guitars = %d, want 3 after restore", len(entries))
	}
	// Restored items reappear at their original catalog position.
	if entries[1].ID != "guitar-inkline" {
		t.Errorf("entries[1].ID = %q, want guitar-inkline", entries[1].ID)
	}
}

func TestStartup_BackfillsTrackingDates(t *testing.T) {
	s, st, _ := newTestShop()
	st.Seed("custom-products", `[{"id":"poem-old-1000","type":"Poem","title":"Oud"}]`)

	s.Startup()

	dates := s.PublishedDates()
	for _, item := range catalog.Published() {
		if dates[item.ID] == "" {
			t.Errorf("no date backfilled for %s", item.ID)
		}
	}
	if dates["poem-old-1000"] != testTime.Format(time.RFC3339) {
		t.Errorf("custom product date = %q", dates["poem-old-1000"])
	}
	products := s.CustomProducts()
	if products[0].PublishedAt != testTime.Format(time.RFC3339) {
		t.Errorf("publishedAt backfill = %q", products[0].PublishedAt)
	}
}

func TestStartup_Idempotent(t *testing.T) {
	s, _, _ := newTestShop()
	s.Startup()
	first := s.PublishedDates()

	s.WithClock(func() time.Time { return testTime.Add(48 * time.Hour) })
	s.Startup()

	second := s.PublishedDates()
	for id, date := range first {
		if second[id] != date {
			t.Errorf("date for %s changed from %q to %q", id, date, second[id])
		}
	}
}

func TestStartup_NormalizesStoredImages(t *testing.T) {
	s, st, _ := newTestShop()
	st.Seed("cart", `[{"id":"x","type":"Guitar","title":"X","image":"C:\\fakepath\\foto.jpg"}]`)
	st.Seed("favorites", `[{"id":"y","type":"Poem","title":"Y","image":"../jpg/gedicht.jpeg"}]`)

	s.Startup()

	if got := s.Cart()[0].Image; got != "" {
		t.Errorf("cart image = %q, want empty", got)
	}
	if got := s.Favorites()[0].Image; got != "jpg/gedicht.jpeg" {
		t.Errorf("favorites image = %q, want jpg/gedicht.jpeg", got)
	}
}

func TestCorruptKeyFallsBackToDefault(t *testing.T) {
	s, st, _ := newTestShop()
	st.Seed("cart", `{"definitely":"not a list"}`)
	st.Seed("access-code", `42`)

	if got := len(s.Cart()); got != 0 {
		t.Errorf("corrupt cart length = %d, want 0", got)
	}
	if got := s.AccessCode(); got != shop.DefaultAccessCode {
		t.Errorf("corrupt access code = %q, want default", got)
	}
}

func TestTheme(t *testing.T) {
	s, st, _ := newTestShop()

	if got := s.Theme(); got != "" {
		t.Errorf("unset theme = %q, want empty", got)
	}
	if s.SetTheme("sepia") {
		t.Error("invalid theme accepted")
	}
	if !s.SetTheme("dark") {
		t.Fatal("valid theme rejected")
	}
	if got := s.Theme(); got != "dark" {
		t.Errorf("theme = %q, want dark", got)
	}

	st.Seed("theme", `"sepia"`)
	if got := s.Theme(); got != "" {
		t.Errorf("invalid stored theme = %q, want empty", got)
	}
}

func TestResolveTheme(t *testing.T) {
	s, _, _ := newTestShop()

	if got := s.ResolveTheme(true); got != "dark" {
		t.Errorf("ResolveTheme(dark bg) = %q, want dark", got)
	}
	if got := s.ResolveTheme(false); got != "light" {
		t.Errorf("ResolveTheme(light bg) = %q, want light", got)
	}
	s.SetTheme("light")
	if got := s.ResolveTheme(true); got != "light" {
		t.Errorf("stored theme should win, got %q", got)
	}
}

func TestA11yPrefs(t *testing.T) {
	s, st, _ := newTestShop()

	prefs := s.A11y()
	if prefs.LargeText || prefs.HighContrast {
		t.Errorf("default prefs = %+v, want both false", prefs)
	}

	s.SetA11y(shop.A11yPrefs{LargeText: true})
	if got := s.A11y(); !got.LargeText || got.HighContrast {
		t.Errorf("prefs = %+v, want large text only", got)
	}

	st.Seed("a11y-prefs", `"garbage"`)
	if got := s.A11y(); got.LargeText || got.HighContrast {
		t.Errorf("corrupt prefs = %+v, want both false", got)
	}
}
