package catalog_test

import (
	"testing"

	"github.com/blackwell-systems/atelierctl/internal/catalog"
)

func TestEffective_PublishedOnly(t *testing.T) {
	entries := catalog.Effective("guitar", nil, nil)
	if len(entries) != 3 {
		t.Fatalf("guitar entries = %d, want 3", len(entries))
	}
	if entries[0].ID != "guitar-noir-echo" {
		t.Errorf("entries[0].ID = %q, want guitar-noir-echo", entries[0].ID)
	}
}

func TestEffective_ExcludesDeleted(t *testing.T) {
	entries := catalog.Effective("guitar", nil, []string{"guitar-inkline"})
	if len(entries) != 2 {
		t.Fatalf("guitar entries = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.ID == "guitar-inkline" {
			t.Error("deleted id present in effective catalog")
		}
	}
}

func TestEffective_CustomAfterPublished(t *testing.T) {
	custom := []catalog.Product{
		{Item: catalog.Item{ID: "guitar-custom-1", Type: catalog.Guitar, Title: "Eigen"}},
		{Item: catalog.Item{ID: "poem-custom-1", Type: catalog.Poem, Title: "Vers"}},
	}
	entries := catalog.Effective("guitar", custom, nil)
	if len(entries) != 4 {
		t.Fatalf("guitar entries = %d, want 4", len(entries))
	}
	if entries[3].ID != "guitar-custom-1" {
		t.Errorf("entries[3].ID = %q, custom products must follow published", entries[3].ID)
	}
}

func TestEffective_TypeFilterIsCaseInsensitive(t *testing.T) {
	custom := []catalog.Product{
		{Item: catalog.Item{ID: "poem-custom-1", Type: "poem", Title: "kleine letters"}},
	}
	entries := catalog.Effective("poem", custom, nil)
	if len(entries) != 4 {
		t.Fatalf("poem entries = %d, want 4", len(entries))
	}
}

func TestEffective_AnnotatesLinks(t *testing.T) {
	entries := catalog.Effective("drawing", nil, nil)
	if entries[0].Link != "drawings#drawing-1" {
		t.Errorf("link = %q, want drawings#drawing-1", entries[0].Link)
	}
}

func TestEntryByID(t *testing.T) {
	entries := catalog.Effective("poem", nil, nil)
	if e := catalog.EntryByID(entries, "poem-graphite-moon"); e == nil || e.Title != "Grafietmaan" {
		t.Errorf("EntryByID = %v", e)
	}
	if e := catalog.EntryByID(entries, "missing"); e != nil {
		t.Errorf("EntryByID(missing) = %v, want nil", e)
	}
}

func TestPublished_FixedCatalog(t *testing.T) {
	items := catalog.Published()
	if len(items) != 11 {
		t.Fatalf("published items = %d, want 11", len(items))
	}
	counts := map[catalog.Type]int{}
	for _, item := range items {
		counts[item.Type]++
	}
	if counts[catalog.Guitar] != 3 || counts[catalog.Drawing] != 5 || counts[catalog.Poem] != 3 {
		t.Errorf("type counts = %v", counts)
	}
}

func TestMaxFor(t *testing.T) {
	cases := map[string]int{"guitar": 4, "poem": 3, "drawing": 5, "other": 4}
	for key, want := range cases {
		if got := catalog.MaxFor(key); got != want {
			t.Errorf("MaxFor(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestTypeKey(t *testing.T) {
	if got := catalog.Guitar.Key(); got != "guitar" {
		t.Errorf("Guitar.Key() = %q", got)
	}
	if got := catalog.Type("Sculpture").Key(); got != "" {
		t.Errorf("unknown type key = %q, want empty", got)
	}
}

func TestPageFor(t *testing.T) {
	if got := catalog.PageFor(catalog.Drawing); got != "drawings" {
		t.Errorf("PageFor(Drawing) = %q", got)
	}
	if got := catalog.PageFor("Sculpture"); got != "favorites" {
		t.Errorf("PageFor(unknown) = %q, want favorites", got)
	}
}

func TestLayoutSection(t *testing.T) {
	l := catalog.Layout{Guitar: []string{"a"}, Poem: []string{"b"}}
	if got := l.Section("guitar"); len(got) != 1 || got[0] != "a" {
		t.Errorf("Section(guitar) = %v", got)
	}
	if got := l.Section("sculpture"); got != nil {
		t.Errorf("Section(unknown) = %v, want nil", got)
	}

	l.SetSection("drawing", []string{"c"})
	if len(l.Drawing) != 1 || l.Drawing[0] != "c" {
		t.Errorf("Drawing after SetSection = %v", l.Drawing)
	}
}
