package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/atelierctl/internal/store"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s := store.NewFileStore(t.TempDir(), nil)

	want := map[string]int{"a": 1, "b": 2}
	if !s.Save("counts", want) {
		t.Fatal("Save failed")
	}

	var got map[string]int
	if !s.Load("counts", &got) {
		t.Fatal("Load failed")
	}
	if got["a"] != 1 || got["b"] != 2 {
		t.Errorf("loaded %v, want %v", got, want)
	}
}

func TestFileStore_MissingKey(t *testing.T) {
	s := store.NewFileStore(t.TempDir(), nil)

	var v []string
	if s.Load("nothing", &v) {
		t.Error("Load returned true for missing key")
	}
	if v != nil {
		t.Errorf("value mutated on missing key: %v", v)
	}
}

func TestFileStore_CorruptFileLeavesValueUntouched(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	s := store.NewFileStore(dir, nil)

	v := []string{"sentinel"}
	if s.Load("cart", &v) {
		t.Error("Load returned true for corrupt payload")
	}
	if len(v) != 1 || v[0] != "sentinel" {
		t.Errorf("value mutated on corrupt payload: %v", v)
	}
}

func TestFileStore_Remove(t *testing.T) {
	s := store.NewFileStore(t.TempDir(), nil)
	s.Save("theme", "dark")
	s.Remove("theme")

	var v string
	if s.Load("theme", &v) {
		t.Error("Load returned true after Remove")
	}

	// Removing a missing key is fine.
	s.Remove("theme")
}

func TestFileStore_UnsaveableValueAnnounces(t *testing.T) {
	ann := &store.CollectAnnouncer{}
	s := store.NewFileStore(t.TempDir(), ann)

	if s.Save("bad", func() {}) {
		t.Error("Save succeeded for an unmarshalable value")
	}
	if ann.Last() == "" {
		t.Error("no failure announcement")
	}
}

func TestMemStore_RoundTrip(t *testing.T) {
	s := store.NewMemStore()
	if !s.Save("n", 42) {
		t.Fatal("Save failed")
	}
	var n int
	if !s.Load("n", &n) || n != 42 {
		t.Errorf("loaded %d, want 42", n)
	}
}

func TestMemStore_FailSaves(t *testing.T) {
	ann := &store.CollectAnnouncer{}
	s := store.NewMemStore().WithAnnouncer(ann)
	s.FailSaves = true

	if s.Save("n", 1) {
		t.Error("Save succeeded with FailSaves set")
	}
	if ann.Last() == "" {
		t.Error("no failure announcement")
	}
	var n int
	if s.Load("n", &n) {
		t.Error("value persisted despite failed save")
	}
}

func TestMemStore_SeedCorrupt(t *testing.T) {
	s := store.NewMemStore()
	s.Seed("cart", "{broken")

	var v []string
	if s.Load("cart", &v) {
		t.Error("Load returned true for seeded corrupt payload")
	}
}

func TestTermAnnouncer_SingleSlot(t *testing.T) {
	var buf testWriter
	a := store.NewTermAnnouncer(&buf)

	a.Announce("eerste")
	a.Announce("tweede")
	if got := a.Last(); got != "tweede" {
		t.Errorf("Last = %q, want the most recent message", got)
	}
}

type testWriter struct{ data []byte }

func (w *testWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}
