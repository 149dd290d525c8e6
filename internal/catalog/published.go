package catalog

// Published returns the fixed, code-defined catalog. Identity is
// immutable: items are never created or deleted, only hidden through
// the deleted-published id set.
func Published() []Item {
	return []Item{
		{ID: "guitar-noir-echo", Type: Guitar, Title: "Noir Echo", Image: "jpg/tekening2.jpg"},
		{ID: "guitar-inkline", Type: Guitar, Title: "Inkline", Image: "jpg/tekening4.jpg"},
		{ID: "guitar-shadow-cedar", Type: Guitar, Title: "Shadow Cedar", Image: "jpg/tekening5.jpg"},
		{ID: "drawing-1", Type: Drawing, Title: "Tekening I", Image: "jpg/tekening1.jpg"},
		{ID: "drawing-2", Type: Drawing, Title: "Tekening II", Image: "jpg/tekening2.jpg"},
		{ID: "drawing-3", Type: Drawing, Title: "Tekening III", Image: "jpg/tekening3.jpg"},
		{ID: "drawing-4", Type: Drawing, Title: "Tekening IV", Image: "jpg/tekening4.jpg"},
		{ID: "drawing-5", Type: Drawing, Title: "Tekening V", Image: "jpg/tekening5.jpg"},
		{ID: "poem-quiet-strings", Type: Poem, Title: "Stille Snaren", Image: "jpg/gedicht.jpeg"},
		{ID: "poem-graphite-moon", Type: Poem, Title: "Grafietmaan", Image: "jpg/gedicht.jpeg"},
		{ID: "poem-monochrome-prayer", Type: Poem, Title: "Monochroom Gebed", Image: "jpg/gedicht.jpeg"},
	}
}

// DefaultLayout returns the homepage arrangement used until the
// operator saves their own.
func DefaultLayout() Layout {
	return Layout{
		Guitar:  []string{"guitar-noir-echo", "guitar-inkline", "guitar-shadow-cedar"},
		Poem:    []string{"poem-quiet-strings", "poem-graphite-moon", "poem-monochrome-prayer"},
		Drawing: []string{"drawing-1", "drawing-2", "drawing-3", "drawing-4", "drawing-5"},
	}
}

// PageFor returns the shop page slug an item of the given type links to.
func PageFor(t Type) string {
	switch t {
	case Guitar:
		return "guitars"
	case Drawing:
		return "drawings"
	case Poem:
		return "poems"
	}
	return "favorites"
}
