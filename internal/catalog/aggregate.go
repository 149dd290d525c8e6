package catalog

import "strings"

// Entry is an effective-catalog item annotated with its navigation
// link: the shop page for its type plus an anchor equal to the item id.
type Entry struct {
	Item
	Link string
}

// Effective merges the published catalog with custom products for one
// type. Published items hidden by deletedIDs are excluded; order is
// published-catalog order first, then custom-product insertion order.
// That order is the default fill order for under-populated homepage
// slots.
func Effective(typeKey string, custom []Product, deletedIDs []string) []Entry {
	key := strings.ToLower(typeKey)
	deleted := make(map[string]bool, len(deletedIDs))
	for _, id := range deletedIDs {
		deleted[id] = true
	}

	var out []Entry
	for _, item := range Published() {
		if deleted[item.ID] || item.Type.Key() != key {
			continue
		}
		out = append(out, annotate(item))
	}
	for _, p := range custom {
		if strings.ToLower(string(p.Type)) != key {
			continue
		}
		out = append(out, annotate(p.Item))
	}
	return out
}

// EntryByID returns the entry with the given id, or nil.
func EntryByID(entries []Entry, id string) *Entry {
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i]
		}
	}
	return nil
}

func annotate(item Item) Entry {
	return Entry{Item: item, Link: PageFor(item.Type) + "#" + item.ID}
}
