package shop

import "github.com/blackwell-systems/atelierctl/internal/catalog"

// Favorites returns the favorites list in insertion order. Unlike the
// cart it is unique by id.
func (s *Shop) Favorites() []catalog.Item {
	var items []catalog.Item
	s.st.Load(keyFavorites, &items)
	return normalizeImages(items)
}

// FavoriteByID returns the favorite with the given id, or nil.
func (s *Shop) FavoriteByID(id string) *catalog.Item {
	favorites := s.Favorites()
	for i := range favorites {
		if favorites[i].ID == id {
			return &favorites[i]
		}
	}
	return nil
}

// AddToFavorites appends item unless its id is already present.
func (s *Shop) AddToFavorites(item catalog.Item) []View {
	favorites := s.Favorites()
	for _, fav := range favorites {
		if fav.ID == item.ID {
			return nil
		}
	}
	if !s.st.Save(keyFavorites, append(favorites, item)) {
		return nil
	}
	s.announce("Toegevoegd aan favorieten")
	return s.done(CmdAddToFavorites)
}

// RemoveFavorite drops the favorite with the given id.
func (s *Shop) RemoveFavorite(id string) []View {
	favorites := s.Favorites()
	kept := favorites[:0]
	for _, fav := range favorites {
		if fav.ID != id {
			kept = append(kept, fav)
		}
	}
	if !s.st.Save(keyFavorites, kept) {
		return nil
	}
	return s.done(CmdRemoveFavorite)
}
