package shop

// View identifies a renderer that a mutation may invalidate. The app
// layer maps these to actual render functions; the shop only knows the
// dependency graph.
type View string

const (
	ViewBadges          View = "badges"
	ViewHomeCarousel    View = "home-carousel"
	ViewFeatured        View = "featured-sections"
	ViewFavoritesPage   View = "favorites-page"
	ViewCartPage        View = "cart-page"
	ViewManageProducts  View = "manage-products"
	ViewManagePublished View = "manage-published"
	ViewShopPages       View = "shop-pages"
	ViewVisibility      View = "visibility"
	ViewOrganizer       View = "organizer"
	ViewSales           View = "sales-dashboard"
	ViewSecurity        View = "security-message"
)

// Command identifies a mutation.
type Command string

const (
	CmdAddToCart        Command = "add-to-cart"
	CmdAddToFavorites   Command = "add-to-favorites"
	CmdRemoveFavorite   Command = "remove-favorite"
	CmdRemoveCartItem   Command = "remove-cart-item"
	CmdAddProduct       Command = "add-custom-product"
	CmdRemoveProduct    Command = "remove-custom-product"
	CmdDeletePublished  Command = "delete-published"
	CmdRestorePublished Command = "restore-published"
	CmdLayoutChange     Command = "layout-change"
	CmdCheckout         Command = "checkout"
	CmdSetAccessCode    Command = "set-access-code"
)

// refreshSets is the render-dependency graph: for each command, the
// renderers that must re-read state after it succeeds. Adding a view
// means adding it to the rows that can invalidate it, nothing else.
var refreshSets = map[Command][]View{
	CmdAddToCart:        {ViewBadges},
	CmdAddToFavorites:   {ViewBadges, ViewHomeCarousel},
	CmdRemoveFavorite:   {ViewFavoritesPage, ViewBadges, ViewHomeCarousel},
	CmdRemoveCartItem:   {ViewCartPage, ViewBadges},
	CmdAddProduct:       {ViewManageProducts, ViewShopPages, ViewOrganizer, ViewFeatured},
	CmdRemoveProduct:    {ViewManageProducts, ViewShopPages, ViewFeatured, ViewOrganizer},
	CmdDeletePublished:  {ViewManagePublished, ViewVisibility, ViewHomeCarousel, ViewFeatured, ViewOrganizer},
	CmdRestorePublished: {ViewManagePublished, ViewVisibility, ViewHomeCarousel, ViewFeatured, ViewOrganizer},
	CmdLayoutChange:     {ViewOrganizer, ViewFeatured},
	CmdCheckout:         {ViewCartPage, ViewBadges, ViewSales},
	CmdSetAccessCode:    {ViewSecurity},
}

// Refreshes returns the refresh set for a command.
func Refreshes(cmd Command) []View {
	return refreshSets[cmd]
}

func (s *Shop) done(cmd Command) []View {
	return refreshSets[cmd]
}
