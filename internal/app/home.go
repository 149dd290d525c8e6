package app

import (
	"fmt"

	"github.com/blackwell-systems/atelierctl/internal/view"
	"github.com/spf13/cobra"
)

func newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the homepage: featured rows and the favorites carousel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(renderer.Badges(view.CountBadges(shopSvc)))
			fmt.Println(renderer.Home(view.FeaturedSections(shopSvc), view.FavoritesCarousel(shopSvc)))
			return nil
		},
	}
}

var pageKeys = map[string]string{
	"guitars":  "guitar",
	"poems":    "poem",
	"drawings": "drawing",
}

func newPageCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "page <guitars|poems|drawings>",
		Short:     "Show a storefront page",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"guitars", "poems", "drawings"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(args[0])
		},
	}
}

func runPage(page string) error {
	typeKey, found := pageKeys[page]
	if !found {
		return fmt.Errorf("onbekende pagina %q (kies guitars, poems of drawings)", page)
	}
	fmt.Println(renderer.Badges(view.CountBadges(shopSvc)))
	fmt.Println(renderer.ShopPage(pageTitle(typeKey), view.ShopPage(shopSvc, typeKey)))
	return nil
}
