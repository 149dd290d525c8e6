package app

import (
	"fmt"

	"github.com/blackwell-systems/atelierctl/internal/view"
	"github.com/spf13/cobra"
)

func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Show your favorites",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesList()
		},
	}
	cmd.AddCommand(
		newFavoritesAddCmd(),
		newFavoritesRemoveCmd(),
		newFavoritesToCartCmd(),
	)
	return cmd
}

func runFavoritesList() error {
	fmt.Println(renderer.Badges(view.CountBadges(shopSvc)))
	fmt.Println(renderer.FavoritesPage(view.FavoritesPage(shopSvc)))
	return nil
}

func newFavoritesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to your favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := findItem(args[0])
			if err != nil {
				return err
			}
			refresh(shopSvc.AddToFavorites(*item))
			return nil
		},
	}
}

func newFavoritesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from your favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh(shopSvc.RemoveFavorite(args[0]))
			return nil
		},
	}
}

func newFavoritesToCartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-cart <product-id>",
		Short: "Add a favorite to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := shopSvc.FavoriteByID(args[0])
			if item == nil {
				return fmt.Errorf("favoriet %q niet gevonden", args[0])
			}
			refresh(shopSvc.AddToCart(*item))
			return nil
		},
	}
}
