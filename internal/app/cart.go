package app

import (
	"fmt"
	"strconv"

	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/view"
	"github.com/spf13/cobra"
)

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartList()
		},
	}
	cmd.AddCommand(
		newCartAddCmd(),
		newCartRemoveCmd(),
		newCheckoutCmd(),
	)
	return cmd
}

func runCartList() error {
	fmt.Println(renderer.Badges(view.CountBadges(shopSvc)))
	fmt.Println(renderer.CartPage(view.Cart(shopSvc)))
	return nil
}

func newCartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := findItem(args[0])
			if err != nil {
				return err
			}
			refresh(shopSvc.AddToCart(*item))
			return nil
		},
	}
}

func newCartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <position>",
		Short: "Remove a cart line by position (1-based)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil || pos < 1 {
				return fmt.Errorf("ongeldige positie %q", args[0])
			}
			refresh(shopSvc.RemoveCartItem(pos - 1))
			return nil
		},
	}
}

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Complete the order: record the sale and empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh(shopSvc.Checkout())
			return nil
		},
	}
}

// findItem resolves a product id against the effective catalog of all
// types.
func findItem(id string) (*catalog.Item, error) {
	for _, typeKey := range []string{"guitar", "poem", "drawing"} {
		if entry := catalog.EntryByID(shopSvc.Effective(typeKey), id); entry != nil {
			return &entry.Item, nil
		}
	}
	return nil, fmt.Errorf("product %q niet gevonden", id)
}
