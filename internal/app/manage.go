package app

import (
	"errors"
	"fmt"

	"github.com/blackwell-systems/atelierctl/internal/shop"
	"github.com/blackwell-systems/atelierctl/internal/view"
	"github.com/spf13/cobra"
)

func newManageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manage",
		Short: "Management surface: products, layout, sales and security",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return requireUnlock()
		},
	}
	cmd.AddCommand(
		newManageProductsCmd(),
		newManagePublishedCmd(),
		newManageLayoutCmd(),
		newManageSalesCmd(),
		newManageCodeCmd(),
	)
	return cmd
}

func newManageProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List and edit your own products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProductsList()
		},
	}
	cmd.AddCommand(newProductAddCmd(), newProductRemoveCmd())
	return cmd
}

func runProductsList() error {
	fmt.Println(renderer.CustomManager(view.CustomManager(shopSvc)))
	return nil
}

func newProductAddCmd() *cobra.Command {
	var fields shop.ProductFields
	var typeName string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch typeName {
			case "guitar", "poem", "drawing":
			default:
				return fmt.Errorf("ongeldig type %q (kies guitar, poem of drawing)", typeName)
			}
			fields.Type = typeFor(typeName)
			refresh(shopSvc.AddCustomProduct(fields))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "Product type: guitar, poem or drawing")
	cmd.Flags().StringVar(&fields.Title, "title", "", "Product title")
	cmd.Flags().Float64Var(&fields.Price, "price", 0, "Price in euro (0 = on request)")
	cmd.Flags().StringVar(&fields.Image, "image", "", "Image path or URL")
	cmd.Flags().StringVar(&fields.Description, "description", "", "Product description")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newProductRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product you added",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh(shopSvc.RemoveCustomProduct(args[0]))
			return nil
		},
	}
}

func newManagePublishedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "published",
		Short: "Hide or restore the fixed catalog works",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublishedList()
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "hide <product-id>",
			Short: "Hide a published work from the shop",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				refresh(shopSvc.DeletePublished(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "restore <product-id>",
			Short: "Restore a hidden published work",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				refresh(shopSvc.RestorePublished(args[0]))
				return nil
			},
		},
	)
	return cmd
}

func runPublishedList() error {
	fmt.Println(renderer.PublishedManager(view.PublishedManager(shopSvc)))
	return nil
}

func newManageSalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sales",
		Short: "Show the sales dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSales()
		},
	}
}

func runSales() error {
	fmt.Println(renderer.Dashboard(view.SalesDashboard(shopSvc)))
	return nil
}

func newManageCodeCmd() *cobra.Command {
	var current, next, confirm string

	cmd := &cobra.Command{
		Use:   "code",
		Short: "Change the management access code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := shopSvc.SetAccessCode(current, next, confirm)
			switch {
			case err == nil:
				ok("Toegangscode gewijzigd.")
				refresh(shop.Refreshes(shop.CmdSetAccessCode))
				return nil
			case errors.Is(err, shop.ErrWrongCode):
				return fmt.Errorf("huidige code is onjuist")
			case errors.Is(err, shop.ErrCodeTooShort):
				return fmt.Errorf("nieuwe code moet minstens 4 tekens hebben")
			case errors.Is(err, shop.ErrCodeMismatch):
				return fmt.Errorf("nieuwe code en bevestiging komen niet overeen")
			default:
				return err
			}
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current access code")
	cmd.Flags().StringVar(&next, "next", "", "New access code (min. 4 characters)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "New access code again")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("next")
	_ = cmd.MarkFlagRequired("confirm")
	return cmd
}
