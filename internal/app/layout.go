package app

import (
	"fmt"

	"github.com/blackwell-systems/atelierctl/internal/catalog"
	"github.com/blackwell-systems/atelierctl/internal/view"
	"github.com/spf13/cobra"
)

func typeFor(typeKey string) catalog.Type {
	switch typeKey {
	case "guitar":
		return catalog.Guitar
	case "poem":
		return catalog.Poem
	case "drawing":
		return catalog.Drawing
	}
	return ""
}

func newManageLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compose the homepage rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganizer()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <guitar|poem|drawing> <product-id>",
			Short: "Add an item to a homepage row",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				refresh(shopSvc.LayoutAdd(args[0], args[1]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <guitar|poem|drawing> <product-id>",
			Short: "Remove an item from a homepage row",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				refresh(shopSvc.LayoutRemove(args[0], args[1]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "up <guitar|poem|drawing> <product-id>",
			Short: "Move an item one position up",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				refresh(shopSvc.LayoutMoveUp(args[0], args[1]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "down <guitar|poem|drawing> <product-id>",
			Short: "Move an item one position down",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				refresh(shopSvc.LayoutMoveDown(args[0], args[1]))
				return nil
			},
		},
	)
	return cmd
}

func runOrganizer() error {
	fmt.Println(renderer.Organizer(view.OrganizerSections(shopSvc)))
	return nil
}
