package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Show or set the theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				theme := shopSvc.Theme()
				if theme == "" {
					theme = "auto (volgt de terminalachtergrond)"
				}
				fmt.Println("Thema:", theme)
				return nil
			}
			if args[0] != "light" && args[0] != "dark" {
				return fmt.Errorf("ongeldig thema %q (kies light of dark)", args[0])
			}
			if !shopSvc.SetTheme(args[0]) {
				return fmt.Errorf("thema kon niet worden opgeslagen")
			}
			ok("Thema ingesteld op %s.", args[0])
			return nil
		},
	}
}

func newA11yCmd() *cobra.Command {
	var largeText, highContrast bool

	cmd := &cobra.Command{
		Use:   "a11y",
		Short: "Show or set accessibility preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("large-text") && !cmd.Flags().Changed("high-contrast") {
				prefs := shopSvc.A11y()
				fmt.Printf("Grote tekst: %s\nHoog contrast: %s\n",
					aanUit(prefs.LargeText), aanUit(prefs.HighContrast))
				return nil
			}

			prefs := shopSvc.A11y()
			if cmd.Flags().Changed("large-text") {
				prefs.LargeText = largeText
			}
			if cmd.Flags().Changed("high-contrast") {
				prefs.HighContrast = highContrast
			}
			if !shopSvc.SetA11y(prefs) {
				return fmt.Errorf("voorkeuren konden niet worden opgeslagen")
			}
			ok("Toegankelijkheidsvoorkeuren opgeslagen.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&largeText, "large-text", false, "Enable large text")
	cmd.Flags().BoolVar(&highContrast, "high-contrast", false, "Enable high contrast")
	return cmd
}

func aanUit(b bool) string {
	if b {
		return "aan"
	}
	return "uit"
}
