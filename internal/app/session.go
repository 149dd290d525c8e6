package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [code]",
		Short: "Open the management surface with the access code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var code string
			if len(args) == 1 {
				code = args[0]
			} else {
				fmt.Print("Toegangscode: ")
				_, _ = fmt.Scanln(&code)
			}
			if !shopSvc.Login(code) {
				return fmt.Errorf("onjuiste toegangscode")
			}
			ok("Ingelogd. Beheercommando's zijn nu beschikbaar.")
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the management surface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shopSvc.Logout()
			ok("Uitgelogd.")
			return nil
		},
	}
}
