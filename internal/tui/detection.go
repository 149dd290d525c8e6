package tui

import (
	"github.com/blackwell-systems/atelierctl/internal/util"
	"github.com/spf13/cobra"
)

// ShouldUseTUI returns true if the command should use interactive TUI
// mode: stdout is a TTY and --no-interactive is not set.
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() {
		return false
	}
	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	return !noInteractive
}
