package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/healthclub/internal/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		return tui.RunMenu(cmd.Context(), a.store, a.booker)
	}),
}
