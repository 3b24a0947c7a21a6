package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/healthclub/internal/db"
)

var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "Manage rooms",
}

var roomAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a room",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		capacity, _ := cmd.Flags().GetInt("capacity")

		room, err := a.store.AddRoom(cmd.Context(), db.RoomRequest{Name: args[0], Capacity: capacity})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Room %q added with id: %d\n", room.Name, room.ID)
		return nil
	}),
}

func init() {
	roomAddCmd.Flags().Int("capacity", 0, "How many people fit in the room")
	roomCmd.AddCommand(roomAddCmd)
}
