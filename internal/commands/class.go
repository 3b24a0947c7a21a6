package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/healthclub/internal/booking"
	"github.com/balkashynov/healthclub/internal/parser"
)

var classCmd = &cobra.Command{
	Use:   "class",
	Short: "Manage group classes",
}

var classCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Schedule a group class (admin)",
	Long: `Schedule a group class in a room.

Only other classes in the same room are checked for overlaps.`,
	Example: `  healthclub class create "Morning Yoga" --room 1 --trainer 2 --capacity 15 --start "2025-01-05 09:00" --duration 1h`,
	Args:    cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		roomStr, _ := cmd.Flags().GetString("room")
		roomID, err := parser.ParseID(roomStr)
		if err != nil {
			return fmt.Errorf("--room: %w", err)
		}
		trainerStr, _ := cmd.Flags().GetString("trainer")
		trainerID, err := parser.ParseID(trainerStr)
		if err != nil {
			return fmt.Errorf("--trainer: %w", err)
		}
		capacity, _ := cmd.Flags().GetInt("capacity")
		if capacity <= 0 {
			return fmt.Errorf("--capacity must be a positive number")
		}
		start, end, err := windowFromFlags(cmd)
		if err != nil {
			return err
		}

		id, err := a.booker.CreateClassSession(cmd.Context(), booking.ClassRequest{
			Title:     args[0],
			RoomID:    roomID,
			TrainerID: trainerID,
			Capacity:  capacity,
			Start:     start,
			End:       end,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Class session created with id: %d (%s)\n", id, parser.FormatWindow(start, end))
		return nil
	}),
}

func init() {
	classCreateCmd.Flags().StringP("room", "r", "", "Room id")
	classCreateCmd.Flags().StringP("trainer", "t", "", "Trainer id")
	classCreateCmd.Flags().Int("capacity", 0, "Maximum participants")
	addWindowFlags(classCreateCmd)

	classCmd.AddCommand(classCreateCmd)
}
