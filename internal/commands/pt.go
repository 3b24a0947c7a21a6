package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/healthclub/internal/booking"
	"github.com/balkashynov/healthclub/internal/parser"
)

var ptCmd = &cobra.Command{
	Use:     "pt",
	Aliases: []string{"session"},
	Short:   "Book and cancel personal training sessions",
}

var ptBookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a PT session",
	Long: `Book a personal training session for a member.

The trainer and the room must be free for the whole window. A member cannot
hold two overlapping sessions; the database rejects the second one.`,
	Example: `  healthclub pt book --member 1 --trainer 1 --room 2 --start "2025-01-06 14:00" --end "2025-01-06 15:00"
  healthclub pt book -m 1 -t 1 -r 2 --start "2025-01-06 14:00" --duration 45m`,
	Args: cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		req, err := ptRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		id, err := a.booker.BookPTSession(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ PT session booked with id: %d (%s)\n", id, parser.FormatWindow(req.Start, req.End))
		return nil
	}),
}

var ptCancelCmd = &cobra.Command{
	Use:   "cancel [session-id]",
	Short: "Cancel a PT session and free its slot",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		id, err := parser.ParseID(args[0])
		if err != nil {
			return err
		}
		if err := a.booker.CancelPTSession(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "↩️  PT session #%d cancelled\n", id)
		return nil
	}),
}

func ptRequestFromFlags(cmd *cobra.Command) (booking.PTRequest, error) {
	var req booking.PTRequest
	var err error

	ids := []struct {
		flag string
		dst  *uint
	}{
		{"member", &req.MemberID},
		{"trainer", &req.TrainerID},
		{"room", &req.RoomID},
	}
	for _, id := range ids {
		v, _ := cmd.Flags().GetString(id.flag)
		if *id.dst, err = parser.ParseID(v); err != nil {
			return req, fmt.Errorf("--%s: %w", id.flag, err)
		}
	}

	req.Start, req.End, err = windowFromFlags(cmd)
	return req, err
}

func init() {
	ptBookCmd.Flags().StringP("member", "m", "", "Member id")
	ptBookCmd.Flags().StringP("trainer", "t", "", "Trainer id")
	ptBookCmd.Flags().StringP("room", "r", "", "Room id")
	addWindowFlags(ptBookCmd)

	ptCmd.AddCommand(ptBookCmd, ptCancelCmd)
}
