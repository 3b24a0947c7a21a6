package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/healthclub/internal/db"
	"github.com/balkashynov/healthclub/internal/parser"
)

var trainerCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Manage trainers and view their schedules",
}

var trainerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a trainer",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		specialty, _ := cmd.Flags().GetString("specialty")

		trainer, err := a.store.AddTrainer(cmd.Context(), db.TrainerRequest{FullName: name, Email: email, Specialty: specialty})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Trainer added with id: %d\n", trainer.ID)
		return nil
	}),
}

var trainerScheduleCmd = &cobra.Command{
	Use:   "schedule [trainer-id]",
	Short: "Show a trainer's PT sessions and classes",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		trainerID, err := parser.ParseID(args[0])
		if err != nil {
			return err
		}

		sched, err := a.store.TrainerSchedule(cmd.Context(), trainerID)
		if err != nil {
			return err
		}
		printSchedule(cmd, sched)
		return nil
	}),
}

func printSchedule(cmd *cobra.Command, sched *db.TrainerSchedule) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Schedule for %s (#%d)\n", sched.Trainer.FullName, sched.Trainer.ID)
	if len(sched.Entries) == 0 {
		fmt.Fprintln(out, "No sessions scheduled.")
		return
	}

	fmt.Fprintf(out, "%-6s %-5s %-34s %-15s %-10s %s\n", "KIND", "ID", "WHEN", "ROOM", "STATUS", "WITH")
	fmt.Fprintln(out, strings.Repeat("-", 90))
	for _, e := range sched.Entries {
		fmt.Fprintf(out, "%-6s %-5d %-34s %-15s %-10s %s\n",
			e.Kind,
			e.ID,
			parser.FormatWindow(e.StartTime, e.EndTime),
			truncate(e.RoomName, 15),
			e.Status,
			truncate(e.Title, 30))
	}
}

func init() {
	trainerAddCmd.Flags().StringP("name", "n", "", "Full name")
	trainerAddCmd.Flags().StringP("email", "e", "", "Email (must be unique)")
	trainerAddCmd.Flags().String("specialty", "", "Specialty, e.g. Yoga")

	trainerCmd.AddCommand(trainerAddCmd, trainerScheduleCmd)
}
