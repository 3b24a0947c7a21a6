package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/healthclub/internal/config"
	"github.com/balkashynov/healthclub/internal/db"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database maintenance",
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create tables, the overlap trigger and the metrics view",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		// Opening the store already migrated everything
		target := a.cfg.Database.Path
		if a.store.Dialect() == config.DriverPostgres {
			target = fmt.Sprintf("%s@%s:%d/%s", a.cfg.Database.User, a.cfg.Database.Host, a.cfg.Database.Port, a.cfg.Database.Name)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Database ready (%s: %s)\n", a.store.Dialect(), target)
		return nil
	}),
}

var dbSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample trainers, rooms, a member, a class and a PT session",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		res, err := a.store.Seed(cmd.Context())
		if errors.Is(err, db.ErrAlreadySeeded) {
			fmt.Fprintln(cmd.OutOrStdout(), "Database already has data, nothing seeded.")
			return nil
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "✅ Sample data inserted")
		fmt.Fprintf(out, "Trainers: %v  Rooms: %v  Member: %d\n", res.TrainerIDs, res.RoomIDs, res.MemberID)
		fmt.Fprintf(out, "Class session: %d  PT session: %d\n", res.ClassSessionID, res.PTSessionID)
		return nil
	}),
}

func init() {
	dbCmd.AddCommand(dbInitCmd, dbSeedCmd)
}
