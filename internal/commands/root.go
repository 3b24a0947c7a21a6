package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/healthclub/internal/booking"
	"github.com/balkashynov/healthclub/internal/config"
	"github.com/balkashynov/healthclub/internal/db"
	"github.com/balkashynov/healthclub/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "healthclub",
	Short: "Health club management CLI",
	Long: `healthclub manages members, trainers, rooms, PT sessions, classes and invoices
for a health club. Bookings are checked for trainer and room overlaps, and the
database itself refuses to double-book a member.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// app is everything a command needs once the database is open
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	store  *db.Store
	booker *booking.Booker
}

func openApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("HEALTHCLUB_CONFIG")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logger.DEBUG
	}
	log := logger.New(logger.Config{Level: level, Format: cfg.Log.Format, Output: cmd.ErrOrStderr()})

	store, err := db.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		log:    log,
		store:  store,
		booker: booking.NewBooker(booking.NewDBStore(store), log),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("closing database", "error", err)
	}
}

// withApp opens the database before running fn and closes it afterwards
func withApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(cmd, args, a)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "healthclub %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file (or HEALTHCLUB_CONFIG)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(memberCmd)
	rootCmd.AddCommand(ptCmd)
	rootCmd.AddCommand(classCmd)
	rootCmd.AddCommand(trainerCmd)
	rootCmd.AddCommand(roomCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
