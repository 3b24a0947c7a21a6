package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for healthclub",
	Long:  `Display detailed help for all healthclub commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp(cmd)
	},
}

func showCustomHelp(cmd *cobra.Command) {
	fmt.Fprint(cmd.OutOrStdout(), `
healthclub - Health Club Management CLI

COMMANDS:

  menu                    Interactive menu (options 1-9)

  member register         Register a new member
    -n, --name            Full name
    -e, --email           Email (must be unique)
    --dob                 Date of birth (YYYY-MM-DD)
    --gender, --phone     Optional details
  member goal <id>        Update fitness goal
    -g, --goal            Goal description (empty keeps current)
    --target-weight       Target weight in kg
  member metric <id>      Record a health metric
    --at                  When (YYYY-MM-DD HH:MM, "now", "2 hours ago")
    --weight, --heart-rate, --body-fat
  member lookup <name>    Find members with their latest metric

  pt book                 Book a PT session
    -m, -t, -r            Member, trainer and room ids
    --start               Start time (YYYY-MM-DD HH:MM)
    --end | --duration    End time or length (e.g. 45m)
  pt cancel <id>          Cancel a PT session and free its slot

  class create <title>    Schedule a group class (admin)
    -r, -t, --capacity    Room, trainer, maximum participants
    --start, --end | --duration

  trainer add             Add a trainer (-n, -e, --specialty)
  trainer schedule <id>   Show a trainer's PT sessions and classes
  room add <name>         Add a room (--capacity)

  invoice create <member-id> <amount>
    -d, --description     What the invoice is for

  db init                 Create tables, trigger and view
  db seed                 Load sample data

  version                 Show version information
  help                    Show this help

GLOBAL FLAGS:
  -c, --config            YAML config file (or HEALTHCLUB_CONFIG)
  -v, --verbose           Debug logging to stderr

BOOKING RULES:
  Sessions occupy [start, end). A session ending at 10:00 does not clash with
  one starting at 10:00. Cancelled sessions free their slot.

`)
}
