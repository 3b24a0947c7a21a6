package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/healthclub/internal/parser"
)

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "Start time (YYYY-MM-DD HH:MM)")
	cmd.Flags().String("end", "", "End time (YYYY-MM-DD HH:MM)")
	cmd.Flags().Duration("duration", 0, "Length instead of --end (e.g. 1h, 45m)")
}

// windowFromFlags reads --start plus --end or --duration. The window is
// passed on unchecked; end before start is reported by the booker.
func windowFromFlags(cmd *cobra.Command) (time.Time, time.Time, error) {
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	duration, _ := cmd.Flags().GetDuration("duration")

	start, err := parser.ParseDateTime(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--start: %w", err)
	}

	switch {
	case endStr != "" && duration != 0:
		return time.Time{}, time.Time{}, fmt.Errorf("use either --end or --duration, not both")
	case duration != 0:
		return start, start.Add(duration), nil
	}

	end, err := parser.ParseDateTime(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--end: %w", err)
	}
	return start, end, nil
}
