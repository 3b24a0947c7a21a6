package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/healthclub/internal/booking"
)

// resetFlags puts every flag back to its default; cobra keeps values
// between executions of the same command tree
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func useTempDB(t *testing.T) {
	t.Helper()
	t.Setenv("HEALTHCLUB_CONFIG", "")
	t.Setenv("HEALTHCLUB_DB_DRIVER", "sqlite")
	t.Setenv("HEALTHCLUB_DB_PATH", filepath.Join(t.TempDir(), "club.db"))
	t.Setenv("HEALTHCLUB_LOG_LEVEL", "error")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBookingFlow(t *testing.T) {
	useTempDB(t)

	out, err := run(t, "db", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Sample data inserted")

	out, err = run(t, "db", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")

	out, err = run(t, "pt", "book", "-m", "1", "-t", "1", "-r", "1", "--start", "2025-02-01 10:00", "--duration", "1h")
	require.NoError(t, err)
	assert.Contains(t, out, "PT session booked with id: 2")

	_, err = run(t, "pt", "book", "-m", "1", "-t", "1", "-r", "2", "--start", "2025-02-01 10:30", "--end", "2025-02-01 11:30")
	require.Error(t, err)
	assert.Equal(t, booking.TrainerConflict, booking.ReasonOf(err))

	_, err = run(t, "pt", "book", "-m", "1", "-t", "1", "-r", "1", "--start", "2025-02-01 12:00", "--end", "2025-02-01 11:00")
	assert.Equal(t, booking.InvalidWindow, booking.ReasonOf(err))

	out, err = run(t, "pt", "cancel", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled")

	out, err = run(t, "trainer", "schedule", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Alice Smith")
	assert.Contains(t, out, "cancelled")
}

func TestMemberCommands(t *testing.T) {
	useTempDB(t)

	out, err := run(t, "member", "register", "--name", "Dana Scott", "--email", "dana@example.com", "--dob", "1990-04-02")
	require.NoError(t, err)
	assert.Contains(t, out, "Member registered with id: 1")

	_, err = run(t, "member", "register", "--name", "Dana Two", "--email", "dana@example.com")
	assert.ErrorContains(t, err, "already registered")

	_, err = run(t, "member", "goal", "1")
	assert.ErrorContains(t, err, "nothing to update")

	out, err = run(t, "member", "goal", "1", "--goal", "Run a marathon", "--target-weight", "65")
	require.NoError(t, err)
	assert.Contains(t, out, "Run a marathon")

	_, err = run(t, "member", "metric", "1", "--at", "2025-01-06 08:00", "--weight", "66.2", "--heart-rate", "58")
	require.NoError(t, err)

	out, err = run(t, "member", "lookup", "dana")
	require.NoError(t, err)
	assert.Contains(t, out, "Dana Scott")
	assert.Contains(t, out, "66.2")
}

func TestAdminCommands(t *testing.T) {
	useTempDB(t)

	_, err := run(t, "trainer", "add", "-n", "Gail Park", "-e", "gail@club.com")
	require.NoError(t, err)
	_, err = run(t, "room", "add", "Studio 1", "--capacity", "12")
	require.NoError(t, err)

	out, err := run(t, "class", "create", "Spin", "-r", "1", "-t", "1", "--capacity", "10", "--start", "2025-02-01 18:00", "--duration", "45m")
	require.NoError(t, err)
	assert.Contains(t, out, "Class session created with id: 1")

	_, err = run(t, "class", "create", "Boxing", "-r", "1", "-t", "1", "--capacity", "10", "--start", "2025-02-01 18:30", "--duration", "1h")
	assert.Equal(t, booking.RoomConflict, booking.ReasonOf(err))

	_, err = run(t, "member", "register", "-n", "Ann Lee", "-e", "ann@example.com")
	require.NoError(t, err)
	out, err = run(t, "invoice", "create", "1", "49.99", "-d", "monthly membership")
	require.NoError(t, err)
	assert.Contains(t, out, "49.99")

	_, err = run(t, "invoice", "create", "1", "0")
	assert.ErrorContains(t, err, "amount must be greater than 0")
}

func TestVersionAndHelp(t *testing.T) {
	SetVersion("1.2.3", "abc", "today")
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "healthclub 1.2.3")

	out, err = run(t, "help")
	require.NoError(t, err)
	assert.Contains(t, out, "pt book")
}
