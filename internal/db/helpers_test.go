package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/balkashynov/healthclub/internal/config"
	"github.com/balkashynov/healthclub/internal/logger"
	"github.com/balkashynov/healthclub/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	}, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

type fixture struct {
	members  []uint
	trainers []uint
	rooms    []uint
}

// newFixture creates two members, two trainers and two rooms
func newFixture(t *testing.T, store *Store) fixture {
	t.Helper()
	var f fixture
	for i, name := range []string{"Ann Lee", "Ben Ray"} {
		m := models.Member{FullName: name, Email: []string{"ann@example.com", "ben@example.com"}[i]}
		require.NoError(t, store.db.Create(&m).Error)
		f.members = append(f.members, m.ID)
	}
	for i, name := range []string{"Tara Fox", "Tom Hill"} {
		tr := models.Trainer{FullName: name, Email: []string{"tara@club.com", "tom@club.com"}[i]}
		require.NoError(t, store.db.Create(&tr).Error)
		f.trainers = append(f.trainers, tr.ID)
	}
	for _, name := range []string{"Studio 1", "Studio 2"} {
		r := models.Room{Name: name, Capacity: 10}
		require.NoError(t, store.db.Create(&r).Error)
		f.rooms = append(f.rooms, r.ID)
	}
	return f
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func insertPT(t *testing.T, store *Store, s *models.PTSession) error {
	t.Helper()
	if s.Status == "" {
		s.Status = models.StatusScheduled
	}
	return store.WithinTx(context.Background(), func(tx *Tx) error {
		return tx.InsertPTSession(s)
	})
}
