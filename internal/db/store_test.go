package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/healthclub/internal/models"
)

func TestExists(t *testing.T) {
	store := newTestStore(t)
	f := newFixture(t, store)

	err := store.WithinTx(context.Background(), func(tx *Tx) error {
		for kind, id := range map[models.Resource]uint{
			models.ResourceMember:  f.members[0],
			models.ResourceTrainer: f.trainers[0],
			models.ResourceRoom:    f.rooms[0],
		} {
			ok, err := tx.Exists(kind, id)
			require.NoError(t, err)
			assert.True(t, ok, kind)

			ok, err = tx.Exists(kind, 999)
			require.NoError(t, err)
			assert.False(t, ok, kind)
		}

		_, err := tx.Exists(models.Resource("locker"), 1)
		assert.Error(t, err)
		return nil
	})
	require.NoError(t, err)
}

func TestActiveSessionsSkipsCancelledAndOrders(t *testing.T) {
	store := newTestStore(t)
	f := newFixture(t, store)

	late := models.PTSession{MemberID: f.members[0], TrainerID: f.trainers[0], RoomID: f.rooms[0], StartTime: at(15, 0), EndTime: at(16, 0)}
	early := models.PTSession{MemberID: f.members[1], TrainerID: f.trainers[0], RoomID: f.rooms[1], StartTime: at(9, 0), EndTime: at(10, 0)}
	gone := models.PTSession{MemberID: f.members[0], TrainerID: f.trainers[0], RoomID: f.rooms[0], StartTime: at(12, 0), EndTime: at(13, 0), Status: models.StatusCancelled}
	for _, s := range []*models.PTSession{&late, &early, &gone} {
		require.NoError(t, insertPT(t, store, s))
	}

	err := store.WithinTx(context.Background(), func(tx *Tx) error {
		slots, err := tx.ActiveSessions(models.ResourceTrainer, f.trainers[0])
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, early.ID, slots[0].ID)
		assert.Equal(t, late.ID, slots[1].ID)
		assert.True(t, slots[0].Window.Start.Equal(at(9, 0)))

		slots, err = tx.ActiveSessions(models.ResourceRoom, f.rooms[0])
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, late.ID, slots[0].ID)

		slots, err = tx.ActiveSessions(models.ResourceTrainer, f.trainers[1])
		require.NoError(t, err)
		assert.Empty(t, slots)
		return nil
	})
	require.NoError(t, err)
}

func TestRoomClassSessions(t *testing.T) {
	store := newTestStore(t)
	f := newFixture(t, store)

	err := store.WithinTx(context.Background(), func(tx *Tx) error {
		class := models.ClassSession{Title: "Spin", RoomID: f.rooms[0], TrainerID: f.trainers[0], Capacity: 12, StartTime: at(18, 0), EndTime: at(19, 0)}
		require.NoError(t, tx.InsertClassSession(&class))
		assert.NotZero(t, class.ID)

		slots, err := tx.RoomClassSessions(f.rooms[0])
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, class.ID, slots[0].ID)
		assert.True(t, slots[0].Active())

		slots, err = tx.RoomClassSessions(f.rooms[1])
		require.NoError(t, err)
		assert.Empty(t, slots)
		return nil
	})
	require.NoError(t, err)
}

func TestPTSessionStatusRoundTrip(t *testing.T) {
	store := newTestStore(t)
	f := newFixture(t, store)

	s := models.PTSession{MemberID: f.members[0], TrainerID: f.trainers[0], RoomID: f.rooms[0], StartTime: at(10, 0), EndTime: at(11, 0)}
	require.NoError(t, insertPT(t, store, &s))

	err := store.WithinTx(context.Background(), func(tx *Tx) error {
		require.NoError(t, tx.SetPTSessionStatus(s.ID, models.StatusCancelled))

		loaded, err := tx.FindPTSession(s.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, loaded.Status)

		_, err = tx.FindPTSession(s.ID + 100)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, tx.SetPTSessionStatus(s.ID+100, models.StatusCancelled), ErrNotFound)
		assert.Error(t, tx.SetPTSessionStatus(s.ID, models.SessionStatus("paused")))
		return nil
	})
	require.NoError(t, err)
}

func TestWithinTxRollsBack(t *testing.T) {
	store := newTestStore(t)
	f := newFixture(t, store)
	boom := errors.New("boom")

	err := store.WithinTx(context.Background(), func(tx *Tx) error {
		s := models.PTSession{MemberID: f.members[0], TrainerID: f.trainers[0], RoomID: f.rooms[0], StartTime: at(10, 0), EndTime: at(11, 0), Status: models.StatusScheduled}
		require.NoError(t, tx.InsertPTSession(&s))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, store.db.Model(&models.PTSession{}).Count(&count).Error)
	assert.Zero(t, count)
}
