package booking

import (
	"context"

	"github.com/balkashynov/healthclub/internal/db"
	"github.com/balkashynov/healthclub/internal/models"
	"github.com/balkashynov/healthclub/internal/schedule"
)

// Tx is the persistence a booking needs inside one transaction
type Tx interface {
	Exists(kind models.Resource, id uint) (bool, error)
	ActiveSessions(kind models.Resource, id uint) ([]schedule.Slot, error)
	RoomClassSessions(roomID uint) ([]schedule.Slot, error)
	InsertPTSession(session *models.PTSession) error
	InsertClassSession(class *models.ClassSession) error
	FindPTSession(id uint) (*models.PTSession, error)
	SetPTSessionStatus(id uint, status models.SessionStatus) error
}

// Store opens transactions. fn's error rolls the transaction back.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

type dbStore struct {
	store *db.Store
}

// NewDBStore adapts the gorm-backed store to Store
func NewDBStore(store *db.Store) Store {
	return &dbStore{store: store}
}

func (s *dbStore) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	return s.store.WithinTx(ctx, func(tx *db.Tx) error {
		return fn(tx)
	})
}
