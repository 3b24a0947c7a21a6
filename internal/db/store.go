package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/balkashynov/healthclub/internal/models"
	"github.com/balkashynov/healthclub/internal/schedule"
)

// ErrNotFound is returned when a referenced row does not exist
var ErrNotFound = errors.New("not found")

// Tx is one transaction scope. It is only valid inside the WithinTx
// callback that received it.
type Tx struct {
	db *gorm.DB
}

// WithinTx runs fn in a transaction. The transaction commits when fn
// returns nil and rolls back when fn returns an error or panics.
func (s *Store) WithinTx(ctx context.Context, fn func(tx *Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(&Tx{db: gtx})
	})
}

// Exists reports whether a member, trainer or room with id exists
func (tx *Tx) Exists(kind models.Resource, id uint) (bool, error) {
	if _, err := models.ParseResource(string(kind)); err != nil {
		return false, err
	}

	var count int64
	if err := tx.db.Table(kind.Table()).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking %s #%d: %w", kind, id, err)
	}
	return count > 0, nil
}

// ActiveSessions returns the non-cancelled PT sessions occupying the given
// member, trainer or room, ordered by start time
func (tx *Tx) ActiveSessions(kind models.Resource, id uint) ([]schedule.Slot, error) {
	if _, err := models.ParseResource(string(kind)); err != nil {
		return nil, err
	}

	var sessions []models.PTSession
	err := tx.db.
		Where(kind.Column()+" = ? AND status <> ?", id, models.StatusCancelled).
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("querying %s #%d sessions: %w", kind, id, err)
	}

	slots := make([]schedule.Slot, 0, len(sessions))
	for _, s := range sessions {
		slots = append(slots, schedule.Slot{
			ID:     s.ID,
			Window: schedule.Window{Start: s.StartTime, End: s.EndTime},
			Status: s.Status,
		})
	}
	return slots, nil
}

// RoomClassSessions returns every class session held in the room
func (tx *Tx) RoomClassSessions(roomID uint) ([]schedule.Slot, error) {
	var classes []models.ClassSession
	err := tx.db.
		Where("room_id = ?", roomID).
		Order("start_time ASC").
		Find(&classes).Error
	if err != nil {
		return nil, fmt.Errorf("querying room #%d classes: %w", roomID, err)
	}

	slots := make([]schedule.Slot, 0, len(classes))
	for _, c := range classes {
		slots = append(slots, schedule.Slot{
			ID:     c.ID,
			Window: schedule.Window{Start: c.StartTime, End: c.EndTime},
			Status: models.StatusScheduled,
		})
	}
	return slots, nil
}

// InsertPTSession persists a new PT session and sets its ID. Times are
// stored in UTC. A rejection by the member overlap trigger is reported as
// ErrConstraintViolation.
func (tx *Tx) InsertPTSession(session *models.PTSession) error {
	session.StartTime = session.StartTime.UTC()
	session.EndTime = session.EndTime.UTC()
	if err := tx.db.Create(session).Error; err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
		return fmt.Errorf("inserting pt session: %w", err)
	}
	return nil
}

// InsertClassSession persists a new class session in UTC and sets its ID
func (tx *Tx) InsertClassSession(class *models.ClassSession) error {
	class.StartTime = class.StartTime.UTC()
	class.EndTime = class.EndTime.UTC()
	if err := tx.db.Create(class).Error; err != nil {
		return fmt.Errorf("inserting class session: %w", err)
	}
	return nil
}

// FindPTSession loads a PT session by ID
func (tx *Tx) FindPTSession(id uint) (*models.PTSession, error) {
	var session models.PTSession
	err := tx.db.First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("pt session #%d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading pt session #%d: %w", id, err)
	}
	return &session, nil
}

// SetPTSessionStatus changes the status of an existing PT session
func (tx *Tx) SetPTSessionStatus(id uint, status models.SessionStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid session status %q", status)
	}
	res := tx.db.Model(&models.PTSession{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("updating pt session #%d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("pt session #%d: %w", id, ErrNotFound)
	}
	return nil
}
