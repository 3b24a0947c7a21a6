// Package booking books PT sessions and classes. Every call runs in its own
// transaction and reports failures as *Error with a Reason.
package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/balkashynov/healthclub/internal/db"
	"github.com/balkashynov/healthclub/internal/logger"
	"github.com/balkashynov/healthclub/internal/models"
	"github.com/balkashynov/healthclub/internal/schedule"
)

// PTRequest asks for a personal training session
type PTRequest struct {
	MemberID  uint
	TrainerID uint
	RoomID    uint
	Start     time.Time
	End       time.Time
}

// ClassRequest asks for a group class
type ClassRequest struct {
	Title     string
	RoomID    uint
	TrainerID uint
	Capacity  int
	Start     time.Time
	End       time.Time
}

// Booker runs booking operations against a Store
type Booker struct {
	store Store
	log   *logger.Logger
}

// NewBooker creates a Booker. A nil log discards output.
func NewBooker(store Store, log *logger.Logger) *Booker {
	if log == nil {
		log = logger.Discard()
	}
	return &Booker{store: store, log: log}
}

type reference struct {
	kind   models.Resource
	id     uint
	reason Reason
}

// BookPTSession books a PT session. Checks run in order and stop at the
// first failure: window, member, trainer, room, trainer overlap, room
// overlap. Member overlap is left to the storage trigger, which surfaces
// as PersistenceError.
func (b *Booker) BookPTSession(ctx context.Context, req PTRequest) (uint, error) {
	log := b.log.With("op", "book_pt", "op_id", uuid.NewString(),
		"member_id", req.MemberID, "trainer_id", req.TrainerID, "room_id", req.RoomID)

	window := schedule.Window{Start: req.Start.UTC(), End: req.End.UTC()}
	if err := window.Validate(); err != nil {
		log.Debug("booking rejected", "reason", InvalidWindow)
		return 0, fail(InvalidWindow, err)
	}

	var id uint
	err := b.store.WithinTx(ctx, func(tx Tx) error {
		if err := checkReferences(tx, []reference{
			{models.ResourceMember, req.MemberID, MemberNotFound},
			{models.ResourceTrainer, req.TrainerID, TrainerNotFound},
			{models.ResourceRoom, req.RoomID, RoomNotFound},
		}); err != nil {
			return err
		}

		for _, dim := range []reference{
			{models.ResourceTrainer, req.TrainerID, TrainerConflict},
			{models.ResourceRoom, req.RoomID, RoomConflict},
		} {
			slots, err := tx.ActiveSessions(dim.kind, dim.id)
			if err != nil {
				return fail(PersistenceError, err)
			}
			if c, found := schedule.FindConflict(window, slots); found {
				return &Error{Reason: dim.reason, ConflictID: c.SlotID}
			}
		}

		session := models.PTSession{
			StartTime: window.Start,
			EndTime:   window.End,
			Status:    models.StatusScheduled,
			MemberID:  req.MemberID,
			TrainerID: req.TrainerID,
			RoomID:    req.RoomID,
		}
		if err := tx.InsertPTSession(&session); err != nil {
			return fail(PersistenceError, err)
		}
		id = session.ID
		return nil
	})
	if err != nil {
		return 0, b.rejected(log, err)
	}

	log.Info("pt session booked", "session_id", id)
	return id, nil
}

// CreateClassSession schedules a group class. Only class-vs-class room
// overlap is checked; trainer availability and PT sessions are not.
func (b *Booker) CreateClassSession(ctx context.Context, req ClassRequest) (uint, error) {
	log := b.log.With("op", "create_class", "op_id", uuid.NewString(),
		"room_id", req.RoomID, "trainer_id", req.TrainerID)

	window := schedule.Window{Start: req.Start.UTC(), End: req.End.UTC()}
	if err := window.Validate(); err != nil {
		log.Debug("class rejected", "reason", InvalidWindow)
		return 0, fail(InvalidWindow, err)
	}

	var id uint
	err := b.store.WithinTx(ctx, func(tx Tx) error {
		if err := checkReferences(tx, []reference{
			{models.ResourceRoom, req.RoomID, RoomNotFound},
			{models.ResourceTrainer, req.TrainerID, TrainerNotFound},
		}); err != nil {
			return err
		}

		slots, err := tx.RoomClassSessions(req.RoomID)
		if err != nil {
			return fail(PersistenceError, err)
		}
		if c, found := schedule.FindConflict(window, slots); found {
			return &Error{Reason: RoomConflict, ConflictID: c.SlotID}
		}

		class := models.ClassSession{
			Title:     strings.TrimSpace(req.Title),
			StartTime: window.Start,
			EndTime:   window.End,
			Capacity:  req.Capacity,
			RoomID:    req.RoomID,
			TrainerID: req.TrainerID,
		}
		if err := tx.InsertClassSession(&class); err != nil {
			return fail(PersistenceError, err)
		}
		id = class.ID
		return nil
	})
	if err != nil {
		return 0, b.rejected(log, err)
	}

	log.Info("class session created", "class_id", id)
	return id, nil
}

// CancelPTSession releases a PT session's slot. The row is kept with
// status cancelled.
func (b *Booker) CancelPTSession(ctx context.Context, id uint) error {
	log := b.log.With("op", "cancel_pt", "op_id", uuid.NewString(), "session_id", id)

	err := b.store.WithinTx(ctx, func(tx Tx) error {
		session, err := tx.FindPTSession(id)
		if errors.Is(err, db.ErrNotFound) {
			return fail(SessionNotFound, err)
		}
		if err != nil {
			return fail(PersistenceError, err)
		}
		if session.Status == models.StatusCancelled {
			return fail(AlreadyCancelled, nil)
		}
		if err := tx.SetPTSessionStatus(id, models.StatusCancelled); err != nil {
			return fail(PersistenceError, err)
		}
		return nil
	})
	if err != nil {
		return b.rejected(log, err)
	}

	log.Info("pt session cancelled")
	return nil
}

func checkReferences(tx Tx, refs []reference) error {
	for _, ref := range refs {
		ok, err := tx.Exists(ref.kind, ref.id)
		if err != nil {
			return fail(PersistenceError, err)
		}
		if !ok {
			return fail(ref.reason, nil)
		}
	}
	return nil
}

// rejected types err and logs it. Persistence failures are errors, the
// rest are expected outcomes.
func (b *Booker) rejected(log *logger.Logger, err error) error {
	bErr := asError(err)
	if bErr.Reason.Kind() == KindPersistence {
		log.Error("operation failed", "reason", bErr.Reason, "error", bErr.Err,
			"guard", errors.Is(bErr.Err, db.ErrConstraintViolation))
	} else {
		log.Debug("operation rejected", "reason", bErr.Reason, "conflict_id", bErr.ConflictID)
	}
	return bErr
}
