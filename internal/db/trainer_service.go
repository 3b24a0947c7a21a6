package db

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/healthclub/internal/models"
	"github.com/balkashynov/healthclub/internal/validation"
)

// ErrDuplicateName is returned when a trainer email or room name is taken
var ErrDuplicateName = errors.New("already exists")

// TrainerRequest holds the data for a new trainer
type TrainerRequest struct {
	FullName  string `json:"full_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Specialty string `json:"specialty" validate:"max=100"`
}

// AddTrainer creates a trainer
func (s *Store) AddTrainer(ctx context.Context, req TrainerRequest) (*models.Trainer, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	trainer := models.Trainer{
		FullName:  req.FullName,
		Email:     req.Email,
		Specialty: optional(req.Specialty),
	}
	if err := s.db.WithContext(ctx).Create(&trainer).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("trainer %s: %w", req.Email, ErrDuplicateName)
		}
		return nil, fmt.Errorf("creating trainer: %w", err)
	}
	return &trainer, nil
}

// RoomRequest holds the data for a new room
type RoomRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Capacity int    `json:"capacity" validate:"gt=0"`
}

// AddRoom creates a room
func (s *Store) AddRoom(ctx context.Context, req RoomRequest) (*models.Room, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	room := models.Room{Name: req.Name, Capacity: req.Capacity}
	if err := s.db.WithContext(ctx).Create(&room).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("room %q: %w", req.Name, ErrDuplicateName)
		}
		return nil, fmt.Errorf("creating room: %w", err)
	}
	return &room, nil
}

// ScheduleKind tells PT sessions and classes apart in a trainer schedule
type ScheduleKind string

const (
	ScheduleKindPT    ScheduleKind = "pt"
	ScheduleKindClass ScheduleKind = "class"
)

// ScheduleEntry is one line of a trainer's schedule
type ScheduleEntry struct {
	Kind      ScheduleKind `json:"kind"`
	ID        uint         `json:"id"`
	StartTime time.Time    `json:"start_time"`
	EndTime   time.Time    `json:"end_time"`
	RoomID    uint         `json:"room_id"`
	RoomName  string       `json:"room_name"`
	// Title is the class title, or the member name for PT sessions
	Title  string               `json:"title"`
	Status models.SessionStatus `json:"status"`
}

// TrainerSchedule is a trainer with all their sessions in start order
type TrainerSchedule struct {
	Trainer models.Trainer  `json:"trainer"`
	Entries []ScheduleEntry `json:"entries"`
}

// TrainerSchedule returns the PT sessions and classes of a trainer.
// Cancelled PT sessions are listed with their status.
func (s *Store) TrainerSchedule(ctx context.Context, trainerID uint) (*TrainerSchedule, error) {
	var result TrainerSchedule

	err := s.WithinTx(ctx, func(tx *Tx) error {
		if err := tx.db.First(&result.Trainer, trainerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("trainer #%d: %w", trainerID, ErrNotFound)
			}
			return err
		}

		var sessions []models.PTSession
		if err := tx.db.Preload("Member").Preload("Room").
			Where("trainer_id = ?", trainerID).
			Order("start_time ASC").
			Find(&sessions).Error; err != nil {
			return fmt.Errorf("loading pt sessions: %w", err)
		}

		var classes []models.ClassSession
		if err := tx.db.Preload("Room").
			Where("trainer_id = ?", trainerID).
			Order("start_time ASC").
			Find(&classes).Error; err != nil {
			return fmt.Errorf("loading classes: %w", err)
		}

		for _, p := range sessions {
			result.Entries = append(result.Entries, ScheduleEntry{
				Kind:      ScheduleKindPT,
				ID:        p.ID,
				StartTime: p.StartTime,
				EndTime:   p.EndTime,
				RoomID:    p.RoomID,
				RoomName:  p.Room.Name,
				Title:     p.Member.FullName,
				Status:    p.Status,
			})
		}
		for _, c := range classes {
			result.Entries = append(result.Entries, ScheduleEntry{
				Kind:      ScheduleKindClass,
				ID:        c.ID,
				StartTime: c.StartTime,
				EndTime:   c.EndTime,
				RoomID:    c.RoomID,
				RoomName:  c.Room.Name,
				Title:     c.Title,
				Status:    models.StatusScheduled,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(result.Entries, func(i, j int) bool {
		return result.Entries[i].StartTime.Before(result.Entries[j].StartTime)
	})
	return &result, nil
}
