package db

import (
	"context"
	"errors"
	"time"

	"github.com/balkashynov/healthclub/internal/models"
)

// ErrAlreadySeeded is returned by Seed when the database already holds data
var ErrAlreadySeeded = errors.New("database already contains data")

// SeedResult lists the IDs created by Seed
type SeedResult struct {
	TrainerIDs     []uint
	RoomIDs        []uint
	MemberID       uint
	ClassSessionID uint
	PTSessionID    uint
}

// Seed loads a small sample dataset into an empty database
func (s *Store) Seed(ctx context.Context) (*SeedResult, error) {
	strength, yoga := "Strength", "Yoga"
	goal := "Lose weight"
	target := 70.0
	dob := time.Date(1995, 5, 10, 0, 0, 0, 0, time.UTC)

	trainers := []models.Trainer{
		{FullName: "Alice Smith", Email: "alice@club.com", Specialty: &strength},
		{FullName: "Bob Johnson", Email: "bob@club.com", Specialty: &yoga},
	}
	rooms := []models.Room{
		{Name: "Room A", Capacity: 20},
		{Name: "Room B", Capacity: 10},
	}
	member := models.Member{
		FullName:     "John Doe",
		Email:        "john@example.com",
		DateOfBirth:  &dob,
		FitnessGoal:  &goal,
		TargetWeight: &target,
	}

	var result SeedResult
	err := s.WithinTx(ctx, func(tx *Tx) error {
		var count int64
		if err := tx.db.Model(&models.Member{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadySeeded
		}

		if err := tx.db.Create(&trainers).Error; err != nil {
			return err
		}
		if err := tx.db.Create(&rooms).Error; err != nil {
			return err
		}
		if err := tx.db.Create(&member).Error; err != nil {
			return err
		}

		class := models.ClassSession{
			Title:     "Morning Yoga",
			StartTime: time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC),
			Capacity:  15,
			RoomID:    rooms[0].ID,
			TrainerID: trainers[1].ID,
		}
		if err := tx.InsertClassSession(&class); err != nil {
			return err
		}

		pt := models.PTSession{
			StartTime: time.Date(2025, 1, 6, 14, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 1, 6, 15, 0, 0, 0, time.UTC),
			Status:    models.StatusScheduled,
			MemberID:  member.ID,
			TrainerID: trainers[0].ID,
			RoomID:    rooms[1].ID,
		}
		if err := tx.InsertPTSession(&pt); err != nil {
			return err
		}

		result = SeedResult{
			TrainerIDs:     []uint{trainers[0].ID, trainers[1].ID},
			RoomIDs:        []uint{rooms[0].ID, rooms[1].ID},
			MemberID:       member.ID,
			ClassSessionID: class.ID,
			PTSessionID:    pt.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("sample data loaded", "member_id", result.MemberID)
	return &result, nil
}
