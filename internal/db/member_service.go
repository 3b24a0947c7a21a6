package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/healthclub/internal/models"
	"github.com/balkashynov/healthclub/internal/validation"
)

// ErrDuplicateEmail is returned when a member email is already registered
var ErrDuplicateEmail = errors.New("email is already registered")

// RegisterMemberRequest holds the data needed to register a member
type RegisterMemberRequest struct {
	FullName    string     `json:"full_name" validate:"required,max=100"`
	Email       string     `json:"email" validate:"required,email,max=100"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      string     `json:"gender" validate:"max=20"`
	Phone       string     `json:"phone" validate:"max=30"`
}

// RegisterMember creates a new member
func (s *Store) RegisterMember(ctx context.Context, req RegisterMemberRequest) (*models.Member, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	member := models.Member{
		FullName:    req.FullName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Gender:      optional(req.Gender),
		Phone:       optional(req.Phone),
	}

	if err := s.db.WithContext(ctx).Create(&member).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", req.Email, ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("creating member: %w", err)
	}

	s.log.Info("member registered", "member_id", member.ID)
	return &member, nil
}

// UpdateGoalRequest changes a member's fitness goal. Empty fields keep the
// current value.
type UpdateGoalRequest struct {
	MemberID     uint     `json:"member_id" validate:"required"`
	FitnessGoal  string   `json:"goal" validate:"max=255"`
	TargetWeight *float64 `json:"target_weight" validate:"omitempty,gt=0"`
}

// UpdateMemberGoal updates the fitness goal and target weight of a member
func (s *Store) UpdateMemberGoal(ctx context.Context, req UpdateGoalRequest) (*models.Member, error) {
	req.FitnessGoal = strings.TrimSpace(req.FitnessGoal)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var member models.Member
	err := s.WithinTx(ctx, func(tx *Tx) error {
		if err := tx.db.First(&member, req.MemberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("member #%d: %w", req.MemberID, ErrNotFound)
			}
			return err
		}

		if req.FitnessGoal != "" {
			member.FitnessGoal = &req.FitnessGoal
		}
		if req.TargetWeight != nil {
			member.TargetWeight = req.TargetWeight
		}

		return tx.db.Model(&member).Select("FitnessGoal", "TargetWeight").Updates(&member).Error
	})
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// HealthMetricRequest records one measurement. RecordedAt defaults to now.
type HealthMetricRequest struct {
	MemberID          uint       `json:"member_id" validate:"required"`
	RecordedAt        *time.Time `json:"recorded_at"`
	Weight            *float64   `json:"weight" validate:"omitempty,gt=0"`
	HeartRate         *int       `json:"heart_rate" validate:"omitempty,gt=0,lte=300"`
	BodyFatPercentage *float64   `json:"body_fat" validate:"omitempty,gte=0,lte=100"`
}

// AddHealthMetric stores a health metric for an existing member
func (s *Store) AddHealthMetric(ctx context.Context, req HealthMetricRequest) (*models.HealthMetric, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	recordedAt := time.Now().UTC()
	if req.RecordedAt != nil {
		recordedAt = req.RecordedAt.UTC()
	}

	metric := models.HealthMetric{
		MemberID:          req.MemberID,
		RecordedAt:        recordedAt,
		Weight:            req.Weight,
		HeartRate:         req.HeartRate,
		BodyFatPercentage: req.BodyFatPercentage,
	}

	err := s.WithinTx(ctx, func(tx *Tx) error {
		ok, err := tx.Exists(models.ResourceMember, req.MemberID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("member #%d: %w", req.MemberID, ErrNotFound)
		}
		return tx.db.Create(&metric).Error
	})
	if err != nil {
		return nil, err
	}

	return &metric, nil
}

// MemberLookup is a member matched by name together with their latest metric
type MemberLookup struct {
	models.MemberLatestMetric
	FitnessGoal *string `json:"fitness_goal"`
}

// lookupRow is scanned from the view; recorded_at goes through flexTime
// because sqlite hands it back as text
type lookupRow struct {
	MemberID          uint
	FullName          string
	FitnessGoal       *string
	RecordedAt        flexTime
	Weight            *float64
	HeartRate         *int
	BodyFatPercentage *float64
}

// LookupMembers finds members whose name contains namePart, case-insensitive,
// each with their most recent health metric
func (s *Store) LookupMembers(ctx context.Context, namePart string) ([]MemberLookup, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(namePart)) + "%"

	var rows []lookupRow
	err := s.db.WithContext(ctx).Raw(`
SELECT v.member_id, v.full_name, m.fitness_goal,
       v.recorded_at, v.weight, v.heart_rate, v.body_fat_percentage
FROM member_latest_metric v
JOIN members m ON m.id = v.member_id
WHERE LOWER(v.full_name) LIKE ?
ORDER BY v.member_id`, pattern).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("looking up members: %w", err)
	}

	result := make([]MemberLookup, 0, len(rows))
	for _, r := range rows {
		result = append(result, MemberLookup{
			MemberLatestMetric: models.MemberLatestMetric{
				MemberID:          r.MemberID,
				FullName:          r.FullName,
				RecordedAt:        r.RecordedAt.Ptr(),
				Weight:            r.Weight,
				HeartRate:         r.HeartRate,
				BodyFatPercentage: r.BodyFatPercentage,
			},
			FitnessGoal: r.FitnessGoal,
		})
	}
	return result, nil
}

// GetMember loads a member by ID
func (s *Store) GetMember(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := s.db.WithContext(ctx).First(&member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("member #%d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// optional maps empty input to NULL
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
