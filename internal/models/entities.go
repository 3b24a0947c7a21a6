package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Member is a registered club member
type Member struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	FullName    string     `gorm:"size:100;not null" json:"full_name"`
	Email       string     `gorm:"size:100;not null;uniqueIndex" json:"email"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`
	Gender      *string    `gorm:"size:20" json:"gender"`
	Phone       *string    `gorm:"size:30" json:"phone"`

	FitnessGoal  *string  `gorm:"size:255" json:"fitness_goal"`
	TargetWeight *float64 `json:"target_weight"`

	// Relationships
	HealthMetrics []HealthMetric `gorm:"foreignKey:MemberID" json:"-"`
	PTSessions    []PTSession    `gorm:"foreignKey:MemberID" json:"-"`
	Invoices      []Invoice      `gorm:"foreignKey:MemberID" json:"-"`
}

// Trainer runs PT sessions and group classes
type Trainer struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	FullName  string  `gorm:"size:100;not null" json:"full_name"`
	Email     string  `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Specialty *string `gorm:"size:100" json:"specialty"`

	PTSessions    []PTSession    `gorm:"foreignKey:TrainerID" json:"-"`
	ClassSessions []ClassSession `gorm:"foreignKey:TrainerID" json:"-"`
}

// Room is a bookable space inside the club
type Room struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Capacity int    `gorm:"not null" json:"capacity"`

	PTSessions    []PTSession    `gorm:"foreignKey:RoomID" json:"-"`
	ClassSessions []ClassSession `gorm:"foreignKey:RoomID" json:"-"`
}

// ClassSession is a scheduled group class. Class sessions carry no status,
// every stored row counts as active.
type ClassSession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Capacity  int       `gorm:"not null" json:"capacity"`

	RoomID    uint `gorm:"not null" json:"room_id"`
	TrainerID uint `gorm:"not null" json:"trainer_id"`

	Room    Room    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Trainer Trainer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

// PTSession is a one-to-one personal training booking
type PTSession struct {
	ID        uint          `gorm:"primarykey" json:"id"`
	StartTime time.Time     `gorm:"not null" json:"start_time"`
	EndTime   time.Time     `gorm:"not null" json:"end_time"`
	Status    SessionStatus `gorm:"size:20;not null;default:scheduled" json:"status"`

	MemberID  uint `gorm:"not null" json:"member_id"`
	TrainerID uint `gorm:"not null" json:"trainer_id"`
	RoomID    uint `gorm:"not null" json:"room_id"`

	Member  Member  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Trainer Trainer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Room    Room    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

// HealthMetric is one measurement taken for a member
type HealthMetric struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	MemberID          uint      `gorm:"not null" json:"member_id"`
	RecordedAt        time.Time `gorm:"not null" json:"recorded_at"`
	Weight            *float64  `json:"weight"`
	HeartRate         *int      `json:"heart_rate"`
	BodyFatPercentage *float64  `json:"body_fat_percentage"`

	Member Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// Invoice is a bill issued to a member
type Invoice struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	MemberID    uint            `gorm:"not null" json:"member_id"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status      InvoiceStatus   `gorm:"size:20;not null;default:unpaid" json:"status"`
	Description *string         `gorm:"size:255" json:"description"`

	Member Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// MemberLatestMetric is a row of the member_latest_metric view
type MemberLatestMetric struct {
	MemberID          uint       `json:"member_id"`
	FullName          string     `json:"full_name"`
	RecordedAt        *time.Time `json:"recorded_at"`
	Weight            *float64   `json:"weight"`
	HeartRate         *int       `json:"heart_rate"`
	BodyFatPercentage *float64   `json:"body_fat_percentage"`
}

// TableName points gorm at the view instead of a pluralized table
func (MemberLatestMetric) TableName() string {
	return "member_latest_metric"
}
