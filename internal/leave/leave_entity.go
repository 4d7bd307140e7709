package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeLeave   = "LEAVE"
	TypeHoliday = "HOLIDAY"
	TypeSick    = "SICK"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

type Leave struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkerID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_worker_dates"`

	LeaveType string    `gorm:"type:varchar(20);not null;default:'LEAVE'"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_worker_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_worker_dates"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text;not null"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leaves_status"`
	DecidedBy       *uuid.UUID `gorm:"type:uuid"`
	DecidedAt       *time.Time
	RejectionReason *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Worker *Requester `gorm:"foreignKey:WorkerID;references:ID"`
}

// Requester is the slice of a profile the leave flow needs.
type Requester struct {
	ID       uuid.UUID `gorm:"column:id"`
	FullName string    `gorm:"column:full_name"`
	Role     string    `gorm:"column:role"`
	IsActive bool      `gorm:"column:is_active"`
}

func (Requester) TableName() string {
	return "profiles"
}

type ListFilter struct {
	WorkerID string
	Status   string
	From     *time.Time
	To       *time.Time
}
