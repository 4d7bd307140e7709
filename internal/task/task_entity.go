package task

import (
	"time"

	"github.com/google/uuid"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text;not null"`
	AssignedTo  uuid.UUID  `gorm:"type:uuid;not null"`
	AssignedBy  *uuid.UUID `gorm:"type:uuid"`
	Priority    string     `gorm:"type:varchar(10);not null"`
	Status      string     `gorm:"type:varchar(20);not null"`
	DueDate     *time.Time `gorm:"type:date"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Assignee *Member `gorm:"foreignKey:AssignedTo;references:ID"`
}

// Member is the slice of a profile the task flows read.
type Member struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string
	Role     string
	IsActive bool
}

func (Member) TableName() string {
	return "profiles"
}

type ListFilter struct {
	AssignedTo string
	Status     string
}
