package report

import "github.com/google/uuid"

// Member is an active profile that is expected on the roster.
type Member struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string
	Role     string
}

func (Member) TableName() string {
	return "profiles"
}
