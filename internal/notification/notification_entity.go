package notification

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID      `gorm:"type:uuid;not null"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Body        string         `gorm:"type:text;not null"`
	Data        map[string]any `gorm:"type:jsonb;serializer:json"`
	ReadAt      *time.Time
	CreatedAt   time.Time
}

type PushToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null"`
	Token     string    `gorm:"type:varchar(512);not null"`
	Platform  string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
}

// recipient is the profile projection used to resolve roles.
type recipient struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role     string
	IsActive bool
}

func (recipient) TableName() string {
	return "profiles"
}
