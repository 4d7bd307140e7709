package auth

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the login view of a profile row.
type Credential struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	FullName     string    `gorm:"column:full_name"`
	Email        string    `gorm:"column:email"`
	Role         string    `gorm:"column:role"`
	IsActive     bool      `gorm:"column:is_active"`
	PasswordHash string    `gorm:"column:password_hash"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Credential) TableName() string {
	return "profiles"
}
