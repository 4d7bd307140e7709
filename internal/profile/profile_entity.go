package profile

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string    `gorm:"column:full_name;type:varchar(255);not null"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Phone        *string   `gorm:"column:phone;type:varchar(30)"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:worker"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
