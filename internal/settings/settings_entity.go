package settings

import (
	"time"

	"github.com/google/uuid"
)

const (
	KeyKioskDeviceID = "kiosk_device_id"
	KeyOverseerPhone = "overseer_phone"
)

// Only these keys may be written through the API.
var knownKeys = map[string]struct{}{
	KeyKioskDeviceID: {},
	KeyOverseerPhone: {},
}

type Setting struct {
	Key       string     `gorm:"column:key;type:varchar(100);primaryKey"`
	Value     string     `gorm:"column:value;type:text;not null"`
	UpdatedBy *uuid.UUID `gorm:"column:updated_by;type:uuid"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
