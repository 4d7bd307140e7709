package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeOffice Mode = "office"
	ModeField  Mode = "field"
	ModeEvent  Mode = "event"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeOffice, ModeField, ModeEvent:
		return true
	}
	return false
}

type Status string

const (
	StatusPresent       Status = "present"
	StatusLate          Status = "late"
	StatusField         Status = "field"
	StatusEvent         Status = "event"
	StatusCompleted     Status = "completed"
	StatusUndertime     Status = "undertime"
	StatusOvertime      Status = "overtime"
	StatusEarlyApproved Status = "early_approved"
	StatusAbsent        Status = "absent"
)

// DayState is derived from a record, never stored.
type DayState string

const (
	StateNotStarted DayState = "NOT_STARTED"
	StateWorking    DayState = "WORKING"
	StateFieldMode  DayState = "FIELD_MODE"
	StateEventMode  DayState = "EVENT_MODE"
	StateEnded      DayState = "ENDED"
)

// Record is one worker's attendance for one calendar date. Date holds the
// organization-local calendar day at 00:00 UTC.
type Record struct {
	ID                  uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkerID            uuid.UUID  `gorm:"column:worker_id;type:uuid;not null"`
	Date                time.Time  `gorm:"column:date;type:date;not null"`
	CheckInTime         *time.Time `gorm:"column:check_in_time;type:timestamptz"`
	CheckOutTime        *time.Time `gorm:"column:check_out_time;type:timestamptz"`
	Status              Status     `gorm:"column:status;type:varchar(20);not null"`
	Mode                Mode       `gorm:"column:mode;type:varchar(10);not null"`
	EarlyExitRequested  bool       `gorm:"column:early_exit_requested;not null"`
	EarlyExitReason     string     `gorm:"column:early_exit_reason;type:text;not null"`
	EarlyExitApproved   bool       `gorm:"column:early_exit_approved;not null"`
	EarlyExitApprovedAt *time.Time `gorm:"column:early_exit_approved_at;type:timestamptz"`
	EarlyExitApprovedBy *uuid.UUID `gorm:"column:early_exit_approved_by;type:uuid"`
	CheckInDeviceClass  string     `gorm:"column:check_in_device_class;type:varchar(30);not null"`
	CheckInDeviceID     string     `gorm:"column:check_in_device_id;type:varchar(255);not null"`
	TotalMinutes        *int       `gorm:"column:total_minutes"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
	Worker              *WorkerRef `gorm:"foreignKey:WorkerID;references:ID"`
}

func (Record) TableName() string {
	return "attendance"
}

func (r *Record) State() DayState {
	switch {
	case r == nil || r.CheckInTime == nil:
		return StateNotStarted
	case r.CheckOutTime != nil:
		return StateEnded
	case r.Mode == ModeField:
		return StateFieldMode
	case r.Mode == ModeEvent:
		return StateEventMode
	default:
		return StateWorking
	}
}

// Active reports whether the day has started and not yet ended.
func (r *Record) Active() bool {
	return r != nil && r.CheckInTime != nil && r.CheckOutTime == nil
}

// TimeLog is one contiguous mode interval. EndTime nil means open.
type TimeLog struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkerID        uuid.UUID  `gorm:"column:worker_id;type:uuid;not null"`
	Mode            Mode       `gorm:"column:mode;type:varchar(10);not null"`
	StartTime       time.Time  `gorm:"column:start_time;type:timestamptz;not null"`
	EndTime         *time.Time `gorm:"column:end_time;type:timestamptz"`
	DurationMinutes *int       `gorm:"column:duration_minutes"`
	Date            time.Time  `gorm:"column:date;type:date;not null"`
	Notes           string     `gorm:"column:notes;type:text;not null"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
}

func (TimeLog) TableName() string {
	return "time_logs"
}

type WorkerRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
	Role     string    `gorm:"column:role"`
	IsActive bool      `gorm:"column:is_active"`
}

func (WorkerRef) TableName() string {
	return "profiles"
}

// DeviceContext identifies the device a worker starts the day from.
type DeviceContext struct {
	Class       string
	Fingerprint string
}
