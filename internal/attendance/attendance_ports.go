package attendance

import (
	"context"
	"time"
)

// KioskRegistry reports the registered kiosk fingerprint, if any.
//
//go:generate mockgen -source=attendance_ports.go -destination=mock/attendance_ports_mock.go -package=mock
type KioskRegistry interface {
	KioskDeviceID(ctx context.Context) (string, bool, error)
}

// ContactBook resolves the overseer phone used for WhatsApp deep links.
type ContactBook interface {
	OverseerPhone(ctx context.Context) (string, bool, error)
}

type ApprovalEvent struct {
	AttendanceID string    `json:"attendance_id"`
	WorkerID     string    `json:"worker_id"`
	Approved     bool      `json:"approved"`
	ApprovedBy   string    `json:"approved_by"`
	ApprovedAt   time.Time `json:"approved_at"`
}

// ApprovalChannel delivers early-exit decisions to the waiting worker.
type ApprovalChannel interface {
	Publish(ctx context.Context, ev ApprovalEvent) error
	Subscribe(ctx context.Context, workerID string) (<-chan ApprovalEvent, func(), error)
}
