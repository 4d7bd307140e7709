package report

import (
	"context"
	"time"

	"aakb-wms/internal/attendance"
	"aakb-wms/internal/holiday"
	"aakb-wms/internal/leave"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	ActiveMembers(ctx context.Context) ([]Member, error)
	AttendanceBetween(ctx context.Context, from, to time.Time) ([]attendance.Record, error)
	ApprovedLeavesBetween(ctx context.Context, from, to time.Time) ([]leave.Leave, error)
	HolidaysBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ActiveMembers(ctx context.Context) ([]Member, error) {
	var members []Member
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("full_name ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) AttendanceBetween(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	var records []attendance.Record
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) ApprovedLeavesBetween(ctx context.Context, from, to time.Time) ([]leave.Leave, error) {
	var leaves []leave.Leave
	err := r.db.WithContext(ctx).
		Where("status = ?", leave.StatusApproved).
		Where("start_date <= ? AND end_date >= ?", to, from).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) HolidaysBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var holidays []holiday.Holiday
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}
