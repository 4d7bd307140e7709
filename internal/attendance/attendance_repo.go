package attendance

import (
	"context"
	"database/sql"
	"time"

	"aakb-wms/internal/shared/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindWorker(ctx context.Context, workerID string) (*WorkerRef, error)

	UpsertCheckIn(ctx context.Context, rec *Record) (*Record, error)
	FindByWorkerAndDate(ctx context.Context, workerID string, date time.Time, forUpdate bool) (*Record, error)
	FindByID(ctx context.Context, id string, forUpdate bool) (*Record, error)
	FindOpenRecord(ctx context.Context, workerID string) (*Record, error)
	Update(ctx context.Context, rec *Record) error
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
	ListByWorker(ctx context.Context, workerID string, from, to time.Time) ([]Record, error)

	FindOpenSegment(ctx context.Context, workerID string) (*TimeLog, error)
	OpenSegment(ctx context.Context, seg *TimeLog) error
	CloseSegment(ctx context.Context, seg *TimeLog) error
	ListSegments(ctx context.Context, workerID string, date time.Time) ([]TimeLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: database.Bind(r.db, tx)}
}

func (r *repository) FindWorker(ctx context.Context, workerID string) (*WorkerRef, error) {
	var w WorkerRef
	err := r.db.WithContext(ctx).First(&w, "id = ?", workerID).Error
	return &w, err
}

// upsertCheckInSQL writes check-in fields only when the row has none, so a
// started or ended day comes back unchanged.
const upsertCheckInSQL = `
INSERT INTO attendance (
	worker_id, date, check_in_time, status, mode,
	check_in_device_class, check_in_device_id, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (worker_id, date) DO UPDATE SET
	check_in_time         = COALESCE(attendance.check_in_time, EXCLUDED.check_in_time),
	status                = CASE WHEN attendance.check_in_time IS NULL THEN EXCLUDED.status ELSE attendance.status END,
	mode                  = CASE WHEN attendance.check_in_time IS NULL THEN EXCLUDED.mode ELSE attendance.mode END,
	check_in_device_class = CASE WHEN attendance.check_in_time IS NULL THEN EXCLUDED.check_in_device_class ELSE attendance.check_in_device_class END,
	check_in_device_id    = CASE WHEN attendance.check_in_time IS NULL THEN EXCLUDED.check_in_device_id ELSE attendance.check_in_device_id END,
	updated_at            = CASE WHEN attendance.check_in_time IS NULL THEN EXCLUDED.updated_at ELSE attendance.updated_at END
RETURNING *`

func (r *repository) UpsertCheckIn(ctx context.Context, rec *Record) (*Record, error) {
	var out Record
	err := r.db.WithContext(ctx).Raw(upsertCheckInSQL,
		rec.WorkerID, rec.Date.Format(dateLayout), rec.CheckInTime, rec.Status, rec.Mode,
		rec.CheckInDeviceClass, rec.CheckInDeviceID, rec.CreatedAt, rec.UpdatedAt,
	).Scan(&out).Error
	return &out, err
}

func (r *repository) FindByWorkerAndDate(ctx context.Context, workerID string, date time.Time, forUpdate bool) (*Record, error) {
	var rec Record
	q := r.db.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.
		Where("worker_id = ?", workerID).
		Where("date = ?", date.Format(dateLayout)).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindByID(ctx context.Context, id string, forUpdate bool) (*Record, error) {
	var rec Record
	q := r.db.WithContext(ctx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.First(&rec, "id = ?", id).Error
	return &rec, err
}

// FindOpenRecord locks the worker's latest started day that has no
// check-out, whatever its date.
func (r *repository) FindOpenRecord(ctx context.Context, workerID string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("worker_id = ? AND check_in_time IS NOT NULL AND check_out_time IS NULL", workerID).
		Order("date DESC").
		First(&rec).Error
	return &rec, err
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Omit("Worker").Save(rec).Error
}

func (r *repository) ListByDate(ctx context.Context, date time.Time) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Where("date = ?", date.Format(dateLayout)).
		Order("check_in_time ASC NULLS LAST").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByWorker(ctx context.Context, workerID string, from, to time.Time) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Where("date BETWEEN ? AND ?", from.Format(dateLayout), to.Format(dateLayout)).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindOpenSegment(ctx context.Context, workerID string) (*TimeLog, error) {
	var seg TimeLog
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("worker_id = ? AND end_time IS NULL", workerID).
		First(&seg).Error
	return &seg, err
}

func (r *repository) OpenSegment(ctx context.Context, seg *TimeLog) error {
	return r.db.WithContext(ctx).Create(seg).Error
}

func (r *repository) CloseSegment(ctx context.Context, seg *TimeLog) error {
	res := r.db.WithContext(ctx).
		Model(&TimeLog{}).
		Where("id = ? AND end_time IS NULL", seg.ID).
		Updates(map[string]any{
			"end_time":         seg.EndTime,
			"duration_minutes": seg.DurationMinutes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListSegments(ctx context.Context, workerID string, date time.Time) ([]TimeLog, error) {
	var rows []TimeLog
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND date = ?", workerID, date.Format(dateLayout)).
		Order("start_time ASC").
		Find(&rows).Error
	return rows, err
}
