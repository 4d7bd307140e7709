package attendance_test

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"aakb-wms/internal/attendance"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// fakeAttendanceRepository is an in-memory store that mimics the unique
// (worker_id, date) key and the single-open-segment index.
type fakeAttendanceRepository struct {
	mu       sync.Mutex
	workers  map[string]attendance.WorkerRef
	records  map[uuid.UUID]attendance.Record
	segments []attendance.TimeLog

	updateErr error
}

func newFakeAttendanceRepository() *fakeAttendanceRepository {
	return &fakeAttendanceRepository{
		workers: map[string]attendance.WorkerRef{},
		records: map[uuid.UUID]attendance.Record{},
	}
}

func (f *fakeAttendanceRepository) addWorker(name, role string, active bool) string {
	id := uuid.New()
	f.workers[id.String()] = attendance.WorkerRef{ID: id, FullName: name, Role: role, IsActive: active}
	return id.String()
}

func (f *fakeAttendanceRepository) openSegments(workerID string) []attendance.TimeLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.TimeLog
	for _, s := range f.segments {
		if s.WorkerID.String() == workerID && s.EndTime == nil {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeAttendanceRepository) allSegments(workerID string) []attendance.TimeLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.TimeLog
	for _, s := range f.segments {
		if s.WorkerID.String() == workerID {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeAttendanceRepository) recordOn(workerID string, date time.Time) (attendance.Record, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findLocked(workerID, date)
}

func (f *fakeAttendanceRepository) recordCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func (f *fakeAttendanceRepository) WithTx(*sql.Tx) attendance.Repository {
	return f
}

func (f *fakeAttendanceRepository) FindWorker(_ context.Context, workerID string) (*attendance.WorkerRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.workers[workerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &w, nil
}

func (f *fakeAttendanceRepository) findLocked(workerID string, date time.Time) (attendance.Record, bool) {
	for _, r := range f.records {
		if r.WorkerID.String() == workerID && r.Date.Equal(date) {
			return r, true
		}
	}
	return attendance.Record{}, false
}

func (f *fakeAttendanceRepository) UpsertCheckIn(_ context.Context, rec *attendance.Record) (*attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.findLocked(rec.WorkerID.String(), rec.Date)
	if ok {
		if existing.CheckInTime == nil {
			existing.CheckInTime = rec.CheckInTime
			existing.Status = rec.Status
			existing.Mode = rec.Mode
			existing.CheckInDeviceClass = rec.CheckInDeviceClass
			existing.CheckInDeviceID = rec.CheckInDeviceID
			existing.UpdatedAt = rec.UpdatedAt
			f.records[existing.ID] = existing
		}
		return &existing, nil
	}

	row := *rec
	row.ID = uuid.New()
	f.records[row.ID] = row
	return &row, nil
}

func (f *fakeAttendanceRepository) FindByWorkerAndDate(_ context.Context, workerID string, date time.Time, _ bool) (*attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.findLocked(workerID, date)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (f *fakeAttendanceRepository) FindByID(_ context.Context, id string, _ bool) (*attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	r, ok := f.records[uid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (f *fakeAttendanceRepository) FindOpenRecord(_ context.Context, workerID string) (*attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *attendance.Record
	for _, r := range f.records {
		if r.WorkerID.String() != workerID || r.CheckInTime == nil || r.CheckOutTime != nil {
			continue
		}
		if latest == nil || r.Date.After(latest.Date) {
			r := r
			latest = &r
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (f *fakeAttendanceRepository) Update(_ context.Context, rec *attendance.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.records[rec.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.records[rec.ID] = *rec
	return nil
}

func (f *fakeAttendanceRepository) ListByDate(_ context.Context, date time.Time) ([]attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Record
	for _, r := range f.records {
		if r.Date.Equal(date) {
			w := f.workers[r.WorkerID.String()]
			r.Worker = &w
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepository) ListByWorker(_ context.Context, workerID string, from, to time.Time) ([]attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Record
	for _, r := range f.records {
		if r.WorkerID.String() == workerID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeAttendanceRepository) FindOpenSegment(_ context.Context, workerID string) (*attendance.TimeLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.segments {
		if s.WorkerID.String() == workerID && s.EndTime == nil {
			seg := s
			return &seg, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) OpenSegment(_ context.Context, seg *attendance.TimeLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.segments {
		if s.WorkerID == seg.WorkerID && s.EndTime == nil {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_time_logs_open_segment"}
		}
	}
	f.segments = append(f.segments, *seg)
	return nil
}

func (f *fakeAttendanceRepository) CloseSegment(_ context.Context, seg *attendance.TimeLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.segments {
		if s.ID == seg.ID && s.EndTime == nil {
			f.segments[i].EndTime = seg.EndTime
			f.segments[i].DurationMinutes = seg.DurationMinutes
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) ListSegments(_ context.Context, workerID string, date time.Time) ([]attendance.TimeLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.TimeLog
	for _, s := range f.segments {
		if s.WorkerID.String() == workerID && s.Date.Equal(date) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}
