package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	attendanceerrors "aakb-wms/internal/attendance/errors"
	"aakb-wms/internal/domain"
	"aakb-wms/internal/notification"
	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/shared/contextutil"
	"aakb-wms/internal/shared/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	maxHistoryDays = 93

	advisoryUndertime = "Day ended before the full-day threshold without an approved early exit"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	StartDay(ctx context.Context, workerID string, device DeviceContext) (StartDayResponse, error)
	SwitchMode(ctx context.Context, workerID string, mode Mode) (RecordResponse, error)
	RequestEarlyExit(ctx context.Context, workerID, reason string) (EarlyExitResponse, error)
	ApproveEarlyExit(ctx context.Context, attendanceID, approverID string) (RecordResponse, error)
	EndDay(ctx context.Context, workerID string) (EndDayResponse, error)

	Today(ctx context.Context, workerID string) (TodayResponse, error)
	History(ctx context.Context, workerID, from, to string) ([]RecordResponse, error)
	ListByDate(ctx context.Context, date string) ([]RecordResponse, error)
	WatchApproval(ctx context.Context, workerID string) (<-chan ApprovalEvent, func(), error)
}

// Dependencies are the collaborators of the attendance service. Kiosk and
// Policy are required; the rest may be nil.
type Dependencies struct {
	Policy    Policy
	Kiosk     KioskRegistry
	Contacts  ContactBook
	Notifier  notification.Sink
	Approvals ApprovalChannel
	Clock     func() time.Time
}

type service struct {
	db        *sql.DB
	repo      Repository
	policy    Policy
	kiosk     KioskRegistry
	contacts  ContactBook
	notifier  notification.Sink
	approvals ApprovalChannel
	clock     func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		db:        db,
		repo:      repo,
		policy:    deps.Policy,
		kiosk:     deps.Kiosk,
		contacts:  deps.Contacts,
		notifier:  deps.Notifier,
		approvals: deps.Approvals,
		clock:     clock,
		logger:    l,
	}
}

// now is truncated to the store's microsecond precision so values read back
// compare equal.
func (s *service) now() time.Time {
	return s.clock().UTC().Truncate(time.Microsecond)
}

func (s *service) StartDay(ctx context.Context, workerID string, device DeviceContext) (StartDayResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("start day requested",
		zap.String("request_id", rid),
		zap.String("worker_id", workerID),
		zap.String("device_class", device.Class),
	)

	if _, err := uuid.Parse(workerID); err != nil {
		return StartDayResponse{}, attendanceerrors.ErrInvalidWorkerID
	}

	kioskID, registered, err := s.kiosk.KioskDeviceID(ctx)
	if err != nil {
		s.logger.Error("start day kiosk lookup failed", zap.String("request_id", rid), zap.Error(err))
		return StartDayResponse{}, apperror.StoreUnavailable(err)
	}
	if registered && device.Fingerprint != kioskID {
		s.logger.Warn("start day rejected device",
			zap.String("request_id", rid),
			zap.String("worker_id", workerID),
			zap.String("device_class", device.Class),
		)
		return StartDayResponse{}, attendanceerrors.ErrDeviceNotAuthorized
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StartDayResponse{}, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	worker, err := s.activeWorker(ctx, qtx, workerID)
	if err != nil {
		return StartDayResponse{}, err
	}

	now := s.now()
	date := s.policy.LocalDate(now)

	if err := s.closeStaleDay(ctx, qtx, workerID, date, now); err != nil {
		return StartDayResponse{}, err
	}

	existing, err := qtx.FindByWorkerAndDate(ctx, workerID, date, true)
	switch {
	case err == nil && existing.CheckInTime != nil:
		s.logger.Info("start day already started",
			zap.String("request_id", rid),
			zap.String("worker_id", workerID),
			zap.String("state", string(existing.State())),
		)
		return StartDayResponse{Record: mapToResponse(*existing)}, nil
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Error("start day lookup failed", zap.String("request_id", rid), zap.Error(err))
		return StartDayResponse{}, apperror.StoreUnavailable(err)
	}

	if err := s.closeOpenSegment(ctx, qtx, workerID, now); err != nil {
		return StartDayResponse{}, err
	}

	rec, err := qtx.UpsertCheckIn(ctx, &Record{
		WorkerID:           worker.ID,
		Date:               date,
		CheckInTime:        &now,
		Status:             s.policy.CheckInStatus(now),
		Mode:               ModeOffice,
		CheckInDeviceClass: device.Class,
		CheckInDeviceID:    device.Fingerprint,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		s.logger.Error("start day upsert failed", zap.String("request_id", rid), zap.Error(err))
		return StartDayResponse{}, apperror.StoreUnavailable(err)
	}

	// A concurrent start won the upsert; report its record unchanged.
	if rec.CheckInTime == nil || !rec.CheckInTime.Equal(now) {
		return StartDayResponse{Record: mapToResponse(*rec)}, nil
	}

	if err := s.openSegment(ctx, qtx, worker.ID, ModeOffice, now, date); err != nil {
		return StartDayResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return StartDayResponse{}, apperror.StoreUnavailable(err)
	}

	s.logger.Info("start day success",
		zap.String("request_id", rid),
		zap.String("worker_id", workerID),
		zap.String("attendance_id", rec.ID.String()),
		zap.String("status", string(rec.Status)),
	)

	s.notify(ctx, notification.Message{
		RecipientRoles: domain.OverseerRoles,
		Title:          "Day started",
		Body:           fmt.Sprintf("%s started the day at %s (%s)", worker.FullName, s.localClock(now), rec.Status),
		Data: map[string]any{
			"type":          "attendance.day_started",
			"worker_id":     workerID,
			"attendance_id": rec.ID.String(),
			"status":        string(rec.Status),
		},
	})

	return StartDayResponse{Record: mapToResponse(*rec), Started: true}, nil
}

func (s *service) SwitchMode(ctx context.Context, workerID string, mode Mode) (RecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("switch mode requested",
		zap.String("request_id", rid),
		zap.String("worker_id", workerID),
		zap.String("mode", string(mode)),
	)

	if !mode.Valid() {
		s.logger.Warn("switch mode invalid mode", zap.String("request_id", rid), zap.String("mode", string(mode)))
		return RecordResponse{}, attendanceerrors.ErrInvalidMode
	}
	if _, err := uuid.Parse(workerID); err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidWorkerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	worker, err := s.activeWorker(ctx, qtx, workerID)
	if err != nil {
		return RecordResponse{}, err
	}

	now := s.now()
	rec, err := s.activeRecord(ctx, qtx, workerID)
	if err != nil {
		return RecordResponse{}, err
	}

	if rec.Mode == mode {
		return mapToResponse(*rec), nil
	}

	if err := s.closeOpenSegment(ctx, qtx, workerID, now); err != nil {
		return RecordResponse{}, err
	}
	if err := s.openSegment(ctx, qtx, worker.ID, mode, now, rec.Date); err != nil {
		return RecordResponse{}, err
	}

	previous := rec.Mode
	rec.Mode = mode
	rec.Status = s.policy.ModeStatus(mode, *rec.CheckInTime)
	rec.UpdatedAt = now
	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("switch mode update failed", zap.String("request_id", rid), zap.Error(err))
		return RecordResponse{}, apperror.StoreUnavailable(err)
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, apperror.StoreUnavailable(err)
	}

	s.logger.Info("switch mode success",
		zap.String("request_id", rid),
		zap.String("worker_id", workerID),
		zap.String("from", string(previous)),
		zap.String("to", string(mode)),
	)

	if mode == ModeField || mode == ModeEvent {
		s.notify(ctx, notification.Message{
			RecipientRoles: domain.OverseerRoles,
			Title:          "Mode changed",
			Body:           fmt.Sprintf("%s switched to %s mode at %s", worker.FullName, mode, s.localClock(now)),
			Data: map[string]any{
				"type":          "attendance.mode_switched",
				"worker_id":     workerID,
				"attendance_id": rec.ID.String(),
				"mode":          string(mode),
			},
		})
	}

	return mapToResponse(*rec), nil
}

func (s *service) RequestEarlyExit(ctx context.Context, workerID, reason string) (EarlyExitResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("request early exit requested", zap.String("request_id", rid), zap.String("worker_id", workerID))

	reason = strings.TrimSpace(reason)
	if reason == "" {
		s.logger.Warn("request early exit empty reason", zap.String("request_id", rid))
		return EarlyExitResponse{}, attendanceerrors.ErrReasonRequired
	}
	if _, err := uuid.Parse(workerID); err != nil {
		return EarlyExitResponse{}, attendanceerrors.ErrInvalidWorkerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EarlyExitResponse{}, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	worker, err := s.activeWorker(ctx, qtx, workerID)
	if err != nil {
		return EarlyExitResponse{}, err
	}

	now := s.now()
	rec, err := s.activeRecord(ctx, qtx, workerID)
	if err != nil {
		return EarlyExitResponse{}, err
	}

	rec.EarlyExitRequested = true
	rec.EarlyExitReason = reason
	rec.UpdatedAt = now
	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("request early exit update failed", zap.String("request_id", rid), zap.Error(err))
		return EarlyExitResponse{}, apperror.StoreUnavailable(err)
	}

	if err := tx.Commit(); err != nil {
		return EarlyExitResponse{}, apperror.StoreUnavailable(err)
	}

	s.logger.Info("request early exit success",
		zap.String("request_id", rid),
		zap.String("worker_id", workerID),
		zap.String("attendance_id", rec.ID.String()),
	)

	s.notify(ctx, notification.Message{
		RecipientRoles: domain.OverseerRoles,
		Title:          "Early exit request",
		Body:           fmt.Sprintf("%s requests to leave early: %s", worker.FullName, reason),
		Data: map[string]any{
			"type":          "attendance.early_exit_requested",
			"worker_id":     workerID,
			"attendance_id": rec.ID.String(),
			"reason":        reason,
		},
	})

	return EarlyExitResponse{
		Record:      mapToResponse(*rec),
		WhatsAppURL: s.whatsAppLink(ctx, worker.FullName, rec.Date, reason),
	}, nil
}

func (s *service) ApproveEarlyExit(ctx context.Context, attendanceID, approverID string) (RecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("approve early exit requested",
		zap.String("request_id", rid),
		zap.String("attendance_id", attendanceID),
		zap.String("approver_id", approverID),
	)

	if _, err := uuid.Parse(attendanceID); err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidWorkerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	approver, err := s.activeWorker(ctx, qtx, approverID)
	if err != nil {
		return RecordResponse{}, err
	}
	if !domain.IsOverseer(approver.Role) {
		s.logger.Warn("approve early exit by non overseer",
			zap.String("request_id", rid),
			zap.String("approver_id", approverID),
			zap.String("role", approver.Role),
		)
		return RecordResponse{}, attendanceerrors.ErrApproverNotAllowed
	}

	rec, err := qtx.FindByID(ctx, attendanceID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		s.logger.Error("approve early exit lookup failed", zap.String("request_id", rid), zap.Error(err))
		return RecordResponse{}, apperror.StoreUnavailable(err)
	}

	if !rec.EarlyExitRequested {
		s.logger.Warn("approve early exit not requested", zap.String("attendance_id", attendanceID))
		return RecordResponse{}, attendanceerrors.ErrEarlyExitNotRequested
	}
	if rec.EarlyExitApproved {
		return mapToResponse(*rec), nil
	}

	now := s.now()
	rec.EarlyExitApproved = true
	rec.EarlyExitApprovedAt = &now
	rec.EarlyExitApprovedBy = &approverUUID
	rec.UpdatedAt = now
	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("approve early exit update failed", zap.String("request_id", rid), zap.Error(err))
		return RecordResponse{}, apperror.StoreUnavailable(err)
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, apperror.StoreUnavailable(err)
	}

	workerID := rec.WorkerID.String()
	s.logger.Info("approve early exit success",
		zap.String("request_id", rid),
		zap.String("attendance_id", attendanceID),
		zap.String("worker_id", workerID),
		zap.String("approver_id", approverID),
	)

	if s.approvals != nil {
		ev := ApprovalEvent{
			AttendanceID: attendanceID,
			WorkerID:     workerID,
			Approved:     true,
			ApprovedBy:   approverID,
			ApprovedAt:   now,
		}
		if err := s.approvals.Publish(ctx, ev); err != nil {
			s.logger.Warn("publish approval failed", zap.String("worker_id", workerID), zap.Error(err))
		}
	}

	s.notify(ctx, notification.Message{
		RecipientIDs: []string{workerID},
		Title:        "Early exit approved",
		Body:         fmt.Sprintf("%s approved your early exit", approver.FullName),
		Data: map[string]any{
			"type":          "attendance.early_exit_approved",
			"attendance_id": attendanceID,
			"approved_by":   approverID,
		},
	})

	return mapToResponse(*rec), nil
}

func (s *service) EndDay(ctx context.Context, workerID string) (EndDayResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("end day requested", zap.String("request_id", rid), zap.String("worker_id", workerID))

	if _, err := uuid.Parse(workerID); err != nil {
		return EndDayResponse{}, attendanceerrors.ErrInvalidWorkerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EndDayResponse{}, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	worker, err := s.activeWorker(ctx, qtx, workerID)
	if err != nil {
		return EndDayResponse{}, err
	}

	now := s.now()
	rec, err := s.activeRecord(ctx, qtx, workerID)
	if err != nil {
		return EndDayResponse{}, err
	}

	if err := s.closeOpenSegment(ctx, qtx, workerID, now); err != nil {
		return EndDayResponse{}, err
	}

	segments, err := qtx.ListSegments(ctx, workerID, rec.Date)
	if err != nil {
		s.logger.Error("end day list segments failed", zap.String("request_id", rid), zap.Error(err))
		return EndDayResponse{}, apperror.StoreUnavailable(err)
	}

	total := s.finalize(rec, now, now)
	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("end day update failed", zap.String("request_id", rid), zap.Error(err))
		return EndDayResponse{}, apperror.StoreUnavailable(err)
	}

	if err := tx.Commit(); err != nil {
		return EndDayResponse{}, apperror.StoreUnavailable(err)
	}

	breakdown := ModeBreakdown(segments)
	resp := EndDayResponse{
		Record:       mapToResponse(*rec),
		TotalMinutes: total,
		ModeMinutes:  breakdown,
	}
	if rec.Status == StatusUndertime {
		resp.Advisory = advisoryUndertime
	}

	s.logger.Info("end day success",
		zap.String("request_id", rid),
		zap.String("worker_id", workerID),
		zap.String("status", string(rec.Status)),
		zap.Int("total_minutes", total),
	)

	s.notify(ctx, notification.Message{
		RecipientRoles: domain.OverseerRoles,
		Title:          "Day ended",
		Body: fmt.Sprintf("%s ended the day: %s (office %dm, field %dm, event %dm)",
			worker.FullName, formatMinutes(total),
			breakdown[ModeOffice], breakdown[ModeField], breakdown[ModeEvent]),
		Data: map[string]any{
			"type":           "attendance.day_ended",
			"worker_id":      workerID,
			"attendance_id":  rec.ID.String(),
			"status":         string(rec.Status),
			"total_minutes":  total,
			"office_minutes": breakdown[ModeOffice],
			"field_minutes":  breakdown[ModeField],
			"event_minutes":  breakdown[ModeEvent],
		},
	})

	return resp, nil
}

func (s *service) Today(ctx context.Context, workerID string) (TodayResponse, error) {
	if _, err := uuid.Parse(workerID); err != nil {
		return TodayResponse{}, attendanceerrors.ErrInvalidWorkerID
	}

	date := s.policy.LocalDate(s.now())
	resp := TodayResponse{
		Date:     date.Format(dateLayout),
		State:    string(StateNotStarted),
		Segments: []SegmentResponse{},
	}

	// A session still running past midnight is shown under its own date.
	rec, err := s.repo.FindOpenRecord(ctx, workerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec, err = s.repo.FindByWorkerAndDate(ctx, workerID, date, false)
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return resp, nil
	case err != nil:
		s.logger.Error("today lookup failed", zap.String("worker_id", workerID), zap.Error(err))
		return TodayResponse{}, apperror.StoreUnavailable(err)
	}

	r := mapToResponse(*rec)
	resp.Record = &r
	resp.State = string(rec.State())
	resp.Date = rec.Date.Format(dateLayout)

	segments, err := s.repo.ListSegments(ctx, workerID, rec.Date)
	if err != nil {
		return TodayResponse{}, apperror.StoreUnavailable(err)
	}
	for _, seg := range segments {
		sr := mapSegmentToResponse(seg)
		resp.Segments = append(resp.Segments, sr)
		if seg.EndTime == nil {
			open := sr
			resp.OpenSegment = &open
		}
	}
	return resp, nil
}

func (s *service) History(ctx context.Context, workerID, from, to string) ([]RecordResponse, error) {
	if _, err := uuid.Parse(workerID); err != nil {
		return nil, attendanceerrors.ErrInvalidWorkerID
	}

	today := s.policy.LocalDate(s.now())
	toDate, fromDate := today, today.AddDate(0, 0, -30)
	var err error
	if to != "" {
		if toDate, err = s.policy.ParseDate(to); err != nil {
			return nil, attendanceerrors.ErrInvalidDate
		}
	}
	if from != "" {
		if fromDate, err = s.policy.ParseDate(from); err != nil {
			return nil, attendanceerrors.ErrInvalidDate
		}
	}
	if fromDate.After(toDate) || toDate.Sub(fromDate) > maxHistoryDays*24*time.Hour {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.ListByWorker(ctx, workerID, fromDate, toDate)
	if err != nil {
		s.logger.Error("history lookup failed", zap.String("worker_id", workerID), zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListByDate(ctx context.Context, date string) ([]RecordResponse, error) {
	day := s.policy.LocalDate(s.now())
	if date != "" {
		var err error
		if day, err = s.policy.ParseDate(date); err != nil {
			return nil, attendanceerrors.ErrInvalidDate
		}
	}

	rows, err := s.repo.ListByDate(ctx, day)
	if err != nil {
		s.logger.Error("list by date failed", zap.String("date", day.Format(dateLayout)), zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) WatchApproval(ctx context.Context, workerID string) (<-chan ApprovalEvent, func(), error) {
	if _, err := uuid.Parse(workerID); err != nil {
		return nil, nil, attendanceerrors.ErrInvalidWorkerID
	}
	if s.approvals == nil {
		return nil, nil, apperror.ErrServiceUnavailable
	}
	ch, cancel, err := s.approvals.Subscribe(ctx, workerID)
	if err != nil {
		s.logger.Error("watch approval subscribe failed", zap.String("worker_id", workerID), zap.Error(err))
		return nil, nil, apperror.StoreUnavailable(err)
	}
	return ch, cancel, nil
}

func (s *service) activeWorker(ctx context.Context, repo Repository, workerID string) (*WorkerRef, error) {
	w, err := repo.FindWorker(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrWorkerNotFound
		}
		s.logger.Error("worker lookup failed", zap.String("worker_id", workerID), zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	if !w.IsActive {
		s.logger.Warn("inactive profile rejected", zap.String("worker_id", workerID))
		return nil, attendanceerrors.ErrProfileInactive
	}
	return w, nil
}

// activeRecord locks the worker's open session, which may belong to an
// earlier calendar day when it runs past midnight.
func (s *service) activeRecord(ctx context.Context, repo Repository, workerID string) (*Record, error) {
	rec, err := repo.FindOpenRecord(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrNoActiveSession
		}
		s.logger.Error("attendance lookup failed", zap.String("worker_id", workerID), zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	if !rec.Active() {
		s.logger.Warn("no active session", zap.String("worker_id", workerID), zap.String("state", string(rec.State())))
		return nil, attendanceerrors.ErrNoActiveSession
	}
	return rec, nil
}

// closeStaleDay ends a session left open on a day before today. It is cut
// at that day's local midnight, or at now if that comes first.
func (s *service) closeStaleDay(ctx context.Context, repo Repository, workerID string, today, now time.Time) error {
	rec, err := repo.FindOpenRecord(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("open session lookup failed", zap.String("worker_id", workerID), zap.Error(err))
		return apperror.StoreUnavailable(err)
	}
	if !rec.Date.Before(today) {
		return nil
	}

	cutoff := s.policy.DayEnd(rec.Date)
	if now.Before(cutoff) {
		cutoff = now
	}
	if err := s.closeOpenSegment(ctx, repo, workerID, cutoff); err != nil {
		return err
	}
	total := s.finalize(rec, cutoff, now)
	if err := repo.Update(ctx, rec); err != nil {
		s.logger.Error("stale session update failed", zap.String("worker_id", workerID), zap.Error(err))
		return apperror.StoreUnavailable(err)
	}

	s.logger.Warn("stale session closed",
		zap.String("worker_id", workerID),
		zap.String("attendance_id", rec.ID.String()),
		zap.String("date", rec.Date.Format(dateLayout)),
		zap.Int("total_minutes", total),
	)
	return nil
}

// finalize stamps the check-out and final status on rec and returns the
// total minutes worked.
func (s *service) finalize(rec *Record, checkOut, at time.Time) int {
	if checkOut.Before(*rec.CheckInTime) {
		checkOut = *rec.CheckInTime
	}
	total := DurationMinutes(*rec.CheckInTime, checkOut)

	rec.CheckOutTime = &checkOut
	rec.TotalMinutes = &total
	rec.Status = s.policy.EndStatus(checkOut.Sub(*rec.CheckInTime), rec.EarlyExitApproved, rec.Date)
	rec.UpdatedAt = at
	return total
}

func (s *service) closeOpenSegment(ctx context.Context, repo Repository, workerID string, at time.Time) error {
	seg, err := repo.FindOpenSegment(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperror.StoreUnavailable(err)
	}

	end := at
	if end.Before(seg.StartTime) {
		end = seg.StartTime
	}
	minutes := DurationMinutes(seg.StartTime, end)
	seg.EndTime = &end
	seg.DurationMinutes = &minutes

	if err := repo.CloseSegment(ctx, seg); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return attendanceerrors.ErrConcurrentTransition
		}
		return apperror.StoreUnavailable(err)
	}
	return nil
}

func (s *service) openSegment(ctx context.Context, repo Repository, workerID uuid.UUID, mode Mode, at, date time.Time) error {
	err := repo.OpenSegment(ctx, &TimeLog{
		ID:        uuid.New(),
		WorkerID:  workerID,
		Mode:      mode,
		StartTime: at,
		Date:      date,
		CreatedAt: at,
	})
	if err != nil {
		if database.IsUniqueViolation(err, "uq_time_logs_open_segment") {
			return attendanceerrors.ErrConcurrentTransition
		}
		return apperror.StoreUnavailable(err)
	}
	return nil
}

func (s *service) notify(ctx context.Context, msg notification.Message) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Warn("notification dropped",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("title", msg.Title),
			zap.Error(err),
		)
	}
}

func (s *service) whatsAppLink(ctx context.Context, workerName string, date time.Time, reason string) string {
	phone := s.policy.OverseerPhone
	if s.contacts != nil {
		p, ok, err := s.contacts.OverseerPhone(ctx)
		if err != nil {
			s.logger.Warn("overseer phone lookup failed", zap.Error(err))
		} else if ok {
			phone = p
		}
	}
	return WhatsAppURL(phone, fmt.Sprintf("Early exit request from %s on %s: %s", workerName, date.Format(dateLayout), reason))
}

func (s *service) localClock(t time.Time) string {
	return t.In(s.policy.Location).Format("15:04")
}

// WhatsAppURL builds a wa.me deep link. Non-digits are stripped from phone;
// an empty phone yields a share link without a recipient.
func WhatsAppURL(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}

// ModeBreakdown sums closed segment minutes per mode.
func ModeBreakdown(segments []TimeLog) map[Mode]int {
	out := map[Mode]int{ModeOffice: 0, ModeField: 0, ModeEvent: 0}
	for _, seg := range segments {
		if seg.DurationMinutes != nil {
			out[seg.Mode] += *seg.DurationMinutes
		}
	}
	return out
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%dh%02dm", m/60, m%60)
}

func mapToResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:                 r.ID.String(),
		WorkerID:           r.WorkerID.String(),
		Date:               r.Date.Format(dateLayout),
		Status:             string(r.Status),
		Mode:               string(r.Mode),
		State:              string(r.State()),
		EarlyExitRequested: r.EarlyExitRequested,
		EarlyExitReason:    r.EarlyExitReason,
		EarlyExitApproved:  r.EarlyExitApproved,
		CheckInDeviceClass: r.CheckInDeviceClass,
		TotalMinutes:       r.TotalMinutes,
	}
	if r.Worker != nil {
		resp.WorkerName = r.Worker.FullName
	}
	resp.CheckInTime = formatTime(r.CheckInTime)
	resp.CheckOutTime = formatTime(r.CheckOutTime)
	resp.EarlyExitApprovedAt = formatTime(r.EarlyExitApprovedAt)
	if r.EarlyExitApprovedBy != nil {
		v := r.EarlyExitApprovedBy.String()
		resp.EarlyExitApprovedBy = &v
	}
	return resp
}

func mapToListResponse(rows []Record) []RecordResponse {
	out := make([]RecordResponse, len(rows))
	for i, r := range rows {
		out[i] = mapToResponse(r)
	}
	return out
}

func mapSegmentToResponse(t TimeLog) SegmentResponse {
	return SegmentResponse{
		ID:              t.ID.String(),
		Mode:            string(t.Mode),
		StartTime:       t.StartTime.UTC().Format(time.RFC3339),
		EndTime:         formatTime(t.EndTime),
		DurationMinutes: t.DurationMinutes,
		Date:            t.Date.Format(dateLayout),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}
