package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"aakb-wms/internal/domain"
	leaveerrors "aakb-wms/internal/leave/errors"
	"aakb-wms/internal/notification"
	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, workerID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetMine(ctx context.Context, workerID, status string) ([]LeaveResponse, error)
	GetAll(ctx context.Context, workerID, status, from, to string) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Approve(ctx context.Context, approverID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, approverID, id, reason string) (LeaveResponse, error)
	Cancel(ctx context.Context, workerID, id string) (LeaveResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	notifier notification.Sink
	clock    func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, notifier notification.Sink, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, notifier: notifier, clock: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, workerID string, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("worker_id", workerID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	workerUUID, err := uuid.Parse(workerID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidWorkerID
	}
	startDate, endDate, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	worker, err := s.activeProfile(ctx, qtx, workerID)
	if err != nil {
		return LeaveResponse{}, err
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, workerID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, apperror.StoreUnavailable(err)
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("request_id", rid),
			zap.String("worker_id", workerID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	now := s.clock().UTC()
	l := &Leave{
		ID:        uuid.New(),
		WorkerID:  workerUUID,
		LeaveType: req.LeaveType,
		StartDate: startDate,
		EndDate:   endDate,
		TotalDays: int(endDate.Sub(startDate).Hours()/24) + 1,
		Reason:    strings.TrimSpace(req.Reason),
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, apperror.StoreUnavailable(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, apperror.StoreUnavailable(err)
	}
	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("worker_id", workerID),
	)

	s.notify(ctx, notification.Message{
		RecipientRoles: domain.OverseerRoles,
		Title:          "Leave request",
		Body: fmt.Sprintf("%s requests %s from %s to %s",
			worker.FullName, strings.ToLower(l.LeaveType), req.StartDate, req.EndDate),
		Data: map[string]any{
			"type":      "leave.requested",
			"leave_id":  l.ID.String(),
			"worker_id": workerID,
		},
	})

	l.Worker = worker
	return mapToResponse(*l), nil
}

func (s *service) GetMine(ctx context.Context, workerID, status string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(workerID); err != nil {
		return nil, leaveerrors.ErrInvalidWorkerID
	}
	return s.GetAll(ctx, workerID, status, "", "")
}

func (s *service) GetAll(ctx context.Context, workerID, status, from, to string) ([]LeaveResponse, error) {
	filter := ListFilter{WorkerID: workerID, Status: strings.ToUpper(strings.TrimSpace(status))}
	if filter.WorkerID != "" {
		if _, err := uuid.Parse(filter.WorkerID); err != nil {
			return nil, leaveerrors.ErrInvalidWorkerID
		}
	}
	switch filter.Status {
	case "", StatusPending, StatusApproved, StatusRejected, StatusCancelled:
	default:
		return nil, leaveerrors.ErrInvalidStatusFilter
	}
	if from != "" {
		d, err := parseDate(from)
		if err != nil {
			return nil, err
		}
		filter.From = &d
	}
	if to != "" {
		d, err := parseDate(to)
		if err != nil {
			return nil, err
		}
		filter.To = &d
	}

	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	l, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, apperror.StoreUnavailable(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, approverID, id string) (LeaveResponse, error) {
	return s.decide(ctx, approverID, id, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, approverID, id, reason string) (LeaveResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}
	return s.decide(ctx, approverID, id, StatusRejected, reason)
}

func (s *service) Cancel(ctx context.Context, workerID, id string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("cancel leave requested",
		zap.String("request_id", rid),
		zap.String("worker_id", workerID),
		zap.String("leave_id", id),
	)

	if _, err := uuid.Parse(workerID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidWorkerID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := s.findForUpdate(ctx, qtx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.WorkerID.String() != workerID {
		s.logger.Warn("cancel leave by non owner", zap.String("leave_id", id), zap.String("worker_id", workerID))
		return LeaveResponse{}, leaveerrors.ErrNotLeaveOwner
	}
	if !isAllowedStatusTransition(l.Status, StatusCancelled) {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = StatusCancelled
	l.UpdatedAt = s.clock().UTC()
	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, apperror.StoreUnavailable(err)
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, apperror.StoreUnavailable(err)
	}

	s.logger.Info("cancel leave success", zap.String("request_id", rid), zap.String("leave_id", id))
	return mapToResponse(*l), nil
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	if currentStatus != StatusPending {
		return false
	}
	switch targetStatus {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s *service) decide(ctx context.Context, approverID, id, targetStatus, reason string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("approver_id", approverID),
		zap.String("target_status", targetStatus),
	)

	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidWorkerID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	approver, err := s.activeProfile(ctx, qtx, approverID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !domain.IsOverseer(approver.Role) {
		s.logger.Warn("decide leave by non overseer",
			zap.String("approver_id", approverID),
			zap.String("role", approver.Role),
		)
		return LeaveResponse{}, leaveerrors.ErrApproverNotAllowed
	}

	l, err := s.findForUpdate(ctx, qtx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !isAllowedStatusTransition(l.Status, targetStatus) {
		s.logger.Warn("decide leave invalid transition",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", targetStatus),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	now := s.clock().UTC()
	l.Status = targetStatus
	l.DecidedBy = &approverUUID
	l.DecidedAt = &now
	l.UpdatedAt = now
	if targetStatus == StatusRejected {
		l.RejectionReason = &reason
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return LeaveResponse{}, apperror.StoreUnavailable(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, apperror.StoreUnavailable(err)
	}
	s.logger.Info("decide leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
	)

	body := fmt.Sprintf("%s approved your %s request (%s to %s)",
		approver.FullName, strings.ToLower(l.LeaveType), l.StartDate.Format(dateLayout), l.EndDate.Format(dateLayout))
	if targetStatus == StatusRejected {
		body = fmt.Sprintf("%s rejected your %s request: %s", approver.FullName, strings.ToLower(l.LeaveType), reason)
	}
	s.notify(ctx, notification.Message{
		RecipientIDs: []string{l.WorkerID.String()},
		Title:        "Leave " + strings.ToLower(targetStatus),
		Body:         body,
		Data: map[string]any{
			"type":     "leave." + strings.ToLower(targetStatus),
			"leave_id": id,
		},
	})

	return mapToResponse(*l), nil
}

func (s *service) activeProfile(ctx context.Context, repo Repository, id string) (*Requester, error) {
	w, err := repo.FindWorker(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrWorkerNotFound
		}
		s.logger.Error("leave profile lookup failed", zap.String("profile_id", id), zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	if !w.IsActive {
		return nil, leaveerrors.ErrProfileInactive
	}
	return w, nil
}

func (s *service) findForUpdate(ctx context.Context, repo Repository, id string) (*Leave, error) {
	l, err := repo.FindByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("leave lookup failed", zap.String("leave_id", id), zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	return l, nil
}

func (s *service) notify(ctx context.Context, msg notification.Message) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Warn("notification dropped", zap.String("title", msg.Title), zap.Error(err))
	}
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:        l.ID.String(),
		WorkerID:  l.WorkerID.String(),
		LeaveType: l.LeaveType,
		StartDate: l.StartDate.Format(dateLayout),
		EndDate:   l.EndDate.Format(dateLayout),
		TotalDays: l.TotalDays,
		Reason:    l.Reason,
		Status:    l.Status,
		CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.Worker != nil {
		resp.WorkerName = l.Worker.FullName
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	resp.RejectionReason = l.RejectionReason
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
