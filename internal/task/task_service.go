package task

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"aakb-wms/internal/notification"
	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/shared/contextutil"
	taskerrors "aakb-wms/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, assignerID string, req CreateTaskRequest) (TaskResponse, error)
	GetMine(ctx context.Context, workerID, status string) ([]TaskResponse, error)
	GetAll(ctx context.Context, assignedTo, status string) ([]TaskResponse, error)
	GetByID(ctx context.Context, id string) (TaskResponse, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error)
	UpdateStatus(ctx context.Context, workerID, id, status string) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	notifier notification.Sink
	clock    func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, notifier notification.Sink, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{db: db, repo: repo, notifier: notifier, clock: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, assignerID string, req CreateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create task requested",
		zap.String("request_id", rid),
		zap.String("assigned_by", assignerID),
		zap.String("assigned_to", req.AssignedTo),
	)

	assignerUUID, err := uuid.Parse(assignerID)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidProfileID
	}
	assigneeUUID, err := uuid.Parse(req.AssignedTo)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidProfileID
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return TaskResponse{}, taskerrors.ErrTitleRequired
	}
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return TaskResponse{}, err
	}
	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	assignee, err := s.repo.FindMember(ctx, req.AssignedTo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrAssigneeNotFound
		}
		s.logger.Error("create task assignee lookup failed", zap.Error(err))
		return TaskResponse{}, apperror.StoreUnavailable(err)
	}
	if !assignee.IsActive {
		return TaskResponse{}, taskerrors.ErrAssigneeInactive
	}

	now := s.clock().UTC()
	t := &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		AssignedTo:  assigneeUUID,
		AssignedBy:  &assignerUUID,
		Priority:    priority,
		Status:      StatusPending,
		DueDate:     due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create task persist failed", zap.Error(err))
		return TaskResponse{}, apperror.StoreUnavailable(err)
	}
	s.logger.Info("create task success",
		zap.String("request_id", rid),
		zap.String("task_id", t.ID.String()),
		zap.String("assigned_to", req.AssignedTo),
	)

	s.notify(ctx, notification.Message{
		RecipientIDs: []string{req.AssignedTo},
		Title:        "New task",
		Body:         title,
		Data: map[string]any{
			"type":     "task.assigned",
			"task_id":  t.ID.String(),
			"priority": priority,
		},
	})

	t.Assignee = assignee
	return mapToResponse(*t), nil
}

func (s *service) GetMine(ctx context.Context, workerID, status string) ([]TaskResponse, error) {
	if _, err := uuid.Parse(workerID); err != nil {
		return nil, taskerrors.ErrInvalidProfileID
	}
	return s.GetAll(ctx, workerID, status)
}

func (s *service) GetAll(ctx context.Context, assignedTo, status string) ([]TaskResponse, error) {
	filter := ListFilter{AssignedTo: assignedTo, Status: strings.ToLower(strings.TrimSpace(status))}
	if filter.AssignedTo != "" {
		if _, err := uuid.Parse(filter.AssignedTo); err != nil {
			return nil, taskerrors.ErrInvalidProfileID
		}
	}
	if filter.Status != "" && !isValidStatus(filter.Status) {
		return nil, taskerrors.ErrInvalidStatus
	}

	tasks, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list tasks failed", zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = mapToResponse(t)
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (TaskResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}
	t, err := s.find(ctx, s.repo, id, false)
	if err != nil {
		return TaskResponse{}, err
	}
	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return TaskResponse{}, taskerrors.ErrTitleRequired
	}
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return TaskResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TaskResponse{}, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	t, err := s.find(ctx, qtx, id, true)
	if err != nil {
		return TaskResponse{}, err
	}

	t.Title = title
	t.Description = strings.TrimSpace(req.Description)
	t.Priority = req.Priority
	t.DueDate = due
	t.UpdatedAt = s.clock().UTC()
	if err := qtx.Update(ctx, t); err != nil {
		s.logger.Error("update task persist failed", zap.String("task_id", id), zap.Error(err))
		return TaskResponse{}, apperror.StoreUnavailable(err)
	}
	if err := tx.Commit(); err != nil {
		return TaskResponse{}, apperror.StoreUnavailable(err)
	}

	s.logger.Info("update task success", zap.String("task_id", id))
	return mapToResponse(*t), nil
}

// UpdateStatus moves a task through pending, in_progress and completed.
// Completed is terminal; repeating the current status is a no-op.
func (s *service) UpdateStatus(ctx context.Context, workerID, id, status string) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	status = strings.ToLower(strings.TrimSpace(status))
	s.logger.Debug("update task status requested",
		zap.String("request_id", rid),
		zap.String("task_id", id),
		zap.String("worker_id", workerID),
		zap.String("status", status),
	)

	if _, err := uuid.Parse(workerID); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidProfileID
	}
	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}
	if !isValidStatus(status) {
		return TaskResponse{}, taskerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TaskResponse{}, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	worker, err := qtx.FindMember(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrAssigneeNotFound
		}
		return TaskResponse{}, apperror.StoreUnavailable(err)
	}
	if !worker.IsActive {
		return TaskResponse{}, taskerrors.ErrProfileInactive
	}

	t, err := s.find(ctx, qtx, id, true)
	if err != nil {
		return TaskResponse{}, err
	}
	if t.AssignedTo.String() != workerID {
		s.logger.Warn("update task status by non assignee", zap.String("task_id", id), zap.String("worker_id", workerID))
		return TaskResponse{}, taskerrors.ErrNotAssignee
	}
	if t.Status == status {
		t.Assignee = worker
		return mapToResponse(*t), nil
	}
	if t.Status == StatusCompleted {
		return TaskResponse{}, taskerrors.ErrTaskCompleted
	}

	now := s.clock().UTC()
	t.Status = status
	t.UpdatedAt = now
	if status == StatusCompleted {
		t.CompletedAt = &now
	}
	if err := qtx.Update(ctx, t); err != nil {
		s.logger.Error("update task status persist failed", zap.String("task_id", id), zap.Error(err))
		return TaskResponse{}, apperror.StoreUnavailable(err)
	}
	if err := tx.Commit(); err != nil {
		return TaskResponse{}, apperror.StoreUnavailable(err)
	}
	s.logger.Info("update task status success",
		zap.String("request_id", rid),
		zap.String("task_id", id),
		zap.String("status", status),
	)

	if status == StatusCompleted && t.AssignedBy != nil {
		s.notify(ctx, notification.Message{
			RecipientIDs: []string{t.AssignedBy.String()},
			Title:        "Task completed",
			Body:         worker.FullName + " completed " + t.Title,
			Data: map[string]any{
				"type":    "task.completed",
				"task_id": id,
			},
		})
	}

	t.Assignee = worker
	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return taskerrors.ErrInvalidTaskID
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete task failed", zap.String("task_id", id), zap.Error(err))
		return apperror.StoreUnavailable(err)
	}
	if !deleted {
		return taskerrors.ErrTaskNotFound
	}
	return nil
}

func (s *service) find(ctx context.Context, repo Repository, id string, forUpdate bool) (*Task, error) {
	t, err := repo.FindByID(ctx, id, forUpdate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taskerrors.ErrTaskNotFound
		}
		s.logger.Error("task lookup failed", zap.String("task_id", id), zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	return t, nil
}

func (s *service) notify(ctx context.Context, msg notification.Message) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Warn("notification dropped", zap.String("title", msg.Title), zap.Error(err))
	}
}

func isValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

func parseDueDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, taskerrors.ErrInvalidDueDate
	}
	return &d, nil
}

func mapToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  t.AssignedTo.String(),
		Priority:    t.Priority,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.Assignee != nil {
		resp.AssigneeName = t.Assignee.FullName
	}
	if t.AssignedBy != nil {
		v := t.AssignedBy.String()
		resp.AssignedBy = &v
	}
	if t.DueDate != nil {
		v := t.DueDate.Format(dateLayout)
		resp.DueDate = &v
	}
	if t.CompletedAt != nil {
		v := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}
	return resp
}
