package task_test

import (
	"context"
	"errors"
	"testing"

	"aakb-wms/internal/notification"
	notificationMock "aakb-wms/internal/notification/mock"
	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/task"
	taskerrors "aakb-wms/internal/task/errors"
	taskMock "aakb-wms/internal/task/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type taskServiceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *taskMock.MockRepository
	sink    *notificationMock.MockSink
	service task.Service
}

func setupTaskServiceTest(t *testing.T) *taskServiceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := taskMock.NewMockRepository(ctrl)
	sink := notificationMock.NewMockSink(ctrl)
	return &taskServiceDeps{
		sqlMock: sqlMock,
		repo:    repo,
		sink:    sink,
		service: task.NewService(db, repo, sink),
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
		return
	}
	mock.ExpectRollback()
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	lead := uuid.New()
	worker := uuid.New()

	t.Run("assigns with default priority and notifies assignee", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		deps.repo.EXPECT().FindMember(gomock.Any(), worker.String()).
			Return(&task.Member{ID: worker, FullName: "Ravi", IsActive: true}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tk *task.Task) error {
			assert.Equal(t, task.PriorityMedium, tk.Priority)
			assert.Equal(t, task.StatusPending, tk.Status)
			assert.Equal(t, lead, *tk.AssignedBy)
			assert.Equal(t, "2026-03-10", tk.DueDate.Format("2006-01-02"))
			return nil
		})
		deps.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg notification.Message) error {
			assert.Equal(t, []string{worker.String()}, msg.RecipientIDs)
			assert.Equal(t, "Sweep the hall", msg.Body)
			assert.Equal(t, "task.assigned", msg.Data["type"])
			return nil
		})

		resp, err := deps.service.Create(ctx, lead.String(), task.CreateTaskRequest{
			Title:      " Sweep the hall ",
			AssignedTo: worker.String(),
			DueDate:    "2026-03-10",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ravi", resp.AssigneeName)
		assert.Equal(t, "2026-03-10", *resp.DueDate)
	})

	t.Run("assignee missing", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		deps.repo.EXPECT().FindMember(gomock.Any(), worker.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, lead.String(), task.CreateTaskRequest{Title: "x", AssignedTo: worker.String()})
		assert.ErrorIs(t, err, taskerrors.ErrAssigneeNotFound)
	})

	t.Run("assignee inactive", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		deps.repo.EXPECT().FindMember(gomock.Any(), worker.String()).
			Return(&task.Member{ID: worker, IsActive: false}, nil)

		_, err := deps.service.Create(ctx, lead.String(), task.CreateTaskRequest{Title: "x", AssignedTo: worker.String()})
		assert.ErrorIs(t, err, taskerrors.ErrAssigneeInactive)
	})

	t.Run("bad due date", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		_, err := deps.service.Create(ctx, lead.String(), task.CreateTaskRequest{
			Title: "x", AssignedTo: worker.String(), DueDate: "10/03/2026",
		})
		assert.ErrorIs(t, err, taskerrors.ErrInvalidDueDate)
	})

	t.Run("store failure", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		deps.repo.EXPECT().FindMember(gomock.Any(), worker.String()).
			Return(&task.Member{ID: worker, IsActive: true}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		_, err := deps.service.Create(ctx, lead.String(), task.CreateTaskRequest{Title: "x", AssignedTo: worker.String()})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeServiceUnavailable, appErr.Code)
	})
}

func TestTaskService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	lead := uuid.New()
	worker := uuid.New()
	taskID := uuid.New()

	newTask := func(status string) *task.Task {
		return &task.Task{ID: taskID, Title: "Sweep the hall", AssignedTo: worker, AssignedBy: &lead, Status: status}
	}
	member := &task.Member{ID: worker, FullName: "Ravi", IsActive: true}

	t.Run("start progress without notification", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindMember(gomock.Any(), worker.String()).Return(member, nil)
		deps.repo.EXPECT().FindByID(gomock.Any(), taskID.String(), true).Return(newTask(task.StatusPending), nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.UpdateStatus(ctx, worker.String(), taskID.String(), "IN_PROGRESS")
		require.NoError(t, err)
		assert.Equal(t, task.StatusInProgress, resp.Status)
		assert.Nil(t, resp.CompletedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("complete notifies assigner", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindMember(gomock.Any(), worker.String()).Return(member, nil)
		deps.repo.EXPECT().FindByID(gomock.Any(), taskID.String(), true).Return(newTask(task.StatusInProgress), nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tk *task.Task) error {
			assert.NotNil(t, tk.CompletedAt)
			return nil
		})
		deps.sink.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg notification.Message) error {
			assert.Equal(t, []string{lead.String()}, msg.RecipientIDs)
			assert.Equal(t, "Ravi completed Sweep the hall", msg.Body)
			return nil
		})

		resp, err := deps.service.UpdateStatus(ctx, worker.String(), taskID.String(), task.StatusCompleted)
		require.NoError(t, err)
		assert.NotNil(t, resp.CompletedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("only the assignee", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		other := uuid.New()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindMember(gomock.Any(), other.String()).
			Return(&task.Member{ID: other, IsActive: true}, nil)
		deps.repo.EXPECT().FindByID(gomock.Any(), taskID.String(), true).Return(newTask(task.StatusPending), nil)

		_, err := deps.service.UpdateStatus(ctx, other.String(), taskID.String(), task.StatusCompleted)
		assert.ErrorIs(t, err, taskerrors.ErrNotAssignee)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindMember(gomock.Any(), worker.String()).Return(member, nil)
		deps.repo.EXPECT().FindByID(gomock.Any(), taskID.String(), true).Return(newTask(task.StatusCompleted), nil)

		_, err := deps.service.UpdateStatus(ctx, worker.String(), taskID.String(), task.StatusPending)
		assert.ErrorIs(t, err, taskerrors.ErrTaskCompleted)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindMember(gomock.Any(), worker.String()).Return(member, nil)
		deps.repo.EXPECT().FindByID(gomock.Any(), taskID.String(), true).Return(newTask(task.StatusCompleted), nil)

		resp, err := deps.service.UpdateStatus(ctx, worker.String(), taskID.String(), task.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, resp.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		_, err := deps.service.UpdateStatus(ctx, worker.String(), taskID.String(), "done")
		assert.ErrorIs(t, err, taskerrors.ErrInvalidStatus)
	})
}

func TestTaskService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	worker := uuid.New()

	t.Run("mine filters by assignee", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		deps.repo.EXPECT().FindAll(gomock.Any(), task.ListFilter{AssignedTo: worker.String(), Status: task.StatusPending}).
			Return([]task.Task{{ID: uuid.New(), AssignedTo: worker, Title: "a"}}, nil)

		resp, err := deps.service.GetMine(ctx, worker.String(), "Pending")
		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		_, err := deps.service.GetAll(ctx, "", "archived")
		assert.ErrorIs(t, err, taskerrors.ErrInvalidStatus)
	})

	t.Run("update not found", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		id := uuid.New()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String(), true).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), task.UpdateTaskRequest{Title: "x", Priority: task.PriorityHigh})
		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
	})

	t.Run("delete missing", func(t *testing.T) {
		deps := setupTaskServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().Delete(gomock.Any(), id.String()).Return(false, nil)

		assert.ErrorIs(t, deps.service.Delete(ctx, id.String()), taskerrors.ErrTaskNotFound)
	})
}
