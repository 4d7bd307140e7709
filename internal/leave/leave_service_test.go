package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"aakb-wms/internal/domain"
	"aakb-wms/internal/leave"
	leaveerrors "aakb-wms/internal/leave/errors"
	"aakb-wms/internal/notification"
	"aakb-wms/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	withTxFn               func(tx *sql.Tx) leave.Repository
	findWorkerFn           func(ctx context.Context, id string) (*leave.Requester, error)
	createFn               func(ctx context.Context, l *leave.Leave) error
	findAllFn              func(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, error)
	findByIDFn             func(ctx context.Context, id string, forUpdate bool) (*leave.Leave, error)
	updateFn               func(ctx context.Context, l *leave.Leave) error
	hasOverlappingPeriodFn func(ctx context.Context, workerID string, startDate, endDate time.Time, excludeID *string) (bool, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) FindWorker(ctx context.Context, id string) (*leave.Requester, error) {
	if f.findWorkerFn != nil {
		return f.findWorkerFn(ctx, id)
	}
	return &leave.Requester{ID: uuid.MustParse(id), FullName: "Ravi", Role: domain.RoleWorker, IsActive: true}, nil
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string, forUpdate bool) (*leave.Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id, forUpdate)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) HasOverlappingPeriod(ctx context.Context, workerID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	if f.hasOverlappingPeriodFn != nil {
		return f.hasOverlappingPeriodFn(ctx, workerID, startDate, endDate, excludeID)
	}
	return false, nil
}

type captureSink struct {
	messages []notification.Message
}

func (s *captureSink) Notify(_ context.Context, msg notification.Message) error {
	s.messages = append(s.messages, msg)
	return nil
}

type leaveServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leave.Service
	repo    *fakeLeaveRepository
	sink    *captureSink
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeLeaveRepository{}
	sink := &captureSink{}
	svc := leave.NewService(db, repo, sink)

	return &leaveServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		sink:    sink,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func pendingLeave(workerID uuid.UUID) *leave.Leave {
	return &leave.Leave{
		ID:        uuid.New(),
		WorkerID:  workerID,
		LeaveType: leave.TypeSick,
		StartDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC),
		TotalDays: 2,
		Status:    leave.StatusPending,
	}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	workerID := uuid.New().String()

	validReq := leave.CreateLeaveRequest{
		LeaveType: leave.TypeLeave,
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    " family function ",
	}

	t.Run("success notifies overseers", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		var created *leave.Leave
		deps.repo.createFn = func(_ context.Context, l *leave.Leave) error {
			created = l
			return nil
		}

		resp, err := deps.service.Create(ctx, workerID, validReq)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 3, resp.TotalDays)
		assert.Equal(t, "family function", resp.Reason)
		assert.Equal(t, "Ravi", resp.WorkerName)
		require.NotNil(t, created)
		assert.Equal(t, workerID, created.WorkerID.String())

		require.Len(t, deps.sink.messages, 1)
		assert.Equal(t, domain.OverseerRoles, deps.sink.messages[0].RecipientRoles)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid date format", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		req := validReq
		req.StartDate = "10-03-2026"

		_, err := deps.service.Create(ctx, workerID, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("end before start", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		req := validReq
		req.EndDate = "2026-03-01"

		_, err := deps.service.Create(ctx, workerID, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("overlap", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.hasOverlappingPeriodFn = func(context.Context, string, time.Time, time.Time, *string) (bool, error) {
			return true, nil
		}

		_, err := deps.service.Create(ctx, workerID, validReq)
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
		assert.Empty(t, deps.sink.messages)
	})

	t.Run("inactive requester", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.findWorkerFn = func(context.Context, string) (*leave.Requester, error) {
			return &leave.Requester{IsActive: false}, nil
		}

		_, err := deps.service.Create(ctx, workerID, validReq)
		assert.ErrorIs(t, err, leaveerrors.ErrProfileInactive)
	})

	t.Run("persist failure is store unavailable", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.createFn = func(context.Context, *leave.Leave) error {
			return errors.New("connection reset")
		}

		_, err := deps.service.Create(ctx, workerID, validReq)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeServiceUnavailable, appErr.Code)
	})
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()
	workerID := uuid.New()
	approverID := uuid.New().String()

	overseer := func(context.Context, string) (*leave.Requester, error) {
		return &leave.Requester{FullName: "Swamiji", Role: domain.RoleSwamiji, IsActive: true}, nil
	}

	t.Run("approve records decision and notifies worker", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		l := pendingLeave(workerID)
		deps.repo.findWorkerFn = overseer
		deps.repo.findByIDFn = func(_ context.Context, id string, forUpdate bool) (*leave.Leave, error) {
			assert.True(t, forUpdate)
			return l, nil
		}

		resp, err := deps.service.Approve(ctx, approverID, l.ID.String())
		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		require.NotNil(t, resp.DecidedBy)
		assert.Equal(t, approverID, *resp.DecidedBy)
		assert.NotNil(t, resp.DecidedAt)

		require.Len(t, deps.sink.messages, 1)
		assert.Equal(t, []string{workerID.String()}, deps.sink.messages[0].RecipientIDs)
		assert.Equal(t, "Leave approved", deps.sink.messages[0].Title)
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		_, err := deps.service.Reject(ctx, approverID, uuid.NewString(), "  ")
		assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
	})

	t.Run("reject stores reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		l := pendingLeave(workerID)
		deps.repo.findWorkerFn = overseer
		deps.repo.findByIDFn = func(context.Context, string, bool) (*leave.Leave, error) { return l, nil }

		resp, err := deps.service.Reject(ctx, approverID, l.ID.String(), "festival week")
		require.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		require.NotNil(t, resp.RejectionReason)
		assert.Equal(t, "festival week", *resp.RejectionReason)
	})

	t.Run("worker cannot approve", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Approve(ctx, approverID, uuid.NewString())
		assert.ErrorIs(t, err, leaveerrors.ErrApproverNotAllowed)
	})

	t.Run("already decided", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		l := pendingLeave(workerID)
		l.Status = leave.StatusRejected
		deps.repo.findWorkerFn = overseer
		deps.repo.findByIDFn = func(context.Context, string, bool) (*leave.Leave, error) { return l, nil }

		_, err := deps.service.Approve(ctx, approverID, l.ID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.findWorkerFn = overseer

		_, err := deps.service.Approve(ctx, approverID, uuid.NewString())
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()
	workerID := uuid.New()

	t.Run("owner cancels pending", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		l := pendingLeave(workerID)
		deps.repo.findByIDFn = func(context.Context, string, bool) (*leave.Leave, error) { return l, nil }

		resp, err := deps.service.Cancel(ctx, workerID.String(), l.ID.String())
		require.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
		assert.Empty(t, deps.sink.messages)
	})

	t.Run("someone else's leave", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		l := pendingLeave(uuid.New())
		deps.repo.findByIDFn = func(context.Context, string, bool) (*leave.Leave, error) { return l, nil }

		_, err := deps.service.Cancel(ctx, workerID.String(), l.ID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrNotLeaveOwner)
	})

	t.Run("approved leave cannot be cancelled", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		l := pendingLeave(workerID)
		l.Status = leave.StatusApproved
		deps.repo.findByIDFn = func(context.Context, string, bool) (*leave.Leave, error) { return l, nil }

		_, err := deps.service.Cancel(ctx, workerID.String(), l.ID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})
}

func TestLeaveService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("builds filter", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		workerID := uuid.NewString()
		deps.repo.findAllFn = func(_ context.Context, filter leave.ListFilter) ([]leave.Leave, error) {
			assert.Equal(t, workerID, filter.WorkerID)
			assert.Equal(t, leave.StatusPending, filter.Status)
			require.NotNil(t, filter.From)
			assert.Equal(t, "2026-03-01", filter.From.Format("2006-01-02"))
			assert.Nil(t, filter.To)
			return []leave.Leave{*pendingLeave(uuid.MustParse(workerID))}, nil
		}

		resp, err := deps.service.GetAll(ctx, workerID, "pending", "2026-03-01", "")
		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("unknown status", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		_, err := deps.service.GetAll(ctx, "", "maybe", "", "")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusFilter)
	})

	t.Run("get by id not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		_, err := deps.service.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}
