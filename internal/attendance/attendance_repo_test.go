package attendance_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"aakb-wms/internal/attendance"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupAttendanceRepoTest(t *testing.T) (attendance.Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return attendance.NewRepository(gdb), mock
}

var recordColumns = []string{
	"id", "worker_id", "date", "check_in_time", "check_out_time", "status", "mode",
	"check_in_device_class", "check_in_device_id", "created_at", "updated_at",
}

func TestAttendanceRepository_UpsertCheckIn(t *testing.T) {
	repo, mock := setupAttendanceRepoTest(t)

	workerID := uuid.New()
	recordID := uuid.New()
	checkIn := time.Date(2026, time.March, 2, 3, 30, 0, 0, time.UTC)
	rec := &attendance.Record{
		WorkerID:           workerID,
		Date:               time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		CheckInTime:        &checkIn,
		Status:             attendance.StatusPresent,
		Mode:               attendance.ModeOffice,
		CheckInDeviceClass: "KIOSK",
		CheckInDeviceID:    "kiosk-fp",
		CreatedAt:          checkIn,
		UpdatedAt:          checkIn,
	}

	query := regexp.QuoteMeta(`INSERT INTO attendance (`) + `.+` +
		regexp.QuoteMeta(`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (worker_id, date) DO UPDATE SET `+
			`check_in_time = COALESCE(attendance.check_in_time, EXCLUDED.check_in_time), `+
			`status = CASE WHEN attendance.check_in_time IS NULL THEN EXCLUDED.status ELSE attendance.status END`) +
		`.+` + regexp.QuoteMeta(`RETURNING *`)

	mock.ExpectQuery(query).
		WithArgs(workerID.String(), "2026-03-02", checkIn, "present", "office", "KIOSK", "kiosk-fp", checkIn, checkIn).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow(recordID.String(), workerID.String(), rec.Date, checkIn, nil, "present", "office", "KIOSK", "kiosk-fp", checkIn, checkIn))

	got, err := repo.UpsertCheckIn(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, recordID, got.ID)
	assert.Equal(t, workerID, got.WorkerID)
	require.NotNil(t, got.CheckInTime)
	assert.True(t, got.CheckInTime.Equal(checkIn))
	assert.Nil(t, got.CheckOutTime)
	assert.Equal(t, attendance.StatusPresent, got.Status)
	assert.Equal(t, "kiosk-fp", got.CheckInDeviceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_FindOpenRecord(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT * FROM "attendance" WHERE worker_id = $1 AND check_in_time IS NOT NULL AND check_out_time IS NULL ORDER BY date DESC`) +
		`.+` + regexp.QuoteMeta(`FOR UPDATE`)

	t.Run("latest open day", func(t *testing.T) {
		repo, mock := setupAttendanceRepoTest(t)
		workerID := uuid.New()
		checkIn := time.Date(2026, time.March, 1, 14, 30, 0, 0, time.UTC)

		mock.ExpectQuery(query).
			WithArgs(workerID.String(), 1).
			WillReturnRows(sqlmock.NewRows(recordColumns).
				AddRow(uuid.NewString(), workerID.String(), time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
					checkIn, nil, "present", "office", "MOBILE", "phone-1", checkIn, checkIn))

		got, err := repo.FindOpenRecord(context.Background(), workerID.String())
		require.NoError(t, err)
		assert.Equal(t, "2026-03-01", got.Date.Format("2006-01-02"))
		assert.True(t, got.Active())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("none open", func(t *testing.T) {
		repo, mock := setupAttendanceRepoTest(t)
		workerID := uuid.NewString()

		mock.ExpectQuery(query).
			WithArgs(workerID, 1).
			WillReturnRows(sqlmock.NewRows(recordColumns))

		_, err := repo.FindOpenRecord(context.Background(), workerID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
