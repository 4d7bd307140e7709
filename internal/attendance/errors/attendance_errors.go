package attendanceerrors

import (
	"net/http"

	"aakb-wms/internal/shared/apperror"
)

var (
	ErrDeviceNotAuthorized = apperror.New(
		apperror.CodeDeviceNotAuthorized,
		"This device is not the registered attendance kiosk",
		http.StatusForbidden,
	)

	ErrNoActiveSession = apperror.New(
		apperror.CodeInvalidState,
		"No active work session for today",
		http.StatusConflict,
	)

	ErrInvalidMode = apperror.New(
		apperror.CodeInvalidInput,
		"Mode must be one of office, field, event",
		http.StatusBadRequest,
	)

	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Reason is required",
		http.StatusBadRequest,
	)

	ErrEarlyExitNotRequested = apperror.New(
		apperror.CodeInvalidState,
		"Early exit was not requested for this attendance",
		http.StatusConflict,
	)

	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found",
		http.StatusNotFound,
	)

	ErrWorkerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Worker not found",
		http.StatusNotFound,
	)

	ErrProfileInactive = apperror.New(
		apperror.CodeForbidden,
		"Profile is inactive",
		http.StatusForbidden,
	)

	ErrApproverNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"Only an active overseer can approve early exits",
		http.StatusForbidden,
	)

	ErrInvalidWorkerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid worker ID",
		http.StatusBadRequest,
	)

	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance ID",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Date range is invalid or longer than 93 days",
		http.StatusBadRequest,
	)

	ErrConcurrentTransition = apperror.New(
		apperror.CodeConflict,
		"Another attendance change is in progress, please retry",
		http.StatusConflict,
	)
)
