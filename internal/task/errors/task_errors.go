package taskerrors

import (
	"net/http"

	"aakb-wms/internal/shared/apperror"
)

var (
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid task id",
		http.StatusBadRequest,
	)
	ErrInvalidProfileID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid profile id",
		http.StatusBadRequest,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid due_date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of pending, in_progress, completed",
		http.StatusBadRequest,
	)
	ErrTitleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"title is required",
		http.StatusBadRequest,
	)
	ErrAssigneeNotFound = apperror.New(
		apperror.CodeNotFound,
		"assignee not found",
		http.StatusNotFound,
	)
	ErrAssigneeInactive = apperror.New(
		apperror.CodeInvalidState,
		"assignee profile is inactive",
		http.StatusConflict,
	)
	ErrProfileInactive = apperror.New(
		apperror.CodeForbidden,
		"profile is inactive",
		http.StatusForbidden,
	)
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"task not found",
		http.StatusNotFound,
	)
	ErrNotAssignee = apperror.New(
		apperror.CodeForbidden,
		"only the assignee can update task progress",
		http.StatusForbidden,
	)
	ErrTaskCompleted = apperror.New(
		apperror.CodeInvalidState,
		"task is already completed",
		http.StatusConflict,
	)
)
