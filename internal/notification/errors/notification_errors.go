package notificationerrors

import (
	"net/http"

	"aakb-wms/internal/shared/apperror"
)

var (
	ErrInvalidProfileID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid profile id",
		http.StatusBadRequest,
	)
	ErrInvalidNotificationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid notification id",
		http.StatusBadRequest,
	)
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"notification not found",
		http.StatusNotFound,
	)
	ErrInvalidMessage = apperror.New(
		apperror.CodeInvalidInput,
		"notification needs a title and at least one recipient",
		http.StatusBadRequest,
	)
	ErrPushTokenRequired = apperror.New(
		apperror.CodeInvalidInput,
		"push token is required",
		http.StatusBadRequest,
	)
	ErrPushTokenNotFound = apperror.New(
		apperror.CodeNotFound,
		"push token not found",
		http.StatusNotFound,
	)
)
