package settingserrors

import (
	"net/http"

	"aakb-wms/internal/shared/apperror"
)

var (
	ErrUnknownKey = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown setting key",
		http.StatusBadRequest,
	)

	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Setting not found",
		http.StatusNotFound,
	)

	ErrEmptyDeviceID = apperror.New(
		apperror.CodeInvalidInput,
		"Device ID is required",
		http.StatusBadRequest,
	)
)
