package settings

import (
	"net/http"

	"aakb-wms/internal/middleware"
	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// DeviceIDHeader carries the caller's device fingerprint.
const DeviceIDHeader = "X-Device-ID"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Set(c.Request.Context(), c.GetString(middleware.ContextProfileID), c.Param("key"), req.Value)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) KioskStatus(c *gin.Context) {
	id, registered, err := h.service.KioskDeviceID(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}
	fingerprint := c.GetHeader(DeviceIDHeader)
	response.Success(c, http.StatusOK, KioskStatusResponse{
		Registered: registered,
		ThisDevice: registered && fingerprint != "" && fingerprint == id,
	}, nil)
}

func (h *Handler) RegisterKiosk(c *gin.Context) {
	var req RegisterKioskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.RegisterKiosk(c.Request.Context(), c.GetString(middleware.ContextProfileID), req.DeviceID); err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, http.StatusOK, KioskStatusResponse{Registered: true, ThisDevice: c.GetHeader(DeviceIDHeader) == req.DeviceID}, nil)
}

func (h *Handler) ClearKiosk(c *gin.Context) {
	if err := h.service.ClearKiosk(c.Request.Context(), c.GetString(middleware.ContextProfileID)); err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, http.StatusOK, KioskStatusResponse{}, nil)
}
