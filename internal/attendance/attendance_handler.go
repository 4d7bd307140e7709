package attendance

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"aakb-wms/internal/middleware"
	"aakb-wms/internal/shared/apperror"
	platform "aakb-wms/internal/shared/request"
	"aakb-wms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const DeviceIDHeader = "X-Device-ID"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("attendance request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", httpErr.Code),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// deviceContext prefers the request body and falls back to headers.
func deviceContext(c *gin.Context, req StartDayRequest) DeviceContext {
	class := strings.TrimSpace(req.DeviceClass)
	if class == "" {
		class = string(platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent")))
	}
	fingerprint := strings.TrimSpace(req.DeviceID)
	if fingerprint == "" {
		fingerprint = strings.TrimSpace(c.GetHeader(DeviceIDHeader))
	}
	return DeviceContext{Class: class, Fingerprint: fingerprint}
}

func (h *Handler) StartDay(c *gin.Context) {
	var req StartDayRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.StartDay(c.Request.Context(), c.GetString(middleware.ContextProfileID), deviceContext(c, req))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Started {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) SwitchMode(c *gin.Context) {
	var req SwitchModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	mode := Mode(strings.ToLower(strings.TrimSpace(req.Mode)))
	resp, err := h.service.SwitchMode(c.Request.Context(), c.GetString(middleware.ContextProfileID), mode)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RequestEarlyExit(c *gin.Context) {
	var req EarlyExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RequestEarlyExit(c.Request.Context(), c.GetString(middleware.ContextProfileID), req.Reason)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ApproveEarlyExit(c *gin.Context) {
	resp, err := h.service.ApproveEarlyExit(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextProfileID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) EndDay(c *gin.Context) {
	resp, err := h.service.EndDay(c.Request.Context(), c.GetString(middleware.ContextProfileID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Today(c *gin.Context) {
	resp, err := h.service.Today(c.Request.Context(), c.GetString(middleware.ContextProfileID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MyHistory(c *gin.Context) {
	h.history(c, c.GetString(middleware.ContextProfileID))
}

func (h *Handler) WorkerHistory(c *gin.Context) {
	h.history(c, c.Param("worker_id"))
}

func (h *Handler) history(c *gin.Context, workerID string) {
	resp, err := h.service.History(c.Request.Context(), workerID, c.Query("from"), c.Query("to"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) ListByDate(c *gin.Context) {
	resp, err := h.service.ListByDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

// WatchApproval streams early-exit decisions as server-sent events. The
// current record is sent first so a decision made before subscribing is not
// missed.
func (h *Handler) WatchApproval(c *gin.Context) {
	ctx := c.Request.Context()
	workerID := c.GetString(middleware.ContextProfileID)

	events, cancel, err := h.service.WatchApproval(ctx, workerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer cancel()

	today, err := h.service.Today(ctx, workerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("today", today)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("approval", ev)
			return true
		}
	})
}
