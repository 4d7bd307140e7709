package leave_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aakb-wms/internal/leave"
	leaveerrors "aakb-wms/internal/leave/errors"
	leaveMock "aakb-wms/internal/leave/mock"
	"aakb-wms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupLeaveRouter(t *testing.T) (*gin.Engine, *leaveMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	h := leave.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextProfileID, "profile-1")
		c.Next()
	})
	r.POST("/leaves", h.Create)
	r.GET("/leaves/me", h.Mine)
	r.GET("/leaves", h.GetAll)
	r.GET("/leaves/:id", h.GetByID)
	r.POST("/leaves/:id/approve", h.Approve)
	r.POST("/leaves/:id/reject", h.Reject)
	r.POST("/leaves/:id/cancel", h.Cancel)
	return r, svc
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := setupLeaveRouter(t)
		req := leave.CreateLeaveRequest{LeaveType: "SICK", StartDate: "2026-03-10", EndDate: "2026-03-10"}
		svc.EXPECT().Create(gomock.Any(), "profile-1", req).Return(leave.LeaveResponse{ID: "l-1", Status: "PENDING"}, nil)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "l-1", res["data"].(map[string]any)["id"])
	})

	t.Run("unknown leave type", func(t *testing.T) {
		r, _ := setupLeaveRouter(t)
		body := []byte(`{"leave_type":"ANNUAL","start_date":"2026-03-10","end_date":"2026-03-10"}`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("overlap", func(t *testing.T) {
		r, svc := setupLeaveRouter(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(leave.LeaveResponse{}, leaveerrors.ErrLeaveOverlap)

		body := []byte(`{"leave_type":"LEAVE","start_date":"2026-03-10","end_date":"2026-03-12"}`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLeaveHandler_List(t *testing.T) {
	t.Run("mine", func(t *testing.T) {
		r, svc := setupLeaveRouter(t)
		svc.EXPECT().GetMine(gomock.Any(), "profile-1", "PENDING").Return([]leave.LeaveResponse{{ID: "l-1"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/me?status=PENDING", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("all with filters", func(t *testing.T) {
		r, svc := setupLeaveRouter(t)
		svc.EXPECT().GetAll(gomock.Any(), "w-1", "", "2026-03-01", "2026-03-31").Return([]leave.LeaveResponse{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves?worker_id=w-1&from=2026-03-01&to=2026-03-31", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get by id not found", func(t *testing.T) {
		r, svc := setupLeaveRouter(t)
		svc.EXPECT().GetByID(gomock.Any(), "l-9").Return(leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/l-9", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLeaveHandler_Decisions(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		r, svc := setupLeaveRouter(t)
		svc.EXPECT().Approve(gomock.Any(), "profile-1", "l-1").Return(leave.LeaveResponse{Status: "APPROVED"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/l-1/approve", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("approve by non overseer", func(t *testing.T) {
		r, svc := setupLeaveRouter(t)
		svc.EXPECT().Approve(gomock.Any(), gomock.Any(), "l-1").Return(leave.LeaveResponse{}, leaveerrors.ErrApproverNotAllowed)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/l-1/approve", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("reject requires body", func(t *testing.T) {
		r, _ := setupLeaveRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/l-1/reject", bytes.NewBufferString(`{}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reject", func(t *testing.T) {
		r, svc := setupLeaveRouter(t)
		svc.EXPECT().Reject(gomock.Any(), "profile-1", "l-1", "busy week").Return(leave.LeaveResponse{Status: "REJECTED"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/l-1/reject", bytes.NewBufferString(`{"reason":"busy week"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cancel", func(t *testing.T) {
		r, svc := setupLeaveRouter(t)
		svc.EXPECT().Cancel(gomock.Any(), "profile-1", "l-1").Return(leave.LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/l-1/cancel", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
