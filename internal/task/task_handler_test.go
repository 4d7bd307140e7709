package task_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"aakb-wms/internal/middleware"
	"aakb-wms/internal/task"
	taskerrors "aakb-wms/internal/task/errors"
	taskMock "aakb-wms/internal/task/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const assigneeID = "6f1c2d4e-8a3b-4c5d-9e7f-0a1b2c3d4e5f"

func setupTaskRouter(t *testing.T) (*gin.Engine, *taskMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := taskMock.NewMockService(gomock.NewController(t))
	h := task.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextProfileID, "profile-1")
		c.Next()
	})
	r.GET("/tasks/me", h.Mine)
	r.GET("/tasks", h.GetAll)
	r.POST("/tasks", h.Create)
	r.PUT("/tasks/:id", h.Update)
	r.PATCH("/tasks/:id/status", h.UpdateStatus)
	r.DELETE("/tasks/:id", h.Delete)
	return r, svc
}

func TestTaskHandler(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		r, svc := setupTaskRouter(t)
		svc.EXPECT().Create(gomock.Any(), "profile-1", task.CreateTaskRequest{Title: "Sweep", AssignedTo: assigneeID, Priority: "high"}).
			Return(task.TaskResponse{ID: "t-1"}, nil)

		w := httptest.NewRecorder()
		body := `{"title":"Sweep","assigned_to":"` + assigneeID + `","priority":"high"}`
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString(body)))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("create rejects unknown priority", func(t *testing.T) {
		r, _ := setupTaskRouter(t)
		w := httptest.NewRecorder()
		body := `{"title":"Sweep","assigned_to":"` + assigneeID + `","priority":"urgent"}`
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("mine paginates", func(t *testing.T) {
		r, svc := setupTaskRouter(t)
		svc.EXPECT().GetMine(gomock.Any(), "profile-1", "").
			Return([]task.TaskResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks/me?page_size=2", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":3`)
	})

	t.Run("status by non assignee", func(t *testing.T) {
		r, svc := setupTaskRouter(t)
		svc.EXPECT().UpdateStatus(gomock.Any(), "profile-1", "t-1", "completed").
			Return(task.TaskResponse{}, taskerrors.ErrNotAssignee)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/tasks/t-1/status", bytes.NewBufferString(`{"status":"completed"}`)))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		r, svc := setupTaskRouter(t)
		svc.EXPECT().Delete(gomock.Any(), "t-1").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/tasks/t-1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
