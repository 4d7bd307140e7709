package notification_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"aakb-wms/internal/middleware"
	"aakb-wms/internal/notification"
	notificationerrors "aakb-wms/internal/notification/errors"
	notificationMock "aakb-wms/internal/notification/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const handlerProfileID = "8b7a6c5d-4e3f-4a1b-9c2d-1e0f9a8b7c6d"

func setupNotificationRouter(t *testing.T) (*gin.Engine, *notificationMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := notificationMock.NewMockService(gomock.NewController(t))
	h := notification.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextProfileID, handlerProfileID)
		c.Next()
	})
	r.GET("/notifications", h.List)
	r.GET("/notifications/unread-count", h.UnreadCount)
	r.GET("/notifications/stream", h.Stream)
	r.POST("/notifications/read-all", h.MarkAllRead)
	r.POST("/notifications/:id/read", h.MarkRead)
	r.POST("/notifications/push-tokens", h.RegisterPushToken)
	r.DELETE("/notifications/push-tokens", h.UnregisterPushToken)
	return r, svc
}

type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func TestNotificationHandler(t *testing.T) {
	t.Run("list unread only", func(t *testing.T) {
		r, svc := setupNotificationRouter(t)
		svc.EXPECT().List(gomock.Any(), handlerProfileID, true).
			Return([]notification.NotificationResponse{{ID: "n-1", Title: "Holiday declared"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications?unread=true", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Holiday declared")
	})

	t.Run("unread count", func(t *testing.T) {
		r, svc := setupNotificationRouter(t)
		svc.EXPECT().UnreadCount(gomock.Any(), handlerProfileID).Return(int64(3), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"unread":3`)
	})

	t.Run("mark read not found", func(t *testing.T) {
		r, svc := setupNotificationRouter(t)
		svc.EXPECT().MarkRead(gomock.Any(), handlerProfileID, "n-9").Return(notificationerrors.ErrNotificationNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/n-9/read", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("read all", func(t *testing.T) {
		r, svc := setupNotificationRouter(t)
		svc.EXPECT().MarkAllRead(gomock.Any(), handlerProfileID).Return(int64(2), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/read-all", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"updated":2`)
	})

	t.Run("register push token", func(t *testing.T) {
		r, svc := setupNotificationRouter(t)
		svc.EXPECT().RegisterPushToken(gomock.Any(), handlerProfileID, notification.RegisterPushTokenRequest{Token: "tok", Platform: "android"}).
			Return(notification.PushTokenResponse{ID: "pt-1", Token: "tok", Platform: "android"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/push-tokens", bytes.NewBufferString(`{"token":"tok","platform":"android"}`)))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("register push token bad platform", func(t *testing.T) {
		r, _ := setupNotificationRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/push-tokens", bytes.NewBufferString(`{"token":"tok","platform":"pager"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unregister push token", func(t *testing.T) {
		r, svc := setupNotificationRouter(t)
		svc.EXPECT().UnregisterPushToken(gomock.Any(), handlerProfileID, "tok").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notifications/push-tokens", bytes.NewBufferString(`{"token":"tok"}`)))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNotificationHandler_Stream(t *testing.T) {
	r, svc := setupNotificationRouter(t)

	events := make(chan notification.NotificationResponse, 1)
	events <- notification.NotificationResponse{ID: "n-1", Title: "New task"}
	close(events)
	cancelled := false

	svc.EXPECT().Watch(gomock.Any(), handlerProfileID).
		Return((<-chan notification.NotificationResponse)(events), func() { cancelled = true }, nil)
	svc.EXPECT().UnreadCount(gomock.Any(), handlerProfileID).Return(int64(5), nil)

	w := &closeNotifyingRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/stream", nil))

	body := w.Body.String()
	assert.Contains(t, body, "event:unread")
	assert.Contains(t, body, `"unread":5`)
	assert.Contains(t, body, "event:notification")
	assert.Contains(t, body, "New task")
	assert.True(t, cancelled)
}
