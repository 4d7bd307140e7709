package settings_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"aakb-wms/internal/middleware"
	"aakb-wms/internal/settings"
	settingserrors "aakb-wms/internal/settings/errors"
	settingsMock "aakb-wms/internal/settings/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupSettingsRouter(t *testing.T) (*gin.Engine, *settingsMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := settingsMock.NewMockService(gomock.NewController(t))
	h := settings.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextProfileID, "admin-1")
		c.Next()
	})
	r.GET("/settings/kiosk", h.KioskStatus)
	r.POST("/settings/kiosk", h.RegisterKiosk)
	r.PUT("/settings/:key", h.Update)
	return r, svc
}

func TestSettingsHandler_KioskStatus(t *testing.T) {
	r, svc := setupSettingsRouter(t)
	svc.EXPECT().KioskDeviceID(gomock.Any()).Return("fp-1", true, nil).Times(2)

	req := httptest.NewRequest(http.MethodGet, "/settings/kiosk", nil)
	req.Header.Set(settings.DeviceIDHeader, "fp-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"this_device":true`)

	req = httptest.NewRequest(http.MethodGet, "/settings/kiosk", nil)
	req.Header.Set(settings.DeviceIDHeader, "phone-7")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"this_device":false`)
}

func TestSettingsHandler_RegisterKiosk(t *testing.T) {
	r, svc := setupSettingsRouter(t)
	svc.EXPECT().RegisterKiosk(gomock.Any(), "admin-1", "fp-1").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/settings/kiosk", bytes.NewBufferString(`{"device_id":"fp-1"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"registered":true`)
}

func TestSettingsHandler_UpdateUnknownKey(t *testing.T) {
	r, svc := setupSettingsRouter(t)
	svc.EXPECT().Set(gomock.Any(), "admin-1", "theme", "dark").Return(settings.SettingResponse{}, settingserrors.ErrUnknownKey)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/settings/theme", bytes.NewBufferString(`{"value":"dark"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
