package holiday_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"aakb-wms/internal/holiday"
	holidayerrors "aakb-wms/internal/holiday/errors"
	holidayMock "aakb-wms/internal/holiday/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupHolidayRouter(t *testing.T) (*gin.Engine, *holidayMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := holidayMock.NewMockService(gomock.NewController(t))
	h := holiday.NewHandler(svc)

	r := gin.New()
	r.GET("/holidays", h.List)
	r.GET("/holidays/calendar.ics", h.Calendar)
	r.POST("/holidays", h.Create)
	r.POST("/holidays/import", h.Import)
	r.PUT("/holidays/:id", h.Update)
	r.DELETE("/holidays/:id", h.Delete)
	return r, svc
}

func TestHolidayHandler(t *testing.T) {
	t.Run("create conflict", func(t *testing.T) {
		r, svc := setupHolidayRouter(t)
		svc.EXPECT().Create(gomock.Any(), holiday.HolidayRequest{Date: "2026-03-04", Name: "Holi"}).
			Return(holiday.HolidayResponse{}, holidayerrors.ErrHolidayExists)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/holidays", bytes.NewBufferString(`{"date":"2026-03-04","name":"Holi"}`)))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("create missing name", func(t *testing.T) {
		r, _ := setupHolidayRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/holidays", bytes.NewBufferString(`{"date":"2026-03-04"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list range", func(t *testing.T) {
		r, svc := setupHolidayRouter(t)
		svc.EXPECT().List(gomock.Any(), "2026-01-01", "2026-12-31").
			Return([]holiday.HolidayResponse{{Name: "Holi"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/holidays?from=2026-01-01&to=2026-12-31", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Holi")
	})

	t.Run("calendar feed", func(t *testing.T) {
		r, svc := setupHolidayRouter(t)
		svc.EXPECT().Calendar(gomock.Any()).Return("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/holidays/calendar.ics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
	})

	t.Run("import upload", func(t *testing.T) {
		r, svc := setupHolidayRouter(t)
		svc.EXPECT().Import(gomock.Any(), gomock.Any()).
			Return(holiday.ImportResult{Created: []holiday.HolidayResponse{{Name: "Holi"}}, Skipped: []string{}}, nil)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		fw, err := mw.CreateFormFile("file", "holidays.ics")
		require.NoError(t, err)
		_, _ = fw.Write([]byte(sampleCalendar))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/holidays/import", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("import without file", func(t *testing.T) {
		r, _ := setupHolidayRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/holidays/import", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		r, svc := setupHolidayRouter(t)
		svc.EXPECT().Delete(gomock.Any(), "h-1").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/holidays/h-1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
