package report_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"aakb-wms/internal/report"
	reporterrors "aakb-wms/internal/report/errors"
	reportMock "aakb-wms/internal/report/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupReportRouter(t *testing.T) (*gin.Engine, *reportMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := reportMock.NewMockService(gomock.NewController(t))
	h := report.NewHandler(svc)

	r := gin.New()
	r.GET("/reports/roster", h.Roster)
	r.GET("/reports/attendance.xlsx", h.ExportAttendance)
	return r, svc
}

func TestReportHandler(t *testing.T) {
	t.Run("roster", func(t *testing.T) {
		r, svc := setupReportRouter(t)
		svc.EXPECT().DailyRoster(gomock.Any(), "2026-03-02").
			Return(report.RosterResponse{Date: "2026-03-02", Summary: map[string]int{"total": 0}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/roster?date=2026-03-02", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"date":"2026-03-02"`)
	})

	t.Run("export download", func(t *testing.T) {
		r, svc := setupReportRouter(t)
		svc.EXPECT().ExportAttendance(gomock.Any(), "2026-03-01", "2026-03-31").
			Return(bytes.NewBufferString("PK"), "attendance_2026-03-01_2026-03-31.xlsx", nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/attendance.xlsx?from=2026-03-01&to=2026-03-31", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attendance_2026-03-01_2026-03-31.xlsx")
		assert.Equal(t, "PK", w.Body.String())
	})

	t.Run("export bad range", func(t *testing.T) {
		r, svc := setupReportRouter(t)
		svc.EXPECT().ExportAttendance(gomock.Any(), "", "").Return(nil, "", reporterrors.ErrInvalidDate)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/attendance.xlsx", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
