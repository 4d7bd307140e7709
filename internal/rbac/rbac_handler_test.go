package rbac_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aakb-wms/internal/domain"
	"aakb-wms/internal/middleware"
	"aakb-wms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRBACRouter(t *testing.T, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := rbac.NewHandler(newService(t))
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextRole, role)
		c.Next()
	})
	r.GET("/rbac/permissions", h.Permissions)
	r.POST("/rbac/enforce", h.Enforce)
	return r
}

func TestHandler_Enforce(t *testing.T) {
	t.Run("worker cannot approve", func(t *testing.T) {
		r := setupRBACRouter(t, domain.RoleWorker)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rbac/enforce",
			bytes.NewBufferString(`{"resource":"attendance","action":"approve"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":false`)
	})

	t.Run("swamiji can approve", func(t *testing.T) {
		r := setupRBACRouter(t, domain.RoleSwamiji)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rbac/enforce",
			bytes.NewBufferString(`{"resource":"attendance","action":"approve"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("missing action", func(t *testing.T) {
		r := setupRBACRouter(t, domain.RoleWorker)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"attendance"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Permissions(t *testing.T) {
	r := setupRBACRouter(t, domain.RoleManager)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data rbac.PermissionsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, domain.RoleManager, res.Data.Role)
	assert.Contains(t, res.Data.Permissions, rbac.Permission{Resource: "task", Action: "assign"})
	assert.Contains(t, res.Data.Permissions, rbac.Permission{Resource: "attendance", Action: "self"})
	assert.NotContains(t, res.Data.Permissions, rbac.Permission{Resource: "attendance", Action: "approve"})
}
