package profile_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aakb-wms/internal/middleware"
	"aakb-wms/internal/profile"
	profileerrors "aakb-wms/internal/profile/errors"
	profileMock "aakb-wms/internal/profile/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupProfileRouter(t *testing.T) (*gin.Engine, *profileMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := profileMock.NewMockService(ctrl)
	h := profile.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextProfileID, "actor-1")
		c.Next()
	})
	r.POST("/profiles/invite", h.Invite)
	r.GET("/profiles", h.GetAll)
	r.GET("/profiles/:id", h.GetByID)
	r.DELETE("/profiles/:id", h.Delete)
	return r, svc
}

func TestProfileHandler_Invite(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := setupProfileRouter(t)
		req := profile.InviteProfileRequest{
			FullName: "Ravi",
			Email:    "ravi@aakb.org",
			Role:     "worker",
			Password: "secret123",
		}
		svc.EXPECT().Invite(gomock.Any(), req).Return(profile.ProfileResponse{ID: "p-1", Email: req.Email}, nil)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/profiles/invite", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
		assert.Equal(t, "p-1", res["data"].(map[string]any)["id"])
	})

	t.Run("validation failure", func(t *testing.T) {
		r, _ := setupProfileRouter(t)
		body := []byte(`{"full_name":"Ravi","email":"not-an-email","role":"worker","password":"secret123"}`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/profiles/invite", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		r, svc := setupProfileRouter(t)
		svc.EXPECT().Invite(gomock.Any(), gomock.Any()).Return(profile.ProfileResponse{}, profileerrors.ErrEmailTaken)

		body := []byte(`{"full_name":"Ravi","email":"ravi@aakb.org","role":"worker","password":"secret123"}`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/profiles/invite", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestProfileHandler_GetAll(t *testing.T) {
	r, svc := setupProfileRouter(t)
	svc.EXPECT().
		GetAll(gomock.Any(), profile.ListFilter{Role: "worker", ActiveOnly: true}).
		Return([]profile.ProfileResponse{
			{ID: "1", FullName: "Ravi Kumar", Email: "ravi@aakb.org"},
			{ID: "2", FullName: "Asha", Email: "asha@aakb.org"},
		}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profiles?role=worker&active=true&q=ravi", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Data []profile.ProfileResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Data, 1)
	assert.Equal(t, "1", res.Data[0].ID)
}

func TestProfileHandler_Delete(t *testing.T) {
	r, svc := setupProfileRouter(t)
	svc.EXPECT().Delete(gomock.Any(), "actor-1", "actor-1").Return(profileerrors.ErrCannotDeleteSelf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/profiles/actor-1", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}
