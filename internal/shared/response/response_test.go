package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=2&page_size=2", nil)

	items, meta := response.Paginate(c, []int{1, 2, 3, 4, 5})
	assert.Equal(t, []int{3, 4}, items)
	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	c.Request = httptest.NewRequest(http.MethodGet, "/?page=9", nil)
	items, _ = response.Paginate(c, []int{1, 2})
	assert.Empty(t, items)
}

func TestAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	response.AppError(c, apperror.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	response.AppError(c2, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w2.Code)
	assert.Contains(t, w2.Body.String(), `"ok":false`)
}
