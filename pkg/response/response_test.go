package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "serviya/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestError_AppError(t *testing.T) {
	c, rec := newContext()

	err := fmt.Errorf("update status: %w", apperrors.InvalidTransition("cannot move hire from pending to completed", nil))
	require.NoError(t, Error(c, err))

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decode(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, apperrors.CodeInvalidTransition, body.Error.Code)
}

func TestError_Unknown(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, fmt.Errorf("boom")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apperrors.CodeInternal, decode(t, rec).Error.Code)
}

func TestError_Validation(t *testing.T) {
	type req struct {
		Rating int `validate:"min=1,max=5"`
	}
	err := validator.New().Struct(req{Rating: 9})
	require.Error(t, err)

	c, rec := newContext()
	require.NoError(t, Error(c, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "rating must be between 1 and 5", body.Error.Message)
}

func TestPaginated_TotalPages(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Paginated(c, []string{"a"}, 41, 1, 20))

	var body struct {
		Data PaginatedResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Data.TotalPages)
}
