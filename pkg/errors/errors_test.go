package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesWrappedCode(t *testing.T) {
	base := NotFound("Service", nil)
	wrapped := fmt.Errorf("run transaction: %w", base)

	assert.True(t, Is(wrapped, CodeNotFound))
	assert.False(t, Is(wrapped, CodeConflict))
	assert.False(t, Is(stderrors.New("plain"), CodeNotFound))
}

func TestConstructors_Status(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
		code   string
	}{
		{NotFound("Hire", nil), http.StatusNotFound, CodeNotFound},
		{BadRequest("bad", nil), http.StatusBadRequest, CodeBadRequest},
		{Forbidden("no", nil), http.StatusForbidden, CodeForbidden},
		{Conflict("dup"), http.StatusConflict, CodeConflict},
		{InvalidTransition("pending -> completed", nil), http.StatusConflict, CodeInvalidTransition},
		{TooManyRequests("slow down"), http.StatusTooManyRequests, CodeTooManyRequests},
		{Upstream("ai", nil), http.StatusBadGateway, CodeUpstream},
		{Internal("db", nil), http.StatusInternalServerError, CodeInternal},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, c.err.Status, c.code)
		assert.Equal(t, c.code, c.err.Code)
	}
}

func TestAppError_UnwrapAndMessage(t *testing.T) {
	cause := stderrors.New("deadline exceeded")
	err := Internal("Failed to commit batch", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "deadline exceeded")

	appErr, ok := As(fmt.Errorf("outer: %w", err))
	assert.True(t, ok)
	assert.Equal(t, "Failed to commit batch", appErr.Message)
}
