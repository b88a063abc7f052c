package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/limbo/studyos/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusNotFound, "task not found", errors.New("details"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"task not found","details":"details"}`, rr.Body.String())
}

func TestWriteJSONResponseWithoutBody(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteJSONResponse(rr, http.StatusNoContent, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}
	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"read"}`))
		var p payload
		require.NoError(t, httputil.DecodeJSON(req, &p))
		assert.Equal(t, "read", p.Title)
	})
	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		var p payload
		assert.ErrorIs(t, httputil.DecodeJSON(req, &p), httputil.ErrEmptyBody)
	})
	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
		var p payload
		assert.Error(t, httputil.DecodeJSON(req, &p))
	})
}
