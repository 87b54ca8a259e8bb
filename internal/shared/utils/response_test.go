package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/socialdash/internal/shared/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
		wantMsg  string
	}{
		{"not found", errors.NewNotFoundError("post not found"), http.StatusNotFound, "not_found", "post not found"},
		{"validation", errors.NewValidationError("Validation failed", "content is required"), http.StatusBadRequest, "validation_error", "Validation failed"},
		{"plain error is hidden", assert.AnError, http.StatusInternalServerError, "internal_error", "Internal server error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()
			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
		})
	}
}

func TestErrorResponseDerivesType(t *testing.T) {
	tests := []struct {
		code     int
		wantType string
	}{
		{http.StatusBadRequest, "bad_request"},
		{http.StatusNotFound, "not_found"},
		{http.StatusTooManyRequests, "rate_limited"},
		{http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			c, w := newContext()
			ErrorResponse(c, tt.code, "nope")

			assert.Equal(t, tt.code, w.Code)
			resp := decode(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
			assert.Equal(t, "nope", resp.Error.Message)
		})
	}
}

func TestSuccessResponses(t *testing.T) {
	c, w := newContext()
	OKResponse(c, map[string]int{"n": 1})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Success)

	c, w = newContext()
	MessageResponse(c, "Settings saved successfully", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Settings saved successfully", decode(t, w).Message)

	c, w = newContext()
	CreatedResponse(c, nil, "Post created successfully")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Post created successfully", decode(t, w).Message)
}

func TestBindJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	c, w := newContext()
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"drafts"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	require.NoError(t, BindJSON(c, &dst))
	assert.Equal(t, "drafts", dst.Name)
	assert.False(t, c.Writer.Written())

	c, w = newContext()
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	c.Request.Header.Set("Content-Type", "application/json")
	assert.Error(t, BindJSON(c, &dst))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", decode(t, w).Error.Message)
}
