package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code int
		want string
	}{
		{http.StatusOK, StatusSuccess},
		{http.StatusBadRequest, StatusFailed},
		{http.StatusConflict, StatusFailed},
		{http.StatusInternalServerError, StatusError},
		{http.StatusNotFound, StatusSuccess},
		{http.StatusServiceUnavailable, StatusSuccess},
	}

	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, Status(tt.code), "code %d", tt.code)
	}
}

func TestWrite_SuccessWithData(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	OK(rec, map[string]string{"name": "Gold"})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, map[string]any{"name": "Gold"}, body["data"])
	assert.NotContains(t, body, "message")
}

func TestWrite_SuccessWithoutData(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	OK(rec, nil)

	body := decode(t, rec)
	assert.Equal(t, map[string]any{"status": "success"}, body)
}

func TestWrite_EmptyListIsKept(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	OK(rec, []string{})

	body := decode(t, rec)
	assert.Equal(t, []any{}, body["data"])
}

func TestWrite_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		code       int
		message    string
		wantStatus string
	}{
		{"validation", http.StatusBadRequest, MessageInvalidFields, "failed"},
		{"conflict", http.StatusConflict, MessageDuplicate, "failed"},
		{"server", http.StatusInternalServerError, MessageServerError, "error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			Fail(rec, tt.code, tt.message)

			assert.Equal(t, tt.code, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantStatus, body["status"])
			assert.Equal(t, tt.message, body["message"])
			assert.NotContains(t, body, "data")
		})
	}
}

func TestWrite_NotFoundHasNullMessage(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Write(rec, http.StatusNotFound, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "success", body["status"])
	require.Contains(t, body, "message")
	assert.Nil(t, body["message"])
}

func TestWrite_Headers(t *testing.T) {
	t.Parallel()

	for _, code := range []int{http.StatusOK, http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		rec := httptest.NewRecorder()
		Write(rec, code, nil)

		h := rec.Header()
		assert.Equal(t, "application/json", h.Get("Content-Type"))
		assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "PATCH, POST, GET,OPTIONS,DELETE", h.Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type, Authorization, Content-Length, X-Requested-With", h.Get("Access-Control-Allow-Headers"))
	}
}
