package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHealthAndLive(t *testing.T) {
	s := NewServer(Config{ServiceName: "fight-predictor", Version: "test"})

	rec, body := get(t, s.Handler(), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])

	rec, body = get(t, s.Handler(), "/live")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fight-predictor", body["service"])
}

func TestReady(t *testing.T) {
	s := NewServer(Config{ServiceName: "fight-predictor"})
	storageErr := errors.New("connection refused")
	var storageDown bool
	s.AddCheck("storage", func(context.Context) error {
		if storageDown {
			return storageErr
		}
		return nil
	})

	rec, body := get(t, s.Handler(), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not_ready", body["status"])

	s.SetReady(true)
	rec, body = get(t, s.Handler(), "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "ok", checks["storage"])

	storageDown = true
	rec, body = get(t, s.Handler(), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	checks = body["checks"].(map[string]interface{})
	assert.Contains(t, checks["storage"], "connection refused")
}
