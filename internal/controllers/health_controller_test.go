package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_ReturnsOK(t *testing.T) {
	env := newTestEnv()
	hc := NewHealthController(env.service)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
	assert.Contains(t, resp, "uptime_seconds")
	assert.Equal(t, "connect_wallet", resp["stage"])
	assert.Equal(t, false, resp["connected"])
}

func TestHealth_ReflectsConnection(t *testing.T) {
	env := newTestEnv()
	hc := NewHealthController(env.service)
	_, err := env.service.Connect()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "create_profile_name", resp["stage"])
	assert.Equal(t, true, resp["connected"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc := NewHealthController(newTestEnv().service)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0h0m0s"},
		{"one minute", 60 * time.Second, "0h1m0s"},
		{"one hour", time.Hour, "1h0m0s"},
		{"mixed", time.Hour + time.Minute + time.Second, "1h1m1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}
