package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	connected bool
	api       bool
}

func (f fakeChecker) Connected() bool {
	return f.connected
}

func (f fakeChecker) APIHealthy(context.Context) bool {
	return f.api
}

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name       string
		checker    fakeChecker
		wantStatus int
		wantState  string
	}{
		{name: "healthy", checker: fakeChecker{connected: true, api: true}, wantStatus: http.StatusOK, wantState: "healthy"},
		{name: "gateway down", checker: fakeChecker{api: true}, wantStatus: http.StatusServiceUnavailable, wantState: "degraded"},
		{name: "api down", checker: fakeChecker{connected: true}, wantStatus: http.StatusServiceUnavailable, wantState: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleHealth(tt.checker)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var status HealthStatus
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
			assert.Equal(t, tt.wantState, status.Status)
			assert.Equal(t, tt.checker.connected, status.Connected)
			assert.Equal(t, tt.checker.api, status.APIReachable)
		})
	}
}

func TestRecordCommand(t *testing.T) {
	before := commandCounter.Load()
	RecordCommand()
	RecordCommand()

	assert.Equal(t, before+2, commandCounter.Load())
	assert.False(t, lastCommandTime().IsZero())
}

func TestRouter(t *testing.T) {
	r := newRouter(fakeChecker{connected: true, api: true})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
