package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPinger mocks the readiness dependency
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeHealth(t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "0s", resp.Uptime)
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		memory      bool
		wantCode    int
		wantStatus  string
		wantStorage string
	}{
		{name: "postgres reachable", wantCode: http.StatusOK, wantStatus: "ok", wantStorage: StoragePostgres},
		{name: "postgres down", pingErr: assert.AnError, wantCode: http.StatusServiceUnavailable, wantStatus: "unavailable", wantStorage: StoragePostgres},
		{name: "memory storage", memory: true, wantCode: http.StatusOK, wantStatus: "ok", wantStorage: StorageMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var db Pinger
			if !tt.memory {
				m := &MockPinger{}
				m.On("Ping", mock.Anything).Return(tt.pingErr)
				defer m.AssertExpectations(t)
				db = m
			}

			w := httptest.NewRecorder()
			HandleReadyz(db).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decodeHealth(t, w)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantStorage, resp.Storage)
		})
	}
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("1.4.0").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.4.0", info.Version)
	assert.NotEmpty(t, info.GoVersion)

	assert.Equal(t, "dev", buildVersion("").Version)
}
