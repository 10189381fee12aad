package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/match"
)

type stubMatches struct {
	advanced []string
}

func (s *stubMatches) Start(_ context.Context, _, _ match.TeamSpec, _ *uint64) (*domain.MatchState, error) {
	return &domain.MatchState{ID: "new"}, nil
}

func (s *stubMatches) Get(_ context.Context, id string) (*domain.MatchState, error) {
	return &domain.MatchState{ID: id}, nil
}

func (s *stubMatches) Advance(_ context.Context, id string) (*domain.MatchState, error) {
	s.advanced = append(s.advanced, id)
	return &domain.MatchState{ID: id, Turn: 1}, nil
}

func (s *stubMatches) Simulate(context.Context, match.TeamSpec, match.TeamSpec, match.SimulateOptions) (*domain.SimulationResult, error) {
	return &domain.SimulationResult{}, nil
}

func (s *stubMatches) SimulateBatch(context.Context, match.TeamSpec, match.TeamSpec, int, *uint64) (*domain.BatchResult, error) {
	return &domain.BatchResult{}, nil
}

func TestRouter_BattleRoutes(t *testing.T) {
	matches := &stubMatches{}
	router := NewRouter(Config{APIKey: "k"}, Services{Matches: matches})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/battles/abc/turn", nil)
	req.Header.Set(HeaderAPIKey, "k")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"abc"}, matches.advanced)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := NewRouter(Config{APIKey: "k"}, Services{Matches: &stubMatches{}})

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/battles/abc", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoggingMiddleware_PropagatesRequestID(t *testing.T) {
	var seen string
	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dex", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/secrets", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, RedactedValue)
}

func TestLoggingMiddleware_SkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Empty(t, buf.String())
}
