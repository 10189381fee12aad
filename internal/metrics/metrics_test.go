package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/event"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name    string
		summary domain.BattleSummary
		want    string
	}{
		{name: "red", summary: domain.BattleSummary{Winner: domain.SideRed}, want: OutcomeRed},
		{name: "blue", summary: domain.BattleSummary{Winner: domain.SideBlue}, want: OutcomeBlue},
		{name: "draw", summary: domain.BattleSummary{Draw: true}, want: OutcomeDraw},
		{name: "truncated wins over draw", summary: domain.BattleSummary{Draw: true, Truncated: true}, want: OutcomeTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.summary))
		})
	}
}

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	blueBefore := counterValue(t, BattlesCompleted.WithLabelValues(OutcomeBlue))
	damageBefore := counterValue(t, DamageDealt.WithLabelValues(string(domain.SideBlue)))
	secretBefore := counterValue(t, SecretsDiscovered.WithLabelValues("momentum"))

	summary := domain.BattleSummary{
		MatchID: "m-1",
		Winner:  domain.SideBlue,
		Turns:   7,
		Combatants: []domain.CombatantScore{
			{Side: domain.SideBlue, Name: "Eevee", DamageDealt: 120, Knockouts: 2},
			{Side: domain.SideRed, Name: "Abra", Fainted: true},
		},
	}
	require.NoError(t, bus.Publish(context.Background(), event.NewBattleCompletedEvent(summary)))
	require.NoError(t, bus.Publish(context.Background(), event.NewSecretDiscoveredEvent("m-1", domain.BattleEvent{TraitKey: "momentum"})))

	assert.Equal(t, blueBefore+1, counterValue(t, BattlesCompleted.WithLabelValues(OutcomeBlue)))
	assert.Equal(t, damageBefore+120, counterValue(t, DamageDealt.WithLabelValues(string(domain.SideBlue))))
	assert.Equal(t, secretBefore+1, counterValue(t, SecretsDiscovered.WithLabelValues("momentum")))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	before := counterValue(t, EventHandlerErrors.WithLabelValues(string(event.BattleCompleted)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.BattleCompleted,
		Payload: "not a summary",
	})
	require.NoError(t, err)
	assert.Equal(t, before+1, counterValue(t, EventHandlerErrors.WithLabelValues(string(event.BattleCompleted))))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/battles/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := counterValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/battles/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/battles/abc-123", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, counterValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/battles/{id}", "418")))
}

func TestMiddleware_UnmatchedPathsShareALabel(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {})

	before := counterValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404"))
	for _, p := range []string{"/wp-admin", "/.env"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	assert.Equal(t, before+2, counterValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404")))
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}
