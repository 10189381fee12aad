package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

const healthProbeTimeout = 2 * time.Second

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandUnix atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandUnix.Store(time.Now().UnixNano())
}

func lastCommandTime() time.Time {
	n := lastCommandUnix.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// HealthChecker is what the health endpoint inspects
type HealthChecker interface {
	Connected() bool
	APIHealthy(ctx context.Context) bool
}

// APIHealthy reports whether the battle API answers its liveness probe
func (b *Bot) APIHealthy(ctx context.Context) bool {
	return b.Client != nil && b.Client.Healthy(ctx)
}

// HandleHealth returns the bot's health status
func HandleHealth(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		health := HealthStatus{
			Status:           "healthy",
			Uptime:           time.Since(startTime).Round(time.Second).String(),
			Connected:        checker.Connected(),
			CommandsReceived: commandCounter.Load(),
			LastCommandTime:  lastCommandTime(),
			APIReachable:     checker.APIHealthy(ctx),
		}

		w.Header().Set("Content-Type", "application/json")
		if !health.Connected || !health.APIReachable {
			health.Status = "degraded"
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(health)
	}
}
