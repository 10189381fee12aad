package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/battlesim/internal/logger"
)

const readinessTimeout = 2 * time.Second

// Storage backends reported by the readiness probe
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// HealthResponse is the body of the liveness and readiness probes
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
	Message string `json:"message,omitempty"`
}

// Pinger gates readiness on a backing store, normally the pgx pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz reports that the process is serving and for how long
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	started := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{
			Status: "ok",
			Uptime: time.Since(started).Round(time.Second).String(),
		})
	}
}

// HandleReadyz pings the store behind discoveries and stats. With a nil
// pinger everything lives in memory and the service is always ready.
// @Summary Readiness check
// @Description Returns 503 while the database is unreachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Storage: StorageMemory})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Storage: StoragePostgres,
				Message: "database connection failed",
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Storage: StoragePostgres})
	}
}
