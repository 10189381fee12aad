package handler

import (
	"context"
	"net/http"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/stats"
)

// SecretsService lists secret traits with undiscovered ones masked
type SecretsService interface {
	Secrets(ctx context.Context) ([]domain.SecretInfo, error)
}

// SecretsResponse lists every secret trait
type SecretsResponse struct {
	Secrets    []domain.SecretInfo `json:"secrets"`
	Discovered int                 `json:"discovered"`
	Total      int                 `json:"total"`
}

// LeaderboardResponse is the ranked creature leaderboard
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// MatchStatsResponse adds derived figures to the raw aggregates
type MatchStatsResponse struct {
	domain.MatchStats
	AverageTurns float64 `json:"average_turns"`
}

// HandleGetSecrets lists the secret traits
// @Summary List secret traits
// @Description Undiscovered traits are shown as ??? without a hint
// @Tags secrets
// @Produce json
// @Success 200 {object} SecretsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/secrets [get]
func HandleGetSecrets(svc SecretsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secrets, err := svc.Secrets(r.Context())
		if err != nil {
			respondServiceError(w, r, OpGetSecrets, err)
			return
		}

		resp := SecretsResponse{Secrets: secrets, Total: len(secrets)}
		for _, s := range secrets {
			if s.Discovered {
				resp.Discovered++
			}
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetLeaderboard returns the top creatures
// @Summary Creature leaderboard
// @Tags stats
// @Produce json
// @Param limit query int false "Number of entries (default 10, max 100)"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func HandleGetLeaderboard(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetIntQueryParam(r, w, "limit", stats.DefaultLeaderboardLimit)
		if !ok {
			return
		}

		entries, err := svc.GetLeaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, OpGetLeaderboard, err)
			return
		}
		if entries == nil {
			entries = []domain.LeaderboardEntry{}
		}
		respondJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
	}
}

// HandleGetMatchStats returns aggregate outcomes of every recorded battle
// @Summary Match statistics
// @Tags stats
// @Produce json
// @Success 200 {object} MatchStatsResponse
// @Router /api/v1/stats [get]
func HandleGetMatchStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ms, err := svc.GetMatchStats(r.Context())
		if err != nil {
			respondServiceError(w, r, OpGetMatchStats, err)
			return
		}
		respondJSON(w, http.StatusOK, MatchStatsResponse{MatchStats: *ms, AverageTurns: ms.AverageTurns()})
	}
}
