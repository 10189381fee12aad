package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/match"
)

// MatchService is the slice of the match service the HTTP layer drives
type MatchService interface {
	Start(ctx context.Context, red, blue match.TeamSpec, seed *uint64) (*domain.MatchState, error)
	Get(ctx context.Context, id string) (*domain.MatchState, error)
	Advance(ctx context.Context, id string) (*domain.MatchState, error)
	Simulate(ctx context.Context, red, blue match.TeamSpec, opts match.SimulateOptions) (*domain.SimulationResult, error)
	SimulateBatch(ctx context.Context, red, blue match.TeamSpec, n int, seed *uint64) (*domain.BatchResult, error)
}

// TeamRequest names creatures by dex name or id and/or asks for random picks
type TeamRequest struct {
	Creatures []string `json:"creatures,omitempty" validate:"max=6,dive,required,creature"`
	Random    int      `json:"random,omitempty" validate:"min=0,max=6"`
	Level     int      `json:"level,omitempty" validate:"omitempty,min=1,max=100"`
}

func (t TeamRequest) spec() match.TeamSpec {
	return match.TeamSpec{Creatures: t.Creatures, Random: t.Random, Level: t.Level}
}

// StartBattleRequest starts an interactive battle
type StartBattleRequest struct {
	Red  TeamRequest `json:"red"`
	Blue TeamRequest `json:"blue"`
	Seed *uint64     `json:"seed,omitempty"`
}

// SimulateRequest plays one battle, or Runs battles when Runs > 1
type SimulateRequest struct {
	Red     TeamRequest `json:"red"`
	Blue    TeamRequest `json:"blue"`
	Seed    *uint64     `json:"seed,omitempty"`
	Runs    int         `json:"runs,omitempty" validate:"omitempty,min=1,max=1000"`
	Narrate bool        `json:"narrate,omitempty"`
}

// SimulateResponse carries exactly one of Result or Batch
type SimulateResponse struct {
	Result *domain.SimulationResult `json:"result,omitempty"`
	Batch  *domain.BatchResult      `json:"batch,omitempty"`
}

// BattleHandler serves the battle endpoints
type BattleHandler struct {
	service MatchService
}

// NewBattleHandler creates a new BattleHandler
func NewBattleHandler(service MatchService) *BattleHandler {
	return &BattleHandler{service: service}
}

// HandleStart starts a battle and returns its opening state
// @Summary Start a battle
// @Description Assembles both teams and returns the match with its intro events
// @Tags battles
// @Accept json
// @Produce json
// @Param request body StartBattleRequest true "Teams"
// @Success 201 {object} domain.MatchState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/battles [post]
func (h *BattleHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req StartBattleRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpStartBattle); err != nil {
		return
	}

	state, err := h.service.Start(r.Context(), req.Red.spec(), req.Blue.spec(), req.Seed)
	if err != nil {
		respondServiceError(w, r, OpStartBattle, err)
		return
	}
	respondJSON(w, http.StatusCreated, state)
}

// HandleGet returns the current state of a battle
// @Summary Get a battle
// @Tags battles
// @Produce json
// @Param id path string true "Battle ID"
// @Success 200 {object} domain.MatchState
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/battles/{id} [get]
func (h *BattleHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := battleID(w, r)
	if !ok {
		return
	}

	state, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetBattle, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleTurn plays one turn
// @Summary Play a turn
// @Description Both sides act by AI; returns the turn's events and the new state
// @Tags battles
// @Produce json
// @Param id path string true "Battle ID"
// @Success 200 {object} domain.MatchState
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/battles/{id}/turn [post]
func (h *BattleHandler) HandleTurn(w http.ResponseWriter, r *http.Request) {
	id, ok := battleID(w, r)
	if !ok {
		return
	}

	state, err := h.service.Advance(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpAdvanceBattle, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleSimulate plays battles to completion without storing them
// @Summary Simulate battles
// @Description Runs one narrated battle, or a batch of runs with aggregate win rates
// @Tags battles
// @Accept json
// @Produce json
// @Param request body SimulateRequest true "Matchup"
// @Success 200 {object} SimulateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/battles/simulate [post]
func (h *BattleHandler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSimulate); err != nil {
		return
	}

	if req.Runs > 1 {
		batch, err := h.service.SimulateBatch(r.Context(), req.Red.spec(), req.Blue.spec(), req.Runs, req.Seed)
		if err != nil {
			respondServiceError(w, r, OpSimulate, err)
			return
		}
		respondJSON(w, http.StatusOK, SimulateResponse{Batch: batch})
		return
	}

	result, err := h.service.Simulate(r.Context(), req.Red.spec(), req.Blue.spec(), match.SimulateOptions{
		Seed:       req.Seed,
		Narrate:    req.Narrate,
		KeepEvents: !req.Narrate,
	})
	if err != nil {
		respondServiceError(w, r, OpSimulate, err)
		return
	}
	respondJSON(w, http.StatusOK, SimulateResponse{Result: result})
}

func battleID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, "id"))
		return "", false
	}
	return id, true
}
