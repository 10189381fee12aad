package handler

import (
	"context"
	"net/http"

	"github.com/osse101/battlesim/internal/domain"
)

// CreatureLister pages through the creature data provider
type CreatureLister interface {
	ListCreatures(ctx context.Context, limit, offset int) (*domain.CreaturePage, error)
}

// HandleListCreatures pages through the known creatures. The provider applies
// the default page size and its cap.
// @Summary List creatures
// @Tags dex
// @Produce json
// @Param limit query int false "Page size (default 200, max 1000)"
// @Param offset query int false "Offset"
// @Success 200 {object} domain.CreaturePage
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/dex [get]
func HandleListCreatures(dex CreatureLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetIntQueryParam(r, w, "limit", 0)
		if !ok {
			return
		}
		offset, ok := GetIntQueryParam(r, w, "offset", 0)
		if !ok {
			return
		}
		page, err := dex.ListCreatures(r.Context(), limit, offset)
		if err != nil {
			respondServiceError(w, r, OpListCreatures, err)
			return
		}
		respondJSON(w, http.StatusOK, page)
	}
}
