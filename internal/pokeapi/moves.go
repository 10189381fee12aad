package pokeapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/logger"
)

// MoveCandidate is a learnable move as reported by the provider.
// Power and Accuracy are nil when the provider reports null.
type MoveCandidate struct {
	Name        string
	Type        string
	Power       *int
	Accuracy    *int
	DamageClass string
}

// SelectMoves applies the move-set policy to already loaded candidates: only the
// first MoveScanLimit are considered, only damaging moves with a known power are
// kept, and collection stops at four. Short sets are padded by repeating the last
// move; an empty result becomes a single Tackle repeated.
func SelectMoves(candidates []MoveCandidate) []domain.Move {
	if len(candidates) > MoveScanLimit {
		candidates = candidates[:MoveScanLimit]
	}
	out := make([]domain.Move, 0, domain.MovesPerCombatant)
	for _, c := range candidates {
		if len(out) >= domain.MovesPerCombatant {
			break
		}
		if mv, ok := c.toMove(); ok {
			out = append(out, mv)
		}
	}
	return fillMoves(out)
}

func (c MoveCandidate) toMove() (domain.Move, bool) {
	if c.Power == nil {
		return domain.Move{}, false
	}
	category := domain.MoveCategory(c.DamageClass)
	if !category.IsDamaging() {
		return domain.Move{}, false
	}

	mv := domain.Move{
		Name:        c.Name,
		DisplayName: DisplayName(c.Name),
		Type:        c.Type,
		Power:       *c.Power,
		Accuracy:    defaultMoveAccuracy,
		Category:    category,
	}
	if mv.Type == "" {
		mv.Type = defaultMoveType
	}
	if mv.Power == 0 {
		mv.Power = defaultMovePower
	}
	if c.Accuracy != nil {
		mv.Accuracy = *c.Accuracy
	}
	return mv, true
}

func fillMoves(out []domain.Move) []domain.Move {
	if len(out) == 0 {
		out = append(out, domain.TackleMove)
	}
	for len(out) < domain.MovesPerCombatant {
		out = append(out, out[len(out)-1])
	}
	return out
}

func candidateFromAPI(m *apiMove) MoveCandidate {
	return MoveCandidate{
		Name:        m.Name,
		Type:        m.Type.Name,
		Power:       m.Power,
		Accuracy:    m.Accuracy,
		DamageClass: m.DamageClass.Name,
	}
}

// loadMoves walks a creature's move list, fetching details lazily so that at most
// MoveScanLimit move lookups happen and none after four damaging moves are found.
// Missing or undecodable moves are skipped; transient failures abort the load.
func (c *Client) loadMoves(ctx context.Context, entries []apiMoveEntry) ([]domain.Move, error) {
	log := logger.FromContext(ctx)

	if len(entries) > MoveScanLimit {
		entries = entries[:MoveScanLimit]
	}
	out := make([]domain.Move, 0, domain.MovesPerCombatant)
	for _, entry := range entries {
		if len(out) >= domain.MovesPerCombatant {
			break
		}
		detail, err := c.getMove(ctx, entry.Move)
		if err != nil {
			if domain.IsRetryable(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%s: %w", ErrContextLoadMoves, err)
			}
			log.Debug(LogMsgMoveSkipped, "move", entry.Move.Name, "error", err)
			continue
		}
		if mv, ok := candidateFromAPI(detail).toMove(); ok {
			out = append(out, mv)
		}
	}
	if len(out) == 0 {
		log.Debug(LogMsgFallbackTackle)
	}
	return fillMoves(out), nil
}
