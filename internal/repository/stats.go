package repository

import (
	"context"

	"github.com/osse101/battlesim/internal/domain"
)

// Stats defines the interface for battle outcome persistence
type Stats interface {
	// RecordBattle stores a finished battle and folds it into the aggregates.
	// Recording the same match ID twice is a no-op.
	RecordBattle(ctx context.Context, summary domain.BattleSummary) error
	GetMatchStats(ctx context.Context) (*domain.MatchStats, error)
	// GetTopCreatures returns records ordered by knockouts, then wins, then damage dealt.
	GetTopCreatures(ctx context.Context, limit int) ([]domain.CreatureRecord, error)
}
