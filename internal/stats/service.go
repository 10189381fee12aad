package stats

import (
	"context"
	"fmt"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/repository"
)

// Service defines the interface for battle statistics
type Service interface {
	RecordBattle(ctx context.Context, summary domain.BattleSummary) error
	GetMatchStats(ctx context.Context) (*domain.MatchStats, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// service implements the Service interface
type service struct {
	repo repository.Stats
}

// NewService creates a new stats service
func NewService(repo repository.Stats) Service {
	return &service{
		repo: repo,
	}
}

// RecordBattle stores a finished battle's outcome and per-creature tallies
func (s *service) RecordBattle(ctx context.Context, summary domain.BattleSummary) error {
	log := logger.FromContext(ctx)

	if summary.MatchID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMatchIDRequired)
	}

	if err := s.repo.RecordBattle(ctx, summary); err != nil {
		log.Error(LogMsgFailedToRecordBattle, "error", err, "match_id", summary.MatchID)
		return fmt.Errorf(ErrMsgRecordBattleFailed, err)
	}

	log.Debug(LogMsgBattleRecorded, "match_id", summary.MatchID, "turns", summary.Turns, "winner", summary.Winner, "draw", summary.Draw)
	return nil
}

// GetMatchStats returns the aggregate over every recorded battle
func (s *service) GetMatchStats(ctx context.Context) (*domain.MatchStats, error) {
	stats, err := s.repo.GetMatchStats(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetMatchStatsFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgRetrievedMatchStats, "battles", stats.Battles)
	return stats, nil
}

// GetLeaderboard returns ranked creature records. limit defaults to
// DefaultLeaderboardLimit and is capped at MaxLeaderboardLimit.
func (s *service) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	records, err := s.repo.GetTopCreatures(ctx, limit)
	if err != nil {
		log.Error(LogMsgFailedToGetLeaderboard, "error", err)
		return nil, fmt.Errorf(ErrMsgGetLeaderboardFailed, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(records))
	for i, rec := range records {
		entries = append(entries, domain.LeaderboardEntry{Rank: i + 1, CreatureRecord: rec})
	}

	log.Debug(LogMsgRetrievedLeaderboard, "count", len(entries))
	return entries, nil
}
