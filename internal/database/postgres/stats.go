package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/repository"
)

// StatsRepository implements the stats repository for PostgreSQL
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(pool *pgxpool.Pool) repository.Stats {
	return &StatsRepository{pool: pool}
}

const insertBattleSQL = `
INSERT INTO battle_results (match_id, winner, draw, truncated, turns)
VALUES ($1, NULLIF($2, ''), $3, $4, $5)
ON CONFLICT (match_id) DO NOTHING`

const upsertCreatureSQL = `
INSERT INTO creature_records (name, battles, wins, knockouts, damage_dealt, faints)
VALUES ($1, 1, $2, $3, $4, $5)
ON CONFLICT (name) DO UPDATE SET
    battles      = creature_records.battles + 1,
    wins         = creature_records.wins + EXCLUDED.wins,
    knockouts    = creature_records.knockouts + EXCLUDED.knockouts,
    damage_dealt = creature_records.damage_dealt + EXCLUDED.damage_dealt,
    faints       = creature_records.faints + EXCLUDED.faints`

// RecordBattle inserts the result row and folds every combatant into its record
// in one transaction. A match ID that was already recorded is skipped.
func (r *StatsRepository) RecordBattle(ctx context.Context, summary domain.BattleSummary) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, insertBattleSQL,
			summary.MatchID, string(summary.Winner), summary.Draw, summary.Truncated, summary.Turns)
		if err != nil {
			return dbError(ErrMsgFailedToInsertBattle, err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, c := range summary.Combatants {
			batch.Queue(upsertCreatureSQL, c.Name, boolToInt(summary.Won(c.Side)), c.Knockouts, c.DamageDealt, boolToInt(c.Fainted))
		}
		br := tx.SendBatch(ctx, batch)
		defer br.Close()
		for range summary.Combatants {
			if _, err := br.Exec(); err != nil {
				return dbError(ErrMsgFailedToUpsertCreature, err)
			}
		}
		if err := br.Close(); err != nil {
			return dbError(ErrMsgFailedToUpsertCreature, err)
		}
		return nil
	})
}

// GetMatchStats aggregates every recorded battle
func (r *StatsRepository) GetMatchStats(ctx context.Context) (*domain.MatchStats, error) {
	var s domain.MatchStats
	err := r.pool.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE winner = 'red' AND NOT draw AND NOT truncated),
			count(*) FILTER (WHERE winner = 'blue' AND NOT draw AND NOT truncated),
			count(*) FILTER (WHERE draw AND NOT truncated),
			count(*) FILTER (WHERE truncated),
			COALESCE(sum(turns), 0),
			COALESCE(max(recorded_at), now())
		FROM battle_results`,
	).Scan(&s.Battles, &s.RedWins, &s.BlueWins, &s.Draws, &s.Truncated, &s.Turns, &s.UpdatedAt)
	if err != nil {
		return nil, dbError(ErrMsgFailedToGetMatchStats, err)
	}
	return &s, nil
}

// GetTopCreatures returns the highest ranked creature records
func (r *StatsRepository) GetTopCreatures(ctx context.Context, limit int) ([]domain.CreatureRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, battles, wins, knockouts, damage_dealt, faints
		FROM creature_records
		ORDER BY knockouts DESC, wins DESC, damage_dealt DESC, name ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, dbError(ErrMsgFailedToGetTopCreatures, err)
	}
	defer rows.Close()

	records := []domain.CreatureRecord{}
	for rows.Next() {
		var rec domain.CreatureRecord
		if err := rows.Scan(&rec.Name, &rec.Battles, &rec.Wins, &rec.Knockouts, &rec.DamageDealt, &rec.Faints); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanCreatureRows, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(ErrMsgFailedToGetTopCreatures, err)
	}
	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
