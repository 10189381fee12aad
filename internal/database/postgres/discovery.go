package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/battlesim/internal/repository"
)

// DiscoveryRepository stores revealed secret traits in PostgreSQL
type DiscoveryRepository struct {
	pool *pgxpool.Pool
}

// NewDiscoveryRepository creates a new DiscoveryRepository
func NewDiscoveryRepository(pool *pgxpool.Pool) repository.Discovery {
	return &DiscoveryRepository{pool: pool}
}

// HasDiscovered reports whether the trait has ever been revealed
func (r *DiscoveryRepository) HasDiscovered(ctx context.Context, key string) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM secret_discoveries WHERE trait_key = $1)`, key,
	).Scan(&found)
	if err != nil {
		return false, dbError(ErrMsgFailedToCheckDiscovery, err)
	}
	return found, nil
}

// MarkDiscovered records the trait as revealed. Marking twice keeps the first timestamp.
func (r *DiscoveryRepository) MarkDiscovered(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO secret_discoveries (trait_key) VALUES ($1) ON CONFLICT (trait_key) DO NOTHING`, key,
	)
	if err != nil {
		return dbError(ErrMsgFailedToMarkDiscovery, err)
	}
	return nil
}

// ListDiscovered returns every revealed trait key in sorted order
func (r *DiscoveryRepository) ListDiscovered(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT trait_key FROM secret_discoveries ORDER BY trait_key`)
	if err != nil {
		return nil, dbError(ErrMsgFailedToListDiscovery, err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, dbError(ErrMsgFailedToListDiscovery, err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(ErrMsgFailedToListDiscovery, err)
	}
	return keys, nil
}
