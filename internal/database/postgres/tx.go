package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/logger"
)

// inTx runs fn inside a transaction and commits when it returns nil. Errors
// from fn are returned unchanged.
func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return dbError(ErrMsgFailedToBeginTransaction, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return dbError(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// dbError tags a driver error with domain.ErrDatabaseError and the failed operation
func dbError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, op, err)
}
