package repository

import (
	"context"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/sqlstore"
)

type LockQueries interface {
	AcquireXactLock(ctx context.Context, db sqlstore.DBTX, key string) error
}

// AdvisoryLocker maps an admission bucket key onto a transaction-scoped PostgreSQL advisory lock.
type AdvisoryLocker struct {
	queries LockQueries
}

func NewAdvisoryLocker(queries LockQueries) *AdvisoryLocker {
	return &AdvisoryLocker{queries: queries}
}

func (l *AdvisoryLocker) Acquire(ctx context.Context, tx sqlstore.DBTX, key string) error {
	if err := l.queries.AcquireXactLock(ctx, tx, key); err != nil {
		return infra.WrapRepoErr("failed to acquire admission lock "+key, err)
	}
	return nil
}
