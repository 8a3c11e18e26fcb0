package sqlstore

import "context"

const acquireXactLock = `-- name: AcquireXactLock :exec
SELECT pg_advisory_xact_lock(hashtextextended($1, 0))
`

// AcquireXactLock blocks until the transaction-scoped advisory lock for key is held.
// It is released on commit or rollback.
func (q *Queries) AcquireXactLock(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, acquireXactLock, key)
	return err
}
