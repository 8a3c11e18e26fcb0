package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `-- name: CreateNotificationJob :exec
INSERT INTO notification_jobs (kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4)
`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt)
	return err
}

const claimDueNotificationJobs = `-- name: ClaimDueNotificationJobs :many
UPDATE notification_jobs
SET status = 'running', attempts = attempts + 1, updated_at = $1
WHERE id IN (
	SELECT id FROM notification_jobs
	WHERE (status = 'queued' AND run_at <= $1)
		OR (status = 'running' AND updated_at < $3)
	ORDER BY run_at
	LIMIT $2
	FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at
`

type ClaimDueNotificationJobsParams struct {
	Now         pgtype.Timestamptz
	Limit       int32
	StaleBefore pgtype.Timestamptz
}

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.Now, arg.Limit, arg.StaleBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NotificationJobs
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.Payload,
			&i.RunAt,
			&i.Attempts,
			&i.Status,
			&i.LastError,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const finishNotificationJob = `-- name: FinishNotificationJob :exec
UPDATE notification_jobs
SET status = $2, run_at = $3, last_error = $4, updated_at = $5
WHERE id = $1
`

type FinishNotificationJobParams struct {
	ID        uuid.UUID
	Status    string
	RunAt     pgtype.Timestamptz
	LastError pgtype.Text
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) FinishNotificationJob(ctx context.Context, db DBTX, arg FinishNotificationJobParams) error {
	_, err := db.Exec(ctx, finishNotificationJob, arg.ID, arg.Status, arg.RunAt, arg.LastError, arg.UpdatedAt)
	return err
}
