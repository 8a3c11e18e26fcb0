package repository

import (
	"context"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/pkg/pgconv"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlstore.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlstore.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlstore.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlstore.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
