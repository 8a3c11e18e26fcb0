package commands

import (
	"context"
	"encoding/json"
	"time"

	"travel-booking/internal/usecase/shared"
)

func enqueue(ctx context.Context, tx shared.Tx, topic string, ev shared.NotificationEvent, now time.Time) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindEmail, topic, payload, now)
}
