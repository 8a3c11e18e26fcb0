package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/infra/readstore"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	jobStatusQueued = "queued"
	jobStatusSent   = "sent"
	jobStatusFailed = "failed"
)

type DispatchQueries interface {
	ClaimDueNotificationJobs(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ClaimDueNotificationJobsParams) ([]sqlstore.NotificationJobs, error)
	FinishNotificationJob(ctx context.Context, db sqlstore.DBTX, arg sqlstore.FinishNotificationJobParams) error
	GetUser(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Users, error)
}

// Dispatcher drains due notification jobs. Claiming flips jobs to running in its own
// transaction, so concurrent workers never deliver the same job twice. A job left running
// past the lease by a crashed worker is claimed again.
type Dispatcher struct {
	pool     *pgxpool.Pool
	db       sqlstore.DBTX
	queries  DispatchQueries
	users    *readstore.UserReadStore
	notifier Notifier
	clock    clock.Clock
	cfg      config.NotifyConfig
}

func NewDispatcher(pool *pgxpool.Pool, queries *sqlstore.Queries, notifier Notifier, clk clock.Clock, cfg config.Config) *Dispatcher {
	return newDispatcher(pool, pool, queries, notifier, clk, cfg.Notify)
}

func newDispatcher(pool *pgxpool.Pool, dbtx sqlstore.DBTX, queries DispatchQueries, notifier Notifier, clk clock.Clock, cfg config.NotifyConfig) *Dispatcher {
	return &Dispatcher{
		pool:     pool,
		db:       dbtx,
		queries:  queries,
		users:    readstore.NewUserReadStore(queries, dbtx),
		notifier: notifier,
		clock:    clk,
		cfg:      cfg,
	}
}

// RunOnce claims one batch and delivers it. It returns the number of jobs sent.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	jobs, err := db.WithDefaultRetry(ctx, d.pool, func(tx sqlstore.DBTX) ([]sqlstore.NotificationJobs, error) {
		return d.queries.ClaimDueNotificationJobs(ctx, tx, d.claimParams())
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	sent := 0
	for _, job := range jobs {
		if d.deliver(ctx, job) {
			sent++
		}
	}
	if len(jobs) > 0 {
		slog.Info("notification batch processed", "claimed", len(jobs), "sent", sent)
	}
	return sent, nil
}

func (d *Dispatcher) claimParams() sqlstore.ClaimDueNotificationJobsParams {
	now := d.clock.Now()
	return sqlstore.ClaimDueNotificationJobsParams{
		Now:         pgconv.TimeToPgtype(now),
		Limit:       d.cfg.BatchSize,
		StaleBefore: pgconv.TimeToPgtype(now.Add(-d.cfg.LeaseDuration())),
	}
}

// Run is the cron entry point.
func (d *Dispatcher) Run() {
	if _, err := d.RunOnce(context.Background()); err != nil {
		slog.Error("notification dispatch failed", "error", err)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, job sqlstore.NotificationJobs) bool {
	msg, permanent, err := d.render(ctx, job)
	if err == nil {
		err = d.notifier.Send(ctx, msg)
	}
	if err == nil {
		d.finish(ctx, job.ID, jobStatusSent, job.RunAt.Time, nil)
		return true
	}

	status := jobStatusQueued
	runAt := d.clock.Now().Add(d.cfg.Backoff() * time.Duration(job.Attempts))
	if permanent || job.Attempts >= d.cfg.MaxAttempts {
		status = jobStatusFailed
	}
	slog.Warn("notification delivery failed",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", job.Attempts,
		"next_status", status,
		"error", err)

	reason := err.Error()
	d.finish(ctx, job.ID, status, runAt, &reason)
	return false
}

func (d *Dispatcher) finish(ctx context.Context, id uuid.UUID, status string, runAt time.Time, lastError *string) {
	err := d.queries.FinishNotificationJob(ctx, d.db, sqlstore.FinishNotificationJobParams{
		ID:        id,
		Status:    status,
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgconv.StringPtrToPgtype(lastError),
		UpdatedAt: pgtype.Timestamptz{Time: d.clock.Now(), Valid: true},
	})
	if err != nil {
		slog.Error("failed to record notification outcome", "job_id", id, "status", status, "error", err)
	}
}

// render resolves the recipient and builds the message. permanent reports failures that
// retrying cannot fix.
func (d *Dispatcher) render(ctx context.Context, job sqlstore.NotificationJobs) (Message, bool, error) {
	if job.Kind != shared.NotificationKindEmail {
		return Message{}, true, fmt.Errorf("unsupported notification kind %q", job.Kind)
	}

	var ev shared.NotificationEvent
	if err := json.Unmarshal(job.Payload, &ev); err != nil {
		return Message{}, true, fmt.Errorf("decode payload: %w", err)
	}

	msg := Message{To: d.cfg.OpsEmail, ToName: "Operations"}
	if ev.RecipientID != uuid.Nil {
		u, err := d.users.FindByID(ctx, ev.RecipientID)
		if err != nil {
			return Message{}, infra.IsKind(err, infra.KindNotFound), err
		}
		msg.To = u.Email().Value()
		msg.ToName = u.Name()
	}

	msg.Subject, msg.Body = compose(job.Topic, ev)
	return msg, false, nil
}

func compose(topic string, ev shared.NotificationEvent) (string, string) {
	var subject string
	switch topic {
	case shared.TopicBookingCreated:
		subject = "Your booking was received"
	case shared.TopicBookingCancelled:
		subject = "Your booking was cancelled"
	case shared.TopicBookingStatusChanged:
		subject = "Your booking status changed"
	case shared.TopicRoomAssigned:
		subject = "Your room is ready"
	case shared.TopicCustomTourRequested:
		subject = "New custom tour request"
	case shared.TopicCustomTourGuide:
		subject = "A guide was assigned to a custom tour"
	case shared.TopicCustomTourQuoted:
		subject = "New quote for your custom tour"
	case shared.TopicCustomTourBargained:
		subject = "Counter-offer on your quote"
	case shared.TopicCustomTourClosed:
		subject = "Custom tour request closed"
	default:
		subject = "Booking update"
	}

	body := fmt.Sprintf("Reference %s", ev.SubjectID)
	if ev.Status != "" {
		body += fmt.Sprintf("\nStatus: %s", ev.Status)
	}
	if ev.Summary != "" {
		body += "\n" + ev.Summary
	}
	return subject, body
}
