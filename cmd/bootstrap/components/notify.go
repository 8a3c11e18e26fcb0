package components

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/infra/notify"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		clock.NewRealClock,
		notify.NewNotifier,
		notify.NewDispatcher,
		NewScheduler,
	),
	fx.Invoke(func(*cron.Cron) {}),
)

// NewScheduler runs the dispatcher on cfg.Notify.Schedule. Overlapping ticks are skipped so
// one batch is in flight at a time.
func NewScheduler(lc fx.Lifecycle, cfg config.Config, dispatcher *notify.Dispatcher, logger *slog.Logger) (*cron.Cron, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(cfg.Notify.Schedule, dispatcher.Run); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("notification worker started", "schedule", cfg.Notify.Schedule)
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := c.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}
			logger.Info("notification worker stopped")
			return nil
		},
	})
	return c, nil
}
