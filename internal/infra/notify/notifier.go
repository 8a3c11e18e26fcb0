// Package notify delivers queued notification jobs by e-mail.
package notify

import (
	"context"
	"log/slog"

	"travel-booking/internal/pkg/config"
)

type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// NewNotifier picks SendGrid when an API key is configured and falls back to logging.
func NewNotifier(cfg config.Config) Notifier {
	if cfg.Notify.SendGridAPIKey == "" {
		slog.Warn("SENDGRID_API_KEY not set, notifications will only be logged")
		return NewLogNotifier(slog.Default())
	}
	return NewSendGridNotifier(cfg.Notify.SendGridAPIKey, cfg.Notify.FromEmail, cfg.Notify.FromName)
}

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(ctx context.Context, msg Message) error {
	n.logger.InfoContext(ctx, "notification",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return nil
}
