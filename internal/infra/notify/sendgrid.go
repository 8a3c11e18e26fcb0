package notify

import (
	"context"

	"travel-booking/internal/pkg/errs"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrDeliveryRejected = errs.New("email provider rejected message")

type SendGridNotifier struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName string) *SendGridNotifier {
	return &SendGridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridNotifier) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, recipient, msg.Body, "")

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "failed to send email")
	}
	if response.StatusCode >= 400 {
		return errs.Wrapf(ErrDeliveryRejected, "sendgrid status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
