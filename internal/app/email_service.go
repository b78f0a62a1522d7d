/**
 * @description
 * EmailService implementations. QueuedEmailService hands the e-mail to the notification
 * service through RabbitMQ; LogEmailService only logs it and is used when no broker is
 * configured (local development).
 */
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/transfa/enrollment-service/internal/domain"
)

// EventPublisher publishes an event under a routing key.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body interface{}) error
}

// QueuedEmailService publishes EmailRequestedEvent messages.
type QueuedEmailService struct {
	publisher  EventPublisher
	routingKey string
	now        func() time.Time
}

// NewQueuedEmailService creates a QueuedEmailService.
func NewQueuedEmailService(publisher EventPublisher, routingKey string) *QueuedEmailService {
	return &QueuedEmailService{
		publisher:  publisher,
		routingKey: routingKey,
		now:        time.Now,
	}
}

// SendEmail publishes the e-mail request and waits for the broker to accept it.
func (s *QueuedEmailService) SendEmail(ctx context.Context, toName, toAddress, subject, body string) error {
	event := domain.EmailRequestedEvent{
		ToName:      toName,
		ToAddress:   toAddress,
		Subject:     subject,
		Body:        body,
		RequestedAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, s.routingKey, event); err != nil {
		return fmt.Errorf("publish email request: %w", err)
	}
	return nil
}

// LogEmailService writes e-mails to the log instead of sending them.
type LogEmailService struct {
	logger *slog.Logger
}

func NewLogEmailService(logger *slog.Logger) *LogEmailService {
	return &LogEmailService{logger: logger}
}

func (s *LogEmailService) SendEmail(_ context.Context, toName, toAddress, subject, _ string) error {
	s.logger.Info("email not sent, no broker configured", "to_name", toName, "to_address", toAddress, "subject", subject)
	return nil
}
