// Package jobs contains the background-task plumbing for email dispatch.
package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/gowtham404/books-store-api/internal/auth/domain"
)

const (
	// QueueDefault is the queue used for email delivery.
	QueueDefault = "default"
	// TaskTypeSendEmail is the task type for transactional emails.
	TaskTypeSendEmail = "mail:send"
)

// Sender delivers a rendered email. Satisfied by mail.Mailer.
type Sender interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

// NewSendEmailTask packs an email message into an Asynq task.
func NewSendEmailTask(msg domain.EmailMessage) (*asynq.Task, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeSendEmail, data), nil
}

// NewSendEmailHandler returns the worker-side handler for TaskTypeSendEmail.
// Malformed payloads are dropped; delivery failures are retried by Asynq.
func NewSendEmailHandler(sender Sender, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var msg domain.EmailMessage
		if err := json.Unmarshal(t.Payload(), &msg); err != nil {
			logger.Error("drop malformed send-email task", slog.Any("error", err))
			return asynq.SkipRetry
		}

		if err := sender.Send(ctx, msg); err != nil {
			logger.Error("send email",
				slog.String("message_id", msg.MessageID),
				slog.String("template", msg.Template),
				slog.Any("error", err))
			return err
		}

		logger.Info("email sent",
			slog.String("message_id", msg.MessageID),
			slog.String("template", msg.Template))
		return nil
	}
}
