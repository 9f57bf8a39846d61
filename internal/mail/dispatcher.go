package mail

import (
	"context"

	"github.com/gowtham404/books-store-api/internal/auth/domain"
	"github.com/gowtham404/books-store-api/internal/jobs"
)

// Dispatcher routes emails either straight to SMTP (blocking) or onto the
// background queue.
type Dispatcher struct {
	mailer *Mailer
	queue  *jobs.Client
}

func NewDispatcher(mailer *Mailer, queue *jobs.Client) *Dispatcher {
	return &Dispatcher{mailer: mailer, queue: queue}
}

// Send delivers the message before returning.
func (d *Dispatcher) Send(ctx context.Context, msg domain.EmailMessage) error {
	return d.mailer.Send(ctx, msg)
}

// Schedule enqueues the message for the worker to deliver.
func (d *Dispatcher) Schedule(ctx context.Context, msg domain.EmailMessage) error {
	return d.queue.EnqueueSendEmail(ctx, msg)
}
