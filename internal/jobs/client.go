package jobs

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/gowtham404/books-store-api/internal/auth/domain"
)

// Client submits email tasks to the queue.
type Client struct {
	client *asynq.Client
}

func NewClient(redisOpts asynq.RedisClientOpt) *Client {
	return &Client{client: asynq.NewClient(redisOpts)}
}

// EnqueueSendEmail schedules msg for background delivery. Only the enqueue
// itself can fail here; delivery failures surface in the worker.
func (c *Client) EnqueueSendEmail(ctx context.Context, msg domain.EmailMessage) error {
	task, err := NewSendEmailTask(msg)
	if err != nil {
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault))
	return err
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.client.Close()
}
