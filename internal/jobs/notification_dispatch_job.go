package jobs

import (
	"context"
	"log/slog"

	"orderentry/internal/adapters/out/kafkapub"
	"orderentry/internal/adapters/out/postgres/notificationrepo"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const dispatchBatchSize = 100

// NotificationOutbox is the slice of the outbox consumed by the dispatch job.
type NotificationOutbox interface {
	GetPending(ctx context.Context, limit int) ([]notificationrepo.NotificationDTO, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

// ConfirmationPublisher publishes confirmation events to the message broker.
type ConfirmationPublisher interface {
	PublishOrderConfirmed(ctx context.Context, event kafkapub.OrderConfirmedEvent) error
}

// NotificationDispatchJob drains the notification outbox on a schedule,
// publishing each pending confirmation and marking it sent.
type NotificationDispatchJob struct {
	outbox    NotificationOutbox
	publisher ConfirmationPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationDispatchJob creates a job that dispatches pending
// confirmation notifications every five seconds.
func NewNotificationDispatchJob(
	outbox NotificationOutbox,
	publisher ConfirmationPublisher,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job, running every five seconds.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		if err := j.Dispatch(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every 5 seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}

// Dispatch publishes one batch of pending notifications. A notification is
// marked sent only after its event is published; publish failures leave it
// pending for the next run.
func (j *NotificationDispatchJob) Dispatch(ctx context.Context) error {
	pending, err := j.outbox.GetPending(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	for _, notification := range pending {
		event := kafkapub.OrderConfirmedEvent{
			NotificationID: notification.ID.String(),
			CustomerID:     notification.CustomerID,
			OrderID:        notification.OrderID,
			ConfirmedAt:    notification.CreatedAt,
		}

		if err = j.publisher.PublishOrderConfirmed(ctx, event); err != nil {
			j.logger.ErrorContext(ctx, "Failed to publish confirmation",
				"notificationId", notification.ID, "error", err)
			continue
		}

		if err = j.outbox.MarkSent(ctx, notification.ID); err != nil {
			j.logger.ErrorContext(ctx, "Failed to mark notification sent",
				"notificationId", notification.ID, "error", err)
		}
	}

	return nil
}
