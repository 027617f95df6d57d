// Package notificationrepo implements the confirmation notification outbox.
// Sending an order confirmation records a pending row in the same database
// as the rest of the system state; a background job later publishes pending
// rows to the message broker and marks them sent.
package notificationrepo

import (
	"time"

	"github.com/google/uuid"
)

// Notification statuses.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
)

// NotificationDTO represents a confirmation notification in the outbox.
type NotificationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID int64
	OrderID    int64
	Status     string `gorm:"index"`
	CreatedAt  time.Time
	SentAt     *time.Time
}

// TableName specifies the database table name for the notification outbox.
func (NotificationDTO) TableName() string {
	return "notifications"
}
