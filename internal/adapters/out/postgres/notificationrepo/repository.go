package notificationrepo

import (
	"context"
	"time"

	"orderentry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNotificationRepository implements Notifier by recording pending
// notifications in the outbox table.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// SendOrderConfirmationEmail records a pending confirmation notification.
// The notification is delivered asynchronously by the dispatch job.
func (r *GormNotificationRepository) SendOrderConfirmationEmail(
	ctx context.Context,
	customerID int64,
	orderID int64,
) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidError("customerID")
	}
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}

	dto := NotificationDTO{
		ID:         uuid.New(),
		CustomerID: customerID,
		OrderID:    orderID,
		Status:     StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending retrieves up to limit pending notifications, oldest first.
func (r *GormNotificationRepository) GetPending(ctx context.Context, limit int) ([]NotificationDTO, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusPending).
		Order("created_at").
		Limit(limit).
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	return dtos, nil
}

// MarkSent transitions a notification from pending to sent.
func (r *GormNotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]any{"status": StatusSent, "sent_at": &now})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	return nil
}
