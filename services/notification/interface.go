package notification

import (
	"context"

	"sihati/models"
)

// NotificationService is the single write collaborator the core calls to
// emit a notification. Emitting persists one row; clients poll for rows,
// there is no push channel.
type NotificationService interface {
	Emit(ctx context.Context, userID, title, message, notifType string) (*models.Notification, error)
	ListForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, callerID, notificationID string) error
}
