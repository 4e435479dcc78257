package notificationRepo

import "sihati/models"

// NotificationRepository defines persistence operations for the polled
// notification rows.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	// ListByUser returns the user's notifications, newest first.
	ListByUser(userID string) ([]models.Notification, error)
	// MarkRead flips isRead on a notification owned by userID.
	MarkRead(id, userID string) error
}
