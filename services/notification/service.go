package notification

import (
	"context"
	"fmt"

	notificationRepo "sihati/database/repository/notification"
	"sihati/models"

	"github.com/google/uuid"
)

// DefaultNotificationService persists notification rows through the
// repository. One Emit is one row write; there is no batching, no retry and
// no partial state to reconcile.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

// Emit writes a single unread notification row for the recipient.
func (s *DefaultNotificationService) Emit(ctx context.Context, userID, title, message, notifType string) (*models.Notification, error) {
	n := &models.Notification{
		ID:      uuid.New().String(),
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
		IsRead:  false,
	}
	if err := s.Repo.Create(n); err != nil {
		return nil, fmt.Errorf("failed to emit notification to %s: %w", userID, err)
	}
	return n, nil
}

// ListForUser returns the user's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(userID)
}

// MarkRead marks one of the caller's notifications as read.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, callerID, notificationID string) error {
	return s.Repo.MarkRead(notificationID, callerID)
}
