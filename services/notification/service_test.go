package notification

import (
	"context"
	"fmt"
	"testing"

	"sihati/models"
)

type fakeNotificationRepo struct {
	rows map[string]models.Notification
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	f.rows[n.ID] = *n
	return nil
}

func (f *fakeNotificationRepo) ListByUser(userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.rows {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(id, userID string) error {
	n, ok := f.rows[id]
	if !ok || n.UserID != userID {
		return fmt.Errorf("notification %s not found for user %s", id, userID)
	}
	n.IsRead = true
	f.rows[id] = n
	return nil
}

func TestEmitWritesUnreadRow(t *testing.T) {
	repo := &fakeNotificationRepo{rows: map[string]models.Notification{}}
	svc := &DefaultNotificationService{Repo: repo}

	n, err := svc.Emit(context.Background(), "user-1", "طلب موعد جديد", "لديك طلب موعد جديد من Amine", models.NotificationAppointment)
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	if n.ID == "" {
		t.Errorf("Emit produced a row without an id")
	}
	if n.IsRead {
		t.Errorf("Emit produced a row already marked read")
	}

	rows, err := svc.ListForUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("listed %d rows, want 1", len(rows))
	}
}

func TestMarkReadEnforcesOwnership(t *testing.T) {
	repo := &fakeNotificationRepo{rows: map[string]models.Notification{}}
	svc := &DefaultNotificationService{Repo: repo}

	n, err := svc.Emit(context.Background(), "user-1", "t", "m", models.NotificationReminder)
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}

	if err := svc.MarkRead(context.Background(), "user-2", n.ID); err == nil {
		t.Errorf("MarkRead by a different user succeeded")
	}
	if err := svc.MarkRead(context.Background(), "user-1", n.ID); err != nil {
		t.Errorf("MarkRead by the owner returned error: %v", err)
	}
	if !repo.rows[n.ID].IsRead {
		t.Errorf("row still unread after MarkRead")
	}
}
