package models

import "time"

// Notification kinds as stored and filtered by the clients.
const (
	NotificationAppointment       = "appointment"
	NotificationAppointmentUpdate = "appointment_update"
	NotificationBloodDonation     = "blood_donation"
	NotificationReminder          = "reminder"
)

// Notification is one row a client polls for. There is no push channel;
// delivery is reading the row.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Type      string    `bson:"type" json:"type"`
	IsRead    bool      `bson:"isRead" json:"isRead"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
