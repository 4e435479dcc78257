package models

import "time"

// Appointment lifecycle states. pending → confirmed|cancelled and
// confirmed → completed are the only legal moves; completed and cancelled
// are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment is a persisted booking. Date is "YYYY-MM-DD"; the times are
// "HH:MM:SS" with zero seconds, covering [StartTime, EndTime).
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	DoctorID    string    `bson:"doctorId" json:"doctorId"`
	Date        string    `bson:"date" json:"date"`
	StartTime   string    `bson:"startTime" json:"startTime"`
	EndTime     string    `bson:"endTime" json:"endTime"`
	SessionType string    `bson:"sessionType" json:"sessionType"`
	Price       float64   `bson:"price" json:"price"`
	Symptoms    string    `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the raw booking input before validation. PatientID is
// supplied by the caller's verified identity, never ambient state.
type BookingRequest struct {
	DoctorID      string `json:"doctorId" binding:"required"`
	PatientID     string `json:"-"`
	Date          string `json:"date"`
	RequestedTime string `json:"requestedTime"`
	SessionType   string `json:"sessionType,omitempty"`
	Symptoms      string `json:"symptoms,omitempty"`
}
