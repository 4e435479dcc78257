package booking

import (
	"context"

	"sihati/models"
)

// BookingService turns raw booking requests into persisted appointments and
// drives their status lifecycle.
type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	// UpdateStatus applies one legal status transition on behalf of the
	// owning doctor.
	UpdateStatus(ctx context.Context, callerID, appointmentID, newStatus string) (*models.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID, status string) ([]models.Appointment, error)
	ListForPatient(ctx context.Context, patientID, status string) ([]models.Appointment, error)
}

// ReminderScheduler queues an appointment reminder; the Redis-backed
// implementation lives in services/tasks.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(appt models.Appointment, leadMinutes int) error
}
