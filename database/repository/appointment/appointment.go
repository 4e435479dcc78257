package appointmentRepo

import "sihati/models"

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	// UpdateStatus sets the status of an existing appointment. The caller
	// is responsible for having checked the transition's legality.
	UpdateStatus(id, status string) error
	// ListByDoctor and ListByPatient return appointments ordered by date
	// then start time; status filters when non-empty.
	ListByDoctor(doctorID, status string) ([]models.Appointment, error)
	ListByPatient(patientID, status string) ([]models.Appointment, error)
}
