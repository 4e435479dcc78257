package scheduleRepo

import "sihati/models"

// ScheduleRepository defines persistence operations for a doctor's recurring
// weekly availability windows.
type ScheduleRepository interface {
	Create(availability *models.WeeklyAvailability) error
	GetByID(id string) (*models.WeeklyAvailability, error)
	// ListByDoctor returns the doctor's windows ordered by day of week,
	// then start time.
	ListByDoctor(doctorID string) ([]models.WeeklyAvailability, error)
	Delete(id string) error
}
