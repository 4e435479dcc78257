package booking

import (
	"context"
	"fmt"

	appointmentRepo "sihati/database/repository/appointment"
	doctorRepo "sihati/database/repository/doctor"
	profileRepo "sihati/database/repository/profile"
	"sihati/models"
	"sihati/services/notification"
	"sihati/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Doctors      doctorRepo.DoctorRepository
	Profiles     profileRepo.ProfileRepository
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService
	Reminders    ReminderScheduler
	ReminderLead int
}

// Book validates a booking request and persists a pending appointment.
//
// Deliberately permissive: neither the doctor's weekly availability nor
// existing appointments are consulted, so two overlapping requests can both
// succeed. The conflict check is a known requirement gap carried over from
// the platform's behavior.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	if req.Date == "" || req.RequestedTime == "" {
		return nil, ErrMissingFields
	}

	doctor, err := s.Doctors.GetByID(req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor %s: %w", req.DoctorID, err)
	}
	pricing, err := doctor.Pricing()
	if err != nil {
		return nil, err
	}

	start, end, err := ResolveSlot(req.RequestedTime, doctor.SessionDuration)
	if err != nil {
		return nil, err
	}

	price, err := ResolvePrice(pricing, req.SessionType)
	if err != nil {
		return nil, err
	}

	sessionType := req.SessionType
	if sessionType == "" {
		sessionType = "consultation"
	}

	appt := &models.Appointment{
		ID:          uuid.New().String(),
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Date:        req.Date,
		StartTime:   start,
		EndTime:     end,
		SessionType: sessionType,
		Price:       price,
		Symptoms:    req.Symptoms,
		Status:      models.StatusPending,
	}
	if err := s.Appointments.Create(appt); err != nil {
		return nil, err
	}

	s.notifyDoctorOfRequest(ctx, appt)
	return appt, nil
}

// notifyDoctorOfRequest emits the "new appointment request" notification.
// The appointment is already persisted; a failed notification is logged and
// does not undo the booking.
func (s *DefaultBookingService) notifyDoctorOfRequest(ctx context.Context, appt *models.Appointment) {
	logger := utils.GetLogger()

	patientName := appt.PatientID
	if profile, err := s.Profiles.GetByID(appt.PatientID); err == nil {
		patientName = profile.FullName
	}

	message := fmt.Sprintf("لديك طلب موعد جديد من %s", patientName)
	if _, err := s.Notifier.Emit(ctx, appt.DoctorID, "طلب موعد جديد", message, models.NotificationAppointment); err != nil {
		logger.Warn("failed to notify doctor of booking request",
			zap.String("doctorId", appt.DoctorID),
			zap.String("appointmentId", appt.ID),
			zap.Error(err))
	}
}

// ListForDoctor returns the doctor's appointments, optionally filtered by status.
func (s *DefaultBookingService) ListForDoctor(ctx context.Context, doctorID, status string) ([]models.Appointment, error) {
	return s.Appointments.ListByDoctor(doctorID, status)
}

// ListForPatient returns the patient's appointments, optionally filtered by status.
func (s *DefaultBookingService) ListForPatient(ctx context.Context, patientID, status string) ([]models.Appointment, error) {
	return s.Appointments.ListByPatient(patientID, status)
}
