package booking

import (
	"context"
	"fmt"

	"sihati/models"
	"sihati/utils"

	"go.uber.org/zap"
)

// legalTransitions is the full transition table. Cancellation is only legal
// from pending; a confirmed appointment can only run to completion.
// Completed and cancelled are terminal.
var legalTransitions = map[string]map[string]bool{
	models.StatusPending: {
		models.StatusConfirmed: true,
		models.StatusCancelled: true,
	},
	models.StatusConfirmed: {
		models.StatusCompleted: true,
	},
}

// statusVerbs are the Arabic verbs the patient sees in the transition
// notification, matching the labels the clients render.
var statusVerbs = map[string]string{
	models.StatusConfirmed: "تأكيد",
	models.StatusCancelled: "إلغاء",
	models.StatusCompleted: "إكمال",
}

// UpdateStatus applies one status transition requested by the owning doctor.
// On success the patient is notified of the new status, and a confirmation
// queues an appointment reminder.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, callerID, appointmentID, newStatus string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.DoctorID != callerID {
		return nil, ErrNotOwner
	}
	if !legalTransitions[appt.Status][newStatus] {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, appt.Status, newStatus)
	}

	if err := s.Appointments.UpdateStatus(appointmentID, newStatus); err != nil {
		return nil, err
	}
	appt.Status = newStatus

	logger := utils.GetLogger()

	message := fmt.Sprintf("تم %s موعدك", statusVerbs[newStatus])
	if _, err := s.Notifier.Emit(ctx, appt.PatientID, "تحديث حالة الموعد", message, models.NotificationAppointmentUpdate); err != nil {
		logger.Warn("failed to notify patient of status change",
			zap.String("patientId", appt.PatientID),
			zap.String("appointmentId", appt.ID),
			zap.Error(err))
	}

	if newStatus == models.StatusConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(*appt, s.ReminderLead); err != nil {
			logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentId", appt.ID),
				zap.Error(err))
		}
	}

	return appt, nil
}
