package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"sihati/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload is the queued description of one appointment reminder.
type ReminderPayload struct {
	UserID        string `json:"userId"`
	AppointmentID string `json:"appointmentId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
}

// NewReminderTask builds an asynq task that fires at the given time.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues appointment reminders on the Redis-backed queue.
type ReminderScheduler struct {
	Client *asynq.Client
}

// ScheduleAppointmentReminder queues a reminder that fires leadMinutes
// before the appointment's start. Appointments starting too soon for the
// lead time are skipped rather than reminded late.
func (s *ReminderScheduler) ScheduleAppointmentReminder(appt models.Appointment, leadMinutes int) error {
	startAt, err := time.ParseInLocation("2006-01-02 15:04:05", appt.Date+" "+appt.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse appointment start %s %s: %w", appt.Date, appt.StartTime, err)
	}

	fireAt := startAt.Add(-time.Duration(leadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := ReminderPayload{
		UserID:        appt.PatientID,
		AppointmentID: appt.ID,
		Title:         "تذكير بالموعد",
		Body:          fmt.Sprintf("موعدك يبدأ على الساعة %s", appt.StartTime),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for appointment %s: %w", appt.ID, err)
	}
	return nil
}
