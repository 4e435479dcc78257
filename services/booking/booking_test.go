package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	doctorRepo "sihati/database/repository/doctor"
	"sihati/models"

	"go.mongodb.org/mongo-driver/bson"
)

// In-memory fakes for the repository and notification collaborators.

type fakeDoctorRepo struct {
	doctors map[string]models.Doctor
}

func (f *fakeDoctorRepo) Upsert(d *models.Doctor) error {
	f.doctors[d.ID] = *d
	return nil
}

func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, fmt.Errorf("doctor %s not found", id)
	}
	return &d, nil
}

func (f *fakeDoctorRepo) Search(criteria doctorRepo.DoctorSearchCriteria) ([]doctorRepo.DoctorListing, error) {
	return nil, nil
}

type fakeProfileRepo struct {
	profiles map[string]models.Profile
}

func (f *fakeProfileRepo) Create(p *models.Profile) error {
	f.profiles[p.ID] = *p
	return nil
}

func (f *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %s not found", id)
	}
	return &p, nil
}

func (f *fakeProfileRepo) GetByPhone(phone string) (*models.Profile, error) {
	for _, p := range f.profiles {
		if p.Phone == phone {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }

type fakeAppointmentRepo struct {
	appointments map[string]models.Appointment
}

func (f *fakeAppointmentRepo) Create(a *models.Appointment) error {
	f.appointments[a.ID] = *a
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s not found", id)
	}
	return &a, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(id, status string) error {
	a, ok := f.appointments[id]
	if !ok {
		return fmt.Errorf("appointment %s not found", id)
	}
	a.Status = status
	f.appointments[id] = a
	return nil
}

func (f *fakeAppointmentRepo) ListByDoctor(doctorID, status string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && (status == "" || a.Status == status) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByPatient(patientID, status string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID && (status == "" || a.Status == status) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	emitted []models.Notification
}

func (f *fakeNotifier) Emit(ctx context.Context, userID, title, message, notifType string) (*models.Notification, error) {
	n := models.Notification{UserID: userID, Title: title, Message: message, Type: notifType}
	f.emitted = append(f.emitted, n)
	return &n, nil
}

func (f *fakeNotifier) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeNotifier) MarkRead(ctx context.Context, callerID, notificationID string) error {
	return nil
}

type fakeReminderScheduler struct {
	scheduled []models.Appointment
}

func (f *fakeReminderScheduler) ScheduleAppointmentReminder(appt models.Appointment, leadMinutes int) error {
	f.scheduled = append(f.scheduled, appt)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeAppointmentRepo, *fakeNotifier, *fakeReminderScheduler) {
	doctors := &fakeDoctorRepo{doctors: map[string]models.Doctor{
		"doc-1": {ID: "doc-1", PricingType: models.PricingFixed, FixedPrice: 1000, SessionDuration: 30},
	}}
	profiles := &fakeProfileRepo{profiles: map[string]models.Profile{
		"pat-1": {ID: "pat-1", FullName: "Amine B.", Role: models.RolePatient},
	}}
	appts := &fakeAppointmentRepo{appointments: map[string]models.Appointment{}}
	notifier := &fakeNotifier{}
	reminders := &fakeReminderScheduler{}

	svc := &DefaultBookingService{
		Doctors:      doctors,
		Profiles:     profiles,
		Appointments: appts,
		Notifier:     notifier,
		Reminders:    reminders,
		ReminderLead: 60,
	}
	return svc, appts, notifier, reminders
}

func TestBookCreatesPendingAppointment(t *testing.T) {
	svc, appts, notifier, _ := newTestService()

	appt, err := svc.Book(context.Background(), models.BookingRequest{
		DoctorID:      "doc-1",
		PatientID:     "pat-1",
		Date:          "2026-09-10",
		RequestedTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	if appt.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", appt.Status)
	}
	if appt.StartTime != "09:00:00" || appt.EndTime != "09:30:00" {
		t.Errorf("slot = [%s, %s), want [09:00:00, 09:30:00)", appt.StartTime, appt.EndTime)
	}
	if appt.Price != 1000 {
		t.Errorf("price = %v, want 1000", appt.Price)
	}
	if appt.SessionType != "consultation" {
		t.Errorf("sessionType = %q, want the consultation default", appt.SessionType)
	}
	if _, err := appts.GetByID(appt.ID); err != nil {
		t.Errorf("appointment was not persisted: %v", err)
	}

	// Exactly one notification, to the doctor, naming the patient.
	if len(notifier.emitted) != 1 {
		t.Fatalf("emitted %d notifications, want 1", len(notifier.emitted))
	}
	n := notifier.emitted[0]
	if n.UserID != "doc-1" {
		t.Errorf("notification went to %q, want doc-1", n.UserID)
	}
	if n.Type != models.NotificationAppointment {
		t.Errorf("notification type = %q, want %q", n.Type, models.NotificationAppointment)
	}
}

func TestBookRejectsMissingFields(t *testing.T) {
	svc, _, notifier, _ := newTestService()

	tests := []models.BookingRequest{
		{DoctorID: "doc-1", PatientID: "pat-1", RequestedTime: "09:00"},
		{DoctorID: "doc-1", PatientID: "pat-1", Date: "2026-09-10"},
		{DoctorID: "doc-1", PatientID: "pat-1"},
	}
	for _, req := range tests {
		if _, err := svc.Book(context.Background(), req); !errors.Is(err, ErrMissingFields) {
			t.Errorf("Book(%+v) error = %v, want ErrMissingFields", req, err)
		}
	}
	if len(notifier.emitted) != 0 {
		t.Errorf("rejected bookings still emitted %d notifications", len(notifier.emitted))
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusCancelled, false},
		{models.StatusConfirmed, models.StatusPending, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusCompleted, models.StatusPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			svc, appts, _, _ := newTestService()
			appts.appointments["appt-1"] = models.Appointment{
				ID:        "appt-1",
				PatientID: "pat-1",
				DoctorID:  "doc-1",
				Date:      "2026-09-10",
				StartTime: "09:00:00",
				Status:    tt.from,
			}

			_, err := svc.UpdateStatus(context.Background(), "doc-1", "appt-1", tt.to)
			if tt.allowed && err != nil {
				t.Fatalf("transition %s -> %s rejected: %v", tt.from, tt.to, err)
			}
			if !tt.allowed && !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("transition %s -> %s error = %v, want ErrIllegalTransition", tt.from, tt.to, err)
			}

			stored, _ := appts.GetByID("appt-1")
			if tt.allowed && stored.Status != tt.to {
				t.Errorf("stored status = %q, want %q", stored.Status, tt.to)
			}
			if !tt.allowed && stored.Status != tt.from {
				t.Errorf("rejected transition still changed status to %q", stored.Status)
			}
		})
	}
}

func TestUpdateStatusRequiresOwnership(t *testing.T) {
	svc, appts, _, _ := newTestService()
	appts.appointments["appt-1"] = models.Appointment{
		ID:       "appt-1",
		DoctorID: "doc-1",
		Status:   models.StatusPending,
	}

	_, err := svc.UpdateStatus(context.Background(), "doc-2", "appt-1", models.StatusConfirmed)
	if !errors.Is(err, ErrNotOwner) {
		t.Errorf("UpdateStatus by a different doctor error = %v, want ErrNotOwner", err)
	}
}

func TestConfirmSchedulesReminderAndNotifiesPatient(t *testing.T) {
	svc, appts, notifier, reminders := newTestService()
	appts.appointments["appt-1"] = models.Appointment{
		ID:        "appt-1",
		PatientID: "pat-1",
		DoctorID:  "doc-1",
		Date:      "2026-09-10",
		StartTime: "09:00:00",
		Status:    models.StatusPending,
	}

	if _, err := svc.UpdateStatus(context.Background(), "doc-1", "appt-1", models.StatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if len(reminders.scheduled) != 1 {
		t.Fatalf("scheduled %d reminders, want 1", len(reminders.scheduled))
	}
	if reminders.scheduled[0].ID != "appt-1" {
		t.Errorf("reminder scheduled for %q, want appt-1", reminders.scheduled[0].ID)
	}

	if len(notifier.emitted) != 1 {
		t.Fatalf("emitted %d notifications, want 1", len(notifier.emitted))
	}
	n := notifier.emitted[0]
	if n.UserID != "pat-1" || n.Type != models.NotificationAppointmentUpdate {
		t.Errorf("patient notification = %+v, want appointment_update for pat-1", n)
	}

	// Completing afterwards must not schedule anything further.
	if _, err := svc.UpdateStatus(context.Background(), "doc-1", "appt-1", models.StatusCompleted); err != nil {
		t.Fatalf("completing a confirmed appointment failed: %v", err)
	}
	if len(reminders.scheduled) != 1 {
		t.Errorf("completion scheduled an extra reminder")
	}
}
