package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	doctorRepo "sihati/database/repository/doctor"
	"sihati/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeProfileRepo struct {
	profiles map[string]models.Profile
	updates  map[string]bson.M
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

func (f *fakeProfileRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	f.updates[id] = updateDoc
	return nil
}

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
	var out []doctorRepo.DoctorListing
	for _, d := range f.doctors {
		out = append(out, doctorRepo.DoctorListing{Doctor: d})
	}
	return out, nil
}

type fakePatientRepo struct {
	patients map[string]models.Patient
}

func (f *fakePatientRepo) Upsert(p *models.Patient) error {
	f.patients[p.ID] = *p
	return nil
}

func (f *fakePatientRepo) GetByID(id string) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, fmt.Errorf("patient %s not found", id)
	}
	return &p, nil
}

func (f *fakePatientRepo) GetCandidatesByBloodType(bloodType string) ([]models.DonationCandidate, error) {
	return nil, nil
}

func newTestService() (*DefaultUserService, *fakeProfileRepo, *fakeDoctorRepo, *fakePatientRepo) {
	profiles := &fakeProfileRepo{profiles: map[string]models.Profile{}, updates: map[string]bson.M{}}
	doctors := &fakeDoctorRepo{doctors: map[string]models.Doctor{}}
	patients := &fakePatientRepo{patients: map[string]models.Patient{}}
	svc := &DefaultUserService{Profiles: profiles, Doctors: doctors, Patients: patients}
	return svc, profiles, doctors, patients
}

func TestRegisterDoctorCreatesDefaults(t *testing.T) {
	svc, _, doctors, _ := newTestService()

	session, err := svc.Register(context.Background(), models.RegisterInput{
		FullName: "Dr. Amel K.",
		Phone:    "0550000001",
		Password: "secret123",
		Role:     models.RoleDoctor,
		Wilaya:   "Khenchela",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if session.Token == "" {
		t.Errorf("Register returned an empty token")
	}
	if session.Profile.PasswordHash == "secret123" {
		t.Errorf("password was stored in clear text")
	}

	doctor, err := doctors.GetByID(session.Profile.ID)
	if err != nil {
		t.Fatalf("no doctor record created: %v", err)
	}
	if doctor.PricingType != models.PricingFixed || doctor.SessionDuration != 30 {
		t.Errorf("doctor defaults = %q/%d, want fixed/30", doctor.PricingType, doctor.SessionDuration)
	}
}

func TestRegisterPatientCreatesRecord(t *testing.T) {
	svc, _, _, patients := newTestService()

	session, err := svc.Register(context.Background(), models.RegisterInput{
		FullName: "Amine B.",
		Phone:    "0550000002",
		Password: "secret123",
		Role:     models.RolePatient,
		Wilaya:   "Khenchela",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := patients.GetByID(session.Profile.ID); err != nil {
		t.Errorf("no patient record created: %v", err)
	}
}

func TestRegisterRejectsDuplicatePhone(t *testing.T) {
	svc, _, _, _ := newTestService()

	input := models.RegisterInput{
		FullName: "Amine B.",
		Phone:    "0550000003",
		Password: "secret123",
		Role:     models.RolePatient,
		Wilaya:   "Khenchela",
	}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, ErrPhoneTaken) {
		t.Errorf("duplicate Register error = %v, want ErrPhoneTaken", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newTestService()

	if _, err := svc.Register(context.Background(), models.RegisterInput{
		FullName: "Amine B.",
		Phone:    "0550000004",
		Password: "secret123",
		Role:     models.RolePatient,
		Wilaya:   "Khenchela",
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	session, err := svc.Login(context.Background(), models.LoginInput{Phone: "0550000004", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if session.Token == "" {
		t.Errorf("Login returned an empty token")
	}

	if _, err := svc.Login(context.Background(), models.LoginInput{Phone: "0550000004", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), models.LoginInput{Phone: "0000000000", Password: "secret123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown phone error = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateDoctorSettingsValidation(t *testing.T) {
	svc, _, doctors, _ := newTestService()

	tests := []struct {
		name  string
		input models.DoctorSettingsInput
		ok    bool
	}{
		{"fixed", models.DoctorSettingsInput{PricingType: "fixed", FixedPrice: 1000}, true},
		{"variable", models.DoctorSettingsInput{PricingType: "variable", PriceRangeMin: 800, PriceRangeMax: 2000}, true},
		{"multi", models.DoctorSettingsInput{PricingType: "multi", SessionTypes: []models.SessionType{{Label: "consultation", Price: 1000}}}, true},
		{"unknown type", models.DoctorSettingsInput{PricingType: "hourly"}, false},
		{"negative fixed", models.DoctorSettingsInput{PricingType: "fixed", FixedPrice: -1}, false},
		{"inverted range", models.DoctorSettingsInput{PricingType: "variable", PriceRangeMin: 2000, PriceRangeMax: 800}, false},
		{"empty multi", models.DoctorSettingsInput{PricingType: "multi"}, false},
		{"unlabelled session type", models.DoctorSettingsInput{PricingType: "multi", SessionTypes: []models.SessionType{{Price: 500}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateDoctorSettings(context.Background(), "doc-1", tt.input)
			if tt.ok && err != nil {
				t.Fatalf("UpdateDoctorSettings returned error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidPricing) {
				t.Fatalf("UpdateDoctorSettings error = %v, want ErrInvalidPricing", err)
			}
		})
	}

	// A zero duration falls back to the 30-minute default.
	doctor, err := svc.UpdateDoctorSettings(context.Background(), "doc-1", models.DoctorSettingsInput{PricingType: "fixed", FixedPrice: 1000})
	if err != nil {
		t.Fatalf("UpdateDoctorSettings returned error: %v", err)
	}
	if doctor.SessionDuration != 30 {
		t.Errorf("sessionDuration = %d, want the 30-minute default", doctor.SessionDuration)
	}
	if stored, _ := doctors.GetByID("doc-1"); stored.SessionDuration != 30 {
		t.Errorf("stored sessionDuration = %d, want 30", stored.SessionDuration)
	}
}

func TestUpdateMedicalProfile(t *testing.T) {
	svc, profiles, _, patients := newTestService()
	lat, lon := 35.4269, 7.1460

	if err := svc.UpdateMedicalProfile(context.Background(), "pat-1", models.MedicalProfileInput{
		BloodType: "O-",
		Latitude:  &lat,
		Longitude: &lon,
	}); err != nil {
		t.Fatalf("UpdateMedicalProfile returned error: %v", err)
	}

	patient, err := patients.GetByID("pat-1")
	if err != nil {
		t.Fatalf("no patient record stored: %v", err)
	}
	if patient.BloodType != "O-" {
		t.Errorf("bloodType = %q, want O-", patient.BloodType)
	}
	if _, ok := profiles.updates["pat-1"]; !ok {
		t.Errorf("position was not written to the profile")
	}

	// Without coordinates only the blood type moves; the profile keeps its
	// stored position.
	if err := svc.UpdateMedicalProfile(context.Background(), "pat-2", models.MedicalProfileInput{BloodType: "A+"}); err != nil {
		t.Fatalf("UpdateMedicalProfile returned error: %v", err)
	}
	if _, ok := profiles.updates["pat-2"]; ok {
		t.Errorf("profile position updated without coordinates")
	}
}
