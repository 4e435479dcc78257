package user

import (
	"context"

	doctorRepo "sihati/database/repository/doctor"
	"sihati/models"
)

// UserService covers account lifecycle plus the profile surfaces built on
// top of it: the doctor directory and the patient medical profile.
type UserService interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.AuthSession, error)
	Login(ctx context.Context, input models.LoginInput) (*models.AuthSession, error)
	GetProfileByID(ctx context.Context, id string) (*models.Profile, error)
	SearchDoctors(ctx context.Context, criteria doctorRepo.DoctorSearchCriteria) ([]doctorRepo.DoctorListing, error)
	UpdateDoctorSettings(ctx context.Context, doctorID string, input models.DoctorSettingsInput) (*models.Doctor, error)
	UpdateMedicalProfile(ctx context.Context, patientID string, input models.MedicalProfileInput) error
}
