package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	doctorRepo "sihati/database/repository/doctor"
	patientRepo "sihati/database/repository/patient"
	profileRepo "sihati/database/repository/profile"
	"sihati/models"
	"sihati/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var (
	// ErrPhoneTaken means the phone number is already registered.
	ErrPhoneTaken = errors.New("phone number is already registered")

	// ErrInvalidCredentials covers both an unknown phone and a wrong
	// password, indistinguishable to the caller on purpose.
	ErrInvalidCredentials = errors.New("invalid phone number or password")

	// ErrInvalidPricing means the doctor settings named an unknown pricing
	// type or an inconsistent price shape for the chosen type.
	ErrInvalidPricing = errors.New("invalid pricing configuration")
)

const (
	tokenDuration        = 72 * time.Hour
	doctorSearchCacheTTL = 5 * time.Minute
)

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Profiles profileRepo.ProfileRepository
	Doctors  doctorRepo.DoctorRepository
	Patients patientRepo.PatientRepository
	Cache    *redis.Client
}

// Register creates the profile plus the role record it anchors: doctors get
// default practice settings (fixed pricing, 30-minute sessions), patients an
// empty medical record to fill in later.
func (s *DefaultUserService) Register(ctx context.Context, input models.RegisterInput) (*models.AuthSession, error) {
	existing, err := s.Profiles.GetByPhone(input.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone uniqueness: %w", err)
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &models.Profile{
		ID:           uuid.New().String(),
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         input.Role,
		Wilaya:       input.Wilaya,
		Commune:      input.Commune,
		PasswordHash: hash,
	}
	if err := s.Profiles.Create(profile); err != nil {
		return nil, err
	}

	switch input.Role {
	case models.RoleDoctor:
		doctor := &models.Doctor{
			ID:              profile.ID,
			PricingType:     models.PricingFixed,
			SessionDuration: 30,
		}
		if err := s.Doctors.Upsert(doctor); err != nil {
			return nil, fmt.Errorf("failed to create doctor settings: %w", err)
		}
	case models.RolePatient:
		if err := s.Patients.Upsert(&models.Patient{ID: profile.ID}); err != nil {
			return nil, fmt.Errorf("failed to create patient record: %w", err)
		}
	}

	token, err := utils.GenerateToken(profile.ID, profile.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthSession{Token: token, Profile: *profile}, nil
}

// Login checks the phone-and-password pair and issues a fresh token.
func (s *DefaultUserService) Login(ctx context.Context, input models.LoginInput) (*models.AuthSession, error) {
	profile, err := s.Profiles.GetByPhone(input.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
	if profile == nil || !utils.CheckPasswordHash(input.Password, profile.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(profile.ID, profile.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthSession{Token: token, Profile: *profile}, nil
}

// GetProfileByID returns the profile for the given id.
func (s *DefaultUserService) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	return s.Profiles.GetByID(id)
}

// SearchDoctors runs a directory search, served from a short Redis cache
// keyed on the criteria when possible.
func (s *DefaultUserService) SearchDoctors(ctx context.Context, criteria doctorRepo.DoctorSearchCriteria) ([]doctorRepo.DoctorListing, error) {
	cacheKey := doctorSearchCacheKey(criteria)
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached []doctorRepo.DoctorListing
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	listings, err := s.Doctors.Search(criteria)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(listings); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, raw, doctorSearchCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache doctor search", zap.Error(err))
			}
		}
	}
	return listings, nil
}

// UpdateDoctorSettings validates and stores the doctor's practice settings.
// The search cache is not invalidated; directory entries may lag by the
// cache TTL.
func (s *DefaultUserService) UpdateDoctorSettings(ctx context.Context, doctorID string, input models.DoctorSettingsInput) (*models.Doctor, error) {
	if err := validatePricing(input); err != nil {
		return nil, err
	}

	duration := input.SessionDuration
	if duration <= 0 {
		duration = 30
	}

	doctor := &models.Doctor{
		ID:              doctorID,
		Specialization:  input.Specialization,
		PricingType:     input.PricingType,
		FixedPrice:      input.FixedPrice,
		PriceRangeMin:   input.PriceRangeMin,
		PriceRangeMax:   input.PriceRangeMax,
		SessionTypes:    input.SessionTypes,
		SessionDuration: duration,
	}
	if err := s.Doctors.Upsert(doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// UpdateMedicalProfile stores the patient's blood type and, when both
// coordinates are present, their last known position on the profile.
func (s *DefaultUserService) UpdateMedicalProfile(ctx context.Context, patientID string, input models.MedicalProfileInput) error {
	patient := &models.Patient{ID: patientID, BloodType: input.BloodType}
	if err := s.Patients.Upsert(patient); err != nil {
		return err
	}

	if input.Latitude != nil && input.Longitude != nil {
		update := bson.M{
			"location":  models.NewCoordinate(*input.Latitude, *input.Longitude),
			"updatedAt": time.Now(),
		}
		if err := s.Profiles.UpdateSetDocument(patientID, update); err != nil {
			return fmt.Errorf("failed to store position: %w", err)
		}
	}
	return nil
}

func validatePricing(input models.DoctorSettingsInput) error {
	switch input.PricingType {
	case models.PricingFixed:
		if input.FixedPrice < 0 {
			return fmt.Errorf("%w: fixed price must not be negative", ErrInvalidPricing)
		}
	case models.PricingVariable:
		if input.PriceRangeMin < 0 || input.PriceRangeMax < input.PriceRangeMin {
			return fmt.Errorf("%w: price range must satisfy 0 <= min <= max", ErrInvalidPricing)
		}
	case models.PricingMulti:
		if len(input.SessionTypes) == 0 {
			return fmt.Errorf("%w: multi pricing needs at least one session type", ErrInvalidPricing)
		}
		for _, st := range input.SessionTypes {
			if st.Label == "" || st.Price < 0 {
				return fmt.Errorf("%w: session type needs a label and a non-negative price", ErrInvalidPricing)
			}
		}
	default:
		return fmt.Errorf("%w: unknown pricing type %q", ErrInvalidPricing, input.PricingType)
	}
	return nil
}

// doctorSearchCacheKey derives a stable cache key from the criteria.
func doctorSearchCacheKey(criteria doctorRepo.DoctorSearchCriteria) string {
	sum := sha256.Sum256([]byte(criteria.Specialization + "\x00" + criteria.Wilaya))
	return "doctors:search:" + hex.EncodeToString(sum[:8])
}
