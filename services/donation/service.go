package donation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	donationRepo "sihati/database/repository/donation"
	patientRepo "sihati/database/repository/patient"
	profileRepo "sihati/database/repository/profile"
	"sihati/models"
	"sihati/services/notification"
	"sihati/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BroadcastResult is what the requester gets back: the persisted request and
// the ids that were notified.
type BroadcastResult struct {
	Request    *models.DonationRequest `json:"request"`
	Recipients []string                `json:"recipients"`
}

// DonationService opens blood-donation broadcasts, fans out the proximity
// notifications and drives the request lifecycle.
type DonationService interface {
	CreateRequest(ctx context.Context, callerID string, input models.DonationRequestInput) (*BroadcastResult, error)
	ListActive(ctx context.Context) ([]models.DonationRequest, error)
	// UpdateStatus closes a request (fulfilled or cancelled) on behalf of
	// its owner.
	UpdateStatus(ctx context.Context, callerID, requestID, newStatus string) (*models.DonationRequest, error)
}

const activeRequestsCacheKey = "donations:active"
const activeRequestsCacheTTL = 2 * time.Minute

// DefaultDonationService is the production implementation of DonationService.
type DefaultDonationService struct {
	Repo     donationRepo.DonationRepository
	Patients patientRepo.PatientRepository
	Profiles profileRepo.ProfileRepository
	Notifier notification.NotificationService
	Cache    *redis.Client
}

// CreateRequest validates the input, persists an active request anchored at
// the caller's captured position and notifies every matching candidate.
// Matching runs against a one-shot candidate snapshot; patients registered
// after this call never hear about the request.
func (s *DefaultDonationService) CreateRequest(ctx context.Context, callerID string, input models.DonationRequestInput) (*BroadcastResult, error) {
	if input.BloodType == "" {
		return nil, ErrMissingBloodType
	}
	if input.Latitude == nil || input.Longitude == nil {
		return nil, ErrLocationUnavailable
	}

	profile, err := s.Profiles.GetByID(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requester profile: %w", err)
	}

	request := &models.DonationRequest{
		ID:        uuid.New().String(),
		PatientID: callerID,
		BloodType: input.BloodType,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		Wilaya:    profile.Wilaya,
		Message:   input.Message,
		Status:    models.DonationActive,
	}
	if err := s.Repo.Create(request); err != nil {
		return nil, err
	}
	s.invalidateActiveCache(ctx)

	candidates, err := s.Patients.GetCandidatesByBloodType(input.BloodType)
	if err != nil {
		// The request is already live; a failed snapshot only costs the
		// broadcast.
		utils.GetLogger().Error("failed to snapshot donation candidates",
			zap.String("requestId", request.ID),
			zap.Error(err))
		return &BroadcastResult{Request: request, Recipients: []string{}}, nil
	}

	recipients := MatchRecipients(*request, candidates)
	s.broadcast(ctx, request, recipients)

	return &BroadcastResult{Request: request, Recipients: recipients}, nil
}

// broadcast emits one notification per matched recipient. Failures are
// logged per recipient and never abort the fan-out.
func (s *DefaultDonationService) broadcast(ctx context.Context, request *models.DonationRequest, recipients []string) {
	logger := utils.GetLogger()
	message := fmt.Sprintf("شخص في منطقتك يحتاج لزمرة دم %s", request.BloodType)

	for _, userID := range recipients {
		if _, err := s.Notifier.Emit(ctx, userID, "🩸 طلب تبرع بالدم", message, models.NotificationBloodDonation); err != nil {
			logger.Warn("failed to deliver donation notification",
				zap.String("requestId", request.ID),
				zap.String("userId", userID),
				zap.Error(err))
		}
	}
}

// ListActive returns the open requests, newest first, served from a short
// Redis cache when possible.
func (s *DefaultDonationService) ListActive(ctx context.Context) ([]models.DonationRequest, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, activeRequestsCacheKey).Result(); err == nil {
			var cached []models.DonationRequest
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	requests, err := s.Repo.ListActive()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(requests); err == nil {
			if err := s.Cache.Set(ctx, activeRequestsCacheKey, raw, activeRequestsCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache active donation requests", zap.Error(err))
			}
		}
	}
	return requests, nil
}

// UpdateStatus closes an active request. Only the owner can close it, and
// the only legal targets are fulfilled and cancelled.
func (s *DefaultDonationService) UpdateStatus(ctx context.Context, callerID, requestID, newStatus string) (*models.DonationRequest, error) {
	if newStatus != models.DonationFulfilled && newStatus != models.DonationCancelled {
		return nil, fmt.Errorf("%w: %s", ErrIllegalStatus, newStatus)
	}

	request, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if request.PatientID != callerID {
		return nil, ErrNotOwner
	}
	if request.Status != models.DonationActive {
		return nil, fmt.Errorf("%w: request is already %s", ErrIllegalStatus, request.Status)
	}

	if err := s.Repo.UpdateStatus(requestID, newStatus); err != nil {
		return nil, err
	}
	request.Status = newStatus
	s.invalidateActiveCache(ctx)
	return request, nil
}

func (s *DefaultDonationService) invalidateActiveCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, activeRequestsCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate donation cache", zap.Error(err))
	}
}
