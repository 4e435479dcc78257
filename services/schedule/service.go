package schedule

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "sihati/database/repository/schedule"
	"sihati/models"

	"github.com/google/uuid"
)

var (
	// ErrInvalidDay means dayOfWeek fell outside 0..6.
	ErrInvalidDay = errors.New("dayOfWeek must be between 0 (Sunday) and 6")

	// ErrInvalidWindow means the window's times could not be parsed or the
	// window does not start before it ends.
	ErrInvalidWindow = errors.New("invalid availability window")

	// ErrNotOwner means the window belongs to a different doctor.
	ErrNotOwner = errors.New("availability window does not belong to the caller")
)

// ScheduleService manages a doctor's recurring weekly availability windows.
type ScheduleService interface {
	Add(ctx context.Context, doctorID string, input models.WeeklyAvailabilityInput) (*models.WeeklyAvailability, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.WeeklyAvailability, error)
	Delete(ctx context.Context, callerID, windowID string) error
}

// DefaultScheduleService is the production implementation of ScheduleService.
type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
}

// Add validates and persists one availability window for the doctor.
// Overlapping windows on the same day are accepted; booking never consults
// them, they only drive what the patient-facing schedule displays.
func (s *DefaultScheduleService) Add(ctx context.Context, doctorID string, input models.WeeklyAvailabilityInput) (*models.WeeklyAvailability, error) {
	if input.DayOfWeek == nil || *input.DayOfWeek < 0 || *input.DayOfWeek > 6 {
		return nil, ErrInvalidDay
	}

	start, err := normalizeClock(input.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	end, err := normalizeClock(input.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	if start >= end {
		return nil, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidWindow, start, end)
	}

	window := &models.WeeklyAvailability{
		ID:        uuid.New().String(),
		DoctorID:  doctorID,
		DayOfWeek: *input.DayOfWeek,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.Repo.Create(window); err != nil {
		return nil, err
	}
	return window, nil
}

// ListByDoctor returns the doctor's windows ordered by day, then start time.
func (s *DefaultScheduleService) ListByDoctor(ctx context.Context, doctorID string) ([]models.WeeklyAvailability, error) {
	return s.Repo.ListByDoctor(doctorID)
}

// Delete removes one window after checking the caller owns it.
func (s *DefaultScheduleService) Delete(ctx context.Context, callerID, windowID string) error {
	window, err := s.Repo.GetByID(windowID)
	if err != nil {
		return err
	}
	if window.DoctorID != callerID {
		return ErrNotOwner
	}
	return s.Repo.Delete(windowID)
}

// normalizeClock accepts "HH:MM" or "HH:MM:SS" and returns the canonical
// zero-second "HH:MM:00" form everything persists and compares.
func normalizeClock(value string) (string, error) {
	var hour, minute int
	var second int

	switch len(value) {
	case 5:
		if _, err := fmt.Sscanf(value, "%2d:%2d", &hour, &minute); err != nil {
			return "", fmt.Errorf("malformed time %q", value)
		}
	case 8:
		if _, err := fmt.Sscanf(value, "%2d:%2d:%2d", &hour, &minute, &second); err != nil {
			return "", fmt.Errorf("malformed time %q", value)
		}
	default:
		return "", fmt.Errorf("malformed time %q", value)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return "", fmt.Errorf("time %q out of range", value)
	}
	return fmt.Sprintf("%02d:%02d:00", hour, minute), nil
}
