package donationRepo

import "sihati/models"

// DonationRepository defines persistence operations for blood-donation
// broadcast requests.
type DonationRepository interface {
	Create(request *models.DonationRequest) error
	GetByID(id string) (*models.DonationRequest, error)
	// ListActive returns active requests, newest first.
	ListActive() ([]models.DonationRequest, error)
	UpdateStatus(id, status string) error
}
