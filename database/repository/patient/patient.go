package patientRepo

import "sihati/models"

// PatientRepository defines persistence operations for patient records and
// the candidate population used by donation broadcasts.
type PatientRepository interface {
	Upsert(patient *models.Patient) error
	GetByID(id string) (*models.Patient, error)
	// GetCandidatesByBloodType returns every patient with the given blood
	// type, joined with the wilaya and last known position from their
	// profile. The result is a snapshot; matching never re-reads it.
	GetCandidatesByBloodType(bloodType string) ([]models.DonationCandidate, error)
}
