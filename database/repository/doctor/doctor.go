package doctorRepo

import "sihati/models"

// DoctorSearchCriteria narrows the doctor directory. Both filters are
// optional case-insensitive substring matches, like the original search form.
type DoctorSearchCriteria struct {
	Specialization string
	Wilaya         string
}

// DoctorListing is a directory entry: practice settings joined with the
// public profile fields a patient sees while choosing a doctor.
type DoctorListing struct {
	models.Doctor `bson:",inline"`
	FullName      string `bson:"fullName" json:"fullName"`
	Wilaya        string `bson:"wilaya" json:"wilaya"`
	Commune       string `bson:"commune" json:"commune"`
}

// DoctorRepository defines persistence operations for doctor settings.
type DoctorRepository interface {
	Upsert(doctor *models.Doctor) error
	GetByID(id string) (*models.Doctor, error)
	Search(criteria DoctorSearchCriteria) ([]DoctorListing, error)
}
