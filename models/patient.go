package models

// Patient holds the medical attributes attached to a patient profile.
// Its ID equals the owning profile's ID.
type Patient struct {
	ID        string `bson:"id" json:"id"`
	BloodType string `bson:"bloodType,omitempty" json:"bloodType,omitempty"`
}
