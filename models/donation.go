package models

import "time"

// Donation request states. Closure is a manual status update by the owner;
// nothing closes a request algorithmically.
const (
	DonationActive    = "active"
	DonationFulfilled = "fulfilled"
	DonationCancelled = "cancelled"
)

// DonationRequest is a blood-donation broadcast anchored at the requester's
// captured position.
type DonationRequest struct {
	ID        string    `bson:"id" json:"id"`
	PatientID string    `bson:"patientId" json:"patientId"`
	BloodType string    `bson:"bloodType" json:"bloodType"`
	Latitude  float64   `bson:"latitude" json:"latitude"`
	Longitude float64   `bson:"longitude" json:"longitude"`
	Wilaya    string    `bson:"wilaya" json:"wilaya"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Origin returns the request's anchor point.
func (r DonationRequest) Origin() Coordinate {
	return NewCoordinate(r.Latitude, r.Longitude)
}

// DonationRequestInput is the client payload for opening a broadcast. The
// coordinates are pointers so a device that never produced a fix is
// distinguishable from one sitting at 0,0.
type DonationRequestInput struct {
	BloodType string   `json:"bloodType" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Message   string   `json:"message"`
}

// DonationCandidate is one patient considered for a broadcast: their blood
// type plus the wilaya and last known position from their profile.
type DonationCandidate struct {
	ID        string
	BloodType string
	Wilaya    string
	Location  Coordinate
}
