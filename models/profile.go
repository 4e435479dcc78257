package models

import "time"

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// Profile is the account record shared by every role.
type Profile struct {
	ID           string     `bson:"id" json:"id"`
	FullName     string     `bson:"fullName" json:"fullName"`
	Phone        string     `bson:"phone" json:"phone"`
	Role         string     `bson:"role" json:"role"`
	Wilaya       string     `bson:"wilaya" json:"wilaya"`
	Commune      string     `bson:"commune" json:"commune"`
	Location     Coordinate `bson:"location,omitempty" json:"location,omitempty"`
	PasswordHash string     `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}
