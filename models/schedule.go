package models

import "time"

// WeeklyAvailability is one recurring availability window of a doctor.
// DayOfWeek runs 0 (Sunday) through 6. Times are "HH:MM:SS" strings and
// compare lexicographically, matching how they are persisted.
// WeeklyAvailabilityInput is the client payload for adding a window.
// DayOfWeek is a pointer so Sunday (0) survives required-field binding.
type WeeklyAvailabilityInput struct {
	DayOfWeek *int   `json:"dayOfWeek" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type WeeklyAvailability struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	DayOfWeek int       `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime string    `bson:"startTime" json:"startTime"`
	EndTime   string    `bson:"endTime" json:"endTime"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
