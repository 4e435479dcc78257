package profileRepo

import (
	"sihati/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfileRepository defines persistence operations for account profiles.
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByID(id string) (*models.Profile, error)
	GetByPhone(phone string) (*models.Profile, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
}
