package doctorRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sihati/database"
	"sihati/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll     *mongo.Collection
	profiles *mongo.Collection
}

// NewMongoDoctorRepo creates a new instance of DoctorRepository using MongoDB.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.DB()
	repo := &MongoDoctorRepo{
		coll:     db.Collection("doctors"),
		profiles: db.Collection("profiles"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDoctorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialization", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert writes the doctor's practice settings, creating the record on
// first save.
func (r *MongoDoctorRepo) Upsert(doctor *models.Doctor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": doctor.ID}
	update := bson.M{"$set": doctor}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert doctor with id %s: %w", doctor.ID, err)
	}
	return nil
}

// GetByID retrieves a doctor's settings by profile ID.
func (r *MongoDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doctor); err != nil {
		return nil, fmt.Errorf("failed to fetch doctor with id %s: %w", id, err)
	}
	return &doctor, nil
}

// Search lists directory entries matching the criteria, joining each doctor
// with the public fields of its profile.
func (r *MongoDoctorRepo) Search(criteria DoctorSearchCriteria) ([]DoctorListing, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.Specialization != "" {
		filter["specialization"] = bson.M{"$regex": criteria.Specialization, "$options": "i"}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}

	var listings []DoctorListing
	for _, d := range doctors {
		var profile models.Profile
		if err := r.profiles.FindOne(ctx, bson.M{"id": d.ID}).Decode(&profile); err != nil {
			if err == mongo.ErrNoDocuments {
				continue
			}
			return nil, fmt.Errorf("failed to fetch profile for doctor %s: %w", d.ID, err)
		}
		if criteria.Wilaya != "" && !containsFold(profile.Wilaya, criteria.Wilaya) {
			continue
		}
		listings = append(listings, DoctorListing{
			Doctor:   d,
			FullName: profile.FullName,
			Wilaya:   profile.Wilaya,
			Commune:  profile.Commune,
		})
	}
	return listings, nil
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
