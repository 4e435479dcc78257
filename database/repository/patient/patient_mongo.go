package patientRepo

import (
	"context"
	"fmt"
	"time"

	"sihati/database"
	"sihati/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPatientRepo implements PatientRepository using MongoDB.
type MongoPatientRepo struct {
	coll     *mongo.Collection
	profiles *mongo.Collection
}

// NewMongoPatientRepo creates a new instance of PatientRepository using MongoDB.
func NewMongoPatientRepo() PatientRepository {
	db := database.DB()
	repo := &MongoPatientRepo{
		coll:     db.Collection("patients"),
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

func (r *MongoPatientRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bloodType", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert writes the patient's medical attributes, creating the record on
// first save.
func (r *MongoPatientRepo) Upsert(patient *models.Patient) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": patient.ID}
	update := bson.M{"$set": patient}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert patient with id %s: %w", patient.ID, err)
	}
	return nil
}

// GetByID retrieves a patient record by profile ID.
func (r *MongoPatientRepo) GetByID(id string) (*models.Patient, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var patient models.Patient
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&patient); err != nil {
		return nil, fmt.Errorf("failed to fetch patient with id %s: %w", id, err)
	}
	return &patient, nil
}

// GetCandidatesByBloodType assembles the broadcast candidate snapshot.
// Patients whose profile is missing are skipped rather than failing the
// whole broadcast.
func (r *MongoPatientRepo) GetCandidatesByBloodType(bloodType string) ([]models.DonationCandidate, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"bloodType": bloodType})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve patients with blood type %s: %w", bloodType, err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}

	var candidates []models.DonationCandidate
	for _, p := range patients {
		var profile models.Profile
		if err := r.profiles.FindOne(ctx, bson.M{"id": p.ID}).Decode(&profile); err != nil {
			if err == mongo.ErrNoDocuments {
				continue
			}
			return nil, fmt.Errorf("failed to fetch profile for patient %s: %w", p.ID, err)
		}
		candidates = append(candidates, models.DonationCandidate{
			ID:        p.ID,
			BloodType: p.BloodType,
			Wilaya:    profile.Wilaya,
			Location:  profile.Location,
		})
	}
	return candidates, nil
}
