package donationRepo

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

// MongoDonationRepo implements DonationRepository using MongoDB.
type MongoDonationRepo struct {
	coll *mongo.Collection
}

// NewMongoDonationRepo creates a new instance of DonationRepository using MongoDB.
func NewMongoDonationRepo() DonationRepository {
	coll := database.DB().Collection("blood_donation_requests")
	repo := &MongoDonationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDonationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new donation request.
func (r *MongoDonationRepo) Create(request *models.DonationRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	request.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to create donation request: %w", err)
	}
	return nil
}

// GetByID retrieves a donation request by its unique ID.
func (r *MongoDonationRepo) GetByID(id string) (*models.DonationRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var request models.DonationRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		return nil, fmt.Errorf("failed to fetch donation request with id %s: %w", id, err)
	}
	return &request, nil
}

// ListActive returns active requests, newest first.
func (r *MongoDonationRepo) ListActive() ([]models.DonationRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": models.DonationActive}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve donation requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.DonationRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode donation requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus sets the status of an existing donation request.
func (r *MongoDonationRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update donation request with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("donation request with id %s not found", id)
	}
	return nil
}
