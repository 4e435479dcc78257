package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.DB().Collection("doctor_schedules")
	repo := &MongoScheduleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new availability window.
func (r *MongoScheduleRepo) Create(availability *models.WeeklyAvailability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	availability.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, availability)
	if err != nil {
		return fmt.Errorf("failed to create availability: %w", err)
	}
	return nil
}

// GetByID retrieves a single availability window.
func (r *MongoScheduleRepo) GetByID(id string) (*models.WeeklyAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var availability models.WeeklyAvailability
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&availability); err != nil {
		return nil, fmt.Errorf("failed to fetch availability with id %s: %w", id, err)
	}
	return &availability, nil
}

// ListByDoctor returns the doctor's windows ordered by day of week then
// start time; start times are "HH:MM:SS" so the lexicographic sort is the
// chronological one.
func (r *MongoScheduleRepo) ListByDoctor(doctorID string) ([]models.WeeklyAvailability, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve schedules for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var schedules []models.WeeklyAvailability
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("failed to decode schedules: %w", err)
	}
	return schedules, nil
}

// Delete removes an availability window by its ID.
func (r *MongoScheduleRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete availability with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("availability with id %s not found", id)
	}
	return nil
}
