package venueRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"openinghours/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const venueCollection = "venues"

// MongoVenueRepo implements VenueRepository using MongoDB.
type MongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo creates a venue repository on the given database.
func NewMongoVenueRepo(client *mongo.Client, dbName string) *MongoVenueRepo {
	return &MongoVenueRepo{coll: client.Database(dbName).Collection(venueCollection)}
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// EnsureIndexes creates indexes for fields frequently used in queries.
func (r *MongoVenueRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a venue by its unique ID.
func (r *MongoVenueRepo) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var venue models.Venue
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to fetch venue with id %s: %w", id, err)
	}
	return &venue, nil
}

// GetByCategory lists venues in a category, or every venue when category is empty.
func (r *MongoVenueRepo) GetByCategory(ctx context.Context, category string) ([]models.Venue, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	return r.find(ctx, filter)
}

// GetWithAlterations lists venues that carry at least one alteration.
func (r *MongoVenueRepo) GetWithAlterations(ctx context.Context) ([]models.Venue, error) {
	return r.find(ctx, bson.M{"alterations": bson.M{"$exists": true, "$ne": bson.M{}}})
}

func (r *MongoVenueRepo) find(ctx context.Context, filter bson.M) ([]models.Venue, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	return venues, nil
}

// Create inserts a new venue document.
func (r *MongoVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, venue); err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

// Update replaces an existing venue document.
func (r *MongoVenueRepo) Update(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	venue.UpdatedAt = time.Now()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": venue.ID}, venue)
	if err != nil {
		return fmt.Errorf("failed to update venue with id %s: %w", venue.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrVenueNotFound
	}
	return nil
}

// Delete removes a venue document by its ID.
func (r *MongoVenueRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete venue with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrVenueNotFound
	}
	return nil
}
