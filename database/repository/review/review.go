package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"telecare/database"
	"telecare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository defines data access for provider reviews.
type ReviewRepository interface {
	Create(rev *models.Review) error
	ListByProvider(providerID string) ([]models.Review, error)
}

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	repo := &MongoReviewRepo{coll: database.DB().Collection("reviews")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}); err != nil {
		fmt.Printf("failed to create review indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(rev *models.Review) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, rev); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListByProvider retrieves a provider's reviews, newest first.
func (r *MongoReviewRepo) ListByProvider(providerID string) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"provider_id": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var revs []models.Review
	for cursor.Next(ctx) {
		var rev models.Review
		if err := cursor.Decode(&rev); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		revs = append(revs, rev)
	}
	return revs, cursor.Err()
}
