package providerRepo

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

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	providers  *mongo.Collection
	packages   *mongo.Collection
	categories *mongo.Collection
}

// NewMongoProviderRepo creates a new ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	db := database.DB()
	repo := &MongoProviderRepo{
		providers:  db.Collection("providers"),
		packages:   db.Collection("provider_packages"),
		categories: db.Collection("provider_categories"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create provider indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProviderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.providers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialization", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create provider indexes: %w", err)
	}
	if _, err := r.packages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create package indexes: %w", err)
	}
	return nil
}

// Create inserts a new provider document.
func (r *MongoProviderRepo) Create(p *models.Provider) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.providers.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

// GetByID retrieves a provider by its unique ID.
func (r *MongoProviderRepo) GetByID(id string) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Provider
	if err := r.providers.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &p, nil
}

// GetByEmail retrieves a provider by email. Returns nil, nil when absent.
func (r *MongoProviderRepo) GetByEmail(email string) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Provider
	if err := r.providers.FindOne(ctx, bson.M{"email": email}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider with email %s: %w", email, err)
	}
	return &p, nil
}

// GetByCategory retrieves providers for one specialization, best rated first.
func (r *MongoProviderRepo) GetByCategory(category string) ([]models.Provider, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.providers.Find(ctx, bson.M{"specialization": category}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve providers for category %s: %w", category, err)
	}
	defer cursor.Close(ctx)

	var provs []models.Provider
	for cursor.Next(ctx) {
		var p models.Provider
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode provider: %w", err)
		}
		provs = append(provs, p)
	}
	return provs, cursor.Err()
}

// UpdateSetDocument applies a $set update to one provider.
func (r *MongoProviderRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	result, err := r.providers.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplyReview folds one rating into the provider's rolling average.
func (r *MongoProviderRepo) ApplyReview(providerID string, rating int) error {
	p, err := r.GetByID(providerID)
	if err != nil {
		return err
	}
	newCount := p.ReviewCount + 1
	newRating := (p.Rating*float64(p.ReviewCount) + float64(rating)) / float64(newCount)
	return r.UpdateSetDocument(providerID, bson.M{
		"rating":       newRating,
		"review_count": newCount,
	})
}

// CreatePackage publishes a new service package.
func (r *MongoProviderRepo) CreatePackage(pkg *models.ProviderPackage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if _, err := r.packages.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

// GetPackageByID retrieves a single package.
func (r *MongoProviderRepo) GetPackageByID(id string) (*models.ProviderPackage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.ProviderPackage
	if err := r.packages.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch package with id %s: %w", id, err)
	}
	return &pkg, nil
}

// ListPackagesByProvider retrieves a provider's packages, cheapest first.
func (r *MongoProviderRepo) ListPackagesByProvider(providerID string) ([]models.ProviderPackage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "price", Value: 1}})
	cursor, err := r.packages.Find(ctx, bson.M{"provider_id": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve packages for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var pkgs []models.ProviderPackage
	for cursor.Next(ctx) {
		var pkg models.ProviderPackage
		if err := cursor.Decode(&pkg); err != nil {
			return nil, fmt.Errorf("failed to decode package: %w", err)
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, cursor.Err()
}

// DeletePackage removes a package owned by the given provider.
func (r *MongoProviderRepo) DeletePackage(id, providerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.packages.DeleteOne(ctx, bson.M{"id": id, "provider_id": providerID})
	if err != nil {
		return fmt.Errorf("failed to delete package with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCategories retrieves all directory categories ordered by name.
func (r *MongoProviderRepo) ListCategories() ([]models.ProviderCategory, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	var cats []models.ProviderCategory
	for cursor.Next(ctx) {
		var c models.ProviderCategory
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, cursor.Err()
}
