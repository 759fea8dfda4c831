package providerRepo

import (
	"errors"

	"telecare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no provider or package matches the query.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository defines data access for the provider directory:
// provider accounts, their published packages and the category list.
type ProviderRepository interface {
	// Create inserts a new provider record.
	Create(p *models.Provider) error
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetByEmail retrieves a provider by email, nil when absent.
	GetByEmail(email string) (*models.Provider, error)
	// GetByCategory retrieves providers whose specialization matches the
	// category, ordered by rating descending.
	GetByCategory(category string) ([]models.Provider, error)
	// UpdateSetDocument applies a $set update to one provider.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// ApplyReview folds one new rating into the provider's rolling average.
	ApplyReview(providerID string, rating int) error

	// CreatePackage publishes a new service package.
	CreatePackage(pkg *models.ProviderPackage) error
	// GetPackageByID retrieves a single package.
	GetPackageByID(id string) (*models.ProviderPackage, error)
	// ListPackagesByProvider retrieves a provider's packages, cheapest first.
	ListPackagesByProvider(providerID string) ([]models.ProviderPackage, error)
	// DeletePackage removes a package owned by the given provider.
	DeletePackage(id, providerID string) error

	// ListCategories retrieves all directory categories ordered by name.
	ListCategories() ([]models.ProviderCategory, error)
}
