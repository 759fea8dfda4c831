// File: services/catalog/catalog.go
package catalog

import (
	"fmt"

	providerRepo "telecare/database/repository/provider"
	reviewRepo "telecare/database/repository/review"
	"telecare/models"

	"github.com/google/uuid"
)

// CatalogService resolves the provider directory for the booking flow:
// categories, providers per category and the packages each provider
// offers, plus the directory engagement features (reviews, favorites).
type CatalogService interface {
	GetCategories() ([]models.ProviderCategory, error)
	GetProvidersByCategory(category string) ([]models.Provider, error)
	GetProvider(id string) (*models.Provider, error)
	GetPackagesByProvider(providerID string) ([]models.ProviderPackage, error)
	GetPackage(id string) (*models.ProviderPackage, error)

	AddReview(patientID, providerID, appointmentID string, rating int, comment string) (*models.Review, error)
	GetProviderReviews(providerID string) ([]models.Review, error)
}

// DefaultCatalogService implements CatalogService over the provider and
// review repositories.
type DefaultCatalogService struct {
	Providers providerRepo.ProviderRepository
	Reviews   reviewRepo.ReviewRepository
}

// GetCategories lists all directory categories.
func (s *DefaultCatalogService) GetCategories() ([]models.ProviderCategory, error) {
	return s.Providers.ListCategories()
}

// GetProvidersByCategory lists providers for one specialization.
func (s *DefaultCatalogService) GetProvidersByCategory(category string) ([]models.Provider, error) {
	if category == "" {
		return nil, fmt.Errorf("category must not be empty")
	}
	return s.Providers.GetByCategory(category)
}

// GetProvider resolves one provider by ID.
func (s *DefaultCatalogService) GetProvider(id string) (*models.Provider, error) {
	return s.Providers.GetByID(id)
}

// GetPackagesByProvider lists a provider's packages, cheapest first.
func (s *DefaultCatalogService) GetPackagesByProvider(providerID string) ([]models.ProviderPackage, error) {
	return s.Providers.ListPackagesByProvider(providerID)
}

// GetPackage resolves one package by ID.
func (s *DefaultCatalogService) GetPackage(id string) (*models.ProviderPackage, error) {
	return s.Providers.GetPackageByID(id)
}

// AddReview stores a patient's review and folds the rating into the
// provider's rolling average.
func (s *DefaultCatalogService) AddReview(patientID, providerID, appointmentID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}
	if _, err := s.Providers.GetByID(providerID); err != nil {
		return nil, err
	}

	rev := &models.Review{
		ID:            uuid.New().String(),
		PatientID:     patientID,
		ProviderID:    providerID,
		AppointmentID: appointmentID,
		Rating:        rating,
		Comment:       comment,
	}
	if err := s.Reviews.Create(rev); err != nil {
		return nil, err
	}
	if err := s.Providers.ApplyReview(providerID, rating); err != nil {
		return nil, fmt.Errorf("review stored but rating roll-up failed: %w", err)
	}
	return rev, nil
}

// GetProviderReviews lists a provider's reviews, newest first.
func (s *DefaultCatalogService) GetProviderReviews(providerID string) ([]models.Review, error) {
	return s.Reviews.ListByProvider(providerID)
}
