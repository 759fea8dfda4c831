package catalog

import (
	"testing"

	providerRepo "telecare/database/repository/provider"
	"telecare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memProviderRepo is an in-memory ProviderRepository for service tests.
type memProviderRepo struct {
	providers map[string]*models.Provider
	packages  map[string]*models.ProviderPackage
	ratings   map[string][]int
}

func newMemProviderRepo() *memProviderRepo {
	return &memProviderRepo{
		providers: make(map[string]*models.Provider),
		packages:  make(map[string]*models.ProviderPackage),
		ratings:   make(map[string][]int),
	}
}

func (r *memProviderRepo) Create(p *models.Provider) error {
	cp := *p
	r.providers[p.ID] = &cp
	return nil
}

func (r *memProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProviderRepo) GetByEmail(email string) (*models.Provider, error) {
	for _, p := range r.providers {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProviderRepo) GetByCategory(category string) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.providers {
		if p.Specialization == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProviderRepo) UpdateSetDocument(id string, _ bson.M) error {
	if _, ok := r.providers[id]; !ok {
		return providerRepo.ErrNotFound
	}
	return nil
}

func (r *memProviderRepo) ApplyReview(providerID string, rating int) error {
	if _, ok := r.providers[providerID]; !ok {
		return providerRepo.ErrNotFound
	}
	r.ratings[providerID] = append(r.ratings[providerID], rating)
	return nil
}

func (r *memProviderRepo) CreatePackage(pkg *models.ProviderPackage) error {
	cp := *pkg
	r.packages[pkg.ID] = &cp
	return nil
}

func (r *memProviderRepo) GetPackageByID(id string) (*models.ProviderPackage, error) {
	p, ok := r.packages[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProviderRepo) ListPackagesByProvider(providerID string) ([]models.ProviderPackage, error) {
	var out []models.ProviderPackage
	for _, p := range r.packages {
		if p.ProviderID == providerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProviderRepo) DeletePackage(id, providerID string) error {
	p, ok := r.packages[id]
	if !ok || p.ProviderID != providerID {
		return providerRepo.ErrNotFound
	}
	delete(r.packages, id)
	return nil
}

func (r *memProviderRepo) ListCategories() ([]models.ProviderCategory, error) {
	return []models.ProviderCategory{{ID: "cat-1", Name: "Dermatology"}}, nil
}

// memReviewRepo is an in-memory ReviewRepository.
type memReviewRepo struct {
	reviews []models.Review
}

func (r *memReviewRepo) Create(rev *models.Review) error {
	r.reviews = append(r.reviews, *rev)
	return nil
}

func (r *memReviewRepo) ListByProvider(providerID string) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.ProviderID == providerID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func newTestCatalog() (*DefaultCatalogService, *memProviderRepo, *memReviewRepo) {
	provRepo := newMemProviderRepo()
	revRepo := &memReviewRepo{}
	provRepo.Create(&models.Provider{ID: "prov-1", FullName: "Dr. Amina Hassan", Specialization: "Dermatology"})
	return &DefaultCatalogService{Providers: provRepo, Reviews: revRepo}, provRepo, revRepo
}

func TestGetProvidersByCategoryRequiresCategory(t *testing.T) {
	svc, _, _ := newTestCatalog()

	_, err := svc.GetProvidersByCategory("")
	require.Error(t, err)

	providers, err := svc.GetProvidersByCategory("Dermatology")
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "prov-1", providers[0].ID)
}

func TestAddReviewValidatesRating(t *testing.T) {
	svc, _, _ := newTestCatalog()

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.AddReview("patient-1", "prov-1", "appt-1", rating, "")
		assert.Error(t, err, "rating=%d", rating)
	}
}

func TestAddReviewUnknownProvider(t *testing.T) {
	svc, _, revRepo := newTestCatalog()

	_, err := svc.AddReview("patient-1", "no-such-provider", "appt-1", 5, "great")
	require.ErrorIs(t, err, providerRepo.ErrNotFound)
	assert.Empty(t, revRepo.reviews, "rejected review must not be stored")
}

func TestAddReviewStoresAndRollsUpRating(t *testing.T) {
	svc, provRepo, revRepo := newTestCatalog()

	rev, err := svc.AddReview("patient-1", "prov-1", "appt-1", 4, "helpful and on time")
	require.NoError(t, err)
	assert.NotEmpty(t, rev.ID)
	assert.Equal(t, 4, rev.Rating)

	require.Len(t, revRepo.reviews, 1)
	assert.Equal(t, []int{4}, provRepo.ratings["prov-1"], "rating must reach the provider roll-up")

	reviews, err := svc.GetProviderReviews("prov-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "helpful and on time", reviews[0].Comment)
}
