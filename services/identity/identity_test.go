package identity

import (
	"testing"

	patientRepo "telecare/database/repository/patient"
	providerRepo "telecare/database/repository/provider"
	"telecare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memPatientRepo implements the patient repository over a map.
type memPatientRepo struct {
	patients map[string]*models.Patient
}

func newMemPatientRepo() *memPatientRepo {
	return &memPatientRepo{patients: make(map[string]*models.Patient)}
}

func (r *memPatientRepo) Create(p *models.Patient) error {
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}

func (r *memPatientRepo) GetByID(id string) (*models.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, patientRepo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memPatientRepo) GetByEmail(email string) (*models.Patient, error) {
	for _, p := range r.patients {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPatientRepo) UpdateSetDocument(string, bson.M) error { return nil }

func (r *memPatientRepo) AddEmergencyContact(*models.EmergencyContact) error { return nil }
func (r *memPatientRepo) ListEmergencyContacts(string) ([]models.EmergencyContact, error) {
	return nil, nil
}
func (r *memPatientRepo) DeleteEmergencyContact(string, string) error { return nil }

func (r *memPatientRepo) AddFavorite(string, string) error        { return nil }
func (r *memPatientRepo) RemoveFavorite(string, string) error     { return nil }
func (r *memPatientRepo) IsFavorite(string, string) (bool, error) { return false, nil }
func (r *memPatientRepo) ListFavorites(string) ([]string, error)  { return nil, nil }

// memProviderRepo implements the provider repository over a map.
type memProviderRepo struct {
	providers map[string]*models.Provider
}

func newMemProviderRepo() *memProviderRepo {
	return &memProviderRepo{providers: make(map[string]*models.Provider)}
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

func (r *memProviderRepo) GetByCategory(string) ([]models.Provider, error) { return nil, nil }
func (r *memProviderRepo) UpdateSetDocument(string, bson.M) error          { return nil }
func (r *memProviderRepo) ApplyReview(string, int) error                   { return nil }

func (r *memProviderRepo) CreatePackage(*models.ProviderPackage) error { return nil }
func (r *memProviderRepo) GetPackageByID(string) (*models.ProviderPackage, error) {
	return nil, providerRepo.ErrNotFound
}
func (r *memProviderRepo) ListPackagesByProvider(string) ([]models.ProviderPackage, error) {
	return nil, nil
}
func (r *memProviderRepo) DeletePackage(string, string) error { return nil }

func (r *memProviderRepo) ListCategories() ([]models.ProviderCategory, error) { return nil, nil }

func newTestIdentity() *DefaultIdentityService {
	return &DefaultIdentityService{
		Patients:  newMemPatientRepo(),
		Providers: newMemProviderRepo(),
	}
}

func TestRegisterPatientIssuesToken(t *testing.T) {
	svc := newTestIdentity()

	resp, err := svc.RegisterPatient(PatientRegistration{
		FullName: "Joy Wanjiru",
		Email:    "joy@example.com",
		Password: "sufficiently-long",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RolePatient, resp.Role)
}

func TestRegisterPatientDuplicateEmail(t *testing.T) {
	svc := newTestIdentity()
	reg := PatientRegistration{FullName: "Joy Wanjiru", Email: "joy@example.com", Password: "sufficiently-long"}

	_, err := svc.RegisterPatient(reg)
	require.NoError(t, err)

	_, err = svc.RegisterPatient(reg)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestSignInPatient(t *testing.T) {
	svc := newTestIdentity()
	_, err := svc.RegisterPatient(PatientRegistration{
		FullName: "Joy Wanjiru",
		Email:    "joy@example.com",
		Password: "sufficiently-long",
	})
	require.NoError(t, err)

	resp, err := svc.SignInPatient("joy@example.com", "sufficiently-long")
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, resp.Role)

	var authErr *AuthError
	_, err = svc.SignInPatient("joy@example.com", "wrong-password")
	require.ErrorAs(t, err, &authErr)

	_, err = svc.SignInPatient("nobody@example.com", "sufficiently-long")
	require.ErrorAs(t, err, &authErr)
}

func TestRegisterAndSignInProvider(t *testing.T) {
	svc := newTestIdentity()

	resp, err := svc.RegisterProvider(ProviderRegistration{
		FullName:        "Dr. Amina Hassan",
		Email:           "amina@example.com",
		Password:        "sufficiently-long",
		Specialization:  "Dermatology",
		ConsultationFee: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleProvider, resp.Role)

	signIn, err := svc.SignInProvider("amina@example.com", "sufficiently-long")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, signIn.ID)
}

func TestPasswordHashNeverStoredPlain(t *testing.T) {
	patients := newMemPatientRepo()
	svc := &DefaultIdentityService{Patients: patients, Providers: newMemProviderRepo()}

	resp, err := svc.RegisterPatient(PatientRegistration{
		FullName: "Joy Wanjiru",
		Email:    "joy@example.com",
		Password: "sufficiently-long",
	})
	require.NoError(t, err)

	stored, err := patients.GetByID(resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "sufficiently-long", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}
