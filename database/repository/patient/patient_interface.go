package patientRepo

import (
	"errors"

	"telecare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no patient matches the query.
var ErrNotFound = errors.New("patient not found")

// PatientRepository defines data access for patient accounts plus the
// small record sets owned by a patient: emergency contacts and favorites.
type PatientRepository interface {
	// Create inserts a new patient record.
	Create(p *models.Patient) error
	// GetByID retrieves a patient by its unique ID.
	GetByID(id string) (*models.Patient, error)
	// GetByEmail retrieves a patient by email, nil when absent.
	GetByEmail(email string) (*models.Patient, error)
	// UpdateSetDocument applies a $set update to one patient.
	UpdateSetDocument(id string, updateDoc bson.M) error

	// AddEmergencyContact stores a new emergency contact.
	AddEmergencyContact(c *models.EmergencyContact) error
	// ListEmergencyContacts retrieves a patient's emergency contacts.
	ListEmergencyContacts(patientID string) ([]models.EmergencyContact, error)
	// DeleteEmergencyContact removes a contact owned by the patient.
	DeleteEmergencyContact(id, patientID string) error

	// AddFavorite saves a provider to the patient's shortlist (idempotent).
	AddFavorite(patientID, providerID string) error
	// RemoveFavorite removes a provider from the shortlist.
	RemoveFavorite(patientID, providerID string) error
	// IsFavorite reports whether the provider is on the shortlist.
	IsFavorite(patientID, providerID string) (bool, error)
	// ListFavorites retrieves the provider IDs on the shortlist.
	ListFavorites(patientID string) ([]string, error)
}
