package patientRepo

import (
	"context"
	"fmt"
	"time"

	"telecare/database"
	"telecare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPatientRepo implements PatientRepository using MongoDB.
type MongoPatientRepo struct {
	patients  *mongo.Collection
	contacts  *mongo.Collection
	favorites *mongo.Collection
}

// NewMongoPatientRepo creates a new PatientRepository using MongoDB.
func NewMongoPatientRepo() PatientRepository {
	db := database.DB()
	repo := &MongoPatientRepo{
		patients:  db.Collection("patients"),
		contacts:  db.Collection("emergency_contacts"),
		favorites: db.Collection("favorites"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create patient indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPatientRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.patients.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("failed to create patient indexes: %w", err)
	}
	if _, err := r.favorites.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "patient_id", Value: 1}, {Key: "provider_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create favorite indexes: %w", err)
	}
	return nil
}

// Create inserts a new patient document.
func (r *MongoPatientRepo) Create(p *models.Patient) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.patients.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// GetByID retrieves a patient by its unique ID.
func (r *MongoPatientRepo) GetByID(id string) (*models.Patient, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Patient
	if err := r.patients.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch patient with id %s: %w", id, err)
	}
	return &p, nil
}

// GetByEmail retrieves a patient by email. Returns nil, nil when absent.
func (r *MongoPatientRepo) GetByEmail(email string) (*models.Patient, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Patient
	if err := r.patients.FindOne(ctx, bson.M{"email": email}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch patient with email %s: %w", email, err)
	}
	return &p, nil
}

// UpdateSetDocument applies a $set update to one patient.
func (r *MongoPatientRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	result, err := r.patients.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update patient with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddEmergencyContact stores a new emergency contact.
func (r *MongoPatientRepo) AddEmergencyContact(c *models.EmergencyContact) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now()

	if _, err := r.contacts.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to add emergency contact: %w", err)
	}
	return nil
}

// ListEmergencyContacts retrieves a patient's emergency contacts.
func (r *MongoPatientRepo) ListEmergencyContacts(patientID string) ([]models.EmergencyContact, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.contacts.Find(ctx, bson.M{"patient_id": patientID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve emergency contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []models.EmergencyContact
	for cursor.Next(ctx) {
		var c models.EmergencyContact
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode emergency contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, cursor.Err()
}

// DeleteEmergencyContact removes a contact owned by the patient.
func (r *MongoPatientRepo) DeleteEmergencyContact(id, patientID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.contacts.DeleteOne(ctx, bson.M{"id": id, "patient_id": patientID})
	if err != nil {
		return fmt.Errorf("failed to delete emergency contact %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddFavorite saves a provider to the patient's shortlist. A duplicate add
// is a no-op thanks to the unique index.
func (r *MongoPatientRepo) AddFavorite(patientID, providerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fav := models.Favorite{
		ID:         uuid.New().String(),
		PatientID:  patientID,
		ProviderID: providerID,
		CreatedAt:  time.Now(),
	}
	if _, err := r.favorites.InsertOne(ctx, fav); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite removes a provider from the shortlist.
func (r *MongoPatientRepo) RemoveFavorite(patientID, providerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.favorites.DeleteOne(ctx, bson.M{"patient_id": patientID, "provider_id": providerID}); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// IsFavorite reports whether the provider is on the shortlist.
func (r *MongoPatientRepo) IsFavorite(patientID, providerID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.favorites.CountDocuments(ctx, bson.M{"patient_id": patientID, "provider_id": providerID})
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// ListFavorites retrieves the provider IDs on the shortlist.
func (r *MongoPatientRepo) ListFavorites(patientID string) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.favorites.Find(ctx, bson.M{"patient_id": patientID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var f models.Favorite
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode favorite: %w", err)
		}
		ids = append(ids, f.ProviderID)
	}
	return ids, cursor.Err()
}
