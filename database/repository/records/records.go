package recordsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"telecare/database"
	"telecare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no medical record matches the query.
var ErrNotFound = errors.New("medical record not found")

// RecordRepository defines data access for medical-record metadata.
type RecordRepository interface {
	Create(rec *models.MedicalRecord) error
	GetByID(id string) (*models.MedicalRecord, error)
	ListByPatient(patientID string) ([]models.MedicalRecord, error)
	Delete(id, patientID string) error
}

// MongoRecordRepo implements RecordRepository using MongoDB.
type MongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo creates a new RecordRepository using MongoDB.
func NewMongoRecordRepo() RecordRepository {
	repo := &MongoRecordRepo{coll: database.DB().Collection("medical_records")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patient_id", Value: 1}}},
	}); err != nil {
		fmt.Printf("failed to create medical record indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new medical record document.
func (r *MongoRecordRepo) Create(rec *models.MedicalRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if rec.UploadDate.IsZero() {
		rec.UploadDate = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

// GetByID retrieves a medical record by its unique ID.
func (r *MongoRecordRepo) GetByID(id string) (*models.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var rec models.MedicalRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch medical record %s: %w", id, err)
	}
	return &rec, nil
}

// ListByPatient retrieves a patient's records, most recent upload first.
func (r *MongoRecordRepo) ListByPatient(patientID string) ([]models.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "upload_date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve medical records: %w", err)
	}
	defer cursor.Close(ctx)

	var recs []models.MedicalRecord
	for cursor.Next(ctx) {
		var rec models.MedicalRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode medical record: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, cursor.Err()
}

// Delete removes a record owned by the given patient.
func (r *MongoRecordRepo) Delete(id, patientID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "patient_id": patientID})
	if err != nil {
		return fmt.Errorf("failed to delete medical record %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
