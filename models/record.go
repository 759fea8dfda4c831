package models

import "time"

// MedicalRecord is the metadata for a document a patient uploaded. The
// document bytes live in external storage; only the reference is kept here.
type MedicalRecord struct {
	ID           string    `bson:"id" json:"id"`
	PatientID    string    `bson:"patient_id" json:"patient_id"`
	RecordType   string    `bson:"record_type" json:"record_type"` // e.g. "lab-report", "prescription"
	DocumentName string    `bson:"document_name" json:"document_name"`
	DocumentURL  string    `bson:"document_url,omitempty" json:"document_url,omitempty"`
	StorageID    string    `bson:"storage_id,omitempty" json:"-"` // public ID in the storage backend
	UploadDate   time.Time `bson:"upload_date" json:"upload_date"`
}
