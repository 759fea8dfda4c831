// File: services/records/records.go
package records

import (
	"context"
	"fmt"

	recordsRepo "telecare/database/repository/records"
	"telecare/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recordFolder = "medical-records"

// RecordService manages a patient's medical-record documents: metadata in
// the database, the bytes in external storage.
type RecordService interface {
	AddRecord(ctx context.Context, patientID, recordType, documentName, localFilePath string) (*models.MedicalRecord, error)
	ListRecords(patientID string) ([]models.MedicalRecord, error)
	DeleteRecord(ctx context.Context, id, patientID string) error
}

// DefaultRecordService implements RecordService.
type DefaultRecordService struct {
	Repo    recordsRepo.RecordRepository
	Storage StorageService
}

// AddRecord uploads the document, then stores its metadata. A metadata
// write failure cleans up the uploaded document so no orphan is left.
func (s *DefaultRecordService) AddRecord(ctx context.Context, patientID, recordType, documentName, localFilePath string) (*models.MedicalRecord, error) {
	if recordType == "" || documentName == "" {
		return nil, fmt.Errorf("record type and document name are required")
	}

	publicID, url, err := s.Storage.Upload(ctx, localFilePath, recordFolder+"/"+patientID)
	if err != nil {
		return nil, err
	}

	rec := &models.MedicalRecord{
		ID:           uuid.New().String(),
		PatientID:    patientID,
		RecordType:   recordType,
		DocumentName: documentName,
		DocumentURL:  url,
		StorageID:    publicID,
	}
	if err := s.Repo.Create(rec); err != nil {
		if delErr := s.Storage.Delete(ctx, publicID); delErr != nil {
			zap.L().Warn("failed to clean up orphaned document",
				zap.String("publicID", publicID), zap.Error(delErr))
		}
		return nil, err
	}
	return rec, nil
}

// ListRecords retrieves a patient's records, most recent upload first.
func (s *DefaultRecordService) ListRecords(patientID string) ([]models.MedicalRecord, error) {
	return s.Repo.ListByPatient(patientID)
}

// DeleteRecord removes the metadata and the stored document.
func (s *DefaultRecordService) DeleteRecord(ctx context.Context, id, patientID string) error {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if rec.PatientID != patientID {
		return recordsRepo.ErrNotFound
	}

	if err := s.Repo.Delete(id, patientID); err != nil {
		return err
	}
	if rec.StorageID != "" {
		if err := s.Storage.Delete(ctx, rec.StorageID); err != nil {
			zap.L().Warn("failed to delete stored document",
				zap.String("recordID", id), zap.Error(err))
		}
	}
	return nil
}
