// File: handlers/records.go
package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	recordsRepo "telecare/database/repository/records"
	"telecare/middleware"
	"telecare/services/records"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecordsHandler exposes a patient's medical-record documents.
type RecordsHandler struct {
	Svc records.RecordService
}

// NewRecordsHandler constructs a RecordsHandler.
func NewRecordsHandler(svc records.RecordService) *RecordsHandler {
	return &RecordsHandler{Svc: svc}
}

// UploadRecordHandler accepts a multipart document and stores it with its
// metadata. Form fields: file, recordType, documentName.
func (h *RecordsHandler) UploadRecordHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "details": err.Error()})
		return
	}
	recordType := c.PostForm("recordType")
	documentName := c.PostForm("documentName")
	if documentName == "" {
		documentName = file.Filename
	}

	// Stage the upload on local disk; the storage service reads it from there.
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage upload", "details": err.Error()})
		return
	}
	defer os.Remove(tmpPath)

	patientID, _ := middleware.Actor(c)
	rec, err := h.Svc.AddRecord(c.Request.Context(), patientID, recordType, documentName, tmpPath)
	if err != nil {
		writeRecordsError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec})
}

// ListRecordsHandler lists the caller's records, most recent first.
func (h *RecordsHandler) ListRecordsHandler(c *gin.Context) {
	patientID, _ := middleware.Actor(c)
	recs, err := h.Svc.ListRecords(patientID)
	if err != nil {
		writeRecordsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs})
}

// DeleteRecordHandler removes one of the caller's records.
func (h *RecordsHandler) DeleteRecordHandler(c *gin.Context) {
	patientID, _ := middleware.Actor(c)
	if err := h.Svc.DeleteRecord(c.Request.Context(), c.Param("id"), patientID); err != nil {
		writeRecordsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "record deleted"})
}

func writeRecordsError(c *gin.Context, err error) {
	if errors.Is(err, recordsRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed", "details": err.Error()})
}
