// File: handlers/patient.go
package handlers

import (
	"errors"
	"net/http"

	patientRepo "telecare/database/repository/patient"
	"telecare/middleware"
	"telecare/models"
	"telecare/services/catalog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// PatientHandler exposes the patient's own profile, emergency contacts
// and favorite providers.
type PatientHandler struct {
	Patients patientRepo.PatientRepository
	Catalog  catalog.CatalogService
}

// NewPatientHandler constructs a PatientHandler.
func NewPatientHandler(patients patientRepo.PatientRepository, cat catalog.CatalogService) *PatientHandler {
	return &PatientHandler{Patients: patients, Catalog: cat}
}

// GetProfileHandler returns the caller's patient profile.
func (h *PatientHandler) GetProfileHandler(c *gin.Context) {
	patientID, _ := middleware.Actor(c)
	patient, err := h.Patients.GetByID(patientID)
	if err != nil {
		writePatientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// UpdateProfileHandler applies a partial update to the caller's profile.
// Only profile fields are writable; credentials are not touched here.
func (h *PatientHandler) UpdateProfileHandler(c *gin.Context) {
	var input struct {
		FullName       *string `json:"fullName"`
		Phone          *string `json:"phone"`
		DateOfBirth    *string `json:"dateOfBirth"`
		Gender         *string `json:"gender"`
		BloodType      *string `json:"bloodType"`
		MedicalHistory *string `json:"medicalHistory"`
		Allergies      *string `json:"allergies"`
		ProfileImage   *string `json:"profileImage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	update := bson.M{}
	setIf(update, "full_name", input.FullName)
	setIf(update, "phone", input.Phone)
	setIf(update, "date_of_birth", input.DateOfBirth)
	setIf(update, "gender", input.Gender)
	setIf(update, "blood_type", input.BloodType)
	setIf(update, "medical_history", input.MedicalHistory)
	setIf(update, "allergies", input.Allergies)
	setIf(update, "profile_image", input.ProfileImage)
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	patientID, _ := middleware.Actor(c)
	if err := h.Patients.UpdateSetDocument(patientID, update); err != nil {
		writePatientError(c, err)
		return
	}
	patient, err := h.Patients.GetByID(patientID)
	if err != nil {
		writePatientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// UpdateFCMTokenHandler stores the caller's device push token.
func (h *PatientHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var input struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	patientID, _ := middleware.Actor(c)
	if err := h.Patients.UpdateSetDocument(patientID, bson.M{"fcm_token": input.FCMToken}); err != nil {
		writePatientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "token updated"})
}

// AddEmergencyContactHandler stores a new emergency contact.
func (h *PatientHandler) AddEmergencyContactHandler(c *gin.Context) {
	var input struct {
		Name         string `json:"name" binding:"required"`
		Relationship string `json:"relationship" binding:"required"`
		Phone        string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	patientID, _ := middleware.Actor(c)

	contact := &models.EmergencyContact{
		ID:           uuid.New().String(),
		PatientID:    patientID,
		Name:         input.Name,
		Relationship: input.Relationship,
		Phone:        input.Phone,
	}
	if err := h.Patients.AddEmergencyContact(contact); err != nil {
		writePatientError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contact": contact})
}

// ListEmergencyContactsHandler lists the caller's emergency contacts.
func (h *PatientHandler) ListEmergencyContactsHandler(c *gin.Context) {
	patientID, _ := middleware.Actor(c)
	contacts, err := h.Patients.ListEmergencyContacts(patientID)
	if err != nil {
		writePatientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// DeleteEmergencyContactHandler removes one of the caller's contacts.
func (h *PatientHandler) DeleteEmergencyContactHandler(c *gin.Context) {
	patientID, _ := middleware.Actor(c)
	if err := h.Patients.DeleteEmergencyContact(c.Param("id"), patientID); err != nil {
		writePatientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "contact removed"})
}

// AddFavoriteHandler saves a provider to the caller's shortlist.
func (h *PatientHandler) AddFavoriteHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	if _, err := h.Catalog.GetProvider(providerID); err != nil {
		writeCatalogError(c, err)
		return
	}
	patientID, _ := middleware.Actor(c)
	if err := h.Patients.AddFavorite(patientID, providerID); err != nil {
		writePatientError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "favorite saved"})
}

// RemoveFavoriteHandler removes a provider from the caller's shortlist.
func (h *PatientHandler) RemoveFavoriteHandler(c *gin.Context) {
	patientID, _ := middleware.Actor(c)
	if err := h.Patients.RemoveFavorite(patientID, c.Param("providerID")); err != nil {
		writePatientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "favorite removed"})
}

// ListFavoritesHandler lists the caller's favorite providers with their
// directory details resolved.
func (h *PatientHandler) ListFavoritesHandler(c *gin.Context) {
	patientID, _ := middleware.Actor(c)
	ids, err := h.Patients.ListFavorites(patientID)
	if err != nil {
		writePatientError(c, err)
		return
	}

	providers := make([]models.Provider, 0, len(ids))
	for _, id := range ids {
		prov, err := h.Catalog.GetProvider(id)
		if err != nil {
			// Provider may have been removed since it was favorited.
			continue
		}
		providers = append(providers, *prov)
	}
	c.JSON(http.StatusOK, gin.H{"favorites": providers})
}

func setIf(update bson.M, field string, value *string) {
	if value != nil {
		update[field] = *value
	}
}

func writePatientError(c *gin.Context, err error) {
	if errors.Is(err, patientRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed", "details": err.Error()})
}
