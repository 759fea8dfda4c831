// File: handlers/booking.go
package handlers

import (
	"net/http"

	"telecare/middleware"
	"telecare/models"
	"telecare/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard: session-scoped draft updates
// and the final draft-to-appointment commit.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// StartSessionHandler mints a new booking session and returns its empty draft.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	sessionID := uuid.New().String()
	draft, err := h.Svc.GetDraft(c.Request.Context(), sessionID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "draft": draft})
}

// GetDraftHandler returns the current draft for a session.
func (h *BookingHandler) GetDraftHandler(c *gin.Context) {
	draft, err := h.Svc.GetDraft(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "missing": draft.MissingFields()})
}

// SetCategoryHandler records the chosen specialization on the draft.
func (h *BookingHandler) SetCategoryHandler(c *gin.Context) {
	var input struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Svc.SetCategory(c.Request.Context(), c.Param("sessionID"), input.Category)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetProviderHandler records the chosen provider on the draft.
func (h *BookingHandler) SetProviderHandler(c *gin.Context) {
	var input struct {
		ProviderID string `json:"providerID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Svc.SetProvider(c.Request.Context(), c.Param("sessionID"), input.ProviderID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetModalityHandler records the consultation modality on the draft.
func (h *BookingHandler) SetModalityHandler(c *gin.Context) {
	var input struct {
		Modality models.AppointmentModality `json:"modality" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Svc.SetModality(c.Request.Context(), c.Param("sessionID"), input.Modality)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetPackageHandler records the chosen service package on the draft.
func (h *BookingHandler) SetPackageHandler(c *gin.Context) {
	var input struct {
		PackageID       string `json:"packageID" binding:"required"`
		DurationMinutes int    `json:"durationMinutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Svc.SetPackage(c.Request.Context(), c.Param("sessionID"), input.PackageID, input.DurationMinutes)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetScheduleHandler records the date, time and optional concern/address.
func (h *BookingHandler) SetScheduleHandler(c *gin.Context) {
	var details booking.ScheduleDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Svc.SetSchedule(c.Request.Context(), c.Param("sessionID"), details)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ResetDraftHandler discards the session's draft.
func (h *BookingHandler) ResetDraftHandler(c *gin.Context) {
	if err := h.Svc.ResetDraft(c.Request.Context(), c.Param("sessionID")); err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "draft cleared"})
}

// CommitHandler turns a complete draft into a persisted appointment.
func (h *BookingHandler) CommitHandler(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	patientID, _ := middleware.Actor(c)

	appt, err := h.Svc.Commit(c.Request.Context(), input.SessionID, patientID)
	if err != nil {
		h.Logger.Warn("booking commit rejected",
			zap.String("sessionID", input.SessionID), zap.Error(err))
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}
