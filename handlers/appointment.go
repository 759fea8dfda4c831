// File: handlers/appointment.go
package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "telecare/database/repository/appointment"
	"telecare/middleware"
	"telecare/models"
	"telecare/services/booking"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the lifecycle of persisted appointments.
type AppointmentHandler struct {
	Svc booking.BookingService
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// ListAppointmentsHandler returns the caller's appointments, optionally
// filtered by ?status=.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	actorID, role := middleware.Actor(c)

	var status *models.AppointmentStatus
	if raw := c.Query("status"); raw != "" {
		s := models.AppointmentStatus(raw)
		if !s.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter: " + raw})
			return
		}
		status = &s
	}

	appts, err := h.Svc.List(c.Request.Context(), actorID, role, status)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts, "count": len(appts)})
}

// CancelAppointmentHandler cancels an upcoming appointment.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	actorID, role := middleware.Actor(c)
	appt, err := h.Svc.Cancel(c.Request.Context(), c.Param("id"), actorID, role)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// CompleteAppointmentHandler marks an upcoming appointment completed.
func (h *AppointmentHandler) CompleteAppointmentHandler(c *gin.Context) {
	actorID, role := middleware.Actor(c)
	appt, err := h.Svc.Complete(c.Request.Context(), c.Param("id"), actorID, role)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// writeBookingError maps booking service errors onto HTTP responses.
func writeBookingError(c *gin.Context, err error) {
	var (
		validationErr *booking.ValidationError
		transitionErr *booking.InvalidTransitionError
		inFlightErr   *booking.CommitInFlightError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   validationErr.Message,
			"missing": validationErr.Missing,
		})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":  transitionErr.Reason,
			"status": transitionErr.Current,
		})
	case errors.As(err, &inFlightErr):
		c.JSON(http.StatusConflict, gin.H{"error": "a commit for this session is already being processed"})
	case errors.Is(err, appointmentRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed", "details": err.Error()})
	}
}
