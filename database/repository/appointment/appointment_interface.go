package appointmentRepo

import (
	"errors"

	"telecare/models"
)

// ErrNotFound is returned when no appointment matches the given ID.
var ErrNotFound = errors.New("appointment not found")

// ErrNotUpcoming is returned by UpdateStatusIfUpcoming when the record
// exists but is no longer in the upcoming state. Callers use it to detect
// a transition attempted against an already-terminal record.
var ErrNotUpcoming = errors.New("appointment is not in upcoming state")

// AppointmentRepository defines the persistence contract for appointments.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// ListByActor retrieves appointments where the actor appears on the
	// side given by role, optionally filtered to a single status.
	// Upcoming (and unfiltered) listings are ordered soonest-first;
	// completed and cancelled listings most-recent-first.
	ListByActor(actorID string, role models.ActorRole, status *models.AppointmentStatus) ([]models.Appointment, error)
	// UpdateStatusIfUpcoming atomically moves an upcoming appointment into
	// newStatus and returns the updated record. It returns ErrNotUpcoming
	// when the record has already left the upcoming state, so a lost race
	// between two concurrent transitions never overwrites a terminal state.
	UpdateStatusIfUpcoming(id string, newStatus models.AppointmentStatus) (*models.Appointment, error)
}
