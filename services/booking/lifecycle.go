// File: services/booking/lifecycle.go
package booking

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "telecare/database/repository/appointment"
	"telecare/models"

	"go.uber.org/zap"
)

// Cancel moves an upcoming appointment to cancelled. Either owning actor
// may cancel; a terminal record is left untouched.
func (s *DefaultBookingService) Cancel(ctx context.Context, appointmentID, actorID string, role models.ActorRole) (*models.Appointment, error) {
	return s.transition(ctx, appointmentID, actorID, role, models.StatusCancelled)
}

// Complete moves an upcoming appointment to completed. Only the owning
// provider may complete; patients never mark their own appointments done.
func (s *DefaultBookingService) Complete(ctx context.Context, appointmentID, actorID string, role models.ActorRole) (*models.Appointment, error) {
	return s.transition(ctx, appointmentID, actorID, role, models.StatusCompleted)
}

// List returns the actor's appointments, optionally filtered to one
// status. Upcoming listings are soonest-first, historical ones
// most-recent-first.
func (s *DefaultBookingService) List(ctx context.Context, actorID string, role models.ActorRole, status *models.AppointmentStatus) ([]models.Appointment, error) {
	if !role.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown actor role %q", role)}
	}
	appts, err := s.Repo.ListByActor(actorID, role, status)
	if err != nil {
		return nil, &PersistenceError{Op: "appointment list", Err: err}
	}
	return appts, nil
}

// transition enforces ownership, role permission and the terminal-state
// invariant, then performs the conditional status write.
func (s *DefaultBookingService) transition(ctx context.Context, appointmentID, actorID string, role models.ActorRole, target models.AppointmentStatus) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "appointment read", Err: err}
	}

	if reason := transitionDenied(appt, actorID, role, target); reason != "" {
		return nil, &InvalidTransitionError{
			AppointmentID: appointmentID,
			Current:       appt.Status,
			Reason:        reason,
		}
	}

	updated, err := s.Repo.UpdateStatusIfUpcoming(appointmentID, target)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotUpcoming) {
			// Lost the race against a concurrent transition; report the
			// state found rather than overwriting a terminal status.
			current, getErr := s.Repo.GetByID(appointmentID)
			status := models.AppointmentStatus("")
			if getErr == nil {
				status = current.Status
			}
			return nil, &InvalidTransitionError{
				AppointmentID: appointmentID,
				Current:       status,
				Reason:        "appointment already left the upcoming state",
			}
		}
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "appointment status update", Err: err}
	}

	if s.Notifier != nil {
		if err := s.Notifier.NotifyStatusChange(ctx, updated, role); err != nil {
			zap.L().Warn("status change notification failed",
				zap.String("appointmentID", updated.ID), zap.Error(err))
		}
	}

	return updated, nil
}

// transitionDenied returns the rule that blocks the transition, or ""
// when it is allowed.
func transitionDenied(appt *models.Appointment, actorID string, role models.ActorRole, target models.AppointmentStatus) string {
	switch role {
	case models.RolePatient:
		if appt.PatientID != actorID {
			return "actor is not a party to this appointment"
		}
	case models.RoleProvider:
		if appt.ProviderID != actorID {
			return "actor is not a party to this appointment"
		}
	default:
		return fmt.Sprintf("unknown actor role %q", role)
	}

	if appt.Status.IsTerminal() {
		return fmt.Sprintf("no transition is defined out of the %s state", appt.Status)
	}

	if target == models.StatusCompleted && role != models.RoleProvider {
		return "only the owning provider may complete an appointment"
	}
	return ""
}
