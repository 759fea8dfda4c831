// File: services/booking/commit.go
package booking

import (
	"context"
	"time"

	"telecare/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const commitLockPrefix = "bookingCommit:"

// commitLockTTL bounds how long a crashed commit can block retries.
const commitLockTTL = 15 * time.Second

// CommitLock is a per-session single-flight guard around Commit. The
// original flow relied on the UI disabling the submit control; holding the
// guard server-side closes the duplicate-submission gap regardless of the
// client.
type CommitLock struct {
	client *redis.Client
}

// NewCommitLock creates a CommitLock on the given Redis client.
func NewCommitLock(client *redis.Client) *CommitLock {
	return &CommitLock{client: client}
}

// Acquire takes the session's commit guard. It reports false when another
// commit for the same session is already in flight.
func (l *CommitLock) Acquire(ctx context.Context, sessionID string) (bool, error) {
	ok, err := l.client.SetNX(ctx, commitLockPrefix+sessionID, "1", commitLockTTL).Result()
	if err != nil {
		return false, &PersistenceError{Op: "commit lock", Err: err}
	}
	return ok, nil
}

// Release frees the session's commit guard.
func (l *CommitLock) Release(ctx context.Context, sessionID string) {
	l.client.Del(ctx, commitLockPrefix+sessionID)
}

// Commit converts the session's draft into exactly one persisted
// appointment. The draft is cleared only after the store acknowledges the
// create; on any failure it is preserved so the user can retry without
// re-entering data.
func (s *DefaultBookingService) Commit(ctx context.Context, sessionID, patientID string) (*models.Appointment, error) {
	if patientID == "" {
		return nil, &ValidationError{Message: "commit requires an authenticated patient"}
	}

	if s.Locker != nil {
		acquired, err := s.Locker.Acquire(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, &CommitInFlightError{SessionID: sessionID}
		}
		defer s.Locker.Release(ctx, sessionID)
	}

	draft, err := s.Drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !draft.IsCommittable() {
		return nil, &ValidationError{
			Message: "booking draft is incomplete",
			Missing: draft.MissingFields(),
		}
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		PatientID:       patientID,
		ProviderID:      draft.Provider.ID,
		AppointmentDate: draft.ScheduledDate,
		AppointmentTime: draft.ScheduledTime,
		DurationMinutes: draft.DurationMinutes,
		Status:          models.StatusUpcoming,
		AppointmentType: appointmentType(draft),
		Notes:           draft.PatientConcern,
		Location:        appointmentLocation(draft),
		ConsultationFee: draft.Package.Price,
	}

	if err := s.Repo.Create(appt); err != nil {
		// Draft intentionally kept: the user retries without losing input.
		return nil, &PersistenceError{Op: "appointment create", Err: err}
	}

	// The create has durably succeeded; only now may the draft go away.
	if err := s.Drafts.Reset(ctx, sessionID); err != nil {
		zap.L().Warn("draft reset failed after successful commit",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	if s.Notifier != nil {
		if err := s.Notifier.NotifyAppointmentBooked(ctx, appt); err != nil {
			zap.L().Warn("booking notification failed",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(appt, draft.Provider.Name); err != nil {
			zap.L().Warn("reminder scheduling failed",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

// appointmentType derives the display type from the committed selection:
// the package title when present, the modality label otherwise.
func appointmentType(d *models.BookingDraft) string {
	if d.Package.Title != "" {
		return d.Package.Title
	}
	return d.Modality.Label()
}

// appointmentLocation is the entered address for physical visits and the
// modality label for virtual ones.
func appointmentLocation(d *models.BookingDraft) string {
	if d.LocationAddress != "" {
		return d.LocationAddress
	}
	return d.Modality.Label()
}
