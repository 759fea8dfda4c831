package booking

import (
	"context"
	"errors"
	"testing"

	"telecare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures notification calls.
type recordingNotifier struct {
	booked  []string
	changed []string
}

func (n *recordingNotifier) NotifyAppointmentBooked(_ context.Context, appt *models.Appointment) error {
	n.booked = append(n.booked, appt.ID)
	return nil
}

func (n *recordingNotifier) NotifyStatusChange(_ context.Context, appt *models.Appointment, _ models.ActorRole) error {
	n.changed = append(n.changed, appt.ID)
	return nil
}

// recordingReminders captures scheduled reminders.
type recordingReminders struct {
	scheduled []string
}

func (r *recordingReminders) ScheduleReminder(appt *models.Appointment, _ string) error {
	r.scheduled = append(r.scheduled, appt.ID)
	return nil
}

func TestCommitCreatesAppointmentAndClearsDraft(t *testing.T) {
	svc, repo := newTestService(t)
	notifier := &recordingNotifier{}
	reminders := &recordingReminders{}
	svc.Notifier = notifier
	svc.Reminders = reminders

	ctx := t.Context()
	fillDraft(t, svc, "sess-1")

	appt, err := svc.Commit(ctx, "sess-1", "patient-1")
	require.NoError(t, err)
	require.NotNil(t, appt)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "patient-1", appt.PatientID)
	assert.Equal(t, "prov-1", appt.ProviderID)
	assert.Equal(t, models.StatusUpcoming, appt.Status)
	assert.Equal(t, "2026-09-14", appt.AppointmentDate)
	assert.Equal(t, "10:30", appt.AppointmentTime)
	assert.Equal(t, 30, appt.DurationMinutes)
	assert.Equal(t, "Video Consultation", appt.AppointmentType, "type comes from the package title")
	assert.Equal(t, "Video consultation", appt.Location, "virtual visit falls back to the modality label")
	assert.Equal(t, 150.0, appt.ConsultationFee, "fee is the package price, not the provider's base fee")
	assert.Equal(t, "Recurring rash on forearm", appt.Notes)

	stored, err := repo.GetByID(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUpcoming, stored.Status)

	// The draft is gone once the create has been acknowledged.
	draft, err := svc.GetDraft(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, draft.IsCommittable())

	assert.Equal(t, []string{appt.ID}, notifier.booked)
	assert.Equal(t, []string{appt.ID}, reminders.scheduled)
}

func TestCommitUsesEnteredAddressForPhysicalVisit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()
	fillDraft(t, svc, "sess-1")
	_, err := svc.SetModality(ctx, "sess-1", models.ModalityInPerson)
	require.NoError(t, err)
	_, err = svc.SetSchedule(ctx, "sess-1", ScheduleDetails{
		Date:    "2026-09-14",
		Time:    "10:30",
		Address: "12 Riverside Drive, Nairobi",
	})
	require.NoError(t, err)

	appt, err := svc.Commit(ctx, "sess-1", "patient-1")
	require.NoError(t, err)
	assert.Equal(t, "12 Riverside Drive, Nairobi", appt.Location)
}

func TestCommitIncompleteDraftFails(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := t.Context()

	_, err := svc.SetCategory(ctx, "sess-1", "Dermatology")
	require.NoError(t, err)

	_, err = svc.Commit(ctx, "sess-1", "patient-1")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Missing, "provider")
	assert.Contains(t, validationErr.Missing, "scheduledTime")
	assert.NotContains(t, validationErr.Missing, "category")

	assert.Empty(t, repo.appts, "no appointment may exist after a failed commit")

	// The rejected draft keeps the user's input.
	draft, err := svc.GetDraft(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "Dermatology", draft.Category)
}

func TestCommitRequiresAuthenticatedPatient(t *testing.T) {
	svc, _ := newTestService(t)
	fillDraft(t, svc, "sess-1")

	_, err := svc.Commit(t.Context(), "sess-1", "")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCommitStoreFailureKeepsDraftForRetry(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := t.Context()
	fillDraft(t, svc, "sess-1")

	repo.createErr = errors.New("connection reset")
	_, err := svc.Commit(ctx, "sess-1", "patient-1")
	var persistErr *PersistenceError
	require.ErrorAs(t, err, &persistErr)

	draft, err := svc.GetDraft(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, draft.IsCommittable(), "draft survives a failed create so the user can retry")

	// Store recovers; the retry succeeds without re-entering anything.
	repo.createErr = nil
	appt, err := svc.Commit(ctx, "sess-1", "patient-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusUpcoming, appt.Status)
	assert.Len(t, repo.appts, 1)
}

func TestCommitSecondSubmissionFindsNoDraft(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := t.Context()
	fillDraft(t, svc, "sess-1")

	_, err := svc.Commit(ctx, "sess-1", "patient-1")
	require.NoError(t, err)

	// The cleared draft makes a repeated submit a validation failure, not
	// a second appointment.
	_, err = svc.Commit(ctx, "sess-1", "patient-1")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, repo.appts, 1)
}

func TestCommitInFlightGuardRejectsDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()
	fillDraft(t, svc, "sess-1")

	acquired, err := svc.Locker.Acquire(ctx, "sess-1")
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = svc.Commit(ctx, "sess-1", "patient-1")
	var inFlightErr *CommitInFlightError
	require.ErrorAs(t, err, &inFlightErr)
	assert.Equal(t, "sess-1", inFlightErr.SessionID)

	// Once the first submission finishes, the session commits normally.
	svc.Locker.Release(ctx, "sess-1")
	_, err = svc.Commit(ctx, "sess-1", "patient-1")
	require.NoError(t, err)
}
