package booking

import (
	"testing"

	appointmentRepo "telecare/database/repository/appointment"
	"telecare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAppointment(t *testing.T, repo *memAppointmentRepo, id, date, tm string, status models.AppointmentStatus) {
	t.Helper()
	err := repo.Create(&models.Appointment{
		ID:              id,
		PatientID:       "patient-1",
		ProviderID:      "prov-1",
		AppointmentDate: date,
		AppointmentTime: tm,
		Status:          status,
	})
	require.NoError(t, err)
}

func TestCancelByEitherParty(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		role    models.ActorRole
	}{
		{"patient cancels", "patient-1", models.RolePatient},
		{"provider cancels", "prov-1", models.RoleProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			seedAppointment(t, repo, "appt-1", "2026-09-14", "10:30", models.StatusUpcoming)

			appt, err := svc.Cancel(t.Context(), "appt-1", tt.actorID, tt.role)
			require.NoError(t, err)
			assert.Equal(t, models.StatusCancelled, appt.Status)
		})
	}
}

func TestCompleteIsProviderOnly(t *testing.T) {
	svc, repo := newTestService(t)
	seedAppointment(t, repo, "appt-1", "2026-09-14", "10:30", models.StatusUpcoming)
	ctx := t.Context()

	_, err := svc.Complete(ctx, "appt-1", "patient-1", models.RolePatient)
	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, models.StatusUpcoming, transitionErr.Current)

	// The record is untouched and the provider can still complete it.
	appt, err := svc.Complete(ctx, "appt-1", "prov-1", models.RoleProvider)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, appt.Status)
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	tests := []struct {
		name     string
		terminal models.AppointmentStatus
	}{
		{"cancelled stays cancelled", models.StatusCancelled},
		{"completed stays completed", models.StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			seedAppointment(t, repo, "appt-1", "2026-09-14", "10:30", tt.terminal)
			ctx := t.Context()

			_, err := svc.Complete(ctx, "appt-1", "prov-1", models.RoleProvider)
			var transitionErr *InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tt.terminal, transitionErr.Current)

			_, err = svc.Cancel(ctx, "appt-1", "patient-1", models.RolePatient)
			require.ErrorAs(t, err, &transitionErr)

			stored, err := repo.GetByID("appt-1")
			require.NoError(t, err)
			assert.Equal(t, tt.terminal, stored.Status, "terminal status must never be overwritten")
		})
	}
}

func TestTransitionRejectsNonParty(t *testing.T) {
	svc, repo := newTestService(t)
	seedAppointment(t, repo, "appt-1", "2026-09-14", "10:30", models.StatusUpcoming)

	_, err := svc.Cancel(t.Context(), "appt-1", "someone-else", models.RolePatient)
	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)

	stored, err := repo.GetByID("appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusUpcoming, stored.Status)
}

func TestTransitionUnknownAppointment(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Cancel(t.Context(), "no-such-appt", "patient-1", models.RolePatient)
	require.ErrorIs(t, err, appointmentRepo.ErrNotFound)
}

func TestTransitionLostRaceReportsCurrentState(t *testing.T) {
	svc, repo := newTestService(t)
	seedAppointment(t, repo, "appt-1", "2026-09-14", "10:30", models.StatusUpcoming)
	ctx := t.Context()

	// First transition wins.
	_, err := svc.Cancel(ctx, "appt-1", "patient-1", models.RolePatient)
	require.NoError(t, err)

	// The losing transition reports the state it found instead of
	// overwriting it.
	_, err = svc.Complete(ctx, "appt-1", "prov-1", models.RoleProvider)
	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, models.StatusCancelled, transitionErr.Current)
}

func TestTransitionNotifiesCounterpart(t *testing.T) {
	svc, repo := newTestService(t)
	notifier := &recordingNotifier{}
	svc.Notifier = notifier
	seedAppointment(t, repo, "appt-1", "2026-09-14", "10:30", models.StatusUpcoming)

	_, err := svc.Cancel(t.Context(), "appt-1", "patient-1", models.RolePatient)
	require.NoError(t, err)
	assert.Equal(t, []string{"appt-1"}, notifier.changed)
}

func TestListOrderingPerStatus(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := t.Context()
	seedAppointment(t, repo, "appt-early", "2026-09-10", "09:00", models.StatusUpcoming)
	seedAppointment(t, repo, "appt-late", "2026-09-20", "14:00", models.StatusUpcoming)
	seedAppointment(t, repo, "appt-old-done", "2026-08-01", "09:00", models.StatusCompleted)
	seedAppointment(t, repo, "appt-new-done", "2026-08-20", "09:00", models.StatusCompleted)

	upcoming := models.StatusUpcoming
	appts, err := svc.List(ctx, "patient-1", models.RolePatient, &upcoming)
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "appt-early", appts[0].ID, "upcoming listings are soonest-first")
	assert.Equal(t, "appt-late", appts[1].ID)

	completed := models.StatusCompleted
	appts, err = svc.List(ctx, "patient-1", models.RolePatient, &completed)
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "appt-new-done", appts[0].ID, "historical listings are most-recent-first")
	assert.Equal(t, "appt-old-done", appts[1].ID)

	// Unfiltered follows the upcoming ordering.
	appts, err = svc.List(ctx, "patient-1", models.RolePatient, nil)
	require.NoError(t, err)
	require.Len(t, appts, 4)
	assert.Equal(t, "appt-old-done", appts[0].ID)
}

func TestListScopedToActorSide(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := t.Context()
	seedAppointment(t, repo, "appt-1", "2026-09-14", "10:30", models.StatusUpcoming)
	require.NoError(t, repo.Create(&models.Appointment{
		ID:              "appt-other",
		PatientID:       "patient-2",
		ProviderID:      "prov-2",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "11:00",
		Status:          models.StatusUpcoming,
	}))

	appts, err := svc.List(ctx, "patient-1", models.RolePatient, nil)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "appt-1", appts[0].ID)

	appts, err = svc.List(ctx, "prov-2", models.RoleProvider, nil)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "appt-other", appts[0].ID)
}

func TestListRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.List(t.Context(), "actor-1", models.ActorRole("admin"), nil)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}
