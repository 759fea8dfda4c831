package booking

import (
	"testing"

	"telecare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDraftNewSessionIsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	draft, err := svc.GetDraft(t.Context(), "fresh-session")
	require.NoError(t, err)
	assert.False(t, draft.IsCommittable())
	assert.Equal(t, []string{"category", "provider", "modality", "package", "scheduledDate", "scheduledTime"},
		draft.MissingFields())
}

func TestDraftSettersAccumulateInAnyOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()
	sessionID := "sess-1"

	// Schedule first, category last: order must not matter.
	_, err := svc.SetSchedule(ctx, sessionID, ScheduleDetails{Date: "2026-09-14", Time: "10:30"})
	require.NoError(t, err)
	_, err = svc.SetPackage(ctx, sessionID, "pkg-1", 0)
	require.NoError(t, err)
	_, err = svc.SetModality(ctx, sessionID, models.ModalityVideo)
	require.NoError(t, err)
	_, err = svc.SetProvider(ctx, sessionID, "prov-1")
	require.NoError(t, err)
	draft, err := svc.SetCategory(ctx, sessionID, "Dermatology")
	require.NoError(t, err)

	assert.True(t, draft.IsCommittable())
	assert.Empty(t, draft.MissingFields())
	require.NotNil(t, draft.Provider)
	assert.Equal(t, "Dr. Amina Hassan", draft.Provider.Name)
	require.NotNil(t, draft.Package)
	assert.Equal(t, 150.0, draft.Package.Price)
	assert.Equal(t, 30, draft.DurationMinutes) // parsed from "30 min"
}

func TestDraftSetterOverwritesPriorValue(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	_, err := svc.SetCategory(ctx, "sess-1", "Dermatology")
	require.NoError(t, err)
	draft, err := svc.SetCategory(ctx, "sess-1", "Cardiology")
	require.NoError(t, err)

	assert.Equal(t, "Cardiology", draft.Category)
}

func TestDraftSessionIsolation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	_, err := svc.SetCategory(ctx, "sess-a", "Dermatology")
	require.NoError(t, err)

	other, err := svc.GetDraft(ctx, "sess-b")
	require.NoError(t, err)
	assert.Empty(t, other.Category, "draft must not leak across sessions")
}

func TestResetDraftReturnsToEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()
	fillDraft(t, svc, "sess-1")

	require.NoError(t, svc.ResetDraft(ctx, "sess-1"))

	draft, err := svc.GetDraft(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, draft.IsCommittable())
	assert.Nil(t, draft.Provider)
}

func TestSetModalityRejectsUnknownValue(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SetModality(t.Context(), "sess-1", models.AppointmentModality("telepathy"))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSetProviderUnknownIDFails(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SetProvider(t.Context(), "sess-1", "no-such-provider")
	require.Error(t, err)

	// The failed lookup must not dirty the draft.
	draft, err := svc.GetDraft(t.Context(), "sess-1")
	require.NoError(t, err)
	assert.Nil(t, draft.Provider)
}

func TestSetScheduleValidatesFormats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := t.Context()

	tests := []struct {
		name    string
		details ScheduleDetails
		wantErr bool
	}{
		{"valid", ScheduleDetails{Date: "2026-09-14", Time: "10:30"}, false},
		{"bad date", ScheduleDetails{Date: "14/09/2026", Time: "10:30"}, true},
		{"bad time", ScheduleDetails{Date: "2026-09-14", Time: "10:30pm"}, true},
		{"empty fields allowed", ScheduleDetails{Concern: "follow-up"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetSchedule(ctx, "sess-sched", tt.details)
			if tt.wantErr {
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		display string
		want    int
	}{
		{"30 min", 30},
		{"45 min", 45},
		{"1 hour", 60},
		{"2 hours", 120},
		{"", 30},
		{"soonish", 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseDurationMinutes(tt.display), "display=%q", tt.display)
	}
}
