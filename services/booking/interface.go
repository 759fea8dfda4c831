package booking

import (
	"context"

	appointmentRepo "telecare/database/repository/appointment"
	"telecare/models"
)

// BookingService is the full booking surface: the wizard draft, the
// draft-to-appointment commit, and the appointment lifecycle.
type BookingService interface {
	// Draft accumulation. Setters may be called in any order and
	// overwritten freely; the draft is scoped to one session.
	GetDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	SetCategory(ctx context.Context, sessionID, category string) (*models.BookingDraft, error)
	SetProvider(ctx context.Context, sessionID, providerID string) (*models.BookingDraft, error)
	SetModality(ctx context.Context, sessionID string, modality models.AppointmentModality) (*models.BookingDraft, error)
	SetPackage(ctx context.Context, sessionID, packageID string, durationMinutes int) (*models.BookingDraft, error)
	SetSchedule(ctx context.Context, sessionID string, details ScheduleDetails) (*models.BookingDraft, error)
	ResetDraft(ctx context.Context, sessionID string) error

	// Commit converts a committable draft into exactly one persisted
	// appointment, then clears the draft.
	Commit(ctx context.Context, sessionID, patientID string) (*models.Appointment, error)

	// Lifecycle operations on persisted appointments.
	Cancel(ctx context.Context, appointmentID, actorID string, role models.ActorRole) (*models.Appointment, error)
	Complete(ctx context.Context, appointmentID, actorID string, role models.ActorRole) (*models.Appointment, error)
	List(ctx context.Context, actorID string, role models.ActorRole, status *models.AppointmentStatus) ([]models.Appointment, error)
}

// ScheduleDetails carries the final wizard step's fields.
type ScheduleDetails struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Concern string `json:"concern"`
	Address string `json:"address"`
}

// CatalogLookup resolves provider and package snapshots for the draft.
// Implemented by the catalog service.
type CatalogLookup interface {
	GetProvider(id string) (*models.Provider, error)
	GetPackage(id string) (*models.ProviderPackage, error)
}

// Notifier delivers appointment notifications to the affected actors.
// Failures are logged by the booking service and never fail the operation.
type Notifier interface {
	NotifyAppointmentBooked(ctx context.Context, appt *models.Appointment) error
	NotifyStatusChange(ctx context.Context, appt *models.Appointment, changedBy models.ActorRole) error
}

// ReminderScheduler enqueues a reminder to be delivered before the
// appointment starts.
type ReminderScheduler interface {
	ScheduleReminder(appt *models.Appointment, providerName string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Drafts    *DraftStore
	Repo      appointmentRepo.AppointmentRepository
	Catalog   CatalogLookup
	Locker    *CommitLock
	Notifier  Notifier          // optional
	Reminders ReminderScheduler // optional
}
