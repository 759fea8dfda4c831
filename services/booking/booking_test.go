package booking

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	appointmentRepo "telecare/database/repository/appointment"
	"telecare/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// newTestService wires a DefaultBookingService onto a miniredis instance
// and in-memory fakes for the repository and catalog.
func newTestService(t *testing.T) (*DefaultBookingService, *memAppointmentRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo := newMemAppointmentRepo()
	svc := &DefaultBookingService{
		Drafts:  NewDraftStore(client),
		Repo:    repo,
		Catalog: newStubCatalog(),
		Locker:  NewCommitLock(client),
	}
	return svc, repo
}

// stubCatalog resolves a fixed set of providers and packages.
type stubCatalog struct {
	providers map[string]*models.Provider
	packages  map[string]*models.ProviderPackage
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		providers: map[string]*models.Provider{
			"prov-1": {
				ID:              "prov-1",
				FullName:        "Dr. Amina Hassan",
				Specialization:  "Dermatology",
				ConsultationFee: 120,
			},
		},
		packages: map[string]*models.ProviderPackage{
			"pkg-1": {
				ID:         "pkg-1",
				ProviderID: "prov-1",
				Title:      "Video Consultation",
				Price:      150,
				Duration:   "30 min",
			},
		},
	}
}

func (c *stubCatalog) GetProvider(id string) (*models.Provider, error) {
	p, ok := c.providers[id]
	if !ok {
		return nil, fmt.Errorf("provider %s not found", id)
	}
	return p, nil
}

func (c *stubCatalog) GetPackage(id string) (*models.ProviderPackage, error) {
	p, ok := c.packages[id]
	if !ok {
		return nil, fmt.Errorf("package %s not found", id)
	}
	return p, nil
}

// memAppointmentRepo is an in-memory AppointmentRepository honouring the
// same ordering and conditional-update contract as the Mongo one.
type memAppointmentRepo struct {
	mu        sync.Mutex
	appts     map[string]*models.Appointment
	createErr error
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{appts: make(map[string]*models.Appointment)}
}

func (r *memAppointmentRepo) Create(appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	cp := *appt
	r.appts[appt.ID] = &cp
	return nil
}

func (r *memAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memAppointmentRepo) ListByActor(actorID string, role models.ActorRole, status *models.AppointmentStatus) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, a := range r.appts {
		owner := a.PatientID
		if role == models.RoleProvider {
			owner = a.ProviderID
		}
		if owner != actorID {
			continue
		}
		if status != nil && a.Status != *status {
			continue
		}
		out = append(out, *a)
	}

	descending := status != nil && status.IsTerminal()
	sort.Slice(out, func(i, j int) bool {
		ki := out[i].AppointmentDate + " " + out[i].AppointmentTime
		kj := out[j].AppointmentDate + " " + out[j].AppointmentTime
		if descending {
			return ki > kj
		}
		return ki < kj
	})
	return out, nil
}

func (r *memAppointmentRepo) UpdateStatusIfUpcoming(id string, newStatus models.AppointmentStatus) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	if a.Status != models.StatusUpcoming {
		return nil, appointmentRepo.ErrNotUpcoming
	}
	a.Status = newStatus
	cp := *a
	return &cp, nil
}

// fillDraft walks a session through every wizard step.
func fillDraft(t *testing.T, svc *DefaultBookingService, sessionID string) {
	t.Helper()
	ctx := t.Context()
	mustOK := func(_ *models.BookingDraft, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("draft setter failed: %v", err)
		}
	}
	mustOK(svc.SetCategory(ctx, sessionID, "Dermatology"))
	mustOK(svc.SetProvider(ctx, sessionID, "prov-1"))
	mustOK(svc.SetModality(ctx, sessionID, models.ModalityVideo))
	mustOK(svc.SetPackage(ctx, sessionID, "pkg-1", 0))
	mustOK(svc.SetSchedule(ctx, sessionID, ScheduleDetails{
		Date:    "2026-09-14",
		Time:    "10:30",
		Concern: "Recurring rash on forearm",
	}))
}
