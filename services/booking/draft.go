// File: services/booking/draft.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"telecare/models"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "bookingDraft:"

// DefaultDraftTTL is the sliding idle window for an abandoned draft.
// A draft represents work in progress, not a commitment; losing it on
// expiry is acceptable.
const DefaultDraftTTL = 30 * time.Minute

// DraftStore keeps one BookingDraft per session in Redis. Keying by the
// caller's session ID keeps drafts invisible across sessions; the draft is
// never written to the database.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore creates a DraftStore with the default idle TTL.
func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{client: client, ttl: DefaultDraftTTL}
}

func draftKey(sessionID string) string {
	return draftKeyPrefix + sessionID
}

// Get returns the session's draft. A session with no stored draft gets a
// fresh empty one, so first wizard interaction needs no explicit create.
func (s *DraftStore) Get(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	data, err := s.client.Get(ctx, draftKey(sessionID)).Result()
	if err == redis.Nil {
		return &models.BookingDraft{}, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "draft read", Err: err}
	}

	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, &PersistenceError{Op: "draft decode", Err: err}
	}
	return &draft, nil
}

// Save stores the draft and refreshes its idle TTL.
func (s *DraftStore) Save(ctx context.Context, sessionID string, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return &PersistenceError{Op: "draft encode", Err: err}
	}
	if err := s.client.Set(ctx, draftKey(sessionID), data, s.ttl).Err(); err != nil {
		return &PersistenceError{Op: "draft write", Err: err}
	}
	return nil
}

// Reset returns the session's draft to its empty initial state.
func (s *DraftStore) Reset(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return &PersistenceError{Op: "draft reset", Err: err}
	}
	return nil
}

// mutate applies fn to the session's current draft and saves the result.
func (s *DraftStore) mutate(ctx context.Context, sessionID string, fn func(*models.BookingDraft)) (*models.BookingDraft, error) {
	draft, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(draft)
	if err := s.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft returns the current draft for the session.
func (s *DefaultBookingService) GetDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	return s.Drafts.Get(ctx, sessionID)
}

// SetCategory records the chosen provider category.
func (s *DefaultBookingService) SetCategory(ctx context.Context, sessionID, category string) (*models.BookingDraft, error) {
	if category == "" {
		return nil, &ValidationError{Message: "category must not be empty"}
	}
	return s.Drafts.mutate(ctx, sessionID, func(d *models.BookingDraft) {
		d.Category = category
	})
}

// SetProvider resolves the provider through the catalog and snapshots it
// into the draft.
func (s *DefaultBookingService) SetProvider(ctx context.Context, sessionID, providerID string) (*models.BookingDraft, error) {
	prov, err := s.Catalog.GetProvider(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider %s: %w", providerID, err)
	}
	return s.Drafts.mutate(ctx, sessionID, func(d *models.BookingDraft) {
		d.Provider = prov.Ref()
	})
}

// SetModality records how the consultation will be delivered.
func (s *DefaultBookingService) SetModality(ctx context.Context, sessionID string, modality models.AppointmentModality) (*models.BookingDraft, error) {
	if !modality.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown appointment modality %q", modality)}
	}
	return s.Drafts.mutate(ctx, sessionID, func(d *models.BookingDraft) {
		d.Modality = modality
	})
}

// SetPackage resolves the package through the catalog and snapshots it
// together with the session duration. A zero durationMinutes falls back to
// the duration printed on the package itself.
func (s *DefaultBookingService) SetPackage(ctx context.Context, sessionID, packageID string, durationMinutes int) (*models.BookingDraft, error) {
	pkg, err := s.Catalog.GetPackage(packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve package %s: %w", packageID, err)
	}
	if durationMinutes <= 0 {
		durationMinutes = parseDurationMinutes(pkg.Duration)
	}
	return s.Drafts.mutate(ctx, sessionID, func(d *models.BookingDraft) {
		d.Package = pkg.Ref()
		d.DurationMinutes = durationMinutes
	})
}

// SetSchedule records the final wizard step: date, time and the optional
// concern and address fields.
func (s *DefaultBookingService) SetSchedule(ctx context.Context, sessionID string, details ScheduleDetails) (*models.BookingDraft, error) {
	if details.Date != "" {
		if _, err := time.Parse("2006-01-02", details.Date); err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", details.Date)}
		}
	}
	if details.Time != "" {
		if _, err := time.Parse("15:04", details.Time); err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid time %q, want HH:MM", details.Time)}
		}
	}
	return s.Drafts.mutate(ctx, sessionID, func(d *models.BookingDraft) {
		d.ScheduledDate = details.Date
		d.ScheduledTime = details.Time
		d.PatientConcern = details.Concern
		d.LocationAddress = details.Address
	})
}

// ResetDraft abandons the session's draft.
func (s *DefaultBookingService) ResetDraft(ctx context.Context, sessionID string) error {
	return s.Drafts.Reset(ctx, sessionID)
}

// parseDurationMinutes extracts the minute count from a package duration
// display string such as "30 min" or "1 hour". Unparseable input yields 30.
func parseDurationMinutes(display string) int {
	fields := strings.Fields(strings.ToLower(display))
	if len(fields) == 0 {
		return 30
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return 30
	}
	if len(fields) > 1 && strings.HasPrefix(fields[1], "hour") {
		return n * 60
	}
	return n
}
