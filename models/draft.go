package models

// AppointmentModality is how the consultation is delivered.
type AppointmentModality string

const (
	ModalityVoice    AppointmentModality = "voice"
	ModalityVideo    AppointmentModality = "video"
	ModalityMessage  AppointmentModality = "message"
	ModalityInPerson AppointmentModality = "in-person"
)

// IsValid reports whether m is a known modality.
func (m AppointmentModality) IsValid() bool {
	switch m {
	case ModalityVoice, ModalityVideo, ModalityMessage, ModalityInPerson:
		return true
	}
	return false
}

// Label returns a human-readable name for the modality, used as the
// appointment location for non-physical consultations.
func (m AppointmentModality) Label() string {
	switch m {
	case ModalityVoice:
		return "Voice consultation"
	case ModalityVideo:
		return "Video consultation"
	case ModalityMessage:
		return "Message consultation"
	case ModalityInPerson:
		return "In-person visit"
	}
	return string(m)
}

// ProviderRef is the snapshot of a provider carried inside a booking draft.
type ProviderRef struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ProfileImage    string  `json:"profileImage,omitempty"`
	ConsultationFee float64 `json:"consultationFee"`
}

// PackageRef is the snapshot of a selected service package.
type PackageRef struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration,omitempty"` // display string, e.g. "30 min"
}

// BookingDraft accumulates the in-progress selection across the booking
// wizard. Fields may be set in any order and overwritten freely; the draft
// lives in the session cache and is never persisted to the database.
type BookingDraft struct {
	Category        string              `json:"category,omitempty"`
	Provider        *ProviderRef        `json:"provider,omitempty"`
	Modality        AppointmentModality `json:"modality,omitempty"`
	Package         *PackageRef         `json:"package,omitempty"`
	DurationMinutes int                 `json:"durationMinutes,omitempty"`
	ScheduledDate   string              `json:"scheduledDate,omitempty"`
	ScheduledTime   string              `json:"scheduledTime,omitempty"`
	PatientConcern  string              `json:"patientConcern,omitempty"`
	LocationAddress string              `json:"locationAddress,omitempty"`
}

// IsCommittable reports whether the draft carries everything needed to
// create an appointment: category, provider, modality, package, date and
// time. Concern and address stay optional.
func (d *BookingDraft) IsCommittable() bool {
	return d.Category != "" &&
		d.Provider != nil && d.Provider.ID != "" &&
		d.Modality != "" &&
		d.Package != nil && d.Package.ID != "" &&
		d.ScheduledDate != "" &&
		d.ScheduledTime != ""
}

// MissingFields lists the required selections that are still empty, in
// wizard order, so the caller can route the user back to the right step.
func (d *BookingDraft) MissingFields() []string {
	var missing []string
	if d.Category == "" {
		missing = append(missing, "category")
	}
	if d.Provider == nil || d.Provider.ID == "" {
		missing = append(missing, "provider")
	}
	if d.Modality == "" {
		missing = append(missing, "modality")
	}
	if d.Package == nil || d.Package.ID == "" {
		missing = append(missing, "package")
	}
	if d.ScheduledDate == "" {
		missing = append(missing, "scheduledDate")
	}
	if d.ScheduledTime == "" {
		missing = append(missing, "scheduledTime")
	}
	return missing
}
