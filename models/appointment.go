package models

import "time"

// AppointmentStatus is the lifecycle state of a persisted appointment.
type AppointmentStatus string

const (
	StatusUpcoming  AppointmentStatus = "upcoming"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsTerminal reports whether no further transition is defined from s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsValid reports whether s is one of the known statuses.
func (s AppointmentStatus) IsValid() bool {
	return s == StatusUpcoming || s == StatusCompleted || s == StatusCancelled
}

// Appointment represents a confirmed appointment record.
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	PatientID       string            `bson:"patient_id" json:"patient_id"`
	ProviderID      string            `bson:"provider_id" json:"provider_id"`
	AppointmentDate string            `bson:"appointment_date" json:"appointment_date"` // "YYYY-MM-DD"
	AppointmentTime string            `bson:"appointment_time" json:"appointment_time"` // "HH:MM", 24h
	DurationMinutes int               `bson:"duration_minutes" json:"duration_minutes"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	AppointmentType string            `bson:"appointment_type" json:"appointment_type"`
	Notes           string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Location        string            `bson:"location" json:"location"`
	ConsultationFee float64           `bson:"consultation_fee" json:"consultation_fee"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updated_at"`
}

// StartsAt combines the date and time fields into a single instant.
// The zero time is returned when either field is malformed.
func (a *Appointment) StartsAt() time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", a.AppointmentDate+" "+a.AppointmentTime, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
