package models

import "time"

// Review is a patient's rating of a provider, optionally tied to a
// completed appointment.
type Review struct {
	ID            string    `bson:"id" json:"id"`
	PatientID     string    `bson:"patient_id" json:"patient_id"`
	ProviderID    string    `bson:"provider_id" json:"provider_id"`
	AppointmentID string    `bson:"appointment_id,omitempty" json:"appointment_id,omitempty"`
	Rating        int       `bson:"rating" json:"rating"` // 1..5
	Comment       string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
