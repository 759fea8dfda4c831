package models

import "time"

// Patient is a patient account with its medical profile fields.
type Patient struct {
	ID             string    `bson:"id" json:"id"`
	FullName       string    `bson:"full_name" json:"full_name"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	DateOfBirth    string    `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Gender         string    `bson:"gender,omitempty" json:"gender,omitempty"`
	BloodType      string    `bson:"blood_type,omitempty" json:"blood_type,omitempty"`
	MedicalHistory string    `bson:"medical_history,omitempty" json:"medical_history,omitempty"`
	Allergies      string    `bson:"allergies,omitempty" json:"allergies,omitempty"`
	ProfileImage   string    `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	FCMToken       string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// EmergencyContact is a person to reach on a patient's behalf.
type EmergencyContact struct {
	ID           string    `bson:"id" json:"id"`
	PatientID    string    `bson:"patient_id" json:"patient_id"`
	Name         string    `bson:"name" json:"name"`
	Relationship string    `bson:"relationship" json:"relationship"`
	Phone        string    `bson:"phone" json:"phone"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Favorite marks a provider a patient has saved to their shortlist.
type Favorite struct {
	ID         string    `bson:"id" json:"id"`
	PatientID  string    `bson:"patient_id" json:"patient_id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
