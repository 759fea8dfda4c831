package models

import "time"

// Provider is a care provider account plus its public directory profile.
type Provider struct {
	ID              string    `bson:"id" json:"id"`
	FullName        string    `bson:"full_name" json:"full_name"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash    string    `bson:"password_hash" json:"-"`
	Specialization  string    `bson:"specialization" json:"specialization"`
	LicenseNumber   string    `bson:"license_number,omitempty" json:"license_number,omitempty"`
	YearsExperience int       `bson:"years_of_experience" json:"years_of_experience"`
	ClinicName      string    `bson:"clinic_name,omitempty" json:"clinic_name,omitempty"`
	ClinicAddress   string    `bson:"clinic_address,omitempty" json:"clinic_address,omitempty"`
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImage    string    `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	ConsultationFee float64   `bson:"consultation_fee" json:"consultation_fee"`
	IsVerified      bool      `bson:"is_verified" json:"is_verified"`
	Rating          float64   `bson:"rating" json:"rating"`
	ReviewCount     int       `bson:"review_count" json:"review_count"`
	FCMToken        string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// Ref returns the draft snapshot for this provider.
func (p *Provider) Ref() *ProviderRef {
	return &ProviderRef{
		ID:              p.ID,
		Name:            p.FullName,
		ProfileImage:    p.ProfileImage,
		ConsultationFee: p.ConsultationFee,
	}
}

// ProviderPackage is a bookable service offering published by a provider.
type ProviderPackage struct {
	ID          string              `bson:"id" json:"id"`
	ProviderID  string              `bson:"provider_id" json:"provider_id"`
	PackageType AppointmentModality `bson:"package_type" json:"package_type"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64             `bson:"price" json:"price"`
	Duration    string              `bson:"duration" json:"duration"` // e.g. "30 min"
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

// Ref returns the draft snapshot for this package.
func (p *ProviderPackage) Ref() *PackageRef {
	return &PackageRef{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Duration: p.Duration,
	}
}

// ProviderCategory is a directory category (specialization) shown on the
// booking entry screen.
type ProviderCategory struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	IconColor string    `bson:"icon_color,omitempty" json:"icon_color,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
