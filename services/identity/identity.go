// File: services/identity/identity.go
package identity

import (
	"fmt"
	"time"

	patientRepo "telecare/database/repository/patient"
	providerRepo "telecare/database/repository/provider"
	"telecare/models"
	"telecare/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

// AuthError reports a failed registration or sign-in attempt.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// AuthResponse carries the signed token and the actor it identifies.
type AuthResponse struct {
	ID       string           `json:"id"`
	Role     models.ActorRole `json:"role"`
	Token    string           `json:"token"`
	FullName string           `json:"fullName,omitempty"`
	Email    string           `json:"email,omitempty"`
}

// IdentityService authenticates patients and providers. It is the only
// place that touches credentials; everything downstream works from the
// actor ID and role carried in the token.
type IdentityService interface {
	RegisterPatient(req PatientRegistration) (*AuthResponse, error)
	RegisterProvider(req ProviderRegistration) (*AuthResponse, error)
	SignInPatient(email, password string) (*AuthResponse, error)
	SignInProvider(email, password string) (*AuthResponse, error)
}

// PatientRegistration is the sign-up payload for patients.
type PatientRegistration struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

// ProviderRegistration is the sign-up payload for providers.
type ProviderRegistration struct {
	FullName        string  `json:"fullName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone"`
	Password        string  `json:"password" binding:"required,min=8"`
	Specialization  string  `json:"specialization" binding:"required"`
	LicenseNumber   string  `json:"licenseNumber"`
	YearsExperience int     `json:"yearsOfExperience"`
	ClinicName      string  `json:"clinicName"`
	ClinicAddress   string  `json:"clinicAddress"`
	ConsultationFee float64 `json:"consultationFee"`
}

// DefaultIdentityService implements IdentityService.
type DefaultIdentityService struct {
	Patients  patientRepo.PatientRepository
	Providers providerRepo.ProviderRepository
}

// RegisterPatient creates a patient account and signs them in.
func (s *DefaultIdentityService) RegisterPatient(req PatientRegistration) (*AuthResponse, error) {
	existing, err := s.Patients.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing patient: %w", err)
	}
	if existing != nil {
		return nil, &AuthError{Message: "an account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	patient := &models.Patient{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	}
	if err := s.Patients.Create(patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	return s.respond(patient.ID, models.RolePatient, patient.FullName, patient.Email)
}

// RegisterProvider creates a provider account and signs them in.
func (s *DefaultIdentityService) RegisterProvider(req ProviderRegistration) (*AuthResponse, error) {
	existing, err := s.Providers.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing provider: %w", err)
	}
	if existing != nil {
		return nil, &AuthError{Message: "an account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	prov := &models.Provider{
		ID:              uuid.New().String(),
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		PasswordHash:    string(hash),
		Specialization:  req.Specialization,
		LicenseNumber:   req.LicenseNumber,
		YearsExperience: req.YearsExperience,
		ClinicName:      req.ClinicName,
		ClinicAddress:   req.ClinicAddress,
		ConsultationFee: req.ConsultationFee,
	}
	if err := s.Providers.Create(prov); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	return s.respond(prov.ID, models.RoleProvider, prov.FullName, prov.Email)
}

// SignInPatient verifies patient credentials and issues a token.
func (s *DefaultIdentityService) SignInPatient(email, password string) (*AuthResponse, error) {
	patient, err := s.Patients.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}
	if patient == nil || bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(password)) != nil {
		return nil, &AuthError{Message: "invalid email or password"}
	}
	return s.respond(patient.ID, models.RolePatient, patient.FullName, patient.Email)
}

// SignInProvider verifies provider credentials and issues a token.
func (s *DefaultIdentityService) SignInProvider(email, password string) (*AuthResponse, error) {
	prov, err := s.Providers.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up provider: %w", err)
	}
	if prov == nil || bcrypt.CompareHashAndPassword([]byte(prov.PasswordHash), []byte(password)) != nil {
		return nil, &AuthError{Message: "invalid email or password"}
	}
	return s.respond(prov.ID, models.RoleProvider, prov.FullName, prov.Email)
}

func (s *DefaultIdentityService) respond(id string, role models.ActorRole, name, email string) (*AuthResponse, error) {
	token, err := utils.GenerateToken(id, role, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{ID: id, Role: role, Token: token, FullName: name, Email: email}, nil
}
