// File: services/notification/notification.go
package notification

import (
	"context"
	"fmt"

	notificationRepo "telecare/database/repository/notification"
	patientRepo "telecare/database/repository/patient"
	providerRepo "telecare/database/repository/provider"
	"telecare/models"
	"telecare/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService records in-app notifications and pushes them over
// FCM when the recipient has a registered device token.
type NotificationService interface {
	Notify(ctx context.Context, userID string, role models.ActorRole, ntype models.NotificationType, title, message string) error
	NotifyAppointmentBooked(ctx context.Context, appt *models.Appointment) error
	NotifyStatusChange(ctx context.Context, appt *models.Appointment, changedBy models.ActorRole) error

	ListForUser(userID string) ([]models.Notification, error)
	MarkRead(id, userID string) error
	MarkAllRead(userID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo      notificationRepo.NotificationRepository
	Patients  patientRepo.PatientRepository
	Providers providerRepo.ProviderRepository
}

// Notify stores a notification record and attempts an FCM push. The push
// is best-effort; a missing token or FCM failure never fails the call.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID string, role models.ActorRole, ntype models.NotificationType, title, message string) error {
	n := &models.Notification{
		ID:      uuid.New().String(),
		UserID:  userID,
		Role:    role,
		Title:   title,
		Message: message,
		Type:    ntype,
	}
	if err := s.Repo.Create(n); err != nil {
		return err
	}

	if token := s.fcmToken(userID, role); token != "" {
		s.push(ctx, token, title, message, map[string]string{
			"type": string(ntype),
			"role": string(role),
		})
	}
	return nil
}

// NotifyAppointmentBooked tells the provider about a new appointment.
func (s *DefaultNotificationService) NotifyAppointmentBooked(ctx context.Context, appt *models.Appointment) error {
	msg := fmt.Sprintf("You have a new %s appointment on %s at %s.",
		appt.AppointmentType, appt.AppointmentDate, appt.AppointmentTime)
	return s.Notify(ctx, appt.ProviderID, models.RoleProvider,
		models.NotificationAppointment, "New appointment booked", msg)
}

// NotifyStatusChange tells the counterpart actor about a transition.
func (s *DefaultNotificationService) NotifyStatusChange(ctx context.Context, appt *models.Appointment, changedBy models.ActorRole) error {
	var title string
	switch appt.Status {
	case models.StatusCancelled:
		title = "Appointment cancelled"
	case models.StatusCompleted:
		title = "Appointment completed"
	default:
		title = "Appointment updated"
	}
	msg := fmt.Sprintf("Your appointment on %s at %s is now %s.",
		appt.AppointmentDate, appt.AppointmentTime, appt.Status)

	// The actor who made the change already knows; tell the other side.
	if changedBy == models.RolePatient {
		return s.Notify(ctx, appt.ProviderID, models.RoleProvider, models.NotificationAppointment, title, msg)
	}
	return s.Notify(ctx, appt.PatientID, models.RolePatient, models.NotificationAppointment, title, msg)
}

// ListForUser retrieves a user's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(userID)
}

// MarkRead flags one notification as read.
func (s *DefaultNotificationService) MarkRead(id, userID string) error {
	return s.Repo.MarkRead(id, userID)
}

// MarkAllRead flags all of a user's notifications as read.
func (s *DefaultNotificationService) MarkAllRead(userID string) error {
	return s.Repo.MarkAllRead(userID)
}

func (s *DefaultNotificationService) fcmToken(userID string, role models.ActorRole) string {
	if role == models.RoleProvider {
		p, err := s.Providers.GetByID(userID)
		if err != nil {
			return ""
		}
		return p.FCMToken
	}
	p, err := s.Patients.GetByID(userID)
	if err != nil {
		return ""
	}
	return p.FCMToken
}

func (s *DefaultNotificationService) push(ctx context.Context, token, title, body string, data map[string]string) {
	if utils.FCMClient == nil {
		return
	}
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		zap.L().Warn("FCM push failed", zap.Error(err))
	}
}
